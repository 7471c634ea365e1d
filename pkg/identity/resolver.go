package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/jordanlanch/touchpoint/pkg/domain"
)

// EntityRef points at the entity a subscription is attached to.
type EntityRef struct {
	Type string
	ID   int
}

// Resolver answers "who should this touch be assigned to" for a given
// assignee rule. The staff directory itself lives outside this engine;
// implementations wrap whatever directory the host application uses.
type Resolver interface {
	Resolve(ctx context.Context, rule domain.AssigneeRule, entity EntityRef, specificUserID int) (int, error)
}

// StaticDirectory is a map-backed Resolver used by the default wiring,
// seeds, and tests. Owner lookups fall back to a configured default owner;
// field-staff assignment rotates round-robin through a fixed pool.
type StaticDirectory struct {
	mu           sync.Mutex
	owners       map[EntityRef]int
	defaultOwner int
	fieldStaff   []int
	nextStaff    int
}

// NewStaticDirectory creates a directory with the given default owner and
// field-staff pool.
func NewStaticDirectory(defaultOwner int, fieldStaff []int) *StaticDirectory {
	return &StaticDirectory{
		owners:       make(map[EntityRef]int),
		defaultOwner: defaultOwner,
		fieldStaff:   fieldStaff,
	}
}

// SetOwner registers the owner of an entity.
func (d *StaticDirectory) SetOwner(entity EntityRef, userID int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.owners[entity] = userID
}

// Resolve implements Resolver.
func (d *StaticDirectory) Resolve(_ context.Context, rule domain.AssigneeRule, entity EntityRef, specificUserID int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch rule {
	case domain.AssignEntityOwner:
		if owner, ok := d.owners[entity]; ok {
			return owner, nil
		}
		if d.defaultOwner > 0 {
			return d.defaultOwner, nil
		}
		return 0, fmt.Errorf("no owner known for %s/%d", entity.Type, entity.ID)

	case domain.AssignSpecificUser:
		if specificUserID <= 0 {
			return 0, fmt.Errorf("specific_user rule requires an assignee id")
		}
		return specificUserID, nil

	case domain.AssignFieldStaff:
		if len(d.fieldStaff) == 0 {
			if d.defaultOwner > 0 {
				return d.defaultOwner, nil
			}
			return 0, fmt.Errorf("field staff pool is empty")
		}
		userID := d.fieldStaff[d.nextStaff%len(d.fieldStaff)]
		d.nextStaff++
		return userID, nil

	default:
		return 0, fmt.Errorf("unknown assignee rule: %s", rule)
	}
}
