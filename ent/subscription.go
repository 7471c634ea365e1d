// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

// Subscription is the model entity for the Subscription schema.
type Subscription struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Kind of entity this sequence is attached to
	EntityType subscription.EntityType `json:"entity_type,omitempty"`
	// Identifier of the entity in the owning directory
	EntityID int `json:"entity_id,omitempty"`
	// Display snapshot of the entity name at activation time
	EntityName string `json:"entity_name,omitempty"`
	// Entity phone in E.164, normalized at activation
	EntityPhone string `json:"entity_phone,omitempty"`
	// Preset this subscription was started from (null = custom sequence)
	PresetID *int `json:"preset_id,omitempty"`
	// Template snapshot used to materialize every cycle; survives preset deletion
	Steps []domain.TemplateStep `json:"steps,omitempty"`
	// Effective behavior when a cycle is fully resolved, frozen at activation
	CycleBehavior subscription.CycleBehavior `json:"cycle_behavior,omitempty"`
	// User responsible for the subscription as a whole
	AssignedTo int `json:"assigned_to,omitempty"`
	// Lifecycle status; completed and cancelled are terminal
	Status subscription.Status `json:"status,omitempty"`
	// Number of the cycle currently in progress (1-based)
	CycleCount int `json:"cycle_count,omitempty"`
	// Cap for auto_repeat; reaching it completes the subscription
	MaxCycles *int `json:"max_cycles,omitempty"`
	// Count of resolved touches in the current cycle, for progress display
	CurrentStep int `json:"current_step,omitempty"`
	// Date after which callers may resume a paused subscription
	PauseUntil *time.Time `json:"pause_until,omitempty"`
	// Free-form reason recorded when pausing
	PauseReason string `json:"pause_reason,omitempty"`
	// Move touches falling on the rest day to the next working day
	SkipWeekends bool `json:"skip_weekends,omitempty"`
	// When the subscription was activated
	StartedAt time.Time `json:"started_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubscriptionQuery when eager-loading is set.
	Edges        SubscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubscriptionEdges holds the relations/edges for other nodes in the graph.
type SubscriptionEdges struct {
	// Preset holds the value of the preset edge.
	Preset *Preset `json:"preset,omitempty"`
	// All touches materialized for this subscription, across cycles
	Touches []*Touch `json:"touches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PresetOrErr returns the Preset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubscriptionEdges) PresetOrErr() (*Preset, error) {
	if e.Preset != nil {
		return e.Preset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: preset.Label}
	}
	return nil, &NotLoadedError{edge: "preset"}
}

// TouchesOrErr returns the Touches value or an error if the edge
// was not loaded in eager-loading.
func (e SubscriptionEdges) TouchesOrErr() ([]*Touch, error) {
	if e.loadedTypes[1] {
		return e.Touches, nil
	}
	return nil, &NotLoadedError{edge: "touches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscription.FieldSteps:
			values[i] = new([]byte)
		case subscription.FieldSkipWeekends:
			values[i] = new(sql.NullBool)
		case subscription.FieldID, subscription.FieldEntityID, subscription.FieldPresetID, subscription.FieldAssignedTo, subscription.FieldCycleCount, subscription.FieldMaxCycles, subscription.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case subscription.FieldEntityType, subscription.FieldEntityName, subscription.FieldEntityPhone, subscription.FieldCycleBehavior, subscription.FieldStatus, subscription.FieldPauseReason:
			values[i] = new(sql.NullString)
		case subscription.FieldPauseUntil, subscription.FieldStartedAt, subscription.FieldCreatedAt, subscription.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subscription fields.
func (_m *Subscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscription.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subscription.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = subscription.EntityType(value.String)
			}
		case subscription.FieldEntityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = int(value.Int64)
			}
		case subscription.FieldEntityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_name", values[i])
			} else if value.Valid {
				_m.EntityName = value.String
			}
		case subscription.FieldEntityPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_phone", values[i])
			} else if value.Valid {
				_m.EntityPhone = value.String
			}
		case subscription.FieldPresetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field preset_id", values[i])
			} else if value.Valid {
				_m.PresetID = new(int)
				*_m.PresetID = int(value.Int64)
			}
		case subscription.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case subscription.FieldCycleBehavior:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_behavior", values[i])
			} else if value.Valid {
				_m.CycleBehavior = subscription.CycleBehavior(value.String)
			}
		case subscription.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = int(value.Int64)
			}
		case subscription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = subscription.Status(value.String)
			}
		case subscription.FieldCycleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_count", values[i])
			} else if value.Valid {
				_m.CycleCount = int(value.Int64)
			}
		case subscription.FieldMaxCycles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_cycles", values[i])
			} else if value.Valid {
				_m.MaxCycles = new(int)
				*_m.MaxCycles = int(value.Int64)
			}
		case subscription.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case subscription.FieldPauseUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pause_until", values[i])
			} else if value.Valid {
				_m.PauseUntil = new(time.Time)
				*_m.PauseUntil = value.Time
			}
		case subscription.FieldPauseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_reason", values[i])
			} else if value.Valid {
				_m.PauseReason = value.String
			}
		case subscription.FieldSkipWeekends:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_weekends", values[i])
			} else if value.Valid {
				_m.SkipWeekends = value.Bool
			}
		case subscription.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case subscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subscription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subscription.
// This includes values selected through modifiers, order, etc.
func (_m *Subscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPreset queries the "preset" edge of the Subscription entity.
func (_m *Subscription) QueryPreset() *PresetQuery {
	return NewSubscriptionClient(_m.config).QueryPreset(_m)
}

// QueryTouches queries the "touches" edge of the Subscription entity.
func (_m *Subscription) QueryTouches() *TouchQuery {
	return NewSubscriptionClient(_m.config).QueryTouches(_m)
}

// Update returns a builder for updating this Subscription.
// Note that you need to call Subscription.Unwrap() before calling this method if this Subscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subscription) Update() *SubscriptionUpdateOne {
	return NewSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subscription) Unwrap() *Subscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subscription) String() string {
	var builder strings.Builder
	builder.WriteString("Subscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteString(", ")
	builder.WriteString("entity_name=")
	builder.WriteString(_m.EntityName)
	builder.WriteString(", ")
	builder.WriteString("entity_phone=")
	builder.WriteString(_m.EntityPhone)
	builder.WriteString(", ")
	if v := _m.PresetID; v != nil {
		builder.WriteString("preset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("cycle_behavior=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleBehavior))
	builder.WriteString(", ")
	builder.WriteString("assigned_to=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedTo))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cycle_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleCount))
	builder.WriteString(", ")
	if v := _m.MaxCycles; v != nil {
		builder.WriteString("max_cycles=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	if v := _m.PauseUntil; v != nil {
		builder.WriteString("pause_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("pause_reason=")
	builder.WriteString(_m.PauseReason)
	builder.WriteString(", ")
	builder.WriteString("skip_weekends=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipWeekends))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Subscriptions is a parsable slice of Subscription.
type Subscriptions []*Subscription
