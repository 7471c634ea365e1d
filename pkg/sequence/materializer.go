package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
)

// RestDay is the weekday the skip-weekends option avoids. The product's
// working week runs Monday through Saturday, so only Sunday counts as a
// rest day: a Sunday touch moves to Monday, a Saturday touch stays put.
const RestDay = time.Sunday

// Draft is one concrete dated touch produced from a template step. Drafts
// carry no IDs; persisting them is the caller's job.
type Draft struct {
	SequenceIndex int
	Method        domain.TouchMethod
	ScheduledDate time.Time
	AssignedTo    int
}

// Materializer expands a sequence template plus an anchor date into the
// dated touch records of one cycle.
type Materializer struct {
	resolver identity.Resolver
}

// NewMaterializer creates a materializer using the given assignee resolver.
func NewMaterializer(resolver identity.Resolver) *Materializer {
	return &Materializer{resolver: resolver}
}

// Materialize computes the touches of one cycle. Each step's interval_days
// accumulates onto a running offset from the anchor, so the absolute day
// offset of step i is the sum of intervals 0..i. Dates landing on the rest
// day are advanced to the next working day when skipWeekends is set.
//
// The template is expected to be validated at preset-save or activation
// time; an empty template is still rejected here so a broken caller cannot
// open a cycle with zero touches.
func (m *Materializer) Materialize(ctx context.Context, steps []domain.TemplateStep, anchor time.Time, entity identity.EntityRef, skipWeekends bool) ([]Draft, error) {
	if len(steps) == 0 {
		return nil, domain.NewEmptySequenceError()
	}

	anchor = atMidnight(anchor)

	drafts := make([]Draft, 0, len(steps))
	offset := 0

	for i, step := range steps {
		offset += step.IntervalDays
		date := anchor.AddDate(0, 0, offset)

		if skipWeekends {
			date = nextWorkingDay(date)
		}

		assignee, err := m.resolver.Resolve(ctx, step.AssigneeRule, entity, step.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assignee for step %d: %w", i, err)
		}

		drafts = append(drafts, Draft{
			SequenceIndex: i,
			Method:        step.Method,
			ScheduledDate: date,
			AssignedTo:    assignee,
		})
	}

	return drafts, nil
}

// nextWorkingDay advances a date until it no longer falls on the rest day.
func nextWorkingDay(date time.Time) time.Time {
	for date.Weekday() == RestDay {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// atMidnight truncates a timestamp to its calendar date.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
