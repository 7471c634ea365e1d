package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/cache"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

const progressCacheTTL = 30 * time.Second

// NextTouch is the upcoming touch shown on progress cards.
type NextTouch struct {
	TouchID       int       `json:"touch_id"`
	SequenceIndex int       `json:"sequence_index"`
	Method        string    `json:"method"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time,omitempty"`
	AssignedTo    int       `json:"assigned_to"`
	Overdue       bool      `json:"overdue"`
}

// ProgressResponse is the read model behind "step 2 of 5" displays.
type ProgressResponse struct {
	SubscriptionID int        `json:"subscription_id"`
	Status         string     `json:"status"`
	CycleBehavior  string     `json:"cycle_behavior"`
	Cycle          int        `json:"cycle"`
	MaxCycles      *int       `json:"max_cycles,omitempty"`
	TotalTouches   int        `json:"total_touches"`
	Resolved       int        `json:"resolved"`
	Percent        int        `json:"percent"`
	NextTouch      *NextTouch `json:"next_touch,omitempty"`
}

// Progress returns the current-cycle progress of a subscription. The
// result is cached briefly; mutations go through short-lived enough flows
// that a 30 second staleness window is acceptable for a display-only view.
func (s *Service) Progress(ctx context.Context, subscriptionID int) (*ProgressResponse, error) {
	key := cache.ProgressKey(subscriptionID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var out ProgressResponse
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
		}
	}

	sub, err := s.db.Subscription.Get(ctx, subscriptionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("subscription")
		}
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}

	touches, err := s.db.Touch.Query().
		Where(touch.SubscriptionID(subscriptionID), touch.Cycle(sub.CycleCount)).
		Order(ent.Asc(touch.FieldSequenceIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle touches: %w", err)
	}

	resolved := 0
	var next *NextTouch
	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	for _, t := range touches {
		if t.Status != touch.StatusPending {
			resolved++
			continue
		}
		if next == nil {
			next = &NextTouch{
				TouchID:       t.ID,
				SequenceIndex: t.SequenceIndex,
				Method:        string(t.Method),
				ScheduledDate: t.ScheduledDate,
				ScheduledTime: t.ScheduledTime,
				AssignedTo:    t.AssignedTo,
				Overdue:       t.ScheduledDate.Before(today),
			}
		}
	}

	percent := 0
	if len(touches) > 0 {
		percent = resolved * 100 / len(touches)
	}

	out := &ProgressResponse{
		SubscriptionID: subscriptionID,
		Status:         string(sub.Status),
		CycleBehavior:  string(sub.CycleBehavior),
		Cycle:          sub.CycleCount,
		MaxCycles:      sub.MaxCycles,
		TotalTouches:   len(touches),
		Resolved:       resolved,
		Percent:        percent,
		NextTouch:      next,
	}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = s.cache.Set(ctx, key, string(data), progressCacheTTL)
		}
	}
	return out, nil
}
