package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
)

// EvaluateCycleTx implements the cycle-completion policy. It runs inside
// the transaction that resolved a touch, under the caller's
// per-subscription lock, so the "last two touches resolved concurrently"
// race cannot double-complete a cycle: the second resolver sees the first
// one's writes.
//
// When every touch of the current cycle is terminal:
//   - one_time completes the subscription.
//   - auto_repeat starts the next cycle, unless max_cycles is reached, in
//     which case the cap wins and the subscription completes.
//   - user_defined takes no action; the caller surfaces the choice and
//     later invokes RepeatCycle or Complete.
func (s *Service) EvaluateCycleTx(ctx context.Context, tx *ent.Tx, subscriptionID int) (*domain.CycleEvaluation, error) {
	sub, err := tx.Subscription.Get(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}

	pending, err := tx.Touch.Query().
		Where(
			touch.SubscriptionID(subscriptionID),
			touch.Cycle(sub.CycleCount),
			touch.StatusEQ(touch.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending touches: %w", err)
	}
	if pending > 0 {
		return &domain.CycleEvaluation{CycleComplete: false}, nil
	}

	behavior := domain.CycleBehavior(sub.CycleBehavior)
	eval := &domain.CycleEvaluation{CycleComplete: true, Behavior: behavior}

	switch behavior {
	case domain.BehaviorOneTime:
		if err := s.completeTx(ctx, tx, subscriptionID); err != nil {
			return nil, err
		}

	case domain.BehaviorAutoRepeat:
		// The cap takes precedence over auto-repeat.
		if sub.MaxCycles != nil && sub.CycleCount >= *sub.MaxCycles {
			if err := s.completeTx(ctx, tx, subscriptionID); err != nil {
				return nil, err
			}
			break
		}
		newCycle, err := s.startNextCycleTx(ctx, tx, sub)
		if err != nil {
			return nil, err
		}
		eval.NewCycle = newCycle

	case domain.BehaviorUserDefined:
		// No automatic action.
	}

	return eval, nil
}

// completeTx marks the subscription completed inside the given
// transaction. Paused subscriptions complete too: resolving the final touch
// of a one_time sequence ends it whether or not it was paused at the time.
func (s *Service) completeTx(ctx context.Context, tx *ent.Tx, subscriptionID int) error {
	err := tx.Subscription.UpdateOneID(subscriptionID).
		SetStatus(subscription.StatusCompleted).
		ClearPauseUntil().
		ClearPauseReason().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete subscription: %w", err)
	}
	return nil
}

// startNextCycleTx increments the cycle, resets progress and materializes
// the next cycle's touches anchored at now, all inside the given
// transaction.
func (s *Service) startNextCycleTx(ctx context.Context, tx *ent.Tx, sub *ent.Subscription) (int, error) {
	entity := identity.EntityRef{Type: string(sub.EntityType), ID: sub.EntityID}

	drafts, err := s.materializer.Materialize(ctx, sub.Steps, time.Now(), entity, sub.SkipWeekends)
	if err != nil {
		return 0, err
	}

	newCycle := sub.CycleCount + 1
	err = tx.Subscription.UpdateOneID(sub.ID).
		SetCycleCount(newCycle).
		SetCurrentStep(0).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to advance cycle: %w", err)
	}

	if err := createTouchesTx(ctx, tx, sub.ID, newCycle, drafts); err != nil {
		return 0, err
	}
	return newCycle, nil
}
