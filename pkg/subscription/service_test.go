package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/enttest"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
	"github.com/jordanlanch/touchpoint/pkg/preset"
	"github.com/jordanlanch/touchpoint/pkg/sequence"
	"github.com/jordanlanch/touchpoint/pkg/touch"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	client   *ent.Client
	resolver *identity.StaticDirectory
	presets  *preset.Service
	subs     *Service
	touches  *touch.Service
}

func newEnv(t *testing.T) *env {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	locks := domain.NewSubscriptionLocks()
	resolver := identity.NewStaticDirectory(1, []int{20, 21})
	materializer := sequence.NewMaterializer(resolver)
	presets := preset.NewService(client, nil, nil)
	subs := NewService(client, locks, materializer, presets, nil, nil, nil)

	touches := touch.NewService(client, locks, nil, nil, nil)
	touches.SetCyclePolicy(subs)

	return &env{
		client:   client,
		resolver: resolver,
		presets:  presets,
		subs:     subs,
		touches:  touches,
	}
}

func threeStepTemplate() []domain.TemplateStep {
	return []domain.TemplateStep{
		{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignEntityOwner},
		{Method: domain.MethodWhatsapp, IntervalDays: 3, AssigneeRule: domain.AssignEntityOwner},
		{Method: domain.MethodCall, IntervalDays: 7, AssigneeRule: domain.AssignEntityOwner},
	}
}

func activateReq(behavior string) ActivateRequest {
	return ActivateRequest{
		EntityType:    "lead",
		EntityID:      42,
		EntityName:    "Acme Bakery",
		Steps:         threeStepTemplate(),
		CycleBehavior: behavior,
		AssignedTo:    1,
	}
}

// resolveAll completes every pending touch of the current cycle and returns
// the evaluation of the final resolution.
func resolveAll(t *testing.T, e *env, subID int) *domain.CycleEvaluation {
	t.Helper()
	ctx := context.Background()

	sub, err := e.subs.Get(ctx, subID)
	require.NoError(t, err)
	cycle := sub.CycleCount

	touches, err := e.touches.ListBySubscription(ctx, subID, &cycle)
	require.NoError(t, err)

	var eval *domain.CycleEvaluation
	for _, tc := range touches {
		if tc.Status != "pending" {
			continue
		}
		result, err := e.touches.CompleteTouch(ctx, 1, tc.ID, touch.CompleteTouchRequest{Outcome: "reached"})
		require.NoError(t, err)
		eval = result.Evaluation
	}
	return eval
}

func TestActivate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t.Run("Success - Custom sequence materializes cycle 1", func(t *testing.T) {
		sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))

		require.NoError(t, err)
		assert.Equal(t, "active", sub.Status)
		assert.Equal(t, 1, sub.CycleCount)
		assert.Equal(t, 0, sub.CurrentStep)
		assert.Equal(t, "one_time", sub.CycleBehavior)
		assert.Len(t, sub.Steps, 3)

		touches, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
		require.NoError(t, err)
		require.Len(t, touches, 3)

		// Offsets are cumulative: day 0, day 3, day 10.
		now := time.Now()
		anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		assert.True(t, touches[0].ScheduledDate.Equal(anchor))
		assert.True(t, touches[1].ScheduledDate.Equal(anchor.AddDate(0, 0, 3)))
		assert.True(t, touches[2].ScheduledDate.Equal(anchor.AddDate(0, 0, 10)))

		for i, tc := range touches {
			assert.Equal(t, i, tc.SequenceIndex)
			assert.Equal(t, "pending", tc.Status)
			assert.Equal(t, 1, tc.Cycle)
		}
	})

	t.Run("Success - Preset activation freezes snapshot and behavior", func(t *testing.T) {
		p, err := e.presets.CreatePreset(ctx, 1, preset.CreatePresetRequest{
			Name:                 "Nurture",
			DefaultCycleBehavior: "auto_repeat",
			Steps: []preset.StepRequest{
				{Method: "call", IntervalDays: 0},
				{Method: "email", IntervalDays: 5},
			},
		})
		require.NoError(t, err)

		req := ActivateRequest{
			EntityType: "customer",
			EntityID:   7,
			PresetID:   &p.ID,
			AssignedTo: 1,
		}
		sub, err := e.subs.Activate(ctx, 1, req)

		require.NoError(t, err)
		require.NotNil(t, sub.PresetID)
		assert.Equal(t, p.ID, *sub.PresetID)
		assert.Equal(t, "auto_repeat", sub.CycleBehavior)
		assert.Len(t, sub.Steps, 2)

		// Deleting the preset afterwards leaves the subscription intact.
		require.NoError(t, e.presets.DeletePreset(ctx, 1, p.ID))
		kept, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Len(t, kept.Steps, 2)
	})

	t.Run("Success - Entity phone normalized to E.164", func(t *testing.T) {
		req := activateReq("one_time")
		req.EntityID = 43
		req.EntityPhone = "(212) 555-0123"
		req.PhoneCountry = "US"

		sub, err := e.subs.Activate(ctx, 1, req)

		require.NoError(t, err)
		assert.Equal(t, "+12125550123", sub.EntityPhone)
	})

	t.Run("Error - Invalid phone", func(t *testing.T) {
		req := activateReq("one_time")
		req.EntityPhone = "12"

		sub, err := e.subs.Activate(ctx, 1, req)

		assert.Error(t, err)
		assert.Nil(t, sub)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Error - Missing assignee", func(t *testing.T) {
		req := activateReq("one_time")
		req.AssignedTo = 0

		sub, err := e.subs.Activate(ctx, 1, req)

		assert.Error(t, err)
		assert.Nil(t, sub)
		assert.True(t, domain.IsMissingAssignee(err))
	})

	t.Run("Error - No steps and no preset", func(t *testing.T) {
		req := activateReq("one_time")
		req.Steps = nil

		sub, err := e.subs.Activate(ctx, 1, req)

		assert.Error(t, err)
		assert.Nil(t, sub)
		assert.True(t, domain.IsEmptySequence(err))
	})
}

func TestPauseResume(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
	require.NoError(t, err)

	t.Run("Success - Pause with reason and date", func(t *testing.T) {
		until := time.Now().AddDate(0, 0, 14)

		paused, err := e.subs.Pause(ctx, 1, sub.ID, PauseRequest{
			PauseUntil:  &until,
			PauseReason: "on vacation",
		})

		require.NoError(t, err)
		assert.Equal(t, "paused", paused.Status)
		assert.Equal(t, "on vacation", paused.PauseReason)
		require.NotNil(t, paused.PauseUntil)
	})

	t.Run("Error - Pausing a paused subscription", func(t *testing.T) {
		_, err := e.subs.Pause(ctx, 1, sub.ID, PauseRequest{})

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})

	t.Run("Success - Resume keeps touch schedule", func(t *testing.T) {
		before, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
		require.NoError(t, err)

		resumed, err := e.subs.Resume(ctx, 1, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, "active", resumed.Status)
		assert.Nil(t, resumed.PauseUntil)
		assert.Empty(t, resumed.PauseReason)

		// Overdue touches stay overdue; nothing shifts forward on resume.
		after, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
		require.NoError(t, err)
		require.Len(t, after, len(before))
		for i := range before {
			assert.True(t, after[i].ScheduledDate.Equal(before[i].ScheduledDate))
		}
	})

	t.Run("Error - Resuming an active subscription", func(t *testing.T) {
		_, err := e.subs.Resume(ctx, 1, sub.ID)

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})

	t.Run("Error - Subscription not found", func(t *testing.T) {
		_, err := e.subs.Pause(ctx, 1, 99999, PauseRequest{})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCancel(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t.Run("Success - Cancel from active", func(t *testing.T) {
		sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
		require.NoError(t, err)

		cancelled, err := e.subs.Cancel(ctx, 1, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
	})

	t.Run("Success - Cancel from paused", func(t *testing.T) {
		req := activateReq("one_time")
		req.EntityID = 50
		sub, err := e.subs.Activate(ctx, 1, req)
		require.NoError(t, err)
		_, err = e.subs.Pause(ctx, 1, sub.ID, PauseRequest{})
		require.NoError(t, err)

		cancelled, err := e.subs.Cancel(ctx, 1, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
	})

	t.Run("Error - Terminal states stay terminal", func(t *testing.T) {
		req := activateReq("one_time")
		req.EntityID = 51
		sub, err := e.subs.Activate(ctx, 1, req)
		require.NoError(t, err)
		_, err = e.subs.Cancel(ctx, 1, sub.ID)
		require.NoError(t, err)

		_, err = e.subs.Cancel(ctx, 1, sub.ID)
		assert.True(t, domain.IsInvalidStateTransition(err))

		_, err = e.subs.Resume(ctx, 1, sub.ID)
		assert.True(t, domain.IsInvalidStateTransition(err))

		_, err = e.subs.Complete(ctx, 1, sub.ID)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestComplete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("user_defined"))
	require.NoError(t, err)

	t.Run("Success - Explicit completion", func(t *testing.T) {
		completed, err := e.subs.Complete(ctx, 1, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, "completed", completed.Status)
	})

	t.Run("Error - Completing twice", func(t *testing.T) {
		_, err := e.subs.Complete(ctx, 1, sub.ID)

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestRepeatCycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("user_defined"))
	require.NoError(t, err)

	t.Run("Success - Resolved user_defined cycle repeats on request", func(t *testing.T) {
		eval := resolveAll(t, e, sub.ID)
		require.NotNil(t, eval)
		assert.True(t, eval.CycleComplete)
		assert.Equal(t, domain.BehaviorUserDefined, eval.Behavior)

		// No automatic action was taken.
		current, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", current.Status)
		assert.Equal(t, 1, current.CycleCount)

		repeated, err := e.subs.RepeatCycle(ctx, 1, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, repeated.CycleCount)
		assert.Equal(t, 0, repeated.CurrentStep)

		cycle := 2
		touches, err := e.touches.ListBySubscription(ctx, sub.ID, &cycle)
		require.NoError(t, err)
		assert.Len(t, touches, 3)
		for _, tc := range touches {
			assert.Equal(t, "pending", tc.Status)
		}
	})

	t.Run("Error - Repeat on terminal subscription", func(t *testing.T) {
		_, err := e.subs.Cancel(ctx, 1, sub.ID)
		require.NoError(t, err)

		_, err = e.subs.RepeatCycle(ctx, 1, sub.ID)

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestProgress(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
	require.NoError(t, err)

	touches, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
	require.NoError(t, err)
	_, err = e.touches.CompleteTouch(ctx, 1, touches[0].ID, touch.CompleteTouchRequest{Outcome: "reached"})
	require.NoError(t, err)

	progress, err := e.subs.Progress(ctx, sub.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalTouches)
	assert.Equal(t, 1, progress.Resolved)
	assert.Equal(t, 33, progress.Percent)
	require.NotNil(t, progress.NextTouch)
	assert.Equal(t, touches[1].ID, progress.NextTouch.TouchID)

	t.Run("Error - Progress of unknown subscription", func(t *testing.T) {
		_, err := e.subs.Progress(ctx, 99999)
		assert.True(t, domain.IsNotFound(err))
	})
}
