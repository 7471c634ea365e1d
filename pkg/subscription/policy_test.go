package subscription

import (
	"context"
	"testing"

	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/touch"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingIDs(t *testing.T, e *env, subID, cycle int) []int {
	t.Helper()
	touches, err := e.touches.ListBySubscription(context.Background(), subID, &cycle)
	require.NoError(t, err)

	ids := make([]int, 0, len(touches))
	for _, tc := range touches {
		if tc.Status == "pending" {
			ids = append(ids, tc.ID)
		}
	}
	return ids
}

func TestCyclePolicyOneTime(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
	require.NoError(t, err)

	ids := pendingIDs(t, e, sub.ID, 1)
	require.Len(t, ids, 3)

	t.Run("Success - Partial resolution does not complete the cycle", func(t *testing.T) {
		first, err := e.touches.CompleteTouch(ctx, 1, ids[0], touch.CompleteTouchRequest{Outcome: "reached"})
		require.NoError(t, err)
		assert.False(t, first.Evaluation.CycleComplete)

		second, err := e.touches.SkipTouch(ctx, 1, ids[1])
		require.NoError(t, err)
		assert.False(t, second.Evaluation.CycleComplete)
	})

	t.Run("Success - Final resolution completes the subscription", func(t *testing.T) {
		last, err := e.touches.CompleteTouch(ctx, 1, ids[2], touch.CompleteTouchRequest{Outcome: "reached"})
		require.NoError(t, err)

		require.NotNil(t, last.Evaluation)
		assert.True(t, last.Evaluation.CycleComplete)
		assert.Equal(t, domain.BehaviorOneTime, last.Evaluation.Behavior)
		assert.Equal(t, 0, last.Evaluation.NewCycle)

		final, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", final.Status)
		assert.Equal(t, 1, final.CycleCount)
		assert.Equal(t, 3, final.CurrentStep)

		// No further touches were materialized.
		all, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Error - Resolving after completion", func(t *testing.T) {
		_, err := e.touches.CompleteTouch(ctx, 1, ids[2], touch.CompleteTouchRequest{Outcome: "again"})

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestCyclePolicyResolutionOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Resolving in reverse order must detect completion exactly once, on
	// the final resolution.
	sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
	require.NoError(t, err)

	ids := pendingIDs(t, e, sub.ID, 1)
	require.Len(t, ids, 3)

	completions := 0
	order := []int{ids[2], ids[0], ids[1]}
	for _, id := range order {
		result, err := e.touches.CompleteTouch(ctx, 1, id, touch.CompleteTouchRequest{Outcome: "reached"})
		require.NoError(t, err)
		if result.Evaluation.CycleComplete {
			completions++
		}
	}

	assert.Equal(t, 1, completions)
}

func TestCyclePolicyAutoRepeat(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t.Run("Success - Unbounded repeat starts the next cycle", func(t *testing.T) {
		sub, err := e.subs.Activate(ctx, 1, activateReq("auto_repeat"))
		require.NoError(t, err)

		eval := resolveAll(t, e, sub.ID)

		require.NotNil(t, eval)
		assert.True(t, eval.CycleComplete)
		assert.Equal(t, domain.BehaviorAutoRepeat, eval.Behavior)
		assert.Equal(t, 2, eval.NewCycle)

		current, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", current.Status)
		assert.Equal(t, 2, current.CycleCount)
		assert.Equal(t, 0, current.CurrentStep)

		assert.Len(t, pendingIDs(t, e, sub.ID, 2), 3)
	})

	t.Run("Success - Max cycles cap converts repeat into completion", func(t *testing.T) {
		maxCycles := 2
		req := activateReq("auto_repeat")
		req.EntityID = 60
		req.MaxCycles = &maxCycles

		sub, err := e.subs.Activate(ctx, 1, req)
		require.NoError(t, err)

		// Cycle 1 resolves and repeats.
		eval := resolveAll(t, e, sub.ID)
		require.NotNil(t, eval)
		assert.Equal(t, 2, eval.NewCycle)

		// Cycle 2 resolves and hits the cap.
		eval = resolveAll(t, e, sub.ID)
		require.NotNil(t, eval)
		assert.True(t, eval.CycleComplete)
		assert.Equal(t, domain.BehaviorAutoRepeat, eval.Behavior)
		assert.Equal(t, 0, eval.NewCycle)

		final, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", final.Status)
		assert.Equal(t, 2, final.CycleCount)

		all, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 6)
	})
}

func TestCyclePolicyUserDefined(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, activateReq("user_defined"))
	require.NoError(t, err)

	eval := resolveAll(t, e, sub.ID)

	require.NotNil(t, eval)
	assert.True(t, eval.CycleComplete)
	assert.Equal(t, domain.BehaviorUserDefined, eval.Behavior)
	assert.Equal(t, 0, eval.NewCycle)

	// The decision is left to the caller; nothing changed automatically.
	current, err := e.subs.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", current.Status)
	assert.Equal(t, 1, current.CycleCount)

	all, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCyclePolicyWhilePaused(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Touch actions on a paused subscription are allowed; resolving the
	// final touch of a one_time sequence completes it even while paused.
	sub, err := e.subs.Activate(ctx, 1, activateReq("one_time"))
	require.NoError(t, err)
	_, err = e.subs.Pause(ctx, 1, sub.ID, PauseRequest{PauseReason: "holiday"})
	require.NoError(t, err)

	eval := resolveAll(t, e, sub.ID)

	require.NotNil(t, eval)
	assert.True(t, eval.CycleComplete)

	final, err := e.subs.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", final.Status)
	assert.Nil(t, final.PauseUntil)
	assert.Empty(t, final.PauseReason)
}
