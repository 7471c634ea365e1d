package touch_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/enttest"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
	"github.com/jordanlanch/touchpoint/pkg/preset"
	"github.com/jordanlanch/touchpoint/pkg/sequence"
	"github.com/jordanlanch/touchpoint/pkg/subscription"
	"github.com/jordanlanch/touchpoint/pkg/tasks"
	"github.com/jordanlanch/touchpoint/pkg/touch"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCollaborators captures task/reminder calls so tests can assert
// the sync side effects without a real external service.
type recordingCollaborators struct {
	createdTasks     []tasks.TaskSpec
	createdReminders []tasks.ReminderSpec
	taskUpdates      map[string]tasks.TaskFields
	reminderUpdates  map[string]tasks.ReminderFields
}

func newRecording() *recordingCollaborators {
	return &recordingCollaborators{
		taskUpdates:     make(map[string]tasks.TaskFields),
		reminderUpdates: make(map[string]tasks.ReminderFields),
	}
}

func (r *recordingCollaborators) CreateTask(_ context.Context, spec tasks.TaskSpec) (string, error) {
	r.createdTasks = append(r.createdTasks, spec)
	return fmt.Sprintf("task-%d", len(r.createdTasks)), nil
}

func (r *recordingCollaborators) UpdateTask(_ context.Context, taskID string, fields tasks.TaskFields) error {
	r.taskUpdates[taskID] = fields
	return nil
}

func (r *recordingCollaborators) CreateReminder(_ context.Context, spec tasks.ReminderSpec) (string, error) {
	r.createdReminders = append(r.createdReminders, spec)
	return fmt.Sprintf("reminder-%d", len(r.createdReminders)), nil
}

func (r *recordingCollaborators) UpdateReminder(_ context.Context, reminderID string, fields tasks.ReminderFields) error {
	r.reminderUpdates[reminderID] = fields
	return nil
}

type env struct {
	client    *ent.Client
	subs      *subscription.Service
	touches   *touch.Service
	recording *recordingCollaborators
}

func newEnv(t *testing.T) *env {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	locks := domain.NewSubscriptionLocks()
	resolver := identity.NewStaticDirectory(1, []int{20, 21})
	materializer := sequence.NewMaterializer(resolver)
	presets := preset.NewService(client, nil, nil)
	subs := subscription.NewService(client, locks, materializer, presets, nil, nil, nil)

	recording := newRecording()
	syncer := tasks.NewSyncer(recording, recording, nil)
	touches := touch.NewService(client, locks, syncer, nil, nil)
	touches.SetCyclePolicy(subs)

	return &env{client: client, subs: subs, touches: touches, recording: recording}
}

// activate creates a three-step subscription and returns it with the IDs of
// its cycle-1 touches.
func activate(t *testing.T, e *env, behavior string) (*subscription.SubscriptionResponse, []touch.TouchResponse) {
	t.Helper()
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, subscription.ActivateRequest{
		EntityType: "lead",
		EntityID:   42,
		EntityName: "Acme Bakery",
		Steps: []domain.TemplateStep{
			{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignEntityOwner},
			{Method: domain.MethodWhatsapp, IntervalDays: 3, AssigneeRule: domain.AssignEntityOwner},
			{Method: domain.MethodCall, IntervalDays: 7, AssigneeRule: domain.AssignEntityOwner},
		},
		CycleBehavior: behavior,
		AssignedTo:    1,
	})
	require.NoError(t, err)

	touches, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
	require.NoError(t, err)
	require.Len(t, touches, 3)
	return sub, touches
}

func TestCompleteTouch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sub, touchList := activate(t, e, "user_defined")

	t.Run("Success - Complete with outcome", func(t *testing.T) {
		result, err := e.touches.CompleteTouch(ctx, 1, touchList[0].ID, touch.CompleteTouchRequest{
			Outcome: "reached",
			Notes:   "asked for a quote",
		})

		require.NoError(t, err)
		assert.Equal(t, "completed", result.Touch.Status)
		assert.Equal(t, "reached", result.Touch.Outcome)
		assert.Equal(t, "asked for a quote", result.Touch.OutcomeNotes)
		require.NotNil(t, result.Touch.ResolvedAt)
		require.NotNil(t, result.Evaluation)
		assert.False(t, result.Evaluation.CycleComplete)

		progressed, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, progressed.CurrentStep)
	})

	t.Run("Error - Completing a completed touch", func(t *testing.T) {
		_, err := e.touches.CompleteTouch(ctx, 1, touchList[0].ID, touch.CompleteTouchRequest{Outcome: "again"})

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})

	t.Run("Error - Touch not found", func(t *testing.T) {
		_, err := e.touches.CompleteTouch(ctx, 1, 99999, touch.CompleteTouchRequest{Outcome: "reached"})

		assert.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCompleteTouchWithFollowUp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sub, touchList := activate(t, e, "user_defined")

	t.Run("Success - Snooze keeps the touch pending", func(t *testing.T) {
		until := time.Now().AddDate(0, 0, 2)

		result, err := e.touches.CompleteTouch(ctx, 1, touchList[0].ID, touch.CompleteTouchRequest{
			Outcome:     "not_reachable",
			FollowUp:    "snooze",
			SnoozeUntil: &until,
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", result.Touch.Status)
		assert.Nil(t, result.Evaluation)

		// The outcome lives in the log, not on the touch.
		assert.Empty(t, result.Touch.Outcome)
		logs, err := e.client.TouchLog.Query().
			Where(touchlog.TouchID(touchList[0].ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "not_reachable", logs[0].Outcome)
		assert.Equal(t, touchlog.FollowUpSnooze, logs[0].FollowUp)

		// The sequence position did not advance.
		current, err := e.subs.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, current.CurrentStep)

		wantDate := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, until.Location())
		assert.True(t, result.Touch.ScheduledDate.Equal(wantDate))
	})

	t.Run("Success - Reschedule moves the date", func(t *testing.T) {
		newDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

		result, err := e.touches.CompleteTouch(ctx, 1, touchList[1].ID, touch.CompleteTouchRequest{
			Outcome:        "callback_requested",
			FollowUp:       "reschedule",
			RescheduleDate: &newDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", result.Touch.Status)
		assert.True(t, result.Touch.ScheduledDate.Equal(newDate))
	})

	t.Run("Error - Snooze without a date", func(t *testing.T) {
		_, err := e.touches.CompleteTouch(ctx, 1, touchList[0].ID, touch.CompleteTouchRequest{
			Outcome:  "not_reachable",
			FollowUp: "snooze",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestSkipTouch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, touchList := activate(t, e, "user_defined")

	t.Run("Success - Skip leaves no outcome", func(t *testing.T) {
		result, err := e.touches.SkipTouch(ctx, 1, touchList[0].ID)

		require.NoError(t, err)
		assert.Equal(t, "skipped", result.Touch.Status)
		assert.Empty(t, result.Touch.Outcome)
		require.NotNil(t, result.Touch.ResolvedAt)
	})

	t.Run("Error - Skipping twice", func(t *testing.T) {
		_, err := e.touches.SkipTouch(ctx, 1, touchList[0].ID)

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestSnoozeAndReschedule(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, touchList := activate(t, e, "user_defined")

	t.Run("Success - Snooze with time of day", func(t *testing.T) {
		until := time.Date(2026, 9, 10, 15, 30, 0, 0, time.Local)

		result, err := e.touches.SnoozeTouch(ctx, 1, touchList[0].ID, until)

		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.Equal(t, "15:30", result.ScheduledTime)
		assert.True(t, result.ScheduledDate.Equal(time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)))
	})

	t.Run("Success - Reschedule", func(t *testing.T) {
		newDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)

		result, err := e.touches.RescheduleTouch(ctx, 1, touchList[1].ID, newDate)

		require.NoError(t, err)
		assert.True(t, result.ScheduledDate.Equal(newDate))
	})

	t.Run("Error - Moving a resolved touch", func(t *testing.T) {
		_, err := e.touches.SkipTouch(ctx, 1, touchList[2].ID)
		require.NoError(t, err)

		_, err = e.touches.SnoozeTouch(ctx, 1, touchList[2].ID, time.Now().AddDate(0, 0, 1))

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestReassignTouch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, touchList := activate(t, e, "user_defined")

	t.Run("Success - Reassign pending touch", func(t *testing.T) {
		result, err := e.touches.ReassignTouch(ctx, 1, touchList[0].ID, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, result.AssignedTo)
	})

	t.Run("Success - Reassign resolved touch to correct history", func(t *testing.T) {
		_, err := e.touches.SkipTouch(ctx, 1, touchList[1].ID)
		require.NoError(t, err)

		result, err := e.touches.ReassignTouch(ctx, 1, touchList[1].ID, 9)

		require.NoError(t, err)
		assert.Equal(t, 9, result.AssignedTo)
		assert.Equal(t, "skipped", result.Status)
	})

	t.Run("Error - Missing assignee", func(t *testing.T) {
		_, err := e.touches.ReassignTouch(ctx, 1, touchList[0].ID, 0)

		assert.Error(t, err)
		assert.True(t, domain.IsMissingAssignee(err))
	})
}

func TestEditTouch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, touchList := activate(t, e, "user_defined")

	t.Run("Success - Edit method, date and assignee", func(t *testing.T) {
		method := "visit"
		date := time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local)
		timeOfDay := "09:00"
		assignee := 5

		result, err := e.touches.EditTouch(ctx, 1, touchList[0].ID, touch.EditTouchRequest{
			Method:        &method,
			ScheduledDate: &date,
			ScheduledTime: &timeOfDay,
			AssigneeID:    &assignee,
		})

		require.NoError(t, err)
		assert.Equal(t, "visit", result.Method)
		assert.Equal(t, "09:00", result.ScheduledTime)
		assert.Equal(t, 5, result.AssignedTo)
		assert.True(t, result.ScheduledDate.Equal(date))
	})

	t.Run("Error - Editing a resolved touch", func(t *testing.T) {
		_, err := e.touches.SkipTouch(ctx, 1, touchList[1].ID)
		require.NoError(t, err)

		method := "call"
		_, err = e.touches.EditTouch(ctx, 1, touchList[1].ID, touch.EditTouchRequest{Method: &method})

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestAddTouch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	sub, _ := activate(t, e, "user_defined")

	t.Run("Success - Appended at the next sequence index", func(t *testing.T) {
		result, err := e.touches.AddTouch(ctx, 1, sub.ID, touch.AddTouchRequest{
			Method:        "visit",
			ScheduledDate: time.Now().AddDate(0, 0, 5),
			ScheduledTime: "11:00",
			AssigneeID:    20,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.SequenceIndex)
		assert.Equal(t, 1, result.Cycle)
		assert.Equal(t, "pending", result.Status)

		// Task and reminder were created and linked best-effort.
		assert.Equal(t, "task-1", result.LinkedTaskID)
		assert.Equal(t, "reminder-1", result.LinkedReminderID)
		require.Len(t, e.recording.createdTasks, 1)
		assert.Equal(t, 20, e.recording.createdTasks[0].AssigneeID)
	})

	t.Run("Success - Edit syncs the linked task and reminder", func(t *testing.T) {
		added, err := e.touches.AddTouch(ctx, 1, sub.ID, touch.AddTouchRequest{
			Method:        "call",
			ScheduledDate: time.Now().AddDate(0, 0, 6),
			AssigneeID:    21,
		})
		require.NoError(t, err)

		date := time.Now().AddDate(0, 0, 9)
		_, err = e.touches.EditTouch(ctx, 1, added.ID, touch.EditTouchRequest{ScheduledDate: &date})
		require.NoError(t, err)

		fields, ok := e.recording.taskUpdates[added.LinkedTaskID]
		require.True(t, ok)
		require.NotNil(t, fields.DueDate)
	})

	t.Run("Error - Adding to a cancelled subscription", func(t *testing.T) {
		_, err := e.subs.Cancel(ctx, 1, sub.ID)
		require.NoError(t, err)

		_, err = e.touches.AddTouch(ctx, 1, sub.ID, touch.AddTouchRequest{
			Method:        "call",
			ScheduledDate: time.Now(),
			AssigneeID:    1,
		})

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateTransition(err))
	})
}

func TestListDue(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub, err := e.subs.Activate(ctx, 1, subscription.ActivateRequest{
		EntityType: "lead",
		EntityID:   70,
		EntityName: "Blue Finch Cafe",
		Steps: []domain.TemplateStep{
			{Method: domain.MethodCall, IntervalDays: 0, AssigneeRule: domain.AssignEntityOwner},
			{Method: domain.MethodEmail, IntervalDays: 5, AssigneeRule: domain.AssignEntityOwner},
		},
		CycleBehavior: "user_defined",
		AssignedTo:    1,
	})
	require.NoError(t, err)

	touchList, err := e.touches.ListBySubscription(ctx, sub.ID, nil)
	require.NoError(t, err)
	require.Len(t, touchList, 2)

	t.Run("Success - Only touches due today or earlier", func(t *testing.T) {
		due, err := e.touches.ListDue(ctx, touch.DueFilter{})

		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, touchList[0].ID, due[0].ID)
		assert.Equal(t, "Blue Finch Cafe", due[0].EntityName)
		assert.False(t, due[0].Overdue)
	})

	t.Run("Success - Rescheduled to the past shows as overdue", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)
		_, err := e.touches.RescheduleTouch(ctx, 1, touchList[0].ID, yesterday)
		require.NoError(t, err)

		due, err := e.touches.ListDue(ctx, touch.DueFilter{OverdueOnly: true})

		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.True(t, due[0].Overdue)
	})

	t.Run("Success - Assignee filter", func(t *testing.T) {
		due, err := e.touches.ListDue(ctx, touch.DueFilter{AssigneeID: 99})

		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("Success - Paused subscriptions drop off the due list", func(t *testing.T) {
		_, err := e.subs.Pause(ctx, 1, sub.ID, subscription.PauseRequest{PauseReason: "waiting on client"})
		require.NoError(t, err)

		due, err := e.touches.ListDue(ctx, touch.DueFilter{})

		require.NoError(t, err)
		assert.Empty(t, due)
	})
}
