package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingService captures collaborator calls and can be told to fail.
type recordingService struct {
	fail        bool
	taskUpdates []string
	remUpdates  []string
	created     int
}

func (r *recordingService) CreateTask(_ context.Context, spec TaskSpec) (string, error) {
	if r.fail {
		return "", errors.New("task service down")
	}
	r.created++
	return "task-1", nil
}

func (r *recordingService) UpdateTask(_ context.Context, taskID string, _ TaskFields) error {
	if r.fail {
		return errors.New("task service down")
	}
	r.taskUpdates = append(r.taskUpdates, taskID)
	return nil
}

func (r *recordingService) CreateReminder(_ context.Context, spec ReminderSpec) (string, error) {
	if r.fail {
		return "", errors.New("reminder service down")
	}
	r.created++
	return "rem-1", nil
}

func (r *recordingService) UpdateReminder(_ context.Context, reminderID string, _ ReminderFields) error {
	if r.fail {
		return errors.New("reminder service down")
	}
	r.remUpdates = append(r.remUpdates, reminderID)
	return nil
}

func TestSyncer_SyncTouch(t *testing.T) {
	svc := &recordingService{}
	s := NewSyncer(svc, svc, nil)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success - both links updated", func(t *testing.T) {
		s.SyncTouch(context.Background(), "task-1", "rem-1", date, "09:30", 7)
		assert.Equal(t, []string{"task-1"}, svc.taskUpdates)
		assert.Equal(t, []string{"rem-1"}, svc.remUpdates)
	})

	t.Run("Success - empty links are skipped", func(t *testing.T) {
		before := len(svc.taskUpdates)
		s.SyncTouch(context.Background(), "", "", date, "", 7)
		assert.Len(t, svc.taskUpdates, before)
	})

	t.Run("Success - collaborator failure does not panic or propagate", func(t *testing.T) {
		failing := &recordingService{fail: true}
		fs := NewSyncer(failing, failing, nil)
		fs.SyncTouch(context.Background(), "task-1", "rem-1", date, "", 7)
	})
}

func TestSyncer_CreateForTouch(t *testing.T) {
	t.Run("Success - both collaborators create", func(t *testing.T) {
		svc := &recordingService{}
		s := NewSyncer(svc, svc, nil)

		taskID, reminderID := s.CreateForTouch(context.Background(), "Call Acme", time.Now(), "10:00", 7, 3)
		assert.Equal(t, "task-1", taskID)
		assert.Equal(t, "rem-1", reminderID)
	})

	t.Run("Success - failures yield empty ids", func(t *testing.T) {
		svc := &recordingService{fail: true}
		s := NewSyncer(svc, svc, nil)

		taskID, reminderID := s.CreateForTouch(context.Background(), "Call Acme", time.Now(), "", 7, 3)
		assert.Empty(t, taskID)
		assert.Empty(t, reminderID)
	})
}

func TestAtTimeOfDay(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, date, atTimeOfDay(date, ""))
	assert.Equal(t, date, atTimeOfDay(date, "zz:zz"))

	got := atTimeOfDay(date, "14:45")
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 45, got.Minute())
}
