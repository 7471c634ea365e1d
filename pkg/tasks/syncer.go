package tasks

import (
	"context"
	"time"

	"github.com/jordanlanch/touchpoint/pkg/logger"
)

// Syncer mirrors touch date/time/assignee changes onto linked tasks and
// reminders. Collaborator failures are logged and dropped: the primary
// touch mutation has already committed and must not be rolled back for a
// side effect.
type Syncer struct {
	tasks     TaskService
	reminders ReminderService
	log       logger.Logger
}

// NewSyncer creates a syncer over the given collaborators.
func NewSyncer(tasks TaskService, reminders ReminderService, log logger.Logger) *Syncer {
	if log == nil {
		log = logger.Default()
	}
	return &Syncer{tasks: tasks, reminders: reminders, log: log}
}

// SyncTouch pushes the current date/time/assignee of a touch onto its
// linked task and reminder, if either exists.
func (s *Syncer) SyncTouch(ctx context.Context, taskID, reminderID string, date time.Time, timeOfDay string, assigneeID int) {
	if taskID != "" {
		fields := TaskFields{
			DueDate:    &date,
			DueTime:    &timeOfDay,
			AssigneeID: &assigneeID,
		}
		if err := s.tasks.UpdateTask(ctx, taskID, fields); err != nil {
			s.log.Warn("task sync failed", "task_id", taskID, "error", err)
		}
	}

	if reminderID != "" {
		remindAt := atTimeOfDay(date, timeOfDay)
		fields := ReminderFields{
			RemindAt: &remindAt,
			UserID:   &assigneeID,
		}
		if err := s.reminders.UpdateReminder(ctx, reminderID, fields); err != nil {
			s.log.Warn("reminder sync failed", "reminder_id", reminderID, "error", err)
		}
	}
}

// CreateForTouch creates a task and a reminder for a freshly added touch
// and returns their IDs. Either may come back empty on collaborator
// failure; the touch is kept regardless.
func (s *Syncer) CreateForTouch(ctx context.Context, title string, date time.Time, timeOfDay string, assigneeID, touchID int) (taskID, reminderID string) {
	var err error

	taskID, err = s.tasks.CreateTask(ctx, TaskSpec{
		Title:      title,
		DueDate:    date,
		DueTime:    timeOfDay,
		AssigneeID: assigneeID,
		TouchID:    touchID,
	})
	if err != nil {
		s.log.Warn("task creation failed", "touch_id", touchID, "error", err)
		taskID = ""
	}

	reminderID, err = s.reminders.CreateReminder(ctx, ReminderSpec{
		Message:  title,
		RemindAt: atTimeOfDay(date, timeOfDay),
		UserID:   assigneeID,
		TouchID:  touchID,
	})
	if err != nil {
		s.log.Warn("reminder creation failed", "touch_id", touchID, "error", err)
		reminderID = ""
	}

	return taskID, reminderID
}

// atTimeOfDay merges a date with an optional HH:MM clock value.
func atTimeOfDay(date time.Time, timeOfDay string) time.Time {
	if timeOfDay == "" {
		return date
	}
	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
