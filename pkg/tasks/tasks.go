package tasks

import (
	"context"
	"time"
)

// TaskSpec describes a follow-up task mirrored into the external task
// service when a touch is created with one.
type TaskSpec struct {
	Title      string
	DueDate    time.Time
	DueTime    string
	AssigneeID int
	TouchID    int
}

// TaskFields are the touch attributes kept in sync on the linked task.
type TaskFields struct {
	DueDate    *time.Time
	DueTime    *string
	AssigneeID *int
}

// ReminderSpec describes a reminder mirrored into the external reminder
// service.
type ReminderSpec struct {
	Message  string
	RemindAt time.Time
	UserID   int
	TouchID  int
}

// ReminderFields are the touch attributes kept in sync on the linked
// reminder.
type ReminderFields struct {
	RemindAt *time.Time
	UserID   *int
}

// TaskService is the external follow-up task collaborator.
type TaskService interface {
	CreateTask(ctx context.Context, spec TaskSpec) (string, error)
	UpdateTask(ctx context.Context, taskID string, fields TaskFields) error
}

// ReminderService is the external reminder collaborator.
type ReminderService interface {
	CreateReminder(ctx context.Context, spec ReminderSpec) (string, error)
	UpdateReminder(ctx context.Context, reminderID string, fields ReminderFields) error
}

// Noop satisfies both collaborator interfaces without doing anything.
// Hosts that have no task or reminder system plug this in.
type Noop struct{}

// CreateTask implements TaskService.
func (Noop) CreateTask(context.Context, TaskSpec) (string, error) { return "", nil }

// UpdateTask implements TaskService.
func (Noop) UpdateTask(context.Context, string, TaskFields) error { return nil }

// CreateReminder implements ReminderService.
func (Noop) CreateReminder(context.Context, ReminderSpec) (string, error) { return "", nil }

// UpdateReminder implements ReminderService.
func (Noop) UpdateReminder(context.Context, string, ReminderFields) error { return nil }
