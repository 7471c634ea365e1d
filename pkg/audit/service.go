package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
)

// Service appends engine lifecycle events to the activity log. The log is
// write-only from the engine's point of view; reading it is a reporting
// concern that lives elsewhere.
type Service struct {
	db *ent.Client
}

// NewService creates a new activity log service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// Entry represents one activity log entry
type Entry struct {
	ActorID      *int
	Action       activitylog.Action
	ResourceType string
	ResourceID   string
	Metadata     map[string]interface{}
	Severity     activitylog.Severity
	Description  string
}

// Record appends a new activity log entry. Callers treat failures as
// best-effort: a lost log line never aborts the operation that produced it.
func (s *Service) Record(ctx context.Context, entry Entry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.ActivityLog.Create().
		SetAction(entry.Action)

	if entry.Severity != "" {
		create = create.SetSeverity(entry.Severity)
	}
	if entry.ActorID != nil {
		create = create.SetActorID(*entry.ActorID)
	}
	if entry.ResourceType != "" {
		create = create.SetResourceType(entry.ResourceType)
	}
	if entry.ResourceID != "" {
		create = create.SetResourceID(entry.ResourceID)
	}
	if entry.Description != "" {
		create = create.SetDescription(entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// RecordSubscription logs a subscription lifecycle transition.
func (s *Service) RecordSubscription(ctx context.Context, actorID int, action activitylog.Action, subscriptionID int, metadata map[string]interface{}) error {
	entry := Entry{
		Action:       action,
		ResourceType: "subscription",
		ResourceID:   strconv.Itoa(subscriptionID),
		Metadata:     metadata,
		Severity:     activitylog.SeverityInfo,
	}
	if actorID > 0 {
		entry.ActorID = &actorID
	}
	return s.Record(ctx, entry)
}

// RecordTouch logs a touch-level action.
func (s *Service) RecordTouch(ctx context.Context, actorID int, action activitylog.Action, touchID int, metadata map[string]interface{}) error {
	entry := Entry{
		Action:       action,
		ResourceType: "touch",
		ResourceID:   strconv.Itoa(touchID),
		Metadata:     metadata,
		Severity:     activitylog.SeverityInfo,
	}
	if actorID > 0 {
		entry.ActorID = &actorID
	}
	return s.Record(ctx, entry)
}

// RecordPreset logs a preset catalog change.
func (s *Service) RecordPreset(ctx context.Context, actorID int, action activitylog.Action, presetID int) error {
	entry := Entry{
		Action:       action,
		ResourceType: "preset",
		ResourceID:   strconv.Itoa(presetID),
		Severity:     activitylog.SeverityInfo,
	}
	if actorID > 0 {
		entry.ActorID = &actorID
	}
	return s.Record(ctx, entry)
}

// RecordSystem logs an event produced by a background job rather than an
// operator.
func (s *Service) RecordSystem(ctx context.Context, action activitylog.Action, description string, metadata map[string]interface{}) error {
	return s.Record(ctx, Entry{
		Action:      action,
		Metadata:    metadata,
		Severity:    activitylog.SeverityInfo,
		Description: description,
	})
}
