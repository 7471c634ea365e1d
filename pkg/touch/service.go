package touch

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/logger"
	"github.com/jordanlanch/touchpoint/pkg/tasks"
)

// CyclePolicy decides, inside the same transaction as a touch resolution,
// whether the owning cycle is now fully resolved and applies the
// subscription's cycle behavior.
type CyclePolicy interface {
	EvaluateCycleTx(ctx context.Context, tx *ent.Tx, subscriptionID int) (*domain.CycleEvaluation, error)
}

// Service owns the per-touch state machine. A touch moves pending ->
// completed or pending -> skipped, both terminal; snooze, reschedule,
// reassign and edit mutate a touch without changing its status.
type Service struct {
	db     *ent.Client
	locks  *domain.SubscriptionLocks
	policy CyclePolicy
	syncer *tasks.Syncer
	audit  *audit.Service
	log    logger.Logger
}

// NewService creates a new touch service. The cycle policy is attached
// afterwards via SetCyclePolicy since it is implemented by the subscription
// service, which in turn depends on touch resolutions.
func NewService(db *ent.Client, locks *domain.SubscriptionLocks, syncer *tasks.Syncer, auditSvc *audit.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:     db,
		locks:  locks,
		syncer: syncer,
		audit:  auditSvc,
		log:    log,
	}
}

// SetCyclePolicy wires the cycle-completion policy evaluated after every
// resolution.
func (s *Service) SetCyclePolicy(p CyclePolicy) {
	s.policy = p
}

// CompleteTouchRequest represents the combined "log outcome + optionally
// postpone" flow. With follow_up snooze or reschedule the touch stays
// pending: the outcome is recorded as a log entry only and the sequence
// position does not advance.
type CompleteTouchRequest struct {
	Outcome        string     `json:"outcome" validate:"required,max=100"`
	Notes          string     `json:"notes,omitempty" validate:"max=2000"`
	FollowUp       string     `json:"follow_up,omitempty" validate:"omitempty,oneof=none snooze reschedule"`
	SnoozeUntil    *time.Time `json:"snooze_until,omitempty"`
	RescheduleDate *time.Time `json:"reschedule_date,omitempty"`
}

// EditTouchRequest overwrites fields of a pending touch. Changes are
// mirrored onto the linked task and reminder.
type EditTouchRequest struct {
	Method        *string    `json:"method,omitempty" validate:"omitempty,oneof=call whatsapp visit email meeting"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	ScheduledTime *string    `json:"scheduled_time,omitempty" validate:"omitempty,len=5"`
	AssigneeID    *int       `json:"assignee_id,omitempty" validate:"omitempty,min=1"`
}

// AddTouchRequest appends an ad hoc touch to the current cycle.
type AddTouchRequest struct {
	Method        string    `json:"method" validate:"required,oneof=call whatsapp visit email meeting"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	ScheduledTime string    `json:"scheduled_time,omitempty" validate:"omitempty,len=5"`
	AssigneeID    int       `json:"assignee_id" validate:"required,min=1"`
}

// TouchResponse represents a touch in API responses.
type TouchResponse struct {
	ID               int        `json:"id"`
	SubscriptionID   int        `json:"subscription_id"`
	Cycle            int        `json:"cycle"`
	SequenceIndex    int        `json:"sequence_index"`
	Method           string     `json:"method"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	ScheduledTime    string     `json:"scheduled_time,omitempty"`
	AssignedTo       int        `json:"assigned_to"`
	Status           string     `json:"status"`
	Outcome          string     `json:"outcome,omitempty"`
	OutcomeNotes     string     `json:"outcome_notes,omitempty"`
	LinkedTaskID     string     `json:"linked_task_id,omitempty"`
	LinkedReminderID string     `json:"linked_reminder_id,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ResolutionResult is returned by operations that may resolve a touch.
// Evaluation is nil when the touch stayed pending.
type ResolutionResult struct {
	Touch      *TouchResponse          `json:"touch"`
	Evaluation *domain.CycleEvaluation `json:"evaluation,omitempty"`
}

// DueTouch is one row of the due/overdue work list.
type DueTouch struct {
	TouchResponse
	EntityType  string `json:"entity_type"`
	EntityID    int    `json:"entity_id"`
	EntityName  string `json:"entity_name,omitempty"`
	EntityPhone string `json:"entity_phone,omitempty"`
	Overdue     bool   `json:"overdue"`
}

// DueFilter narrows the due list. A zero AsOf means now.
type DueFilter struct {
	AssigneeID  int
	AsOf        time.Time
	OverdueOnly bool
}

// CompleteTouch resolves a pending touch with an outcome, or postpones it
// when a snooze/reschedule follow-up is requested.
func (s *Service) CompleteTouch(ctx context.Context, actorID, touchID int, req CompleteTouchRequest) (*ResolutionResult, error) {
	switch req.FollowUp {
	case "", "none":
		return s.resolve(ctx, actorID, touchID, touch.StatusCompleted, req.Outcome, req.Notes)
	case "snooze":
		if req.SnoozeUntil == nil {
			return nil, domain.NewValidationError("snooze follow-up requires snooze_until")
		}
		return s.postpone(ctx, actorID, touchID, *req.SnoozeUntil, req.Outcome, req.Notes, touchlog.FollowUpSnooze)
	case "reschedule":
		if req.RescheduleDate == nil {
			return nil, domain.NewValidationError("reschedule follow-up requires reschedule_date")
		}
		return s.postpone(ctx, actorID, touchID, *req.RescheduleDate, req.Outcome, req.Notes, touchlog.FollowUpReschedule)
	default:
		return nil, domain.NewValidationError("unknown follow-up: " + req.FollowUp)
	}
}

// SkipTouch resolves a pending touch without an outcome.
func (s *Service) SkipTouch(ctx context.Context, actorID, touchID int) (*ResolutionResult, error) {
	return s.resolve(ctx, actorID, touchID, touch.StatusSkipped, "", "")
}

// resolve moves a pending touch to a terminal status and evaluates the
// cycle-completion policy in the same transaction. The per-subscription
// lock makes resolution of the final two touches of a cycle serialize, so
// cycle completion is detected exactly once.
func (s *Service) resolve(ctx context.Context, actorID, touchID int, target touch.Status, outcome, notes string) (*ResolutionResult, error) {
	t, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to fetch touch: %w", err)
	}

	unlock := s.locks.Lock(t.SubscriptionID)
	defer unlock()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	sub, err := tx.Subscription.Get(ctx, t.SubscriptionID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	// Touch actions on a paused subscription are allowed; only terminal
	// subscriptions freeze their history.
	if sub.Status == subscription.StatusCompleted || sub.Status == subscription.StatusCancelled {
		tx.Rollback()
		return nil, domain.NewInvalidStateTransitionError("subscription", string(sub.Status), "resolve touch")
	}

	now := time.Now()
	update := tx.Touch.Update().
		Where(touch.ID(touchID), touch.StatusEQ(touch.StatusPending)).
		SetStatus(target).
		SetResolvedAt(now)
	if outcome != "" {
		update = update.SetOutcome(outcome)
	}
	if notes != "" {
		update = update.SetOutcomeNotes(notes)
	}
	n, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update touch: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return nil, domain.NewInvalidStateTransitionError("touch", string(t.Status), "resolve")
	}

	if err := tx.Subscription.UpdateOneID(sub.ID).AddCurrentStep(1).Exec(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to advance subscription progress: %w", err)
	}

	var eval *domain.CycleEvaluation
	if s.policy != nil {
		eval, err = s.policy.EvaluateCycleTx(ctx, tx, sub.ID)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to evaluate cycle completion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.audit != nil {
		action := activitylog.ActionTouchCompleted
		if target == touch.StatusSkipped {
			action = activitylog.ActionTouchSkipped
		}
		meta := map[string]interface{}{"subscription_id": sub.ID, "cycle": t.Cycle}
		if outcome != "" {
			meta["outcome"] = outcome
		}
		_ = s.audit.RecordTouch(ctx, actorID, action, touchID, meta)

		if eval != nil && eval.CycleComplete {
			switch {
			case eval.NewCycle > 0:
				_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionCycleRepeated, sub.ID,
					map[string]interface{}{"cycle": eval.NewCycle})
			case eval.Behavior != domain.BehaviorUserDefined:
				_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionCompleted, sub.ID, nil)
			}
		}
	}

	updated, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload touch: %w", err)
	}
	return &ResolutionResult{Touch: toResponse(updated), Evaluation: eval}, nil
}

// postpone moves a pending touch's schedule and records the outcome as a
// log entry without resolving the touch.
func (s *Service) postpone(ctx context.Context, actorID, touchID int, until time.Time, outcome, notes string, followUp touchlog.FollowUp) (*ResolutionResult, error) {
	t, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to fetch touch: %w", err)
	}

	date, timeOfDay := splitDateTime(until)

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.Touch.Update().
		Where(touch.ID(touchID), touch.StatusEQ(touch.StatusPending)).
		SetScheduledDate(date)
	if timeOfDay != "" {
		update = update.SetScheduledTime(timeOfDay)
	}
	n, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update touch schedule: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return nil, domain.NewInvalidStateTransitionError("touch", string(t.Status), string(followUp))
	}

	if outcome != "" {
		logCreate := tx.TouchLog.Create().
			SetTouchID(touchID).
			SetOutcome(outcome).
			SetFollowUp(followUp)
		if notes != "" {
			logCreate = logCreate.SetNotes(notes)
		}
		if _, err := logCreate.Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to record touch log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.syncer != nil {
		effectiveTime := timeOfDay
		if effectiveTime == "" {
			effectiveTime = t.ScheduledTime
		}
		s.syncer.SyncTouch(ctx, t.LinkedTaskID, t.LinkedReminderID, date, effectiveTime, t.AssignedTo)
	}

	if s.audit != nil {
		action := activitylog.ActionTouchSnoozed
		if followUp == touchlog.FollowUpReschedule {
			action = activitylog.ActionTouchRescheduled
		}
		_ = s.audit.RecordTouch(ctx, actorID, action, touchID, map[string]interface{}{
			"until":   date.Format("2006-01-02"),
			"outcome": outcome,
		})
	}

	updated, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload touch: %w", err)
	}
	return &ResolutionResult{Touch: toResponse(updated)}, nil
}

// SnoozeTouch pushes a pending touch's schedule to a later date without
// recording an outcome.
func (s *Service) SnoozeTouch(ctx context.Context, actorID, touchID int, until time.Time) (*TouchResponse, error) {
	return s.moveSchedule(ctx, actorID, touchID, until, activitylog.ActionTouchSnoozed)
}

// RescheduleTouch sets a new date on a pending touch.
func (s *Service) RescheduleTouch(ctx context.Context, actorID, touchID int, newDate time.Time) (*TouchResponse, error) {
	return s.moveSchedule(ctx, actorID, touchID, newDate, activitylog.ActionTouchRescheduled)
}

func (s *Service) moveSchedule(ctx context.Context, actorID, touchID int, until time.Time, action activitylog.Action) (*TouchResponse, error) {
	t, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to fetch touch: %w", err)
	}

	date, timeOfDay := splitDateTime(until)

	update := s.db.Touch.Update().
		Where(touch.ID(touchID), touch.StatusEQ(touch.StatusPending)).
		SetScheduledDate(date)
	if timeOfDay != "" {
		update = update.SetScheduledTime(timeOfDay)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update touch schedule: %w", err)
	}
	if n == 0 {
		return nil, domain.NewInvalidStateTransitionError("touch", string(t.Status), "move schedule")
	}

	if s.syncer != nil {
		effectiveTime := timeOfDay
		if effectiveTime == "" {
			effectiveTime = t.ScheduledTime
		}
		s.syncer.SyncTouch(ctx, t.LinkedTaskID, t.LinkedReminderID, date, effectiveTime, t.AssignedTo)
	}
	if s.audit != nil {
		_ = s.audit.RecordTouch(ctx, actorID, action, touchID, map[string]interface{}{
			"until": date.Format("2006-01-02"),
		})
	}

	updated, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload touch: %w", err)
	}
	return toResponse(updated), nil
}

// ReassignTouch changes the assignee of a touch. Allowed in any status so
// resolved history can be corrected; resolution state never changes.
func (s *Service) ReassignTouch(ctx context.Context, actorID, touchID, newAssignee int) (*TouchResponse, error) {
	if newAssignee <= 0 {
		return nil, domain.NewMissingAssigneeError()
	}

	t, err := s.db.Touch.UpdateOneID(touchID).SetAssignedTo(newAssignee).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to reassign touch: %w", err)
	}

	if s.syncer != nil {
		s.syncer.SyncTouch(ctx, t.LinkedTaskID, t.LinkedReminderID, t.ScheduledDate, t.ScheduledTime, newAssignee)
	}
	if s.audit != nil {
		_ = s.audit.RecordTouch(ctx, actorID, activitylog.ActionTouchReassigned, touchID, map[string]interface{}{
			"assigned_to": newAssignee,
		})
	}

	return toResponse(t), nil
}

// EditTouch overwrites fields of a pending touch and mirrors the change
// onto the linked task and reminder. Editing a resolved touch is rejected;
// use ReassignTouch to correct history.
func (s *Service) EditTouch(ctx context.Context, actorID, touchID int, req EditTouchRequest) (*TouchResponse, error) {
	t, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to fetch touch: %w", err)
	}

	update := s.db.Touch.Update().
		Where(touch.ID(touchID), touch.StatusEQ(touch.StatusPending))
	if req.Method != nil {
		update = update.SetMethod(touch.Method(*req.Method))
	}
	if req.ScheduledDate != nil {
		update = update.SetScheduledDate(*req.ScheduledDate)
	}
	if req.ScheduledTime != nil {
		update = update.SetScheduledTime(*req.ScheduledTime)
	}
	if req.AssigneeID != nil {
		update = update.SetAssignedTo(*req.AssigneeID)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to edit touch: %w", err)
	}
	if n == 0 {
		return nil, domain.NewInvalidStateTransitionError("touch", string(t.Status), "edit")
	}

	updated, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload touch: %w", err)
	}

	if s.syncer != nil {
		s.syncer.SyncTouch(ctx, updated.LinkedTaskID, updated.LinkedReminderID,
			updated.ScheduledDate, updated.ScheduledTime, updated.AssignedTo)
	}
	if s.audit != nil {
		_ = s.audit.RecordTouch(ctx, actorID, activitylog.ActionTouchEdited, touchID, nil)
	}

	return toResponse(updated), nil
}

// AddTouch appends an ad hoc touch at the next sequence index of the
// current cycle and best-effort creates a linked task and reminder.
func (s *Service) AddTouch(ctx context.Context, actorID, subscriptionID int, req AddTouchRequest) (*TouchResponse, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	sub, err := tx.Subscription.Get(ctx, subscriptionID)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("subscription")
		}
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	if sub.Status == subscription.StatusCompleted || sub.Status == subscription.StatusCancelled {
		tx.Rollback()
		return nil, domain.NewInvalidStateTransitionError("subscription", string(sub.Status), "add touch")
	}

	nextIndex := 0
	last, err := tx.Touch.Query().
		Where(touch.SubscriptionID(subscriptionID), touch.Cycle(sub.CycleCount)).
		Order(ent.Desc(touch.FieldSequenceIndex)).
		First(ctx)
	if err == nil {
		nextIndex = last.SequenceIndex + 1
	} else if !ent.IsNotFound(err) {
		tx.Rollback()
		return nil, fmt.Errorf("failed to determine sequence index: %w", err)
	}

	create := tx.Touch.Create().
		SetSubscriptionID(subscriptionID).
		SetCycle(sub.CycleCount).
		SetSequenceIndex(nextIndex).
		SetMethod(touch.Method(req.Method)).
		SetScheduledDate(req.ScheduledDate).
		SetAssignedTo(req.AssigneeID)
	if req.ScheduledTime != "" {
		create = create.SetScheduledTime(req.ScheduledTime)
	}
	created, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create touch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.syncer != nil {
		title := fmt.Sprintf("%s: %s", req.Method, sub.EntityName)
		taskID, reminderID := s.syncer.CreateForTouch(ctx, title, req.ScheduledDate, req.ScheduledTime, req.AssigneeID, created.ID)
		if taskID != "" || reminderID != "" {
			linked, err := s.db.Touch.UpdateOneID(created.ID).
				SetLinkedTaskID(taskID).
				SetLinkedReminderID(reminderID).
				Save(ctx)
			if err != nil {
				s.log.Warn("failed to store linked task/reminder ids", "touch_id", created.ID, "error", err)
			} else {
				created = linked
			}
		}
	}

	if s.audit != nil {
		_ = s.audit.RecordTouch(ctx, actorID, activitylog.ActionTouchAdded, created.ID, map[string]interface{}{
			"subscription_id": subscriptionID,
			"cycle":           sub.CycleCount,
		})
	}

	return toResponse(created), nil
}

// GetTouch returns one touch.
func (s *Service) GetTouch(ctx context.Context, touchID int) (*TouchResponse, error) {
	t, err := s.db.Touch.Get(ctx, touchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("touch")
		}
		return nil, fmt.Errorf("failed to fetch touch: %w", err)
	}
	return toResponse(t), nil
}

// ListBySubscription returns the touch history of a subscription, oldest
// cycle first. A non-nil cycle narrows to that cycle only.
func (s *Service) ListBySubscription(ctx context.Context, subscriptionID int, cycle *int) ([]TouchResponse, error) {
	exists, err := s.db.Subscription.Query().Where(subscription.ID(subscriptionID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("subscription")
	}

	query := s.db.Touch.Query().Where(touch.SubscriptionID(subscriptionID))
	if cycle != nil {
		query = query.Where(touch.Cycle(*cycle))
	}
	touches, err := query.
		Order(ent.Asc(touch.FieldCycle), ent.Asc(touch.FieldSequenceIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list touches: %w", err)
	}

	out := make([]TouchResponse, len(touches))
	for i, t := range touches {
		out[i] = *toResponse(t)
	}
	return out, nil
}

// ListDue returns pending touches of active subscriptions due on or before
// the filter date, oldest first. Overdue is computed on read against the
// caller-supplied clock; nothing in the engine ticks on its own.
func (s *Service) ListDue(ctx context.Context, filter DueFilter) ([]DueTouch, error) {
	asOf := filter.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	today := atMidnight(asOf)

	preds := []predicate.Touch{
		touch.StatusEQ(touch.StatusPending),
		touch.HasSubscriptionWith(subscription.StatusEQ(subscription.StatusActive)),
	}
	if filter.OverdueOnly {
		preds = append(preds, touch.ScheduledDateLT(today))
	} else {
		preds = append(preds, touch.ScheduledDateLT(today.AddDate(0, 0, 1)))
	}
	if filter.AssigneeID > 0 {
		preds = append(preds, touch.AssignedTo(filter.AssigneeID))
	}

	touches, err := s.db.Touch.Query().
		Where(preds...).
		WithSubscription().
		Order(ent.Asc(touch.FieldScheduledDate), ent.Asc(touch.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due touches: %w", err)
	}

	out := make([]DueTouch, len(touches))
	for i, t := range touches {
		row := DueTouch{
			TouchResponse: *toResponse(t),
			Overdue:       t.ScheduledDate.Before(today),
		}
		if sub := t.Edges.Subscription; sub != nil {
			row.EntityType = string(sub.EntityType)
			row.EntityID = sub.EntityID
			row.EntityName = sub.EntityName
			row.EntityPhone = sub.EntityPhone
		}
		out[i] = row
	}
	return out, nil
}

func toResponse(t *ent.Touch) *TouchResponse {
	return &TouchResponse{
		ID:               t.ID,
		SubscriptionID:   t.SubscriptionID,
		Cycle:            t.Cycle,
		SequenceIndex:    t.SequenceIndex,
		Method:           string(t.Method),
		ScheduledDate:    t.ScheduledDate,
		ScheduledTime:    t.ScheduledTime,
		AssignedTo:       t.AssignedTo,
		Status:           string(t.Status),
		Outcome:          t.Outcome,
		OutcomeNotes:     t.OutcomeNotes,
		LinkedTaskID:     t.LinkedTaskID,
		LinkedReminderID: t.LinkedReminderID,
		ResolvedAt:       t.ResolvedAt,
		CreatedAt:        t.CreatedAt,
	}
}

// splitDateTime separates a timestamp into its calendar date and, when the
// clock is not midnight, an HH:MM time of day.
func splitDateTime(when time.Time) (time.Time, string) {
	date := atMidnight(when)
	if when.Hour() == 0 && when.Minute() == 0 {
		return date, ""
	}
	return date, when.Format("15:04")
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
