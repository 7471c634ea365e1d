package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/cache"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/identity"
	"github.com/jordanlanch/touchpoint/pkg/logger"
	"github.com/jordanlanch/touchpoint/pkg/phone"
	"github.com/jordanlanch/touchpoint/pkg/preset"
	"github.com/jordanlanch/touchpoint/pkg/sequence"
)

// Service is the top-level lifecycle orchestrator: it activates
// subscriptions, moves them between active/paused/completed/cancelled, and
// implements the cycle-completion policy evaluated after touch resolutions.
type Service struct {
	db           *ent.Client
	locks        *domain.SubscriptionLocks
	materializer *sequence.Materializer
	presets      *preset.Service
	cache        domain.CacheRepository
	audit        *audit.Service
	log          logger.Logger
}

// NewService creates a new subscription lifecycle service.
func NewService(db *ent.Client, locks *domain.SubscriptionLocks, materializer *sequence.Materializer, presets *preset.Service, cacheRepo domain.CacheRepository, auditSvc *audit.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:           db,
		locks:        locks,
		materializer: materializer,
		presets:      presets,
		cache:        cacheRepo,
		audit:        auditSvc,
		log:          log,
	}
}

// ActivateRequest attaches a sequence to an entity. Either PresetID or
// Steps must be set; Steps wins when both are present (ad hoc override).
type ActivateRequest struct {
	EntityType    string                `json:"entity_type" validate:"required,oneof=lead customer contact"`
	EntityID      int                   `json:"entity_id" validate:"required,min=1"`
	EntityName    string                `json:"entity_name,omitempty" validate:"max=300"`
	EntityPhone   string                `json:"entity_phone,omitempty" validate:"max=30"`
	PhoneCountry  string                `json:"phone_country,omitempty" validate:"omitempty,len=2"`
	PresetID      *int                  `json:"preset_id,omitempty" validate:"omitempty,min=1"`
	Steps         []domain.TemplateStep `json:"steps,omitempty"`
	CycleBehavior string                `json:"cycle_behavior,omitempty" validate:"omitempty,oneof=one_time auto_repeat user_defined"`
	AssignedTo    int                   `json:"assigned_to" validate:"required,min=1"`
	MaxCycles     *int                  `json:"max_cycles,omitempty" validate:"omitempty,min=1"`
	SkipWeekends  bool                  `json:"skip_weekends,omitempty"`
}

// PauseRequest pauses an active subscription. PauseUntil is informational:
// the engine never resumes on its own, callers (or the auto-resume job)
// compare it to now.
type PauseRequest struct {
	PauseUntil  *time.Time `json:"pause_until,omitempty"`
	PauseReason string     `json:"pause_reason,omitempty" validate:"max=500"`
}

// SubscriptionResponse represents a subscription in API responses.
type SubscriptionResponse struct {
	ID            int                   `json:"id"`
	EntityType    string                `json:"entity_type"`
	EntityID      int                   `json:"entity_id"`
	EntityName    string                `json:"entity_name,omitempty"`
	EntityPhone   string                `json:"entity_phone,omitempty"`
	PresetID      *int                  `json:"preset_id,omitempty"`
	Steps         []domain.TemplateStep `json:"steps"`
	CycleBehavior string                `json:"cycle_behavior"`
	AssignedTo    int                   `json:"assigned_to"`
	Status        string                `json:"status"`
	CycleCount    int                   `json:"cycle_count"`
	MaxCycles     *int                  `json:"max_cycles,omitempty"`
	CurrentStep   int                   `json:"current_step"`
	PauseUntil    *time.Time            `json:"pause_until,omitempty"`
	PauseReason   string                `json:"pause_reason,omitempty"`
	SkipWeekends  bool                  `json:"skip_weekends"`
	StartedAt     time.Time             `json:"started_at"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ListFilter narrows List results. Zero values mean "any".
type ListFilter struct {
	Status     string
	AssignedTo int
	EntityType string
	EntityID   int
}

// Activate creates a subscription and materializes cycle 1 anchored at now.
func (s *Service) Activate(ctx context.Context, actorID int, req ActivateRequest) (*SubscriptionResponse, error) {
	if req.AssignedTo <= 0 {
		return nil, domain.NewMissingAssigneeError()
	}

	steps := req.Steps
	behavior := domain.CycleBehavior(req.CycleBehavior)
	var presetID *int

	if len(steps) == 0 {
		if req.PresetID == nil {
			return nil, domain.NewEmptySequenceError()
		}
		p, err := s.presets.GetPreset(ctx, *req.PresetID)
		if err != nil {
			return nil, err
		}
		template, err := s.presets.Template(ctx, *req.PresetID)
		if err != nil {
			return nil, err
		}
		steps = template
		presetID = req.PresetID
		if behavior == "" {
			behavior = domain.CycleBehavior(p.DefaultCycleBehavior)
		}
	} else if req.PresetID != nil {
		// Ad hoc steps with a preset reference keep the reference for
		// display but materialize from the supplied steps.
		presetID = req.PresetID
	}

	if behavior == "" {
		behavior = domain.BehaviorOneTime
	}
	if !behavior.Valid() {
		return nil, domain.NewValidationError("unknown cycle behavior: " + string(behavior))
	}
	if err := domain.ValidateTemplate(steps); err != nil {
		return nil, err
	}

	entityPhone := ""
	if req.EntityPhone != "" {
		normalized, err := phone.Normalize(req.EntityPhone, req.PhoneCountry)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		entityPhone = normalized
	}

	entity := identity.EntityRef{Type: req.EntityType, ID: req.EntityID}
	now := time.Now()

	drafts, err := s.materializer.Materialize(ctx, steps, now, entity, req.SkipWeekends)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.Subscription.
		Create().
		SetEntityType(subscription.EntityType(req.EntityType)).
		SetEntityID(req.EntityID).
		SetSteps(steps).
		SetCycleBehavior(subscription.CycleBehavior(behavior)).
		SetAssignedTo(req.AssignedTo).
		SetSkipWeekends(req.SkipWeekends).
		SetStartedAt(now)
	if req.EntityName != "" {
		create = create.SetEntityName(req.EntityName)
	}
	if entityPhone != "" {
		create = create.SetEntityPhone(entityPhone)
	}
	if presetID != nil {
		create = create.SetPresetID(*presetID)
	}
	if req.MaxCycles != nil {
		create = create.SetMaxCycles(*req.MaxCycles)
	}

	sub, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := createTouchesTx(ctx, tx, sub.ID, 1, drafts); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionActivated, sub.ID, map[string]interface{}{
			"entity_type": req.EntityType,
			"entity_id":   req.EntityID,
			"behavior":    string(behavior),
			"touches":     len(drafts),
		})
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionCycleStarted, sub.ID, map[string]interface{}{
			"cycle": 1,
		})
	}

	return toResponse(sub), nil
}

// Pause moves an active subscription to paused. Touches are not mutated;
// their dates stand still while the subscription does.
func (s *Service) Pause(ctx context.Context, actorID, subscriptionID int, req PauseRequest) (*SubscriptionResponse, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	update := s.db.Subscription.Update().
		Where(subscription.ID(subscriptionID), subscription.StatusEQ(subscription.StatusActive)).
		SetStatus(subscription.StatusPaused)
	if req.PauseUntil != nil {
		update = update.SetPauseUntil(*req.PauseUntil)
	}
	if req.PauseReason != "" {
		update = update.SetPauseReason(req.PauseReason)
	}

	if err := s.transition(ctx, subscriptionID, update, "pause"); err != nil {
		return nil, err
	}

	s.invalidateProgress(ctx, subscriptionID)
	if s.audit != nil {
		meta := map[string]interface{}{}
		if req.PauseUntil != nil {
			meta["pause_until"] = req.PauseUntil.Format("2006-01-02")
		}
		if req.PauseReason != "" {
			meta["reason"] = req.PauseReason
		}
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionPaused, subscriptionID, meta)
	}

	return s.Get(ctx, subscriptionID)
}

// Resume moves a paused subscription back to active and clears the pause
// fields. Overdue pending touches keep their dates: they show up as
// immediately overdue rather than silently shifting forward.
func (s *Service) Resume(ctx context.Context, actorID, subscriptionID int) (*SubscriptionResponse, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	update := s.db.Subscription.Update().
		Where(subscription.ID(subscriptionID), subscription.StatusEQ(subscription.StatusPaused)).
		SetStatus(subscription.StatusActive).
		ClearPauseUntil().
		ClearPauseReason()

	if err := s.transition(ctx, subscriptionID, update, "resume"); err != nil {
		return nil, err
	}

	s.invalidateProgress(ctx, subscriptionID)
	if s.audit != nil {
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionResumed, subscriptionID, nil)
	}

	return s.Get(ctx, subscriptionID)
}

// Cancel terminates a subscription from any non-terminal state.
func (s *Service) Cancel(ctx context.Context, actorID, subscriptionID int) (*SubscriptionResponse, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	update := s.db.Subscription.Update().
		Where(subscription.ID(subscriptionID),
			subscription.StatusIn(subscription.StatusActive, subscription.StatusPaused)).
		SetStatus(subscription.StatusCancelled)

	if err := s.transition(ctx, subscriptionID, update, "cancel"); err != nil {
		return nil, err
	}

	s.invalidateProgress(ctx, subscriptionID)
	if s.audit != nil {
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionCancelled, subscriptionID, nil)
	}

	return s.Get(ctx, subscriptionID)
}

// Complete explicitly finishes a subscription, the user_defined answer to
// "cycle done, stop here".
func (s *Service) Complete(ctx context.Context, actorID, subscriptionID int) (*SubscriptionResponse, error) {
	unlock := s.locks.Lock(subscriptionID)
	defer unlock()

	update := s.db.Subscription.Update().
		Where(subscription.ID(subscriptionID),
			subscription.StatusIn(subscription.StatusActive, subscription.StatusPaused)).
		SetStatus(subscription.StatusCompleted).
		ClearPauseUntil().
		ClearPauseReason()

	if err := s.transition(ctx, subscriptionID, update, "complete"); err != nil {
		return nil, err
	}

	s.invalidateProgress(ctx, subscriptionID)
	if s.audit != nil {
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionSubscriptionCompleted, subscriptionID, nil)
	}

	return s.Get(ctx, subscriptionID)
}

// RepeatCycle starts the next cycle explicitly, the user_defined answer to
// "cycle done, go again". Callers may invoke it regardless of whether the
// current cycle is fully resolved; leftover pending touches stay pending in
// their old cycle.
func (s *Service) RepeatCycle(ctx context.Context, actorID, subscriptionID int) (*SubscriptionResponse, error) {
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
	if sub.Status != subscription.StatusActive {
		tx.Rollback()
		return nil, domain.NewInvalidStateTransitionError("subscription", string(sub.Status), "repeat cycle")
	}

	newCycle, err := s.startNextCycleTx(ctx, tx, sub)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidateProgress(ctx, subscriptionID)
	if s.audit != nil {
		_ = s.audit.RecordSubscription(ctx, actorID, activitylog.ActionCycleRepeated, subscriptionID, map[string]interface{}{
			"cycle": newCycle,
		})
	}

	return s.Get(ctx, subscriptionID)
}

// Get returns one subscription.
func (s *Service) Get(ctx context.Context, subscriptionID int) (*SubscriptionResponse, error) {
	sub, err := s.db.Subscription.Get(ctx, subscriptionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("subscription")
		}
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	return toResponse(sub), nil
}

// List returns subscriptions matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]SubscriptionResponse, error) {
	preds := []predicate.Subscription{}
	if filter.Status != "" {
		preds = append(preds, subscription.StatusEQ(subscription.Status(filter.Status)))
	}
	if filter.AssignedTo > 0 {
		preds = append(preds, subscription.AssignedTo(filter.AssignedTo))
	}
	if filter.EntityType != "" {
		preds = append(preds, subscription.EntityTypeEQ(subscription.EntityType(filter.EntityType)))
	}
	if filter.EntityID > 0 {
		preds = append(preds, subscription.EntityID(filter.EntityID))
	}

	subs, err := s.db.Subscription.Query().
		Where(preds...).
		Order(ent.Desc(subscription.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	out := make([]SubscriptionResponse, len(subs))
	for i, sub := range subs {
		out[i] = *toResponse(sub)
	}
	return out, nil
}

// transition applies a guarded status update; zero matched rows means the
// subscription either does not exist or is not in a state the operation
// permits.
func (s *Service) transition(ctx context.Context, subscriptionID int, update *ent.SubscriptionUpdate, op string) error {
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to %s subscription: %w", op, err)
	}
	if n > 0 {
		return nil
	}

	sub, err := s.db.Subscription.Get(ctx, subscriptionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("subscription")
		}
		return fmt.Errorf("failed to fetch subscription: %w", err)
	}
	return domain.NewInvalidStateTransitionError("subscription", string(sub.Status), op)
}

func (s *Service) invalidateProgress(ctx context.Context, subscriptionID int) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.ProgressKey(subscriptionID))
	}
}

// createTouchesTx persists one cycle's drafts as pending touches.
func createTouchesTx(ctx context.Context, tx *ent.Tx, subscriptionID, cycle int, drafts []sequence.Draft) error {
	builders := make([]*ent.TouchCreate, len(drafts))
	for i, d := range drafts {
		builders[i] = tx.Touch.
			Create().
			SetSubscriptionID(subscriptionID).
			SetCycle(cycle).
			SetSequenceIndex(d.SequenceIndex).
			SetMethod(touch.Method(d.Method)).
			SetScheduledDate(d.ScheduledDate).
			SetAssignedTo(d.AssignedTo)
	}
	if _, err := tx.Touch.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to create touches: %w", err)
	}
	return nil
}

func toResponse(sub *ent.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:            sub.ID,
		EntityType:    string(sub.EntityType),
		EntityID:      sub.EntityID,
		EntityName:    sub.EntityName,
		EntityPhone:   sub.EntityPhone,
		PresetID:      sub.PresetID,
		Steps:         sub.Steps,
		CycleBehavior: string(sub.CycleBehavior),
		AssignedTo:    sub.AssignedTo,
		Status:        string(sub.Status),
		CycleCount:    sub.CycleCount,
		MaxCycles:     sub.MaxCycles,
		CurrentStep:   sub.CurrentStep,
		PauseUntil:    sub.PauseUntil,
		PauseReason:   sub.PauseReason,
		SkipWeekends:  sub.SkipWeekends,
		StartedAt:     sub.StartedAt,
		CreatedAt:     sub.CreatedAt,
	}
}
