package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/cache"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

const listCacheTTL = 10 * time.Minute

// Service is the preset catalog: reusable touch-sequence templates with a
// default cycle behavior.
type Service struct {
	db    *ent.Client
	cache domain.CacheRepository
	audit *audit.Service
}

// NewService creates a new preset catalog service. The cache is optional.
func NewService(db *ent.Client, cacheRepo domain.CacheRepository, auditSvc *audit.Service) *Service {
	return &Service{
		db:    db,
		cache: cacheRepo,
		audit: auditSvc,
	}
}

// StepRequest is one step definition inside a create/update request.
type StepRequest struct {
	Method       string `json:"method" validate:"required,oneof=call whatsapp visit email meeting"`
	IntervalDays int    `json:"interval_days" validate:"min=0"`
	AssigneeRule string `json:"assignee_rule" validate:"omitempty,oneof=entity_owner specific_user field_staff"`
	AssigneeID   int    `json:"assignee_id,omitempty" validate:"min=0"`
}

// CreatePresetRequest represents a request to create a preset.
type CreatePresetRequest struct {
	Name                 string        `json:"name" validate:"required,min=2,max=200"`
	Description          string        `json:"description,omitempty"`
	DefaultCycleBehavior string        `json:"default_cycle_behavior" validate:"omitempty,oneof=one_time auto_repeat user_defined"`
	Steps                []StepRequest `json:"steps" validate:"required,dive"`
}

// UpdatePresetRequest represents a partial preset update. A nil field keeps
// the current value; providing Steps replaces the whole step list.
type UpdatePresetRequest struct {
	Name                 *string        `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description          *string        `json:"description,omitempty"`
	DefaultCycleBehavior *string        `json:"default_cycle_behavior,omitempty" validate:"omitempty,oneof=one_time auto_repeat user_defined"`
	IsActive             *bool          `json:"is_active,omitempty"`
	Steps                *[]StepRequest `json:"steps,omitempty" validate:"omitempty,dive"`
}

// StepResponse is one step of a preset in API responses.
type StepResponse struct {
	StepOrder    int    `json:"step_order"`
	Method       string `json:"method"`
	IntervalDays int    `json:"interval_days"`
	AssigneeRule string `json:"assignee_rule"`
	AssigneeID   int    `json:"assignee_id,omitempty"`
}

// PresetResponse represents a preset with its steps.
type PresetResponse struct {
	ID                   int            `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	DefaultCycleBehavior string         `json:"default_cycle_behavior"`
	IsActive             bool           `json:"is_active"`
	Steps                []StepResponse `json:"steps"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// CreatePreset validates and stores a new sequence template.
func (s *Service) CreatePreset(ctx context.Context, actorID int, req CreatePresetRequest) (*PresetResponse, error) {
	steps := toTemplate(req.Steps)
	if err := domain.ValidateTemplate(steps); err != nil {
		return nil, err
	}

	behavior := req.DefaultCycleBehavior
	if behavior == "" {
		behavior = string(domain.BehaviorOneTime)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	created, err := tx.Preset.
		Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetDefaultCycleBehavior(preset.DefaultCycleBehavior(behavior)).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}

	builders := make([]*ent.PresetStepCreate, len(req.Steps))
	for i, st := range req.Steps {
		rule := st.AssigneeRule
		if rule == "" {
			rule = string(domain.AssignEntityOwner)
		}
		builders[i] = tx.PresetStep.
			Create().
			SetPresetID(created.ID).
			SetStepOrder(i).
			SetMethod(presetstep.Method(st.Method)).
			SetIntervalDays(st.IntervalDays).
			SetAssigneeRule(presetstep.AssigneeRule(rule)).
			SetAssigneeID(st.AssigneeID)
	}
	createdSteps, err := tx.PresetStep.CreateBulk(builders...).Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create preset steps: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidateListCache(ctx)
	if s.audit != nil {
		_ = s.audit.RecordPreset(ctx, actorID, activitylog.ActionPresetCreated, created.ID)
	}

	return toResponse(created, createdSteps), nil
}

// GetPreset returns a preset with its ordered steps.
func (s *Service) GetPreset(ctx context.Context, presetID int) (*PresetResponse, error) {
	p, err := s.db.Preset.
		Query().
		Where(preset.ID(presetID)).
		WithSteps(func(q *ent.PresetStepQuery) {
			q.Order(ent.Asc(presetstep.FieldStepOrder))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("preset")
		}
		return nil, fmt.Errorf("failed to fetch preset: %w", err)
	}

	return toResponse(p, p.Edges.Steps), nil
}

// ListPresets returns all presets, optionally only active ones. The active
// list is the one the UI's preset picker hits on every open, so it is
// served from cache when possible.
func (s *Service) ListPresets(ctx context.Context, activeOnly bool) ([]PresetResponse, error) {
	if activeOnly && s.cache != nil {
		if cached, err := s.cache.Get(ctx, cache.KeyPresetList); err == nil && cached != "" {
			var out []PresetResponse
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	query := s.db.Preset.Query()
	if activeOnly {
		query = query.Where(preset.IsActive(true))
	}

	presets, err := query.
		WithSteps(func(q *ent.PresetStepQuery) {
			q.Order(ent.Asc(presetstep.FieldStepOrder))
		}).
		Order(ent.Asc(preset.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	out := make([]PresetResponse, len(presets))
	for i, p := range presets {
		out[i] = *toResponse(p, p.Edges.Steps)
	}

	if activeOnly && s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = s.cache.Set(ctx, cache.KeyPresetList, string(data), listCacheTTL)
		}
	}

	return out, nil
}

// UpdatePreset applies a partial update. Replacing steps never touches
// running subscriptions; they keep the snapshot taken at activation.
func (s *Service) UpdatePreset(ctx context.Context, actorID, presetID int, req UpdatePresetRequest) (*PresetResponse, error) {
	if req.Steps != nil {
		if err := domain.ValidateTemplate(toTemplate(*req.Steps)); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.Preset.UpdateOneID(presetID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.DefaultCycleBehavior != nil {
		update = update.SetDefaultCycleBehavior(preset.DefaultCycleBehavior(*req.DefaultCycleBehavior))
	}
	if req.IsActive != nil {
		update = update.SetIsActive(*req.IsActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("preset")
		}
		return nil, fmt.Errorf("failed to update preset: %w", err)
	}

	if req.Steps != nil {
		if _, err := tx.PresetStep.Delete().Where(presetstep.PresetID(presetID)).Exec(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to clear preset steps: %w", err)
		}

		builders := make([]*ent.PresetStepCreate, len(*req.Steps))
		for i, st := range *req.Steps {
			rule := st.AssigneeRule
			if rule == "" {
				rule = string(domain.AssignEntityOwner)
			}
			builders[i] = tx.PresetStep.
				Create().
				SetPresetID(presetID).
				SetStepOrder(i).
				SetMethod(presetstep.Method(st.Method)).
				SetIntervalDays(st.IntervalDays).
				SetAssigneeRule(presetstep.AssigneeRule(rule)).
				SetAssigneeID(st.AssigneeID)
		}
		if _, err := tx.PresetStep.CreateBulk(builders...).Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to recreate preset steps: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidateListCache(ctx)
	if s.audit != nil {
		_ = s.audit.RecordPreset(ctx, actorID, activitylog.ActionPresetUpdated, presetID)
	}

	return s.GetPreset(ctx, updated.ID)
}

// DeletePreset removes a preset. Presets still referenced by subscriptions
// are deactivated instead of removed, so the soft reference on those
// subscriptions keeps resolving; their step snapshots are unaffected
// either way.
func (s *Service) DeletePreset(ctx context.Context, actorID, presetID int) error {
	exists, err := s.db.Preset.Query().Where(preset.ID(presetID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check preset existence: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("preset")
	}

	referenced, err := s.db.Subscription.
		Query().
		Where(subscription.PresetID(presetID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check preset references: %w", err)
	}

	if referenced {
		if err := s.db.Preset.UpdateOneID(presetID).SetIsActive(false).Exec(ctx); err != nil {
			return fmt.Errorf("failed to deactivate preset: %w", err)
		}
	} else {
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		if _, err := tx.PresetStep.Delete().Where(presetstep.PresetID(presetID)).Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete preset steps: %w", err)
		}
		if err := tx.Preset.DeleteOneID(presetID).Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete preset: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	s.invalidateListCache(ctx)
	if s.audit != nil {
		_ = s.audit.RecordPreset(ctx, actorID, activitylog.ActionPresetDeleted, presetID)
	}

	return nil
}

// Template returns the template snapshot of a preset, the shape
// subscriptions freeze at activation time.
func (s *Service) Template(ctx context.Context, presetID int) ([]domain.TemplateStep, error) {
	steps, err := s.db.PresetStep.
		Query().
		Where(presetstep.PresetID(presetID)).
		Order(ent.Asc(presetstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preset steps: %w", err)
	}

	out := make([]domain.TemplateStep, len(steps))
	for i, st := range steps {
		out[i] = domain.TemplateStep{
			Method:       domain.TouchMethod(st.Method),
			IntervalDays: st.IntervalDays,
			AssigneeRule: domain.AssigneeRule(st.AssigneeRule),
			AssigneeID:   st.AssigneeID,
		}
	}
	return out, nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.KeyPresetList)
	}
}

func toTemplate(steps []StepRequest) []domain.TemplateStep {
	out := make([]domain.TemplateStep, len(steps))
	for i, st := range steps {
		rule := domain.AssigneeRule(st.AssigneeRule)
		if st.AssigneeRule == "" {
			rule = domain.AssignEntityOwner
		}
		out[i] = domain.TemplateStep{
			Method:       domain.TouchMethod(st.Method),
			IntervalDays: st.IntervalDays,
			AssigneeRule: rule,
			AssigneeID:   st.AssigneeID,
		}
	}
	return out
}

func toResponse(p *ent.Preset, steps []*ent.PresetStep) *PresetResponse {
	resp := &PresetResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		DefaultCycleBehavior: string(p.DefaultCycleBehavior),
		IsActive:             p.IsActive,
		Steps:                make([]StepResponse, len(steps)),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	for i, st := range steps {
		resp.Steps[i] = StepResponse{
			StepOrder:    st.StepOrder,
			Method:       string(st.Method),
			IntervalDays: st.IntervalDays,
			AssigneeRule: string(st.AssigneeRule),
			AssigneeID:   st.AssigneeID,
		}
	}
	return resp
}
