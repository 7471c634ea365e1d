// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

// SubscriptionCreate is the builder for creating a Subscription entity.
type SubscriptionCreate struct {
	config
	mutation *SubscriptionMutation
	hooks    []Hook
}

// SetEntityType sets the "entity_type" field.
func (_c *SubscriptionCreate) SetEntityType(v subscription.EntityType) *SubscriptionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *SubscriptionCreate) SetEntityID(v int) *SubscriptionCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetEntityName sets the "entity_name" field.
func (_c *SubscriptionCreate) SetEntityName(v string) *SubscriptionCreate {
	_c.mutation.SetEntityName(v)
	return _c
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableEntityName(v *string) *SubscriptionCreate {
	if v != nil {
		_c.SetEntityName(*v)
	}
	return _c
}

// SetEntityPhone sets the "entity_phone" field.
func (_c *SubscriptionCreate) SetEntityPhone(v string) *SubscriptionCreate {
	_c.mutation.SetEntityPhone(v)
	return _c
}

// SetNillableEntityPhone sets the "entity_phone" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableEntityPhone(v *string) *SubscriptionCreate {
	if v != nil {
		_c.SetEntityPhone(*v)
	}
	return _c
}

// SetPresetID sets the "preset_id" field.
func (_c *SubscriptionCreate) SetPresetID(v int) *SubscriptionCreate {
	_c.mutation.SetPresetID(v)
	return _c
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillablePresetID(v *int) *SubscriptionCreate {
	if v != nil {
		_c.SetPresetID(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *SubscriptionCreate) SetSteps(v []domain.TemplateStep) *SubscriptionCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetCycleBehavior sets the "cycle_behavior" field.
func (_c *SubscriptionCreate) SetCycleBehavior(v subscription.CycleBehavior) *SubscriptionCreate {
	_c.mutation.SetCycleBehavior(v)
	return _c
}

// SetNillableCycleBehavior sets the "cycle_behavior" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableCycleBehavior(v *subscription.CycleBehavior) *SubscriptionCreate {
	if v != nil {
		_c.SetCycleBehavior(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *SubscriptionCreate) SetAssignedTo(v int) *SubscriptionCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubscriptionCreate) SetStatus(v subscription.Status) *SubscriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableStatus(v *subscription.Status) *SubscriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCycleCount sets the "cycle_count" field.
func (_c *SubscriptionCreate) SetCycleCount(v int) *SubscriptionCreate {
	_c.mutation.SetCycleCount(v)
	return _c
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableCycleCount(v *int) *SubscriptionCreate {
	if v != nil {
		_c.SetCycleCount(*v)
	}
	return _c
}

// SetMaxCycles sets the "max_cycles" field.
func (_c *SubscriptionCreate) SetMaxCycles(v int) *SubscriptionCreate {
	_c.mutation.SetMaxCycles(v)
	return _c
}

// SetNillableMaxCycles sets the "max_cycles" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableMaxCycles(v *int) *SubscriptionCreate {
	if v != nil {
		_c.SetMaxCycles(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *SubscriptionCreate) SetCurrentStep(v int) *SubscriptionCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableCurrentStep(v *int) *SubscriptionCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetPauseUntil sets the "pause_until" field.
func (_c *SubscriptionCreate) SetPauseUntil(v time.Time) *SubscriptionCreate {
	_c.mutation.SetPauseUntil(v)
	return _c
}

// SetNillablePauseUntil sets the "pause_until" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillablePauseUntil(v *time.Time) *SubscriptionCreate {
	if v != nil {
		_c.SetPauseUntil(*v)
	}
	return _c
}

// SetPauseReason sets the "pause_reason" field.
func (_c *SubscriptionCreate) SetPauseReason(v string) *SubscriptionCreate {
	_c.mutation.SetPauseReason(v)
	return _c
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillablePauseReason(v *string) *SubscriptionCreate {
	if v != nil {
		_c.SetPauseReason(*v)
	}
	return _c
}

// SetSkipWeekends sets the "skip_weekends" field.
func (_c *SubscriptionCreate) SetSkipWeekends(v bool) *SubscriptionCreate {
	_c.mutation.SetSkipWeekends(v)
	return _c
}

// SetNillableSkipWeekends sets the "skip_weekends" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableSkipWeekends(v *bool) *SubscriptionCreate {
	if v != nil {
		_c.SetSkipWeekends(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SubscriptionCreate) SetStartedAt(v time.Time) *SubscriptionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableStartedAt(v *time.Time) *SubscriptionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubscriptionCreate) SetCreatedAt(v time.Time) *SubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableCreatedAt(v *time.Time) *SubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubscriptionCreate) SetUpdatedAt(v time.Time) *SubscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubscriptionCreate) SetNillableUpdatedAt(v *time.Time) *SubscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_c *SubscriptionCreate) SetPreset(v *Preset) *SubscriptionCreate {
	return _c.SetPresetID(v.ID)
}

// AddTouchIDs adds the "touches" edge to the Touch entity by IDs.
func (_c *SubscriptionCreate) AddTouchIDs(ids ...int) *SubscriptionCreate {
	_c.mutation.AddTouchIDs(ids...)
	return _c
}

// AddTouches adds the "touches" edges to the Touch entity.
func (_c *SubscriptionCreate) AddTouches(v ...*Touch) *SubscriptionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTouchIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_c *SubscriptionCreate) Mutation() *SubscriptionMutation {
	return _c.mutation
}

// Save creates the Subscription in the database.
func (_c *SubscriptionCreate) Save(ctx context.Context) (*Subscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubscriptionCreate) SaveX(ctx context.Context) *Subscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubscriptionCreate) defaults() {
	if _, ok := _c.mutation.CycleBehavior(); !ok {
		v := subscription.DefaultCycleBehavior
		_c.mutation.SetCycleBehavior(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subscription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CycleCount(); !ok {
		v := subscription.DefaultCycleCount
		_c.mutation.SetCycleCount(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := subscription.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.SkipWeekends(); !ok {
		v := subscription.DefaultSkipWeekends
		_c.mutation.SetSkipWeekends(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := subscription.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subscription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubscriptionCreate) check() error {
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Subscription.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := subscription.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Subscription.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := subscription.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EntityName(); ok {
		if err := subscription.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EntityPhone(); ok {
		if err := subscription.EntityPhoneValidator(v); err != nil {
			return &ValidationError{Name: "entity_phone", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "Subscription.steps"`)}
	}
	if _, ok := _c.mutation.CycleBehavior(); !ok {
		return &ValidationError{Name: "cycle_behavior", err: errors.New(`ent: missing required field "Subscription.cycle_behavior"`)}
	}
	if v, ok := _c.mutation.CycleBehavior(); ok {
		if err := subscription.CycleBehaviorValidator(v); err != nil {
			return &ValidationError{Name: "cycle_behavior", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_behavior": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedTo(); !ok {
		return &ValidationError{Name: "assigned_to", err: errors.New(`ent: missing required field "Subscription.assigned_to"`)}
	}
	if v, ok := _c.mutation.AssignedTo(); ok {
		if err := subscription.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Subscription.assigned_to": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Subscription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CycleCount(); !ok {
		return &ValidationError{Name: "cycle_count", err: errors.New(`ent: missing required field "Subscription.cycle_count"`)}
	}
	if v, ok := _c.mutation.CycleCount(); ok {
		if err := subscription.CycleCountValidator(v); err != nil {
			return &ValidationError{Name: "cycle_count", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Subscription.current_step"`)}
	}
	if v, ok := _c.mutation.CurrentStep(); ok {
		if err := subscription.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Subscription.current_step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkipWeekends(); !ok {
		return &ValidationError{Name: "skip_weekends", err: errors.New(`ent: missing required field "Subscription.skip_weekends"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Subscription.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subscription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subscription.updated_at"`)}
	}
	return nil
}

func (_c *SubscriptionCreate) sqlSave(ctx context.Context) (*Subscription, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubscriptionCreate) createSpec() (*Subscription, *sqlgraph.CreateSpec) {
	var (
		_node = &Subscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subscription.Table, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(subscription.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(subscription.FieldEntityID, field.TypeInt, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.EntityName(); ok {
		_spec.SetField(subscription.FieldEntityName, field.TypeString, value)
		_node.EntityName = value
	}
	if value, ok := _c.mutation.EntityPhone(); ok {
		_spec.SetField(subscription.FieldEntityPhone, field.TypeString, value)
		_node.EntityPhone = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(subscription.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.CycleBehavior(); ok {
		_spec.SetField(subscription.FieldCycleBehavior, field.TypeEnum, value)
		_node.CycleBehavior = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(subscription.FieldAssignedTo, field.TypeInt, value)
		_node.AssignedTo = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CycleCount(); ok {
		_spec.SetField(subscription.FieldCycleCount, field.TypeInt, value)
		_node.CycleCount = value
	}
	if value, ok := _c.mutation.MaxCycles(); ok {
		_spec.SetField(subscription.FieldMaxCycles, field.TypeInt, value)
		_node.MaxCycles = &value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(subscription.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.PauseUntil(); ok {
		_spec.SetField(subscription.FieldPauseUntil, field.TypeTime, value)
		_node.PauseUntil = &value
	}
	if value, ok := _c.mutation.PauseReason(); ok {
		_spec.SetField(subscription.FieldPauseReason, field.TypeString, value)
		_node.PauseReason = value
	}
	if value, ok := _c.mutation.SkipWeekends(); ok {
		_spec.SetField(subscription.FieldSkipWeekends, field.TypeBool, value)
		_node.SkipWeekends = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(subscription.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PresetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscription.PresetTable,
			Columns: []string{subscription.PresetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(preset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PresetID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TouchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subscription.TouchesTable,
			Columns: []string{subscription.TouchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubscriptionCreateBulk is the builder for creating many Subscription entities in bulk.
type SubscriptionCreateBulk struct {
	config
	err      error
	builders []*SubscriptionCreate
}

// Save creates the Subscription entities in the database.
func (_c *SubscriptionCreateBulk) Save(ctx context.Context) ([]*Subscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubscriptionCreateBulk) SaveX(ctx context.Context) []*Subscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
