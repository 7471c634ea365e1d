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
	"github.com/jordanlanch/touchpoint/ent/presetstep"
	"github.com/jordanlanch/touchpoint/ent/subscription"
)

// PresetCreate is the builder for creating a Preset entity.
type PresetCreate struct {
	config
	mutation *PresetMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PresetCreate) SetName(v string) *PresetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PresetCreate) SetDescription(v string) *PresetCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PresetCreate) SetNillableDescription(v *string) *PresetCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDefaultCycleBehavior sets the "default_cycle_behavior" field.
func (_c *PresetCreate) SetDefaultCycleBehavior(v preset.DefaultCycleBehavior) *PresetCreate {
	_c.mutation.SetDefaultCycleBehavior(v)
	return _c
}

// SetNillableDefaultCycleBehavior sets the "default_cycle_behavior" field if the given value is not nil.
func (_c *PresetCreate) SetNillableDefaultCycleBehavior(v *preset.DefaultCycleBehavior) *PresetCreate {
	if v != nil {
		_c.SetDefaultCycleBehavior(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PresetCreate) SetIsActive(v bool) *PresetCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PresetCreate) SetNillableIsActive(v *bool) *PresetCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PresetCreate) SetCreatedAt(v time.Time) *PresetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PresetCreate) SetNillableCreatedAt(v *time.Time) *PresetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PresetCreate) SetUpdatedAt(v time.Time) *PresetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PresetCreate) SetNillableUpdatedAt(v *time.Time) *PresetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddStepIDs adds the "steps" edge to the PresetStep entity by IDs.
func (_c *PresetCreate) AddStepIDs(ids ...int) *PresetCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the PresetStep entity.
func (_c *PresetCreate) AddSteps(v ...*PresetStep) *PresetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_c *PresetCreate) AddSubscriptionIDs(ids ...int) *PresetCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_c *PresetCreate) AddSubscriptions(v ...*Subscription) *PresetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// Mutation returns the PresetMutation object of the builder.
func (_c *PresetCreate) Mutation() *PresetMutation {
	return _c.mutation
}

// Save creates the Preset in the database.
func (_c *PresetCreate) Save(ctx context.Context) (*Preset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PresetCreate) SaveX(ctx context.Context) *Preset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PresetCreate) defaults() {
	if _, ok := _c.mutation.DefaultCycleBehavior(); !ok {
		v := preset.DefaultDefaultCycleBehavior
		_c.mutation.SetDefaultCycleBehavior(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := preset.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := preset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := preset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PresetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Preset.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := preset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Preset.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultCycleBehavior(); !ok {
		return &ValidationError{Name: "default_cycle_behavior", err: errors.New(`ent: missing required field "Preset.default_cycle_behavior"`)}
	}
	if v, ok := _c.mutation.DefaultCycleBehavior(); ok {
		if err := preset.DefaultCycleBehaviorValidator(v); err != nil {
			return &ValidationError{Name: "default_cycle_behavior", err: fmt.Errorf(`ent: validator failed for field "Preset.default_cycle_behavior": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Preset.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Preset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Preset.updated_at"`)}
	}
	return nil
}

func (_c *PresetCreate) sqlSave(ctx context.Context) (*Preset, error) {
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

func (_c *PresetCreate) createSpec() (*Preset, *sqlgraph.CreateSpec) {
	var (
		_node = &Preset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preset.Table, sqlgraph.NewFieldSpec(preset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(preset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(preset.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DefaultCycleBehavior(); ok {
		_spec.SetField(preset.FieldDefaultCycleBehavior, field.TypeEnum, value)
		_node.DefaultCycleBehavior = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(preset.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(preset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(preset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   preset.StepsTable,
			Columns: []string{preset.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(presetstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   preset.SubscriptionsTable,
			Columns: []string{preset.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PresetCreateBulk is the builder for creating many Preset entities in bulk.
type PresetCreateBulk struct {
	config
	err      error
	builders []*PresetCreate
}

// Save creates the Preset entities in the database.
func (_c *PresetCreateBulk) Save(ctx context.Context) ([]*Preset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Preset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PresetMutation)
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
func (_c *PresetCreateBulk) SaveX(ctx context.Context) []*Preset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
