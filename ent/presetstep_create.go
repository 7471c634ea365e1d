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
)

// PresetStepCreate is the builder for creating a PresetStep entity.
type PresetStepCreate struct {
	config
	mutation *PresetStepMutation
	hooks    []Hook
}

// SetPresetID sets the "preset_id" field.
func (_c *PresetStepCreate) SetPresetID(v int) *PresetStepCreate {
	_c.mutation.SetPresetID(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *PresetStepCreate) SetStepOrder(v int) *PresetStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *PresetStepCreate) SetMethod(v presetstep.Method) *PresetStepCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *PresetStepCreate) SetIntervalDays(v int) *PresetStepCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetAssigneeRule sets the "assignee_rule" field.
func (_c *PresetStepCreate) SetAssigneeRule(v presetstep.AssigneeRule) *PresetStepCreate {
	_c.mutation.SetAssigneeRule(v)
	return _c
}

// SetNillableAssigneeRule sets the "assignee_rule" field if the given value is not nil.
func (_c *PresetStepCreate) SetNillableAssigneeRule(v *presetstep.AssigneeRule) *PresetStepCreate {
	if v != nil {
		_c.SetAssigneeRule(*v)
	}
	return _c
}

// SetAssigneeID sets the "assignee_id" field.
func (_c *PresetStepCreate) SetAssigneeID(v int) *PresetStepCreate {
	_c.mutation.SetAssigneeID(v)
	return _c
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_c *PresetStepCreate) SetNillableAssigneeID(v *int) *PresetStepCreate {
	if v != nil {
		_c.SetAssigneeID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PresetStepCreate) SetCreatedAt(v time.Time) *PresetStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PresetStepCreate) SetNillableCreatedAt(v *time.Time) *PresetStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_c *PresetStepCreate) SetPreset(v *Preset) *PresetStepCreate {
	return _c.SetPresetID(v.ID)
}

// Mutation returns the PresetStepMutation object of the builder.
func (_c *PresetStepCreate) Mutation() *PresetStepMutation {
	return _c.mutation
}

// Save creates the PresetStep in the database.
func (_c *PresetStepCreate) Save(ctx context.Context) (*PresetStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PresetStepCreate) SaveX(ctx context.Context) *PresetStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresetStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresetStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PresetStepCreate) defaults() {
	if _, ok := _c.mutation.AssigneeRule(); !ok {
		v := presetstep.DefaultAssigneeRule
		_c.mutation.SetAssigneeRule(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := presetstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PresetStepCreate) check() error {
	if _, ok := _c.mutation.PresetID(); !ok {
		return &ValidationError{Name: "preset_id", err: errors.New(`ent: missing required field "PresetStep.preset_id"`)}
	}
	if v, ok := _c.mutation.PresetID(); ok {
		if err := presetstep.PresetIDValidator(v); err != nil {
			return &ValidationError{Name: "preset_id", err: fmt.Errorf(`ent: validator failed for field "PresetStep.preset_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "PresetStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := presetstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PresetStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "PresetStep.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := presetstep.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "PresetStep.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "PresetStep.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := presetstep.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "PresetStep.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeRule(); !ok {
		return &ValidationError{Name: "assignee_rule", err: errors.New(`ent: missing required field "PresetStep.assignee_rule"`)}
	}
	if v, ok := _c.mutation.AssigneeRule(); ok {
		if err := presetstep.AssigneeRuleValidator(v); err != nil {
			return &ValidationError{Name: "assignee_rule", err: fmt.Errorf(`ent: validator failed for field "PresetStep.assignee_rule": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PresetStep.created_at"`)}
	}
	if len(_c.mutation.PresetIDs()) == 0 {
		return &ValidationError{Name: "preset", err: errors.New(`ent: missing required edge "PresetStep.preset"`)}
	}
	return nil
}

func (_c *PresetStepCreate) sqlSave(ctx context.Context) (*PresetStep, error) {
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

func (_c *PresetStepCreate) createSpec() (*PresetStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PresetStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(presetstep.Table, sqlgraph.NewFieldSpec(presetstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(presetstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(presetstep.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(presetstep.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.AssigneeRule(); ok {
		_spec.SetField(presetstep.FieldAssigneeRule, field.TypeEnum, value)
		_node.AssigneeRule = value
	}
	if value, ok := _c.mutation.AssigneeID(); ok {
		_spec.SetField(presetstep.FieldAssigneeID, field.TypeInt, value)
		_node.AssigneeID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(presetstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PresetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   presetstep.PresetTable,
			Columns: []string{presetstep.PresetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(preset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PresetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PresetStepCreateBulk is the builder for creating many PresetStep entities in bulk.
type PresetStepCreateBulk struct {
	config
	err      error
	builders []*PresetStepCreate
}

// Save creates the PresetStep entities in the database.
func (_c *PresetStepCreateBulk) Save(ctx context.Context) ([]*PresetStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PresetStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PresetStepMutation)
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
func (_c *PresetStepCreateBulk) SaveX(ctx context.Context) []*PresetStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresetStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresetStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
