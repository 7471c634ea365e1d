// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
)

// PresetStepUpdate is the builder for updating PresetStep entities.
type PresetStepUpdate struct {
	config
	hooks    []Hook
	mutation *PresetStepMutation
}

// Where appends a list predicates to the PresetStepUpdate builder.
func (_u *PresetStepUpdate) Where(ps ...predicate.PresetStep) *PresetStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPresetID sets the "preset_id" field.
func (_u *PresetStepUpdate) SetPresetID(v int) *PresetStepUpdate {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillablePresetID(v *int) *PresetStepUpdate {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PresetStepUpdate) SetStepOrder(v int) *PresetStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillableStepOrder(v *int) *PresetStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PresetStepUpdate) AddStepOrder(v int) *PresetStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PresetStepUpdate) SetMethod(v presetstep.Method) *PresetStepUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillableMethod(v *presetstep.Method) *PresetStepUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *PresetStepUpdate) SetIntervalDays(v int) *PresetStepUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillableIntervalDays(v *int) *PresetStepUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *PresetStepUpdate) AddIntervalDays(v int) *PresetStepUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetAssigneeRule sets the "assignee_rule" field.
func (_u *PresetStepUpdate) SetAssigneeRule(v presetstep.AssigneeRule) *PresetStepUpdate {
	_u.mutation.SetAssigneeRule(v)
	return _u
}

// SetNillableAssigneeRule sets the "assignee_rule" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillableAssigneeRule(v *presetstep.AssigneeRule) *PresetStepUpdate {
	if v != nil {
		_u.SetAssigneeRule(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *PresetStepUpdate) SetAssigneeID(v int) *PresetStepUpdate {
	_u.mutation.ResetAssigneeID()
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *PresetStepUpdate) SetNillableAssigneeID(v *int) *PresetStepUpdate {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// AddAssigneeID adds value to the "assignee_id" field.
func (_u *PresetStepUpdate) AddAssigneeID(v int) *PresetStepUpdate {
	_u.mutation.AddAssigneeID(v)
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *PresetStepUpdate) ClearAssigneeID() *PresetStepUpdate {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_u *PresetStepUpdate) SetPreset(v *Preset) *PresetStepUpdate {
	return _u.SetPresetID(v.ID)
}

// Mutation returns the PresetStepMutation object of the builder.
func (_u *PresetStepUpdate) Mutation() *PresetStepMutation {
	return _u.mutation
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (_u *PresetStepUpdate) ClearPreset() *PresetStepUpdate {
	_u.mutation.ClearPreset()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PresetStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresetStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PresetStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresetStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresetStepUpdate) check() error {
	if v, ok := _u.mutation.PresetID(); ok {
		if err := presetstep.PresetIDValidator(v); err != nil {
			return &ValidationError{Name: "preset_id", err: fmt.Errorf(`ent: validator failed for field "PresetStep.preset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := presetstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PresetStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := presetstep.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "PresetStep.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := presetstep.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "PresetStep.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeRule(); ok {
		if err := presetstep.AssigneeRuleValidator(v); err != nil {
			return &ValidationError{Name: "assignee_rule", err: fmt.Errorf(`ent: validator failed for field "PresetStep.assignee_rule": %w`, err)}
		}
	}
	if _u.mutation.PresetCleared() && len(_u.mutation.PresetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PresetStep.preset"`)
	}
	return nil
}

func (_u *PresetStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presetstep.Table, presetstep.Columns, sqlgraph.NewFieldSpec(presetstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(presetstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(presetstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(presetstep.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(presetstep.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(presetstep.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssigneeRule(); ok {
		_spec.SetField(presetstep.FieldAssigneeRule, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(presetstep.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeID(); ok {
		_spec.AddField(presetstep.FieldAssigneeID, field.TypeInt, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(presetstep.FieldAssigneeID, field.TypeInt)
	}
	if _u.mutation.PresetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PresetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presetstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PresetStepUpdateOne is the builder for updating a single PresetStep entity.
type PresetStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PresetStepMutation
}

// SetPresetID sets the "preset_id" field.
func (_u *PresetStepUpdateOne) SetPresetID(v int) *PresetStepUpdateOne {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillablePresetID(v *int) *PresetStepUpdateOne {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PresetStepUpdateOne) SetStepOrder(v int) *PresetStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillableStepOrder(v *int) *PresetStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PresetStepUpdateOne) AddStepOrder(v int) *PresetStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PresetStepUpdateOne) SetMethod(v presetstep.Method) *PresetStepUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillableMethod(v *presetstep.Method) *PresetStepUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *PresetStepUpdateOne) SetIntervalDays(v int) *PresetStepUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillableIntervalDays(v *int) *PresetStepUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *PresetStepUpdateOne) AddIntervalDays(v int) *PresetStepUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetAssigneeRule sets the "assignee_rule" field.
func (_u *PresetStepUpdateOne) SetAssigneeRule(v presetstep.AssigneeRule) *PresetStepUpdateOne {
	_u.mutation.SetAssigneeRule(v)
	return _u
}

// SetNillableAssigneeRule sets the "assignee_rule" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillableAssigneeRule(v *presetstep.AssigneeRule) *PresetStepUpdateOne {
	if v != nil {
		_u.SetAssigneeRule(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *PresetStepUpdateOne) SetAssigneeID(v int) *PresetStepUpdateOne {
	_u.mutation.ResetAssigneeID()
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *PresetStepUpdateOne) SetNillableAssigneeID(v *int) *PresetStepUpdateOne {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// AddAssigneeID adds value to the "assignee_id" field.
func (_u *PresetStepUpdateOne) AddAssigneeID(v int) *PresetStepUpdateOne {
	_u.mutation.AddAssigneeID(v)
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *PresetStepUpdateOne) ClearAssigneeID() *PresetStepUpdateOne {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_u *PresetStepUpdateOne) SetPreset(v *Preset) *PresetStepUpdateOne {
	return _u.SetPresetID(v.ID)
}

// Mutation returns the PresetStepMutation object of the builder.
func (_u *PresetStepUpdateOne) Mutation() *PresetStepMutation {
	return _u.mutation
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (_u *PresetStepUpdateOne) ClearPreset() *PresetStepUpdateOne {
	_u.mutation.ClearPreset()
	return _u
}

// Where appends a list predicates to the PresetStepUpdate builder.
func (_u *PresetStepUpdateOne) Where(ps ...predicate.PresetStep) *PresetStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PresetStepUpdateOne) Select(field string, fields ...string) *PresetStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PresetStep entity.
func (_u *PresetStepUpdateOne) Save(ctx context.Context) (*PresetStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresetStepUpdateOne) SaveX(ctx context.Context) *PresetStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PresetStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresetStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresetStepUpdateOne) check() error {
	if v, ok := _u.mutation.PresetID(); ok {
		if err := presetstep.PresetIDValidator(v); err != nil {
			return &ValidationError{Name: "preset_id", err: fmt.Errorf(`ent: validator failed for field "PresetStep.preset_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := presetstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "PresetStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := presetstep.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "PresetStep.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := presetstep.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "PresetStep.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeRule(); ok {
		if err := presetstep.AssigneeRuleValidator(v); err != nil {
			return &ValidationError{Name: "assignee_rule", err: fmt.Errorf(`ent: validator failed for field "PresetStep.assignee_rule": %w`, err)}
		}
	}
	if _u.mutation.PresetCleared() && len(_u.mutation.PresetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PresetStep.preset"`)
	}
	return nil
}

func (_u *PresetStepUpdateOne) sqlSave(ctx context.Context) (_node *PresetStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presetstep.Table, presetstep.Columns, sqlgraph.NewFieldSpec(presetstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PresetStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, presetstep.FieldID)
		for _, f := range fields {
			if !presetstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != presetstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(presetstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(presetstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(presetstep.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(presetstep.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(presetstep.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssigneeRule(); ok {
		_spec.SetField(presetstep.FieldAssigneeRule, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(presetstep.FieldAssigneeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssigneeID(); ok {
		_spec.AddField(presetstep.FieldAssigneeID, field.TypeInt, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(presetstep.FieldAssigneeID, field.TypeInt)
	}
	if _u.mutation.PresetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PresetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PresetStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presetstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
