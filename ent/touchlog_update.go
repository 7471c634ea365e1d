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
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchLogUpdate is the builder for updating TouchLog entities.
type TouchLogUpdate struct {
	config
	hooks    []Hook
	mutation *TouchLogMutation
}

// Where appends a list predicates to the TouchLogUpdate builder.
func (_u *TouchLogUpdate) Where(ps ...predicate.TouchLog) *TouchLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTouchID sets the "touch_id" field.
func (_u *TouchLogUpdate) SetTouchID(v int) *TouchLogUpdate {
	_u.mutation.SetTouchID(v)
	return _u
}

// SetNillableTouchID sets the "touch_id" field if the given value is not nil.
func (_u *TouchLogUpdate) SetNillableTouchID(v *int) *TouchLogUpdate {
	if v != nil {
		_u.SetTouchID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TouchLogUpdate) SetOutcome(v string) *TouchLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TouchLogUpdate) SetNillableOutcome(v *string) *TouchLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TouchLogUpdate) SetNotes(v string) *TouchLogUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TouchLogUpdate) SetNillableNotes(v *string) *TouchLogUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TouchLogUpdate) ClearNotes() *TouchLogUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetFollowUp sets the "follow_up" field.
func (_u *TouchLogUpdate) SetFollowUp(v touchlog.FollowUp) *TouchLogUpdate {
	_u.mutation.SetFollowUp(v)
	return _u
}

// SetNillableFollowUp sets the "follow_up" field if the given value is not nil.
func (_u *TouchLogUpdate) SetNillableFollowUp(v *touchlog.FollowUp) *TouchLogUpdate {
	if v != nil {
		_u.SetFollowUp(*v)
	}
	return _u
}

// SetTouch sets the "touch" edge to the Touch entity.
func (_u *TouchLogUpdate) SetTouch(v *Touch) *TouchLogUpdate {
	return _u.SetTouchID(v.ID)
}

// Mutation returns the TouchLogMutation object of the builder.
func (_u *TouchLogUpdate) Mutation() *TouchLogMutation {
	return _u.mutation
}

// ClearTouch clears the "touch" edge to the Touch entity.
func (_u *TouchLogUpdate) ClearTouch() *TouchLogUpdate {
	_u.mutation.ClearTouch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TouchLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TouchLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TouchLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TouchLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TouchLogUpdate) check() error {
	if v, ok := _u.mutation.TouchID(); ok {
		if err := touchlog.TouchIDValidator(v); err != nil {
			return &ValidationError{Name: "touch_id", err: fmt.Errorf(`ent: validator failed for field "TouchLog.touch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := touchlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TouchLog.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowUp(); ok {
		if err := touchlog.FollowUpValidator(v); err != nil {
			return &ValidationError{Name: "follow_up", err: fmt.Errorf(`ent: validator failed for field "TouchLog.follow_up": %w`, err)}
		}
	}
	if _u.mutation.TouchCleared() && len(_u.mutation.TouchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TouchLog.touch"`)
	}
	return nil
}

func (_u *TouchLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(touchlog.Table, touchlog.Columns, sqlgraph.NewFieldSpec(touchlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(touchlog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(touchlog.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(touchlog.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUp(); ok {
		_spec.SetField(touchlog.FieldFollowUp, field.TypeEnum, value)
	}
	if _u.mutation.TouchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   touchlog.TouchTable,
			Columns: []string{touchlog.TouchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TouchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   touchlog.TouchTable,
			Columns: []string{touchlog.TouchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{touchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TouchLogUpdateOne is the builder for updating a single TouchLog entity.
type TouchLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TouchLogMutation
}

// SetTouchID sets the "touch_id" field.
func (_u *TouchLogUpdateOne) SetTouchID(v int) *TouchLogUpdateOne {
	_u.mutation.SetTouchID(v)
	return _u
}

// SetNillableTouchID sets the "touch_id" field if the given value is not nil.
func (_u *TouchLogUpdateOne) SetNillableTouchID(v *int) *TouchLogUpdateOne {
	if v != nil {
		_u.SetTouchID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TouchLogUpdateOne) SetOutcome(v string) *TouchLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TouchLogUpdateOne) SetNillableOutcome(v *string) *TouchLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TouchLogUpdateOne) SetNotes(v string) *TouchLogUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TouchLogUpdateOne) SetNillableNotes(v *string) *TouchLogUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TouchLogUpdateOne) ClearNotes() *TouchLogUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetFollowUp sets the "follow_up" field.
func (_u *TouchLogUpdateOne) SetFollowUp(v touchlog.FollowUp) *TouchLogUpdateOne {
	_u.mutation.SetFollowUp(v)
	return _u
}

// SetNillableFollowUp sets the "follow_up" field if the given value is not nil.
func (_u *TouchLogUpdateOne) SetNillableFollowUp(v *touchlog.FollowUp) *TouchLogUpdateOne {
	if v != nil {
		_u.SetFollowUp(*v)
	}
	return _u
}

// SetTouch sets the "touch" edge to the Touch entity.
func (_u *TouchLogUpdateOne) SetTouch(v *Touch) *TouchLogUpdateOne {
	return _u.SetTouchID(v.ID)
}

// Mutation returns the TouchLogMutation object of the builder.
func (_u *TouchLogUpdateOne) Mutation() *TouchLogMutation {
	return _u.mutation
}

// ClearTouch clears the "touch" edge to the Touch entity.
func (_u *TouchLogUpdateOne) ClearTouch() *TouchLogUpdateOne {
	_u.mutation.ClearTouch()
	return _u
}

// Where appends a list predicates to the TouchLogUpdate builder.
func (_u *TouchLogUpdateOne) Where(ps ...predicate.TouchLog) *TouchLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TouchLogUpdateOne) Select(field string, fields ...string) *TouchLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TouchLog entity.
func (_u *TouchLogUpdateOne) Save(ctx context.Context) (*TouchLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TouchLogUpdateOne) SaveX(ctx context.Context) *TouchLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TouchLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TouchLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TouchLogUpdateOne) check() error {
	if v, ok := _u.mutation.TouchID(); ok {
		if err := touchlog.TouchIDValidator(v); err != nil {
			return &ValidationError{Name: "touch_id", err: fmt.Errorf(`ent: validator failed for field "TouchLog.touch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := touchlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TouchLog.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FollowUp(); ok {
		if err := touchlog.FollowUpValidator(v); err != nil {
			return &ValidationError{Name: "follow_up", err: fmt.Errorf(`ent: validator failed for field "TouchLog.follow_up": %w`, err)}
		}
	}
	if _u.mutation.TouchCleared() && len(_u.mutation.TouchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TouchLog.touch"`)
	}
	return nil
}

func (_u *TouchLogUpdateOne) sqlSave(ctx context.Context) (_node *TouchLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(touchlog.Table, touchlog.Columns, sqlgraph.NewFieldSpec(touchlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TouchLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, touchlog.FieldID)
		for _, f := range fields {
			if !touchlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != touchlog.FieldID {
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
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(touchlog.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(touchlog.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(touchlog.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FollowUp(); ok {
		_spec.SetField(touchlog.FieldFollowUp, field.TypeEnum, value)
	}
	if _u.mutation.TouchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   touchlog.TouchTable,
			Columns: []string{touchlog.TouchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TouchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   touchlog.TouchTable,
			Columns: []string{touchlog.TouchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TouchLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{touchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
