// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchLogCreate is the builder for creating a TouchLog entity.
type TouchLogCreate struct {
	config
	mutation *TouchLogMutation
	hooks    []Hook
}

// SetTouchID sets the "touch_id" field.
func (_c *TouchLogCreate) SetTouchID(v int) *TouchLogCreate {
	_c.mutation.SetTouchID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *TouchLogCreate) SetOutcome(v string) *TouchLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TouchLogCreate) SetNotes(v string) *TouchLogCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TouchLogCreate) SetNillableNotes(v *string) *TouchLogCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetFollowUp sets the "follow_up" field.
func (_c *TouchLogCreate) SetFollowUp(v touchlog.FollowUp) *TouchLogCreate {
	_c.mutation.SetFollowUp(v)
	return _c
}

// SetNillableFollowUp sets the "follow_up" field if the given value is not nil.
func (_c *TouchLogCreate) SetNillableFollowUp(v *touchlog.FollowUp) *TouchLogCreate {
	if v != nil {
		_c.SetFollowUp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TouchLogCreate) SetCreatedAt(v time.Time) *TouchLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TouchLogCreate) SetNillableCreatedAt(v *time.Time) *TouchLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTouch sets the "touch" edge to the Touch entity.
func (_c *TouchLogCreate) SetTouch(v *Touch) *TouchLogCreate {
	return _c.SetTouchID(v.ID)
}

// Mutation returns the TouchLogMutation object of the builder.
func (_c *TouchLogCreate) Mutation() *TouchLogMutation {
	return _c.mutation
}

// Save creates the TouchLog in the database.
func (_c *TouchLogCreate) Save(ctx context.Context) (*TouchLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TouchLogCreate) SaveX(ctx context.Context) *TouchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TouchLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TouchLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TouchLogCreate) defaults() {
	if _, ok := _c.mutation.FollowUp(); !ok {
		v := touchlog.DefaultFollowUp
		_c.mutation.SetFollowUp(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := touchlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TouchLogCreate) check() error {
	if _, ok := _c.mutation.TouchID(); !ok {
		return &ValidationError{Name: "touch_id", err: errors.New(`ent: missing required field "TouchLog.touch_id"`)}
	}
	if v, ok := _c.mutation.TouchID(); ok {
		if err := touchlog.TouchIDValidator(v); err != nil {
			return &ValidationError{Name: "touch_id", err: fmt.Errorf(`ent: validator failed for field "TouchLog.touch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "TouchLog.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := touchlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TouchLog.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FollowUp(); !ok {
		return &ValidationError{Name: "follow_up", err: errors.New(`ent: missing required field "TouchLog.follow_up"`)}
	}
	if v, ok := _c.mutation.FollowUp(); ok {
		if err := touchlog.FollowUpValidator(v); err != nil {
			return &ValidationError{Name: "follow_up", err: fmt.Errorf(`ent: validator failed for field "TouchLog.follow_up": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TouchLog.created_at"`)}
	}
	if len(_c.mutation.TouchIDs()) == 0 {
		return &ValidationError{Name: "touch", err: errors.New(`ent: missing required edge "TouchLog.touch"`)}
	}
	return nil
}

func (_c *TouchLogCreate) sqlSave(ctx context.Context) (*TouchLog, error) {
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

func (_c *TouchLogCreate) createSpec() (*TouchLog, *sqlgraph.CreateSpec) {
	var (
		_node = &TouchLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(touchlog.Table, sqlgraph.NewFieldSpec(touchlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(touchlog.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(touchlog.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.FollowUp(); ok {
		_spec.SetField(touchlog.FieldFollowUp, field.TypeEnum, value)
		_node.FollowUp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(touchlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TouchIDs(); len(nodes) > 0 {
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
		_node.TouchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TouchLogCreateBulk is the builder for creating many TouchLog entities in bulk.
type TouchLogCreateBulk struct {
	config
	err      error
	builders []*TouchLogCreate
}

// Save creates the TouchLog entities in the database.
func (_c *TouchLogCreateBulk) Save(ctx context.Context) ([]*TouchLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TouchLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TouchLogMutation)
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
func (_c *TouchLogCreateBulk) SaveX(ctx context.Context) []*TouchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TouchLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TouchLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
