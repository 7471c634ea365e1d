// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchCreate is the builder for creating a Touch entity.
type TouchCreate struct {
	config
	mutation *TouchMutation
	hooks    []Hook
}

// SetSubscriptionID sets the "subscription_id" field.
func (_c *TouchCreate) SetSubscriptionID(v int) *TouchCreate {
	_c.mutation.SetSubscriptionID(v)
	return _c
}

// SetCycle sets the "cycle" field.
func (_c *TouchCreate) SetCycle(v int) *TouchCreate {
	_c.mutation.SetCycle(v)
	return _c
}

// SetSequenceIndex sets the "sequence_index" field.
func (_c *TouchCreate) SetSequenceIndex(v int) *TouchCreate {
	_c.mutation.SetSequenceIndex(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *TouchCreate) SetMethod(v touch.Method) *TouchCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *TouchCreate) SetScheduledDate(v time.Time) *TouchCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetScheduledTime sets the "scheduled_time" field.
func (_c *TouchCreate) SetScheduledTime(v string) *TouchCreate {
	_c.mutation.SetScheduledTime(v)
	return _c
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_c *TouchCreate) SetNillableScheduledTime(v *string) *TouchCreate {
	if v != nil {
		_c.SetScheduledTime(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *TouchCreate) SetAssignedTo(v int) *TouchCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TouchCreate) SetStatus(v touch.Status) *TouchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TouchCreate) SetNillableStatus(v *touch.Status) *TouchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *TouchCreate) SetOutcome(v string) *TouchCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *TouchCreate) SetNillableOutcome(v *string) *TouchCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_c *TouchCreate) SetOutcomeNotes(v string) *TouchCreate {
	_c.mutation.SetOutcomeNotes(v)
	return _c
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_c *TouchCreate) SetNillableOutcomeNotes(v *string) *TouchCreate {
	if v != nil {
		_c.SetOutcomeNotes(*v)
	}
	return _c
}

// SetLinkedTaskID sets the "linked_task_id" field.
func (_c *TouchCreate) SetLinkedTaskID(v string) *TouchCreate {
	_c.mutation.SetLinkedTaskID(v)
	return _c
}

// SetNillableLinkedTaskID sets the "linked_task_id" field if the given value is not nil.
func (_c *TouchCreate) SetNillableLinkedTaskID(v *string) *TouchCreate {
	if v != nil {
		_c.SetLinkedTaskID(*v)
	}
	return _c
}

// SetLinkedReminderID sets the "linked_reminder_id" field.
func (_c *TouchCreate) SetLinkedReminderID(v string) *TouchCreate {
	_c.mutation.SetLinkedReminderID(v)
	return _c
}

// SetNillableLinkedReminderID sets the "linked_reminder_id" field if the given value is not nil.
func (_c *TouchCreate) SetNillableLinkedReminderID(v *string) *TouchCreate {
	if v != nil {
		_c.SetLinkedReminderID(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *TouchCreate) SetResolvedAt(v time.Time) *TouchCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *TouchCreate) SetNillableResolvedAt(v *time.Time) *TouchCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TouchCreate) SetCreatedAt(v time.Time) *TouchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TouchCreate) SetNillableCreatedAt(v *time.Time) *TouchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TouchCreate) SetUpdatedAt(v time.Time) *TouchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TouchCreate) SetNillableUpdatedAt(v *time.Time) *TouchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_c *TouchCreate) SetSubscription(v *Subscription) *TouchCreate {
	return _c.SetSubscriptionID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TouchLog entity by IDs.
func (_c *TouchCreate) AddLogIDs(ids ...int) *TouchCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the TouchLog entity.
func (_c *TouchCreate) AddLogs(v ...*TouchLog) *TouchCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the TouchMutation object of the builder.
func (_c *TouchCreate) Mutation() *TouchMutation {
	return _c.mutation
}

// Save creates the Touch in the database.
func (_c *TouchCreate) Save(ctx context.Context) (*Touch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TouchCreate) SaveX(ctx context.Context) *Touch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TouchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TouchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TouchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := touch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := touch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := touch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TouchCreate) check() error {
	if _, ok := _c.mutation.SubscriptionID(); !ok {
		return &ValidationError{Name: "subscription_id", err: errors.New(`ent: missing required field "Touch.subscription_id"`)}
	}
	if v, ok := _c.mutation.SubscriptionID(); ok {
		if err := touch.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "Touch.subscription_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cycle(); !ok {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required field "Touch.cycle"`)}
	}
	if v, ok := _c.mutation.Cycle(); ok {
		if err := touch.CycleValidator(v); err != nil {
			return &ValidationError{Name: "cycle", err: fmt.Errorf(`ent: validator failed for field "Touch.cycle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceIndex(); !ok {
		return &ValidationError{Name: "sequence_index", err: errors.New(`ent: missing required field "Touch.sequence_index"`)}
	}
	if v, ok := _c.mutation.SequenceIndex(); ok {
		if err := touch.SequenceIndexValidator(v); err != nil {
			return &ValidationError{Name: "sequence_index", err: fmt.Errorf(`ent: validator failed for field "Touch.sequence_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "Touch.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := touch.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Touch.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "Touch.scheduled_date"`)}
	}
	if v, ok := _c.mutation.ScheduledTime(); ok {
		if err := touch.ScheduledTimeValidator(v); err != nil {
			return &ValidationError{Name: "scheduled_time", err: fmt.Errorf(`ent: validator failed for field "Touch.scheduled_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedTo(); !ok {
		return &ValidationError{Name: "assigned_to", err: errors.New(`ent: missing required field "Touch.assigned_to"`)}
	}
	if v, ok := _c.mutation.AssignedTo(); ok {
		if err := touch.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Touch.assigned_to": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Touch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := touch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Touch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Touch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Touch.updated_at"`)}
	}
	if len(_c.mutation.SubscriptionIDs()) == 0 {
		return &ValidationError{Name: "subscription", err: errors.New(`ent: missing required edge "Touch.subscription"`)}
	}
	return nil
}

func (_c *TouchCreate) sqlSave(ctx context.Context) (*Touch, error) {
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

func (_c *TouchCreate) createSpec() (*Touch, *sqlgraph.CreateSpec) {
	var (
		_node = &Touch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(touch.Table, sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Cycle(); ok {
		_spec.SetField(touch.FieldCycle, field.TypeInt, value)
		_node.Cycle = value
	}
	if value, ok := _c.mutation.SequenceIndex(); ok {
		_spec.SetField(touch.FieldSequenceIndex, field.TypeInt, value)
		_node.SequenceIndex = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(touch.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(touch.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := _c.mutation.ScheduledTime(); ok {
		_spec.SetField(touch.FieldScheduledTime, field.TypeString, value)
		_node.ScheduledTime = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(touch.FieldAssignedTo, field.TypeInt, value)
		_node.AssignedTo = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(touch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(touch.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.OutcomeNotes(); ok {
		_spec.SetField(touch.FieldOutcomeNotes, field.TypeString, value)
		_node.OutcomeNotes = value
	}
	if value, ok := _c.mutation.LinkedTaskID(); ok {
		_spec.SetField(touch.FieldLinkedTaskID, field.TypeString, value)
		_node.LinkedTaskID = value
	}
	if value, ok := _c.mutation.LinkedReminderID(); ok {
		_spec.SetField(touch.FieldLinkedReminderID, field.TypeString, value)
		_node.LinkedReminderID = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(touch.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(touch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(touch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   touch.SubscriptionTable,
			Columns: []string{touch.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubscriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   touch.LogsTable,
			Columns: []string{touch.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(touchlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TouchCreateBulk is the builder for creating many Touch entities in bulk.
type TouchCreateBulk struct {
	config
	err      error
	builders []*TouchCreate
}

// Save creates the Touch entities in the database.
func (_c *TouchCreateBulk) Save(ctx context.Context) ([]*Touch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Touch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TouchMutation)
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
func (_c *TouchCreateBulk) SaveX(ctx context.Context) []*Touch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TouchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TouchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
