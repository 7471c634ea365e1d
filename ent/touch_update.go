// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchUpdate is the builder for updating Touch entities.
type TouchUpdate struct {
	config
	hooks    []Hook
	mutation *TouchMutation
}

// Where appends a list predicates to the TouchUpdate builder.
func (_u *TouchUpdate) Where(ps ...predicate.Touch) *TouchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *TouchUpdate) SetSubscriptionID(v int) *TouchUpdate {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableSubscriptionID(v *int) *TouchUpdate {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// SetCycle sets the "cycle" field.
func (_u *TouchUpdate) SetCycle(v int) *TouchUpdate {
	_u.mutation.ResetCycle()
	_u.mutation.SetCycle(v)
	return _u
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableCycle(v *int) *TouchUpdate {
	if v != nil {
		_u.SetCycle(*v)
	}
	return _u
}

// AddCycle adds value to the "cycle" field.
func (_u *TouchUpdate) AddCycle(v int) *TouchUpdate {
	_u.mutation.AddCycle(v)
	return _u
}

// SetSequenceIndex sets the "sequence_index" field.
func (_u *TouchUpdate) SetSequenceIndex(v int) *TouchUpdate {
	_u.mutation.ResetSequenceIndex()
	_u.mutation.SetSequenceIndex(v)
	return _u
}

// SetNillableSequenceIndex sets the "sequence_index" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableSequenceIndex(v *int) *TouchUpdate {
	if v != nil {
		_u.SetSequenceIndex(*v)
	}
	return _u
}

// AddSequenceIndex adds value to the "sequence_index" field.
func (_u *TouchUpdate) AddSequenceIndex(v int) *TouchUpdate {
	_u.mutation.AddSequenceIndex(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *TouchUpdate) SetMethod(v touch.Method) *TouchUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableMethod(v *touch.Method) *TouchUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TouchUpdate) SetScheduledDate(v time.Time) *TouchUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableScheduledDate(v *time.Time) *TouchUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TouchUpdate) SetScheduledTime(v string) *TouchUpdate {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableScheduledTime(v *string) *TouchUpdate {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// ClearScheduledTime clears the value of the "scheduled_time" field.
func (_u *TouchUpdate) ClearScheduledTime() *TouchUpdate {
	_u.mutation.ClearScheduledTime()
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TouchUpdate) SetAssignedTo(v int) *TouchUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableAssignedTo(v *int) *TouchUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *TouchUpdate) AddAssignedTo(v int) *TouchUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TouchUpdate) SetStatus(v touch.Status) *TouchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableStatus(v *touch.Status) *TouchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TouchUpdate) SetOutcome(v string) *TouchUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableOutcome(v *string) *TouchUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *TouchUpdate) ClearOutcome() *TouchUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *TouchUpdate) SetOutcomeNotes(v string) *TouchUpdate {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableOutcomeNotes(v *string) *TouchUpdate {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *TouchUpdate) ClearOutcomeNotes() *TouchUpdate {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetLinkedTaskID sets the "linked_task_id" field.
func (_u *TouchUpdate) SetLinkedTaskID(v string) *TouchUpdate {
	_u.mutation.SetLinkedTaskID(v)
	return _u
}

// SetNillableLinkedTaskID sets the "linked_task_id" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableLinkedTaskID(v *string) *TouchUpdate {
	if v != nil {
		_u.SetLinkedTaskID(*v)
	}
	return _u
}

// ClearLinkedTaskID clears the value of the "linked_task_id" field.
func (_u *TouchUpdate) ClearLinkedTaskID() *TouchUpdate {
	_u.mutation.ClearLinkedTaskID()
	return _u
}

// SetLinkedReminderID sets the "linked_reminder_id" field.
func (_u *TouchUpdate) SetLinkedReminderID(v string) *TouchUpdate {
	_u.mutation.SetLinkedReminderID(v)
	return _u
}

// SetNillableLinkedReminderID sets the "linked_reminder_id" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableLinkedReminderID(v *string) *TouchUpdate {
	if v != nil {
		_u.SetLinkedReminderID(*v)
	}
	return _u
}

// ClearLinkedReminderID clears the value of the "linked_reminder_id" field.
func (_u *TouchUpdate) ClearLinkedReminderID() *TouchUpdate {
	_u.mutation.ClearLinkedReminderID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *TouchUpdate) SetResolvedAt(v time.Time) *TouchUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *TouchUpdate) SetNillableResolvedAt(v *time.Time) *TouchUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *TouchUpdate) ClearResolvedAt() *TouchUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TouchUpdate) SetUpdatedAt(v time.Time) *TouchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_u *TouchUpdate) SetSubscription(v *Subscription) *TouchUpdate {
	return _u.SetSubscriptionID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TouchLog entity by IDs.
func (_u *TouchUpdate) AddLogIDs(ids ...int) *TouchUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the TouchLog entity.
func (_u *TouchUpdate) AddLogs(v ...*TouchLog) *TouchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the TouchMutation object of the builder.
func (_u *TouchUpdate) Mutation() *TouchMutation {
	return _u.mutation
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (_u *TouchUpdate) ClearSubscription() *TouchUpdate {
	_u.mutation.ClearSubscription()
	return _u
}

// ClearLogs clears all "logs" edges to the TouchLog entity.
func (_u *TouchUpdate) ClearLogs() *TouchUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to TouchLog entities by IDs.
func (_u *TouchUpdate) RemoveLogIDs(ids ...int) *TouchUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to TouchLog entities.
func (_u *TouchUpdate) RemoveLogs(v ...*TouchLog) *TouchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TouchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TouchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TouchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TouchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TouchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := touch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TouchUpdate) check() error {
	if v, ok := _u.mutation.SubscriptionID(); ok {
		if err := touch.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "Touch.subscription_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cycle(); ok {
		if err := touch.CycleValidator(v); err != nil {
			return &ValidationError{Name: "cycle", err: fmt.Errorf(`ent: validator failed for field "Touch.cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceIndex(); ok {
		if err := touch.SequenceIndexValidator(v); err != nil {
			return &ValidationError{Name: "sequence_index", err: fmt.Errorf(`ent: validator failed for field "Touch.sequence_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := touch.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Touch.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduledTime(); ok {
		if err := touch.ScheduledTimeValidator(v); err != nil {
			return &ValidationError{Name: "scheduled_time", err: fmt.Errorf(`ent: validator failed for field "Touch.scheduled_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedTo(); ok {
		if err := touch.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Touch.assigned_to": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := touch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Touch.status": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Touch.subscription"`)
	}
	return nil
}

func (_u *TouchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(touch.Table, touch.Columns, sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Cycle(); ok {
		_spec.SetField(touch.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycle(); ok {
		_spec.AddField(touch.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceIndex(); ok {
		_spec.SetField(touch.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceIndex(); ok {
		_spec.AddField(touch.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(touch.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(touch.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(touch.FieldScheduledTime, field.TypeString, value)
	}
	if _u.mutation.ScheduledTimeCleared() {
		_spec.ClearField(touch.FieldScheduledTime, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(touch.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(touch.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(touch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(touch.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(touch.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(touch.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(touch.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedTaskID(); ok {
		_spec.SetField(touch.FieldLinkedTaskID, field.TypeString, value)
	}
	if _u.mutation.LinkedTaskIDCleared() {
		_spec.ClearField(touch.FieldLinkedTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedReminderID(); ok {
		_spec.SetField(touch.FieldLinkedReminderID, field.TypeString, value)
	}
	if _u.mutation.LinkedReminderIDCleared() {
		_spec.ClearField(touch.FieldLinkedReminderID, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(touch.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(touch.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(touch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{touch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TouchUpdateOne is the builder for updating a single Touch entity.
type TouchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TouchMutation
}

// SetSubscriptionID sets the "subscription_id" field.
func (_u *TouchUpdateOne) SetSubscriptionID(v int) *TouchUpdateOne {
	_u.mutation.SetSubscriptionID(v)
	return _u
}

// SetNillableSubscriptionID sets the "subscription_id" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableSubscriptionID(v *int) *TouchUpdateOne {
	if v != nil {
		_u.SetSubscriptionID(*v)
	}
	return _u
}

// SetCycle sets the "cycle" field.
func (_u *TouchUpdateOne) SetCycle(v int) *TouchUpdateOne {
	_u.mutation.ResetCycle()
	_u.mutation.SetCycle(v)
	return _u
}

// SetNillableCycle sets the "cycle" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableCycle(v *int) *TouchUpdateOne {
	if v != nil {
		_u.SetCycle(*v)
	}
	return _u
}

// AddCycle adds value to the "cycle" field.
func (_u *TouchUpdateOne) AddCycle(v int) *TouchUpdateOne {
	_u.mutation.AddCycle(v)
	return _u
}

// SetSequenceIndex sets the "sequence_index" field.
func (_u *TouchUpdateOne) SetSequenceIndex(v int) *TouchUpdateOne {
	_u.mutation.ResetSequenceIndex()
	_u.mutation.SetSequenceIndex(v)
	return _u
}

// SetNillableSequenceIndex sets the "sequence_index" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableSequenceIndex(v *int) *TouchUpdateOne {
	if v != nil {
		_u.SetSequenceIndex(*v)
	}
	return _u
}

// AddSequenceIndex adds value to the "sequence_index" field.
func (_u *TouchUpdateOne) AddSequenceIndex(v int) *TouchUpdateOne {
	_u.mutation.AddSequenceIndex(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *TouchUpdateOne) SetMethod(v touch.Method) *TouchUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableMethod(v *touch.Method) *TouchUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TouchUpdateOne) SetScheduledDate(v time.Time) *TouchUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableScheduledDate(v *time.Time) *TouchUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TouchUpdateOne) SetScheduledTime(v string) *TouchUpdateOne {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableScheduledTime(v *string) *TouchUpdateOne {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// ClearScheduledTime clears the value of the "scheduled_time" field.
func (_u *TouchUpdateOne) ClearScheduledTime() *TouchUpdateOne {
	_u.mutation.ClearScheduledTime()
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TouchUpdateOne) SetAssignedTo(v int) *TouchUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableAssignedTo(v *int) *TouchUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *TouchUpdateOne) AddAssignedTo(v int) *TouchUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TouchUpdateOne) SetStatus(v touch.Status) *TouchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableStatus(v *touch.Status) *TouchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TouchUpdateOne) SetOutcome(v string) *TouchUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableOutcome(v *string) *TouchUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *TouchUpdateOne) ClearOutcome() *TouchUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *TouchUpdateOne) SetOutcomeNotes(v string) *TouchUpdateOne {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableOutcomeNotes(v *string) *TouchUpdateOne {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *TouchUpdateOne) ClearOutcomeNotes() *TouchUpdateOne {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetLinkedTaskID sets the "linked_task_id" field.
func (_u *TouchUpdateOne) SetLinkedTaskID(v string) *TouchUpdateOne {
	_u.mutation.SetLinkedTaskID(v)
	return _u
}

// SetNillableLinkedTaskID sets the "linked_task_id" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableLinkedTaskID(v *string) *TouchUpdateOne {
	if v != nil {
		_u.SetLinkedTaskID(*v)
	}
	return _u
}

// ClearLinkedTaskID clears the value of the "linked_task_id" field.
func (_u *TouchUpdateOne) ClearLinkedTaskID() *TouchUpdateOne {
	_u.mutation.ClearLinkedTaskID()
	return _u
}

// SetLinkedReminderID sets the "linked_reminder_id" field.
func (_u *TouchUpdateOne) SetLinkedReminderID(v string) *TouchUpdateOne {
	_u.mutation.SetLinkedReminderID(v)
	return _u
}

// SetNillableLinkedReminderID sets the "linked_reminder_id" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableLinkedReminderID(v *string) *TouchUpdateOne {
	if v != nil {
		_u.SetLinkedReminderID(*v)
	}
	return _u
}

// ClearLinkedReminderID clears the value of the "linked_reminder_id" field.
func (_u *TouchUpdateOne) ClearLinkedReminderID() *TouchUpdateOne {
	_u.mutation.ClearLinkedReminderID()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *TouchUpdateOne) SetResolvedAt(v time.Time) *TouchUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *TouchUpdateOne) SetNillableResolvedAt(v *time.Time) *TouchUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *TouchUpdateOne) ClearResolvedAt() *TouchUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TouchUpdateOne) SetUpdatedAt(v time.Time) *TouchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (_u *TouchUpdateOne) SetSubscription(v *Subscription) *TouchUpdateOne {
	return _u.SetSubscriptionID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TouchLog entity by IDs.
func (_u *TouchUpdateOne) AddLogIDs(ids ...int) *TouchUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the TouchLog entity.
func (_u *TouchUpdateOne) AddLogs(v ...*TouchLog) *TouchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the TouchMutation object of the builder.
func (_u *TouchUpdateOne) Mutation() *TouchMutation {
	return _u.mutation
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (_u *TouchUpdateOne) ClearSubscription() *TouchUpdateOne {
	_u.mutation.ClearSubscription()
	return _u
}

// ClearLogs clears all "logs" edges to the TouchLog entity.
func (_u *TouchUpdateOne) ClearLogs() *TouchUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to TouchLog entities by IDs.
func (_u *TouchUpdateOne) RemoveLogIDs(ids ...int) *TouchUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to TouchLog entities.
func (_u *TouchUpdateOne) RemoveLogs(v ...*TouchLog) *TouchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the TouchUpdate builder.
func (_u *TouchUpdateOne) Where(ps ...predicate.Touch) *TouchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TouchUpdateOne) Select(field string, fields ...string) *TouchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Touch entity.
func (_u *TouchUpdateOne) Save(ctx context.Context) (*Touch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TouchUpdateOne) SaveX(ctx context.Context) *Touch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TouchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TouchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TouchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := touch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TouchUpdateOne) check() error {
	if v, ok := _u.mutation.SubscriptionID(); ok {
		if err := touch.SubscriptionIDValidator(v); err != nil {
			return &ValidationError{Name: "subscription_id", err: fmt.Errorf(`ent: validator failed for field "Touch.subscription_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cycle(); ok {
		if err := touch.CycleValidator(v); err != nil {
			return &ValidationError{Name: "cycle", err: fmt.Errorf(`ent: validator failed for field "Touch.cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceIndex(); ok {
		if err := touch.SequenceIndexValidator(v); err != nil {
			return &ValidationError{Name: "sequence_index", err: fmt.Errorf(`ent: validator failed for field "Touch.sequence_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := touch.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Touch.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduledTime(); ok {
		if err := touch.ScheduledTimeValidator(v); err != nil {
			return &ValidationError{Name: "scheduled_time", err: fmt.Errorf(`ent: validator failed for field "Touch.scheduled_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedTo(); ok {
		if err := touch.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Touch.assigned_to": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := touch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Touch.status": %w`, err)}
		}
	}
	if _u.mutation.SubscriptionCleared() && len(_u.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Touch.subscription"`)
	}
	return nil
}

func (_u *TouchUpdateOne) sqlSave(ctx context.Context) (_node *Touch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(touch.Table, touch.Columns, sqlgraph.NewFieldSpec(touch.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Touch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, touch.FieldID)
		for _, f := range fields {
			if !touch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != touch.FieldID {
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
	if value, ok := _u.mutation.Cycle(); ok {
		_spec.SetField(touch.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycle(); ok {
		_spec.AddField(touch.FieldCycle, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceIndex(); ok {
		_spec.SetField(touch.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceIndex(); ok {
		_spec.AddField(touch.FieldSequenceIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(touch.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(touch.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(touch.FieldScheduledTime, field.TypeString, value)
	}
	if _u.mutation.ScheduledTimeCleared() {
		_spec.ClearField(touch.FieldScheduledTime, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(touch.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(touch.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(touch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(touch.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(touch.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(touch.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(touch.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedTaskID(); ok {
		_spec.SetField(touch.FieldLinkedTaskID, field.TypeString, value)
	}
	if _u.mutation.LinkedTaskIDCleared() {
		_spec.ClearField(touch.FieldLinkedTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedReminderID(); ok {
		_spec.SetField(touch.FieldLinkedReminderID, field.TypeString, value)
	}
	if _u.mutation.LinkedReminderIDCleared() {
		_spec.ClearField(touch.FieldLinkedReminderID, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(touch.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(touch.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(touch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Touch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{touch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
