// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/predicate"
)

// ActivityLogUpdate is the builder for updating ActivityLog entities.
type ActivityLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityLogMutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (_u *ActivityLogUpdate) Where(ps ...predicate.ActivityLog) *ActivityLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorID sets the "actor_id" field.
func (_u *ActivityLogUpdate) SetActorID(v int) *ActivityLogUpdate {
	_u.mutation.ResetActorID()
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableActorID(v *int) *ActivityLogUpdate {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// AddActorID adds value to the "actor_id" field.
func (_u *ActivityLogUpdate) AddActorID(v int) *ActivityLogUpdate {
	_u.mutation.AddActorID(v)
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ActivityLogUpdate) ClearActorID() *ActivityLogUpdate {
	_u.mutation.ClearActorID()
	return _u
}

// SetAction sets the "action" field.
func (_u *ActivityLogUpdate) SetAction(v activitylog.Action) *ActivityLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableAction(v *activitylog.Action) *ActivityLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ActivityLogUpdate) SetResourceType(v string) *ActivityLogUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableResourceType(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// ClearResourceType clears the value of the "resource_type" field.
func (_u *ActivityLogUpdate) ClearResourceType() *ActivityLogUpdate {
	_u.mutation.ClearResourceType()
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ActivityLogUpdate) SetResourceID(v string) *ActivityLogUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableResourceID(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *ActivityLogUpdate) ClearResourceID() *ActivityLogUpdate {
	_u.mutation.ClearResourceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityLogUpdate) SetMetadata(v map[string]interface{}) *ActivityLogUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityLogUpdate) ClearMetadata() *ActivityLogUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ActivityLogUpdate) SetSeverity(v activitylog.Severity) *ActivityLogUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableSeverity(v *activitylog.Severity) *ActivityLogUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityLogUpdate) SetDescription(v string) *ActivityLogUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableDescription(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityLogUpdate) ClearDescription() *ActivityLogUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the ActivityLogMutation object of the builder.
func (_u *ActivityLogUpdate) Mutation() *ActivityLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := activitylog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(activitylog.FieldActorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorID(); ok {
		_spec.AddField(activitylog.FieldActorID, field.TypeInt, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(activitylog.FieldActorID, field.TypeInt)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(activitylog.FieldResourceType, field.TypeString, value)
	}
	if _u.mutation.ResourceTypeCleared() {
		_spec.ClearField(activitylog.FieldResourceType, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(activitylog.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(activitylog.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activitylog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activitylog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(activitylog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activitylog.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activitylog.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityLogUpdateOne is the builder for updating a single ActivityLog entity.
type ActivityLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityLogMutation
}

// SetActorID sets the "actor_id" field.
func (_u *ActivityLogUpdateOne) SetActorID(v int) *ActivityLogUpdateOne {
	_u.mutation.ResetActorID()
	_u.mutation.SetActorID(v)
	return _u
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableActorID(v *int) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetActorID(*v)
	}
	return _u
}

// AddActorID adds value to the "actor_id" field.
func (_u *ActivityLogUpdateOne) AddActorID(v int) *ActivityLogUpdateOne {
	_u.mutation.AddActorID(v)
	return _u
}

// ClearActorID clears the value of the "actor_id" field.
func (_u *ActivityLogUpdateOne) ClearActorID() *ActivityLogUpdateOne {
	_u.mutation.ClearActorID()
	return _u
}

// SetAction sets the "action" field.
func (_u *ActivityLogUpdateOne) SetAction(v activitylog.Action) *ActivityLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableAction(v *activitylog.Action) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ActivityLogUpdateOne) SetResourceType(v string) *ActivityLogUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableResourceType(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// ClearResourceType clears the value of the "resource_type" field.
func (_u *ActivityLogUpdateOne) ClearResourceType() *ActivityLogUpdateOne {
	_u.mutation.ClearResourceType()
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ActivityLogUpdateOne) SetResourceID(v string) *ActivityLogUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableResourceID(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *ActivityLogUpdateOne) ClearResourceID() *ActivityLogUpdateOne {
	_u.mutation.ClearResourceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ActivityLogUpdateOne) SetMetadata(v map[string]interface{}) *ActivityLogUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ActivityLogUpdateOne) ClearMetadata() *ActivityLogUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ActivityLogUpdateOne) SetSeverity(v activitylog.Severity) *ActivityLogUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableSeverity(v *activitylog.Severity) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityLogUpdateOne) SetDescription(v string) *ActivityLogUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableDescription(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityLogUpdateOne) ClearDescription() *ActivityLogUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the ActivityLogMutation object of the builder.
func (_u *ActivityLogUpdateOne) Mutation() *ActivityLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (_u *ActivityLogUpdateOne) Where(ps ...predicate.ActivityLog) *ActivityLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityLogUpdateOne) Select(field string, fields ...string) *ActivityLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityLog entity.
func (_u *ActivityLogUpdateOne) Save(ctx context.Context) (*ActivityLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityLogUpdateOne) SaveX(ctx context.Context) *ActivityLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := activitylog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityLogUpdateOne) sqlSave(ctx context.Context) (_node *ActivityLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitylog.FieldID)
		for _, f := range fields {
			if !activitylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activitylog.FieldID {
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
	if value, ok := _u.mutation.ActorID(); ok {
		_spec.SetField(activitylog.FieldActorID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActorID(); ok {
		_spec.AddField(activitylog.FieldActorID, field.TypeInt, value)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(activitylog.FieldActorID, field.TypeInt)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(activitylog.FieldResourceType, field.TypeString, value)
	}
	if _u.mutation.ResourceTypeCleared() {
		_spec.ClearField(activitylog.FieldResourceType, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(activitylog.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(activitylog.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(activitylog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(activitylog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(activitylog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activitylog.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activitylog.FieldDescription, field.TypeString)
	}
	_node = &ActivityLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
