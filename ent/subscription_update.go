// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

// SubscriptionUpdate is the builder for updating Subscription entities.
type SubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionMutation
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdate) Where(ps ...predicate.Subscription) *SubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *SubscriptionUpdate) SetEntityType(v subscription.EntityType) *SubscriptionUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableEntityType(v *subscription.EntityType) *SubscriptionUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *SubscriptionUpdate) SetEntityID(v int) *SubscriptionUpdate {
	_u.mutation.ResetEntityID()
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableEntityID(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// AddEntityID adds value to the "entity_id" field.
func (_u *SubscriptionUpdate) AddEntityID(v int) *SubscriptionUpdate {
	_u.mutation.AddEntityID(v)
	return _u
}

// SetEntityName sets the "entity_name" field.
func (_u *SubscriptionUpdate) SetEntityName(v string) *SubscriptionUpdate {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableEntityName(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// ClearEntityName clears the value of the "entity_name" field.
func (_u *SubscriptionUpdate) ClearEntityName() *SubscriptionUpdate {
	_u.mutation.ClearEntityName()
	return _u
}

// SetEntityPhone sets the "entity_phone" field.
func (_u *SubscriptionUpdate) SetEntityPhone(v string) *SubscriptionUpdate {
	_u.mutation.SetEntityPhone(v)
	return _u
}

// SetNillableEntityPhone sets the "entity_phone" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableEntityPhone(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetEntityPhone(*v)
	}
	return _u
}

// ClearEntityPhone clears the value of the "entity_phone" field.
func (_u *SubscriptionUpdate) ClearEntityPhone() *SubscriptionUpdate {
	_u.mutation.ClearEntityPhone()
	return _u
}

// SetPresetID sets the "preset_id" field.
func (_u *SubscriptionUpdate) SetPresetID(v int) *SubscriptionUpdate {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePresetID(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// ClearPresetID clears the value of the "preset_id" field.
func (_u *SubscriptionUpdate) ClearPresetID() *SubscriptionUpdate {
	_u.mutation.ClearPresetID()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SubscriptionUpdate) SetSteps(v []domain.TemplateStep) *SubscriptionUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *SubscriptionUpdate) AppendSteps(v []domain.TemplateStep) *SubscriptionUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetCycleBehavior sets the "cycle_behavior" field.
func (_u *SubscriptionUpdate) SetCycleBehavior(v subscription.CycleBehavior) *SubscriptionUpdate {
	_u.mutation.SetCycleBehavior(v)
	return _u
}

// SetNillableCycleBehavior sets the "cycle_behavior" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCycleBehavior(v *subscription.CycleBehavior) *SubscriptionUpdate {
	if v != nil {
		_u.SetCycleBehavior(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *SubscriptionUpdate) SetAssignedTo(v int) *SubscriptionUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableAssignedTo(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *SubscriptionUpdate) AddAssignedTo(v int) *SubscriptionUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdate) SetStatus(v subscription.Status) *SubscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableStatus(v *subscription.Status) *SubscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCycleCount sets the "cycle_count" field.
func (_u *SubscriptionUpdate) SetCycleCount(v int) *SubscriptionUpdate {
	_u.mutation.ResetCycleCount()
	_u.mutation.SetCycleCount(v)
	return _u
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCycleCount(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetCycleCount(*v)
	}
	return _u
}

// AddCycleCount adds value to the "cycle_count" field.
func (_u *SubscriptionUpdate) AddCycleCount(v int) *SubscriptionUpdate {
	_u.mutation.AddCycleCount(v)
	return _u
}

// SetMaxCycles sets the "max_cycles" field.
func (_u *SubscriptionUpdate) SetMaxCycles(v int) *SubscriptionUpdate {
	_u.mutation.ResetMaxCycles()
	_u.mutation.SetMaxCycles(v)
	return _u
}

// SetNillableMaxCycles sets the "max_cycles" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableMaxCycles(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetMaxCycles(*v)
	}
	return _u
}

// AddMaxCycles adds value to the "max_cycles" field.
func (_u *SubscriptionUpdate) AddMaxCycles(v int) *SubscriptionUpdate {
	_u.mutation.AddMaxCycles(v)
	return _u
}

// ClearMaxCycles clears the value of the "max_cycles" field.
func (_u *SubscriptionUpdate) ClearMaxCycles() *SubscriptionUpdate {
	_u.mutation.ClearMaxCycles()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SubscriptionUpdate) SetCurrentStep(v int) *SubscriptionUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCurrentStep(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SubscriptionUpdate) AddCurrentStep(v int) *SubscriptionUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPauseUntil sets the "pause_until" field.
func (_u *SubscriptionUpdate) SetPauseUntil(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetPauseUntil(v)
	return _u
}

// SetNillablePauseUntil sets the "pause_until" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePauseUntil(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetPauseUntil(*v)
	}
	return _u
}

// ClearPauseUntil clears the value of the "pause_until" field.
func (_u *SubscriptionUpdate) ClearPauseUntil() *SubscriptionUpdate {
	_u.mutation.ClearPauseUntil()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *SubscriptionUpdate) SetPauseReason(v string) *SubscriptionUpdate {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePauseReason(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *SubscriptionUpdate) ClearPauseReason() *SubscriptionUpdate {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetSkipWeekends sets the "skip_weekends" field.
func (_u *SubscriptionUpdate) SetSkipWeekends(v bool) *SubscriptionUpdate {
	_u.mutation.SetSkipWeekends(v)
	return _u
}

// SetNillableSkipWeekends sets the "skip_weekends" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableSkipWeekends(v *bool) *SubscriptionUpdate {
	if v != nil {
		_u.SetSkipWeekends(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdate) SetUpdatedAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_u *SubscriptionUpdate) SetPreset(v *Preset) *SubscriptionUpdate {
	return _u.SetPresetID(v.ID)
}

// AddTouchIDs adds the "touches" edge to the Touch entity by IDs.
func (_u *SubscriptionUpdate) AddTouchIDs(ids ...int) *SubscriptionUpdate {
	_u.mutation.AddTouchIDs(ids...)
	return _u
}

// AddTouches adds the "touches" edges to the Touch entity.
func (_u *SubscriptionUpdate) AddTouches(v ...*Touch) *SubscriptionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTouchIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdate) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (_u *SubscriptionUpdate) ClearPreset() *SubscriptionUpdate {
	_u.mutation.ClearPreset()
	return _u
}

// ClearTouches clears all "touches" edges to the Touch entity.
func (_u *SubscriptionUpdate) ClearTouches() *SubscriptionUpdate {
	_u.mutation.ClearTouches()
	return _u
}

// RemoveTouchIDs removes the "touches" edge to Touch entities by IDs.
func (_u *SubscriptionUpdate) RemoveTouchIDs(ids ...int) *SubscriptionUpdate {
	_u.mutation.RemoveTouchIDs(ids...)
	return _u
}

// RemoveTouches removes "touches" edges to Touch entities.
func (_u *SubscriptionUpdate) RemoveTouches(v ...*Touch) *SubscriptionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTouchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := subscription.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityID(); ok {
		if err := subscription.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityName(); ok {
		if err := subscription.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityPhone(); ok {
		if err := subscription.EntityPhoneValidator(v); err != nil {
			return &ValidationError{Name: "entity_phone", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleBehavior(); ok {
		if err := subscription.CycleBehaviorValidator(v); err != nil {
			return &ValidationError{Name: "cycle_behavior", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_behavior": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedTo(); ok {
		if err := subscription.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Subscription.assigned_to": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleCount(); ok {
		if err := subscription.CycleCountValidator(v); err != nil {
			return &ValidationError{Name: "cycle_count", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := subscription.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Subscription.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(subscription.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(subscription.FieldEntityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntityID(); ok {
		_spec.AddField(subscription.FieldEntityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(subscription.FieldEntityName, field.TypeString, value)
	}
	if _u.mutation.EntityNameCleared() {
		_spec.ClearField(subscription.FieldEntityName, field.TypeString)
	}
	if value, ok := _u.mutation.EntityPhone(); ok {
		_spec.SetField(subscription.FieldEntityPhone, field.TypeString, value)
	}
	if _u.mutation.EntityPhoneCleared() {
		_spec.ClearField(subscription.FieldEntityPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(subscription.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscription.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.CycleBehavior(); ok {
		_spec.SetField(subscription.FieldCycleBehavior, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(subscription.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(subscription.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CycleCount(); ok {
		_spec.SetField(subscription.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleCount(); ok {
		_spec.AddField(subscription.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCycles(); ok {
		_spec.SetField(subscription.FieldMaxCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCycles(); ok {
		_spec.AddField(subscription.FieldMaxCycles, field.TypeInt, value)
	}
	if _u.mutation.MaxCyclesCleared() {
		_spec.ClearField(subscription.FieldMaxCycles, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(subscription.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(subscription.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PauseUntil(); ok {
		_spec.SetField(subscription.FieldPauseUntil, field.TypeTime, value)
	}
	if _u.mutation.PauseUntilCleared() {
		_spec.ClearField(subscription.FieldPauseUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(subscription.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(subscription.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipWeekends(); ok {
		_spec.SetField(subscription.FieldSkipWeekends, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PresetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PresetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TouchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTouchesIDs(); len(nodes) > 0 && !_u.mutation.TouchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TouchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionUpdateOne is the builder for updating a single Subscription entity.
type SubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *SubscriptionUpdateOne) SetEntityType(v subscription.EntityType) *SubscriptionUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableEntityType(v *subscription.EntityType) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *SubscriptionUpdateOne) SetEntityID(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetEntityID()
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableEntityID(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// AddEntityID adds value to the "entity_id" field.
func (_u *SubscriptionUpdateOne) AddEntityID(v int) *SubscriptionUpdateOne {
	_u.mutation.AddEntityID(v)
	return _u
}

// SetEntityName sets the "entity_name" field.
func (_u *SubscriptionUpdateOne) SetEntityName(v string) *SubscriptionUpdateOne {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableEntityName(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// ClearEntityName clears the value of the "entity_name" field.
func (_u *SubscriptionUpdateOne) ClearEntityName() *SubscriptionUpdateOne {
	_u.mutation.ClearEntityName()
	return _u
}

// SetEntityPhone sets the "entity_phone" field.
func (_u *SubscriptionUpdateOne) SetEntityPhone(v string) *SubscriptionUpdateOne {
	_u.mutation.SetEntityPhone(v)
	return _u
}

// SetNillableEntityPhone sets the "entity_phone" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableEntityPhone(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetEntityPhone(*v)
	}
	return _u
}

// ClearEntityPhone clears the value of the "entity_phone" field.
func (_u *SubscriptionUpdateOne) ClearEntityPhone() *SubscriptionUpdateOne {
	_u.mutation.ClearEntityPhone()
	return _u
}

// SetPresetID sets the "preset_id" field.
func (_u *SubscriptionUpdateOne) SetPresetID(v int) *SubscriptionUpdateOne {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePresetID(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// ClearPresetID clears the value of the "preset_id" field.
func (_u *SubscriptionUpdateOne) ClearPresetID() *SubscriptionUpdateOne {
	_u.mutation.ClearPresetID()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SubscriptionUpdateOne) SetSteps(v []domain.TemplateStep) *SubscriptionUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *SubscriptionUpdateOne) AppendSteps(v []domain.TemplateStep) *SubscriptionUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetCycleBehavior sets the "cycle_behavior" field.
func (_u *SubscriptionUpdateOne) SetCycleBehavior(v subscription.CycleBehavior) *SubscriptionUpdateOne {
	_u.mutation.SetCycleBehavior(v)
	return _u
}

// SetNillableCycleBehavior sets the "cycle_behavior" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCycleBehavior(v *subscription.CycleBehavior) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCycleBehavior(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *SubscriptionUpdateOne) SetAssignedTo(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableAssignedTo(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *SubscriptionUpdateOne) AddAssignedTo(v int) *SubscriptionUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdateOne) SetStatus(v subscription.Status) *SubscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableStatus(v *subscription.Status) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCycleCount sets the "cycle_count" field.
func (_u *SubscriptionUpdateOne) SetCycleCount(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetCycleCount()
	_u.mutation.SetCycleCount(v)
	return _u
}

// SetNillableCycleCount sets the "cycle_count" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCycleCount(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCycleCount(*v)
	}
	return _u
}

// AddCycleCount adds value to the "cycle_count" field.
func (_u *SubscriptionUpdateOne) AddCycleCount(v int) *SubscriptionUpdateOne {
	_u.mutation.AddCycleCount(v)
	return _u
}

// SetMaxCycles sets the "max_cycles" field.
func (_u *SubscriptionUpdateOne) SetMaxCycles(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetMaxCycles()
	_u.mutation.SetMaxCycles(v)
	return _u
}

// SetNillableMaxCycles sets the "max_cycles" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableMaxCycles(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetMaxCycles(*v)
	}
	return _u
}

// AddMaxCycles adds value to the "max_cycles" field.
func (_u *SubscriptionUpdateOne) AddMaxCycles(v int) *SubscriptionUpdateOne {
	_u.mutation.AddMaxCycles(v)
	return _u
}

// ClearMaxCycles clears the value of the "max_cycles" field.
func (_u *SubscriptionUpdateOne) ClearMaxCycles() *SubscriptionUpdateOne {
	_u.mutation.ClearMaxCycles()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *SubscriptionUpdateOne) SetCurrentStep(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCurrentStep(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *SubscriptionUpdateOne) AddCurrentStep(v int) *SubscriptionUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPauseUntil sets the "pause_until" field.
func (_u *SubscriptionUpdateOne) SetPauseUntil(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetPauseUntil(v)
	return _u
}

// SetNillablePauseUntil sets the "pause_until" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePauseUntil(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPauseUntil(*v)
	}
	return _u
}

// ClearPauseUntil clears the value of the "pause_until" field.
func (_u *SubscriptionUpdateOne) ClearPauseUntil() *SubscriptionUpdateOne {
	_u.mutation.ClearPauseUntil()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *SubscriptionUpdateOne) SetPauseReason(v string) *SubscriptionUpdateOne {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePauseReason(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *SubscriptionUpdateOne) ClearPauseReason() *SubscriptionUpdateOne {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetSkipWeekends sets the "skip_weekends" field.
func (_u *SubscriptionUpdateOne) SetSkipWeekends(v bool) *SubscriptionUpdateOne {
	_u.mutation.SetSkipWeekends(v)
	return _u
}

// SetNillableSkipWeekends sets the "skip_weekends" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableSkipWeekends(v *bool) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetSkipWeekends(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdateOne) SetUpdatedAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPreset sets the "preset" edge to the Preset entity.
func (_u *SubscriptionUpdateOne) SetPreset(v *Preset) *SubscriptionUpdateOne {
	return _u.SetPresetID(v.ID)
}

// AddTouchIDs adds the "touches" edge to the Touch entity by IDs.
func (_u *SubscriptionUpdateOne) AddTouchIDs(ids ...int) *SubscriptionUpdateOne {
	_u.mutation.AddTouchIDs(ids...)
	return _u
}

// AddTouches adds the "touches" edges to the Touch entity.
func (_u *SubscriptionUpdateOne) AddTouches(v ...*Touch) *SubscriptionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTouchIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdateOne) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (_u *SubscriptionUpdateOne) ClearPreset() *SubscriptionUpdateOne {
	_u.mutation.ClearPreset()
	return _u
}

// ClearTouches clears all "touches" edges to the Touch entity.
func (_u *SubscriptionUpdateOne) ClearTouches() *SubscriptionUpdateOne {
	_u.mutation.ClearTouches()
	return _u
}

// RemoveTouchIDs removes the "touches" edge to Touch entities by IDs.
func (_u *SubscriptionUpdateOne) RemoveTouchIDs(ids ...int) *SubscriptionUpdateOne {
	_u.mutation.RemoveTouchIDs(ids...)
	return _u
}

// RemoveTouches removes "touches" edges to Touch entities.
func (_u *SubscriptionUpdateOne) RemoveTouches(v ...*Touch) *SubscriptionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTouchIDs(ids...)
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdateOne) Where(ps ...predicate.Subscription) *SubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionUpdateOne) Select(field string, fields ...string) *SubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subscription entity.
func (_u *SubscriptionUpdateOne) Save(ctx context.Context) (*Subscription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) SaveX(ctx context.Context) *Subscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := subscription.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityID(); ok {
		if err := subscription.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityName(); ok {
		if err := subscription.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityPhone(); ok {
		if err := subscription.EntityPhoneValidator(v); err != nil {
			return &ValidationError{Name: "entity_phone", err: fmt.Errorf(`ent: validator failed for field "Subscription.entity_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleBehavior(); ok {
		if err := subscription.CycleBehaviorValidator(v); err != nil {
			return &ValidationError{Name: "cycle_behavior", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_behavior": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedTo(); ok {
		if err := subscription.AssignedToValidator(v); err != nil {
			return &ValidationError{Name: "assigned_to", err: fmt.Errorf(`ent: validator failed for field "Subscription.assigned_to": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleCount(); ok {
		if err := subscription.CycleCountValidator(v); err != nil {
			return &ValidationError{Name: "cycle_count", err: fmt.Errorf(`ent: validator failed for field "Subscription.cycle_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := subscription.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "Subscription.current_step": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Subscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscription.FieldID)
		for _, f := range fields {
			if !subscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscription.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(subscription.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(subscription.FieldEntityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntityID(); ok {
		_spec.AddField(subscription.FieldEntityID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(subscription.FieldEntityName, field.TypeString, value)
	}
	if _u.mutation.EntityNameCleared() {
		_spec.ClearField(subscription.FieldEntityName, field.TypeString)
	}
	if value, ok := _u.mutation.EntityPhone(); ok {
		_spec.SetField(subscription.FieldEntityPhone, field.TypeString, value)
	}
	if _u.mutation.EntityPhoneCleared() {
		_spec.ClearField(subscription.FieldEntityPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(subscription.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscription.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.CycleBehavior(); ok {
		_spec.SetField(subscription.FieldCycleBehavior, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(subscription.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(subscription.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CycleCount(); ok {
		_spec.SetField(subscription.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleCount(); ok {
		_spec.AddField(subscription.FieldCycleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxCycles(); ok {
		_spec.SetField(subscription.FieldMaxCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCycles(); ok {
		_spec.AddField(subscription.FieldMaxCycles, field.TypeInt, value)
	}
	if _u.mutation.MaxCyclesCleared() {
		_spec.ClearField(subscription.FieldMaxCycles, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(subscription.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(subscription.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PauseUntil(); ok {
		_spec.SetField(subscription.FieldPauseUntil, field.TypeTime, value)
	}
	if _u.mutation.PauseUntilCleared() {
		_spec.ClearField(subscription.FieldPauseUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(subscription.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(subscription.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipWeekends(); ok {
		_spec.SetField(subscription.FieldSkipWeekends, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PresetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PresetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TouchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTouchesIDs(); len(nodes) > 0 && !_u.mutation.TouchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TouchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
