// Code generated by ent, DO NOT EDIT.

package presetstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/touchpoint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLTE(FieldID, id))
}

// PresetID applies equality check predicate on the "preset_id" field. It's identical to PresetIDEQ.
func PresetID(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldPresetID, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldStepOrder, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldIntervalDays, v))
}

// AssigneeID applies equality check predicate on the "assignee_id" field. It's identical to AssigneeIDEQ.
func AssigneeID(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldAssigneeID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldCreatedAt, v))
}

// PresetIDEQ applies the EQ predicate on the "preset_id" field.
func PresetIDEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldPresetID, v))
}

// PresetIDNEQ applies the NEQ predicate on the "preset_id" field.
func PresetIDNEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldPresetID, v))
}

// PresetIDIn applies the In predicate on the "preset_id" field.
func PresetIDIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldPresetID, vs...))
}

// PresetIDNotIn applies the NotIn predicate on the "preset_id" field.
func PresetIDNotIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldPresetID, vs...))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLTE(FieldStepOrder, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v Method) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v Method) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...Method) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...Method) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldMethod, vs...))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLTE(FieldIntervalDays, v))
}

// AssigneeRuleEQ applies the EQ predicate on the "assignee_rule" field.
func AssigneeRuleEQ(v AssigneeRule) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldAssigneeRule, v))
}

// AssigneeRuleNEQ applies the NEQ predicate on the "assignee_rule" field.
func AssigneeRuleNEQ(v AssigneeRule) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldAssigneeRule, v))
}

// AssigneeRuleIn applies the In predicate on the "assignee_rule" field.
func AssigneeRuleIn(vs ...AssigneeRule) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldAssigneeRule, vs...))
}

// AssigneeRuleNotIn applies the NotIn predicate on the "assignee_rule" field.
func AssigneeRuleNotIn(vs ...AssigneeRule) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldAssigneeRule, vs...))
}

// AssigneeIDEQ applies the EQ predicate on the "assignee_id" field.
func AssigneeIDEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldAssigneeID, v))
}

// AssigneeIDNEQ applies the NEQ predicate on the "assignee_id" field.
func AssigneeIDNEQ(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldAssigneeID, v))
}

// AssigneeIDIn applies the In predicate on the "assignee_id" field.
func AssigneeIDIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldAssigneeID, vs...))
}

// AssigneeIDNotIn applies the NotIn predicate on the "assignee_id" field.
func AssigneeIDNotIn(vs ...int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldAssigneeID, vs...))
}

// AssigneeIDGT applies the GT predicate on the "assignee_id" field.
func AssigneeIDGT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGT(FieldAssigneeID, v))
}

// AssigneeIDGTE applies the GTE predicate on the "assignee_id" field.
func AssigneeIDGTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGTE(FieldAssigneeID, v))
}

// AssigneeIDLT applies the LT predicate on the "assignee_id" field.
func AssigneeIDLT(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLT(FieldAssigneeID, v))
}

// AssigneeIDLTE applies the LTE predicate on the "assignee_id" field.
func AssigneeIDLTE(v int) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLTE(FieldAssigneeID, v))
}

// AssigneeIDIsNil applies the IsNil predicate on the "assignee_id" field.
func AssigneeIDIsNil() predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIsNull(FieldAssigneeID))
}

// AssigneeIDNotNil applies the NotNil predicate on the "assignee_id" field.
func AssigneeIDNotNil() predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotNull(FieldAssigneeID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PresetStep {
	return predicate.PresetStep(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPreset applies the HasEdge predicate on the "preset" edge.
func HasPreset() predicate.PresetStep {
	return predicate.PresetStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PresetTable, PresetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPresetWith applies the HasEdge predicate on the "preset" edge with a given conditions (other predicates).
func HasPresetWith(preds ...predicate.Preset) predicate.PresetStep {
	return predicate.PresetStep(func(s *sql.Selector) {
		step := newPresetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PresetStep) predicate.PresetStep {
	return predicate.PresetStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PresetStep) predicate.PresetStep {
	return predicate.PresetStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PresetStep) predicate.PresetStep {
	return predicate.PresetStep(sql.NotPredicates(p))
}
