// Code generated by ent, DO NOT EDIT.

package touchlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/touchpoint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLTE(FieldID, id))
}

// TouchID applies equality check predicate on the "touch_id" field. It's identical to TouchIDEQ.
func TouchID(v int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldTouchID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldOutcome, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TouchIDEQ applies the EQ predicate on the "touch_id" field.
func TouchIDEQ(v int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldTouchID, v))
}

// TouchIDNEQ applies the NEQ predicate on the "touch_id" field.
func TouchIDNEQ(v int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldTouchID, v))
}

// TouchIDIn applies the In predicate on the "touch_id" field.
func TouchIDIn(vs ...int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldTouchID, vs...))
}

// TouchIDNotIn applies the NotIn predicate on the "touch_id" field.
func TouchIDNotIn(vs ...int) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldTouchID, vs...))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldContainsFold(FieldOutcome, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldContainsFold(FieldNotes, v))
}

// FollowUpEQ applies the EQ predicate on the "follow_up" field.
func FollowUpEQ(v FollowUp) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldFollowUp, v))
}

// FollowUpNEQ applies the NEQ predicate on the "follow_up" field.
func FollowUpNEQ(v FollowUp) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldFollowUp, v))
}

// FollowUpIn applies the In predicate on the "follow_up" field.
func FollowUpIn(vs ...FollowUp) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldFollowUp, vs...))
}

// FollowUpNotIn applies the NotIn predicate on the "follow_up" field.
func FollowUpNotIn(vs ...FollowUp) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldFollowUp, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TouchLog {
	return predicate.TouchLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTouch applies the HasEdge predicate on the "touch" edge.
func HasTouch() predicate.TouchLog {
	return predicate.TouchLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TouchTable, TouchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTouchWith applies the HasEdge predicate on the "touch" edge with a given conditions (other predicates).
func HasTouchWith(preds ...predicate.Touch) predicate.TouchLog {
	return predicate.TouchLog(func(s *sql.Selector) {
		step := newTouchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TouchLog) predicate.TouchLog {
	return predicate.TouchLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TouchLog) predicate.TouchLog {
	return predicate.TouchLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TouchLog) predicate.TouchLog {
	return predicate.TouchLog(sql.NotPredicates(p))
}
