// Code generated by ent, DO NOT EDIT.

package touch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/touchpoint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldID, id))
}

// SubscriptionID applies equality check predicate on the "subscription_id" field. It's identical to SubscriptionIDEQ.
func SubscriptionID(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldSubscriptionID, v))
}

// Cycle applies equality check predicate on the "cycle" field. It's identical to CycleEQ.
func Cycle(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldCycle, v))
}

// SequenceIndex applies equality check predicate on the "sequence_index" field. It's identical to SequenceIndexEQ.
func SequenceIndex(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldSequenceIndex, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledTime applies equality check predicate on the "scheduled_time" field. It's identical to ScheduledTimeEQ.
func ScheduledTime(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldScheduledTime, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldAssignedTo, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNotes applies equality check predicate on the "outcome_notes" field. It's identical to OutcomeNotesEQ.
func OutcomeNotes(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldOutcomeNotes, v))
}

// LinkedTaskID applies equality check predicate on the "linked_task_id" field. It's identical to LinkedTaskIDEQ.
func LinkedTaskID(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldLinkedTaskID, v))
}

// LinkedReminderID applies equality check predicate on the "linked_reminder_id" field. It's identical to LinkedReminderIDEQ.
func LinkedReminderID(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldLinkedReminderID, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubscriptionIDEQ applies the EQ predicate on the "subscription_id" field.
func SubscriptionIDEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldSubscriptionID, v))
}

// SubscriptionIDNEQ applies the NEQ predicate on the "subscription_id" field.
func SubscriptionIDNEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldSubscriptionID, v))
}

// SubscriptionIDIn applies the In predicate on the "subscription_id" field.
func SubscriptionIDIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldSubscriptionID, vs...))
}

// SubscriptionIDNotIn applies the NotIn predicate on the "subscription_id" field.
func SubscriptionIDNotIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldSubscriptionID, vs...))
}

// CycleEQ applies the EQ predicate on the "cycle" field.
func CycleEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldCycle, v))
}

// CycleNEQ applies the NEQ predicate on the "cycle" field.
func CycleNEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldCycle, v))
}

// CycleIn applies the In predicate on the "cycle" field.
func CycleIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldCycle, vs...))
}

// CycleNotIn applies the NotIn predicate on the "cycle" field.
func CycleNotIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldCycle, vs...))
}

// CycleGT applies the GT predicate on the "cycle" field.
func CycleGT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldCycle, v))
}

// CycleGTE applies the GTE predicate on the "cycle" field.
func CycleGTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldCycle, v))
}

// CycleLT applies the LT predicate on the "cycle" field.
func CycleLT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldCycle, v))
}

// CycleLTE applies the LTE predicate on the "cycle" field.
func CycleLTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldCycle, v))
}

// SequenceIndexEQ applies the EQ predicate on the "sequence_index" field.
func SequenceIndexEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldSequenceIndex, v))
}

// SequenceIndexNEQ applies the NEQ predicate on the "sequence_index" field.
func SequenceIndexNEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldSequenceIndex, v))
}

// SequenceIndexIn applies the In predicate on the "sequence_index" field.
func SequenceIndexIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldSequenceIndex, vs...))
}

// SequenceIndexNotIn applies the NotIn predicate on the "sequence_index" field.
func SequenceIndexNotIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldSequenceIndex, vs...))
}

// SequenceIndexGT applies the GT predicate on the "sequence_index" field.
func SequenceIndexGT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldSequenceIndex, v))
}

// SequenceIndexGTE applies the GTE predicate on the "sequence_index" field.
func SequenceIndexGTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldSequenceIndex, v))
}

// SequenceIndexLT applies the LT predicate on the "sequence_index" field.
func SequenceIndexLT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldSequenceIndex, v))
}

// SequenceIndexLTE applies the LTE predicate on the "sequence_index" field.
func SequenceIndexLTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldSequenceIndex, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v Method) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v Method) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...Method) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...Method) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldMethod, vs...))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldScheduledDate, v))
}

// ScheduledTimeEQ applies the EQ predicate on the "scheduled_time" field.
func ScheduledTimeEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldScheduledTime, v))
}

// ScheduledTimeNEQ applies the NEQ predicate on the "scheduled_time" field.
func ScheduledTimeNEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldScheduledTime, v))
}

// ScheduledTimeIn applies the In predicate on the "scheduled_time" field.
func ScheduledTimeIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldScheduledTime, vs...))
}

// ScheduledTimeNotIn applies the NotIn predicate on the "scheduled_time" field.
func ScheduledTimeNotIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldScheduledTime, vs...))
}

// ScheduledTimeGT applies the GT predicate on the "scheduled_time" field.
func ScheduledTimeGT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldScheduledTime, v))
}

// ScheduledTimeGTE applies the GTE predicate on the "scheduled_time" field.
func ScheduledTimeGTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldScheduledTime, v))
}

// ScheduledTimeLT applies the LT predicate on the "scheduled_time" field.
func ScheduledTimeLT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldScheduledTime, v))
}

// ScheduledTimeLTE applies the LTE predicate on the "scheduled_time" field.
func ScheduledTimeLTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldScheduledTime, v))
}

// ScheduledTimeContains applies the Contains predicate on the "scheduled_time" field.
func ScheduledTimeContains(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContains(FieldScheduledTime, v))
}

// ScheduledTimeHasPrefix applies the HasPrefix predicate on the "scheduled_time" field.
func ScheduledTimeHasPrefix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasPrefix(FieldScheduledTime, v))
}

// ScheduledTimeHasSuffix applies the HasSuffix predicate on the "scheduled_time" field.
func ScheduledTimeHasSuffix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasSuffix(FieldScheduledTime, v))
}

// ScheduledTimeIsNil applies the IsNil predicate on the "scheduled_time" field.
func ScheduledTimeIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldScheduledTime))
}

// ScheduledTimeNotNil applies the NotNil predicate on the "scheduled_time" field.
func ScheduledTimeNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldScheduledTime))
}

// ScheduledTimeEqualFold applies the EqualFold predicate on the "scheduled_time" field.
func ScheduledTimeEqualFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEqualFold(FieldScheduledTime, v))
}

// ScheduledTimeContainsFold applies the ContainsFold predicate on the "scheduled_time" field.
func ScheduledTimeContainsFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContainsFold(FieldScheduledTime, v))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v int) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...int) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v int) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldAssignedTo, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldStatus, vs...))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldOutcome))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContainsFold(FieldOutcome, v))
}

// OutcomeNotesEQ applies the EQ predicate on the "outcome_notes" field.
func OutcomeNotesEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesNEQ applies the NEQ predicate on the "outcome_notes" field.
func OutcomeNotesNEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesIn applies the In predicate on the "outcome_notes" field.
func OutcomeNotesIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesNotIn applies the NotIn predicate on the "outcome_notes" field.
func OutcomeNotesNotIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesGT applies the GT predicate on the "outcome_notes" field.
func OutcomeNotesGT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldOutcomeNotes, v))
}

// OutcomeNotesGTE applies the GTE predicate on the "outcome_notes" field.
func OutcomeNotesGTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldOutcomeNotes, v))
}

// OutcomeNotesLT applies the LT predicate on the "outcome_notes" field.
func OutcomeNotesLT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldOutcomeNotes, v))
}

// OutcomeNotesLTE applies the LTE predicate on the "outcome_notes" field.
func OutcomeNotesLTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldOutcomeNotes, v))
}

// OutcomeNotesContains applies the Contains predicate on the "outcome_notes" field.
func OutcomeNotesContains(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContains(FieldOutcomeNotes, v))
}

// OutcomeNotesHasPrefix applies the HasPrefix predicate on the "outcome_notes" field.
func OutcomeNotesHasPrefix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasPrefix(FieldOutcomeNotes, v))
}

// OutcomeNotesHasSuffix applies the HasSuffix predicate on the "outcome_notes" field.
func OutcomeNotesHasSuffix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasSuffix(FieldOutcomeNotes, v))
}

// OutcomeNotesIsNil applies the IsNil predicate on the "outcome_notes" field.
func OutcomeNotesIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldOutcomeNotes))
}

// OutcomeNotesNotNil applies the NotNil predicate on the "outcome_notes" field.
func OutcomeNotesNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldOutcomeNotes))
}

// OutcomeNotesEqualFold applies the EqualFold predicate on the "outcome_notes" field.
func OutcomeNotesEqualFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEqualFold(FieldOutcomeNotes, v))
}

// OutcomeNotesContainsFold applies the ContainsFold predicate on the "outcome_notes" field.
func OutcomeNotesContainsFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContainsFold(FieldOutcomeNotes, v))
}

// LinkedTaskIDEQ applies the EQ predicate on the "linked_task_id" field.
func LinkedTaskIDEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldLinkedTaskID, v))
}

// LinkedTaskIDNEQ applies the NEQ predicate on the "linked_task_id" field.
func LinkedTaskIDNEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldLinkedTaskID, v))
}

// LinkedTaskIDIn applies the In predicate on the "linked_task_id" field.
func LinkedTaskIDIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldLinkedTaskID, vs...))
}

// LinkedTaskIDNotIn applies the NotIn predicate on the "linked_task_id" field.
func LinkedTaskIDNotIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldLinkedTaskID, vs...))
}

// LinkedTaskIDGT applies the GT predicate on the "linked_task_id" field.
func LinkedTaskIDGT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldLinkedTaskID, v))
}

// LinkedTaskIDGTE applies the GTE predicate on the "linked_task_id" field.
func LinkedTaskIDGTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldLinkedTaskID, v))
}

// LinkedTaskIDLT applies the LT predicate on the "linked_task_id" field.
func LinkedTaskIDLT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldLinkedTaskID, v))
}

// LinkedTaskIDLTE applies the LTE predicate on the "linked_task_id" field.
func LinkedTaskIDLTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldLinkedTaskID, v))
}

// LinkedTaskIDContains applies the Contains predicate on the "linked_task_id" field.
func LinkedTaskIDContains(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContains(FieldLinkedTaskID, v))
}

// LinkedTaskIDHasPrefix applies the HasPrefix predicate on the "linked_task_id" field.
func LinkedTaskIDHasPrefix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasPrefix(FieldLinkedTaskID, v))
}

// LinkedTaskIDHasSuffix applies the HasSuffix predicate on the "linked_task_id" field.
func LinkedTaskIDHasSuffix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasSuffix(FieldLinkedTaskID, v))
}

// LinkedTaskIDIsNil applies the IsNil predicate on the "linked_task_id" field.
func LinkedTaskIDIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldLinkedTaskID))
}

// LinkedTaskIDNotNil applies the NotNil predicate on the "linked_task_id" field.
func LinkedTaskIDNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldLinkedTaskID))
}

// LinkedTaskIDEqualFold applies the EqualFold predicate on the "linked_task_id" field.
func LinkedTaskIDEqualFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEqualFold(FieldLinkedTaskID, v))
}

// LinkedTaskIDContainsFold applies the ContainsFold predicate on the "linked_task_id" field.
func LinkedTaskIDContainsFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContainsFold(FieldLinkedTaskID, v))
}

// LinkedReminderIDEQ applies the EQ predicate on the "linked_reminder_id" field.
func LinkedReminderIDEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldLinkedReminderID, v))
}

// LinkedReminderIDNEQ applies the NEQ predicate on the "linked_reminder_id" field.
func LinkedReminderIDNEQ(v string) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldLinkedReminderID, v))
}

// LinkedReminderIDIn applies the In predicate on the "linked_reminder_id" field.
func LinkedReminderIDIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldLinkedReminderID, vs...))
}

// LinkedReminderIDNotIn applies the NotIn predicate on the "linked_reminder_id" field.
func LinkedReminderIDNotIn(vs ...string) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldLinkedReminderID, vs...))
}

// LinkedReminderIDGT applies the GT predicate on the "linked_reminder_id" field.
func LinkedReminderIDGT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldLinkedReminderID, v))
}

// LinkedReminderIDGTE applies the GTE predicate on the "linked_reminder_id" field.
func LinkedReminderIDGTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldLinkedReminderID, v))
}

// LinkedReminderIDLT applies the LT predicate on the "linked_reminder_id" field.
func LinkedReminderIDLT(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldLinkedReminderID, v))
}

// LinkedReminderIDLTE applies the LTE predicate on the "linked_reminder_id" field.
func LinkedReminderIDLTE(v string) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldLinkedReminderID, v))
}

// LinkedReminderIDContains applies the Contains predicate on the "linked_reminder_id" field.
func LinkedReminderIDContains(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContains(FieldLinkedReminderID, v))
}

// LinkedReminderIDHasPrefix applies the HasPrefix predicate on the "linked_reminder_id" field.
func LinkedReminderIDHasPrefix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasPrefix(FieldLinkedReminderID, v))
}

// LinkedReminderIDHasSuffix applies the HasSuffix predicate on the "linked_reminder_id" field.
func LinkedReminderIDHasSuffix(v string) predicate.Touch {
	return predicate.Touch(sql.FieldHasSuffix(FieldLinkedReminderID, v))
}

// LinkedReminderIDIsNil applies the IsNil predicate on the "linked_reminder_id" field.
func LinkedReminderIDIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldLinkedReminderID))
}

// LinkedReminderIDNotNil applies the NotNil predicate on the "linked_reminder_id" field.
func LinkedReminderIDNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldLinkedReminderID))
}

// LinkedReminderIDEqualFold applies the EqualFold predicate on the "linked_reminder_id" field.
func LinkedReminderIDEqualFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldEqualFold(FieldLinkedReminderID, v))
}

// LinkedReminderIDContainsFold applies the ContainsFold predicate on the "linked_reminder_id" field.
func LinkedReminderIDContainsFold(v string) predicate.Touch {
	return predicate.Touch(sql.FieldContainsFold(FieldLinkedReminderID, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Touch {
	return predicate.Touch(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Touch {
	return predicate.Touch(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Touch {
	return predicate.Touch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubscription applies the HasEdge predicate on the "subscription" edge.
func HasSubscription() predicate.Touch {
	return predicate.Touch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubscriptionTable, SubscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionWith applies the HasEdge predicate on the "subscription" edge with a given conditions (other predicates).
func HasSubscriptionWith(preds ...predicate.Subscription) predicate.Touch {
	return predicate.Touch(func(s *sql.Selector) {
		step := newSubscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.Touch {
	return predicate.Touch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.TouchLog) predicate.Touch {
	return predicate.Touch(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Touch) predicate.Touch {
	return predicate.Touch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Touch) predicate.Touch {
	return predicate.Touch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Touch) predicate.Touch {
	return predicate.Touch(sql.NotPredicates(p))
}
