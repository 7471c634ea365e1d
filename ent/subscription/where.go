// Code generated by ent, DO NOT EDIT.

package subscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/touchpoint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityID, v))
}

// EntityName applies equality check predicate on the "entity_name" field. It's identical to EntityNameEQ.
func EntityName(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityName, v))
}

// EntityPhone applies equality check predicate on the "entity_phone" field. It's identical to EntityPhoneEQ.
func EntityPhone(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityPhone, v))
}

// PresetID applies equality check predicate on the "preset_id" field. It's identical to PresetIDEQ.
func PresetID(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPresetID, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAssignedTo, v))
}

// CycleCount applies equality check predicate on the "cycle_count" field. It's identical to CycleCountEQ.
func CycleCount(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCycleCount, v))
}

// MaxCycles applies equality check predicate on the "max_cycles" field. It's identical to MaxCyclesEQ.
func MaxCycles(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldMaxCycles, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCurrentStep, v))
}

// PauseUntil applies equality check predicate on the "pause_until" field. It's identical to PauseUntilEQ.
func PauseUntil(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPauseUntil, v))
}

// PauseReason applies equality check predicate on the "pause_reason" field. It's identical to PauseReasonEQ.
func PauseReason(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPauseReason, v))
}

// SkipWeekends applies equality check predicate on the "skip_weekends" field. It's identical to SkipWeekendsEQ.
func SkipWeekends(v bool) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldSkipWeekends, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldStartedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldEntityID, v))
}

// EntityNameEQ applies the EQ predicate on the "entity_name" field.
func EntityNameEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityName, v))
}

// EntityNameNEQ applies the NEQ predicate on the "entity_name" field.
func EntityNameNEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldEntityName, v))
}

// EntityNameIn applies the In predicate on the "entity_name" field.
func EntityNameIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldEntityName, vs...))
}

// EntityNameNotIn applies the NotIn predicate on the "entity_name" field.
func EntityNameNotIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldEntityName, vs...))
}

// EntityNameGT applies the GT predicate on the "entity_name" field.
func EntityNameGT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldEntityName, v))
}

// EntityNameGTE applies the GTE predicate on the "entity_name" field.
func EntityNameGTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldEntityName, v))
}

// EntityNameLT applies the LT predicate on the "entity_name" field.
func EntityNameLT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldEntityName, v))
}

// EntityNameLTE applies the LTE predicate on the "entity_name" field.
func EntityNameLTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldEntityName, v))
}

// EntityNameContains applies the Contains predicate on the "entity_name" field.
func EntityNameContains(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContains(FieldEntityName, v))
}

// EntityNameHasPrefix applies the HasPrefix predicate on the "entity_name" field.
func EntityNameHasPrefix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasPrefix(FieldEntityName, v))
}

// EntityNameHasSuffix applies the HasSuffix predicate on the "entity_name" field.
func EntityNameHasSuffix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasSuffix(FieldEntityName, v))
}

// EntityNameIsNil applies the IsNil predicate on the "entity_name" field.
func EntityNameIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldEntityName))
}

// EntityNameNotNil applies the NotNil predicate on the "entity_name" field.
func EntityNameNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldEntityName))
}

// EntityNameEqualFold applies the EqualFold predicate on the "entity_name" field.
func EntityNameEqualFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEqualFold(FieldEntityName, v))
}

// EntityNameContainsFold applies the ContainsFold predicate on the "entity_name" field.
func EntityNameContainsFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContainsFold(FieldEntityName, v))
}

// EntityPhoneEQ applies the EQ predicate on the "entity_phone" field.
func EntityPhoneEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEntityPhone, v))
}

// EntityPhoneNEQ applies the NEQ predicate on the "entity_phone" field.
func EntityPhoneNEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldEntityPhone, v))
}

// EntityPhoneIn applies the In predicate on the "entity_phone" field.
func EntityPhoneIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldEntityPhone, vs...))
}

// EntityPhoneNotIn applies the NotIn predicate on the "entity_phone" field.
func EntityPhoneNotIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldEntityPhone, vs...))
}

// EntityPhoneGT applies the GT predicate on the "entity_phone" field.
func EntityPhoneGT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldEntityPhone, v))
}

// EntityPhoneGTE applies the GTE predicate on the "entity_phone" field.
func EntityPhoneGTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldEntityPhone, v))
}

// EntityPhoneLT applies the LT predicate on the "entity_phone" field.
func EntityPhoneLT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldEntityPhone, v))
}

// EntityPhoneLTE applies the LTE predicate on the "entity_phone" field.
func EntityPhoneLTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldEntityPhone, v))
}

// EntityPhoneContains applies the Contains predicate on the "entity_phone" field.
func EntityPhoneContains(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContains(FieldEntityPhone, v))
}

// EntityPhoneHasPrefix applies the HasPrefix predicate on the "entity_phone" field.
func EntityPhoneHasPrefix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasPrefix(FieldEntityPhone, v))
}

// EntityPhoneHasSuffix applies the HasSuffix predicate on the "entity_phone" field.
func EntityPhoneHasSuffix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasSuffix(FieldEntityPhone, v))
}

// EntityPhoneIsNil applies the IsNil predicate on the "entity_phone" field.
func EntityPhoneIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldEntityPhone))
}

// EntityPhoneNotNil applies the NotNil predicate on the "entity_phone" field.
func EntityPhoneNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldEntityPhone))
}

// EntityPhoneEqualFold applies the EqualFold predicate on the "entity_phone" field.
func EntityPhoneEqualFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEqualFold(FieldEntityPhone, v))
}

// EntityPhoneContainsFold applies the ContainsFold predicate on the "entity_phone" field.
func EntityPhoneContainsFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContainsFold(FieldEntityPhone, v))
}

// PresetIDEQ applies the EQ predicate on the "preset_id" field.
func PresetIDEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPresetID, v))
}

// PresetIDNEQ applies the NEQ predicate on the "preset_id" field.
func PresetIDNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldPresetID, v))
}

// PresetIDIn applies the In predicate on the "preset_id" field.
func PresetIDIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldPresetID, vs...))
}

// PresetIDNotIn applies the NotIn predicate on the "preset_id" field.
func PresetIDNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldPresetID, vs...))
}

// PresetIDIsNil applies the IsNil predicate on the "preset_id" field.
func PresetIDIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldPresetID))
}

// PresetIDNotNil applies the NotNil predicate on the "preset_id" field.
func PresetIDNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldPresetID))
}

// CycleBehaviorEQ applies the EQ predicate on the "cycle_behavior" field.
func CycleBehaviorEQ(v CycleBehavior) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCycleBehavior, v))
}

// CycleBehaviorNEQ applies the NEQ predicate on the "cycle_behavior" field.
func CycleBehaviorNEQ(v CycleBehavior) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCycleBehavior, v))
}

// CycleBehaviorIn applies the In predicate on the "cycle_behavior" field.
func CycleBehaviorIn(vs ...CycleBehavior) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCycleBehavior, vs...))
}

// CycleBehaviorNotIn applies the NotIn predicate on the "cycle_behavior" field.
func CycleBehaviorNotIn(vs ...CycleBehavior) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCycleBehavior, vs...))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldAssignedTo, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldStatus, vs...))
}

// CycleCountEQ applies the EQ predicate on the "cycle_count" field.
func CycleCountEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCycleCount, v))
}

// CycleCountNEQ applies the NEQ predicate on the "cycle_count" field.
func CycleCountNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCycleCount, v))
}

// CycleCountIn applies the In predicate on the "cycle_count" field.
func CycleCountIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCycleCount, vs...))
}

// CycleCountNotIn applies the NotIn predicate on the "cycle_count" field.
func CycleCountNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCycleCount, vs...))
}

// CycleCountGT applies the GT predicate on the "cycle_count" field.
func CycleCountGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCycleCount, v))
}

// CycleCountGTE applies the GTE predicate on the "cycle_count" field.
func CycleCountGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCycleCount, v))
}

// CycleCountLT applies the LT predicate on the "cycle_count" field.
func CycleCountLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCycleCount, v))
}

// CycleCountLTE applies the LTE predicate on the "cycle_count" field.
func CycleCountLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCycleCount, v))
}

// MaxCyclesEQ applies the EQ predicate on the "max_cycles" field.
func MaxCyclesEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldMaxCycles, v))
}

// MaxCyclesNEQ applies the NEQ predicate on the "max_cycles" field.
func MaxCyclesNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldMaxCycles, v))
}

// MaxCyclesIn applies the In predicate on the "max_cycles" field.
func MaxCyclesIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldMaxCycles, vs...))
}

// MaxCyclesNotIn applies the NotIn predicate on the "max_cycles" field.
func MaxCyclesNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldMaxCycles, vs...))
}

// MaxCyclesGT applies the GT predicate on the "max_cycles" field.
func MaxCyclesGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldMaxCycles, v))
}

// MaxCyclesGTE applies the GTE predicate on the "max_cycles" field.
func MaxCyclesGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldMaxCycles, v))
}

// MaxCyclesLT applies the LT predicate on the "max_cycles" field.
func MaxCyclesLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldMaxCycles, v))
}

// MaxCyclesLTE applies the LTE predicate on the "max_cycles" field.
func MaxCyclesLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldMaxCycles, v))
}

// MaxCyclesIsNil applies the IsNil predicate on the "max_cycles" field.
func MaxCyclesIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldMaxCycles))
}

// MaxCyclesNotNil applies the NotNil predicate on the "max_cycles" field.
func MaxCyclesNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldMaxCycles))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCurrentStep, v))
}

// PauseUntilEQ applies the EQ predicate on the "pause_until" field.
func PauseUntilEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPauseUntil, v))
}

// PauseUntilNEQ applies the NEQ predicate on the "pause_until" field.
func PauseUntilNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldPauseUntil, v))
}

// PauseUntilIn applies the In predicate on the "pause_until" field.
func PauseUntilIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldPauseUntil, vs...))
}

// PauseUntilNotIn applies the NotIn predicate on the "pause_until" field.
func PauseUntilNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldPauseUntil, vs...))
}

// PauseUntilGT applies the GT predicate on the "pause_until" field.
func PauseUntilGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldPauseUntil, v))
}

// PauseUntilGTE applies the GTE predicate on the "pause_until" field.
func PauseUntilGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldPauseUntil, v))
}

// PauseUntilLT applies the LT predicate on the "pause_until" field.
func PauseUntilLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldPauseUntil, v))
}

// PauseUntilLTE applies the LTE predicate on the "pause_until" field.
func PauseUntilLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldPauseUntil, v))
}

// PauseUntilIsNil applies the IsNil predicate on the "pause_until" field.
func PauseUntilIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldPauseUntil))
}

// PauseUntilNotNil applies the NotNil predicate on the "pause_until" field.
func PauseUntilNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldPauseUntil))
}

// PauseReasonEQ applies the EQ predicate on the "pause_reason" field.
func PauseReasonEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPauseReason, v))
}

// PauseReasonNEQ applies the NEQ predicate on the "pause_reason" field.
func PauseReasonNEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldPauseReason, v))
}

// PauseReasonIn applies the In predicate on the "pause_reason" field.
func PauseReasonIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldPauseReason, vs...))
}

// PauseReasonNotIn applies the NotIn predicate on the "pause_reason" field.
func PauseReasonNotIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldPauseReason, vs...))
}

// PauseReasonGT applies the GT predicate on the "pause_reason" field.
func PauseReasonGT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldPauseReason, v))
}

// PauseReasonGTE applies the GTE predicate on the "pause_reason" field.
func PauseReasonGTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldPauseReason, v))
}

// PauseReasonLT applies the LT predicate on the "pause_reason" field.
func PauseReasonLT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldPauseReason, v))
}

// PauseReasonLTE applies the LTE predicate on the "pause_reason" field.
func PauseReasonLTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldPauseReason, v))
}

// PauseReasonContains applies the Contains predicate on the "pause_reason" field.
func PauseReasonContains(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContains(FieldPauseReason, v))
}

// PauseReasonHasPrefix applies the HasPrefix predicate on the "pause_reason" field.
func PauseReasonHasPrefix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasPrefix(FieldPauseReason, v))
}

// PauseReasonHasSuffix applies the HasSuffix predicate on the "pause_reason" field.
func PauseReasonHasSuffix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasSuffix(FieldPauseReason, v))
}

// PauseReasonIsNil applies the IsNil predicate on the "pause_reason" field.
func PauseReasonIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldPauseReason))
}

// PauseReasonNotNil applies the NotNil predicate on the "pause_reason" field.
func PauseReasonNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldPauseReason))
}

// PauseReasonEqualFold applies the EqualFold predicate on the "pause_reason" field.
func PauseReasonEqualFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEqualFold(FieldPauseReason, v))
}

// PauseReasonContainsFold applies the ContainsFold predicate on the "pause_reason" field.
func PauseReasonContainsFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContainsFold(FieldPauseReason, v))
}

// SkipWeekendsEQ applies the EQ predicate on the "skip_weekends" field.
func SkipWeekendsEQ(v bool) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldSkipWeekends, v))
}

// SkipWeekendsNEQ applies the NEQ predicate on the "skip_weekends" field.
func SkipWeekendsNEQ(v bool) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldSkipWeekends, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldStartedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPreset applies the HasEdge predicate on the "preset" edge.
func HasPreset() predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PresetTable, PresetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPresetWith applies the HasEdge predicate on the "preset" edge with a given conditions (other predicates).
func HasPresetWith(preds ...predicate.Preset) predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := newPresetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTouches applies the HasEdge predicate on the "touches" edge.
func HasTouches() predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TouchesTable, TouchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTouchesWith applies the HasEdge predicate on the "touches" edge with a given conditions (other predicates).
func HasTouchesWith(preds ...predicate.Touch) predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := newTouchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.NotPredicates(p))
}
