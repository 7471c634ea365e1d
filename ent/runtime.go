// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
	"github.com/jordanlanch/touchpoint/ent/schema"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogFields[7].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	presetFields := schema.Preset{}.Fields()
	_ = presetFields
	// presetDescName is the schema descriptor for name field.
	presetDescName := presetFields[0].Descriptor()
	// preset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	preset.NameValidator = func() func(string) error {
		validators := presetDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// presetDescIsActive is the schema descriptor for is_active field.
	presetDescIsActive := presetFields[3].Descriptor()
	// preset.DefaultIsActive holds the default value on creation for the is_active field.
	preset.DefaultIsActive = presetDescIsActive.Default.(bool)
	// presetDescCreatedAt is the schema descriptor for created_at field.
	presetDescCreatedAt := presetFields[4].Descriptor()
	// preset.DefaultCreatedAt holds the default value on creation for the created_at field.
	preset.DefaultCreatedAt = presetDescCreatedAt.Default.(func() time.Time)
	// presetDescUpdatedAt is the schema descriptor for updated_at field.
	presetDescUpdatedAt := presetFields[5].Descriptor()
	// preset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	preset.DefaultUpdatedAt = presetDescUpdatedAt.Default.(func() time.Time)
	// preset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	preset.UpdateDefaultUpdatedAt = presetDescUpdatedAt.UpdateDefault.(func() time.Time)
	presetstepFields := schema.PresetStep{}.Fields()
	_ = presetstepFields
	// presetstepDescPresetID is the schema descriptor for preset_id field.
	presetstepDescPresetID := presetstepFields[0].Descriptor()
	// presetstep.PresetIDValidator is a validator for the "preset_id" field. It is called by the builders before save.
	presetstep.PresetIDValidator = presetstepDescPresetID.Validators[0].(func(int) error)
	// presetstepDescStepOrder is the schema descriptor for step_order field.
	presetstepDescStepOrder := presetstepFields[1].Descriptor()
	// presetstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	presetstep.StepOrderValidator = presetstepDescStepOrder.Validators[0].(func(int) error)
	// presetstepDescIntervalDays is the schema descriptor for interval_days field.
	presetstepDescIntervalDays := presetstepFields[3].Descriptor()
	// presetstep.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	presetstep.IntervalDaysValidator = presetstepDescIntervalDays.Validators[0].(func(int) error)
	// presetstepDescCreatedAt is the schema descriptor for created_at field.
	presetstepDescCreatedAt := presetstepFields[6].Descriptor()
	// presetstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	presetstep.DefaultCreatedAt = presetstepDescCreatedAt.Default.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescEntityID is the schema descriptor for entity_id field.
	subscriptionDescEntityID := subscriptionFields[1].Descriptor()
	// subscription.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	subscription.EntityIDValidator = subscriptionDescEntityID.Validators[0].(func(int) error)
	// subscriptionDescEntityName is the schema descriptor for entity_name field.
	subscriptionDescEntityName := subscriptionFields[2].Descriptor()
	// subscription.EntityNameValidator is a validator for the "entity_name" field. It is called by the builders before save.
	subscription.EntityNameValidator = subscriptionDescEntityName.Validators[0].(func(string) error)
	// subscriptionDescEntityPhone is the schema descriptor for entity_phone field.
	subscriptionDescEntityPhone := subscriptionFields[3].Descriptor()
	// subscription.EntityPhoneValidator is a validator for the "entity_phone" field. It is called by the builders before save.
	subscription.EntityPhoneValidator = subscriptionDescEntityPhone.Validators[0].(func(string) error)
	// subscriptionDescAssignedTo is the schema descriptor for assigned_to field.
	subscriptionDescAssignedTo := subscriptionFields[7].Descriptor()
	// subscription.AssignedToValidator is a validator for the "assigned_to" field. It is called by the builders before save.
	subscription.AssignedToValidator = subscriptionDescAssignedTo.Validators[0].(func(int) error)
	// subscriptionDescCycleCount is the schema descriptor for cycle_count field.
	subscriptionDescCycleCount := subscriptionFields[9].Descriptor()
	// subscription.DefaultCycleCount holds the default value on creation for the cycle_count field.
	subscription.DefaultCycleCount = subscriptionDescCycleCount.Default.(int)
	// subscription.CycleCountValidator is a validator for the "cycle_count" field. It is called by the builders before save.
	subscription.CycleCountValidator = subscriptionDescCycleCount.Validators[0].(func(int) error)
	// subscriptionDescCurrentStep is the schema descriptor for current_step field.
	subscriptionDescCurrentStep := subscriptionFields[11].Descriptor()
	// subscription.DefaultCurrentStep holds the default value on creation for the current_step field.
	subscription.DefaultCurrentStep = subscriptionDescCurrentStep.Default.(int)
	// subscription.CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	subscription.CurrentStepValidator = subscriptionDescCurrentStep.Validators[0].(func(int) error)
	// subscriptionDescSkipWeekends is the schema descriptor for skip_weekends field.
	subscriptionDescSkipWeekends := subscriptionFields[14].Descriptor()
	// subscription.DefaultSkipWeekends holds the default value on creation for the skip_weekends field.
	subscription.DefaultSkipWeekends = subscriptionDescSkipWeekends.Default.(bool)
	// subscriptionDescStartedAt is the schema descriptor for started_at field.
	subscriptionDescStartedAt := subscriptionFields[15].Descriptor()
	// subscription.DefaultStartedAt holds the default value on creation for the started_at field.
	subscription.DefaultStartedAt = subscriptionDescStartedAt.Default.(func() time.Time)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[16].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[17].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	touchFields := schema.Touch{}.Fields()
	_ = touchFields
	// touchDescSubscriptionID is the schema descriptor for subscription_id field.
	touchDescSubscriptionID := touchFields[0].Descriptor()
	// touch.SubscriptionIDValidator is a validator for the "subscription_id" field. It is called by the builders before save.
	touch.SubscriptionIDValidator = touchDescSubscriptionID.Validators[0].(func(int) error)
	// touchDescCycle is the schema descriptor for cycle field.
	touchDescCycle := touchFields[1].Descriptor()
	// touch.CycleValidator is a validator for the "cycle" field. It is called by the builders before save.
	touch.CycleValidator = touchDescCycle.Validators[0].(func(int) error)
	// touchDescSequenceIndex is the schema descriptor for sequence_index field.
	touchDescSequenceIndex := touchFields[2].Descriptor()
	// touch.SequenceIndexValidator is a validator for the "sequence_index" field. It is called by the builders before save.
	touch.SequenceIndexValidator = touchDescSequenceIndex.Validators[0].(func(int) error)
	// touchDescScheduledTime is the schema descriptor for scheduled_time field.
	touchDescScheduledTime := touchFields[5].Descriptor()
	// touch.ScheduledTimeValidator is a validator for the "scheduled_time" field. It is called by the builders before save.
	touch.ScheduledTimeValidator = touchDescScheduledTime.Validators[0].(func(string) error)
	// touchDescAssignedTo is the schema descriptor for assigned_to field.
	touchDescAssignedTo := touchFields[6].Descriptor()
	// touch.AssignedToValidator is a validator for the "assigned_to" field. It is called by the builders before save.
	touch.AssignedToValidator = touchDescAssignedTo.Validators[0].(func(int) error)
	// touchDescCreatedAt is the schema descriptor for created_at field.
	touchDescCreatedAt := touchFields[13].Descriptor()
	// touch.DefaultCreatedAt holds the default value on creation for the created_at field.
	touch.DefaultCreatedAt = touchDescCreatedAt.Default.(func() time.Time)
	// touchDescUpdatedAt is the schema descriptor for updated_at field.
	touchDescUpdatedAt := touchFields[14].Descriptor()
	// touch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	touch.DefaultUpdatedAt = touchDescUpdatedAt.Default.(func() time.Time)
	// touch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	touch.UpdateDefaultUpdatedAt = touchDescUpdatedAt.UpdateDefault.(func() time.Time)
	touchlogFields := schema.TouchLog{}.Fields()
	_ = touchlogFields
	// touchlogDescTouchID is the schema descriptor for touch_id field.
	touchlogDescTouchID := touchlogFields[0].Descriptor()
	// touchlog.TouchIDValidator is a validator for the "touch_id" field. It is called by the builders before save.
	touchlog.TouchIDValidator = touchlogDescTouchID.Validators[0].(func(int) error)
	// touchlogDescOutcome is the schema descriptor for outcome field.
	touchlogDescOutcome := touchlogFields[1].Descriptor()
	// touchlog.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	touchlog.OutcomeValidator = touchlogDescOutcome.Validators[0].(func(string) error)
	// touchlogDescCreatedAt is the schema descriptor for created_at field.
	touchlogDescCreatedAt := touchlogFields[4].Descriptor()
	// touchlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	touchlog.DefaultCreatedAt = touchlogDescCreatedAt.Default.(func() time.Time)
}
