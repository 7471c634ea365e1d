// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// Preset is the predicate function for preset builders.
type Preset func(*sql.Selector)

// PresetStep is the predicate function for presetstep builders.
type PresetStep func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// Touch is the predicate function for touch builders.
type Touch func(*sql.Selector)

// TouchLog is the predicate function for touchlog builders.
type TouchLog func(*sql.Selector)
