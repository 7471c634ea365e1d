// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/preset"
)

// Preset is the model entity for the Preset schema.
type Preset struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name of the touch sequence template
	Name string `json:"name,omitempty"`
	// Optional description shown in the preset picker
	Description string `json:"description,omitempty"`
	// What happens when every touch of a cycle is resolved
	DefaultCycleBehavior preset.DefaultCycleBehavior `json:"default_cycle_behavior,omitempty"`
	// Inactive presets are hidden from pickers but keep existing subscriptions intact
	IsActive bool `json:"is_active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PresetQuery when eager-loading is set.
	Edges        PresetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PresetEdges holds the relations/edges for other nodes in the graph.
type PresetEdges struct {
	// Ordered step definitions of this template
	Steps []*PresetStep `json:"steps,omitempty"`
	// Subscriptions that were started from this preset
	Subscriptions []*Subscription `json:"subscriptions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e PresetEdges) StepsOrErr() ([]*PresetStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e PresetEdges) SubscriptionsOrErr() ([]*Subscription, error) {
	if e.loadedTypes[1] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Preset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case preset.FieldIsActive:
			values[i] = new(sql.NullBool)
		case preset.FieldID:
			values[i] = new(sql.NullInt64)
		case preset.FieldName, preset.FieldDescription, preset.FieldDefaultCycleBehavior:
			values[i] = new(sql.NullString)
		case preset.FieldCreatedAt, preset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Preset fields.
func (_m *Preset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case preset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case preset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case preset.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case preset.FieldDefaultCycleBehavior:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_cycle_behavior", values[i])
			} else if value.Valid {
				_m.DefaultCycleBehavior = preset.DefaultCycleBehavior(value.String)
			}
		case preset.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case preset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case preset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Preset.
// This includes values selected through modifiers, order, etc.
func (_m *Preset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Preset entity.
func (_m *Preset) QuerySteps() *PresetStepQuery {
	return NewPresetClient(_m.config).QuerySteps(_m)
}

// QuerySubscriptions queries the "subscriptions" edge of the Preset entity.
func (_m *Preset) QuerySubscriptions() *SubscriptionQuery {
	return NewPresetClient(_m.config).QuerySubscriptions(_m)
}

// Update returns a builder for updating this Preset.
// Note that you need to call Preset.Unwrap() before calling this method if this Preset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Preset) Update() *PresetUpdateOne {
	return NewPresetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Preset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Preset) Unwrap() *Preset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Preset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Preset) String() string {
	var builder strings.Builder
	builder.WriteString("Preset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("default_cycle_behavior=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultCycleBehavior))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Presets is a parsable slice of Preset.
type Presets []*Preset
