// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
)

// PresetStep is the model entity for the PresetStep schema.
type PresetStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Preset this step belongs to
	PresetID int `json:"preset_id,omitempty"`
	// Position of this step in the sequence (0, 1, 2...)
	StepOrder int `json:"step_order,omitempty"`
	// Contact method used for this touch
	Method presetstep.Method `json:"method,omitempty"`
	// Days to wait after the previous step (0 = same day as anchor/previous step)
	IntervalDays int `json:"interval_days,omitempty"`
	// How the assignee of the materialized touch is resolved
	AssigneeRule presetstep.AssigneeRule `json:"assignee_rule,omitempty"`
	// Fixed user for the specific_user rule
	AssigneeID int `json:"assignee_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PresetStepQuery when eager-loading is set.
	Edges        PresetStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PresetStepEdges holds the relations/edges for other nodes in the graph.
type PresetStepEdges struct {
	// Preset holds the value of the preset edge.
	Preset *Preset `json:"preset,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PresetOrErr returns the Preset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PresetStepEdges) PresetOrErr() (*Preset, error) {
	if e.Preset != nil {
		return e.Preset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: preset.Label}
	}
	return nil, &NotLoadedError{edge: "preset"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PresetStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case presetstep.FieldID, presetstep.FieldPresetID, presetstep.FieldStepOrder, presetstep.FieldIntervalDays, presetstep.FieldAssigneeID:
			values[i] = new(sql.NullInt64)
		case presetstep.FieldMethod, presetstep.FieldAssigneeRule:
			values[i] = new(sql.NullString)
		case presetstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PresetStep fields.
func (_m *PresetStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case presetstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case presetstep.FieldPresetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field preset_id", values[i])
			} else if value.Valid {
				_m.PresetID = int(value.Int64)
			}
		case presetstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case presetstep.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = presetstep.Method(value.String)
			}
		case presetstep.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case presetstep.FieldAssigneeRule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_rule", values[i])
			} else if value.Valid {
				_m.AssigneeRule = presetstep.AssigneeRule(value.String)
			}
		case presetstep.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				_m.AssigneeID = int(value.Int64)
			}
		case presetstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PresetStep.
// This includes values selected through modifiers, order, etc.
func (_m *PresetStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPreset queries the "preset" edge of the PresetStep entity.
func (_m *PresetStep) QueryPreset() *PresetQuery {
	return NewPresetStepClient(_m.config).QueryPreset(_m)
}

// Update returns a builder for updating this PresetStep.
// Note that you need to call PresetStep.Unwrap() before calling this method if this PresetStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PresetStep) Update() *PresetStepUpdateOne {
	return NewPresetStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PresetStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PresetStep) Unwrap() *PresetStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PresetStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PresetStep) String() string {
	var builder strings.Builder
	builder.WriteString("PresetStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("preset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PresetID))
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(fmt.Sprintf("%v", _m.Method))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("assignee_rule=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssigneeRule))
	builder.WriteString(", ")
	builder.WriteString("assignee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssigneeID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PresetSteps is a parsable slice of PresetStep.
type PresetSteps []*PresetStep
