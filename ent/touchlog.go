// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchLog is the model entity for the TouchLog schema.
type TouchLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Touch this log entry belongs to
	TouchID int `json:"touch_id,omitempty"`
	// Outcome reported by the operator
	Outcome string `json:"outcome,omitempty"`
	// Free-form notes
	Notes string `json:"notes,omitempty"`
	// Follow-up decision taken together with the outcome
	FollowUp touchlog.FollowUp `json:"follow_up,omitempty"`
	// Timestamp of the log entry
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TouchLogQuery when eager-loading is set.
	Edges        TouchLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TouchLogEdges holds the relations/edges for other nodes in the graph.
type TouchLogEdges struct {
	// Touch holds the value of the touch edge.
	Touch *Touch `json:"touch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TouchOrErr returns the Touch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TouchLogEdges) TouchOrErr() (*Touch, error) {
	if e.Touch != nil {
		return e.Touch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: touch.Label}
	}
	return nil, &NotLoadedError{edge: "touch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TouchLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case touchlog.FieldID, touchlog.FieldTouchID:
			values[i] = new(sql.NullInt64)
		case touchlog.FieldOutcome, touchlog.FieldNotes, touchlog.FieldFollowUp:
			values[i] = new(sql.NullString)
		case touchlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TouchLog fields.
func (_m *TouchLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case touchlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case touchlog.FieldTouchID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field touch_id", values[i])
			} else if value.Valid {
				_m.TouchID = int(value.Int64)
			}
		case touchlog.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case touchlog.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case touchlog.FieldFollowUp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up", values[i])
			} else if value.Valid {
				_m.FollowUp = touchlog.FollowUp(value.String)
			}
		case touchlog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TouchLog.
// This includes values selected through modifiers, order, etc.
func (_m *TouchLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTouch queries the "touch" edge of the TouchLog entity.
func (_m *TouchLog) QueryTouch() *TouchQuery {
	return NewTouchLogClient(_m.config).QueryTouch(_m)
}

// Update returns a builder for updating this TouchLog.
// Note that you need to call TouchLog.Unwrap() before calling this method if this TouchLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TouchLog) Update() *TouchLogUpdateOne {
	return NewTouchLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TouchLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TouchLog) Unwrap() *TouchLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TouchLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TouchLog) String() string {
	var builder strings.Builder
	builder.WriteString("TouchLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("touch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TouchID))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("follow_up=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUp))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TouchLogs is a parsable slice of TouchLog.
type TouchLogs []*TouchLog
