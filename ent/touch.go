// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
)

// Touch is the model entity for the Touch schema.
type Touch struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subscription this touch belongs to
	SubscriptionID int `json:"subscription_id,omitempty"`
	// Cycle number this touch was materialized for (1-based)
	Cycle int `json:"cycle,omitempty"`
	// Position within the cycle; contiguous starting at 0
	SequenceIndex int `json:"sequence_index,omitempty"`
	// Contact method
	Method touch.Method `json:"method,omitempty"`
	// Date this touch is due
	ScheduledDate time.Time `json:"scheduled_date,omitempty"`
	// Optional time of day in HH:MM
	ScheduledTime string `json:"scheduled_time,omitempty"`
	// User the touch is assigned to
	AssignedTo int `json:"assigned_to,omitempty"`
	// Per-touch lifecycle; completed and skipped are terminal
	Status touch.Status `json:"status,omitempty"`
	// Outcome recorded at completion
	Outcome string `json:"outcome,omitempty"`
	// Free-form notes recorded at completion
	OutcomeNotes string `json:"outcome_notes,omitempty"`
	// Follow-up task in the external task service
	LinkedTaskID string `json:"linked_task_id,omitempty"`
	// Reminder in the external reminder service
	LinkedReminderID string `json:"linked_reminder_id,omitempty"`
	// When the touch reached a terminal status
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TouchQuery when eager-loading is set.
	Edges        TouchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TouchEdges holds the relations/edges for other nodes in the graph.
type TouchEdges struct {
	// Subscription holds the value of the subscription edge.
	Subscription *Subscription `json:"subscription,omitempty"`
	// Informational outcome entries that did not resolve the touch
	Logs []*TouchLog `json:"logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TouchEdges) SubscriptionOrErr() (*Subscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e TouchEdges) LogsOrErr() ([]*TouchLog, error) {
	if e.loadedTypes[1] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Touch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case touch.FieldID, touch.FieldSubscriptionID, touch.FieldCycle, touch.FieldSequenceIndex, touch.FieldAssignedTo:
			values[i] = new(sql.NullInt64)
		case touch.FieldMethod, touch.FieldScheduledTime, touch.FieldStatus, touch.FieldOutcome, touch.FieldOutcomeNotes, touch.FieldLinkedTaskID, touch.FieldLinkedReminderID:
			values[i] = new(sql.NullString)
		case touch.FieldScheduledDate, touch.FieldResolvedAt, touch.FieldCreatedAt, touch.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Touch fields.
func (_m *Touch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case touch.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case touch.FieldSubscriptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_id", values[i])
			} else if value.Valid {
				_m.SubscriptionID = int(value.Int64)
			}
		case touch.FieldCycle:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle", values[i])
			} else if value.Valid {
				_m.Cycle = int(value.Int64)
			}
		case touch.FieldSequenceIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_index", values[i])
			} else if value.Valid {
				_m.SequenceIndex = int(value.Int64)
			}
		case touch.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = touch.Method(value.String)
			}
		case touch.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				_m.ScheduledDate = value.Time
			}
		case touch.FieldScheduledTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_time", values[i])
			} else if value.Valid {
				_m.ScheduledTime = value.String
			}
		case touch.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = int(value.Int64)
			}
		case touch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = touch.Status(value.String)
			}
		case touch.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case touch.FieldOutcomeNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_notes", values[i])
			} else if value.Valid {
				_m.OutcomeNotes = value.String
			}
		case touch.FieldLinkedTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linked_task_id", values[i])
			} else if value.Valid {
				_m.LinkedTaskID = value.String
			}
		case touch.FieldLinkedReminderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linked_reminder_id", values[i])
			} else if value.Valid {
				_m.LinkedReminderID = value.String
			}
		case touch.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case touch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case touch.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Touch.
// This includes values selected through modifiers, order, etc.
func (_m *Touch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscription queries the "subscription" edge of the Touch entity.
func (_m *Touch) QuerySubscription() *SubscriptionQuery {
	return NewTouchClient(_m.config).QuerySubscription(_m)
}

// QueryLogs queries the "logs" edge of the Touch entity.
func (_m *Touch) QueryLogs() *TouchLogQuery {
	return NewTouchClient(_m.config).QueryLogs(_m)
}

// Update returns a builder for updating this Touch.
// Note that you need to call Touch.Unwrap() before calling this method if this Touch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Touch) Update() *TouchUpdateOne {
	return NewTouchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Touch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Touch) Unwrap() *Touch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Touch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Touch) String() string {
	var builder strings.Builder
	builder.WriteString("Touch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subscription_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubscriptionID))
	builder.WriteString(", ")
	builder.WriteString("cycle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cycle))
	builder.WriteString(", ")
	builder.WriteString("sequence_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceIndex))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(fmt.Sprintf("%v", _m.Method))
	builder.WriteString(", ")
	builder.WriteString("scheduled_date=")
	builder.WriteString(_m.ScheduledDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("scheduled_time=")
	builder.WriteString(_m.ScheduledTime)
	builder.WriteString(", ")
	builder.WriteString("assigned_to=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedTo))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("outcome_notes=")
	builder.WriteString(_m.OutcomeNotes)
	builder.WriteString(", ")
	builder.WriteString("linked_task_id=")
	builder.WriteString(_m.LinkedTaskID)
	builder.WriteString(", ")
	builder.WriteString("linked_reminder_id=")
	builder.WriteString(_m.LinkedReminderID)
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Touches is a parsable slice of Touch.
type Touches []*Touch
