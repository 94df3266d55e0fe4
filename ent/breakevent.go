// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pacelab/pacer/ent/breakevent"
)

// BreakEvent is the model entity for the BreakEvent schema.
type BreakEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// breathing, movement, mindfulness, or gaze_shift
	BreakType string `json:"break_type,omitempty"`
	// Urgency level at recommendation time
	Urgency string `json:"urgency,omitempty"`
	// Fatigue indicators that drove the recommendation
	Reason string `json:"reason,omitempty"`
	// Detector score when recommended
	FatigueLevel float64 `json:"fatigue_level,omitempty"`
	// Suggested break length
	DurationMs int64 `json:"duration_ms,omitempty"`
	// False when the learner skipped the break
	Completed bool `json:"completed,omitempty"`
	// Post-break recovery band, 0 when unmeasured
	RecoveryScore float64 `json:"recovery_score,omitempty"`
	// Relative response-time change across the break
	Improvement  float64 `json:"improvement,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BreakEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case breakevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case breakevent.FieldFatigueLevel, breakevent.FieldRecoveryScore, breakevent.FieldImprovement:
			values[i] = new(sql.NullFloat64)
		case breakevent.FieldID, breakevent.FieldSequence, breakevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case breakevent.FieldSessionID, breakevent.FieldBreakType, breakevent.FieldUrgency, breakevent.FieldReason:
			values[i] = new(sql.NullString)
		case breakevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BreakEvent fields.
func (_m *BreakEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case breakevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case breakevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case breakevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case breakevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case breakevent.FieldBreakType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field break_type", values[i])
			} else if value.Valid {
				_m.BreakType = value.String
			}
		case breakevent.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = value.String
			}
		case breakevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case breakevent.FieldFatigueLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fatigue_level", values[i])
			} else if value.Valid {
				_m.FatigueLevel = value.Float64
			}
		case breakevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case breakevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case breakevent.FieldRecoveryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_score", values[i])
			} else if value.Valid {
				_m.RecoveryScore = value.Float64
			}
		case breakevent.FieldImprovement:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field improvement", values[i])
			} else if value.Valid {
				_m.Improvement = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BreakEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BreakEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BreakEvent.
// Note that you need to call BreakEvent.Unwrap() before calling this method if this BreakEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BreakEvent) Update() *BreakEventUpdateOne {
	return NewBreakEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BreakEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BreakEvent) Unwrap() *BreakEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BreakEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BreakEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BreakEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("break_type=")
	builder.WriteString(_m.BreakType)
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(_m.Urgency)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("fatigue_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FatigueLevel))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("recovery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryScore))
	builder.WriteString(", ")
	builder.WriteString("improvement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Improvement))
	builder.WriteByte(')')
	return builder.String()
}

// BreakEvents is a parsable slice of BreakEvent.
type BreakEvents []*BreakEvent
