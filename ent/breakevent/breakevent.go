// Code generated by ent, DO NOT EDIT.

package breakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the breakevent type in the database.
	Label = "break_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldBreakType holds the string denoting the break_type field in the database.
	FieldBreakType = "break_type"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldFatigueLevel holds the string denoting the fatigue_level field in the database.
	FieldFatigueLevel = "fatigue_level"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldRecoveryScore holds the string denoting the recovery_score field in the database.
	FieldRecoveryScore = "recovery_score"
	// FieldImprovement holds the string denoting the improvement field in the database.
	FieldImprovement = "improvement"
	// Table holds the table name of the breakevent in the database.
	Table = "break_events"
)

// Columns holds all SQL columns for breakevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldBreakType,
	FieldUrgency,
	FieldReason,
	FieldFatigueLevel,
	FieldDurationMs,
	FieldCompleted,
	FieldRecoveryScore,
	FieldImprovement,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// BreakTypeValidator is a validator for the "break_type" field. It is called by the builders before save.
	BreakTypeValidator func(string) error
	// UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	UrgencyValidator func(string) error
)

// OrderOption defines the ordering options for the BreakEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByBreakType orders the results by the break_type field.
func ByBreakType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakType, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByFatigueLevel orders the results by the fatigue_level field.
func ByFatigueLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFatigueLevel, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByRecoveryScore orders the results by the recovery_score field.
func ByRecoveryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryScore, opts...).ToFunc()
}

// ByImprovement orders the results by the improvement field.
func ByImprovement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovement, opts...).ToFunc()
}
