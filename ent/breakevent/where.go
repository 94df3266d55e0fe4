// Code generated by ent, DO NOT EDIT.

package breakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pacelab/pacer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSessionID, v))
}

// BreakType applies equality check predicate on the "break_type" field. It's identical to BreakTypeEQ.
func BreakType(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakType, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldUrgency, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldReason, v))
}

// FatigueLevel applies equality check predicate on the "fatigue_level" field. It's identical to FatigueLevelEQ.
func FatigueLevel(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldFatigueLevel, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldDurationMs, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCompleted, v))
}

// RecoveryScore applies equality check predicate on the "recovery_score" field. It's identical to RecoveryScoreEQ.
func RecoveryScore(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldRecoveryScore, v))
}

// Improvement applies equality check predicate on the "improvement" field. It's identical to ImprovementEQ.
func Improvement(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldImprovement, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// BreakTypeEQ applies the EQ predicate on the "break_type" field.
func BreakTypeEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldBreakType, v))
}

// BreakTypeNEQ applies the NEQ predicate on the "break_type" field.
func BreakTypeNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldBreakType, v))
}

// BreakTypeIn applies the In predicate on the "break_type" field.
func BreakTypeIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldBreakType, vs...))
}

// BreakTypeNotIn applies the NotIn predicate on the "break_type" field.
func BreakTypeNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldBreakType, vs...))
}

// BreakTypeGT applies the GT predicate on the "break_type" field.
func BreakTypeGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldBreakType, v))
}

// BreakTypeGTE applies the GTE predicate on the "break_type" field.
func BreakTypeGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldBreakType, v))
}

// BreakTypeLT applies the LT predicate on the "break_type" field.
func BreakTypeLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldBreakType, v))
}

// BreakTypeLTE applies the LTE predicate on the "break_type" field.
func BreakTypeLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldBreakType, v))
}

// BreakTypeContains applies the Contains predicate on the "break_type" field.
func BreakTypeContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldBreakType, v))
}

// BreakTypeHasPrefix applies the HasPrefix predicate on the "break_type" field.
func BreakTypeHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldBreakType, v))
}

// BreakTypeHasSuffix applies the HasSuffix predicate on the "break_type" field.
func BreakTypeHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldBreakType, v))
}

// BreakTypeEqualFold applies the EqualFold predicate on the "break_type" field.
func BreakTypeEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldBreakType, v))
}

// BreakTypeContainsFold applies the ContainsFold predicate on the "break_type" field.
func BreakTypeContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldBreakType, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldUrgency, v))
}

// UrgencyContains applies the Contains predicate on the "urgency" field.
func UrgencyContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldUrgency, v))
}

// UrgencyHasPrefix applies the HasPrefix predicate on the "urgency" field.
func UrgencyHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldUrgency, v))
}

// UrgencyHasSuffix applies the HasSuffix predicate on the "urgency" field.
func UrgencyHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldUrgency, v))
}

// UrgencyEqualFold applies the EqualFold predicate on the "urgency" field.
func UrgencyEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldUrgency, v))
}

// UrgencyContainsFold applies the ContainsFold predicate on the "urgency" field.
func UrgencyContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldUrgency, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldContainsFold(FieldReason, v))
}

// FatigueLevelEQ applies the EQ predicate on the "fatigue_level" field.
func FatigueLevelEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldFatigueLevel, v))
}

// FatigueLevelNEQ applies the NEQ predicate on the "fatigue_level" field.
func FatigueLevelNEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldFatigueLevel, v))
}

// FatigueLevelIn applies the In predicate on the "fatigue_level" field.
func FatigueLevelIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldFatigueLevel, vs...))
}

// FatigueLevelNotIn applies the NotIn predicate on the "fatigue_level" field.
func FatigueLevelNotIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldFatigueLevel, vs...))
}

// FatigueLevelGT applies the GT predicate on the "fatigue_level" field.
func FatigueLevelGT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldFatigueLevel, v))
}

// FatigueLevelGTE applies the GTE predicate on the "fatigue_level" field.
func FatigueLevelGTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldFatigueLevel, v))
}

// FatigueLevelLT applies the LT predicate on the "fatigue_level" field.
func FatigueLevelLT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldFatigueLevel, v))
}

// FatigueLevelLTE applies the LTE predicate on the "fatigue_level" field.
func FatigueLevelLTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldFatigueLevel, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldDurationMs, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldCompleted, v))
}

// RecoveryScoreEQ applies the EQ predicate on the "recovery_score" field.
func RecoveryScoreEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldRecoveryScore, v))
}

// RecoveryScoreNEQ applies the NEQ predicate on the "recovery_score" field.
func RecoveryScoreNEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldRecoveryScore, v))
}

// RecoveryScoreIn applies the In predicate on the "recovery_score" field.
func RecoveryScoreIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldRecoveryScore, vs...))
}

// RecoveryScoreNotIn applies the NotIn predicate on the "recovery_score" field.
func RecoveryScoreNotIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldRecoveryScore, vs...))
}

// RecoveryScoreGT applies the GT predicate on the "recovery_score" field.
func RecoveryScoreGT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldRecoveryScore, v))
}

// RecoveryScoreGTE applies the GTE predicate on the "recovery_score" field.
func RecoveryScoreGTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldRecoveryScore, v))
}

// RecoveryScoreLT applies the LT predicate on the "recovery_score" field.
func RecoveryScoreLT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldRecoveryScore, v))
}

// RecoveryScoreLTE applies the LTE predicate on the "recovery_score" field.
func RecoveryScoreLTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldRecoveryScore, v))
}

// ImprovementEQ applies the EQ predicate on the "improvement" field.
func ImprovementEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldEQ(FieldImprovement, v))
}

// ImprovementNEQ applies the NEQ predicate on the "improvement" field.
func ImprovementNEQ(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNEQ(FieldImprovement, v))
}

// ImprovementIn applies the In predicate on the "improvement" field.
func ImprovementIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldIn(FieldImprovement, vs...))
}

// ImprovementNotIn applies the NotIn predicate on the "improvement" field.
func ImprovementNotIn(vs ...float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldNotIn(FieldImprovement, vs...))
}

// ImprovementGT applies the GT predicate on the "improvement" field.
func ImprovementGT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGT(FieldImprovement, v))
}

// ImprovementGTE applies the GTE predicate on the "improvement" field.
func ImprovementGTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldGTE(FieldImprovement, v))
}

// ImprovementLT applies the LT predicate on the "improvement" field.
func ImprovementLT(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLT(FieldImprovement, v))
}

// ImprovementLTE applies the LTE predicate on the "improvement" field.
func ImprovementLTE(v float64) predicate.BreakEvent {
	return predicate.BreakEvent(sql.FieldLTE(FieldImprovement, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BreakEvent) predicate.BreakEvent {
	return predicate.BreakEvent(sql.NotPredicates(p))
}
