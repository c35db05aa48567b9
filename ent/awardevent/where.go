// Code generated by ent, DO NOT EDIT.

package awardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepforge/prepforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldUserID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSource, v))
}

// BaseXp applies equality check predicate on the "base_xp" field. It's identical to BaseXpEQ.
func BaseXp(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldBaseXp, v))
}

// TotalMultiplier applies equality check predicate on the "total_multiplier" field. It's identical to TotalMultiplierEQ.
func TotalMultiplier(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTotalMultiplier, v))
}

// FinalXp applies equality check predicate on the "final_xp" field. It's identical to FinalXpEQ.
func FinalXp(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldFinalXp, v))
}

// Breakdown applies equality check predicate on the "breakdown" field. It's identical to BreakdownEQ.
func Breakdown(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldBreakdown, v))
}

// ActivitySequence applies equality check predicate on the "activity_sequence" field. It's identical to ActivitySequenceEQ.
func ActivitySequence(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldActivitySequence, v))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAchievementID, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldSource, v))
}

// BaseXpEQ applies the EQ predicate on the "base_xp" field.
func BaseXpEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldBaseXp, v))
}

// BaseXpNEQ applies the NEQ predicate on the "base_xp" field.
func BaseXpNEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldBaseXp, v))
}

// BaseXpIn applies the In predicate on the "base_xp" field.
func BaseXpIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldBaseXp, vs...))
}

// BaseXpNotIn applies the NotIn predicate on the "base_xp" field.
func BaseXpNotIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldBaseXp, vs...))
}

// BaseXpGT applies the GT predicate on the "base_xp" field.
func BaseXpGT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldBaseXp, v))
}

// BaseXpGTE applies the GTE predicate on the "base_xp" field.
func BaseXpGTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldBaseXp, v))
}

// BaseXpLT applies the LT predicate on the "base_xp" field.
func BaseXpLT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldBaseXp, v))
}

// BaseXpLTE applies the LTE predicate on the "base_xp" field.
func BaseXpLTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldBaseXp, v))
}

// TotalMultiplierEQ applies the EQ predicate on the "total_multiplier" field.
func TotalMultiplierEQ(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTotalMultiplier, v))
}

// TotalMultiplierNEQ applies the NEQ predicate on the "total_multiplier" field.
func TotalMultiplierNEQ(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldTotalMultiplier, v))
}

// TotalMultiplierIn applies the In predicate on the "total_multiplier" field.
func TotalMultiplierIn(vs ...float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldTotalMultiplier, vs...))
}

// TotalMultiplierNotIn applies the NotIn predicate on the "total_multiplier" field.
func TotalMultiplierNotIn(vs ...float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldTotalMultiplier, vs...))
}

// TotalMultiplierGT applies the GT predicate on the "total_multiplier" field.
func TotalMultiplierGT(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldTotalMultiplier, v))
}

// TotalMultiplierGTE applies the GTE predicate on the "total_multiplier" field.
func TotalMultiplierGTE(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldTotalMultiplier, v))
}

// TotalMultiplierLT applies the LT predicate on the "total_multiplier" field.
func TotalMultiplierLT(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldTotalMultiplier, v))
}

// TotalMultiplierLTE applies the LTE predicate on the "total_multiplier" field.
func TotalMultiplierLTE(v float64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldTotalMultiplier, v))
}

// FinalXpEQ applies the EQ predicate on the "final_xp" field.
func FinalXpEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldFinalXp, v))
}

// FinalXpNEQ applies the NEQ predicate on the "final_xp" field.
func FinalXpNEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldFinalXp, v))
}

// FinalXpIn applies the In predicate on the "final_xp" field.
func FinalXpIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldFinalXp, vs...))
}

// FinalXpNotIn applies the NotIn predicate on the "final_xp" field.
func FinalXpNotIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldFinalXp, vs...))
}

// FinalXpGT applies the GT predicate on the "final_xp" field.
func FinalXpGT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldFinalXp, v))
}

// FinalXpGTE applies the GTE predicate on the "final_xp" field.
func FinalXpGTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldFinalXp, v))
}

// FinalXpLT applies the LT predicate on the "final_xp" field.
func FinalXpLT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldFinalXp, v))
}

// FinalXpLTE applies the LTE predicate on the "final_xp" field.
func FinalXpLTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldFinalXp, v))
}

// BreakdownEQ applies the EQ predicate on the "breakdown" field.
func BreakdownEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldBreakdown, v))
}

// BreakdownNEQ applies the NEQ predicate on the "breakdown" field.
func BreakdownNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldBreakdown, v))
}

// BreakdownIn applies the In predicate on the "breakdown" field.
func BreakdownIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldBreakdown, vs...))
}

// BreakdownNotIn applies the NotIn predicate on the "breakdown" field.
func BreakdownNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldBreakdown, vs...))
}

// BreakdownGT applies the GT predicate on the "breakdown" field.
func BreakdownGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldBreakdown, v))
}

// BreakdownGTE applies the GTE predicate on the "breakdown" field.
func BreakdownGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldBreakdown, v))
}

// BreakdownLT applies the LT predicate on the "breakdown" field.
func BreakdownLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldBreakdown, v))
}

// BreakdownLTE applies the LTE predicate on the "breakdown" field.
func BreakdownLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldBreakdown, v))
}

// BreakdownContains applies the Contains predicate on the "breakdown" field.
func BreakdownContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldBreakdown, v))
}

// BreakdownHasPrefix applies the HasPrefix predicate on the "breakdown" field.
func BreakdownHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldBreakdown, v))
}

// BreakdownHasSuffix applies the HasSuffix predicate on the "breakdown" field.
func BreakdownHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldBreakdown, v))
}

// BreakdownEqualFold applies the EqualFold predicate on the "breakdown" field.
func BreakdownEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldBreakdown, v))
}

// BreakdownContainsFold applies the ContainsFold predicate on the "breakdown" field.
func BreakdownContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldBreakdown, v))
}

// ActivitySequenceEQ applies the EQ predicate on the "activity_sequence" field.
func ActivitySequenceEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldActivitySequence, v))
}

// ActivitySequenceNEQ applies the NEQ predicate on the "activity_sequence" field.
func ActivitySequenceNEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldActivitySequence, v))
}

// ActivitySequenceIn applies the In predicate on the "activity_sequence" field.
func ActivitySequenceIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldActivitySequence, vs...))
}

// ActivitySequenceNotIn applies the NotIn predicate on the "activity_sequence" field.
func ActivitySequenceNotIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldActivitySequence, vs...))
}

// ActivitySequenceGT applies the GT predicate on the "activity_sequence" field.
func ActivitySequenceGT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldActivitySequence, v))
}

// ActivitySequenceGTE applies the GTE predicate on the "activity_sequence" field.
func ActivitySequenceGTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldActivitySequence, v))
}

// ActivitySequenceLT applies the LT predicate on the "activity_sequence" field.
func ActivitySequenceLT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldActivitySequence, v))
}

// ActivitySequenceLTE applies the LTE predicate on the "activity_sequence" field.
func ActivitySequenceLTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldActivitySequence, v))
}

// ActivitySequenceIsNil applies the IsNil predicate on the "activity_sequence" field.
func ActivitySequenceIsNil() predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIsNull(FieldActivitySequence))
}

// ActivitySequenceNotNil applies the NotNil predicate on the "activity_sequence" field.
func ActivitySequenceNotNil() predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotNull(FieldActivitySequence))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDIsNil applies the IsNil predicate on the "achievement_id" field.
func AchievementIDIsNil() predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIsNull(FieldAchievementID))
}

// AchievementIDNotNil applies the NotNil predicate on the "achievement_id" field.
func AchievementIDNotNil() predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotNull(FieldAchievementID))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldAchievementID, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.NotPredicates(p))
}
