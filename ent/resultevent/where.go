// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/nismprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldResultID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldModuleID, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestID, v))
}

// TestType applies equality check predicate on the "test_type" field. It's identical to TestTypeEQ.
func TestType(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScore, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// AutoSubmitted applies equality check predicate on the "auto_submitted" field. It's identical to AutoSubmittedEQ.
func AutoSubmitted(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// SubmittedAtMs applies equality check predicate on the "submitted_at_ms" field. It's identical to SubmittedAtMsEQ.
func SubmittedAtMs(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSubmittedAtMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldResultID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldTestID, v))
}

// TestTypeEQ applies the EQ predicate on the "test_type" field.
func TestTypeEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTestType, v))
}

// TestTypeNEQ applies the NEQ predicate on the "test_type" field.
func TestTypeNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTestType, v))
}

// TestTypeIn applies the In predicate on the "test_type" field.
func TestTypeIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTestType, vs...))
}

// TestTypeNotIn applies the NotIn predicate on the "test_type" field.
func TestTypeNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTestType, vs...))
}

// TestTypeGT applies the GT predicate on the "test_type" field.
func TestTypeGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTestType, v))
}

// TestTypeGTE applies the GTE predicate on the "test_type" field.
func TestTypeGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTestType, v))
}

// TestTypeLT applies the LT predicate on the "test_type" field.
func TestTypeLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTestType, v))
}

// TestTypeLTE applies the LTE predicate on the "test_type" field.
func TestTypeLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTestType, v))
}

// TestTypeContains applies the Contains predicate on the "test_type" field.
func TestTypeContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldTestType, v))
}

// TestTypeHasPrefix applies the HasPrefix predicate on the "test_type" field.
func TestTypeHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldTestType, v))
}

// TestTypeHasSuffix applies the HasSuffix predicate on the "test_type" field.
func TestTypeHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldTestType, v))
}

// TestTypeEqualFold applies the EqualFold predicate on the "test_type" field.
func TestTypeEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldTestType, v))
}

// TestTypeContainsFold applies the ContainsFold predicate on the "test_type" field.
func TestTypeContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldTestType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldScore, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// AutoSubmittedEQ applies the EQ predicate on the "auto_submitted" field.
func AutoSubmittedEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// AutoSubmittedNEQ applies the NEQ predicate on the "auto_submitted" field.
func AutoSubmittedNEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldAutoSubmitted, v))
}

// SubmittedAtMsEQ applies the EQ predicate on the "submitted_at_ms" field.
func SubmittedAtMsEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSubmittedAtMs, v))
}

// SubmittedAtMsNEQ applies the NEQ predicate on the "submitted_at_ms" field.
func SubmittedAtMsNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSubmittedAtMs, v))
}

// SubmittedAtMsIn applies the In predicate on the "submitted_at_ms" field.
func SubmittedAtMsIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSubmittedAtMs, vs...))
}

// SubmittedAtMsNotIn applies the NotIn predicate on the "submitted_at_ms" field.
func SubmittedAtMsNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSubmittedAtMs, vs...))
}

// SubmittedAtMsGT applies the GT predicate on the "submitted_at_ms" field.
func SubmittedAtMsGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSubmittedAtMs, v))
}

// SubmittedAtMsGTE applies the GTE predicate on the "submitted_at_ms" field.
func SubmittedAtMsGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSubmittedAtMs, v))
}

// SubmittedAtMsLT applies the LT predicate on the "submitted_at_ms" field.
func SubmittedAtMsLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSubmittedAtMs, v))
}

// SubmittedAtMsLTE applies the LTE predicate on the "submitted_at_ms" field.
func SubmittedAtMsLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSubmittedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.NotPredicates(p))
}
