// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDeletedAt, v))
}

// QuestionnaireID applies equality check predicate on the "questionnaire_id" field. It's identical to QuestionnaireIDEQ.
func QuestionnaireID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldQuestionnaireID, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalScore, v))
}

// AssessmentLevel applies equality check predicate on the "assessment_level" field. It's identical to AssessmentLevelEQ.
func AssessmentLevel(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAssessmentLevel, v))
}

// AssessmentOpinion applies equality check predicate on the "assessment_opinion" field. It's identical to AssessmentOpinionEQ.
func AssessmentOpinion(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAssessmentOpinion, v))
}

// GroupKey applies equality check predicate on the "group_key" field. It's identical to GroupKeyEQ.
func GroupKey(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGroupKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldDeletedAt))
}

// QuestionnaireIDEQ applies the EQ predicate on the "questionnaire_id" field.
func QuestionnaireIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDNEQ applies the NEQ predicate on the "questionnaire_id" field.
func QuestionnaireIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDIn applies the In predicate on the "questionnaire_id" field.
func QuestionnaireIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldQuestionnaireID, vs...))
}

// QuestionnaireIDNotIn applies the NotIn predicate on the "questionnaire_id" field.
func QuestionnaireIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldQuestionnaireID, vs...))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedAt, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTotalScore, v))
}

// TotalScoreIsNil applies the IsNil predicate on the "total_score" field.
func TotalScoreIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldTotalScore))
}

// TotalScoreNotNil applies the NotNil predicate on the "total_score" field.
func TotalScoreNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldTotalScore))
}

// AssessmentLevelEQ applies the EQ predicate on the "assessment_level" field.
func AssessmentLevelEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAssessmentLevel, v))
}

// AssessmentLevelNEQ applies the NEQ predicate on the "assessment_level" field.
func AssessmentLevelNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAssessmentLevel, v))
}

// AssessmentLevelIn applies the In predicate on the "assessment_level" field.
func AssessmentLevelIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAssessmentLevel, vs...))
}

// AssessmentLevelNotIn applies the NotIn predicate on the "assessment_level" field.
func AssessmentLevelNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAssessmentLevel, vs...))
}

// AssessmentLevelGT applies the GT predicate on the "assessment_level" field.
func AssessmentLevelGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAssessmentLevel, v))
}

// AssessmentLevelGTE applies the GTE predicate on the "assessment_level" field.
func AssessmentLevelGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAssessmentLevel, v))
}

// AssessmentLevelLT applies the LT predicate on the "assessment_level" field.
func AssessmentLevelLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAssessmentLevel, v))
}

// AssessmentLevelLTE applies the LTE predicate on the "assessment_level" field.
func AssessmentLevelLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAssessmentLevel, v))
}

// AssessmentLevelContains applies the Contains predicate on the "assessment_level" field.
func AssessmentLevelContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAssessmentLevel, v))
}

// AssessmentLevelHasPrefix applies the HasPrefix predicate on the "assessment_level" field.
func AssessmentLevelHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAssessmentLevel, v))
}

// AssessmentLevelHasSuffix applies the HasSuffix predicate on the "assessment_level" field.
func AssessmentLevelHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAssessmentLevel, v))
}

// AssessmentLevelIsNil applies the IsNil predicate on the "assessment_level" field.
func AssessmentLevelIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAssessmentLevel))
}

// AssessmentLevelNotNil applies the NotNil predicate on the "assessment_level" field.
func AssessmentLevelNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAssessmentLevel))
}

// AssessmentLevelEqualFold applies the EqualFold predicate on the "assessment_level" field.
func AssessmentLevelEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAssessmentLevel, v))
}

// AssessmentLevelContainsFold applies the ContainsFold predicate on the "assessment_level" field.
func AssessmentLevelContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAssessmentLevel, v))
}

// AssessmentOpinionEQ applies the EQ predicate on the "assessment_opinion" field.
func AssessmentOpinionEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAssessmentOpinion, v))
}

// AssessmentOpinionNEQ applies the NEQ predicate on the "assessment_opinion" field.
func AssessmentOpinionNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAssessmentOpinion, v))
}

// AssessmentOpinionIn applies the In predicate on the "assessment_opinion" field.
func AssessmentOpinionIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAssessmentOpinion, vs...))
}

// AssessmentOpinionNotIn applies the NotIn predicate on the "assessment_opinion" field.
func AssessmentOpinionNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAssessmentOpinion, vs...))
}

// AssessmentOpinionGT applies the GT predicate on the "assessment_opinion" field.
func AssessmentOpinionGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAssessmentOpinion, v))
}

// AssessmentOpinionGTE applies the GTE predicate on the "assessment_opinion" field.
func AssessmentOpinionGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAssessmentOpinion, v))
}

// AssessmentOpinionLT applies the LT predicate on the "assessment_opinion" field.
func AssessmentOpinionLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAssessmentOpinion, v))
}

// AssessmentOpinionLTE applies the LTE predicate on the "assessment_opinion" field.
func AssessmentOpinionLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAssessmentOpinion, v))
}

// AssessmentOpinionContains applies the Contains predicate on the "assessment_opinion" field.
func AssessmentOpinionContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAssessmentOpinion, v))
}

// AssessmentOpinionHasPrefix applies the HasPrefix predicate on the "assessment_opinion" field.
func AssessmentOpinionHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAssessmentOpinion, v))
}

// AssessmentOpinionHasSuffix applies the HasSuffix predicate on the "assessment_opinion" field.
func AssessmentOpinionHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAssessmentOpinion, v))
}

// AssessmentOpinionIsNil applies the IsNil predicate on the "assessment_opinion" field.
func AssessmentOpinionIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAssessmentOpinion))
}

// AssessmentOpinionNotNil applies the NotNil predicate on the "assessment_opinion" field.
func AssessmentOpinionNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAssessmentOpinion))
}

// AssessmentOpinionEqualFold applies the EqualFold predicate on the "assessment_opinion" field.
func AssessmentOpinionEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAssessmentOpinion, v))
}

// AssessmentOpinionContainsFold applies the ContainsFold predicate on the "assessment_opinion" field.
func AssessmentOpinionContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAssessmentOpinion, v))
}

// GroupKeyEQ applies the EQ predicate on the "group_key" field.
func GroupKeyEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGroupKey, v))
}

// GroupKeyNEQ applies the NEQ predicate on the "group_key" field.
func GroupKeyNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldGroupKey, v))
}

// GroupKeyIn applies the In predicate on the "group_key" field.
func GroupKeyIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldGroupKey, vs...))
}

// GroupKeyNotIn applies the NotIn predicate on the "group_key" field.
func GroupKeyNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldGroupKey, vs...))
}

// GroupKeyGT applies the GT predicate on the "group_key" field.
func GroupKeyGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldGroupKey, v))
}

// GroupKeyGTE applies the GTE predicate on the "group_key" field.
func GroupKeyGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldGroupKey, v))
}

// GroupKeyLT applies the LT predicate on the "group_key" field.
func GroupKeyLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldGroupKey, v))
}

// GroupKeyLTE applies the LTE predicate on the "group_key" field.
func GroupKeyLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldGroupKey, v))
}

// GroupKeyContains applies the Contains predicate on the "group_key" field.
func GroupKeyContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldGroupKey, v))
}

// GroupKeyHasPrefix applies the HasPrefix predicate on the "group_key" field.
func GroupKeyHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldGroupKey, v))
}

// GroupKeyHasSuffix applies the HasSuffix predicate on the "group_key" field.
func GroupKeyHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldGroupKey, v))
}

// GroupKeyIsNil applies the IsNil predicate on the "group_key" field.
func GroupKeyIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldGroupKey))
}

// GroupKeyNotNil applies the NotNil predicate on the "group_key" field.
func GroupKeyNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldGroupKey))
}

// GroupKeyEqualFold applies the EqualFold predicate on the "group_key" field.
func GroupKeyEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldGroupKey, v))
}

// GroupKeyContainsFold applies the ContainsFold predicate on the "group_key" field.
func GroupKeyContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldGroupKey, v))
}

// HasQuestionnaire applies the HasEdge predicate on the "questionnaire" edge.
func HasQuestionnaire() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionnaireTable, QuestionnaireColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionnaireWith applies the HasEdge predicate on the "questionnaire" edge with a given conditions (other predicates).
func HasQuestionnaireWith(preds ...predicate.Questionnaire) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newQuestionnaireStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDimensionScores applies the HasEdge predicate on the "dimension_scores" edge.
func HasDimensionScores() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DimensionScoresTable, DimensionScoresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDimensionScoresWith applies the HasEdge predicate on the "dimension_scores" edge with a given conditions (other predicates).
func HasDimensionScoresWith(preds ...predicate.DimensionScore) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newDimensionScoresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
