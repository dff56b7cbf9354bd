// Code generated by ent, DO NOT EDIT.

package dimensionscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldSubmissionID, v))
}

// DimensionID applies equality check predicate on the "dimension_id" field. It's identical to DimensionIDEQ.
func DimensionID(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldDimensionID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldScore, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldWeight, v))
}

// AssessmentLevel applies equality check predicate on the "assessment_level" field. It's identical to AssessmentLevelEQ.
func AssessmentLevel(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldAssessmentLevel, v))
}

// AssessmentOpinion applies equality check predicate on the "assessment_opinion" field. It's identical to AssessmentOpinionEQ.
func AssessmentOpinion(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldAssessmentOpinion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// DimensionIDEQ applies the EQ predicate on the "dimension_id" field.
func DimensionIDEQ(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldDimensionID, v))
}

// DimensionIDNEQ applies the NEQ predicate on the "dimension_id" field.
func DimensionIDNEQ(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldDimensionID, v))
}

// DimensionIDIn applies the In predicate on the "dimension_id" field.
func DimensionIDIn(vs ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldDimensionID, vs...))
}

// DimensionIDNotIn applies the NotIn predicate on the "dimension_id" field.
func DimensionIDNotIn(vs ...uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldDimensionID, vs...))
}

// DimensionIDGT applies the GT predicate on the "dimension_id" field.
func DimensionIDGT(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldDimensionID, v))
}

// DimensionIDGTE applies the GTE predicate on the "dimension_id" field.
func DimensionIDGTE(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldDimensionID, v))
}

// DimensionIDLT applies the LT predicate on the "dimension_id" field.
func DimensionIDLT(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldDimensionID, v))
}

// DimensionIDLTE applies the LTE predicate on the "dimension_id" field.
func DimensionIDLTE(v uuid.UUID) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldDimensionID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldScore, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldWeight, v))
}

// AssessmentLevelEQ applies the EQ predicate on the "assessment_level" field.
func AssessmentLevelEQ(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldAssessmentLevel, v))
}

// AssessmentLevelNEQ applies the NEQ predicate on the "assessment_level" field.
func AssessmentLevelNEQ(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldAssessmentLevel, v))
}

// AssessmentLevelIn applies the In predicate on the "assessment_level" field.
func AssessmentLevelIn(vs ...string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldAssessmentLevel, vs...))
}

// AssessmentLevelNotIn applies the NotIn predicate on the "assessment_level" field.
func AssessmentLevelNotIn(vs ...string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldAssessmentLevel, vs...))
}

// AssessmentLevelGT applies the GT predicate on the "assessment_level" field.
func AssessmentLevelGT(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldAssessmentLevel, v))
}

// AssessmentLevelGTE applies the GTE predicate on the "assessment_level" field.
func AssessmentLevelGTE(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldAssessmentLevel, v))
}

// AssessmentLevelLT applies the LT predicate on the "assessment_level" field.
func AssessmentLevelLT(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldAssessmentLevel, v))
}

// AssessmentLevelLTE applies the LTE predicate on the "assessment_level" field.
func AssessmentLevelLTE(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldAssessmentLevel, v))
}

// AssessmentLevelContains applies the Contains predicate on the "assessment_level" field.
func AssessmentLevelContains(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldContains(FieldAssessmentLevel, v))
}

// AssessmentLevelHasPrefix applies the HasPrefix predicate on the "assessment_level" field.
func AssessmentLevelHasPrefix(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldHasPrefix(FieldAssessmentLevel, v))
}

// AssessmentLevelHasSuffix applies the HasSuffix predicate on the "assessment_level" field.
func AssessmentLevelHasSuffix(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldHasSuffix(FieldAssessmentLevel, v))
}

// AssessmentLevelIsNil applies the IsNil predicate on the "assessment_level" field.
func AssessmentLevelIsNil() predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIsNull(FieldAssessmentLevel))
}

// AssessmentLevelNotNil applies the NotNil predicate on the "assessment_level" field.
func AssessmentLevelNotNil() predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotNull(FieldAssessmentLevel))
}

// AssessmentLevelEqualFold applies the EqualFold predicate on the "assessment_level" field.
func AssessmentLevelEqualFold(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEqualFold(FieldAssessmentLevel, v))
}

// AssessmentLevelContainsFold applies the ContainsFold predicate on the "assessment_level" field.
func AssessmentLevelContainsFold(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldContainsFold(FieldAssessmentLevel, v))
}

// AssessmentOpinionEQ applies the EQ predicate on the "assessment_opinion" field.
func AssessmentOpinionEQ(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEQ(FieldAssessmentOpinion, v))
}

// AssessmentOpinionNEQ applies the NEQ predicate on the "assessment_opinion" field.
func AssessmentOpinionNEQ(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNEQ(FieldAssessmentOpinion, v))
}

// AssessmentOpinionIn applies the In predicate on the "assessment_opinion" field.
func AssessmentOpinionIn(vs ...string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIn(FieldAssessmentOpinion, vs...))
}

// AssessmentOpinionNotIn applies the NotIn predicate on the "assessment_opinion" field.
func AssessmentOpinionNotIn(vs ...string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotIn(FieldAssessmentOpinion, vs...))
}

// AssessmentOpinionGT applies the GT predicate on the "assessment_opinion" field.
func AssessmentOpinionGT(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGT(FieldAssessmentOpinion, v))
}

// AssessmentOpinionGTE applies the GTE predicate on the "assessment_opinion" field.
func AssessmentOpinionGTE(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldGTE(FieldAssessmentOpinion, v))
}

// AssessmentOpinionLT applies the LT predicate on the "assessment_opinion" field.
func AssessmentOpinionLT(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLT(FieldAssessmentOpinion, v))
}

// AssessmentOpinionLTE applies the LTE predicate on the "assessment_opinion" field.
func AssessmentOpinionLTE(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldLTE(FieldAssessmentOpinion, v))
}

// AssessmentOpinionContains applies the Contains predicate on the "assessment_opinion" field.
func AssessmentOpinionContains(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldContains(FieldAssessmentOpinion, v))
}

// AssessmentOpinionHasPrefix applies the HasPrefix predicate on the "assessment_opinion" field.
func AssessmentOpinionHasPrefix(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldHasPrefix(FieldAssessmentOpinion, v))
}

// AssessmentOpinionHasSuffix applies the HasSuffix predicate on the "assessment_opinion" field.
func AssessmentOpinionHasSuffix(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldHasSuffix(FieldAssessmentOpinion, v))
}

// AssessmentOpinionIsNil applies the IsNil predicate on the "assessment_opinion" field.
func AssessmentOpinionIsNil() predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldIsNull(FieldAssessmentOpinion))
}

// AssessmentOpinionNotNil applies the NotNil predicate on the "assessment_opinion" field.
func AssessmentOpinionNotNil() predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldNotNull(FieldAssessmentOpinion))
}

// AssessmentOpinionEqualFold applies the EqualFold predicate on the "assessment_opinion" field.
func AssessmentOpinionEqualFold(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldEqualFold(FieldAssessmentOpinion, v))
}

// AssessmentOpinionContainsFold applies the ContainsFold predicate on the "assessment_opinion" field.
func AssessmentOpinionContainsFold(v string) predicate.DimensionScore {
	return predicate.DimensionScore(sql.FieldContainsFold(FieldAssessmentOpinion, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.DimensionScore {
	return predicate.DimensionScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.DimensionScore {
	return predicate.DimensionScore(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DimensionScore) predicate.DimensionScore {
	return predicate.DimensionScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DimensionScore) predicate.DimensionScore {
	return predicate.DimensionScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DimensionScore) predicate.DimensionScore {
	return predicate.DimensionScore(sql.NotPredicates(p))
}
