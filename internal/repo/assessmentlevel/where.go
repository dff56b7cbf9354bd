// Code generated by ent, DO NOT EDIT.

package assessmentlevel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldDeletedAt, v))
}

// QuestionnaireID applies equality check predicate on the "questionnaire_id" field. It's identical to QuestionnaireIDEQ.
func QuestionnaireID(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldQuestionnaireID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldName, v))
}

// MinScore applies equality check predicate on the "min_score" field. It's identical to MinScoreEQ.
func MinScore(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldMinScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldMaxScore, v))
}

// Opinion applies equality check predicate on the "opinion" field. It's identical to OpinionEQ.
func Opinion(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldOpinion, v))
}

// GroupKey applies equality check predicate on the "group_key" field. It's identical to GroupKeyEQ.
func GroupKey(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldGroupKey, v))
}

// DimensionID applies equality check predicate on the "dimension_id" field. It's identical to DimensionIDEQ.
func DimensionID(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldDimensionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotNull(FieldDeletedAt))
}

// QuestionnaireIDEQ applies the EQ predicate on the "questionnaire_id" field.
func QuestionnaireIDEQ(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDNEQ applies the NEQ predicate on the "questionnaire_id" field.
func QuestionnaireIDNEQ(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDIn applies the In predicate on the "questionnaire_id" field.
func QuestionnaireIDIn(vs ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldQuestionnaireID, vs...))
}

// QuestionnaireIDNotIn applies the NotIn predicate on the "questionnaire_id" field.
func QuestionnaireIDNotIn(vs ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldQuestionnaireID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContainsFold(FieldName, v))
}

// MinScoreEQ applies the EQ predicate on the "min_score" field.
func MinScoreEQ(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldMinScore, v))
}

// MinScoreNEQ applies the NEQ predicate on the "min_score" field.
func MinScoreNEQ(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldMinScore, v))
}

// MinScoreIn applies the In predicate on the "min_score" field.
func MinScoreIn(vs ...float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldMinScore, vs...))
}

// MinScoreNotIn applies the NotIn predicate on the "min_score" field.
func MinScoreNotIn(vs ...float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldMinScore, vs...))
}

// MinScoreGT applies the GT predicate on the "min_score" field.
func MinScoreGT(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldMinScore, v))
}

// MinScoreGTE applies the GTE predicate on the "min_score" field.
func MinScoreGTE(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldMinScore, v))
}

// MinScoreLT applies the LT predicate on the "min_score" field.
func MinScoreLT(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldMinScore, v))
}

// MinScoreLTE applies the LTE predicate on the "min_score" field.
func MinScoreLTE(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldMinScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v float64) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldMaxScore, v))
}

// OpinionEQ applies the EQ predicate on the "opinion" field.
func OpinionEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldOpinion, v))
}

// OpinionNEQ applies the NEQ predicate on the "opinion" field.
func OpinionNEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldOpinion, v))
}

// OpinionIn applies the In predicate on the "opinion" field.
func OpinionIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldOpinion, vs...))
}

// OpinionNotIn applies the NotIn predicate on the "opinion" field.
func OpinionNotIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldOpinion, vs...))
}

// OpinionGT applies the GT predicate on the "opinion" field.
func OpinionGT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldOpinion, v))
}

// OpinionGTE applies the GTE predicate on the "opinion" field.
func OpinionGTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldOpinion, v))
}

// OpinionLT applies the LT predicate on the "opinion" field.
func OpinionLT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldOpinion, v))
}

// OpinionLTE applies the LTE predicate on the "opinion" field.
func OpinionLTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldOpinion, v))
}

// OpinionContains applies the Contains predicate on the "opinion" field.
func OpinionContains(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContains(FieldOpinion, v))
}

// OpinionHasPrefix applies the HasPrefix predicate on the "opinion" field.
func OpinionHasPrefix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasPrefix(FieldOpinion, v))
}

// OpinionHasSuffix applies the HasSuffix predicate on the "opinion" field.
func OpinionHasSuffix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasSuffix(FieldOpinion, v))
}

// OpinionEqualFold applies the EqualFold predicate on the "opinion" field.
func OpinionEqualFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEqualFold(FieldOpinion, v))
}

// OpinionContainsFold applies the ContainsFold predicate on the "opinion" field.
func OpinionContainsFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContainsFold(FieldOpinion, v))
}

// GroupKeyEQ applies the EQ predicate on the "group_key" field.
func GroupKeyEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldGroupKey, v))
}

// GroupKeyNEQ applies the NEQ predicate on the "group_key" field.
func GroupKeyNEQ(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldGroupKey, v))
}

// GroupKeyIn applies the In predicate on the "group_key" field.
func GroupKeyIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldGroupKey, vs...))
}

// GroupKeyNotIn applies the NotIn predicate on the "group_key" field.
func GroupKeyNotIn(vs ...string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldGroupKey, vs...))
}

// GroupKeyGT applies the GT predicate on the "group_key" field.
func GroupKeyGT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldGroupKey, v))
}

// GroupKeyGTE applies the GTE predicate on the "group_key" field.
func GroupKeyGTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldGroupKey, v))
}

// GroupKeyLT applies the LT predicate on the "group_key" field.
func GroupKeyLT(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldGroupKey, v))
}

// GroupKeyLTE applies the LTE predicate on the "group_key" field.
func GroupKeyLTE(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldGroupKey, v))
}

// GroupKeyContains applies the Contains predicate on the "group_key" field.
func GroupKeyContains(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContains(FieldGroupKey, v))
}

// GroupKeyHasPrefix applies the HasPrefix predicate on the "group_key" field.
func GroupKeyHasPrefix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasPrefix(FieldGroupKey, v))
}

// GroupKeyHasSuffix applies the HasSuffix predicate on the "group_key" field.
func GroupKeyHasSuffix(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldHasSuffix(FieldGroupKey, v))
}

// GroupKeyIsNil applies the IsNil predicate on the "group_key" field.
func GroupKeyIsNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIsNull(FieldGroupKey))
}

// GroupKeyNotNil applies the NotNil predicate on the "group_key" field.
func GroupKeyNotNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotNull(FieldGroupKey))
}

// GroupKeyEqualFold applies the EqualFold predicate on the "group_key" field.
func GroupKeyEqualFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEqualFold(FieldGroupKey, v))
}

// GroupKeyContainsFold applies the ContainsFold predicate on the "group_key" field.
func GroupKeyContainsFold(v string) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldContainsFold(FieldGroupKey, v))
}

// DimensionIDEQ applies the EQ predicate on the "dimension_id" field.
func DimensionIDEQ(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldEQ(FieldDimensionID, v))
}

// DimensionIDNEQ applies the NEQ predicate on the "dimension_id" field.
func DimensionIDNEQ(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNEQ(FieldDimensionID, v))
}

// DimensionIDIn applies the In predicate on the "dimension_id" field.
func DimensionIDIn(vs ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIn(FieldDimensionID, vs...))
}

// DimensionIDNotIn applies the NotIn predicate on the "dimension_id" field.
func DimensionIDNotIn(vs ...uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotIn(FieldDimensionID, vs...))
}

// DimensionIDGT applies the GT predicate on the "dimension_id" field.
func DimensionIDGT(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGT(FieldDimensionID, v))
}

// DimensionIDGTE applies the GTE predicate on the "dimension_id" field.
func DimensionIDGTE(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldGTE(FieldDimensionID, v))
}

// DimensionIDLT applies the LT predicate on the "dimension_id" field.
func DimensionIDLT(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLT(FieldDimensionID, v))
}

// DimensionIDLTE applies the LTE predicate on the "dimension_id" field.
func DimensionIDLTE(v uuid.UUID) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldLTE(FieldDimensionID, v))
}

// DimensionIDIsNil applies the IsNil predicate on the "dimension_id" field.
func DimensionIDIsNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldIsNull(FieldDimensionID))
}

// DimensionIDNotNil applies the NotNil predicate on the "dimension_id" field.
func DimensionIDNotNil() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.FieldNotNull(FieldDimensionID))
}

// HasQuestionnaire applies the HasEdge predicate on the "questionnaire" edge.
func HasQuestionnaire() predicate.AssessmentLevel {
	return predicate.AssessmentLevel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionnaireTable, QuestionnaireColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionnaireWith applies the HasEdge predicate on the "questionnaire" edge with a given conditions (other predicates).
func HasQuestionnaireWith(preds ...predicate.Questionnaire) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(func(s *sql.Selector) {
		step := newQuestionnaireStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentLevel) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentLevel) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentLevel) predicate.AssessmentLevel {
	return predicate.AssessmentLevel(sql.NotPredicates(p))
}
