// Code generated by ent, DO NOT EDIT.

package branchrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldDeletedAt, v))
}

// QuestionnaireID applies equality check predicate on the "questionnaire_id" field. It's identical to QuestionnaireIDEQ.
func QuestionnaireID(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldQuestionnaireID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldQuestionID, v))
}

// OptionID applies equality check predicate on the "option_id" field. It's identical to OptionIDEQ.
func OptionID(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldOptionID, v))
}

// NextQuestionnaireID applies equality check predicate on the "next_questionnaire_id" field. It's identical to NextQuestionnaireIDEQ.
func NextQuestionnaireID(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldNextQuestionnaireID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotNull(FieldDeletedAt))
}

// QuestionnaireIDEQ applies the EQ predicate on the "questionnaire_id" field.
func QuestionnaireIDEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDNEQ applies the NEQ predicate on the "questionnaire_id" field.
func QuestionnaireIDNEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDIn applies the In predicate on the "questionnaire_id" field.
func QuestionnaireIDIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldQuestionnaireID, vs...))
}

// QuestionnaireIDNotIn applies the NotIn predicate on the "questionnaire_id" field.
func QuestionnaireIDNotIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldQuestionnaireID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldQuestionID, vs...))
}

// OptionIDEQ applies the EQ predicate on the "option_id" field.
func OptionIDEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldOptionID, v))
}

// OptionIDNEQ applies the NEQ predicate on the "option_id" field.
func OptionIDNEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldOptionID, v))
}

// OptionIDIn applies the In predicate on the "option_id" field.
func OptionIDIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldOptionID, vs...))
}

// OptionIDNotIn applies the NotIn predicate on the "option_id" field.
func OptionIDNotIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldOptionID, vs...))
}

// OptionIDGT applies the GT predicate on the "option_id" field.
func OptionIDGT(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldOptionID, v))
}

// OptionIDGTE applies the GTE predicate on the "option_id" field.
func OptionIDGTE(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldOptionID, v))
}

// OptionIDLT applies the LT predicate on the "option_id" field.
func OptionIDLT(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldOptionID, v))
}

// OptionIDLTE applies the LTE predicate on the "option_id" field.
func OptionIDLTE(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldOptionID, v))
}

// OptionIDIsNil applies the IsNil predicate on the "option_id" field.
func OptionIDIsNil() predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIsNull(FieldOptionID))
}

// OptionIDNotNil applies the NotNil predicate on the "option_id" field.
func OptionIDNotNil() predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotNull(FieldOptionID))
}

// NextQuestionnaireIDEQ applies the EQ predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldEQ(FieldNextQuestionnaireID, v))
}

// NextQuestionnaireIDNEQ applies the NEQ predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDNEQ(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNEQ(FieldNextQuestionnaireID, v))
}

// NextQuestionnaireIDIn applies the In predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldIn(FieldNextQuestionnaireID, vs...))
}

// NextQuestionnaireIDNotIn applies the NotIn predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDNotIn(vs ...uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldNotIn(FieldNextQuestionnaireID, vs...))
}

// NextQuestionnaireIDGT applies the GT predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDGT(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGT(FieldNextQuestionnaireID, v))
}

// NextQuestionnaireIDGTE applies the GTE predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDGTE(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldGTE(FieldNextQuestionnaireID, v))
}

// NextQuestionnaireIDLT applies the LT predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDLT(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLT(FieldNextQuestionnaireID, v))
}

// NextQuestionnaireIDLTE applies the LTE predicate on the "next_questionnaire_id" field.
func NextQuestionnaireIDLTE(v uuid.UUID) predicate.BranchRule {
	return predicate.BranchRule(sql.FieldLTE(FieldNextQuestionnaireID, v))
}

// HasQuestionnaire applies the HasEdge predicate on the "questionnaire" edge.
func HasQuestionnaire() predicate.BranchRule {
	return predicate.BranchRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionnaireTable, QuestionnaireColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionnaireWith applies the HasEdge predicate on the "questionnaire" edge with a given conditions (other predicates).
func HasQuestionnaireWith(preds ...predicate.Questionnaire) predicate.BranchRule {
	return predicate.BranchRule(func(s *sql.Selector) {
		step := newQuestionnaireStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.BranchRule {
	return predicate.BranchRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.BranchRule {
	return predicate.BranchRule(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BranchRule) predicate.BranchRule {
	return predicate.BranchRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BranchRule) predicate.BranchRule {
	return predicate.BranchRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BranchRule) predicate.BranchRule {
	return predicate.BranchRule(sql.NotPredicates(p))
}
