// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDeletedAt, v))
}

// QuestionnaireID applies equality check predicate on the "questionnaire_id" field. It's identical to QuestionnaireIDEQ.
func QuestionnaireID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionnaireID, v))
}

// DimensionID applies equality check predicate on the "dimension_id" field. It's identical to DimensionIDEQ.
func DimensionID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDimensionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDisplayOrder, v))
}

// IsGrouping applies equality check predicate on the "is_grouping" field. It's identical to IsGroupingEQ.
func IsGrouping(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsGrouping, v))
}

// Multiline applies equality check predicate on the "multiline" field. It's identical to MultilineEQ.
func Multiline(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMultiline, v))
}

// InputRows applies equality check predicate on the "input_rows" field. It's identical to InputRowsEQ.
func InputRows(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldInputRows, v))
}

// InputType applies equality check predicate on the "input_type" field. It's identical to InputTypeEQ.
func InputType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldInputType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDeletedAt))
}

// QuestionnaireIDEQ applies the EQ predicate on the "questionnaire_id" field.
func QuestionnaireIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDNEQ applies the NEQ predicate on the "questionnaire_id" field.
func QuestionnaireIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionnaireID, v))
}

// QuestionnaireIDIn applies the In predicate on the "questionnaire_id" field.
func QuestionnaireIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionnaireID, vs...))
}

// QuestionnaireIDNotIn applies the NotIn predicate on the "questionnaire_id" field.
func QuestionnaireIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionnaireID, vs...))
}

// DimensionIDEQ applies the EQ predicate on the "dimension_id" field.
func DimensionIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDimensionID, v))
}

// DimensionIDNEQ applies the NEQ predicate on the "dimension_id" field.
func DimensionIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDimensionID, v))
}

// DimensionIDIn applies the In predicate on the "dimension_id" field.
func DimensionIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDimensionID, vs...))
}

// DimensionIDNotIn applies the NotIn predicate on the "dimension_id" field.
func DimensionIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDimensionID, vs...))
}

// DimensionIDIsNil applies the IsNil predicate on the "dimension_id" field.
func DimensionIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDimensionID))
}

// DimensionIDNotNil applies the NotNil predicate on the "dimension_id" field.
func DimensionIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDimensionID))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldType, vs...))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDisplayOrder, v))
}

// IsGroupingEQ applies the EQ predicate on the "is_grouping" field.
func IsGroupingEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsGrouping, v))
}

// IsGroupingNEQ applies the NEQ predicate on the "is_grouping" field.
func IsGroupingNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsGrouping, v))
}

// MultilineEQ applies the EQ predicate on the "multiline" field.
func MultilineEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMultiline, v))
}

// MultilineNEQ applies the NEQ predicate on the "multiline" field.
func MultilineNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldMultiline, v))
}

// InputRowsEQ applies the EQ predicate on the "input_rows" field.
func InputRowsEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldInputRows, v))
}

// InputRowsNEQ applies the NEQ predicate on the "input_rows" field.
func InputRowsNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldInputRows, v))
}

// InputRowsIn applies the In predicate on the "input_rows" field.
func InputRowsIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldInputRows, vs...))
}

// InputRowsNotIn applies the NotIn predicate on the "input_rows" field.
func InputRowsNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldInputRows, vs...))
}

// InputRowsGT applies the GT predicate on the "input_rows" field.
func InputRowsGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldInputRows, v))
}

// InputRowsGTE applies the GTE predicate on the "input_rows" field.
func InputRowsGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldInputRows, v))
}

// InputRowsLT applies the LT predicate on the "input_rows" field.
func InputRowsLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldInputRows, v))
}

// InputRowsLTE applies the LTE predicate on the "input_rows" field.
func InputRowsLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldInputRows, v))
}

// InputTypeEQ applies the EQ predicate on the "input_type" field.
func InputTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldInputType, v))
}

// InputTypeNEQ applies the NEQ predicate on the "input_type" field.
func InputTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldInputType, v))
}

// InputTypeIn applies the In predicate on the "input_type" field.
func InputTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldInputType, vs...))
}

// InputTypeNotIn applies the NotIn predicate on the "input_type" field.
func InputTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldInputType, vs...))
}

// InputTypeGT applies the GT predicate on the "input_type" field.
func InputTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldInputType, v))
}

// InputTypeGTE applies the GTE predicate on the "input_type" field.
func InputTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldInputType, v))
}

// InputTypeLT applies the LT predicate on the "input_type" field.
func InputTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldInputType, v))
}

// InputTypeLTE applies the LTE predicate on the "input_type" field.
func InputTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldInputType, v))
}

// InputTypeContains applies the Contains predicate on the "input_type" field.
func InputTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldInputType, v))
}

// InputTypeHasPrefix applies the HasPrefix predicate on the "input_type" field.
func InputTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldInputType, v))
}

// InputTypeHasSuffix applies the HasSuffix predicate on the "input_type" field.
func InputTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldInputType, v))
}

// InputTypeIsNil applies the IsNil predicate on the "input_type" field.
func InputTypeIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldInputType))
}

// InputTypeNotNil applies the NotNil predicate on the "input_type" field.
func InputTypeNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldInputType))
}

// InputTypeEqualFold applies the EqualFold predicate on the "input_type" field.
func InputTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldInputType, v))
}

// InputTypeContainsFold applies the ContainsFold predicate on the "input_type" field.
func InputTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldInputType, v))
}

// HasQuestionnaire applies the HasEdge predicate on the "questionnaire" edge.
func HasQuestionnaire() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionnaireTable, QuestionnaireColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionnaireWith applies the HasEdge predicate on the "questionnaire" edge with a given conditions (other predicates).
func HasQuestionnaireWith(preds ...predicate.Questionnaire) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newQuestionnaireStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDimension applies the HasEdge predicate on the "dimension" edge.
func HasDimension() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DimensionTable, DimensionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDimensionWith applies the HasEdge predicate on the "dimension" edge with a given conditions (other predicates).
func HasDimensionWith(preds ...predicate.Dimension) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newDimensionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOptions applies the HasEdge predicate on the "options" edge.
func HasOptions() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionsWith applies the HasEdge predicate on the "options" edge with a given conditions (other predicates).
func HasOptionsWith(preds ...predicate.SurveyOption) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newOptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBranchRules applies the HasEdge predicate on the "branch_rules" edge.
func HasBranchRules() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BranchRulesTable, BranchRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBranchRulesWith applies the HasEdge predicate on the "branch_rules" edge with a given conditions (other predicates).
func HasBranchRulesWith(preds ...predicate.BranchRule) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newBranchRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
