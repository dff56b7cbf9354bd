// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionUpdate) SetDeletedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDeletedAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionUpdate) ClearDeletedAt() *QuestionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *QuestionUpdate) SetQuestionnaireID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionnaireID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *QuestionUpdate) SetDimensionID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDimensionID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (_u *QuestionUpdate) ClearDimensionID() *QuestionUpdate {
	_u.mutation.ClearDimensionID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdate) SetType(v question.Type) *QuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableType(v *question.Type) *QuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *QuestionUpdate) SetDisplayOrder(v int) *QuestionUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDisplayOrder(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *QuestionUpdate) AddDisplayOrder(v int) *QuestionUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetIsGrouping sets the "is_grouping" field.
func (_u *QuestionUpdate) SetIsGrouping(v bool) *QuestionUpdate {
	_u.mutation.SetIsGrouping(v)
	return _u
}

// SetNillableIsGrouping sets the "is_grouping" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsGrouping(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsGrouping(*v)
	}
	return _u
}

// SetMultiline sets the "multiline" field.
func (_u *QuestionUpdate) SetMultiline(v bool) *QuestionUpdate {
	_u.mutation.SetMultiline(v)
	return _u
}

// SetNillableMultiline sets the "multiline" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMultiline(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetMultiline(*v)
	}
	return _u
}

// SetInputRows sets the "input_rows" field.
func (_u *QuestionUpdate) SetInputRows(v int) *QuestionUpdate {
	_u.mutation.ResetInputRows()
	_u.mutation.SetInputRows(v)
	return _u
}

// SetNillableInputRows sets the "input_rows" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableInputRows(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetInputRows(*v)
	}
	return _u
}

// AddInputRows adds value to the "input_rows" field.
func (_u *QuestionUpdate) AddInputRows(v int) *QuestionUpdate {
	_u.mutation.AddInputRows(v)
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *QuestionUpdate) SetInputType(v string) *QuestionUpdate {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableInputType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// ClearInputType clears the value of the "input_type" field.
func (_u *QuestionUpdate) ClearInputType() *QuestionUpdate {
	_u.mutation.ClearInputType()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *QuestionUpdate) SetQuestionnaire(v *Questionnaire) *QuestionUpdate {
	return _u.SetQuestionnaireID(v.ID)
}

// SetDimension sets the "dimension" edge to the Dimension entity.
func (_u *QuestionUpdate) SetDimension(v *Dimension) *QuestionUpdate {
	return _u.SetDimensionID(v.ID)
}

// AddOptionIDs adds the "options" edge to the SurveyOption entity by IDs.
func (_u *QuestionUpdate) AddOptionIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the SurveyOption entity.
func (_u *QuestionUpdate) AddOptions(v ...*SurveyOption) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_u *QuestionUpdate) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddBranchRuleIDs(ids...)
	return _u
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_u *QuestionUpdate) AddBranchRules(v ...*BranchRule) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchRuleIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *QuestionUpdate) AddAnswerIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *QuestionUpdate) AddAnswers(v ...*Answer) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *QuestionUpdate) ClearQuestionnaire() *QuestionUpdate {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearDimension clears the "dimension" edge to the Dimension entity.
func (_u *QuestionUpdate) ClearDimension() *QuestionUpdate {
	_u.mutation.ClearDimension()
	return _u
}

// ClearOptions clears all "options" edges to the SurveyOption entity.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to SurveyOption entities by IDs.
func (_u *QuestionUpdate) RemoveOptionIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to SurveyOption entities.
func (_u *QuestionUpdate) RemoveOptions(v ...*SurveyOption) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearBranchRules clears all "branch_rules" edges to the BranchRule entity.
func (_u *QuestionUpdate) ClearBranchRules() *QuestionUpdate {
	_u.mutation.ClearBranchRules()
	return _u
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to BranchRule entities by IDs.
func (_u *QuestionUpdate) RemoveBranchRuleIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveBranchRuleIDs(ids...)
	return _u
}

// RemoveBranchRules removes "branch_rules" edges to BranchRule entities.
func (_u *QuestionUpdate) RemoveBranchRules(v ...*BranchRule) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchRuleIDs(ids...)
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *QuestionUpdate) ClearAnswers() *QuestionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *QuestionUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *QuestionUpdate) RemoveAnswers(v ...*Answer) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputType(); ok {
		if err := question.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`repo: validator failed for field "Question.input_type": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Question.questionnaire"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(question.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(question.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(question.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(question.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsGrouping(); ok {
		_spec.SetField(question.FieldIsGrouping, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Multiline(); ok {
		_spec.SetField(question.FieldMultiline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputRows(); ok {
		_spec.SetField(question.FieldInputRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputRows(); ok {
		_spec.AddField(question.FieldInputRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(question.FieldInputType, field.TypeString, value)
	}
	if _u.mutation.InputTypeCleared() {
		_spec.ClearField(question.FieldInputType, field.TypeString)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.QuestionnaireTable,
			Columns: []string{question.QuestionnaireColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnaireIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.QuestionnaireTable,
			Columns: []string{question.QuestionnaireColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DimensionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.DimensionTable,
			Columns: []string{question.DimensionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.DimensionTable,
			Columns: []string{question.DimensionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchRulesIDs(); len(nodes) > 0 && !_u.mutation.BranchRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionUpdateOne) SetDeletedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDeletedAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionUpdateOne) ClearDeletedAt() *QuestionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *QuestionUpdateOne) SetQuestionnaireID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionnaireID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *QuestionUpdateOne) SetDimensionID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDimensionID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (_u *QuestionUpdateOne) ClearDimensionID() *QuestionUpdateOne {
	_u.mutation.ClearDimensionID()
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuestionUpdateOne) SetType(v question.Type) *QuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableType(v *question.Type) *QuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *QuestionUpdateOne) SetDisplayOrder(v int) *QuestionUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDisplayOrder(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *QuestionUpdateOne) AddDisplayOrder(v int) *QuestionUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetIsGrouping sets the "is_grouping" field.
func (_u *QuestionUpdateOne) SetIsGrouping(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsGrouping(v)
	return _u
}

// SetNillableIsGrouping sets the "is_grouping" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsGrouping(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsGrouping(*v)
	}
	return _u
}

// SetMultiline sets the "multiline" field.
func (_u *QuestionUpdateOne) SetMultiline(v bool) *QuestionUpdateOne {
	_u.mutation.SetMultiline(v)
	return _u
}

// SetNillableMultiline sets the "multiline" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMultiline(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetMultiline(*v)
	}
	return _u
}

// SetInputRows sets the "input_rows" field.
func (_u *QuestionUpdateOne) SetInputRows(v int) *QuestionUpdateOne {
	_u.mutation.ResetInputRows()
	_u.mutation.SetInputRows(v)
	return _u
}

// SetNillableInputRows sets the "input_rows" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableInputRows(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetInputRows(*v)
	}
	return _u
}

// AddInputRows adds value to the "input_rows" field.
func (_u *QuestionUpdateOne) AddInputRows(v int) *QuestionUpdateOne {
	_u.mutation.AddInputRows(v)
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *QuestionUpdateOne) SetInputType(v string) *QuestionUpdateOne {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableInputType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// ClearInputType clears the value of the "input_type" field.
func (_u *QuestionUpdateOne) ClearInputType() *QuestionUpdateOne {
	_u.mutation.ClearInputType()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *QuestionUpdateOne) SetQuestionnaire(v *Questionnaire) *QuestionUpdateOne {
	return _u.SetQuestionnaireID(v.ID)
}

// SetDimension sets the "dimension" edge to the Dimension entity.
func (_u *QuestionUpdateOne) SetDimension(v *Dimension) *QuestionUpdateOne {
	return _u.SetDimensionID(v.ID)
}

// AddOptionIDs adds the "options" edge to the SurveyOption entity by IDs.
func (_u *QuestionUpdateOne) AddOptionIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the SurveyOption entity.
func (_u *QuestionUpdateOne) AddOptions(v ...*SurveyOption) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_u *QuestionUpdateOne) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddBranchRuleIDs(ids...)
	return _u
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_u *QuestionUpdateOne) AddBranchRules(v ...*BranchRule) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchRuleIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *QuestionUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *QuestionUpdateOne) AddAnswers(v ...*Answer) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *QuestionUpdateOne) ClearQuestionnaire() *QuestionUpdateOne {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearDimension clears the "dimension" edge to the Dimension entity.
func (_u *QuestionUpdateOne) ClearDimension() *QuestionUpdateOne {
	_u.mutation.ClearDimension()
	return _u
}

// ClearOptions clears all "options" edges to the SurveyOption entity.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to SurveyOption entities by IDs.
func (_u *QuestionUpdateOne) RemoveOptionIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to SurveyOption entities.
func (_u *QuestionUpdateOne) RemoveOptions(v ...*SurveyOption) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearBranchRules clears all "branch_rules" edges to the BranchRule entity.
func (_u *QuestionUpdateOne) ClearBranchRules() *QuestionUpdateOne {
	_u.mutation.ClearBranchRules()
	return _u
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to BranchRule entities by IDs.
func (_u *QuestionUpdateOne) RemoveBranchRuleIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveBranchRuleIDs(ids...)
	return _u
}

// RemoveBranchRules removes "branch_rules" edges to BranchRule entities.
func (_u *QuestionUpdateOne) RemoveBranchRules(v ...*BranchRule) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchRuleIDs(ids...)
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *QuestionUpdateOne) ClearAnswers() *QuestionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *QuestionUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *QuestionUpdateOne) RemoveAnswers(v ...*Answer) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Question.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputType(); ok {
		if err := question.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`repo: validator failed for field "Question.input_type": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Question.questionnaire"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(question.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(question.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(question.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(question.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsGrouping(); ok {
		_spec.SetField(question.FieldIsGrouping, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Multiline(); ok {
		_spec.SetField(question.FieldMultiline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputRows(); ok {
		_spec.SetField(question.FieldInputRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputRows(); ok {
		_spec.AddField(question.FieldInputRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(question.FieldInputType, field.TypeString, value)
	}
	if _u.mutation.InputTypeCleared() {
		_spec.ClearField(question.FieldInputType, field.TypeString)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.QuestionnaireTable,
			Columns: []string{question.QuestionnaireColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnaireIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.QuestionnaireTable,
			Columns: []string{question.QuestionnaireColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DimensionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.DimensionTable,
			Columns: []string{question.DimensionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.DimensionTable,
			Columns: []string{question.DimensionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BranchRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBranchRulesIDs(); len(nodes) > 0 && !_u.mutation.BranchRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
