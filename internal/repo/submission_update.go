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
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SubmissionUpdate) SetDeletedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDeletedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SubmissionUpdate) ClearDeletedAt() *SubmissionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *SubmissionUpdate) SetQuestionnaireID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableQuestionnaireID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SubmissionUpdate) SetTotalScore(v float64) *SubmissionUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTotalScore(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SubmissionUpdate) AddTotalScore(v float64) *SubmissionUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *SubmissionUpdate) ClearTotalScore() *SubmissionUpdate {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_u *SubmissionUpdate) SetAssessmentLevel(v string) *SubmissionUpdate {
	_u.mutation.SetAssessmentLevel(v)
	return _u
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAssessmentLevel(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAssessmentLevel(*v)
	}
	return _u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (_u *SubmissionUpdate) ClearAssessmentLevel() *SubmissionUpdate {
	_u.mutation.ClearAssessmentLevel()
	return _u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_u *SubmissionUpdate) SetAssessmentOpinion(v string) *SubmissionUpdate {
	_u.mutation.SetAssessmentOpinion(v)
	return _u
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAssessmentOpinion(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAssessmentOpinion(*v)
	}
	return _u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (_u *SubmissionUpdate) ClearAssessmentOpinion() *SubmissionUpdate {
	_u.mutation.ClearAssessmentOpinion()
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *SubmissionUpdate) SetGroupKey(v string) *SubmissionUpdate {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGroupKey(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *SubmissionUpdate) ClearGroupKey() *SubmissionUpdate {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *SubmissionUpdate) SetQuestionnaire(v *Questionnaire) *SubmissionUpdate {
	return _u.SetQuestionnaireID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SubmissionUpdate) AddAnswerIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SubmissionUpdate) AddAnswers(v ...*Answer) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddDimensionScoreIDs adds the "dimension_scores" edge to the DimensionScore entity by IDs.
func (_u *SubmissionUpdate) AddDimensionScoreIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.AddDimensionScoreIDs(ids...)
	return _u
}

// AddDimensionScores adds the "dimension_scores" edges to the DimensionScore entity.
func (_u *SubmissionUpdate) AddDimensionScores(v ...*DimensionScore) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDimensionScoreIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *SubmissionUpdate) ClearQuestionnaire() *SubmissionUpdate {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SubmissionUpdate) ClearAnswers() *SubmissionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SubmissionUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SubmissionUpdate) RemoveAnswers(v ...*Answer) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearDimensionScores clears all "dimension_scores" edges to the DimensionScore entity.
func (_u *SubmissionUpdate) ClearDimensionScores() *SubmissionUpdate {
	_u.mutation.ClearDimensionScores()
	return _u
}

// RemoveDimensionScoreIDs removes the "dimension_scores" edge to DimensionScore entities by IDs.
func (_u *SubmissionUpdate) RemoveDimensionScoreIDs(ids ...uuid.UUID) *SubmissionUpdate {
	_u.mutation.RemoveDimensionScoreIDs(ids...)
	return _u
}

// RemoveDimensionScores removes "dimension_scores" edges to DimensionScore entities.
func (_u *SubmissionUpdate) RemoveDimensionScores(v ...*DimensionScore) *SubmissionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDimensionScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.AssessmentLevel(); ok {
		if err := submission.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "Submission.assessment_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupKey(); ok {
		if err := submission.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "Submission.group_key": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Submission.questionnaire"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(submission.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(submission.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(submission.FieldTotalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AssessmentLevel(); ok {
		_spec.SetField(submission.FieldAssessmentLevel, field.TypeString, value)
	}
	if _u.mutation.AssessmentLevelCleared() {
		_spec.ClearField(submission.FieldAssessmentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentOpinion(); ok {
		_spec.SetField(submission.FieldAssessmentOpinion, field.TypeString, value)
	}
	if _u.mutation.AssessmentOpinionCleared() {
		_spec.ClearField(submission.FieldAssessmentOpinion, field.TypeString)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(submission.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(submission.FieldGroupKey, field.TypeString)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.QuestionnaireTable,
			Columns: []string{submission.QuestionnaireColumn},
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
			Table:   submission.QuestionnaireTable,
			Columns: []string{submission.QuestionnaireColumn},
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
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
	if _u.mutation.DimensionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDimensionScoresIDs(); len(nodes) > 0 && !_u.mutation.DimensionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SubmissionUpdateOne) SetDeletedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDeletedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SubmissionUpdateOne) ClearDeletedAt() *SubmissionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *SubmissionUpdateOne) SetQuestionnaireID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableQuestionnaireID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SubmissionUpdateOne) SetTotalScore(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTotalScore(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SubmissionUpdateOne) AddTotalScore(v float64) *SubmissionUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *SubmissionUpdateOne) ClearTotalScore() *SubmissionUpdateOne {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_u *SubmissionUpdateOne) SetAssessmentLevel(v string) *SubmissionUpdateOne {
	_u.mutation.SetAssessmentLevel(v)
	return _u
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAssessmentLevel(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAssessmentLevel(*v)
	}
	return _u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (_u *SubmissionUpdateOne) ClearAssessmentLevel() *SubmissionUpdateOne {
	_u.mutation.ClearAssessmentLevel()
	return _u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_u *SubmissionUpdateOne) SetAssessmentOpinion(v string) *SubmissionUpdateOne {
	_u.mutation.SetAssessmentOpinion(v)
	return _u
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAssessmentOpinion(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAssessmentOpinion(*v)
	}
	return _u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (_u *SubmissionUpdateOne) ClearAssessmentOpinion() *SubmissionUpdateOne {
	_u.mutation.ClearAssessmentOpinion()
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *SubmissionUpdateOne) SetGroupKey(v string) *SubmissionUpdateOne {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGroupKey(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *SubmissionUpdateOne) ClearGroupKey() *SubmissionUpdateOne {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *SubmissionUpdateOne) SetQuestionnaire(v *Questionnaire) *SubmissionUpdateOne {
	return _u.SetQuestionnaireID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SubmissionUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SubmissionUpdateOne) AddAnswers(v ...*Answer) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddDimensionScoreIDs adds the "dimension_scores" edge to the DimensionScore entity by IDs.
func (_u *SubmissionUpdateOne) AddDimensionScoreIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.AddDimensionScoreIDs(ids...)
	return _u
}

// AddDimensionScores adds the "dimension_scores" edges to the DimensionScore entity.
func (_u *SubmissionUpdateOne) AddDimensionScores(v ...*DimensionScore) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDimensionScoreIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *SubmissionUpdateOne) ClearQuestionnaire() *SubmissionUpdateOne {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SubmissionUpdateOne) ClearAnswers() *SubmissionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SubmissionUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SubmissionUpdateOne) RemoveAnswers(v ...*Answer) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearDimensionScores clears all "dimension_scores" edges to the DimensionScore entity.
func (_u *SubmissionUpdateOne) ClearDimensionScores() *SubmissionUpdateOne {
	_u.mutation.ClearDimensionScores()
	return _u
}

// RemoveDimensionScoreIDs removes the "dimension_scores" edge to DimensionScore entities by IDs.
func (_u *SubmissionUpdateOne) RemoveDimensionScoreIDs(ids ...uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.RemoveDimensionScoreIDs(ids...)
	return _u
}

// RemoveDimensionScores removes "dimension_scores" edges to DimensionScore entities.
func (_u *SubmissionUpdateOne) RemoveDimensionScores(v ...*DimensionScore) *SubmissionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDimensionScoreIDs(ids...)
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentLevel(); ok {
		if err := submission.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "Submission.assessment_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupKey(); ok {
		if err := submission.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "Submission.group_key": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Submission.questionnaire"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(submission.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(submission.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(submission.FieldTotalScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AssessmentLevel(); ok {
		_spec.SetField(submission.FieldAssessmentLevel, field.TypeString, value)
	}
	if _u.mutation.AssessmentLevelCleared() {
		_spec.ClearField(submission.FieldAssessmentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentOpinion(); ok {
		_spec.SetField(submission.FieldAssessmentOpinion, field.TypeString, value)
	}
	if _u.mutation.AssessmentOpinionCleared() {
		_spec.ClearField(submission.FieldAssessmentOpinion, field.TypeString)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(submission.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(submission.FieldGroupKey, field.TypeString)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.QuestionnaireTable,
			Columns: []string{submission.QuestionnaireColumn},
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
			Table:   submission.QuestionnaireTable,
			Columns: []string{submission.QuestionnaireColumn},
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
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
			Table:   submission.AnswersTable,
			Columns: []string{submission.AnswersColumn},
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
	if _u.mutation.DimensionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDimensionScoresIDs(); len(nodes) > 0 && !_u.mutation.DimensionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.DimensionScoresTable,
			Columns: []string{submission.DimensionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
