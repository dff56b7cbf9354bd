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
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// QuestionnaireUpdate is the builder for updating Questionnaire entities.
type QuestionnaireUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionnaireMutation
}

// Where appends a list predicates to the QuestionnaireUpdate builder.
func (_u *QuestionnaireUpdate) Where(ps ...predicate.Questionnaire) *QuestionnaireUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionnaireUpdate) SetUpdatedAt(v time.Time) *QuestionnaireUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionnaireUpdate) SetDeletedAt(v time.Time) *QuestionnaireUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableDeletedAt(v *time.Time) *QuestionnaireUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionnaireUpdate) ClearDeletedAt() *QuestionnaireUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionnaireUpdate) SetTitle(v string) *QuestionnaireUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableTitle(v *string) *QuestionnaireUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *QuestionnaireUpdate) SetDescription(v string) *QuestionnaireUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableDescription(v *string) *QuestionnaireUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QuestionnaireUpdate) ClearDescription() *QuestionnaireUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestionnaireUpdate) SetStatus(v questionnaire.Status) *QuestionnaireUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableStatus(v *questionnaire.Status) *QuestionnaireUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *QuestionnaireUpdate) SetIsPublished(v bool) *QuestionnaireUpdate {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableIsPublished(v *bool) *QuestionnaireUpdate {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *QuestionnaireUpdate) SetPublishedAt(v time.Time) *QuestionnaireUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillablePublishedAt(v *time.Time) *QuestionnaireUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *QuestionnaireUpdate) ClearPublishedAt() *QuestionnaireUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetAccessCode sets the "access_code" field.
func (_u *QuestionnaireUpdate) SetAccessCode(v string) *QuestionnaireUpdate {
	_u.mutation.SetAccessCode(v)
	return _u
}

// SetNillableAccessCode sets the "access_code" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableAccessCode(v *string) *QuestionnaireUpdate {
	if v != nil {
		_u.SetAccessCode(*v)
	}
	return _u
}

// ClearAccessCode clears the value of the "access_code" field.
func (_u *QuestionnaireUpdate) ClearAccessCode() *QuestionnaireUpdate {
	_u.mutation.ClearAccessCode()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *QuestionnaireUpdate) SetParentID(v uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QuestionnaireUpdate) SetNillableParentID(v *uuid.UUID) *QuestionnaireUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QuestionnaireUpdate) ClearParentID() *QuestionnaireUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetParent sets the "parent" edge to the Questionnaire entity.
func (_u *QuestionnaireUpdate) SetParent(v *Questionnaire) *QuestionnaireUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Questionnaire entity by IDs.
func (_u *QuestionnaireUpdate) AddChildIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Questionnaire entity.
func (_u *QuestionnaireUpdate) AddChildren(v ...*Questionnaire) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddDimensionIDs adds the "dimensions" edge to the Dimension entity by IDs.
func (_u *QuestionnaireUpdate) AddDimensionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddDimensionIDs(ids...)
	return _u
}

// AddDimensions adds the "dimensions" edges to the Dimension entity.
func (_u *QuestionnaireUpdate) AddDimensions(v ...*Dimension) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDimensionIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *QuestionnaireUpdate) AddQuestionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *QuestionnaireUpdate) AddQuestions(v ...*Question) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *QuestionnaireUpdate) AddSubmissionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *QuestionnaireUpdate) AddSubmissions(v ...*Submission) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddAssessmentLevelIDs adds the "assessment_levels" edge to the AssessmentLevel entity by IDs.
func (_u *QuestionnaireUpdate) AddAssessmentLevelIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddAssessmentLevelIDs(ids...)
	return _u
}

// AddAssessmentLevels adds the "assessment_levels" edges to the AssessmentLevel entity.
func (_u *QuestionnaireUpdate) AddAssessmentLevels(v ...*AssessmentLevel) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentLevelIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_u *QuestionnaireUpdate) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.AddBranchRuleIDs(ids...)
	return _u
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_u *QuestionnaireUpdate) AddBranchRules(v ...*BranchRule) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchRuleIDs(ids...)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_u *QuestionnaireUpdate) Mutation() *QuestionnaireMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Questionnaire entity.
func (_u *QuestionnaireUpdate) ClearParent() *QuestionnaireUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Questionnaire entity.
func (_u *QuestionnaireUpdate) ClearChildren() *QuestionnaireUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Questionnaire entities by IDs.
func (_u *QuestionnaireUpdate) RemoveChildIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Questionnaire entities.
func (_u *QuestionnaireUpdate) RemoveChildren(v ...*Questionnaire) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearDimensions clears all "dimensions" edges to the Dimension entity.
func (_u *QuestionnaireUpdate) ClearDimensions() *QuestionnaireUpdate {
	_u.mutation.ClearDimensions()
	return _u
}

// RemoveDimensionIDs removes the "dimensions" edge to Dimension entities by IDs.
func (_u *QuestionnaireUpdate) RemoveDimensionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveDimensionIDs(ids...)
	return _u
}

// RemoveDimensions removes "dimensions" edges to Dimension entities.
func (_u *QuestionnaireUpdate) RemoveDimensions(v ...*Dimension) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDimensionIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *QuestionnaireUpdate) ClearQuestions() *QuestionnaireUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *QuestionnaireUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *QuestionnaireUpdate) RemoveQuestions(v ...*Question) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *QuestionnaireUpdate) ClearSubmissions() *QuestionnaireUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *QuestionnaireUpdate) RemoveSubmissionIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *QuestionnaireUpdate) RemoveSubmissions(v ...*Submission) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearAssessmentLevels clears all "assessment_levels" edges to the AssessmentLevel entity.
func (_u *QuestionnaireUpdate) ClearAssessmentLevels() *QuestionnaireUpdate {
	_u.mutation.ClearAssessmentLevels()
	return _u
}

// RemoveAssessmentLevelIDs removes the "assessment_levels" edge to AssessmentLevel entities by IDs.
func (_u *QuestionnaireUpdate) RemoveAssessmentLevelIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveAssessmentLevelIDs(ids...)
	return _u
}

// RemoveAssessmentLevels removes "assessment_levels" edges to AssessmentLevel entities.
func (_u *QuestionnaireUpdate) RemoveAssessmentLevels(v ...*AssessmentLevel) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentLevelIDs(ids...)
}

// ClearBranchRules clears all "branch_rules" edges to the BranchRule entity.
func (_u *QuestionnaireUpdate) ClearBranchRules() *QuestionnaireUpdate {
	_u.mutation.ClearBranchRules()
	return _u
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to BranchRule entities by IDs.
func (_u *QuestionnaireUpdate) RemoveBranchRuleIDs(ids ...uuid.UUID) *QuestionnaireUpdate {
	_u.mutation.RemoveBranchRuleIDs(ids...)
	return _u
}

// RemoveBranchRules removes "branch_rules" edges to BranchRule entities.
func (_u *QuestionnaireUpdate) RemoveBranchRules(v ...*BranchRule) *QuestionnaireUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchRuleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionnaireUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionnaireUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionnaireUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionnaireUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionnaireUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionnaire.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionnaireUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionnaire.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questionnaire.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCode(); ok {
		if err := questionnaire.AccessCodeValidator(v); err != nil {
			return &ValidationError{Name: "access_code", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.access_code": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionnaireUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionnaire.Table, questionnaire.Columns, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionnaire.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionnaire.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionnaire.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionnaire.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(questionnaire.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(questionnaire.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionnaire.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(questionnaire.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(questionnaire.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(questionnaire.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccessCode(); ok {
		_spec.SetField(questionnaire.FieldAccessCode, field.TypeString, value)
	}
	if _u.mutation.AccessCodeCleared() {
		_spec.ClearField(questionnaire.FieldAccessCode, field.TypeString)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.ParentTable,
			Columns: []string{questionnaire.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.ParentTable,
			Columns: []string{questionnaire.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
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
	if _u.mutation.DimensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDimensionsIDs(); len(nodes) > 0 && !_u.mutation.DimensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
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
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentLevelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentLevelsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentLevelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentLevelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionnaire.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionnaireUpdateOne is the builder for updating a single Questionnaire entity.
type QuestionnaireUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionnaireMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionnaireUpdateOne) SetUpdatedAt(v time.Time) *QuestionnaireUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionnaireUpdateOne) SetDeletedAt(v time.Time) *QuestionnaireUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableDeletedAt(v *time.Time) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionnaireUpdateOne) ClearDeletedAt() *QuestionnaireUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionnaireUpdateOne) SetTitle(v string) *QuestionnaireUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableTitle(v *string) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *QuestionnaireUpdateOne) SetDescription(v string) *QuestionnaireUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableDescription(v *string) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *QuestionnaireUpdateOne) ClearDescription() *QuestionnaireUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestionnaireUpdateOne) SetStatus(v questionnaire.Status) *QuestionnaireUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableStatus(v *questionnaire.Status) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *QuestionnaireUpdateOne) SetIsPublished(v bool) *QuestionnaireUpdateOne {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableIsPublished(v *bool) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *QuestionnaireUpdateOne) SetPublishedAt(v time.Time) *QuestionnaireUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillablePublishedAt(v *time.Time) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *QuestionnaireUpdateOne) ClearPublishedAt() *QuestionnaireUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetAccessCode sets the "access_code" field.
func (_u *QuestionnaireUpdateOne) SetAccessCode(v string) *QuestionnaireUpdateOne {
	_u.mutation.SetAccessCode(v)
	return _u
}

// SetNillableAccessCode sets the "access_code" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableAccessCode(v *string) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetAccessCode(*v)
	}
	return _u
}

// ClearAccessCode clears the value of the "access_code" field.
func (_u *QuestionnaireUpdateOne) ClearAccessCode() *QuestionnaireUpdateOne {
	_u.mutation.ClearAccessCode()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *QuestionnaireUpdateOne) SetParentID(v uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *QuestionnaireUpdateOne) SetNillableParentID(v *uuid.UUID) *QuestionnaireUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *QuestionnaireUpdateOne) ClearParentID() *QuestionnaireUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetParent sets the "parent" edge to the Questionnaire entity.
func (_u *QuestionnaireUpdateOne) SetParent(v *Questionnaire) *QuestionnaireUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Questionnaire entity by IDs.
func (_u *QuestionnaireUpdateOne) AddChildIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Questionnaire entity.
func (_u *QuestionnaireUpdateOne) AddChildren(v ...*Questionnaire) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddDimensionIDs adds the "dimensions" edge to the Dimension entity by IDs.
func (_u *QuestionnaireUpdateOne) AddDimensionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddDimensionIDs(ids...)
	return _u
}

// AddDimensions adds the "dimensions" edges to the Dimension entity.
func (_u *QuestionnaireUpdateOne) AddDimensions(v ...*Dimension) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDimensionIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *QuestionnaireUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *QuestionnaireUpdateOne) AddQuestions(v ...*Question) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *QuestionnaireUpdateOne) AddSubmissionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *QuestionnaireUpdateOne) AddSubmissions(v ...*Submission) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddAssessmentLevelIDs adds the "assessment_levels" edge to the AssessmentLevel entity by IDs.
func (_u *QuestionnaireUpdateOne) AddAssessmentLevelIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddAssessmentLevelIDs(ids...)
	return _u
}

// AddAssessmentLevels adds the "assessment_levels" edges to the AssessmentLevel entity.
func (_u *QuestionnaireUpdateOne) AddAssessmentLevels(v ...*AssessmentLevel) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentLevelIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_u *QuestionnaireUpdateOne) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.AddBranchRuleIDs(ids...)
	return _u
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_u *QuestionnaireUpdateOne) AddBranchRules(v ...*BranchRule) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBranchRuleIDs(ids...)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_u *QuestionnaireUpdateOne) Mutation() *QuestionnaireMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Questionnaire entity.
func (_u *QuestionnaireUpdateOne) ClearParent() *QuestionnaireUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Questionnaire entity.
func (_u *QuestionnaireUpdateOne) ClearChildren() *QuestionnaireUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Questionnaire entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveChildIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Questionnaire entities.
func (_u *QuestionnaireUpdateOne) RemoveChildren(v ...*Questionnaire) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearDimensions clears all "dimensions" edges to the Dimension entity.
func (_u *QuestionnaireUpdateOne) ClearDimensions() *QuestionnaireUpdateOne {
	_u.mutation.ClearDimensions()
	return _u
}

// RemoveDimensionIDs removes the "dimensions" edge to Dimension entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveDimensionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveDimensionIDs(ids...)
	return _u
}

// RemoveDimensions removes "dimensions" edges to Dimension entities.
func (_u *QuestionnaireUpdateOne) RemoveDimensions(v ...*Dimension) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDimensionIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *QuestionnaireUpdateOne) ClearQuestions() *QuestionnaireUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *QuestionnaireUpdateOne) RemoveQuestions(v ...*Question) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *QuestionnaireUpdateOne) ClearSubmissions() *QuestionnaireUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveSubmissionIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *QuestionnaireUpdateOne) RemoveSubmissions(v ...*Submission) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearAssessmentLevels clears all "assessment_levels" edges to the AssessmentLevel entity.
func (_u *QuestionnaireUpdateOne) ClearAssessmentLevels() *QuestionnaireUpdateOne {
	_u.mutation.ClearAssessmentLevels()
	return _u
}

// RemoveAssessmentLevelIDs removes the "assessment_levels" edge to AssessmentLevel entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveAssessmentLevelIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveAssessmentLevelIDs(ids...)
	return _u
}

// RemoveAssessmentLevels removes "assessment_levels" edges to AssessmentLevel entities.
func (_u *QuestionnaireUpdateOne) RemoveAssessmentLevels(v ...*AssessmentLevel) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentLevelIDs(ids...)
}

// ClearBranchRules clears all "branch_rules" edges to the BranchRule entity.
func (_u *QuestionnaireUpdateOne) ClearBranchRules() *QuestionnaireUpdateOne {
	_u.mutation.ClearBranchRules()
	return _u
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to BranchRule entities by IDs.
func (_u *QuestionnaireUpdateOne) RemoveBranchRuleIDs(ids ...uuid.UUID) *QuestionnaireUpdateOne {
	_u.mutation.RemoveBranchRuleIDs(ids...)
	return _u
}

// RemoveBranchRules removes "branch_rules" edges to BranchRule entities.
func (_u *QuestionnaireUpdateOne) RemoveBranchRules(v ...*BranchRule) *QuestionnaireUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBranchRuleIDs(ids...)
}

// Where appends a list predicates to the QuestionnaireUpdate builder.
func (_u *QuestionnaireUpdateOne) Where(ps ...predicate.Questionnaire) *QuestionnaireUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionnaireUpdateOne) Select(field string, fields ...string) *QuestionnaireUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Questionnaire entity.
func (_u *QuestionnaireUpdateOne) Save(ctx context.Context) (*Questionnaire, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionnaireUpdateOne) SaveX(ctx context.Context) *Questionnaire {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionnaireUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionnaireUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionnaireUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionnaire.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionnaireUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionnaire.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questionnaire.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCode(); ok {
		if err := questionnaire.AccessCodeValidator(v); err != nil {
			return &ValidationError{Name: "access_code", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.access_code": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionnaireUpdateOne) sqlSave(ctx context.Context) (_node *Questionnaire, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionnaire.Table, questionnaire.Columns, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Questionnaire.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionnaire.FieldID)
		for _, f := range fields {
			if !questionnaire.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionnaire.FieldID {
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
		_spec.SetField(questionnaire.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionnaire.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionnaire.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionnaire.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(questionnaire.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(questionnaire.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionnaire.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(questionnaire.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(questionnaire.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(questionnaire.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccessCode(); ok {
		_spec.SetField(questionnaire.FieldAccessCode, field.TypeString, value)
	}
	if _u.mutation.AccessCodeCleared() {
		_spec.ClearField(questionnaire.FieldAccessCode, field.TypeString)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.ParentTable,
			Columns: []string{questionnaire.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionnaire.ParentTable,
			Columns: []string{questionnaire.ParentColumn},
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
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.ChildrenTable,
			Columns: []string{questionnaire.ChildrenColumn},
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
	if _u.mutation.DimensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDimensionsIDs(); len(nodes) > 0 && !_u.mutation.DimensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DimensionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.DimensionsTable,
			Columns: []string{questionnaire.DimensionsColumn},
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
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.QuestionsTable,
			Columns: []string{questionnaire.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.SubmissionsTable,
			Columns: []string{questionnaire.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentLevelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentLevelsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentLevelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentLevelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionnaire.AssessmentLevelsTable,
			Columns: []string{questionnaire.AssessmentLevelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID),
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
			Table:   questionnaire.BranchRulesTable,
			Columns: []string{questionnaire.BranchRulesColumn},
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
	_node = &Questionnaire{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionnaire.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
