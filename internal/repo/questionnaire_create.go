// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// QuestionnaireCreate is the builder for creating a Questionnaire entity.
type QuestionnaireCreate struct {
	config
	mutation *QuestionnaireMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionnaireCreate) SetCreatedAt(v time.Time) *QuestionnaireCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableCreatedAt(v *time.Time) *QuestionnaireCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionnaireCreate) SetUpdatedAt(v time.Time) *QuestionnaireCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableUpdatedAt(v *time.Time) *QuestionnaireCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *QuestionnaireCreate) SetDeletedAt(v time.Time) *QuestionnaireCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableDeletedAt(v *time.Time) *QuestionnaireCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuestionnaireCreate) SetTitle(v string) *QuestionnaireCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *QuestionnaireCreate) SetDescription(v string) *QuestionnaireCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableDescription(v *string) *QuestionnaireCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuestionnaireCreate) SetStatus(v questionnaire.Status) *QuestionnaireCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableStatus(v *questionnaire.Status) *QuestionnaireCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsPublished sets the "is_published" field.
func (_c *QuestionnaireCreate) SetIsPublished(v bool) *QuestionnaireCreate {
	_c.mutation.SetIsPublished(v)
	return _c
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableIsPublished(v *bool) *QuestionnaireCreate {
	if v != nil {
		_c.SetIsPublished(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *QuestionnaireCreate) SetPublishedAt(v time.Time) *QuestionnaireCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillablePublishedAt(v *time.Time) *QuestionnaireCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetAccessCode sets the "access_code" field.
func (_c *QuestionnaireCreate) SetAccessCode(v string) *QuestionnaireCreate {
	_c.mutation.SetAccessCode(v)
	return _c
}

// SetNillableAccessCode sets the "access_code" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableAccessCode(v *string) *QuestionnaireCreate {
	if v != nil {
		_c.SetAccessCode(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *QuestionnaireCreate) SetParentID(v uuid.UUID) *QuestionnaireCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableParentID(v *uuid.UUID) *QuestionnaireCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionnaireCreate) SetID(v uuid.UUID) *QuestionnaireCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionnaireCreate) SetNillableID(v *uuid.UUID) *QuestionnaireCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParent sets the "parent" edge to the Questionnaire entity.
func (_c *QuestionnaireCreate) SetParent(v *Questionnaire) *QuestionnaireCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Questionnaire entity by IDs.
func (_c *QuestionnaireCreate) AddChildIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Questionnaire entity.
func (_c *QuestionnaireCreate) AddChildren(v ...*Questionnaire) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddDimensionIDs adds the "dimensions" edge to the Dimension entity by IDs.
func (_c *QuestionnaireCreate) AddDimensionIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddDimensionIDs(ids...)
	return _c
}

// AddDimensions adds the "dimensions" edges to the Dimension entity.
func (_c *QuestionnaireCreate) AddDimensions(v ...*Dimension) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDimensionIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *QuestionnaireCreate) AddQuestionIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *QuestionnaireCreate) AddQuestions(v ...*Question) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *QuestionnaireCreate) AddSubmissionIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *QuestionnaireCreate) AddSubmissions(v ...*Submission) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// AddAssessmentLevelIDs adds the "assessment_levels" edge to the AssessmentLevel entity by IDs.
func (_c *QuestionnaireCreate) AddAssessmentLevelIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddAssessmentLevelIDs(ids...)
	return _c
}

// AddAssessmentLevels adds the "assessment_levels" edges to the AssessmentLevel entity.
func (_c *QuestionnaireCreate) AddAssessmentLevels(v ...*AssessmentLevel) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssessmentLevelIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_c *QuestionnaireCreate) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionnaireCreate {
	_c.mutation.AddBranchRuleIDs(ids...)
	return _c
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_c *QuestionnaireCreate) AddBranchRules(v ...*BranchRule) *QuestionnaireCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBranchRuleIDs(ids...)
}

// Mutation returns the QuestionnaireMutation object of the builder.
func (_c *QuestionnaireCreate) Mutation() *QuestionnaireMutation {
	return _c.mutation
}

// Save creates the Questionnaire in the database.
func (_c *QuestionnaireCreate) Save(ctx context.Context) (*Questionnaire, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionnaireCreate) SaveX(ctx context.Context) *Questionnaire {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionnaireCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionnaireCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionnaireCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionnaire.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := questionnaire.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := questionnaire.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		v := questionnaire.DefaultIsPublished
		_c.mutation.SetIsPublished(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionnaire.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionnaireCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Questionnaire.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Questionnaire.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Questionnaire.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := questionnaire.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Questionnaire.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := questionnaire.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		return &ValidationError{Name: "is_published", err: errors.New(`repo: missing required field "Questionnaire.is_published"`)}
	}
	if v, ok := _c.mutation.AccessCode(); ok {
		if err := questionnaire.AccessCodeValidator(v); err != nil {
			return &ValidationError{Name: "access_code", err: fmt.Errorf(`repo: validator failed for field "Questionnaire.access_code": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionnaireCreate) sqlSave(ctx context.Context) (*Questionnaire, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionnaireCreate) createSpec() (*Questionnaire, *sqlgraph.CreateSpec) {
	var (
		_node = &Questionnaire{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionnaire.Table, sqlgraph.NewFieldSpec(questionnaire.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionnaire.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(questionnaire.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(questionnaire.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(questionnaire.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(questionnaire.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questionnaire.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsPublished(); ok {
		_spec.SetField(questionnaire.FieldIsPublished, field.TypeBool, value)
		_node.IsPublished = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(questionnaire.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.AccessCode(); ok {
		_spec.SetField(questionnaire.FieldAccessCode, field.TypeString, value)
		_node.AccessCode = &value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
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
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DimensionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssessmentLevelsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BranchRulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Questionnaire.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionnaireUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionnaireCreate) OnConflict(opts ...sql.ConflictOption) *QuestionnaireUpsertOne {
	_c.conflict = opts
	return &QuestionnaireUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionnaireCreate) OnConflictColumns(columns ...string) *QuestionnaireUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionnaireUpsertOne{
		create: _c,
	}
}

type (
	// QuestionnaireUpsertOne is the builder for "upsert"-ing
	//  one Questionnaire node.
	QuestionnaireUpsertOne struct {
		create *QuestionnaireCreate
	}

	// QuestionnaireUpsert is the "OnConflict" setter.
	QuestionnaireUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionnaireUpsert) SetUpdatedAt(v time.Time) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateUpdatedAt() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionnaireUpsert) SetDeletedAt(v time.Time) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateDeletedAt() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionnaireUpsert) ClearDeletedAt() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldDeletedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *QuestionnaireUpsert) SetTitle(v string) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateTitle() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *QuestionnaireUpsert) SetDescription(v string) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateDescription() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *QuestionnaireUpsert) ClearDescription() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *QuestionnaireUpsert) SetStatus(v questionnaire.Status) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateStatus() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldStatus)
	return u
}

// SetIsPublished sets the "is_published" field.
func (u *QuestionnaireUpsert) SetIsPublished(v bool) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldIsPublished, v)
	return u
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateIsPublished() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldIsPublished)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *QuestionnaireUpsert) SetPublishedAt(v time.Time) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdatePublishedAt() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *QuestionnaireUpsert) ClearPublishedAt() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldPublishedAt)
	return u
}

// SetAccessCode sets the "access_code" field.
func (u *QuestionnaireUpsert) SetAccessCode(v string) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldAccessCode, v)
	return u
}

// UpdateAccessCode sets the "access_code" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateAccessCode() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldAccessCode)
	return u
}

// ClearAccessCode clears the value of the "access_code" field.
func (u *QuestionnaireUpsert) ClearAccessCode() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldAccessCode)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *QuestionnaireUpsert) SetParentID(v uuid.UUID) *QuestionnaireUpsert {
	u.Set(questionnaire.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionnaireUpsert) UpdateParentID() *QuestionnaireUpsert {
	u.SetExcluded(questionnaire.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionnaireUpsert) ClearParentID() *QuestionnaireUpsert {
	u.SetNull(questionnaire.FieldParentID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionnaire.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionnaireUpsertOne) UpdateNewValues() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionnaire.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionnaire.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionnaireUpsertOne) Ignore() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionnaireUpsertOne) DoNothing() *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionnaireCreate.OnConflict
// documentation for more info.
func (u *QuestionnaireUpsertOne) Update(set func(*QuestionnaireUpsert)) *QuestionnaireUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionnaireUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionnaireUpsertOne) SetUpdatedAt(v time.Time) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateUpdatedAt() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionnaireUpsertOne) SetDeletedAt(v time.Time) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateDeletedAt() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionnaireUpsertOne) ClearDeletedAt() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionnaireUpsertOne) SetTitle(v string) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateTitle() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *QuestionnaireUpsertOne) SetDescription(v string) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateDescription() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *QuestionnaireUpsertOne) ClearDescription() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *QuestionnaireUpsertOne) SetStatus(v questionnaire.Status) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateStatus() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateStatus()
	})
}

// SetIsPublished sets the "is_published" field.
func (u *QuestionnaireUpsertOne) SetIsPublished(v bool) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetIsPublished(v)
	})
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateIsPublished() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateIsPublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *QuestionnaireUpsertOne) SetPublishedAt(v time.Time) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdatePublishedAt() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *QuestionnaireUpsertOne) ClearPublishedAt() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearPublishedAt()
	})
}

// SetAccessCode sets the "access_code" field.
func (u *QuestionnaireUpsertOne) SetAccessCode(v string) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetAccessCode(v)
	})
}

// UpdateAccessCode sets the "access_code" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateAccessCode() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateAccessCode()
	})
}

// ClearAccessCode clears the value of the "access_code" field.
func (u *QuestionnaireUpsertOne) ClearAccessCode() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearAccessCode()
	})
}

// SetParentID sets the "parent_id" field.
func (u *QuestionnaireUpsertOne) SetParentID(v uuid.UUID) *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionnaireUpsertOne) UpdateParentID() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionnaireUpsertOne) ClearParentID() *QuestionnaireUpsertOne {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearParentID()
	})
}

// Exec executes the query.
func (u *QuestionnaireUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionnaireCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionnaireUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionnaireUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionnaireUpsertOne.ID is not supported by MySQL driver. Use QuestionnaireUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionnaireUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionnaireCreateBulk is the builder for creating many Questionnaire entities in bulk.
type QuestionnaireCreateBulk struct {
	config
	err      error
	builders []*QuestionnaireCreate
	conflict []sql.ConflictOption
}

// Save creates the Questionnaire entities in the database.
func (_c *QuestionnaireCreateBulk) Save(ctx context.Context) ([]*Questionnaire, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Questionnaire, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionnaireMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionnaireCreateBulk) SaveX(ctx context.Context) []*Questionnaire {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionnaireCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionnaireCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Questionnaire.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionnaireUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionnaireCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionnaireUpsertBulk {
	_c.conflict = opts
	return &QuestionnaireUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionnaireCreateBulk) OnConflictColumns(columns ...string) *QuestionnaireUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionnaireUpsertBulk{
		create: _c,
	}
}

// QuestionnaireUpsertBulk is the builder for "upsert"-ing
// a bulk of Questionnaire nodes.
type QuestionnaireUpsertBulk struct {
	create *QuestionnaireCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionnaire.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionnaireUpsertBulk) UpdateNewValues() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionnaire.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionnaire.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Questionnaire.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionnaireUpsertBulk) Ignore() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionnaireUpsertBulk) DoNothing() *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionnaireCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionnaireUpsertBulk) Update(set func(*QuestionnaireUpsert)) *QuestionnaireUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionnaireUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionnaireUpsertBulk) SetUpdatedAt(v time.Time) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateUpdatedAt() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionnaireUpsertBulk) SetDeletedAt(v time.Time) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateDeletedAt() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionnaireUpsertBulk) ClearDeletedAt() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionnaireUpsertBulk) SetTitle(v string) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateTitle() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *QuestionnaireUpsertBulk) SetDescription(v string) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateDescription() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *QuestionnaireUpsertBulk) ClearDescription() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *QuestionnaireUpsertBulk) SetStatus(v questionnaire.Status) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateStatus() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateStatus()
	})
}

// SetIsPublished sets the "is_published" field.
func (u *QuestionnaireUpsertBulk) SetIsPublished(v bool) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetIsPublished(v)
	})
}

// UpdateIsPublished sets the "is_published" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateIsPublished() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateIsPublished()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *QuestionnaireUpsertBulk) SetPublishedAt(v time.Time) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdatePublishedAt() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *QuestionnaireUpsertBulk) ClearPublishedAt() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearPublishedAt()
	})
}

// SetAccessCode sets the "access_code" field.
func (u *QuestionnaireUpsertBulk) SetAccessCode(v string) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetAccessCode(v)
	})
}

// UpdateAccessCode sets the "access_code" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateAccessCode() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateAccessCode()
	})
}

// ClearAccessCode clears the value of the "access_code" field.
func (u *QuestionnaireUpsertBulk) ClearAccessCode() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearAccessCode()
	})
}

// SetParentID sets the "parent_id" field.
func (u *QuestionnaireUpsertBulk) SetParentID(v uuid.UUID) *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *QuestionnaireUpsertBulk) UpdateParentID() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *QuestionnaireUpsertBulk) ClearParentID() *QuestionnaireUpsertBulk {
	return u.Update(func(s *QuestionnaireUpsert) {
		s.ClearParentID()
	})
}

// Exec executes the query.
func (u *QuestionnaireUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionnaireCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionnaireCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionnaireUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
