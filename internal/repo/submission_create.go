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
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SubmissionCreate) SetDeletedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableDeletedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_c *SubmissionCreate) SetQuestionnaireID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetQuestionnaireID(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SubmissionCreate) SetSubmittedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmittedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *SubmissionCreate) SetTotalScore(v float64) *SubmissionCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableTotalScore(v *float64) *SubmissionCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_c *SubmissionCreate) SetAssessmentLevel(v string) *SubmissionCreate {
	_c.mutation.SetAssessmentLevel(v)
	return _c
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAssessmentLevel(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAssessmentLevel(*v)
	}
	return _c
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_c *SubmissionCreate) SetAssessmentOpinion(v string) *SubmissionCreate {
	_c.mutation.SetAssessmentOpinion(v)
	return _c
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAssessmentOpinion(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAssessmentOpinion(*v)
	}
	return _c
}

// SetGroupKey sets the "group_key" field.
func (_c *SubmissionCreate) SetGroupKey(v string) *SubmissionCreate {
	_c.mutation.SetGroupKey(v)
	return _c
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGroupKey(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetGroupKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_c *SubmissionCreate) SetQuestionnaire(v *Questionnaire) *SubmissionCreate {
	return _c.SetQuestionnaireID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *SubmissionCreate) AddAnswerIDs(ids ...uuid.UUID) *SubmissionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *SubmissionCreate) AddAnswers(v ...*Answer) *SubmissionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// AddDimensionScoreIDs adds the "dimension_scores" edge to the DimensionScore entity by IDs.
func (_c *SubmissionCreate) AddDimensionScoreIDs(ids ...uuid.UUID) *SubmissionCreate {
	_c.mutation.AddDimensionScoreIDs(ids...)
	return _c
}

// AddDimensionScores adds the "dimension_scores" edges to the DimensionScore entity.
func (_c *SubmissionCreate) AddDimensionScores(v ...*DimensionScore) *SubmissionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDimensionScoreIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := submission.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.QuestionnaireID(); !ok {
		return &ValidationError{Name: "questionnaire_id", err: errors.New(`repo: missing required field "Submission.questionnaire_id"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`repo: missing required field "Submission.submitted_at"`)}
	}
	if v, ok := _c.mutation.AssessmentLevel(); ok {
		if err := submission.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "Submission.assessment_level": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GroupKey(); ok {
		if err := submission.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "Submission.group_key": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionnaireIDs()) == 0 {
		return &ValidationError{Name: "questionnaire", err: errors.New(`repo: missing required edge "Submission.questionnaire"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(submission.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(submission.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = &value
	}
	if value, ok := _c.mutation.AssessmentLevel(); ok {
		_spec.SetField(submission.FieldAssessmentLevel, field.TypeString, value)
		_node.AssessmentLevel = &value
	}
	if value, ok := _c.mutation.AssessmentOpinion(); ok {
		_spec.SetField(submission.FieldAssessmentOpinion, field.TypeString, value)
		_node.AssessmentOpinion = &value
	}
	if value, ok := _c.mutation.GroupKey(); ok {
		_spec.SetField(submission.FieldGroupKey, field.TypeString, value)
		_node.GroupKey = &value
	}
	if nodes := _c.mutation.QuestionnaireIDs(); len(nodes) > 0 {
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
		_node.QuestionnaireID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DimensionScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Submission.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertOne {
	_c.conflict = opts
	return &SubmissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreate) OnConflictColumns(columns ...string) *SubmissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertOne{
		create: _c,
	}
}

type (
	// SubmissionUpsertOne is the builder for "upsert"-ing
	//  one Submission node.
	SubmissionUpsertOne struct {
		create *SubmissionCreate
	}

	// SubmissionUpsert is the "OnConflict" setter.
	SubmissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeletedAt sets the "deleted_at" field.
func (u *SubmissionUpsert) SetDeletedAt(v time.Time) *SubmissionUpsert {
	u.Set(submission.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateDeletedAt() *SubmissionUpsert {
	u.SetExcluded(submission.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SubmissionUpsert) ClearDeletedAt() *SubmissionUpsert {
	u.SetNull(submission.FieldDeletedAt)
	return u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *SubmissionUpsert) SetQuestionnaireID(v uuid.UUID) *SubmissionUpsert {
	u.Set(submission.FieldQuestionnaireID, v)
	return u
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateQuestionnaireID() *SubmissionUpsert {
	u.SetExcluded(submission.FieldQuestionnaireID)
	return u
}

// SetTotalScore sets the "total_score" field.
func (u *SubmissionUpsert) SetTotalScore(v float64) *SubmissionUpsert {
	u.Set(submission.FieldTotalScore, v)
	return u
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateTotalScore() *SubmissionUpsert {
	u.SetExcluded(submission.FieldTotalScore)
	return u
}

// AddTotalScore adds v to the "total_score" field.
func (u *SubmissionUpsert) AddTotalScore(v float64) *SubmissionUpsert {
	u.Add(submission.FieldTotalScore, v)
	return u
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *SubmissionUpsert) ClearTotalScore() *SubmissionUpsert {
	u.SetNull(submission.FieldTotalScore)
	return u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *SubmissionUpsert) SetAssessmentLevel(v string) *SubmissionUpsert {
	u.Set(submission.FieldAssessmentLevel, v)
	return u
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateAssessmentLevel() *SubmissionUpsert {
	u.SetExcluded(submission.FieldAssessmentLevel)
	return u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *SubmissionUpsert) ClearAssessmentLevel() *SubmissionUpsert {
	u.SetNull(submission.FieldAssessmentLevel)
	return u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *SubmissionUpsert) SetAssessmentOpinion(v string) *SubmissionUpsert {
	u.Set(submission.FieldAssessmentOpinion, v)
	return u
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateAssessmentOpinion() *SubmissionUpsert {
	u.SetExcluded(submission.FieldAssessmentOpinion)
	return u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *SubmissionUpsert) ClearAssessmentOpinion() *SubmissionUpsert {
	u.SetNull(submission.FieldAssessmentOpinion)
	return u
}

// SetGroupKey sets the "group_key" field.
func (u *SubmissionUpsert) SetGroupKey(v string) *SubmissionUpsert {
	u.Set(submission.FieldGroupKey, v)
	return u
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *SubmissionUpsert) UpdateGroupKey() *SubmissionUpsert {
	u.SetExcluded(submission.FieldGroupKey)
	return u
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *SubmissionUpsert) ClearGroupKey() *SubmissionUpsert {
	u.SetNull(submission.FieldGroupKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertOne) UpdateNewValues() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(submission.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(submission.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SubmittedAt(); exists {
			s.SetIgnore(submission.FieldSubmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubmissionUpsertOne) Ignore() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertOne) DoNothing() *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreate.OnConflict
// documentation for more info.
func (u *SubmissionUpsertOne) Update(set func(*SubmissionUpsert)) *SubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SubmissionUpsertOne) SetDeletedAt(v time.Time) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateDeletedAt() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SubmissionUpsertOne) ClearDeletedAt() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *SubmissionUpsertOne) SetQuestionnaireID(v uuid.UUID) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateQuestionnaireID() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *SubmissionUpsertOne) SetTotalScore(v float64) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *SubmissionUpsertOne) AddTotalScore(v float64) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateTotalScore() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTotalScore()
	})
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *SubmissionUpsertOne) ClearTotalScore() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearTotalScore()
	})
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *SubmissionUpsertOne) SetAssessmentLevel(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssessmentLevel(v)
	})
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateAssessmentLevel() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssessmentLevel()
	})
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *SubmissionUpsertOne) ClearAssessmentLevel() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearAssessmentLevel()
	})
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *SubmissionUpsertOne) SetAssessmentOpinion(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssessmentOpinion(v)
	})
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateAssessmentOpinion() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssessmentOpinion()
	})
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *SubmissionUpsertOne) ClearAssessmentOpinion() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearAssessmentOpinion()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *SubmissionUpsertOne) SetGroupKey(v string) *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *SubmissionUpsertOne) UpdateGroupKey() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *SubmissionUpsertOne) ClearGroupKey() *SubmissionUpsertOne {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearGroupKey()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SubmissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubmissionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SubmissionUpsertOne.ID is not supported by MySQL driver. Use SubmissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubmissionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Submission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubmissionUpsertBulk {
	_c.conflict = opts
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionCreateBulk) OnConflictColumns(columns ...string) *SubmissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionUpsertBulk{
		create: _c,
	}
}

// SubmissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Submission nodes.
type SubmissionUpsertBulk struct {
	create *SubmissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) UpdateNewValues() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(submission.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(submission.FieldCreatedAt)
			}
			if _, exists := b.mutation.SubmittedAt(); exists {
				s.SetIgnore(submission.FieldSubmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Submission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubmissionUpsertBulk) Ignore() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionUpsertBulk) DoNothing() *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionCreateBulk.OnConflict
// documentation for more info.
func (u *SubmissionUpsertBulk) Update(set func(*SubmissionUpsert)) *SubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SubmissionUpsertBulk) SetDeletedAt(v time.Time) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateDeletedAt() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SubmissionUpsertBulk) ClearDeletedAt() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *SubmissionUpsertBulk) SetQuestionnaireID(v uuid.UUID) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateQuestionnaireID() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *SubmissionUpsertBulk) SetTotalScore(v float64) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *SubmissionUpsertBulk) AddTotalScore(v float64) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateTotalScore() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateTotalScore()
	})
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *SubmissionUpsertBulk) ClearTotalScore() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearTotalScore()
	})
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *SubmissionUpsertBulk) SetAssessmentLevel(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssessmentLevel(v)
	})
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateAssessmentLevel() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssessmentLevel()
	})
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *SubmissionUpsertBulk) ClearAssessmentLevel() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearAssessmentLevel()
	})
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *SubmissionUpsertBulk) SetAssessmentOpinion(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetAssessmentOpinion(v)
	})
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateAssessmentOpinion() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateAssessmentOpinion()
	})
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *SubmissionUpsertBulk) ClearAssessmentOpinion() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearAssessmentOpinion()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *SubmissionUpsertBulk) SetGroupKey(v string) *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *SubmissionUpsertBulk) UpdateGroupKey() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *SubmissionUpsertBulk) ClearGroupKey() *SubmissionUpsertBulk {
	return u.Update(func(s *SubmissionUpsert) {
		s.ClearGroupKey()
	})
}

// Exec executes the query.
func (u *SubmissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SubmissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SubmissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
