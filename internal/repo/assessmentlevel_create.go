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
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// AssessmentLevelCreate is the builder for creating a AssessmentLevel entity.
type AssessmentLevelCreate struct {
	config
	mutation *AssessmentLevelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentLevelCreate) SetCreatedAt(v time.Time) *AssessmentLevelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableCreatedAt(v *time.Time) *AssessmentLevelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssessmentLevelCreate) SetUpdatedAt(v time.Time) *AssessmentLevelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableUpdatedAt(v *time.Time) *AssessmentLevelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AssessmentLevelCreate) SetDeletedAt(v time.Time) *AssessmentLevelCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableDeletedAt(v *time.Time) *AssessmentLevelCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_c *AssessmentLevelCreate) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelCreate {
	_c.mutation.SetQuestionnaireID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AssessmentLevelCreate) SetName(v string) *AssessmentLevelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMinScore sets the "min_score" field.
func (_c *AssessmentLevelCreate) SetMinScore(v float64) *AssessmentLevelCreate {
	_c.mutation.SetMinScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *AssessmentLevelCreate) SetMaxScore(v float64) *AssessmentLevelCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetOpinion sets the "opinion" field.
func (_c *AssessmentLevelCreate) SetOpinion(v string) *AssessmentLevelCreate {
	_c.mutation.SetOpinion(v)
	return _c
}

// SetGroupKey sets the "group_key" field.
func (_c *AssessmentLevelCreate) SetGroupKey(v string) *AssessmentLevelCreate {
	_c.mutation.SetGroupKey(v)
	return _c
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableGroupKey(v *string) *AssessmentLevelCreate {
	if v != nil {
		_c.SetGroupKey(*v)
	}
	return _c
}

// SetDimensionID sets the "dimension_id" field.
func (_c *AssessmentLevelCreate) SetDimensionID(v uuid.UUID) *AssessmentLevelCreate {
	_c.mutation.SetDimensionID(v)
	return _c
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableDimensionID(v *uuid.UUID) *AssessmentLevelCreate {
	if v != nil {
		_c.SetDimensionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentLevelCreate) SetID(v uuid.UUID) *AssessmentLevelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssessmentLevelCreate) SetNillableID(v *uuid.UUID) *AssessmentLevelCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_c *AssessmentLevelCreate) SetQuestionnaire(v *Questionnaire) *AssessmentLevelCreate {
	return _c.SetQuestionnaireID(v.ID)
}

// Mutation returns the AssessmentLevelMutation object of the builder.
func (_c *AssessmentLevelCreate) Mutation() *AssessmentLevelMutation {
	return _c.mutation
}

// Save creates the AssessmentLevel in the database.
func (_c *AssessmentLevelCreate) Save(ctx context.Context) (*AssessmentLevel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentLevelCreate) SaveX(ctx context.Context) *AssessmentLevel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentLevelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentLevelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentLevelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentlevel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assessmentlevel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assessmentlevel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentLevelCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AssessmentLevel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AssessmentLevel.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionnaireID(); !ok {
		return &ValidationError{Name: "questionnaire_id", err: errors.New(`repo: missing required field "AssessmentLevel.questionnaire_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "AssessmentLevel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := assessmentlevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinScore(); !ok {
		return &ValidationError{Name: "min_score", err: errors.New(`repo: missing required field "AssessmentLevel.min_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`repo: missing required field "AssessmentLevel.max_score"`)}
	}
	if _, ok := _c.mutation.Opinion(); !ok {
		return &ValidationError{Name: "opinion", err: errors.New(`repo: missing required field "AssessmentLevel.opinion"`)}
	}
	if v, ok := _c.mutation.Opinion(); ok {
		if err := assessmentlevel.OpinionValidator(v); err != nil {
			return &ValidationError{Name: "opinion", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.opinion": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GroupKey(); ok {
		if err := assessmentlevel.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.group_key": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionnaireIDs()) == 0 {
		return &ValidationError{Name: "questionnaire", err: errors.New(`repo: missing required edge "AssessmentLevel.questionnaire"`)}
	}
	return nil
}

func (_c *AssessmentLevelCreate) sqlSave(ctx context.Context) (*AssessmentLevel, error) {
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

func (_c *AssessmentLevelCreate) createSpec() (*AssessmentLevel, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentLevel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentlevel.Table, sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentlevel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentlevel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(assessmentlevel.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(assessmentlevel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MinScore(); ok {
		_spec.SetField(assessmentlevel.FieldMinScore, field.TypeFloat64, value)
		_node.MinScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(assessmentlevel.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Opinion(); ok {
		_spec.SetField(assessmentlevel.FieldOpinion, field.TypeString, value)
		_node.Opinion = value
	}
	if value, ok := _c.mutation.GroupKey(); ok {
		_spec.SetField(assessmentlevel.FieldGroupKey, field.TypeString, value)
		_node.GroupKey = &value
	}
	if value, ok := _c.mutation.DimensionID(); ok {
		_spec.SetField(assessmentlevel.FieldDimensionID, field.TypeUUID, value)
		_node.DimensionID = &value
	}
	if nodes := _c.mutation.QuestionnaireIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentlevel.QuestionnaireTable,
			Columns: []string{assessmentlevel.QuestionnaireColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentLevel.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentLevelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentLevelCreate) OnConflict(opts ...sql.ConflictOption) *AssessmentLevelUpsertOne {
	_c.conflict = opts
	return &AssessmentLevelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentLevelCreate) OnConflictColumns(columns ...string) *AssessmentLevelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentLevelUpsertOne{
		create: _c,
	}
}

type (
	// AssessmentLevelUpsertOne is the builder for "upsert"-ing
	//  one AssessmentLevel node.
	AssessmentLevelUpsertOne struct {
		create *AssessmentLevelCreate
	}

	// AssessmentLevelUpsert is the "OnConflict" setter.
	AssessmentLevelUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentLevelUpsert) SetUpdatedAt(v time.Time) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateUpdatedAt() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssessmentLevelUpsert) SetDeletedAt(v time.Time) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateDeletedAt() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssessmentLevelUpsert) ClearDeletedAt() *AssessmentLevelUpsert {
	u.SetNull(assessmentlevel.FieldDeletedAt)
	return u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *AssessmentLevelUpsert) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldQuestionnaireID, v)
	return u
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateQuestionnaireID() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldQuestionnaireID)
	return u
}

// SetName sets the "name" field.
func (u *AssessmentLevelUpsert) SetName(v string) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateName() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldName)
	return u
}

// SetMinScore sets the "min_score" field.
func (u *AssessmentLevelUpsert) SetMinScore(v float64) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldMinScore, v)
	return u
}

// UpdateMinScore sets the "min_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateMinScore() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldMinScore)
	return u
}

// AddMinScore adds v to the "min_score" field.
func (u *AssessmentLevelUpsert) AddMinScore(v float64) *AssessmentLevelUpsert {
	u.Add(assessmentlevel.FieldMinScore, v)
	return u
}

// SetMaxScore sets the "max_score" field.
func (u *AssessmentLevelUpsert) SetMaxScore(v float64) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldMaxScore, v)
	return u
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateMaxScore() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldMaxScore)
	return u
}

// AddMaxScore adds v to the "max_score" field.
func (u *AssessmentLevelUpsert) AddMaxScore(v float64) *AssessmentLevelUpsert {
	u.Add(assessmentlevel.FieldMaxScore, v)
	return u
}

// SetOpinion sets the "opinion" field.
func (u *AssessmentLevelUpsert) SetOpinion(v string) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldOpinion, v)
	return u
}

// UpdateOpinion sets the "opinion" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateOpinion() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldOpinion)
	return u
}

// SetGroupKey sets the "group_key" field.
func (u *AssessmentLevelUpsert) SetGroupKey(v string) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldGroupKey, v)
	return u
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateGroupKey() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldGroupKey)
	return u
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *AssessmentLevelUpsert) ClearGroupKey() *AssessmentLevelUpsert {
	u.SetNull(assessmentlevel.FieldGroupKey)
	return u
}

// SetDimensionID sets the "dimension_id" field.
func (u *AssessmentLevelUpsert) SetDimensionID(v uuid.UUID) *AssessmentLevelUpsert {
	u.Set(assessmentlevel.FieldDimensionID, v)
	return u
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsert) UpdateDimensionID() *AssessmentLevelUpsert {
	u.SetExcluded(assessmentlevel.FieldDimensionID)
	return u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *AssessmentLevelUpsert) ClearDimensionID() *AssessmentLevelUpsert {
	u.SetNull(assessmentlevel.FieldDimensionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assessmentlevel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssessmentLevelUpsertOne) UpdateNewValues() *AssessmentLevelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(assessmentlevel.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(assessmentlevel.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssessmentLevelUpsertOne) Ignore() *AssessmentLevelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentLevelUpsertOne) DoNothing() *AssessmentLevelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentLevelCreate.OnConflict
// documentation for more info.
func (u *AssessmentLevelUpsertOne) Update(set func(*AssessmentLevelUpsert)) *AssessmentLevelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentLevelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentLevelUpsertOne) SetUpdatedAt(v time.Time) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateUpdatedAt() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssessmentLevelUpsertOne) SetDeletedAt(v time.Time) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateDeletedAt() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssessmentLevelUpsertOne) ClearDeletedAt() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *AssessmentLevelUpsertOne) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateQuestionnaireID() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetName sets the "name" field.
func (u *AssessmentLevelUpsertOne) SetName(v string) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateName() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateName()
	})
}

// SetMinScore sets the "min_score" field.
func (u *AssessmentLevelUpsertOne) SetMinScore(v float64) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetMinScore(v)
	})
}

// AddMinScore adds v to the "min_score" field.
func (u *AssessmentLevelUpsertOne) AddMinScore(v float64) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.AddMinScore(v)
	})
}

// UpdateMinScore sets the "min_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateMinScore() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateMinScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *AssessmentLevelUpsertOne) SetMaxScore(v float64) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *AssessmentLevelUpsertOne) AddMaxScore(v float64) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateMaxScore() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateMaxScore()
	})
}

// SetOpinion sets the "opinion" field.
func (u *AssessmentLevelUpsertOne) SetOpinion(v string) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetOpinion(v)
	})
}

// UpdateOpinion sets the "opinion" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateOpinion() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateOpinion()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *AssessmentLevelUpsertOne) SetGroupKey(v string) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateGroupKey() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *AssessmentLevelUpsertOne) ClearGroupKey() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearGroupKey()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *AssessmentLevelUpsertOne) SetDimensionID(v uuid.UUID) *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsertOne) UpdateDimensionID() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateDimensionID()
	})
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *AssessmentLevelUpsertOne) ClearDimensionID() *AssessmentLevelUpsertOne {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearDimensionID()
	})
}

// Exec executes the query.
func (u *AssessmentLevelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AssessmentLevelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentLevelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssessmentLevelUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AssessmentLevelUpsertOne.ID is not supported by MySQL driver. Use AssessmentLevelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssessmentLevelUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssessmentLevelCreateBulk is the builder for creating many AssessmentLevel entities in bulk.
type AssessmentLevelCreateBulk struct {
	config
	err      error
	builders []*AssessmentLevelCreate
	conflict []sql.ConflictOption
}

// Save creates the AssessmentLevel entities in the database.
func (_c *AssessmentLevelCreateBulk) Save(ctx context.Context) ([]*AssessmentLevel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentLevel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentLevelMutation)
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
func (_c *AssessmentLevelCreateBulk) SaveX(ctx context.Context) []*AssessmentLevel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentLevelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentLevelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssessmentLevel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssessmentLevelUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AssessmentLevelCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssessmentLevelUpsertBulk {
	_c.conflict = opts
	return &AssessmentLevelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssessmentLevelCreateBulk) OnConflictColumns(columns ...string) *AssessmentLevelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssessmentLevelUpsertBulk{
		create: _c,
	}
}

// AssessmentLevelUpsertBulk is the builder for "upsert"-ing
// a bulk of AssessmentLevel nodes.
type AssessmentLevelUpsertBulk struct {
	create *AssessmentLevelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assessmentlevel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssessmentLevelUpsertBulk) UpdateNewValues() *AssessmentLevelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(assessmentlevel.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(assessmentlevel.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssessmentLevel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssessmentLevelUpsertBulk) Ignore() *AssessmentLevelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssessmentLevelUpsertBulk) DoNothing() *AssessmentLevelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssessmentLevelCreateBulk.OnConflict
// documentation for more info.
func (u *AssessmentLevelUpsertBulk) Update(set func(*AssessmentLevelUpsert)) *AssessmentLevelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssessmentLevelUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssessmentLevelUpsertBulk) SetUpdatedAt(v time.Time) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateUpdatedAt() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssessmentLevelUpsertBulk) SetDeletedAt(v time.Time) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateDeletedAt() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssessmentLevelUpsertBulk) ClearDeletedAt() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *AssessmentLevelUpsertBulk) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateQuestionnaireID() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetName sets the "name" field.
func (u *AssessmentLevelUpsertBulk) SetName(v string) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateName() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateName()
	})
}

// SetMinScore sets the "min_score" field.
func (u *AssessmentLevelUpsertBulk) SetMinScore(v float64) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetMinScore(v)
	})
}

// AddMinScore adds v to the "min_score" field.
func (u *AssessmentLevelUpsertBulk) AddMinScore(v float64) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.AddMinScore(v)
	})
}

// UpdateMinScore sets the "min_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateMinScore() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateMinScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *AssessmentLevelUpsertBulk) SetMaxScore(v float64) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *AssessmentLevelUpsertBulk) AddMaxScore(v float64) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateMaxScore() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateMaxScore()
	})
}

// SetOpinion sets the "opinion" field.
func (u *AssessmentLevelUpsertBulk) SetOpinion(v string) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetOpinion(v)
	})
}

// UpdateOpinion sets the "opinion" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateOpinion() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateOpinion()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *AssessmentLevelUpsertBulk) SetGroupKey(v string) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateGroupKey() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *AssessmentLevelUpsertBulk) ClearGroupKey() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearGroupKey()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *AssessmentLevelUpsertBulk) SetDimensionID(v uuid.UUID) *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *AssessmentLevelUpsertBulk) UpdateDimensionID() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.UpdateDimensionID()
	})
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *AssessmentLevelUpsertBulk) ClearDimensionID() *AssessmentLevelUpsertBulk {
	return u.Update(func(s *AssessmentLevelUpsert) {
		s.ClearDimensionID()
	})
}

// Exec executes the query.
func (u *AssessmentLevelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AssessmentLevelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AssessmentLevelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssessmentLevelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
