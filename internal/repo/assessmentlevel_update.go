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
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// AssessmentLevelUpdate is the builder for updating AssessmentLevel entities.
type AssessmentLevelUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentLevelMutation
}

// Where appends a list predicates to the AssessmentLevelUpdate builder.
func (_u *AssessmentLevelUpdate) Where(ps ...predicate.AssessmentLevel) *AssessmentLevelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentLevelUpdate) SetUpdatedAt(v time.Time) *AssessmentLevelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssessmentLevelUpdate) SetDeletedAt(v time.Time) *AssessmentLevelUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableDeletedAt(v *time.Time) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssessmentLevelUpdate) ClearDeletedAt() *AssessmentLevelUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *AssessmentLevelUpdate) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelUpdate {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableQuestionnaireID(v *uuid.UUID) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AssessmentLevelUpdate) SetName(v string) *AssessmentLevelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableName(v *string) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMinScore sets the "min_score" field.
func (_u *AssessmentLevelUpdate) SetMinScore(v float64) *AssessmentLevelUpdate {
	_u.mutation.ResetMinScore()
	_u.mutation.SetMinScore(v)
	return _u
}

// SetNillableMinScore sets the "min_score" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableMinScore(v *float64) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetMinScore(*v)
	}
	return _u
}

// AddMinScore adds value to the "min_score" field.
func (_u *AssessmentLevelUpdate) AddMinScore(v float64) *AssessmentLevelUpdate {
	_u.mutation.AddMinScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentLevelUpdate) SetMaxScore(v float64) *AssessmentLevelUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableMaxScore(v *float64) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentLevelUpdate) AddMaxScore(v float64) *AssessmentLevelUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetOpinion sets the "opinion" field.
func (_u *AssessmentLevelUpdate) SetOpinion(v string) *AssessmentLevelUpdate {
	_u.mutation.SetOpinion(v)
	return _u
}

// SetNillableOpinion sets the "opinion" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableOpinion(v *string) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetOpinion(*v)
	}
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *AssessmentLevelUpdate) SetGroupKey(v string) *AssessmentLevelUpdate {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableGroupKey(v *string) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *AssessmentLevelUpdate) ClearGroupKey() *AssessmentLevelUpdate {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AssessmentLevelUpdate) SetDimensionID(v uuid.UUID) *AssessmentLevelUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AssessmentLevelUpdate) SetNillableDimensionID(v *uuid.UUID) *AssessmentLevelUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (_u *AssessmentLevelUpdate) ClearDimensionID() *AssessmentLevelUpdate {
	_u.mutation.ClearDimensionID()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *AssessmentLevelUpdate) SetQuestionnaire(v *Questionnaire) *AssessmentLevelUpdate {
	return _u.SetQuestionnaireID(v.ID)
}

// Mutation returns the AssessmentLevelMutation object of the builder.
func (_u *AssessmentLevelUpdate) Mutation() *AssessmentLevelMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *AssessmentLevelUpdate) ClearQuestionnaire() *AssessmentLevelUpdate {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentLevelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentLevelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentLevelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentLevelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentLevelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentlevel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentLevelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := assessmentlevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Opinion(); ok {
		if err := assessmentlevel.OpinionValidator(v); err != nil {
			return &ValidationError{Name: "opinion", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.opinion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupKey(); ok {
		if err := assessmentlevel.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.group_key": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AssessmentLevel.questionnaire"`)
	}
	return nil
}

func (_u *AssessmentLevelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentlevel.Table, assessmentlevel.Columns, sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessmentlevel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(assessmentlevel.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(assessmentlevel.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assessmentlevel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinScore(); ok {
		_spec.SetField(assessmentlevel.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinScore(); ok {
		_spec.AddField(assessmentlevel.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentlevel.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentlevel.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Opinion(); ok {
		_spec.SetField(assessmentlevel.FieldOpinion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(assessmentlevel.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(assessmentlevel.FieldGroupKey, field.TypeString)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(assessmentlevel.FieldDimensionID, field.TypeUUID, value)
	}
	if _u.mutation.DimensionIDCleared() {
		_spec.ClearField(assessmentlevel.FieldDimensionID, field.TypeUUID)
	}
	if _u.mutation.QuestionnaireCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnaireIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentlevel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentLevelUpdateOne is the builder for updating a single AssessmentLevel entity.
type AssessmentLevelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentLevelMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentLevelUpdateOne) SetUpdatedAt(v time.Time) *AssessmentLevelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssessmentLevelUpdateOne) SetDeletedAt(v time.Time) *AssessmentLevelUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableDeletedAt(v *time.Time) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssessmentLevelUpdateOne) ClearDeletedAt() *AssessmentLevelUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *AssessmentLevelUpdateOne) SetQuestionnaireID(v uuid.UUID) *AssessmentLevelUpdateOne {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableQuestionnaireID(v *uuid.UUID) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AssessmentLevelUpdateOne) SetName(v string) *AssessmentLevelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableName(v *string) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMinScore sets the "min_score" field.
func (_u *AssessmentLevelUpdateOne) SetMinScore(v float64) *AssessmentLevelUpdateOne {
	_u.mutation.ResetMinScore()
	_u.mutation.SetMinScore(v)
	return _u
}

// SetNillableMinScore sets the "min_score" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableMinScore(v *float64) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetMinScore(*v)
	}
	return _u
}

// AddMinScore adds value to the "min_score" field.
func (_u *AssessmentLevelUpdateOne) AddMinScore(v float64) *AssessmentLevelUpdateOne {
	_u.mutation.AddMinScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *AssessmentLevelUpdateOne) SetMaxScore(v float64) *AssessmentLevelUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableMaxScore(v *float64) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *AssessmentLevelUpdateOne) AddMaxScore(v float64) *AssessmentLevelUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetOpinion sets the "opinion" field.
func (_u *AssessmentLevelUpdateOne) SetOpinion(v string) *AssessmentLevelUpdateOne {
	_u.mutation.SetOpinion(v)
	return _u
}

// SetNillableOpinion sets the "opinion" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableOpinion(v *string) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetOpinion(*v)
	}
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *AssessmentLevelUpdateOne) SetGroupKey(v string) *AssessmentLevelUpdateOne {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableGroupKey(v *string) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *AssessmentLevelUpdateOne) ClearGroupKey() *AssessmentLevelUpdateOne {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AssessmentLevelUpdateOne) SetDimensionID(v uuid.UUID) *AssessmentLevelUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AssessmentLevelUpdateOne) SetNillableDimensionID(v *uuid.UUID) *AssessmentLevelUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (_u *AssessmentLevelUpdateOne) ClearDimensionID() *AssessmentLevelUpdateOne {
	_u.mutation.ClearDimensionID()
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *AssessmentLevelUpdateOne) SetQuestionnaire(v *Questionnaire) *AssessmentLevelUpdateOne {
	return _u.SetQuestionnaireID(v.ID)
}

// Mutation returns the AssessmentLevelMutation object of the builder.
func (_u *AssessmentLevelUpdateOne) Mutation() *AssessmentLevelMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *AssessmentLevelUpdateOne) ClearQuestionnaire() *AssessmentLevelUpdateOne {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// Where appends a list predicates to the AssessmentLevelUpdate builder.
func (_u *AssessmentLevelUpdateOne) Where(ps ...predicate.AssessmentLevel) *AssessmentLevelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentLevelUpdateOne) Select(field string, fields ...string) *AssessmentLevelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentLevel entity.
func (_u *AssessmentLevelUpdateOne) Save(ctx context.Context) (*AssessmentLevel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentLevelUpdateOne) SaveX(ctx context.Context) *AssessmentLevel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentLevelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentLevelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentLevelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessmentlevel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentLevelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := assessmentlevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Opinion(); ok {
		if err := assessmentlevel.OpinionValidator(v); err != nil {
			return &ValidationError{Name: "opinion", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.opinion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupKey(); ok {
		if err := assessmentlevel.GroupKeyValidator(v); err != nil {
			return &ValidationError{Name: "group_key", err: fmt.Errorf(`repo: validator failed for field "AssessmentLevel.group_key": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AssessmentLevel.questionnaire"`)
	}
	return nil
}

func (_u *AssessmentLevelUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentLevel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentlevel.Table, assessmentlevel.Columns, sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AssessmentLevel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentlevel.FieldID)
		for _, f := range fields {
			if !assessmentlevel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != assessmentlevel.FieldID {
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
		_spec.SetField(assessmentlevel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(assessmentlevel.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(assessmentlevel.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(assessmentlevel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinScore(); ok {
		_spec.SetField(assessmentlevel.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinScore(); ok {
		_spec.AddField(assessmentlevel.FieldMinScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(assessmentlevel.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(assessmentlevel.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Opinion(); ok {
		_spec.SetField(assessmentlevel.FieldOpinion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(assessmentlevel.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(assessmentlevel.FieldGroupKey, field.TypeString)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(assessmentlevel.FieldDimensionID, field.TypeUUID, value)
	}
	if _u.mutation.DimensionIDCleared() {
		_spec.ClearField(assessmentlevel.FieldDimensionID, field.TypeUUID)
	}
	if _u.mutation.QuestionnaireCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionnaireIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AssessmentLevel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentlevel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
