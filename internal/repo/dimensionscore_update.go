// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// DimensionScoreUpdate is the builder for updating DimensionScore entities.
type DimensionScoreUpdate struct {
	config
	hooks    []Hook
	mutation *DimensionScoreMutation
}

// Where appends a list predicates to the DimensionScoreUpdate builder.
func (_u *DimensionScoreUpdate) Where(ps ...predicate.DimensionScore) *DimensionScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *DimensionScoreUpdate) SetSubmissionID(v uuid.UUID) *DimensionScoreUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableSubmissionID(v *uuid.UUID) *DimensionScoreUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *DimensionScoreUpdate) SetDimensionID(v uuid.UUID) *DimensionScoreUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableDimensionID(v *uuid.UUID) *DimensionScoreUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DimensionScoreUpdate) SetScore(v float64) *DimensionScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableScore(v *float64) *DimensionScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DimensionScoreUpdate) AddScore(v float64) *DimensionScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *DimensionScoreUpdate) SetWeight(v float64) *DimensionScoreUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableWeight(v *float64) *DimensionScoreUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *DimensionScoreUpdate) AddWeight(v float64) *DimensionScoreUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_u *DimensionScoreUpdate) SetAssessmentLevel(v string) *DimensionScoreUpdate {
	_u.mutation.SetAssessmentLevel(v)
	return _u
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableAssessmentLevel(v *string) *DimensionScoreUpdate {
	if v != nil {
		_u.SetAssessmentLevel(*v)
	}
	return _u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (_u *DimensionScoreUpdate) ClearAssessmentLevel() *DimensionScoreUpdate {
	_u.mutation.ClearAssessmentLevel()
	return _u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_u *DimensionScoreUpdate) SetAssessmentOpinion(v string) *DimensionScoreUpdate {
	_u.mutation.SetAssessmentOpinion(v)
	return _u
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_u *DimensionScoreUpdate) SetNillableAssessmentOpinion(v *string) *DimensionScoreUpdate {
	if v != nil {
		_u.SetAssessmentOpinion(*v)
	}
	return _u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (_u *DimensionScoreUpdate) ClearAssessmentOpinion() *DimensionScoreUpdate {
	_u.mutation.ClearAssessmentOpinion()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *DimensionScoreUpdate) SetSubmission(v *Submission) *DimensionScoreUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the DimensionScoreMutation object of the builder.
func (_u *DimensionScoreUpdate) Mutation() *DimensionScoreMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *DimensionScoreUpdate) ClearSubmission() *DimensionScoreUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DimensionScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DimensionScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionScoreUpdate) check() error {
	if v, ok := _u.mutation.AssessmentLevel(); ok {
		if err := dimensionscore.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "DimensionScore.assessment_level": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DimensionScore.submission"`)
	}
	return nil
}

func (_u *DimensionScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimensionscore.Table, dimensionscore.Columns, sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(dimensionscore.FieldDimensionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(dimensionscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(dimensionscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(dimensionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(dimensionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AssessmentLevel(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentLevel, field.TypeString, value)
	}
	if _u.mutation.AssessmentLevelCleared() {
		_spec.ClearField(dimensionscore.FieldAssessmentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentOpinion(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentOpinion, field.TypeString, value)
	}
	if _u.mutation.AssessmentOpinionCleared() {
		_spec.ClearField(dimensionscore.FieldAssessmentOpinion, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimensionscore.SubmissionTable,
			Columns: []string{dimensionscore.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimensionscore.SubmissionTable,
			Columns: []string{dimensionscore.SubmissionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dimensionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DimensionScoreUpdateOne is the builder for updating a single DimensionScore entity.
type DimensionScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DimensionScoreMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *DimensionScoreUpdateOne) SetSubmissionID(v uuid.UUID) *DimensionScoreUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *DimensionScoreUpdateOne) SetDimensionID(v uuid.UUID) *DimensionScoreUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableDimensionID(v *uuid.UUID) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DimensionScoreUpdateOne) SetScore(v float64) *DimensionScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableScore(v *float64) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DimensionScoreUpdateOne) AddScore(v float64) *DimensionScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *DimensionScoreUpdateOne) SetWeight(v float64) *DimensionScoreUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableWeight(v *float64) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *DimensionScoreUpdateOne) AddWeight(v float64) *DimensionScoreUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_u *DimensionScoreUpdateOne) SetAssessmentLevel(v string) *DimensionScoreUpdateOne {
	_u.mutation.SetAssessmentLevel(v)
	return _u
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableAssessmentLevel(v *string) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetAssessmentLevel(*v)
	}
	return _u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (_u *DimensionScoreUpdateOne) ClearAssessmentLevel() *DimensionScoreUpdateOne {
	_u.mutation.ClearAssessmentLevel()
	return _u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_u *DimensionScoreUpdateOne) SetAssessmentOpinion(v string) *DimensionScoreUpdateOne {
	_u.mutation.SetAssessmentOpinion(v)
	return _u
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_u *DimensionScoreUpdateOne) SetNillableAssessmentOpinion(v *string) *DimensionScoreUpdateOne {
	if v != nil {
		_u.SetAssessmentOpinion(*v)
	}
	return _u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (_u *DimensionScoreUpdateOne) ClearAssessmentOpinion() *DimensionScoreUpdateOne {
	_u.mutation.ClearAssessmentOpinion()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *DimensionScoreUpdateOne) SetSubmission(v *Submission) *DimensionScoreUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the DimensionScoreMutation object of the builder.
func (_u *DimensionScoreUpdateOne) Mutation() *DimensionScoreMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *DimensionScoreUpdateOne) ClearSubmission() *DimensionScoreUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the DimensionScoreUpdate builder.
func (_u *DimensionScoreUpdateOne) Where(ps ...predicate.DimensionScore) *DimensionScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DimensionScoreUpdateOne) Select(field string, fields ...string) *DimensionScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DimensionScore entity.
func (_u *DimensionScoreUpdateOne) Save(ctx context.Context) (*DimensionScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionScoreUpdateOne) SaveX(ctx context.Context) *DimensionScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DimensionScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionScoreUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentLevel(); ok {
		if err := dimensionscore.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "DimensionScore.assessment_level": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DimensionScore.submission"`)
	}
	return nil
}

func (_u *DimensionScoreUpdateOne) sqlSave(ctx context.Context) (_node *DimensionScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimensionscore.Table, dimensionscore.Columns, sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DimensionScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dimensionscore.FieldID)
		for _, f := range fields {
			if !dimensionscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dimensionscore.FieldID {
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
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(dimensionscore.FieldDimensionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(dimensionscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(dimensionscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(dimensionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(dimensionscore.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AssessmentLevel(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentLevel, field.TypeString, value)
	}
	if _u.mutation.AssessmentLevelCleared() {
		_spec.ClearField(dimensionscore.FieldAssessmentLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentOpinion(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentOpinion, field.TypeString, value)
	}
	if _u.mutation.AssessmentOpinionCleared() {
		_spec.ClearField(dimensionscore.FieldAssessmentOpinion, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimensionscore.SubmissionTable,
			Columns: []string{dimensionscore.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimensionscore.SubmissionTable,
			Columns: []string{dimensionscore.SubmissionColumn},
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
	_node = &DimensionScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dimensionscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
