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
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

// SurveyOptionUpdate is the builder for updating SurveyOption entities.
type SurveyOptionUpdate struct {
	config
	hooks    []Hook
	mutation *SurveyOptionMutation
}

// Where appends a list predicates to the SurveyOptionUpdate builder.
func (_u *SurveyOptionUpdate) Where(ps ...predicate.SurveyOption) *SurveyOptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyOptionUpdate) SetUpdatedAt(v time.Time) *SurveyOptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SurveyOptionUpdate) SetDeletedAt(v time.Time) *SurveyOptionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SurveyOptionUpdate) SetNillableDeletedAt(v *time.Time) *SurveyOptionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SurveyOptionUpdate) ClearDeletedAt() *SurveyOptionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SurveyOptionUpdate) SetQuestionID(v uuid.UUID) *SurveyOptionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SurveyOptionUpdate) SetNillableQuestionID(v *uuid.UUID) *SurveyOptionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *SurveyOptionUpdate) SetText(v string) *SurveyOptionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SurveyOptionUpdate) SetNillableText(v *string) *SurveyOptionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SurveyOptionUpdate) SetValue(v float64) *SurveyOptionUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SurveyOptionUpdate) SetNillableValue(v *float64) *SurveyOptionUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SurveyOptionUpdate) AddValue(v float64) *SurveyOptionUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *SurveyOptionUpdate) ClearValue() *SurveyOptionUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetIsOther sets the "is_other" field.
func (_u *SurveyOptionUpdate) SetIsOther(v bool) *SurveyOptionUpdate {
	_u.mutation.SetIsOther(v)
	return _u
}

// SetNillableIsOther sets the "is_other" field if the given value is not nil.
func (_u *SurveyOptionUpdate) SetNillableIsOther(v *bool) *SurveyOptionUpdate {
	if v != nil {
		_u.SetIsOther(*v)
	}
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *SurveyOptionUpdate) SetQuestion(v *Question) *SurveyOptionUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the SurveyOptionMutation object of the builder.
func (_u *SurveyOptionUpdate) Mutation() *SurveyOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *SurveyOptionUpdate) ClearQuestion() *SurveyOptionUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurveyOptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurveyOptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyOptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyOptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := surveyoption.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyOptionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := surveyoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "SurveyOption.text": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SurveyOption.question"`)
	}
	return nil
}

func (_u *SurveyOptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(surveyoption.Table, surveyoption.Columns, sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(surveyoption.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(surveyoption.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(surveyoption.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(surveyoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(surveyoption.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(surveyoption.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(surveyoption.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOther(); ok {
		_spec.SetField(surveyoption.FieldIsOther, field.TypeBool, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyoption.QuestionTable,
			Columns: []string{surveyoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyoption.QuestionTable,
			Columns: []string{surveyoption.QuestionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurveyOptionUpdateOne is the builder for updating a single SurveyOption entity.
type SurveyOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurveyOptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyOptionUpdateOne) SetUpdatedAt(v time.Time) *SurveyOptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SurveyOptionUpdateOne) SetDeletedAt(v time.Time) *SurveyOptionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SurveyOptionUpdateOne) SetNillableDeletedAt(v *time.Time) *SurveyOptionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SurveyOptionUpdateOne) ClearDeletedAt() *SurveyOptionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SurveyOptionUpdateOne) SetQuestionID(v uuid.UUID) *SurveyOptionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SurveyOptionUpdateOne) SetNillableQuestionID(v *uuid.UUID) *SurveyOptionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *SurveyOptionUpdateOne) SetText(v string) *SurveyOptionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SurveyOptionUpdateOne) SetNillableText(v *string) *SurveyOptionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SurveyOptionUpdateOne) SetValue(v float64) *SurveyOptionUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SurveyOptionUpdateOne) SetNillableValue(v *float64) *SurveyOptionUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SurveyOptionUpdateOne) AddValue(v float64) *SurveyOptionUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *SurveyOptionUpdateOne) ClearValue() *SurveyOptionUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetIsOther sets the "is_other" field.
func (_u *SurveyOptionUpdateOne) SetIsOther(v bool) *SurveyOptionUpdateOne {
	_u.mutation.SetIsOther(v)
	return _u
}

// SetNillableIsOther sets the "is_other" field if the given value is not nil.
func (_u *SurveyOptionUpdateOne) SetNillableIsOther(v *bool) *SurveyOptionUpdateOne {
	if v != nil {
		_u.SetIsOther(*v)
	}
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *SurveyOptionUpdateOne) SetQuestion(v *Question) *SurveyOptionUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the SurveyOptionMutation object of the builder.
func (_u *SurveyOptionUpdateOne) Mutation() *SurveyOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *SurveyOptionUpdateOne) ClearQuestion() *SurveyOptionUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the SurveyOptionUpdate builder.
func (_u *SurveyOptionUpdateOne) Where(ps ...predicate.SurveyOption) *SurveyOptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurveyOptionUpdateOne) Select(field string, fields ...string) *SurveyOptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SurveyOption entity.
func (_u *SurveyOptionUpdateOne) Save(ctx context.Context) (*SurveyOption, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyOptionUpdateOne) SaveX(ctx context.Context) *SurveyOption {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurveyOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyOptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyOptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := surveyoption.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyOptionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := surveyoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "SurveyOption.text": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SurveyOption.question"`)
	}
	return nil
}

func (_u *SurveyOptionUpdateOne) sqlSave(ctx context.Context) (_node *SurveyOption, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(surveyoption.Table, surveyoption.Columns, sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SurveyOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, surveyoption.FieldID)
		for _, f := range fields {
			if !surveyoption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != surveyoption.FieldID {
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
		_spec.SetField(surveyoption.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(surveyoption.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(surveyoption.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(surveyoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(surveyoption.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(surveyoption.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(surveyoption.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOther(); ok {
		_spec.SetField(surveyoption.FieldIsOther, field.TypeBool, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyoption.QuestionTable,
			Columns: []string{surveyoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   surveyoption.QuestionTable,
			Columns: []string{surveyoption.QuestionColumn},
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
	_node = &SurveyOption{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{surveyoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
