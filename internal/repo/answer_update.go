// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *AnswerUpdate) SetSubmissionID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSubmissionID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *AnswerUpdate) SetOptionID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableOptionID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// ClearOptionID clears the value of the "option_id" field.
func (_u *AnswerUpdate) ClearOptionID() *AnswerUpdate {
	_u.mutation.ClearOptionID()
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerUpdate) SetValue(v float64) *AnswerUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableValue(v *float64) *AnswerUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnswerUpdate) AddValue(v float64) *AnswerUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *AnswerUpdate) ClearValue() *AnswerUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (_u *AnswerUpdate) SetSelectedOptionIds(v []uuid.UUID) *AnswerUpdate {
	_u.mutation.SetSelectedOptionIds(v)
	return _u
}

// AppendSelectedOptionIds appends value to the "selected_option_ids" field.
func (_u *AnswerUpdate) AppendSelectedOptionIds(v []uuid.UUID) *AnswerUpdate {
	_u.mutation.AppendSelectedOptionIds(v)
	return _u
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (_u *AnswerUpdate) ClearSelectedOptionIds() *AnswerUpdate {
	_u.mutation.ClearSelectedOptionIds()
	return _u
}

// SetTextAnswer sets the "text_answer" field.
func (_u *AnswerUpdate) SetTextAnswer(v string) *AnswerUpdate {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTextAnswer(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (_u *AnswerUpdate) ClearTextAnswer() *AnswerUpdate {
	_u.mutation.ClearTextAnswer()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *AnswerUpdate) SetSubmission(v *Submission) *AnswerUpdate {
	return _u.SetSubmissionID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdate) SetQuestion(v *Question) *AnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *AnswerUpdate) ClearSubmission() *AnswerUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdate) ClearQuestion() *AnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.submission"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(answer.FieldOptionID, field.TypeUUID, value)
	}
	if _u.mutation.OptionIDCleared() {
		_spec.ClearField(answer.FieldOptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(answer.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SelectedOptionIds(); ok {
		_spec.SetField(answer.FieldSelectedOptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedOptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldSelectedOptionIds, value)
		})
	}
	if _u.mutation.SelectedOptionIdsCleared() {
		_spec.ClearField(answer.FieldSelectedOptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
	}
	if _u.mutation.TextAnswerCleared() {
		_spec.ClearField(answer.FieldTextAnswer, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SubmissionTable,
			Columns: []string{answer.SubmissionColumn},
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
			Table:   answer.SubmissionTable,
			Columns: []string{answer.SubmissionColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
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
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
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
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *AnswerUpdateOne) SetSubmissionID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *AnswerUpdateOne) SetOptionID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableOptionID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// ClearOptionID clears the value of the "option_id" field.
func (_u *AnswerUpdateOne) ClearOptionID() *AnswerUpdateOne {
	_u.mutation.ClearOptionID()
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerUpdateOne) SetValue(v float64) *AnswerUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableValue(v *float64) *AnswerUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnswerUpdateOne) AddValue(v float64) *AnswerUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *AnswerUpdateOne) ClearValue() *AnswerUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (_u *AnswerUpdateOne) SetSelectedOptionIds(v []uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetSelectedOptionIds(v)
	return _u
}

// AppendSelectedOptionIds appends value to the "selected_option_ids" field.
func (_u *AnswerUpdateOne) AppendSelectedOptionIds(v []uuid.UUID) *AnswerUpdateOne {
	_u.mutation.AppendSelectedOptionIds(v)
	return _u
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (_u *AnswerUpdateOne) ClearSelectedOptionIds() *AnswerUpdateOne {
	_u.mutation.ClearSelectedOptionIds()
	return _u
}

// SetTextAnswer sets the "text_answer" field.
func (_u *AnswerUpdateOne) SetTextAnswer(v string) *AnswerUpdateOne {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTextAnswer(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (_u *AnswerUpdateOne) ClearTextAnswer() *AnswerUpdateOne {
	_u.mutation.ClearTextAnswer()
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *AnswerUpdateOne) SetSubmission(v *Submission) *AnswerUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) SetQuestion(v *Question) *AnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *AnswerUpdateOne) ClearSubmission() *AnswerUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) ClearQuestion() *AnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.submission"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(answer.FieldOptionID, field.TypeUUID, value)
	}
	if _u.mutation.OptionIDCleared() {
		_spec.ClearField(answer.FieldOptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(answer.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SelectedOptionIds(); ok {
		_spec.SetField(answer.FieldSelectedOptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedOptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldSelectedOptionIds, value)
		})
	}
	if _u.mutation.SelectedOptionIdsCleared() {
		_spec.ClearField(answer.FieldSelectedOptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
	}
	if _u.mutation.TextAnswerCleared() {
		_spec.ClearField(answer.FieldTextAnswer, field.TypeString)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.SubmissionTable,
			Columns: []string{answer.SubmissionColumn},
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
			Table:   answer.SubmissionTable,
			Columns: []string{answer.SubmissionColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
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
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
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
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
