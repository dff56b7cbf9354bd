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
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// BranchRuleUpdate is the builder for updating BranchRule entities.
type BranchRuleUpdate struct {
	config
	hooks    []Hook
	mutation *BranchRuleMutation
}

// Where appends a list predicates to the BranchRuleUpdate builder.
func (_u *BranchRuleUpdate) Where(ps ...predicate.BranchRule) *BranchRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BranchRuleUpdate) SetUpdatedAt(v time.Time) *BranchRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BranchRuleUpdate) SetDeletedAt(v time.Time) *BranchRuleUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BranchRuleUpdate) SetNillableDeletedAt(v *time.Time) *BranchRuleUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BranchRuleUpdate) ClearDeletedAt() *BranchRuleUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *BranchRuleUpdate) SetQuestionnaireID(v uuid.UUID) *BranchRuleUpdate {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *BranchRuleUpdate) SetNillableQuestionnaireID(v *uuid.UUID) *BranchRuleUpdate {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *BranchRuleUpdate) SetQuestionID(v uuid.UUID) *BranchRuleUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *BranchRuleUpdate) SetNillableQuestionID(v *uuid.UUID) *BranchRuleUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *BranchRuleUpdate) SetOptionID(v uuid.UUID) *BranchRuleUpdate {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *BranchRuleUpdate) SetNillableOptionID(v *uuid.UUID) *BranchRuleUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// ClearOptionID clears the value of the "option_id" field.
func (_u *BranchRuleUpdate) ClearOptionID() *BranchRuleUpdate {
	_u.mutation.ClearOptionID()
	return _u
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (_u *BranchRuleUpdate) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleUpdate {
	_u.mutation.SetNextQuestionnaireID(v)
	return _u
}

// SetNillableNextQuestionnaireID sets the "next_questionnaire_id" field if the given value is not nil.
func (_u *BranchRuleUpdate) SetNillableNextQuestionnaireID(v *uuid.UUID) *BranchRuleUpdate {
	if v != nil {
		_u.SetNextQuestionnaireID(*v)
	}
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *BranchRuleUpdate) SetQuestionnaire(v *Questionnaire) *BranchRuleUpdate {
	return _u.SetQuestionnaireID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *BranchRuleUpdate) SetQuestion(v *Question) *BranchRuleUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the BranchRuleMutation object of the builder.
func (_u *BranchRuleUpdate) Mutation() *BranchRuleMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *BranchRuleUpdate) ClearQuestionnaire() *BranchRuleUpdate {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *BranchRuleUpdate) ClearQuestion() *BranchRuleUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BranchRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BranchRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BranchRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BranchRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BranchRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := branchrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BranchRuleUpdate) check() error {
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BranchRule.questionnaire"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BranchRule.question"`)
	}
	return nil
}

func (_u *BranchRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(branchrule.Table, branchrule.Columns, sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(branchrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(branchrule.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(branchrule.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(branchrule.FieldOptionID, field.TypeUUID, value)
	}
	if _u.mutation.OptionIDCleared() {
		_spec.ClearField(branchrule.FieldOptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.NextQuestionnaireID(); ok {
		_spec.SetField(branchrule.FieldNextQuestionnaireID, field.TypeUUID, value)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branchrule.QuestionnaireTable,
			Columns: []string{branchrule.QuestionnaireColumn},
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
			Table:   branchrule.QuestionnaireTable,
			Columns: []string{branchrule.QuestionnaireColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branchrule.QuestionTable,
			Columns: []string{branchrule.QuestionColumn},
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
			Table:   branchrule.QuestionTable,
			Columns: []string{branchrule.QuestionColumn},
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
			err = &NotFoundError{branchrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BranchRuleUpdateOne is the builder for updating a single BranchRule entity.
type BranchRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BranchRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BranchRuleUpdateOne) SetUpdatedAt(v time.Time) *BranchRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *BranchRuleUpdateOne) SetDeletedAt(v time.Time) *BranchRuleUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *BranchRuleUpdateOne) SetNillableDeletedAt(v *time.Time) *BranchRuleUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *BranchRuleUpdateOne) ClearDeletedAt() *BranchRuleUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *BranchRuleUpdateOne) SetQuestionnaireID(v uuid.UUID) *BranchRuleUpdateOne {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *BranchRuleUpdateOne) SetNillableQuestionnaireID(v *uuid.UUID) *BranchRuleUpdateOne {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *BranchRuleUpdateOne) SetQuestionID(v uuid.UUID) *BranchRuleUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *BranchRuleUpdateOne) SetNillableQuestionID(v *uuid.UUID) *BranchRuleUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *BranchRuleUpdateOne) SetOptionID(v uuid.UUID) *BranchRuleUpdateOne {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *BranchRuleUpdateOne) SetNillableOptionID(v *uuid.UUID) *BranchRuleUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// ClearOptionID clears the value of the "option_id" field.
func (_u *BranchRuleUpdateOne) ClearOptionID() *BranchRuleUpdateOne {
	_u.mutation.ClearOptionID()
	return _u
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (_u *BranchRuleUpdateOne) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleUpdateOne {
	_u.mutation.SetNextQuestionnaireID(v)
	return _u
}

// SetNillableNextQuestionnaireID sets the "next_questionnaire_id" field if the given value is not nil.
func (_u *BranchRuleUpdateOne) SetNillableNextQuestionnaireID(v *uuid.UUID) *BranchRuleUpdateOne {
	if v != nil {
		_u.SetNextQuestionnaireID(*v)
	}
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *BranchRuleUpdateOne) SetQuestionnaire(v *Questionnaire) *BranchRuleUpdateOne {
	return _u.SetQuestionnaireID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *BranchRuleUpdateOne) SetQuestion(v *Question) *BranchRuleUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the BranchRuleMutation object of the builder.
func (_u *BranchRuleUpdateOne) Mutation() *BranchRuleMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *BranchRuleUpdateOne) ClearQuestionnaire() *BranchRuleUpdateOne {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *BranchRuleUpdateOne) ClearQuestion() *BranchRuleUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the BranchRuleUpdate builder.
func (_u *BranchRuleUpdateOne) Where(ps ...predicate.BranchRule) *BranchRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BranchRuleUpdateOne) Select(field string, fields ...string) *BranchRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BranchRule entity.
func (_u *BranchRuleUpdateOne) Save(ctx context.Context) (*BranchRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BranchRuleUpdateOne) SaveX(ctx context.Context) *BranchRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BranchRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BranchRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BranchRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := branchrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BranchRuleUpdateOne) check() error {
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BranchRule.questionnaire"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BranchRule.question"`)
	}
	return nil
}

func (_u *BranchRuleUpdateOne) sqlSave(ctx context.Context) (_node *BranchRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(branchrule.Table, branchrule.Columns, sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BranchRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, branchrule.FieldID)
		for _, f := range fields {
			if !branchrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != branchrule.FieldID {
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
		_spec.SetField(branchrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(branchrule.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(branchrule.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OptionID(); ok {
		_spec.SetField(branchrule.FieldOptionID, field.TypeUUID, value)
	}
	if _u.mutation.OptionIDCleared() {
		_spec.ClearField(branchrule.FieldOptionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.NextQuestionnaireID(); ok {
		_spec.SetField(branchrule.FieldNextQuestionnaireID, field.TypeUUID, value)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branchrule.QuestionnaireTable,
			Columns: []string{branchrule.QuestionnaireColumn},
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
			Table:   branchrule.QuestionnaireTable,
			Columns: []string{branchrule.QuestionnaireColumn},
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
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   branchrule.QuestionTable,
			Columns: []string{branchrule.QuestionColumn},
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
			Table:   branchrule.QuestionTable,
			Columns: []string{branchrule.QuestionColumn},
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
	_node = &BranchRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{branchrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
