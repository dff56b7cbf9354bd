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
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// DimensionUpdate is the builder for updating Dimension entities.
type DimensionUpdate struct {
	config
	hooks    []Hook
	mutation *DimensionMutation
}

// Where appends a list predicates to the DimensionUpdate builder.
func (_u *DimensionUpdate) Where(ps ...predicate.Dimension) *DimensionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DimensionUpdate) SetUpdatedAt(v time.Time) *DimensionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DimensionUpdate) SetDeletedAt(v time.Time) *DimensionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DimensionUpdate) SetNillableDeletedAt(v *time.Time) *DimensionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DimensionUpdate) ClearDeletedAt() *DimensionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *DimensionUpdate) SetQuestionnaireID(v uuid.UUID) *DimensionUpdate {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *DimensionUpdate) SetNillableQuestionnaireID(v *uuid.UUID) *DimensionUpdate {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DimensionUpdate) SetName(v string) *DimensionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DimensionUpdate) SetNillableName(v *string) *DimensionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *DimensionUpdate) SetWeight(v float64) *DimensionUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *DimensionUpdate) SetNillableWeight(v *float64) *DimensionUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *DimensionUpdate) AddWeight(v float64) *DimensionUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (_u *DimensionUpdate) SetIsBasicInfo(v bool) *DimensionUpdate {
	_u.mutation.SetIsBasicInfo(v)
	return _u
}

// SetNillableIsBasicInfo sets the "is_basic_info" field if the given value is not nil.
func (_u *DimensionUpdate) SetNillableIsBasicInfo(v *bool) *DimensionUpdate {
	if v != nil {
		_u.SetIsBasicInfo(*v)
	}
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *DimensionUpdate) SetQuestionnaire(v *Questionnaire) *DimensionUpdate {
	return _u.SetQuestionnaireID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *DimensionUpdate) AddQuestionIDs(ids ...uuid.UUID) *DimensionUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *DimensionUpdate) AddQuestions(v ...*Question) *DimensionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the DimensionMutation object of the builder.
func (_u *DimensionUpdate) Mutation() *DimensionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *DimensionUpdate) ClearQuestionnaire() *DimensionUpdate {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *DimensionUpdate) ClearQuestions() *DimensionUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *DimensionUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *DimensionUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *DimensionUpdate) RemoveQuestions(v ...*Question) *DimensionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DimensionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DimensionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DimensionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dimension.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dimension.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Dimension.name": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Dimension.questionnaire"`)
	}
	return nil
}

func (_u *DimensionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimension.Table, dimension.Columns, sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dimension.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(dimension.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(dimension.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dimension.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(dimension.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(dimension.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsBasicInfo(); ok {
		_spec.SetField(dimension.FieldIsBasicInfo, field.TypeBool, value)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimension.QuestionnaireTable,
			Columns: []string{dimension.QuestionnaireColumn},
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
			Table:   dimension.QuestionnaireTable,
			Columns: []string{dimension.QuestionnaireColumn},
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
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
			err = &NotFoundError{dimension.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DimensionUpdateOne is the builder for updating a single Dimension entity.
type DimensionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DimensionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DimensionUpdateOne) SetUpdatedAt(v time.Time) *DimensionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DimensionUpdateOne) SetDeletedAt(v time.Time) *DimensionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DimensionUpdateOne) SetNillableDeletedAt(v *time.Time) *DimensionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DimensionUpdateOne) ClearDeletedAt() *DimensionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_u *DimensionUpdateOne) SetQuestionnaireID(v uuid.UUID) *DimensionUpdateOne {
	_u.mutation.SetQuestionnaireID(v)
	return _u
}

// SetNillableQuestionnaireID sets the "questionnaire_id" field if the given value is not nil.
func (_u *DimensionUpdateOne) SetNillableQuestionnaireID(v *uuid.UUID) *DimensionUpdateOne {
	if v != nil {
		_u.SetQuestionnaireID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DimensionUpdateOne) SetName(v string) *DimensionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DimensionUpdateOne) SetNillableName(v *string) *DimensionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *DimensionUpdateOne) SetWeight(v float64) *DimensionUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *DimensionUpdateOne) SetNillableWeight(v *float64) *DimensionUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *DimensionUpdateOne) AddWeight(v float64) *DimensionUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (_u *DimensionUpdateOne) SetIsBasicInfo(v bool) *DimensionUpdateOne {
	_u.mutation.SetIsBasicInfo(v)
	return _u
}

// SetNillableIsBasicInfo sets the "is_basic_info" field if the given value is not nil.
func (_u *DimensionUpdateOne) SetNillableIsBasicInfo(v *bool) *DimensionUpdateOne {
	if v != nil {
		_u.SetIsBasicInfo(*v)
	}
	return _u
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_u *DimensionUpdateOne) SetQuestionnaire(v *Questionnaire) *DimensionUpdateOne {
	return _u.SetQuestionnaireID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *DimensionUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *DimensionUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *DimensionUpdateOne) AddQuestions(v ...*Question) *DimensionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the DimensionMutation object of the builder.
func (_u *DimensionUpdateOne) Mutation() *DimensionMutation {
	return _u.mutation
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (_u *DimensionUpdateOne) ClearQuestionnaire() *DimensionUpdateOne {
	_u.mutation.ClearQuestionnaire()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *DimensionUpdateOne) ClearQuestions() *DimensionUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *DimensionUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *DimensionUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *DimensionUpdateOne) RemoveQuestions(v ...*Question) *DimensionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the DimensionUpdate builder.
func (_u *DimensionUpdateOne) Where(ps ...predicate.Dimension) *DimensionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DimensionUpdateOne) Select(field string, fields ...string) *DimensionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dimension entity.
func (_u *DimensionUpdateOne) Save(ctx context.Context) (*Dimension, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionUpdateOne) SaveX(ctx context.Context) *Dimension {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DimensionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DimensionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dimension.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dimension.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Dimension.name": %w`, err)}
		}
	}
	if _u.mutation.QuestionnaireCleared() && len(_u.mutation.QuestionnaireIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Dimension.questionnaire"`)
	}
	return nil
}

func (_u *DimensionUpdateOne) sqlSave(ctx context.Context) (_node *Dimension, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimension.Table, dimension.Columns, sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Dimension.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dimension.FieldID)
		for _, f := range fields {
			if !dimension.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dimension.FieldID {
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
		_spec.SetField(dimension.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(dimension.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(dimension.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dimension.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(dimension.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(dimension.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsBasicInfo(); ok {
		_spec.SetField(dimension.FieldIsBasicInfo, field.TypeBool, value)
	}
	if _u.mutation.QuestionnaireCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dimension.QuestionnaireTable,
			Columns: []string{dimension.QuestionnaireColumn},
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
			Table:   dimension.QuestionnaireTable,
			Columns: []string{dimension.QuestionnaireColumn},
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
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
			Table:   dimension.QuestionsTable,
			Columns: []string{dimension.QuestionsColumn},
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
	_node = &Dimension{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dimension.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
