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
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *QuestionCreate) SetDeletedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDeletedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_c *QuestionCreate) SetQuestionnaireID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetQuestionnaireID(v)
	return _c
}

// SetDimensionID sets the "dimension_id" field.
func (_c *QuestionCreate) SetDimensionID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetDimensionID(v)
	return _c
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDimensionID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetDimensionID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuestionCreate) SetType(v question.Type) *QuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *QuestionCreate) SetDisplayOrder(v int) *QuestionCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDisplayOrder(v *int) *QuestionCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetIsGrouping sets the "is_grouping" field.
func (_c *QuestionCreate) SetIsGrouping(v bool) *QuestionCreate {
	_c.mutation.SetIsGrouping(v)
	return _c
}

// SetNillableIsGrouping sets the "is_grouping" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsGrouping(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsGrouping(*v)
	}
	return _c
}

// SetMultiline sets the "multiline" field.
func (_c *QuestionCreate) SetMultiline(v bool) *QuestionCreate {
	_c.mutation.SetMultiline(v)
	return _c
}

// SetNillableMultiline sets the "multiline" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableMultiline(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetMultiline(*v)
	}
	return _c
}

// SetInputRows sets the "input_rows" field.
func (_c *QuestionCreate) SetInputRows(v int) *QuestionCreate {
	_c.mutation.SetInputRows(v)
	return _c
}

// SetNillableInputRows sets the "input_rows" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableInputRows(v *int) *QuestionCreate {
	if v != nil {
		_c.SetInputRows(*v)
	}
	return _c
}

// SetInputType sets the "input_type" field.
func (_c *QuestionCreate) SetInputType(v string) *QuestionCreate {
	_c.mutation.SetInputType(v)
	return _c
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableInputType(v *string) *QuestionCreate {
	if v != nil {
		_c.SetInputType(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_c *QuestionCreate) SetQuestionnaire(v *Questionnaire) *QuestionCreate {
	return _c.SetQuestionnaireID(v.ID)
}

// SetDimension sets the "dimension" edge to the Dimension entity.
func (_c *QuestionCreate) SetDimension(v *Dimension) *QuestionCreate {
	return _c.SetDimensionID(v.ID)
}

// AddOptionIDs adds the "options" edge to the SurveyOption entity by IDs.
func (_c *QuestionCreate) AddOptionIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddOptionIDs(ids...)
	return _c
}

// AddOptions adds the "options" edges to the SurveyOption entity.
func (_c *QuestionCreate) AddOptions(v ...*SurveyOption) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOptionIDs(ids...)
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by IDs.
func (_c *QuestionCreate) AddBranchRuleIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddBranchRuleIDs(ids...)
	return _c
}

// AddBranchRules adds the "branch_rules" edges to the BranchRule entity.
func (_c *QuestionCreate) AddBranchRules(v ...*BranchRule) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBranchRuleIDs(ids...)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *QuestionCreate) AddAnswerIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *QuestionCreate) AddAnswers(v ...*Answer) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := question.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.IsGrouping(); !ok {
		v := question.DefaultIsGrouping
		_c.mutation.SetIsGrouping(v)
	}
	if _, ok := _c.mutation.Multiline(); !ok {
		v := question.DefaultMultiline
		_c.mutation.SetMultiline(v)
	}
	if _, ok := _c.mutation.InputRows(); !ok {
		v := question.DefaultInputRows
		_c.mutation.SetInputRows(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := question.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Question.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionnaireID(); !ok {
		return &ValidationError{Name: "questionnaire_id", err: errors.New(`repo: missing required field "Question.questionnaire_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`repo: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Question.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := question.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Question.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`repo: missing required field "Question.display_order"`)}
	}
	if _, ok := _c.mutation.IsGrouping(); !ok {
		return &ValidationError{Name: "is_grouping", err: errors.New(`repo: missing required field "Question.is_grouping"`)}
	}
	if _, ok := _c.mutation.Multiline(); !ok {
		return &ValidationError{Name: "multiline", err: errors.New(`repo: missing required field "Question.multiline"`)}
	}
	if _, ok := _c.mutation.InputRows(); !ok {
		return &ValidationError{Name: "input_rows", err: errors.New(`repo: missing required field "Question.input_rows"`)}
	}
	if v, ok := _c.mutation.InputType(); ok {
		if err := question.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`repo: validator failed for field "Question.input_type": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionnaireIDs()) == 0 {
		return &ValidationError{Name: "questionnaire", err: errors.New(`repo: missing required edge "Question.questionnaire"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(question.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(question.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(question.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.IsGrouping(); ok {
		_spec.SetField(question.FieldIsGrouping, field.TypeBool, value)
		_node.IsGrouping = value
	}
	if value, ok := _c.mutation.Multiline(); ok {
		_spec.SetField(question.FieldMultiline, field.TypeBool, value)
		_node.Multiline = value
	}
	if value, ok := _c.mutation.InputRows(); ok {
		_spec.SetField(question.FieldInputRows, field.TypeInt, value)
		_node.InputRows = value
	}
	if value, ok := _c.mutation.InputType(); ok {
		_spec.SetField(question.FieldInputType, field.TypeString, value)
		_node.InputType = &value
	}
	if nodes := _c.mutation.QuestionnaireIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.QuestionnaireTable,
			Columns: []string{question.QuestionnaireColumn},
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
	if nodes := _c.mutation.DimensionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.DimensionTable,
			Columns: []string{question.DimensionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DimensionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID),
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
			Table:   question.BranchRulesTable,
			Columns: []string{question.BranchRulesColumn},
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
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsert) SetUpdatedAt(v time.Time) *QuestionUpsert {
	u.Set(question.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateUpdatedAt() *QuestionUpsert {
	u.SetExcluded(question.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionUpsert) SetDeletedAt(v time.Time) *QuestionUpsert {
	u.Set(question.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDeletedAt() *QuestionUpsert {
	u.SetExcluded(question.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionUpsert) ClearDeletedAt() *QuestionUpsert {
	u.SetNull(question.FieldDeletedAt)
	return u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *QuestionUpsert) SetQuestionnaireID(v uuid.UUID) *QuestionUpsert {
	u.Set(question.FieldQuestionnaireID, v)
	return u
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionnaireID() *QuestionUpsert {
	u.SetExcluded(question.FieldQuestionnaireID)
	return u
}

// SetDimensionID sets the "dimension_id" field.
func (u *QuestionUpsert) SetDimensionID(v uuid.UUID) *QuestionUpsert {
	u.Set(question.FieldDimensionID, v)
	return u
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDimensionID() *QuestionUpsert {
	u.SetExcluded(question.FieldDimensionID)
	return u
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *QuestionUpsert) ClearDimensionID() *QuestionUpsert {
	u.SetNull(question.FieldDimensionID)
	return u
}

// SetText sets the "text" field.
func (u *QuestionUpsert) SetText(v string) *QuestionUpsert {
	u.Set(question.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateText() *QuestionUpsert {
	u.SetExcluded(question.FieldText)
	return u
}

// SetType sets the "type" field.
func (u *QuestionUpsert) SetType(v question.Type) *QuestionUpsert {
	u.Set(question.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateType() *QuestionUpsert {
	u.SetExcluded(question.FieldType)
	return u
}

// SetDisplayOrder sets the "display_order" field.
func (u *QuestionUpsert) SetDisplayOrder(v int) *QuestionUpsert {
	u.Set(question.FieldDisplayOrder, v)
	return u
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDisplayOrder() *QuestionUpsert {
	u.SetExcluded(question.FieldDisplayOrder)
	return u
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *QuestionUpsert) AddDisplayOrder(v int) *QuestionUpsert {
	u.Add(question.FieldDisplayOrder, v)
	return u
}

// SetIsGrouping sets the "is_grouping" field.
func (u *QuestionUpsert) SetIsGrouping(v bool) *QuestionUpsert {
	u.Set(question.FieldIsGrouping, v)
	return u
}

// UpdateIsGrouping sets the "is_grouping" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateIsGrouping() *QuestionUpsert {
	u.SetExcluded(question.FieldIsGrouping)
	return u
}

// SetMultiline sets the "multiline" field.
func (u *QuestionUpsert) SetMultiline(v bool) *QuestionUpsert {
	u.Set(question.FieldMultiline, v)
	return u
}

// UpdateMultiline sets the "multiline" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateMultiline() *QuestionUpsert {
	u.SetExcluded(question.FieldMultiline)
	return u
}

// SetInputRows sets the "input_rows" field.
func (u *QuestionUpsert) SetInputRows(v int) *QuestionUpsert {
	u.Set(question.FieldInputRows, v)
	return u
}

// UpdateInputRows sets the "input_rows" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateInputRows() *QuestionUpsert {
	u.SetExcluded(question.FieldInputRows)
	return u
}

// AddInputRows adds v to the "input_rows" field.
func (u *QuestionUpsert) AddInputRows(v int) *QuestionUpsert {
	u.Add(question.FieldInputRows, v)
	return u
}

// SetInputType sets the "input_type" field.
func (u *QuestionUpsert) SetInputType(v string) *QuestionUpsert {
	u.Set(question.FieldInputType, v)
	return u
}

// UpdateInputType sets the "input_type" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateInputType() *QuestionUpsert {
	u.SetExcluded(question.FieldInputType)
	return u
}

// ClearInputType clears the value of the "input_type" field.
func (u *QuestionUpsert) ClearInputType() *QuestionUpsert {
	u.SetNull(question.FieldInputType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(question.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(question.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsertOne) SetUpdatedAt(v time.Time) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateUpdatedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionUpsertOne) SetDeletedAt(v time.Time) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDeletedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionUpsertOne) ClearDeletedAt() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *QuestionUpsertOne) SetQuestionnaireID(v uuid.UUID) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionnaireID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *QuestionUpsertOne) SetDimensionID(v uuid.UUID) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDimensionID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDimensionID()
	})
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *QuestionUpsertOne) ClearDimensionID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDimensionID()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertOne) SetText(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateText() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertOne) SetType(v question.Type) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetDisplayOrder sets the "display_order" field.
func (u *QuestionUpsertOne) SetDisplayOrder(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDisplayOrder(v)
	})
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *QuestionUpsertOne) AddDisplayOrder(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddDisplayOrder(v)
	})
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDisplayOrder() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDisplayOrder()
	})
}

// SetIsGrouping sets the "is_grouping" field.
func (u *QuestionUpsertOne) SetIsGrouping(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsGrouping(v)
	})
}

// UpdateIsGrouping sets the "is_grouping" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateIsGrouping() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsGrouping()
	})
}

// SetMultiline sets the "multiline" field.
func (u *QuestionUpsertOne) SetMultiline(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMultiline(v)
	})
}

// UpdateMultiline sets the "multiline" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateMultiline() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMultiline()
	})
}

// SetInputRows sets the "input_rows" field.
func (u *QuestionUpsertOne) SetInputRows(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetInputRows(v)
	})
}

// AddInputRows adds v to the "input_rows" field.
func (u *QuestionUpsertOne) AddInputRows(v int) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddInputRows(v)
	})
}

// UpdateInputRows sets the "input_rows" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateInputRows() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateInputRows()
	})
}

// SetInputType sets the "input_type" field.
func (u *QuestionUpsertOne) SetInputType(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetInputType(v)
	})
}

// UpdateInputType sets the "input_type" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateInputType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateInputType()
	})
}

// ClearInputType clears the value of the "input_type" field.
func (u *QuestionUpsertOne) ClearInputType() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearInputType()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionUpsertOne.ID is not supported by MySQL driver. Use QuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(question.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(question.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(question.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionUpsertBulk) SetUpdatedAt(v time.Time) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateUpdatedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionUpsertBulk) SetDeletedAt(v time.Time) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDeletedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionUpsertBulk) ClearDeletedAt() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *QuestionUpsertBulk) SetQuestionnaireID(v uuid.UUID) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionnaireID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *QuestionUpsertBulk) SetDimensionID(v uuid.UUID) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDimensionID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDimensionID()
	})
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (u *QuestionUpsertBulk) ClearDimensionID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearDimensionID()
	})
}

// SetText sets the "text" field.
func (u *QuestionUpsertBulk) SetText(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateText() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateText()
	})
}

// SetType sets the "type" field.
func (u *QuestionUpsertBulk) SetType(v question.Type) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateType()
	})
}

// SetDisplayOrder sets the "display_order" field.
func (u *QuestionUpsertBulk) SetDisplayOrder(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDisplayOrder(v)
	})
}

// AddDisplayOrder adds v to the "display_order" field.
func (u *QuestionUpsertBulk) AddDisplayOrder(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddDisplayOrder(v)
	})
}

// UpdateDisplayOrder sets the "display_order" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDisplayOrder() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDisplayOrder()
	})
}

// SetIsGrouping sets the "is_grouping" field.
func (u *QuestionUpsertBulk) SetIsGrouping(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetIsGrouping(v)
	})
}

// UpdateIsGrouping sets the "is_grouping" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateIsGrouping() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateIsGrouping()
	})
}

// SetMultiline sets the "multiline" field.
func (u *QuestionUpsertBulk) SetMultiline(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetMultiline(v)
	})
}

// UpdateMultiline sets the "multiline" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateMultiline() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateMultiline()
	})
}

// SetInputRows sets the "input_rows" field.
func (u *QuestionUpsertBulk) SetInputRows(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetInputRows(v)
	})
}

// AddInputRows adds v to the "input_rows" field.
func (u *QuestionUpsertBulk) AddInputRows(v int) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddInputRows(v)
	})
}

// UpdateInputRows sets the "input_rows" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateInputRows() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateInputRows()
	})
}

// SetInputType sets the "input_type" field.
func (u *QuestionUpsertBulk) SetInputType(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetInputType(v)
	})
}

// UpdateInputType sets the "input_type" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateInputType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateInputType()
	})
}

// ClearInputType clears the value of the "input_type" field.
func (u *QuestionUpsertBulk) ClearInputType() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.ClearInputType()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
