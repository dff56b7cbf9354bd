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
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *AnswerCreate) SetSubmissionID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *AnswerCreate) SetOptionID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableOptionID(v *uuid.UUID) *AnswerCreate {
	if v != nil {
		_c.SetOptionID(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *AnswerCreate) SetValue(v float64) *AnswerCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableValue(v *float64) *AnswerCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (_c *AnswerCreate) SetSelectedOptionIds(v []uuid.UUID) *AnswerCreate {
	_c.mutation.SetSelectedOptionIds(v)
	return _c
}

// SetTextAnswer sets the "text_answer" field.
func (_c *AnswerCreate) SetTextAnswer(v string) *AnswerCreate {
	_c.mutation.SetTextAnswer(v)
	return _c
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTextAnswer(v *string) *AnswerCreate {
	if v != nil {
		_c.SetTextAnswer(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerCreate) SetID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableID(v *uuid.UUID) *AnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *AnswerCreate) SetSubmission(v *Submission) *AnswerCreate {
	return _c.SetSubmissionID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *AnswerCreate) SetQuestion(v *Question) *AnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := answer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Answer.created_at"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`repo: missing required field "Answer.submission_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`repo: missing required field "Answer.question_id"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`repo: missing required edge "Answer.submission"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "Answer.question"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OptionID(); ok {
		_spec.SetField(answer.FieldOptionID, field.TypeUUID, value)
		_node.OptionID = &value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.SelectedOptionIds(); ok {
		_spec.SetField(answer.FieldSelectedOptionIds, field.TypeJSON, value)
		_node.SelectedOptionIds = value
	}
	if value, ok := _c.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
		_node.TextAnswer = &value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertOne {
	_c.conflict = opts
	return &AnswerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreate) OnConflictColumns(columns ...string) *AnswerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertOne{
		create: _c,
	}
}

type (
	// AnswerUpsertOne is the builder for "upsert"-ing
	//  one Answer node.
	AnswerUpsertOne struct {
		create *AnswerCreate
	}

	// AnswerUpsert is the "OnConflict" setter.
	AnswerUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubmissionID sets the "submission_id" field.
func (u *AnswerUpsert) SetSubmissionID(v uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldSubmissionID, v)
	return u
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateSubmissionID() *AnswerUpsert {
	u.SetExcluded(answer.FieldSubmissionID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerUpsert) SetQuestionID(v uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateQuestionID() *AnswerUpsert {
	u.SetExcluded(answer.FieldQuestionID)
	return u
}

// SetOptionID sets the "option_id" field.
func (u *AnswerUpsert) SetOptionID(v uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldOptionID, v)
	return u
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateOptionID() *AnswerUpsert {
	u.SetExcluded(answer.FieldOptionID)
	return u
}

// ClearOptionID clears the value of the "option_id" field.
func (u *AnswerUpsert) ClearOptionID() *AnswerUpsert {
	u.SetNull(answer.FieldOptionID)
	return u
}

// SetValue sets the "value" field.
func (u *AnswerUpsert) SetValue(v float64) *AnswerUpsert {
	u.Set(answer.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateValue() *AnswerUpsert {
	u.SetExcluded(answer.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *AnswerUpsert) AddValue(v float64) *AnswerUpsert {
	u.Add(answer.FieldValue, v)
	return u
}

// ClearValue clears the value of the "value" field.
func (u *AnswerUpsert) ClearValue() *AnswerUpsert {
	u.SetNull(answer.FieldValue)
	return u
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (u *AnswerUpsert) SetSelectedOptionIds(v []uuid.UUID) *AnswerUpsert {
	u.Set(answer.FieldSelectedOptionIds, v)
	return u
}

// UpdateSelectedOptionIds sets the "selected_option_ids" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateSelectedOptionIds() *AnswerUpsert {
	u.SetExcluded(answer.FieldSelectedOptionIds)
	return u
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (u *AnswerUpsert) ClearSelectedOptionIds() *AnswerUpsert {
	u.SetNull(answer.FieldSelectedOptionIds)
	return u
}

// SetTextAnswer sets the "text_answer" field.
func (u *AnswerUpsert) SetTextAnswer(v string) *AnswerUpsert {
	u.Set(answer.FieldTextAnswer, v)
	return u
}

// UpdateTextAnswer sets the "text_answer" field to the value that was provided on create.
func (u *AnswerUpsert) UpdateTextAnswer() *AnswerUpsert {
	u.SetExcluded(answer.FieldTextAnswer)
	return u
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (u *AnswerUpsert) ClearTextAnswer() *AnswerUpsert {
	u.SetNull(answer.FieldTextAnswer)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertOne) UpdateNewValues() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(answer.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(answer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerUpsertOne) Ignore() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertOne) DoNothing() *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreate.OnConflict
// documentation for more info.
func (u *AnswerUpsertOne) Update(set func(*AnswerUpsert)) *AnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *AnswerUpsertOne) SetSubmissionID(v uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateSubmissionID() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerUpsertOne) SetQuestionID(v uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateQuestionID() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateQuestionID()
	})
}

// SetOptionID sets the "option_id" field.
func (u *AnswerUpsertOne) SetOptionID(v uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateOptionID() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateOptionID()
	})
}

// ClearOptionID clears the value of the "option_id" field.
func (u *AnswerUpsertOne) ClearOptionID() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearOptionID()
	})
}

// SetValue sets the "value" field.
func (u *AnswerUpsertOne) SetValue(v float64) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *AnswerUpsertOne) AddValue(v float64) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateValue() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *AnswerUpsertOne) ClearValue() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearValue()
	})
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (u *AnswerUpsertOne) SetSelectedOptionIds(v []uuid.UUID) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSelectedOptionIds(v)
	})
}

// UpdateSelectedOptionIds sets the "selected_option_ids" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateSelectedOptionIds() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSelectedOptionIds()
	})
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (u *AnswerUpsertOne) ClearSelectedOptionIds() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearSelectedOptionIds()
	})
}

// SetTextAnswer sets the "text_answer" field.
func (u *AnswerUpsertOne) SetTextAnswer(v string) *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.SetTextAnswer(v)
	})
}

// UpdateTextAnswer sets the "text_answer" field to the value that was provided on create.
func (u *AnswerUpsertOne) UpdateTextAnswer() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateTextAnswer()
	})
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (u *AnswerUpsertOne) ClearTextAnswer() *AnswerUpsertOne {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearTextAnswer()
	})
}

// Exec executes the query.
func (u *AnswerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnswerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AnswerUpsertOne.ID is not supported by MySQL driver. Use AnswerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
	conflict []sql.ConflictOption
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Answer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerUpsertBulk {
	_c.conflict = opts
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerCreateBulk) OnConflictColumns(columns ...string) *AnswerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerUpsertBulk{
		create: _c,
	}
}

// AnswerUpsertBulk is the builder for "upsert"-ing
// a bulk of Answer nodes.
type AnswerUpsertBulk struct {
	create *AnswerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(answer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnswerUpsertBulk) UpdateNewValues() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(answer.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(answer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Answer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerUpsertBulk) Ignore() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerUpsertBulk) DoNothing() *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerUpsertBulk) Update(set func(*AnswerUpsert)) *AnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *AnswerUpsertBulk) SetSubmissionID(v uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateSubmissionID() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerUpsertBulk) SetQuestionID(v uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateQuestionID() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateQuestionID()
	})
}

// SetOptionID sets the "option_id" field.
func (u *AnswerUpsertBulk) SetOptionID(v uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateOptionID() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateOptionID()
	})
}

// ClearOptionID clears the value of the "option_id" field.
func (u *AnswerUpsertBulk) ClearOptionID() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearOptionID()
	})
}

// SetValue sets the "value" field.
func (u *AnswerUpsertBulk) SetValue(v float64) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *AnswerUpsertBulk) AddValue(v float64) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateValue() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *AnswerUpsertBulk) ClearValue() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearValue()
	})
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (u *AnswerUpsertBulk) SetSelectedOptionIds(v []uuid.UUID) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetSelectedOptionIds(v)
	})
}

// UpdateSelectedOptionIds sets the "selected_option_ids" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateSelectedOptionIds() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateSelectedOptionIds()
	})
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (u *AnswerUpsertBulk) ClearSelectedOptionIds() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearSelectedOptionIds()
	})
}

// SetTextAnswer sets the "text_answer" field.
func (u *AnswerUpsertBulk) SetTextAnswer(v string) *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.SetTextAnswer(v)
	})
}

// UpdateTextAnswer sets the "text_answer" field to the value that was provided on create.
func (u *AnswerUpsertBulk) UpdateTextAnswer() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.UpdateTextAnswer()
	})
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (u *AnswerUpsertBulk) ClearTextAnswer() *AnswerUpsertBulk {
	return u.Update(func(s *AnswerUpsert) {
		s.ClearTextAnswer()
	})
}

// Exec executes the query.
func (u *AnswerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AnswerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AnswerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
