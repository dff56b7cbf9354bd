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
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

// SurveyOptionCreate is the builder for creating a SurveyOption entity.
type SurveyOptionCreate struct {
	config
	mutation *SurveyOptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SurveyOptionCreate) SetCreatedAt(v time.Time) *SurveyOptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableCreatedAt(v *time.Time) *SurveyOptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SurveyOptionCreate) SetUpdatedAt(v time.Time) *SurveyOptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableUpdatedAt(v *time.Time) *SurveyOptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SurveyOptionCreate) SetDeletedAt(v time.Time) *SurveyOptionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableDeletedAt(v *time.Time) *SurveyOptionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SurveyOptionCreate) SetQuestionID(v uuid.UUID) *SurveyOptionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *SurveyOptionCreate) SetText(v string) *SurveyOptionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SurveyOptionCreate) SetValue(v float64) *SurveyOptionCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableValue(v *float64) *SurveyOptionCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetIsOther sets the "is_other" field.
func (_c *SurveyOptionCreate) SetIsOther(v bool) *SurveyOptionCreate {
	_c.mutation.SetIsOther(v)
	return _c
}

// SetNillableIsOther sets the "is_other" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableIsOther(v *bool) *SurveyOptionCreate {
	if v != nil {
		_c.SetIsOther(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurveyOptionCreate) SetID(v uuid.UUID) *SurveyOptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SurveyOptionCreate) SetNillableID(v *uuid.UUID) *SurveyOptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *SurveyOptionCreate) SetQuestion(v *Question) *SurveyOptionCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the SurveyOptionMutation object of the builder.
func (_c *SurveyOptionCreate) Mutation() *SurveyOptionMutation {
	return _c.mutation
}

// Save creates the SurveyOption in the database.
func (_c *SurveyOptionCreate) Save(ctx context.Context) (*SurveyOption, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyOptionCreate) SaveX(ctx context.Context) *SurveyOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyOptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyOptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyOptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := surveyoption.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := surveyoption.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsOther(); !ok {
		v := surveyoption.DefaultIsOther
		_c.mutation.SetIsOther(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := surveyoption.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyOptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SurveyOption.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SurveyOption.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`repo: missing required field "SurveyOption.question_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`repo: missing required field "SurveyOption.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := surveyoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "SurveyOption.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOther(); !ok {
		return &ValidationError{Name: "is_other", err: errors.New(`repo: missing required field "SurveyOption.is_other"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "SurveyOption.question"`)}
	}
	return nil
}

func (_c *SurveyOptionCreate) sqlSave(ctx context.Context) (*SurveyOption, error) {
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

func (_c *SurveyOptionCreate) createSpec() (*SurveyOption, *sqlgraph.CreateSpec) {
	var (
		_node = &SurveyOption{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(surveyoption.Table, sqlgraph.NewFieldSpec(surveyoption.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(surveyoption.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(surveyoption.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(surveyoption.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(surveyoption.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(surveyoption.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.IsOther(); ok {
		_spec.SetField(surveyoption.FieldIsOther, field.TypeBool, value)
		_node.IsOther = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurveyOption.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyOptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyOptionCreate) OnConflict(opts ...sql.ConflictOption) *SurveyOptionUpsertOne {
	_c.conflict = opts
	return &SurveyOptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyOptionCreate) OnConflictColumns(columns ...string) *SurveyOptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyOptionUpsertOne{
		create: _c,
	}
}

type (
	// SurveyOptionUpsertOne is the builder for "upsert"-ing
	//  one SurveyOption node.
	SurveyOptionUpsertOne struct {
		create *SurveyOptionCreate
	}

	// SurveyOptionUpsert is the "OnConflict" setter.
	SurveyOptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyOptionUpsert) SetUpdatedAt(v time.Time) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateUpdatedAt() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SurveyOptionUpsert) SetDeletedAt(v time.Time) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateDeletedAt() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SurveyOptionUpsert) ClearDeletedAt() *SurveyOptionUpsert {
	u.SetNull(surveyoption.FieldDeletedAt)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *SurveyOptionUpsert) SetQuestionID(v uuid.UUID) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateQuestionID() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldQuestionID)
	return u
}

// SetText sets the "text" field.
func (u *SurveyOptionUpsert) SetText(v string) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateText() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldText)
	return u
}

// SetValue sets the "value" field.
func (u *SurveyOptionUpsert) SetValue(v float64) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateValue() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldValue)
	return u
}

// AddValue adds v to the "value" field.
func (u *SurveyOptionUpsert) AddValue(v float64) *SurveyOptionUpsert {
	u.Add(surveyoption.FieldValue, v)
	return u
}

// ClearValue clears the value of the "value" field.
func (u *SurveyOptionUpsert) ClearValue() *SurveyOptionUpsert {
	u.SetNull(surveyoption.FieldValue)
	return u
}

// SetIsOther sets the "is_other" field.
func (u *SurveyOptionUpsert) SetIsOther(v bool) *SurveyOptionUpsert {
	u.Set(surveyoption.FieldIsOther, v)
	return u
}

// UpdateIsOther sets the "is_other" field to the value that was provided on create.
func (u *SurveyOptionUpsert) UpdateIsOther() *SurveyOptionUpsert {
	u.SetExcluded(surveyoption.FieldIsOther)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surveyoption.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyOptionUpsertOne) UpdateNewValues() *SurveyOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(surveyoption.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(surveyoption.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SurveyOptionUpsertOne) Ignore() *SurveyOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyOptionUpsertOne) DoNothing() *SurveyOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyOptionCreate.OnConflict
// documentation for more info.
func (u *SurveyOptionUpsertOne) Update(set func(*SurveyOptionUpsert)) *SurveyOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyOptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyOptionUpsertOne) SetUpdatedAt(v time.Time) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateUpdatedAt() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SurveyOptionUpsertOne) SetDeletedAt(v time.Time) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateDeletedAt() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SurveyOptionUpsertOne) ClearDeletedAt() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *SurveyOptionUpsertOne) SetQuestionID(v uuid.UUID) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateQuestionID() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetText sets the "text" field.
func (u *SurveyOptionUpsertOne) SetText(v string) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateText() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateText()
	})
}

// SetValue sets the "value" field.
func (u *SurveyOptionUpsertOne) SetValue(v float64) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *SurveyOptionUpsertOne) AddValue(v float64) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateValue() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *SurveyOptionUpsertOne) ClearValue() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.ClearValue()
	})
}

// SetIsOther sets the "is_other" field.
func (u *SurveyOptionUpsertOne) SetIsOther(v bool) *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetIsOther(v)
	})
}

// UpdateIsOther sets the "is_other" field to the value that was provided on create.
func (u *SurveyOptionUpsertOne) UpdateIsOther() *SurveyOptionUpsertOne {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateIsOther()
	})
}

// Exec executes the query.
func (u *SurveyOptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SurveyOptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyOptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SurveyOptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SurveyOptionUpsertOne.ID is not supported by MySQL driver. Use SurveyOptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SurveyOptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SurveyOptionCreateBulk is the builder for creating many SurveyOption entities in bulk.
type SurveyOptionCreateBulk struct {
	config
	err      error
	builders []*SurveyOptionCreate
	conflict []sql.ConflictOption
}

// Save creates the SurveyOption entities in the database.
func (_c *SurveyOptionCreateBulk) Save(ctx context.Context) ([]*SurveyOption, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SurveyOption, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyOptionMutation)
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
func (_c *SurveyOptionCreateBulk) SaveX(ctx context.Context) []*SurveyOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyOptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurveyOption.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurveyOptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SurveyOptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SurveyOptionUpsertBulk {
	_c.conflict = opts
	return &SurveyOptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurveyOptionCreateBulk) OnConflictColumns(columns ...string) *SurveyOptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurveyOptionUpsertBulk{
		create: _c,
	}
}

// SurveyOptionUpsertBulk is the builder for "upsert"-ing
// a bulk of SurveyOption nodes.
type SurveyOptionUpsertBulk struct {
	create *SurveyOptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surveyoption.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurveyOptionUpsertBulk) UpdateNewValues() *SurveyOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(surveyoption.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(surveyoption.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurveyOption.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SurveyOptionUpsertBulk) Ignore() *SurveyOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurveyOptionUpsertBulk) DoNothing() *SurveyOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurveyOptionCreateBulk.OnConflict
// documentation for more info.
func (u *SurveyOptionUpsertBulk) Update(set func(*SurveyOptionUpsert)) *SurveyOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurveyOptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SurveyOptionUpsertBulk) SetUpdatedAt(v time.Time) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateUpdatedAt() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SurveyOptionUpsertBulk) SetDeletedAt(v time.Time) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateDeletedAt() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SurveyOptionUpsertBulk) ClearDeletedAt() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *SurveyOptionUpsertBulk) SetQuestionID(v uuid.UUID) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateQuestionID() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetText sets the "text" field.
func (u *SurveyOptionUpsertBulk) SetText(v string) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateText() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateText()
	})
}

// SetValue sets the "value" field.
func (u *SurveyOptionUpsertBulk) SetValue(v float64) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetValue(v)
	})
}

// AddValue adds v to the "value" field.
func (u *SurveyOptionUpsertBulk) AddValue(v float64) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.AddValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateValue() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateValue()
	})
}

// ClearValue clears the value of the "value" field.
func (u *SurveyOptionUpsertBulk) ClearValue() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.ClearValue()
	})
}

// SetIsOther sets the "is_other" field.
func (u *SurveyOptionUpsertBulk) SetIsOther(v bool) *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.SetIsOther(v)
	})
}

// UpdateIsOther sets the "is_other" field to the value that was provided on create.
func (u *SurveyOptionUpsertBulk) UpdateIsOther() *SurveyOptionUpsertBulk {
	return u.Update(func(s *SurveyOptionUpsert) {
		s.UpdateIsOther()
	})
}

// Exec executes the query.
func (u *SurveyOptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SurveyOptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SurveyOptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurveyOptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
