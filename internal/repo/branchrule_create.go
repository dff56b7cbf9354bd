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
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// BranchRuleCreate is the builder for creating a BranchRule entity.
type BranchRuleCreate struct {
	config
	mutation *BranchRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BranchRuleCreate) SetCreatedAt(v time.Time) *BranchRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BranchRuleCreate) SetNillableCreatedAt(v *time.Time) *BranchRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BranchRuleCreate) SetUpdatedAt(v time.Time) *BranchRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BranchRuleCreate) SetNillableUpdatedAt(v *time.Time) *BranchRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *BranchRuleCreate) SetDeletedAt(v time.Time) *BranchRuleCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *BranchRuleCreate) SetNillableDeletedAt(v *time.Time) *BranchRuleCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_c *BranchRuleCreate) SetQuestionnaireID(v uuid.UUID) *BranchRuleCreate {
	_c.mutation.SetQuestionnaireID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *BranchRuleCreate) SetQuestionID(v uuid.UUID) *BranchRuleCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *BranchRuleCreate) SetOptionID(v uuid.UUID) *BranchRuleCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_c *BranchRuleCreate) SetNillableOptionID(v *uuid.UUID) *BranchRuleCreate {
	if v != nil {
		_c.SetOptionID(*v)
	}
	return _c
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (_c *BranchRuleCreate) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleCreate {
	_c.mutation.SetNextQuestionnaireID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BranchRuleCreate) SetID(v uuid.UUID) *BranchRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BranchRuleCreate) SetNillableID(v *uuid.UUID) *BranchRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_c *BranchRuleCreate) SetQuestionnaire(v *Questionnaire) *BranchRuleCreate {
	return _c.SetQuestionnaireID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *BranchRuleCreate) SetQuestion(v *Question) *BranchRuleCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the BranchRuleMutation object of the builder.
func (_c *BranchRuleCreate) Mutation() *BranchRuleMutation {
	return _c.mutation
}

// Save creates the BranchRule in the database.
func (_c *BranchRuleCreate) Save(ctx context.Context) (*BranchRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BranchRuleCreate) SaveX(ctx context.Context) *BranchRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BranchRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BranchRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BranchRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := branchrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := branchrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := branchrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BranchRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BranchRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BranchRule.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionnaireID(); !ok {
		return &ValidationError{Name: "questionnaire_id", err: errors.New(`repo: missing required field "BranchRule.questionnaire_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`repo: missing required field "BranchRule.question_id"`)}
	}
	if _, ok := _c.mutation.NextQuestionnaireID(); !ok {
		return &ValidationError{Name: "next_questionnaire_id", err: errors.New(`repo: missing required field "BranchRule.next_questionnaire_id"`)}
	}
	if len(_c.mutation.QuestionnaireIDs()) == 0 {
		return &ValidationError{Name: "questionnaire", err: errors.New(`repo: missing required edge "BranchRule.questionnaire"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "BranchRule.question"`)}
	}
	return nil
}

func (_c *BranchRuleCreate) sqlSave(ctx context.Context) (*BranchRule, error) {
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

func (_c *BranchRuleCreate) createSpec() (*BranchRule, *sqlgraph.CreateSpec) {
	var (
		_node = &BranchRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(branchrule.Table, sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(branchrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(branchrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(branchrule.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.OptionID(); ok {
		_spec.SetField(branchrule.FieldOptionID, field.TypeUUID, value)
		_node.OptionID = &value
	}
	if value, ok := _c.mutation.NextQuestionnaireID(); ok {
		_spec.SetField(branchrule.FieldNextQuestionnaireID, field.TypeUUID, value)
		_node.NextQuestionnaireID = value
	}
	if nodes := _c.mutation.QuestionnaireIDs(); len(nodes) > 0 {
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
		_node.QuestionnaireID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BranchRule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BranchRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BranchRuleCreate) OnConflict(opts ...sql.ConflictOption) *BranchRuleUpsertOne {
	_c.conflict = opts
	return &BranchRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BranchRuleCreate) OnConflictColumns(columns ...string) *BranchRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BranchRuleUpsertOne{
		create: _c,
	}
}

type (
	// BranchRuleUpsertOne is the builder for "upsert"-ing
	//  one BranchRule node.
	BranchRuleUpsertOne struct {
		create *BranchRuleCreate
	}

	// BranchRuleUpsert is the "OnConflict" setter.
	BranchRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BranchRuleUpsert) SetUpdatedAt(v time.Time) *BranchRuleUpsert {
	u.Set(branchrule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateUpdatedAt() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BranchRuleUpsert) SetDeletedAt(v time.Time) *BranchRuleUpsert {
	u.Set(branchrule.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateDeletedAt() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BranchRuleUpsert) ClearDeletedAt() *BranchRuleUpsert {
	u.SetNull(branchrule.FieldDeletedAt)
	return u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *BranchRuleUpsert) SetQuestionnaireID(v uuid.UUID) *BranchRuleUpsert {
	u.Set(branchrule.FieldQuestionnaireID, v)
	return u
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateQuestionnaireID() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldQuestionnaireID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *BranchRuleUpsert) SetQuestionID(v uuid.UUID) *BranchRuleUpsert {
	u.Set(branchrule.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateQuestionID() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldQuestionID)
	return u
}

// SetOptionID sets the "option_id" field.
func (u *BranchRuleUpsert) SetOptionID(v uuid.UUID) *BranchRuleUpsert {
	u.Set(branchrule.FieldOptionID, v)
	return u
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateOptionID() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldOptionID)
	return u
}

// ClearOptionID clears the value of the "option_id" field.
func (u *BranchRuleUpsert) ClearOptionID() *BranchRuleUpsert {
	u.SetNull(branchrule.FieldOptionID)
	return u
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (u *BranchRuleUpsert) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleUpsert {
	u.Set(branchrule.FieldNextQuestionnaireID, v)
	return u
}

// UpdateNextQuestionnaireID sets the "next_questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsert) UpdateNextQuestionnaireID() *BranchRuleUpsert {
	u.SetExcluded(branchrule.FieldNextQuestionnaireID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(branchrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BranchRuleUpsertOne) UpdateNewValues() *BranchRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(branchrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(branchrule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BranchRuleUpsertOne) Ignore() *BranchRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BranchRuleUpsertOne) DoNothing() *BranchRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BranchRuleCreate.OnConflict
// documentation for more info.
func (u *BranchRuleUpsertOne) Update(set func(*BranchRuleUpsert)) *BranchRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BranchRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BranchRuleUpsertOne) SetUpdatedAt(v time.Time) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateUpdatedAt() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BranchRuleUpsertOne) SetDeletedAt(v time.Time) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateDeletedAt() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BranchRuleUpsertOne) ClearDeletedAt() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *BranchRuleUpsertOne) SetQuestionnaireID(v uuid.UUID) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateQuestionnaireID() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *BranchRuleUpsertOne) SetQuestionID(v uuid.UUID) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateQuestionID() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateQuestionID()
	})
}

// SetOptionID sets the "option_id" field.
func (u *BranchRuleUpsertOne) SetOptionID(v uuid.UUID) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateOptionID() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateOptionID()
	})
}

// ClearOptionID clears the value of the "option_id" field.
func (u *BranchRuleUpsertOne) ClearOptionID() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.ClearOptionID()
	})
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (u *BranchRuleUpsertOne) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetNextQuestionnaireID(v)
	})
}

// UpdateNextQuestionnaireID sets the "next_questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsertOne) UpdateNextQuestionnaireID() *BranchRuleUpsertOne {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateNextQuestionnaireID()
	})
}

// Exec executes the query.
func (u *BranchRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BranchRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BranchRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BranchRuleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BranchRuleUpsertOne.ID is not supported by MySQL driver. Use BranchRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BranchRuleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BranchRuleCreateBulk is the builder for creating many BranchRule entities in bulk.
type BranchRuleCreateBulk struct {
	config
	err      error
	builders []*BranchRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the BranchRule entities in the database.
func (_c *BranchRuleCreateBulk) Save(ctx context.Context) ([]*BranchRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BranchRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BranchRuleMutation)
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
func (_c *BranchRuleCreateBulk) SaveX(ctx context.Context) []*BranchRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BranchRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BranchRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BranchRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BranchRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BranchRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *BranchRuleUpsertBulk {
	_c.conflict = opts
	return &BranchRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BranchRuleCreateBulk) OnConflictColumns(columns ...string) *BranchRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BranchRuleUpsertBulk{
		create: _c,
	}
}

// BranchRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of BranchRule nodes.
type BranchRuleUpsertBulk struct {
	create *BranchRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(branchrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BranchRuleUpsertBulk) UpdateNewValues() *BranchRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(branchrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(branchrule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BranchRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BranchRuleUpsertBulk) Ignore() *BranchRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BranchRuleUpsertBulk) DoNothing() *BranchRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BranchRuleCreateBulk.OnConflict
// documentation for more info.
func (u *BranchRuleUpsertBulk) Update(set func(*BranchRuleUpsert)) *BranchRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BranchRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BranchRuleUpsertBulk) SetUpdatedAt(v time.Time) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateUpdatedAt() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BranchRuleUpsertBulk) SetDeletedAt(v time.Time) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateDeletedAt() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BranchRuleUpsertBulk) ClearDeletedAt() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *BranchRuleUpsertBulk) SetQuestionnaireID(v uuid.UUID) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateQuestionnaireID() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *BranchRuleUpsertBulk) SetQuestionID(v uuid.UUID) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateQuestionID() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateQuestionID()
	})
}

// SetOptionID sets the "option_id" field.
func (u *BranchRuleUpsertBulk) SetOptionID(v uuid.UUID) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateOptionID() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateOptionID()
	})
}

// ClearOptionID clears the value of the "option_id" field.
func (u *BranchRuleUpsertBulk) ClearOptionID() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.ClearOptionID()
	})
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (u *BranchRuleUpsertBulk) SetNextQuestionnaireID(v uuid.UUID) *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.SetNextQuestionnaireID(v)
	})
}

// UpdateNextQuestionnaireID sets the "next_questionnaire_id" field to the value that was provided on create.
func (u *BranchRuleUpsertBulk) UpdateNextQuestionnaireID() *BranchRuleUpsertBulk {
	return u.Update(func(s *BranchRuleUpsert) {
		s.UpdateNextQuestionnaireID()
	})
}

// Exec executes the query.
func (u *BranchRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BranchRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BranchRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BranchRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
