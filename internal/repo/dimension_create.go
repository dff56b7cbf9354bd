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
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// DimensionCreate is the builder for creating a Dimension entity.
type DimensionCreate struct {
	config
	mutation *DimensionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DimensionCreate) SetCreatedAt(v time.Time) *DimensionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableCreatedAt(v *time.Time) *DimensionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DimensionCreate) SetUpdatedAt(v time.Time) *DimensionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableUpdatedAt(v *time.Time) *DimensionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DimensionCreate) SetDeletedAt(v time.Time) *DimensionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableDeletedAt(v *time.Time) *DimensionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (_c *DimensionCreate) SetQuestionnaireID(v uuid.UUID) *DimensionCreate {
	_c.mutation.SetQuestionnaireID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DimensionCreate) SetName(v string) *DimensionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *DimensionCreate) SetWeight(v float64) *DimensionCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableWeight(v *float64) *DimensionCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (_c *DimensionCreate) SetIsBasicInfo(v bool) *DimensionCreate {
	_c.mutation.SetIsBasicInfo(v)
	return _c
}

// SetNillableIsBasicInfo sets the "is_basic_info" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableIsBasicInfo(v *bool) *DimensionCreate {
	if v != nil {
		_c.SetIsBasicInfo(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DimensionCreate) SetID(v uuid.UUID) *DimensionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DimensionCreate) SetNillableID(v *uuid.UUID) *DimensionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestionnaire sets the "questionnaire" edge to the Questionnaire entity.
func (_c *DimensionCreate) SetQuestionnaire(v *Questionnaire) *DimensionCreate {
	return _c.SetQuestionnaireID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *DimensionCreate) AddQuestionIDs(ids ...uuid.UUID) *DimensionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *DimensionCreate) AddQuestions(v ...*Question) *DimensionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the DimensionMutation object of the builder.
func (_c *DimensionCreate) Mutation() *DimensionMutation {
	return _c.mutation
}

// Save creates the Dimension in the database.
func (_c *DimensionCreate) Save(ctx context.Context) (*Dimension, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DimensionCreate) SaveX(ctx context.Context) *Dimension {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DimensionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dimension.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dimension.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Weight(); !ok {
		v := dimension.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.IsBasicInfo(); !ok {
		v := dimension.DefaultIsBasicInfo
		_c.mutation.SetIsBasicInfo(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dimension.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DimensionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Dimension.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Dimension.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionnaireID(); !ok {
		return &ValidationError{Name: "questionnaire_id", err: errors.New(`repo: missing required field "Dimension.questionnaire_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Dimension.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dimension.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Dimension.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`repo: missing required field "Dimension.weight"`)}
	}
	if _, ok := _c.mutation.IsBasicInfo(); !ok {
		return &ValidationError{Name: "is_basic_info", err: errors.New(`repo: missing required field "Dimension.is_basic_info"`)}
	}
	if len(_c.mutation.QuestionnaireIDs()) == 0 {
		return &ValidationError{Name: "questionnaire", err: errors.New(`repo: missing required edge "Dimension.questionnaire"`)}
	}
	return nil
}

func (_c *DimensionCreate) sqlSave(ctx context.Context) (*Dimension, error) {
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

func (_c *DimensionCreate) createSpec() (*Dimension, *sqlgraph.CreateSpec) {
	var (
		_node = &Dimension{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dimension.Table, sqlgraph.NewFieldSpec(dimension.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dimension.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dimension.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(dimension.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dimension.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(dimension.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.IsBasicInfo(); ok {
		_spec.SetField(dimension.FieldIsBasicInfo, field.TypeBool, value)
		_node.IsBasicInfo = value
	}
	if nodes := _c.mutation.QuestionnaireIDs(); len(nodes) > 0 {
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
		_node.QuestionnaireID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dimension.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DimensionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DimensionCreate) OnConflict(opts ...sql.ConflictOption) *DimensionUpsertOne {
	_c.conflict = opts
	return &DimensionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dimension.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DimensionCreate) OnConflictColumns(columns ...string) *DimensionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DimensionUpsertOne{
		create: _c,
	}
}

type (
	// DimensionUpsertOne is the builder for "upsert"-ing
	//  one Dimension node.
	DimensionUpsertOne struct {
		create *DimensionCreate
	}

	// DimensionUpsert is the "OnConflict" setter.
	DimensionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DimensionUpsert) SetUpdatedAt(v time.Time) *DimensionUpsert {
	u.Set(dimension.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateUpdatedAt() *DimensionUpsert {
	u.SetExcluded(dimension.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DimensionUpsert) SetDeletedAt(v time.Time) *DimensionUpsert {
	u.Set(dimension.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateDeletedAt() *DimensionUpsert {
	u.SetExcluded(dimension.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DimensionUpsert) ClearDeletedAt() *DimensionUpsert {
	u.SetNull(dimension.FieldDeletedAt)
	return u
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *DimensionUpsert) SetQuestionnaireID(v uuid.UUID) *DimensionUpsert {
	u.Set(dimension.FieldQuestionnaireID, v)
	return u
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateQuestionnaireID() *DimensionUpsert {
	u.SetExcluded(dimension.FieldQuestionnaireID)
	return u
}

// SetName sets the "name" field.
func (u *DimensionUpsert) SetName(v string) *DimensionUpsert {
	u.Set(dimension.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateName() *DimensionUpsert {
	u.SetExcluded(dimension.FieldName)
	return u
}

// SetWeight sets the "weight" field.
func (u *DimensionUpsert) SetWeight(v float64) *DimensionUpsert {
	u.Set(dimension.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateWeight() *DimensionUpsert {
	u.SetExcluded(dimension.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *DimensionUpsert) AddWeight(v float64) *DimensionUpsert {
	u.Add(dimension.FieldWeight, v)
	return u
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (u *DimensionUpsert) SetIsBasicInfo(v bool) *DimensionUpsert {
	u.Set(dimension.FieldIsBasicInfo, v)
	return u
}

// UpdateIsBasicInfo sets the "is_basic_info" field to the value that was provided on create.
func (u *DimensionUpsert) UpdateIsBasicInfo() *DimensionUpsert {
	u.SetExcluded(dimension.FieldIsBasicInfo)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Dimension.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dimension.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DimensionUpsertOne) UpdateNewValues() *DimensionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dimension.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dimension.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dimension.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DimensionUpsertOne) Ignore() *DimensionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DimensionUpsertOne) DoNothing() *DimensionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DimensionCreate.OnConflict
// documentation for more info.
func (u *DimensionUpsertOne) Update(set func(*DimensionUpsert)) *DimensionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DimensionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DimensionUpsertOne) SetUpdatedAt(v time.Time) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateUpdatedAt() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DimensionUpsertOne) SetDeletedAt(v time.Time) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateDeletedAt() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DimensionUpsertOne) ClearDeletedAt() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *DimensionUpsertOne) SetQuestionnaireID(v uuid.UUID) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateQuestionnaireID() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetName sets the "name" field.
func (u *DimensionUpsertOne) SetName(v string) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateName() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateName()
	})
}

// SetWeight sets the "weight" field.
func (u *DimensionUpsertOne) SetWeight(v float64) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *DimensionUpsertOne) AddWeight(v float64) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateWeight() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateWeight()
	})
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (u *DimensionUpsertOne) SetIsBasicInfo(v bool) *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.SetIsBasicInfo(v)
	})
}

// UpdateIsBasicInfo sets the "is_basic_info" field to the value that was provided on create.
func (u *DimensionUpsertOne) UpdateIsBasicInfo() *DimensionUpsertOne {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateIsBasicInfo()
	})
}

// Exec executes the query.
func (u *DimensionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DimensionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DimensionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DimensionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DimensionUpsertOne.ID is not supported by MySQL driver. Use DimensionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DimensionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DimensionCreateBulk is the builder for creating many Dimension entities in bulk.
type DimensionCreateBulk struct {
	config
	err      error
	builders []*DimensionCreate
	conflict []sql.ConflictOption
}

// Save creates the Dimension entities in the database.
func (_c *DimensionCreateBulk) Save(ctx context.Context) ([]*Dimension, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dimension, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DimensionMutation)
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
func (_c *DimensionCreateBulk) SaveX(ctx context.Context) []*Dimension {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dimension.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DimensionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DimensionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DimensionUpsertBulk {
	_c.conflict = opts
	return &DimensionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dimension.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DimensionCreateBulk) OnConflictColumns(columns ...string) *DimensionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DimensionUpsertBulk{
		create: _c,
	}
}

// DimensionUpsertBulk is the builder for "upsert"-ing
// a bulk of Dimension nodes.
type DimensionUpsertBulk struct {
	create *DimensionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Dimension.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dimension.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DimensionUpsertBulk) UpdateNewValues() *DimensionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dimension.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dimension.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dimension.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DimensionUpsertBulk) Ignore() *DimensionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DimensionUpsertBulk) DoNothing() *DimensionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DimensionCreateBulk.OnConflict
// documentation for more info.
func (u *DimensionUpsertBulk) Update(set func(*DimensionUpsert)) *DimensionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DimensionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DimensionUpsertBulk) SetUpdatedAt(v time.Time) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateUpdatedAt() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DimensionUpsertBulk) SetDeletedAt(v time.Time) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateDeletedAt() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DimensionUpsertBulk) ClearDeletedAt() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (u *DimensionUpsertBulk) SetQuestionnaireID(v uuid.UUID) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetQuestionnaireID(v)
	})
}

// UpdateQuestionnaireID sets the "questionnaire_id" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateQuestionnaireID() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateQuestionnaireID()
	})
}

// SetName sets the "name" field.
func (u *DimensionUpsertBulk) SetName(v string) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateName() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateName()
	})
}

// SetWeight sets the "weight" field.
func (u *DimensionUpsertBulk) SetWeight(v float64) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *DimensionUpsertBulk) AddWeight(v float64) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateWeight() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateWeight()
	})
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (u *DimensionUpsertBulk) SetIsBasicInfo(v bool) *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.SetIsBasicInfo(v)
	})
}

// UpdateIsBasicInfo sets the "is_basic_info" field to the value that was provided on create.
func (u *DimensionUpsertBulk) UpdateIsBasicInfo() *DimensionUpsertBulk {
	return u.Update(func(s *DimensionUpsert) {
		s.UpdateIsBasicInfo()
	})
}

// Exec executes the query.
func (u *DimensionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DimensionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DimensionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DimensionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
