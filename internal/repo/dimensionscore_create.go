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
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
)

// DimensionScoreCreate is the builder for creating a DimensionScore entity.
type DimensionScoreCreate struct {
	config
	mutation *DimensionScoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DimensionScoreCreate) SetCreatedAt(v time.Time) *DimensionScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DimensionScoreCreate) SetNillableCreatedAt(v *time.Time) *DimensionScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *DimensionScoreCreate) SetSubmissionID(v uuid.UUID) *DimensionScoreCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetDimensionID sets the "dimension_id" field.
func (_c *DimensionScoreCreate) SetDimensionID(v uuid.UUID) *DimensionScoreCreate {
	_c.mutation.SetDimensionID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *DimensionScoreCreate) SetScore(v float64) *DimensionScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *DimensionScoreCreate) SetWeight(v float64) *DimensionScoreCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetAssessmentLevel sets the "assessment_level" field.
func (_c *DimensionScoreCreate) SetAssessmentLevel(v string) *DimensionScoreCreate {
	_c.mutation.SetAssessmentLevel(v)
	return _c
}

// SetNillableAssessmentLevel sets the "assessment_level" field if the given value is not nil.
func (_c *DimensionScoreCreate) SetNillableAssessmentLevel(v *string) *DimensionScoreCreate {
	if v != nil {
		_c.SetAssessmentLevel(*v)
	}
	return _c
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (_c *DimensionScoreCreate) SetAssessmentOpinion(v string) *DimensionScoreCreate {
	_c.mutation.SetAssessmentOpinion(v)
	return _c
}

// SetNillableAssessmentOpinion sets the "assessment_opinion" field if the given value is not nil.
func (_c *DimensionScoreCreate) SetNillableAssessmentOpinion(v *string) *DimensionScoreCreate {
	if v != nil {
		_c.SetAssessmentOpinion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DimensionScoreCreate) SetID(v uuid.UUID) *DimensionScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DimensionScoreCreate) SetNillableID(v *uuid.UUID) *DimensionScoreCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *DimensionScoreCreate) SetSubmission(v *Submission) *DimensionScoreCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the DimensionScoreMutation object of the builder.
func (_c *DimensionScoreCreate) Mutation() *DimensionScoreMutation {
	return _c.mutation
}

// Save creates the DimensionScore in the database.
func (_c *DimensionScoreCreate) Save(ctx context.Context) (*DimensionScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DimensionScoreCreate) SaveX(ctx context.Context) *DimensionScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DimensionScoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dimensionscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dimensionscore.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DimensionScoreCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DimensionScore.created_at"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`repo: missing required field "DimensionScore.submission_id"`)}
	}
	if _, ok := _c.mutation.DimensionID(); !ok {
		return &ValidationError{Name: "dimension_id", err: errors.New(`repo: missing required field "DimensionScore.dimension_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`repo: missing required field "DimensionScore.score"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`repo: missing required field "DimensionScore.weight"`)}
	}
	if v, ok := _c.mutation.AssessmentLevel(); ok {
		if err := dimensionscore.AssessmentLevelValidator(v); err != nil {
			return &ValidationError{Name: "assessment_level", err: fmt.Errorf(`repo: validator failed for field "DimensionScore.assessment_level": %w`, err)}
		}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`repo: missing required edge "DimensionScore.submission"`)}
	}
	return nil
}

func (_c *DimensionScoreCreate) sqlSave(ctx context.Context) (*DimensionScore, error) {
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

func (_c *DimensionScoreCreate) createSpec() (*DimensionScore, *sqlgraph.CreateSpec) {
	var (
		_node = &DimensionScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dimensionscore.Table, sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dimensionscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DimensionID(); ok {
		_spec.SetField(dimensionscore.FieldDimensionID, field.TypeUUID, value)
		_node.DimensionID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(dimensionscore.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(dimensionscore.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.AssessmentLevel(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentLevel, field.TypeString, value)
		_node.AssessmentLevel = &value
	}
	if value, ok := _c.mutation.AssessmentOpinion(); ok {
		_spec.SetField(dimensionscore.FieldAssessmentOpinion, field.TypeString, value)
		_node.AssessmentOpinion = &value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DimensionScore.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DimensionScoreUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DimensionScoreCreate) OnConflict(opts ...sql.ConflictOption) *DimensionScoreUpsertOne {
	_c.conflict = opts
	return &DimensionScoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DimensionScoreCreate) OnConflictColumns(columns ...string) *DimensionScoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DimensionScoreUpsertOne{
		create: _c,
	}
}

type (
	// DimensionScoreUpsertOne is the builder for "upsert"-ing
	//  one DimensionScore node.
	DimensionScoreUpsertOne struct {
		create *DimensionScoreCreate
	}

	// DimensionScoreUpsert is the "OnConflict" setter.
	DimensionScoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubmissionID sets the "submission_id" field.
func (u *DimensionScoreUpsert) SetSubmissionID(v uuid.UUID) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldSubmissionID, v)
	return u
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateSubmissionID() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldSubmissionID)
	return u
}

// SetDimensionID sets the "dimension_id" field.
func (u *DimensionScoreUpsert) SetDimensionID(v uuid.UUID) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldDimensionID, v)
	return u
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateDimensionID() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldDimensionID)
	return u
}

// SetScore sets the "score" field.
func (u *DimensionScoreUpsert) SetScore(v float64) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateScore() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *DimensionScoreUpsert) AddScore(v float64) *DimensionScoreUpsert {
	u.Add(dimensionscore.FieldScore, v)
	return u
}

// SetWeight sets the "weight" field.
func (u *DimensionScoreUpsert) SetWeight(v float64) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateWeight() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *DimensionScoreUpsert) AddWeight(v float64) *DimensionScoreUpsert {
	u.Add(dimensionscore.FieldWeight, v)
	return u
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *DimensionScoreUpsert) SetAssessmentLevel(v string) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldAssessmentLevel, v)
	return u
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateAssessmentLevel() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldAssessmentLevel)
	return u
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *DimensionScoreUpsert) ClearAssessmentLevel() *DimensionScoreUpsert {
	u.SetNull(dimensionscore.FieldAssessmentLevel)
	return u
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *DimensionScoreUpsert) SetAssessmentOpinion(v string) *DimensionScoreUpsert {
	u.Set(dimensionscore.FieldAssessmentOpinion, v)
	return u
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *DimensionScoreUpsert) UpdateAssessmentOpinion() *DimensionScoreUpsert {
	u.SetExcluded(dimensionscore.FieldAssessmentOpinion)
	return u
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *DimensionScoreUpsert) ClearAssessmentOpinion() *DimensionScoreUpsert {
	u.SetNull(dimensionscore.FieldAssessmentOpinion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dimensionscore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DimensionScoreUpsertOne) UpdateNewValues() *DimensionScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dimensionscore.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dimensionscore.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DimensionScoreUpsertOne) Ignore() *DimensionScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DimensionScoreUpsertOne) DoNothing() *DimensionScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DimensionScoreCreate.OnConflict
// documentation for more info.
func (u *DimensionScoreUpsertOne) Update(set func(*DimensionScoreUpsert)) *DimensionScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DimensionScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *DimensionScoreUpsertOne) SetSubmissionID(v uuid.UUID) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateSubmissionID() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *DimensionScoreUpsertOne) SetDimensionID(v uuid.UUID) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateDimensionID() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateDimensionID()
	})
}

// SetScore sets the "score" field.
func (u *DimensionScoreUpsertOne) SetScore(v float64) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *DimensionScoreUpsertOne) AddScore(v float64) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateScore() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateScore()
	})
}

// SetWeight sets the "weight" field.
func (u *DimensionScoreUpsertOne) SetWeight(v float64) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *DimensionScoreUpsertOne) AddWeight(v float64) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateWeight() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateWeight()
	})
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *DimensionScoreUpsertOne) SetAssessmentLevel(v string) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetAssessmentLevel(v)
	})
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateAssessmentLevel() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateAssessmentLevel()
	})
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *DimensionScoreUpsertOne) ClearAssessmentLevel() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.ClearAssessmentLevel()
	})
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *DimensionScoreUpsertOne) SetAssessmentOpinion(v string) *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetAssessmentOpinion(v)
	})
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *DimensionScoreUpsertOne) UpdateAssessmentOpinion() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateAssessmentOpinion()
	})
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *DimensionScoreUpsertOne) ClearAssessmentOpinion() *DimensionScoreUpsertOne {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.ClearAssessmentOpinion()
	})
}

// Exec executes the query.
func (u *DimensionScoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DimensionScoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DimensionScoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DimensionScoreUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DimensionScoreUpsertOne.ID is not supported by MySQL driver. Use DimensionScoreUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DimensionScoreUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DimensionScoreCreateBulk is the builder for creating many DimensionScore entities in bulk.
type DimensionScoreCreateBulk struct {
	config
	err      error
	builders []*DimensionScoreCreate
	conflict []sql.ConflictOption
}

// Save creates the DimensionScore entities in the database.
func (_c *DimensionScoreCreateBulk) Save(ctx context.Context) ([]*DimensionScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DimensionScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DimensionScoreMutation)
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
func (_c *DimensionScoreCreateBulk) SaveX(ctx context.Context) []*DimensionScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DimensionScore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DimensionScoreUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DimensionScoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *DimensionScoreUpsertBulk {
	_c.conflict = opts
	return &DimensionScoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DimensionScoreCreateBulk) OnConflictColumns(columns ...string) *DimensionScoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DimensionScoreUpsertBulk{
		create: _c,
	}
}

// DimensionScoreUpsertBulk is the builder for "upsert"-ing
// a bulk of DimensionScore nodes.
type DimensionScoreUpsertBulk struct {
	create *DimensionScoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dimensionscore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DimensionScoreUpsertBulk) UpdateNewValues() *DimensionScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dimensionscore.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dimensionscore.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DimensionScore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DimensionScoreUpsertBulk) Ignore() *DimensionScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DimensionScoreUpsertBulk) DoNothing() *DimensionScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DimensionScoreCreateBulk.OnConflict
// documentation for more info.
func (u *DimensionScoreUpsertBulk) Update(set func(*DimensionScoreUpsert)) *DimensionScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DimensionScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubmissionID sets the "submission_id" field.
func (u *DimensionScoreUpsertBulk) SetSubmissionID(v uuid.UUID) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetSubmissionID(v)
	})
}

// UpdateSubmissionID sets the "submission_id" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateSubmissionID() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateSubmissionID()
	})
}

// SetDimensionID sets the "dimension_id" field.
func (u *DimensionScoreUpsertBulk) SetDimensionID(v uuid.UUID) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetDimensionID(v)
	})
}

// UpdateDimensionID sets the "dimension_id" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateDimensionID() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateDimensionID()
	})
}

// SetScore sets the "score" field.
func (u *DimensionScoreUpsertBulk) SetScore(v float64) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *DimensionScoreUpsertBulk) AddScore(v float64) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateScore() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateScore()
	})
}

// SetWeight sets the "weight" field.
func (u *DimensionScoreUpsertBulk) SetWeight(v float64) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *DimensionScoreUpsertBulk) AddWeight(v float64) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateWeight() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateWeight()
	})
}

// SetAssessmentLevel sets the "assessment_level" field.
func (u *DimensionScoreUpsertBulk) SetAssessmentLevel(v string) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetAssessmentLevel(v)
	})
}

// UpdateAssessmentLevel sets the "assessment_level" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateAssessmentLevel() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateAssessmentLevel()
	})
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (u *DimensionScoreUpsertBulk) ClearAssessmentLevel() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.ClearAssessmentLevel()
	})
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (u *DimensionScoreUpsertBulk) SetAssessmentOpinion(v string) *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.SetAssessmentOpinion(v)
	})
}

// UpdateAssessmentOpinion sets the "assessment_opinion" field to the value that was provided on create.
func (u *DimensionScoreUpsertBulk) UpdateAssessmentOpinion() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.UpdateAssessmentOpinion()
	})
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (u *DimensionScoreUpsertBulk) ClearAssessmentOpinion() *DimensionScoreUpsertBulk {
	return u.Update(func(s *DimensionScoreUpsert) {
		s.ClearAssessmentOpinion()
	})
}

// Exec executes the query.
func (u *DimensionScoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DimensionScoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DimensionScoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DimensionScoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
