// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// DimensionScoreDelete is the builder for deleting a DimensionScore entity.
type DimensionScoreDelete struct {
	config
	hooks    []Hook
	mutation *DimensionScoreMutation
}

// Where appends a list predicates to the DimensionScoreDelete builder.
func (_d *DimensionScoreDelete) Where(ps ...predicate.DimensionScore) *DimensionScoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DimensionScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DimensionScoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DimensionScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dimensionscore.Table, sqlgraph.NewFieldSpec(dimensionscore.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DimensionScoreDeleteOne is the builder for deleting a single DimensionScore entity.
type DimensionScoreDeleteOne struct {
	_d *DimensionScoreDelete
}

// Where appends a list predicates to the DimensionScoreDelete builder.
func (_d *DimensionScoreDeleteOne) Where(ps ...predicate.DimensionScore) *DimensionScoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DimensionScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dimensionscore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DimensionScoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
