// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// AssessmentLevelDelete is the builder for deleting a AssessmentLevel entity.
type AssessmentLevelDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentLevelMutation
}

// Where appends a list predicates to the AssessmentLevelDelete builder.
func (_d *AssessmentLevelDelete) Where(ps ...predicate.AssessmentLevel) *AssessmentLevelDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentLevelDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentLevelDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentLevelDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentlevel.Table, sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID))
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

// AssessmentLevelDeleteOne is the builder for deleting a single AssessmentLevel entity.
type AssessmentLevelDeleteOne struct {
	_d *AssessmentLevelDelete
}

// Where appends a list predicates to the AssessmentLevelDelete builder.
func (_d *AssessmentLevelDeleteOne) Where(ps ...predicate.AssessmentLevel) *AssessmentLevelDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentLevelDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentlevel.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentLevelDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
