// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
)

// BranchRuleDelete is the builder for deleting a BranchRule entity.
type BranchRuleDelete struct {
	config
	hooks    []Hook
	mutation *BranchRuleMutation
}

// Where appends a list predicates to the BranchRuleDelete builder.
func (_d *BranchRuleDelete) Where(ps ...predicate.BranchRule) *BranchRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BranchRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BranchRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BranchRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(branchrule.Table, sqlgraph.NewFieldSpec(branchrule.FieldID, field.TypeUUID))
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

// BranchRuleDeleteOne is the builder for deleting a single BranchRule entity.
type BranchRuleDeleteOne struct {
	_d *BranchRuleDelete
}

// Where appends a list predicates to the BranchRuleDelete builder.
func (_d *BranchRuleDeleteOne) Where(ps ...predicate.BranchRule) *BranchRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BranchRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{branchrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BranchRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
