// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
)

// AssessmentLevelQuery is the builder for querying AssessmentLevel entities.
type AssessmentLevelQuery struct {
	config
	ctx               *QueryContext
	order             []assessmentlevel.OrderOption
	inters            []Interceptor
	predicates        []predicate.AssessmentLevel
	withQuestionnaire *QuestionnaireQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssessmentLevelQuery builder.
func (_q *AssessmentLevelQuery) Where(ps ...predicate.AssessmentLevel) *AssessmentLevelQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssessmentLevelQuery) Limit(limit int) *AssessmentLevelQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssessmentLevelQuery) Offset(offset int) *AssessmentLevelQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssessmentLevelQuery) Unique(unique bool) *AssessmentLevelQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssessmentLevelQuery) Order(o ...assessmentlevel.OrderOption) *AssessmentLevelQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryQuestionnaire chains the current query on the "questionnaire" edge.
func (_q *AssessmentLevelQuery) QueryQuestionnaire() *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentlevel.Table, assessmentlevel.FieldID, selector),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentlevel.QuestionnaireTable, assessmentlevel.QuestionnaireColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AssessmentLevel entity from the query.
// Returns a *NotFoundError when no AssessmentLevel was found.
func (_q *AssessmentLevelQuery) First(ctx context.Context) (*AssessmentLevel, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assessmentlevel.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssessmentLevelQuery) FirstX(ctx context.Context) *AssessmentLevel {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AssessmentLevel ID from the query.
// Returns a *NotFoundError when no AssessmentLevel ID was found.
func (_q *AssessmentLevelQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assessmentlevel.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssessmentLevelQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AssessmentLevel entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AssessmentLevel entity is found.
// Returns a *NotFoundError when no AssessmentLevel entities are found.
func (_q *AssessmentLevelQuery) Only(ctx context.Context) (*AssessmentLevel, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assessmentlevel.Label}
	default:
		return nil, &NotSingularError{assessmentlevel.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssessmentLevelQuery) OnlyX(ctx context.Context) *AssessmentLevel {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AssessmentLevel ID in the query.
// Returns a *NotSingularError when more than one AssessmentLevel ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssessmentLevelQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assessmentlevel.Label}
	default:
		err = &NotSingularError{assessmentlevel.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssessmentLevelQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AssessmentLevels.
func (_q *AssessmentLevelQuery) All(ctx context.Context) ([]*AssessmentLevel, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AssessmentLevel, *AssessmentLevelQuery]()
	return withInterceptors[[]*AssessmentLevel](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssessmentLevelQuery) AllX(ctx context.Context) []*AssessmentLevel {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AssessmentLevel IDs.
func (_q *AssessmentLevelQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assessmentlevel.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssessmentLevelQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssessmentLevelQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssessmentLevelQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssessmentLevelQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssessmentLevelQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AssessmentLevelQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssessmentLevelQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssessmentLevelQuery) Clone() *AssessmentLevelQuery {
	if _q == nil {
		return nil
	}
	return &AssessmentLevelQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]assessmentlevel.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.AssessmentLevel{}, _q.predicates...),
		withQuestionnaire: _q.withQuestionnaire.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithQuestionnaire tells the query-builder to eager-load the nodes that are connected to
// the "questionnaire" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentLevelQuery) WithQuestionnaire(opts ...func(*QuestionnaireQuery)) *AssessmentLevelQuery {
	query := (&QuestionnaireClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestionnaire = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AssessmentLevel.Query().
//		GroupBy(assessmentlevel.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *AssessmentLevelQuery) GroupBy(field string, fields ...string) *AssessmentLevelGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssessmentLevelGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assessmentlevel.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.AssessmentLevel.Query().
//		Select(assessmentlevel.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *AssessmentLevelQuery) Select(fields ...string) *AssessmentLevelSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssessmentLevelSelect{AssessmentLevelQuery: _q}
	sbuild.label = assessmentlevel.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssessmentLevelSelect configured with the given aggregations.
func (_q *AssessmentLevelQuery) Aggregate(fns ...AggregateFunc) *AssessmentLevelSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssessmentLevelQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !assessmentlevel.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AssessmentLevelQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AssessmentLevel, error) {
	var (
		nodes       = []*AssessmentLevel{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withQuestionnaire != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AssessmentLevel).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AssessmentLevel{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withQuestionnaire; query != nil {
		if err := _q.loadQuestionnaire(ctx, query, nodes, nil,
			func(n *AssessmentLevel, e *Questionnaire) { n.Edges.Questionnaire = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssessmentLevelQuery) loadQuestionnaire(ctx context.Context, query *QuestionnaireQuery, nodes []*AssessmentLevel, init func(*AssessmentLevel), assign func(*AssessmentLevel, *Questionnaire)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AssessmentLevel)
	for i := range nodes {
		fk := nodes[i].QuestionnaireID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(questionnaire.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "questionnaire_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AssessmentLevelQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssessmentLevelQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assessmentlevel.Table, assessmentlevel.Columns, sqlgraph.NewFieldSpec(assessmentlevel.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentlevel.FieldID)
		for i := range fields {
			if fields[i] != assessmentlevel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withQuestionnaire != nil {
			_spec.Node.AddColumnOnce(assessmentlevel.FieldQuestionnaireID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AssessmentLevelQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assessmentlevel.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assessmentlevel.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AssessmentLevelGroupBy is the group-by builder for AssessmentLevel entities.
type AssessmentLevelGroupBy struct {
	selector
	build *AssessmentLevelQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssessmentLevelGroupBy) Aggregate(fns ...AggregateFunc) *AssessmentLevelGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssessmentLevelGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentLevelQuery, *AssessmentLevelGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssessmentLevelGroupBy) sqlScan(ctx context.Context, root *AssessmentLevelQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AssessmentLevelSelect is the builder for selecting fields of AssessmentLevel entities.
type AssessmentLevelSelect struct {
	*AssessmentLevelQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssessmentLevelSelect) Aggregate(fns ...AggregateFunc) *AssessmentLevelSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssessmentLevelSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentLevelQuery, *AssessmentLevelSelect](ctx, _s.AssessmentLevelQuery, _s, _s.inters, v)
}

func (_s *AssessmentLevelSelect) sqlScan(ctx context.Context, root *AssessmentLevelQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
