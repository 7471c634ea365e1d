// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// TouchLogQuery is the builder for querying TouchLog entities.
type TouchLogQuery struct {
	config
	ctx        *QueryContext
	order      []touchlog.OrderOption
	inters     []Interceptor
	predicates []predicate.TouchLog
	withTouch  *TouchQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TouchLogQuery builder.
func (_q *TouchLogQuery) Where(ps ...predicate.TouchLog) *TouchLogQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TouchLogQuery) Limit(limit int) *TouchLogQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TouchLogQuery) Offset(offset int) *TouchLogQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TouchLogQuery) Unique(unique bool) *TouchLogQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TouchLogQuery) Order(o ...touchlog.OrderOption) *TouchLogQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTouch chains the current query on the "touch" edge.
func (_q *TouchLogQuery) QueryTouch() *TouchQuery {
	query := (&TouchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(touchlog.Table, touchlog.FieldID, selector),
			sqlgraph.To(touch.Table, touch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, touchlog.TouchTable, touchlog.TouchColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TouchLog entity from the query.
// Returns a *NotFoundError when no TouchLog was found.
func (_q *TouchLogQuery) First(ctx context.Context) (*TouchLog, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{touchlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TouchLogQuery) FirstX(ctx context.Context) *TouchLog {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TouchLog ID from the query.
// Returns a *NotFoundError when no TouchLog ID was found.
func (_q *TouchLogQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{touchlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TouchLogQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TouchLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TouchLog entity is found.
// Returns a *NotFoundError when no TouchLog entities are found.
func (_q *TouchLogQuery) Only(ctx context.Context) (*TouchLog, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{touchlog.Label}
	default:
		return nil, &NotSingularError{touchlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TouchLogQuery) OnlyX(ctx context.Context) *TouchLog {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TouchLog ID in the query.
// Returns a *NotSingularError when more than one TouchLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TouchLogQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{touchlog.Label}
	default:
		err = &NotSingularError{touchlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TouchLogQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TouchLogs.
func (_q *TouchLogQuery) All(ctx context.Context) ([]*TouchLog, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TouchLog, *TouchLogQuery]()
	return withInterceptors[[]*TouchLog](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TouchLogQuery) AllX(ctx context.Context) []*TouchLog {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TouchLog IDs.
func (_q *TouchLogQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(touchlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TouchLogQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TouchLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TouchLogQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TouchLogQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TouchLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TouchLogQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TouchLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TouchLogQuery) Clone() *TouchLogQuery {
	if _q == nil {
		return nil
	}
	return &TouchLogQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]touchlog.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TouchLog{}, _q.predicates...),
		withTouch:  _q.withTouch.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTouch tells the query-builder to eager-load the nodes that are connected to
// the "touch" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TouchLogQuery) WithTouch(opts ...func(*TouchQuery)) *TouchLogQuery {
	query := (&TouchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTouch = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TouchID int `json:"touch_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TouchLog.Query().
//		GroupBy(touchlog.FieldTouchID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TouchLogQuery) GroupBy(field string, fields ...string) *TouchLogGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TouchLogGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = touchlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TouchID int `json:"touch_id,omitempty"`
//	}
//
//	client.TouchLog.Query().
//		Select(touchlog.FieldTouchID).
//		Scan(ctx, &v)
func (_q *TouchLogQuery) Select(fields ...string) *TouchLogSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TouchLogSelect{TouchLogQuery: _q}
	sbuild.label = touchlog.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TouchLogSelect configured with the given aggregations.
func (_q *TouchLogQuery) Aggregate(fns ...AggregateFunc) *TouchLogSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TouchLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !touchlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *TouchLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TouchLog, error) {
	var (
		nodes       = []*TouchLog{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTouch != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TouchLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TouchLog{config: _q.config}
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
	if query := _q.withTouch; query != nil {
		if err := _q.loadTouch(ctx, query, nodes, nil,
			func(n *TouchLog, e *Touch) { n.Edges.Touch = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TouchLogQuery) loadTouch(ctx context.Context, query *TouchQuery, nodes []*TouchLog, init func(*TouchLog), assign func(*TouchLog, *Touch)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*TouchLog)
	for i := range nodes {
		fk := nodes[i].TouchID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(touch.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "touch_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TouchLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TouchLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(touchlog.Table, touchlog.Columns, sqlgraph.NewFieldSpec(touchlog.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, touchlog.FieldID)
		for i := range fields {
			if fields[i] != touchlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTouch != nil {
			_spec.Node.AddColumnOnce(touchlog.FieldTouchID)
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

func (_q *TouchLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(touchlog.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = touchlog.Columns
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

// TouchLogGroupBy is the group-by builder for TouchLog entities.
type TouchLogGroupBy struct {
	selector
	build *TouchLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TouchLogGroupBy) Aggregate(fns ...AggregateFunc) *TouchLogGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TouchLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TouchLogQuery, *TouchLogGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TouchLogGroupBy) sqlScan(ctx context.Context, root *TouchLogQuery, v any) error {
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

// TouchLogSelect is the builder for selecting fields of TouchLog entities.
type TouchLogSelect struct {
	*TouchLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TouchLogSelect) Aggregate(fns ...AggregateFunc) *TouchLogSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TouchLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TouchLogQuery, *TouchLogSelect](ctx, _s.TouchLogQuery, _s, _s.inters, v)
}

func (_s *TouchLogSelect) sqlScan(ctx context.Context, root *TouchLogQuery, v any) error {
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
