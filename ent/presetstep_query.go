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
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
)

// PresetStepQuery is the builder for querying PresetStep entities.
type PresetStepQuery struct {
	config
	ctx        *QueryContext
	order      []presetstep.OrderOption
	inters     []Interceptor
	predicates []predicate.PresetStep
	withPreset *PresetQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PresetStepQuery builder.
func (_q *PresetStepQuery) Where(ps ...predicate.PresetStep) *PresetStepQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PresetStepQuery) Limit(limit int) *PresetStepQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PresetStepQuery) Offset(offset int) *PresetStepQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PresetStepQuery) Unique(unique bool) *PresetStepQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PresetStepQuery) Order(o ...presetstep.OrderOption) *PresetStepQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPreset chains the current query on the "preset" edge.
func (_q *PresetStepQuery) QueryPreset() *PresetQuery {
	query := (&PresetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(presetstep.Table, presetstep.FieldID, selector),
			sqlgraph.To(preset.Table, preset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, presetstep.PresetTable, presetstep.PresetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PresetStep entity from the query.
// Returns a *NotFoundError when no PresetStep was found.
func (_q *PresetStepQuery) First(ctx context.Context) (*PresetStep, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{presetstep.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PresetStepQuery) FirstX(ctx context.Context) *PresetStep {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PresetStep ID from the query.
// Returns a *NotFoundError when no PresetStep ID was found.
func (_q *PresetStepQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{presetstep.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PresetStepQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PresetStep entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PresetStep entity is found.
// Returns a *NotFoundError when no PresetStep entities are found.
func (_q *PresetStepQuery) Only(ctx context.Context) (*PresetStep, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{presetstep.Label}
	default:
		return nil, &NotSingularError{presetstep.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PresetStepQuery) OnlyX(ctx context.Context) *PresetStep {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PresetStep ID in the query.
// Returns a *NotSingularError when more than one PresetStep ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PresetStepQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{presetstep.Label}
	default:
		err = &NotSingularError{presetstep.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PresetStepQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PresetSteps.
func (_q *PresetStepQuery) All(ctx context.Context) ([]*PresetStep, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PresetStep, *PresetStepQuery]()
	return withInterceptors[[]*PresetStep](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PresetStepQuery) AllX(ctx context.Context) []*PresetStep {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PresetStep IDs.
func (_q *PresetStepQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(presetstep.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PresetStepQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PresetStepQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PresetStepQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PresetStepQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PresetStepQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PresetStepQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PresetStepQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PresetStepQuery) Clone() *PresetStepQuery {
	if _q == nil {
		return nil
	}
	return &PresetStepQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]presetstep.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PresetStep{}, _q.predicates...),
		withPreset: _q.withPreset.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPreset tells the query-builder to eager-load the nodes that are connected to
// the "preset" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PresetStepQuery) WithPreset(opts ...func(*PresetQuery)) *PresetStepQuery {
	query := (&PresetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPreset = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PresetID int `json:"preset_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PresetStep.Query().
//		GroupBy(presetstep.FieldPresetID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PresetStepQuery) GroupBy(field string, fields ...string) *PresetStepGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PresetStepGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = presetstep.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PresetID int `json:"preset_id,omitempty"`
//	}
//
//	client.PresetStep.Query().
//		Select(presetstep.FieldPresetID).
//		Scan(ctx, &v)
func (_q *PresetStepQuery) Select(fields ...string) *PresetStepSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PresetStepSelect{PresetStepQuery: _q}
	sbuild.label = presetstep.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PresetStepSelect configured with the given aggregations.
func (_q *PresetStepQuery) Aggregate(fns ...AggregateFunc) *PresetStepSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PresetStepQuery) prepareQuery(ctx context.Context) error {
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
		if !presetstep.ValidColumn(f) {
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

func (_q *PresetStepQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PresetStep, error) {
	var (
		nodes       = []*PresetStep{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPreset != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PresetStep).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PresetStep{config: _q.config}
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
	if query := _q.withPreset; query != nil {
		if err := _q.loadPreset(ctx, query, nodes, nil,
			func(n *PresetStep, e *Preset) { n.Edges.Preset = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PresetStepQuery) loadPreset(ctx context.Context, query *PresetQuery, nodes []*PresetStep, init func(*PresetStep), assign func(*PresetStep, *Preset)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PresetStep)
	for i := range nodes {
		fk := nodes[i].PresetID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(preset.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "preset_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PresetStepQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PresetStepQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(presetstep.Table, presetstep.Columns, sqlgraph.NewFieldSpec(presetstep.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, presetstep.FieldID)
		for i := range fields {
			if fields[i] != presetstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPreset != nil {
			_spec.Node.AddColumnOnce(presetstep.FieldPresetID)
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

func (_q *PresetStepQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(presetstep.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = presetstep.Columns
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

// PresetStepGroupBy is the group-by builder for PresetStep entities.
type PresetStepGroupBy struct {
	selector
	build *PresetStepQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PresetStepGroupBy) Aggregate(fns ...AggregateFunc) *PresetStepGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PresetStepGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PresetStepQuery, *PresetStepGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PresetStepGroupBy) sqlScan(ctx context.Context, root *PresetStepQuery, v any) error {
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

// PresetStepSelect is the builder for selecting fields of PresetStep entities.
type PresetStepSelect struct {
	*PresetStepQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PresetStepSelect) Aggregate(fns ...AggregateFunc) *PresetStepSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PresetStepSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PresetStepQuery, *PresetStepSelect](ctx, _s.PresetStepQuery, _s, _s.inters, v)
}

func (_s *PresetStepSelect) sqlScan(ctx context.Context, root *PresetStepQuery, v any) error {
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
