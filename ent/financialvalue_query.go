// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/predicate"
)

// FinancialValueQuery is the builder for querying FinancialValue entities.
type FinancialValueQuery struct {
	config
	ctx         *QueryContext
	order       []financialvalue.OrderOption
	inters      []Interceptor
	predicates  []predicate.FinancialValue
	withCompany *CompanyQuery
	withConcept *FinancialConceptQuery
	withFiling  *FilingQuery
	modifiers   []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FinancialValueQuery builder.
func (_q *FinancialValueQuery) Where(ps ...predicate.FinancialValue) *FinancialValueQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FinancialValueQuery) Limit(limit int) *FinancialValueQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FinancialValueQuery) Offset(offset int) *FinancialValueQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FinancialValueQuery) Unique(unique bool) *FinancialValueQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FinancialValueQuery) Order(o ...financialvalue.OrderOption) *FinancialValueQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCompany chains the current query on the "company" edge.
func (_q *FinancialValueQuery) QueryCompany() *CompanyQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, selector),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.CompanyTable, financialvalue.CompanyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConcept chains the current query on the "concept" edge.
func (_q *FinancialValueQuery) QueryConcept() *FinancialConceptQuery {
	query := (&FinancialConceptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, selector),
			sqlgraph.To(financialconcept.Table, financialconcept.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.ConceptTable, financialvalue.ConceptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFiling chains the current query on the "filing" edge.
func (_q *FinancialValueQuery) QueryFiling() *FilingQuery {
	query := (&FilingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, selector),
			sqlgraph.To(filing.Table, filing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.FilingTable, financialvalue.FilingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FinancialValue entity from the query.
// Returns a *NotFoundError when no FinancialValue was found.
func (_q *FinancialValueQuery) First(ctx context.Context) (*FinancialValue, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{financialvalue.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FinancialValueQuery) FirstX(ctx context.Context) *FinancialValue {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FinancialValue ID from the query.
// Returns a *NotFoundError when no FinancialValue ID was found.
func (_q *FinancialValueQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{financialvalue.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FinancialValueQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FinancialValue entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FinancialValue entity is found.
// Returns a *NotFoundError when no FinancialValue entities are found.
func (_q *FinancialValueQuery) Only(ctx context.Context) (*FinancialValue, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{financialvalue.Label}
	default:
		return nil, &NotSingularError{financialvalue.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FinancialValueQuery) OnlyX(ctx context.Context) *FinancialValue {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FinancialValue ID in the query.
// Returns a *NotSingularError when more than one FinancialValue ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FinancialValueQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{financialvalue.Label}
	default:
		err = &NotSingularError{financialvalue.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FinancialValueQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FinancialValues.
func (_q *FinancialValueQuery) All(ctx context.Context) ([]*FinancialValue, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FinancialValue, *FinancialValueQuery]()
	return withInterceptors[[]*FinancialValue](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FinancialValueQuery) AllX(ctx context.Context) []*FinancialValue {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FinancialValue IDs.
func (_q *FinancialValueQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(financialvalue.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FinancialValueQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FinancialValueQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FinancialValueQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FinancialValueQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FinancialValueQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FinancialValueQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FinancialValueQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FinancialValueQuery) Clone() *FinancialValueQuery {
	if _q == nil {
		return nil
	}
	return &FinancialValueQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]financialvalue.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.FinancialValue{}, _q.predicates...),
		withCompany: _q.withCompany.Clone(),
		withConcept: _q.withConcept.Clone(),
		withFiling:  _q.withFiling.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCompany tells the query-builder to eager-load the nodes that are connected to
// the "company" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FinancialValueQuery) WithCompany(opts ...func(*CompanyQuery)) *FinancialValueQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCompany = query
	return _q
}

// WithConcept tells the query-builder to eager-load the nodes that are connected to
// the "concept" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FinancialValueQuery) WithConcept(opts ...func(*FinancialConceptQuery)) *FinancialValueQuery {
	query := (&FinancialConceptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConcept = query
	return _q
}

// WithFiling tells the query-builder to eager-load the nodes that are connected to
// the "filing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FinancialValueQuery) WithFiling(opts ...func(*FilingQuery)) *FinancialValueQuery {
	query := (&FilingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFiling = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FinancialValue.Query().
//		GroupBy(financialvalue.FieldCompanyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FinancialValueQuery) GroupBy(field string, fields ...string) *FinancialValueGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FinancialValueGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = financialvalue.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompanyID string `json:"company_id,omitempty"`
//	}
//
//	client.FinancialValue.Query().
//		Select(financialvalue.FieldCompanyID).
//		Scan(ctx, &v)
func (_q *FinancialValueQuery) Select(fields ...string) *FinancialValueSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FinancialValueSelect{FinancialValueQuery: _q}
	sbuild.label = financialvalue.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FinancialValueSelect configured with the given aggregations.
func (_q *FinancialValueQuery) Aggregate(fns ...AggregateFunc) *FinancialValueSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FinancialValueQuery) prepareQuery(ctx context.Context) error {
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
		if !financialvalue.ValidColumn(f) {
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

func (_q *FinancialValueQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FinancialValue, error) {
	var (
		nodes       = []*FinancialValue{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withCompany != nil,
			_q.withConcept != nil,
			_q.withFiling != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FinancialValue).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FinancialValue{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withCompany; query != nil {
		if err := _q.loadCompany(ctx, query, nodes, nil,
			func(n *FinancialValue, e *Company) { n.Edges.Company = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConcept; query != nil {
		if err := _q.loadConcept(ctx, query, nodes, nil,
			func(n *FinancialValue, e *FinancialConcept) { n.Edges.Concept = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFiling; query != nil {
		if err := _q.loadFiling(ctx, query, nodes, nil,
			func(n *FinancialValue, e *Filing) { n.Edges.Filing = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FinancialValueQuery) loadCompany(ctx context.Context, query *CompanyQuery, nodes []*FinancialValue, init func(*FinancialValue), assign func(*FinancialValue, *Company)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*FinancialValue)
	for i := range nodes {
		fk := nodes[i].CompanyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(company.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "company_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FinancialValueQuery) loadConcept(ctx context.Context, query *FinancialConceptQuery, nodes []*FinancialValue, init func(*FinancialValue), assign func(*FinancialValue, *FinancialConcept)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*FinancialValue)
	for i := range nodes {
		fk := nodes[i].ConceptID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(financialconcept.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "concept_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FinancialValueQuery) loadFiling(ctx context.Context, query *FilingQuery, nodes []*FinancialValue, init func(*FinancialValue), assign func(*FinancialValue, *Filing)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*FinancialValue)
	for i := range nodes {
		if nodes[i].FilingID == nil {
			continue
		}
		fk := *nodes[i].FilingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(filing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "filing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FinancialValueQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FinancialValueQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(financialvalue.Table, financialvalue.Columns, sqlgraph.NewFieldSpec(financialvalue.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialvalue.FieldID)
		for i := range fields {
			if fields[i] != financialvalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCompany != nil {
			_spec.Node.AddColumnOnce(financialvalue.FieldCompanyID)
		}
		if _q.withConcept != nil {
			_spec.Node.AddColumnOnce(financialvalue.FieldConceptID)
		}
		if _q.withFiling != nil {
			_spec.Node.AddColumnOnce(financialvalue.FieldFilingID)
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

func (_q *FinancialValueQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(financialvalue.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = financialvalue.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *FinancialValueQuery) ForUpdate(opts ...sql.LockOption) *FinancialValueQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *FinancialValueQuery) ForShare(opts ...sql.LockOption) *FinancialValueQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// FinancialValueGroupBy is the group-by builder for FinancialValue entities.
type FinancialValueGroupBy struct {
	selector
	build *FinancialValueQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FinancialValueGroupBy) Aggregate(fns ...AggregateFunc) *FinancialValueGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FinancialValueGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FinancialValueQuery, *FinancialValueGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FinancialValueGroupBy) sqlScan(ctx context.Context, root *FinancialValueQuery, v any) error {
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

// FinancialValueSelect is the builder for selecting fields of FinancialValue entities.
type FinancialValueSelect struct {
	*FinancialValueQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FinancialValueSelect) Aggregate(fns ...AggregateFunc) *FinancialValueSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FinancialValueSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FinancialValueQuery, *FinancialValueSelect](ctx, _s.FinancialValueQuery, _s, _s.inters, v)
}

func (_s *FinancialValueSelect) sqlScan(ctx context.Context, root *FinancialValueQuery, v any) error {
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
