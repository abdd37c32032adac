// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/predicate"
	"github.com/filinglens/filinglens/ent/prompt"
)

// GeneratedContentQuery is the builder for querying GeneratedContent entities.
type GeneratedContentQuery struct {
	config
	ctx                 *QueryContext
	order               []generatedcontent.OrderOption
	inters              []Interceptor
	predicates          []predicate.GeneratedContent
	withCompany         *CompanyQuery
	withGroup           *CompanyGroupQuery
	withSystemPrompt    *PromptQuery
	withModelConfig     *ModelConfigQuery
	withSourceDocuments *DocumentQuery
	withSourceContent   *GeneratedContentQuery
	withDerivedContent  *GeneratedContentQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GeneratedContentQuery builder.
func (_q *GeneratedContentQuery) Where(ps ...predicate.GeneratedContent) *GeneratedContentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GeneratedContentQuery) Limit(limit int) *GeneratedContentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GeneratedContentQuery) Offset(offset int) *GeneratedContentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GeneratedContentQuery) Unique(unique bool) *GeneratedContentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GeneratedContentQuery) Order(o ...generatedcontent.OrderOption) *GeneratedContentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCompany chains the current query on the "company" edge.
func (_q *GeneratedContentQuery) QueryCompany() *CompanyQuery {
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
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.CompanyTable, generatedcontent.CompanyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGroup chains the current query on the "group" edge.
func (_q *GeneratedContentQuery) QueryGroup() *CompanyGroupQuery {
	query := (&CompanyGroupClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(companygroup.Table, companygroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.GroupTable, generatedcontent.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySystemPrompt chains the current query on the "system_prompt" edge.
func (_q *GeneratedContentQuery) QuerySystemPrompt() *PromptQuery {
	query := (&PromptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(prompt.Table, prompt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.SystemPromptTable, generatedcontent.SystemPromptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryModelConfig chains the current query on the "model_config" edge.
func (_q *GeneratedContentQuery) QueryModelConfig() *ModelConfigQuery {
	query := (&ModelConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(modelconfig.Table, modelconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.ModelConfigTable, generatedcontent.ModelConfigColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySourceDocuments chains the current query on the "source_documents" edge.
func (_q *GeneratedContentQuery) QuerySourceDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, generatedcontent.SourceDocumentsTable, generatedcontent.SourceDocumentsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySourceContent chains the current query on the "source_content" edge.
func (_q *GeneratedContentQuery) QuerySourceContent() *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, generatedcontent.SourceContentTable, generatedcontent.SourceContentPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDerivedContent chains the current query on the "derived_content" edge.
func (_q *GeneratedContentQuery) QueryDerivedContent() *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, selector),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, generatedcontent.DerivedContentTable, generatedcontent.DerivedContentPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GeneratedContent entity from the query.
// Returns a *NotFoundError when no GeneratedContent was found.
func (_q *GeneratedContentQuery) First(ctx context.Context) (*GeneratedContent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{generatedcontent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GeneratedContentQuery) FirstX(ctx context.Context) *GeneratedContent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GeneratedContent ID from the query.
// Returns a *NotFoundError when no GeneratedContent ID was found.
func (_q *GeneratedContentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{generatedcontent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GeneratedContentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GeneratedContent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GeneratedContent entity is found.
// Returns a *NotFoundError when no GeneratedContent entities are found.
func (_q *GeneratedContentQuery) Only(ctx context.Context) (*GeneratedContent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{generatedcontent.Label}
	default:
		return nil, &NotSingularError{generatedcontent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GeneratedContentQuery) OnlyX(ctx context.Context) *GeneratedContent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GeneratedContent ID in the query.
// Returns a *NotSingularError when more than one GeneratedContent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GeneratedContentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{generatedcontent.Label}
	default:
		err = &NotSingularError{generatedcontent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GeneratedContentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GeneratedContents.
func (_q *GeneratedContentQuery) All(ctx context.Context) ([]*GeneratedContent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GeneratedContent, *GeneratedContentQuery]()
	return withInterceptors[[]*GeneratedContent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GeneratedContentQuery) AllX(ctx context.Context) []*GeneratedContent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GeneratedContent IDs.
func (_q *GeneratedContentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(generatedcontent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GeneratedContentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GeneratedContentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GeneratedContentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GeneratedContentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GeneratedContentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *GeneratedContentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GeneratedContentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GeneratedContentQuery) Clone() *GeneratedContentQuery {
	if _q == nil {
		return nil
	}
	return &GeneratedContentQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]generatedcontent.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.GeneratedContent{}, _q.predicates...),
		withCompany:         _q.withCompany.Clone(),
		withGroup:           _q.withGroup.Clone(),
		withSystemPrompt:    _q.withSystemPrompt.Clone(),
		withModelConfig:     _q.withModelConfig.Clone(),
		withSourceDocuments: _q.withSourceDocuments.Clone(),
		withSourceContent:   _q.withSourceContent.Clone(),
		withDerivedContent:  _q.withDerivedContent.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCompany tells the query-builder to eager-load the nodes that are connected to
// the "company" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithCompany(opts ...func(*CompanyQuery)) *GeneratedContentQuery {
	query := (&CompanyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCompany = query
	return _q
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithGroup(opts ...func(*CompanyGroupQuery)) *GeneratedContentQuery {
	query := (&CompanyGroupClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGroup = query
	return _q
}

// WithSystemPrompt tells the query-builder to eager-load the nodes that are connected to
// the "system_prompt" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithSystemPrompt(opts ...func(*PromptQuery)) *GeneratedContentQuery {
	query := (&PromptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSystemPrompt = query
	return _q
}

// WithModelConfig tells the query-builder to eager-load the nodes that are connected to
// the "model_config" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithModelConfig(opts ...func(*ModelConfigQuery)) *GeneratedContentQuery {
	query := (&ModelConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withModelConfig = query
	return _q
}

// WithSourceDocuments tells the query-builder to eager-load the nodes that are connected to
// the "source_documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithSourceDocuments(opts ...func(*DocumentQuery)) *GeneratedContentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSourceDocuments = query
	return _q
}

// WithSourceContent tells the query-builder to eager-load the nodes that are connected to
// the "source_content" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithSourceContent(opts ...func(*GeneratedContentQuery)) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSourceContent = query
	return _q
}

// WithDerivedContent tells the query-builder to eager-load the nodes that are connected to
// the "derived_content" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GeneratedContentQuery) WithDerivedContent(opts ...func(*GeneratedContentQuery)) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDerivedContent = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Content string `json:"content,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GeneratedContent.Query().
//		GroupBy(generatedcontent.FieldContent).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GeneratedContentQuery) GroupBy(field string, fields ...string) *GeneratedContentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GeneratedContentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = generatedcontent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Content string `json:"content,omitempty"`
//	}
//
//	client.GeneratedContent.Query().
//		Select(generatedcontent.FieldContent).
//		Scan(ctx, &v)
func (_q *GeneratedContentQuery) Select(fields ...string) *GeneratedContentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GeneratedContentSelect{GeneratedContentQuery: _q}
	sbuild.label = generatedcontent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GeneratedContentSelect configured with the given aggregations.
func (_q *GeneratedContentQuery) Aggregate(fns ...AggregateFunc) *GeneratedContentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GeneratedContentQuery) prepareQuery(ctx context.Context) error {
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
		if !generatedcontent.ValidColumn(f) {
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

func (_q *GeneratedContentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GeneratedContent, error) {
	var (
		nodes       = []*GeneratedContent{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withCompany != nil,
			_q.withGroup != nil,
			_q.withSystemPrompt != nil,
			_q.withModelConfig != nil,
			_q.withSourceDocuments != nil,
			_q.withSourceContent != nil,
			_q.withDerivedContent != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GeneratedContent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GeneratedContent{config: _q.config}
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
			func(n *GeneratedContent, e *Company) { n.Edges.Company = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGroup; query != nil {
		if err := _q.loadGroup(ctx, query, nodes, nil,
			func(n *GeneratedContent, e *CompanyGroup) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSystemPrompt; query != nil {
		if err := _q.loadSystemPrompt(ctx, query, nodes, nil,
			func(n *GeneratedContent, e *Prompt) { n.Edges.SystemPrompt = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withModelConfig; query != nil {
		if err := _q.loadModelConfig(ctx, query, nodes, nil,
			func(n *GeneratedContent, e *ModelConfig) { n.Edges.ModelConfig = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSourceDocuments; query != nil {
		if err := _q.loadSourceDocuments(ctx, query, nodes,
			func(n *GeneratedContent) { n.Edges.SourceDocuments = []*Document{} },
			func(n *GeneratedContent, e *Document) { n.Edges.SourceDocuments = append(n.Edges.SourceDocuments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSourceContent; query != nil {
		if err := _q.loadSourceContent(ctx, query, nodes,
			func(n *GeneratedContent) { n.Edges.SourceContent = []*GeneratedContent{} },
			func(n *GeneratedContent, e *GeneratedContent) {
				n.Edges.SourceContent = append(n.Edges.SourceContent, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withDerivedContent; query != nil {
		if err := _q.loadDerivedContent(ctx, query, nodes,
			func(n *GeneratedContent) { n.Edges.DerivedContent = []*GeneratedContent{} },
			func(n *GeneratedContent, e *GeneratedContent) {
				n.Edges.DerivedContent = append(n.Edges.DerivedContent, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GeneratedContentQuery) loadCompany(ctx context.Context, query *CompanyQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *Company)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*GeneratedContent)
	for i := range nodes {
		if nodes[i].CompanyID == nil {
			continue
		}
		fk := *nodes[i].CompanyID
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
func (_q *GeneratedContentQuery) loadGroup(ctx context.Context, query *CompanyGroupQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *CompanyGroup)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*GeneratedContent)
	for i := range nodes {
		if nodes[i].GroupID == nil {
			continue
		}
		fk := *nodes[i].GroupID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(companygroup.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "group_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GeneratedContentQuery) loadSystemPrompt(ctx context.Context, query *PromptQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *Prompt)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*GeneratedContent)
	for i := range nodes {
		fk := nodes[i].SystemPromptID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(prompt.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "system_prompt_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GeneratedContentQuery) loadModelConfig(ctx context.Context, query *ModelConfigQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *ModelConfig)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*GeneratedContent)
	for i := range nodes {
		fk := nodes[i].ModelConfigID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(modelconfig.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "model_config_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GeneratedContentQuery) loadSourceDocuments(ctx context.Context, query *DocumentQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *Document)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*GeneratedContent)
	nids := make(map[string]map[*GeneratedContent]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(generatedcontent.SourceDocumentsTable)
		s.Join(joinT).On(s.C(document.FieldID), joinT.C(generatedcontent.SourceDocumentsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(generatedcontent.SourceDocumentsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(generatedcontent.SourceDocumentsPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*GeneratedContent]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Document](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "source_documents" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *GeneratedContentQuery) loadSourceContent(ctx context.Context, query *GeneratedContentQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *GeneratedContent)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*GeneratedContent)
	nids := make(map[string]map[*GeneratedContent]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(generatedcontent.SourceContentTable)
		s.Join(joinT).On(s.C(generatedcontent.FieldID), joinT.C(generatedcontent.SourceContentPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(generatedcontent.SourceContentPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(generatedcontent.SourceContentPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*GeneratedContent]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*GeneratedContent](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "source_content" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *GeneratedContentQuery) loadDerivedContent(ctx context.Context, query *GeneratedContentQuery, nodes []*GeneratedContent, init func(*GeneratedContent), assign func(*GeneratedContent, *GeneratedContent)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*GeneratedContent)
	nids := make(map[string]map[*GeneratedContent]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(generatedcontent.DerivedContentTable)
		s.Join(joinT).On(s.C(generatedcontent.FieldID), joinT.C(generatedcontent.DerivedContentPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(generatedcontent.DerivedContentPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(generatedcontent.DerivedContentPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*GeneratedContent]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*GeneratedContent](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "derived_content" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *GeneratedContentQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *GeneratedContentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(generatedcontent.Table, generatedcontent.Columns, sqlgraph.NewFieldSpec(generatedcontent.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedcontent.FieldID)
		for i := range fields {
			if fields[i] != generatedcontent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCompany != nil {
			_spec.Node.AddColumnOnce(generatedcontent.FieldCompanyID)
		}
		if _q.withGroup != nil {
			_spec.Node.AddColumnOnce(generatedcontent.FieldGroupID)
		}
		if _q.withSystemPrompt != nil {
			_spec.Node.AddColumnOnce(generatedcontent.FieldSystemPromptID)
		}
		if _q.withModelConfig != nil {
			_spec.Node.AddColumnOnce(generatedcontent.FieldModelConfigID)
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

func (_q *GeneratedContentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(generatedcontent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = generatedcontent.Columns
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
func (_q *GeneratedContentQuery) ForUpdate(opts ...sql.LockOption) *GeneratedContentQuery {
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
func (_q *GeneratedContentQuery) ForShare(opts ...sql.LockOption) *GeneratedContentQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// GeneratedContentGroupBy is the group-by builder for GeneratedContent entities.
type GeneratedContentGroupBy struct {
	selector
	build *GeneratedContentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GeneratedContentGroupBy) Aggregate(fns ...AggregateFunc) *GeneratedContentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GeneratedContentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GeneratedContentQuery, *GeneratedContentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GeneratedContentGroupBy) sqlScan(ctx context.Context, root *GeneratedContentQuery, v any) error {
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

// GeneratedContentSelect is the builder for selecting fields of GeneratedContent entities.
type GeneratedContentSelect struct {
	*GeneratedContentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GeneratedContentSelect) Aggregate(fns ...AggregateFunc) *GeneratedContentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GeneratedContentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GeneratedContentQuery, *GeneratedContentSelect](ctx, _s.GeneratedContentQuery, _s, _s.inters, v)
}

func (_s *GeneratedContentSelect) sqlScan(ctx context.Context, root *GeneratedContentQuery, v any) error {
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
