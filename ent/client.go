// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/filinglens/filinglens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filinglens/filinglens/ent/company"
	"github.com/filinglens/filinglens/ent/companygroup"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/ent/financialconcept"
	"github.com/filinglens/filinglens/ent/financialvalue"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/ent/modelconfig"
	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/ent/prompt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// CompanyGroup is the client for interacting with the CompanyGroup builders.
	CompanyGroup *CompanyGroupClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Filing is the client for interacting with the Filing builders.
	Filing *FilingClient
	// FinancialConcept is the client for interacting with the FinancialConcept builders.
	FinancialConcept *FinancialConceptClient
	// FinancialValue is the client for interacting with the FinancialValue builders.
	FinancialValue *FinancialValueClient
	// GeneratedContent is the client for interacting with the GeneratedContent builders.
	GeneratedContent *GeneratedContentClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// PipelineRun is the client for interacting with the PipelineRun builders.
	PipelineRun *PipelineRunClient
	// Prompt is the client for interacting with the Prompt builders.
	Prompt *PromptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Company = NewCompanyClient(c.config)
	c.CompanyGroup = NewCompanyGroupClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Filing = NewFilingClient(c.config)
	c.FinancialConcept = NewFinancialConceptClient(c.config)
	c.FinancialValue = NewFinancialValueClient(c.config)
	c.GeneratedContent = NewGeneratedContentClient(c.config)
	c.Job = NewJobClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.PipelineRun = NewPipelineRunClient(c.config)
	c.Prompt = NewPromptClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Company:          NewCompanyClient(cfg),
		CompanyGroup:     NewCompanyGroupClient(cfg),
		Document:         NewDocumentClient(cfg),
		Filing:           NewFilingClient(cfg),
		FinancialConcept: NewFinancialConceptClient(cfg),
		FinancialValue:   NewFinancialValueClient(cfg),
		GeneratedContent: NewGeneratedContentClient(cfg),
		Job:              NewJobClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		PipelineRun:      NewPipelineRunClient(cfg),
		Prompt:           NewPromptClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Company:          NewCompanyClient(cfg),
		CompanyGroup:     NewCompanyGroupClient(cfg),
		Document:         NewDocumentClient(cfg),
		Filing:           NewFilingClient(cfg),
		FinancialConcept: NewFinancialConceptClient(cfg),
		FinancialValue:   NewFinancialValueClient(cfg),
		GeneratedContent: NewGeneratedContentClient(cfg),
		Job:              NewJobClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		PipelineRun:      NewPipelineRunClient(cfg),
		Prompt:           NewPromptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Company.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Company, c.CompanyGroup, c.Document, c.Filing, c.FinancialConcept,
		c.FinancialValue, c.GeneratedContent, c.Job, c.ModelConfig, c.PipelineRun,
		c.Prompt,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Company, c.CompanyGroup, c.Document, c.Filing, c.FinancialConcept,
		c.FinancialValue, c.GeneratedContent, c.Job, c.ModelConfig, c.PipelineRun,
		c.Prompt,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *CompanyGroupMutation:
		return c.CompanyGroup.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *FilingMutation:
		return c.Filing.mutate(ctx, m)
	case *FinancialConceptMutation:
		return c.FinancialConcept.mutate(ctx, m)
	case *FinancialValueMutation:
		return c.FinancialValue.mutate(ctx, m)
	case *GeneratedContentMutation:
		return c.GeneratedContent.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *PipelineRunMutation:
		return c.PipelineRun.mutate(ctx, m)
	case *PromptMutation:
		return c.Prompt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id string) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id string) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id string) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id string) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFilings queries the filings edge of a Company.
func (c *CompanyClient) QueryFilings(_m *Company) *FilingQuery {
	query := (&FilingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(filing.Table, filing.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.FilingsTable, company.FilingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Company.
func (c *CompanyClient) QueryDocuments(_m *Company) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.DocumentsTable, company.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinancialValues queries the financial_values edge of a Company.
func (c *CompanyClient) QueryFinancialValues(_m *Company) *FinancialValueQuery {
	query := (&FinancialValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(financialvalue.Table, financialvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.FinancialValuesTable, company.FinancialValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGeneratedContents queries the generated_contents edge of a Company.
func (c *CompanyClient) QueryGeneratedContents(_m *Company) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.GeneratedContentsTable, company.GeneratedContentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPipelineRuns queries the pipeline_runs edge of a Company.
func (c *CompanyClient) QueryPipelineRuns(_m *Company) *PipelineRunQuery {
	query := (&PipelineRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(pipelinerun.Table, pipelinerun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.PipelineRunsTable, company.PipelineRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// CompanyGroupClient is a client for the CompanyGroup schema.
type CompanyGroupClient struct {
	config
}

// NewCompanyGroupClient returns a client for the CompanyGroup from the given config.
func NewCompanyGroupClient(c config) *CompanyGroupClient {
	return &CompanyGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `companygroup.Hooks(f(g(h())))`.
func (c *CompanyGroupClient) Use(hooks ...Hook) {
	c.hooks.CompanyGroup = append(c.hooks.CompanyGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `companygroup.Intercept(f(g(h())))`.
func (c *CompanyGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompanyGroup = append(c.inters.CompanyGroup, interceptors...)
}

// Create returns a builder for creating a CompanyGroup entity.
func (c *CompanyGroupClient) Create() *CompanyGroupCreate {
	mutation := newCompanyGroupMutation(c.config, OpCreate)
	return &CompanyGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompanyGroup entities.
func (c *CompanyGroupClient) CreateBulk(builders ...*CompanyGroupCreate) *CompanyGroupCreateBulk {
	return &CompanyGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyGroupClient) MapCreateBulk(slice any, setFunc func(*CompanyGroupCreate, int)) *CompanyGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyGroupCreateBulk{err: fmt.Errorf("calling to CompanyGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompanyGroup.
func (c *CompanyGroupClient) Update() *CompanyGroupUpdate {
	mutation := newCompanyGroupMutation(c.config, OpUpdate)
	return &CompanyGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyGroupClient) UpdateOne(_m *CompanyGroup) *CompanyGroupUpdateOne {
	mutation := newCompanyGroupMutation(c.config, OpUpdateOne, withCompanyGroup(_m))
	return &CompanyGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyGroupClient) UpdateOneID(id string) *CompanyGroupUpdateOne {
	mutation := newCompanyGroupMutation(c.config, OpUpdateOne, withCompanyGroupID(id))
	return &CompanyGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompanyGroup.
func (c *CompanyGroupClient) Delete() *CompanyGroupDelete {
	mutation := newCompanyGroupMutation(c.config, OpDelete)
	return &CompanyGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyGroupClient) DeleteOne(_m *CompanyGroup) *CompanyGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyGroupClient) DeleteOneID(id string) *CompanyGroupDeleteOne {
	builder := c.Delete().Where(companygroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyGroupDeleteOne{builder}
}

// Query returns a query builder for CompanyGroup.
func (c *CompanyGroupClient) Query() *CompanyGroupQuery {
	return &CompanyGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompanyGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a CompanyGroup entity by its id.
func (c *CompanyGroupClient) Get(ctx context.Context, id string) (*CompanyGroup, error) {
	return c.Query().Where(companygroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyGroupClient) GetX(ctx context.Context, id string) *CompanyGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGeneratedContents queries the generated_contents edge of a CompanyGroup.
func (c *CompanyGroupClient) QueryGeneratedContents(_m *CompanyGroup) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(companygroup.Table, companygroup.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, companygroup.GeneratedContentsTable, companygroup.GeneratedContentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyGroupClient) Hooks() []Hook {
	return c.hooks.CompanyGroup
}

// Interceptors returns the client interceptors.
func (c *CompanyGroupClient) Interceptors() []Interceptor {
	return c.inters.CompanyGroup
}

func (c *CompanyGroupClient) mutate(ctx context.Context, m *CompanyGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompanyGroup mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id string) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id string) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id string) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id string) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiling queries the filing edge of a Document.
func (c *DocumentClient) QueryFiling(_m *Document) *FilingQuery {
	query := (&FilingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(filing.Table, filing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.FilingTable, document.FilingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCompany queries the company edge of a Document.
func (c *DocumentClient) QueryCompany(_m *Document) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.CompanyTable, document.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDerivedContent queries the derived_content edge of a Document.
func (c *DocumentClient) QueryDerivedContent(_m *Document) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, document.DerivedContentTable, document.DerivedContentPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// FilingClient is a client for the Filing schema.
type FilingClient struct {
	config
}

// NewFilingClient returns a client for the Filing from the given config.
func NewFilingClient(c config) *FilingClient {
	return &FilingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filing.Hooks(f(g(h())))`.
func (c *FilingClient) Use(hooks ...Hook) {
	c.hooks.Filing = append(c.hooks.Filing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filing.Intercept(f(g(h())))`.
func (c *FilingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Filing = append(c.inters.Filing, interceptors...)
}

// Create returns a builder for creating a Filing entity.
func (c *FilingClient) Create() *FilingCreate {
	mutation := newFilingMutation(c.config, OpCreate)
	return &FilingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Filing entities.
func (c *FilingClient) CreateBulk(builders ...*FilingCreate) *FilingCreateBulk {
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FilingClient) MapCreateBulk(slice any, setFunc func(*FilingCreate, int)) *FilingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FilingCreateBulk{err: fmt.Errorf("calling to FilingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FilingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Filing.
func (c *FilingClient) Update() *FilingUpdate {
	mutation := newFilingMutation(c.config, OpUpdate)
	return &FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FilingClient) UpdateOne(_m *Filing) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFiling(_m))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FilingClient) UpdateOneID(id string) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFilingID(id))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Filing.
func (c *FilingClient) Delete() *FilingDelete {
	mutation := newFilingMutation(c.config, OpDelete)
	return &FilingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FilingClient) DeleteOne(_m *Filing) *FilingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FilingClient) DeleteOneID(id string) *FilingDeleteOne {
	builder := c.Delete().Where(filing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FilingDeleteOne{builder}
}

// Query returns a query builder for Filing.
func (c *FilingClient) Query() *FilingQuery {
	return &FilingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiling},
		inters: c.Interceptors(),
	}
}

// Get returns a Filing entity by its id.
func (c *FilingClient) Get(ctx context.Context, id string) (*Filing, error) {
	return c.Query().Where(filing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FilingClient) GetX(ctx context.Context, id string) *Filing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Filing.
func (c *FilingClient) QueryCompany(_m *Filing) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filing.Table, filing.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, filing.CompanyTable, filing.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Filing.
func (c *FilingClient) QueryDocuments(_m *Filing) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filing.Table, filing.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, filing.DocumentsTable, filing.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinancialValues queries the financial_values edge of a Filing.
func (c *FilingClient) QueryFinancialValues(_m *Filing) *FinancialValueQuery {
	query := (&FinancialValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filing.Table, filing.FieldID, id),
			sqlgraph.To(financialvalue.Table, financialvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, filing.FinancialValuesTable, filing.FinancialValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FilingClient) Hooks() []Hook {
	return c.hooks.Filing
}

// Interceptors returns the client interceptors.
func (c *FilingClient) Interceptors() []Interceptor {
	return c.inters.Filing
}

func (c *FilingClient) mutate(ctx context.Context, m *FilingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FilingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FilingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Filing mutation op: %q", m.Op())
	}
}

// FinancialConceptClient is a client for the FinancialConcept schema.
type FinancialConceptClient struct {
	config
}

// NewFinancialConceptClient returns a client for the FinancialConcept from the given config.
func NewFinancialConceptClient(c config) *FinancialConceptClient {
	return &FinancialConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `financialconcept.Hooks(f(g(h())))`.
func (c *FinancialConceptClient) Use(hooks ...Hook) {
	c.hooks.FinancialConcept = append(c.hooks.FinancialConcept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `financialconcept.Intercept(f(g(h())))`.
func (c *FinancialConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinancialConcept = append(c.inters.FinancialConcept, interceptors...)
}

// Create returns a builder for creating a FinancialConcept entity.
func (c *FinancialConceptClient) Create() *FinancialConceptCreate {
	mutation := newFinancialConceptMutation(c.config, OpCreate)
	return &FinancialConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinancialConcept entities.
func (c *FinancialConceptClient) CreateBulk(builders ...*FinancialConceptCreate) *FinancialConceptCreateBulk {
	return &FinancialConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinancialConceptClient) MapCreateBulk(slice any, setFunc func(*FinancialConceptCreate, int)) *FinancialConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinancialConceptCreateBulk{err: fmt.Errorf("calling to FinancialConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinancialConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinancialConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinancialConcept.
func (c *FinancialConceptClient) Update() *FinancialConceptUpdate {
	mutation := newFinancialConceptMutation(c.config, OpUpdate)
	return &FinancialConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinancialConceptClient) UpdateOne(_m *FinancialConcept) *FinancialConceptUpdateOne {
	mutation := newFinancialConceptMutation(c.config, OpUpdateOne, withFinancialConcept(_m))
	return &FinancialConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinancialConceptClient) UpdateOneID(id string) *FinancialConceptUpdateOne {
	mutation := newFinancialConceptMutation(c.config, OpUpdateOne, withFinancialConceptID(id))
	return &FinancialConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinancialConcept.
func (c *FinancialConceptClient) Delete() *FinancialConceptDelete {
	mutation := newFinancialConceptMutation(c.config, OpDelete)
	return &FinancialConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinancialConceptClient) DeleteOne(_m *FinancialConcept) *FinancialConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinancialConceptClient) DeleteOneID(id string) *FinancialConceptDeleteOne {
	builder := c.Delete().Where(financialconcept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinancialConceptDeleteOne{builder}
}

// Query returns a query builder for FinancialConcept.
func (c *FinancialConceptClient) Query() *FinancialConceptQuery {
	return &FinancialConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinancialConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a FinancialConcept entity by its id.
func (c *FinancialConceptClient) Get(ctx context.Context, id string) (*FinancialConcept, error) {
	return c.Query().Where(financialconcept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinancialConceptClient) GetX(ctx context.Context, id string) *FinancialConcept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryValues queries the values edge of a FinancialConcept.
func (c *FinancialConceptClient) QueryValues(_m *FinancialConcept) *FinancialValueQuery {
	query := (&FinancialValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialconcept.Table, financialconcept.FieldID, id),
			sqlgraph.To(financialvalue.Table, financialvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, financialconcept.ValuesTable, financialconcept.ValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinancialConceptClient) Hooks() []Hook {
	return c.hooks.FinancialConcept
}

// Interceptors returns the client interceptors.
func (c *FinancialConceptClient) Interceptors() []Interceptor {
	return c.inters.FinancialConcept
}

func (c *FinancialConceptClient) mutate(ctx context.Context, m *FinancialConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinancialConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinancialConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinancialConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinancialConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinancialConcept mutation op: %q", m.Op())
	}
}

// FinancialValueClient is a client for the FinancialValue schema.
type FinancialValueClient struct {
	config
}

// NewFinancialValueClient returns a client for the FinancialValue from the given config.
func NewFinancialValueClient(c config) *FinancialValueClient {
	return &FinancialValueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `financialvalue.Hooks(f(g(h())))`.
func (c *FinancialValueClient) Use(hooks ...Hook) {
	c.hooks.FinancialValue = append(c.hooks.FinancialValue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `financialvalue.Intercept(f(g(h())))`.
func (c *FinancialValueClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinancialValue = append(c.inters.FinancialValue, interceptors...)
}

// Create returns a builder for creating a FinancialValue entity.
func (c *FinancialValueClient) Create() *FinancialValueCreate {
	mutation := newFinancialValueMutation(c.config, OpCreate)
	return &FinancialValueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinancialValue entities.
func (c *FinancialValueClient) CreateBulk(builders ...*FinancialValueCreate) *FinancialValueCreateBulk {
	return &FinancialValueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinancialValueClient) MapCreateBulk(slice any, setFunc func(*FinancialValueCreate, int)) *FinancialValueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinancialValueCreateBulk{err: fmt.Errorf("calling to FinancialValueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinancialValueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinancialValueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinancialValue.
func (c *FinancialValueClient) Update() *FinancialValueUpdate {
	mutation := newFinancialValueMutation(c.config, OpUpdate)
	return &FinancialValueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinancialValueClient) UpdateOne(_m *FinancialValue) *FinancialValueUpdateOne {
	mutation := newFinancialValueMutation(c.config, OpUpdateOne, withFinancialValue(_m))
	return &FinancialValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinancialValueClient) UpdateOneID(id string) *FinancialValueUpdateOne {
	mutation := newFinancialValueMutation(c.config, OpUpdateOne, withFinancialValueID(id))
	return &FinancialValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinancialValue.
func (c *FinancialValueClient) Delete() *FinancialValueDelete {
	mutation := newFinancialValueMutation(c.config, OpDelete)
	return &FinancialValueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinancialValueClient) DeleteOne(_m *FinancialValue) *FinancialValueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinancialValueClient) DeleteOneID(id string) *FinancialValueDeleteOne {
	builder := c.Delete().Where(financialvalue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinancialValueDeleteOne{builder}
}

// Query returns a query builder for FinancialValue.
func (c *FinancialValueClient) Query() *FinancialValueQuery {
	return &FinancialValueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinancialValue},
		inters: c.Interceptors(),
	}
}

// Get returns a FinancialValue entity by its id.
func (c *FinancialValueClient) Get(ctx context.Context, id string) (*FinancialValue, error) {
	return c.Query().Where(financialvalue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinancialValueClient) GetX(ctx context.Context, id string) *FinancialValue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a FinancialValue.
func (c *FinancialValueClient) QueryCompany(_m *FinancialValue) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.CompanyTable, financialvalue.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConcept queries the concept edge of a FinancialValue.
func (c *FinancialValueClient) QueryConcept(_m *FinancialValue) *FinancialConceptQuery {
	query := (&FinancialConceptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, id),
			sqlgraph.To(financialconcept.Table, financialconcept.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.ConceptTable, financialvalue.ConceptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiling queries the filing edge of a FinancialValue.
func (c *FinancialValueClient) QueryFiling(_m *FinancialValue) *FilingQuery {
	query := (&FilingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialvalue.Table, financialvalue.FieldID, id),
			sqlgraph.To(filing.Table, filing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialvalue.FilingTable, financialvalue.FilingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinancialValueClient) Hooks() []Hook {
	return c.hooks.FinancialValue
}

// Interceptors returns the client interceptors.
func (c *FinancialValueClient) Interceptors() []Interceptor {
	return c.inters.FinancialValue
}

func (c *FinancialValueClient) mutate(ctx context.Context, m *FinancialValueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinancialValueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinancialValueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinancialValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinancialValueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinancialValue mutation op: %q", m.Op())
	}
}

// GeneratedContentClient is a client for the GeneratedContent schema.
type GeneratedContentClient struct {
	config
}

// NewGeneratedContentClient returns a client for the GeneratedContent from the given config.
func NewGeneratedContentClient(c config) *GeneratedContentClient {
	return &GeneratedContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedcontent.Hooks(f(g(h())))`.
func (c *GeneratedContentClient) Use(hooks ...Hook) {
	c.hooks.GeneratedContent = append(c.hooks.GeneratedContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedcontent.Intercept(f(g(h())))`.
func (c *GeneratedContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedContent = append(c.inters.GeneratedContent, interceptors...)
}

// Create returns a builder for creating a GeneratedContent entity.
func (c *GeneratedContentClient) Create() *GeneratedContentCreate {
	mutation := newGeneratedContentMutation(c.config, OpCreate)
	return &GeneratedContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedContent entities.
func (c *GeneratedContentClient) CreateBulk(builders ...*GeneratedContentCreate) *GeneratedContentCreateBulk {
	return &GeneratedContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedContentClient) MapCreateBulk(slice any, setFunc func(*GeneratedContentCreate, int)) *GeneratedContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedContentCreateBulk{err: fmt.Errorf("calling to GeneratedContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedContent.
func (c *GeneratedContentClient) Update() *GeneratedContentUpdate {
	mutation := newGeneratedContentMutation(c.config, OpUpdate)
	return &GeneratedContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedContentClient) UpdateOne(_m *GeneratedContent) *GeneratedContentUpdateOne {
	mutation := newGeneratedContentMutation(c.config, OpUpdateOne, withGeneratedContent(_m))
	return &GeneratedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedContentClient) UpdateOneID(id string) *GeneratedContentUpdateOne {
	mutation := newGeneratedContentMutation(c.config, OpUpdateOne, withGeneratedContentID(id))
	return &GeneratedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedContent.
func (c *GeneratedContentClient) Delete() *GeneratedContentDelete {
	mutation := newGeneratedContentMutation(c.config, OpDelete)
	return &GeneratedContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedContentClient) DeleteOne(_m *GeneratedContent) *GeneratedContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedContentClient) DeleteOneID(id string) *GeneratedContentDeleteOne {
	builder := c.Delete().Where(generatedcontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedContentDeleteOne{builder}
}

// Query returns a query builder for GeneratedContent.
func (c *GeneratedContentClient) Query() *GeneratedContentQuery {
	return &GeneratedContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedContent},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedContent entity by its id.
func (c *GeneratedContentClient) Get(ctx context.Context, id string) (*GeneratedContent, error) {
	return c.Query().Where(generatedcontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedContentClient) GetX(ctx context.Context, id string) *GeneratedContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a GeneratedContent.
func (c *GeneratedContentClient) QueryCompany(_m *GeneratedContent) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.CompanyTable, generatedcontent.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroup queries the group edge of a GeneratedContent.
func (c *GeneratedContentClient) QueryGroup(_m *GeneratedContent) *CompanyGroupQuery {
	query := (&CompanyGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(companygroup.Table, companygroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.GroupTable, generatedcontent.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySystemPrompt queries the system_prompt edge of a GeneratedContent.
func (c *GeneratedContentClient) QuerySystemPrompt(_m *GeneratedContent) *PromptQuery {
	query := (&PromptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(prompt.Table, prompt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.SystemPromptTable, generatedcontent.SystemPromptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModelConfig queries the model_config edge of a GeneratedContent.
func (c *GeneratedContentClient) QueryModelConfig(_m *GeneratedContent) *ModelConfigQuery {
	query := (&ModelConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(modelconfig.Table, modelconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcontent.ModelConfigTable, generatedcontent.ModelConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceDocuments queries the source_documents edge of a GeneratedContent.
func (c *GeneratedContentClient) QuerySourceDocuments(_m *GeneratedContent) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, generatedcontent.SourceDocumentsTable, generatedcontent.SourceDocumentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySourceContent queries the source_content edge of a GeneratedContent.
func (c *GeneratedContentClient) QuerySourceContent(_m *GeneratedContent) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, generatedcontent.SourceContentTable, generatedcontent.SourceContentPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDerivedContent queries the derived_content edge of a GeneratedContent.
func (c *GeneratedContentClient) QueryDerivedContent(_m *GeneratedContent) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcontent.Table, generatedcontent.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, generatedcontent.DerivedContentTable, generatedcontent.DerivedContentPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GeneratedContentClient) Hooks() []Hook {
	return c.hooks.GeneratedContent
}

// Interceptors returns the client interceptors.
func (c *GeneratedContentClient) Interceptors() []Interceptor {
	return c.inters.GeneratedContent
}

func (c *GeneratedContentClient) mutate(ctx context.Context, m *GeneratedContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedContent mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(_m *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(_m))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id string) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(_m *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id string) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id string) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id string) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGeneratedContents queries the generated_contents edge of a ModelConfig.
func (c *ModelConfigClient) QueryGeneratedContents(_m *ModelConfig) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(modelconfig.Table, modelconfig.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, modelconfig.GeneratedContentsTable, modelconfig.GeneratedContentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// PipelineRunClient is a client for the PipelineRun schema.
type PipelineRunClient struct {
	config
}

// NewPipelineRunClient returns a client for the PipelineRun from the given config.
func NewPipelineRunClient(c config) *PipelineRunClient {
	return &PipelineRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerun.Hooks(f(g(h())))`.
func (c *PipelineRunClient) Use(hooks ...Hook) {
	c.hooks.PipelineRun = append(c.hooks.PipelineRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerun.Intercept(f(g(h())))`.
func (c *PipelineRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRun = append(c.inters.PipelineRun, interceptors...)
}

// Create returns a builder for creating a PipelineRun entity.
func (c *PipelineRunClient) Create() *PipelineRunCreate {
	mutation := newPipelineRunMutation(c.config, OpCreate)
	return &PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRun entities.
func (c *PipelineRunClient) CreateBulk(builders ...*PipelineRunCreate) *PipelineRunCreateBulk {
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunClient) MapCreateBulk(slice any, setFunc func(*PipelineRunCreate, int)) *PipelineRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunCreateBulk{err: fmt.Errorf("calling to PipelineRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRun.
func (c *PipelineRunClient) Update() *PipelineRunUpdate {
	mutation := newPipelineRunMutation(c.config, OpUpdate)
	return &PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunClient) UpdateOne(_m *PipelineRun) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRun(_m))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunClient) UpdateOneID(id string) *PipelineRunUpdateOne {
	mutation := newPipelineRunMutation(c.config, OpUpdateOne, withPipelineRunID(id))
	return &PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRun.
func (c *PipelineRunClient) Delete() *PipelineRunDelete {
	mutation := newPipelineRunMutation(c.config, OpDelete)
	return &PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunClient) DeleteOne(_m *PipelineRun) *PipelineRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunClient) DeleteOneID(id string) *PipelineRunDeleteOne {
	builder := c.Delete().Where(pipelinerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunDeleteOne{builder}
}

// Query returns a query builder for PipelineRun.
func (c *PipelineRunClient) Query() *PipelineRunQuery {
	return &PipelineRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRun entity by its id.
func (c *PipelineRunClient) Get(ctx context.Context, id string) (*PipelineRun, error) {
	return c.Query().Where(pipelinerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunClient) GetX(ctx context.Context, id string) *PipelineRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a PipelineRun.
func (c *PipelineRunClient) QueryCompany(_m *PipelineRun) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinerun.Table, pipelinerun.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinerun.CompanyTable, pipelinerun.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineRunClient) Hooks() []Hook {
	return c.hooks.PipelineRun
}

// Interceptors returns the client interceptors.
func (c *PipelineRunClient) Interceptors() []Interceptor {
	return c.inters.PipelineRun
}

func (c *PipelineRunClient) mutate(ctx context.Context, m *PipelineRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRun mutation op: %q", m.Op())
	}
}

// PromptClient is a client for the Prompt schema.
type PromptClient struct {
	config
}

// NewPromptClient returns a client for the Prompt from the given config.
func NewPromptClient(c config) *PromptClient {
	return &PromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompt.Hooks(f(g(h())))`.
func (c *PromptClient) Use(hooks ...Hook) {
	c.hooks.Prompt = append(c.hooks.Prompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompt.Intercept(f(g(h())))`.
func (c *PromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prompt = append(c.inters.Prompt, interceptors...)
}

// Create returns a builder for creating a Prompt entity.
func (c *PromptClient) Create() *PromptCreate {
	mutation := newPromptMutation(c.config, OpCreate)
	return &PromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prompt entities.
func (c *PromptClient) CreateBulk(builders ...*PromptCreate) *PromptCreateBulk {
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptClient) MapCreateBulk(slice any, setFunc func(*PromptCreate, int)) *PromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptCreateBulk{err: fmt.Errorf("calling to PromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prompt.
func (c *PromptClient) Update() *PromptUpdate {
	mutation := newPromptMutation(c.config, OpUpdate)
	return &PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptClient) UpdateOne(_m *Prompt) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPrompt(_m))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptClient) UpdateOneID(id string) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPromptID(id))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prompt.
func (c *PromptClient) Delete() *PromptDelete {
	mutation := newPromptMutation(c.config, OpDelete)
	return &PromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptClient) DeleteOne(_m *Prompt) *PromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptClient) DeleteOneID(id string) *PromptDeleteOne {
	builder := c.Delete().Where(prompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptDeleteOne{builder}
}

// Query returns a query builder for Prompt.
func (c *PromptClient) Query() *PromptQuery {
	return &PromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a Prompt entity by its id.
func (c *PromptClient) Get(ctx context.Context, id string) (*Prompt, error) {
	return c.Query().Where(prompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptClient) GetX(ctx context.Context, id string) *Prompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGeneratedContents queries the generated_contents edge of a Prompt.
func (c *PromptClient) QueryGeneratedContents(_m *Prompt) *GeneratedContentQuery {
	query := (&GeneratedContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompt.Table, prompt.FieldID, id),
			sqlgraph.To(generatedcontent.Table, generatedcontent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prompt.GeneratedContentsTable, prompt.GeneratedContentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptClient) Hooks() []Hook {
	return c.hooks.Prompt
}

// Interceptors returns the client interceptors.
func (c *PromptClient) Interceptors() []Interceptor {
	return c.inters.Prompt
}

func (c *PromptClient) mutate(ctx context.Context, m *PromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prompt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Company, CompanyGroup, Document, Filing, FinancialConcept, FinancialValue,
		GeneratedContent, Job, ModelConfig, PipelineRun, Prompt []ent.Hook
	}
	inters struct {
		Company, CompanyGroup, Document, Filing, FinancialConcept, FinancialValue,
		GeneratedContent, Job, ModelConfig, PipelineRun, Prompt []ent.Interceptor
	}
)
