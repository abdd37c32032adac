// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/filinglens/filinglens/ent/predicate"
	"github.com/filinglens/filinglens/ent/prompt"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany          = "Company"
	TypeCompanyGroup     = "CompanyGroup"
	TypeDocument         = "Document"
	TypeFiling           = "Filing"
	TypeFinancialConcept = "FinancialConcept"
	TypeFinancialValue   = "FinancialValue"
	TypeGeneratedContent = "GeneratedContent"
	TypeJob              = "Job"
	TypeModelConfig      = "ModelConfig"
	TypePipelineRun      = "PipelineRun"
	TypePrompt           = "Prompt"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	ticker                    *string
	name                      *string
	exchanges                 *[]string
	appendexchanges           []string
	industry_code             *string
	fiscal_year_end           *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	filings                   map[string]struct{}
	removedfilings            map[string]struct{}
	clearedfilings            bool
	documents                 map[string]struct{}
	removeddocuments          map[string]struct{}
	cleareddocuments          bool
	financial_values          map[string]struct{}
	removedfinancial_values   map[string]struct{}
	clearedfinancial_values   bool
	generated_contents        map[string]struct{}
	removedgenerated_contents map[string]struct{}
	clearedgenerated_contents bool
	pipeline_runs             map[string]struct{}
	removedpipeline_runs      map[string]struct{}
	clearedpipeline_runs      bool
	done                      bool
	oldValue                  func(context.Context) (*Company, error)
	predicates                []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicker sets the "ticker" field.
func (m *CompanyMutation) SetTicker(s string) {
	m.ticker = &s
}

// Ticker returns the value of the "ticker" field in the mutation.
func (m *CompanyMutation) Ticker() (r string, exists bool) {
	v := m.ticker
	if v == nil {
		return
	}
	return *v, true
}

// OldTicker returns the old "ticker" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldTicker(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicker: %w", err)
	}
	return oldValue.Ticker, nil
}

// ResetTicker resets all changes to the "ticker" field.
func (m *CompanyMutation) ResetTicker() {
	m.ticker = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetExchanges sets the "exchanges" field.
func (m *CompanyMutation) SetExchanges(s []string) {
	m.exchanges = &s
	m.appendexchanges = nil
}

// Exchanges returns the value of the "exchanges" field in the mutation.
func (m *CompanyMutation) Exchanges() (r []string, exists bool) {
	v := m.exchanges
	if v == nil {
		return
	}
	return *v, true
}

// OldExchanges returns the old "exchanges" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldExchanges(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExchanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExchanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExchanges: %w", err)
	}
	return oldValue.Exchanges, nil
}

// AppendExchanges adds s to the "exchanges" field.
func (m *CompanyMutation) AppendExchanges(s []string) {
	m.appendexchanges = append(m.appendexchanges, s...)
}

// AppendedExchanges returns the list of values that were appended to the "exchanges" field in this mutation.
func (m *CompanyMutation) AppendedExchanges() ([]string, bool) {
	if len(m.appendexchanges) == 0 {
		return nil, false
	}
	return m.appendexchanges, true
}

// ClearExchanges clears the value of the "exchanges" field.
func (m *CompanyMutation) ClearExchanges() {
	m.exchanges = nil
	m.appendexchanges = nil
	m.clearedFields[company.FieldExchanges] = struct{}{}
}

// ExchangesCleared returns if the "exchanges" field was cleared in this mutation.
func (m *CompanyMutation) ExchangesCleared() bool {
	_, ok := m.clearedFields[company.FieldExchanges]
	return ok
}

// ResetExchanges resets all changes to the "exchanges" field.
func (m *CompanyMutation) ResetExchanges() {
	m.exchanges = nil
	m.appendexchanges = nil
	delete(m.clearedFields, company.FieldExchanges)
}

// SetIndustryCode sets the "industry_code" field.
func (m *CompanyMutation) SetIndustryCode(s string) {
	m.industry_code = &s
}

// IndustryCode returns the value of the "industry_code" field in the mutation.
func (m *CompanyMutation) IndustryCode() (r string, exists bool) {
	v := m.industry_code
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustryCode returns the old "industry_code" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldIndustryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustryCode: %w", err)
	}
	return oldValue.IndustryCode, nil
}

// ClearIndustryCode clears the value of the "industry_code" field.
func (m *CompanyMutation) ClearIndustryCode() {
	m.industry_code = nil
	m.clearedFields[company.FieldIndustryCode] = struct{}{}
}

// IndustryCodeCleared returns if the "industry_code" field was cleared in this mutation.
func (m *CompanyMutation) IndustryCodeCleared() bool {
	_, ok := m.clearedFields[company.FieldIndustryCode]
	return ok
}

// ResetIndustryCode resets all changes to the "industry_code" field.
func (m *CompanyMutation) ResetIndustryCode() {
	m.industry_code = nil
	delete(m.clearedFields, company.FieldIndustryCode)
}

// SetFiscalYearEnd sets the "fiscal_year_end" field.
func (m *CompanyMutation) SetFiscalYearEnd(s string) {
	m.fiscal_year_end = &s
}

// FiscalYearEnd returns the value of the "fiscal_year_end" field in the mutation.
func (m *CompanyMutation) FiscalYearEnd() (r string, exists bool) {
	v := m.fiscal_year_end
	if v == nil {
		return
	}
	return *v, true
}

// OldFiscalYearEnd returns the old "fiscal_year_end" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldFiscalYearEnd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiscalYearEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiscalYearEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiscalYearEnd: %w", err)
	}
	return oldValue.FiscalYearEnd, nil
}

// ClearFiscalYearEnd clears the value of the "fiscal_year_end" field.
func (m *CompanyMutation) ClearFiscalYearEnd() {
	m.fiscal_year_end = nil
	m.clearedFields[company.FieldFiscalYearEnd] = struct{}{}
}

// FiscalYearEndCleared returns if the "fiscal_year_end" field was cleared in this mutation.
func (m *CompanyMutation) FiscalYearEndCleared() bool {
	_, ok := m.clearedFields[company.FieldFiscalYearEnd]
	return ok
}

// ResetFiscalYearEnd resets all changes to the "fiscal_year_end" field.
func (m *CompanyMutation) ResetFiscalYearEnd() {
	m.fiscal_year_end = nil
	delete(m.clearedFields, company.FieldFiscalYearEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFilingIDs adds the "filings" edge to the Filing entity by ids.
func (m *CompanyMutation) AddFilingIDs(ids ...string) {
	if m.filings == nil {
		m.filings = make(map[string]struct{})
	}
	for i := range ids {
		m.filings[ids[i]] = struct{}{}
	}
}

// ClearFilings clears the "filings" edge to the Filing entity.
func (m *CompanyMutation) ClearFilings() {
	m.clearedfilings = true
}

// FilingsCleared reports if the "filings" edge to the Filing entity was cleared.
func (m *CompanyMutation) FilingsCleared() bool {
	return m.clearedfilings
}

// RemoveFilingIDs removes the "filings" edge to the Filing entity by IDs.
func (m *CompanyMutation) RemoveFilingIDs(ids ...string) {
	if m.removedfilings == nil {
		m.removedfilings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.filings, ids[i])
		m.removedfilings[ids[i]] = struct{}{}
	}
}

// RemovedFilings returns the removed IDs of the "filings" edge to the Filing entity.
func (m *CompanyMutation) RemovedFilingsIDs() (ids []string) {
	for id := range m.removedfilings {
		ids = append(ids, id)
	}
	return
}

// FilingsIDs returns the "filings" edge IDs in the mutation.
func (m *CompanyMutation) FilingsIDs() (ids []string) {
	for id := range m.filings {
		ids = append(ids, id)
	}
	return
}

// ResetFilings resets all changes to the "filings" edge.
func (m *CompanyMutation) ResetFilings() {
	m.filings = nil
	m.clearedfilings = false
	m.removedfilings = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *CompanyMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *CompanyMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *CompanyMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *CompanyMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *CompanyMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CompanyMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CompanyMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by ids.
func (m *CompanyMutation) AddFinancialValueIDs(ids ...string) {
	if m.financial_values == nil {
		m.financial_values = make(map[string]struct{})
	}
	for i := range ids {
		m.financial_values[ids[i]] = struct{}{}
	}
}

// ClearFinancialValues clears the "financial_values" edge to the FinancialValue entity.
func (m *CompanyMutation) ClearFinancialValues() {
	m.clearedfinancial_values = true
}

// FinancialValuesCleared reports if the "financial_values" edge to the FinancialValue entity was cleared.
func (m *CompanyMutation) FinancialValuesCleared() bool {
	return m.clearedfinancial_values
}

// RemoveFinancialValueIDs removes the "financial_values" edge to the FinancialValue entity by IDs.
func (m *CompanyMutation) RemoveFinancialValueIDs(ids ...string) {
	if m.removedfinancial_values == nil {
		m.removedfinancial_values = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.financial_values, ids[i])
		m.removedfinancial_values[ids[i]] = struct{}{}
	}
}

// RemovedFinancialValues returns the removed IDs of the "financial_values" edge to the FinancialValue entity.
func (m *CompanyMutation) RemovedFinancialValuesIDs() (ids []string) {
	for id := range m.removedfinancial_values {
		ids = append(ids, id)
	}
	return
}

// FinancialValuesIDs returns the "financial_values" edge IDs in the mutation.
func (m *CompanyMutation) FinancialValuesIDs() (ids []string) {
	for id := range m.financial_values {
		ids = append(ids, id)
	}
	return
}

// ResetFinancialValues resets all changes to the "financial_values" edge.
func (m *CompanyMutation) ResetFinancialValues() {
	m.financial_values = nil
	m.clearedfinancial_values = false
	m.removedfinancial_values = nil
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by ids.
func (m *CompanyMutation) AddGeneratedContentIDs(ids ...string) {
	if m.generated_contents == nil {
		m.generated_contents = make(map[string]struct{})
	}
	for i := range ids {
		m.generated_contents[ids[i]] = struct{}{}
	}
}

// ClearGeneratedContents clears the "generated_contents" edge to the GeneratedContent entity.
func (m *CompanyMutation) ClearGeneratedContents() {
	m.clearedgenerated_contents = true
}

// GeneratedContentsCleared reports if the "generated_contents" edge to the GeneratedContent entity was cleared.
func (m *CompanyMutation) GeneratedContentsCleared() bool {
	return m.clearedgenerated_contents
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to the GeneratedContent entity by IDs.
func (m *CompanyMutation) RemoveGeneratedContentIDs(ids ...string) {
	if m.removedgenerated_contents == nil {
		m.removedgenerated_contents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.generated_contents, ids[i])
		m.removedgenerated_contents[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedContents returns the removed IDs of the "generated_contents" edge to the GeneratedContent entity.
func (m *CompanyMutation) RemovedGeneratedContentsIDs() (ids []string) {
	for id := range m.removedgenerated_contents {
		ids = append(ids, id)
	}
	return
}

// GeneratedContentsIDs returns the "generated_contents" edge IDs in the mutation.
func (m *CompanyMutation) GeneratedContentsIDs() (ids []string) {
	for id := range m.generated_contents {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedContents resets all changes to the "generated_contents" edge.
func (m *CompanyMutation) ResetGeneratedContents() {
	m.generated_contents = nil
	m.clearedgenerated_contents = false
	m.removedgenerated_contents = nil
}

// AddPipelineRunIDs adds the "pipeline_runs" edge to the PipelineRun entity by ids.
func (m *CompanyMutation) AddPipelineRunIDs(ids ...string) {
	if m.pipeline_runs == nil {
		m.pipeline_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.pipeline_runs[ids[i]] = struct{}{}
	}
}

// ClearPipelineRuns clears the "pipeline_runs" edge to the PipelineRun entity.
func (m *CompanyMutation) ClearPipelineRuns() {
	m.clearedpipeline_runs = true
}

// PipelineRunsCleared reports if the "pipeline_runs" edge to the PipelineRun entity was cleared.
func (m *CompanyMutation) PipelineRunsCleared() bool {
	return m.clearedpipeline_runs
}

// RemovePipelineRunIDs removes the "pipeline_runs" edge to the PipelineRun entity by IDs.
func (m *CompanyMutation) RemovePipelineRunIDs(ids ...string) {
	if m.removedpipeline_runs == nil {
		m.removedpipeline_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pipeline_runs, ids[i])
		m.removedpipeline_runs[ids[i]] = struct{}{}
	}
}

// RemovedPipelineRuns returns the removed IDs of the "pipeline_runs" edge to the PipelineRun entity.
func (m *CompanyMutation) RemovedPipelineRunsIDs() (ids []string) {
	for id := range m.removedpipeline_runs {
		ids = append(ids, id)
	}
	return
}

// PipelineRunsIDs returns the "pipeline_runs" edge IDs in the mutation.
func (m *CompanyMutation) PipelineRunsIDs() (ids []string) {
	for id := range m.pipeline_runs {
		ids = append(ids, id)
	}
	return
}

// ResetPipelineRuns resets all changes to the "pipeline_runs" edge.
func (m *CompanyMutation) ResetPipelineRuns() {
	m.pipeline_runs = nil
	m.clearedpipeline_runs = false
	m.removedpipeline_runs = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.ticker != nil {
		fields = append(fields, company.FieldTicker)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.exchanges != nil {
		fields = append(fields, company.FieldExchanges)
	}
	if m.industry_code != nil {
		fields = append(fields, company.FieldIndustryCode)
	}
	if m.fiscal_year_end != nil {
		fields = append(fields, company.FieldFiscalYearEnd)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldTicker:
		return m.Ticker()
	case company.FieldName:
		return m.Name()
	case company.FieldExchanges:
		return m.Exchanges()
	case company.FieldIndustryCode:
		return m.IndustryCode()
	case company.FieldFiscalYearEnd:
		return m.FiscalYearEnd()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldTicker:
		return m.OldTicker(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldExchanges:
		return m.OldExchanges(ctx)
	case company.FieldIndustryCode:
		return m.OldIndustryCode(ctx)
	case company.FieldFiscalYearEnd:
		return m.OldFiscalYearEnd(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldTicker:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicker(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldExchanges:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExchanges(v)
		return nil
	case company.FieldIndustryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustryCode(v)
		return nil
	case company.FieldFiscalYearEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiscalYearEnd(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldExchanges) {
		fields = append(fields, company.FieldExchanges)
	}
	if m.FieldCleared(company.FieldIndustryCode) {
		fields = append(fields, company.FieldIndustryCode)
	}
	if m.FieldCleared(company.FieldFiscalYearEnd) {
		fields = append(fields, company.FieldFiscalYearEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldExchanges:
		m.ClearExchanges()
		return nil
	case company.FieldIndustryCode:
		m.ClearIndustryCode()
		return nil
	case company.FieldFiscalYearEnd:
		m.ClearFiscalYearEnd()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldTicker:
		m.ResetTicker()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldExchanges:
		m.ResetExchanges()
		return nil
	case company.FieldIndustryCode:
		m.ResetIndustryCode()
		return nil
	case company.FieldFiscalYearEnd:
		m.ResetFiscalYearEnd()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.filings != nil {
		edges = append(edges, company.EdgeFilings)
	}
	if m.documents != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.financial_values != nil {
		edges = append(edges, company.EdgeFinancialValues)
	}
	if m.generated_contents != nil {
		edges = append(edges, company.EdgeGeneratedContents)
	}
	if m.pipeline_runs != nil {
		edges = append(edges, company.EdgePipelineRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeFilings:
		ids := make([]ent.Value, 0, len(m.filings))
		for id := range m.filings {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFinancialValues:
		ids := make([]ent.Value, 0, len(m.financial_values))
		for id := range m.financial_values {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.generated_contents))
		for id := range m.generated_contents {
			ids = append(ids, id)
		}
		return ids
	case company.EdgePipelineRuns:
		ids := make([]ent.Value, 0, len(m.pipeline_runs))
		for id := range m.pipeline_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedfilings != nil {
		edges = append(edges, company.EdgeFilings)
	}
	if m.removeddocuments != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.removedfinancial_values != nil {
		edges = append(edges, company.EdgeFinancialValues)
	}
	if m.removedgenerated_contents != nil {
		edges = append(edges, company.EdgeGeneratedContents)
	}
	if m.removedpipeline_runs != nil {
		edges = append(edges, company.EdgePipelineRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeFilings:
		ids := make([]ent.Value, 0, len(m.removedfilings))
		for id := range m.removedfilings {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFinancialValues:
		ids := make([]ent.Value, 0, len(m.removedfinancial_values))
		for id := range m.removedfinancial_values {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.removedgenerated_contents))
		for id := range m.removedgenerated_contents {
			ids = append(ids, id)
		}
		return ids
	case company.EdgePipelineRuns:
		ids := make([]ent.Value, 0, len(m.removedpipeline_runs))
		for id := range m.removedpipeline_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedfilings {
		edges = append(edges, company.EdgeFilings)
	}
	if m.cleareddocuments {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.clearedfinancial_values {
		edges = append(edges, company.EdgeFinancialValues)
	}
	if m.clearedgenerated_contents {
		edges = append(edges, company.EdgeGeneratedContents)
	}
	if m.clearedpipeline_runs {
		edges = append(edges, company.EdgePipelineRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeFilings:
		return m.clearedfilings
	case company.EdgeDocuments:
		return m.cleareddocuments
	case company.EdgeFinancialValues:
		return m.clearedfinancial_values
	case company.EdgeGeneratedContents:
		return m.clearedgenerated_contents
	case company.EdgePipelineRuns:
		return m.clearedpipeline_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeFilings:
		m.ResetFilings()
		return nil
	case company.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case company.EdgeFinancialValues:
		m.ResetFinancialValues()
		return nil
	case company.EdgeGeneratedContents:
		m.ResetGeneratedContents()
		return nil
	case company.EdgePipelineRuns:
		m.ResetPipelineRuns()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// CompanyGroupMutation represents an operation that mutates the CompanyGroup nodes in the graph.
type CompanyGroupMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	slug                      *string
	name                      *string
	tickers                   *[]string
	appendtickers             []string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	generated_contents        map[string]struct{}
	removedgenerated_contents map[string]struct{}
	clearedgenerated_contents bool
	done                      bool
	oldValue                  func(context.Context) (*CompanyGroup, error)
	predicates                []predicate.CompanyGroup
}

var _ ent.Mutation = (*CompanyGroupMutation)(nil)

// companygroupOption allows management of the mutation configuration using functional options.
type companygroupOption func(*CompanyGroupMutation)

// newCompanyGroupMutation creates new mutation for the CompanyGroup entity.
func newCompanyGroupMutation(c config, op Op, opts ...companygroupOption) *CompanyGroupMutation {
	m := &CompanyGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeCompanyGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyGroupID sets the ID field of the mutation.
func withCompanyGroupID(id string) companygroupOption {
	return func(m *CompanyGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *CompanyGroup
		)
		m.oldValue = func(ctx context.Context) (*CompanyGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompanyGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompanyGroup sets the old CompanyGroup of the mutation.
func withCompanyGroup(node *CompanyGroup) companygroupOption {
	return func(m *CompanyGroupMutation) {
		m.oldValue = func(context.Context) (*CompanyGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompanyGroup entities.
func (m *CompanyGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompanyGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *CompanyGroupMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CompanyGroupMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the CompanyGroup entity.
// If the CompanyGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyGroupMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CompanyGroupMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *CompanyGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CompanyGroup entity.
// If the CompanyGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *CompanyGroupMutation) ClearName() {
	m.name = nil
	m.clearedFields[companygroup.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *CompanyGroupMutation) NameCleared() bool {
	_, ok := m.clearedFields[companygroup.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *CompanyGroupMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, companygroup.FieldName)
}

// SetTickers sets the "tickers" field.
func (m *CompanyGroupMutation) SetTickers(s []string) {
	m.tickers = &s
	m.appendtickers = nil
}

// Tickers returns the value of the "tickers" field in the mutation.
func (m *CompanyGroupMutation) Tickers() (r []string, exists bool) {
	v := m.tickers
	if v == nil {
		return
	}
	return *v, true
}

// OldTickers returns the old "tickers" field's value of the CompanyGroup entity.
// If the CompanyGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyGroupMutation) OldTickers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTickers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTickers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTickers: %w", err)
	}
	return oldValue.Tickers, nil
}

// AppendTickers adds s to the "tickers" field.
func (m *CompanyGroupMutation) AppendTickers(s []string) {
	m.appendtickers = append(m.appendtickers, s...)
}

// AppendedTickers returns the list of values that were appended to the "tickers" field in this mutation.
func (m *CompanyGroupMutation) AppendedTickers() ([]string, bool) {
	if len(m.appendtickers) == 0 {
		return nil, false
	}
	return m.appendtickers, true
}

// ResetTickers resets all changes to the "tickers" field.
func (m *CompanyGroupMutation) ResetTickers() {
	m.tickers = nil
	m.appendtickers = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompanyGroup entity.
// If the CompanyGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by ids.
func (m *CompanyGroupMutation) AddGeneratedContentIDs(ids ...string) {
	if m.generated_contents == nil {
		m.generated_contents = make(map[string]struct{})
	}
	for i := range ids {
		m.generated_contents[ids[i]] = struct{}{}
	}
}

// ClearGeneratedContents clears the "generated_contents" edge to the GeneratedContent entity.
func (m *CompanyGroupMutation) ClearGeneratedContents() {
	m.clearedgenerated_contents = true
}

// GeneratedContentsCleared reports if the "generated_contents" edge to the GeneratedContent entity was cleared.
func (m *CompanyGroupMutation) GeneratedContentsCleared() bool {
	return m.clearedgenerated_contents
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to the GeneratedContent entity by IDs.
func (m *CompanyGroupMutation) RemoveGeneratedContentIDs(ids ...string) {
	if m.removedgenerated_contents == nil {
		m.removedgenerated_contents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.generated_contents, ids[i])
		m.removedgenerated_contents[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedContents returns the removed IDs of the "generated_contents" edge to the GeneratedContent entity.
func (m *CompanyGroupMutation) RemovedGeneratedContentsIDs() (ids []string) {
	for id := range m.removedgenerated_contents {
		ids = append(ids, id)
	}
	return
}

// GeneratedContentsIDs returns the "generated_contents" edge IDs in the mutation.
func (m *CompanyGroupMutation) GeneratedContentsIDs() (ids []string) {
	for id := range m.generated_contents {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedContents resets all changes to the "generated_contents" edge.
func (m *CompanyGroupMutation) ResetGeneratedContents() {
	m.generated_contents = nil
	m.clearedgenerated_contents = false
	m.removedgenerated_contents = nil
}

// Where appends a list predicates to the CompanyGroupMutation builder.
func (m *CompanyGroupMutation) Where(ps ...predicate.CompanyGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompanyGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompanyGroup).
func (m *CompanyGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyGroupMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.slug != nil {
		fields = append(fields, companygroup.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, companygroup.FieldName)
	}
	if m.tickers != nil {
		fields = append(fields, companygroup.FieldTickers)
	}
	if m.created_at != nil {
		fields = append(fields, companygroup.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case companygroup.FieldSlug:
		return m.Slug()
	case companygroup.FieldName:
		return m.Name()
	case companygroup.FieldTickers:
		return m.Tickers()
	case companygroup.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case companygroup.FieldSlug:
		return m.OldSlug(ctx)
	case companygroup.FieldName:
		return m.OldName(ctx)
	case companygroup.FieldTickers:
		return m.OldTickers(ctx)
	case companygroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompanyGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case companygroup.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case companygroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case companygroup.FieldTickers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTickers(v)
		return nil
	case companygroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CompanyGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(companygroup.FieldName) {
		fields = append(fields, companygroup.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyGroupMutation) ClearField(name string) error {
	switch name {
	case companygroup.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown CompanyGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyGroupMutation) ResetField(name string) error {
	switch name {
	case companygroup.FieldSlug:
		m.ResetSlug()
		return nil
	case companygroup.FieldName:
		m.ResetName()
		return nil
	case companygroup.FieldTickers:
		m.ResetTickers()
		return nil
	case companygroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompanyGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.generated_contents != nil {
		edges = append(edges, companygroup.EdgeGeneratedContents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case companygroup.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.generated_contents))
		for id := range m.generated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgenerated_contents != nil {
		edges = append(edges, companygroup.EdgeGeneratedContents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case companygroup.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.removedgenerated_contents))
		for id := range m.removedgenerated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgenerated_contents {
		edges = append(edges, companygroup.EdgeGeneratedContents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case companygroup.EdgeGeneratedContents:
		return m.clearedgenerated_contents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CompanyGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyGroupMutation) ResetEdge(name string) error {
	switch name {
	case companygroup.EdgeGeneratedContents:
		m.ResetGeneratedContents()
		return nil
	}
	return fmt.Errorf("unknown CompanyGroup edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	title                  *string
	document_type          *document.DocumentType
	content                *string
	content_hash           *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	filing                 *string
	clearedfiling          bool
	company                *string
	clearedcompany         bool
	derived_content        map[string]struct{}
	removedderived_content map[string]struct{}
	clearedderived_content bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilingID sets the "filing_id" field.
func (m *DocumentMutation) SetFilingID(s string) {
	m.filing = &s
}

// FilingID returns the value of the "filing_id" field in the mutation.
func (m *DocumentMutation) FilingID() (r string, exists bool) {
	v := m.filing
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingID returns the old "filing_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingID: %w", err)
	}
	return oldValue.FilingID, nil
}

// ResetFilingID resets all changes to the "filing_id" field.
func (m *DocumentMutation) ResetFilingID() {
	m.filing = nil
}

// SetCompanyID sets the "company_id" field.
func (m *DocumentMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DocumentMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DocumentMutation) ResetCompanyID() {
	m.company = nil
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(dt document.DocumentType) {
	m.document_type = &dt
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r document.DocumentType, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v document.DocumentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetContent sets the "content" field.
func (m *DocumentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (m *DocumentMutation) ClearFiling() {
	m.clearedfiling = true
	m.clearedFields[document.FieldFilingID] = struct{}{}
}

// FilingCleared reports if the "filing" edge to the Filing entity was cleared.
func (m *DocumentMutation) FilingCleared() bool {
	return m.clearedfiling
}

// FilingIDs returns the "filing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FilingID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) FilingIDs() (ids []string) {
	if id := m.filing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFiling resets all changes to the "filing" edge.
func (m *DocumentMutation) ResetFiling() {
	m.filing = nil
	m.clearedfiling = false
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *DocumentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[document.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *DocumentMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *DocumentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddDerivedContentIDs adds the "derived_content" edge to the GeneratedContent entity by ids.
func (m *DocumentMutation) AddDerivedContentIDs(ids ...string) {
	if m.derived_content == nil {
		m.derived_content = make(map[string]struct{})
	}
	for i := range ids {
		m.derived_content[ids[i]] = struct{}{}
	}
}

// ClearDerivedContent clears the "derived_content" edge to the GeneratedContent entity.
func (m *DocumentMutation) ClearDerivedContent() {
	m.clearedderived_content = true
}

// DerivedContentCleared reports if the "derived_content" edge to the GeneratedContent entity was cleared.
func (m *DocumentMutation) DerivedContentCleared() bool {
	return m.clearedderived_content
}

// RemoveDerivedContentIDs removes the "derived_content" edge to the GeneratedContent entity by IDs.
func (m *DocumentMutation) RemoveDerivedContentIDs(ids ...string) {
	if m.removedderived_content == nil {
		m.removedderived_content = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.derived_content, ids[i])
		m.removedderived_content[ids[i]] = struct{}{}
	}
}

// RemovedDerivedContent returns the removed IDs of the "derived_content" edge to the GeneratedContent entity.
func (m *DocumentMutation) RemovedDerivedContentIDs() (ids []string) {
	for id := range m.removedderived_content {
		ids = append(ids, id)
	}
	return
}

// DerivedContentIDs returns the "derived_content" edge IDs in the mutation.
func (m *DocumentMutation) DerivedContentIDs() (ids []string) {
	for id := range m.derived_content {
		ids = append(ids, id)
	}
	return
}

// ResetDerivedContent resets all changes to the "derived_content" edge.
func (m *DocumentMutation) ResetDerivedContent() {
	m.derived_content = nil
	m.clearedderived_content = false
	m.removedderived_content = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filing != nil {
		fields = append(fields, document.FieldFilingID)
	}
	if m.company != nil {
		fields = append(fields, document.FieldCompanyID)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.content != nil {
		fields = append(fields, document.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilingID:
		return m.FilingID()
	case document.FieldCompanyID:
		return m.CompanyID()
	case document.FieldTitle:
		return m.Title()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldContent:
		return m.Content()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilingID:
		return m.OldFilingID(ctx)
	case document.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldContent:
		return m.OldContent(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingID(v)
		return nil
	case document.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(document.DocumentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilingID:
		m.ResetFilingID()
		return nil
	case document.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldContent:
		m.ResetContent()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.filing != nil {
		edges = append(edges, document.EdgeFiling)
	}
	if m.company != nil {
		edges = append(edges, document.EdgeCompany)
	}
	if m.derived_content != nil {
		edges = append(edges, document.EdgeDerivedContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFiling:
		if id := m.filing; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeDerivedContent:
		ids := make([]ent.Value, 0, len(m.derived_content))
		for id := range m.derived_content {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedderived_content != nil {
		edges = append(edges, document.EdgeDerivedContent)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDerivedContent:
		ids := make([]ent.Value, 0, len(m.removedderived_content))
		for id := range m.removedderived_content {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfiling {
		edges = append(edges, document.EdgeFiling)
	}
	if m.clearedcompany {
		edges = append(edges, document.EdgeCompany)
	}
	if m.clearedderived_content {
		edges = append(edges, document.EdgeDerivedContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeFiling:
		return m.clearedfiling
	case document.EdgeCompany:
		return m.clearedcompany
	case document.EdgeDerivedContent:
		return m.clearedderived_content
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeFiling:
		m.ClearFiling()
		return nil
	case document.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeFiling:
		m.ResetFiling()
		return nil
	case document.EdgeCompany:
		m.ResetCompany()
		return nil
	case document.EdgeDerivedContent:
		m.ResetDerivedContent()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FilingMutation represents an operation that mutates the Filing nodes in the graph.
type FilingMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	accession_number        *string
	form_type               *string
	filing_date             *time.Time
	period_of_report        *time.Time
	source_url              *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	company                 *string
	clearedcompany          bool
	documents               map[string]struct{}
	removeddocuments        map[string]struct{}
	cleareddocuments        bool
	financial_values        map[string]struct{}
	removedfinancial_values map[string]struct{}
	clearedfinancial_values bool
	done                    bool
	oldValue                func(context.Context) (*Filing, error)
	predicates              []predicate.Filing
}

var _ ent.Mutation = (*FilingMutation)(nil)

// filingOption allows management of the mutation configuration using functional options.
type filingOption func(*FilingMutation)

// newFilingMutation creates new mutation for the Filing entity.
func newFilingMutation(c config, op Op, opts ...filingOption) *FilingMutation {
	m := &FilingMutation{
		config:        c,
		op:            op,
		typ:           TypeFiling,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFilingID sets the ID field of the mutation.
func withFilingID(id string) filingOption {
	return func(m *FilingMutation) {
		var (
			err   error
			once  sync.Once
			value *Filing
		)
		m.oldValue = func(ctx context.Context) (*Filing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Filing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiling sets the old Filing of the mutation.
func withFiling(node *Filing) filingOption {
	return func(m *FilingMutation) {
		m.oldValue = func(context.Context) (*Filing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FilingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FilingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Filing entities.
func (m *FilingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FilingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FilingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Filing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *FilingMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *FilingMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *FilingMutation) ResetCompanyID() {
	m.company = nil
}

// SetAccessionNumber sets the "accession_number" field.
func (m *FilingMutation) SetAccessionNumber(s string) {
	m.accession_number = &s
}

// AccessionNumber returns the value of the "accession_number" field in the mutation.
func (m *FilingMutation) AccessionNumber() (r string, exists bool) {
	v := m.accession_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessionNumber returns the old "accession_number" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldAccessionNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessionNumber: %w", err)
	}
	return oldValue.AccessionNumber, nil
}

// ResetAccessionNumber resets all changes to the "accession_number" field.
func (m *FilingMutation) ResetAccessionNumber() {
	m.accession_number = nil
}

// SetFormType sets the "form_type" field.
func (m *FilingMutation) SetFormType(s string) {
	m.form_type = &s
}

// FormType returns the value of the "form_type" field in the mutation.
func (m *FilingMutation) FormType() (r string, exists bool) {
	v := m.form_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFormType returns the old "form_type" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFormType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormType: %w", err)
	}
	return oldValue.FormType, nil
}

// ResetFormType resets all changes to the "form_type" field.
func (m *FilingMutation) ResetFormType() {
	m.form_type = nil
}

// SetFilingDate sets the "filing_date" field.
func (m *FilingMutation) SetFilingDate(t time.Time) {
	m.filing_date = &t
}

// FilingDate returns the value of the "filing_date" field in the mutation.
func (m *FilingMutation) FilingDate() (r time.Time, exists bool) {
	v := m.filing_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingDate returns the old "filing_date" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFilingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingDate: %w", err)
	}
	return oldValue.FilingDate, nil
}

// ResetFilingDate resets all changes to the "filing_date" field.
func (m *FilingMutation) ResetFilingDate() {
	m.filing_date = nil
}

// SetPeriodOfReport sets the "period_of_report" field.
func (m *FilingMutation) SetPeriodOfReport(t time.Time) {
	m.period_of_report = &t
}

// PeriodOfReport returns the value of the "period_of_report" field in the mutation.
func (m *FilingMutation) PeriodOfReport() (r time.Time, exists bool) {
	v := m.period_of_report
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodOfReport returns the old "period_of_report" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldPeriodOfReport(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodOfReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodOfReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodOfReport: %w", err)
	}
	return oldValue.PeriodOfReport, nil
}

// ClearPeriodOfReport clears the value of the "period_of_report" field.
func (m *FilingMutation) ClearPeriodOfReport() {
	m.period_of_report = nil
	m.clearedFields[filing.FieldPeriodOfReport] = struct{}{}
}

// PeriodOfReportCleared returns if the "period_of_report" field was cleared in this mutation.
func (m *FilingMutation) PeriodOfReportCleared() bool {
	_, ok := m.clearedFields[filing.FieldPeriodOfReport]
	return ok
}

// ResetPeriodOfReport resets all changes to the "period_of_report" field.
func (m *FilingMutation) ResetPeriodOfReport() {
	m.period_of_report = nil
	delete(m.clearedFields, filing.FieldPeriodOfReport)
}

// SetSourceURL sets the "source_url" field.
func (m *FilingMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *FilingMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *FilingMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[filing.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *FilingMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[filing.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *FilingMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, filing.FieldSourceURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *FilingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FilingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FilingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *FilingMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[filing.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *FilingMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *FilingMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *FilingMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *FilingMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *FilingMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *FilingMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *FilingMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *FilingMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FilingMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FilingMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddFinancialValueIDs adds the "financial_values" edge to the FinancialValue entity by ids.
func (m *FilingMutation) AddFinancialValueIDs(ids ...string) {
	if m.financial_values == nil {
		m.financial_values = make(map[string]struct{})
	}
	for i := range ids {
		m.financial_values[ids[i]] = struct{}{}
	}
}

// ClearFinancialValues clears the "financial_values" edge to the FinancialValue entity.
func (m *FilingMutation) ClearFinancialValues() {
	m.clearedfinancial_values = true
}

// FinancialValuesCleared reports if the "financial_values" edge to the FinancialValue entity was cleared.
func (m *FilingMutation) FinancialValuesCleared() bool {
	return m.clearedfinancial_values
}

// RemoveFinancialValueIDs removes the "financial_values" edge to the FinancialValue entity by IDs.
func (m *FilingMutation) RemoveFinancialValueIDs(ids ...string) {
	if m.removedfinancial_values == nil {
		m.removedfinancial_values = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.financial_values, ids[i])
		m.removedfinancial_values[ids[i]] = struct{}{}
	}
}

// RemovedFinancialValues returns the removed IDs of the "financial_values" edge to the FinancialValue entity.
func (m *FilingMutation) RemovedFinancialValuesIDs() (ids []string) {
	for id := range m.removedfinancial_values {
		ids = append(ids, id)
	}
	return
}

// FinancialValuesIDs returns the "financial_values" edge IDs in the mutation.
func (m *FilingMutation) FinancialValuesIDs() (ids []string) {
	for id := range m.financial_values {
		ids = append(ids, id)
	}
	return
}

// ResetFinancialValues resets all changes to the "financial_values" edge.
func (m *FilingMutation) ResetFinancialValues() {
	m.financial_values = nil
	m.clearedfinancial_values = false
	m.removedfinancial_values = nil
}

// Where appends a list predicates to the FilingMutation builder.
func (m *FilingMutation) Where(ps ...predicate.Filing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FilingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FilingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Filing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FilingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FilingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Filing).
func (m *FilingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FilingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.company != nil {
		fields = append(fields, filing.FieldCompanyID)
	}
	if m.accession_number != nil {
		fields = append(fields, filing.FieldAccessionNumber)
	}
	if m.form_type != nil {
		fields = append(fields, filing.FieldFormType)
	}
	if m.filing_date != nil {
		fields = append(fields, filing.FieldFilingDate)
	}
	if m.period_of_report != nil {
		fields = append(fields, filing.FieldPeriodOfReport)
	}
	if m.source_url != nil {
		fields = append(fields, filing.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, filing.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FilingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filing.FieldCompanyID:
		return m.CompanyID()
	case filing.FieldAccessionNumber:
		return m.AccessionNumber()
	case filing.FieldFormType:
		return m.FormType()
	case filing.FieldFilingDate:
		return m.FilingDate()
	case filing.FieldPeriodOfReport:
		return m.PeriodOfReport()
	case filing.FieldSourceURL:
		return m.SourceURL()
	case filing.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FilingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filing.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case filing.FieldAccessionNumber:
		return m.OldAccessionNumber(ctx)
	case filing.FieldFormType:
		return m.OldFormType(ctx)
	case filing.FieldFilingDate:
		return m.OldFilingDate(ctx)
	case filing.FieldPeriodOfReport:
		return m.OldPeriodOfReport(ctx)
	case filing.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case filing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Filing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filing.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case filing.FieldAccessionNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessionNumber(v)
		return nil
	case filing.FieldFormType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormType(v)
		return nil
	case filing.FieldFilingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingDate(v)
		return nil
	case filing.FieldPeriodOfReport:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodOfReport(v)
		return nil
	case filing.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case filing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FilingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FilingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Filing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FilingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filing.FieldPeriodOfReport) {
		fields = append(fields, filing.FieldPeriodOfReport)
	}
	if m.FieldCleared(filing.FieldSourceURL) {
		fields = append(fields, filing.FieldSourceURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FilingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FilingMutation) ClearField(name string) error {
	switch name {
	case filing.FieldPeriodOfReport:
		m.ClearPeriodOfReport()
		return nil
	case filing.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	}
	return fmt.Errorf("unknown Filing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FilingMutation) ResetField(name string) error {
	switch name {
	case filing.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case filing.FieldAccessionNumber:
		m.ResetAccessionNumber()
		return nil
	case filing.FieldFormType:
		m.ResetFormType()
		return nil
	case filing.FieldFilingDate:
		m.ResetFilingDate()
		return nil
	case filing.FieldPeriodOfReport:
		m.ResetPeriodOfReport()
		return nil
	case filing.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case filing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FilingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, filing.EdgeCompany)
	}
	if m.documents != nil {
		edges = append(edges, filing.EdgeDocuments)
	}
	if m.financial_values != nil {
		edges = append(edges, filing.EdgeFinancialValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FilingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filing.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case filing.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case filing.EdgeFinancialValues:
		ids := make([]ent.Value, 0, len(m.financial_values))
		for id := range m.financial_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FilingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, filing.EdgeDocuments)
	}
	if m.removedfinancial_values != nil {
		edges = append(edges, filing.EdgeFinancialValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FilingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case filing.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case filing.EdgeFinancialValues:
		ids := make([]ent.Value, 0, len(m.removedfinancial_values))
		for id := range m.removedfinancial_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FilingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, filing.EdgeCompany)
	}
	if m.cleareddocuments {
		edges = append(edges, filing.EdgeDocuments)
	}
	if m.clearedfinancial_values {
		edges = append(edges, filing.EdgeFinancialValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FilingMutation) EdgeCleared(name string) bool {
	switch name {
	case filing.EdgeCompany:
		return m.clearedcompany
	case filing.EdgeDocuments:
		return m.cleareddocuments
	case filing.EdgeFinancialValues:
		return m.clearedfinancial_values
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FilingMutation) ClearEdge(name string) error {
	switch name {
	case filing.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Filing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FilingMutation) ResetEdge(name string) error {
	switch name {
	case filing.EdgeCompany:
		m.ResetCompany()
		return nil
	case filing.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case filing.EdgeFinancialValues:
		m.ResetFinancialValues()
		return nil
	}
	return fmt.Errorf("unknown Filing edge %s", name)
}

// FinancialConceptMutation represents an operation that mutates the FinancialConcept nodes in the graph.
type FinancialConceptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	labels        *[]string
	appendlabels  []string
	clearedFields map[string]struct{}
	values        map[string]struct{}
	removedvalues map[string]struct{}
	clearedvalues bool
	done          bool
	oldValue      func(context.Context) (*FinancialConcept, error)
	predicates    []predicate.FinancialConcept
}

var _ ent.Mutation = (*FinancialConceptMutation)(nil)

// financialconceptOption allows management of the mutation configuration using functional options.
type financialconceptOption func(*FinancialConceptMutation)

// newFinancialConceptMutation creates new mutation for the FinancialConcept entity.
func newFinancialConceptMutation(c config, op Op, opts ...financialconceptOption) *FinancialConceptMutation {
	m := &FinancialConceptMutation{
		config:        c,
		op:            op,
		typ:           TypeFinancialConcept,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinancialConceptID sets the ID field of the mutation.
func withFinancialConceptID(id string) financialconceptOption {
	return func(m *FinancialConceptMutation) {
		var (
			err   error
			once  sync.Once
			value *FinancialConcept
		)
		m.oldValue = func(ctx context.Context) (*FinancialConcept, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinancialConcept.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinancialConcept sets the old FinancialConcept of the mutation.
func withFinancialConcept(node *FinancialConcept) financialconceptOption {
	return func(m *FinancialConceptMutation) {
		m.oldValue = func(context.Context) (*FinancialConcept, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinancialConceptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinancialConceptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinancialConcept entities.
func (m *FinancialConceptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinancialConceptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinancialConceptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinancialConcept.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FinancialConceptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FinancialConceptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FinancialConcept entity.
// If the FinancialConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialConceptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FinancialConceptMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *FinancialConceptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FinancialConceptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the FinancialConcept entity.
// If the FinancialConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialConceptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FinancialConceptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[financialconcept.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FinancialConceptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[financialconcept.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FinancialConceptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, financialconcept.FieldDescription)
}

// SetLabels sets the "labels" field.
func (m *FinancialConceptMutation) SetLabels(s []string) {
	m.labels = &s
	m.appendlabels = nil
}

// Labels returns the value of the "labels" field in the mutation.
func (m *FinancialConceptMutation) Labels() (r []string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the FinancialConcept entity.
// If the FinancialConcept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialConceptMutation) OldLabels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// AppendLabels adds s to the "labels" field.
func (m *FinancialConceptMutation) AppendLabels(s []string) {
	m.appendlabels = append(m.appendlabels, s...)
}

// AppendedLabels returns the list of values that were appended to the "labels" field in this mutation.
func (m *FinancialConceptMutation) AppendedLabels() ([]string, bool) {
	if len(m.appendlabels) == 0 {
		return nil, false
	}
	return m.appendlabels, true
}

// ClearLabels clears the value of the "labels" field.
func (m *FinancialConceptMutation) ClearLabels() {
	m.labels = nil
	m.appendlabels = nil
	m.clearedFields[financialconcept.FieldLabels] = struct{}{}
}

// LabelsCleared returns if the "labels" field was cleared in this mutation.
func (m *FinancialConceptMutation) LabelsCleared() bool {
	_, ok := m.clearedFields[financialconcept.FieldLabels]
	return ok
}

// ResetLabels resets all changes to the "labels" field.
func (m *FinancialConceptMutation) ResetLabels() {
	m.labels = nil
	m.appendlabels = nil
	delete(m.clearedFields, financialconcept.FieldLabels)
}

// AddValueIDs adds the "values" edge to the FinancialValue entity by ids.
func (m *FinancialConceptMutation) AddValueIDs(ids ...string) {
	if m.values == nil {
		m.values = make(map[string]struct{})
	}
	for i := range ids {
		m.values[ids[i]] = struct{}{}
	}
}

// ClearValues clears the "values" edge to the FinancialValue entity.
func (m *FinancialConceptMutation) ClearValues() {
	m.clearedvalues = true
}

// ValuesCleared reports if the "values" edge to the FinancialValue entity was cleared.
func (m *FinancialConceptMutation) ValuesCleared() bool {
	return m.clearedvalues
}

// RemoveValueIDs removes the "values" edge to the FinancialValue entity by IDs.
func (m *FinancialConceptMutation) RemoveValueIDs(ids ...string) {
	if m.removedvalues == nil {
		m.removedvalues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.values, ids[i])
		m.removedvalues[ids[i]] = struct{}{}
	}
}

// RemovedValues returns the removed IDs of the "values" edge to the FinancialValue entity.
func (m *FinancialConceptMutation) RemovedValuesIDs() (ids []string) {
	for id := range m.removedvalues {
		ids = append(ids, id)
	}
	return
}

// ValuesIDs returns the "values" edge IDs in the mutation.
func (m *FinancialConceptMutation) ValuesIDs() (ids []string) {
	for id := range m.values {
		ids = append(ids, id)
	}
	return
}

// ResetValues resets all changes to the "values" edge.
func (m *FinancialConceptMutation) ResetValues() {
	m.values = nil
	m.clearedvalues = false
	m.removedvalues = nil
}

// Where appends a list predicates to the FinancialConceptMutation builder.
func (m *FinancialConceptMutation) Where(ps ...predicate.FinancialConcept) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinancialConceptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinancialConceptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinancialConcept, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinancialConceptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinancialConceptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinancialConcept).
func (m *FinancialConceptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinancialConceptMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, financialconcept.FieldName)
	}
	if m.description != nil {
		fields = append(fields, financialconcept.FieldDescription)
	}
	if m.labels != nil {
		fields = append(fields, financialconcept.FieldLabels)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinancialConceptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case financialconcept.FieldName:
		return m.Name()
	case financialconcept.FieldDescription:
		return m.Description()
	case financialconcept.FieldLabels:
		return m.Labels()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinancialConceptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case financialconcept.FieldName:
		return m.OldName(ctx)
	case financialconcept.FieldDescription:
		return m.OldDescription(ctx)
	case financialconcept.FieldLabels:
		return m.OldLabels(ctx)
	}
	return nil, fmt.Errorf("unknown FinancialConcept field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialConceptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case financialconcept.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case financialconcept.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case financialconcept.FieldLabels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialConcept field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinancialConceptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinancialConceptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialConceptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FinancialConcept numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinancialConceptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(financialconcept.FieldDescription) {
		fields = append(fields, financialconcept.FieldDescription)
	}
	if m.FieldCleared(financialconcept.FieldLabels) {
		fields = append(fields, financialconcept.FieldLabels)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinancialConceptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinancialConceptMutation) ClearField(name string) error {
	switch name {
	case financialconcept.FieldDescription:
		m.ClearDescription()
		return nil
	case financialconcept.FieldLabels:
		m.ClearLabels()
		return nil
	}
	return fmt.Errorf("unknown FinancialConcept nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinancialConceptMutation) ResetField(name string) error {
	switch name {
	case financialconcept.FieldName:
		m.ResetName()
		return nil
	case financialconcept.FieldDescription:
		m.ResetDescription()
		return nil
	case financialconcept.FieldLabels:
		m.ResetLabels()
		return nil
	}
	return fmt.Errorf("unknown FinancialConcept field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinancialConceptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.values != nil {
		edges = append(edges, financialconcept.EdgeValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinancialConceptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case financialconcept.EdgeValues:
		ids := make([]ent.Value, 0, len(m.values))
		for id := range m.values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinancialConceptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvalues != nil {
		edges = append(edges, financialconcept.EdgeValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinancialConceptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case financialconcept.EdgeValues:
		ids := make([]ent.Value, 0, len(m.removedvalues))
		for id := range m.removedvalues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinancialConceptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvalues {
		edges = append(edges, financialconcept.EdgeValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinancialConceptMutation) EdgeCleared(name string) bool {
	switch name {
	case financialconcept.EdgeValues:
		return m.clearedvalues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinancialConceptMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FinancialConcept unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinancialConceptMutation) ResetEdge(name string) error {
	switch name {
	case financialconcept.EdgeValues:
		m.ResetValues()
		return nil
	}
	return fmt.Errorf("unknown FinancialConcept edge %s", name)
}

// FinancialValueMutation represents an operation that mutates the FinancialValue nodes in the graph.
type FinancialValueMutation struct {
	config
	op             Op
	typ            string
	id             *string
	value_date     *time.Time
	value          *decimal.Decimal
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	company        *string
	clearedcompany bool
	concept        *string
	clearedconcept bool
	filing         *string
	clearedfiling  bool
	done           bool
	oldValue       func(context.Context) (*FinancialValue, error)
	predicates     []predicate.FinancialValue
}

var _ ent.Mutation = (*FinancialValueMutation)(nil)

// financialvalueOption allows management of the mutation configuration using functional options.
type financialvalueOption func(*FinancialValueMutation)

// newFinancialValueMutation creates new mutation for the FinancialValue entity.
func newFinancialValueMutation(c config, op Op, opts ...financialvalueOption) *FinancialValueMutation {
	m := &FinancialValueMutation{
		config:        c,
		op:            op,
		typ:           TypeFinancialValue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinancialValueID sets the ID field of the mutation.
func withFinancialValueID(id string) financialvalueOption {
	return func(m *FinancialValueMutation) {
		var (
			err   error
			once  sync.Once
			value *FinancialValue
		)
		m.oldValue = func(ctx context.Context) (*FinancialValue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinancialValue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinancialValue sets the old FinancialValue of the mutation.
func withFinancialValue(node *FinancialValue) financialvalueOption {
	return func(m *FinancialValueMutation) {
		m.oldValue = func(context.Context) (*FinancialValue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinancialValueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinancialValueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinancialValue entities.
func (m *FinancialValueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinancialValueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinancialValueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinancialValue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *FinancialValueMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *FinancialValueMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *FinancialValueMutation) ResetCompanyID() {
	m.company = nil
}

// SetConceptID sets the "concept_id" field.
func (m *FinancialValueMutation) SetConceptID(s string) {
	m.concept = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *FinancialValueMutation) ConceptID() (r string, exists bool) {
	v := m.concept
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *FinancialValueMutation) ResetConceptID() {
	m.concept = nil
}

// SetFilingID sets the "filing_id" field.
func (m *FinancialValueMutation) SetFilingID(s string) {
	m.filing = &s
}

// FilingID returns the value of the "filing_id" field in the mutation.
func (m *FinancialValueMutation) FilingID() (r string, exists bool) {
	v := m.filing
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingID returns the old "filing_id" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldFilingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingID: %w", err)
	}
	return oldValue.FilingID, nil
}

// ClearFilingID clears the value of the "filing_id" field.
func (m *FinancialValueMutation) ClearFilingID() {
	m.filing = nil
	m.clearedFields[financialvalue.FieldFilingID] = struct{}{}
}

// FilingIDCleared returns if the "filing_id" field was cleared in this mutation.
func (m *FinancialValueMutation) FilingIDCleared() bool {
	_, ok := m.clearedFields[financialvalue.FieldFilingID]
	return ok
}

// ResetFilingID resets all changes to the "filing_id" field.
func (m *FinancialValueMutation) ResetFilingID() {
	m.filing = nil
	delete(m.clearedFields, financialvalue.FieldFilingID)
}

// SetValueDate sets the "value_date" field.
func (m *FinancialValueMutation) SetValueDate(t time.Time) {
	m.value_date = &t
}

// ValueDate returns the value of the "value_date" field in the mutation.
func (m *FinancialValueMutation) ValueDate() (r time.Time, exists bool) {
	v := m.value_date
	if v == nil {
		return
	}
	return *v, true
}

// OldValueDate returns the old "value_date" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldValueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueDate: %w", err)
	}
	return oldValue.ValueDate, nil
}

// ResetValueDate resets all changes to the "value_date" field.
func (m *FinancialValueMutation) ResetValueDate() {
	m.value_date = nil
}

// SetValue sets the "value" field.
func (m *FinancialValueMutation) SetValue(d decimal.Decimal) {
	m.value = &d
}

// Value returns the value of the "value" field in the mutation.
func (m *FinancialValueMutation) Value() (r decimal.Decimal, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldValue(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *FinancialValueMutation) ResetValue() {
	m.value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FinancialValueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FinancialValueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FinancialValueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FinancialValueMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FinancialValueMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FinancialValue entity.
// If the FinancialValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialValueMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FinancialValueMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *FinancialValueMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[financialvalue.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *FinancialValueMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *FinancialValueMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *FinancialValueMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearConcept clears the "concept" edge to the FinancialConcept entity.
func (m *FinancialValueMutation) ClearConcept() {
	m.clearedconcept = true
	m.clearedFields[financialvalue.FieldConceptID] = struct{}{}
}

// ConceptCleared reports if the "concept" edge to the FinancialConcept entity was cleared.
func (m *FinancialValueMutation) ConceptCleared() bool {
	return m.clearedconcept
}

// ConceptIDs returns the "concept" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConceptID instead. It exists only for internal usage by the builders.
func (m *FinancialValueMutation) ConceptIDs() (ids []string) {
	if id := m.concept; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConcept resets all changes to the "concept" edge.
func (m *FinancialValueMutation) ResetConcept() {
	m.concept = nil
	m.clearedconcept = false
}

// ClearFiling clears the "filing" edge to the Filing entity.
func (m *FinancialValueMutation) ClearFiling() {
	m.clearedfiling = true
	m.clearedFields[financialvalue.FieldFilingID] = struct{}{}
}

// FilingCleared reports if the "filing" edge to the Filing entity was cleared.
func (m *FinancialValueMutation) FilingCleared() bool {
	return m.FilingIDCleared() || m.clearedfiling
}

// FilingIDs returns the "filing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FilingID instead. It exists only for internal usage by the builders.
func (m *FinancialValueMutation) FilingIDs() (ids []string) {
	if id := m.filing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFiling resets all changes to the "filing" edge.
func (m *FinancialValueMutation) ResetFiling() {
	m.filing = nil
	m.clearedfiling = false
}

// Where appends a list predicates to the FinancialValueMutation builder.
func (m *FinancialValueMutation) Where(ps ...predicate.FinancialValue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinancialValueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinancialValueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinancialValue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinancialValueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinancialValueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinancialValue).
func (m *FinancialValueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinancialValueMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.company != nil {
		fields = append(fields, financialvalue.FieldCompanyID)
	}
	if m.concept != nil {
		fields = append(fields, financialvalue.FieldConceptID)
	}
	if m.filing != nil {
		fields = append(fields, financialvalue.FieldFilingID)
	}
	if m.value_date != nil {
		fields = append(fields, financialvalue.FieldValueDate)
	}
	if m.value != nil {
		fields = append(fields, financialvalue.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, financialvalue.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, financialvalue.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinancialValueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case financialvalue.FieldCompanyID:
		return m.CompanyID()
	case financialvalue.FieldConceptID:
		return m.ConceptID()
	case financialvalue.FieldFilingID:
		return m.FilingID()
	case financialvalue.FieldValueDate:
		return m.ValueDate()
	case financialvalue.FieldValue:
		return m.Value()
	case financialvalue.FieldCreatedAt:
		return m.CreatedAt()
	case financialvalue.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinancialValueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case financialvalue.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case financialvalue.FieldConceptID:
		return m.OldConceptID(ctx)
	case financialvalue.FieldFilingID:
		return m.OldFilingID(ctx)
	case financialvalue.FieldValueDate:
		return m.OldValueDate(ctx)
	case financialvalue.FieldValue:
		return m.OldValue(ctx)
	case financialvalue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case financialvalue.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FinancialValue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialValueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case financialvalue.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case financialvalue.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case financialvalue.FieldFilingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingID(v)
		return nil
	case financialvalue.FieldValueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueDate(v)
		return nil
	case financialvalue.FieldValue:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case financialvalue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case financialvalue.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialValue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinancialValueMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinancialValueMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialValueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FinancialValue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinancialValueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(financialvalue.FieldFilingID) {
		fields = append(fields, financialvalue.FieldFilingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinancialValueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinancialValueMutation) ClearField(name string) error {
	switch name {
	case financialvalue.FieldFilingID:
		m.ClearFilingID()
		return nil
	}
	return fmt.Errorf("unknown FinancialValue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinancialValueMutation) ResetField(name string) error {
	switch name {
	case financialvalue.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case financialvalue.FieldConceptID:
		m.ResetConceptID()
		return nil
	case financialvalue.FieldFilingID:
		m.ResetFilingID()
		return nil
	case financialvalue.FieldValueDate:
		m.ResetValueDate()
		return nil
	case financialvalue.FieldValue:
		m.ResetValue()
		return nil
	case financialvalue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case financialvalue.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FinancialValue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinancialValueMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, financialvalue.EdgeCompany)
	}
	if m.concept != nil {
		edges = append(edges, financialvalue.EdgeConcept)
	}
	if m.filing != nil {
		edges = append(edges, financialvalue.EdgeFiling)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinancialValueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case financialvalue.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case financialvalue.EdgeConcept:
		if id := m.concept; id != nil {
			return []ent.Value{*id}
		}
	case financialvalue.EdgeFiling:
		if id := m.filing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinancialValueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinancialValueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinancialValueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, financialvalue.EdgeCompany)
	}
	if m.clearedconcept {
		edges = append(edges, financialvalue.EdgeConcept)
	}
	if m.clearedfiling {
		edges = append(edges, financialvalue.EdgeFiling)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinancialValueMutation) EdgeCleared(name string) bool {
	switch name {
	case financialvalue.EdgeCompany:
		return m.clearedcompany
	case financialvalue.EdgeConcept:
		return m.clearedconcept
	case financialvalue.EdgeFiling:
		return m.clearedfiling
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinancialValueMutation) ClearEdge(name string) error {
	switch name {
	case financialvalue.EdgeCompany:
		m.ClearCompany()
		return nil
	case financialvalue.EdgeConcept:
		m.ClearConcept()
		return nil
	case financialvalue.EdgeFiling:
		m.ClearFiling()
		return nil
	}
	return fmt.Errorf("unknown FinancialValue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinancialValueMutation) ResetEdge(name string) error {
	switch name {
	case financialvalue.EdgeCompany:
		m.ResetCompany()
		return nil
	case financialvalue.EdgeConcept:
		m.ResetConcept()
		return nil
	case financialvalue.EdgeFiling:
		m.ResetFiling()
		return nil
	}
	return fmt.Errorf("unknown FinancialValue edge %s", name)
}

// GeneratedContentMutation represents an operation that mutates the GeneratedContent nodes in the graph.
type GeneratedContentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	content                 *string
	summary                 *string
	content_hash            *string
	document_type           *generatedcontent.DocumentType
	form_type               *string
	content_stage           *generatedcontent.ContentStage
	source_type             *generatedcontent.SourceType
	total_duration          *float64
	addtotal_duration       *float64
	input_tokens            *int
	addinput_tokens         *int
	output_tokens           *int
	addoutput_tokens        *int
	warning                 *string
	description             *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	company                 *string
	clearedcompany          bool
	group                   *string
	clearedgroup            bool
	system_prompt           *string
	clearedsystem_prompt    bool
	model_config            *string
	clearedmodel_config     bool
	source_documents        map[string]struct{}
	removedsource_documents map[string]struct{}
	clearedsource_documents bool
	source_content          map[string]struct{}
	removedsource_content   map[string]struct{}
	clearedsource_content   bool
	derived_content         map[string]struct{}
	removedderived_content  map[string]struct{}
	clearedderived_content  bool
	done                    bool
	oldValue                func(context.Context) (*GeneratedContent, error)
	predicates              []predicate.GeneratedContent
}

var _ ent.Mutation = (*GeneratedContentMutation)(nil)

// generatedcontentOption allows management of the mutation configuration using functional options.
type generatedcontentOption func(*GeneratedContentMutation)

// newGeneratedContentMutation creates new mutation for the GeneratedContent entity.
func newGeneratedContentMutation(c config, op Op, opts ...generatedcontentOption) *GeneratedContentMutation {
	m := &GeneratedContentMutation{
		config:        c,
		op:            op,
		typ:           TypeGeneratedContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeneratedContentID sets the ID field of the mutation.
func withGeneratedContentID(id string) generatedcontentOption {
	return func(m *GeneratedContentMutation) {
		var (
			err   error
			once  sync.Once
			value *GeneratedContent
		)
		m.oldValue = func(ctx context.Context) (*GeneratedContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeneratedContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeneratedContent sets the old GeneratedContent of the mutation.
func withGeneratedContent(node *GeneratedContent) generatedcontentOption {
	return func(m *GeneratedContentMutation) {
		m.oldValue = func(context.Context) (*GeneratedContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeneratedContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeneratedContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeneratedContent entities.
func (m *GeneratedContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeneratedContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeneratedContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeneratedContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContent sets the "content" field.
func (m *GeneratedContentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *GeneratedContentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *GeneratedContentMutation) ResetContent() {
	m.content = nil
}

// SetSummary sets the "summary" field.
func (m *GeneratedContentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *GeneratedContentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *GeneratedContentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[generatedcontent.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *GeneratedContentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *GeneratedContentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, generatedcontent.FieldSummary)
}

// SetContentHash sets the "content_hash" field.
func (m *GeneratedContentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *GeneratedContentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *GeneratedContentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCompanyID sets the "company_id" field.
func (m *GeneratedContentMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *GeneratedContentMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldCompanyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *GeneratedContentMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[generatedcontent.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *GeneratedContentMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *GeneratedContentMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, generatedcontent.FieldCompanyID)
}

// SetGroupID sets the "group_id" field.
func (m *GeneratedContentMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GeneratedContentMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *GeneratedContentMutation) ClearGroupID() {
	m.group = nil
	m.clearedFields[generatedcontent.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *GeneratedContentMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GeneratedContentMutation) ResetGroupID() {
	m.group = nil
	delete(m.clearedFields, generatedcontent.FieldGroupID)
}

// SetDocumentType sets the "document_type" field.
func (m *GeneratedContentMutation) SetDocumentType(gt generatedcontent.DocumentType) {
	m.document_type = &gt
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *GeneratedContentMutation) DocumentType() (r generatedcontent.DocumentType, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldDocumentType(ctx context.Context) (v *generatedcontent.DocumentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *GeneratedContentMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[generatedcontent.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *GeneratedContentMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *GeneratedContentMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, generatedcontent.FieldDocumentType)
}

// SetFormType sets the "form_type" field.
func (m *GeneratedContentMutation) SetFormType(s string) {
	m.form_type = &s
}

// FormType returns the value of the "form_type" field in the mutation.
func (m *GeneratedContentMutation) FormType() (r string, exists bool) {
	v := m.form_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFormType returns the old "form_type" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldFormType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormType: %w", err)
	}
	return oldValue.FormType, nil
}

// ClearFormType clears the value of the "form_type" field.
func (m *GeneratedContentMutation) ClearFormType() {
	m.form_type = nil
	m.clearedFields[generatedcontent.FieldFormType] = struct{}{}
}

// FormTypeCleared returns if the "form_type" field was cleared in this mutation.
func (m *GeneratedContentMutation) FormTypeCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldFormType]
	return ok
}

// ResetFormType resets all changes to the "form_type" field.
func (m *GeneratedContentMutation) ResetFormType() {
	m.form_type = nil
	delete(m.clearedFields, generatedcontent.FieldFormType)
}

// SetContentStage sets the "content_stage" field.
func (m *GeneratedContentMutation) SetContentStage(gs generatedcontent.ContentStage) {
	m.content_stage = &gs
}

// ContentStage returns the value of the "content_stage" field in the mutation.
func (m *GeneratedContentMutation) ContentStage() (r generatedcontent.ContentStage, exists bool) {
	v := m.content_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldContentStage returns the old "content_stage" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldContentStage(ctx context.Context) (v generatedcontent.ContentStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentStage: %w", err)
	}
	return oldValue.ContentStage, nil
}

// ResetContentStage resets all changes to the "content_stage" field.
func (m *GeneratedContentMutation) ResetContentStage() {
	m.content_stage = nil
}

// SetSourceType sets the "source_type" field.
func (m *GeneratedContentMutation) SetSourceType(gt generatedcontent.SourceType) {
	m.source_type = &gt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *GeneratedContentMutation) SourceType() (r generatedcontent.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldSourceType(ctx context.Context) (v generatedcontent.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *GeneratedContentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSystemPromptID sets the "system_prompt_id" field.
func (m *GeneratedContentMutation) SetSystemPromptID(s string) {
	m.system_prompt = &s
}

// SystemPromptID returns the value of the "system_prompt_id" field in the mutation.
func (m *GeneratedContentMutation) SystemPromptID() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPromptID returns the old "system_prompt_id" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldSystemPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPromptID: %w", err)
	}
	return oldValue.SystemPromptID, nil
}

// ResetSystemPromptID resets all changes to the "system_prompt_id" field.
func (m *GeneratedContentMutation) ResetSystemPromptID() {
	m.system_prompt = nil
}

// SetModelConfigID sets the "model_config_id" field.
func (m *GeneratedContentMutation) SetModelConfigID(s string) {
	m.model_config = &s
}

// ModelConfigID returns the value of the "model_config_id" field in the mutation.
func (m *GeneratedContentMutation) ModelConfigID() (r string, exists bool) {
	v := m.model_config
	if v == nil {
		return
	}
	return *v, true
}

// OldModelConfigID returns the old "model_config_id" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldModelConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelConfigID: %w", err)
	}
	return oldValue.ModelConfigID, nil
}

// ResetModelConfigID resets all changes to the "model_config_id" field.
func (m *GeneratedContentMutation) ResetModelConfigID() {
	m.model_config = nil
}

// SetTotalDuration sets the "total_duration" field.
func (m *GeneratedContentMutation) SetTotalDuration(f float64) {
	m.total_duration = &f
	m.addtotal_duration = nil
}

// TotalDuration returns the value of the "total_duration" field in the mutation.
func (m *GeneratedContentMutation) TotalDuration() (r float64, exists bool) {
	v := m.total_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDuration returns the old "total_duration" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldTotalDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDuration: %w", err)
	}
	return oldValue.TotalDuration, nil
}

// AddTotalDuration adds f to the "total_duration" field.
func (m *GeneratedContentMutation) AddTotalDuration(f float64) {
	if m.addtotal_duration != nil {
		*m.addtotal_duration += f
	} else {
		m.addtotal_duration = &f
	}
}

// AddedTotalDuration returns the value that was added to the "total_duration" field in this mutation.
func (m *GeneratedContentMutation) AddedTotalDuration() (r float64, exists bool) {
	v := m.addtotal_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalDuration resets all changes to the "total_duration" field.
func (m *GeneratedContentMutation) ResetTotalDuration() {
	m.total_duration = nil
	m.addtotal_duration = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *GeneratedContentMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *GeneratedContentMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *GeneratedContentMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *GeneratedContentMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *GeneratedContentMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[generatedcontent.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *GeneratedContentMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *GeneratedContentMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, generatedcontent.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *GeneratedContentMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *GeneratedContentMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *GeneratedContentMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *GeneratedContentMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *GeneratedContentMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[generatedcontent.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *GeneratedContentMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *GeneratedContentMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, generatedcontent.FieldOutputTokens)
}

// SetWarning sets the "warning" field.
func (m *GeneratedContentMutation) SetWarning(s string) {
	m.warning = &s
}

// Warning returns the value of the "warning" field in the mutation.
func (m *GeneratedContentMutation) Warning() (r string, exists bool) {
	v := m.warning
	if v == nil {
		return
	}
	return *v, true
}

// OldWarning returns the old "warning" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldWarning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarning: %w", err)
	}
	return oldValue.Warning, nil
}

// ClearWarning clears the value of the "warning" field.
func (m *GeneratedContentMutation) ClearWarning() {
	m.warning = nil
	m.clearedFields[generatedcontent.FieldWarning] = struct{}{}
}

// WarningCleared returns if the "warning" field was cleared in this mutation.
func (m *GeneratedContentMutation) WarningCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldWarning]
	return ok
}

// ResetWarning resets all changes to the "warning" field.
func (m *GeneratedContentMutation) ResetWarning() {
	m.warning = nil
	delete(m.clearedFields, generatedcontent.FieldWarning)
}

// SetDescription sets the "description" field.
func (m *GeneratedContentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GeneratedContentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GeneratedContentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[generatedcontent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GeneratedContentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[generatedcontent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GeneratedContentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, generatedcontent.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *GeneratedContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GeneratedContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GeneratedContent entity.
// If the GeneratedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeneratedContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GeneratedContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *GeneratedContentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[generatedcontent.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *GeneratedContentMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *GeneratedContentMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *GeneratedContentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearGroup clears the "group" edge to the CompanyGroup entity.
func (m *GeneratedContentMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[generatedcontent.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the CompanyGroup entity was cleared.
func (m *GeneratedContentMutation) GroupCleared() bool {
	return m.GroupIDCleared() || m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GeneratedContentMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GeneratedContentMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearSystemPrompt clears the "system_prompt" edge to the Prompt entity.
func (m *GeneratedContentMutation) ClearSystemPrompt() {
	m.clearedsystem_prompt = true
	m.clearedFields[generatedcontent.FieldSystemPromptID] = struct{}{}
}

// SystemPromptCleared reports if the "system_prompt" edge to the Prompt entity was cleared.
func (m *GeneratedContentMutation) SystemPromptCleared() bool {
	return m.clearedsystem_prompt
}

// SystemPromptIDs returns the "system_prompt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SystemPromptID instead. It exists only for internal usage by the builders.
func (m *GeneratedContentMutation) SystemPromptIDs() (ids []string) {
	if id := m.system_prompt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSystemPrompt resets all changes to the "system_prompt" edge.
func (m *GeneratedContentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	m.clearedsystem_prompt = false
}

// ClearModelConfig clears the "model_config" edge to the ModelConfig entity.
func (m *GeneratedContentMutation) ClearModelConfig() {
	m.clearedmodel_config = true
	m.clearedFields[generatedcontent.FieldModelConfigID] = struct{}{}
}

// ModelConfigCleared reports if the "model_config" edge to the ModelConfig entity was cleared.
func (m *GeneratedContentMutation) ModelConfigCleared() bool {
	return m.clearedmodel_config
}

// ModelConfigIDs returns the "model_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModelConfigID instead. It exists only for internal usage by the builders.
func (m *GeneratedContentMutation) ModelConfigIDs() (ids []string) {
	if id := m.model_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModelConfig resets all changes to the "model_config" edge.
func (m *GeneratedContentMutation) ResetModelConfig() {
	m.model_config = nil
	m.clearedmodel_config = false
}

// AddSourceDocumentIDs adds the "source_documents" edge to the Document entity by ids.
func (m *GeneratedContentMutation) AddSourceDocumentIDs(ids ...string) {
	if m.source_documents == nil {
		m.source_documents = make(map[string]struct{})
	}
	for i := range ids {
		m.source_documents[ids[i]] = struct{}{}
	}
}

// ClearSourceDocuments clears the "source_documents" edge to the Document entity.
func (m *GeneratedContentMutation) ClearSourceDocuments() {
	m.clearedsource_documents = true
}

// SourceDocumentsCleared reports if the "source_documents" edge to the Document entity was cleared.
func (m *GeneratedContentMutation) SourceDocumentsCleared() bool {
	return m.clearedsource_documents
}

// RemoveSourceDocumentIDs removes the "source_documents" edge to the Document entity by IDs.
func (m *GeneratedContentMutation) RemoveSourceDocumentIDs(ids ...string) {
	if m.removedsource_documents == nil {
		m.removedsource_documents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.source_documents, ids[i])
		m.removedsource_documents[ids[i]] = struct{}{}
	}
}

// RemovedSourceDocuments returns the removed IDs of the "source_documents" edge to the Document entity.
func (m *GeneratedContentMutation) RemovedSourceDocumentsIDs() (ids []string) {
	for id := range m.removedsource_documents {
		ids = append(ids, id)
	}
	return
}

// SourceDocumentsIDs returns the "source_documents" edge IDs in the mutation.
func (m *GeneratedContentMutation) SourceDocumentsIDs() (ids []string) {
	for id := range m.source_documents {
		ids = append(ids, id)
	}
	return
}

// ResetSourceDocuments resets all changes to the "source_documents" edge.
func (m *GeneratedContentMutation) ResetSourceDocuments() {
	m.source_documents = nil
	m.clearedsource_documents = false
	m.removedsource_documents = nil
}

// AddSourceContentIDs adds the "source_content" edge to the GeneratedContent entity by ids.
func (m *GeneratedContentMutation) AddSourceContentIDs(ids ...string) {
	if m.source_content == nil {
		m.source_content = make(map[string]struct{})
	}
	for i := range ids {
		m.source_content[ids[i]] = struct{}{}
	}
}

// ClearSourceContent clears the "source_content" edge to the GeneratedContent entity.
func (m *GeneratedContentMutation) ClearSourceContent() {
	m.clearedsource_content = true
}

// SourceContentCleared reports if the "source_content" edge to the GeneratedContent entity was cleared.
func (m *GeneratedContentMutation) SourceContentCleared() bool {
	return m.clearedsource_content
}

// RemoveSourceContentIDs removes the "source_content" edge to the GeneratedContent entity by IDs.
func (m *GeneratedContentMutation) RemoveSourceContentIDs(ids ...string) {
	if m.removedsource_content == nil {
		m.removedsource_content = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.source_content, ids[i])
		m.removedsource_content[ids[i]] = struct{}{}
	}
}

// RemovedSourceContent returns the removed IDs of the "source_content" edge to the GeneratedContent entity.
func (m *GeneratedContentMutation) RemovedSourceContentIDs() (ids []string) {
	for id := range m.removedsource_content {
		ids = append(ids, id)
	}
	return
}

// SourceContentIDs returns the "source_content" edge IDs in the mutation.
func (m *GeneratedContentMutation) SourceContentIDs() (ids []string) {
	for id := range m.source_content {
		ids = append(ids, id)
	}
	return
}

// ResetSourceContent resets all changes to the "source_content" edge.
func (m *GeneratedContentMutation) ResetSourceContent() {
	m.source_content = nil
	m.clearedsource_content = false
	m.removedsource_content = nil
}

// AddDerivedContentIDs adds the "derived_content" edge to the GeneratedContent entity by ids.
func (m *GeneratedContentMutation) AddDerivedContentIDs(ids ...string) {
	if m.derived_content == nil {
		m.derived_content = make(map[string]struct{})
	}
	for i := range ids {
		m.derived_content[ids[i]] = struct{}{}
	}
}

// ClearDerivedContent clears the "derived_content" edge to the GeneratedContent entity.
func (m *GeneratedContentMutation) ClearDerivedContent() {
	m.clearedderived_content = true
}

// DerivedContentCleared reports if the "derived_content" edge to the GeneratedContent entity was cleared.
func (m *GeneratedContentMutation) DerivedContentCleared() bool {
	return m.clearedderived_content
}

// RemoveDerivedContentIDs removes the "derived_content" edge to the GeneratedContent entity by IDs.
func (m *GeneratedContentMutation) RemoveDerivedContentIDs(ids ...string) {
	if m.removedderived_content == nil {
		m.removedderived_content = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.derived_content, ids[i])
		m.removedderived_content[ids[i]] = struct{}{}
	}
}

// RemovedDerivedContent returns the removed IDs of the "derived_content" edge to the GeneratedContent entity.
func (m *GeneratedContentMutation) RemovedDerivedContentIDs() (ids []string) {
	for id := range m.removedderived_content {
		ids = append(ids, id)
	}
	return
}

// DerivedContentIDs returns the "derived_content" edge IDs in the mutation.
func (m *GeneratedContentMutation) DerivedContentIDs() (ids []string) {
	for id := range m.derived_content {
		ids = append(ids, id)
	}
	return
}

// ResetDerivedContent resets all changes to the "derived_content" edge.
func (m *GeneratedContentMutation) ResetDerivedContent() {
	m.derived_content = nil
	m.clearedderived_content = false
	m.removedderived_content = nil
}

// Where appends a list predicates to the GeneratedContentMutation builder.
func (m *GeneratedContentMutation) Where(ps ...predicate.GeneratedContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeneratedContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeneratedContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeneratedContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeneratedContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeneratedContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeneratedContent).
func (m *GeneratedContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeneratedContentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.content != nil {
		fields = append(fields, generatedcontent.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, generatedcontent.FieldSummary)
	}
	if m.content_hash != nil {
		fields = append(fields, generatedcontent.FieldContentHash)
	}
	if m.company != nil {
		fields = append(fields, generatedcontent.FieldCompanyID)
	}
	if m.group != nil {
		fields = append(fields, generatedcontent.FieldGroupID)
	}
	if m.document_type != nil {
		fields = append(fields, generatedcontent.FieldDocumentType)
	}
	if m.form_type != nil {
		fields = append(fields, generatedcontent.FieldFormType)
	}
	if m.content_stage != nil {
		fields = append(fields, generatedcontent.FieldContentStage)
	}
	if m.source_type != nil {
		fields = append(fields, generatedcontent.FieldSourceType)
	}
	if m.system_prompt != nil {
		fields = append(fields, generatedcontent.FieldSystemPromptID)
	}
	if m.model_config != nil {
		fields = append(fields, generatedcontent.FieldModelConfigID)
	}
	if m.total_duration != nil {
		fields = append(fields, generatedcontent.FieldTotalDuration)
	}
	if m.input_tokens != nil {
		fields = append(fields, generatedcontent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, generatedcontent.FieldOutputTokens)
	}
	if m.warning != nil {
		fields = append(fields, generatedcontent.FieldWarning)
	}
	if m.description != nil {
		fields = append(fields, generatedcontent.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, generatedcontent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeneratedContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generatedcontent.FieldContent:
		return m.Content()
	case generatedcontent.FieldSummary:
		return m.Summary()
	case generatedcontent.FieldContentHash:
		return m.ContentHash()
	case generatedcontent.FieldCompanyID:
		return m.CompanyID()
	case generatedcontent.FieldGroupID:
		return m.GroupID()
	case generatedcontent.FieldDocumentType:
		return m.DocumentType()
	case generatedcontent.FieldFormType:
		return m.FormType()
	case generatedcontent.FieldContentStage:
		return m.ContentStage()
	case generatedcontent.FieldSourceType:
		return m.SourceType()
	case generatedcontent.FieldSystemPromptID:
		return m.SystemPromptID()
	case generatedcontent.FieldModelConfigID:
		return m.ModelConfigID()
	case generatedcontent.FieldTotalDuration:
		return m.TotalDuration()
	case generatedcontent.FieldInputTokens:
		return m.InputTokens()
	case generatedcontent.FieldOutputTokens:
		return m.OutputTokens()
	case generatedcontent.FieldWarning:
		return m.Warning()
	case generatedcontent.FieldDescription:
		return m.Description()
	case generatedcontent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeneratedContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generatedcontent.FieldContent:
		return m.OldContent(ctx)
	case generatedcontent.FieldSummary:
		return m.OldSummary(ctx)
	case generatedcontent.FieldContentHash:
		return m.OldContentHash(ctx)
	case generatedcontent.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case generatedcontent.FieldGroupID:
		return m.OldGroupID(ctx)
	case generatedcontent.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case generatedcontent.FieldFormType:
		return m.OldFormType(ctx)
	case generatedcontent.FieldContentStage:
		return m.OldContentStage(ctx)
	case generatedcontent.FieldSourceType:
		return m.OldSourceType(ctx)
	case generatedcontent.FieldSystemPromptID:
		return m.OldSystemPromptID(ctx)
	case generatedcontent.FieldModelConfigID:
		return m.OldModelConfigID(ctx)
	case generatedcontent.FieldTotalDuration:
		return m.OldTotalDuration(ctx)
	case generatedcontent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case generatedcontent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case generatedcontent.FieldWarning:
		return m.OldWarning(ctx)
	case generatedcontent.FieldDescription:
		return m.OldDescription(ctx)
	case generatedcontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeneratedContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generatedcontent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case generatedcontent.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case generatedcontent.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case generatedcontent.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case generatedcontent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case generatedcontent.FieldDocumentType:
		v, ok := value.(generatedcontent.DocumentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case generatedcontent.FieldFormType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormType(v)
		return nil
	case generatedcontent.FieldContentStage:
		v, ok := value.(generatedcontent.ContentStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentStage(v)
		return nil
	case generatedcontent.FieldSourceType:
		v, ok := value.(generatedcontent.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case generatedcontent.FieldSystemPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPromptID(v)
		return nil
	case generatedcontent.FieldModelConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelConfigID(v)
		return nil
	case generatedcontent.FieldTotalDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDuration(v)
		return nil
	case generatedcontent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case generatedcontent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case generatedcontent.FieldWarning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarning(v)
		return nil
	case generatedcontent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case generatedcontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeneratedContentMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_duration != nil {
		fields = append(fields, generatedcontent.FieldTotalDuration)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, generatedcontent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, generatedcontent.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeneratedContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generatedcontent.FieldTotalDuration:
		return m.AddedTotalDuration()
	case generatedcontent.FieldInputTokens:
		return m.AddedInputTokens()
	case generatedcontent.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeneratedContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generatedcontent.FieldTotalDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDuration(v)
		return nil
	case generatedcontent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case generatedcontent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeneratedContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generatedcontent.FieldSummary) {
		fields = append(fields, generatedcontent.FieldSummary)
	}
	if m.FieldCleared(generatedcontent.FieldCompanyID) {
		fields = append(fields, generatedcontent.FieldCompanyID)
	}
	if m.FieldCleared(generatedcontent.FieldGroupID) {
		fields = append(fields, generatedcontent.FieldGroupID)
	}
	if m.FieldCleared(generatedcontent.FieldDocumentType) {
		fields = append(fields, generatedcontent.FieldDocumentType)
	}
	if m.FieldCleared(generatedcontent.FieldFormType) {
		fields = append(fields, generatedcontent.FieldFormType)
	}
	if m.FieldCleared(generatedcontent.FieldInputTokens) {
		fields = append(fields, generatedcontent.FieldInputTokens)
	}
	if m.FieldCleared(generatedcontent.FieldOutputTokens) {
		fields = append(fields, generatedcontent.FieldOutputTokens)
	}
	if m.FieldCleared(generatedcontent.FieldWarning) {
		fields = append(fields, generatedcontent.FieldWarning)
	}
	if m.FieldCleared(generatedcontent.FieldDescription) {
		fields = append(fields, generatedcontent.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeneratedContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeneratedContentMutation) ClearField(name string) error {
	switch name {
	case generatedcontent.FieldSummary:
		m.ClearSummary()
		return nil
	case generatedcontent.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case generatedcontent.FieldGroupID:
		m.ClearGroupID()
		return nil
	case generatedcontent.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case generatedcontent.FieldFormType:
		m.ClearFormType()
		return nil
	case generatedcontent.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case generatedcontent.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case generatedcontent.FieldWarning:
		m.ClearWarning()
		return nil
	case generatedcontent.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeneratedContentMutation) ResetField(name string) error {
	switch name {
	case generatedcontent.FieldContent:
		m.ResetContent()
		return nil
	case generatedcontent.FieldSummary:
		m.ResetSummary()
		return nil
	case generatedcontent.FieldContentHash:
		m.ResetContentHash()
		return nil
	case generatedcontent.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case generatedcontent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case generatedcontent.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case generatedcontent.FieldFormType:
		m.ResetFormType()
		return nil
	case generatedcontent.FieldContentStage:
		m.ResetContentStage()
		return nil
	case generatedcontent.FieldSourceType:
		m.ResetSourceType()
		return nil
	case generatedcontent.FieldSystemPromptID:
		m.ResetSystemPromptID()
		return nil
	case generatedcontent.FieldModelConfigID:
		m.ResetModelConfigID()
		return nil
	case generatedcontent.FieldTotalDuration:
		m.ResetTotalDuration()
		return nil
	case generatedcontent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case generatedcontent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case generatedcontent.FieldWarning:
		m.ResetWarning()
		return nil
	case generatedcontent.FieldDescription:
		m.ResetDescription()
		return nil
	case generatedcontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeneratedContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.company != nil {
		edges = append(edges, generatedcontent.EdgeCompany)
	}
	if m.group != nil {
		edges = append(edges, generatedcontent.EdgeGroup)
	}
	if m.system_prompt != nil {
		edges = append(edges, generatedcontent.EdgeSystemPrompt)
	}
	if m.model_config != nil {
		edges = append(edges, generatedcontent.EdgeModelConfig)
	}
	if m.source_documents != nil {
		edges = append(edges, generatedcontent.EdgeSourceDocuments)
	}
	if m.source_content != nil {
		edges = append(edges, generatedcontent.EdgeSourceContent)
	}
	if m.derived_content != nil {
		edges = append(edges, generatedcontent.EdgeDerivedContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeneratedContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generatedcontent.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case generatedcontent.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case generatedcontent.EdgeSystemPrompt:
		if id := m.system_prompt; id != nil {
			return []ent.Value{*id}
		}
	case generatedcontent.EdgeModelConfig:
		if id := m.model_config; id != nil {
			return []ent.Value{*id}
		}
	case generatedcontent.EdgeSourceDocuments:
		ids := make([]ent.Value, 0, len(m.source_documents))
		for id := range m.source_documents {
			ids = append(ids, id)
		}
		return ids
	case generatedcontent.EdgeSourceContent:
		ids := make([]ent.Value, 0, len(m.source_content))
		for id := range m.source_content {
			ids = append(ids, id)
		}
		return ids
	case generatedcontent.EdgeDerivedContent:
		ids := make([]ent.Value, 0, len(m.derived_content))
		for id := range m.derived_content {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeneratedContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedsource_documents != nil {
		edges = append(edges, generatedcontent.EdgeSourceDocuments)
	}
	if m.removedsource_content != nil {
		edges = append(edges, generatedcontent.EdgeSourceContent)
	}
	if m.removedderived_content != nil {
		edges = append(edges, generatedcontent.EdgeDerivedContent)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeneratedContentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case generatedcontent.EdgeSourceDocuments:
		ids := make([]ent.Value, 0, len(m.removedsource_documents))
		for id := range m.removedsource_documents {
			ids = append(ids, id)
		}
		return ids
	case generatedcontent.EdgeSourceContent:
		ids := make([]ent.Value, 0, len(m.removedsource_content))
		for id := range m.removedsource_content {
			ids = append(ids, id)
		}
		return ids
	case generatedcontent.EdgeDerivedContent:
		ids := make([]ent.Value, 0, len(m.removedderived_content))
		for id := range m.removedderived_content {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeneratedContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedcompany {
		edges = append(edges, generatedcontent.EdgeCompany)
	}
	if m.clearedgroup {
		edges = append(edges, generatedcontent.EdgeGroup)
	}
	if m.clearedsystem_prompt {
		edges = append(edges, generatedcontent.EdgeSystemPrompt)
	}
	if m.clearedmodel_config {
		edges = append(edges, generatedcontent.EdgeModelConfig)
	}
	if m.clearedsource_documents {
		edges = append(edges, generatedcontent.EdgeSourceDocuments)
	}
	if m.clearedsource_content {
		edges = append(edges, generatedcontent.EdgeSourceContent)
	}
	if m.clearedderived_content {
		edges = append(edges, generatedcontent.EdgeDerivedContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeneratedContentMutation) EdgeCleared(name string) bool {
	switch name {
	case generatedcontent.EdgeCompany:
		return m.clearedcompany
	case generatedcontent.EdgeGroup:
		return m.clearedgroup
	case generatedcontent.EdgeSystemPrompt:
		return m.clearedsystem_prompt
	case generatedcontent.EdgeModelConfig:
		return m.clearedmodel_config
	case generatedcontent.EdgeSourceDocuments:
		return m.clearedsource_documents
	case generatedcontent.EdgeSourceContent:
		return m.clearedsource_content
	case generatedcontent.EdgeDerivedContent:
		return m.clearedderived_content
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeneratedContentMutation) ClearEdge(name string) error {
	switch name {
	case generatedcontent.EdgeCompany:
		m.ClearCompany()
		return nil
	case generatedcontent.EdgeGroup:
		m.ClearGroup()
		return nil
	case generatedcontent.EdgeSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case generatedcontent.EdgeModelConfig:
		m.ClearModelConfig()
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeneratedContentMutation) ResetEdge(name string) error {
	switch name {
	case generatedcontent.EdgeCompany:
		m.ResetCompany()
		return nil
	case generatedcontent.EdgeGroup:
		m.ResetGroup()
		return nil
	case generatedcontent.EdgeSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case generatedcontent.EdgeModelConfig:
		m.ResetModelConfig()
		return nil
	case generatedcontent.EdgeSourceDocuments:
		m.ResetSourceDocuments()
		return nil
	case generatedcontent.EdgeSourceContent:
		m.ResetSourceContent()
		return nil
	case generatedcontent.EdgeDerivedContent:
		m.ResetDerivedContent()
		return nil
	}
	return fmt.Errorf("unknown GeneratedContent edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op             Op
	typ            string
	id             *string
	job_type       *job.JobType
	params         *map[string]interface{}
	priority       *int
	addpriority    *int
	status         *job.Status
	created_at     *time.Time
	started_at     *time.Time
	completed_at   *time.Time
	updated_at     *time.Time
	retry_count    *int
	addretry_count *int
	max_retries    *int
	addmax_retries *int
	worker_id      *string
	error          *string
	result         *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Job, error)
	predicates     []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(jt job.JobType) {
	m.job_type = &jt
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r job.JobType, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v job.JobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetParams sets the "params" field.
func (m *JobMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *JobMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *JobMutation) ClearParams() {
	m.params = nil
	m.clearedFields[job.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *JobMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[job.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *JobMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, job.FieldParams)
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *JobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *JobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *JobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *JobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *JobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.params != nil {
		fields = append(fields, job.FieldParams)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldJobType:
		return m.JobType()
	case job.FieldParams:
		return m.Params()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldStatus:
		return m.Status()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldRetryCount:
		return m.RetryCount()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldError:
		return m.Error()
	case job.FieldResult:
		return m.Result()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldParams:
		return m.OldParams(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldJobType:
		v, ok := value.(job.JobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldRetryCount:
		return m.AddedRetryCount()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldParams) {
		fields = append(fields, job.FieldParams)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldParams:
		m.ClearParams()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldParams:
		m.ResetParams()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	model                     *string
	options_json              *string
	content_hash              *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	generated_contents        map[string]struct{}
	removedgenerated_contents map[string]struct{}
	clearedgenerated_contents bool
	done                      bool
	oldValue                  func(context.Context) (*ModelConfig, error)
	predicates                []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id string) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfig entities.
func (m *ModelConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModel sets the "model" field.
func (m *ModelConfigMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ModelConfigMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ModelConfigMutation) ResetModel() {
	m.model = nil
}

// SetOptionsJSON sets the "options_json" field.
func (m *ModelConfigMutation) SetOptionsJSON(s string) {
	m.options_json = &s
}

// OptionsJSON returns the value of the "options_json" field in the mutation.
func (m *ModelConfigMutation) OptionsJSON() (r string, exists bool) {
	v := m.options_json
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionsJSON returns the old "options_json" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldOptionsJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionsJSON: %w", err)
	}
	return oldValue.OptionsJSON, nil
}

// ResetOptionsJSON resets all changes to the "options_json" field.
func (m *ModelConfigMutation) ResetOptionsJSON() {
	m.options_json = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ModelConfigMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ModelConfigMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ModelConfigMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by ids.
func (m *ModelConfigMutation) AddGeneratedContentIDs(ids ...string) {
	if m.generated_contents == nil {
		m.generated_contents = make(map[string]struct{})
	}
	for i := range ids {
		m.generated_contents[ids[i]] = struct{}{}
	}
}

// ClearGeneratedContents clears the "generated_contents" edge to the GeneratedContent entity.
func (m *ModelConfigMutation) ClearGeneratedContents() {
	m.clearedgenerated_contents = true
}

// GeneratedContentsCleared reports if the "generated_contents" edge to the GeneratedContent entity was cleared.
func (m *ModelConfigMutation) GeneratedContentsCleared() bool {
	return m.clearedgenerated_contents
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to the GeneratedContent entity by IDs.
func (m *ModelConfigMutation) RemoveGeneratedContentIDs(ids ...string) {
	if m.removedgenerated_contents == nil {
		m.removedgenerated_contents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.generated_contents, ids[i])
		m.removedgenerated_contents[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedContents returns the removed IDs of the "generated_contents" edge to the GeneratedContent entity.
func (m *ModelConfigMutation) RemovedGeneratedContentsIDs() (ids []string) {
	for id := range m.removedgenerated_contents {
		ids = append(ids, id)
	}
	return
}

// GeneratedContentsIDs returns the "generated_contents" edge IDs in the mutation.
func (m *ModelConfigMutation) GeneratedContentsIDs() (ids []string) {
	for id := range m.generated_contents {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedContents resets all changes to the "generated_contents" edge.
func (m *ModelConfigMutation) ResetGeneratedContents() {
	m.generated_contents = nil
	m.clearedgenerated_contents = false
	m.removedgenerated_contents = nil
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.model != nil {
		fields = append(fields, modelconfig.FieldModel)
	}
	if m.options_json != nil {
		fields = append(fields, modelconfig.FieldOptionsJSON)
	}
	if m.content_hash != nil {
		fields = append(fields, modelconfig.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldModel:
		return m.Model()
	case modelconfig.FieldOptionsJSON:
		return m.OptionsJSON()
	case modelconfig.FieldContentHash:
		return m.ContentHash()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldModel:
		return m.OldModel(ctx)
	case modelconfig.FieldOptionsJSON:
		return m.OldOptionsJSON(ctx)
	case modelconfig.FieldContentHash:
		return m.OldContentHash(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case modelconfig.FieldOptionsJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionsJSON(v)
		return nil
	case modelconfig.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldModel:
		m.ResetModel()
		return nil
	case modelconfig.FieldOptionsJSON:
		m.ResetOptionsJSON()
		return nil
	case modelconfig.FieldContentHash:
		m.ResetContentHash()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.generated_contents != nil {
		edges = append(edges, modelconfig.EdgeGeneratedContents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case modelconfig.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.generated_contents))
		for id := range m.generated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgenerated_contents != nil {
		edges = append(edges, modelconfig.EdgeGeneratedContents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case modelconfig.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.removedgenerated_contents))
		for id := range m.removedgenerated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgenerated_contents {
		edges = append(edges, modelconfig.EdgeGeneratedContents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case modelconfig.EdgeGeneratedContents:
		return m.clearedgenerated_contents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	switch name {
	case modelconfig.EdgeGeneratedContents:
		m.ResetGeneratedContents()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	forms             *[]string
	appendforms       []string
	trigger           *pipelinerun.Trigger
	status            *pipelinerun.Status
	jobs_created      *int
	addjobs_created   *int
	jobs_completed    *int
	addjobs_completed *int
	jobs_failed       *int
	addjobs_failed    *int
	started_at        *time.Time
	completed_at      *time.Time
	error             *string
	run_metadata      *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	company           *string
	clearedcompany    bool
	done              bool
	oldValue          func(context.Context) (*PipelineRun, error)
	predicates        []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *PipelineRunMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *PipelineRunMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompanyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *PipelineRunMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[pipelinerun.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *PipelineRunMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *PipelineRunMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, pipelinerun.FieldCompanyID)
}

// SetForms sets the "forms" field.
func (m *PipelineRunMutation) SetForms(s []string) {
	m.forms = &s
	m.appendforms = nil
}

// Forms returns the value of the "forms" field in the mutation.
func (m *PipelineRunMutation) Forms() (r []string, exists bool) {
	v := m.forms
	if v == nil {
		return
	}
	return *v, true
}

// OldForms returns the old "forms" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldForms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForms: %w", err)
	}
	return oldValue.Forms, nil
}

// AppendForms adds s to the "forms" field.
func (m *PipelineRunMutation) AppendForms(s []string) {
	m.appendforms = append(m.appendforms, s...)
}

// AppendedForms returns the list of values that were appended to the "forms" field in this mutation.
func (m *PipelineRunMutation) AppendedForms() ([]string, bool) {
	if len(m.appendforms) == 0 {
		return nil, false
	}
	return m.appendforms, true
}

// ClearForms clears the value of the "forms" field.
func (m *PipelineRunMutation) ClearForms() {
	m.forms = nil
	m.appendforms = nil
	m.clearedFields[pipelinerun.FieldForms] = struct{}{}
}

// FormsCleared returns if the "forms" field was cleared in this mutation.
func (m *PipelineRunMutation) FormsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldForms]
	return ok
}

// ResetForms resets all changes to the "forms" field.
func (m *PipelineRunMutation) ResetForms() {
	m.forms = nil
	m.appendforms = nil
	delete(m.clearedFields, pipelinerun.FieldForms)
}

// SetTrigger sets the "trigger" field.
func (m *PipelineRunMutation) SetTrigger(pi pipelinerun.Trigger) {
	m.trigger = &pi
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *PipelineRunMutation) Trigger() (r pipelinerun.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTrigger(ctx context.Context) (v pipelinerun.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *PipelineRunMutation) ResetTrigger() {
	m.trigger = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetJobsCreated sets the "jobs_created" field.
func (m *PipelineRunMutation) SetJobsCreated(i int) {
	m.jobs_created = &i
	m.addjobs_created = nil
}

// JobsCreated returns the value of the "jobs_created" field in the mutation.
func (m *PipelineRunMutation) JobsCreated() (r int, exists bool) {
	v := m.jobs_created
	if v == nil {
		return
	}
	return *v, true
}

// OldJobsCreated returns the old "jobs_created" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldJobsCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobsCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobsCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobsCreated: %w", err)
	}
	return oldValue.JobsCreated, nil
}

// AddJobsCreated adds i to the "jobs_created" field.
func (m *PipelineRunMutation) AddJobsCreated(i int) {
	if m.addjobs_created != nil {
		*m.addjobs_created += i
	} else {
		m.addjobs_created = &i
	}
}

// AddedJobsCreated returns the value that was added to the "jobs_created" field in this mutation.
func (m *PipelineRunMutation) AddedJobsCreated() (r int, exists bool) {
	v := m.addjobs_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetJobsCreated resets all changes to the "jobs_created" field.
func (m *PipelineRunMutation) ResetJobsCreated() {
	m.jobs_created = nil
	m.addjobs_created = nil
}

// SetJobsCompleted sets the "jobs_completed" field.
func (m *PipelineRunMutation) SetJobsCompleted(i int) {
	m.jobs_completed = &i
	m.addjobs_completed = nil
}

// JobsCompleted returns the value of the "jobs_completed" field in the mutation.
func (m *PipelineRunMutation) JobsCompleted() (r int, exists bool) {
	v := m.jobs_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldJobsCompleted returns the old "jobs_completed" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldJobsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobsCompleted: %w", err)
	}
	return oldValue.JobsCompleted, nil
}

// AddJobsCompleted adds i to the "jobs_completed" field.
func (m *PipelineRunMutation) AddJobsCompleted(i int) {
	if m.addjobs_completed != nil {
		*m.addjobs_completed += i
	} else {
		m.addjobs_completed = &i
	}
}

// AddedJobsCompleted returns the value that was added to the "jobs_completed" field in this mutation.
func (m *PipelineRunMutation) AddedJobsCompleted() (r int, exists bool) {
	v := m.addjobs_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetJobsCompleted resets all changes to the "jobs_completed" field.
func (m *PipelineRunMutation) ResetJobsCompleted() {
	m.jobs_completed = nil
	m.addjobs_completed = nil
}

// SetJobsFailed sets the "jobs_failed" field.
func (m *PipelineRunMutation) SetJobsFailed(i int) {
	m.jobs_failed = &i
	m.addjobs_failed = nil
}

// JobsFailed returns the value of the "jobs_failed" field in the mutation.
func (m *PipelineRunMutation) JobsFailed() (r int, exists bool) {
	v := m.jobs_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldJobsFailed returns the old "jobs_failed" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldJobsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobsFailed: %w", err)
	}
	return oldValue.JobsFailed, nil
}

// AddJobsFailed adds i to the "jobs_failed" field.
func (m *PipelineRunMutation) AddJobsFailed(i int) {
	if m.addjobs_failed != nil {
		*m.addjobs_failed += i
	} else {
		m.addjobs_failed = &i
	}
}

// AddedJobsFailed returns the value that was added to the "jobs_failed" field in this mutation.
func (m *PipelineRunMutation) AddedJobsFailed() (r int, exists bool) {
	v := m.addjobs_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetJobsFailed resets all changes to the "jobs_failed" field.
func (m *PipelineRunMutation) ResetJobsFailed() {
	m.jobs_failed = nil
	m.addjobs_failed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetError sets the "error" field.
func (m *PipelineRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PipelineRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *PipelineRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[pipelinerun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *PipelineRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, pipelinerun.FieldError)
}

// SetRunMetadata sets the "run_metadata" field.
func (m *PipelineRunMutation) SetRunMetadata(value map[string]interface{}) {
	m.run_metadata = &value
}

// RunMetadata returns the value of the "run_metadata" field in the mutation.
func (m *PipelineRunMutation) RunMetadata() (r map[string]interface{}, exists bool) {
	v := m.run_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRunMetadata returns the old "run_metadata" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldRunMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunMetadata: %w", err)
	}
	return oldValue.RunMetadata, nil
}

// ClearRunMetadata clears the value of the "run_metadata" field.
func (m *PipelineRunMutation) ClearRunMetadata() {
	m.run_metadata = nil
	m.clearedFields[pipelinerun.FieldRunMetadata] = struct{}{}
}

// RunMetadataCleared returns if the "run_metadata" field was cleared in this mutation.
func (m *PipelineRunMutation) RunMetadataCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldRunMetadata]
	return ok
}

// ResetRunMetadata resets all changes to the "run_metadata" field.
func (m *PipelineRunMutation) ResetRunMetadata() {
	m.run_metadata = nil
	delete(m.clearedFields, pipelinerun.FieldRunMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *PipelineRunMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[pipelinerun.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *PipelineRunMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *PipelineRunMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *PipelineRunMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.company != nil {
		fields = append(fields, pipelinerun.FieldCompanyID)
	}
	if m.forms != nil {
		fields = append(fields, pipelinerun.FieldForms)
	}
	if m.trigger != nil {
		fields = append(fields, pipelinerun.FieldTrigger)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.jobs_created != nil {
		fields = append(fields, pipelinerun.FieldJobsCreated)
	}
	if m.jobs_completed != nil {
		fields = append(fields, pipelinerun.FieldJobsCompleted)
	}
	if m.jobs_failed != nil {
		fields = append(fields, pipelinerun.FieldJobsFailed)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, pipelinerun.FieldError)
	}
	if m.run_metadata != nil {
		fields = append(fields, pipelinerun.FieldRunMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldCompanyID:
		return m.CompanyID()
	case pipelinerun.FieldForms:
		return m.Forms()
	case pipelinerun.FieldTrigger:
		return m.Trigger()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldJobsCreated:
		return m.JobsCreated()
	case pipelinerun.FieldJobsCompleted:
		return m.JobsCompleted()
	case pipelinerun.FieldJobsFailed:
		return m.JobsFailed()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldError:
		return m.Error()
	case pipelinerun.FieldRunMetadata:
		return m.RunMetadata()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case pipelinerun.FieldForms:
		return m.OldForms(ctx)
	case pipelinerun.FieldTrigger:
		return m.OldTrigger(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldJobsCreated:
		return m.OldJobsCreated(ctx)
	case pipelinerun.FieldJobsCompleted:
		return m.OldJobsCompleted(ctx)
	case pipelinerun.FieldJobsFailed:
		return m.OldJobsFailed(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldError:
		return m.OldError(ctx)
	case pipelinerun.FieldRunMetadata:
		return m.OldRunMetadata(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case pipelinerun.FieldForms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForms(v)
		return nil
	case pipelinerun.FieldTrigger:
		v, ok := value.(pipelinerun.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldJobsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobsCreated(v)
		return nil
	case pipelinerun.FieldJobsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobsCompleted(v)
		return nil
	case pipelinerun.FieldJobsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobsFailed(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case pipelinerun.FieldRunMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunMetadata(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addjobs_created != nil {
		fields = append(fields, pipelinerun.FieldJobsCreated)
	}
	if m.addjobs_completed != nil {
		fields = append(fields, pipelinerun.FieldJobsCompleted)
	}
	if m.addjobs_failed != nil {
		fields = append(fields, pipelinerun.FieldJobsFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldJobsCreated:
		return m.AddedJobsCreated()
	case pipelinerun.FieldJobsCompleted:
		return m.AddedJobsCompleted()
	case pipelinerun.FieldJobsFailed:
		return m.AddedJobsFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldJobsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobsCreated(v)
		return nil
	case pipelinerun.FieldJobsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobsCompleted(v)
		return nil
	case pipelinerun.FieldJobsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobsFailed(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldCompanyID) {
		fields = append(fields, pipelinerun.FieldCompanyID)
	}
	if m.FieldCleared(pipelinerun.FieldForms) {
		fields = append(fields, pipelinerun.FieldForms)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldError) {
		fields = append(fields, pipelinerun.FieldError)
	}
	if m.FieldCleared(pipelinerun.FieldRunMetadata) {
		fields = append(fields, pipelinerun.FieldRunMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case pipelinerun.FieldForms:
		m.ClearForms()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldError:
		m.ClearError()
		return nil
	case pipelinerun.FieldRunMetadata:
		m.ClearRunMetadata()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case pipelinerun.FieldForms:
		m.ResetForms()
		return nil
	case pipelinerun.FieldTrigger:
		m.ResetTrigger()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldJobsCreated:
		m.ResetJobsCreated()
		return nil
	case pipelinerun.FieldJobsCompleted:
		m.ResetJobsCompleted()
		return nil
	case pipelinerun.FieldJobsFailed:
		m.ResetJobsFailed()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldError:
		m.ResetError()
		return nil
	case pipelinerun.FieldRunMetadata:
		m.ResetRunMetadata()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, pipelinerun.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, pipelinerun.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	case pipelinerun.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	role                      *prompt.Role
	description               *string
	content                   *string
	content_hash              *string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	generated_contents        map[string]struct{}
	removedgenerated_contents map[string]struct{}
	clearedgenerated_contents bool
	done                      bool
	oldValue                  func(context.Context) (*Prompt, error)
	predicates                []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *PromptMutation) SetRole(pr prompt.Role) {
	m.role = &pr
}

// Role returns the value of the "role" field in the mutation.
func (m *PromptMutation) Role() (r prompt.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldRole(ctx context.Context) (v prompt.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *PromptMutation) ResetRole() {
	m.role = nil
}

// SetDescription sets the "description" field.
func (m *PromptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PromptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PromptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[prompt.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PromptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[prompt.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PromptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, prompt.FieldDescription)
}

// SetContent sets the "content" field.
func (m *PromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PromptMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PromptMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PromptMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddGeneratedContentIDs adds the "generated_contents" edge to the GeneratedContent entity by ids.
func (m *PromptMutation) AddGeneratedContentIDs(ids ...string) {
	if m.generated_contents == nil {
		m.generated_contents = make(map[string]struct{})
	}
	for i := range ids {
		m.generated_contents[ids[i]] = struct{}{}
	}
}

// ClearGeneratedContents clears the "generated_contents" edge to the GeneratedContent entity.
func (m *PromptMutation) ClearGeneratedContents() {
	m.clearedgenerated_contents = true
}

// GeneratedContentsCleared reports if the "generated_contents" edge to the GeneratedContent entity was cleared.
func (m *PromptMutation) GeneratedContentsCleared() bool {
	return m.clearedgenerated_contents
}

// RemoveGeneratedContentIDs removes the "generated_contents" edge to the GeneratedContent entity by IDs.
func (m *PromptMutation) RemoveGeneratedContentIDs(ids ...string) {
	if m.removedgenerated_contents == nil {
		m.removedgenerated_contents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.generated_contents, ids[i])
		m.removedgenerated_contents[ids[i]] = struct{}{}
	}
}

// RemovedGeneratedContents returns the removed IDs of the "generated_contents" edge to the GeneratedContent entity.
func (m *PromptMutation) RemovedGeneratedContentsIDs() (ids []string) {
	for id := range m.removedgenerated_contents {
		ids = append(ids, id)
	}
	return
}

// GeneratedContentsIDs returns the "generated_contents" edge IDs in the mutation.
func (m *PromptMutation) GeneratedContentsIDs() (ids []string) {
	for id := range m.generated_contents {
		ids = append(ids, id)
	}
	return
}

// ResetGeneratedContents resets all changes to the "generated_contents" edge.
func (m *PromptMutation) ResetGeneratedContents() {
	m.generated_contents = nil
	m.clearedgenerated_contents = false
	m.removedgenerated_contents = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, prompt.FieldName)
	}
	if m.role != nil {
		fields = append(fields, prompt.FieldRole)
	}
	if m.description != nil {
		fields = append(fields, prompt.FieldDescription)
	}
	if m.content != nil {
		fields = append(fields, prompt.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, prompt.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldName:
		return m.Name()
	case prompt.FieldRole:
		return m.Role()
	case prompt.FieldDescription:
		return m.Description()
	case prompt.FieldContent:
		return m.Content()
	case prompt.FieldContentHash:
		return m.ContentHash()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldName:
		return m.OldName(ctx)
	case prompt.FieldRole:
		return m.OldRole(ctx)
	case prompt.FieldDescription:
		return m.OldDescription(ctx)
	case prompt.FieldContent:
		return m.OldContent(ctx)
	case prompt.FieldContentHash:
		return m.OldContentHash(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompt.FieldRole:
		v, ok := value.(prompt.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case prompt.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case prompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case prompt.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldDescription) {
		fields = append(fields, prompt.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldName:
		m.ResetName()
		return nil
	case prompt.FieldRole:
		m.ResetRole()
		return nil
	case prompt.FieldDescription:
		m.ResetDescription()
		return nil
	case prompt.FieldContent:
		m.ResetContent()
		return nil
	case prompt.FieldContentHash:
		m.ResetContentHash()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.generated_contents != nil {
		edges = append(edges, prompt.EdgeGeneratedContents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prompt.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.generated_contents))
		for id := range m.generated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgenerated_contents != nil {
		edges = append(edges, prompt.EdgeGeneratedContents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prompt.EdgeGeneratedContents:
		ids := make([]ent.Value, 0, len(m.removedgenerated_contents))
		for id := range m.removedgenerated_contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgenerated_contents {
		edges = append(edges, prompt.EdgeGeneratedContents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	switch name {
	case prompt.EdgeGeneratedContents:
		return m.clearedgenerated_contents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	switch name {
	case prompt.EdgeGeneratedContents:
		m.ResetGeneratedContents()
		return nil
	}
	return fmt.Errorf("unknown Prompt edge %s", name)
}
