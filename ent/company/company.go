// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "company_id"
	// FieldTicker holds the string denoting the ticker field in the database.
	FieldTicker = "ticker"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldExchanges holds the string denoting the exchanges field in the database.
	FieldExchanges = "exchanges"
	// FieldIndustryCode holds the string denoting the industry_code field in the database.
	FieldIndustryCode = "industry_code"
	// FieldFiscalYearEnd holds the string denoting the fiscal_year_end field in the database.
	FieldFiscalYearEnd = "fiscal_year_end"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFilings holds the string denoting the filings edge name in mutations.
	EdgeFilings = "filings"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeFinancialValues holds the string denoting the financial_values edge name in mutations.
	EdgeFinancialValues = "financial_values"
	// EdgeGeneratedContents holds the string denoting the generated_contents edge name in mutations.
	EdgeGeneratedContents = "generated_contents"
	// EdgePipelineRuns holds the string denoting the pipeline_runs edge name in mutations.
	EdgePipelineRuns = "pipeline_runs"
	// FilingFieldID holds the string denoting the ID field of the Filing.
	FilingFieldID = "filing_id"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// FinancialValueFieldID holds the string denoting the ID field of the FinancialValue.
	FinancialValueFieldID = "value_id"
	// GeneratedContentFieldID holds the string denoting the ID field of the GeneratedContent.
	GeneratedContentFieldID = "content_id"
	// PipelineRunFieldID holds the string denoting the ID field of the PipelineRun.
	PipelineRunFieldID = "run_id"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// FilingsTable is the table that holds the filings relation/edge.
	FilingsTable = "filings"
	// FilingsInverseTable is the table name for the Filing entity.
	// It exists in this package in order to avoid circular dependency with the "filing" package.
	FilingsInverseTable = "filings"
	// FilingsColumn is the table column denoting the filings relation/edge.
	FilingsColumn = "company_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "company_id"
	// FinancialValuesTable is the table that holds the financial_values relation/edge.
	FinancialValuesTable = "financial_values"
	// FinancialValuesInverseTable is the table name for the FinancialValue entity.
	// It exists in this package in order to avoid circular dependency with the "financialvalue" package.
	FinancialValuesInverseTable = "financial_values"
	// FinancialValuesColumn is the table column denoting the financial_values relation/edge.
	FinancialValuesColumn = "company_id"
	// GeneratedContentsTable is the table that holds the generated_contents relation/edge.
	GeneratedContentsTable = "generated_contents"
	// GeneratedContentsInverseTable is the table name for the GeneratedContent entity.
	// It exists in this package in order to avoid circular dependency with the "generatedcontent" package.
	GeneratedContentsInverseTable = "generated_contents"
	// GeneratedContentsColumn is the table column denoting the generated_contents relation/edge.
	GeneratedContentsColumn = "company_id"
	// PipelineRunsTable is the table that holds the pipeline_runs relation/edge.
	PipelineRunsTable = "pipeline_runs"
	// PipelineRunsInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	PipelineRunsInverseTable = "pipeline_runs"
	// PipelineRunsColumn is the table column denoting the pipeline_runs relation/edge.
	PipelineRunsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldTicker,
	FieldName,
	FieldExchanges,
	FieldIndustryCode,
	FieldFiscalYearEnd,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicker orders the results by the ticker field.
func ByTicker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicker, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByIndustryCode orders the results by the industry_code field.
func ByIndustryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustryCode, opts...).ToFunc()
}

// ByFiscalYearEnd orders the results by the fiscal_year_end field.
func ByFiscalYearEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiscalYearEnd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFilingsCount orders the results by filings count.
func ByFilingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilingsStep(), opts...)
	}
}

// ByFilings orders the results by filings terms.
func ByFilings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFinancialValuesCount orders the results by financial_values count.
func ByFinancialValuesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFinancialValuesStep(), opts...)
	}
}

// ByFinancialValues orders the results by financial_values terms.
func ByFinancialValues(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFinancialValuesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGeneratedContentsCount orders the results by generated_contents count.
func ByGeneratedContentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGeneratedContentsStep(), opts...)
	}
}

// ByGeneratedContents orders the results by generated_contents terms.
func ByGeneratedContents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGeneratedContentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPipelineRunsCount orders the results by pipeline_runs count.
func ByPipelineRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPipelineRunsStep(), opts...)
	}
}

// ByPipelineRuns orders the results by pipeline_runs terms.
func ByPipelineRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilingsInverseTable, FilingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilingsTable, FilingsColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newFinancialValuesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FinancialValuesInverseTable, FinancialValueFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FinancialValuesTable, FinancialValuesColumn),
	)
}
func newGeneratedContentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedContentsInverseTable, GeneratedContentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GeneratedContentsTable, GeneratedContentsColumn),
	)
}
func newPipelineRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineRunsInverseTable, PipelineRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PipelineRunsTable, PipelineRunsColumn),
	)
}
