// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the filing type in the database.
	Label = "filing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "filing_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldAccessionNumber holds the string denoting the accession_number field in the database.
	FieldAccessionNumber = "accession_number"
	// FieldFormType holds the string denoting the form_type field in the database.
	FieldFormType = "form_type"
	// FieldFilingDate holds the string denoting the filing_date field in the database.
	FieldFilingDate = "filing_date"
	// FieldPeriodOfReport holds the string denoting the period_of_report field in the database.
	FieldPeriodOfReport = "period_of_report"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeFinancialValues holds the string denoting the financial_values edge name in mutations.
	EdgeFinancialValues = "financial_values"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// FinancialValueFieldID holds the string denoting the ID field of the FinancialValue.
	FinancialValueFieldID = "value_id"
	// Table holds the table name of the filing in the database.
	Table = "filings"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "filings"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "filing_id"
	// FinancialValuesTable is the table that holds the financial_values relation/edge.
	FinancialValuesTable = "financial_values"
	// FinancialValuesInverseTable is the table name for the FinancialValue entity.
	// It exists in this package in order to avoid circular dependency with the "financialvalue" package.
	FinancialValuesInverseTable = "financial_values"
	// FinancialValuesColumn is the table column denoting the financial_values relation/edge.
	FinancialValuesColumn = "filing_id"
)

// Columns holds all SQL columns for filing fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldAccessionNumber,
	FieldFormType,
	FieldFilingDate,
	FieldPeriodOfReport,
	FieldSourceURL,
	FieldCreatedAt,
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
)

// OrderOption defines the ordering options for the Filing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByAccessionNumber orders the results by the accession_number field.
func ByAccessionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessionNumber, opts...).ToFunc()
}

// ByFormType orders the results by the form_type field.
func ByFormType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormType, opts...).ToFunc()
}

// ByFilingDate orders the results by the filing_date field.
func ByFilingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingDate, opts...).ToFunc()
}

// ByPeriodOfReport orders the results by the period_of_report field.
func ByPeriodOfReport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodOfReport, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
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
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
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
