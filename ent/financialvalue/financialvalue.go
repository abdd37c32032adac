// Code generated by ent, DO NOT EDIT.

package financialvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the financialvalue type in the database.
	Label = "financial_value"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "value_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldFilingID holds the string denoting the filing_id field in the database.
	FieldFilingID = "filing_id"
	// FieldValueDate holds the string denoting the value_date field in the database.
	FieldValueDate = "value_date"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeConcept holds the string denoting the concept edge name in mutations.
	EdgeConcept = "concept"
	// EdgeFiling holds the string denoting the filing edge name in mutations.
	EdgeFiling = "filing"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// FinancialConceptFieldID holds the string denoting the ID field of the FinancialConcept.
	FinancialConceptFieldID = "concept_id"
	// FilingFieldID holds the string denoting the ID field of the Filing.
	FilingFieldID = "filing_id"
	// Table holds the table name of the financialvalue in the database.
	Table = "financial_values"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "financial_values"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// ConceptTable is the table that holds the concept relation/edge.
	ConceptTable = "financial_values"
	// ConceptInverseTable is the table name for the FinancialConcept entity.
	// It exists in this package in order to avoid circular dependency with the "financialconcept" package.
	ConceptInverseTable = "financial_concepts"
	// ConceptColumn is the table column denoting the concept relation/edge.
	ConceptColumn = "concept_id"
	// FilingTable is the table that holds the filing relation/edge.
	FilingTable = "financial_values"
	// FilingInverseTable is the table name for the Filing entity.
	// It exists in this package in order to avoid circular dependency with the "filing" package.
	FilingInverseTable = "filings"
	// FilingColumn is the table column denoting the filing relation/edge.
	FilingColumn = "filing_id"
)

// Columns holds all SQL columns for financialvalue fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldConceptID,
	FieldFilingID,
	FieldValueDate,
	FieldValue,
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

// OrderOption defines the ordering options for the FinancialValue queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByFilingID orders the results by the filing_id field.
func ByFilingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingID, opts...).ToFunc()
}

// ByValueDate orders the results by the value_date field.
func ByValueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueDate, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByConceptField orders the results by concept field.
func ByConceptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConceptStep(), sql.OrderByField(field, opts...))
	}
}

// ByFilingField orders the results by filing field.
func ByFilingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilingStep(), sql.OrderByField(field, opts...))
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newConceptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConceptInverseTable, FinancialConceptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConceptTable, ConceptColumn),
	)
}
func newFilingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilingInverseTable, FilingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FilingTable, FilingColumn),
	)
}
