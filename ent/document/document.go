// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldFilingID holds the string denoting the filing_id field in the database.
	FieldFilingID = "filing_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFiling holds the string denoting the filing edge name in mutations.
	EdgeFiling = "filing"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeDerivedContent holds the string denoting the derived_content edge name in mutations.
	EdgeDerivedContent = "derived_content"
	// FilingFieldID holds the string denoting the ID field of the Filing.
	FilingFieldID = "filing_id"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// GeneratedContentFieldID holds the string denoting the ID field of the GeneratedContent.
	GeneratedContentFieldID = "content_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// FilingTable is the table that holds the filing relation/edge.
	FilingTable = "documents"
	// FilingInverseTable is the table name for the Filing entity.
	// It exists in this package in order to avoid circular dependency with the "filing" package.
	FilingInverseTable = "filings"
	// FilingColumn is the table column denoting the filing relation/edge.
	FilingColumn = "filing_id"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "documents"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// DerivedContentTable is the table that holds the derived_content relation/edge. The primary key declared below.
	DerivedContentTable = "generated_content_source_documents"
	// DerivedContentInverseTable is the table name for the GeneratedContent entity.
	// It exists in this package in order to avoid circular dependency with the "generatedcontent" package.
	DerivedContentInverseTable = "generated_contents"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFilingID,
	FieldCompanyID,
	FieldTitle,
	FieldDocumentType,
	FieldContent,
	FieldContentHash,
	FieldCreatedAt,
}

var (
	// DerivedContentPrimaryKey and DerivedContentColumn2 are the table columns denoting the
	// primary key for the derived_content relation (M2M).
	DerivedContentPrimaryKey = []string{"generated_content_id", "document_id"}
)

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

// DocumentType defines the type for the "document_type" enum field.
type DocumentType string

// DocumentType values.
const (
	DocumentTypeManagementDiscussion  DocumentType = "management_discussion"
	DocumentTypeRiskFactors           DocumentType = "risk_factors"
	DocumentTypeBusinessDescription   DocumentType = "business_description"
	DocumentTypeControlsProcedures    DocumentType = "controls_procedures"
	DocumentTypeLegalProceedings      DocumentType = "legal_proceedings"
	DocumentTypeMarketRisk            DocumentType = "market_risk"
	DocumentTypeExecutiveCompensation DocumentType = "executive_compensation"
	DocumentTypeDirectorsOfficers     DocumentType = "directors_officers"
)

func (dt DocumentType) String() string {
	return string(dt)
}

// DocumentTypeValidator is a validator for the "document_type" field enum values. It is called by the builders before save.
func DocumentTypeValidator(dt DocumentType) error {
	switch dt {
	case DocumentTypeManagementDiscussion, DocumentTypeRiskFactors, DocumentTypeBusinessDescription, DocumentTypeControlsProcedures, DocumentTypeLegalProceedings, DocumentTypeMarketRisk, DocumentTypeExecutiveCompensation, DocumentTypeDirectorsOfficers:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for document_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilingID orders the results by the filing_id field.
func ByFilingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilingID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFilingField orders the results by filing field.
func ByFilingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilingStep(), sql.OrderByField(field, opts...))
	}
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByDerivedContentCount orders the results by derived_content count.
func ByDerivedContentCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDerivedContentStep(), opts...)
	}
}

// ByDerivedContent orders the results by derived_content terms.
func ByDerivedContent(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDerivedContentStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilingInverseTable, FilingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FilingTable, FilingColumn),
	)
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newDerivedContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DerivedContentInverseTable, GeneratedContentFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, DerivedContentTable, DerivedContentPrimaryKey...),
	)
}
