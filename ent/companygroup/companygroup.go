// Code generated by ent, DO NOT EDIT.

package companygroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the companygroup type in the database.
	Label = "company_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTickers holds the string denoting the tickers field in the database.
	FieldTickers = "tickers"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGeneratedContents holds the string denoting the generated_contents edge name in mutations.
	EdgeGeneratedContents = "generated_contents"
	// GeneratedContentFieldID holds the string denoting the ID field of the GeneratedContent.
	GeneratedContentFieldID = "content_id"
	// Table holds the table name of the companygroup in the database.
	Table = "company_groups"
	// GeneratedContentsTable is the table that holds the generated_contents relation/edge.
	GeneratedContentsTable = "generated_contents"
	// GeneratedContentsInverseTable is the table name for the GeneratedContent entity.
	// It exists in this package in order to avoid circular dependency with the "generatedcontent" package.
	GeneratedContentsInverseTable = "generated_contents"
	// GeneratedContentsColumn is the table column denoting the generated_contents relation/edge.
	GeneratedContentsColumn = "group_id"
)

// Columns holds all SQL columns for companygroup fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldName,
	FieldTickers,
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

// OrderOption defines the ordering options for the CompanyGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
func newGeneratedContentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedContentsInverseTable, GeneratedContentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GeneratedContentsTable, GeneratedContentsColumn),
	)
}
