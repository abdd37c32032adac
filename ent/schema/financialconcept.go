package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FinancialConcept holds the schema definition for the FinancialConcept
// entity. Concepts are named line items ("Revenue", "Total Assets") tagged
// with the statements they appear on.
type FinancialConcept struct {
	ent.Schema
}

// Fields of the FinancialConcept.
func (FinancialConcept) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("concept_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("description").
			Optional(),
		field.JSON("labels", []string{}).
			Optional().
			Comment("Statement labels, e.g. ['balance_sheet', 'income_statement']"),
	}
}

// Edges of the FinancialConcept.
func (FinancialConcept) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("values", FinancialValue.Type),
	}
}
