package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// FinancialValue holds the schema definition for the FinancialValue entity.
// One observed value of a concept for a company at a date, optionally tied
// to the filing it was extracted from. Upserted on
// (company, concept, value_date, filing-or-null).
type FinancialValue struct {
	ent.Schema
}

// Fields of the FinancialValue.
func (FinancialValue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("value_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.String("concept_id").
			Immutable(),
		field.String("filing_id").
			Optional().
			Nillable(),
		field.Time("value_date"),
		field.Other("value", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(24,6)",
			}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the FinancialValue.
func (FinancialValue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("financial_values").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
		edge.From("concept", FinancialConcept.Type).
			Ref("values").
			Field("concept_id").
			Unique().
			Required().
			Immutable(),
		edge.From("filing", Filing.Type).
			Ref("financial_values").
			Field("filing_id").
			Unique(),
	}
}

// Indexes of the FinancialValue.
func (FinancialValue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "concept_id", "value_date"),
	}
}
