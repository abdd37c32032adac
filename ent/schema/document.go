package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
// A document is one extracted textual section of a filing, addressed by the
// SHA-256 of its content. Content is large and loaded lazily by the service
// layer; the hash is always present.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("filing_id").
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.String("title"),
		field.Enum("document_type").
			Values(
				"management_discussion",
				"risk_factors",
				"business_description",
				"controls_procedures",
				"legal_proceedings",
				"market_risk",
				"executive_compensation",
				"directors_officers",
			),
		field.Text("content"),
		field.String("content_hash").
			Comment("SHA-256 hex digest of content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("filing", Filing.Type).
			Ref("documents").
			Field("filing_id").
			Unique().
			Required().
			Immutable(),
		edge.From("company", Company.Type).
			Ref("documents").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
		edge.From("derived_content", GeneratedContent.Type).
			Ref("source_documents"),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash"),
		index.Fields("company_id"),
		index.Fields("filing_id", "document_type"),
	}
}
