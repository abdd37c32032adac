package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// CompanyGroup holds the schema definition for the CompanyGroup entity.
// A named set of tickers analyzed together by the group pipeline.
type CompanyGroup struct {
	ent.Schema
}

// Fields of the CompanyGroup.
func (CompanyGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("slug").
			Unique().
			Comment("URL-safe identifier, e.g. 'mega-cap-tech'"),
		field.String("name").
			Optional(),
		field.JSON("tickers", []string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CompanyGroup.
func (CompanyGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("generated_contents", GeneratedContent.Type),
	}
}
