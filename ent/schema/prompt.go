package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity.
// Prompts are content-addressed: two prompts with identical content collapse
// to the existing record regardless of name.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("role").
			Values("system", "user", "assistant").
			Default("system"),
		field.String("description").
			Optional(),
		field.Text("content"),
		field.String("content_hash").
			Unique().
			Comment("SHA-256 hex digest of content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Prompt.
func (Prompt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("generated_contents", GeneratedContent.Type),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "content_hash").
			Unique(),
	}
}
