package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ModelConfig holds the schema definition for the ModelConfig entity.
// A model identifier plus its generation options, deduplicated by the hash
// of the canonical JSON form {"model": ..., "options_json": ...}.
type ModelConfig struct {
	ent.Schema
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_config_id").
			Unique().
			Immutable(),
		field.String("model").
			Comment("Model identifier, e.g. 'claude-haiku-4-5-20251001'"),
		field.Text("options_json").
			Comment("Canonical JSON with sorted keys (temperature, top_k, ...)"),
		field.String("content_hash").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ModelConfig.
func (ModelConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("generated_contents", GeneratedContent.Type),
	}
}
