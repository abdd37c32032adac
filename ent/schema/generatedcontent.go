package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GeneratedContent holds the schema definition for the GeneratedContent
// entity — the central artifact of the pipeline. Rows are immutable once
// inserted (except the summary field) and globally deduplicated by the
// SHA-256 of their content. Every row records exactly which sources, system
// prompt, and model configuration produced it.
type GeneratedContent struct {
	ent.Schema
}

// Fields of the GeneratedContent.
func (GeneratedContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.Text("content"),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Optional condensed form, set via controlled update"),
		field.String("content_hash").
			Unique().
			Comment("SHA-256 hex digest of content"),
		field.String("company_id").
			Optional().
			Nillable(),
		field.String("group_id").
			Optional().
			Nillable(),
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
			).
			Optional().
			Nillable(),
		field.String("form_type").
			Optional().
			Nillable(),
		field.Enum("content_stage").
			Values(
				"single_summary",
				"aggregate_summary",
				"frontpage_summary",
				"company_group_analysis",
				"company_group_frontpage",
			),
		field.Enum("source_type").
			Values("documents", "generated_content"),
		field.String("system_prompt_id").
			Immutable(),
		field.String("model_config_id").
			Immutable(),
		field.Float("total_duration").
			Default(0).
			Comment("Observed completion duration in seconds"),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.String("warning").
			Optional().
			Nillable().
			Comment("Opaque warning propagated from the completer"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GeneratedContent.
func (GeneratedContent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("generated_contents").
			Field("company_id").
			Unique(),
		edge.From("group", CompanyGroup.Type).
			Ref("generated_contents").
			Field("group_id").
			Unique(),
		edge.From("system_prompt", Prompt.Type).
			Ref("generated_contents").
			Field("system_prompt_id").
			Unique().
			Required().
			Immutable(),
		edge.From("model_config", ModelConfig.Type).
			Ref("generated_contents").
			Field("model_config_id").
			Unique().
			Required().
			Immutable(),
		// Association tables. source_documents is populated iff
		// source_type=documents; source_content iff
		// source_type=generated_content. The self-referential relation is a
		// DAG — the service layer rejects cycles on insert.
		edge.To("source_documents", Document.Type),
		edge.To("source_content", GeneratedContent.Type),
		edge.From("derived_content", GeneratedContent.Type).
			Ref("source_content"),
	}
}

// Indexes of the GeneratedContent.
func (GeneratedContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash"),
		index.Fields("company_id", "content_stage"),
		index.Fields("system_prompt_id", "model_config_id"),
	}
}
