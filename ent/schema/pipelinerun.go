package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity — the
// ledger row spanning one top-level orchestration invocation. Counters are
// updated exclusively by the orchestrator handler.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Optional().
			Nillable(),
		field.JSON("forms", []string{}).
			Optional(),
		field.Enum("trigger").
			Values("manual", "scheduled").
			Default("manual"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("jobs_created").
			Default(0),
		field.Int("jobs_completed").
			Default(0),
		field.Int("jobs_failed").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.JSON("run_metadata", map[string]interface{}{}).
			Optional().
			Comment("Per-stage timing, trigger provenance, arbitrary extras"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("pipeline_runs").
			Field("company_id").
			Unique(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("company_id"),
	}
}
