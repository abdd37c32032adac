package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity — the durable queue
// element. Workers claim pending jobs with FOR UPDATE SKIP LOCKED ordered by
// (priority, created_at); updated_at doubles as the heartbeat lease.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("job_type").
			Values(
				"test",
				"company_ingestion",
				"filing_ingestion",
				"content_generation",
				"bulk_ingest",
				"company_group_pipeline",
				"ingest_pipeline",
				"full_pipeline",
			),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("Opaque params blob; schema determined by job_type"),
		field.Int("priority").
			Default(5).
			Comment("Smaller value = higher priority"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Heartbeat lease for stale detection"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Set while in_progress; cleared on every transition out"),
		field.String("error").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "job_type"),
		index.Fields("status", "updated_at"),
	}
}
