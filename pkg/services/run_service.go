package services

import (
	"context"
	"fmt"
	"time"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/pipelinerun"
)

// RunService manages PipelineRun ledger rows. One row spans one top-level
// pipeline invocation; counters and metadata are flushed by the orchestrator
// regardless of outcome so partial progress is never lost.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun opens a ledger row in pending state.
func (s *RunService) CreateRun(ctx context.Context, companyID string, forms []string, trigger string) (*ent.PipelineRun, error) {
	runTrigger := pipelinerun.Trigger(trigger)
	if trigger == "" {
		runTrigger = pipelinerun.TriggerManual
	} else if err := pipelinerun.TriggerValidator(runTrigger); err != nil {
		return nil, NewValidationError("trigger", err.Error())
	}

	builder := s.client.PipelineRun.Create().
		SetID(newID()).
		SetTrigger(runTrigger).
		SetForms(forms)
	if companyID != "" {
		builder.SetCompanyID(companyID)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return run, nil
}

// MarkRunning transitions a run to running and stamps started_at.
func (s *RunService) MarkRunning(ctx context.Context, id string) error {
	err := s.client.PipelineRun.UpdateOneID(id).
		SetStatus(pipelinerun.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark run running: %w", err)
	}
	return nil
}

// SetCompany backfills the company once ingestion has resolved it. Runs are
// opened before the company row necessarily exists.
func (s *RunService) SetCompany(ctx context.Context, id, companyID string) error {
	err := s.client.PipelineRun.UpdateOneID(id).
		SetCompanyID(companyID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set run company: %w", err)
	}
	return nil
}

// UpdateCounts flushes the work-unit counters mid-run.
func (s *RunService) UpdateCounts(ctx context.Context, id string, created, completed, failed int) error {
	err := s.client.PipelineRun.UpdateOneID(id).
		SetJobsCreated(created).
		SetJobsCompleted(completed).
		SetJobsFailed(failed).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update run counts: %w", err)
	}
	return nil
}

// CompleteRun finalizes a run: final counters, per-stage metadata, terminal
// status and completed_at in one write.
func (s *RunService) CompleteRun(ctx context.Context, id string, created, completed, failed int, metadata map[string]interface{}) error {
	builder := s.client.PipelineRun.UpdateOneID(id).
		SetStatus(pipelinerun.StatusCompleted).
		SetJobsCreated(created).
		SetJobsCompleted(completed).
		SetJobsFailed(failed).
		SetCompletedAt(time.Now())
	if metadata != nil {
		builder.SetRunMetadata(metadata)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun finalizes a run as failed, preserving whatever counters and
// metadata accumulated before the error.
func (s *RunService) FailRun(ctx context.Context, id, errMsg string, created, completed, failed int, metadata map[string]interface{}) error {
	builder := s.client.PipelineRun.UpdateOneID(id).
		SetStatus(pipelinerun.StatusFailed).
		SetError(errMsg).
		SetJobsCreated(created).
		SetJobsCompleted(completed).
		SetJobsFailed(failed).
		SetCompletedAt(time.Now())
	if metadata != nil {
		builder.SetRunMetadata(metadata)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRun returns a pipeline run by id.
func (s *RunService) GetRun(ctx context.Context, id string) (*ent.PipelineRun, error) {
	run, err := s.client.PipelineRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns runs newest first, optionally narrowed to one status.
func (s *RunService) ListRuns(ctx context.Context, status string, limit int) ([]*ent.PipelineRun, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.client.PipelineRun.Query()
	if status != "" {
		runStatus := pipelinerun.Status(status)
		if err := pipelinerun.StatusValidator(runStatus); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		q = q.Where(pipelinerun.StatusEQ(runStatus))
	}

	runs, err := q.
		Order(ent.Desc(pipelinerun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
