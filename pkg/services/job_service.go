package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/models"
)

// JobService manages the durable job queue. All operations are atomic at the
// row level; ClaimNext is the only cross-worker serialization point.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobRequest carries the inputs for CreateJob. Priority and MaxRetries
// default to 5 and 3 when nil.
type CreateJobRequest struct {
	JobType    job.JobType
	Params     map[string]interface{}
	Priority   *int
	MaxRetries *int
}

// CreateJob inserts a new pending job.
func (s *JobService) CreateJob(ctx context.Context, req CreateJobRequest) (*ent.Job, error) {
	if err := job.JobTypeValidator(req.JobType); err != nil {
		return nil, NewValidationError("job_type", err.Error())
	}

	builder := s.client.Job.Create().
		SetID(newID()).
		SetJobType(req.JobType).
		SetStatus(job.StatusPending)

	if req.Params != nil {
		builder.SetParams(req.Params)
	}
	if req.Priority != nil {
		builder.SetPriority(*req.Priority)
	}
	if req.MaxRetries != nil {
		if *req.MaxRetries < 0 {
			return nil, NewValidationError("max_retries", "must be >= 0")
		}
		builder.SetMaxRetries(*req.MaxRetries)
	}

	j, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// GetJob returns a job by id.
func (s *JobService) GetJob(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs returns jobs filtered by optional status and job type, newest
// first, capped at params.Limit (default 100).
func (s *JobService) ListJobs(ctx context.Context, params models.JobListParams) ([]*ent.Job, error) {
	q := s.client.Job.Query()
	if params.Status != "" {
		status := job.Status(params.Status)
		if err := job.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		q = q.Where(job.StatusEQ(status))
	}
	if params.JobType != "" {
		jt := job.JobType(params.JobType)
		if err := job.JobTypeValidator(jt); err != nil {
			return nil, NewValidationError("job_type", err.Error())
		}
		q = q.Where(job.JobTypeEQ(jt))
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	jobs, err := q.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ClaimNext atomically claims the single pending job with the smallest
// (priority, created_at), transitions it to in_progress, and stamps the
// worker id and started_at. Uses FOR UPDATE SKIP LOCKED so concurrent
// callers never observe the same row. Returns ErrNoJobsAvailable when the
// queue is empty.
func (s *JobService) ClaimNext(ctx context.Context, workerID string) (*ent.Job, error) {
	if workerID == "" {
		return nil, NewValidationError("worker_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Order(ent.Asc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	j, err = j.Update().
		SetStatus(job.StatusInProgress).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// Heartbeat bumps updated_at on an in_progress job so the stale sweep does
// not misclassify healthy work.
func (s *JobService) Heartbeat(ctx context.Context, id string) error {
	err := s.client.Job.UpdateOneID(id).
		Where(job.StatusEQ(job.StatusInProgress)).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to heartbeat job: %w", err)
	}
	return nil
}

// Complete transitions an in_progress job to completed and stores its result.
func (s *JobService) Complete(ctx context.Context, id string, result map[string]interface{}) (*ent.Job, error) {
	builder := s.client.Job.UpdateOneID(id).
		Where(job.StatusEQ(job.StatusInProgress)).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearWorkerID()
	if result != nil {
		builder.SetResult(result)
	}

	j, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.transitionError(ctx, id, "complete")
		}
		return nil, fmt.Errorf("failed to complete job: %w", err)
	}
	return j, nil
}

// Fail records a handler failure. If retries remain the job returns to
// pending with the worker cleared and the error recorded; otherwise it goes
// to failed terminally. Calling Fail on an already-terminal job is a no-op
// that returns the job unchanged.
func (s *JobService) Fail(ctx context.Context, id string, errMsg string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(job.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	switch j.Status {
	case job.StatusInProgress:
		// fall through to the transition below
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled:
		// Idempotent for terminal states.
		return j, nil
	default:
		return nil, ErrInvalidTransition
	}

	retries := j.RetryCount + 1
	builder := j.Update().
		SetRetryCount(retries).
		SetError(errMsg).
		ClearWorkerID()

	if retries <= j.MaxRetries {
		builder.
			SetStatus(job.StatusPending).
			ClearStartedAt()
	} else {
		// Retry budget exhausted; retry_count stays capped at max_retries.
		builder.
			SetRetryCount(j.MaxRetries).
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now())
	}

	j, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fail: %w", err)
	}
	return j, nil
}

// Cancel transitions a pending job to cancelled. Any other source state is
// rejected with ErrInvalidTransition and the job is not mutated.
func (s *JobService) Cancel(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.client.Job.UpdateOneID(id).
		Where(job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.transitionError(ctx, id, "cancel")
		}
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	return j, nil
}

// RequeueFailed resets failed jobs (optionally of one type) back to pending
// with a fresh retry budget.
func (s *JobService) RequeueFailed(ctx context.Context, jobType string) ([]*ent.Job, error) {
	q := s.client.Job.Query().Where(job.StatusEQ(job.StatusFailed))
	if jobType != "" {
		jt := job.JobType(jobType)
		if err := job.JobTypeValidator(jt); err != nil {
			return nil, NewValidationError("job_type", err.Error())
		}
		q = q.Where(job.JobTypeEQ(jt))
	}

	failed, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed jobs: %w", err)
	}

	requeued := make([]*ent.Job, 0, len(failed))
	for _, j := range failed {
		updated, err := j.Update().
			SetStatus(job.StatusPending).
			SetRetryCount(0).
			ClearWorkerID().
			ClearError().
			ClearStartedAt().
			ClearCompletedAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to requeue job %s: %w", j.ID, err)
		}
		requeued = append(requeued, updated)
	}
	return requeued, nil
}

// CancelFailed transitions failed jobs (optionally of one type) to cancelled
// and returns how many were affected.
func (s *JobService) CancelFailed(ctx context.Context, jobType string) (int, error) {
	q := s.client.Job.Update().Where(job.StatusEQ(job.StatusFailed))
	if jobType != "" {
		jt := job.JobType(jobType)
		if err := job.JobTypeValidator(jt); err != nil {
			return 0, NewValidationError("job_type", err.Error())
		}
		q = q.Where(job.JobTypeEQ(jt))
	}

	n, err := q.
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel failed jobs: %w", err)
	}
	return n, nil
}

// MarkStaleAsFailed treats every in_progress job whose heartbeat is older
// than the threshold as failed with error "stale". Jobs with retries left
// return to pending. Returns the affected jobs.
func (s *JobService) MarkStaleAsFailed(ctx context.Context, staleThreshold time.Duration) ([]*ent.Job, error) {
	cutoff := time.Now().Add(-staleThreshold)

	stale, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.UpdatedAtLTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale jobs: %w", err)
	}

	recovered := make([]*ent.Job, 0, len(stale))
	for _, j := range stale {
		updated, err := s.Fail(ctx, j.ID, "stale")
		if err != nil {
			return recovered, fmt.Errorf("failed to mark job %s stale: %w", j.ID, err)
		}
		recovered = append(recovered, updated)
	}
	return recovered, nil
}

// CountByStatus returns the number of jobs in the given status, optionally
// narrowed to one job type.
func (s *JobService) CountByStatus(ctx context.Context, status job.Status, jobType string) (int, error) {
	if err := job.StatusValidator(status); err != nil {
		return 0, NewValidationError("status", err.Error())
	}
	q := s.client.Job.Query().Where(job.StatusEQ(status))
	if jobType != "" {
		jt := job.JobType(jobType)
		if err := job.JobTypeValidator(jt); err != nil {
			return 0, NewValidationError("job_type", err.Error())
		}
		q = q.Where(job.JobTypeEQ(jt))
	}

	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}

// StatusCount is one row of a queue depth report.
type StatusCount struct {
	Status job.Status `json:"status"`
	Count  int        `json:"count"`
}

// CountAllStatuses returns the queue depth for every status, optionally
// narrowed to one job type. Statuses with zero jobs are included.
func (s *JobService) CountAllStatuses(ctx context.Context, jobType string) ([]StatusCount, error) {
	statuses := []job.Status{
		job.StatusPending,
		job.StatusInProgress,
		job.StatusCompleted,
		job.StatusFailed,
		job.StatusCancelled,
	}
	counts := make([]StatusCount, 0, len(statuses))
	for _, status := range statuses {
		n, err := s.CountByStatus(ctx, status, jobType)
		if err != nil {
			return nil, err
		}
		counts = append(counts, StatusCount{Status: status, Count: n})
	}
	return counts, nil
}

// transitionError distinguishes "job missing" from "job in the wrong state"
// after a conditional update matched no row.
func (s *JobService) transitionError(ctx context.Context, id, op string) error {
	exists, err := s.client.Job.Query().Where(job.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check job after %s: %w", op, err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
