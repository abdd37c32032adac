package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id         string
	jobs       *services.JobService
	config     *config.QueueConfig
	dispatcher Dispatcher
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id string, jobs *services.JobService, cfg *config.QueueConfig, dispatcher Dispatcher) *Worker {
	return &Worker{
		id:           id,
		jobs:         jobs,
		config:       cfg,
		dispatcher:   dispatcher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoJobsAvailable) || errors.Is(err, services.ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next job and runs it to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	if err := w.checkCapacity(ctx); err != nil {
		return err
	}

	claimed, err := w.jobs.ClaimNext(ctx, w.id)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "job_type", claimed.JobType, "worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// Renew the lease while the handler runs so the stale sweep leaves
	// this job alone.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	result, handlerErr := w.dispatcher.Dispatch(jobCtx, claimed)
	cancelHeartbeat()

	if handlerErr == nil && jobCtx.Err() != nil {
		handlerErr = jobCtx.Err()
	}

	// Terminal updates use a fresh context — the job context may already
	// be cancelled or expired.
	finalCtx, cancelFinal := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelFinal()

	if handlerErr != nil {
		if errors.Is(handlerErr, context.DeadlineExceeded) {
			handlerErr = fmt.Errorf("job timed out after %v", w.config.JobTimeout)
		}
		failed, err := w.jobs.Fail(finalCtx, claimed.ID, handlerErr.Error())
		if err != nil {
			log.Error("Failed to record job failure", "error", err)
			return err
		}
		log.Warn("Job failed", "error", handlerErr, "status", failed.Status, "retry_count", failed.RetryCount)
	} else {
		if _, err := w.jobs.Complete(finalCtx, claimed.ID, result); err != nil {
			log.Error("Failed to record job completion", "error", err)
			return err
		}
		log.Info("Job completed")
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// checkCapacity enforces the global in-progress cap. The count-then-claim
// is racy across workers; the cap is best-effort, not exact.
func (w *Worker) checkCapacity(ctx context.Context) error {
	if w.config.MaxConcurrentJobs <= 0 {
		return nil
	}
	count, err := w.jobs.CountByStatus(ctx, job.StatusInProgress, "")
	if err != nil {
		return fmt.Errorf("failed to count in-progress jobs: %w", err)
	}
	if count >= w.config.MaxConcurrentJobs {
		return services.ErrAtCapacity
	}
	return nil
}

// runHeartbeat periodically bumps the job's lease for stale detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.jobs.Heartbeat(ctx, jobID); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
