package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the stale-job sweep.
type WorkerPool struct {
	jobs       *services.JobService
	config     *config.QueueConfig
	dispatcher Dispatcher
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	started    bool

	// Stale sweep state
	staleMu        sync.Mutex
	lastStaleScan  time.Time
	staleRecovered int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(jobs *services.JobService, cfg *config.QueueConfig, dispatcher Dispatcher) *WorkerPool {
	return &WorkerPool{
		jobs:       jobs,
		config:     cfg,
		dispatcher: dispatcher,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
	}
}

// Start spawns worker goroutines and the stale-sweep background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		worker := NewWorker(WorkerIdentity(i), p.jobs, p.config, p.dispatcher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStaleSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them. Workers finish their
// current jobs before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// runStaleSweep periodically recovers jobs abandoned by dead workers.
// Every replica runs this independently — the recovery is idempotent.
func (p *WorkerPool) runStaleSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.StaleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			recovered, err := p.jobs.MarkStaleAsFailed(ctx, p.config.StaleThreshold)
			if err != nil {
				slog.Error("Stale job sweep failed", "error", err)
				continue
			}
			p.staleMu.Lock()
			p.lastStaleScan = time.Now()
			p.staleRecovered += len(recovered)
			p.staleMu.Unlock()
			if len(recovered) > 0 {
				slog.Warn("Recovered stale jobs", "count", len(recovered))
			}
		}
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, err := p.jobs.CountByStatus(ctx, job.StatusPending, "")
	if err != nil {
		slog.Error("Failed to query queue depth for health check", "error", err)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := err == nil
	var dbError string
	if err != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", err)
	}

	p.staleMu.Lock()
	lastStaleScan := p.lastStaleScan
	staleRecovered := p.staleRecovered
	p.staleMu.Unlock()

	return &PoolHealth{
		IsHealthy:      len(p.workers) > 0 && dbHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		QueueDepth:     queueDepth,
		WorkerStats:    workerStats,
		LastStaleScan:  lastStaleScan,
		StaleRecovered: staleRecovered,
	}
}
