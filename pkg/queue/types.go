// Package queue provides the worker pool that claims and processes jobs.
package queue

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/filinglens/filinglens/ent"
)

// Dispatcher routes a claimed job to its handler. Implemented by
// handlers.Registry; the indirection keeps queue free of handler wiring.
type Dispatcher interface {
	Dispatch(ctx context.Context, j *ent.Job) (map[string]interface{}, error)
}

// WorkerIdentity builds a globally unique worker id of the form
// {hostname}-{pid}-{nonce}. The nonce disambiguates workers within one
// process and restarts reusing a pid.
func WorkerIdentity(index int) string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	nonce := make([]byte, 4)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Sprintf("%s-%d-w%d", hostname, os.Getpid(), index)
	}
	return fmt.Sprintf("%s-%d-%s", hostname, os.Getpid(), hex.EncodeToString(nonce))
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastStaleScan  time.Time      `json:"last_stale_scan"`
	StaleRecovered int            `json:"stale_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
