package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and claims jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs caps in-progress jobs across all replicas, checked
	// best-effort before each claim. Zero disables the cap.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often an in-flight job's lease is renewed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// JobTimeout is the maximum time a single job can run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// StaleCheckInterval is how often to scan for stale in-progress jobs.
	StaleCheckInterval time.Duration `yaml:"stale_check_interval"`

	// StaleThreshold is how long a job can go without a heartbeat before
	// it is considered abandoned by a dead worker.
	StaleThreshold time.Duration `yaml:"stale_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		JobTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		StaleCheckInterval:      1 * time.Minute,
		StaleThreshold:          10 * time.Minute,
	}
}
