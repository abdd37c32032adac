// Package config loads filinglens.yaml and resolves it against built-in
// defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the complete filinglens.yaml file structure.
type FileConfig struct {
	Queue    *QueueConfig    `yaml:"queue"`
	Pipeline *PipelineConfig `yaml:"pipeline"`
	API      *APIConfig      `yaml:"api"`
}

// queueYAML mirrors QueueConfig with string durations, since YAML has no
// native duration scalar.
type queueYAML struct {
	WorkerCount             int    `yaml:"worker_count"`
	MaxConcurrentJobs       int    `yaml:"max_concurrent_jobs"`
	PollInterval            string `yaml:"poll_interval"`
	PollIntervalJitter      string `yaml:"poll_interval_jitter"`
	HeartbeatInterval       string `yaml:"heartbeat_interval"`
	JobTimeout              string `yaml:"job_timeout"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
	StaleCheckInterval      string `yaml:"stale_check_interval"`
	StaleThreshold          string `yaml:"stale_threshold"`
}

// UnmarshalYAML parses duration strings like "30s" into the typed fields.
func (c *QueueConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw queueYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.WorkerCount = raw.WorkerCount
	c.MaxConcurrentJobs = raw.MaxConcurrentJobs

	fields := []struct {
		dst  *time.Duration
		src  string
		name string
	}{
		{&c.PollInterval, raw.PollInterval, "poll_interval"},
		{&c.PollIntervalJitter, raw.PollIntervalJitter, "poll_interval_jitter"},
		{&c.HeartbeatInterval, raw.HeartbeatInterval, "heartbeat_interval"},
		{&c.JobTimeout, raw.JobTimeout, "job_timeout"},
		{&c.GracefulShutdownTimeout, raw.GracefulShutdownTimeout, "graceful_shutdown_timeout"},
		{&c.StaleCheckInterval, raw.StaleCheckInterval, "stale_check_interval"},
		{&c.StaleThreshold, raw.StaleThreshold, "stale_threshold"},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		d, err := time.ParseDuration(f.src)
		if err != nil {
			return fmt.Errorf("invalid queue.%s: %w", f.name, err)
		}
		*f.dst = d
	}
	return nil
}

// APIConfig contains the operational HTTP server settings.
type APIConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Queue    *QueueConfig
	Pipeline *PipelineConfig
	API      *APIConfig
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{Addr: ":8080"}
}

// Initialize loads configuration from path and merges it over the built-in
// defaults. A missing file is not an error: defaults apply.
func Initialize(path string) (*Config, error) {
	cfg := &Config{
		Queue:    DefaultQueueConfig(),
		Pipeline: DefaultPipelineConfig(),
		API:      DefaultAPIConfig(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No config file found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file FileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Merge user YAML over defaults; non-zero user values win.
	if file.Queue != nil {
		if err := mergo.Merge(cfg.Queue, file.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if file.Pipeline != nil {
		if err := mergo.Merge(cfg.Pipeline, file.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}
	if file.API != nil {
		if err := mergo.Merge(cfg.API, file.API, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge api config: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"workers", cfg.Queue.WorkerCount,
		"model", cfg.Pipeline.Model,
		"api_addr", cfg.API.Addr)
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive")
	}
	if cfg.Queue.HeartbeatInterval >= cfg.Queue.StaleThreshold {
		return fmt.Errorf("queue.heartbeat_interval must be shorter than queue.stale_threshold")
	}
	if cfg.Pipeline.Model == "" {
		return fmt.Errorf("pipeline.model must be set")
	}
	if len(cfg.Pipeline.Forms) == 0 {
		return fmt.Errorf("pipeline.forms must not be empty")
	}
	return nil
}
