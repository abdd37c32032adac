package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filinglens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitialize(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Queue.WorkerCount)
		assert.Equal(t, "claude-sonnet-4-5", cfg.Pipeline.Model)
		assert.Equal(t, ":8080", cfg.API.Addr)
	})

	t.Run("yaml overrides merge over defaults", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  worker_count: 8
  max_concurrent_jobs: 16
  poll_interval: 5s
pipeline:
  model: claude-haiku-4-5
api:
  addr: ":9090"
`)
		cfg, err := Initialize(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Queue.WorkerCount)
		assert.Equal(t, 16, cfg.Queue.MaxConcurrentJobs)
		assert.Equal(t, 5*time.Second, cfg.Queue.PollInterval)
		assert.Equal(t, "claude-haiku-4-5", cfg.Pipeline.Model)
		assert.Equal(t, ":9090", cfg.API.Addr)

		// Untouched fields keep their defaults.
		assert.Equal(t, 30*time.Second, cfg.Queue.HeartbeatInterval)
		assert.Equal(t, []string{"10-K", "10-Q"}, cfg.Pipeline.Forms)
	})

	t.Run("partial sections leave others at defaults", func(t *testing.T) {
		path := writeConfig(t, `
pipeline:
  forms: ["10-K"]
`)
		cfg, err := Initialize(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"10-K"}, cfg.Pipeline.Forms)
		assert.Equal(t, 4, cfg.Queue.WorkerCount)
	})

	t.Run("bad duration string errors", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  poll_interval: soonish
`)
		_, err := Initialize(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "poll_interval")
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := writeConfig(t, "queue: [not a map")
		_, err := Initialize(path)
		require.Error(t, err)
	})

	t.Run("invalid worker count rejected", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  worker_count: -1
`)
		_, err := Initialize(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker_count")
	})

	t.Run("heartbeat must undercut stale threshold", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  heartbeat_interval: 1h
  stale_threshold: 10m
`)
		_, err := Initialize(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "heartbeat_interval")
	})
}
