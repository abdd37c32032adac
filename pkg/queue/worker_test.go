package queue

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/services"
	testdb "github.com/filinglens/filinglens/test/database"
)

// dispatcherFunc adapts a function to the Dispatcher interface for tests.
type dispatcherFunc func(ctx context.Context, j *ent.Job) (map[string]interface{}, error)

func (f dispatcherFunc) Dispatch(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	return f(ctx, j)
}

// fastQueueConfig returns a config tuned for test turnaround.
func fastQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:        2,
		PollInterval:       20 * time.Millisecond,
		PollIntervalJitter: 5 * time.Millisecond,
		HeartbeatInterval:  50 * time.Millisecond,
		JobTimeout:         5 * time.Second,
		StaleCheckInterval: 50 * time.Millisecond,
		StaleThreshold:     10 * time.Minute,
	}
}

func intPtr(n int) *int { return &n }

func waitForStatus(t *testing.T, jobs *services.JobService, id string, want job.Status) *ent.Job {
	t.Helper()
	var got *ent.Job
	require.Eventually(t, func() bool {
		j, err := jobs.GetJob(context.Background(), id)
		if err != nil {
			return false
		}
		got = j
		return j.Status == want
	}, 10*time.Second, 25*time.Millisecond, "job %s never reached %s", id, want)
	return got
}

func TestWorker_ProcessesJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	var handled atomic.Int32
	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		handled.Add(1)
		return map[string]interface{}{"ok": true}, nil
	})

	w := NewWorker("test-worker-1", jobs, fastQueueConfig(), dispatcher)
	w.Start(ctx)
	defer w.Stop()

	created, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
	require.NoError(t, err)

	done := waitForStatus(t, jobs, created.ID, job.StatusCompleted)
	assert.Equal(t, int32(1), handled.Load())
	assert.Equal(t, true, done.Result["ok"])
	assert.Nil(t, done.WorkerID)

	health := w.Health()
	assert.Equal(t, 1, health.JobsProcessed)
}

func TestWorker_FailureRetriesThenTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	var attempts atomic.Int32
	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		attempts.Add(1)
		return nil, errors.New("handler exploded")
	})

	w := NewWorker("test-worker-2", jobs, fastQueueConfig(), dispatcher)
	w.Start(ctx)
	defer w.Stop()

	created, err := jobs.CreateJob(ctx, services.CreateJobRequest{
		JobType:    job.JobTypeTest,
		MaxRetries: intPtr(1),
	})
	require.NoError(t, err)

	failed := waitForStatus(t, jobs, created.ID, job.StatusFailed)
	assert.Equal(t, int32(2), attempts.Load(), "one retry after the initial attempt")
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "handler exploded")
}

func TestWorker_JobTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	cfg := fastQueueConfig()
	cfg.JobTimeout = 100 * time.Millisecond

	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	w := NewWorker("test-worker-3", jobs, cfg, dispatcher)
	w.Start(ctx)
	defer w.Stop()

	created, err := jobs.CreateJob(ctx, services.CreateJobRequest{
		JobType:    job.JobTypeTest,
		MaxRetries: intPtr(0),
	})
	require.NoError(t, err)

	failed := waitForStatus(t, jobs, created.ID, job.StatusFailed)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "timed out")
}

func TestWorker_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	// One job is already in progress on another worker; with the cap at 1
	// this worker must not claim anything.
	_, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
	require.NoError(t, err)
	claimed, err := jobs.ClaimNext(ctx, "busy-worker")
	require.NoError(t, err)

	cfg := fastQueueConfig()
	cfg.MaxConcurrentJobs = 1

	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		return map[string]interface{}{"ok": true}, nil
	})

	w := NewWorker("test-worker-capped", jobs, cfg, dispatcher)
	w.Start(ctx)
	defer w.Stop()

	queued, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	still, err := jobs.GetJob(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, still.Status)

	// Freeing the slot lets the worker pick it up.
	_, err = jobs.Complete(ctx, claimed.ID, nil)
	require.NoError(t, err)

	waitForStatus(t, jobs, queued.ID, job.StatusCompleted)
}

func TestWorkerPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		return map[string]interface{}{"ok": true}, nil
	})

	pool := NewWorkerPool(jobs, fastQueueConfig(), dispatcher)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Duplicate starts are no-ops.
	require.NoError(t, pool.Start(ctx))

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		j, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
		require.NoError(t, err)
		ids = append(ids, j.ID)
	}
	for _, id := range ids {
		waitForStatus(t, jobs, id, job.StatusCompleted)
	}

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
	assert.Equal(t, 0, health.QueueDepth)
}

func TestWorkerPool_StaleSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	ctx := context.Background()

	// Claim a job on behalf of a worker that will never heartbeat, then
	// backdate its lease past the threshold.
	created, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
	require.NoError(t, err)
	_, err = jobs.ClaimNext(ctx, "dead-worker")
	require.NoError(t, err)
	err = client.Client.Job.UpdateOneID(created.ID).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := fastQueueConfig()
	cfg.WorkerCount = 1
	cfg.StaleThreshold = 10 * time.Minute

	dispatcher := dispatcherFunc(func(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
		return map[string]interface{}{"ok": true}, nil
	})

	pool := NewWorkerPool(jobs, cfg, dispatcher)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// The sweep requeues the stale job and a live worker completes it.
	done := waitForStatus(t, jobs, created.ID, job.StatusCompleted)
	assert.Equal(t, 1, done.RetryCount)
}

func TestWorkerIdentity(t *testing.T) {
	a := WorkerIdentity(0)
	b := WorkerIdentity(0)
	assert.NotEqual(t, a, b, "nonce must disambiguate workers")
	assert.GreaterOrEqual(t, strings.Count(a, "-"), 2)
}
