package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

func intPtr(n int) *int { return &n }

func createTestJob(t *testing.T, svc *JobService, jobType job.JobType, priority int) *ent.Job {
	t.Helper()
	j, err := svc.CreateJob(context.Background(), CreateJobRequest{
		JobType:  jobType,
		Priority: intPtr(priority),
	})
	require.NoError(t, err)
	return j
}

func TestJobService_CreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, CreateJobRequest{JobType: job.JobTypeTest})
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, j.Status)
		assert.Equal(t, 5, j.Priority)
		assert.Equal(t, 3, j.MaxRetries)
		assert.Equal(t, 0, j.RetryCount)
	})

	t.Run("rejects unknown job type", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, CreateJobRequest{JobType: job.JobType("bogus")})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects negative max retries", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, CreateJobRequest{
			JobType:    job.JobTypeTest,
			MaxRetries: intPtr(-1),
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_ClaimOrdering(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	// Lower priority value runs first; equal priority is FIFO.
	low := createTestJob(t, svc, job.JobTypeTest, 9)
	highFirst := createTestJob(t, svc, job.JobTypeTest, 1)
	highSecond := createTestJob(t, svc, job.JobTypeTest, 1)

	first, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	assert.Equal(t, highFirst.ID, first.ID)
	assert.Equal(t, job.StatusInProgress, first.Status)
	require.NotNil(t, first.WorkerID)
	assert.Equal(t, "worker-a", *first.WorkerID)
	assert.NotNil(t, first.StartedAt)

	second, err := svc.ClaimNext(ctx, "worker-b")
	require.NoError(t, err)
	assert.Equal(t, highSecond.ID, second.ID)

	third, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	assert.Equal(t, low.ID, third.ID)

	_, err = svc.ClaimNext(ctx, "worker-a")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestJobService_NoDoubleClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	const jobs = 8
	for i := 0; i < jobs; i++ {
		createTestJob(t, svc, job.JobTypeTest, 5)
	}

	var mu sync.Mutex
	claimed := make(map[string]int)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				j, err := svc.ClaimNext(ctx, "worker")
				if err != nil {
					return
				}
				mu.Lock()
				claimed[j.ID]++
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, claimed, jobs)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "job %s claimed %d times", id, n)
	}
}

func TestJobService_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestJob(t, svc, job.JobTypeTest, 5)
	claimed, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	done, err := svc.Complete(ctx, claimed.ID, map[string]interface{}{"ok": true})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, done.Status)
	assert.Nil(t, done.WorkerID)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, true, done.Result["ok"])

	// Completing again is an invalid transition.
	_, err = svc.Complete(ctx, claimed.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestJobService_FailRetries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("requeues until budget exhausted", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, CreateJobRequest{
			JobType:    job.JobTypeTest,
			MaxRetries: intPtr(1),
		})
		require.NoError(t, err)

		claimed, err := svc.ClaimNext(ctx, "worker-a")
		require.NoError(t, err)
		require.Equal(t, j.ID, claimed.ID)

		// First failure: retry budget remains, back to pending.
		failed, err := svc.Fail(ctx, j.ID, "boom")
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, failed.Status)
		assert.Equal(t, 1, failed.RetryCount)
		assert.Nil(t, failed.StartedAt)
		require.NotNil(t, failed.Error)
		assert.Equal(t, "boom", *failed.Error)

		// Second failure: budget exhausted, terminal with the count capped.
		_, err = svc.ClaimNext(ctx, "worker-a")
		require.NoError(t, err)
		failed, err = svc.Fail(ctx, j.ID, "boom again")
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, failed.Status)
		assert.Equal(t, 1, failed.RetryCount)
		assert.NotNil(t, failed.CompletedAt)
	})

	t.Run("zero retries fails terminally on first error", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, CreateJobRequest{
			JobType:    job.JobTypeTest,
			MaxRetries: intPtr(0),
		})
		require.NoError(t, err)

		_, err = svc.ClaimNext(ctx, "worker-a")
		require.NoError(t, err)

		failed, err := svc.Fail(ctx, j.ID, "boom")
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, failed.Status)
		assert.Equal(t, 0, failed.RetryCount)
	})

	t.Run("failing a terminal job is a no-op", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, CreateJobRequest{
			JobType:    job.JobTypeTest,
			MaxRetries: intPtr(0),
		})
		require.NoError(t, err)
		_, err = svc.ClaimNext(ctx, "worker-a")
		require.NoError(t, err)
		_, err = svc.Fail(ctx, j.ID, "boom")
		require.NoError(t, err)

		unchanged, err := svc.Fail(ctx, j.ID, "late failure")
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, unchanged.Status)
		require.NotNil(t, unchanged.Error)
		assert.Equal(t, "boom", *unchanged.Error)
	})
}

func TestJobService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("pending job cancels", func(t *testing.T) {
		j := createTestJob(t, svc, job.JobTypeTest, 5)
		cancelled, err := svc.Cancel(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, cancelled.Status)
	})

	t.Run("in-progress job refuses", func(t *testing.T) {
		createTestJob(t, svc, job.JobTypeTest, 5)
		claimed, err := svc.ClaimNext(ctx, "worker-a")
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, claimed.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.Cancel(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_RequeueFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, CreateJobRequest{
		JobType:    job.JobTypeTest,
		MaxRetries: intPtr(0),
	})
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	_, err = svc.Fail(ctx, j.ID, "boom")
	require.NoError(t, err)

	requeued, err := svc.RequeueFailed(ctx, "")
	require.NoError(t, err)
	require.Len(t, requeued, 1)
	assert.Equal(t, job.StatusPending, requeued[0].Status)
	assert.Equal(t, 0, requeued[0].RetryCount)
	assert.Nil(t, requeued[0].Error)
	assert.Nil(t, requeued[0].WorkerID)
}

func TestJobService_CancelFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, CreateJobRequest{
		JobType:    job.JobTypeTest,
		MaxRetries: intPtr(0),
	})
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)
	_, err = svc.Fail(ctx, j.ID, "boom")
	require.NoError(t, err)

	// A pending job is untouched by the bulk cancel.
	pending := createTestJob(t, svc, job.JobTypeTest, 5)

	n, err := svc.CancelFailed(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, got.Status)

	still, err := svc.GetJob(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, still.Status)
}

func TestJobService_StaleRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	fresh := createTestJob(t, svc, job.JobTypeTest, 1)
	stale := createTestJob(t, svc, job.JobTypeTest, 2)

	claimedFresh, err := svc.ClaimNext(ctx, "worker-live")
	require.NoError(t, err)
	require.Equal(t, fresh.ID, claimedFresh.ID)

	claimedStale, err := svc.ClaimNext(ctx, "worker-dead")
	require.NoError(t, err)
	require.Equal(t, stale.ID, claimedStale.ID)

	// Simulate a dead worker: push the stale job's lease into the past.
	past := time.Now().Add(-time.Hour)
	err = client.Client.Job.UpdateOneID(stale.ID).SetUpdatedAt(past).Exec(ctx)
	require.NoError(t, err)

	recovered, err := svc.MarkStaleAsFailed(ctx, 10*time.Minute)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.Equal(t, stale.ID, recovered[0].ID)
	// Retry budget remains, so the stale job is re-queued.
	assert.Equal(t, job.StatusPending, recovered[0].Status)
	assert.Equal(t, 1, recovered[0].RetryCount)

	// The live worker's job is untouched.
	live, err := svc.GetJob(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, live.Status)
}

func TestJobService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j := createTestJob(t, svc, job.JobTypeTest, 5)
	claimed, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	// Backdate the lease, then heartbeat; the sweep must then skip it.
	past := time.Now().Add(-time.Hour)
	err = client.Client.Job.UpdateOneID(j.ID).SetUpdatedAt(past).Exec(ctx)
	require.NoError(t, err)

	err = svc.Heartbeat(ctx, claimed.ID)
	require.NoError(t, err)

	recovered, err := svc.MarkStaleAsFailed(ctx, 10*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, recovered)
}

func TestJobService_ListAndCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	createTestJob(t, svc, job.JobTypeTest, 5)
	createTestJob(t, svc, job.JobTypeTest, 5)
	_, err := svc.ClaimNext(ctx, "worker-a")
	require.NoError(t, err)

	pending, err := svc.ListJobs(ctx, models.JobListParams{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	n, err := svc.CountByStatus(ctx, job.StatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	counts, err := svc.CountAllStatuses(ctx, "")
	require.NoError(t, err)
	total := 0
	for _, sc := range counts {
		total += sc.Count
	}
	assert.Equal(t, 2, total)
}
