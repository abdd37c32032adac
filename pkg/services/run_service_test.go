package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent/pipelinerun"
	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

func TestRunService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("completed run", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, "", []string{"10-K", "10-Q"}, "manual")
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusPending, run.Status)
		assert.Equal(t, []string{"10-K", "10-Q"}, run.Forms)
		assert.Nil(t, run.CompanyID)

		require.NoError(t, svc.MarkRunning(ctx, run.ID))
		require.NoError(t, svc.UpdateCounts(ctx, run.ID, 5, 3, 0))

		companies := NewCompanyService(client.Client)
		company, err := companies.UpsertCompany(ctx, models.UpsertCompanyInput{Ticker: "ACME", Name: "Acme"})
		require.NoError(t, err)
		require.NoError(t, svc.SetCompany(ctx, run.ID, company.ID))

		metadata := map[string]interface{}{
			"stages": []models.RunMetadataStage{
				{Stage: "single_summary", DurationMS: 120, New: 4, Reused: 1},
			},
		}
		require.NoError(t, svc.CompleteRun(ctx, run.ID, 5, 5, 0, metadata))

		final, err := svc.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCompleted, final.Status)
		assert.Equal(t, 5, final.JobsCreated)
		assert.Equal(t, 5, final.JobsCompleted)
		assert.NotNil(t, final.StartedAt)
		assert.NotNil(t, final.CompletedAt)
		require.NotNil(t, final.CompanyID)
		assert.Equal(t, company.ID, *final.CompanyID)
		assert.Contains(t, final.RunMetadata, "stages")
	})

	t.Run("failed run keeps partial progress", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, "", []string{"10-K"}, "scheduled")
		require.NoError(t, err)
		require.NoError(t, svc.MarkRunning(ctx, run.ID))

		require.NoError(t, svc.FailRun(ctx, run.ID, "source unreachable", 3, 1, 2, nil))

		final, err := svc.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusFailed, final.Status)
		require.NotNil(t, final.Error)
		assert.Equal(t, "source unreachable", *final.Error)
		assert.Equal(t, 3, final.JobsCreated)
		assert.Equal(t, 1, final.JobsCompleted)
		assert.Equal(t, 2, final.JobsFailed)
	})

	t.Run("empty trigger defaults to manual", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, "", nil, "")
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.TriggerManual, run.Trigger)
	})

	t.Run("unknown trigger rejected", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, "", nil, "cosmic-ray")
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown run id", func(t *testing.T) {
		assert.ErrorIs(t, svc.MarkRunning(ctx, "missing"), ErrNotFound)
		_, err := svc.GetRun(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	a, err := svc.CreateRun(ctx, "", []string{"10-K"}, "manual")
	require.NoError(t, err)
	_, err = svc.CreateRun(ctx, "", []string{"10-Q"}, "manual")
	require.NoError(t, err)
	require.NoError(t, svc.FailRun(ctx, a.ID, "boom", 0, 0, 0, nil))

	all, err := svc.ListRuns(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	failed, err := svc.ListRuns(ctx, "failed", 10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, a.ID, failed[0].ID)

	_, err = svc.ListRuns(ctx, "bogus", 10)
	assert.True(t, IsValidationError(err))
}
