package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/models"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(&Deps{Pipeline: config.DefaultPipelineConfig()})
	require.NoError(t, err)
	require.NotNil(t, r)

	// Every schema job type has a handler.
	for _, jt := range allJobTypes {
		assert.Contains(t, r.handlers, jt)
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	r, err := NewRegistry(&Deps{Pipeline: config.DefaultPipelineConfig()})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("routes to the test handler and echoes params", func(t *testing.T) {
		params := map[string]interface{}{"sleep": float64(0)}
		result, err := r.Dispatch(ctx, &ent.Job{JobType: job.JobTypeTest, Params: params})
		require.NoError(t, err)
		assert.Equal(t, "ok", result["status"])
		assert.Equal(t, params, result["echo"])
	})

	t.Run("handler error propagates", func(t *testing.T) {
		_, err := r.Dispatch(ctx, &ent.Job{
			JobType: job.JobTypeTest,
			Params:  map[string]interface{}{"fail": true},
		})
		require.Error(t, err)
	})

	t.Run("unknown job type", func(t *testing.T) {
		_, err := r.Dispatch(ctx, &ent.Job{JobType: job.JobType("bogus")})
		require.Error(t, err)
	})
}

func TestTestHandler_Cancellation(t *testing.T) {
	h := &TestHandler{}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := h.Handle(ctx, jobWith(t, models.TestParams{SleepSeconds: 5}))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
