package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/services"
	testdb "github.com/filinglens/filinglens/test/database"
)

func setupTestServer(t *testing.T) (*Server, *gin.Engine, *services.JobService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	runs := services.NewRunService(client.Client)

	s := NewServer(client, jobs, runs, nil)
	return s, s.Router(), jobs
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthEndpoint(t *testing.T) {
	_, router, _ := setupTestServer(t)

	rec, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestJobEndpoints(t *testing.T) {
	_, router, jobs := setupTestServer(t)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/jobs", map[string]interface{}{
			"job_type": "TEST",
			"params":   map[string]interface{}{"sleep": 0},
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "pending", body["status"])
		assert.NotEmpty(t, body["id"])
	})

	t.Run("create with unknown type is 400", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/jobs", map[string]interface{}{
			"job_type": "NOPE",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create without job_type is 400", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/jobs", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		created, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
		require.NoError(t, err)

		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.ID, body["id"])
	})

	t.Run("get unknown is 404", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/jobs/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list filters by status", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/jobs?status=pending", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotZero(t, body["count"])

		rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/jobs?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/jobs?limit=x", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		created, err := jobs.CreateJob(ctx, services.CreateJobRequest{JobType: job.JobTypeTest})
		require.NoError(t, err)

		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+created.ID+"/cancel", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cancelled", body["status"])
	})

	t.Run("cancel in-progress is 409", func(t *testing.T) {
		created, err := jobs.CreateJob(ctx, services.CreateJobRequest{
			JobType:  job.JobTypeTest,
			Priority: func() *int { p := 0; return &p }(),
		})
		require.NoError(t, err)
		claimed, err := jobs.ClaimNext(ctx, "api-test-worker")
		require.NoError(t, err)
		require.Equal(t, created.ID, claimed.ID)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/jobs/"+created.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("requeue failed", func(t *testing.T) {
		zero := 0
		created, err := jobs.CreateJob(ctx, services.CreateJobRequest{
			JobType:    job.JobTypeTest,
			Priority:   &zero,
			MaxRetries: &zero,
		})
		require.NoError(t, err)
		_, err = jobs.ClaimNext(ctx, "api-test-worker")
		require.NoError(t, err)
		_, err = jobs.Fail(ctx, created.ID, "boom")
		require.NoError(t, err)

		rec, body := doJSON(t, router, http.MethodPost, "/api/v1/jobs/requeue-failed", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["requeued"])
	})
}

func TestRunEndpoints(t *testing.T) {
	s, router, _ := setupTestServer(t)
	ctx := context.Background()

	run, err := s.runs.CreateRun(ctx, "", []string{"10-K"}, "manual")
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/runs/"+run.ID, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, run.ID, body["id"])
	})

	t.Run("get unknown is 404", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/runs/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list with status filter", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodGet, "/api/v1/runs?status=pending", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["count"])

		rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/runs?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestQueueHealth_NoPool(t *testing.T) {
	_, router, _ := setupTestServer(t)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/queue/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, body["error"], "no worker pool")
}
