package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/filinglens/filinglens/ent/job"
	"github.com/filinglens/filinglens/pkg/models"
	"github.com/filinglens/filinglens/pkg/services"
)

// CreateJobRequest is the request body for POST /api/v1/jobs.
type CreateJobRequest struct {
	JobType    string                 `json:"job_type" binding:"required"`
	Params     map[string]interface{} `json:"params"`
	Priority   *int                   `json:"priority"`
	MaxRetries *int                   `json:"max_retries"`
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.jobs.CreateJob(c.Request.Context(), services.CreateJobRequest{
		JobType:    job.JobType(req.JobType),
		Params:     req.Params,
		Priority:   req.Priority,
		MaxRetries: req.MaxRetries,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListJobs handles GET /api/v1/jobs.
// Query params: status, job_type, limit.
func (s *Server) ListJobs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	jobs, err := s.jobs.ListJobs(c.Request.Context(), models.JobListParams{
		Status:  c.Query("status"),
		JobType: c.Query("job_type"),
		Limit:   limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// GetJob handles GET /api/v1/jobs/:id.
func (s *Server) GetJob(c *gin.Context) {
	j, err := s.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// CancelJob handles POST /api/v1/jobs/:id/cancel. Only pending jobs can be
// cancelled; in-flight jobs run to completion.
func (s *Server) CancelJob(c *gin.Context) {
	cancelled, err := s.jobs.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// RequeueFailed handles POST /api/v1/jobs/requeue-failed.
// Query params: job_type (optional filter).
func (s *Server) RequeueFailed(c *gin.Context) {
	requeued, err := s.jobs.RequeueFailed(c.Request.Context(), c.Query("job_type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requeued": len(requeued)})
}
