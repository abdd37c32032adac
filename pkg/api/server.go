// Package api exposes the operational HTTP surface: health, queue
// inspection, and pipeline run lookups.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/queue"
	"github.com/filinglens/filinglens/pkg/services"
)

// Server holds the API's dependencies.
type Server struct {
	db   *database.Client
	jobs *services.JobService
	runs *services.RunService
	pool *queue.WorkerPool
}

// NewServer creates a new API server. pool may be nil when the process
// runs without workers (API-only deployments).
func NewServer(db *database.Client, jobs *services.JobService, runs *services.RunService, pool *queue.WorkerPool) *Server {
	return &Server{db: db, jobs: jobs, runs: runs, pool: pool}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/jobs", s.CreateJob)
		v1.GET("/jobs", s.ListJobs)
		v1.GET("/jobs/:id", s.GetJob)
		v1.POST("/jobs/:id/cancel", s.CancelJob)
		v1.POST("/jobs/requeue-failed", s.RequeueFailed)

		v1.GET("/runs", s.ListRuns)
		v1.GET("/runs/:id", s.GetRun)

		v1.GET("/queue/health", s.QueueHealth)
	}
	return r
}

// QueueHealth returns worker pool health, or 503 when no pool is attached.
func (s *Server) QueueHealth(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no worker pool in this process"})
		return
	}
	health := s.pool.Health()
	status := http.StatusOK
	if !health.IsHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
