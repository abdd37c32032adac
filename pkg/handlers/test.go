package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/pkg/models"
)

// TestHandler exercises the queue machinery: optional sleep, optional
// scripted failure. Used by smoke tests and operator sanity checks.
type TestHandler struct{}

// Handle implements Handler.
func (h *TestHandler) Handle(ctx context.Context, j *ent.Job) (map[string]interface{}, error) {
	var params models.TestParams
	if err := models.DecodeParams(j.Params, &params); err != nil {
		return nil, err
	}

	if params.SleepSeconds > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(params.SleepSeconds * float64(time.Second))):
		}
	}

	if params.Fail {
		return nil, fmt.Errorf("test job failed as requested")
	}
	return map[string]interface{}{
		"echo":   j.Params,
		"status": "ok",
	}, nil
}
