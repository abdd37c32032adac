// Package services implements the persistence layer: the durable job store,
// the content-addressed artifact store, and the pipeline-run ledger.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidTransition is returned when a job operation is attempted from
	// an inadmissible source state (e.g. cancel on in_progress).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global in-progress job cap is reached and
	// no further jobs should be claimed for now.
	ErrAtCapacity = errors.New("at capacity")

	// ErrAmbiguousHash is returned when a short-hash prefix matches more than
	// one row.
	ErrAmbiguousHash = errors.New("ambiguous hash prefix")

	// ErrSourceCycle is returned when inserting a generated-content row whose
	// source set would create a cycle in the provenance DAG.
	ErrSourceCycle = errors.New("source cycle detected")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
