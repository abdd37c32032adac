package services

import "github.com/google/uuid"

// newID returns a time-ordered 128-bit identifier (UUIDv7). Sortable ids keep
// FIFO tie-breaks and listings cheap without a separate sequence.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the entropy source does; fall back to v4.
		return uuid.New().String()
	}
	return id.String()
}
