package utils

import "github.com/google/uuid"

// NewRunID generates the short correlation ID stamped on an analysis run.
// Eight hex characters are plenty to tell runs apart in logs without
// drowning them in a full UUID.
func NewRunID() string {
	return uuid.New().String()[:8]
}
