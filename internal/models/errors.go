package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across repositories and services. Handlers map
// them to HTTP status codes with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// InvalidTransitionError is returned when a requested status change is not
// in the transition table for the report's current status.
type InvalidTransitionError struct {
	From ReportStatus
	To   ReportStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}
