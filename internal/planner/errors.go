package planner

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the store when a path does not exist.
var ErrNotFound = errors.New("learning path not found")

// InvalidInputError reports a malformed generation request. It is surfaced to
// the caller before any generation or storage attempt.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GenerationError reports that the external generation collaborator errored,
// timed out, or returned structurally invalid data. The orchestrator absorbs
// it via fallback; callers only see it through the provenance flag.
type GenerationError struct {
	Provider string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation via %s failed: %v", e.Provider, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// ValidationError reports a learning path that violates structural
// invariants. Post-fallback occurrence indicates a defect, not a user error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid learning path: " + e.Reason
}
