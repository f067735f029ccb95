package model

import "errors"

// Sentinel errors shared across the engine packages. Callers wrap them with
// fmt.Errorf("...: %w", ...) and the API layer maps them with errors.Is.
var (
	// ErrNotFound is returned by operations that must resolve a device or
	// recommendation id and cannot. Removal and apply are deliberate no-ops
	// on unknown ids and never return it.
	ErrNotFound = errors.New("not found")

	// ErrEmptySeries is returned by aggregations over an empty reading series.
	ErrEmptySeries = errors.New("empty reading series")

	// ErrValidation is returned when device-creation or update input is
	// missing required fields or violates a field invariant.
	ErrValidation = errors.New("validation failed")
)
