package apperrors

import "errors"

// Sentinel errors for the core services. Handlers translate these into HTTP
// statuses; everything else surfaces as an internal error.
var (
	// ErrNotFoundOrDenied covers both a missing model and a caller without
	// permission. The two cases are deliberately indistinguishable so that
	// unauthorized callers cannot probe for model existence.
	ErrNotFoundOrDenied = errors.New("not found or access denied")

	// ErrNotFound is for sub-entities referenced within an already-authorized
	// model, where existence leakage is not a concern.
	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("validation failed")

	ErrConflict = errors.New("conflict")

	// ErrCircularReference is returned when a parent reassignment would create
	// a cycle in a block hierarchy.
	ErrCircularReference = errors.New("circular reference detected")
)
