package domain

import "errors"

// Sentinel errors for errors.Is() checking. Layers add context with
// fmt.Errorf("...: %w", err); the transport layer maps them to status
// codes. Validation failures are not duplicated here: they surface as
// *straitjacket.ValidationError from action construction.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)
