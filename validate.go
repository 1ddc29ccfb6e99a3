package straitjacket

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel for construction-time validation failures.
// Use errors.Is(err, ErrValidation) to detect them regardless of wrapping.
var ErrValidation = errors.New("invalid action")

// ValidationError reports every failed construction check for one action.
// Failures preserves check order; Error joins the messages with "; " so one
// string names everything wrong with the inputs.
type ValidationError struct {
	Failures []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Failures, "; "))
}

// Unwrap allows errors.Is(err, ErrValidation) to match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Checklist accumulates validation failure messages in the order the checks
// run. The zero value is ready to use:
//
//	func (a CopyFile) Validate() []string {
//		var c straitjacket.Checklist
//		c.Check(a.Source != "", "source path is required")
//		c.Check(a.Dest != "", "destination path is required")
//		return c.Failures()
//	}
type Checklist struct {
	failures []string
}

// Check records msg when ok is false.
func (c *Checklist) Check(ok bool, msg string) {
	if !ok {
		c.failures = append(c.failures, msg)
	}
}

// Checkf records a formatted message when ok is false.
func (c *Checklist) Checkf(ok bool, format string, args ...any) {
	if !ok {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// Merge appends already-collected failure messages, preserving their order.
// Useful when an action's inputs carry their own validation rules:
//
//	c.Merge(a.Entry.Validate())
func (c *Checklist) Merge(failures []string) {
	c.failures = append(c.failures, failures...)
}

// Failures returns the recorded messages in check order, or nil when every
// check passed.
func (c *Checklist) Failures() []string {
	return c.failures
}
