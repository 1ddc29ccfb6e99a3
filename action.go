package straitjacket

import (
	"context"
	"errors"
)

// ErrNilAction indicates a nil action was handed to Make, Call, or CallWith.
var ErrNilAction = errors.New("nil action")

// Unit is the canonical "no outcome" value, produced by actions that have
// nothing to report. Any two Unit values are equal, so every Unit-producing
// action yields the same indistinguishable result.
type Unit struct{}

// Validator is the construction-time half of the action contract. Validate
// inspects the inputs assigned to the action and returns one human-readable
// message per failed check, in the order the checks run, or nil when the
// inputs are acceptable.
//
// Checks must stay structural: presence, shape, ranges. A Validate method
// that performs I/O or reads a clock breaks the contract even though
// nothing stops it mechanically.
type Validator interface {
	Validate() []string
}

// Action is a unit of side-effecting work with named inputs, a validation
// pass, and exactly one invocation entry point. O is the outcome type the
// body yields; actions with nothing to report declare Action[Unit].
//
// Declare an action as a struct whose exported fields are its inputs, then
// construct it with a field-keyed literal and hand it to Make. Invocation
// goes through Call or CallWith; Make is the only path that runs the
// validation pass, so an action that skipped it never reaches the body.
type Action[O any] interface {
	Validator
	Invoke(ctx context.Context) (O, error)
}

// Func adapts a plain function into an Action with no validation checks.
type Func[O any] func(context.Context) (O, error)

// Validate always passes; a bare function has no inputs to check.
func (f Func[O]) Validate() []string { return nil }

// Invoke calls f.
func (f Func[O]) Invoke(ctx context.Context) (O, error) { return f(ctx) }

var _ Action[Unit] = (Func[Unit])(nil)

// Make is the single public factory for actions. It runs the validation
// pass and either returns the action unchanged, ready to invoke, or a
// *ValidationError aggregating every failed check in check order. A failed
// Make never yields a usable action.
func Make[A Validator](a A) (A, error) {
	var zero A
	if any(a) == nil {
		return zero, ErrNilAction
	}
	if failures := a.Validate(); len(failures) > 0 {
		return zero, &ValidationError{Failures: append([]string(nil), failures...)}
	}
	return a, nil
}

// MustMake is Make for wiring code and tests; it panics on validation
// failure.
func MustMake[A Validator](a A) A {
	a, err := Make(a)
	if err != nil {
		panic(err)
	}
	return a
}

// Call invokes a Unit-producing action's body exactly once, synchronously,
// on the calling goroutine. Errors from the body propagate unmodified; Call
// never retries, wraps, or logs.
func Call(ctx context.Context, a Action[Unit]) error {
	if a == nil {
		return ErrNilAction
	}
	_, err := a.Invoke(ctx)
	return err
}

// CallWith invokes the action's body exactly once and delivers its outcome
// to the continuation fn exactly once, as fn's only argument. The outcome
// is observable solely inside fn; CallWith returns no result value. Errors
// from the body or from fn propagate unmodified.
//
// A nil fn discards the outcome silently rather than failing; callers who
// ignore an outcome get no signal. A continuation given for a
// Unit-producing action is never invoked, since Unit carries nothing to
// observe.
func CallWith[O any](ctx context.Context, a Action[O], fn func(O) error) error {
	if a == nil {
		return ErrNilAction
	}
	out, err := a.Invoke(ctx)
	if err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	if _, ok := any(out).(Unit); ok {
		return nil
	}
	return fn(out)
}
