package interruptor

import (
	"errors"
	"fmt"
)

// Sentinel errors naming the conditions this package reports. Callers
// should match against these with [errors.Is], not string comparison.
var (
	// ErrNotRunning names the case of a target interruptor that was not
	// running at the moment a send was attempted. Send reports that case
	// by returning false; no operation in this package returns this error.
	ErrNotRunning = errors.New("interruptor: target is not running")

	// ErrAlreadyRunning is the Cause of the InvariantError that Start
	// panics with when called on an interruptor that is already running.
	ErrAlreadyRunning = errors.New("interruptor: already running")

	// ErrJoinInterrupted names the case of a Join woken by an incoming
	// interrupt before the target terminated. Join reports that case by
	// returning false (the caller may retry with the same target
	// generation); no operation in this package returns this error.
	ErrJoinInterrupted = errors.New("interruptor: join interrupted by incoming work")
)

// InvariantError represents a violated protocol invariant: queue
// corruption, double-start, a handler running on a non-running domain, or
// a cancel() call for an interruptor that was not actually queued. These
// conditions indicate a bug in the caller or in this package itself, not
// a recoverable runtime condition, so every caller of panicInvariant
// raises one instead of returning it.
type InvariantError struct {
	Op    string
	Cause error
}

func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("interruptor: invariant violated in %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("interruptor: invariant violated in %s", e.Op)
}

func (e *InvariantError) Unwrap() error { return e.Cause }

// WrapError wraps cause with a contextual message, preserving it for
// errors.Is/errors.As matching via %w.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}

// panicInvariant raises an InvariantError for op. There is no recoverable
// path here: per spec, invariant violations are fatal assertions.
func panicInvariant(op string, cause error) {
	panic(&InvariantError{Op: op, Cause: cause})
}

// Internal invariant-violation causes, wrapped into InvariantError at
// each panicInvariant call site.
var (
	errQueueEmpty    = errors.New("remove called on an empty wait queue")
	errNotQueued     = errors.New("cancel called for an interruptor not present in the queue")
	errAlreadyQueued = errors.New("interrupts already queued when Start was called")
	errNotRunning    = errors.New("handleIncoming called on a non-running interruptor")
)
