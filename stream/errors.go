package stream

import (
	"fmt"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

// Error represents a stream error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a stream or a resource is created from invalid input.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrStreamFailure is matched by every operational stream error.
	ErrStreamFailure Error = "stream failure"
)

// Stream failure reasons.
const (
	ErrDetached    Error = "stream is detached"
	ErrNotReadable Error = "stream is not readable"
	ErrNotWritable Error = "stream is not writable"
	ErrNotSeekable Error = "stream is not seekable"
	ErrIO          Error = "I/O failure"
)

// OpError is returned by stream operations.
type OpError struct {
	// Op is the failed operation name, e.g. "read" or "seek".
	Op string
	// Err wraps [ErrStreamFailure], the failure reason and the resource error if any.
	Err error
}

func newOpError(op string, reason, cause error) *OpError {
	err := errorutil.NewWrapperError(ErrStreamFailure, reason)
	if cause != nil {
		err = fmt.Errorf("%w: %w", err, cause) //errtrace:skip
	}
	return &OpError{Op: op, Err: err}
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "stream " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
