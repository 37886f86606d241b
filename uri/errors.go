package uri

import "github.com/ghettovoice/httpmsg/internal/errorutil"

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a component is out of its domain, e.g. a port out of range.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrEmptyInput is returned by [Parse] on empty input.
	ErrEmptyInput Error = "empty input"
	// ErrMalformedInput is returned by [Parse] when the input is not a URI reference.
	ErrMalformedInput Error = "malformed input"
	// ErrInvalidURI is returned by [URI.Validate].
	ErrInvalidURI Error = "invalid URI"
)
