package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const errSentinel errorutil.Error = "sentinel"

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error", []any{io.EOF}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"already wrapped", []any{errorutil.NewWrapperError(errSentinel, io.EOF)}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"message", []any{"bad value"}, "sentinel: bad value", []error{errSentinel}},
		{"format", []any{"bad value %d", 42}, "sentinel: bad value 42", []error{errSentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(err, %v) = false, want true", want)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	got := errorutil.NewInvalidArgumentError("port %d", 0)
	if diff := cmp.Diff(got, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("NewInvalidArgumentError() = %v, want %v\ndiff (-got +want):\n%v",
			got, errorutil.ErrInvalidArgument, diff,
		)
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	err1 := errorutil.Error("first")
	err2 := errorutil.Error("second")

	if err := errorutil.JoinPrefix("invalid:", nil, nil); err != nil {
		t.Errorf("JoinPrefix(nil, nil) = %v, want nil", err)
	}

	err := errorutil.JoinPrefix("invalid:", nil, err1)
	if got, want := err.Error(), "invalid: first"; got != want {
		t.Errorf("JoinPrefix(nil, err1).Error() = %q, want %q", got, want)
	}

	err = errorutil.JoinPrefix("invalid:", err1, err2)
	if got, want := err.Error(), "invalid:\n  - first\n  - second"; got != want {
		t.Errorf("JoinPrefix(err1, err2).Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, err1) || !errors.Is(err, err2) {
		t.Errorf("JoinPrefix(err1, err2) does not wrap both errors")
	}
}
