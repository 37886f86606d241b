package stream

import (
	"os"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

// Mode is an fopen-style open mode, e.g. "r", "r+", "w+b" or "a".
//
// The first character is one of 'r', 'w', 'a', 'x', 'c', the rest may contain
// '+' and the 'b', 't', 'e' flags, which are ignored.
type Mode string

const (
	ModeRead      Mode = "r"
	ModeReadWrite Mode = "r+"
	ModeWrite     Mode = "w"
	ModeMemory    Mode = "w+b"
)

// Readable reports whether the mode contains 'r' or '+'.
func (m Mode) Readable() bool { return strings.ContainsAny(string(m), "r+") }

// Writable reports whether the mode contains 'w' or '+'.
func (m Mode) Writable() bool { return strings.ContainsAny(string(m), "w+") }

// Validate checks the mode syntax.
func (m Mode) Validate() error {
	if m == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty mode"))
	}
	if !strings.ContainsRune("rwaxc", rune(m[0])) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown mode %q", m))
	}
	if strings.Trim(string(m[1:]), "+bte") != "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown mode flags %q", m))
	}
	return nil
}

// IsValid reports whether the mode syntax is valid.
func (m Mode) IsValid() bool { return m.Validate() == nil }

// openFlags returns flags for [os.OpenFile], the mode must be valid.
func (m Mode) openFlags() int {
	var flag int
	switch m[0] {
	case 'w':
		flag = os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_CREATE | os.O_APPEND
	case 'x':
		flag = os.O_CREATE | os.O_EXCL
	case 'c':
		flag = os.O_CREATE
	}

	switch {
	case strings.ContainsRune(string(m[1:]), '+'):
		flag |= os.O_RDWR
	case m[0] == 'r':
		flag |= os.O_RDONLY
	default:
		flag |= os.O_WRONLY
	}
	return flag
}
