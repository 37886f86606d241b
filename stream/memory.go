package stream

import (
	"io"
	"log/slog"
	"math"
	"os"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

// MaxMemorySize is the largest size a [MemoryResource] may grow to.
const MaxMemorySize int64 = math.MaxInt32

// MemoryResource is a seekable in-memory [Resource].
// Writes past the end grow the buffer, the gap is filled with zeros.
type MemoryResource struct {
	buf    []byte
	off    int64
	mode   Mode
	closed bool
}

// NewMemoryResource returns a memory resource holding a copy of data positioned at the start.
// Empty mode defaults to [ModeMemory].
func NewMemoryResource(data []byte, mode Mode) (*MemoryResource, error) {
	if mode == "" {
		mode = ModeMemory
	}
	if err := mode.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &MemoryResource{
		buf:  slices.Clone(data),
		mode: mode,
	}, nil
}

func (r *MemoryResource) Read(p []byte) (int, error) {
	if r.closed {
		return 0, errtrace.Wrap(os.ErrClosed)
	}
	if r.off >= int64(len(r.buf)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF //errtrace:skip
	}
	n := copy(p, r.buf[r.off:])
	r.off += int64(n)
	return n, nil
}

func (r *MemoryResource) Write(p []byte) (int, error) {
	if r.closed {
		return 0, errtrace.Wrap(os.ErrClosed)
	}
	if r.off > MaxMemorySize-int64(len(p)) {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"write of %d bytes at %d exceeds memory limit %d", len(p), r.off, MaxMemorySize,
		))
	}
	end := r.off + int64(len(p))
	if end > int64(len(r.buf)) {
		r.buf = slices.Grow(r.buf, int(end)-len(r.buf))[:end]
	}
	n := copy(r.buf[r.off:], p)
	r.off += int64(n)
	return n, nil
}

func (r *MemoryResource) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, errtrace.Wrap(os.ErrClosed)
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.off + offset
	case io.SeekEnd:
		abs = int64(len(r.buf)) + offset
	default:
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid whence %d", whence))
	}
	if abs < 0 {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("negative position %d", abs))
	}
	r.off = abs
	return abs, nil
}

func (r *MemoryResource) Close() error {
	if r.closed {
		return errtrace.Wrap(os.ErrClosed)
	}
	r.closed = true
	r.buf = nil
	return nil
}

func (r *MemoryResource) Mode() Mode { return r.mode }

func (*MemoryResource) Seekable() bool { return true }

func (r *MemoryResource) Size() (int64, bool) {
	if r.closed {
		return 0, false
	}
	return int64(len(r.buf)), true
}

// Bytes returns the whole buffer regardless of the position.
// The slice is valid until the next write.
func (r *MemoryResource) Bytes() []byte { return r.buf }

// LogValue implements [slog.LogValuer].
func (r *MemoryResource) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("type", "memory"),
		slog.String("mode", string(r.mode)),
		slog.Int("size", len(r.buf)),
	)
}

// NewMemory returns a stream over a memory resource holding a copy of data.
func NewMemory(data []byte, opts *Options) *Stream {
	res, _ := NewMemoryResource(data, ModeMemory)
	s, _ := New(res, opts)
	return s
}

var (
	_ Resource       = (*MemoryResource)(nil)
	_ slog.LogValuer = (*MemoryResource)(nil)
)
