package stream

//go:generate go tool errtrace -w .

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
	"github.com/ghettovoice/httpmsg/internal/util"
	"github.com/ghettovoice/httpmsg/log"
)

// State is a stream lifecycle state.
type State string

const (
	StateOpen     State = "open"
	StateDetached State = "detached"
)

type trigger string

const (
	triggerClose  trigger = "close"
	triggerDetach trigger = "detach"
)

// Options are used to configure the stream.
type Options struct {
	// Log is used for debug logging of state changes and failed operations.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Metadata describes the wrapped resource.
type Metadata struct {
	Mode     Mode
	Readable bool
	Writable bool
	Seekable bool
	// Size is the resource size, valid when HasSize is true.
	Size    int64
	HasSize bool
}

// Stream wraps a single [Resource] and gates operations by capabilities of the resource.
type Stream struct {
	res      Resource
	mode     Mode
	readable bool
	writable bool
	seekable bool
	eof      bool

	fsm *stateless.StateMachine
	log *slog.Logger
}

// New wraps the resource into an open stream.
// Capabilities are computed once from the resource mode and seekability.
func New(res Resource, opts *Options) (*Stream, error) {
	if res == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil resource"))
	}
	mode := res.Mode()
	if err := mode.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	s := &Stream{
		res:      res,
		mode:     mode,
		readable: mode.Readable(),
		writable: mode.Writable(),
		seekable: res.Seekable(),
		log:      opts.log(),
	}
	s.initFSM()
	return s, nil
}

func (s *Stream) initFSM() {
	s.fsm = stateless.NewStateMachine(StateOpen)

	s.fsm.Configure(StateOpen).
		Permit(triggerClose, StateDetached).
		Permit(triggerDetach, StateDetached)

	s.fsm.Configure(StateDetached).
		OnEntry(s.actDetached).
		OnEntryFrom(triggerClose, s.actClosed).
		OnEntryFrom(triggerDetach, s.actReleased)
}

func (s *Stream) actDetached(ctx context.Context, _ ...any) error {
	s.log.LogAttrs(ctx, slog.LevelDebug, "stream detached",
		slog.Any("stream", s),
		slog.Any("resource", s.res),
	)

	s.res = nil
	s.readable, s.writable, s.seekable = false, false, false
	s.eof = false
	return nil
}

//nolint:unparam
func (s *Stream) actClosed(ctx context.Context, _ ...any) error {
	s.log.LogAttrs(ctx, slog.LevelDebug, "stream closed", slog.Any("stream", s))
	return nil
}

//nolint:unparam
func (s *Stream) actReleased(ctx context.Context, _ ...any) error {
	s.log.LogAttrs(ctx, slog.LevelDebug, "stream resource released", slog.Any("stream", s))
	return nil
}

// State returns the current stream state.
func (s *Stream) State() State {
	return s.fsm.MustState().(State) //nolint:forcetypeassert
}

func (s *Stream) isDetached() bool { return s.State() == StateDetached }

func (s *Stream) fail(op string, reason, cause error) error {
	err := newOpError(op, reason, cause)
	s.log.LogAttrs(context.Background(), slog.LevelDebug, "stream operation failed",
		slog.Any("stream", s),
		slog.Any("error", err),
	)
	return errtrace.Wrap(err)
}

func (s *Stream) check(op string, reason error, allowed bool) error {
	if s.isDetached() {
		return errtrace.Wrap(s.fail(op, ErrDetached, nil))
	}
	if !allowed {
		return errtrace.Wrap(s.fail(op, reason, nil))
	}
	return nil
}

// Read reads up to len(p) bytes from the current position.
// At the end of data it returns [io.EOF] as is and [Stream.EOF] starts to report true.
func (s *Stream) Read(p []byte) (int, error) {
	const op = "read"
	if err := s.check(op, ErrNotReadable, s.readable); err != nil {
		return 0, errtrace.Wrap(err)
	}

	n, err := s.res.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
			return n, io.EOF //errtrace:skip
		}
		return n, errtrace.Wrap(s.fail(op, ErrIO, err))
	}
	return n, nil
}

// Write writes p at the current position.
func (s *Stream) Write(p []byte) (int, error) {
	const op = "write"
	if err := s.check(op, ErrNotWritable, s.writable); err != nil {
		return 0, errtrace.Wrap(err)
	}

	s.eof = false
	n, err := s.res.Write(p)
	if err != nil {
		return n, errtrace.Wrap(s.fail(op, ErrIO, err))
	}
	return n, nil
}

// WriteString is like [Stream.Write] but accepts a string.
func (s *Stream) WriteString(str string) (int, error) {
	return errtrace.Wrap2(s.Write([]byte(str)))
}

// Seek sets the position, whence is one of [io.SeekStart], [io.SeekCurrent], [io.SeekEnd].
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	return errtrace.Wrap2(s.seek("seek", offset, whence))
}

func (s *Stream) seek(op string, offset int64, whence int) (int64, error) {
	if err := s.check(op, ErrNotSeekable, s.seekable); err != nil {
		return 0, errtrace.Wrap(err)
	}

	pos, err := s.res.Seek(offset, whence)
	if err != nil {
		return 0, errtrace.Wrap(s.fail(op, ErrIO, err))
	}
	s.eof = false
	return pos, nil
}

// Rewind moves the position to the start.
func (s *Stream) Rewind() error {
	_, err := s.seek("rewind", 0, io.SeekStart)
	return errtrace.Wrap(err)
}

// Tell returns the current position.
func (s *Stream) Tell() (int64, error) {
	const op = "tell"
	if err := s.check(op, nil, true); err != nil {
		return 0, errtrace.Wrap(err)
	}

	pos, err := s.res.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errtrace.Wrap(s.fail(op, ErrIO, err))
	}
	return pos, nil
}

// EOF reports whether the last read hit the end of data.
// It is always true for a detached stream.
func (s *Stream) EOF() bool {
	if s.isDetached() {
		return true
	}
	return s.eof
}

// Size returns the resource size if it is known.
func (s *Stream) Size() (int64, bool) {
	if s.isDetached() {
		return 0, false
	}
	return s.res.Size()
}

// Contents reads the remaining bytes from the current position.
func (s *Stream) Contents() ([]byte, error) {
	const op = "contents"
	if err := s.check(op, ErrNotReadable, s.readable); err != nil {
		return nil, errtrace.Wrap(err)
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)
	if _, err := buf.ReadFrom(s.res); err != nil {
		return nil, errtrace.Wrap(s.fail(op, ErrIO, err))
	}
	s.eof = true
	return bytes.Clone(buf.Bytes()), nil
}

// Text returns the whole content as a string.
// Seekable streams are rewound first, others are read from the current position.
func (s *Stream) Text() (string, error) {
	if s.seekable {
		if err := s.Rewind(); err != nil {
			return "", errtrace.Wrap(err)
		}
	}
	b, err := s.Contents()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}

// String is like [Stream.Text] but returns empty string on failure.
func (s *Stream) String() string {
	txt, _ := s.Text()
	return txt
}

// Close closes the resource and detaches the stream.
// The stream is detached even if the resource fails to close.
func (s *Stream) Close() error {
	const op = "close"
	if err := s.check(op, nil, true); err != nil {
		return errtrace.Wrap(err)
	}

	cerr := s.res.Close()
	if err := s.fsm.Fire(triggerClose); err != nil {
		return errtrace.Wrap(err)
	}
	if cerr != nil {
		return errtrace.Wrap(s.fail(op, ErrIO, cerr))
	}
	return nil
}

// Detach returns the resource without closing it and detaches the stream.
// It returns nil if the stream is already detached.
func (s *Stream) Detach() Resource {
	if s.isDetached() {
		return nil
	}
	res := s.res
	if err := s.fsm.Fire(triggerDetach); err != nil {
		s.log.LogAttrs(context.Background(), slog.LevelWarn, "failed to detach stream",
			slog.Any("stream", s),
			slog.Any("error", err),
		)
		return nil
	}
	return res
}

// Readable reports whether the stream is open and the resource mode allows reading.
func (s *Stream) Readable() bool { return s.readable }

// Writable reports whether the stream is open and the resource mode allows writing.
func (s *Stream) Writable() bool { return s.writable }

// Seekable reports whether the stream is open and the resource supports positioning.
func (s *Stream) Seekable() bool { return s.seekable }

// Metadata returns the resource description, false if the stream is detached.
func (s *Stream) Metadata() (Metadata, bool) {
	if s.isDetached() {
		return Metadata{}, false
	}
	md := Metadata{
		Mode:     s.mode,
		Readable: s.readable,
		Writable: s.writable,
		Seekable: s.seekable,
	}
	md.Size, md.HasSize = s.res.Size()
	return md, true
}

// Format implements [fmt.Formatter].
// Unlike [Stream.String] it never touches the resource position.
func (s *Stream) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprintf(f, "Stream(%s, %s)", s.State(), s.mode)
	default:
		fmt.Fprintf(f, "%%!%c(*stream.Stream)", verb)
	}
}

// LogValue implements [slog.LogValuer].
func (s *Stream) LogValue() slog.Value {
	if s == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("ptr", fmt.Sprintf("%p", s)),
		slog.String("state", string(s.State())),
		slog.String("mode", string(s.mode)),
	)
}

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
	_ fmt.Stringer       = (*Stream)(nil)
	_ slog.LogValuer     = (*Stream)(nil)
)
