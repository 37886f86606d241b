package stream

//go:generate go tool mockgen -destination=../internal/testutil/streammock/resource.go -package=streammock . Resource

import (
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpmsg/internal/errorutil"
)

// Resource is an opened byte resource wrapped by [Stream].
type Resource interface {
	io.ReadWriteSeeker
	io.Closer
	// Mode returns the mode the resource was opened with.
	Mode() Mode
	// Seekable reports whether the resource supports positioning.
	Seekable() bool
	// Size returns the resource size in bytes if it can be determined.
	Size() (int64, bool)
}

// FileResource is a [Resource] backed by an [os.File].
type FileResource struct {
	*os.File
	mode     Mode
	seekable bool
}

// NewFileResource wraps the opened file.
// The file must be open and the mode must match the mode it was opened with.
func NewFileResource(f *os.File, mode Mode) (*FileResource, error) {
	if f == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil file"))
	}
	if err := mode.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if _, err := f.Stat(); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	_, err := f.Seek(0, io.SeekCurrent)
	return &FileResource{
		File:     f,
		mode:     mode,
		seekable: err == nil,
	}, nil
}

func (r *FileResource) Mode() Mode { return r.mode }

func (r *FileResource) Seekable() bool { return r.seekable }

// Size returns the file size, it is known only for regular files.
func (r *FileResource) Size() (int64, bool) {
	fi, err := r.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return 0, false
	}
	return fi.Size(), true
}

// LogValue implements [slog.LogValuer].
func (r *FileResource) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("type", "file"),
		slog.String("name", r.Name()),
		slog.String("mode", string(r.mode)),
	)
}

// Open opens the named file with fopen-style mode and wraps it into a stream.
//
//   - "r" opens for reading, "r+" for reading and writing;
//   - "w" and "w+" create or truncate the file;
//   - "a" and "a+" create the file and append on write;
//   - "x" and "x+" create the file and fail if it exists;
//   - "c" and "c+" create the file without truncating it.
func Open(name string, mode Mode, opts *Options) (*Stream, error) {
	if err := mode.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	f, err := os.OpenFile(name, mode.openFlags(), 0o666)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	res, err := NewFileResource(f, mode)
	if err != nil {
		f.Close()
		return nil, errtrace.Wrap(err)
	}
	s, err := New(res, opts)
	if err != nil {
		f.Close()
		return nil, errtrace.Wrap(err)
	}
	return s, nil
}

var (
	_ Resource       = (*FileResource)(nil)
	_ slog.LogValuer = (*FileResource)(nil)
)
