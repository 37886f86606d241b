package stream_test

import (
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httpmsg/stream"
)

func TestNewMemoryResource(t *testing.T) {
	t.Parallel()

	data := []byte("abc")
	res, err := stream.NewMemoryResource(data, "")
	if err != nil {
		t.Fatalf("stream.NewMemoryResource(data, \"\") error = %v, want nil", err)
	}
	if got, want := res.Mode(), stream.ModeMemory; got != want {
		t.Errorf("res.Mode() = %q, want %q", got, want)
	}
	if !res.Seekable() {
		t.Error("res.Seekable() = false, want true")
	}

	data[0] = 'x'
	if got, want := string(res.Bytes()), "abc"; got != want {
		t.Errorf("res.Bytes() = %q, want %q", got, want)
	}

	if _, err := stream.NewMemoryResource(nil, "z"); !cmp.Equal(err, stream.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("stream.NewMemoryResource(nil, \"z\") error = %v, want %v", err, stream.ErrInvalidArgument)
	}
}

func TestMemoryResource_ReadWriteSeek(t *testing.T) {
	t.Parallel()

	res, _ := stream.NewMemoryResource([]byte("abc"), "")

	buf := make([]byte, 2)
	n, err := res.Read(buf)
	if n != 2 || err != nil || string(buf) != "ab" {
		t.Errorf("res.Read(buf) = (%d, %v) %q, want (2, nil) \"ab\"", n, err, buf)
	}

	if pos, err := res.Seek(2, io.SeekEnd); pos != 5 || err != nil {
		t.Errorf("res.Seek(2, io.SeekEnd) = (%d, %v), want (5, nil)", pos, err)
	}
	if n, err := res.Write([]byte("z")); n != 1 || err != nil {
		t.Errorf("res.Write(\"z\") = (%d, %v), want (1, nil)", n, err)
	}
	if diff := cmp.Diff(res.Bytes(), []byte("abc\x00\x00z")); diff != "" {
		t.Errorf("res.Bytes() = %q, want %q\ndiff (-got +want):\n%v", res.Bytes(), "abc\x00\x00z", diff)
	}
	if size, ok := res.Size(); size != 6 || !ok {
		t.Errorf("res.Size() = (%d, %v), want (6, true)", size, ok)
	}

	if n, err := res.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("res.Read(buf) = (%d, %v), want (0, %v)", n, err, io.EOF)
	}

	if pos, err := res.Seek(-1, io.SeekCurrent); pos != 5 || err != nil {
		t.Errorf("res.Seek(-1, io.SeekCurrent) = (%d, %v), want (5, nil)", pos, err)
	}
	if _, err := res.Seek(-10, io.SeekCurrent); !cmp.Equal(err, stream.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("res.Seek(-10, io.SeekCurrent) error = %v, want %v", err, stream.ErrInvalidArgument)
	}
	if _, err := res.Seek(0, 42); !cmp.Equal(err, stream.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("res.Seek(0, 42) error = %v, want %v", err, stream.ErrInvalidArgument)
	}
}

func TestMemoryResource_Close(t *testing.T) {
	t.Parallel()

	res, _ := stream.NewMemoryResource([]byte("abc"), "")
	if err := res.Close(); err != nil {
		t.Fatalf("res.Close() error = %v, want nil", err)
	}

	if _, err := res.Read(make([]byte, 1)); !cmp.Equal(err, os.ErrClosed, cmpopts.EquateErrors()) {
		t.Errorf("res.Read(buf) error = %v, want %v", err, os.ErrClosed)
	}
	if _, err := res.Write([]byte("x")); !cmp.Equal(err, os.ErrClosed, cmpopts.EquateErrors()) {
		t.Errorf("res.Write(\"x\") error = %v, want %v", err, os.ErrClosed)
	}
	if _, err := res.Seek(0, io.SeekStart); !cmp.Equal(err, os.ErrClosed, cmpopts.EquateErrors()) {
		t.Errorf("res.Seek(0, io.SeekStart) error = %v, want %v", err, os.ErrClosed)
	}
	if _, ok := res.Size(); ok {
		t.Error("res.Size() ok = true, want false")
	}
	if err := res.Close(); !cmp.Equal(err, os.ErrClosed, cmpopts.EquateErrors()) {
		t.Errorf("res.Close() error = %v, want %v", err, os.ErrClosed)
	}
}

func TestMemoryResource_WriteLimit(t *testing.T) {
	t.Parallel()

	res, _ := stream.NewMemoryResource([]byte("abc"), "")
	if _, err := res.Seek(1<<62, io.SeekStart); err != nil {
		t.Fatalf("res.Seek(1<<62, io.SeekStart) error = %v, want nil", err)
	}
	n, err := res.Write([]byte("x"))
	if n != 0 {
		t.Errorf("res.Write(\"x\") n = %d, want 0", n)
	}
	if diff := cmp.Diff(err, stream.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("res.Write(\"x\") error = %v, want %v\ndiff (-got +want):\n%v", err, stream.ErrInvalidArgument, diff)
	}
	if size, _ := res.Size(); size != 3 {
		t.Errorf("res.Size() = %d, want 3", size)
	}
}
