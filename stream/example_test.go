package stream_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ghettovoice/httpmsg/stream"
)

func ExampleNewMemory() {
	s := stream.NewMemory(nil, nil)
	defer s.Close()

	s.WriteString("Hello, World!") //nolint:errcheck
	s.Seek(7, io.SeekStart)        //nolint:errcheck

	rest, _ := s.Contents()
	fmt.Println(string(rest))
	fmt.Println(s.String())
	// Output:
	// World!
	// Hello, World!
}

func ExampleStream_Detach() {
	s := stream.NewMemory([]byte("payload"), nil)

	res := s.Detach()
	defer res.Close()

	_, err := s.Contents()
	fmt.Println(err)
	fmt.Println(errors.Is(err, stream.ErrStreamFailure), errors.Is(err, stream.ErrDetached))

	b, _ := io.ReadAll(res)
	fmt.Println(string(b))
	// Output:
	// stream contents: stream failure: stream is detached
	// true true
	// payload
}
