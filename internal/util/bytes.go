package util

import (
	"bytes"
	"math"
	"sync"
)

var bytesBufPool = &sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 512)) },
}

// GetBytesBuffer returns an empty buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return bytesBufPool.Get().(*bytes.Buffer) //nolint:forcetypeassert
}

// FreeBytesBuffer resets the buffer and returns it to the pool.
// Buffers grown beyond 64 KiB are dropped.
func FreeBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	if b.Cap() > math.MaxUint16 {
		return
	}
	bytesBufPool.Put(b)
}
