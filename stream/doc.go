// Package stream provides a seekable byte stream over a single underlying resource.
//
// # Resources
//
// A [Resource] is an already opened byte resource: an [io.ReadWriteSeeker] and [io.Closer]
// that also reports the mode it was opened with, whether it is seekable and its size.
// [FileResource] wraps an [os.File], [MemoryResource] keeps the bytes in memory.
//
// # Capabilities
//
// [Stream] computes its capabilities once, when the resource is wrapped:
//
//   - readable if the open mode contains 'r' or '+';
//   - writable if the open mode contains 'w' or '+';
//   - seekable as reported by the resource.
//
// Note that the mode rules are plain substring checks, so a stream over a resource
// opened in "a" or "x" mode is not writable.
//
// # Lifecycle
//
// A stream starts in [StateOpen] and moves to [StateDetached] either with [Stream.Close],
// which closes the resource, or with [Stream.Detach], which hands the resource back to
// the caller without closing it. A detached stream fails every operation with
// [ErrDetached], except [Stream.Detach] that returns nil and the queries
// ([Stream.EOF], [Stream.Size], [Stream.Readable], etc.) that report an empty stream.
//
// # Errors
//
// Operational failures are returned as [*OpError]. Every such error matches
// [ErrStreamFailure] with [errors.Is] and also one of the reasons: [ErrDetached],
// [ErrNotReadable], [ErrNotWritable], [ErrNotSeekable] or [ErrIO]. A failed operation
// never closes the stream. [Stream.Read] returns a bare [io.EOF] at the end of data.
//
// # Thread Safety
//
// Streams are not safe for concurrent use, all operations share the resource position.
package stream
