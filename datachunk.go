package chunkio

import "fmt"

// DataChunk holds exactly one record of type T, for chunks whose payload
// size always equals the record size (header-like chunks such as a file
// version or a terrain header).
//
// The zero value is usable but has no tag; format definitions construct
// their chunks with NewDataChunk to bind the tag once.
type DataChunk[T any] struct {
	value       T
	fourcc      uint32
	initialized bool
}

// NewDataChunk returns an uninitialized chunk bound to the given tag.
func NewDataChunk[T any](fourcc uint32) DataChunk[T] {
	return DataChunk[T]{fourcc: fourcc}
}

// FourCC returns the tag bound to this chunk.
func (c *DataChunk[T]) FourCC() uint32 { return c.fourcc }

// Initialize resets the value to its zero state and marks the chunk
// initialized.
func (c *DataChunk[T]) Initialize() {
	var zero T
	c.value = zero
	c.initialized = true
}

// InitializeWith copies v in and marks the chunk initialized.
func (c *DataChunk[T]) InitializeWith(v T) {
	c.value = v
	c.initialized = true
}

// Read consumes size bytes and decodes them into the value. The payload of a
// single-value chunk is always exactly RecordSize[T] bytes; any other size
// is a malformed chunk and returns a *DataError.
func (c *DataChunk[T]) Read(b *ByteBuffer, size uint32) error {
	want := RecordSize[T]()
	if int(size) != want {
		return dataErrf(b.Bytes(), b.Pos(), nil, "chunk %s: payload is %d bytes, record %T takes %d", FourCCString(c.fourcc, false), size, c.value, want)
	}
	data, err := b.readView(want)
	if err != nil {
		return err
	}
	if err := decodeRecord(data, &c.value); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Write appends the record's bytes to the buffer. Panics if the chunk was
// never initialized; callers skip absent chunks on a write pass by checking
// IsInitialized first.
func (c *DataChunk[T]) Write(b *ByteBuffer) {
	if !c.initialized {
		panic(fmt.Errorf("writing uninitialized chunk %s", FourCCString(c.fourcc, false)))
	}
	encodeRecord(b, &c.value)
}

// ByteSize returns RecordSize[T], always.
func (c *DataChunk[T]) ByteSize() uint32 { return uint32(RecordSize[T]()) }

// IsInitialized reports whether Initialize, InitializeWith or a successful
// Read has run.
func (c *DataChunk[T]) IsInitialized() bool { return c.initialized }

// Get returns a copy of the wrapped value.
func (c *DataChunk[T]) Get() T { return c.value }

// Ptr returns the wrapped value for in-place mutation.
func (c *DataChunk[T]) Ptr() *T { return &c.value }
