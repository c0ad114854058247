package chunkio

import "fmt"

// DataArrayChunk holds a variable number of records of type T: the common
// case of a chunk whose payload is header.Size / RecordSize[T] consecutive
// records. Optional Min/Max bounds express a format-mandated cardinality
// range and are enforced against file data on Read; when the format mandates
// an exact count, use FixedArrayChunk instead.
//
// At returns pointers so elements can be mutated in place. Indexes out of
// range panic, as with any Go slice; that is a caller bug, not a data error.
type DataArrayChunk[T any] struct {
	data        []T
	fourcc      uint32
	min, max    int // 0 = unbounded on that side
	initialized bool
}

// NewDataArrayChunk returns an unbounded, uninitialized array chunk bound to
// the given tag.
func NewDataArrayChunk[T any](fourcc uint32) DataArrayChunk[T] {
	return DataArrayChunk[T]{fourcc: fourcc}
}

// NewBoundedArrayChunk returns an uninitialized array chunk whose element
// count must stay within [min, max] when read from a file. Zero disables a
// bound.
func NewBoundedArrayChunk[T any](fourcc uint32, min, max int) DataArrayChunk[T] {
	return DataArrayChunk[T]{fourcc: fourcc, min: min, max: max}
}

// FourCC returns the tag bound to this chunk.
func (c *DataArrayChunk[T]) FourCC() uint32 { return c.fourcc }

// Initialize marks the chunk initialized with no elements.
func (c *DataArrayChunk[T]) Initialize() {
	c.data = nil
	c.initialized = true
}

// InitializeWith copies the given elements in and marks the chunk
// initialized.
func (c *DataArrayChunk[T]) InitializeWith(vals []T) {
	c.data = make([]T, len(vals))
	copy(c.data, vals)
	c.initialized = true
}

// InitializeN fills the chunk with n copies of v and marks it initialized.
func (c *DataArrayChunk[T]) InitializeN(v T, n int) {
	c.data = make([]T, n)
	for i := range c.data {
		c.data[i] = v
	}
	c.initialized = true
}

// Read consumes size bytes as consecutive records. The size must be a whole
// multiple of RecordSize[T] and the resulting count must satisfy the chunk's
// bounds; violations are malformed data and return a *DataError.
func (c *DataArrayChunk[T]) Read(b *ByteBuffer, size uint32) error {
	recSize := RecordSize[T]()
	if int(size)%recSize != 0 {
		return dataErrf(b.Bytes(), b.Pos(), nil, "chunk %s: payload of %d bytes is not a multiple of record size %d", FourCCString(c.fourcc, false), size, recSize)
	}
	count := int(size) / recSize
	if c.min > 0 && count < c.min {
		return dataErrf(b.Bytes(), b.Pos(), nil, "chunk %s: %d elements, format requires at least %d", FourCCString(c.fourcc, false), count, c.min)
	}
	if c.max > 0 && count > c.max {
		return dataErrf(b.Bytes(), b.Pos(), nil, "chunk %s: %d elements, format allows at most %d", FourCCString(c.fourcc, false), count, c.max)
	}
	data, err := b.readView(int(size))
	if err != nil {
		return err
	}
	c.data = make([]T, count)
	for i := 0; i < count; i++ {
		if err := decodeRecord(data[i*recSize:(i+1)*recSize], &c.data[i]); err != nil {
			return err
		}
	}
	c.initialized = true
	return nil
}

// Write appends all elements in storage order. Panics if the chunk was never
// initialized.
func (c *DataArrayChunk[T]) Write(b *ByteBuffer) {
	if !c.initialized {
		panic(fmt.Errorf("writing uninitialized chunk %s", FourCCString(c.fourcc, false)))
	}
	for i := range c.data {
		encodeRecord(b, &c.data[i])
	}
}

// ByteSize returns Size() * RecordSize[T].
func (c *DataArrayChunk[T]) ByteSize() uint32 {
	return uint32(len(c.data) * RecordSize[T]())
}

// IsInitialized reports whether the chunk holds valid data. It stays true
// after Clear: an explicitly emptied chunk is distinct from one that was
// never present in the file.
func (c *DataArrayChunk[T]) IsInitialized() bool { return c.initialized }

// Size returns the number of elements.
func (c *DataArrayChunk[T]) Size() int { return len(c.data) }

// Add appends a zero-valued element and returns it for the caller to fill.
func (c *DataArrayChunk[T]) Add() *T {
	var zero T
	c.data = append(c.data, zero)
	return &c.data[len(c.data)-1]
}

// Remove erases the element at index, shifting subsequent elements down.
// Panics on an out-of-range index.
func (c *DataArrayChunk[T]) Remove(index int) {
	if index < 0 || index >= len(c.data) {
		panic(fmt.Errorf("chunk %s: Remove(%d) out of range, %d elements", FourCCString(c.fourcc, false), index, len(c.data)))
	}
	c.data = append(c.data[:index], c.data[index+1:]...)
}

// Clear removes all elements. The chunk stays initialized.
func (c *DataArrayChunk[T]) Clear() {
	c.data = c.data[:0]
}

// At returns the element at index for reading or in-place mutation. Panics
// on an out-of-range index.
func (c *DataArrayChunk[T]) At(index int) *T {
	return &c.data[index]
}

// Elements returns the underlying slice for iteration. Mutating elements
// through it is fine; appending is not.
func (c *DataArrayChunk[T]) Elements() []T { return c.data }

// FixedArrayChunk holds exactly count records of type T, for chunks whose
// element count is mandated by the format (say, 16x16 map cells). There are
// no Add/Remove/Clear methods: the cardinality is part of the type's
// contract, so the mutations simply do not exist to be misused.
type FixedArrayChunk[T any] struct {
	data        []T
	fourcc      uint32
	count       int
	initialized bool
}

// NewFixedArrayChunk returns an uninitialized chunk that holds exactly count
// elements once initialized.
func NewFixedArrayChunk[T any](fourcc uint32, count int) FixedArrayChunk[T] {
	if count <= 0 {
		panic(fmt.Errorf("fixed array chunk needs a positive count, got %d", count))
	}
	return FixedArrayChunk[T]{fourcc: fourcc, count: count}
}

// FourCC returns the tag bound to this chunk.
func (c *FixedArrayChunk[T]) FourCC() uint32 { return c.fourcc }

// Initialize fills the chunk with zero-valued elements and marks it
// initialized.
func (c *FixedArrayChunk[T]) Initialize() {
	c.data = make([]T, c.count)
	c.initialized = true
}

// InitializeWith copies the given elements in. Panics unless len(vals)
// equals the chunk's count; supplying the wrong number of elements is a
// caller bug.
func (c *FixedArrayChunk[T]) InitializeWith(vals []T) {
	if len(vals) != c.count {
		panic(fmt.Errorf("chunk %s: InitializeWith got %d elements, format mandates %d", FourCCString(c.fourcc, false), len(vals), c.count))
	}
	c.data = make([]T, c.count)
	copy(c.data, vals)
	c.initialized = true
}

// InitializeN fills the chunk with n copies of v. Panics unless n equals the
// chunk's count.
func (c *FixedArrayChunk[T]) InitializeN(v T, n int) {
	if n != c.count {
		panic(fmt.Errorf("chunk %s: InitializeN got n=%d, format mandates %d", FourCCString(c.fourcc, false), n, c.count))
	}
	c.data = make([]T, c.count)
	for i := range c.data {
		c.data[i] = v
	}
	c.initialized = true
}

// Read consumes size bytes as consecutive records. The payload must hold
// exactly the mandated element count; anything else is malformed data and
// returns a *DataError.
func (c *FixedArrayChunk[T]) Read(b *ByteBuffer, size uint32) error {
	recSize := RecordSize[T]()
	if int(size) != c.count*recSize {
		return dataErrf(b.Bytes(), b.Pos(), nil, "chunk %s: payload is %d bytes, format mandates %d records of %d bytes", FourCCString(c.fourcc, false), size, c.count, recSize)
	}
	data, err := b.readView(int(size))
	if err != nil {
		return err
	}
	c.data = make([]T, c.count)
	for i := 0; i < c.count; i++ {
		if err := decodeRecord(data[i*recSize:(i+1)*recSize], &c.data[i]); err != nil {
			return err
		}
	}
	c.initialized = true
	return nil
}

// Write appends all elements in storage order. Panics if the chunk was never
// initialized.
func (c *FixedArrayChunk[T]) Write(b *ByteBuffer) {
	if !c.initialized {
		panic(fmt.Errorf("writing uninitialized chunk %s", FourCCString(c.fourcc, false)))
	}
	for i := range c.data {
		encodeRecord(b, &c.data[i])
	}
}

// ByteSize returns count * RecordSize[T], always, whether or not the chunk
// is initialized.
func (c *FixedArrayChunk[T]) ByteSize() uint32 {
	return uint32(c.count * RecordSize[T]())
}

// IsInitialized reports whether the chunk holds valid data.
func (c *FixedArrayChunk[T]) IsInitialized() bool { return c.initialized }

// Size returns the mandated element count.
func (c *FixedArrayChunk[T]) Size() int { return c.count }

// At returns the element at index for reading or in-place mutation. Panics
// on an out-of-range index or on an uninitialized chunk.
func (c *FixedArrayChunk[T]) At(index int) *T {
	return &c.data[index]
}

// Elements returns the underlying slice for iteration; nil until the chunk
// is initialized.
func (c *FixedArrayChunk[T]) Elements() []T { return c.data }
