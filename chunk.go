package chunkio

// Chunk is the capability contract every chunk container satisfies. Format
// readers hold concrete chunk types and use this interface for the generic
// parts: dispatching Read by tag, skipping uninitialized chunks on a write
// pass, and sizing headers from ByteSize.
//
// Read consumes exactly size bytes of payload from the buffer (the size
// comes from the chunk's header) and marks the chunk initialized; it copies
// data out and never retains a reference into the buffer. Write appends the
// payload bytes (and only those — the caller emits the header, using
// ByteSize for its size field); it panics if the chunk was never
// initialized.
type Chunk interface {
	// FourCC returns the packed tag bound to this chunk instance.
	FourCC() uint32
	// ByteSize returns the payload size Write would produce.
	ByteSize() uint32
	// IsInitialized reports whether the chunk holds valid data, either from
	// Initialize or from a successful Read. An explicitly cleared container
	// chunk stays initialized; only a never-populated one is not.
	IsInitialized() bool
	Read(b *ByteBuffer, size uint32) error
	Write(b *ByteBuffer)
}

// ChunkList is the contract of container chunks whose element count can
// change after initialization. FixedArrayChunk deliberately does not satisfy
// it: its cardinality is mandated by the format and the type system, not a
// runtime check, forbids mutating it.
type ChunkList interface {
	Chunk
	Size() int
	Clear()
}

// Interface validity checks.
var (
	_ Chunk = (*DataChunk[uint32])(nil)
	_ Chunk = (*DataArrayChunk[uint32])(nil)
	_ Chunk = (*FixedArrayChunk[uint32])(nil)
	_ Chunk = (*StringBlockChunk)(nil)
	_ Chunk = (*OffsetStringBlockChunk)(nil)

	_ ChunkList = (*DataArrayChunk[uint32])(nil)
	_ ChunkList = (*StringBlockChunk)(nil)
	_ ChunkList = (*OffsetStringBlockChunk)(nil)
)
