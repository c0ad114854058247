/*
Package chunkio implements the chunk container layer shared by chunked
game-client asset files (terrain, models and the like).

Every file in this family is a sequence of chunks: a 4-byte FourCC tag
identifying the chunk's role, a 4-byte payload length, then that many payload
bytes. File-format packages declare which chunks they expect and compose the
container types from this package; chunkio itself knows nothing about any
particular format's semantics.

We implement:

1. FourCC encoding, converting between 4-character tags and their packed
uint32 form in either byte order.

2. ChunkHeader, the fixed 8-byte record prefixing every chunk.

3. DataChunk, holding exactly one fixed-layout record (header-like chunks
whose payload size always equals the record size).

4. DataArrayChunk and FixedArrayChunk, holding a sequence of fixed-layout
records; FixedArrayChunk is for chunks whose element count is mandated by the
format, and statically lacks the mutation methods.

5. StringBlockChunk and OffsetStringBlockChunk, holding runs of
null-terminated strings; the offset variant additionally tracks each entry's
byte offset within the serialized block and deduplicates on Add.

# Binary encoding

**Chunk header**: fourcc (4 bytes), payload size (4 bytes, unsigned). Both in
the stream's byte order: little-endian in almost every format, big-endian in
a few legacy ones, so header and record routines take a binary.ByteOrder.

**Record payloads**: records are laid out consecutively with no padding,
fields little-endian, exactly as encoding/binary lays them out. A record type
must therefore have a fixed binary size (no slices, maps, strings or
pointers); RecordSize panics on anything else, since a non-fixed record is a
bug in the format definition rather than in the file.

**String blocks**: each entry's bytes followed by a single NUL, concatenated
in storage order. The offset variant carries no separate offset table on the
wire; offsets are recovered by scanning.

# Errors

Malformed file data (truncated stream, payload size that does not match the
record layout, element count outside the declared bounds, unterminated
string run) is returned as a *DataError from Read. Contract violations by the
caller (writing a chunk that was never initialized, initializing a fixed
array with the wrong element count, indexing out of range) panic; they are
programmer errors and are documented per method.

Chunk values are not synchronized; the caller owns exclusivity per instance.
Distinct chunks may be populated concurrently from disjoint regions of a
shared immutable buffer.
*/
package chunkio
