package chunkio

import "encoding/binary"

// ChunkHeaderSize is the wire size of a ChunkHeader: 4 bytes of tag plus
// 4 bytes of payload size, no padding.
const ChunkHeaderSize = 8

// ChunkHeader is the fixed 8-byte record prefixing every chunk in a stream.
// It is constructed transiently while scanning; no validation happens here —
// recognizing the tag and judging the size is the file reader's job.
type ChunkHeader struct {
	FourCC uint32 // packed tag identifying the chunk's role
	Size   uint32 // payload bytes following the header
}

// ReadChunkHeader reads the next 8 bytes as a chunk header, tag first, both
// fields in the given byte order.
func ReadChunkHeader(b *ByteBuffer, order binary.ByteOrder) (ChunkHeader, error) {
	var h ChunkHeader
	var err error
	if h.FourCC, err = b.ReadUint32(order); err != nil {
		return ChunkHeader{}, err
	}
	if h.Size, err = b.ReadUint32(order); err != nil {
		return ChunkHeader{}, err
	}
	return h, nil
}

// WriteTo appends the header to the buffer, tag first, both fields in the
// given byte order.
func (h ChunkHeader) WriteTo(b *ByteBuffer, order binary.ByteOrder) {
	b.AppendUint32(h.FourCC, order)
	b.AppendUint32(h.Size, order)
}
