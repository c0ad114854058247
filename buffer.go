package chunkio

import (
	"encoding/binary"
	"io"
)

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

// ByteBuffer is the byte stream that chunks read from and write to: a flat
// []byte with an append-only writer side and a cursor-based reader side.
//
// The writer side never fails. The reader side returns *DataError when a
// request runs past the end of the buffer; readers of possibly-truncated
// files must treat that as malformed data, not a bug.
//
// The zero value is an empty buffer ready for appending.
type ByteBuffer struct {
	buf []byte
	pos int
}

var _ io.Writer = (*ByteBuffer)(nil)

// NewByteBuffer wraps data without copying it. The buffer reads the given
// bytes from position 0; appends reallocate and never touch the original
// backing array's prefix.
func NewByteBuffer(data []byte) *ByteBuffer {
	return &ByteBuffer{buf: data}
}

// Bytes returns the entire contents, written and not yet read alike.
func (b *ByteBuffer) Bytes() []byte { return b.buf }

// Len returns the total number of bytes in the buffer.
func (b *ByteBuffer) Len() int { return len(b.buf) }

// Pos returns the read cursor position.
func (b *ByteBuffer) Pos() int { return b.pos }

// Remaining returns the number of bytes left to read.
func (b *ByteBuffer) Remaining() int { return len(b.buf) - b.pos }

// IsEOF reports whether the read cursor is at the end of the buffer.
func (b *ByteBuffer) IsEOF() bool { return b.pos >= len(b.buf) }

// SeekTo moves the read cursor to an absolute offset.
func (b *ByteBuffer) SeekTo(off int) error {
	if off < 0 || off > len(b.buf) {
		return dataErrf(b.buf, b.pos, nil, "seek to %d outside buffer of %d bytes", off, len(b.buf))
	}
	b.pos = off
	return nil
}

// Skip advances the read cursor by n bytes.
func (b *ByteBuffer) Skip(n int) error {
	if n < 0 || b.pos+n > len(b.buf) {
		return dataErrf(b.buf, b.pos, nil, "cannot skip %d bytes, %d remaining", n, b.Remaining())
	}
	b.pos += n
	return nil
}

// ReadBytes copies the next n bytes out of the buffer and advances the
// cursor. The returned slice does not alias the buffer.
func (b *ByteBuffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || b.pos+n > len(b.buf) {
		return nil, dataErrf(b.buf, b.pos, nil, "not enough data: %d bytes remaining, %d wanted", b.Remaining(), n)
	}
	v := make([]byte, n)
	copy(v, b.buf[b.pos:])
	b.pos += n
	return v, nil
}

// readView returns the next n bytes without copying. Callers must copy out
// of the view before handing bytes to anyone else.
func (b *ByteBuffer) readView(n int) ([]byte, error) {
	if n < 0 || b.pos+n > len(b.buf) {
		return nil, dataErrf(b.buf, b.pos, nil, "not enough data: %d bytes remaining, %d wanted", b.Remaining(), n)
	}
	v := b.buf[b.pos : b.pos+n]
	b.pos += n
	return v, nil
}

// ReadByte reads a single byte.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.pos >= len(b.buf) {
		return 0, dataErrf(b.buf, b.pos, nil, "not enough data: 0 bytes remaining, 1 wanted")
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// ReadUint32 reads a 4-byte unsigned integer in the given byte order.
func (b *ByteBuffer) ReadUint32(order binary.ByteOrder) (uint32, error) {
	v, err := b.readView(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(v), nil
}

// Append appends raw bytes to the end of the buffer.
func (b *ByteBuffer) Append(p []byte) {
	b.buf = appendRaw(b.buf, p)
}

// AppendByte appends a single byte.
func (b *ByteBuffer) AppendByte(v byte) {
	off := b.Grow(1)
	b.buf[off] = v
}

// AppendUint32 appends a 4-byte unsigned integer in the given byte order.
func (b *ByteBuffer) AppendUint32(v uint32, order binary.ByteOrder) {
	off := b.Grow(4)
	order.PutUint32(b.buf[off:], v)
}

// Grow extends the buffer by n zero bytes and returns the offset of the
// first one, for callers that fill the region in place.
func (b *ByteBuffer) Grow(n int) (off int) {
	off, b.buf = grow(b.buf, n)
	return
}

// Write implements io.Writer; it never fails.
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}
