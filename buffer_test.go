package chunkio

import (
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

func TestByteBuffer_AppendAndRead(t *testing.T) {
	var b ByteBuffer
	b.Append([]byte{1, 2, 3})
	b.AppendByte(4)
	b.AppendUint32(0x11223344, binary.LittleEndian)
	b.AppendUint32(0x11223344, binary.BigEndian)

	want := []byte{1, 2, 3, 4, 0x44, 0x33, 0x22, 0x11, 0x11, 0x22, 0x33, 0x44}
	if !reflect.DeepEqual(b.Bytes(), want) {
		t.Fatalf("b.Bytes() = %x, wanted %x", b.Bytes(), want)
	}
	if b.Len() != len(want) {
		t.Fatalf("b.Len() = %d, wanted %d", b.Len(), len(want))
	}

	got := must(b.ReadBytes(4))
	if !reflect.DeepEqual(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("ReadBytes(4) = %x, wanted 01020304", got)
	}
	if v := must(b.ReadUint32(binary.LittleEndian)); v != 0x11223344 {
		t.Fatalf("ReadUint32(LE) = %#x, wanted 0x11223344", v)
	}
	if v := must(b.ReadUint32(binary.BigEndian)); v != 0x11223344 {
		t.Fatalf("ReadUint32(BE) = %#x, wanted 0x11223344", v)
	}
	if !b.IsEOF() {
		t.Fatalf("IsEOF() = false at end of buffer, wanted true")
	}
}

func TestByteBuffer_ReadBytesCopiesOut(t *testing.T) {
	src := []byte{1, 2, 3}
	b := NewByteBuffer(src)
	got := must(b.ReadBytes(3))
	src[0] = 99
	if got[0] != 1 {
		t.Fatalf("ReadBytes result aliases the source buffer")
	}
}

func TestByteBuffer_CursorOps(t *testing.T) {
	b := NewByteBuffer([]byte{1, 2, 3, 4, 5})
	ensure(b.Skip(2))
	if b.Pos() != 2 || b.Remaining() != 3 {
		t.Fatalf("after Skip(2): Pos=%d Remaining=%d, wanted 2/3", b.Pos(), b.Remaining())
	}
	ensure(b.SeekTo(4))
	if v := must(b.ReadByte()); v != 5 {
		t.Fatalf("ReadByte after SeekTo(4) = %d, wanted 5", v)
	}
	if err := b.SeekTo(6); err == nil {
		t.Fatalf("SeekTo(6) err = nil, wanted error")
	}
	if err := b.Skip(1); err == nil {
		t.Fatalf("Skip(1) at EOF err = nil, wanted error")
	}
}

func TestByteBuffer_OutOfBoundsIsDataError(t *testing.T) {
	b := NewByteBuffer([]byte{1, 2})
	ensure(b.Skip(1))
	_, err := b.ReadBytes(5)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("ReadBytes err = %T %v, wanted *DataError", err, err)
	}
	if de.Off != 1 {
		t.Fatalf("DataError.Off = %d, wanted 1", de.Off)
	}
	if _, err := b.ReadUint32(binary.LittleEndian); err == nil {
		t.Fatalf("ReadUint32 err = nil, wanted error")
	}
	if _, err := b.ReadBytes(-1); err == nil {
		t.Fatalf("ReadBytes(-1) err = nil, wanted error")
	}
}

func TestByteBuffer_GrowAndWrite(t *testing.T) {
	var b ByteBuffer
	off := b.Grow(4)
	binary.LittleEndian.PutUint32(b.Bytes()[off:], 7)
	n, err := b.Write([]byte{9})
	if n != 1 || err != nil {
		t.Fatalf("Write = (%d, %v), wanted (1, nil)", n, err)
	}
	want := []byte{7, 0, 0, 0, 9}
	if !reflect.DeepEqual(b.Bytes(), want) {
		t.Fatalf("b.Bytes() = %x, wanted %x", b.Bytes(), want)
	}
}
