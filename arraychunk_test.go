package chunkio

import (
	"encoding/hex"
	"errors"
	"reflect"
	"testing"
)

var mcnkTag = EncodeFourCC("KNCM", FourCCLittle)

func TestDataArrayChunk_ReadWriteRoundTrip(t *testing.T) {
	wire := must(hex.DecodeString("01000000020000000300000004000000"))
	c := NewDataArrayChunk[uint32](mcnkTag)
	ensure(c.Read(NewByteBuffer(wire), uint32(len(wire))))
	if c.Size() != 4 {
		t.Fatalf("Size() = %d, wanted 4", c.Size())
	}
	if got := c.Elements(); !reflect.DeepEqual(got, []uint32{1, 2, 3, 4}) {
		t.Fatalf("Elements() = %v, wanted [1 2 3 4]", got)
	}
	if c.ByteSize() != 16 {
		t.Fatalf("ByteSize() = %d, wanted 16", c.ByteSize())
	}

	var b ByteBuffer
	c.Write(&b)
	if !reflect.DeepEqual(b.Bytes(), wire) {
		t.Fatalf("Write = %x, wanted %x", b.Bytes(), wire)
	}
}

func TestDataArrayChunk_ReadRejectsPartialRecord(t *testing.T) {
	c := NewDataArrayChunk[uint32](mcnkTag)
	b := NewByteBuffer(make([]byte, 6))
	err := c.Read(b, 6)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("Read err = %T %v, wanted *DataError", err, err)
	}
}

func TestDataArrayChunk_Mutation(t *testing.T) {
	c := NewDataArrayChunk[uint32](mcnkTag)
	c.Initialize()
	*c.Add() = 10
	*c.Add() = 20
	*c.Add() = 30
	c.Remove(1)
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, wanted 2", c.Size())
	}
	if *c.At(0) != 10 || *c.At(1) != 30 {
		t.Fatalf("elements = [%d %d], wanted [10 30]", *c.At(0), *c.At(1))
	}

	*c.At(1) = 31
	if c.Elements()[1] != 31 {
		t.Fatalf("At mutation not visible, elements = %v", c.Elements())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Fatalf("Size() after Clear = %d, wanted 0", c.Size())
	}
	if !c.IsInitialized() {
		t.Fatalf("IsInitialized() = false after Clear, wanted true")
	}
}

func TestDataArrayChunk_RemoveOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	c := NewDataArrayChunk[uint32](mcnkTag)
	c.Initialize()
	c.Remove(0)
}

func TestDataArrayChunk_Bounds(t *testing.T) {
	c := NewBoundedArrayChunk[uint16](mcnkTag, 2, 3)

	if err := c.Read(NewByteBuffer(make([]byte, 2)), 2); err == nil {
		t.Fatalf("Read of 1 element err = nil, wanted below-min error")
	}
	if err := c.Read(NewByteBuffer(make([]byte, 8)), 8); err == nil {
		t.Fatalf("Read of 4 elements err = nil, wanted above-max error")
	}
	if err := c.Read(NewByteBuffer(make([]byte, 6)), 6); err != nil {
		t.Fatalf("Read of 3 elements err = %v, wanted nil", err)
	}
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, wanted 3", c.Size())
	}
}

func TestFixedArrayChunk_Cardinality(t *testing.T) {
	c := NewFixedArrayChunk[uint32](mcnkTag, 4)

	// 3 records when the format mandates 4.
	err := c.Read(NewByteBuffer(make([]byte, 12)), 12)
	var de *DataError
	if !errors.As(err, &de) {
		t.Fatalf("Read err = %T %v, wanted *DataError", err, err)
	}
	if c.IsInitialized() {
		t.Fatalf("IsInitialized() = true after failed Read, wanted false")
	}

	wire := must(hex.DecodeString("05000000060000000700000008000000"))
	ensure(c.Read(NewByteBuffer(wire), 16))
	if c.Size() != 4 {
		t.Fatalf("Size() = %d, wanted 4", c.Size())
	}
	if *c.At(3) != 8 {
		t.Fatalf("At(3) = %d, wanted 8", *c.At(3))
	}

	var b ByteBuffer
	c.Write(&b)
	if !reflect.DeepEqual(b.Bytes(), wire) {
		t.Fatalf("Write = %x, wanted %x", b.Bytes(), wire)
	}
}

func TestFixedArrayChunk_Initialize(t *testing.T) {
	c := NewFixedArrayChunk[uint16](mcnkTag, 3)
	c.Initialize()
	if c.Size() != 3 || c.ByteSize() != 6 {
		t.Fatalf("Size/ByteSize = %d/%d, wanted 3/6", c.Size(), c.ByteSize())
	}

	c.InitializeWith([]uint16{1, 2, 3})
	if *c.At(2) != 3 {
		t.Fatalf("At(2) = %d, wanted 3", *c.At(2))
	}

	c.InitializeN(9, 3)
	if got := c.Elements(); !reflect.DeepEqual(got, []uint16{9, 9, 9}) {
		t.Fatalf("Elements() = %v, wanted [9 9 9]", got)
	}
}

func TestFixedArrayChunk_InitializeWithWrongCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	c := NewFixedArrayChunk[uint16](mcnkTag, 3)
	c.InitializeWith([]uint16{1, 2})
}

func TestDataArrayChunk_InitializeVariants(t *testing.T) {
	c := NewDataArrayChunk[vec3](mcnkTag)
	c.InitializeN(vec3{X: 1}, 2)
	if c.Size() != 2 || c.At(1).X != 1 {
		t.Fatalf("InitializeN: Size=%d At(1).X=%v, wanted 2/1", c.Size(), c.At(1).X)
	}

	src := []vec3{{X: 5}}
	c.InitializeWith(src)
	src[0].X = 6
	if c.At(0).X != 5 {
		t.Fatalf("InitializeWith aliases the source slice")
	}
}
