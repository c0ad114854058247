package chunkio

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
)

// recordOrder is the field byte order of record payloads. Every format in
// this family stores record fields little-endian regardless of the header's
// byte order.
var recordOrder binary.ByteOrder = binary.LittleEndian

var recordSizeCache sync.Map // reflect.Type -> int

// RecordSize returns the number of bytes T occupies on the wire. T must be a
// fixed-layout record: a scalar, an array, or a struct composed of those,
// with no slices, maps, strings or pointers. The size is resolved once per
// type and cached.
//
// Panics if T is not fixed-layout; that is a broken format definition, not a
// property of any file.
func RecordSize[T any]() int {
	return recordSizeOf(reflect.TypeOf((*T)(nil)).Elem())
}

func recordSizeOf(typ reflect.Type) int {
	if v, ok := recordSizeCache.Load(typ); ok {
		return v.(int)
	}
	n := binary.Size(reflect.New(typ).Interface())
	if n <= 0 {
		panic(fmt.Errorf("%v is not a fixed-layout record type", typ))
	}
	actual, _ := recordSizeCache.LoadOrStore(typ, n)
	return actual.(int)
}

// encodeRecord appends one record to the buffer.
func encodeRecord[T any](b *ByteBuffer, v *T) {
	size := RecordSize[T]()
	off := b.Grow(size)
	if _, err := binary.Encode(b.buf[off:], recordOrder, v); err != nil {
		panic(fmt.Errorf("encoding %T: %w", v, err))
	}
}

// decodeRecord fills one record from exactly len(data) == RecordSize[T]
// bytes. Callers validate the size before calling.
func decodeRecord[T any](data []byte, v *T) error {
	if _, err := binary.Decode(data, recordOrder, v); err != nil {
		return dataErrf(data, 0, err, "decoding %T", v)
	}
	return nil
}
