package chunkio

import (
	"encoding/binary"
	"fmt"
)

// FourCCEndian selects the byte order of a packed FourCC tag.
type FourCCEndian int

const (
	// FourCCLittle is the common order: the tag's characters appear
	// right-to-left in the file, i.e. the in-file byte run is the
	// little-endian representation of the packed integer.
	FourCCLittle FourCCEndian = iota

	// FourCCBig is used by a few legacy formats: the tag's characters
	// appear left-to-right in the file.
	FourCCBig
)

// EncodeFourCC packs a 4-character tag into its uint32 form. The string is
// the tag as it appears in the file, so EncodeFourCC("REVM", FourCCLittle)
// yields 0x4D564552. Any 4 bytes form a legal tag, printable or not.
//
// Panics if s is not exactly 4 bytes; tags are literals in format
// definitions, so a wrong length is a programmer error.
func EncodeFourCC(s string, endian FourCCEndian) uint32 {
	if len(s) != 4 {
		panic(fmt.Errorf("fourcc must be exactly 4 bytes, got %q", s))
	}
	b := []byte(s)
	if endian == FourCCBig {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}

// DecodeFourCC is the exact inverse of EncodeFourCC. It is total: every
// uint32 decodes to some 4-byte tag.
func DecodeFourCC(v uint32, endian FourCCEndian) string {
	var b [4]byte
	if endian == FourCCBig {
		binary.BigEndian.PutUint32(b[:], v)
	} else {
		binary.LittleEndian.PutUint32(b[:], v)
	}
	return string(b[:])
}

// FourCCString renders a packed tag for display when the endianness is only
// known at run time, e.g. while scanning an unfamiliar stream.
func FourCCString(v uint32, bigEndian bool) string {
	if bigEndian {
		return DecodeFourCC(v, FourCCBig)
	}
	return DecodeFourCC(v, FourCCLittle)
}
