package chunkio

import (
	"testing"
)

func TestFourCC_EncodeKnownTags(t *testing.T) {
	tests := []struct {
		s      string
		endian FourCCEndian
		want   uint32
	}{
		{"REVM", FourCCLittle, 0x4D564552},
		{"MVER", FourCCBig, 0x4D564552},
		{"RDHM", FourCCLittle, 0x4D484452},
		{"\x00\x01\x02\x03", FourCCLittle, 0x03020100},
		{"\x00\x01\x02\x03", FourCCBig, 0x00010203},
	}
	for _, test := range tests {
		if got := EncodeFourCC(test.s, test.endian); got != test.want {
			t.Errorf("EncodeFourCC(%q, %v) = %#08x, wanted %#08x", test.s, test.endian, got, test.want)
		}
	}
}

func TestFourCC_InverseLaw(t *testing.T) {
	tags := []string{"MVER", "REVM", "MHDR", "MD21", "    ", "\x00\xFF\x7F\x80", "abcd"}
	for _, endian := range []FourCCEndian{FourCCLittle, FourCCBig} {
		for _, s := range tags {
			v := EncodeFourCC(s, endian)
			if got := DecodeFourCC(v, endian); got != s {
				t.Errorf("DecodeFourCC(EncodeFourCC(%q, %v)) = %q, wanted %q", s, endian, got, s)
			}
		}
	}
}

func TestFourCC_RuntimeString(t *testing.T) {
	v := EncodeFourCC("REVM", FourCCLittle)
	if got := FourCCString(v, false); got != "REVM" {
		t.Errorf("FourCCString(%#08x, false) = %q, wanted %q", v, got, "REVM")
	}
	v = EncodeFourCC("MVER", FourCCBig)
	if got := FourCCString(v, true); got != "MVER" {
		t.Errorf("FourCCString(%#08x, true) = %q, wanted %q", v, got, "MVER")
	}
}

func TestFourCC_EncodePanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	EncodeFourCC("MVE", FourCCLittle)
}
