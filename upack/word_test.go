package upack

import "testing"

func TestPackWordRoundTripU32(t *testing.T) {
	for b := 0; b <= 32; b++ {
		n := 37
		values := make([]uint32, n)
		mask := uint32(0xFFFFFFFF)
		if b < 32 {
			mask = uint32(1)<<uint(b) - 1
		}
		for i := range values {
			values[i] = uint32(i*2654435761) & mask
		}
		out := make([]byte, maxCompressedSizeHalf(b)+8)
		written := packWord(values, b, n, out)
		if want := compressedSizeHalf(b, n); written != want {
			t.Fatalf("b=%d: wrote %d bytes, want %d", b, written, want)
		}
		got := make([]uint32, n)
		read := unpackWord(out, b, n, got)
		if read != written {
			t.Fatalf("b=%d: read %d bytes, want %d", b, read, written)
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("b=%d: mismatch at %d: got %d want %d", b, i, got[i], values[i])
			}
		}
	}
}

func TestPackWordRawLayoutIsNativeInterleaved(t *testing.T) {
	values := []uint16{0x1234, 0x5678, 0x9abc, 0xdef0}
	out := make([]byte, maxCompressedSizeHalf(16))
	written := packWord(values, 16, len(values), out)
	want := []byte{0x34, 0x12, 0x78, 0x56, 0xbc, 0x9a, 0xf0, 0xde}
	if written != len(want) {
		t.Fatalf("wrote %d bytes, want %d", written, len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("byte %d: got %#02x want %#02x (full: % x)", i, out[i], want[i], out[:written])
		}
	}
}

func TestPackWordRoundTripU16(t *testing.T) {
	for b := 0; b <= 16; b++ {
		n := 23
		values := make([]uint16, n)
		mask := uint16(0xFFFF)
		if b < 16 {
			mask = uint16(1)<<uint(b) - 1
		}
		for i := range values {
			values[i] = uint16(i*1000+7) & mask
		}
		out := make([]byte, maxCompressedSizeHalf(b)+8)
		packWord(values, b, n, out)
		got := make([]uint16, n)
		unpackWord(out, b, n, got)
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("b=%d: mismatch at %d: got %d want %d", b, i, got[i], values[i])
			}
		}
	}
}
