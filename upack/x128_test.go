package upack

import "testing"

func TestPackX128FullBlockScenario(t *testing.T) {
	values := make([]uint32, 128)
	for i := range values {
		values[i] = uint32(i)
	}
	out := make([]byte, 512)
	details := packX128(values, 128, out)
	if details.BitWidth != 7 {
		t.Fatalf("got bit width %d, want 7", details.BitWidth)
	}
	if details.BytesWritten != 112 {
		t.Fatalf("got %d bytes written, want 112", details.BytesWritten)
	}

	got := make([]uint32, 128)
	unpackX128[uint32](out, int(details.BitWidth), 128, got)
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], values[i])
		}
	}
}

func TestPackX128PartialSecondHalfOffsetIsFixed(t *testing.T) {
	partial := make([]uint32, 128)
	for i := 0; i < 70; i++ {
		partial[i] = uint32(i)
	}
	out := make([]byte, 512)
	details := packX128(partial, 70, out)

	secondHalfOffset := maxCompressedSizeHalf(int(details.BitWidth))
	if details.BytesWritten != secondHalfOffset+compressedSizeHalf(int(details.BitWidth), 6) {
		t.Fatalf("got %d bytes written, want %d (first half always full)",
			details.BytesWritten, secondHalfOffset+compressedSizeHalf(int(details.BitWidth), 6))
	}
}

func TestPackX128SmallBlockFallsThroughToX64(t *testing.T) {
	values := []uint32{5, 9, 2}
	out := make([]byte, 64)
	details := packX128(values, 3, out)
	want := packX64(values, 3, make([]byte, 64))
	if details.BitWidth != want.BitWidth || details.BytesWritten != want.BytesWritten {
		t.Fatalf("got %+v, want %+v", details, want)
	}
}

func TestPackX128ZeroTailBeyondPackN(t *testing.T) {
	values := make([]uint32, 128)
	for i := 0; i < 70; i++ {
		values[i] = uint32(i + 1)
	}
	out := make([]byte, 512)
	details := packX128(values, 70, out)
	got := make([]uint32, 128)
	for i := range got {
		got[i] = 0xDEADBEEF
	}
	unpackX128[uint32](out, int(details.BitWidth), 70, got)
	for i := 70; i < 128; i++ {
		if got[i] != 0 {
			t.Fatalf("tail element %d not zeroed: %#x", i, got[i])
		}
	}
}
