package upack

import "testing"

func TestDeltaRoundTrip(t *testing.T) {
	src := make([]uint32, 128)
	for i := range src {
		src[i] = uint32(i*i + 3)
	}
	scratch := make([]uint32, 128)
	last := deltaEncode(src, 0, 128, scratch)
	if last != src[127] {
		t.Fatalf("last = %d, want %d", last, src[127])
	}
	got := make([]uint32, 128)
	newLast := deltaDecode(scratch, 0, 128, got)
	if newLast != last {
		t.Fatalf("decode newLast = %d, want %d", newLast, last)
	}
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], src[i])
		}
	}
}

func TestDeltaOfAscendingSequenceIsBitWidthOne(t *testing.T) {
	src := make([]uint32, 128)
	for i := range src {
		src[i] = uint32(i)
	}
	out := make([]byte, 256)
	details, _ := PackDelta32(src, 0, 128, out)
	if details.BitWidth != 1 {
		t.Fatalf("got bit width %d, want 1", details.BitWidth)
	}
	if details.BytesWritten != 16 {
		t.Fatalf("got %d bytes written, want 16", details.BytesWritten)
	}
}

func TestDelta1OfUnitStepIsZeroWidth(t *testing.T) {
	src := make([]uint32, 128)
	for i := range src {
		src[i] = uint32(i + 1)
	}
	out := make([]byte, 256)
	details, last := PackDelta1_32(src, 0, 128, out)
	if details.BitWidth != 0 || details.BytesWritten != 0 {
		t.Fatalf("got %+v, want zero width and zero bytes", details)
	}
	if last != 128 {
		t.Fatalf("last = %d, want 128", last)
	}

	got := make([]uint32, 128)
	newLast := UnpackDelta1_32(out, int(details.BitWidth), 128, 0, got)
	if newLast != 128 {
		t.Fatalf("unpack newLast = %d, want 128", newLast)
	}
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], src[i])
		}
	}
}

func TestAllZeroBlockIsZeroWidth(t *testing.T) {
	src := make([]uint32, 128)
	out := make([]byte, 256)
	details := packX128(src, 128, out)
	if details.BitWidth != 0 || details.BytesWritten != 0 {
		t.Fatalf("got %+v, want zero width and zero bytes", details)
	}
}

func TestAdaptiveDeltaRoundTrip(t *testing.T) {
	src := make([]uint32, 128)
	for i := range src {
		src[i] = uint32(1000 + i*5 + (i % 3))
	}
	out := make([]byte, 256)
	details, last, dMin := AdaptivePackDelta32(src, 0, 128, out)

	got := make([]uint32, 128)
	newLast := AdaptiveUnpackDelta32(out, int(details.BitWidth), 128, 0, dMin, got)
	if newLast != last {
		t.Fatalf("newLast = %d, want %d", newLast, last)
	}
	for i := range src {
		if got[i] != src[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], src[i])
		}
	}
}

func TestAdaptiveDeltaShrinksWidthWithPositiveBias(t *testing.T) {
	src := make([]uint32, 64)
	for i := range src {
		src[i] = uint32(1000*i + 500 + (i % 4))
	}
	outPlain := make([]byte, 256)
	outAdaptive := make([]byte, 256)

	plainDelta := make([]uint32, 64)
	deltaEncode(src, 0, 64, plainDelta)
	plainDetails := packX64(plainDelta, 64, outPlain)

	adaptiveDetails, _, _ := AdaptivePackDelta32(src, 0, 64, outAdaptive)

	if adaptiveDetails.BitWidth > plainDetails.BitWidth {
		t.Fatalf("adaptive width %d should not exceed plain delta width %d", adaptiveDetails.BitWidth, plainDetails.BitWidth)
	}
}
