package convert

import "testing"

func TestNarrowWidenRoundTrip32To16(t *testing.T) {
	src := make([]uint32, 64)
	for i := range src {
		src[i] = uint32(i * 3)
	}
	narrowed := make([]uint16, 64)
	NarrowOrdered32To16(src, narrowed)
	widened := make([]uint32, 64)
	WidenOrdered16To32(narrowed, widened)
	for i := range src {
		if widened[i] != src[i] {
			t.Fatalf("round trip mismatch at %d: got %d want %d", i, widened[i], src[i])
		}
	}
}

func TestNarrowTruncatesHighBits(t *testing.T) {
	src := []uint32{0x1FFFF, 0x10000}
	dst := make([]uint16, 2)
	NarrowOrdered32To16(src, dst)
	if dst[0] != 0xFFFF || dst[1] != 0 {
		t.Fatalf("got %v", dst)
	}
}

func TestNarrowOrdered32To8(t *testing.T) {
	src := []uint32{0x1FF, 5, 255}
	dst := make([]uint8, 3)
	NarrowOrdered32To8(src, dst)
	want := []uint8{0xFF, 5, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("got %v want %v", dst, want)
		}
	}
}

func TestUnorderedPairRoundTrips(t *testing.T) {
	src := make([]uint32, 16)
	for i := range src {
		src[i] = uint32(i)
	}
	narrowed := make([]uint16, 16)
	NarrowUnordered32To16(src, narrowed)
	widened := make([]uint32, 16)
	WidenUnordered16To32(narrowed, widened)
	for i := range src {
		if widened[i] != src[i] {
			t.Fatalf("unordered round trip mismatch at %d", i)
		}
	}
}
