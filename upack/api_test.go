package upack

import "testing"

func TestPack16RawIdentityScenario(t *testing.T) {
	values := make([]uint16, 128)
	for i := range values {
		values[i] = 8
	}
	values[77] = 65535

	out := make([]byte, 512)
	details := Pack16(values, 128, out)
	if details.BitWidth != 16 {
		t.Fatalf("got bit width %d, want 16", details.BitWidth)
	}
	if details.BytesWritten != 256 {
		t.Fatalf("got %d bytes written, want 256", details.BytesWritten)
	}

	got := make([]uint16, 128)
	Unpack16(out, int(details.BitWidth), 128, got)
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], values[i])
		}
	}
}

func TestPack32WideBitWidthScenario(t *testing.T) {
	values := make([]uint32, 128)
	full := uint32(1)<<17 - 1
	for i := range values {
		values[i] = full
	}
	out := make([]byte, 512)
	details := Pack32(values, 128, out)
	if details.BitWidth != 17 {
		t.Fatalf("got bit width %d, want 17", details.BitWidth)
	}
	if details.BytesWritten != 272 {
		t.Fatalf("got %d bytes written, want 272", details.BytesWritten)
	}

	got := make([]uint32, 128)
	Unpack32(out, int(details.BitWidth), 128, got)
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], values[i])
		}
	}
}

func TestPack32AllZero(t *testing.T) {
	values := make([]uint32, 128)
	out := make([]byte, 512)
	details := Pack32(values, 128, out)
	if details.BitWidth != 0 || details.BytesWritten != 0 {
		t.Fatalf("got %+v, want zero width and zero bytes", details)
	}
	got := make([]uint32, 128)
	for i := range got {
		got[i] = 1
	}
	Unpack32(out, 0, 128, got)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("index %d not zeroed: %d", i, v)
		}
	}
}

func TestDeltaChainAcrossBlocks(t *testing.T) {
	block1 := []uint32{10, 20, 30, 40}
	block2 := []uint32{45, 50, 1000, 1001}

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	details1, last1 := PackDelta32(block1, 0, 4, out1)
	details2, last2 := PackDelta32(block2, last1, 4, out2)

	got1 := make([]uint32, 4)
	u1 := UnpackDelta32(out1, int(details1.BitWidth), 4, 0, got1)
	got2 := make([]uint32, 4)
	u2 := UnpackDelta32(out2, int(details2.BitWidth), 4, u1, got2)

	for i, v := range block1 {
		if got1[i] != v {
			t.Fatalf("block1[%d] = %d, want %d", i, got1[i], v)
		}
	}
	for i, v := range block2 {
		if got2[i] != v {
			t.Fatalf("block2[%d] = %d, want %d", i, got2[i], v)
		}
	}
	if u2 != last2 {
		t.Fatalf("final last = %d, want %d", u2, last2)
	}
}

func TestPack16PartialBlockUnderX64(t *testing.T) {
	values := []uint16{3, 1, 4, 1, 5, 9, 2, 6}
	out := make([]byte, 32)
	details := Pack16(values, len(values), out)
	got := make([]uint16, 8)
	Unpack16(out, int(details.BitWidth), len(values), got)
	for i, v := range values {
		if got[i] != v {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], v)
		}
	}
}
