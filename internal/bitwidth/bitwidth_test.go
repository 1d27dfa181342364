package bitwidth

import "testing"

func TestSelectU32(t *testing.T) {
	cases := []struct {
		src  []uint32
		n    int
		want int
	}{
		{[]uint32{}, 0, 0},
		{[]uint32{0, 0, 0}, 3, 0},
		{[]uint32{1, 0, 1}, 3, 1},
		{[]uint32{5, 12, 3, 15}, 4, 4},
		{[]uint32{1 << 31}, 1, 32},
		{[]uint32{127, 5}, 2, 7},
	}
	for _, c := range cases {
		got := Select(c.src, c.n)
		if got != c.want {
			t.Fatalf("Select(%v,%d) = %d, want %d", c.src, c.n, got, c.want)
		}
	}
}

func TestSelectU16(t *testing.T) {
	got := Select([]uint16{65535, 1}, 2)
	if got != 16 {
		t.Fatalf("got %d want 16", got)
	}
}

func TestMaxMin(t *testing.T) {
	src := []uint32{5, 1, 9, 3}
	if got := Max(src, len(src)); got != 9 {
		t.Fatalf("Max = %d", got)
	}
	if got := Min(src, len(src)); got != 1 {
		t.Fatalf("Min = %d", got)
	}
}
