package upack

import "testing"

func TestPackX64RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		values []uint32
		n      int
	}{
		{"all zero", make([]uint32, 64), 64},
		{"full block ascending", func() []uint32 {
			v := make([]uint32, 64)
			for i := range v {
				v[i] = uint32(i)
			}
			return v
		}(), 64},
		{"partial block", []uint32{1, 2, 3, 4, 5}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := make([]byte, maxCompressedSizeHalf(32))
			details := packX64(c.values, c.n, out)
			got := make([]uint32, 64)
			unpackX64[uint32](out, int(details.BitWidth), c.n, got)
			for i := 0; i < c.n; i++ {
				if got[i] != c.values[i] {
					t.Fatalf("mismatch at %d: got %d want %d", i, got[i], c.values[i])
				}
			}
			for i := c.n; i < 64; i++ {
				if got[i] != 0 {
					t.Fatalf("tail element %d not zeroed: %d", i, got[i])
				}
			}
		})
	}
}

func TestPackX64AllZeroIsZeroBytes(t *testing.T) {
	values := make([]uint32, 64)
	out := make([]byte, 256)
	details := packX64(values, 64, out)
	if details.BitWidth != 0 || details.BytesWritten != 0 {
		t.Fatalf("got %+v, want zero width and zero bytes", details)
	}
}
