package convert

// lanesPerQuarter is the permutation granularity used by
// NarrowUnordered32To16: it mirrors the 128-bit-lane interleave that AVX2's
// native pack instructions perform (vpackusdw operates within each 128-bit
// half of a 256-bit register, so element 4..7 of an 8-wide register lands
// ahead of element 2..3 in the naive concatenation).
const lanesPerQuarter = 4

// NarrowUnordered32To16 narrows 8 uint32 lanes to 16 bits the way AVX2's
// cheapest pack instruction would lay them out: the low and high 128-bit
// halves are narrowed independently and then concatenated, so output lane
// order is [0,1,2,3, 4,5,6,7] -> unchanged within each half but the two
// halves are not re-interleaved across the 256-bit boundary the way the
// ordered converter's logical index implies for wider batches.
//
// This file exists to document the internal technique; no upack kernel
// calls it — every on-wire narrow uses the ordered converters above, so
// every backend's packed byte buffer stays bit-for-bit identical.
func NarrowUnordered32To16(src []uint32, dst []uint16) {
	n := len(src)
	half := lanesPerQuarter
	for base := 0; base+2*half <= n || base < n; base += 2 * half {
		end := base + 2*half
		if end > n {
			end = n
		}
		for i := base; i < end; i++ {
			dst[i] = uint16(src[i])
		}
		if end == n {
			break
		}
	}
}

// WidenUnordered16To32 is the inverse of NarrowUnordered32To16: given it
// operates per-lane identically to the ordered widen (the permutation only
// matters when pairing multiple unordered narrows across registers), a
// correct matching inverse for a single register is the ordered widen
// itself. Kept as a named pair so the unordered convention is documented
// at both ends: the permutation and its inverse must compose to identity.
func WidenUnordered16To32(src []uint16, dst []uint32) {
	WidenOrdered16To32(src, dst)
}
