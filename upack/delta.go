package upack

import "github.com/lnx-search/upack-go/internal/bitwidth"

// deltaEncode overwrites dst[:n] with src[i] - prev (wrapping), where prev
// starts at last and advances to src[i-1] for each subsequent element.
// Returns the final element of src[:n], for chaining into the next block.
func deltaEncode[T Word](src []T, last T, n int, dst []T) T {
	prev := last
	for i := 0; i < n; i++ {
		v := src[i]
		dst[i] = v - prev
		prev = v
	}
	return prev
}

// deltaDecode is the inverse of deltaEncode: a running prefix sum seeded
// with last.
func deltaDecode[T Word](deltas []T, last T, n int, dst []T) T {
	prev := last
	for i := 0; i < n; i++ {
		prev = prev + deltas[i]
		dst[i] = prev
	}
	return prev
}

// delta1Encode is deltaEncode with every delta additionally reduced by one:
// a run of consecutive integers (step exactly 1) collapses to all zeros,
// which is the common case for sorted unique identifiers.
func delta1Encode[T Word](src []T, last T, n int, dst []T) T {
	prev := last
	for i := 0; i < n; i++ {
		v := src[i]
		dst[i] = v - prev - 1
		prev = v
	}
	return prev
}

// delta1Decode is the inverse of delta1Encode.
func delta1Decode[T Word](deltas []T, last T, n int, dst []T) T {
	prev := last
	for i := 0; i < n; i++ {
		prev = prev + deltas[i] + 1
		dst[i] = prev
	}
	return prev
}

// adaptiveDeltaEncode32 computes plain deltas, then subtracts their minimum
// (d_min) from every element, shrinking the bit width further whenever the
// deltas carry a steady positive bias (e.g. a roughly-but-not-exactly-
// unit-step sequence, where plain delta1 would pack poorly but a single
// shared offset removes most of the spread). d_min is returned alongside
// the shifted deltas; callers must carry it out of band of the packed
// block, since it is not part of the bit-packed byte stream itself.
func adaptiveDeltaEncode32(src []uint32, last uint32, n int, dst []uint32) (newLast, dMin uint32) {
	newLast = deltaEncode(src, last, n, dst)
	if n == 0 {
		return newLast, 0
	}
	dMin = bitwidth.Min(dst, n)
	for i := 0; i < n; i++ {
		dst[i] -= dMin
	}
	return newLast, dMin
}

// adaptiveDeltaDecode32 is the inverse of adaptiveDeltaEncode32.
func adaptiveDeltaDecode32(shifted []uint32, dMin, last uint32, n int, dst []uint32) uint32 {
	for i := 0; i < n; i++ {
		shifted[i] += dMin
	}
	return deltaDecode(shifted, last, n, dst)
}
