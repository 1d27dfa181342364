package upack

// Pack16 packs src[:n] (n <= X128) into out, choosing the narrowest bit
// width that represents every element.
func Pack16(src []uint16, n int, out []byte) CompressionDetails {
	return packX128(src, n, out)
}

// Unpack16 reconstructs n elements packed at bit width b into dst[:n],
// zeroing dst[n:X128] if dst is that long.
func Unpack16(in []byte, b, n int, dst []uint16) {
	unpackX128[uint16](in, b, n, dst)
}

// Pack32 packs src[:n] (n <= X128) into out.
func Pack32(src []uint32, n int, out []byte) CompressionDetails {
	return packX128(src, n, out)
}

// Unpack32 reconstructs n elements packed at bit width b into dst[:n].
func Unpack32(in []byte, b, n int, dst []uint32) {
	unpackX128[uint32](in, b, n, dst)
}

// PackDelta16 delta-encodes src[:n] against last, then packs the result.
// Returns the packing details and the new last value (src[n-1]) for the
// next block in the chain.
func PackDelta16(src []uint16, last uint16, n int, out []byte) (CompressionDetails, uint16) {
	scratch := make([]uint16, n)
	newLast := deltaEncode(src, last, n, scratch)
	return packX128(scratch, n, out), newLast
}

// UnpackDelta16 is the inverse of PackDelta16; returns the new last value.
func UnpackDelta16(in []byte, b, n int, last uint16, dst []uint16) uint16 {
	scratch := make([]uint16, n)
	unpackX128[uint16](in, b, n, scratch)
	return deltaDecode(scratch, last, n, dst)
}

// PackDelta1_16 is PackDelta16 with the unit-step reduction: consecutive
// integers collapse to zero.
func PackDelta1_16(src []uint16, last uint16, n int, out []byte) (CompressionDetails, uint16) {
	scratch := make([]uint16, n)
	newLast := delta1Encode(src, last, n, scratch)
	return packX128(scratch, n, out), newLast
}

// UnpackDelta1_16 is the inverse of PackDelta1_16.
func UnpackDelta1_16(in []byte, b, n int, last uint16, dst []uint16) uint16 {
	scratch := make([]uint16, n)
	unpackX128[uint16](in, b, n, scratch)
	return delta1Decode(scratch, last, n, dst)
}

// PackDelta32 delta-encodes src[:n] against last, then packs the result.
func PackDelta32(src []uint32, last uint32, n int, out []byte) (CompressionDetails, uint32) {
	scratch := make([]uint32, n)
	newLast := deltaEncode(src, last, n, scratch)
	return packX128(scratch, n, out), newLast
}

// UnpackDelta32 is the inverse of PackDelta32.
func UnpackDelta32(in []byte, b, n int, last uint32, dst []uint32) uint32 {
	scratch := make([]uint32, n)
	unpackX128[uint32](in, b, n, scratch)
	return deltaDecode(scratch, last, n, dst)
}

// PackDelta1_32 is PackDelta32 with the unit-step reduction.
func PackDelta1_32(src []uint32, last uint32, n int, out []byte) (CompressionDetails, uint32) {
	scratch := make([]uint32, n)
	newLast := delta1Encode(src, last, n, scratch)
	return packX128(scratch, n, out), newLast
}

// UnpackDelta1_32 is the inverse of PackDelta1_32.
func UnpackDelta1_32(in []byte, b, n int, last uint32, dst []uint32) uint32 {
	scratch := make([]uint32, n)
	unpackX128[uint32](in, b, n, scratch)
	return delta1Decode(scratch, last, n, dst)
}

// AdaptivePackDelta32 delta-encodes src[:n] against last, subtracts the
// minimum delta (d_min) from every element, and packs the result. The
// caller must store dMin alongside the packed bytes and the returned last
// value; both are required to reconstruct the block.
func AdaptivePackDelta32(src []uint32, last uint32, n int, out []byte) (details CompressionDetails, newLast, dMin uint32) {
	scratch := make([]uint32, n)
	newLast, dMin = adaptiveDeltaEncode32(src, last, n, scratch)
	return packX128(scratch, n, out), newLast, dMin
}

// AdaptiveUnpackDelta32 is the inverse of AdaptivePackDelta32.
func AdaptiveUnpackDelta32(in []byte, b, n int, last, dMin uint32, dst []uint32) uint32 {
	scratch := make([]uint32, n)
	unpackX128[uint32](in, b, n, scratch)
	return adaptiveDeltaDecode32(scratch, dMin, last, n, dst)
}
