// Package upack implements a SIMD-friendly fixed-width integer bit-packing
// codec over blocks of up to 128 uint16 or uint32 elements.
//
// # Overview
//
// Each block is packed at the narrowest bit width b that losslessly
// represents its largest element, so a block where every value fits in 7
// bits costs 7/32 of the space of the raw uint32 array. Blocks of 64
// elements pack directly; blocks of 128 elements compose two independent
// 64-element halves sharing one block-wide bit width, so the partial-block
// byte offset of the second half depends only on b, never on how many of
// its elements are actually live.
//
// # Core Functions
//
//	Pack16/Unpack16, Pack32/Unpack32 — plain pack/unpack, no transform.
//	PackDelta16/UnpackDelta16, PackDelta32/UnpackDelta32 — running
//	differences, chained across blocks via an explicit last-value
//	parameter the caller carries between calls.
//	PackDelta1_16/UnpackDelta1_16, PackDelta1_32/UnpackDelta1_32 — delta
//	additionally reduced by one, collapsing consecutive integers to zero.
//	AdaptivePackDelta32/AdaptiveUnpackDelta32 — delta with a shared
//	constant offset (d_min) subtracted out; an explicit opt-in since it
//	costs an extra uint32 of side-channel state the caller must store.
//
// # Example
//
//	values := []uint32{5, 12, 3, 15, 7, 2, 9, 11}
//	packed := make([]byte, 64)
//	details := upack.Pack32(values, len(values), packed)
//
//	unpacked := make([]uint32, len(values))
//	upack.Unpack32(packed, int(details.BitWidth), len(values), unpacked)
//
// # Delta chaining
//
//	details1, last := upack.PackDelta32(block1, 0, len(block1), out1)
//	details2, last := upack.PackDelta32(block2, last, len(block2), out2)
package upack
