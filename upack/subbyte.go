package upack

import "github.com/lnx-search/upack-go/internal/lane"

// Sub-byte packers/unpackers operate on byte-lane values — each already
// reduced to at most 8 significant bits — and write/read a bit-stream
// whose layout depends only on the live element count n, never on the
// fixed block size.
//
// bitplaneStride is the per-plane byte stride: ceil(n/8).
func bitplaneStride(n int) int {
	return ceilDiv(n, 8)
}

// packBitplane writes bit bitIndex of each of values[:n] into a bitmap of
// bitplaneStride(n) bytes: byte j, bit i holds (values[8j+i] >> bitIndex) & 1.
// Extracts the target bit by left-shifting it into the MSB and running
// movemask, the same trick the single-bit u1 packer uses.
func packBitplane(values []uint8, n, bitIndex int, out []byte) {
	reg := lane.Load(values[:n])
	shifted := lane.ShiftLeft(reg, 7-bitIndex)
	mask := lane.MoveMask(shifted)
	stride := bitplaneStride(n)
	for j := 0; j < stride; j++ {
		out[j] = byte(mask >> uint(8*j))
	}
}

// unpackBitplane reads a bitplaneStride(n)-byte bitmap and ORs bit
// bitIndex into values[:n] (values must already hold the other bits).
func unpackBitplane(in []byte, n, bitIndex int, values []uint8) {
	stride := bitplaneStride(n)
	var mask uint64
	for j := 0; j < stride; j++ {
		mask |= uint64(in[j]) << uint(8*j)
	}
	contribution := lane.MaskZMov[uint8](mask, 1<<uint(bitIndex), n)
	acc := lane.Load(values[:n])
	lane.Store(lane.Or(acc, contribution), values[:n])
}

// packNibble pairs consecutive byte-lane values into nibbles of a single
// byte: out[k] low nibble = values[2k], high nibble = values[2k+1]. Writes
// ceil(n/2) bytes; an odd final value leaves the high nibble of the last
// byte zero.
func packNibble(values []uint8, n int, out []byte) {
	nBytes := ceilDiv(n, 2)
	for k := 0; k < nBytes; k++ {
		lo := values[2*k] & 0xF
		var hi uint8
		if 2*k+1 < n {
			hi = values[2*k+1] & 0xF
		}
		out[k] = lo | hi<<4
	}
}

// unpackNibble is the inverse of packNibble.
func unpackNibble(in []byte, n int, values []uint8) {
	nBytes := ceilDiv(n, 2)
	for k := 0; k < nBytes; k++ {
		b := in[k]
		values[2*k] = b & 0xF
		if 2*k+1 < n {
			values[2*k+1] = b >> 4
		}
	}
}

// packSubByte packs values[:n] (each < 2^b, 0 <= b <= 8): a raw byte copy
// at b == 8, otherwise a single nibble-pack for the low 4 bits when b >= 4
// followed by (b mod 4) bitplanes for the remaining high bits. Returns the
// number of bytes written.
func packSubByte(values []uint8, b, n int, out []byte) int {
	if b == 0 || n == 0 {
		return 0
	}
	if b == 8 {
		copy(out[:n], values[:n])
		return n
	}
	q, r := b/4, b%4
	off := 0
	if q == 1 {
		packNibble(values, n, out[off:])
		off += ceilDiv(n, 2)
		for k := 0; k < r; k++ {
			packBitplane(values, n, 4+k, out[off:])
			off += bitplaneStride(n)
		}
		return off
	}
	// b in 1..3: r == b, no nibble group.
	for k := 0; k < r; k++ {
		packBitplane(values, n, k, out[off:])
		off += bitplaneStride(n)
	}
	return off
}

// unpackSubByte is the inverse of packSubByte; values[:n] is zeroed by the
// caller first (via the x64 kernel's zero-fill of the output block).
func unpackSubByte(in []byte, b, n int, values []uint8) int {
	if b == 0 || n == 0 {
		return 0
	}
	if b == 8 {
		copy(values[:n], in[:n])
		return n
	}
	q, r := b/4, b%4
	off := 0
	if q == 1 {
		unpackNibble(in[off:], n, values)
		off += ceilDiv(n, 2)
		for k := 0; k < r; k++ {
			unpackBitplane(in[off:], n, 4+k, values)
			off += bitplaneStride(n)
		}
		return off
	}
	for k := 0; k < r; k++ {
		unpackBitplane(in[off:], n, k, values)
		off += bitplaneStride(n)
	}
	return off
}
