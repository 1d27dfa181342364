package upack

import "github.com/lnx-search/upack-go/internal/bitwidth"

// packX128 packs values[:packN] (packN <= X128) as either a single x64
// block (packN <= X64) or two x64 halves sharing one block-wide bit width:
// the first half is always packed with 64 live elements, so its byte
// length is fixed at maxCompressedSizeHalf(b) and the second half always
// starts there regardless of how many of its own elements are live.
func packX128[T Word](values []T, packN int, out []byte) CompressionDetails {
	if packN <= X64 {
		return packX64(values, packN, out)
	}
	b := bitwidth.Select(values, packN)
	off := packWord(values[:X64], b, X64, out)
	off += packWord(values[X64:packN], b, packN-X64, out[off:])
	return CompressionDetails{BitWidth: uint8(b), BytesWritten: off}
}

// unpackX128 is the inverse of packX128. dst[:packN] is fully
// reconstructed; dst[packN:X128] is zeroed.
func unpackX128[T Word](in []byte, b, packN int, dst []T) int {
	if packN <= X64 {
		n := unpackX64[T](in, b, packN, dst)
		for i := packN; i < X128 && i < len(dst); i++ {
			dst[i] = 0
		}
		return n
	}
	off := unpackWord(in, b, X64, dst[:X64])
	second := packN - X64
	off += unpackWord(in[off:], b, second, dst[X64:packN])
	for i := packN; i < X128 && i < len(dst); i++ {
		dst[i] = 0
	}
	return off
}
