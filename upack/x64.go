package upack

import "github.com/lnx-search/upack-go/internal/bitwidth"

// packX64 computes the bit width of values[:n] (n <= X64) and packs them
// into out, returning the chosen width and bytes written. out must have
// room for maxCompressedSizeHalf(width of T).
func packX64[T Word](values []T, n int, out []byte) CompressionDetails {
	b := bitwidth.Select(values, n)
	written := packWord(values, b, n, out)
	return CompressionDetails{BitWidth: uint8(b), BytesWritten: written}
}

// unpackX64 reconstructs n elements (n <= X64) from a block packed at bit
// width b. Elements of dst beyond n, up to X64, are zeroed: a partial
// block's dead lanes never carry stale data.
func unpackX64[T Word](in []byte, b, n int, dst []T) int {
	written := unpackWord(in, b, n, dst)
	for i := n; i < X64 && i < len(dst); i++ {
		dst[i] = 0
	}
	return written
}
