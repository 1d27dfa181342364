package lane

// Zip interleaves the lanes of a and b: out[2i] = a[i], out[2i+1] = b[i].
// This is the scalar definition of the lane-interleave primitive; the ordered
// width converters (internal/convert) build on it.
func Zip[T Unsigned](a, b Reg[T]) Reg[T] {
	out := make([]T, len(a.data)+len(b.data))
	for i := range a.data {
		out[2*i] = a.data[i]
		out[2*i+1] = b.data[i]
	}
	return Reg[T]{data: out}
}

// Unzip splits an interleaved register back into its two halves: the
// inverse of Zip.
func Unzip[T Unsigned](v Reg[T]) (a, b Reg[T]) {
	n := len(v.data) / 2
	aData := make([]T, n)
	bData := make([]T, n)
	for i := 0; i < n; i++ {
		aData[i] = v.data[2*i]
		bData[i] = v.data[2*i+1]
	}
	return Reg[T]{data: aData}, Reg[T]{data: bData}
}
