//go:build amd64 && !goexperiment.simd

package lane

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the archsimd intrinsics used by
// ops_avx2.go/ops_avx512.go are unavailable, so the process runs the
// scalar polyfill even on CPUs that support AVX2/AVX-512. cpu.X86 is
// still probed so CurrentLevel() reports what the hardware *could* run,
// which upackctl surfaces in `upackctl inspect --verbose`.
func init() {
	if noSIMDEnv() {
		currentLevel = LevelScalar
		return
	}
	currentLevel = LevelScalar
	_ = cpu.X86.HasAVX2
	_ = cpu.X86.HasAVX512F
}
