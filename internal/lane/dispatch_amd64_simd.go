//go:build amd64 && goexperiment.simd

package lane

import "golang.org/x/sys/cpu"

func init() {
	if noSIMDEnv() {
		currentLevel = LevelScalar
		return
	}
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		currentLevel = LevelAVX512
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
	default:
		currentLevel = LevelScalar
	}
}
