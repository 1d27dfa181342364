//go:build arm64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if noSIMDEnv() {
		currentLevel = LevelScalar
		return
	}
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		return
	}
	currentLevel = LevelScalar
}
