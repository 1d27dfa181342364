package lane

import (
	"os"
	"strconv"
)

// Level names the SIMD instruction set backing the lane algebra at runtime.
type Level int

const (
	// LevelScalar is the pure-Go fallback: no hardware SIMD.
	LevelScalar Level = iota
	// LevelAVX2 is 256-bit x86 SIMD with byte-granularity masking.
	LevelAVX2
	// LevelAVX512 is 512-bit x86 SIMD with dedicated mask registers.
	LevelAVX512
	// LevelNEON is 128-bit ARM SIMD.
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_<goarch>.go.
var currentLevel Level

// CurrentLevel returns the SIMD backend selected for this process.
func CurrentLevel() Level { return currentLevel }

// HasSIMD reports whether a hardware-accelerated backend is active.
func HasSIMD() bool { return currentLevel != LevelScalar }

// noSIMDEnv is an escape hatch modeled on Highway's HWY_NO_SIMD: set
// UPACK_NO_SIMD to force the scalar backend regardless of detected
// CPU features, useful for reproducing a known-good byte layout.
func noSIMDEnv() bool {
	val := os.Getenv("UPACK_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
