package activation

import (
	"math"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/born-ml/dnninfer/internal/parallel"
)

// maxLanes bounds the block size of the lane kernel.
const maxLanes = 16

// lanes is the block width used by GELUVector, picked from the widest
// vector unit the CPU reports.
var lanes = detectLanes()

func detectLanes() int {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F:
			return 16
		case cpu.X86.HasAVX2:
			return 8
		}
	case "arm64":
		switch {
		case cpu.ARM64.HasSVE:
			return 8
		case cpu.ARM64.HasASIMD:
			return 4
		}
	}
	return 4
}

// Lanes returns the block width GELUVector processes per step.
func Lanes() int {
	return lanes
}

// GELUVector applies the single-precision exponential-form GELU in place,
// processing Lanes() elements per step in separate passes (cube, exp,
// combine) over fixed-size blocks. Lane results match GELUExp up to
// floating-point contraction; the tail is handled by the scalar kernel.
func GELUVector(data []float32, cfg parallel.Config) {
	w := lanes
	parallel.ForRange(len(data), func(start, end int) {
		geluVectorRange(data[start:end], w)
	}, cfg)
}

func geluVectorRange(data []float32, w int) {
	var t, e [maxLanes]float32

	n := len(data) - len(data)%w
	for base := 0; base < n; base += w {
		block := data[base : base+w : base+w]

		for j, x := range block {
			t[j] = sqrt2OverPi32 * (x + geluCoeff*x*x*x)
		}
		for j := 0; j < w; j++ {
			switch {
			case t[j] > saturation:
				e[j] = 1
			case t[j] < -saturation:
				e[j] = -1
			default:
				e[j] = 1 - 2/(float32(math.Exp(float64(2*t[j])))+1)
			}
		}
		for j, x := range block {
			block[j] = 0.5 * x * (1 + e[j])
		}
	}

	geluExpRange(data[n:])
}
