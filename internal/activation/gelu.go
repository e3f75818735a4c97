// Package activation implements the in-place GELU kernels applied to layer
// outputs.
//
// Every kernel evaluates the tanh approximation
//
//	GELU(x) = 0.5 * x * (1 + tanh(sqrt(2/π) * (x + 0.044715 * x^3)))
//
// and differs only in how tanh is computed and in which precision.
// Elements are independent, so kernels split the slice into disjoint
// ranges with parallel.ForRange.
package activation

import (
	"math"

	"github.com/born-ml/dnninfer/internal/parallel"
)

const (
	geluCoeff = 0.044715

	// saturation is the |t| beyond which the exponential-form tanh returns ±1.
	saturation = 8
)

// sqrt2OverPi32 is sqrt(2/π) rounded to single precision.
var sqrt2OverPi32 = float32(math.Sqrt(2 / math.Pi))

// GELUTanh applies GELU in place using the hyperbolic tangent directly.
func GELUTanh(data []float32, cfg parallel.Config) {
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			x := data[i]
			inner := sqrt2OverPi32 * (x + geluCoeff*x*x*x)
			data[i] = 0.5 * x * (1 + float32(math.Tanh(float64(inner))))
		}
	}, cfg)
}

// GELUExp applies GELU in place in single precision with
// tanh(t) = 1 - 2/(e^{2t}+1), saturating to ±1 for |t| > 8.
func GELUExp(data []float32, cfg parallel.Config) {
	parallel.ForRange(len(data), func(start, end int) {
		geluExpRange(data[start:end])
	}, cfg)
}

func geluExpRange(data []float32) {
	for i, x := range data {
		data[i] = 0.5 * x * (1 + tanhExp32(sqrt2OverPi32*(x+geluCoeff*x*x*x)))
	}
}

// GELUExp64 applies GELU in place, evaluating the exponential form in double
// precision. There is no saturation guard; once exp overflows to +Inf the
// expression still evaluates to exactly ±1.
func GELUExp64(data []float32, cfg parallel.Config) {
	// The scale constant is the single-precision value widened, which keeps
	// results aligned with the float32 kernels.
	c1 := float64(sqrt2OverPi32)
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			x := float64(data[i])
			data[i] = float32(0.5 * x * (1 + tanhExp64(c1*(x+geluCoeff*x*x*x))))
		}
	}, cfg)
}

// tanhExp32 is tanh(t) via exp, clamped to exactly ±1 outside [-8, 8].
func tanhExp32(t float32) float32 {
	if t > saturation {
		return 1
	}
	if t < -saturation {
		return -1
	}
	return 1 - 2/(float32(math.Exp(float64(2*t)))+1)
}

func tanhExp64(t float64) float64 {
	return 1 - 2/(math.Exp(2*t)+1)
}
