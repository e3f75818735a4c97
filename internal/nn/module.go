// Package nn implements the affine inference layers.
//
// This package provides:
//   - Layer interface: forward pass plus parameter loading
//   - Linear: output = input × weight + bias
//   - LinearGELU: Linear followed by an in-place GELU
//   - Config: parallelism, activation kernel and logging settings
//
// Layers never allocate outputs: callers own both tensors passed to Forward
// and may reuse them across calls. Parameters are read-only after loading,
// so one layer can serve concurrent Forward calls with distinct outputs.
package nn

import (
	"log/slog"

	"github.com/born-ml/dnninfer/internal/activation"
	"github.com/born-ml/dnninfer/internal/parallel"
	"github.com/born-ml/dnninfer/internal/tensor"
)

// Layer is the contract every inference layer exposes to its caller.
type Layer interface {
	// Forward writes the layer output for input into output.
	// input is [batch, InFeatures()], output is [batch, OutFeatures()].
	Forward(input, output *tensor.Float32Tensor) error

	// LoadParameters reads the layer's weights and bias from dir.
	LoadParameters(dir string, layerID int64) error

	InFeatures() int
	OutFeatures() int
}

// Config controls layer behavior.
type Config struct {
	Parallel   parallel.Config // Row and element loop parallelism
	Activation activation.Kind // GELU kernel used by LinearGELU
	Logger     *slog.Logger    // Defaults to slog.Default()
}

// DefaultConfig returns the configuration used by NewLinear and NewLinearGELU.
func DefaultConfig() Config {
	return Config{
		Parallel:   parallel.DefaultConfig(),
		Activation: activation.Exp,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

var (
	_ Layer = (*Linear)(nil)
	_ Layer = (*LinearGELU)(nil)
)
