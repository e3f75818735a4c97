package nn

import (
	"fmt"

	"github.com/born-ml/dnninfer/internal/activation"
	"github.com/born-ml/dnninfer/internal/tensor"
)

// LinearGELU is a Linear layer whose output goes through GELU in place.
//
// Parameters, loading and shape rules are those of the embedded Linear;
// only Forward differs.
type LinearGELU struct {
	*Linear
	kind activation.Kind
}

// NewLinearGELU creates a LinearGELU layer with DefaultConfig
// (single-precision exponential-form GELU).
func NewLinearGELU(inFeatures, outFeatures int) (*LinearGELU, error) {
	return NewLinearGELUWithConfig(inFeatures, outFeatures, DefaultConfig())
}

// NewLinearGELUWithConfig creates a LinearGELU layer with a custom config.
// cfg.Activation selects the GELU kernel.
func NewLinearGELUWithConfig(inFeatures, outFeatures int, cfg Config) (*LinearGELU, error) {
	if !cfg.Activation.Valid() {
		return nil, fmt.Errorf("linear gelu: unknown GELU kernel %v", cfg.Activation)
	}
	lin, err := NewLinearWithConfig(inFeatures, outFeatures, cfg)
	if err != nil {
		return nil, err
	}
	return &LinearGELU{Linear: lin, kind: cfg.Activation}, nil
}

// Forward computes output = GELU(input @ W + b).
func (l *LinearGELU) Forward(input, output *tensor.Float32Tensor) error {
	m, err := l.checkForward("LinearGELU.Forward", input, output)
	if err != nil {
		return err
	}
	if err := l.affine(m, input, output); err != nil {
		return err
	}
	return activation.Apply(l.kind, output.Data(), l.cfg.Parallel)
}

// Activation returns the GELU kernel used by Forward.
func (l *LinearGELU) Activation() activation.Kind {
	return l.kind
}
