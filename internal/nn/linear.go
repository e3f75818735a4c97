package nn

import (
	"fmt"

	"github.com/born-ml/dnninfer/internal/blas"
	"github.com/born-ml/dnninfer/internal/loader"
	"github.com/born-ml/dnninfer/internal/parallel"
	"github.com/born-ml/dnninfer/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights and bias start at zero and are filled by LoadParameters or
// SetParameters.
//
// Example:
//
//	layer, err := nn.NewLinear(3, 2)
//	if err != nil {
//	    return err
//	}
//	if err := layer.LoadParameters("model", 0); err != nil {
//	    return err
//	}
//	out, _ := tensor.New[float32](batch, 2)
//	err = layer.Forward(input, out)
type Linear struct {
	inFeatures  int
	outFeatures int
	weights     *tensor.Float32Tensor // [in_features, out_features]
	bias        *tensor.Float32Tensor // [out_features]
	cfg         Config
}

// NewLinear creates a Linear layer with DefaultConfig.
func NewLinear(inFeatures, outFeatures int) (*Linear, error) {
	return NewLinearWithConfig(inFeatures, outFeatures, DefaultConfig())
}

// NewLinearWithConfig creates a Linear layer with a custom config.
func NewLinearWithConfig(inFeatures, outFeatures int, cfg Config) (*Linear, error) {
	weights, err := tensor.New[float32](inFeatures, outFeatures)
	if err != nil {
		return nil, fmt.Errorf("linear %dx%d weights: %w", inFeatures, outFeatures, err)
	}
	bias, err := tensor.New[float32](outFeatures)
	if err != nil {
		return nil, fmt.Errorf("linear %dx%d bias: %w", inFeatures, outFeatures, err)
	}
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     weights,
		bias:        bias,
		cfg:         cfg,
	}, nil
}

// Forward computes output = input @ W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Every row of output is first seeded with the bias, then the product is
// accumulated on top with a single GEMM (alpha = beta = 1). Prior output
// content is overwritten. A *ShapeError is returned before any write if
// the shapes do not fit.
func (l *Linear) Forward(input, output *tensor.Float32Tensor) error {
	m, err := l.checkForward("Linear.Forward", input, output)
	if err != nil {
		return err
	}
	return l.affine(m, input, output)
}

func (l *Linear) affine(m int, input, output *tensor.Float32Tensor) error {
	n, k := l.outFeatures, l.inFeatures
	c := output.Data()
	b := l.bias.Data()

	parallel.For(m, func(i int) {
		copy(c[i*n:(i+1)*n], b)
	}, l.cfg.Parallel)

	return blas.Sgemm(blas.NoTrans, blas.NoTrans,
		m, n, k,
		1, input.Data(), k,
		l.weights.Data(), n,
		1, c, n)
}

// checkForward validates Forward arguments and returns the batch size.
func (l *Linear) checkForward(op string, input, output *tensor.Float32Tensor) (int, error) {
	fail := func(format string, args ...any) (int, error) {
		return 0, &ShapeError{
			Op:      op,
			Input:   input.Shape(),
			Output:  output.Shape(),
			Details: fmt.Sprintf(format, args...),
		}
	}

	if input.DimNum() != 2 {
		return fail("expected 2D input [batch, %d], got rank %d", l.inFeatures, input.DimNum())
	}
	if output.DimNum() != 2 {
		return fail("expected 2D output [batch, %d], got rank %d", l.outFeatures, output.DimNum())
	}

	in, out := input.Shape(), output.Shape()
	if in[0] != out[0] {
		return fail("batch mismatch: input has %d rows, output has %d", in[0], out[0])
	}
	if in[1] != l.inFeatures {
		return fail("expected input with %d features, got %d", l.inFeatures, in[1])
	}
	if out[1] != l.outFeatures {
		return fail("expected output with %d features, got %d", l.outFeatures, out[1])
	}
	return in[0], nil
}

// LoadParameters reads weights and bias from dir using the naming convention
// of package loader. On failure the layer keeps its previous parameters and
// a *loader.LoadError is returned.
//
// Must not run concurrently with Forward.
func (l *Linear) LoadParameters(dir string, layerID int64) error {
	return loader.Load(dir, layerID, l.weights, l.bias, loader.Options{Logger: l.cfg.logger()})
}

// SaveParameters writes weights and bias to dir using the same convention
// as LoadParameters.
func (l *Linear) SaveParameters(dir string, layerID int64) error {
	return loader.Save(dir, layerID, l.weights, l.bias)
}

// SetParameters copies weights ([in, out]) and bias ([out]) into the layer.
//
// Must not run concurrently with Forward.
func (l *Linear) SetParameters(weights, bias *tensor.Float32Tensor) error {
	ws, bs := weights.Shape(), bias.Shape()
	if !ws.Equal(tensor.Shape{l.inFeatures, l.outFeatures}) || !bs.Equal(tensor.Shape{l.outFeatures}) {
		return &ShapeError{
			Op:      "Linear.SetParameters",
			Input:   ws,
			Output:  bs,
			Details: fmt.Sprintf("expected weights [%d %d] and bias [%d]", l.inFeatures, l.outFeatures, l.outFeatures),
		}
	}
	copy(l.weights.Data(), weights.Data())
	copy(l.bias.Data(), bias.Data())
	return nil
}

// Weights returns the weight tensor [in_features, out_features].
// Callers must treat it as read-only.
func (l *Linear) Weights() *tensor.Float32Tensor {
	return l.weights
}

// Bias returns the bias tensor [out_features].
// Callers must treat it as read-only.
func (l *Linear) Bias() *tensor.Float32Tensor {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
