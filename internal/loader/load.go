package loader

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/born-ml/dnninfer/internal/tensor"
)

// Options configures Load.
type Options struct {
	Logger *slog.Logger // Defaults to slog.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Load fills weights ([in, out]) and bias ([out]) from the files named by
// WeightsPath and BiasPath. Both files are read concurrently into scratch
// buffers; the tensors are written only if both reads succeed.
func Load(dir string, layerID int64, weights, bias *tensor.Float32Tensor, opts Options) error {
	in, out, err := paramShape(weights, bias)
	if err != nil {
		return err
	}

	wPath := WeightsPath(dir, layerID, in, out)
	bPath := BiasPath(dir, layerID, out)

	wBuf, err := tensor.New[float32](in, out)
	if err != nil {
		return err
	}
	bBuf, err := tensor.New[float32](out)
	if err != nil {
		return err
	}

	var errs [2]error
	var g errgroup.Group
	g.Go(func() error {
		errs[0] = readFile(wPath, wBuf, layerID, Weights)
		return errs[0]
	})
	g.Go(func() error {
		errs[1] = readFile(bPath, bBuf, layerID, Bias)
		return errs[1]
	})
	if g.Wait() != nil {
		// Report weights before bias so the error does not depend on scheduling.
		if errs[0] != nil {
			return errs[0]
		}
		return errs[1]
	}

	copy(weights.Data(), wBuf.Data())
	copy(bias.Data(), bBuf.Data())

	opts.logger().Debug("loaded layer parameters",
		"layer", layerID,
		"weights", wPath,
		"bias", bPath,
		"bytes", weights.BytesNum()+bias.BytesNum(),
	)
	return nil
}

func readFile(path string, dst *tensor.Float32Tensor, layerID int64, param ParamKind) error {
	//nolint:gosec // G304: parameter paths are built from the caller's directory
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{LayerID: layerID, Param: param, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := tensor.ReadRaw(f, dst); err != nil {
		return &LoadError{LayerID: layerID, Param: param, Path: path, Err: err}
	}
	return nil
}

// Save writes weights and bias using the same naming convention as Load.
// dir must exist.
func Save(dir string, layerID int64, weights, bias *tensor.Float32Tensor) error {
	in, out, err := paramShape(weights, bias)
	if err != nil {
		return err
	}

	wPath := WeightsPath(dir, layerID, in, out)
	if err := os.WriteFile(wPath, weights.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save layer %d weights: %w", layerID, err)
	}
	bPath := BiasPath(dir, layerID, out)
	if err := os.WriteFile(bPath, bias.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save layer %d bias: %w", layerID, err)
	}
	return nil
}

// paramShape checks that weights is [in, out] and bias is [out].
func paramShape(weights, bias *tensor.Float32Tensor) (in, out int, err error) {
	ws, bs := weights.Shape(), bias.Shape()
	if len(ws) != 2 || len(bs) != 1 || ws[1] != bs[0] {
		return 0, 0, fmt.Errorf("parameters: weights %v and bias %v are not [in, out] and [out]: %w",
			ws, bs, tensor.ErrShape)
	}
	return ws[0], ws[1], nil
}
