// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the affine inference layers of the surrogate model.
//
// # Overview
//
// This package contains:
//   - Linear: output = input × weight + bias
//   - LinearGELU: Linear followed by an in-place GELU
//   - GELU kernels: Exp (default), Tanh, Exp64, Vector
//   - Typed errors: ShapeError, LoadError
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dnninfer/nn"
//	    "github.com/born-ml/dnninfer/tensor"
//	)
//
//	func run(input *tensor.Float32Tensor) error {
//	    layer, err := nn.NewLinearGELU(21, 64)
//	    if err != nil {
//	        return err
//	    }
//	    if err := layer.LoadParameters("model", 0); err != nil {
//	        return err // *nn.LoadError names the layer id and path
//	    }
//
//	    rows, _ := input.Dim(0)
//	    output, _ := tensor.New[float32](rows, 64)
//	    return layer.Forward(input, output)
//	}
//
// # Parameter files
//
// Layer N with K inputs and M outputs reads
// linear_N_weights_rowmajor_K_M.data (K*M float32, row-major) and
// linear_N_bias_M.data (M float32) from the given directory. The files have
// no header and are read in native byte order.
//
// # Concurrency
//
// Forward splits the bias broadcast across rows and GELU across elements;
// the matrix product is parallelised by the BLAS implementation. Loaded
// parameters are never modified by Forward, so a layer may serve several
// concurrent Forward calls as long as each uses its own output tensor.
package nn
