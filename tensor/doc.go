// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense tensors consumed and
// produced by the inference layers.
//
// A Tensor exclusively owns one contiguous row-major buffer. Its shape is
// fixed at construction; the last axis varies fastest.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3}, 1, 3)
//	if err != nil {
//	    return err
//	}
//	rows, _ := x.Dim(0)      // 1
//	n := x.ElementNum()      // 3
//	size := x.BytesNum()     // 12
package tensor
