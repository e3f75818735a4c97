// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/dnninfer/internal/tensor"
)

// Float is a constraint for tensor element types (float32, float64).
type Float = tensor.Float

// DataType represents the element type of a tensor at run time.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor with element type T.
type Tensor[T Float] = tensor.Tensor[T]

// Float32Tensor is the single-precision tensor used by the layers.
type Float32Tensor = tensor.Float32Tensor

// Errors.
var (
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
	ErrShape          = tensor.ErrShape
)

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape ...int) (*Tensor[T], error) {
	return tensor.New[T](shape...)
}

// FromSlice creates a tensor holding a copy of data.
func FromSlice[T Float](data []T, shape ...int) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape...)
}

// ReadRaw fills t with exactly t.BytesNum() native-endian bytes from r.
func ReadRaw[T Float](r io.Reader, t *Tensor[T]) error {
	return tensor.ReadRaw(r, t)
}

// WriteRaw writes t's memory to w.
func WriteRaw[T Float](w io.Writer, t *Tensor[T]) error {
	return tensor.WriteRaw(w, t)
}
