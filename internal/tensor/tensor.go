package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is a dense, contiguous, row-major tensor with element type T.
// It exclusively owns its buffer; the buffer length always equals the
// product of the shape extents and never changes after construction.
//
// Example:
//
//	t, err := tensor.New[float32](32, 8)  // batch=32, features=8
//	if err != nil {
//	    return err
//	}
//	t.Data()[0] = 1
type Tensor[T Float] struct {
	data    []T
	shape   Shape
	strides []int
}

// Float32Tensor is the single-precision tensor used by the production layers.
type Float32Tensor = Tensor[float32]

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape ...int) (*Tensor[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor[T]{
		data:    make([]T, s.NumElements()),
		shape:   s.Clone(),
		strides: s.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape ...int) (*Tensor[T], error) {
	s := Shape(shape)
	if s.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			s, s.NumElements(), len(data), ErrShape)
	}
	t, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// DimNum returns the tensor's rank.
func (t *Tensor[T]) DimNum() int {
	return len(t.shape)
}

// Dim returns the extent of axis i.
func (t *Tensor[T]) Dim(i int) (int, error) {
	if i < 0 || i >= len(t.shape) {
		return 0, fmt.Errorf("dim %d of rank-%d tensor: %w", i, len(t.shape), ErrAxisOutOfRange)
	}
	return t.shape[i], nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// ElementNum returns the total number of elements.
func (t *Tensor[T]) ElementNum() int {
	return len(t.data)
}

// BytesNum returns the total memory size in bytes.
func (t *Tensor[T]) BytesNum() int {
	return len(t.data) * t.DType().Size()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// Data returns the tensor's elements in row-major order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Bytes returns the tensor's memory as native-endian bytes.
// The slice aliases Data().
func (t *Tensor[T]) Bytes() []byte {
	if len(t.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy IO, length derived from the element count
	return unsafe.Slice((*byte)(unsafe.Pointer(&t.data[0])), t.BytesNum())
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// CopyFrom copies src's elements into t. Both tensors must have the same shape.
func (t *Tensor[T]) CopyFrom(src *Tensor[T]) error {
	if !t.shape.Equal(src.shape) {
		return fmt.Errorf("copy %v into %v: %w", src.shape, t.shape, ErrShape)
	}
	copy(t.data, src.data)
	return nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:    data,
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
	}
}

// String returns a short description of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), []int(t.shape))
}
