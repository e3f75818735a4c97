package tensor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "unknown", DataType(42).String())
}

type celsius float32

func TestInferDataType(t *testing.T) {
	assert.Equal(t, Float32, inferDataType[float32]())
	assert.Equal(t, Float64, inferDataType[float64]())
	assert.Equal(t, Float32, inferDataType[celsius]())
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{1, 2}.Validate())
	require.Error(t, Shape{2, 0}.Validate())
	require.Error(t, Shape{-1}.Validate())
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0])
}

// Tensor Tests

func TestNew(t *testing.T) {
	x, err := New[float32](4, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, x.DimNum())
	assert.Equal(t, 12, x.ElementNum())
	assert.Equal(t, 48, x.BytesNum())
	assert.Len(t, x.Data(), 12)
	assertEqualShape(t, Shape{4, 3}, x.Shape(), "New shape")
	for _, v := range x.Data() {
		assert.Zero(t, v)
	}
}

func TestNewFloat64(t *testing.T) {
	x, err := New[float64](5)
	require.NoError(t, err)
	assert.Equal(t, Float64, x.DType())
	assert.Equal(t, 40, x.BytesNum())
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New[float32](3, 0)
	require.Error(t, err)
}

func TestDim(t *testing.T) {
	x, err := New[float32](2, 5)
	require.NoError(t, err)

	d0, err := x.Dim(0)
	require.NoError(t, err)
	assert.Equal(t, 2, d0)

	d1, err := x.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, 5, d1)

	for _, axis := range []int{2, -1, 100} {
		_, err := x.Dim(axis)
		assert.ErrorIs(t, err, ErrAxisOutOfRange, "axis %d", axis)
	}
}

func TestShapeReturnsCopy(t *testing.T) {
	x, err := New[float32](2, 5)
	require.NoError(t, err)

	s := x.Shape()
	s[0] = 100

	d0, err := x.Dim(0)
	require.NoError(t, err)
	assert.Equal(t, 2, d0)
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, 2, 3)
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, float32(1), x.Data()[0], "FromSlice must copy its input")
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.Equal(t, float32(4), x.At(1, 0))
}

func TestFromSliceMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrShape)
}

func TestAtSetRowMajor(t *testing.T) {
	x, err := New[float32](2, 3, 4)
	require.NoError(t, err)

	x.Set(7, 1, 2, 3)
	assert.Equal(t, float32(7), x.Data()[1*12+2*4+3])
	assert.Equal(t, float32(7), x.At(1, 2, 3))
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	x, err := New[float32](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.Set(1, 0, -1) })
}

func TestBytesAliasesData(t *testing.T) {
	x, err := FromSlice([]float32{1.5, -2}, 2)
	require.NoError(t, err)

	b := x.Bytes()
	require.Len(t, b, 8)

	binary.NativeEndian.PutUint32(b[:4], math.Float32bits(3.25))
	assert.Equal(t, float32(3.25), x.Data()[0])
	assert.Equal(t, math.Float32bits(-2), binary.NativeEndian.Uint32(b[4:]))
}

func TestCopyFrom(t *testing.T) {
	dst, err := New[float32](2, 2)
	require.NoError(t, err)
	src, err := FromSlice([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, src.Data(), dst.Data())

	wrong, err := New[float32](4)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.CopyFrom(wrong), ErrShape)
}

func TestClone(t *testing.T) {
	x, err := FromSlice([]float32{1, 2}, 2)
	require.NoError(t, err)

	c := x.Clone()
	c.Data()[0] = 5
	assert.Equal(t, float32(1), x.Data()[0])
	assertEqualShape(t, x.Shape(), c.Shape(), "Clone shape")
}

func TestString(t *testing.T) {
	x, err := New[float32](3, 4)
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][3 4]", x.String())
}

// IO Tests

func TestRawRoundTrip(t *testing.T) {
	x, err := FromSlice([]float32{0.1, -0.2, float32(math.Inf(1)), 1e-30}, 2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, x))
	assert.Equal(t, x.BytesNum(), buf.Len())

	y, err := New[float32](2, 2)
	require.NoError(t, err)
	require.NoError(t, ReadRaw(&buf, y))
	for i := range x.Data() {
		assert.Equal(t, math.Float32bits(x.Data()[i]), math.Float32bits(y.Data()[i]))
	}
}

func TestReadRawShort(t *testing.T) {
	y, err := New[float32](4)
	require.NoError(t, err)

	err = ReadRaw(bytes.NewReader(make([]byte, 5)), y)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestReadRawIgnoresTrailingBytes(t *testing.T) {
	y, err := New[float32](1)
	require.NoError(t, err)

	r := bytes.NewReader(make([]byte, 12))
	require.NoError(t, ReadRaw(r, y))
	assert.Equal(t, 8, r.Len())
}
