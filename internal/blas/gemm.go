// Package blas adapts gonum's single-precision BLAS to the row-major GEMM
// contract used by the layers.
package blas

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Transpose selects whether an operand is used as stored or transposed.
type Transpose = blas.Transpose

// Transpose flags.
const (
	NoTrans Transpose = blas.NoTrans
	Trans   Transpose = blas.Trans
)

// ErrBadArgument is returned when GEMM dimensions, leading dimensions or
// buffer lengths are inconsistent.
var ErrBadArgument = errors.New("blas: bad argument")

// Use sets the BLAS implementation backing Sgemm, for example a cgo
// binding to a system library. The default is gonum's pure-Go implementation.
func Use(impl blas.Float32) {
	blas32.Use(impl)
}

// Sgemm computes C = alpha * op(A) * op(B) + beta * C on row-major buffers,
// where op(A) is m×k, op(B) is k×n and C is m×n. lda, ldb and ldc are the
// row strides of the stored matrices.
//
// Arguments are validated before any write; a violation returns
// ErrBadArgument and leaves c untouched.
func Sgemm(tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) error {
	if m < 0 || n < 0 || k < 0 {
		return fmt.Errorf("%w: negative dimension m=%d n=%d k=%d", ErrBadArgument, m, n, k)
	}
	if tA != NoTrans && tA != Trans {
		return fmt.Errorf("%w: transpose flag %q for A", ErrBadArgument, tA)
	}
	if tB != NoTrans && tB != Trans {
		return fmt.Errorf("%w: transpose flag %q for B", ErrBadArgument, tB)
	}

	// Stored shapes of A and B depend on the transpose flags.
	aRows, aCols := m, k
	if tA == Trans {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if tB == Trans {
		bRows, bCols = n, k
	}

	if err := checkMatrix("A", aRows, aCols, a, lda); err != nil {
		return err
	}
	if err := checkMatrix("B", bRows, bCols, b, ldb); err != nil {
		return err
	}
	if err := checkMatrix("C", m, n, c, ldc); err != nil {
		return err
	}
	if m == 0 || n == 0 {
		return nil
	}

	blas32.Implementation().Sgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	return nil
}

// checkMatrix validates a row-major rows×cols matrix stored with stride ld.
func checkMatrix(name string, rows, cols int, data []float32, ld int) error {
	if ld < max(1, cols) {
		return fmt.Errorf("%w: leading dimension of %s is %d, need at least %d", ErrBadArgument, name, ld, max(1, cols))
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if need := ld*(rows-1) + cols; len(data) < need {
		return fmt.Errorf("%w: %s has %d elements, need %d", ErrBadArgument, name, len(data), need)
	}
	return nil
}
