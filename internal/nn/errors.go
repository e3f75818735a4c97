package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/dnninfer/internal/tensor"
)

// ErrShapeMismatch matches every *ShapeError via errors.Is.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError reports a Forward or SetParameters call whose tensors do not
// fit the layer. It is returned before any output is written.
type ShapeError struct {
	Op      string       // Operation, e.g. "Linear.Forward"
	Input   tensor.Shape // Shape of the first tensor argument
	Output  tensor.Shape // Shape of the second tensor argument
	Details string       // What was expected
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: got %v and %v: %s", e.Op, []int(e.Input), []int(e.Output), e.Details)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
