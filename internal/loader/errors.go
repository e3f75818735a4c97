package loader

import (
	"errors"
	"fmt"
)

// ErrLoad matches every *LoadError via errors.Is.
var ErrLoad = errors.New("parameter load failed")

// ParamKind names which parameter file an error refers to.
type ParamKind string

// Parameter files of a layer.
const (
	Weights ParamKind = "weights"
	Bias    ParamKind = "bias"
)

// LoadError reports a parameter file that could not be opened or read.
type LoadError struct {
	LayerID int64     // Layer id passed to Load
	Param   ParamKind // Which file failed
	Path    string    // Full path of the file
	Err     error     // Underlying cause (fs.ErrNotExist, io.ErrUnexpectedEOF, ...)
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load layer %d %s %q: %v", e.LayerID, e.Param, e.Path, e.Err)
}

// Unwrap exposes both ErrLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
