// Package loader reads and writes per-layer parameter files.
//
// A layer with id N, in features K and out features M keeps its parameters
// in two headerless files under a caller-chosen directory:
//
//	linear_N_weights_rowmajor_K_M.data   K*M float32 values, row-major
//	linear_N_bias_M.data                 M float32 values
//
// Values are stored in native byte order with no padding, header or
// checksum. Bytes past the expected length are ignored.
//
// Example:
//
//	weights, _ := tensor.New[float32](64, 32)
//	bias, _ := tensor.New[float32](32)
//	if err := loader.Load("model", 0, weights, bias, loader.Options{}); err != nil {
//	    var le *loader.LoadError
//	    if errors.As(err, &le) {
//	        log.Printf("layer %d: missing %s", le.LayerID, le.Path)
//	    }
//	}
//
// Design principles:
//   - No partial state: tensors are only written after both files were read
//   - Fixed naming: the loader never scans directories
//   - Typed failures: every IO error is a *LoadError carrying layer id and path
package loader
