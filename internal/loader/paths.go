package loader

import (
	"fmt"
	"path/filepath"
)

// WeightsPath returns the weight file path for a layer.
func WeightsPath(dir string, layerID int64, inFeatures, outFeatures int) string {
	return filepath.Join(dir, fmt.Sprintf("linear_%d_weights_rowmajor_%d_%d.data", layerID, inFeatures, outFeatures))
}

// BiasPath returns the bias file path for a layer.
func BiasPath(dir string, layerID int64, outFeatures int) string {
	return filepath.Join(dir, fmt.Sprintf("linear_%d_bias_%d.data", layerID, outFeatures))
}
