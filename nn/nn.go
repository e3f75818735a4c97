// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/dnninfer/internal/activation"
	"github.com/born-ml/dnninfer/internal/loader"
	"github.com/born-ml/dnninfer/internal/nn"
)

// Layer is the contract shared by Linear and LinearGELU.
type Layer = nn.Layer

// Config controls parallelism, the GELU kernel and logging.
type Config = nn.Config

// DefaultConfig returns the configuration used by NewLinear and NewLinearGELU.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a zero-initialised linear layer.
//
// Example:
//
//	layer, err := nn.NewLinear(3, 2)
func NewLinear(inFeatures, outFeatures int) (*Linear, error) {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewLinearWithConfig creates a linear layer with a custom config.
func NewLinearWithConfig(inFeatures, outFeatures int, cfg Config) (*Linear, error) {
	return nn.NewLinearWithConfig(inFeatures, outFeatures, cfg)
}

// LinearGELU represents a linear layer followed by GELU.
type LinearGELU = nn.LinearGELU

// NewLinearGELU creates a zero-initialised linear layer with GELU.
func NewLinearGELU(inFeatures, outFeatures int) (*LinearGELU, error) {
	return nn.NewLinearGELU(inFeatures, outFeatures)
}

// NewLinearGELUWithConfig creates a linear GELU layer with a custom config.
func NewLinearGELUWithConfig(inFeatures, outFeatures int, cfg Config) (*LinearGELU, error) {
	return nn.NewLinearGELUWithConfig(inFeatures, outFeatures, cfg)
}

// Activations

// GELUKind selects a GELU kernel.
type GELUKind = activation.Kind

// GELU kernels.
const (
	GELUExp    GELUKind = activation.Exp
	GELUTanh   GELUKind = activation.Tanh
	GELUExp64  GELUKind = activation.Exp64
	GELUVector GELUKind = activation.Vector
)

// ParseGELUKind parses "exp", "tanh", "exp64" or "vector".
func ParseGELUKind(s string) (GELUKind, error) {
	return activation.ParseKind(s)
}

// Errors

// ShapeError reports tensors that do not fit a layer.
type ShapeError = nn.ShapeError

// LoadError reports a parameter file that could not be read.
type LoadError = loader.LoadError

// Sentinel errors matched with errors.Is.
var (
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrLoad          = loader.ErrLoad
)

// Parameter files

// WeightsPath returns the weight file path of a layer.
func WeightsPath(dir string, layerID int64, inFeatures, outFeatures int) string {
	return loader.WeightsPath(dir, layerID, inFeatures, outFeatures)
}

// BiasPath returns the bias file path of a layer.
func BiasPath(dir string, layerID int64, outFeatures int) string {
	return loader.BiasPath(dir, layerID, outFeatures)
}
