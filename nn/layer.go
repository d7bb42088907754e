// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/optim"
)

// Layer is the contract every network layer implements.
//
// Forward consumes an input tensor and produces the layer's output. It also
// caches the input and output on the layer, which is why it is a mutating
// method: Backward is mathematically defined in terms of that cached state,
// so the cache is a correctness requirement, not an optimization.
//
// Backward consumes the gradient of the loss with respect to the layer's
// output, updates any trainable parameters through the optimizer, and returns
// the gradient with respect to the layer's input.
//
// Layers are single-writer: nothing here is safe for concurrent mutation.
type Layer interface {
	Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)
	Backward(upstream *tensor.Tensor[float64], opt optim.Optimizer) (*tensor.Tensor[float64], error)

	// NeuronCount returns the width of the layer's output.
	NeuronCount() int

	// ParameterCount returns the number of trainable scalar parameters.
	ParameterCount() int

	// Kind returns a short layer-type name for summaries, e.g. "Dense".
	Kind() string

	// Describe returns a one-line property description for summaries.
	Describe() string

	// CloneLayer returns a deep copy of the layer, parameters and cached
	// activations included. Duplicating a network is always an explicit deep
	// clone; layers are never aliased between networks.
	CloneLayer() Layer
}
