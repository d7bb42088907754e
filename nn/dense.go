// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"

	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/optim"
)

// biasEpsilon initializes biases to the float64 machine epsilon rather than
// zero, so no activation derivative sees a perfectly-zero initial state.
var biasEpsilon = math.Nextafter(1, 2) - 1

// DenseLayer is a fully connected layer computing output = input @ W + b.
//
//   - weights: (inputSize, neurons), initialized uniformly in [-1, 1)
//   - biases:  (neurons,), initialized to machine epsilon
//
// The layer owns its parameter tensors exclusively and caches the most recent
// forward input and output for the backward pass.
type DenseLayer struct {
	inputSize int
	neurons   int
	weights   *tensor.Tensor[float64]
	biases    *tensor.Tensor[float64]

	input  *tensor.Tensor[float64]
	output *tensor.Tensor[float64]
}

// NewDenseLayer creates a dense layer with seeded random weight
// initialization.
func NewDenseLayer(inputSize, neurons int, seed int64) (*DenseLayer, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("dense layer: input size must be > 0, got %d", inputSize)
	}
	if neurons <= 0 {
		return nil, fmt.Errorf("dense layer: neuron count must be > 0, got %d", neurons)
	}
	weights, err := tensor.Random[float64](tensor.Shape{inputSize, neurons}, seed, -1, 1)
	if err != nil {
		return nil, err
	}
	biases, err := tensor.Full[float64](tensor.Shape{neurons}, biasEpsilon)
	if err != nil {
		return nil, err
	}
	return &DenseLayer{
		inputSize: inputSize,
		neurons:   neurons,
		weights:   weights,
		biases:    biases,
	}, nil
}

// Forward computes input @ W + b (the bias broadcasts across rows) and caches
// input and output.
//
// Input shape: (samples, inputSize). Output shape: (samples, neurons).
func (l *DenseLayer) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	product, err := input.MatMul(l.weights, true)
	if err != nil {
		return nil, err
	}
	output, err := product.Add(l.biases)
	if err != nil {
		return nil, err
	}
	l.input = input
	l.output = output
	return output, nil
}

// Backward consumes the upstream gradient (samples, neurons), updates weights
// and biases through the optimizer, and returns the downstream gradient
// (samples, inputSize):
//
//	weightsGrad = cachedInputᵀ @ upstream
//	biasesGrad  = column sums of upstream
//	downstream  = upstream @ weightsᵀ
//
// The downstream gradient is computed against the weights as they were
// before this call's update.
func (l *DenseLayer) Backward(upstream *tensor.Tensor[float64], opt optim.Optimizer) (*tensor.Tensor[float64], error) {
	if l.input == nil {
		return nil, fmt.Errorf("dense layer: Backward called before Forward")
	}

	inputT, err := l.input.Transpose()
	if err != nil {
		return nil, err
	}
	weightsGrad, err := inputT.MatMul(upstream, true)
	if err != nil {
		return nil, err
	}
	biasesGrad, err := upstream.SumDim(0)
	if err != nil {
		return nil, err
	}

	weightsT, err := l.weights.Transpose()
	if err != nil {
		return nil, err
	}
	downstream, err := upstream.MatMul(weightsT, true)
	if err != nil {
		return nil, err
	}

	if err := opt.Update(l.weights, weightsGrad); err != nil {
		return nil, err
	}
	if err := opt.Update(l.biases, biasesGrad); err != nil {
		return nil, err
	}
	return downstream, nil
}

// Weights returns the layer's weight tensor. Mutations are visible to the
// layer.
func (l *DenseLayer) Weights() *tensor.Tensor[float64] { return l.weights }

// Biases returns the layer's bias tensor. Mutations are visible to the layer.
func (l *DenseLayer) Biases() *tensor.Tensor[float64] { return l.biases }

// InputSize returns the expected input width.
func (l *DenseLayer) InputSize() int { return l.inputSize }

// NeuronCount returns the output width.
func (l *DenseLayer) NeuronCount() int { return l.neurons }

// ParameterCount returns the number of trainable scalars: weights plus
// biases.
func (l *DenseLayer) ParameterCount() int {
	return l.weights.NumElements() + l.biases.NumElements()
}

// Kind returns "Dense".
func (l *DenseLayer) Kind() string { return "Dense" }

// Describe returns the layer dimensions.
func (l *DenseLayer) Describe() string {
	return fmt.Sprintf("in=%d out=%d", l.inputSize, l.neurons)
}

// CloneLayer returns a deep copy of the layer including parameters and
// caches.
func (l *DenseLayer) CloneLayer() Layer {
	out := &DenseLayer{
		inputSize: l.inputSize,
		neurons:   l.neurons,
		weights:   l.weights.Clone(),
		biases:    l.biases.Clone(),
	}
	if l.input != nil {
		out.input = l.input.Clone()
	}
	if l.output != nil {
		out.output = l.output.Clone()
	}
	return out
}
