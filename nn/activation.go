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

// Activation is a stateless scalar function with a derivative, applied
// elementwise by ActivationLayer.
type Activation interface {
	Apply(x float64) float64
	Derivative(x float64) float64
	Name() string
}

// ActivationKind selects an activation function.
type ActivationKind int

// Supported activation functions.
const (
	Identity ActivationKind = iota
	Sigmoid
	Tanh
	ReLU
	LeakyReLU
)

// String returns the activation's display name.
func (k ActivationKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case LeakyReLU:
		return "leaky_relu"
	default:
		return "unknown"
	}
}

// NewActivation returns the Activation for kind. Each function is its own
// small implementation selected here by tag; no heap-of-virtuals wrapper.
func NewActivation(kind ActivationKind) (Activation, error) {
	switch kind {
	case Identity:
		return identity{}, nil
	case Sigmoid:
		return sigmoid{}, nil
	case Tanh:
		return tanh{}, nil
	case ReLU:
		return relu{}, nil
	case LeakyReLU:
		return leakyReLU{slope: 0.01}, nil
	default:
		return nil, fmt.Errorf("unknown activation kind %d", int(kind))
	}
}

type identity struct{}

func (identity) Apply(x float64) float64    { return x }
func (identity) Derivative(float64) float64 { return 1 }
func (identity) Name() string               { return Identity.String() }

type sigmoid struct{}

func (sigmoid) Apply(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
func (s sigmoid) Derivative(x float64) float64 {
	y := s.Apply(x)
	return y * (1 - y)
}
func (sigmoid) Name() string { return Sigmoid.String() }

type tanh struct{}

func (tanh) Apply(x float64) float64 { return math.Tanh(x) }
func (tanh) Derivative(x float64) float64 {
	y := math.Tanh(x)
	return 1 - y*y
}
func (tanh) Name() string { return Tanh.String() }

type relu struct{}

func (relu) Apply(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}
func (relu) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}
func (relu) Name() string { return ReLU.String() }

type leakyReLU struct {
	slope float64
}

func (l leakyReLU) Apply(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.slope * x
}
func (l leakyReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return l.slope
}
func (leakyReLU) Name() string { return LeakyReLU.String() }

// ActivationLayer applies a scalar activation function elementwise. It has no
// trainable parameters and preserves the input shape, so its neuron count
// equals its input size.
type ActivationLayer struct {
	fn      Activation
	neurons int

	input  *tensor.Tensor[float64]
	output *tensor.Tensor[float64]
}

// NewActivationLayer creates an activation layer of the given width.
func NewActivationLayer(kind ActivationKind, neurons int) (*ActivationLayer, error) {
	if neurons <= 0 {
		return nil, fmt.Errorf("activation layer: neuron count must be > 0, got %d", neurons)
	}
	fn, err := NewActivation(kind)
	if err != nil {
		return nil, err
	}
	return &ActivationLayer{fn: fn, neurons: neurons}, nil
}

// Forward applies the activation elementwise and caches input and output.
func (l *ActivationLayer) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	l.input = input
	l.output = input.Apply(l.fn.Apply)
	return l.output, nil
}

// Backward applies the chain rule: the downstream gradient is the activation
// derivative at the cached input, Hadamard-multiplied by the upstream
// gradient.
func (l *ActivationLayer) Backward(upstream *tensor.Tensor[float64], _ optim.Optimizer) (*tensor.Tensor[float64], error) {
	if l.input == nil {
		return nil, fmt.Errorf("activation layer: Backward called before Forward")
	}
	return l.input.Apply(l.fn.Derivative).Mul(upstream)
}

// NeuronCount returns the layer width.
func (l *ActivationLayer) NeuronCount() int { return l.neurons }

// ParameterCount returns 0; activations are not trainable.
func (l *ActivationLayer) ParameterCount() int { return 0 }

// Kind returns "Activation".
func (l *ActivationLayer) Kind() string { return "Activation" }

// Describe returns the wrapped function's name.
func (l *ActivationLayer) Describe() string {
	return fmt.Sprintf("function=%s", l.fn.Name())
}

// CloneLayer returns a deep copy of the layer including cached activations.
func (l *ActivationLayer) CloneLayer() Layer {
	out := &ActivationLayer{fn: l.fn, neurons: l.neurons}
	if l.input != nil {
		out.input = l.input.Clone()
	}
	if l.output != nil {
		out.output = l.output.Clone()
	}
	return out
}
