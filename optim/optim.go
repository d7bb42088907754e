// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/tensile-ml/tensile/internal/tensor"
)

// Optimizer mutates a parameter tensor in place given its gradient. Advance
// is called once per completed backward pass over the whole network; Reset
// restores the optimizer to its initial state.
type Optimizer interface {
	Update(params, grad *tensor.Tensor[float64]) error
	Advance()
	Reset()
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR    float64 // Initial learning rate (default: 0.01).
	Decay float64 // Learning-rate decay per iteration (default: 0).
}

// GradientDescent implements plain gradient descent with a decaying learning
// rate:
//
//	param -= alpha * gradient
//	alpha  = lr / (1 + decay * iterations)
type GradientDescent struct {
	initialLR  float64
	alpha      float64
	decay      float64
	iterations int
}

// NewGradientDescent creates a GradientDescent optimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &GradientDescent{
		initialLR: config.LR,
		alpha:     config.LR,
		decay:     config.Decay,
	}
}

// Update applies params -= alpha * grad elementwise in place. The gradient
// must have the parameter tensor's exact shape.
func (g *GradientDescent) Update(params, grad *tensor.Tensor[float64]) error {
	if !params.Shape().Equal(grad.Shape()) {
		return &tensor.ShapeError{Op: "GradientDescent.Update",
			A: params.Shape().Clone(), B: grad.Shape().Clone(),
			Reason: "do not match"}
	}
	return params.SubAssign(grad.MulScalar(g.alpha))
}

// Advance increments the iteration counter and recomputes the decayed
// learning rate.
func (g *GradientDescent) Advance() {
	g.iterations++
	g.alpha = g.initialLR / (1 + g.decay*float64(g.iterations))
}

// Reset zeroes the iteration counter and restores the initial learning rate.
func (g *GradientDescent) Reset() {
	g.iterations = 0
	g.alpha = g.initialLR
}

// Alpha returns the current (decayed) learning rate.
func (g *GradientDescent) Alpha() float64 {
	return g.alpha
}

// Iterations returns the number of completed Advance calls since the last
// Reset.
func (g *GradientDescent) Iterations() int {
	return g.iterations
}
