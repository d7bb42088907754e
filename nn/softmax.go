// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/optim"
)

// SoftmaxLayer normalizes each sample row of a (samples, neurons) matrix into
// a probability distribution: out_i = exp(x_i) / sum_j exp(x_j).
//
// The row maximum is subtracted before exponentiation. That leaves the
// distribution unchanged and keeps exp from overflowing for large inputs.
type SoftmaxLayer struct {
	neurons int

	input  *tensor.Tensor[float64]
	output *tensor.Tensor[float64]
}

// NewSoftmaxLayer creates a softmax layer of the given width.
func NewSoftmaxLayer(neurons int) (*SoftmaxLayer, error) {
	if neurons <= 0 {
		return nil, fmt.Errorf("softmax layer: neuron count must be > 0, got %d", neurons)
	}
	return &SoftmaxLayer{neurons: neurons}, nil
}

// Forward computes the row-wise softmax and caches input and output. The
// input must be rank 2.
func (l *SoftmaxLayer) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if input.Rank() != 2 {
		return nil, &tensor.RankError{Op: "SoftmaxLayer.Forward", Rank: input.Rank(), Want: 2}
	}
	samples, width, err := input.Shape().Dims2()
	if err != nil {
		return nil, err
	}
	output := input.Clone()
	data := output.Data()
	for s := 0; s < samples; s++ {
		row := data[s*width : (s+1)*width]
		shift := floats.Max(row)
		for i, v := range row {
			row[i] = math.Exp(v - shift)
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	l.input = input
	l.output = output
	return output, nil
}

// Backward builds, for each sample row, the (neurons, neurons) Jacobian
//
//	J[i][j] = out_i * (delta_ij - out_j)
//
// and returns the downstream gradient whose row s is upstream_row_s @ J_s.
func (l *SoftmaxLayer) Backward(upstream *tensor.Tensor[float64], _ optim.Optimizer) (*tensor.Tensor[float64], error) {
	if l.output == nil {
		return nil, fmt.Errorf("softmax layer: Backward called before Forward")
	}
	samples, width, err := l.output.Shape().Dims2()
	if err != nil {
		return nil, err
	}
	if !upstream.Shape().Equal(l.output.Shape()) {
		return nil, fmt.Errorf("softmax layer: upstream gradient shape %v does not match output shape %v",
			upstream.Shape(), l.output.Shape())
	}

	downstream, err := tensor.Zeros[float64](l.output.Shape())
	if err != nil {
		return nil, err
	}
	out := l.output.Data()
	up := upstream.Data()
	down := downstream.Data()

	jacobian := make([]float64, width*width)
	for s := 0; s < samples; s++ {
		row := out[s*width : (s+1)*width]
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				if i == j {
					jacobian[i*width+j] = row[i] * (1 - row[j])
				} else {
					jacobian[i*width+j] = -row[i] * row[j]
				}
			}
		}
		// downstream_row = upstream_row @ J (1×n times n×n).
		for j := 0; j < width; j++ {
			var sum float64
			for i := 0; i < width; i++ {
				sum += up[s*width+i] * jacobian[i*width+j]
			}
			down[s*width+j] = sum
		}
	}
	return downstream, nil
}

// NeuronCount returns the layer width.
func (l *SoftmaxLayer) NeuronCount() int { return l.neurons }

// ParameterCount returns 0; softmax is not trainable.
func (l *SoftmaxLayer) ParameterCount() int { return 0 }

// Kind returns "Softmax".
func (l *SoftmaxLayer) Kind() string { return "Softmax" }

// Describe returns the layer width.
func (l *SoftmaxLayer) Describe() string {
	return fmt.Sprintf("neurons=%d", l.neurons)
}

// CloneLayer returns a deep copy of the layer including cached activations.
func (l *SoftmaxLayer) CloneLayer() Layer {
	out := &SoftmaxLayer{neurons: l.neurons}
	if l.input != nil {
		out.input = l.input.Clone()
	}
	if l.output != nil {
		out.output = l.output.Clone()
	}
	return out
}
