// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/nn"
)

// captureOptimizer records gradients without mutating parameters, so tests
// can inspect what a layer computed.
type captureOptimizer struct {
	grads []*tensor.Tensor[float64]
}

func (c *captureOptimizer) Update(_, grad *tensor.Tensor[float64]) error {
	c.grads = append(c.grads, grad.Clone())
	return nil
}

func (c *captureOptimizer) Advance() {}
func (c *captureOptimizer) Reset()   { c.grads = nil }

func TestDenseLayerInit(t *testing.T) {
	layer, err := nn.NewDenseLayer(3, 2, 1)
	require.NoError(t, err)

	assert.True(t, layer.Weights().Shape().Equal(tensor.Shape{3, 2}))
	assert.True(t, layer.Biases().Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, 3*2+2, layer.ParameterCount())
	assert.Equal(t, 2, layer.NeuronCount())
	assert.Equal(t, "Dense", layer.Kind())

	for _, w := range layer.Weights().Data() {
		assert.GreaterOrEqual(t, w, -1.0)
		assert.Less(t, w, 1.0)
	}
	// Biases start at machine epsilon, not zero.
	for _, b := range layer.Biases().Data() {
		assert.NotZero(t, b)
		assert.InDelta(t, 0, b, 1e-15)
	}
}

func TestDenseLayerRejectsBadSizes(t *testing.T) {
	_, err := nn.NewDenseLayer(0, 2, 1)
	assert.Error(t, err)
	_, err = nn.NewDenseLayer(2, -1, 1)
	assert.Error(t, err)
}

func TestDenseLayerForward(t *testing.T) {
	layer, err := nn.NewDenseLayer(2, 2, 1)
	require.NoError(t, err)
	copy(layer.Weights().Data(), []float64{1, 2, 3, 4})
	copy(layer.Biases().Data(), []float64{10, 20})

	input, err := tensor.FromSlice([]float64{1, 1}, tensor.Shape{1, 2})
	require.NoError(t, err)

	out, err := layer.Forward(input)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{1, 2}))
	assert.InDelta(t, 14, out.Data()[0], 1e-12) // 1*1 + 1*3 + 10
	assert.InDelta(t, 26, out.Data()[1], 1e-12) // 1*2 + 1*4 + 20
}

func TestDenseLayerBackwardAnalytic(t *testing.T) {
	layer, err := nn.NewDenseLayer(2, 2, 1)
	require.NoError(t, err)
	copy(layer.Weights().Data(), []float64{1, 2, 3, 4})
	copy(layer.Biases().Data(), []float64{0, 0})

	input, err := tensor.FromSlice([]float64{
		1, 2,
		3, 4,
	}, tensor.Shape{2, 2})
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)

	upstream, err := tensor.FromSlice([]float64{
		1, 0,
		0, 1,
	}, tensor.Shape{2, 2})
	require.NoError(t, err)

	opt := &captureOptimizer{}
	downstream, err := layer.Backward(upstream, opt)
	require.NoError(t, err)

	require.Len(t, opt.grads, 2)
	// weightsGrad = inputᵀ @ upstream = [[1 3] [2 4]].
	assert.Equal(t, []float64{1, 3, 2, 4}, opt.grads[0].Data())
	// biasesGrad = column sums of upstream.
	assert.Equal(t, []float64{1, 1}, opt.grads[1].Data())
	// downstream = upstream @ weightsᵀ.
	assert.True(t, downstream.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{1, 3, 2, 4}, downstream.Data())
}

func TestDenseLayerBackwardBeforeForward(t *testing.T) {
	layer, err := nn.NewDenseLayer(2, 2, 1)
	require.NoError(t, err)
	up, err := tensor.Zeros[float64](tensor.Shape{1, 2})
	require.NoError(t, err)
	_, err = layer.Backward(up, &captureOptimizer{})
	assert.Error(t, err)
}

// Finite-difference gradient check: perturbing one weight and measuring the
// change in sum(upstream ⊙ forward(x)) must agree with the analytically
// computed weights gradient.
func TestDenseLayerGradientCheck(t *testing.T) {
	const (
		inputSize = 3
		neurons   = 2
		samples   = 4
		h         = 1e-6
	)
	layer, err := nn.NewDenseLayer(inputSize, neurons, 11)
	require.NoError(t, err)

	input, err := tensor.Random[float64](tensor.Shape{samples, inputSize}, 12, -1, 1)
	require.NoError(t, err)
	upstream, err := tensor.Random[float64](tensor.Shape{samples, neurons}, 13, -1, 1)
	require.NoError(t, err)

	_, err = layer.Forward(input)
	require.NoError(t, err)
	opt := &captureOptimizer{}
	_, err = layer.Backward(upstream, opt)
	require.NoError(t, err)
	require.Len(t, opt.grads, 2)
	analytic := opt.grads[0]

	// loss(W) = sum(upstream ⊙ (x @ W + b)), whose dW is exactly the
	// layer's weights gradient.
	loss := func() float64 {
		out, ferr := layer.Forward(input)
		require.NoError(t, ferr)
		prod, merr := out.Mul(upstream)
		require.NoError(t, merr)
		var sum float64
		for _, v := range prod.Data() {
			sum += v
		}
		return sum
	}

	weights := layer.Weights().Data()
	for i := range weights {
		orig := weights[i]
		weights[i] = orig + h
		plus := loss()
		weights[i] = orig - h
		minus := loss()
		weights[i] = orig

		numeric := (plus - minus) / (2 * h)
		assert.InDelta(t, analytic.Data()[i], numeric, 1e-5,
			"weight %d: analytic %v vs numeric %v", i, analytic.Data()[i], numeric)
	}
}
