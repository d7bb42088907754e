// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/nn"
)

func TestActivationFunctions(t *testing.T) {
	tests := []struct {
		kind     nn.ActivationKind
		x        float64
		want     float64
		wantDeri float64
	}{
		{nn.Identity, 2.5, 2.5, 1},
		{nn.Sigmoid, 0, 0.5, 0.25},
		{nn.Tanh, 0, 0, 1},
		{nn.ReLU, 3, 3, 1},
		{nn.ReLU, -3, 0, 0},
		{nn.LeakyReLU, 2, 2, 1},
		{nn.LeakyReLU, -2, -0.02, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			fn, err := nn.NewActivation(tt.kind)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fn.Apply(tt.x), 1e-12)
			assert.InDelta(t, tt.wantDeri, fn.Derivative(tt.x), 1e-12)
			assert.Equal(t, tt.kind.String(), fn.Name())
		})
	}
}

// Every activation derivative must agree with a central finite difference.
func TestActivationDerivativesNumerically(t *testing.T) {
	const h = 1e-6
	kinds := []nn.ActivationKind{nn.Identity, nn.Sigmoid, nn.Tanh, nn.LeakyReLU}
	points := []float64{-2.1, -0.4, 0.3, 1.7}
	for _, kind := range kinds {
		fn, err := nn.NewActivation(kind)
		require.NoError(t, err)
		for _, x := range points {
			numeric := (fn.Apply(x+h) - fn.Apply(x-h)) / (2 * h)
			assert.InDelta(t, numeric, fn.Derivative(x), 1e-5, "%s at %v", fn.Name(), x)
		}
	}
}

func TestNewActivationUnknownKind(t *testing.T) {
	_, err := nn.NewActivation(nn.ActivationKind(99))
	assert.Error(t, err)
}

func TestActivationLayerForward(t *testing.T) {
	layer, err := nn.NewActivationLayer(nn.ReLU, 3)
	require.NoError(t, err)

	input, err := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{1, 3})
	require.NoError(t, err)
	out, err := layer.Forward(input)
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(input.Shape()))
	assert.Equal(t, []float64{0, 0, 2}, out.Data())
	assert.Equal(t, 3, layer.NeuronCount())
	assert.Equal(t, 0, layer.ParameterCount())
}

func TestActivationLayerBackwardChainRule(t *testing.T) {
	layer, err := nn.NewActivationLayer(nn.Sigmoid, 2)
	require.NoError(t, err)

	input, err := tensor.FromSlice([]float64{0.5, -1.5, 2.0, 0.0}, tensor.Shape{2, 2})
	require.NoError(t, err)
	_, err = layer.Forward(input)
	require.NoError(t, err)

	upstream, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	down, err := layer.Backward(upstream, nil)
	require.NoError(t, err)

	fn, err := nn.NewActivation(nn.Sigmoid)
	require.NoError(t, err)
	for i, x := range input.Data() {
		want := fn.Derivative(x) * upstream.Data()[i]
		assert.InDelta(t, want, down.Data()[i], 1e-12, "element %d", i)
	}
}

func TestActivationLayerBackwardBeforeForward(t *testing.T) {
	layer, err := nn.NewActivationLayer(nn.Tanh, 2)
	require.NoError(t, err)
	up, err := tensor.Zeros[float64](tensor.Shape{1, 2})
	require.NoError(t, err)
	_, err = layer.Backward(up, nil)
	assert.Error(t, err)
}

func TestActivationLayerRejectsBadWidth(t *testing.T) {
	_, err := nn.NewActivationLayer(nn.ReLU, 0)
	assert.Error(t, err)
}

func TestSigmoidSaturation(t *testing.T) {
	fn, err := nn.NewActivation(nn.Sigmoid)
	require.NoError(t, err)
	assert.InDelta(t, 1, fn.Apply(40), 1e-12)
	assert.InDelta(t, 0, fn.Apply(-40), 1e-12)
	assert.False(t, math.IsNaN(fn.Derivative(1000)))
}
