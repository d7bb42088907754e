// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tensile-ml/tensile/internal/tensor"
	"github.com/tensile-ml/tensile/optim"
)

// Network is an ordered list of layers with exclusive ownership: a Network
// never shares layer objects with another Network. Use Clone for an explicit
// deep copy.
type Network struct {
	layers []Layer
}

// NewNetwork creates a network from layers, in forward order.
func NewNetwork(layers ...Layer) *Network {
	return &Network{layers: layers}
}

// Add appends a layer to the end of the network.
func (n *Network) Add(layer Layer) {
	n.layers = append(n.layers, layer)
}

// Layers returns the network's layers in forward order.
func (n *Network) Layers() []Layer {
	return n.layers
}

// Forward runs the input through every layer in order.
func (n *Network) Forward(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	out := input
	var err error
	for i, layer := range n.layers {
		if out, err = layer.Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, layer.Kind(), err)
		}
	}
	return out, nil
}

// Predict is Forward under its inference-time name.
func (n *Network) Predict(input *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	return n.Forward(input)
}

// TrainBatch runs one optimization step on a batch: forward pass, loss,
// backward pass through every layer in reverse (updating parameters via opt),
// then opt.Advance. Returns the batch loss measured before the update.
func (n *Network) TrainBatch(input, target *tensor.Tensor[float64], loss Loss, opt optim.Optimizer) (float64, error) {
	output, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	value, err := loss.Loss(target, output)
	if err != nil {
		return 0, err
	}
	grad, err := loss.Derivative(target, output)
	if err != nil {
		return 0, err
	}
	for i := len(n.layers) - 1; i >= 0; i-- {
		if grad, err = n.layers[i].Backward(grad, opt); err != nil {
			return 0, fmt.Errorf("layer %d (%s): %w", i, n.layers[i].Kind(), err)
		}
	}
	opt.Advance()
	return value, nil
}

// ParameterCount returns the total number of trainable scalars across all
// layers.
func (n *Network) ParameterCount() int {
	total := 0
	for _, layer := range n.layers {
		total += layer.ParameterCount()
	}
	return total
}

// Clone returns a deep copy of the network; no layer state is shared with
// the receiver.
func (n *Network) Clone() *Network {
	layers := make([]Layer, len(n.layers))
	for i, layer := range n.layers {
		layers[i] = layer.CloneLayer()
	}
	return &Network{layers: layers}
}

// Summary renders a per-layer table of kind, neuron count, parameter count,
// and properties, followed by the trainable-parameter total.
func (n *Network) Summary() string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"#", "Layer", "Neurons", "Params", "Properties"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, layer := range n.layers {
		table.Append([]string{
			strconv.Itoa(i),
			layer.Kind(),
			strconv.Itoa(layer.NeuronCount()),
			strconv.Itoa(layer.ParameterCount()),
			layer.Describe(),
		})
	}
	table.Render()
	fmt.Fprintf(&b, "Trainable parameters: %d\n", n.ParameterCount())
	return b.String()
}
