// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: DenseLayer, ActivationLayer, SoftmaxLayer
//   - Activations: Identity, Sigmoid, Tanh, ReLU, LeakyReLU
//   - Loss functions: MSE, binary/categorical/sparse cross-entropy
//   - Network: an ordered layer stack with training support
//
// # Basic Usage
//
//	import (
//	    "github.com/tensile-ml/tensile/nn"
//	    "github.com/tensile-ml/tensile/optim"
//	)
//
//	func main() {
//	    hidden, _ := nn.NewDenseLayer(2, 4, seed)
//	    act, _ := nn.NewActivationLayer(nn.Tanh, 4)
//	    out, _ := nn.NewDenseLayer(4, 1, seed+1)
//	    net := nn.NewNetwork(hidden, act, out)
//
//	    loss, _ := nn.NewLoss(nn.MeanSquaredError)
//	    opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.5})
//	    for epoch := 0; epoch < 1000; epoch++ {
//	        net.TrainBatch(input, target, loss, opt)
//	    }
//	}
//
// # Training Semantics
//
// Forward caches each layer's input and output, so a Backward pass always
// refers to the most recent Forward on the same layer. Layers are owned
// exclusively by one Network; use Network.Clone for an independent copy.
package nn
