// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural
// networks.
//
// # Overview
//
// This package contains:
//   - GradientDescent: plain gradient descent with inverse-time decay
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	opt := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:    0.1,
//	    Decay: 1e-4,
//	})
//
//	// Inside a training step: layers call Update once per parameter
//	// tensor, then the network calls Advance once per batch.
//	opt.Update(weights, weightsGrad)
//	opt.Advance()
//
// The effective learning rate after n Advance calls is
// LR / (1 + Decay*n). Reset restores the initial rate.
package optim
