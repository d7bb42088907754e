// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"

	"github.com/tensile-ml/tensile/internal/tensor"
)

// clampEpsilon bounds predictions away from 0 and 1 before taking logs.
const clampEpsilon = 1e-12

// Loss reduces a (truth, prediction) tensor pair to a scalar loss, and
// exposes the loss gradient with respect to the predictions.
type Loss interface {
	Loss(yTrue, yPred *tensor.Tensor[float64]) (float64, error)
	Derivative(yTrue, yPred *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)
	Name() string
}

// LossKind selects a loss function.
type LossKind int

// Supported loss functions.
const (
	MeanSquaredError LossKind = iota
	BinaryCrossEntropy
	CategoricalCrossEntropy
	SparseCrossEntropy
)

// NewLoss returns the Loss for kind.
func NewLoss(kind LossKind) (Loss, error) {
	switch kind {
	case MeanSquaredError:
		return mseLoss{}, nil
	case BinaryCrossEntropy:
		return bceLoss{}, nil
	case CategoricalCrossEntropy:
		return cceLoss{}, nil
	case SparseCrossEntropy:
		return sparseLoss{}, nil
	default:
		return nil, fmt.Errorf("unknown loss kind %d", int(kind))
	}
}

// validateDense checks the shared contract of dense losses: ranks within
// {0, 1, 2} and identical shapes.
func validateDense(op string, yTrue, yPred *tensor.Tensor[float64]) error {
	if yPred.Rank() > 2 {
		return &tensor.RankError{Op: op, Rank: yPred.Rank(), Want: 2}
	}
	if !yTrue.Shape().Equal(yPred.Shape()) {
		return &tensor.ShapeError{Op: op, A: yTrue.Shape().Clone(), B: yPred.Shape().Clone(),
			Reason: "do not match"}
	}
	return nil
}

// clamp bounds p to [clampEpsilon, 1-clampEpsilon] so log never sees 0 or 1.
func clamp(p float64) float64 {
	if p < clampEpsilon {
		return clampEpsilon
	}
	if p > 1-clampEpsilon {
		return 1 - clampEpsilon
	}
	return p
}

// mseLoss is mean squared error: mean((pred - true)^2).
type mseLoss struct{}

func (mseLoss) Name() string { return "mean_squared_error" }

func (mseLoss) Loss(yTrue, yPred *tensor.Tensor[float64]) (float64, error) {
	if err := validateDense("MeanSquaredError", yTrue, yPred); err != nil {
		return 0, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	var sum float64
	for i, p := range pred {
		d := p - truth[i]
		sum += d * d
	}
	return sum / float64(len(pred)), nil
}

func (mseLoss) Derivative(yTrue, yPred *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if err := validateDense("MeanSquaredError", yTrue, yPred); err != nil {
		return nil, err
	}
	n := float64(yPred.NumElements())
	diff, err := yPred.Sub(yTrue)
	if err != nil {
		return nil, err
	}
	return diff.MulScalar(2 / n), nil
}

// bceLoss is binary cross-entropy with predictions clamped away from {0, 1}.
type bceLoss struct{}

func (bceLoss) Name() string { return "binary_cross_entropy" }

func (bceLoss) Loss(yTrue, yPred *tensor.Tensor[float64]) (float64, error) {
	if err := validateDense("BinaryCrossEntropy", yTrue, yPred); err != nil {
		return 0, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	var sum float64
	for i, p := range pred {
		p = clamp(p)
		t := truth[i]
		sum -= t*math.Log(p) + (1-t)*math.Log(1-p)
	}
	return sum / float64(len(pred)), nil
}

func (bceLoss) Derivative(yTrue, yPred *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if err := validateDense("BinaryCrossEntropy", yTrue, yPred); err != nil {
		return nil, err
	}
	n := float64(yPred.NumElements())
	truth, pred := yTrue.Data(), yPred.Data()
	return tensor.FromFunc(yPred.Shape(), func(i int) float64 {
		p := clamp(pred[i])
		t := truth[i]
		return (-t/p + (1-t)/(1-p)) / n
	})
}

// cceLoss is categorical cross-entropy against one-hot truth rows:
// -ln(pred) at the positive-class index, averaged over samples.
type cceLoss struct{}

func (cceLoss) Name() string { return "categorical_cross_entropy" }

func (cceLoss) Loss(yTrue, yPred *tensor.Tensor[float64]) (float64, error) {
	if err := validateDense("CategoricalCrossEntropy", yTrue, yPred); err != nil {
		return 0, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	samples := sampleCount(yPred)
	var sum float64
	for i, t := range truth {
		if t != 0 {
			sum -= t * math.Log(clamp(pred[i]))
		}
	}
	return sum / float64(samples), nil
}

func (cceLoss) Derivative(yTrue, yPred *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if err := validateDense("CategoricalCrossEntropy", yTrue, yPred); err != nil {
		return nil, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	samples := float64(sampleCount(yPred))
	return tensor.FromFunc(yPred.Shape(), func(i int) float64 {
		return -truth[i] / clamp(pred[i]) / samples
	})
}

// sparseLoss is categorical cross-entropy with class-index truth values, one
// rank lower than the predictions.
type sparseLoss struct{}

func (sparseLoss) Name() string { return "sparse_cross_entropy" }

// validateSparse checks the sparse contract: yTrue holds class indices and is
// one rank below yPred, with matching leading dimensions.
func validateSparse(yTrue, yPred *tensor.Tensor[float64]) (samples, classes int, err error) {
	const op = "SparseCrossEntropy"
	if yPred.Rank() < 1 || yPred.Rank() > 2 {
		return 0, 0, &tensor.RankError{Op: op, Rank: yPred.Rank(), Want: 2}
	}
	if yTrue.Rank() != yPred.Rank()-1 {
		return 0, 0, &tensor.RankError{Op: op, Rank: yTrue.Rank(), Want: yPred.Rank() - 1}
	}
	if yPred.Rank() == 1 {
		return 1, yPred.Shape().Back(), nil
	}
	if yTrue.Shape().Front() != yPred.Shape().Front() {
		return 0, 0, &tensor.ShapeError{Op: op, A: yTrue.Shape().Clone(), B: yPred.Shape().Clone(),
			Reason: "disagree on the sample count"}
	}
	return yPred.Shape().Front(), yPred.Shape().Back(), nil
}

func (sparseLoss) Loss(yTrue, yPred *tensor.Tensor[float64]) (float64, error) {
	samples, classes, err := validateSparse(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	var sum float64
	for s := 0; s < samples; s++ {
		class := int(truth[s])
		if class < 0 || class >= classes {
			return 0, &tensor.IndexError{Op: "SparseCrossEntropy", Index: class, Axis: -1, Limit: classes}
		}
		sum -= math.Log(clamp(pred[s*classes+class]))
	}
	return sum / float64(samples), nil
}

func (sparseLoss) Derivative(yTrue, yPred *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	samples, classes, err := validateSparse(yTrue, yPred)
	if err != nil {
		return nil, err
	}
	truth, pred := yTrue.Data(), yPred.Data()
	grad, err := tensor.Zeros[float64](yPred.Shape())
	if err != nil {
		return nil, err
	}
	data := grad.Data()
	for s := 0; s < samples; s++ {
		class := int(truth[s])
		if class < 0 || class >= classes {
			return nil, &tensor.IndexError{Op: "SparseCrossEntropy", Index: class, Axis: -1, Limit: classes}
		}
		i := s*classes + class
		data[i] = -1 / clamp(pred[i]) / float64(samples)
	}
	return grad, nil
}

// sampleCount returns the leading dimension of a rank-2 tensor, or 1 for
// lower ranks: losses average per sample, not per element.
func sampleCount(t *tensor.Tensor[float64]) int {
	if t.Rank() == 2 {
		return t.Shape().Front()
	}
	return 1
}
