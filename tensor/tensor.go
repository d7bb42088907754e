// Copyright 2026 The Tensile Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for Tensile's tensors.
//
// It re-exports the internal implementation so applications outside this
// module can build on the same types the nn and optim packages use:
//
//	x, _ := tensor.Zeros[float64](tensor.Shape{2, 3})
//	y, _ := tensor.Ones[float64](tensor.Shape{2, 3})
//	z, _ := x.Add(y)
package tensor

import (
	"github.com/tensile-ml/tensile/internal/tensor"
)

// Numeric is the constraint on tensor element types.
type Numeric = tensor.Numeric

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3-d tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic N-dimensional array in row-major order.
type Tensor[T Numeric] = tensor.Tensor[T]

// CyclicIndex is a modular index over a fixed-length buffer, used to replay
// the smaller operand of a broadcast operation.
type CyclicIndex = tensor.CyclicIndex

// Error types reported by tensor operations.
type (
	ShapeError = tensor.ShapeError
	RankError  = tensor.RankError
	IndexError = tensor.IndexError
	ValueError = tensor.ValueError
)

// NewShape builds a validated shape from dimensions.
func NewShape(dims ...int) (Shape, error) {
	return tensor.NewShape(dims...)
}

// NewCyclicIndex creates a cyclic index over length elements.
func NewCyclicIndex(length int) CyclicIndex {
	return tensor.NewCyclicIndex(length)
}

// New creates an uninitialized tensor with the given dimensions.
func New[T Numeric](dims ...int) (*Tensor[T], error) {
	return tensor.New[T](dims...)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with value.
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full[T](shape, value)
}

// Random creates a tensor with seeded uniform values in [lo, hi).
func Random[T Numeric](shape Shape, seed int64, lo, hi float64) (*Tensor[T], error) {
	return tensor.Random[T](shape, seed, lo, hi)
}

// Arange creates a tensor whose elements step from start by step in flat
// order.
func Arange[T Numeric](shape Shape, start, step T) (*Tensor[T], error) {
	return tensor.Arange[T](shape, start, step)
}

// FromFunc creates a tensor whose element at flat index i is gen(i).
func FromFunc[T Numeric](shape Shape, gen func(i int) T) (*Tensor[T], error) {
	return tensor.FromFunc[T](shape, gen)
}

// FromSlice creates a tensor backed by a copy of data; len(data) must equal
// the shape's element count.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice[T](data, shape)
}

// Convert returns a copy of t with every element converted to U.
func Convert[U, T Numeric](t *Tensor[T]) *Tensor[U] {
	return tensor.Convert[U](t)
}
