package tensor

// Reshape swaps the tensor's shape in place without touching the buffer. The
// new shape must be equivalent (same element count) to the current one.
func (t *Tensor[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if !t.shape.IsEquivalent(shape) {
		return &ShapeError{Op: "Tensor.Reshape", A: t.shape.Clone(), B: shape.Clone(),
			Reason: "are not equivalent (element counts differ)"}
	}
	t.shape = shape.Clone()
	return nil
}

// ReshapeRank changes the tensor's rank in place: collapsed axes fold into
// the first or last surviving axis, new axes of size 1 appear at the front or
// back, per modifyFront. See Shape.Resize.
func (t *Tensor[T]) ReshapeRank(newRank int, modifyFront bool) error {
	resized, err := t.shape.Resize(newRank, modifyFront)
	if err != nil {
		return err
	}
	t.shape = resized
	return nil
}

// Flatten collapses the tensor to rank 1 in place.
func (t *Tensor[T]) Flatten() error {
	return t.ReshapeRank(1, false)
}

// Transpose returns the transpose of a rank-2 tensor.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	if t.shape.Rank() != 2 {
		return nil, &RankError{Op: "Tensor.Transpose", Rank: t.shape.Rank(), Want: 2}
	}
	rows, cols := t.shape[0], t.shape[1]
	out := newTensor[T](Shape{cols, rows})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out, nil
}

// SumDim reduces a rank-2 tensor along dim: dim 0 sums over rows and yields
// the column totals with shape (cols,), dim 1 sums over columns and yields
// the row totals with shape (rows,).
func (t *Tensor[T]) SumDim(dim int) (*Tensor[T], error) {
	if t.shape.Rank() != 2 {
		return nil, &RankError{Op: "Tensor.SumDim", Rank: t.shape.Rank(), Want: 2}
	}
	if dim != 0 && dim != 1 {
		return nil, &ValueError{Op: "Tensor.SumDim", Value: dim, Reason: "dim must be 0 or 1 for a rank-2 tensor"}
	}
	rows, cols := t.shape[0], t.shape[1]
	if dim == 0 {
		out := newTensor[T](Shape{cols})
		for r := 0; r < rows; r++ {
			base := r * cols
			for c := 0; c < cols; c++ {
				out.data[c] += t.data[base+c]
			}
		}
		return out, nil
	}
	out := newTensor[T](Shape{rows})
	for r := 0; r < rows; r++ {
		base := r * cols
		var sum T
		for c := 0; c < cols; c++ {
			sum += t.data[base+c]
		}
		out.data[r] = sum
	}
	return out, nil
}
