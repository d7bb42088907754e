package tensor

import "github.com/tensile-ml/tensile/internal/parallel"

// MatMul multiplies two rank-2 tensors: (M, K) @ (K, N) -> (M, N), zero-
// initialized and accumulated with the schoolbook triple loop. There is no
// tiling; correctness and the parallel decomposition are the design concerns
// here, not cache behavior.
//
// Rows of the result are partitioned into disjoint contiguous ranges across
// goroutines (see parallel.ForRows); both inputs are read-only during the
// parallel section, so no synchronization is needed. Passing multithreading
// as false forces the serial path, which small multiplies and correctness
// baselines use.
func (t *Tensor[T]) MatMul(other *Tensor[T], multithreading bool) (*Tensor[T], error) {
	if t.shape.Rank() != 2 {
		return nil, &RankError{Op: "Tensor.MatMul", Rank: t.shape.Rank(), Want: 2}
	}
	if other.shape.Rank() != 2 {
		return nil, &RankError{Op: "Tensor.MatMul", Rank: other.shape.Rank(), Want: 2}
	}
	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, &ShapeError{Op: "Tensor.MatMul", A: t.shape.Clone(), B: other.shape.Clone(),
			Reason: "are not compatible for multiplication"}
	}

	out := newTensor[T](Shape{m, n})

	// The loop bounds are validated above, so the workers index the flat
	// buffers directly with checking off. Restore the flags on return.
	defer t.SetBoundsCheck(t.SetBoundsCheck(false))
	defer other.SetBoundsCheck(other.SetBoundsCheck(false))
	a, b, c := t.data, other.data, out.data

	parallel.ForRows(m, !multithreading, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for x := 0; x < k; x++ {
					sum += a[i*k+x] * b[x*n+j]
				}
				c[i*n+j] = sum
			}
		}
	})

	return out, nil
}
