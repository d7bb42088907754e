package tensor

import "math"

// binary applies f elementwise across two tensors under the broadcast rule:
// the result takes the larger operand's shape, and the smaller operand's
// values replay cyclically every NumElements() of it. Operand order is
// preserved for non-commutative f.
func (t *Tensor[T]) binary(op string, other *Tensor[T], f func(a, b T) T) (*Tensor[T], error) {
	// Fast path: identical ranks iterate in lockstep with no cyclic wrap.
	if t.shape.Rank() == other.shape.Rank() {
		if !t.shape.Equal(other.shape) {
			return nil, &ShapeError{Op: op, A: t.shape.Clone(), B: other.shape.Clone(),
				Reason: "are not compatible for broadcasting"}
		}
		out := newTensor[T](t.shape.Clone())
		for i := range out.data {
			out.data[i] = f(t.data[i], other.data[i])
		}
		return out, nil
	}

	target, otherSmaller, err := broadcastTarget(op, t.shape, other.shape)
	if err != nil {
		return nil, err
	}
	out := newTensor[T](target.Clone())
	if otherSmaller {
		cyc := NewCyclicIndex(other.NumElements())
		for i := range out.data {
			out.data[i] = f(t.data[i], other.data[cyc.At(i)])
		}
	} else {
		cyc := NewCyclicIndex(t.NumElements())
		for i := range out.data {
			out.data[i] = f(t.data[cyc.At(i)], other.data[i])
		}
	}
	return out, nil
}

// binaryAssign applies f in place. The receiver must be the broadcast target,
// so other needs rank <= t's rank and matching trailing dimensions.
func (t *Tensor[T]) binaryAssign(op string, other *Tensor[T], f func(a, b T) T) error {
	if other.shape.Rank() > t.shape.Rank() {
		return &ShapeError{Op: op, A: t.shape.Clone(), B: other.shape.Clone(),
			Reason: "cannot broadcast a larger-rank operand onto the receiver"}
	}
	if t.shape.Rank() == other.shape.Rank() {
		if !t.shape.Equal(other.shape) {
			return &ShapeError{Op: op, A: t.shape.Clone(), B: other.shape.Clone(),
				Reason: "are not compatible for broadcasting"}
		}
		for i := range t.data {
			t.data[i] = f(t.data[i], other.data[i])
		}
		return nil
	}
	if _, _, err := broadcastTarget(op, t.shape, other.shape); err != nil {
		return err
	}
	cyc := NewCyclicIndex(other.NumElements())
	for i := range t.data {
		t.data[i] = f(t.data[i], other.data[cyc.At(i)])
	}
	return nil
}

// Add returns t + other under the broadcast rule.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("Tensor.Add", other, func(a, b T) T { return a + b })
}

// Sub returns t - other under the broadcast rule.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("Tensor.Sub", other, func(a, b T) T { return a - b })
}

// Mul returns the elementwise (Hadamard) product under the broadcast rule.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("Tensor.Mul", other, func(a, b T) T { return a * b })
}

// Div returns t / other under the broadcast rule.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("Tensor.Div", other, func(a, b T) T { return a / b })
}

// Mod returns the elementwise remainder under the broadcast rule, with
// floating-point remainder semantics for every element type.
func (t *Tensor[T]) Mod(other *Tensor[T]) (*Tensor[T], error) {
	return t.binary("Tensor.Mod", other, func(a, b T) T {
		return T(math.Mod(float64(a), float64(b)))
	})
}

// AddAssign adds other into t in place; other broadcasts onto t.
func (t *Tensor[T]) AddAssign(other *Tensor[T]) error {
	return t.binaryAssign("Tensor.AddAssign", other, func(a, b T) T { return a + b })
}

// SubAssign subtracts other from t in place; other broadcasts onto t.
func (t *Tensor[T]) SubAssign(other *Tensor[T]) error {
	return t.binaryAssign("Tensor.SubAssign", other, func(a, b T) T { return a - b })
}

// MulAssign multiplies t by other in place; other broadcasts onto t.
func (t *Tensor[T]) MulAssign(other *Tensor[T]) error {
	return t.binaryAssign("Tensor.MulAssign", other, func(a, b T) T { return a * b })
}

// DivAssign divides t by other in place; other broadcasts onto t.
func (t *Tensor[T]) DivAssign(other *Tensor[T]) error {
	return t.binaryAssign("Tensor.DivAssign", other, func(a, b T) T { return a / b })
}

// ModAssign stores the elementwise remainder into t in place.
func (t *Tensor[T]) ModAssign(other *Tensor[T]) error {
	return t.binaryAssign("Tensor.ModAssign", other, func(a, b T) T {
		return T(math.Mod(float64(a), float64(b)))
	})
}

// AddScalar returns t with v added to every element.
func (t *Tensor[T]) AddScalar(v T) *Tensor[T] {
	return t.Apply(func(a T) T { return a + v })
}

// SubScalar returns t with v subtracted from every element.
func (t *Tensor[T]) SubScalar(v T) *Tensor[T] {
	return t.Apply(func(a T) T { return a - v })
}

// MulScalar returns t with every element multiplied by v.
func (t *Tensor[T]) MulScalar(v T) *Tensor[T] {
	return t.Apply(func(a T) T { return a * v })
}

// DivScalar returns t with every element divided by v.
func (t *Tensor[T]) DivScalar(v T) *Tensor[T] {
	return t.Apply(func(a T) T { return a / v })
}

// ModScalar returns the elementwise remainder of every element by v, with
// floating-point remainder semantics.
func (t *Tensor[T]) ModScalar(v T) *Tensor[T] {
	return t.Apply(func(a T) T { return T(math.Mod(float64(a), float64(v))) })
}

// Neg returns t with every element negated.
func (t *Tensor[T]) Neg() *Tensor[T] {
	return t.Apply(func(a T) T { return -a })
}
