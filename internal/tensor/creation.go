package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor[T](shape.Clone()), nil
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape) (*Tensor[T], error) {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with value.
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Random creates a tensor with values drawn uniformly from [lo, hi), using a
// private deterministic source so the same seed reproduces the same tensor.
func Random[T Numeric](shape Shape, seed int64, lo, hi float64) (*Tensor[T], error) {
	if hi < lo {
		return nil, &ValueError{Op: "Random", Value: hi, Reason: "upper bound is below lower bound"}
	}
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic init, not crypto
	span := hi - lo
	for i := range t.data {
		t.data[i] = T(lo + rng.Float64()*span)
	}
	return t, nil
}

// Arange creates a tensor whose linear buffer holds start, start+step,
// start+2*step, ... in row-major order.
func Arange[T Numeric](shape Shape, start, step T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	v := start
	for i := range t.data {
		t.data[i] = v
		v += step
	}
	return t, nil
}

// FromFunc creates a tensor whose element at linear index i is gen(i).
func FromFunc[T Numeric](shape Shape, gen func(i int) T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = gen(i)
	}
	return t, nil
}

// FromSlice creates a tensor by copying data, which must hold exactly
// shape.NumElements() values.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, &ShapeError{Op: "FromSlice", A: shape.Clone(),
			Reason: "does not match the provided element count"}
	}
	copy(t.data, data)
	return t, nil
}
