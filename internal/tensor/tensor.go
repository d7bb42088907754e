package tensor

import "fmt"

// Tensor is a dense, row-major, N-dimensional container of Numeric elements.
// The linear buffer always holds exactly shape.NumElements() values; reshapes
// swap the shape without touching the buffer.
//
// A Tensor is not safe for concurrent mutation. The matmul kernel is the only
// operation that reads a tensor from multiple goroutines, and it never writes
// to its inputs.
type Tensor[T Numeric] struct {
	shape Shape
	data  []T

	// unchecked disables range validation in At/Set. Tightly controlled loops
	// (matmul) flip it on after validating their own bounds and restore it
	// before returning. Out-of-range access with checking disabled is the
	// documented opt-in escape hatch, not a defect.
	unchecked bool
}

// newTensor allocates a zeroed tensor for an already-validated shape.
func newTensor[T Numeric](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		data:  make([]T, shape.NumElements()),
	}
}

// New creates a zeroed tensor with the given dimensions, validating them.
func New[T Numeric](dims ...int) (*Tensor[T], error) {
	shape, err := NewShape(dims...)
	if err != nil {
		return nil, err
	}
	return newTensor[T](shape), nil
}

// Shape returns the tensor's shape. The returned slice is the tensor's own;
// callers must not mutate it.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the underlying linear buffer. Mutations are visible to the
// tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// SetBoundsCheck enables or disables range validation in At/Set and returns
// the previous setting, so callers can restore it with defer.
func (t *Tensor[T]) SetBoundsCheck(enabled bool) bool {
	prev := !t.unchecked
	t.unchecked = !enabled
	return prev
}

// BoundsChecked reports whether At/Set validate their indices.
func (t *Tensor[T]) BoundsChecked() bool {
	return !t.unchecked
}

// flatIndex converts a multi-index into a linear offset, validating each
// index against its axis unless bounds checking is disabled.
func (t *Tensor[T]) flatIndex(op string, indices []int) (int, error) {
	if len(indices) != t.shape.Rank() {
		return 0, &RankError{Op: op, Rank: len(indices), Want: t.shape.Rank()}
	}
	offset := 0
	stride := 1
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		if !t.unchecked && (idx < 0 || idx >= t.shape[i]) {
			return 0, &IndexError{Op: op, Index: idx, Axis: i, Limit: t.shape[i]}
		}
		offset += idx * stride
		stride *= t.shape[i]
	}
	return offset, nil
}

// At returns the element at the given multi-index.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	offset, err := t.flatIndex("Tensor.At", indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// Set stores value at the given multi-index.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	offset, err := t.flatIndex("Tensor.Set", indices)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// Linear returns the element at the given linear buffer index, checked.
func (t *Tensor[T]) Linear(i int) (T, error) {
	if !t.unchecked && (i < 0 || i >= len(t.data)) {
		var zero T
		return zero, &IndexError{Op: "Tensor.Linear", Index: i, Axis: -1, Limit: len(t.data)}
	}
	return t.data[i], nil
}

// SetLinear stores value at the given linear buffer index, checked.
func (t *Tensor[T]) SetLinear(value T, i int) error {
	if !t.unchecked && (i < 0 || i >= len(t.data)) {
		return &IndexError{Op: "Tensor.SetLinear", Index: i, Axis: -1, Limit: len(t.data)}
	}
	t.data[i] = value
	return nil
}

// Item returns the single value of a one-element tensor.
func (t *Tensor[T]) Item() (T, error) {
	if len(t.data) != 1 {
		var zero T
		return zero, &ShapeError{Op: "Tensor.Item", A: t.shape.Clone(), Reason: "is not a single-element tensor"}
	}
	return t.data[0], nil
}

// Clone creates a deep copy. The bounds-check flag is not part of logical
// state and resets to checked.
func (t *Tensor[T]) Clone() *Tensor[T] {
	out := newTensor[T](t.shape.Clone())
	copy(out.data, t.data)
	return out
}

// Apply returns a new tensor with f applied to every element.
func (t *Tensor[T]) Apply(f func(T) T) *Tensor[T] {
	out := newTensor[T](t.shape.Clone())
	for i, v := range t.data {
		out.data[i] = f(v)
	}
	return out
}

// Equal reports whether both tensors have identical shapes and element-for-
// element identical buffers.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a short human-readable description.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%s[%d elements]", t.shape, len(t.data))
}
