package tensor

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of a tensor. Rank 0 (empty shape) is a
// scalar. Every dimension must be strictly positive; a zero dimension would
// make the element count zero and break buffer allocation.
type Shape []int

// NewShape validates dims and returns them as a Shape.
func NewShape(dims ...int) (Shape, error) {
	s := Shape(dims)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Validate checks that every dimension is strictly positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return &ValueError{Op: "shape", Value: dim, Reason: fmt.Sprintf("dimension %d must be > 0", i)}
		}
	}
	return nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements: the product of all
// dimensions. The empty product is 1, a scalar's single element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// At returns the dimension at axis i with bounds checking.
func (s Shape) At(i int) (int, error) {
	if i < 0 || i >= len(s) {
		return 0, &IndexError{Op: "Shape.At", Index: i, Axis: -1, Limit: len(s)}
	}
	return s[i], nil
}

// SetAxis replaces the dimension at axis i, validating both the axis and the
// new dimension.
func (s Shape) SetAxis(i, dim int) error {
	if i < 0 || i >= len(s) {
		return &IndexError{Op: "Shape.SetAxis", Index: i, Axis: -1, Limit: len(s)}
	}
	if dim <= 0 {
		return &ValueError{Op: "Shape.SetAxis", Value: dim, Reason: "dimension must be > 0"}
	}
	s[i] = dim
	return nil
}

// Front returns the first dimension. Panics on a scalar shape.
func (s Shape) Front() int {
	return s[0]
}

// Back returns the last dimension. Panics on a scalar shape.
func (s Shape) Back() int {
	return s[len(s)-1]
}

// Dims2 returns the first two dimensions, erroring if rank < 2.
func (s Shape) Dims2() (int, int, error) {
	if len(s) < 2 {
		return 0, 0, &RankError{Op: "Shape.Dims2", Rank: len(s), Want: 2}
	}
	return s[0], s[1], nil
}

// Dims3 returns the first three dimensions, erroring if rank < 3.
func (s Shape) Dims3() (int, int, int, error) {
	if len(s) < 3 {
		return 0, 0, 0, &RankError{Op: "Shape.Dims3", Rank: len(s), Want: 3}
	}
	return s[0], s[1], s[2], nil
}

// Resize returns a copy of the shape with exactly newRank axes. When the rank
// grows, new axes of size 1 are inserted at the front (modifyFront) or the
// back. When it shrinks, the collapsed axes are multiplied into the first or
// last surviving axis, so the total element count is preserved. Shrinking to
// rank 0 requires the total to be 1.
func (s Shape) Resize(newRank int, modifyFront bool) (Shape, error) {
	if newRank < 0 {
		return nil, &ValueError{Op: "Shape.Resize", Value: newRank, Reason: "rank must be >= 0"}
	}
	switch {
	case newRank == len(s):
		return s.Clone(), nil
	case newRank > len(s):
		out := make(Shape, newRank)
		pad := newRank - len(s)
		for i := range out {
			out[i] = 1
		}
		if modifyFront {
			copy(out[pad:], s)
		} else {
			copy(out, s)
		}
		return out, nil
	case newRank == 0:
		if s.NumElements() != 1 {
			return nil, &ShapeError{Op: "Shape.Resize", A: s.Clone(), Reason: "cannot collapse to a scalar: total size is not 1"}
		}
		return Shape{}, nil
	default:
		out := make(Shape, newRank)
		cramped := len(s) - newRank + 1
		if modifyFront {
			folded := 1
			for _, dim := range s[:cramped] {
				folded *= dim
			}
			out[0] = folded
			copy(out[1:], s[cramped:])
		} else {
			copy(out, s[:newRank-1])
			folded := 1
			for _, dim := range s[newRank-1:] {
				folded *= dim
			}
			out[newRank-1] = folded
		}
		return out, nil
	}
}

// IsEquivalent reports whether both shapes describe the same number of
// elements, regardless of rank. Used to validate reshapes.
func (s Shape) IsEquivalent(other Shape) bool {
	return s.NumElements() == other.NumElements()
}

// Equal reports whether both shapes are dimension-for-dimension identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as a parenthesized comma list, e.g. "(3, 4)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", dim)
	}
	b.WriteByte(')')
	return b.String()
}

// broadcastTarget returns the shape of the larger-rank operand when a and b
// are compatible for broadcasting, and which operand is the smaller one.
//
// The rule is strict right alignment: rank(small) <= rank(large) and every
// dimension of the smaller shape must exactly match the corresponding
// trailing dimension of the larger shape. Unlike NumPy, size-1 axes are not
// stretched.
func broadcastTarget(op string, a, b Shape) (target Shape, bSmaller bool, err error) {
	small, large := a, b
	bSmaller = false
	if len(a) >= len(b) {
		small, large = b, a
		bSmaller = true
	}
	offset := len(large) - len(small)
	for i, dim := range small {
		if large[offset+i] != dim {
			return nil, false, &ShapeError{Op: op, A: a.Clone(), B: b.Clone(), Reason: "are not compatible for broadcasting"}
		}
	}
	return large, bSmaller, nil
}
