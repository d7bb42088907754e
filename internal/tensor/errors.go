package tensor

import "fmt"

// ShapeError reports two shapes that are incompatible for an operation, or a
// single invalid shape (B is nil in that case).
type ShapeError struct {
	Op     string
	A, B   Shape
	Reason string
}

func (e *ShapeError) Error() string {
	if e.B == nil {
		return fmt.Sprintf("%s: shape %v %s", e.Op, e.A, e.Reason)
	}
	return fmt.Sprintf("%s: shapes %v and %v %s", e.Op, e.A, e.B, e.Reason)
}

// RankError reports a tensor whose rank does not satisfy an operation's
// requirement.
type RankError struct {
	Op   string
	Rank int
	Want int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("%s: requires rank %d, got rank %d", e.Op, e.Want, e.Rank)
}

// IndexError reports a checked access beyond an axis dimension or beyond the
// linear buffer length.
type IndexError struct {
	Op    string
	Index int
	Axis  int // -1 for linear access
	Limit int
}

func (e *IndexError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
	}
	return fmt.Sprintf("%s: index %d out of range [0, %d) on axis %d", e.Op, e.Index, e.Limit, e.Axis)
}

// ValueError reports an invalid scalar parameter.
type ValueError struct {
	Op     string
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %v: %s", e.Op, e.Value, e.Reason)
}
