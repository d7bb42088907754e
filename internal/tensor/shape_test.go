package tensor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"rank3", Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.NumElements(); got != tt.want {
				t.Errorf("NumElements() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	var valErr *ValueError
	if err := (Shape{2, 0}).Validate(); !errors.As(err, &valErr) {
		t.Errorf("Validate() = %v, want *ValueError", err)
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate() accepted a negative dimension")
	}
}

func TestShapeEqualAndEquivalent(t *testing.T) {
	a := Shape{2, 3}
	b := Shape{3, 2}
	if a.Equal(b) {
		t.Error("(2, 3) and (3, 2) reported equal")
	}
	if !a.Equal(Shape{2, 3}) {
		t.Error("(2, 3) not equal to itself")
	}
	if !a.IsEquivalent(b) {
		t.Error("(2, 3) and (3, 2) should be equivalent (both total 6)")
	}
	if a.IsEquivalent(Shape{2, 4}) {
		t.Error("(2, 3) and (2, 4) reported equivalent")
	}
}

func TestShapeAt(t *testing.T) {
	s := Shape{4, 5}
	dim, err := s.At(1)
	if err != nil || dim != 5 {
		t.Errorf("At(1) = %d, %v, want 5, nil", dim, err)
	}
	var idxErr *IndexError
	if _, err := s.At(2); !errors.As(err, &idxErr) {
		t.Errorf("At(2) = %v, want *IndexError", err)
	}
	if _, err := s.At(-1); err == nil {
		t.Error("At(-1) accepted a negative axis")
	}
}

func TestShapeSetAxis(t *testing.T) {
	s := Shape{4, 5}
	if err := s.SetAxis(0, 7); err != nil {
		t.Fatalf("SetAxis(0, 7) = %v", err)
	}
	if !s.Equal(Shape{7, 5}) {
		t.Errorf("shape after SetAxis = %v, want (7, 5)", s)
	}
	if err := s.SetAxis(0, 0); err == nil {
		t.Error("SetAxis accepted a zero dimension")
	}
	if err := s.SetAxis(5, 1); err == nil {
		t.Error("SetAxis accepted an out-of-range axis")
	}
}

func TestShapeResizeGrow(t *testing.T) {
	s := Shape{2, 3}

	front, err := s.Resize(4, true)
	if err != nil {
		t.Fatalf("Resize(4, front) = %v", err)
	}
	if diff := cmp.Diff(Shape{1, 1, 2, 3}, front); diff != "" {
		t.Errorf("Resize(4, front) mismatch (-want +got):\n%s", diff)
	}

	back, err := s.Resize(4, false)
	if err != nil {
		t.Fatalf("Resize(4, back) = %v", err)
	}
	if diff := cmp.Diff(Shape{2, 3, 1, 1}, back); diff != "" {
		t.Errorf("Resize(4, back) mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeResizeShrink(t *testing.T) {
	s := Shape{2, 3, 4}

	front, err := s.Resize(2, true)
	if err != nil {
		t.Fatalf("Resize(2, front) = %v", err)
	}
	if diff := cmp.Diff(Shape{6, 4}, front); diff != "" {
		t.Errorf("Resize(2, front) mismatch (-want +got):\n%s", diff)
	}

	back, err := s.Resize(2, false)
	if err != nil {
		t.Fatalf("Resize(2, back) = %v", err)
	}
	if diff := cmp.Diff(Shape{2, 12}, back); diff != "" {
		t.Errorf("Resize(2, back) mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeResizeToScalar(t *testing.T) {
	one := Shape{1, 1}
	s, err := one.Resize(0, false)
	if err != nil {
		t.Fatalf("Resize(0) on (1, 1) = %v", err)
	}
	if s.Rank() != 0 {
		t.Errorf("Resize(0) rank = %d, want 0", s.Rank())
	}

	var shapeErr *ShapeError
	if _, err := (Shape{2, 3}).Resize(0, false); !errors.As(err, &shapeErr) {
		t.Errorf("Resize(0) on (2, 3) = %v, want *ShapeError", err)
	}
}

func TestShapeDims(t *testing.T) {
	s := Shape{2, 3, 4}
	r, c, err := s.Dims2()
	if err != nil || r != 2 || c != 3 {
		t.Errorf("Dims2() = %d, %d, %v, want 2, 3, nil", r, c, err)
	}
	a, b, d, err := s.Dims3()
	if err != nil || a != 2 || b != 3 || d != 4 {
		t.Errorf("Dims3() = %d, %d, %d, %v", a, b, d, err)
	}
	var rankErr *RankError
	if _, _, err := (Shape{5}).Dims2(); !errors.As(err, &rankErr) {
		t.Errorf("Dims2() on rank 1 = %v, want *RankError", err)
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{Shape{}, "()"},
		{Shape{7}, "(7)"},
		{Shape{3, 4}, "(3, 4)"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewShapeRejectsInvalid(t *testing.T) {
	if _, err := NewShape(3, 0); err == nil {
		t.Error("NewShape(3, 0) accepted a zero dimension")
	}
	s, err := NewShape(3, 4)
	if err != nil {
		t.Fatalf("NewShape(3, 4) = %v", err)
	}
	if !s.Equal(Shape{3, 4}) {
		t.Errorf("NewShape(3, 4) = %v", s)
	}
}
