package tensor

// CyclicIndex is a modular index over a fixed-length range. It lets broadcast
// arithmetic replay a smaller operand's elements against a larger operand
// without materializing a tiled copy: element i of the larger tensor pairs
// with smaller[idx.At(i)].
//
// The length must be positive; NewCyclicIndex panics otherwise, mirroring the
// undefined behavior of wrapping an empty range.
type CyclicIndex struct {
	length int
	cursor int
}

// NewCyclicIndex returns a cyclic index over [0, length).
func NewCyclicIndex(length int) CyclicIndex {
	if length <= 0 {
		panic("tensor: cyclic index over a non-positive length")
	}
	return CyclicIndex{length: length}
}

// At returns the absolute index (cursor + n) mod length, normalized to be
// non-negative for any n, including negative offsets.
func (c CyclicIndex) At(n int) int {
	i := (c.cursor + n) % c.length
	if i < 0 {
		i += c.length
	}
	return i
}

// Advance moves the cursor by delta (which may be negative) and wraps it.
func (c *CyclicIndex) Advance(delta int) {
	c.cursor = c.At(delta)
}

// Next returns the current absolute index and advances the cursor by one.
func (c *CyclicIndex) Next() int {
	i := c.cursor
	c.Advance(1)
	return i
}

// Pos returns the current absolute cursor position.
func (c CyclicIndex) Pos() int {
	return c.cursor
}

// Len returns the wrapped range length.
func (c CyclicIndex) Len() int {
	return c.length
}
