// Package tensor provides the core tensor types and operations for the
// Tensile library: shapes, a generic dense N-dimensional container, broadcast
// arithmetic, and a row-parallel matrix multiplication kernel.
package tensor

// Numeric is the constraint for supported tensor element types.
// Any arithmetic type works; bool and complex types are excluded because
// broadcast arithmetic and matmul accumulate with + and *.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Convert returns a new tensor with every element converted to U.
// Mixed-type arithmetic (e.g. int tensor + float64 tensor) is expressed as an
// explicit conversion followed by a same-type operation; Go generics have no
// implicit arithmetic promotion.
func Convert[U, T Numeric](t *Tensor[T]) *Tensor[U] {
	out := newTensor[U](t.shape.Clone())
	for i, v := range t.data {
		out.data[i] = U(v)
	}
	return out
}
