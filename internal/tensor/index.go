package tensor

import "fmt"

// Index is a multi-dimensional index into a tensor: one integer coordinate
// per axis. The empty Index addresses the single element of a
// zero-dimensional (scalar) tensor.
type Index []int

// Equal checks if two indices address the same element.
func (idx Index) Equal(other Index) bool {
	if len(idx) != len(other) {
		return false
	}
	for i := range idx {
		if idx[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the index.
func (idx Index) Clone() Index {
	clone := make(Index, len(idx))
	copy(clone, idx)
	return clone
}

// CheckIndex validates a multi-index against the shape: its length must
// equal the number of dimensions and every coordinate must lie within the
// axis bound (size-1 per axis).
func (s Shape) CheckIndex(idx Index) error {
	if len(idx) != len(s) {
		return fmt.Errorf("index %v must have length %d; got length %d", idx, len(s), len(idx))
	}
	for axis, i := range idx {
		if i < 0 || i > s[axis]-1 {
			return fmt.Errorf("index %v out of bounds; maximum allowed index is %v", idx, s.upperBounds())
		}
	}
	return nil
}

// upperBounds returns the maximum valid index, size-1 per axis.
func (s Shape) upperBounds() Index {
	bounds := make(Index, len(s))
	for i, dim := range s {
		bounds[i] = dim - 1
	}
	return bounds
}

// FlatIndex converts a multi-index to a flat row-major offset.
// The index must already be valid for the shape.
func (s Shape) FlatIndex(idx Index) int {
	strides := s.ComputeStrides()
	flat := 0
	for axis, i := range idx {
		flat += i * strides[axis]
	}
	return flat
}

// Indices enumerates every multi-index of the shape in row-major order.
// For a scalar shape the result is a single empty index.
func (s Shape) Indices() []Index {
	n := s.NumElements()
	out := make([]Index, 0, n)

	idx := make(Index, len(s))
	for {
		out = append(out, idx.Clone())

		// Row-major increment: bump the last axis, carry leftwards.
		axis := len(s) - 1
		for axis >= 0 {
			idx[axis]++
			if idx[axis] < s[axis] {
				break
			}
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			return out
		}
	}
}
