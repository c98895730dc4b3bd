package fd

import "github.com/diffkit-ml/diffkit/internal/tensor"

// Grid is a fixed-layout derivative container shaped like the differentiated
// argument: one result slot per multi-index, stored in row-major order.
// Slots for indices that were not requested hold the zero value of R.
type Grid[R any] struct {
	shape tensor.Shape
	cells []R
}

// NewGrid creates a zero-filled Grid for the given shape.
func NewGrid[R any](shape tensor.Shape) *Grid[R] {
	return &Grid[R]{
		shape: shape.Clone(),
		cells: make([]R, shape.NumElements()),
	}
}

// Shape returns the grid's shape.
func (g *Grid[R]) Shape() tensor.Shape {
	return g.shape
}

// NumElements returns the total number of slots.
func (g *Grid[R]) NumElements() int {
	return len(g.cells)
}

// At returns the result stored at the given multi-index.
func (g *Grid[R]) At(idx tensor.Index) (R, error) {
	var zero R
	if err := g.shape.CheckIndex(idx); err != nil {
		return zero, err
	}
	return g.cells[g.shape.FlatIndex(idx)], nil
}

// Set stores a result at the given multi-index.
func (g *Grid[R]) Set(idx tensor.Index, v R) error {
	if err := g.shape.CheckIndex(idx); err != nil {
		return err
	}
	g.cells[g.shape.FlatIndex(idx)] = v
	return nil
}

// Values returns all slots in row-major order, sharing the grid's storage.
func (g *Grid[R]) Values() []R {
	return g.cells
}

// setFlat stores a result at a flat offset already derived from a validated
// multi-index.
func (g *Grid[R]) setFlat(flat int, v R) {
	g.cells[flat] = v
}
