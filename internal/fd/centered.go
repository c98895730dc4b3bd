package fd

import (
	"fmt"

	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Option configures the multi-argument derivative operators.
type Option func(*config)

type config struct {
	indices []tensor.Index
}

// WithIndices restricts the derivative to the given multi-indices of the
// target argument. Each index must have one coordinate per axis of the
// argument. Without this option FirstOrderCentered differentiates every
// component, and SecondOrderCentered assumes a zero-dimensional argument
// (the single pair of empty indices).
func WithIndices(indices ...tensor.Index) Option {
	return func(c *config) {
		c.indices = indices
	}
}

// checkArgs validates argnum and delta for the multi-argument operators.
// Validation happens before any evaluation of the user function.
func checkArgs(argnum int, delta float64, args []*tensor.RawTensor) error {
	if argnum < 0 || argnum > len(args)-1 {
		return fmt.Errorf("argnum must be between 0 and %d; got %d", len(args)-1, argnum)
	}
	if delta <= 0 {
		return fmt.Errorf("step size delta must be greater than 0; got %v", delta)
	}
	return nil
}

// checkIndices validates every explicitly supplied multi-index against the
// target argument's shape.
func checkIndices(shape tensor.Shape, indices []tensor.Index) error {
	for _, idx := range indices {
		if err := shape.CheckIndex(idx); err != nil {
			return err
		}
	}
	return nil
}

// replaceArg returns a copy of args with the tensor at position argnum
// swapped for x. All other arguments keep their positions.
func replaceArg(args []*tensor.RawTensor, argnum int, x *tensor.RawTensor) []*tensor.RawTensor {
	out := make([]*tensor.RawTensor, len(args))
	copy(out, args)
	out[argnum] = x
	return out
}

// shifted returns a copy of x with v added to the component at flat offset.
func shifted(x *tensor.RawTensor, flat int, v float64) *tensor.RawTensor {
	out := x.Clone()
	out.AddFloatAt(flat, v)
	return out
}

// FirstOrderCentered computes the centered first-order partial derivative of
// f with respect to each requested component of the argument at position
// argnum, holding all other arguments fixed:
//
//	df/dx_i ≈ (f(..., x + d_i, ...) - f(..., x - d_i, ...)) / delta
//
// with d_i of magnitude delta/2 at index i. By default every component of
// the target argument is differentiated; WithIndices selects a subset.
//
// The result is a Grid shaped like the target argument with one derivative
// per requested index. f is evaluated twice per requested index.
func FirstOrderCentered[R Result[R]](f Func[R], argnum int, delta float64, args []*tensor.RawTensor, opts ...Option) (*Grid[R], error) {
	if f == nil {
		return nil, fmt.Errorf("f must be a callable function; got nil")
	}
	if err := checkArgs(argnum, delta, args); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	x := args[argnum]
	shape := x.Shape()

	indices := cfg.indices
	if indices == nil {
		indices = shape.Indices()
	} else if err := checkIndices(shape, indices); err != nil {
		return nil, err
	}

	grid := NewGrid[R](shape)
	half := 0.5 * delta

	for _, idx := range indices {
		flat := shape.FlatIndex(idx)

		rPlus := f(replaceArg(args, argnum, shifted(x, flat, half))...)
		rMinus := f(replaceArg(args, argnum, shifted(x, flat, -half))...)

		grid.setFlat(flat, rPlus.Sub(rMinus).Scale(1/delta))
	}

	return grid, nil
}

// SecondOrderCentered computes one centered second-order derivative
// d²f/dx_i dx_j of f with respect to two (possibly equal) components of the
// argument at position argnum.
//
// Diagonal case (i == j), three-point stencil with full-delta shifts:
//
//	d²f/dx_i² ≈ (f(x+δ_i) - 2 f(x) + f(x-δ_i)) / delta²
//
// Off-diagonal case (i != j), four-point cross stencil with independent
// half-delta shifts at i and j:
//
//	d²f/dx_i dx_j ≈ (f(x+δ_i+δ_j) - f(x-δ_i+δ_j) - f(x+δ_i-δ_j) + f(x-δ_i-δ_j)) / delta²
//
// The cross stencil is symmetric in i and j up to floating-point rounding.
// By default the target argument is assumed zero-dimensional (index pair of
// two empty indices); WithIndices supplies the pair (i, j) explicitly.
// Exactly one derivative value is returned per call; f is evaluated three
// times on the diagonal and four times off it.
func SecondOrderCentered[R Result[R]](f Func[R], argnum int, delta float64, args []*tensor.RawTensor, opts ...Option) (R, error) {
	var zero R

	if f == nil {
		return zero, fmt.Errorf("f must be a callable function; got nil")
	}
	if err := checkArgs(argnum, delta, args); err != nil {
		return zero, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	x := args[argnum]
	shape := x.Shape()

	indices := cfg.indices
	if indices == nil {
		indices = []tensor.Index{{}, {}}
	} else {
		if len(indices) > 2 {
			return zero, fmt.Errorf("the number of indices cannot be greater than 2; got %d indices", len(indices))
		}
		if len(indices) < 2 {
			return zero, fmt.Errorf("two indices are required to select a second derivative; got %d", len(indices))
		}
		if err := checkIndices(shape, indices); err != nil {
			return zero, err
		}
	}

	i, j := indices[0], indices[1]
	flatI := shape.FlatIndex(i)
	flatJ := shape.FlatIndex(j)
	invDelta2 := 1 / (delta * delta)

	// Diagonal: three-point stencil.
	if i.Equal(j) {
		fPlus := f(replaceArg(args, argnum, shifted(x, flatI, delta))...)
		fCenter := f(args...)
		fMinus := f(replaceArg(args, argnum, shifted(x, flatI, -delta))...)

		return fPlus.Sub(fCenter.Scale(2)).Add(fMinus).Scale(invDelta2), nil
	}

	// Off-diagonal: four-point cross stencil.
	half := 0.5 * delta

	shiftBoth := func(vi, vj float64) *tensor.RawTensor {
		out := x.Clone()
		out.AddFloatAt(flatI, vi)
		out.AddFloatAt(flatJ, vj)
		return out
	}

	fPP := f(replaceArg(args, argnum, shiftBoth(half, half))...)
	fMP := f(replaceArg(args, argnum, shiftBoth(-half, half))...)
	fPM := f(replaceArg(args, argnum, shiftBoth(half, -half))...)
	fMM := f(replaceArg(args, argnum, shiftBoth(-half, -half))...)

	return fPP.Sub(fMP).Sub(fPM).Add(fMM).Scale(invDelta2), nil
}
