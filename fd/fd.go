// Copyright 2025 DiffKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fd provides centered finite-difference derivative estimates.
//
// Three operators are exposed: FiniteDiff, a one-dimensional centered first
// derivative of a single-argument function; FirstOrderCentered, a
// multi-argument gradient over a chosen argument; and SecondOrderCentered,
// a second derivative for a chosen pair of indices. All three are pure:
// they never mutate the caller's tensors and keep no state between calls.
//
// Example:
//
//	F := func(x *tensor.RawTensor) fd.Vec {
//		v := x.FloatAt(0)
//		return fd.Vec{math.Sin(v), 1 / v}
//	}
//	d, err := fd.FiniteDiff(F, x, 0, 0.01)
package fd

import (
	"github.com/diffkit-ml/diffkit/internal/fd"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Result constrains derivative value types: anything that forms a vector
// space over float64. Scalar and Vec are ready-made implementations;
// structured types (for example weighted operator sums) qualify by
// implementing the three methods.
type Result[R any] = fd.Result[R]

// Scalar is a float64 Result.
type Scalar = fd.Scalar

// Vec is a []float64 Result; all operands must share a length.
type Vec = fd.Vec

// Grid is a fixed-shape container holding one Result per multi-index, used
// for gradients of array-valued arguments.
type Grid[R any] = fd.Grid[R]

// NewGrid creates a Grid for the given shape with every cell zero-valued.
func NewGrid[R any](shape tensor.Shape) *Grid[R] {
	return fd.NewGrid[R](shape)
}

// Func is a multi-argument function subject to differentiation.
type Func[R any] = fd.Func[R]

// Option configures FirstOrderCentered and SecondOrderCentered.
type Option = fd.Option

// WithIndices selects the multi-indices to differentiate. First order takes
// any number of indices (default: every index of the argument); second
// order takes exactly two (default: the scalar pair).
func WithIndices(indices ...tensor.Index) Option {
	return fd.WithIndices(indices...)
}

// FiniteDiff estimates the derivative of F with respect to the i-th
// component of x using a centered difference of step delta:
//
//	dF/dx_i ≈ (F(x + δ/2·e_i) − F(x − δ/2·e_i)) / δ
//
// For a scalar x the index i is ignored.
func FiniteDiff[R Result[R]](F func(x *tensor.RawTensor) R, x *tensor.RawTensor, i int, delta float64) (R, error) {
	return fd.FiniteDiff(F, x, i, delta)
}

// FirstOrderCentered estimates first derivatives of f with respect to the
// components of its argnum-th argument, two evaluations per requested
// index. The result Grid matches the argument's shape; unrequested cells
// hold zero values.
func FirstOrderCentered[R Result[R]](f Func[R], argnum int, delta float64, args []*tensor.RawTensor, opts ...Option) (*Grid[R], error) {
	return fd.FirstOrderCentered(f, argnum, delta, args, opts...)
}

// SecondOrderCentered estimates a second derivative of f with respect to
// the index pair selected by WithIndices on the argnum-th argument. Equal
// indices use the three-point diagonal stencil; distinct indices use the
// four-point cross stencil, which is symmetric in the pair up to
// floating-point rounding.
func SecondOrderCentered[R Result[R]](f Func[R], argnum int, delta float64, args []*tensor.RawTensor, opts ...Option) (R, error) {
	return fd.SecondOrderCentered(f, argnum, delta, args, opts...)
}
