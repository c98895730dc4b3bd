// Package fd implements centered finite-difference derivative estimators for
// functions over tensor-valued arguments.
//
// The estimators are pure and stateless: every derivative is built from a
// fixed stencil of perturbed evaluations of the caller-supplied function, and
// all argument validation happens before the first evaluation. The function
// may return any type closed under linear combination (see Result), so
// structured numeric objects (not just floats) can be differentiated.
//
// Three operations are provided:
//   - FiniteDiff: first derivative with respect to one scalar input or one
//     component of an array input
//   - FirstOrderCentered: gradient over any subset of components of one
//     argument of a multi-argument function
//   - SecondOrderCentered: one second-order (diagonal or mixed) derivative
package fd

import (
	"fmt"

	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Func is a function under differentiation. Arguments are positional
// tensors; fixed non-tensor state should be closed over.
type Func[R any] func(args ...*tensor.RawTensor) R

// FiniteDiff evaluates the centered first derivative dF/dx_i of F at point x
// using step size delta:
//
//	dF/dx_i ≈ (F(x + d) - F(x - d)) / delta
//
// where d is delta/2 at flat index i and zero elsewhere. If x is
// zero-dimensional (a scalar), i is unused and the whole input is shifted.
//
// The output mirrors whatever F returns; only linear combinations are
// applied to it. F is evaluated exactly twice.
//
// Example:
//
//	g := func(x *tensor.RawTensor) fd.Vec {
//		v := x.FloatAt(0)
//		return fd.Vec{math.Sin(v), 1 / v}
//	}
//	d, err := fd.FiniteDiff(g, x, 0, 0.01)
func FiniteDiff[R Result[R]](F func(x *tensor.RawTensor) R, x *tensor.RawTensor, i int, delta float64) (R, error) {
	var zero R

	if F == nil {
		return zero, fmt.Errorf("F must be a callable function; got nil")
	}
	if delta <= 0 {
		return zero, fmt.Errorf("step size delta must be greater than 0; got %v", delta)
	}

	flat := 0
	if x.Shape().NumDims() > 0 {
		size := x.NumElements()
		if i < 0 || i >= size {
			return zero, fmt.Errorf("i must be an integer between 0 and %d; got %d", size-1, i)
		}
		flat = i
	}

	plus := x.Clone()
	plus.AddFloatAt(flat, 0.5*delta)

	minus := x.Clone()
	minus.AddFloatAt(flat, -0.5*delta)

	return F(plus).Sub(F(minus)).Scale(1 / delta), nil
}
