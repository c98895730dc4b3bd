// Copyright 2025 DiffKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad provides gradient and Jacobian operators over the autodiff
// engine.
//
// Arguments carry an explicit differentiability flag: wrap them with Var to
// differentiate, Const to pin. WithArgnum overrides the flags with fixed
// argument positions.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	g := grad.New(backend, func(b *autodiff.Backend[*cpu.Backend], args ...*tensor.RawTensor) *tensor.RawTensor {
//		return b.Mul(args[0], args[0]) // f(x) = x²
//	})
//	grads, err := g.Compute(grad.Var(x))
package grad

import (
	"github.com/diffkit-ml/diffkit/internal/autodiff"
	"github.com/diffkit-ml/diffkit/internal/grad"
)

// Value pairs a tensor with its differentiability flag.
type Value = grad.Value

// Var wraps a tensor as a differentiable argument.
var Var = grad.Var

// Const wraps a tensor as a fixed argument.
var Const = grad.Const

// Func is a differentiable function over raw tensors; intermediate
// operations must go through the supplied backend so they are recorded.
type Func[B autodiff.BackwardCapable] = grad.Func[B]

// Option configures a Grad or Jacobian operator.
type Option = grad.Option

// WithArgnum fixes the argument positions to differentiate, overriding the
// per-Value flags.
var WithArgnum = grad.WithArgnum

// Grad computes the gradient of a scalar-output function.
type Grad[B autodiff.BackwardCapable] = grad.Grad[B]

// New creates a gradient operator for fn over the given backend.
func New[B autodiff.BackwardCapable](backend B, fn Func[B], opts ...Option) *Grad[B] {
	return grad.New(backend, fn, opts...)
}

// Jacobian computes the Jacobian matrix of a vector-output function, one
// {outSize, inSize} matrix per differentiable argument.
type Jacobian[B autodiff.BackwardCapable] = grad.Jacobian[B]

// NewJacobian creates a Jacobian operator for fn over the given backend.
func NewJacobian[B autodiff.BackwardCapable](backend B, fn Func[B], opts ...Option) *Jacobian[B] {
	return grad.NewJacobian(backend, fn, opts...)
}
