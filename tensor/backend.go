// Copyright 2025 DiffKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go implementation
//
// Decorator backends for additional functionality:
//   - autodiff: automatic differentiation (wraps any backend)
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Element-wise unary operations.
	Neg(a *RawTensor) *RawTensor              // Element-wise negation.
	Scale(a *RawTensor, s float64) *RawTensor // Multiply every element by s.
	Sin(a *RawTensor) *RawTensor              // Element-wise sine.
	Cos(a *RawTensor) *RawTensor              // Element-wise cosine.
	Exp(a *RawTensor) *RawTensor              // Element-wise exponential.
	Log(a *RawTensor) *RawTensor              // Element-wise natural logarithm.

	// Reductions.
	Sum(a *RawTensor) *RawTensor // Sum of all elements, as a scalar tensor.

	// Backend metadata.
	Name() string   // Backend name for debugging.
	Device() Device // Device this backend computes on.
}
