// Package ops defines operation interfaces and implementations for the
// reverse-mode automatic differentiation engine.
//
// Each operation records its inputs and output during the forward pass and
// computes input gradients during the backward pass:
//   - AddOp/SubOp: d(a±b)/da = 1, d(a±b)/db = ±1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - DivOp: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - NegOp/ScaleOp: constant linear factors
//   - SinOp/CosOp/ExpOp/LogOp: element-wise chain rule
//   - SumOp: gradient broadcast back to the input shape
package ops

import "github.com/diffkit-ml/diffkit/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
