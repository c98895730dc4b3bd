package ops

import "github.com/diffkit-ml/diffkit/internal/tensor"

// SumOp represents full reduction to a scalar: y = Σ x.
//
// Backward pass: every input element contributed with weight 1, so the
// scalar output gradient is broadcast back to the input shape.
type SumOp struct {
	input  *tensor.RawTensor // x
	output *tensor.RawTensor // scalar Σ x
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward broadcasts the scalar output gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	g := outputGrad.FloatAt(0)
	return []*tensor.RawTensor{tensor.FullLike(op.input, g)}
}

// Inputs returns the input tensor [x].
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the scalar output tensor.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
