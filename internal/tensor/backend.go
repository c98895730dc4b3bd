package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: pure Go kernels (gonum-accelerated for float64)
//   - Autodiff: decorator over any Backend that records a gradient tape
type Backend interface {
	// Element-wise binary operations. Shapes of a and b must match.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise unary operations
	Neg(x *RawTensor) *RawTensor
	Sin(x *RawTensor) *RawTensor
	Cos(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor

	// Scale multiplies every element by a scalar.
	Scale(x *RawTensor, s float64) *RawTensor

	// Sum reduces the tensor to a zero-dimensional scalar.
	Sum(x *RawTensor) *RawTensor

	// Name returns a human-readable backend name.
	Name() string

	// Device returns the compute device of this backend.
	Device() Device
}
