package autodiff

import (
	"fmt"

	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// BackwardCapable is an interface for backends that support a backward pass.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients for an output tensor over the backend's tape,
// seeding the output gradient with ones.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	y := backend.Mul(x, x) // y = x²
//	gradients := autodiff.Backward(y, backend)
//	grad := gradients[x]
func Backward[B BackwardCapable](output *tensor.RawTensor, backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	return tape.BackwardFrom(output, onesLike(output), backend)
}

// onesLike creates a gradient seed tensor filled with ones.
func onesLike(t *tensor.RawTensor) *tensor.RawTensor {
	switch t.DType() {
	case tensor.Float32, tensor.Float64:
		return tensor.FullLike(t, 1)
	default:
		panic(fmt.Sprintf("backward: unsupported dtype %s (only float32/float64 supported)", t.DType()))
	}
}
