package grad

import (
	"fmt"

	"github.com/diffkit-ml/diffkit/internal/autodiff"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Jacobian computes the Jacobian matrix of a vector-output function with
// respect to its differentiable arguments.
type Jacobian[B autodiff.BackwardCapable] struct {
	fn      Func[B]
	backend B
	argnums []int
	forward *tensor.RawTensor
}

// NewJacobian creates a Jacobian operator for fn over the given backend.
func NewJacobian[B autodiff.BackwardCapable](backend B, fn Func[B], opts ...Option) *Jacobian[B] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Jacobian[B]{
		fn:      fn,
		backend: backend,
		argnums: cfg.argnums,
	}
}

// Forward returns the function value from the most recent Compute call, or
// nil if Compute has not run yet.
func (j *Jacobian[B]) Forward() *tensor.RawTensor {
	return j.forward
}

// Compute evaluates fn at the given arguments and returns one Jacobian
// matrix per differentiable argument, in argument order. Each matrix has
// shape {outSize, inSize}: row k holds the gradient of output element k
// with respect to the flattened argument.
//
// The forward pass is recorded once; each output element costs one backward
// sweep over the tape with a one-hot seed. When no argument is
// differentiable the result is empty.
func (j *Jacobian[B]) Compute(args ...Value) ([]*tensor.RawTensor, error) {
	if j.fn == nil {
		return nil, fmt.Errorf("fn must be a callable function; got nil")
	}

	argnums := trainableArgnums(j.argnums, args)
	if err := checkArgnums(argnums, len(args)); err != nil {
		return nil, err
	}

	output, err := j.recordForward(args)
	if err != nil {
		return nil, err
	}
	j.forward = output

	if len(argnums) == 0 {
		return nil, nil
	}

	outSize := output.NumElements()
	tape := j.backend.GetTape()

	// One matrix per differentiable argument.
	mats := make([]*tensor.RawTensor, len(argnums))
	for m, n := range argnums {
		arg := args[n].Tensor
		mat, err := tensor.NewRaw(tensor.Shape{outSize, arg.NumElements()}, arg.DType(), arg.Device())
		if err != nil {
			return nil, err
		}
		mats[m] = mat
	}

	for k := 0; k < outSize; k++ {
		seed := tensor.ZerosLike(output)
		seed.SetFloatAt(k, 1)
		grads := tape.BackwardFrom(output, seed, j.backend)

		for m, n := range argnums {
			arg := args[n].Tensor
			gr, ok := grads[arg]
			if !ok {
				continue // Row stays zero: output element k does not depend on arg.
			}
			inSize := arg.NumElements()
			for c := 0; c < inSize; c++ {
				mats[m].SetFloatAt(k*inSize+c, gr.FloatAt(c))
			}
		}
	}

	return mats, nil
}

func (j *Jacobian[B]) recordForward(args []Value) (*tensor.RawTensor, error) {
	tape := j.backend.GetTape()
	tape.Clear()
	tape.StartRecording()
	defer tape.StopRecording()

	raws := make([]*tensor.RawTensor, len(args))
	for i, a := range args {
		raws[i] = a.Tensor
	}

	output := j.fn(j.backend, raws...)
	if output == nil {
		return nil, fmt.Errorf("function returned a nil tensor")
	}
	return output, nil
}
