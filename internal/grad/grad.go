package grad

import (
	"fmt"

	"github.com/diffkit-ml/diffkit/internal/autodiff"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

// Func is a differentiable function: it consumes raw tensors and produces a
// single output tensor using the given backend, so that every intermediate
// operation is recorded on the backend's tape.
type Func[B autodiff.BackwardCapable] func(backend B, args ...*tensor.RawTensor) *tensor.RawTensor

// Option configures a Grad or Jacobian operator.
type Option func(*config)

type config struct {
	argnums []int
}

// WithArgnum fixes the argument positions to differentiate, overriding the
// per-Value RequiresGrad flags.
func WithArgnum(argnums ...int) Option {
	return func(c *config) {
		c.argnums = argnums
	}
}

// Grad computes the gradient of a scalar-output function with respect to its
// differentiable arguments.
type Grad[B autodiff.BackwardCapable] struct {
	fn      Func[B]
	backend B
	argnums []int
	forward *tensor.RawTensor
}

// New creates a gradient operator for fn over the given backend.
func New[B autodiff.BackwardCapable](backend B, fn Func[B], opts ...Option) *Grad[B] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Grad[B]{
		fn:      fn,
		backend: backend,
		argnums: cfg.argnums,
	}
}

// Forward returns the function value from the most recent Compute call, or
// nil if Compute has not run yet.
func (g *Grad[B]) Forward() *tensor.RawTensor {
	return g.forward
}

// Compute evaluates fn at the given arguments and returns one gradient
// tensor per differentiable argument, in argument order.
//
// The output must be a scalar; for vector-valued functions use Jacobian.
// Arguments the output does not depend on receive zero gradients. When no
// argument is differentiable the result is empty.
func (g *Grad[B]) Compute(args ...Value) ([]*tensor.RawTensor, error) {
	if g.fn == nil {
		return nil, fmt.Errorf("fn must be a callable function; got nil")
	}

	argnums := trainableArgnums(g.argnums, args)
	if err := checkArgnums(argnums, len(args)); err != nil {
		return nil, err
	}

	output, err := g.record(args)
	if err != nil {
		return nil, err
	}
	if output.NumElements() != 1 {
		return nil, fmt.Errorf(
			"Grad only applies to functions returning a single scalar value (got output shape %v); for vector-valued functions, use Jacobian",
			output.Shape())
	}
	g.forward = output

	if len(argnums) == 0 {
		return nil, nil
	}

	tape := g.backend.GetTape()
	seed := tensor.FullLike(output, 1)
	grads := tape.BackwardFrom(output, seed, g.backend)

	out := make([]*tensor.RawTensor, 0, len(argnums))
	for _, n := range argnums {
		if gr, ok := grads[args[n].Tensor]; ok {
			out = append(out, gr)
		} else {
			out = append(out, tensor.ZerosLike(args[n].Tensor))
		}
	}
	return out, nil
}

// record runs the forward pass with the tape recording and the previous
// contents cleared.
func (g *Grad[B]) record(args []Value) (*tensor.RawTensor, error) {
	tape := g.backend.GetTape()
	tape.Clear()
	tape.StartRecording()
	defer tape.StopRecording()

	raws := make([]*tensor.RawTensor, len(args))
	for i, a := range args {
		raws[i] = a.Tensor
	}

	output := g.fn(g.backend, raws...)
	if output == nil {
		return nil, fmt.Errorf("function returned a nil tensor")
	}
	return output, nil
}

func checkArgnums(argnums []int, n int) error {
	for _, a := range argnums {
		if a < 0 || a >= n {
			return fmt.Errorf("argnum must be between 0 and %d; got %d", n-1, a)
		}
	}
	return nil
}
