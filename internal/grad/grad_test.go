package grad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffkit-ml/diffkit/internal/autodiff"
	"github.com/diffkit-ml/diffkit/internal/backend/cpu"
	"github.com/diffkit-ml/diffkit/internal/fd"
	"github.com/diffkit-ml/diffkit/internal/grad"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

type testBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend() testBackend {
	return autodiff.New(cpu.New())
}

func scalar64(t *testing.T, v float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	raw.SetFloatAt(0, v)
	return raw
}

func vector64(t *testing.T, data ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), data)
	return raw
}

func TestGrad_Square(t *testing.T) {
	backend := newBackend()
	g := grad.New(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[0])
	})

	grads, err := g.Compute(grad.Var(scalar64(t, 3.0)))
	require.NoError(t, err)

	require.Len(t, grads, 1)
	assert.InDelta(t, 6.0, grads[0].FloatAt(0), 1e-12)
	assert.InDelta(t, 9.0, g.Forward().FloatAt(0), 1e-12)
}

func TestGrad_Identity(t *testing.T) {
	// f(x) = x records nothing on the tape; the gradient is still 1.
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return args[0]
	})

	grads, err := g.Compute(grad.Var(scalar64(t, 3.0)))
	require.NoError(t, err)

	require.Len(t, grads, 1)
	assert.InDelta(t, 1.0, grads[0].FloatAt(0), 1e-12)
	assert.InDelta(t, 3.0, g.Forward().FloatAt(0), 1e-12)
}

func TestGrad_ForwardNilBeforeCompute(t *testing.T) {
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return args[0]
	})
	assert.Nil(t, g.Forward())
}

func TestGrad_ConstArgument(t *testing.T) {
	backend := newBackend()
	// f(x, y) = Σ x·y
	fn := func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sum(b.Mul(args[0], args[1]))
	}

	x := vector64(t, 1.0, 2.0)
	y := vector64(t, 3.0, 4.0)

	g := grad.New(backend, fn)
	grads, err := g.Compute(grad.Var(x), grad.Const(y))
	require.NoError(t, err)

	require.Len(t, grads, 1, "only the Var argument gets a gradient")
	assert.Equal(t, []float64{3, 4}, grads[0].AsFloat64())
}

func TestGrad_BothArguments(t *testing.T) {
	backend := newBackend()
	fn := func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sum(b.Mul(args[0], args[1]))
	}

	x := vector64(t, 1.0, 2.0)
	y := vector64(t, 3.0, 4.0)

	g := grad.New(backend, fn)
	grads, err := g.Compute(grad.Var(x), grad.Var(y))
	require.NoError(t, err)

	require.Len(t, grads, 2)
	assert.Equal(t, []float64{3, 4}, grads[0].AsFloat64())
	assert.Equal(t, []float64{1, 2}, grads[1].AsFloat64())
}

func TestGrad_WithArgnumOverride(t *testing.T) {
	backend := newBackend()
	fn := func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sum(b.Mul(args[0], args[1]))
	}

	x := vector64(t, 1.0, 2.0)
	y := vector64(t, 3.0, 4.0)

	// Flags say x only, override says y only.
	g := grad.New(backend, fn, grad.WithArgnum(1))
	grads, err := g.Compute(grad.Var(x), grad.Const(y))
	require.NoError(t, err)

	require.Len(t, grads, 1)
	assert.Equal(t, []float64{1, 2}, grads[0].AsFloat64())
}

func TestGrad_ArgnumOutOfRange(t *testing.T) {
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return args[0]
	}, grad.WithArgnum(2))

	_, err := g.Compute(grad.Var(scalar64(t, 1.0)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 0")
}

func TestGrad_VectorOutputRejected(t *testing.T) {
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[0])
	})

	_, err := g.Compute(grad.Var(vector64(t, 1, 2)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Jacobian")
}

func TestGrad_NoTrainableArguments(t *testing.T) {
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sum(args[0])
	})

	grads, err := g.Compute(grad.Const(vector64(t, 1, 2)))
	require.NoError(t, err)
	assert.Empty(t, grads)

	// The forward value is still cached.
	assert.InDelta(t, 3.0, g.Forward().FloatAt(0), 1e-12)
}

func TestGrad_UnusedArgumentZeroGradient(t *testing.T) {
	g := grad.New(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sum(args[0])
	})

	x := vector64(t, 1, 2)
	unused := vector64(t, 5, 6, 7)

	grads, err := g.Compute(grad.Var(x), grad.Var(unused))
	require.NoError(t, err)

	require.Len(t, grads, 2)
	assert.Equal(t, []float64{1, 1}, grads[0].AsFloat64())
	assert.Equal(t, []float64{0, 0, 0}, grads[1].AsFloat64())
}

func TestGrad_RepeatedCompute(t *testing.T) {
	backend := newBackend()
	g := grad.New(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[0])
	})

	for _, v := range []float64{1.0, 2.0, -3.5} {
		grads, err := g.Compute(grad.Var(scalar64(t, v)))
		require.NoError(t, err)
		require.Len(t, grads, 1)
		assert.InDelta(t, 2*v, grads[0].FloatAt(0), 1e-12, "at %v", v)
	}
}

// TestGrad_MatchesFiniteDifference cross-checks the reverse-mode gradient
// of sin(x)·exp(x) against the centered-difference estimate.
func TestGrad_MatchesFiniteDifference(t *testing.T) {
	backend := newBackend()
	g := grad.New(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(b.Sin(args[0]), b.Exp(args[0]))
	})

	point := 0.37
	grads, err := g.Compute(grad.Var(scalar64(t, point)))
	require.NoError(t, err)
	require.Len(t, grads, 1)

	numeric, err := fd.FiniteDiff(func(x *tensor.RawTensor) fd.Scalar {
		v := x.FloatAt(0)
		return fd.Scalar(math.Sin(v) * math.Exp(v))
	}, scalar64(t, point), 0, 1e-5)
	require.NoError(t, err)

	assert.InDelta(t, float64(numeric), grads[0].FloatAt(0), 1e-8)
}

func TestGrad_NilFunc(t *testing.T) {
	g := grad.New[testBackend](newBackend(), nil)
	_, err := g.Compute(grad.Var(scalar64(t, 1.0)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callable")
}
