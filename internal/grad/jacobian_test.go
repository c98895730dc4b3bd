package grad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffkit-ml/diffkit/internal/grad"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

func TestJacobian_Elementwise(t *testing.T) {
	backend := newBackend()
	// y = x ⊙ x, so J = diag(2x)
	j := grad.NewJacobian(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[0])
	})

	mats, err := j.Compute(grad.Var(vector64(t, 1.0, 3.0)))
	require.NoError(t, err)

	require.Len(t, mats, 1)
	assert.True(t, mats[0].Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{
		2, 0,
		0, 6,
	}, mats[0].AsFloat64())
}

func TestJacobian_Identity(t *testing.T) {
	// y = x records nothing on the tape; the Jacobian is still the
	// identity matrix.
	j := grad.NewJacobian(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return args[0]
	})

	mats, err := j.Compute(grad.Var(vector64(t, 4.0, 5.0)))
	require.NoError(t, err)

	require.Len(t, mats, 1)
	assert.True(t, mats[0].Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{
		1, 0,
		0, 1,
	}, mats[0].AsFloat64())
}

func TestJacobian_Scale(t *testing.T) {
	backend := newBackend()
	// y = 3x, so J = 3·I
	j := grad.NewJacobian(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Scale(args[0], 3)
	})

	mats, err := j.Compute(grad.Var(vector64(t, 1, 2, 3)))
	require.NoError(t, err)

	require.Len(t, mats, 1)
	assert.True(t, mats[0].Shape().Equal(tensor.Shape{3, 3}))
	assert.Equal(t, []float64{
		3, 0, 0,
		0, 3, 0,
		0, 0, 3,
	}, mats[0].AsFloat64())
}

func TestJacobian_TwoArguments(t *testing.T) {
	backend := newBackend()
	// y = x ⊙ w: ∂y_k/∂x_k = w_k, ∂y_k/∂w_k = x_k
	j := grad.NewJacobian(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[1])
	})

	x := vector64(t, 1.0, 2.0)
	w := vector64(t, 5.0, 7.0)

	mats, err := j.Compute(grad.Var(x), grad.Var(w))
	require.NoError(t, err)

	require.Len(t, mats, 2)
	assert.Equal(t, []float64{
		5, 0,
		0, 7,
	}, mats[0].AsFloat64())
	assert.Equal(t, []float64{
		1, 0,
		0, 2,
	}, mats[1].AsFloat64())
}

func TestJacobian_ScalarInput(t *testing.T) {
	backend := newBackend()
	// y = sin(x) with scalar x: J has shape {1, 1} holding cos(x).
	j := grad.NewJacobian(backend, func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Sin(args[0])
	})

	mats, err := j.Compute(grad.Var(scalar64(t, 0.0)))
	require.NoError(t, err)

	require.Len(t, mats, 1)
	assert.True(t, mats[0].Shape().Equal(tensor.Shape{1, 1}))
	assert.InDelta(t, 1.0, mats[0].FloatAt(0), 1e-12)
}

func TestJacobian_NoTrainableArguments(t *testing.T) {
	j := grad.NewJacobian(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Neg(args[0])
	})

	mats, err := j.Compute(grad.Const(vector64(t, 1, 2)))
	require.NoError(t, err)
	assert.Empty(t, mats)

	assert.Equal(t, []float64{-1, -2}, j.Forward().AsFloat64())
}

func TestJacobian_WithArgnumOverride(t *testing.T) {
	j := grad.NewJacobian(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return b.Mul(args[0], args[1])
	}, grad.WithArgnum(1))

	x := vector64(t, 1.0, 2.0)
	w := vector64(t, 5.0, 7.0)

	mats, err := j.Compute(grad.Var(x), grad.Var(w))
	require.NoError(t, err)

	require.Len(t, mats, 1)
	assert.Equal(t, []float64{
		1, 0,
		0, 2,
	}, mats[0].AsFloat64())
}

func TestJacobian_ArgnumOutOfRange(t *testing.T) {
	j := grad.NewJacobian(newBackend(), func(b testBackend, args ...*tensor.RawTensor) *tensor.RawTensor {
		return args[0]
	}, grad.WithArgnum(-1))

	_, err := j.Compute(grad.Var(scalar64(t, 1.0)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got -1")
}
