package fd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffkit-ml/diffkit/internal/fd"
	"github.com/diffkit-ml/diffkit/internal/tensor"
)

func TestGrid_SetAt(t *testing.T) {
	g := fd.NewGrid[fd.Scalar](tensor.Shape{2, 3})

	assert.Equal(t, 6, g.NumElements())
	assert.True(t, g.Shape().Equal(tensor.Shape{2, 3}))

	require.NoError(t, g.Set(tensor.Index{1, 2}, fd.Scalar(4.5)))

	got, err := g.At(tensor.Index{1, 2})
	require.NoError(t, err)
	assert.Equal(t, fd.Scalar(4.5), got)

	// Untouched cells hold the zero value.
	zero, err := g.At(tensor.Index{0, 0})
	require.NoError(t, err)
	assert.Zero(t, float64(zero))
}

func TestGrid_Scalar(t *testing.T) {
	g := fd.NewGrid[fd.Vec](tensor.Shape{})

	assert.Equal(t, 1, g.NumElements())

	require.NoError(t, g.Set(tensor.Index{}, fd.Vec{1, 2}))
	got, err := g.At(tensor.Index{})
	require.NoError(t, err)
	assert.Equal(t, fd.Vec{1, 2}, got)
}

func TestGrid_BadIndex(t *testing.T) {
	g := fd.NewGrid[fd.Scalar](tensor.Shape{2, 2})

	_, err := g.At(tensor.Index{0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have length 2")

	err = g.Set(tensor.Index{0, 2}, fd.Scalar(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestGrid_Values(t *testing.T) {
	g := fd.NewGrid[fd.Scalar](tensor.Shape{3})
	for k := 0; k < 3; k++ {
		require.NoError(t, g.Set(tensor.Index{k}, fd.Scalar(float64(k))))
	}
	assert.Equal(t, []fd.Scalar{0, 1, 2}, g.Values())
}
