package shapes

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/assert"
)

func TestKernelOffsets(t *testing.T) {
	k := NewGaussianKernel([]float64{0.25, 0.5, 0.25})

	assert.Equal(t, 3, k.Len())
	assert.Equal(t, 1, k.Radius())
	assert.Equal(t, []Tap{{-1, 0.25}, {0, 0.5}, {1, 0.25}}, k.Taps())
	assert.Equal(t, 1.0, k.Mass())
}

func TestKernelSingleTap(t *testing.T) {
	k := NewGaussianKernel([]float64{2})

	assert.Equal(t, 0, k.Radius())
	assert.Equal(t, []Tap{{0, 2}}, k.Taps())
}

func TestKernelTapsAreCopied(t *testing.T) {
	weights := []float64{0.25, 0.5, 0.25}
	k := NewGaussianKernel(weights)
	weights[1] = 9

	taps := k.Taps()
	taps[0].Weight = 9

	assert.Equal(t, []float64{0.25, 0.5, 0.25}, k.Weights())
}

func TestValidateKernelWeights(t *testing.T) {
	assert.NoError(t, ValidateKernelWeights([]float64{1}))
	assert.NoError(t, ValidateKernelWeights([]float64{0.1, 0.2, 0.4, 0.2, 0.1}))

	assert.True(t, errors.Is(ValidateKernelWeights(nil), ErrInvalidKernel))
	assert.True(t, errors.Is(ValidateKernelWeights([]float64{0.5, 0.5}), ErrInvalidKernel))
	assert.True(t, errors.Is(ValidateKernelWeights([]float64{math.NaN()}), ErrInvalidKernel))
	assert.True(t, errors.Is(ValidateKernelWeights([]float64{1, math.Inf(1), 1}), ErrInvalidKernel))
}

func TestNewGaussianKernelPanics(t *testing.T) {
	assert.Panics(t, func() { NewGaussianKernel(nil) })
	assert.Panics(t, func() { NewGaussianKernel([]float64{1, 1, 1, 1}) })
}

func TestGaussianWeights(t *testing.T) {
	w := GaussianWeights(5, 1)

	assert.Equal(t, 5, len(w))
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)
	assert.Equal(t, 2, floats.MaxIdx(w))
	assert.Equal(t, w[0], w[4])
	assert.Equal(t, w[1], w[3])
	assert.True(t, w[0] < w[1] && w[1] < w[2])

	assert.Equal(t, []float64{1}, GaussianWeights(1, 3))
	assert.Panics(t, func() { GaussianWeights(4, 1) })
	assert.Panics(t, func() { GaussianWeights(3, 0) })
}

func TestDefaultGaussianWeights(t *testing.T) {
	assert.NoError(t, ValidateKernelWeights(DefaultGaussianWeights))
	assert.Equal(t, 2, NewGaussianKernel(DefaultGaussianWeights).Radius())
}
