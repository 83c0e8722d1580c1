package shapes

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

//Default five tap kernel, sigma of one pixel
var DefaultGaussianWeights = GaussianWeights(5, 1)

//One kernel tap: a pixel offset from the template edge and the
//weight applied to connections sampled at that offset
type Tap struct {
	Offset int
	Weight float64
}

/*
 GaussianKernel spreads each sampled template edge over a small
neighbourhood perpendicular (or diagonal) to it. Offsets are the
consecutive integers -(K/2) .. K/2 paired element-wise with the
configured weights, K being the odd number of weights.

A kernel is immutable once built and safe for concurrent use.
*/
type GaussianKernel struct {
	taps []Tap
}

//Checks a weight sequence can be used as a kernel
func ValidateKernelWeights(weights []float64) error {
	if len(weights) == 0 || len(weights)%2 == 0 {
		return fmt.Errorf("%w: got %v weights", ErrInvalidKernel, len(weights))
	}
	if floats.HasNaN(weights) {
		return fmt.Errorf("%w: NaN weight", ErrInvalidKernel)
	}
	for _, w := range weights {
		if math.IsInf(w, 0) {
			return fmt.Errorf("%w: infinite weight", ErrInvalidKernel)
		}
	}
	return nil
}

//Builds a kernel from an odd length weight sequence.
//Panics if the weights are invalid, use ValidateKernelWeights
//to check configuration first
func NewGaussianKernel(weights []float64) *GaussianKernel {
	if err := ValidateKernelWeights(weights); err != nil {
		panic(err)
	}

	k := new(GaussianKernel)
	k.taps = make([]Tap, len(weights))
	half := len(weights) / 2
	for i, w := range weights {
		k.taps[i] = Tap{Offset: i - half, Weight: w}
	}
	return k
}

//Returns a copy of the kernel taps, ordered by offset
func (k *GaussianKernel) Taps() []Tap {
	result := make([]Tap, len(k.taps))
	copy(result, k.taps)
	return result
}

//Number of taps
func (k *GaussianKernel) Len() int {
	return len(k.taps)
}

//Largest absolute offset, K/2
func (k *GaussianKernel) Radius() int {
	return len(k.taps) / 2
}

//Returns the kernel weights ordered by offset
func (k *GaussianKernel) Weights() []float64 {
	result := make([]float64, len(k.taps))
	for i, tap := range k.taps {
		result[i] = tap.Weight
	}
	return result
}

//Sum of the kernel weights. Not required to be 1
func (k *GaussianKernel) Mass() float64 {
	return floats.Sum(k.Weights())
}

func (k *GaussianKernel) String() string {
	return fmt.Sprintf("GaussianKernel%v", k.taps)
}

//Returns n samples of a gaussian with the given sigma, centred
//on the middle sample and normalised to sum to 1.
//Panics if n is not a positive odd number or sigma <= 0
func GaussianWeights(n int, sigma float64) []float64 {
	if n <= 0 || n%2 == 0 {
		panic("param n must be an odd positive integer.")
	}
	if sigma <= 0 {
		panic("param sigma must be positive.")
	}

	result := make([]float64, n)
	half := n / 2
	for i := range result {
		d := float64(i - half)
		result[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(result), result)
	return result
}
