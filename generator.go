package shapes

import (
	"fmt"

	"github.com/htm-community/shapes/utils"
)

/*
 Geometry holds the per-call inputs of a template: the target
coordinate (X,Y) in a TargetRes grid, the half-size Stride of the
square being detected, and the base synaptic Weight and Delay.
Sources are encoded against SourceRes. Both resolutions are normally
equal, each is only used for its own side's bounds check and id.
*/
type Geometry struct {
	SourceRes int
	TargetRes int
	X         int
	Y         int
	Stride    int
	Weight    float64
	Delay     float64
}

//Geometry for a single res x res grid
func NewGeometry(res, x, y, stride int, weight, delay float64) Geometry {
	return Geometry{
		SourceRes: res,
		TargetRes: res,
		X:         x,
		Y:         y,
		Stride:    stride,
		Weight:    weight,
		Delay:     delay,
	}
}

func (g Geometry) Validate() error {
	if g.Stride < 0 {
		return fmt.Errorf("%w: stride %v", ErrInvalidGeometry, g.Stride)
	}
	if g.SourceRes <= 0 || g.TargetRes <= 0 {
		return fmt.Errorf("%w: resolution %vx%v", ErrInvalidGeometry, g.SourceRes, g.TargetRes)
	}
	return nil
}

//Target neuron id, Absent when (X,Y) is off the target grid
func (g Geometry) Target() int {
	return NeuronId(g.X, g.Y, g.TargetRes)
}

/*
 Generator produces the connection lists of the four templates using
one shared kernel. It holds no mutable state, a single Generator can
be used from many goroutines.
*/
type Generator struct {
	kernel *GaussianKernel
}

func NewGenerator(kernel *GaussianKernel) *Generator {
	if kernel == nil {
		panic("kernel must not be nil.")
	}
	return &Generator{kernel: kernel}
}

func (gen *Generator) Kernel() *GaussianKernel {
	return gen.kernel
}

//Returns the raw, unfiltered candidates of template t: two per
//(tap, i) pair, taps in the outer loop. Off-grid ends are Absent.
//Panics on an unknown template or invalid geometry
func (gen *Generator) Candidates(t Template, g Geometry) []Connection {
	spec, ok := t.spec()
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownTemplate, int(t)))
	}
	if err := g.Validate(); err != nil {
		panic(err)
	}

	taps := gen.kernel.taps
	tapIdx := make([]int, len(taps))
	utils.FillSliceWithIdxInt(tapIdx)
	span := utils.IntRange(spec.span(g.Stride))

	target := g.Target()
	pairs := utils.CartProductInt([][]int{tapIdx, span})
	result := make([]Connection, 0, 2*len(pairs))

	for _, p := range pairs {
		tap := taps[p[0]]
		w := g.Weight * tap.Weight
		a, b := spec.sources(g.X, g.Y, g.Stride, p[1], tap.Offset)
		result = append(result,
			Connection{a.Id(g.SourceRes), target, w, g.Delay},
			Connection{b.Id(g.SourceRes), target, w, g.Delay})
	}

	return result
}

//Returns the deduplicated in-grid connections of template t onto
//the target neuron (X,Y), sorted by source
func (gen *Generator) Connections(t Template, g Geometry) []Connection {
	return FinalizeConnections(gen.Candidates(t, g))
}

//Neurons modelling the vertical sides of a square of size 2*stride+1
//centred on (x,y)
func (gen *Generator) VertConnections(r1, x, y, stride, r2 int, w, d float64) []Connection {
	return gen.Connections(Vertical, Geometry{r1, r2, x, y, stride, w, d})
}

//Neurons modelling the horizontal sides of a square of size 2*stride+1
//centred on (x,y)
func (gen *Generator) HorConnections(r1, x, y, stride, r2 int, w, d float64) []Connection {
	return gen.Connections(Horizontal, Geometry{r1, r2, x, y, stride, w, d})
}

//Neurons modelling the "\" diagonal sides of a square of size 2*stride+1
func (gen *Generator) LeftDiagConnections(r1, x, y, stride, r2 int, w, d float64) []Connection {
	return gen.Connections(LeftDiagonal, Geometry{r1, r2, x, y, stride, w, d})
}

//Neurons modelling the "/" diagonal sides of a square of size 2*stride+1
func (gen *Generator) RightDiagConnections(r1, x, y, stride, r2 int, w, d float64) []Connection {
	return gen.Connections(RightDiagonal, Geometry{r1, r2, x, y, stride, w, d})
}
