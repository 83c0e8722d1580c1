package shapes

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cznic/mathutil"
	"github.com/skelterjohn/go.matrix"
	"golang.org/x/sync/errgroup"
)

//One detector population: a template at one square scale
type Layer struct {
	Template Template
	Stride   int
}

func (l Layer) String() string {
	return fmt.Sprintf("%v/%v", l.Template, l.Stride)
}

type ProjectionParams struct {
	//Side of the square grid, used for sources and targets
	Resolution int
	Templates  []Template
	Strides    []int
	Weight     float64
	Delay      float64
	//Max concurrent generator workers, <= 0 means one per CPU
	Workers int
	Logger  *slog.Logger
}

func NewProjectionParams(res int) *ProjectionParams {
	p := new(ProjectionParams)
	p.Resolution = res
	p.Templates = append([]Template(nil), Templates...)
	p.Strides = []int{1}
	p.Weight = 1
	p.Delay = 1
	return p
}

//Layers in template-major order
func (p *ProjectionParams) Layers() []Layer {
	result := make([]Layer, 0, len(p.Templates)*len(p.Strides))
	for _, t := range p.Templates {
		for _, s := range p.Strides {
			result = append(result, Layer{t, s})
		}
	}
	return result
}

/*
 Projection wires every neuron of a res x res grid as the target of
each configured layer, the way a simulator builds one shape detector
population per template and scale. Generator calls are independent,
so targets are fanned out over a bounded pool of goroutines and the
per-target sets are merged in target order.
*/
type Projection struct {
	params ProjectionParams
	gen    *Generator
	log    *slog.Logger
}

func NewProjection(gen *Generator, params ProjectionParams) *Projection {
	if gen == nil {
		panic("generator must not be nil.")
	}
	if params.Resolution <= 0 {
		panic(fmt.Errorf("%w: resolution %v", ErrInvalidGeometry, params.Resolution))
	}
	for _, s := range params.Strides {
		if s < 0 {
			panic(fmt.Errorf("%w: stride %v", ErrInvalidGeometry, s))
		}
	}

	p := new(Projection)
	p.params = params
	p.gen = gen
	p.log = params.Logger
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

func (p *Projection) workers() int {
	n := p.params.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return mathutil.Clamp(n, 1, p.params.Resolution)
}

//Builds the connection list of a single layer: every grid neuron
//as target, deduplicated per target
func (p *Projection) BuildLayer(ctx context.Context, layer Layer) ([]Connection, error) {
	if _, ok := layer.Template.spec(); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTemplate, int(layer.Template))
	}
	if layer.Stride < 0 {
		return nil, fmt.Errorf("%w: stride %v", ErrInvalidGeometry, layer.Stride)
	}

	res := p.params.Resolution
	columns := make([][]Connection, res)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for x := 0; x < res; x++ {
		g.Go(func() error {
			var col []Connection
			for y := 0; y < res; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				geom := NewGeometry(res, x, y, layer.Stride, p.params.Weight, p.params.Delay)
				col = append(col, p.gen.Connections(layer.Template, geom)...)
			}
			columns[x] = col
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building layer %v: %w", layer, err)
	}

	total := 0
	for _, col := range columns {
		total += len(col)
	}
	result := make([]Connection, 0, total)
	for _, col := range columns {
		result = append(result, col...)
	}

	p.log.Debug("layer built",
		"layer", layer.String(),
		"targets", res*res,
		"connections", len(result))

	return result, nil
}

//Builds every configured layer
func (p *Projection) Build(ctx context.Context) (map[Layer][]Connection, error) {
	layers := p.params.Layers()
	result := make(map[Layer][]Connection, len(layers))
	total := 0

	for _, layer := range layers {
		conns, err := p.BuildLayer(ctx, layer)
		if err != nil {
			return nil, err
		}
		result[layer] = conns
		total += len(conns)
	}

	p.log.Info("projection built",
		"resolution", p.params.Resolution,
		"layers", len(layers),
		"workers", p.workers(),
		"kernel_taps", p.gen.Kernel().Len(),
		"connections", total)

	return result, nil
}

//Folds connections into a sources x targets weight matrix.
//Weights of repeated (source,target) pairs are summed
func WeightMatrix(conns []Connection, sources, targets int) *matrix.SparseMatrix {
	elms := make(map[int]float64, len(conns))
	m := matrix.MakeSparseMatrix(elms, sources, targets)
	for _, c := range conns {
		if !c.Valid() || c.Source >= sources || c.Target >= targets {
			continue
		}
		m.Set(c.Source, c.Target, m.Get(c.Source, c.Target)+c.Weight)
	}
	return m
}
