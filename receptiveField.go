package shapes

import (
	"bytes"

	"github.com/gonum/floats"
	"github.com/skelterjohn/go.matrix"
)

//Summed synaptic weight from every source pixel onto one target
//neuron, laid out as an image: rows are y, columns are x
type ReceptiveField struct {
	Res     int
	Target  int
	weights *matrix.DenseMatrix
}

//Builds the receptive field of target from conns. Connections onto
//other targets, or with off-grid sources, are ignored
func NewReceptiveField(conns []Connection, target, res int) *ReceptiveField {
	if res <= 0 {
		panic("res must be positive.")
	}

	rf := new(ReceptiveField)
	rf.Res = res
	rf.Target = target
	rf.weights = matrix.MakeDenseMatrix(make([]float64, res*res), res, res)

	for _, c := range conns {
		if c.Target != target || c.Source < 0 || c.Source >= res*res {
			continue
		}
		x, y := CoordFromNeuron(c.Source, res)
		rf.weights.Set(y, x, rf.weights.Get(y, x)+c.Weight)
	}
	return rf
}

//Weight at pixel (x,y)
func (rf *ReceptiveField) Get(x, y int) float64 {
	return rf.weights.Get(y, x)
}

//Returns flattened weights, row (y) major
func (rf *ReceptiveField) Flatten() []float64 {
	result := make([]float64, 0, rf.Res*rf.Res)
	for y := 0; y < rf.Res; y++ {
		for x := 0; x < rf.Res; x++ {
			result = append(result, rf.weights.Get(y, x))
		}
	}
	return result
}

//Largest summed weight
func (rf *ReceptiveField) Peak() float64 {
	return floats.Max(rf.Flatten())
}

//Number of pixels with a non-zero weight
func (rf *ReceptiveField) Sources() int {
	return floats.Count(func(v float64) bool { return v != 0 }, rf.Flatten())
}

//Renders the field: '#' above half the peak, '+' at or below,
//'X' the target itself when it carries no weight, '.' elsewhere
func (rf *ReceptiveField) ToString() string {
	var buffer bytes.Buffer

	half := rf.Peak() / 2
	tx, ty := CoordFromNeuron(rf.Target, rf.Res)
	for y := 0; y < rf.Res; y++ {
		for x := 0; x < rf.Res; x++ {
			w := rf.weights.Get(y, x)
			switch {
			case w != 0 && w > half:
				buffer.WriteByte('#')
			case w != 0:
				buffer.WriteByte('+')
			case x == tx && y == ty:
				buffer.WriteByte('X')
			default:
				buffer.WriteByte('.')
			}
		}
		buffer.WriteByte('\n')
	}

	return buffer.String()
}
