package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceptiveFieldVertical(t *testing.T) {
	gen := NewGenerator(NewGaussianKernel([]float64{1}))
	conns := gen.VertConnections(5, 2, 2, 1, 5, 1, 1)

	rf := NewReceptiveField(conns, NeuronId(2, 2, 5), 5)

	assert.Equal(t, 6, rf.Sources())
	assert.Equal(t, 1.0, rf.Peak())
	assert.Equal(t, 1.0, rf.Get(1, 3))
	assert.Equal(t, 0.0, rf.Get(2, 3))
	assert.Equal(t, ""+
		".....\n"+
		".#.#.\n"+
		".#X#.\n"+
		".#.#.\n"+
		".....\n", rf.ToString())
}

func TestReceptiveFieldBlur(t *testing.T) {
	gen := threeTapGenerator()
	conns := gen.HorConnections(5, 2, 2, 1, 5, 1, 1)

	rf := NewReceptiveField(conns, 12, 5)

	// y=2 is sampled by both edges at the same weight and collapses to one synapse
	assert.Equal(t, ""+
		".+++.\n"+
		".###.\n"+
		".+++.\n"+
		".###.\n"+
		".+++.\n", rf.ToString())
	assert.Equal(t, 0.25, rf.Get(1, 2))
	assert.Equal(t, 0.5, rf.Get(1, 1))
	assert.Equal(t, 0.5, rf.Peak())
	assert.Equal(t, 15, rf.Sources())
}

func TestReceptiveFieldIgnoresOtherTargets(t *testing.T) {
	conns := []Connection{
		{0, 4, 1, 1},
		{1, 3, 2, 1},
		{Absent, 4, 1, 1},
	}

	rf := NewReceptiveField(conns, 4, 2)

	assert.Equal(t, []float64{1, 0, 0, 0}, rf.Flatten())
	assert.Equal(t, 1, rf.Sources())
}
