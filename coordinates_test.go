package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBounds(t *testing.T) {
	assert.True(t, CheckBounds(0, 0, 5))
	assert.True(t, CheckBounds(4, 4, 5))
	assert.False(t, CheckBounds(-1, 2, 5))
	assert.False(t, CheckBounds(2, -1, 5))
	assert.False(t, CheckBounds(5, 0, 5))
	assert.False(t, CheckBounds(0, 5, 5))
}

func TestNeuronIdColumnMajor(t *testing.T) {
	assert.Equal(t, 0, NeuronId(0, 0, 6))
	assert.Equal(t, 5, NeuronId(0, 5, 6))
	assert.Equal(t, 6, NeuronId(1, 0, 6))
	assert.Equal(t, 13, NeuronId(2, 1, 6))
	assert.Equal(t, Absent, NeuronId(6, 0, 6))
	assert.Equal(t, Absent, NeuronId(-1, -1, 6))
}

func TestNeuronIdRoundTrip(t *testing.T) {
	for _, res := range []int{1, 2, 5, 16} {
		seen := make(map[int]bool, res*res)
		for x := 0; x < res; x++ {
			for y := 0; y < res; y++ {
				id := NeuronId(x, y, res)
				assert.True(t, id >= 0 && id < res*res, "id %v out of range", id)
				assert.False(t, seen[id], "duplicate id %v", id)
				seen[id] = true

				cx, cy := CoordFromNeuron(id, res)
				assert.Equal(t, x, cx)
				assert.Equal(t, y, cy)
			}
		}
		assert.Equal(t, res*res, len(seen))
	}
}

func TestCoordinate(t *testing.T) {
	c := Coordinate{2, 3}
	assert.Equal(t, 13, c.Id(5))
	assert.Equal(t, Coordinate{1, 5}, c.Add(-1, 2))
	assert.Equal(t, Absent, c.Add(3, 0).Id(5))
}
