package main

import (
	"bytes"
	"testing"

	"github.com/htm-community/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	order := []shapes.Layer{
		{Template: shapes.Vertical, Stride: 1},
		{Template: shapes.LeftDiagonal, Stride: 2},
		{Template: shapes.Horizontal, Stride: 0},
	}
	layers := map[shapes.Layer][]shapes.Connection{
		order[0]: {{Source: 3, Target: 12, Weight: 0.25, Delay: 1}, {Source: 7, Target: 12, Weight: 0.5, Delay: 1}},
		order[1]: {{Source: 0, Target: 6, Weight: 1e-7, Delay: 2.5}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, order, layers))

	assert.Equal(t, ""+
		"layer,source,target,weight,delay\n"+
		"vertical/1,3,12,0.25,1\n"+
		"vertical/1,7,12,0.5,1\n"+
		"left_diagonal/2,0,6,1e-07,2.5\n", buf.String())
}

func TestWriteCSVGeneratedLayer(t *testing.T) {
	gen := shapes.NewGenerator(shapes.NewGaussianKernel([]float64{1}))
	layer := shapes.Layer{Template: shapes.Vertical, Stride: 0}
	conns := gen.VertConnections(3, 1, 1, 0, 3, 2, 1)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, []shapes.Layer{layer}, map[shapes.Layer][]shapes.Connection{layer: conns}))

	assert.Equal(t, "layer,source,target,weight,delay\nvertical/0,4,4,2,1\n", buf.String())
}
