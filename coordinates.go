package shapes

//Neuron id returned for coordinates outside the grid.
//Never a real id
const Absent = -1

//Grid position, column-major: X is the column, Y the row
type Coordinate struct {
	X int
	Y int
}

//Returns true if (x,y) lies inside the res x res grid
func CheckBounds(x, y, res int) bool {
	return x >= 0 && x < res && y >= 0 && y < res
}

//Converts an (x,y) grid coordinate to its neuron id.
//Pixels are numbered column-major:
//
//	        x
//	    0  6 12
//	    1  7 13
//	y   2  8  .
//	    3  9  .
//	    4 10  .
//	    5 11
//
//Returns Absent when the coordinate is off-grid
func NeuronId(x, y, res int) int {
	if !CheckBounds(x, y, res) {
		return Absent
	}
	return x*res + y
}

//Converts a neuron id back to its (x,y) grid coordinate
func CoordFromNeuron(id, res int) (x, y int) {
	y = id % res
	x = (id - y) / res
	return
}

//Neuron id of c in a res x res grid, Absent if off-grid
func (c Coordinate) Id(res int) int {
	return NeuronId(c.X, c.Y, res)
}

//Coordinate translated by (dx,dy)
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{c.X + dx, c.Y + dy}
}
