package shapes

import (
	"fmt"
	"strings"
)

//Geometric primitive a detector neuron is wired to respond to
type Template int

const (
	//Left and right vertical sides of a square
	Vertical Template = iota
	//Top and bottom horizontal sides of a square
	Horizontal
	//"\" diagonal rays
	LeftDiagonal
	//"/" diagonal rays
	RightDiagonal
)

//All templates in declaration order
var Templates = []Template{Vertical, Horizontal, LeftDiagonal, RightDiagonal}

var templateNames = map[Template]string{
	Vertical:      "vertical",
	Horizontal:    "horizontal",
	LeftDiagonal:  "left_diagonal",
	RightDiagonal: "right_diagonal",
}

func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Template(%d)", int(t))
}

//Returns the template for a name as printed by String.
//Case-insensitive
func ParseTemplate(name string) (Template, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range templateNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

func (t Template) MarshalText() ([]byte, error) {
	if _, ok := templateNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTemplate, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := ParseTemplate(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

/*
 templateSpec is the per-template strategy: the inclusive range of the
inner loop index i for a given stride, and the two source coordinates
sampled at (i, offset) around target (x,y). The two sources are the two
opposite sides of the square, or the two opposite diagonal rays.
*/
type templateSpec struct {
	span    func(stride int) (lo, hi int)
	sources func(x, y, stride, i, offset int) (a, b Coordinate)
}

func sideSpan(stride int) (int, int) {
	return -stride, stride
}

func diagSpan(stride int) (int, int) {
	return 0, 2 * stride
}

var templateSpecs = map[Template]templateSpec{
	Vertical: {
		span: sideSpan,
		sources: func(x, y, s, i, o int) (Coordinate, Coordinate) {
			return Coordinate{x - s + o, y + i}, Coordinate{x + s + o, y + i}
		},
	},
	Horizontal: {
		span: sideSpan,
		sources: func(x, y, s, i, o int) (Coordinate, Coordinate) {
			return Coordinate{x + i, y - s + o}, Coordinate{x + i, y + s + o}
		},
	},
	// The two rays shift by (+o,-o); they are not mirror images of
	// the RightDiagonal rays, which shift by (+o,+o).
	LeftDiagonal: {
		span: diagSpan,
		sources: func(x, y, s, i, o int) (Coordinate, Coordinate) {
			return Coordinate{x - 2*s + i + o, y + i - o}, Coordinate{x + i + o, y - 2*s + i - o}
		},
	},
	RightDiagonal: {
		span: diagSpan,
		sources: func(x, y, s, i, o int) (Coordinate, Coordinate) {
			return Coordinate{x - 2*s + i + o, y - i + o}, Coordinate{x + i + o, y + 2*s - i + o}
		},
	},
}

func (t Template) spec() (templateSpec, bool) {
	s, ok := templateSpecs[t]
	return s, ok
}
