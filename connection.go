package shapes

import (
	"fmt"
	"math"
	"sort"
)

//A synapse from Source onto Target. Either id may be Absent
//on a raw candidate, never on a filtered one
type Connection struct {
	Source int
	Target int
	Weight float64
	Delay  float64
}

//Bit-exact identity of a connection, so -0/+0 and NaN payloads
//are told apart the same way every time
type connectionKey struct {
	source int
	target int
	weight uint64
	delay  uint64
}

func (c Connection) key() connectionKey {
	return connectionKey{c.Source, c.Target, math.Float64bits(c.Weight), math.Float64bits(c.Delay)}
}

//True if both ends reference an in-grid neuron
func (c Connection) Valid() bool {
	return c.Source != Absent && c.Target != Absent
}

func (c Connection) String() string {
	return fmt.Sprintf("%v->%v w=%v d=%v", c.Source, c.Target, c.Weight, c.Delay)
}

//Drops candidates whose source or target is off-grid.
//Input order is preserved
func FilterConnections(candidates []Connection) []Connection {
	result := make([]Connection, 0, len(candidates))
	for _, c := range candidates {
		if c.Valid() {
			result = append(result, c)
		}
	}
	return result
}

//Collapses bit-identical connections, keeping the first occurrence
func DedupeConnections(conns []Connection) []Connection {
	seen := make(map[connectionKey]struct{}, len(conns))
	result := make([]Connection, 0, len(conns))
	for _, c := range conns {
		k := c.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, c)
	}
	return result
}

//Sorts by target, source, weight then delay
func SortConnections(conns []Connection) {
	sort.Slice(conns, func(i, j int) bool {
		a, b := conns[i], conns[j]
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		return a.Delay < b.Delay
	})
}

//Filters, dedupes and sorts candidates
func FinalizeConnections(candidates []Connection) []Connection {
	result := DedupeConnections(FilterConnections(candidates))
	SortConnections(result)
	return result
}
