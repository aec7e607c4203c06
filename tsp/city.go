package tsp

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// City is a named point on a rectangular grid, e.g. {"Atlanta", 585.6, 376.8}.
type City struct {
	Name string
	X    float64
	Y    float64
}

// NewCity builds a City from a name and an orb point.
func NewCity(name string, p orb.Point) City {
	return City{Name: name, X: p.X(), Y: p.Y()}
}

// Point returns the city's coordinate as an orb.Point.
func (c City) Point() orb.Point {
	return orb.Point{c.X, c.Y}
}

// EuclideanDistance returns sqrt((a.x-b.x)² + (a.y-b.y)²).
//
// Complexity: O(1).
func EuclideanDistance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
