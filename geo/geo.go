// Package geo provides coordinate tables and the distance-based heuristics used to
// guide the A* search.
//
// A Heuristic estimates the remaining cost between two node IDs. Coordinates are
// always injected by the caller; the package keeps no global tables.
//
// Euclidean is the default estimate: the straight-line distance between the two
// (latitude, longitude) pairs, truncated toward zero. The same estimate is applied
// to both cost metrics. It is a lower bound for time only when every edge's time is
// at least the coordinate distance of its endpoints, and it carries no such
// guarantee for price, so price-metric searches guided by it may return a
// suboptimal route. Pass Zero to the search when optimality under price matters.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Unbounded is returned when an estimate cannot be computed, e.g. because a node has
// no coordinate. Added to any cost it saturates, pushing the node to the back of the
// frontier.
const Unbounded int64 = math.MaxInt64

// Heuristic estimates the remaining cost from one node to another.
// Implementations must be safe for concurrent use and return a value ≥ 0.
type Heuristic func(from, to string) int64

// Zero is the trivial heuristic. A* guided by Zero expands nodes in Dijkstra order
// and is optimal under any non-negative metric.
func Zero(_, _ string) int64 { return 0 }

// Point is a geographic position in decimal degrees.
type Point struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Orb converts p into an orb.Point (X = longitude, Y = latitude).
func (p Point) Orb() orb.Point { return orb.Point{p.Lon, p.Lat} }

// Coordinates maps node IDs to positions. Nodes absent from the map have no
// position; heuristics return Unbounded for them.
type Coordinates map[string]Point

// Lookup returns the position of id and whether it is known.
func (c Coordinates) Lookup(id string) (Point, bool) {
	p, ok := c[id]

	return p, ok
}

// Distance returns the straight-line distance in degree space between a and b.
// ok is false if either coordinate is missing.
func (c Coordinates) Distance(a, b string) (d float64, ok bool) {
	pa, okA := c.Lookup(a)
	pb, okB := c.Lookup(b)
	if !okA || !okB {
		return 0, false
	}

	return planar.Distance(pa.Orb(), pb.Orb()), true
}

// Euclidean returns the straight-line heuristic over c. The distance is truncated
// toward zero; a missing coordinate on either side yields Unbounded.
func (c Coordinates) Euclidean() Heuristic {
	return func(from, to string) int64 {
		d, ok := c.Distance(from, to)
		if !ok {
			return Unbounded
		}

		return truncate(d)
	}
}

// Haversine returns a great-circle heuristic over c, expressed as meters divided by
// metersPerUnit and truncated toward zero. For a time metric in minutes and an
// aircraft that never exceeds v m/min, metersPerUnit = v keeps the estimate admissible.
// A non-positive metersPerUnit is treated as 1.
func (c Coordinates) Haversine(metersPerUnit float64) Heuristic {
	if metersPerUnit <= 0 {
		metersPerUnit = 1
	}

	return func(from, to string) int64 {
		pa, okA := c.Lookup(from)
		pb, okB := c.Lookup(to)
		if !okA || !okB {
			return Unbounded
		}

		return truncate(orbgeo.DistanceHaversine(pa.Orb(), pb.Orb()) / metersPerUnit)
	}
}

// truncate converts a non-negative distance into an int64 estimate, clamping
// values that do not fit.
func truncate(d float64) int64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if d >= math.MaxInt64 {
		return Unbounded
	}

	return int64(d)
}
