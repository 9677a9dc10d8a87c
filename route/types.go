// Package route defines result types and sentinel errors for multi-waypoint
// planning in github.com/katalvlaran/terrapath.
package route

import (
	"errors"

	"github.com/katalvlaran/terrapath/gridnav"
)

// Sentinel errors for route planning.
var (
	// ErrTooFewWaypoints indicates fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("route: at least two waypoints required")
	// ErrWaypointBlocked indicates a waypoint that stayed blocked after
	// nearest-free snapping — a planning precondition failure.
	ErrWaypointBlocked = errors.New("route: waypoint blocked beyond snap radius")
	// ErrNoRoute indicates a leg for which no path exists.
	ErrNoRoute = errors.New("route: no path for leg")
	// ErrEmptyRoute indicates an export of a route without a path.
	ErrEmptyRoute = errors.New("route: route has no path")
)

// Leg records one start→goal segment of a planned route.
type Leg struct {
	Start, Goal gridnav.Node
	Cost        float64
	Expansions  int
}

// Route is the stitched result of planning across an ordered waypoint list:
// the concatenated path (joint nodes deduplicated), per-leg records, and the
// summed total cost.
type Route struct {
	Path      []gridnav.Node
	Legs      []Leg
	TotalCost float64
}
