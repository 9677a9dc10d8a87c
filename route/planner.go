// Package route sequences searches across an ordered list of waypoints:
// each waypoint is snapped to the nearest unblocked cell, each consecutive
// pair becomes one search leg, and leg paths are concatenated (dropping the
// duplicated joint node) into a single Route with summed cost.
//
// The planner holds only the injected function contracts plus an optional
// blocked mask for snapping; every leg search allocates and discards its own
// state, so one Planner may serve many Plan calls.
package route

import (
	"fmt"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/gridnav"
)

// defaultSnapRadius bounds the nearest-free ring search around waypoints.
const defaultSnapRadius = 25

// PlannerOptions configures waypoint snapping and leg searches.
//
// Blocked    – when non-nil, waypoints are snapped to the nearest unblocked
//
//	cell before each leg; a waypoint still blocked after snapping
//	fails the plan with ErrWaypointBlocked.
//
// SnapRadius – max ring radius for snapping; 0 selects the default (25).
// Search     – astar options applied identically to every leg.
type PlannerOptions struct {
	Blocked    [][]bool
	SnapRadius int
	Search     []astar.Option
}

// DefaultPlannerOptions returns options with no snapping mask, the default
// snap radius, and plain admissible search.
func DefaultPlannerOptions() PlannerOptions {
	return PlannerOptions{SnapRadius: defaultSnapRadius}
}

// Planner stitches per-leg searches into whole routes. Immutable once built.
type Planner struct {
	neighbors astar.NeighborsFunc
	cost      astar.CostFunc
	heuristic astar.HeuristicFunc
	opts      PlannerOptions
}

// NewPlanner validates the function contracts and builds a Planner.
// Returns astar.ErrNilNeighbors / ErrNilCost / ErrNilHeuristic for nil
// contracts — the same sentinels a direct Search would produce, surfaced
// before any planning begins — and gridnav.ErrBadRadius for a negative snap
// radius (zero selects the default). Complexity: O(1).
func NewPlanner(neighbors astar.NeighborsFunc, cost astar.CostFunc, heuristic astar.HeuristicFunc, opts PlannerOptions) (*Planner, error) {
	if neighbors == nil {
		return nil, astar.ErrNilNeighbors
	}
	if cost == nil {
		return nil, astar.ErrNilCost
	}
	if heuristic == nil {
		return nil, astar.ErrNilHeuristic
	}
	if opts.SnapRadius < 0 {
		return nil, gridnav.ErrBadRadius
	}
	if opts.SnapRadius == 0 {
		opts.SnapRadius = defaultSnapRadius
	}

	return &Planner{neighbors: neighbors, cost: cost, heuristic: heuristic, opts: opts}, nil
}

// Plan searches every consecutive waypoint pair and concatenates the legs.
//
// Returns:
//
//   - ErrTooFewWaypoints for fewer than two waypoints.
//   - ErrWaypointBlocked (wrapped with the waypoint index) when snapping
//     cannot free a waypoint.
//   - ErrNoRoute (wrapped with the 1-based leg number) when a leg search
//     finds no path — disconnected terrain, not a programming error, but the
//     route as a whole cannot be delivered.
//
// Leg results concatenate with the duplicated joint node dropped, so the
// returned path visits each snapped waypoint exactly once in order.
// Complexity: the sum of the leg searches.
func (p *Planner) Plan(waypoints []gridnav.Node) (Route, error) {
	if len(waypoints) < 2 {
		return Route{}, ErrTooFewWaypoints
	}

	// 1) Snap waypoints onto free cells when a mask is available.
	snapped := make([]gridnav.Node, len(waypoints))
	copy(snapped, waypoints)
	if p.opts.Blocked != nil {
		for i, w := range snapped {
			w = gridnav.NearestFree(w, p.opts.Blocked, p.opts.SnapRadius)
			if p.opts.Blocked[w.Row][w.Col] {
				return Route{}, fmt.Errorf("%w: waypoint %d", ErrWaypointBlocked, i)
			}
			snapped[i] = w
		}
	}

	// 2) Search each leg and stitch.
	var rt Route
	for i := 0; i < len(snapped)-1; i++ {
		res, err := astar.Search(snapped[i], snapped[i+1], p.neighbors, p.cost, p.heuristic, p.opts.Search...)
		if err != nil {
			return Route{}, err
		}
		if !res.Found() {
			return Route{}, fmt.Errorf("%w %d (expansions=%d)", ErrNoRoute, i+1, res.Expansions)
		}

		leg := res.Path
		if i > 0 {
			// The joint node closed the previous leg already.
			leg = leg[1:]
		}
		rt.Path = append(rt.Path, leg...)
		rt.Legs = append(rt.Legs, Leg{
			Start:      snapped[i],
			Goal:       snapped[i+1],
			Cost:       res.Cost,
			Expansions: res.Expansions,
		})
		rt.TotalCost += res.Cost
	}

	return rt, nil
}
