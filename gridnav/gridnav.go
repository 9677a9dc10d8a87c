// Package gridnav provides the geometric half of grid pathfinding:
// bounded 4-/8-connected neighbor generation and nearest-unblocked snapping.
//
// Cells are addressed by Node{Row, Col}. Neighbor generation supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - An optional region-of-interest rectangle that neighbors never leave
//
// Blocked-cell semantics live in the cost models, not here.
package gridnav

import (
	"math"
)

// New constructs a Graph for an height×width grid.
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadROI when the
// configured region of interest is degenerate or exceeds the grid.
// Complexity: O(1) time and memory.
func New(height, width int, opts GridOptions) (*Graph, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.ROI != nil {
		r := *opts.ROI
		if r.MinRow > r.MaxRow || r.MinCol > r.MaxCol ||
			r.MinRow < 0 || r.MinCol < 0 || r.MaxRow >= height || r.MaxCol >= width {
			return nil, ErrBadROI
		}
	}
	// Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}
	g := &Graph{
		height:          height,
		width:           width,
		conn:            opts.Conn,
		roi:             opts.ROI,
		neighborOffsets: offsets,
	}

	return g, nil
}

// Height returns the number of grid rows. Complexity: O(1).
func (g *Graph) Height() int { return g.height }

// Width returns the number of grid columns. Complexity: O(1).
func (g *Graph) Width() int { return g.width }

// InBounds reports whether n lies within the grid boundaries.
// Complexity: O(1).
func (g *Graph) InBounds(n Node) bool {
	return n.Row >= 0 && n.Row < g.height && n.Col >= 0 && n.Col < g.width
}

// Neighbors returns the up-to-8 grid-adjacent cells of u that lie within grid
// bounds and, if a region of interest is configured, within that rectangle.
// The returned slice is freshly allocated on each call; callers may keep it.
// Offsets are emitted in a fixed clockwise-from-north order so traversals are
// deterministic. Complexity: O(1) (bounded fan-out).
func (g *Graph) Neighbors(u Node) []Node {
	out := make([]Node, 0, len(g.neighborOffsets))
	var v Node
	for _, d := range g.neighborOffsets {
		v = Node{Row: u.Row + d[0], Col: u.Col + d[1]}
		if !g.InBounds(v) {
			continue
		}
		if g.roi != nil && !g.roi.Contains(v) {
			continue
		}
		out = append(out, v)
	}

	return out
}

// EuclidHeuristic returns a straight-line heuristic in meters for uniform
// grids: Euclidean cell distance scaled by metersPerCell. Admissible for any
// cost model whose per-meter edge cost is at least one unit of the same scale.
func EuclidHeuristic(metersPerCell float64) func(u, goal Node) float64 {
	return func(u, goal Node) float64 {
		return metersPerCell * math.Hypot(float64(u.Row-goal.Row), float64(u.Col-goal.Col))
	}
}
