// Package cost implements the two interchangeable terrapath edge-cost models:
// the geometric SlopeWeighted penalty and the physics-based PhysicalEnergy
// balance. Both are stateless after construction and expose the same
// EdgeCost(u, v) → (cost, ok) contract consumed by the search engine: ok=false
// marks the edge impassable and is a normal value, never an error.
package cost

import (
	"math"

	"github.com/katalvlaran/terrapath/gridnav"
	"github.com/katalvlaran/terrapath/terrain"
)

// SlopeWeighted blends travel distance with slope and roughness penalties of
// the destination cell:
//
//	cost(u→v) = step(u,v) × (w_dist + w_slope·slope(v)/45° + w_rough·rough(v))
//
// where step is the metric ground length of the grid move (diagonals use the
// hypotenuse of the per-axis spacing). A blocked destination is impassable.
// Purely geometric: no elevation layer required.
type SlopeWeighted struct {
	grid *terrain.Grid
	w    SlopeWeights
}

// NewSlopeWeighted validates the weights and binds the model to g.
// Returns ErrNilGrid or ErrBadWeights. Complexity: O(1).
func NewSlopeWeighted(g *terrain.Grid, w SlopeWeights) (*SlopeWeighted, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if w.WDist <= 0 || w.WSlope < 0 || w.WRough < 0 {
		return nil, ErrBadWeights
	}

	return &SlopeWeighted{grid: g, w: w}, nil
}

// EdgeCost computes the cost of the step u→v, or ok=false when v is blocked.
// v must be grid-adjacent to u and inside the grid; both are guaranteed when
// neighbors come from gridnav.Graph. Cost is always ≥ 0. Complexity: O(1).
func (m *SlopeWeighted) EdgeCost(u, v gridnav.Node) (float64, bool) {
	if m.grid.Blocked[v.Row][v.Col] {
		return 0, false
	}

	step := m.grid.Cell.Step(v.Row-u.Row, v.Col-u.Col)
	penalty := m.w.WDist +
		m.w.WSlope*(m.grid.Slope[v.Row][v.Col]/refSlopeDeg) +
		m.w.WRough*m.grid.Rough[v.Row][v.Col]

	return step * penalty, true
}

// GradeLimited is the stricter SlopeWeighted variant. On top of the blended
// penalty it computes the actual rise-over-run of each edge from the
// elevation layer and rejects any single step whose
//
//	|Δh| / step  >  MaxGrade × EdgeTol
//
// independent of the blocked mask — one steep approach can be refused without
// blocking the destination cell for gentler directions. Requiring
// *terrain.ElevationGrid makes the elevation dependency a compile-time fact.
type GradeLimited struct {
	inner SlopeWeighted
	elev  *terrain.ElevationGrid
}

// NewGradeLimited validates weights and the grade limit and binds the model
// to eg. Returns ErrNilGrid, ErrBadWeights, or ErrBadMaxGrade.
// Complexity: O(1).
func NewGradeLimited(eg *terrain.ElevationGrid, w SlopeWeights) (*GradeLimited, error) {
	if eg == nil {
		return nil, ErrNilGrid
	}
	if w.MaxGrade <= 0 {
		return nil, ErrBadMaxGrade
	}
	inner, err := NewSlopeWeighted(&eg.Grid, w)
	if err != nil {
		return nil, err
	}

	return &GradeLimited{inner: *inner, elev: eg}, nil
}

// EdgeCost computes the slope-weighted cost of u→v, rejecting blocked
// destinations and over-grade edges. Complexity: O(1).
func (m *GradeLimited) EdgeCost(u, v gridnav.Node) (float64, bool) {
	c, ok := m.inner.EdgeCost(u, v)
	if !ok {
		return 0, false
	}

	step := m.elev.Cell.Step(v.Row-u.Row, v.Col-u.Col)
	dh := m.elev.Elevation[v.Row][v.Col] - m.elev.Elevation[u.Row][u.Col]
	grade := math.Abs(dh) / step
	if grade > m.inner.w.MaxGrade*m.elev.EdgeTol {
		return 0, false
	}

	return c, true
}
