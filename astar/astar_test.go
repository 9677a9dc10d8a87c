package astar_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/gridnav"
)

// neighbors8 builds an 8-connected neighbor generator for an h×w grid.
func neighbors8(t *testing.T, h, w int) astar.NeighborsFunc {
	t.Helper()
	g, err := gridnav.New(h, w, gridnav.DefaultGridOptions())
	require.NoError(t, err)

	return g.Neighbors
}

// unitCost charges 1 per axis move and √2 per diagonal; blocked destinations
// are impassable.
func unitCost(blocked [][]bool) astar.CostFunc {
	return func(u, v gridnav.Node) (float64, bool) {
		if blocked != nil && blocked[v.Row][v.Col] {
			return 0, false
		}
		if u.Row != v.Row && u.Col != v.Col {
			return math.Sqrt2, true
		}

		return 1, true
	}
}

// euclid is the straight-line heuristic in cell units.
func euclid(u, goal gridnav.Node) float64 {
	return math.Hypot(float64(u.Row-goal.Row), float64(u.Col-goal.Col))
}

// zeroH degrades the search to uniform-cost (Dijkstra) order.
func zeroH(_, _ gridnav.Node) float64 { return 0 }

// emptyMask returns an h×w all-free mask.
func emptyMask(h, w int) [][]bool {
	m := make([][]bool, h)
	for r := range m {
		m[r] = make([]bool, w)
	}

	return m
}

func TestSearch_NilContracts(t *testing.T) {
	n := neighbors8(t, 2, 2)
	c := unitCost(nil)
	a, b := gridnav.Node{}, gridnav.Node{Row: 1, Col: 1}

	_, err := astar.Search(a, b, nil, c, euclid)
	require.ErrorIs(t, err, astar.ErrNilNeighbors)
	_, err = astar.Search(a, b, n, nil, euclid)
	require.ErrorIs(t, err, astar.ErrNilCost)
	_, err = astar.Search(a, b, n, c, nil)
	require.ErrorIs(t, err, astar.ErrNilHeuristic)
}

// TestSearch_Trivial: start == goal yields a single-node zero-cost path with
// no expansions.
func TestSearch_Trivial(t *testing.T) {
	at := gridnav.Node{Row: 2, Col: 3}
	res, err := astar.Search(at, at, neighbors8(t, 5, 5), unitCost(nil), euclid)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, []gridnav.Node{at}, res.Path)
	require.Zero(t, res.Cost)
	require.Zero(t, res.Expansions)
}

// TestSearch_DiagonalOnOpenGrid: on a free 8-connected grid the corner-to-
// corner optimum is the pure diagonal at cost 4√2, and the tie-break toward
// smaller h keeps the search on it.
func TestSearch_DiagonalOnOpenGrid(t *testing.T) {
	start := gridnav.Node{Row: 0, Col: 0}
	goal := gridnav.Node{Row: 4, Col: 4}
	res, err := astar.Search(start, goal, neighbors8(t, 5, 5), unitCost(nil), euclid)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.InDelta(t, 4*math.Sqrt2, res.Cost, 1e-9)
	require.Len(t, res.Path, 5)
	for i := 1; i < len(res.Path); i++ {
		dr := res.Path[i].Row - res.Path[i-1].Row
		dc := res.Path[i].Col - res.Path[i-1].Col
		require.Equal(t, 1, dr, "step %d is not the diagonal", i)
		require.Equal(t, 1, dc, "step %d is not the diagonal", i)
	}
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])
}

// TestSearch_RoutesThroughGap: a wall with a single gap forces the path
// through the gap and never onto a blocked cell.
func TestSearch_RoutesThroughGap(t *testing.T) {
	blocked := emptyMask(5, 5)
	for c := 0; c < 5; c++ {
		if c != 2 {
			blocked[2][c] = true // wall across row 2, gap at column 2
		}
	}
	start := gridnav.Node{Row: 0, Col: 0}
	goal := gridnav.Node{Row: 4, Col: 4}

	res, err := astar.Search(start, goal, neighbors8(t, 5, 5), unitCost(blocked), euclid)
	require.NoError(t, err)
	require.True(t, res.Found())

	through := false
	for _, n := range res.Path {
		require.False(t, blocked[n.Row][n.Col], "path crosses blocked cell %v", n)
		if n.Row == 2 {
			require.Equal(t, 2, n.Col, "only the gap cell may cross the wall")
			through = true
		}
	}
	require.True(t, through, "path must pass through the gap")
}

// TestSearch_NoPath: a fully walled-off goal yields the canonical no-path
// Result, not an error.
func TestSearch_NoPath(t *testing.T) {
	blocked := emptyMask(5, 5)
	for r := 0; r < 5; r++ {
		blocked[r][2] = true
	}
	res, err := astar.Search(gridnav.Node{}, gridnav.Node{Row: 0, Col: 4}, neighbors8(t, 5, 5), unitCost(blocked), euclid)
	require.NoError(t, err)
	require.False(t, res.Found())
	require.Nil(t, res.Path)
	require.True(t, math.IsInf(res.Cost, 1))
	require.Positive(t, res.Expansions, "left half must still be explored")
}

// TestSearch_ExpansionBudget: a one-expansion cap on a non-adjacent goal
// exhausts before any goal candidate exists.
func TestSearch_ExpansionBudget(t *testing.T) {
	res, err := astar.Search(
		gridnav.Node{}, gridnav.Node{Row: 9, Col: 9},
		neighbors8(t, 10, 10), unitCost(nil), euclid,
		astar.WithMaxExpansions(1),
	)
	require.NoError(t, err)
	require.False(t, res.Found())
	require.Equal(t, 1, res.Expansions)
	require.Equal(t, []gridnav.Node{{Row: 0, Col: 0}}, res.Expanded)
}

// TestSearch_ExpansionBudgetFallback: once the goal has been relaxed, budget
// expiry still delivers the best candidate seen so far.
func TestSearch_ExpansionBudgetFallback(t *testing.T) {
	// Goal adjacent to start: the very first expansion relaxes it.
	res, err := astar.Search(
		gridnav.Node{}, gridnav.Node{Row: 0, Col: 1},
		neighbors8(t, 3, 3), unitCost(nil), euclid,
		astar.WithMaxExpansions(1),
	)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.InDelta(t, 1.0, res.Cost, 1e-12)
}

// TestSearch_TimeBudget: an already-expired wall-clock budget returns before
// the first expansion.
func TestSearch_TimeBudget(t *testing.T) {
	res, err := astar.Search(
		gridnav.Node{}, gridnav.Node{Row: 9, Col: 9},
		neighbors8(t, 10, 10), unitCost(nil), euclid,
		astar.WithMaxDuration(time.Nanosecond),
	)
	require.NoError(t, err)
	require.False(t, res.Found())
	require.Zero(t, res.Expansions)
}

// TestSearch_Deterministic: identical inputs reproduce both the path and the
// exact expansion order.
func TestSearch_Deterministic(t *testing.T) {
	blocked := emptyMask(8, 8)
	blocked[3][3], blocked[3][4], blocked[4][3] = true, true, true
	run := func() astar.Result {
		res, err := astar.Search(gridnav.Node{}, gridnav.Node{Row: 7, Col: 7}, neighbors8(t, 8, 8), unitCost(blocked), euclid)
		require.NoError(t, err)

		return res
	}
	a, b := run(), run()
	require.Equal(t, a.Path, b.Path)
	require.Equal(t, a.Expanded, b.Expanded)
	require.Equal(t, a.Cost, b.Cost)
}

// variedCost builds a deterministic non-uniform cost surface so optimality
// comparisons are not trivially tied.
func variedCost() astar.CostFunc {
	return func(u, v gridnav.Node) (float64, bool) {
		step := 1.0
		if u.Row != v.Row && u.Col != v.Col {
			step = math.Sqrt2
		}
		bump := 1.0 + 0.3*float64((v.Row*7+v.Col*13)%5)

		return step * bump, true
	}
}

// TestSearch_MatchesUniformCostOrder: with an admissible heuristic the final
// cost equals the uniform-cost (zero-heuristic) optimum.
func TestSearch_MatchesUniformCostOrder(t *testing.T) {
	n := neighbors8(t, 9, 9)
	start, goal := gridnav.Node{}, gridnav.Node{Row: 8, Col: 5}

	guided, err := astar.Search(start, goal, n, variedCost(), euclid)
	require.NoError(t, err)
	plain, err := astar.Search(start, goal, n, variedCost(), zeroH)
	require.NoError(t, err)

	require.True(t, guided.Found())
	require.True(t, plain.Found())
	require.InDelta(t, plain.Cost, guided.Cost, 1e-9)
	require.LessOrEqual(t, guided.Expansions, plain.Expansions, "the heuristic must not explore more than Dijkstra")
}

// TestSearch_WeightedDegradesMonotonically: inflating the heuristic may only
// raise the final cost, never lower it, and still finds a path.
func TestSearch_WeightedDegradesMonotonically(t *testing.T) {
	n := neighbors8(t, 9, 9)
	start, goal := gridnav.Node{}, gridnav.Node{Row: 8, Col: 8}

	opt, err := astar.Search(start, goal, n, variedCost(), euclid)
	require.NoError(t, err)
	w2, err := astar.Search(start, goal, n, variedCost(), euclid, astar.WithWeight(2))
	require.NoError(t, err)

	require.True(t, w2.Found())
	require.GreaterOrEqual(t, w2.Cost, opt.Cost-1e-12)
}

// TestSearch_EpsilonBound: the early exit honors the (1+ε) suboptimality
// contract.
func TestSearch_EpsilonBound(t *testing.T) {
	n := neighbors8(t, 9, 9)
	start, goal := gridnav.Node{}, gridnav.Node{Row: 8, Col: 8}

	opt, err := astar.Search(start, goal, n, variedCost(), euclid)
	require.NoError(t, err)
	eps, err := astar.Search(start, goal, n, variedCost(), euclid, astar.WithEpsilon(0.2))
	require.NoError(t, err)

	require.True(t, eps.Found())
	require.LessOrEqual(t, eps.Cost, 1.2*opt.Cost+1e-9)
	require.LessOrEqual(t, eps.Expansions, opt.Expansions)
}

// TestSearch_BeamStillFindsPath: a generous beam on an open grid keeps enough
// of the frontier to reach the goal.
func TestSearch_BeamStillFindsPath(t *testing.T) {
	res, err := astar.Search(
		gridnav.Node{}, gridnav.Node{Row: 7, Col: 7},
		neighbors8(t, 8, 8), unitCost(nil), euclid,
		astar.WithBeamWidth(16),
	)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.InDelta(t, 7*math.Sqrt2, res.Cost, 1e-9)
}

// TestOptions_PanicOnInvalid: constructor-style options surface bad values at
// the call site.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, astar.ErrBadWeight.Error(), func() { astar.WithWeight(0.5)(&astar.Options{}) })
	require.PanicsWithValue(t, astar.ErrBadEpsilon.Error(), func() { astar.WithEpsilon(-0.1)(&astar.Options{}) })
	require.PanicsWithValue(t, astar.ErrBadBeamWidth.Error(), func() { astar.WithBeamWidth(0)(&astar.Options{}) })
	require.PanicsWithValue(t, astar.ErrBadBudget.Error(), func() { astar.WithMaxExpansions(-1)(&astar.Options{}) })
	require.PanicsWithValue(t, astar.ErrBadBudget.Error(), func() { astar.WithMaxDuration(0)(&astar.Options{}) })
}

// TestSearch_ExpandedMatchesCount: diagnostics stay consistent with the
// expansion counter.
func TestSearch_ExpandedMatchesCount(t *testing.T) {
	res, err := astar.Search(gridnav.Node{}, gridnav.Node{Row: 4, Col: 4}, neighbors8(t, 5, 5), unitCost(nil), euclid)
	require.NoError(t, err)
	require.Len(t, res.Expanded, res.Expansions)
	seen := make(map[gridnav.Node]struct{}, len(res.Expanded))
	for _, n := range res.Expanded {
		_, dup := seen[n]
		require.False(t, dup, "node %v expanded twice", n)
		seen[n] = struct{}{}
	}
}
