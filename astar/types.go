// Package astar defines the function contracts, configuration options, and
// sentinel errors for the terrapath search engine.
package astar

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/terrapath/gridnav"
)

// Sentinel errors returned by Search. Only malformed configuration is an
// error; "no path" and "budget exhausted" are ordinary Result states.
var (
	// ErrNilNeighbors indicates a nil neighbor generator.
	ErrNilNeighbors = errors.New("astar: neighbors function is nil")
	// ErrNilCost indicates a nil edge-cost function.
	ErrNilCost = errors.New("astar: cost function is nil")
	// ErrNilHeuristic indicates a nil heuristic function.
	ErrNilHeuristic = errors.New("astar: heuristic function is nil")
	// ErrBadWeight indicates a heuristic weight below 1.
	ErrBadWeight = errors.New("astar: weight must be >= 1")
	// ErrBadEpsilon indicates a negative epsilon bound.
	ErrBadEpsilon = errors.New("astar: epsilon must be non-negative")
	// ErrBadBeamWidth indicates a non-positive beam width.
	ErrBadBeamWidth = errors.New("astar: beam width must be positive")
	// ErrBadBudget indicates a non-positive expansion or time budget.
	ErrBadBudget = errors.New("astar: budgets must be positive")
)

// NeighborsFunc yields the candidate successor cells of u. The engine imposes
// no geometry of its own; gridnav.Graph.Neighbors is the usual supplier.
type NeighborsFunc func(u gridnav.Node) []gridnav.Node

// CostFunc returns the edge cost u→v and ok=true, or ok=false when the edge
// is impassable (the engine skips it silently). Costs must be ≥ 0.
type CostFunc func(u, v gridnav.Node) (float64, bool)

// HeuristicFunc estimates the remaining cost from u to goal. It must be a
// lower bound on true cost (admissible) for the optimality, tie-breaking, and
// epsilon-exit guarantees to hold.
type HeuristicFunc func(u, goal gridnav.Node) float64

// relaxEps is the numerical tolerance below which an improved g-score is not
// considered a real improvement; it suppresses infinite re-insertion from
// floating-point jitter.
const relaxEps = 1e-12

// Options configures a single Search invocation. Immutable once applied; no
// process-wide defaults exist.
//
// Weight        – heuristic multiplier ≥ 1; values > 1 trade optimality for speed.
// Epsilon       – early-exit suboptimality bound; negative disables it.
// BeamWidth     – max open-set entries kept after each expansion; 0 disables.
// MaxExpansions – expansion-count budget; 0 disables.
// MaxDuration   – wall-clock budget; 0 disables.
type Options struct {
	Weight        float64
	Epsilon       float64
	BeamWidth     int
	MaxExpansions int
	MaxDuration   time.Duration
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options with weight 1 and every bound disabled —
// plain admissible A*.
func DefaultOptions() Options {
	return Options{Weight: 1.0, Epsilon: -1}
}

// WithWeight sets the heuristic weight. Must be ≥ 1; smaller values panic
// with ErrBadWeight to surface the misconfiguration at the call site.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w < 1 {
			panic(ErrBadWeight.Error())
		}
		o.Weight = w
	}
}

// WithEpsilon enables the (1+epsilon)-suboptimality early exit: once a goal
// candidate of cost ≤ (1+epsilon)×(current minimum f) is known, Search
// returns it immediately. Valid only with admissible heuristics (f is then
// non-decreasing in pop order). Negative epsilon panics with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithBeamWidth bounds the open set to the n smallest-key entries after each
// expansion. This discards provably-reachable alternatives: completeness and
// optimality are forfeited in exchange for bounded memory and time.
// Non-positive n panics with ErrBadBeamWidth.
func WithBeamWidth(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBeamWidth.Error())
		}
		o.BeamWidth = n
	}
}

// WithMaxExpansions caps node expansions. On expiry Search returns the best
// goal candidate seen so far, or a no-path Result when none exists.
// Non-positive n panics with ErrBadBudget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxExpansions = n
	}
}

// WithMaxDuration caps wall-clock time. The budget is polled once per outer
// iteration, so overrun is bounded by the cost of one expansion.
// Non-positive d panics with ErrBadBudget.
func WithMaxDuration(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxDuration = d
	}
}

// Result is the outcome of one Search invocation.
//
// Path       – nodes from start to goal inclusive; nil when no path exists.
// Cost       – total accumulated cost; +Inf when no path exists.
// Expansions – number of nodes finalized (closed) during the search; lets
//
//	callers detect budget-degraded results.
//
// Expanded   – diagnostic expansion order; callers that don't visualize may
//
//	discard it.
type Result struct {
	Path       []gridnav.Node
	Cost       float64
	Expansions int
	Expanded   []gridnav.Node
}

// Found reports whether the result carries a usable path.
func (r Result) Found() bool { return len(r.Path) > 0 }

// noPath builds the canonical failure Result: empty path, infinite cost.
func noPath(expansions int, expanded []gridnav.Node) Result {
	return Result{Path: nil, Cost: math.Inf(1), Expansions: expansions, Expanded: expanded}
}
