// Package astar implements the terrapath search engine: a weighted,
// resource-bounded, anytime A* over grid nodes.
//
// The engine is coupled to terrain and geometry only through function
// contracts (NeighborsFunc, CostFunc, HeuristicFunc) and owns all of its
// search state exclusively per invocation, so independent searches over the
// same terrain may run concurrently without synchronization.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for admissible heuristics without beam pruning.
//   - Each node is closed at most once: V pops that expand.
//   - Each relaxation pushes one entry under lazy-decrease-key: up to E pushes.
//   - Space: O(V + E): g-scores, parents, closed set, and heap entries.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: relaxing a node pushes a fresh heap entry; stale
//     entries are detected on pop by closed-set membership and discarded.
//   - Priority key is the triple (f, h, seq): f = g + weight·h orders the
//     frontier, h breaks ties toward the goal, and a strictly increasing
//     insertion counter makes equal-(f,h) ordering deterministic across runs.
//   - Budgets are polled cooperatively once per outer iteration; overrun is
//     bounded by one expansion's fan-out. No preemption, no goroutines.
package astar

import (
	"container/heap"
	"sort"
	"time"

	"github.com/katalvlaran/terrapath/gridnav"
)

// Search runs weighted, bounded A* from start to goal.
//
// Returns:
//
//   - Result with the path, final cost, expansion count, and expansion order.
//     No-path and budget-exhausted outcomes are Result states (Found()==false
//     or degraded cost), never errors.
//   - error only for malformed configuration: ErrNilNeighbors, ErrNilCost,
//     ErrNilHeuristic (fail fast, before any search state is allocated).
//
// Protocol per iteration: poll the wall-clock budget; pop the minimum
// (f, h, seq) entry; apply the epsilon early exit; discard stale entries;
// close and count the node; poll the expansion budget; finish if the node is
// the goal; otherwise relax each neighbor, recording the best goal candidate
// seen; finally apply beam pruning. Relaxation uses a 1e-12 tolerance so
// floating-point jitter cannot re-insert a node forever.
//
// Trivial case: start == goal returns a single-node path at cost 0 with zero
// expansions.
func Search(start, goal gridnav.Node, neighbors NeighborsFunc, cost CostFunc, heuristic HeuristicFunc, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the function contracts.
	if neighbors == nil {
		return Result{}, ErrNilNeighbors
	}
	if cost == nil {
		return Result{}, ErrNilCost
	}
	if heuristic == nil {
		return Result{}, ErrNilHeuristic
	}

	// 3) Trivial case.
	if start == goal {
		return Result{
			Path:       []gridnav.Node{start},
			Cost:       0,
			Expansions: 0,
			Expanded:   []gridnav.Node{start},
		}, nil
	}

	// 4) Allocate per-invocation search state; nothing survives the call.
	r := &runner{
		goal:      goal,
		neighbors: neighbors,
		cost:      cost,
		heuristic: heuristic,
		cfg:       cfg,
		g:         make(map[gridnav.Node]float64),
		parent:    make(map[gridnav.Node]gridnav.Node),
		closed:    make(map[gridnav.Node]struct{}),
		bestCost:  -1,
	}
	r.init(start)

	return r.process(), nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	goal      gridnav.Node
	neighbors NeighborsFunc
	cost      CostFunc
	heuristic HeuristicFunc
	cfg       Options

	open   openPQ
	g      map[gridnav.Node]float64
	parent map[gridnav.Node]gridnav.Node
	closed map[gridnav.Node]struct{}
	seq    uint64

	expansions int
	expanded   []gridnav.Node

	// Best goal candidate observed so far (via relaxation, not pop); enables
	// anytime fallback when a budget expires and the epsilon early exit.
	bestNode gridnav.Node
	bestCost float64 // -1 while unset
	deadline time.Time
}

// init seeds the open set with the start node at g=0.
func (r *runner) init(start gridnav.Node) {
	r.g[start] = 0
	h0 := r.heuristic(start, r.goal)
	heap.Init(&r.open)
	heap.Push(&r.open, pqEntry{f: r.cfg.Weight * h0, h: h0, seq: r.seq, node: start})
	if r.cfg.MaxDuration > 0 {
		r.deadline = time.Now().Add(r.cfg.MaxDuration)
	}
}

// process is the main loop. It terminates on goal closure, epsilon early
// exit, budget expiry, or open-set exhaustion.
func (r *runner) process() Result {
	var (
		e  pqEntry
		u  gridnav.Node
		gu float64
	)
	for r.open.Len() > 0 {
		// 1) Wall-clock budget, polled before any work this iteration.
		if r.cfg.MaxDuration > 0 && time.Now().After(r.deadline) {
			return r.bestEffort()
		}

		// 2) Pop the minimum-key entry.
		e = heap.Pop(&r.open).(pqEntry)
		u = e.node

		// 3) Epsilon early exit: with an admissible heuristic, f is
		//    non-decreasing in pop order, so the popped f lower-bounds every
		//    remaining completion and the candidate is (1+ε)-optimal.
		if r.cfg.Epsilon >= 0 && r.bestCost >= 0 && r.bestCost <= (1+r.cfg.Epsilon)*e.f {
			return r.finish(r.bestNode, r.bestCost)
		}

		// 4) Stale lazy-decrease-key entry: the node was already finalized.
		if _, done := r.closed[u]; done {
			continue
		}

		// 5) Close and count the expansion.
		r.closed[u] = struct{}{}
		r.expanded = append(r.expanded, u)
		r.expansions++

		// 6) Expansion budget.
		if r.cfg.MaxExpansions > 0 && r.expansions >= r.cfg.MaxExpansions {
			return r.bestEffort()
		}

		// 7) Goal closed: its g-score is final.
		if u == r.goal {
			return r.finish(u, r.g[u])
		}

		// 8) Relax all passable neighbors.
		gu = r.g[u]
		r.relax(u, gu)

		// 9) Beam pruning, if configured.
		if r.cfg.BeamWidth > 0 && r.open.Len() > r.cfg.BeamWidth {
			r.prune()
		}
	}

	// Open set exhausted: either report the anytime candidate or a clean
	// no-path — a normal outcome on disconnected terrain, not an error.
	return r.bestEffort()
}

// relax attempts to improve the tentative g-score of every neighbor of u.
func (r *runner) relax(u gridnav.Node, gu float64) {
	var (
		v       gridnav.Node
		c, alt  float64
		hv      float64
		old     float64
		haveOld bool
		ok      bool
	)
	for _, v = range r.neighbors(u) {
		// Impassable edges are skipped silently: a value, not an error.
		c, ok = r.cost(u, v)
		if !ok {
			continue
		}
		if _, done := r.closed[v]; done {
			continue
		}
		alt = gu + c
		old, haveOld = r.g[v]
		if haveOld && alt >= old-relaxEps {
			continue
		}

		// Strict improvement: record parent and push a fresh entry.
		r.g[v] = alt
		r.parent[v] = u
		hv = r.heuristic(v, r.goal)
		r.seq++
		heap.Push(&r.open, pqEntry{f: alt + r.cfg.Weight*hv, h: hv, seq: r.seq, node: v})

		// Track the goal candidate as soon as it is relaxed — before it is
		// ever popped — which is what makes the epsilon exit and the budget
		// fallback possible.
		if v == r.goal && (r.bestCost < 0 || alt < r.bestCost-relaxEps) {
			r.bestCost = alt
			r.bestNode = v
		}
	}
}

// prune truncates the open set to the BeamWidth smallest-key entries.
// A slice sorted ascending by (f, h, seq) already satisfies the min-heap
// invariant, so no re-heapify is needed after the cut.
func (r *runner) prune() {
	sort.Sort(r.open)
	r.open = r.open[:r.cfg.BeamWidth:r.cfg.BeamWidth]
}

// bestEffort returns the anytime candidate when one exists, else no-path.
func (r *runner) bestEffort() Result {
	if r.bestCost >= 0 {
		return r.finish(r.bestNode, r.bestCost)
	}

	return noPath(r.expansions, r.expanded)
}

// finish reconstructs the path ending at node and packages the Result.
func (r *runner) finish(node gridnav.Node, cost float64) Result {
	return Result{
		Path:       r.reconstruct(node),
		Cost:       cost,
		Expansions: r.expansions,
		Expanded:   r.expanded,
	}
}

// reconstruct walks parent links from node back to the start.
// Complexity: O(path length).
func (r *runner) reconstruct(node gridnav.Node) []gridnav.Node {
	var rev []gridnav.Node
	v := node
	for {
		rev = append(rev, v)
		p, ok := r.parent[v]
		if !ok {
			break
		}
		v = p
	}
	// Reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// pqEntry is one open-set record. Multiple entries may exist for one node
// under lazy decrease-key; staleness is detected on pop.
type pqEntry struct {
	f, h float64
	seq  uint64
	node gridnav.Node
}

// openPQ is a min-heap of pqEntry ordered by (f, h, seq) ascending: primary
// key f, tie-break toward smaller h (closer to the goal), then insertion
// order for full determinism.
type openPQ []pqEntry

// Len returns the number of entries in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then h, then insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
