// Package astar provides a precise, deterministic implementation of weighted,
// resource-bounded A* for grid pathfinding.
//
// Overview:
//
//   - Search computes a minimum-cost path between two grid nodes using only
//     three injected function contracts: a neighbor generator, an edge-cost
//     function, and a heuristic. It never touches terrain storage directly,
//     so one engine serves every cost model.
//   - A node is unseen, open (tentative g-score, pending expansion), or
//     closed (finalized, never re-expanded). Start opens at g=0; the search
//     ends when the goal closes or an early-exit condition fires.
//
// Key features:
//
//   - Deterministic ordering: heap keys are (f, h, insertion-seq), so equal-f
//     ties break toward the goal and equal-(f,h) ties break by insertion
//     order. Repeated runs reproduce identical paths, costs, and expansion
//     orders.
//   - Weighted search: WithWeight(w), w ≥ 1, trades optimality for speed;
//     the returned cost is never better than the w=1 optimum.
//   - Epsilon early exit: WithEpsilon(ε) returns the first goal candidate
//     proven within (1+ε) of optimal. Sound only for admissible heuristics.
//   - Anytime budgets: WithMaxExpansions / WithMaxDuration return the best
//     goal candidate found so far on expiry — degraded, not failed; compare
//     Result.Expansions against the cap to detect degradation.
//   - Beam pruning: WithBeamWidth(n) bounds the open set, forfeiting
//     completeness and optimality for bounded memory.
//
// Outcome taxonomy:
//
//   - Found path       – Result.Found() == true, finite Cost.
//   - No path          – nil Path, Cost == +Inf. A normal, expected outcome
//     on disconnected terrain; never an error.
//   - Budget exhausted – best-effort Result, possibly no path.
//   - error            – only nil function contracts (ErrNilNeighbors,
//     ErrNilCost, ErrNilHeuristic); invalid option values
//     panic at the option constructor, the same contract
//     as the rest of terrapath's functional options.
//
// Concurrency:
//
//   - All search state (open set, closed set, g-scores, parents) is allocated
//     per invocation and discarded on return. Independent searches over
//     shared read-only terrain need no synchronization.
package astar
