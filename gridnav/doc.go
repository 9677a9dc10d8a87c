// Package gridnav supplies the purely geometric building blocks consumed by
// the terrapath search engine: grid cell addressing, bounded neighbor
// generation and nearest-unblocked snapping.
//
// Overview:
//
//   - Node{Row, Col} is the only node identity in the system — a value pair,
//     valid iff 0 ≤ Row < H and 0 ≤ Col < W. No object identity exists.
//   - Graph.Neighbors yields grid-adjacent cells under Conn4 or Conn8
//     connectivity, optionally restricted to a region-of-interest rectangle.
//     It performs no cost or blocked-mask filtering; that separation keeps one
//     Graph reusable across every cost model.
//   - NearestFree snaps an arbitrary (possibly blocked) cell to a nearby
//     unblocked one using a radius-first square-ring scan.
//
// Determinism:
//
//   - Neighbor order is a fixed clockwise-from-north offset table, so search
//     traversals over Graph.Neighbors reproduce exactly across runs.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGrid: non-positive grid dimensions passed to New.
//   - ErrBadROI:    region of interest degenerate or outside the grid.
//   - ErrBadRadius: negative snap radius, surfaced by callers (the route
//     planner) that validate radii upfront.
//
// Complexity:
//
//   - Neighbors: O(1) per call (fan-out ≤ 8).
//   - NearestFree: O(r²) for the first successful ring radius r.
package gridnav
