package gridnav

// NearestFree snaps rc to the nearest unblocked cell within maxRadius.
//
// Policy (radius-first, not strictly nearest-overall): if rc is already
// unblocked it is returned unchanged. Otherwise square rings of Chebyshev
// radius 1,2,…,maxRadius are scanned in order; within the first ring that
// contains any unblocked cell, the candidate with the minimum squared
// Euclidean distance to rc wins and the scan stops — a larger ring is never
// consulted even if it might hold a geometrically closer cell along a
// different diagonal. If no ring up to maxRadius yields a candidate, rc is
// returned still blocked; callers must treat that as a planning precondition
// failure and re-check the mask.
//
// blocked must be a rectangular H×W mask and rc must lie inside it.
// Complexity: O(maxRadius²) worst case.
func NearestFree(rc Node, blocked [][]bool, maxRadius int) Node {
	if maxRadius <= 0 {
		return rc
	}
	h := len(blocked)
	if h == 0 {
		return rc
	}
	w := len(blocked[0])

	if !blocked[rc.Row][rc.Col] {
		return rc
	}

	var (
		best   Node
		bestD2 = int(^uint(0) >> 1)
		found  bool
	)
	for rad := 1; rad <= maxRadius; rad++ {
		r0, r1 := maxInt(0, rc.Row-rad), minInt(h-1, rc.Row+rad)
		c0, c1 := maxInt(0, rc.Col-rad), minInt(w-1, rc.Col+rad)
		for rr := r0; rr <= r1; rr++ {
			for cc := c0; cc <= c1; cc++ {
				if blocked[rr][cc] {
					continue
				}
				d2 := (rr-rc.Row)*(rr-rc.Row) + (cc-rc.Col)*(cc-rc.Col)
				if d2 < bestD2 {
					best = Node{Row: rr, Col: cc}
					bestD2 = d2
					found = true
				}
			}
		}
		// First successful ring wins.
		if found {
			return best
		}
	}

	return rc
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
