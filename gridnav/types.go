// Package gridnav defines core types, options, and sentinel errors
// for grid navigation in github.com/katalvlaran/terrapath.
package gridnav

import (
	"errors"
)

// Sentinel errors for gridnav operations.
var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("gridnav: grid must have at least one row and one column")
	// ErrBadROI indicates a degenerate or out-of-bounds region of interest.
	ErrBadROI = errors.New("gridnav: region of interest must be a non-empty rectangle inside the grid")
	// ErrBadRadius indicates a non-positive nearest-free search radius.
	ErrBadRadius = errors.New("gridnav: max radius must be positive")
)

// Node addresses a single grid cell by (row, column). Node identity is exactly
// this pair; two Nodes with equal fields denote the same cell.
type Node struct {
	Row, Col int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Rect is an inclusive [MinRow,MaxRow]×[MinCol,MaxCol] region of interest.
// Neighbor generation never leaves a configured Rect, which bounds search
// effort on large grids.
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Contains reports whether n lies inside the rectangle (inclusive bounds).
// Complexity: O(1).
func (r Rect) Contains(n Node) bool {
	return n.Row >= r.MinRow && n.Row <= r.MaxRow && n.Col >= r.MinCol && n.Col <= r.MaxCol
}

// GridOptions contains tunable parameters for neighbor generation.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// ROI, when non-nil, restricts generated neighbors to this rectangle.
	ROI *Rect
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn8 (diagonal moves allowed), no region of interest.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8, ROI: nil}
}

// Graph generates valid grid-adjacent neighbors for cells of an H×W grid.
// It is purely geometric: no cost or blocked-mask filtering happens here,
// so the same Graph is reusable across cost models. Immutable once built.
type Graph struct {
	height, width   int
	conn            Connectivity
	roi             *Rect
	neighborOffsets [][2]int
}
