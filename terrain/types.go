// Package terrain defines core types, options, and sentinel errors for
// terrain-layer construction in github.com/katalvlaran/terrapath.
package terrain

import (
	"errors"
	"math"
)

// Sentinel errors for terrain construction.
var (
	// ErrEmptyGrid indicates an input layer with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrShapeMismatch indicates co-indexed layers of differing shapes.
	ErrShapeMismatch = errors.New("terrain: all layers must share the same (H,W) shape")
	// ErrBadCellSize indicates a non-positive ground spacing.
	ErrBadCellSize = errors.New("terrain: cell size must be positive along both axes")
	// ErrBadThreshold indicates a non-positive slope blocking threshold.
	ErrBadThreshold = errors.New("terrain: block threshold must be positive degrees")
	// ErrBadTolerance indicates an edge tolerance below 1.
	ErrBadTolerance = errors.New("terrain: edge tolerance must be >= 1")
)

// CellSize gives the ground distance in meters of one grid step along each
// axis. DX applies to column steps, DY to row steps; anisotropic values arise
// naturally from geographic grids where longitude spacing shrinks with
// latitude.
type CellSize struct {
	DX, DY float64
}

// UniformCellSize returns a CellSize with equal spacing on both axes.
func UniformCellSize(m float64) CellSize {
	return CellSize{DX: m, DY: m}
}

// Valid reports whether both spacings are positive and finite.
func (cs CellSize) Valid() bool {
	return cs.DX > 0 && cs.DY > 0 && !math.IsInf(cs.DX, 1) && !math.IsInf(cs.DY, 1)
}

// Step returns the ground length in meters of a single grid step (dr, dc),
// where dr and dc are each in {-1, 0, 1}. Diagonal steps use the hypotenuse
// of the per-axis spacings. Complexity: O(1).
func (cs CellSize) Step(dr, dc int) float64 {
	switch {
	case dr != 0 && dc != 0:
		return math.Hypot(cs.DX, cs.DY)
	case dr != 0:
		return cs.DY
	default:
		return cs.DX
	}
}

// Options configures layer derivation.
//
// Cell              – ground spacing per grid step; must be positive.
// BlockThresholdDeg – cells with slope ≥ this many degrees become blocked.
// EdgeTolerance     – multiplier (≥1) relaxing the per-edge grade check used
//
//	by grade-limited cost models without relaxing the cell-level block.
type Options struct {
	Cell              CellSize
	BlockThresholdDeg float64
	EdgeTolerance     float64
}

// DefaultOptions returns derivation defaults: 1 m uniform cells, 35° block
// threshold, 1.10 edge tolerance.
func DefaultOptions() Options {
	return Options{
		Cell:              UniformCellSize(1.0),
		BlockThresholdDeg: 35.0,
		EdgeTolerance:     1.10,
	}
}

// Grid is an immutable snapshot of per-cell terrain attributes without an
// elevation layer (the "heightless" variant). All layers are co-indexed H×W,
// deep-copied at construction, and must be treated as read-only thereafter:
// one Grid is shared by every leg search of a planning session.
//
// Slope is in degrees, Rough is unitless in [0,1], Blocked marks cells
// impassable under any cost model.
type Grid struct {
	Height, Width int
	Slope         [][]float64
	Rough         [][]float64
	Blocked       [][]bool
	Cell          CellSize
	EdgeTol       float64
}

// ElevationGrid is the elevation-bearing variant of Grid. Cost models that
// need height differences (PhysicalEnergy, grade-limited slope costs) accept
// *ElevationGrid, making the elevation requirement a compile-time fact rather
// than a runtime nil check. Elevation is in meters; a cell whose elevation is
// non-finite is always blocked.
type ElevationGrid struct {
	Grid
	Elevation [][]float64
}
