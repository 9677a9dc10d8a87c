// Package terrain builds immutable terrain grids from elevation sources and
// derives the per-cell layers (slope, roughness, blocked) that cost models
// consume.
package terrain

import (
	"math"
	"sort"
)

// Roughness percentile clip bounds. Gradient magnitudes are clipped to the
// [5th, 95th] percentile before linear rescale to [0,1]; the percentile
// variant is robust to isolated outliers, unlike a min–max rescale, at the
// price of saturating the tails.
const (
	roughLoPercentile = 0.05
	roughHiPercentile = 0.95
)

// BuildFromElevation constructs an ElevationGrid from a rectangular H×W
// elevation array (meters) and derivation options.
//
// Derivation, in order:
//  1. Slope: two-axis central-difference gradient scaled by ground spacing,
//     magnitude, then degrees(atan(·)). Non-finite results sanitize to 0°
//     (NaN) or 90° (overflow) and never propagate.
//  2. Roughness: the same gradient magnitude, percentile-clipped (5–95) and
//     rescaled to [0,1].
//  3. Blocked: true where elevation is non-finite OR slope ≥
//     BlockThresholdDeg.
//
// Non-finite elevation samples are excluded from the gradient stencil by
// substituting the finite mean, but the cells themselves stay blocked.
//
// Validation (fail fast, never mid-search):
//   - ErrEmptyGrid / ErrNonRectangular for degenerate input shapes.
//   - ErrBadCellSize for non-positive spacing.
//   - ErrBadThreshold / ErrBadTolerance for out-of-range options.
//
// The input slice is deep-copied; the returned grid never aliases it.
// Complexity: O(H×W) time and memory (plus O(H×W log(H×W)) for the
// percentile sort).
func BuildFromElevation(elev [][]float64, opts Options) (*ElevationGrid, error) {
	h, w, err := rectShape(elev)
	if err != nil {
		return nil, err
	}
	if !opts.Cell.Valid() {
		return nil, ErrBadCellSize
	}
	if opts.BlockThresholdDeg <= 0 {
		return nil, ErrBadThreshold
	}
	if opts.EdgeTolerance < 1 {
		return nil, ErrBadTolerance
	}

	// 1) Deep-copy elevation and build a finite-filled working copy for the
	//    gradient stencil.
	elevCopy := copyLayer(elev)
	filled := fillNonFinite(elevCopy)

	// 2) Gradient magnitude in m/m, shared by slope and roughness.
	gradMag := gradientMagnitude(filled, opts.Cell)

	// 3) Slope in degrees, sanitized.
	slope := make([][]float64, h)
	for r := 0; r < h; r++ {
		slope[r] = make([]float64, w)
		for c := 0; c < w; c++ {
			s := math.Atan(gradMag[r][c]) * 180.0 / math.Pi
			switch {
			case math.IsNaN(s):
				s = 0
			case math.IsInf(s, 1):
				s = 90
			case math.IsInf(s, -1):
				s = 0
			}
			slope[r][c] = s
		}
	}

	// 4) Roughness from the percentile-normalized gradient magnitude.
	rough := normalizeRoughness(gradMag)

	// 5) Blocked mask: non-finite elevation always blocks, steep slope blocks.
	blocked := make([][]bool, h)
	for r := 0; r < h; r++ {
		blocked[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			blocked[r][c] = !isFinite(elevCopy[r][c]) || slope[r][c] >= opts.BlockThresholdDeg
		}
	}

	eg := &ElevationGrid{
		Grid: Grid{
			Height:  h,
			Width:   w,
			Slope:   slope,
			Rough:   rough,
			Blocked: blocked,
			Cell:    opts.Cell,
			EdgeTol: opts.EdgeTolerance,
		},
		Elevation: elevCopy,
	}

	return eg, nil
}

// NewGrid constructs the heightless Grid variant from pre-derived layers
// (slope in degrees, roughness in [0,1]) and a blocked mask. All three layers
// must share one rectangular (H,W) shape. Layers are deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrShapeMismatch, ErrBadCellSize,
// or ErrBadTolerance on invalid input. Complexity: O(H×W).
func NewGrid(slope, rough [][]float64, blocked [][]bool, opts Options) (*Grid, error) {
	h, w, err := rectShape(slope)
	if err != nil {
		return nil, err
	}
	if hr, wr, errR := rectShape(rough); errR != nil || hr != h || wr != w {
		if errR != nil {
			return nil, errR
		}

		return nil, ErrShapeMismatch
	}
	if len(blocked) != h {
		return nil, ErrShapeMismatch
	}
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrShapeMismatch
		}
	}
	if !opts.Cell.Valid() {
		return nil, ErrBadCellSize
	}
	if opts.EdgeTolerance < 1 {
		return nil, ErrBadTolerance
	}

	blockedCopy := make([][]bool, h)
	for r := 0; r < h; r++ {
		blockedCopy[r] = make([]bool, w)
		copy(blockedCopy[r], blocked[r])
	}

	g := &Grid{
		Height:  h,
		Width:   w,
		Slope:   copyLayer(slope),
		Rough:   copyLayer(rough),
		Blocked: blockedCopy,
		Cell:    opts.Cell,
		EdgeTol: opts.EdgeTolerance,
	}

	return g, nil
}

// BlockedCopy returns a deep copy of the blocked mask, for callers (keep-out
// stamping, snapping) that need a mutable view without touching the snapshot.
// Complexity: O(H×W).
func (g *Grid) BlockedCopy() [][]bool {
	out := make([][]bool, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]bool, g.Width)
		copy(out[r], g.Blocked[r])
	}

	return out
}

// rectShape validates a rectangular non-empty layer and returns its shape.
func rectShape(layer [][]float64) (h, w int, err error) {
	if len(layer) == 0 || len(layer[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(layer), len(layer[0])
	for _, row := range layer {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return h, w, nil
}

func copyLayer(layer [][]float64) [][]float64 {
	out := make([][]float64, len(layer))
	for r := range layer {
		out[r] = make([]float64, len(layer[r]))
		copy(out[r], layer[r])
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fillNonFinite replaces non-finite samples with the mean of the finite ones
// (or 0 when none exist) so the gradient stencil stays numeric. Returns a new
// layer; the input is not modified.
func fillNonFinite(layer [][]float64) [][]float64 {
	var sum float64
	var n int
	for _, row := range layer {
		for _, v := range row {
			if isFinite(v) {
				sum += v
				n++
			}
		}
	}
	fill := 0.0
	if n > 0 {
		fill = sum / float64(n)
	}

	out := copyLayer(layer)
	for r := range out {
		for c := range out[r] {
			if !isFinite(out[r][c]) {
				out[r][c] = fill
			}
		}
	}

	return out
}

// gradientMagnitude computes |∇z| in m/m using central differences in the
// interior and one-sided differences at the borders, with per-axis spacing.
// Axes shorter than 2 samples contribute zero gradient.
func gradientMagnitude(z [][]float64, cs CellSize) [][]float64 {
	h, w := len(z), len(z[0])
	out := make([][]float64, h)
	var gx, gy float64
	for r := 0; r < h; r++ {
		out[r] = make([]float64, w)
		for c := 0; c < w; c++ {
			gy = axisDiff(z, r, c, h, true) / cs.DY
			gx = axisDiff(z, r, c, w, false) / cs.DX
			out[r][c] = math.Hypot(gx, gy)
		}
	}

	return out
}

// axisDiff returns the finite difference of z along one axis at (r,c):
// central in the interior, one-sided at the two borders, zero on axes of
// length 1. The divisor embeds the 2× of the central stencil.
func axisDiff(z [][]float64, r, c, n int, rowAxis bool) float64 {
	at := func(i int) float64 {
		if rowAxis {
			return z[i][c]
		}

		return z[r][i]
	}
	i := c
	if rowAxis {
		i = r
	}
	switch {
	case n < 2:
		return 0
	case i == 0:
		return at(1) - at(0)
	case i == n-1:
		return at(n-1) - at(n-2)
	default:
		return (at(i+1) - at(i-1)) / 2
	}
}

// normalizeRoughness clips gradient magnitudes to the 5th–95th percentile and
// rescales linearly to [0,1]. An all-equal field normalizes to all zeros.
func normalizeRoughness(gradMag [][]float64) [][]float64 {
	vals := make([]float64, 0, len(gradMag)*len(gradMag[0]))
	for _, row := range gradMag {
		for _, v := range row {
			if isFinite(v) {
				vals = append(vals, v)
			}
		}
	}

	h := len(gradMag)
	out := make([][]float64, h)
	if len(vals) == 0 {
		for r := range gradMag {
			out[r] = make([]float64, len(gradMag[r]))
		}

		return out
	}

	sort.Float64s(vals)
	lo := quantile(vals, roughLoPercentile)
	hi := quantile(vals, roughHiPercentile)
	span := hi - lo
	if span < 1e-6 {
		span = 1e-6
	}

	for r := range gradMag {
		out[r] = make([]float64, len(gradMag[r]))
		for c, v := range gradMag[r] {
			x := (v - lo) / span
			if x < 0 {
				x = 0
			} else if x > 1 {
				x = 1
			}
			out[r][c] = x
		}
	}

	return out
}

// quantile returns the linearly interpolated q-quantile of sorted vals.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 1 {
		return vals[0]
	}
	pos := q * float64(len(vals)-1)
	i := int(math.Floor(pos))
	frac := pos - float64(i)
	if i+1 >= len(vals) {
		return vals[len(vals)-1]
	}

	return vals[i]*(1-frac) + vals[i+1]*frac
}
