package terrain

import (
	"math"
	"math/rand"
)

// SyntheticOptions configures the synthetic terrain generator.
//
// Seed      – PRNG seed; identical seeds reproduce identical grids.
// Craters   – number of Gaussian crater depressions stamped into the field.
// NoiseStdM – standard deviation of per-cell Gaussian noise, meters.
// Terrain   – layer-derivation options applied to the generated heights.
type SyntheticOptions struct {
	Seed      int64
	Craters   int
	NoiseStdM float64
	Terrain   Options
}

// DefaultSyntheticOptions returns generator defaults tuned to produce gentle
// undulations with a handful of craters and a few steep blocked ridges:
// seed 0, 6 craters, 10 m noise, 5 m cells, 40° block threshold.
func DefaultSyntheticOptions() SyntheticOptions {
	t := DefaultOptions()
	t.Cell = UniformCellSize(5.0)
	t.BlockThresholdDeg = 40.0

	return SyntheticOptions{
		Seed:      0,
		Craters:   6,
		NoiseStdM: 10.0,
		Terrain:   t,
	}
}

// Synthetic generates a deterministic height×width elevation field — two
// crossed sine products plus Gaussian noise plus crater depressions — and
// derives its layers via BuildFromElevation. Useful for tests and examples
// that need realistic terrain without a DEM file.
// Returns the same errors as BuildFromElevation for degenerate dimensions or
// options. Complexity: O(height×width×(1+Craters)).
func Synthetic(height, width int, opts SyntheticOptions) (*ElevationGrid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	// Axis coordinates spanning 0..6π, matching crossed long/short waves.
	ys := spanCoords(height)
	xs := spanCoords(width)

	elev := make([][]float64, height)
	for r := 0; r < height; r++ {
		elev[r] = make([]float64, width)
		for c := 0; c < width; c++ {
			base := 200 * math.Sin(0.2*xs[c]) * math.Cos(0.15*ys[r])
			long := 120 * math.Sin(0.05*xs[c]+0.3) * math.Cos(0.04*ys[r]-0.8)
			elev[r][c] = base + long + rng.NormFloat64()*opts.NoiseStdM
		}
	}

	// Crater depressions: Gaussian bowls at random centers.
	for i := 0; i < opts.Craters; i++ {
		cr := rng.Intn(height)
		cc := rng.Intn(width)
		sigma := 8 + rng.Float64()*10
		twoSigma2 := 2 * sigma * sigma
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				dr := float64(r - cr)
				dc := float64(c - cc)
				elev[r][c] -= 150 * math.Exp(-(dr*dr+dc*dc)/twoSigma2)
			}
		}
	}

	return BuildFromElevation(elev, opts.Terrain)
}

// spanCoords returns n evenly spaced samples over [0, 6π].
func spanCoords(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := 6 * math.Pi / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}

	return out
}
