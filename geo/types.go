// Package geo defines types and sentinel errors for geographic grid specs
// in github.com/katalvlaran/terrapath.
package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for spec construction.
var (
	// ErrBadBounds indicates an empty or inverted lon/lat bounding box.
	ErrBadBounds = errors.New("geo: bounding box must satisfy min < max on both axes")
	// ErrBadDims indicates grid dimensions below 2×2.
	ErrBadDims = errors.New("geo: grid must be at least 2x2")
	// ErrBadRadius indicates a non-positive body radius.
	ErrBadRadius = errors.New("geo: body radius must be positive")
)

// Body radii in meters for the planets this library is typically pointed at.
const (
	// EarthRadiusM is the WGS84 semi-major axis used across the orb ecosystem.
	EarthRadiusM = orb.EarthRadius
	// MarsRadiusM is the Mars mean radius.
	MarsRadiusM = 3_390_000.0
)

// Spec describes a W×H grid laid over a lon/lat bounding box on a sphere of
// the given radius. Row 0 sits at MinLat, column 0 at MinLon; cell centers
// are evenly spaced across the inclusive bounds. Immutable.
type Spec struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
	W, H           int
	Radius         float64
}
