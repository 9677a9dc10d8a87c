// Package geo maps grid cells onto lon/lat coordinates and back, derives the
// metric cell spacing geographic grids need, and supplies geodesic distance
// heuristics on a configurable body radius.
//
// Distances use the equirectangular approximation at the mean latitude of the
// two points — adequate over the regional windows this library plans across,
// and radius-agnostic (orb's geo helpers hard-code Earth's radius; Mars needs
// the explicit form). The core stays heuristic-agnostic: these helpers are
// just the usual suppliers.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/terrapath/gridnav"
	"github.com/katalvlaran/terrapath/terrain"
)

const degToRad = math.Pi / 180.0

// minSpacing floors the derived metric spacing so degenerate boxes near the
// poles cannot produce a zero cell size.
const minSpacing = 1e-6

// NewSpec validates and builds a Spec.
// Returns ErrBadBounds, ErrBadDims, or ErrBadRadius. Complexity: O(1).
func NewSpec(minLon, minLat, maxLon, maxLat float64, w, h int, radius float64) (Spec, error) {
	if minLon >= maxLon || minLat >= maxLat {
		return Spec{}, ErrBadBounds
	}
	if w < 2 || h < 2 {
		return Spec{}, ErrBadDims
	}
	if radius <= 0 {
		return Spec{}, ErrBadRadius
	}

	return Spec{
		MinLon: minLon, MinLat: minLat,
		MaxLon: maxLon, MaxLat: maxLat,
		W: w, H: h,
		Radius: radius,
	}, nil
}

// MidLat returns the latitude of the box center, where longitude spacing is
// evaluated. Complexity: O(1).
func (s Spec) MidLat() float64 {
	return 0.5 * (s.MinLat + s.MaxLat)
}

// CellCenter returns the lon/lat of cell n's center. n must be in bounds.
// Complexity: O(1).
func (s Spec) CellCenter(n gridnav.Node) orb.Point {
	lon := s.MinLon + (s.MaxLon-s.MinLon)*float64(n.Col)/float64(s.W-1)
	lat := s.MinLat + (s.MaxLat-s.MinLat)*float64(n.Row)/float64(s.H-1)

	return orb.Point{lon, lat}
}

// CenterFunc returns CellCenter as a standalone closure, the shape consumed
// by keep-out stamping and route export.
func (s Spec) CenterFunc() func(gridnav.Node) orb.Point {
	return s.CellCenter
}

// NearestCell snaps a lon/lat point to the closest grid cell, clamping to the
// grid borders for points outside the box. Complexity: O(1).
func (s Spec) NearestCell(p orb.Point) gridnav.Node {
	col := int(math.Round((p.Lon() - s.MinLon) / (s.MaxLon - s.MinLon) * float64(s.W-1)))
	row := int(math.Round((p.Lat() - s.MinLat) / (s.MaxLat - s.MinLat) * float64(s.H-1)))
	if col < 0 {
		col = 0
	}
	if col > s.W-1 {
		col = s.W - 1
	}
	if row < 0 {
		row = 0
	}
	if row > s.H-1 {
		row = s.H - 1
	}

	return gridnav.Node{Row: row, Col: col}
}

// CellSize derives the anisotropic metric spacing of one grid step: DX from
// the longitude step scaled by cos(mid-latitude), DY from the latitude step.
// Both are floored at minSpacing. Complexity: O(1).
func (s Spec) CellSize() terrain.CellSize {
	dlon := (s.MaxLon - s.MinLon) / float64(s.W-1)
	dlat := (s.MaxLat - s.MinLat) / float64(s.H-1)
	dx := dlon * degToRad * math.Cos(s.MidLat()*degToRad) * s.Radius
	dy := dlat * degToRad * s.Radius

	return terrain.CellSize{
		DX: math.Max(dx, minSpacing),
		DY: math.Max(dy, minSpacing),
	}
}

// Distance returns the equirectangular ground distance in meters between two
// lon/lat points on the spec's body. Complexity: O(1).
func (s Spec) Distance(a, b orb.Point) float64 {
	meanLat := 0.5 * (a.Lat() + b.Lat()) * degToRad
	x := (b.Lon() - a.Lon()) * degToRad * math.Cos(meanLat) * s.Radius
	y := (b.Lat() - a.Lat()) * degToRad * s.Radius

	return math.Hypot(x, y)
}

// Heuristic returns the geodesic straight-line heuristic in meters between
// cell centers — admissible for distance-scaled cost models with w_dist ≥ 1.
func (s Spec) Heuristic() func(u, goal gridnav.Node) float64 {
	return func(u, goal gridnav.Node) float64 {
		return s.Distance(s.CellCenter(u), s.CellCenter(goal))
	}
}

// ExpandMarginKm returns a copy of the spec whose bounding box is widened by
// km kilometers on every side (longitude scaled at the mid-latitude), the
// usual prelude to planning so routes can detour outside the waypoints' own
// box. Grid dimensions are unchanged. Complexity: O(1).
func (s Spec) ExpandMarginKm(km float64) Spec {
	dLat := km * 1000.0 / (s.Radius * degToRad)
	cosMid := math.Cos(s.MidLat() * degToRad)
	if cosMid < minSpacing {
		cosMid = minSpacing
	}
	dLon := km * 1000.0 / (s.Radius * cosMid * degToRad)

	out := s
	out.MinLon -= dLon
	out.MaxLon += dLon
	out.MinLat -= dLat
	out.MaxLat += dLat

	return out
}
