// Package keepout applies forbidden-region polygons to terrapath blocked
// masks.
//
// Zones are lon/lat polygons — operational exclusion areas, hazard outlines,
// protected sites — loaded from GeoJSON or constructed directly. An Index
// holds them in a 2-D R-tree keyed by bounding box, so stamping a W×H grid
// queries only the zones whose boxes cover each cell instead of scanning the
// whole set.
//
// Stamping happens on a mutable mask copy before the terrain grid is built,
// preserving grid immutability: the planning session still shares one
// read-only snapshot.
package keepout

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/terrapath/gridnav"
)

// Sentinel errors for zone handling.
var (
	// ErrDegenerateZone indicates a zone polygon with fewer than 3 vertices.
	ErrDegenerateZone = errors.New("keepout: zone polygon needs at least 3 vertices")
	// ErrBadGeoJSON indicates undecodable GeoJSON input.
	ErrBadGeoJSON = errors.New("keepout: invalid GeoJSON")
)

// bboxPad inflates degenerate (zero-extent) bounding boxes so they satisfy
// the R-tree's positive-length requirement.
const bboxPad = 1e-9

// Zone is one keep-out region: an outer-ring polygon in lon/lat with an
// optional display name.
type Zone struct {
	Name    string
	Polygon orb.Polygon
}

// zoneEntry wraps a Zone for R-tree storage with its precomputed bounds.
type zoneEntry struct {
	zone Zone
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *zoneEntry) Bounds() rtreego.Rect { return e.bbox }

// Index answers point-in-any-zone queries via an R-tree over zone bounding
// boxes. Immutable once built.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex validates the zones and builds the R-tree.
// Returns ErrDegenerateZone (wrapped with the zone name) for any polygon
// with fewer than 3 outer-ring vertices. Complexity: O(n log n).
func NewIndex(zones []Zone) (*Index, error) {
	tree := rtreego.NewTree(2, 25, 50)
	for i, z := range zones {
		if len(z.Polygon) == 0 || len(z.Polygon[0]) < 3 {
			return nil, fmt.Errorf("%w: zone %d %q", ErrDegenerateZone, i, z.Name)
		}
		bound := z.Polygon.Bound()
		rect, err := rtreego.NewRect(
			rtreego.Point{bound.Min.Lon(), bound.Min.Lat()},
			[]float64{
				bound.Max.Lon() - bound.Min.Lon() + bboxPad,
				bound.Max.Lat() - bound.Min.Lat() + bboxPad,
			},
		)
		if err != nil {
			return nil, fmt.Errorf("keepout: zone %d %q: %w", i, z.Name, err)
		}
		tree.Insert(&zoneEntry{zone: z, bbox: rect})
	}

	return &Index{tree: tree, n: len(zones)}, nil
}

// Len returns the number of indexed zones.
func (ix *Index) Len() int { return ix.n }

// Contains reports whether p falls inside any zone. The R-tree narrows the
// candidates to zones whose bounding box covers p; exact membership uses a
// planar point-in-polygon test. Complexity: O(log n + k) for k candidates.
func (ix *Index) Contains(p orb.Point) bool {
	probe, err := rtreego.NewRect(rtreego.Point{p.Lon(), p.Lat()}, []float64{bboxPad, bboxPad})
	if err != nil {
		return false
	}
	for _, hit := range ix.tree.SearchIntersect(probe) {
		if planar.PolygonContains(hit.(*zoneEntry).zone.Polygon, p) {
			return true
		}
	}

	return false
}

// Stamp marks every cell whose center falls inside a zone as blocked,
// mutating the given mask in place, and returns the number of newly blocked
// cells. center maps a grid cell to its lon/lat center (geo.Spec.CenterFunc
// is the usual supplier). Already-blocked cells are left untouched and not
// counted. Complexity: O(H×W×(log n + k)).
func (ix *Index) Stamp(blocked [][]bool, center func(gridnav.Node) orb.Point) int {
	var stamped int
	for r := range blocked {
		for c := range blocked[r] {
			if blocked[r][c] {
				continue
			}
			if ix.Contains(center(gridnav.Node{Row: r, Col: c})) {
				blocked[r][c] = true
				stamped++
			}
		}
	}

	return stamped
}

// FromGeoJSON decodes a FeatureCollection into zones. Polygon features
// contribute one zone each, MultiPolygon features one per member polygon;
// other geometry types are ignored. The feature's "name" property, when a
// string, becomes the zone name. Returns ErrBadGeoJSON (wrapped) on
// undecodable input.
func FromGeoJSON(data []byte) ([]Zone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}

	var zones []Zone
	for _, f := range fc.Features {
		name, _ := f.Properties["name"].(string)
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			zones = append(zones, Zone{Name: name, Polygon: g})
		case orb.MultiPolygon:
			for _, p := range g {
				zones = append(zones, Zone{Name: name, Polygon: p})
			}
		}
	}

	return zones, nil
}
