package route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/terrapath/gridnav"
)

// GeoJSON serializes a planned route as a FeatureCollection holding one
// LineString feature through the lon/lat centers of the path cells, with
// "total_cost" and "leg_costs" properties. center maps a grid cell to its
// lon/lat center (geo.Spec.CenterFunc is the usual supplier).
// Returns ErrEmptyRoute for a route without a path.
// Complexity: O(len(path)).
func GeoJSON(rt Route, center func(gridnav.Node) orb.Point) ([]byte, error) {
	if len(rt.Path) == 0 {
		return nil, ErrEmptyRoute
	}

	line := make(orb.LineString, 0, len(rt.Path))
	for _, n := range rt.Path {
		line = append(line, center(n))
	}

	legCosts := make([]float64, 0, len(rt.Legs))
	for _, leg := range rt.Legs {
		legCosts = append(legCosts, leg.Cost)
	}

	f := geojson.NewFeature(line)
	f.Properties["total_cost"] = rt.TotalCost
	f.Properties["leg_costs"] = legCosts

	fc := geojson.NewFeatureCollection()
	fc.Append(f)

	return fc.MarshalJSON()
}
