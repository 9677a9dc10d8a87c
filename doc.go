// Package terrapath plans traversal routes for a ground vehicle across a
// discretized elevation surface, trading off distance, slope, surface
// roughness and, optionally, battery energy.
//
// 🚀 What is terrapath?
//
//	A modular, dependency-light library that brings together:
//		• Terrain layers: slope & roughness derivation, blocked masks, synthetic fields
//		• Cost models: geometric slope/roughness penalties and a physical energy balance
//		• Search: a weighted, resource-bounded, anytime A* over grid graphs
//		• Geography: lon/lat grid specs, metric spacing, geodesic heuristics
//		• Keep-out zones: GeoJSON polygons, R-tree indexed, stamped into masks
//		• Routing: multi-waypoint planning with snapping and GeoJSON export
//
// ✨ Why choose terrapath?
//
//   - Deterministic – identical inputs reproduce identical paths, costs and
//     expansion orders, down to heap tie-breaking
//   - Honest failure modes – "no path" and "budget exhausted" are ordinary
//     result values, never panics or errors
//   - Pure function contracts – the search engine consumes neighbor, cost and
//     heuristic functions and never touches terrain storage directly
//
// Everything is organized under seven subpackages:
//
//	gridnav/ — grid nodes, ROI-bounded 4/8-connectivity, nearest-free snapping
//	terrain/ — immutable terrain grids and layer derivation
//	cost/    — SlopeWeighted and PhysicalEnergy edge-cost models
//	astar/   — the weighted, bounded, anytime A* engine
//	geo/     — lon/lat grid specs and geodesic heuristics
//	keepout/ — forbidden-region polygons applied to blocked masks
//	route/   — waypoint sequencing, leg stitching, GeoJSON export
//
// Quick sketch:
//
//	eg, _ := terrain.Synthetic(128, 128, terrain.DefaultSyntheticOptions())
//	model, _ := cost.NewSlopeWeighted(&eg.Grid, cost.DefaultSlopeWeights())
//	g, _ := gridnav.New(eg.Height, eg.Width, gridnav.DefaultGridOptions())
//	res, _ := astar.Search(start, goal, g.Neighbors, model.EdgeCost,
//	    gridnav.EuclidHeuristic(eg.Cell.DX))
//	if res.Found() { fmt.Println(res.Cost, len(res.Path)) }
//
// Dive into each package's doc.go for contracts, complexity and error
// semantics.
package terrapath
