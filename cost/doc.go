// Package cost provides the edge-cost models that turn terrain layers into
// the numbers the terrapath search engine minimizes.
//
// Models (interchangeable behind the same contract):
//
//   - SlopeWeighted — geometric blend of travel distance, destination slope
//     (normalized by 45°) and destination roughness. Works on heightless
//     grids.
//   - GradeLimited  — SlopeWeighted plus a per-edge rise-over-run rejection
//     with the grid's edge tolerance. Requires an elevation grid.
//   - PhysicalEnergy — closed-form battery draw in Joules: uphill gravity,
//     rolling resistance, drivetrain losses, a roughness adder and capped
//     regenerative braking, with the net clamped to zero. Requires an
//     elevation grid.
//
// Contract:
//
//	EdgeCost(u, v) → (cost ≥ 0, ok)
//
// ok=false marks an impassable edge — a normal value consumed silently by the
// search (the edge is skipped), never an error. Models are purely functional
// after construction: no mutable internal state, safe for concurrent reads.
//
// Heuristic calibration:
//
//   - Energy-mode costs are Joules while geometric heuristics are meters, so
//     feeding a meters heuristic into an energy search is unsound.
//     PhysicalEnergy.Heuristic() returns a calibrated admissible guide:
//     MinDrawPerMeter() (the exact per-meter floor over the clamped grade
//     range) times straight-line distance. Under parameters where steep
//     descent is free the floor is 0 and the search runs in uniform-cost
//     order.
//
// Error handling (sentinel errors, fail-fast at construction):
//
//   - ErrNilGrid, ErrBadWeights, ErrBadMaxGrade — SlopeWeighted/GradeLimited.
//   - ErrBadMass, ErrBadGravity, ErrBadEfficiency, ErrBadGradeRange —
//     PhysicalEnergy. RegenEff is clamped to [0, 0.5] instead of rejected.
package cost
