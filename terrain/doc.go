// Package terrain provides immutable terrain-grid snapshots and the layer
// derivation that turns raw elevation into the per-cell attributes cost
// models consume.
//
// Overview:
//
//   - Grid is the heightless variant: co-indexed H×W slope (degrees),
//     roughness ([0,1]) and blocked layers plus ground spacing.
//   - ElevationGrid embeds Grid and adds the elevation layer (meters).
//     Cost models that need height differences accept *ElevationGrid, so the
//     elevation requirement is enforced by the type system.
//   - BuildFromElevation derives slope, roughness and the blocked mask from a
//     rectangular elevation array.
//   - Synthetic generates deterministic test terrain: crossed sine waves,
//     Gaussian noise and crater depressions.
//
// Invariants:
//
//   - All per-cell layers share one (H,W) shape, validated at construction.
//   - Ground spacing is strictly positive along both axes.
//   - A cell with non-finite elevation is blocked regardless of any slope
//     threshold.
//   - Grids are built once per planning session and never mutated: every leg
//     search reads the same snapshot, which makes concurrent reads safe.
//
// Derivation choices:
//
//   - Slope: degrees(atan(|∇z|)) with central differences and per-axis metric
//     spacing; NaN sanitizes to 0°, overflow to 90°.
//   - Roughness: the gradient magnitude clipped to its 5th–95th percentile and
//     rescaled to [0,1]. The percentile variant is robust to outliers; its
//     absolute values differ materially from a min–max rescale, so treat
//     roughness as a relative layer.
//
// Error handling (sentinel errors, all fail-fast at construction):
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrShapeMismatch — degenerate shapes.
//   - ErrBadCellSize, ErrBadThreshold, ErrBadTolerance  — out-of-range options.
package terrain
