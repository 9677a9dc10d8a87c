// Package cost defines parameter types, options, and sentinel errors for the
// terrapath edge-cost models.
package cost

import (
	"errors"
)

// Sentinel errors for cost-model construction.
var (
	// ErrNilGrid indicates a nil terrain grid was passed to a constructor.
	ErrNilGrid = errors.New("cost: terrain grid is nil")
	// ErrBadWeights indicates a negative slope/roughness/distance weight.
	ErrBadWeights = errors.New("cost: weights must be non-negative and w_dist positive")
	// ErrBadMaxGrade indicates a non-positive maximum grade for the grade-limited model.
	ErrBadMaxGrade = errors.New("cost: max grade must be positive")
	// ErrBadMass indicates a non-positive vehicle mass.
	ErrBadMass = errors.New("cost: vehicle mass must be positive")
	// ErrBadGravity indicates a non-positive local gravity.
	ErrBadGravity = errors.New("cost: gravity must be positive")
	// ErrBadEfficiency indicates a drivetrain efficiency outside (0, 1].
	ErrBadEfficiency = errors.New("cost: drivetrain efficiency must be in (0, 1]")
	// ErrBadGradeRange indicates MinGrade > MaxGrade.
	ErrBadGradeRange = errors.New("cost: min grade must not exceed max grade")
)

// refSlopeDeg is the reference steepness normalizing the slope penalty term:
// a 45° slope contributes exactly w_slope to the penalty factor.
const refSlopeDeg = 45.0

// maxRegenEff caps regenerative-braking efficiency. The energy balance does
// not certify recovery beyond half the downhill gravitational energy, so
// larger values are clamped rather than rejected.
const maxRegenEff = 0.5

// SlopeWeights parameterizes the SlopeWeighted cost model.
//
// WDist    – weight for pure travel distance (must be > 0).
// WSlope   – weight for the slope penalty, scaled by slope/45°.
// WRough   – weight for the roughness penalty, scaled by roughness.
// MaxGrade – rise-over-run limit for the grade-limited variant; a single edge
//
//	whose |Δh|/d exceeds MaxGrade × the grid's edge tolerance is
//	rejected even when neither endpoint cell is blocked.
type SlopeWeights struct {
	WDist    float64
	WSlope   float64
	WRough   float64
	MaxGrade float64
}

// DefaultSlopeWeights returns the stock blend: unit distance weight, 3×
// slope emphasis, unit roughness weight, 0.6 maximum grade.
func DefaultSlopeWeights() SlopeWeights {
	return SlopeWeights{
		WDist:    1.0,
		WSlope:   3.0,
		WRough:   1.0,
		MaxGrade: 0.6,
	}
}

// EnergyParams parameterizes the PhysicalEnergy cost model. Defaults describe
// a small Mars rover.
//
// MassKg      – vehicle mass.
// Gravity     – local gravitational acceleration, m/s².
// Crr         – rolling-resistance coefficient.
// Eta         – drivetrain efficiency in (0, 1].
// KRoughJPerM – roughness energy adder, Joules per meter at roughness = 1.
// RegenEff    – regenerative-braking efficiency; values above 0.5 are capped.
// MinGrade,
// MaxGrade    – clamp range for the per-edge rise-over-run grade.
type EnergyParams struct {
	MassKg      float64
	Gravity     float64
	Crr         float64
	Eta         float64
	KRoughJPerM float64
	RegenEff    float64
	MinGrade    float64
	MaxGrade    float64
}

// DefaultEnergyParams returns the stock rover parameters: 185 kg, Mars
// gravity 3.71 m/s², Crr 0.03, η 0.70, 40 J/m roughness adder, 10% regen,
// grades clamped to ±1 (±45°).
func DefaultEnergyParams() EnergyParams {
	return EnergyParams{
		MassKg:      185.0,
		Gravity:     3.71,
		Crr:         0.03,
		Eta:         0.70,
		KRoughJPerM: 40.0,
		RegenEff:    0.10,
		MinGrade:    -1.0,
		MaxGrade:    1.0,
	}
}
