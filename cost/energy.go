package cost

import (
	"math"

	"github.com/katalvlaran/terrapath/gridnav"
	"github.com/katalvlaran/terrapath/terrain"
)

// PhysicalEnergy models the battery energy (Joules) a wheeled vehicle draws
// to make one grid step, from a closed-form force balance:
//
//	grade   = clamp(Δh/d, MinGrade, MaxGrade);  θ = atan(grade)
//	F_up    = m·g·max(0, sin θ)          uphill gravity
//	F_roll  = Crr·m·g·|cos θ|            rolling resistance
//	E_mech  = (F_up + F_roll)·d          before drivetrain losses
//	E_down  = m·g·max(0, −sin θ)·d       recoverable downhill energy
//	E_batt  = max(0, E_mech/η + k_rough·rough(v)·d − regen·E_down)
//
// The final clamp to zero is a design choice, not a physical derivation: the
// model does not certify that recovered energy can exceed forward-drive cost,
// so net-negative steps report zero draw instead of crediting the battery.
// A blocked destination is impassable, as in SlopeWeighted.
type PhysicalEnergy struct {
	grid *terrain.ElevationGrid
	p    EnergyParams
}

// NewPhysicalEnergy validates params and binds the model to eg. RegenEff is
// clamped to [0, 0.5] (see maxRegenEff); out-of-range mass, gravity,
// efficiency, or grade range fail fast with the matching sentinel.
// Complexity: O(1).
func NewPhysicalEnergy(eg *terrain.ElevationGrid, p EnergyParams) (*PhysicalEnergy, error) {
	if eg == nil {
		return nil, ErrNilGrid
	}
	if p.MassKg <= 0 {
		return nil, ErrBadMass
	}
	if p.Gravity <= 0 {
		return nil, ErrBadGravity
	}
	if p.Eta <= 0 || p.Eta > 1 {
		return nil, ErrBadEfficiency
	}
	if p.MinGrade > p.MaxGrade {
		return nil, ErrBadGradeRange
	}
	if p.RegenEff < 0 {
		p.RegenEff = 0
	}
	if p.RegenEff > maxRegenEff {
		p.RegenEff = maxRegenEff
	}

	return &PhysicalEnergy{grid: eg, p: p}, nil
}

// EdgeCost returns the battery draw in Joules for the step u→v, or ok=false
// when v is blocked. Cost is always ≥ 0. Complexity: O(1).
func (m *PhysicalEnergy) EdgeCost(u, v gridnav.Node) (float64, bool) {
	if m.grid.Blocked[v.Row][v.Col] {
		return 0, false
	}

	d := m.grid.Cell.Step(v.Row-u.Row, v.Col-u.Col)
	dh := m.grid.Elevation[v.Row][v.Col] - m.grid.Elevation[u.Row][u.Col]
	grade := dh / d
	if grade < m.p.MinGrade {
		grade = m.p.MinGrade
	}
	if grade > m.p.MaxGrade {
		grade = m.p.MaxGrade
	}

	draw := m.drawPerMeter(grade, m.grid.Rough[v.Row][v.Col])

	return draw * d, true
}

// drawPerMeter returns battery draw per meter of travel at the given clamped
// grade and destination roughness. Shared by EdgeCost and MinDrawPerMeter so
// the heuristic floor and the real cost can never disagree.
func (m *PhysicalEnergy) drawPerMeter(grade, rough float64) float64 {
	theta := math.Atan(grade)
	sin, cos := math.Sin(theta), math.Cos(theta)

	mg := m.p.MassKg * m.p.Gravity
	fUp := mg * math.Max(0, sin)
	fRoll := m.p.Crr * mg * math.Abs(cos)

	perMeter := (fUp+fRoll)/m.p.Eta +
		m.p.KRoughJPerM*rough -
		m.p.RegenEff*mg*math.Max(0, -sin)

	return math.Max(0, perMeter)
}

// MinDrawPerMeter returns the exact lower bound of battery draw per meter
// over the clamped grade range at zero roughness. Per-meter draw is monotone
// increasing in grade (uphill gravity grows, downhill regen credit grows the
// other way), so the minimum sits at MinGrade; the zero clamp applies there
// too. Complexity: O(1).
func (m *PhysicalEnergy) MinDrawPerMeter() float64 {
	return m.drawPerMeter(m.p.MinGrade, 0)
}

// Heuristic returns an admissible straight-line heuristic for energy-mode
// searches: MinDrawPerMeter() × Euclidean ground distance. A geometric
// meters-valued heuristic is NOT a lower bound on Joule-valued edge costs;
// this calibrated rate is. Note that whenever regen at the steepest allowed
// descent outweighs rolling resistance the floor is exactly 0 and the search
// degrades to uniform-cost (Dijkstra) order — documented behavior, preferable
// to an inadmissible guide that forfeits the optimality and epsilon-bound
// guarantees.
func (m *PhysicalEnergy) Heuristic() func(u, goal gridnav.Node) float64 {
	rate := m.MinDrawPerMeter()
	cs := m.grid.Cell

	return func(u, goal gridnav.Node) float64 {
		dy := cs.DY * float64(u.Row-goal.Row)
		dx := cs.DX * float64(u.Col-goal.Col)

		return rate * math.Hypot(dx, dy)
	}
}

// JouleToWh converts Joules to watt-hours.
func JouleToWh(j float64) float64 {
	return j / 3600.0
}

// PathEnergy sums EdgeCost over consecutive nodes of path, skipping
// impassable steps (which can appear only if the path was produced under a
// different mask). Complexity: O(len(path)).
func (m *PhysicalEnergy) PathEnergy(path []gridnav.Node) float64 {
	var tot float64
	for i := 1; i < len(path); i++ {
		if e, ok := m.EdgeCost(path[i-1], path[i]); ok {
			tot += e
		}
	}

	return tot
}
