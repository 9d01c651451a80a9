// Package hydro is the hydrostatics and performance engine: a pure
// function from a hull design vector to displacement, stability, speed
// and resistance results. Identical inputs always produce identical
// outputs, which lets the engine double as the training oracle for the
// surrogate.
package hydro

import (
	"math"

	"github.com/san-kum/hullab/internal/hull"
)

// CrouchConstant is the empirical planing-speed constant for an
// average runabout (mph units inside the formula).
const CrouchConstant = 150.0

// MaxSpeedCapKn is the absolute speed ceiling for these hull sizes.
const MaxSpeedCapKn = 15.0

// Compute derives the full physics results for one design. It performs
// no bounds checking; callers clamp parameters to their domains first.
func Compute(p hull.Params) Results {
	disp := displacement(p)
	cb := hull.BlockCoeff(p.HullType)
	draft := disp / (hull.RhoSeawater * p.LWL * p.Beam * cb)
	freeboard := p.Depth - draft

	kb := 0.53 * draft
	volume := disp / hull.RhoSeawater
	inertia := p.LWL * p.Beam * p.Beam * p.Beam / 12
	bm := inertia / volume
	kg := centerOfGravity(p, disp)
	gm := kb + bm - kg

	bowLength := hull.BowLengthFactor(p.BowType, p.BowRake)
	bowWave := hull.BowWaveFactor(p.BowType, p.BowFlare)
	sternWave := hull.SternWaveFactor(p.SternType, p.TransomImmersion)

	effLWL := p.LWL * bowLength
	effLWLFt := effLWL * hull.MetersToFeet
	hullSpeed := 1.34 * math.Sqrt(effLWLFt)
	froude := hullSpeed * hull.KnotsToMS / math.Sqrt(hull.Gravity*effLWL)

	maxSpeed := maxSpeedKn(p, disp, hullSpeed)
	slr := maxSpeed / math.Sqrt(effLWLFt)
	threshold := hull.BasePlaningSLR * hull.PlaningFactor(p.HullType) * hull.SternPlaningFactor(p.SternType)

	r := Results{
		Displacement:    disp,
		Draft:           draft,
		Freeboard:       freeboard,
		KB:              kb,
		BM:              bm,
		KG:              kg,
		GM:              gm,
		Rating:          RateGM(gm),
		EffectiveLWL:    effLWL,
		HullSpeed:       hullSpeed,
		Froude:          froude,
		MaxSpeed:        maxSpeed,
		Planing:         slr >= threshold,
		BowLengthFactor: bowLength,
		BowWaveFactor:   bowWave,
		SternWaveFactor: sternWave,
	}
	r.Resistance = resistanceCurve(p, disp, draft, effLWL, maxSpeed, bowWave*sternWave)
	r.Righting = rightingCurve(kb, bm, kg, gm)
	return r
}

// displacement sums every mass component of the loaded boat.
func displacement(p hull.Params) float64 {
	return hull.HullWeight +
		hull.EngineWeight(p.EngineType, p.EngineHP) +
		p.CrewWeight +
		p.CargoWeight +
		p.BallastWeight +
		p.FuelCapacity*hull.FuelDensity +
		p.WaterCapacity*hull.WaterDensity
}

// Height-above-keel fractions of hull depth for each mass component.
// Ballast uses its explicit height instead.
const (
	hullCGFraction = 1.0 / 3.0
	crewCGFraction = 0.5
	tankCGFraction = 0.15
)

func centerOfGravity(p hull.Params, disp float64) float64 {
	moment := hull.HullWeight * hullCGFraction * p.Depth
	moment += hull.EngineWeight(p.EngineType, p.EngineHP) * crewCGFraction * p.Depth
	moment += p.CrewWeight * crewCGFraction * p.Depth
	moment += p.CargoWeight * crewCGFraction * p.Depth
	moment += p.BallastWeight * p.BallastHeight
	moment += (p.FuelCapacity*hull.FuelDensity + p.WaterCapacity*hull.WaterDensity) * tankCGFraction * p.Depth
	return moment / disp
}

// maxSpeedKn applies Crouch's planing formula, capped by the
// displacement-mode limit and an absolute ceiling.
func maxSpeedKn(p hull.Params, disp, hullSpeed float64) float64 {
	if p.EngineHP <= 0 {
		return math.Min(hullSpeed, MaxSpeedCapKn)
	}
	lbs := disp * hull.KgToLbs
	crouch := CrouchConstant / math.Sqrt(lbs/p.EngineHP) * hull.MphToKnots
	return math.Min(crouch, math.Min(1.5*hullSpeed, MaxSpeedCapKn))
}
