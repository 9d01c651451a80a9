package hydro

import (
	"math"

	"github.com/san-kum/hullab/internal/hull"
)

const (
	resistancePoints = 25
	waveCoeff        = 0.85
	// reynoldsFloor guards the ITTC correlation line against log of a
	// non-positive Reynolds number at rest.
	reynoldsFloor = 1000.0
)

// resistanceCurve samples frictional and wave resistance from rest to
// 1.2x the achievable speed. Friction follows the ITTC-1957 line; wave
// resistance is a quartic-in-Froude empirical term scaled by the
// prismatic coefficient and the combined bow/stern wave factor.
func resistanceCurve(p hull.Params, disp, draft, effLWL, maxSpeed, waveFactor float64) []ResistancePoint {
	wetted := p.LWL * (p.Beam + 2*draft)
	top := 1.2 * maxSpeed

	curve := make([]ResistancePoint, resistancePoints)
	for i := range curve {
		vKn := top * float64(i) / float64(resistancePoints-1)
		v := vKn * hull.KnotsToMS

		re := v * p.LWL / hull.KinViscosity
		if re < reynoldsFloor {
			re = reynoldsFloor
		}
		cf := 0.075 / math.Pow(math.Log10(re)-2, 2)
		friction := 0.5 * hull.RhoSeawater * v * v * wetted * cf

		fn := v / math.Sqrt(hull.Gravity*effLWL)
		wave := waveCoeff * math.Pow(fn, 4) * disp * hull.Gravity * p.Prismatic * waveFactor

		total := friction + wave
		curve[i] = ResistancePoint{
			SpeedKn:  vKn,
			Friction: friction,
			Wave:     wave,
			Total:    total,
			Power:    total * v,
		}
	}
	return curve
}
