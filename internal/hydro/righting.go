package hydro

import "math"

const (
	maxHeelDeg = 45
	// smallAngleDeg is where the metacentric approximation hands over
	// to the large-angle form.
	smallAngleDeg = 15
)

// rightingCurve samples GZ from upright to 45 degrees in 1 degree
// steps. Below 15 degrees the metacentric formula GM*sin(theta)
// applies; beyond it the buoyancy term shifts by BM*sin(theta), the
// gravity term by (KG-KB)*sin(theta), projected by cos(theta).
func rightingCurve(kb, bm, kg, gm float64) []RightingPoint {
	curve := make([]RightingPoint, maxHeelDeg+1)
	for deg := 0; deg <= maxHeelDeg; deg++ {
		theta := float64(deg) * math.Pi / 180
		sin := math.Sin(theta)

		var gz float64
		if deg < smallAngleDeg {
			gz = gm * sin
		} else {
			gz = (bm*sin - (kg-kb)*sin) * math.Cos(theta)
		}
		curve[deg] = RightingPoint{HeelDeg: float64(deg), GZ: gz}
	}
	return curve
}
