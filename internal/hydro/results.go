package hydro

// Rating buckets metacentric height into a handling character.
type Rating int

const (
	Dangerous Rating = iota
	Tender
	Moderate
	Stiff
)

var ratingNames = []string{"dangerous", "tender", "moderate", "stiff"}

func (r Rating) String() string {
	if r < 0 || int(r) >= len(ratingNames) {
		return "unknown"
	}
	return ratingNames[r]
}

// GM thresholds in meters, evaluated top-down, strict and
// non-overlapping.
const (
	StiffGM    = 1.5
	ModerateGM = 0.7
	TenderGM   = 0.3
)

// RateGM classifies a metacentric height.
func RateGM(gm float64) Rating {
	switch {
	case gm > StiffGM:
		return Stiff
	case gm > ModerateGM:
		return Moderate
	case gm > TenderGM:
		return Tender
	default:
		return Dangerous
	}
}

// ResistancePoint is one sample of the resistance curve.
type ResistancePoint struct {
	SpeedKn  float64 // kn
	Friction float64 // N
	Wave     float64 // N
	Total    float64 // N
	Power    float64 // W
}

// RightingPoint is one sample of the righting-arm curve.
type RightingPoint struct {
	HeelDeg float64
	GZ      float64 // m
}

// Results holds everything the engine derives from one design. A
// Results value is computed whole and never mutated afterwards.
type Results struct {
	Displacement float64 // kg
	Draft        float64 // m
	Freeboard    float64 // m

	KB float64 // m
	BM float64 // m
	KG float64 // m
	GM float64 // m

	Rating Rating

	EffectiveLWL float64 // m
	HullSpeed    float64 // kn
	Froude       float64
	MaxSpeed     float64 // kn
	Planing      bool

	BowLengthFactor float64
	BowWaveFactor   float64
	SternWaveFactor float64

	Resistance []ResistancePoint
	Righting   []RightingPoint
}
