package hull

// HullType is the cross-section variant of the hull.
type HullType int

const (
	FlatBottom HullType = iota
	SingleChine
	MultiChine
	RoundBilge
)

var hullTypeNames = []string{"flat-bottom", "single-chine", "multi-chine", "round-bilge"}

func (t HullType) String() string {
	if t < 0 || int(t) >= len(hullTypeNames) {
		return "unknown"
	}
	return hullTypeNames[t]
}

// Code maps the hull type onto [0,1] as an ordinal for the surrogate's
// input encoding.
func (t HullType) Code() float64 {
	return float64(t) / float64(len(hullTypeNames)-1)
}

// HullTypes lists all variants in enumeration order.
func HullTypes() []HullType {
	return []HullType{FlatBottom, SingleChine, MultiChine, RoundBilge}
}

// BowType is the bow profile variant.
type BowType int

const (
	PlumbBow BowType = iota
	RakedBow
	SpoonBow
	AxeBow
)

var bowTypeNames = []string{"plumb", "raked", "spoon", "axe"}

func (t BowType) String() string {
	if t < 0 || int(t) >= len(bowTypeNames) {
		return "unknown"
	}
	return bowTypeNames[t]
}

func BowTypes() []BowType {
	return []BowType{PlumbBow, RakedBow, SpoonBow, AxeBow}
}

// SternType is the stern profile variant.
type SternType int

const (
	TransomStern SternType = iota
	CanoeStern
	DoubleEnded
)

var sternTypeNames = []string{"transom", "canoe", "double-ended"}

func (t SternType) String() string {
	if t < 0 || int(t) >= len(sternTypeNames) {
		return "unknown"
	}
	return sternTypeNames[t]
}

func SternTypes() []SternType {
	return []SternType{TransomStern, CanoeStern, DoubleEnded}
}

// EngineType selects the engine weight model.
type EngineType int

const (
	Outboard EngineType = iota
	Inboard
	Electric
)

var engineTypeNames = []string{"outboard", "inboard", "electric"}

func (t EngineType) String() string {
	if t < 0 || int(t) >= len(engineTypeNames) {
		return "unknown"
	}
	return engineTypeNames[t]
}

func EngineTypes() []EngineType {
	return []EngineType{Outboard, Inboard, Electric}
}

// BallastType describes where fixed ballast is carried.
type BallastType int

const (
	NoBallast BallastType = iota
	InternalBallast
	KeelBallast
)

var ballastTypeNames = []string{"none", "internal", "keel"}

func (t BallastType) String() string {
	if t < 0 || int(t) >= len(ballastTypeNames) {
		return "unknown"
	}
	return ballastTypeNames[t]
}

func BallastTypes() []BallastType {
	return []BallastType{NoBallast, InternalBallast, KeelBallast}
}

// Params is the complete design vector for one hull. All lengths are in
// meters, weights in kg, tank capacities in liters, angles in degrees.
type Params struct {
	LWL   float64
	Beam  float64
	Depth float64

	HullType          HullType
	Deadrise          float64
	DeadriseVariation float64

	BowType  BowType
	BowRake  float64
	BowFlare float64

	SternType        SternType
	TransomRake      float64
	TransomImmersion float64

	Prismatic  float64
	LCB        float64
	KeelRocker float64

	ChineHeight float64
	ChineAngle  float64

	CrewWeight    float64
	CargoWeight   float64
	BallastType   BallastType
	BallastWeight float64
	BallastHeight float64
	FuelCapacity  float64
	WaterCapacity float64

	EngineHP     float64
	EngineType   EngineType
	PropDiameter float64
	PropPitch    float64
}

// DefaultParams returns a mid-range trailerable skiff.
func DefaultParams() Params {
	return Params{
		LWL:              5.8,
		Beam:             2.1,
		Depth:            0.9,
		HullType:         SingleChine,
		Deadrise:         12,
		BowType:          PlumbBow,
		BowFlare:         10,
		SternType:        TransomStern,
		TransomImmersion: 0.1,
		Prismatic:        0.58,
		CrewWeight:       150,
		CargoWeight:      50,
		BallastType:      NoBallast,
		BallastHeight:    0.1,
		FuelCapacity:     40,
		WaterCapacity:    20,
		EngineHP:         20,
		EngineType:       Outboard,
		PropDiameter:     0.25,
		PropPitch:        0.20,
	}
}
