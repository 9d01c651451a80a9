package hull

// Per-variant coefficient tables.

var blockCoeffs = map[HullType]float64{
	FlatBottom:  0.64,
	SingleChine: 0.60,
	MultiChine:  0.55,
	RoundBilge:  0.52,
}

// BlockCoeff returns CB for the hull variant.
func BlockCoeff(t HullType) float64 {
	return blockCoeffs[t]
}

var prismaticDefaults = map[HullType]float64{
	FlatBottom:  0.62,
	SingleChine: 0.58,
	MultiChine:  0.56,
	RoundBilge:  0.54,
}

// PrismaticDefault is the prismatic coefficient used when a design
// does not set one.
func PrismaticDefault(t HullType) float64 {
	return prismaticDefaults[t]
}

var planingFactors = map[HullType]float64{
	FlatBottom:  0.8,
	SingleChine: 0.9,
	MultiChine:  1.0,
	RoundBilge:  1.2,
}

func PlaningFactor(t HullType) float64 {
	return planingFactors[t]
}

var sternPlaningFactors = map[SternType]float64{
	TransomStern: 1.0,
	CanoeStern:   1.3,
	DoubleEnded:  1.3,
}

func SternPlaningFactor(t SternType) float64 {
	return sternPlaningFactors[t]
}

// BasePlaningSLR is the unadjusted speed-length-ratio planing threshold.
const BasePlaningSLR = 2.5

type engineWeightModel struct {
	base  float64 // kg
	perHP float64 // kg per horsepower
}

var engineWeights = map[EngineType]engineWeightModel{
	Outboard: {base: 20, perHP: 1.0},
	Inboard:  {base: 90, perHP: 2.0},
	Electric: {base: 35, perHP: 1.5},
}

// EngineWeight returns the installed engine weight in kg.
func EngineWeight(t EngineType, hp float64) float64 {
	m := engineWeights[t]
	return m.base + m.perHP*hp
}

var bowLengthBase = map[BowType]float64{
	PlumbBow: 1.00,
	RakedBow: 1.00, // reduced further by rake angle
	SpoonBow: 0.98,
	AxeBow:   1.03,
}

var bowWaveBase = map[BowType]float64{
	PlumbBow: 1.00,
	RakedBow: 0.97,
	SpoonBow: 0.95,
	AxeBow:   0.92,
}

// BowLengthFactor modulates the effective sailing length.
func BowLengthFactor(t BowType, rakeDeg float64) float64 {
	f := bowLengthBase[t]
	if t == RakedBow {
		f -= 0.002 * rakeDeg
	}
	return f
}

// BowWaveFactor scales wave-making resistance with bow shape and flare.
func BowWaveFactor(t BowType, flareDeg float64) float64 {
	return bowWaveBase[t] * (1 + 0.002*flareDeg)
}

var sternWaveBase = map[SternType]float64{
	TransomStern: 1.00,
	CanoeStern:   0.90,
	DoubleEnded:  0.85,
}

// SternWaveFactor scales wave-making resistance with stern shape and
// transom immersion.
func SternWaveFactor(t SternType, immersion float64) float64 {
	return sternWaveBase[t] * (1 + 0.3*immersion)
}
