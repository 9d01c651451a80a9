package hull

// Physical constants and unit conversions used throughout the engine.
const (
	RhoSeawater  = 1025.0  // kg/m^3
	FuelDensity  = 0.75    // kg/L (gasoline)
	WaterDensity = 1.0     // kg/L
	KinViscosity = 1.19e-6 // m^2/s, seawater at ~15C
	Gravity      = 9.81    // m/s^2

	MetersToFeet = 3.28084
	KnotsToMS    = 0.514444
	KgToLbs      = 2.20462
	MphToKnots   = 0.868976
)

// HullWeight is the fixed structural weight of the bare hull in kg.
const HullWeight = 180.0
