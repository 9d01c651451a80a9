package config

import "github.com/san-kum/hullab/internal/hull"

// Presets are named starting-point designs for the explorer.
var Presets = map[string]DesignConfig{
	"dinghy": {
		LWL: 4.2, Beam: 1.6, Depth: 0.6,
		HullType: "flat-bottom", Deadrise: 4,
		BowType: "plumb", SternType: "transom", TransomImmersion: 0.05,
		Prismatic: 0.62,
		CrewWeight: 120, CargoWeight: 20, BallastType: "none",
		FuelCapacity: 10, WaterCapacity: 5,
		EngineHP: 5, EngineType: "outboard", PropDiameter: 0.20, PropPitch: 0.15,
	},
	"skiff": {
		LWL: 5.8, Beam: 2.1, Depth: 0.9,
		HullType: "single-chine", Deadrise: 12, BowFlare: 10,
		BowType: "plumb", SternType: "transom", TransomImmersion: 0.1,
		Prismatic: 0.58,
		CrewWeight: 150, CargoWeight: 50, BallastType: "none", BallastHeight: 0.1,
		FuelCapacity: 40, WaterCapacity: 20,
		EngineHP: 20, EngineType: "outboard", PropDiameter: 0.25, PropPitch: 0.20,
	},
	"weekender": {
		LWL: 7.0, Beam: 2.4, Depth: 1.1,
		HullType: "multi-chine", Deadrise: 16, BowFlare: 15,
		BowType: "raked", BowRake: 20, SternType: "transom", TransomImmersion: 0.15,
		Prismatic: 0.56,
		CrewWeight: 240, CargoWeight: 120, BallastType: "internal",
		BallastWeight: 80, BallastHeight: 0.1,
		FuelCapacity: 90, WaterCapacity: 60,
		EngineHP: 50, EngineType: "outboard", PropDiameter: 0.30, PropPitch: 0.25,
	},
	"ballasted-cruiser": {
		LWL: 8.0, Beam: 2.5, Depth: 1.3,
		HullType: "round-bilge", Deadrise: 20, BowFlare: 12,
		BowType: "spoon", SternType: "canoe",
		Prismatic: 0.54,
		CrewWeight: 300, CargoWeight: 150, BallastType: "keel",
		BallastWeight: 200, BallastHeight: 0.05,
		FuelCapacity: 120, WaterCapacity: 100,
		EngineHP: 30, EngineType: "inboard", PropDiameter: 0.35, PropPitch: 0.28,
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *DesignConfig {
	d, ok := Presets[name]
	if !ok {
		return nil
	}
	return &d
}

// ListPresets returns the preset names in map order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

// PresetParams resolves a preset straight to a clamped design vector.
func PresetParams(name string) (hull.Params, bool) {
	d := GetPreset(name)
	if d == nil {
		return hull.Params{}, false
	}
	p, err := d.ToParams()
	if err != nil {
		return hull.Params{}, false
	}
	return p, true
}
