package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hullab/internal/hull"
)

// Config is the YAML-facing description of a design plus the surrogate
// training and map settings.
type Config struct {
	Design DesignConfig `yaml:"design"`
	Train  TrainConfig  `yaml:"train"`
	Map    MapConfig    `yaml:"map"`
}

type DesignConfig struct {
	LWL   float64 `yaml:"lwl"`
	Beam  float64 `yaml:"beam"`
	Depth float64 `yaml:"depth"`

	HullType          string  `yaml:"hull_type"`
	Deadrise          float64 `yaml:"deadrise"`
	DeadriseVariation float64 `yaml:"deadrise_variation"`

	BowType  string  `yaml:"bow_type"`
	BowRake  float64 `yaml:"bow_rake"`
	BowFlare float64 `yaml:"bow_flare"`

	SternType        string  `yaml:"stern_type"`
	TransomRake      float64 `yaml:"transom_rake"`
	TransomImmersion float64 `yaml:"transom_immersion"`

	Prismatic  float64 `yaml:"prismatic"`
	LCB        float64 `yaml:"lcb"`
	KeelRocker float64 `yaml:"keel_rocker"`

	ChineHeight float64 `yaml:"chine_height"`
	ChineAngle  float64 `yaml:"chine_angle"`

	CrewWeight    float64 `yaml:"crew_weight"`
	CargoWeight   float64 `yaml:"cargo_weight"`
	BallastType   string  `yaml:"ballast_type"`
	BallastWeight float64 `yaml:"ballast_weight"`
	BallastHeight float64 `yaml:"ballast_height"`
	FuelCapacity  float64 `yaml:"fuel_capacity"`
	WaterCapacity float64 `yaml:"water_capacity"`

	EngineHP     float64 `yaml:"engine_hp"`
	EngineType   string  `yaml:"engine_type"`
	PropDiameter float64 `yaml:"prop_diameter"`
	PropPitch    float64 `yaml:"prop_pitch"`
}

type TrainConfig struct {
	Epochs    int     `yaml:"epochs"`
	BatchSize int     `yaml:"batch_size"`
	LR        float64 `yaml:"learning_rate"`
	Momentum  float64 `yaml:"momentum"`
	Seed      int64   `yaml:"seed"`
}

type MapConfig struct {
	Resolution int `yaml:"resolution"`
}

// DefaultConfig mirrors hull.DefaultParams plus the production training
// schedule.
func DefaultConfig() *Config {
	return &Config{
		Design: FromParams(hull.DefaultParams()),
		Train: TrainConfig{
			Epochs:    50,
			BatchSize: 64,
			LR:        0.005,
			Momentum:  0.9,
			Seed:      1,
		},
		Map: MapConfig{Resolution: 24},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromParams converts a design vector into its YAML form.
func FromParams(p hull.Params) DesignConfig {
	return DesignConfig{
		LWL:               p.LWL,
		Beam:              p.Beam,
		Depth:             p.Depth,
		HullType:          p.HullType.String(),
		Deadrise:          p.Deadrise,
		DeadriseVariation: p.DeadriseVariation,
		BowType:           p.BowType.String(),
		BowRake:           p.BowRake,
		BowFlare:          p.BowFlare,
		SternType:         p.SternType.String(),
		TransomRake:       p.TransomRake,
		TransomImmersion:  p.TransomImmersion,
		Prismatic:         p.Prismatic,
		LCB:               p.LCB,
		KeelRocker:        p.KeelRocker,
		ChineHeight:       p.ChineHeight,
		ChineAngle:        p.ChineAngle,
		CrewWeight:        p.CrewWeight,
		CargoWeight:       p.CargoWeight,
		BallastType:       p.BallastType.String(),
		BallastWeight:     p.BallastWeight,
		BallastHeight:     p.BallastHeight,
		FuelCapacity:      p.FuelCapacity,
		WaterCapacity:     p.WaterCapacity,
		EngineHP:          p.EngineHP,
		EngineType:        p.EngineType.String(),
		PropDiameter:      p.PropDiameter,
		PropPitch:         p.PropPitch,
	}
}

// ToParams converts the YAML form back into a design vector, clamped
// into the declared domains.
func (d DesignConfig) ToParams() (hull.Params, error) {
	p := hull.Params{
		LWL:               d.LWL,
		Beam:              d.Beam,
		Depth:             d.Depth,
		Deadrise:          d.Deadrise,
		DeadriseVariation: d.DeadriseVariation,
		BowRake:           d.BowRake,
		BowFlare:          d.BowFlare,
		TransomRake:       d.TransomRake,
		TransomImmersion:  d.TransomImmersion,
		Prismatic:         d.Prismatic,
		LCB:               d.LCB,
		KeelRocker:        d.KeelRocker,
		ChineHeight:       d.ChineHeight,
		ChineAngle:        d.ChineAngle,
		CrewWeight:        d.CrewWeight,
		CargoWeight:       d.CargoWeight,
		BallastWeight:     d.BallastWeight,
		BallastHeight:     d.BallastHeight,
		FuelCapacity:      d.FuelCapacity,
		WaterCapacity:     d.WaterCapacity,
		EngineHP:          d.EngineHP,
		PropDiameter:      d.PropDiameter,
		PropPitch:         d.PropPitch,
	}

	var err error
	if p.HullType, err = parseHullType(d.HullType); err != nil {
		return p, err
	}
	if p.BowType, err = parseBowType(d.BowType); err != nil {
		return p, err
	}
	if p.SternType, err = parseSternType(d.SternType); err != nil {
		return p, err
	}
	if p.BallastType, err = parseBallastType(d.BallastType); err != nil {
		return p, err
	}
	if p.EngineType, err = parseEngineType(d.EngineType); err != nil {
		return p, err
	}
	if p.Prismatic == 0 {
		p.Prismatic = hull.PrismaticDefault(p.HullType)
	}
	return hull.Clamp(p), nil
}

func parseHullType(s string) (hull.HullType, error) {
	for _, t := range hull.HullTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown hull type: %q", s)
}

func parseBowType(s string) (hull.BowType, error) {
	if s == "" {
		return hull.PlumbBow, nil
	}
	for _, t := range hull.BowTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown bow type: %q", s)
}

func parseSternType(s string) (hull.SternType, error) {
	if s == "" {
		return hull.TransomStern, nil
	}
	for _, t := range hull.SternTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown stern type: %q", s)
}

func parseBallastType(s string) (hull.BallastType, error) {
	if s == "" {
		return hull.NoBallast, nil
	}
	for _, t := range hull.BallastTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ballast type: %q", s)
}

func parseEngineType(s string) (hull.EngineType, error) {
	if s == "" {
		return hull.Outboard, nil
	}
	for _, t := range hull.EngineTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown engine type: %q", s)
}
