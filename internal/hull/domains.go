package hull

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfDomain indicates a parameter value outside its declared
// [min,max] range. The engine itself does no bounds checking; callers
// clamp or validate at the boundary where parameters are accepted.
var ErrOutOfDomain = errors.New("hull: parameter out of domain")

// Domain declares the valid [Min,Max] range and UI step for one
// numeric design parameter.
type Domain struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp snaps v into the domain.
func (d Domain) Clamp(v float64) float64 {
	return math.Min(d.Max, math.Max(d.Min, v))
}

// Contains reports whether v lies inside the domain.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Domains declares the full design space, keyed by parameter name.
var Domains = map[string]Domain{
	"lwl":               {4.0, 8.5, 0.1},
	"beam":              {1.2, 2.6, 0.05},
	"depth":             {0.5, 1.4, 0.05},
	"deadrise":          {0, 25, 1},
	"deadriseVariation": {-10, 10, 1},
	"bowRake":           {0, 45, 1},
	"bowFlare":          {0, 30, 1},
	"transomRake":       {-15, 15, 1},
	"transomImmersion":  {0, 0.5, 0.05},
	"prismatic":         {0.50, 0.70, 0.01},
	"lcb":               {-5, 5, 0.5},
	"keelRocker":        {0, 0.3, 0.01},
	"chineHeight":       {0, 0.6, 0.05},
	"chineAngle":        {0, 30, 1},
	"crewWeight":        {0, 600, 10},
	"cargoWeight":       {0, 400, 10},
	"ballastWeight":     {0, 250, 5},
	"ballastHeight":     {0, 0.5, 0.01},
	"fuelCapacity":      {0, 200, 5},
	"waterCapacity":     {0, 150, 5},
	"engineHP":          {0, 150, 5},
	"propDiameter":      {0.15, 0.45, 0.01},
	"propPitch":         {0.10, 0.40, 0.01},
}

// fields pairs every numeric parameter with its domain for clamp and
// validate passes.
func fields(p *Params) map[string]*float64 {
	return map[string]*float64{
		"lwl":               &p.LWL,
		"beam":              &p.Beam,
		"depth":             &p.Depth,
		"deadrise":          &p.Deadrise,
		"deadriseVariation": &p.DeadriseVariation,
		"bowRake":           &p.BowRake,
		"bowFlare":          &p.BowFlare,
		"transomRake":       &p.TransomRake,
		"transomImmersion":  &p.TransomImmersion,
		"prismatic":         &p.Prismatic,
		"lcb":               &p.LCB,
		"keelRocker":        &p.KeelRocker,
		"chineHeight":       &p.ChineHeight,
		"chineAngle":        &p.ChineAngle,
		"crewWeight":        &p.CrewWeight,
		"cargoWeight":       &p.CargoWeight,
		"ballastWeight":     &p.BallastWeight,
		"ballastHeight":     &p.BallastHeight,
		"fuelCapacity":      &p.FuelCapacity,
		"waterCapacity":     &p.WaterCapacity,
		"engineHP":          &p.EngineHP,
		"propDiameter":      &p.PropDiameter,
		"propPitch":         &p.PropPitch,
	}
}

// Get reads a numeric parameter by its domain name.
func Get(p *Params, name string) (float64, bool) {
	f, ok := fields(p)[name]
	if !ok {
		return 0, false
	}
	return *f, true
}

// Set assigns a numeric parameter by its domain name, reporting whether
// the name exists.
func Set(p *Params, name string, v float64) bool {
	f, ok := fields(p)[name]
	if ok {
		*f = v
	}
	return ok
}

// Clamp returns a copy of p with every numeric field snapped into its
// declared domain.
func Clamp(p Params) Params {
	for name, v := range fields(&p) {
		*v = Domains[name].Clamp(*v)
	}
	return p
}

// Validate reports the first parameter found outside its domain.
func Validate(p Params) error {
	for name, v := range fields(&p) {
		if d := Domains[name]; !d.Contains(*v) {
			return fmt.Errorf("%w: %s=%.3f outside [%.3f, %.3f]", ErrOutOfDomain, name, *v, d.Min, d.Max)
		}
	}
	return nil
}
