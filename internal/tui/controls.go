package tui

import (
	"fmt"

	"github.com/san-kum/hullab/internal/hull"
)

// control is one adjustable row in the design panel: either a numeric
// slider over a declared domain or a closed-enum cycler.
type control struct {
	label  string
	domain string // hull.Domains key, empty for enum cyclers

	get func(p hull.Params) float64
	set func(p *hull.Params, v float64)

	cycle func(p *hull.Params, dir int)
	show  func(p hull.Params) string
}

func (c control) isEnum() bool { return c.cycle != nil }

// adjust nudges the control by one step in the given direction.
func (c control) adjust(p *hull.Params, dir int, big bool) {
	if c.isEnum() {
		c.cycle(p, dir)
		return
	}
	d := hull.Domains[c.domain]
	step := d.Step
	if big {
		step *= 10
	}
	c.set(p, d.Clamp(c.get(*p)+step*float64(dir)))
}

func (c control) display(p hull.Params) string {
	if c.isEnum() {
		return c.show(p)
	}
	return fmt.Sprintf("%.2f", c.get(p))
}

func num(label, domain string, get func(hull.Params) float64, set func(*hull.Params, float64)) control {
	return control{label: label, domain: domain, get: get, set: set}
}

func designControls() []control {
	return []control{
		num("length (lwl)", "lwl",
			func(p hull.Params) float64 { return p.LWL },
			func(p *hull.Params, v float64) { p.LWL = v }),
		num("beam", "beam",
			func(p hull.Params) float64 { return p.Beam },
			func(p *hull.Params, v float64) { p.Beam = v }),
		num("depth", "depth",
			func(p hull.Params) float64 { return p.Depth },
			func(p *hull.Params, v float64) { p.Depth = v }),
		{
			label: "hull type",
			cycle: func(p *hull.Params, dir int) {
				n := len(hull.HullTypes())
				p.HullType = hull.HullType((int(p.HullType) + dir + n) % n)
			},
			show: func(p hull.Params) string { return p.HullType.String() },
		},
		num("deadrise", "deadrise",
			func(p hull.Params) float64 { return p.Deadrise },
			func(p *hull.Params, v float64) { p.Deadrise = v }),
		{
			label: "bow type",
			cycle: func(p *hull.Params, dir int) {
				n := len(hull.BowTypes())
				p.BowType = hull.BowType((int(p.BowType) + dir + n) % n)
			},
			show: func(p hull.Params) string { return p.BowType.String() },
		},
		num("bow rake", "bowRake",
			func(p hull.Params) float64 { return p.BowRake },
			func(p *hull.Params, v float64) { p.BowRake = v }),
		num("bow flare", "bowFlare",
			func(p hull.Params) float64 { return p.BowFlare },
			func(p *hull.Params, v float64) { p.BowFlare = v }),
		{
			label: "stern type",
			cycle: func(p *hull.Params, dir int) {
				n := len(hull.SternTypes())
				p.SternType = hull.SternType((int(p.SternType) + dir + n) % n)
			},
			show: func(p hull.Params) string { return p.SternType.String() },
		},
		num("transom immersion", "transomImmersion",
			func(p hull.Params) float64 { return p.TransomImmersion },
			func(p *hull.Params, v float64) { p.TransomImmersion = v }),
		num("prismatic", "prismatic",
			func(p hull.Params) float64 { return p.Prismatic },
			func(p *hull.Params, v float64) { p.Prismatic = v }),
		num("crew weight", "crewWeight",
			func(p hull.Params) float64 { return p.CrewWeight },
			func(p *hull.Params, v float64) { p.CrewWeight = v }),
		num("cargo weight", "cargoWeight",
			func(p hull.Params) float64 { return p.CargoWeight },
			func(p *hull.Params, v float64) { p.CargoWeight = v }),
		{
			label: "ballast type",
			cycle: func(p *hull.Params, dir int) {
				n := len(hull.BallastTypes())
				p.BallastType = hull.BallastType((int(p.BallastType) + dir + n) % n)
			},
			show: func(p hull.Params) string { return p.BallastType.String() },
		},
		num("ballast weight", "ballastWeight",
			func(p hull.Params) float64 { return p.BallastWeight },
			func(p *hull.Params, v float64) { p.BallastWeight = v }),
		num("ballast height", "ballastHeight",
			func(p hull.Params) float64 { return p.BallastHeight },
			func(p *hull.Params, v float64) { p.BallastHeight = v }),
		num("fuel capacity", "fuelCapacity",
			func(p hull.Params) float64 { return p.FuelCapacity },
			func(p *hull.Params, v float64) { p.FuelCapacity = v }),
		num("water capacity", "waterCapacity",
			func(p hull.Params) float64 { return p.WaterCapacity },
			func(p *hull.Params, v float64) { p.WaterCapacity = v }),
		{
			label: "engine type",
			cycle: func(p *hull.Params, dir int) {
				n := len(hull.EngineTypes())
				p.EngineType = hull.EngineType((int(p.EngineType) + dir + n) % n)
			},
			show: func(p hull.Params) string { return p.EngineType.String() },
		},
		num("engine hp", "engineHP",
			func(p hull.Params) float64 { return p.EngineHP },
			func(p *hull.Params, v float64) { p.EngineHP = v }),
	}
}
