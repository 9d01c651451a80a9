package hydro

import (
	"math"
	"testing"

	"github.com/san-kum/hullab/internal/hull"
)

// referenceSkiff is the documented end-to-end scenario; its unusually
// large GM is a direct consequence of beam-cubed over displaced volume
// at these inputs.
func referenceSkiff() hull.Params {
	p := hull.DefaultParams()
	p.LWL = 7.0
	p.Beam = 1.8
	p.Depth = 0.85
	p.HullType = hull.SingleChine
	p.Deadrise = 15
	p.BowType = hull.PlumbBow
	p.BowRake = 0
	p.BowFlare = 0
	p.SternType = hull.TransomStern
	p.CrewWeight = 160
	p.CargoWeight = 50
	p.BallastWeight = 0
	p.FuelCapacity = 50
	p.WaterCapacity = 40
	p.EngineHP = 25
	p.EngineType = hull.Outboard
	return p
}

func TestComputeReferenceSkiff(t *testing.T) {
	r := Compute(referenceSkiff())

	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"displacement", r.Displacement, 512.5, 1e-9},
		{"draft", r.Draft, 0.066138, 1e-5},
		{"KB", r.KB, 0.035053, 1e-5},
		{"BM", r.BM, 6.804, 1e-9},
		{"KG", r.KG, 0.330256, 1e-5},
		{"GM", r.GM, 6.5088, 1e-3},
		{"hull speed", r.HullSpeed, 6.4216, 1e-3},
		{"froude", r.Froude, 0.3987, 1e-3},
		{"max speed", r.MaxSpeed, 9.6325, 1e-3},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %.6f, want %.6f", c.name, c.got, c.want)
		}
	}

	if r.Planing {
		t.Error("reference skiff should not be planing capable")
	}
	if r.Rating != Stiff {
		t.Errorf("expected stiff rating, got %s", r.Rating)
	}
	if math.Abs(r.Freeboard-(0.85-r.Draft)) > 1e-12 {
		t.Error("freeboard should be depth minus draft")
	}
}

func TestGMIdentity(t *testing.T) {
	p := hull.DefaultParams()
	for _, ht := range hull.HullTypes() {
		for lwl := 4.0; lwl <= 8.5; lwl += 1.5 {
			for beam := 1.2; beam <= 2.6; beam += 0.4 {
				p.HullType = ht
				p.LWL = lwl
				p.Beam = beam
				r := Compute(p)
				if math.Abs(r.GM-(r.KB+r.BM-r.KG)) > 1e-12 {
					t.Fatalf("GM != KB+BM-KG for %s lwl=%.1f beam=%.1f", ht, lwl, beam)
				}
			}
		}
	}
}

// Doubling beam with all weights fixed multiplies BM by 8: the
// waterplane moment grows with beam cubed while displaced volume is
// unchanged.
func TestCubicBeamSensitivity(t *testing.T) {
	p := hull.DefaultParams()
	p.Beam = 1.2
	r1 := Compute(p)
	p.Beam = 2.4
	r2 := Compute(p)

	ratio := r2.BM / r1.BM
	if math.Abs(ratio-8) > 1e-9 {
		t.Errorf("BM ratio after doubling beam = %f, want 8", ratio)
	}
}

func TestHullSpeedMonotoneInLength(t *testing.T) {
	p := hull.DefaultParams()
	prev := -1.0
	for lwl := 4.0; lwl <= 8.5; lwl += 0.5 {
		p.LWL = lwl
		r := Compute(p)
		if r.HullSpeed <= prev {
			t.Fatalf("hull speed not strictly increasing at lwl=%.1f", lwl)
		}
		prev = r.HullSpeed
	}
}

func TestRateGM(t *testing.T) {
	tests := []struct {
		gm   float64
		want Rating
	}{
		{2.0, Stiff},
		{1.5, Moderate}, // thresholds are strict
		{1.0, Moderate},
		{0.7, Tender},
		{0.5, Tender},
		{0.3, Dangerous},
		{0.1, Dangerous},
		{-0.5, Dangerous},
	}
	for _, tt := range tests {
		if got := RateGM(tt.gm); got != tt.want {
			t.Errorf("RateGM(%.2f) = %s, want %s", tt.gm, got, tt.want)
		}
	}
}

func TestMaxSpeedCaps(t *testing.T) {
	p := referenceSkiff()

	// Modest power: Crouch exceeds the displacement cap, so max speed
	// sits at exactly 1.5x hull speed.
	r := Compute(p)
	if math.Abs(r.MaxSpeed-1.5*r.HullSpeed) > 1e-9 {
		t.Errorf("expected 1.5x hull speed cap, got %f vs %f", r.MaxSpeed, 1.5*r.HullSpeed)
	}

	// No engine at all: limited to hull speed.
	p.EngineHP = 0
	r = Compute(p)
	if math.Abs(r.MaxSpeed-r.HullSpeed) > 1e-9 {
		t.Errorf("unpowered hull should top out at hull speed")
	}
}

func TestMaxSpeedAbsoluteCeiling(t *testing.T) {
	p := referenceSkiff()
	p.LWL = 8.5
	p.BowType = hull.AxeBow
	p.EngineHP = 150
	r := Compute(p)
	if r.MaxSpeed > MaxSpeedCapKn+1e-9 {
		t.Errorf("max speed %f exceeds absolute cap", r.MaxSpeed)
	}
}

func TestPlaningByHullType(t *testing.T) {
	// Light flat-bottom with big power planes; the same design with a
	// round bilge and canoe stern does not.
	p := hull.DefaultParams()
	p.LWL = 4.5
	p.Beam = 1.8
	p.CrewWeight = 80
	p.CargoWeight = 0
	p.FuelCapacity = 10
	p.WaterCapacity = 0
	p.EngineHP = 90
	p.HullType = hull.FlatBottom
	p.SternType = hull.TransomStern

	if r := Compute(p); !r.Planing {
		t.Errorf("flat-bottom transom skiff with 90hp should plane (max %.2f kn, hull %.2f kn)", r.MaxSpeed, r.HullSpeed)
	}

	p.HullType = hull.RoundBilge
	p.SternType = hull.CanoeStern
	if r := Compute(p); r.Planing {
		t.Error("round-bilge canoe stern should not plane")
	}
}

func TestEffectiveLWLByBow(t *testing.T) {
	p := hull.DefaultParams()

	p.BowType = hull.PlumbBow
	plumb := Compute(p)
	if math.Abs(plumb.EffectiveLWL-p.LWL) > 1e-12 {
		t.Error("plumb bow should leave effective length unchanged")
	}

	p.BowType = hull.AxeBow
	axe := Compute(p)
	if axe.EffectiveLWL <= plumb.EffectiveLWL {
		t.Error("axe bow should extend effective length")
	}

	p.BowType = hull.RakedBow
	p.BowRake = 30
	raked := Compute(p)
	if raked.EffectiveLWL >= plumb.EffectiveLWL {
		t.Error("raked bow should shorten effective length")
	}
	if raked.HullSpeed >= plumb.HullSpeed {
		t.Error("shorter effective length should lower hull speed")
	}
}

func TestComputeDeterministic(t *testing.T) {
	p := referenceSkiff()
	a := Compute(p)
	b := Compute(p)

	if a.GM != b.GM || a.MaxSpeed != b.MaxSpeed || a.Draft != b.Draft {
		t.Error("identical inputs must produce identical outputs")
	}
	if len(a.Resistance) != len(b.Resistance) {
		t.Fatal("curve lengths differ")
	}
	for i := range a.Resistance {
		if a.Resistance[i] != b.Resistance[i] {
			t.Fatalf("resistance point %d differs between runs", i)
		}
	}
}

func TestBallastLowersKG(t *testing.T) {
	p := hull.DefaultParams()
	base := Compute(p)

	p.BallastType = hull.KeelBallast
	p.BallastWeight = 150
	p.BallastHeight = 0.05
	ballasted := Compute(p)

	if ballasted.KG >= base.KG {
		t.Error("low ballast should lower the center of gravity")
	}
	if ballasted.Displacement <= base.Displacement {
		t.Error("ballast should add displacement")
	}
}
