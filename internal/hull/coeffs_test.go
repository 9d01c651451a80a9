package hull

import (
	"math"
	"testing"
)

// Every closed enum must have a coefficient in every table it keys.
func TestCoeffTablesExhaustive(t *testing.T) {
	for _, ht := range HullTypes() {
		if BlockCoeff(ht) <= 0 {
			t.Errorf("missing block coefficient for %s", ht)
		}
		if PrismaticDefault(ht) <= 0 {
			t.Errorf("missing prismatic default for %s", ht)
		}
		if PlaningFactor(ht) <= 0 {
			t.Errorf("missing planing factor for %s", ht)
		}
	}
	for _, st := range SternTypes() {
		if SternPlaningFactor(st) <= 0 {
			t.Errorf("missing stern planing factor for %s", st)
		}
		if SternWaveFactor(st, 0) <= 0 {
			t.Errorf("missing stern wave factor for %s", st)
		}
	}
	for _, bt := range BowTypes() {
		if BowLengthFactor(bt, 0) <= 0 {
			t.Errorf("missing bow length factor for %s", bt)
		}
		if BowWaveFactor(bt, 0) <= 0 {
			t.Errorf("missing bow wave factor for %s", bt)
		}
	}
	for _, et := range EngineTypes() {
		if EngineWeight(et, 10) <= 0 {
			t.Errorf("missing engine weight model for %s", et)
		}
	}
}

func TestBlockCoeffOrdering(t *testing.T) {
	// Fuller sections displace more for the same box.
	if !(BlockCoeff(FlatBottom) > BlockCoeff(SingleChine) &&
		BlockCoeff(SingleChine) > BlockCoeff(MultiChine) &&
		BlockCoeff(MultiChine) > BlockCoeff(RoundBilge)) {
		t.Error("block coefficients should decrease from flat bottom to round bilge")
	}
}

func TestEngineWeight(t *testing.T) {
	tests := []struct {
		engine EngineType
		hp     float64
		want   float64
	}{
		{Outboard, 25, 45},
		{Outboard, 0, 20},
		{Inboard, 30, 150},
		{Electric, 10, 50},
	}

	for _, tt := range tests {
		if got := EngineWeight(tt.engine, tt.hp); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EngineWeight(%s, %.0f) = %f, want %f", tt.engine, tt.hp, got, tt.want)
		}
	}
}

func TestBowLengthFactor(t *testing.T) {
	if BowLengthFactor(PlumbBow, 0) != 1.0 {
		t.Error("plumb bow should not change effective length")
	}
	if BowLengthFactor(AxeBow, 0) <= 1.0 {
		t.Error("axe bow should extend effective length")
	}
	// Rake shortens effective length in proportion to angle.
	if BowLengthFactor(RakedBow, 30) >= BowLengthFactor(RakedBow, 10) {
		t.Error("more rake should shorten effective length")
	}
}

func TestHullTypeCode(t *testing.T) {
	tests := []struct {
		ht   HullType
		want float64
	}{
		{FlatBottom, 0},
		{SingleChine, 1.0 / 3.0},
		{MultiChine, 2.0 / 3.0},
		{RoundBilge, 1},
	}
	for _, tt := range tests {
		if got := tt.ht.Code(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s.Code() = %f, want %f", tt.ht, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if SingleChine.String() != "single-chine" {
		t.Errorf("unexpected hull type name: %s", SingleChine)
	}
	if HullType(99).String() != "unknown" {
		t.Error("out-of-range hull type should stringify as unknown")
	}
	if DoubleEnded.String() != "double-ended" {
		t.Errorf("unexpected stern type name: %s", DoubleEnded)
	}
}
