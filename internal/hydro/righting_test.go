package hydro

import (
	"math"
	"testing"

	"github.com/san-kum/hullab/internal/hull"
)

func TestRightingCurveShape(t *testing.T) {
	r := Compute(hull.DefaultParams())

	if len(r.Righting) != 46 {
		t.Fatalf("expected 46 righting points (0-45 deg), got %d", len(r.Righting))
	}
	if r.Righting[0].HeelDeg != 0 || r.Righting[0].GZ != 0 {
		t.Errorf("GZ at zero heel must be exactly zero, got %f", r.Righting[0].GZ)
	}
	if r.Righting[45].HeelDeg != 45 {
		t.Errorf("last point should be 45 deg, got %f", r.Righting[45].HeelDeg)
	}
}

func TestRightingSmallAngle(t *testing.T) {
	r := Compute(hull.DefaultParams())

	// Below 15 degrees the metacentric formula applies exactly.
	for deg := 1; deg < 15; deg++ {
		theta := float64(deg) * math.Pi / 180
		want := r.GM * math.Sin(theta)
		if math.Abs(r.Righting[deg].GZ-want) > 1e-12 {
			t.Fatalf("GZ(%d) = %f, want GM*sin = %f", deg, r.Righting[deg].GZ, want)
		}
	}
}

func TestRightingLargeAngle(t *testing.T) {
	r := Compute(hull.DefaultParams())

	theta := 30 * math.Pi / 180
	want := (r.BM*math.Sin(theta) - (r.KG-r.KB)*math.Sin(theta)) * math.Cos(theta)
	if math.Abs(r.Righting[30].GZ-want) > 1e-12 {
		t.Errorf("GZ(30) = %f, want %f", r.Righting[30].GZ, want)
	}
}

func TestRightingPositiveForStableHull(t *testing.T) {
	r := Compute(hull.DefaultParams())
	if r.GM <= 0 {
		t.Skip("default design unexpectedly unstable")
	}
	for _, pt := range r.Righting[1:] {
		if pt.GZ <= 0 {
			t.Fatalf("GZ should stay positive up to 45 deg for GM=%f, got %f at %f deg", r.GM, pt.GZ, pt.HeelDeg)
		}
	}
}
