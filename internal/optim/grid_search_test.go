package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

func TestNewGridSearchValidation(t *testing.T) {
	if _, err := NewGridSearch(nil, 4); err == nil {
		t.Error("empty parameter list should be rejected")
	}
	if _, err := NewGridSearch([]string{"lwl"}, 1); err == nil {
		t.Error("single-step grid should be rejected")
	}
	if _, err := NewGridSearch([]string{"warpDrive"}, 4); err == nil {
		t.Error("unknown parameter should be rejected")
	}
	if _, err := NewGridSearch([]string{"lwl", "beam"}, 4); err != nil {
		t.Errorf("valid search rejected: %v", err)
	}
}

// GM grows with beam cubed, so maximizing GM over beam alone must land
// on the top of the beam domain.
func TestSearchFindsMaxBeamForGM(t *testing.T) {
	g, err := NewGridSearch([]string{"beam"}, 8)
	if err != nil {
		t.Fatal(err)
	}

	best, score, err := g.Search(context.Background(), hull.DefaultParams(), func(r hydro.Results) float64 {
		return r.GM
	})
	if err != nil {
		t.Fatal(err)
	}
	if best.Beam != hull.Domains["beam"].Max {
		t.Errorf("best beam = %f, want domain max %f", best.Beam, hull.Domains["beam"].Max)
	}
	if score != hydro.Compute(best).GM {
		t.Error("score should equal the objective at the returned design")
	}
}

func TestSearchLeavesOtherFieldsFixed(t *testing.T) {
	base := hull.DefaultParams()
	base.CrewWeight = 222

	g, err := NewGridSearch([]string{"lwl"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	best, _, err := g.Search(context.Background(), base, func(r hydro.Results) float64 {
		return r.HullSpeed
	})
	if err != nil {
		t.Fatal(err)
	}
	if best.CrewWeight != 222 {
		t.Error("unsearched fields should stay at the base design")
	}
	// Hull speed is monotone in waterline length.
	if best.LWL != hull.Domains["lwl"].Max {
		t.Errorf("best lwl = %f, want domain max", best.LWL)
	}
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := NewGridSearch([]string{"lwl", "beam"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.Search(ctx, hull.DefaultParams(), func(r hydro.Results) float64 {
		return r.GM
	}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want wrapped context.Canceled", err)
	}
}
