package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/hullab/internal/hull"
)

func TestDefaultConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.Design.ToParams()
	if err != nil {
		t.Fatalf("default design should convert: %v", err)
	}
	if p != hull.DefaultParams() {
		t.Error("default config should round-trip to default params")
	}
}

func TestToParamsParsesEnums(t *testing.T) {
	d := FromParams(hull.DefaultParams())
	d.HullType = "round-bilge"
	d.BowType = "axe"
	d.SternType = "canoe"
	d.BallastType = "keel"
	d.EngineType = "electric"

	p, err := d.ToParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.HullType != hull.RoundBilge || p.BowType != hull.AxeBow ||
		p.SternType != hull.CanoeStern || p.BallastType != hull.KeelBallast ||
		p.EngineType != hull.Electric {
		t.Errorf("enum fields mis-parsed: %+v", p)
	}
}

func TestToParamsRejectsUnknownEnums(t *testing.T) {
	d := FromParams(hull.DefaultParams())
	d.HullType = "catamaran"
	if _, err := d.ToParams(); err == nil || !strings.Contains(err.Error(), "catamaran") {
		t.Errorf("unknown hull type should name the offender, got %v", err)
	}

	d = FromParams(hull.DefaultParams())
	d.EngineType = "steam"
	if _, err := d.ToParams(); err == nil {
		t.Error("unknown engine type should be rejected")
	}
}

func TestToParamsDefaultsEmptyEnums(t *testing.T) {
	d := FromParams(hull.DefaultParams())
	d.BowType = ""
	d.SternType = ""
	d.BallastType = ""
	d.EngineType = ""

	p, err := d.ToParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.BowType != hull.PlumbBow || p.SternType != hull.TransomStern ||
		p.BallastType != hull.NoBallast || p.EngineType != hull.Outboard {
		t.Errorf("empty enum strings should fall back to defaults: %+v", p)
	}
}

func TestToParamsPrismaticFallback(t *testing.T) {
	d := FromParams(hull.DefaultParams())
	d.HullType = "round-bilge"
	d.Prismatic = 0

	p, err := d.ToParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Prismatic != hull.PrismaticDefault(hull.RoundBilge) {
		t.Errorf("unset prismatic should fall back to the hull type default, got %f", p.Prismatic)
	}
}

func TestToParamsClamps(t *testing.T) {
	d := FromParams(hull.DefaultParams())
	d.LWL = 50
	d.CrewWeight = -10

	p, err := d.ToParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.LWL != hull.Domains["lwl"].Max {
		t.Errorf("lwl should clamp to %f, got %f", hull.Domains["lwl"].Max, p.LWL)
	}
	if p.CrewWeight != 0 {
		t.Errorf("crew weight should clamp to 0, got %f", p.CrewWeight)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hullab.yaml")

	cfg := DefaultConfig()
	cfg.Design.LWL = 7.25
	cfg.Design.HullType = "multi-chine"
	cfg.Train.Epochs = 12
	cfg.Map.Resolution = 16

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Design.LWL != 7.25 || got.Design.HullType != "multi-chine" {
		t.Errorf("design fields lost on round trip: %+v", got.Design)
	}
	if got.Train.Epochs != 12 || got.Map.Resolution != 16 {
		t.Errorf("train/map fields lost on round trip: %+v %+v", got.Train, got.Map)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	// A partial file keeps defaults for everything it does not mention.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "design:\n  beam: 2.45\ntrain:\n  epochs: 9\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Design.Beam != 2.45 {
		t.Errorf("beam = %f, want 2.45", got.Design.Beam)
	}
	if got.Design.LWL != hull.DefaultParams().LWL {
		t.Errorf("unmentioned lwl should keep its default, got %f", got.Design.LWL)
	}
	if got.Train.Epochs != 9 {
		t.Errorf("epochs = %d, want 9", got.Train.Epochs)
	}
	if got.Train.BatchSize != 64 {
		t.Errorf("batch size should default to 64, got %d", got.Train.BatchSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"dinghy", "skiff", "weekender", "ballasted-cruiser"} {
		p, ok := PresetParams(name)
		if !ok {
			t.Fatalf("preset %q missing", name)
		}
		if err := hull.Validate(p); err != nil {
			t.Errorf("preset %q out of domain: %v", name, err)
		}
	}

	if GetPreset("trawler") != nil {
		t.Error("unknown preset should return nil")
	}
	if _, ok := PresetParams("trawler"); ok {
		t.Error("unknown preset should report not found")
	}
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets should cover every preset")
	}
}

func TestPresetsKeepDefaultsForUnsetFields(t *testing.T) {
	p, ok := PresetParams("skiff")
	if !ok {
		t.Fatal("skiff preset missing")
	}
	r, err := GetPreset("skiff").ToParams()
	if err != nil {
		t.Fatal(err)
	}
	if p != r {
		t.Error("PresetParams should equal direct conversion")
	}
}
