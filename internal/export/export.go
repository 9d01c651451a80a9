// Package export writes computed designs, curves, datasets and
// design-space grids as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/hullab/internal/config"
	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
	"github.com/san-kum/hullab/internal/sample"
	"github.com/san-kum/hullab/internal/surrogate"
)

// DesignExport bundles a design with its computed results.
type DesignExport struct {
	Design config.DesignConfig `json:"design"`

	Displacement float64 `json:"displacement_kg"`
	Draft        float64 `json:"draft_m"`
	Freeboard    float64 `json:"freeboard_m"`
	KB           float64 `json:"kb_m"`
	BM           float64 `json:"bm_m"`
	KG           float64 `json:"kg_m"`
	GM           float64 `json:"gm_m"`
	Rating       string  `json:"stability_rating"`
	EffectiveLWL float64 `json:"effective_lwl_m"`
	HullSpeed    float64 `json:"hull_speed_kn"`
	Froude       float64 `json:"froude_number"`
	MaxSpeed     float64 `json:"max_speed_kn"`
	Planing      bool    `json:"planing_capable"`

	Resistance []hydro.ResistancePoint `json:"resistance_curve"`
	Righting   []hydro.RightingPoint   `json:"righting_curve"`
}

// WriteDesignJSON encodes a design and its results as indented JSON.
func WriteDesignJSON(w io.Writer, p hull.Params, r hydro.Results) error {
	data := DesignExport{
		Design:       config.FromParams(p),
		Displacement: r.Displacement,
		Draft:        r.Draft,
		Freeboard:    r.Freeboard,
		KB:           r.KB,
		BM:           r.BM,
		KG:           r.KG,
		GM:           r.GM,
		Rating:       r.Rating.String(),
		EffectiveLWL: r.EffectiveLWL,
		HullSpeed:    r.HullSpeed,
		Froude:       r.Froude,
		MaxSpeed:     r.MaxSpeed,
		Planing:      r.Planing,
		Resistance:   r.Resistance,
		Righting:     r.Righting,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCurveCSV writes the resistance curve as CSV.
func WriteCurveCSV(w io.Writer, curve []hydro.ResistancePoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"speed_kn", "friction_n", "wave_n", "total_n", "power_w"}); err != nil {
		return err
	}
	for _, pt := range curve {
		row := []string{
			fmtF(pt.SpeedKn),
			fmtF(pt.Friction),
			fmtF(pt.Wave),
			fmtF(pt.Total),
			fmtF(pt.Power),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteDatasetCSV writes the training sweep as CSV, one labeled sample
// per row.
func WriteDatasetCSV(w io.Writer, ds *sample.Dataset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"lwl", "beam", "depth", "hull_type", "deadrise", "total_load", "engine_hp",
		"gm", "hull_speed", "max_speed", "draft"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range ds.Inputs {
		row := make([]string, 0, sample.InputDim+sample.OutputDim)
		for _, v := range ds.Inputs[i] {
			row = append(row, fmtF(v))
		}
		for _, v := range ds.Outputs[i] {
			row = append(row, fmtF(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteGridCSV writes one metric of a design-space grid in long form.
func WriteGridCSV(w io.Writer, g *surrogate.Grid, metric string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"lwl", "beam", metric}); err != nil {
		return err
	}
	values := g.GM
	switch metric {
	case "hull_speed":
		values = g.HullSpeed
	case "draft":
		values = g.Draft
	}
	for i, lwl := range g.LWL {
		for j, beam := range g.Beam {
			row := []string{fmtF(lwl), fmtF(beam), fmtF(values[i][j])}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
