package surrogate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/sample"
)

// Prediction is the surrogate's approximation of the engine's four
// mapped metrics.
type Prediction struct {
	GM        float64
	HullSpeed float64
	MaxSpeed  float64
	Draft     float64
}

// Predict runs a single forward pass for one design. It fails if the
// context is not ready; it never falls back to stale or zero data.
func Predict(c *Context, p hull.Params) (Prediction, error) {
	if !c.Ready() {
		return Prediction{}, ErrNotReady
	}
	in := Normalize(sample.Encode(p), c.Stats.InMean, c.Stats.InStd)
	x := mat.NewDense(1, len(in), in)
	raw := c.Net.Forward(x).RawRowView(0)
	out := Denormalize(raw, c.Stats.OutMean, c.Stats.OutStd)
	return Prediction{GM: out[0], HullSpeed: out[1], MaxSpeed: out[2], Draft: out[3]}, nil
}

// Grid is a design-space map: coordinate slices for the two swept
// dimensions and resolution x resolution value grids for each mapped
// metric, indexed [lwl][beam].
type Grid struct {
	LWL  []float64
	Beam []float64

	GM        [][]float64
	HullSpeed [][]float64
	Draft     [][]float64
}

// BuildGrid sweeps LWL and beam across their declared domains at the
// given resolution, holding every other parameter fixed at the current
// design, and fills the map with one batched forward pass. Batching is
// what keeps map regeneration interactive; never loop resolution^2
// single predictions.
func BuildGrid(c *Context, fixed hull.Params, resolution int) (*Grid, error) {
	if !c.Ready() {
		return nil, ErrNotReady
	}
	if resolution < 2 {
		return nil, fmt.Errorf("surrogate: resolution must be >= 2, got %d", resolution)
	}

	lwlDom := hull.Domains["lwl"]
	beamDom := hull.Domains["beam"]

	g := &Grid{
		LWL:  linspace(lwlDom.Min, lwlDom.Max, resolution),
		Beam: linspace(beamDom.Min, beamDom.Max, resolution),
	}

	// One batch over the full Cartesian product, row-major in LWL.
	batch := mat.NewDense(resolution*resolution, sample.InputDim, nil)
	for i, lwl := range g.LWL {
		for j, beam := range g.Beam {
			p := fixed
			p.LWL = lwl
			p.Beam = beam
			row := Normalize(sample.Encode(p), c.Stats.InMean, c.Stats.InStd)
			batch.SetRow(i*resolution+j, row)
		}
	}

	pred := c.Net.Forward(batch)

	g.GM = newGrid(resolution)
	g.HullSpeed = newGrid(resolution)
	g.Draft = newGrid(resolution)
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			out := Denormalize(pred.RawRowView(i*resolution+j), c.Stats.OutMean, c.Stats.OutStd)
			g.GM[i][j] = out[0]
			g.HullSpeed[i][j] = out[1]
			g.Draft[i][j] = out[3]
		}
	}
	return g, nil
}

func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	return out
}

func newGrid(n int) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
	}
	return g
}
