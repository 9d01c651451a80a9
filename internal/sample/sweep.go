// Package sample generates the surrogate's labeled training set by
// enumerating a dense grid of valid designs and calling the
// hydrostatics engine for each one.
package sample

import (
	"math"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

// Surrogate vector dimensions.
const (
	InputDim  = 7
	OutputDim = 4
)

// CrewCap limits how much of the swept total load is assigned to crew.
const CrewCap = 300.0

// Bounds declares the sweep ranges. Each axis is [min,max] walked at
// the given step; engine HP is a fixed value list.
type Bounds struct {
	LWLMin, LWLMax, LWLStep       float64
	BeamMin, BeamMax, BeamStep    float64
	DepthMin, DepthMax, DepthStep float64
	LoadMin, LoadMax, LoadStep    float64
	HPValues                      []float64
	Deadrise                      float64
}

// DefaultBounds yields 10 x 7 x 3 x 4 x 4 x 3 = 10080 samples.
func DefaultBounds() Bounds {
	return Bounds{
		LWLMin: 4.0, LWLMax: 8.5, LWLStep: 0.5,
		BeamMin: 1.2, BeamMax: 2.4, BeamStep: 0.2,
		DepthMin: 0.6, DepthMax: 1.0, DepthStep: 0.2,
		LoadMin: 100, LoadMax: 400, LoadStep: 100,
		HPValues: []float64{10, 50, 90},
		Deadrise: 12,
	}
}

// Dataset is the ordered training set: Inputs[i] is a 7-vector
// [lwl, beam, depth, hullTypeCode, deadrise, totalLoad, engineHP],
// Outputs[i] the matching [GM, hullSpeed, maxSpeed, draft].
type Dataset struct {
	Inputs  [][]float64
	Outputs [][]float64
}

func (d *Dataset) Len() int { return len(d.Inputs) }

// Encode builds the surrogate input vector for a design. The hull type
// is encoded as an ordinal on [0,1]; crew and cargo collapse into one
// total load.
func Encode(p hull.Params) []float64 {
	return []float64{
		p.LWL,
		p.Beam,
		p.Depth,
		p.HullType.Code(),
		p.Deadrise,
		p.CrewWeight + p.CargoWeight,
		p.EngineHP,
	}
}

// SplitLoad divides a swept total load 60/40 between crew and cargo,
// capping crew and pushing the overflow into cargo.
func SplitLoad(total float64) (crew, cargo float64) {
	crew = math.Min(0.6*total, CrewCap)
	cargo = total - crew
	return crew, cargo
}

func steps(min, max, step float64) int {
	return int(math.Floor((max-min)/step+1e-9)) + 1
}

// Sweep enumerates the full Cartesian product of the bounds in a fixed
// nesting order and labels every combination with the engine. The same
// bounds always produce the same ordered dataset.
func Sweep(b Bounds) *Dataset {
	nL := steps(b.LWLMin, b.LWLMax, b.LWLStep)
	nB := steps(b.BeamMin, b.BeamMax, b.BeamStep)
	nD := steps(b.DepthMin, b.DepthMax, b.DepthStep)
	nW := steps(b.LoadMin, b.LoadMax, b.LoadStep)

	n := nL * nB * nD * len(hull.HullTypes()) * nW * len(b.HPValues)
	ds := &Dataset{
		Inputs:  make([][]float64, 0, n),
		Outputs: make([][]float64, 0, n),
	}

	base := hull.DefaultParams()
	base.Deadrise = b.Deadrise

	for iL := 0; iL < nL; iL++ {
		lwl := b.LWLMin + b.LWLStep*float64(iL)
		for iB := 0; iB < nB; iB++ {
			beam := b.BeamMin + b.BeamStep*float64(iB)
			for iD := 0; iD < nD; iD++ {
				depth := b.DepthMin + b.DepthStep*float64(iD)
				for _, ht := range hull.HullTypes() {
					for iW := 0; iW < nW; iW++ {
						load := b.LoadMin + b.LoadStep*float64(iW)
						for _, hp := range b.HPValues {
							p := base
							p.LWL = lwl
							p.Beam = beam
							p.Depth = depth
							p.HullType = ht
							p.CrewWeight, p.CargoWeight = SplitLoad(load)
							p.EngineHP = hp

							r := hydro.Compute(p)
							ds.Inputs = append(ds.Inputs, Encode(p))
							ds.Outputs = append(ds.Outputs, []float64{r.GM, r.HullSpeed, r.MaxSpeed, r.Draft})
						}
					}
				}
			}
		}
	}
	return ds
}
