package sample

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

// SweepParallel produces the same ordered dataset as Sweep, fanning the
// outermost LWL axis across workers. Every worker writes into its own
// pre-sized slice segment, so the result is identical to the serial
// sweep regardless of scheduling.
func SweepParallel(ctx context.Context, b Bounds, workers int) (*Dataset, error) {
	nL := steps(b.LWLMin, b.LWLMax, b.LWLStep)
	nB := steps(b.BeamMin, b.BeamMax, b.BeamStep)
	nD := steps(b.DepthMin, b.DepthMax, b.DepthStep)
	nW := steps(b.LoadMin, b.LoadMax, b.LoadStep)
	block := nB * nD * len(hull.HullTypes()) * nW * len(b.HPValues)

	ds := &Dataset{
		Inputs:  make([][]float64, nL*block),
		Outputs: make([][]float64, nL*block),
	}

	base := hull.DefaultParams()
	base.Deadrise = b.Deadrise

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iL := range rows {
				fillRow(b, base, iL, block, nB, nD, nW, ds)
			}
		}()
	}

feed:
	for iL := 0; iL < nL; iL++ {
		select {
		case rows <- iL:
		case <-ctx.Done():
			break feed
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sample: sweep interrupted: %w", err)
	}
	return ds, nil
}

// fillRow labels every design sharing one LWL value, writing at the
// row's fixed offset.
func fillRow(b Bounds, base hull.Params, iL, block, nB, nD, nW int, ds *Dataset) {
	lwl := b.LWLMin + b.LWLStep*float64(iL)
	idx := iL * block
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
						ds.Inputs[idx] = Encode(p)
						ds.Outputs[idx] = []float64{r.GM, r.HullSpeed, r.MaxSpeed, r.Draft}
						idx++
					}
				}
			}
		}
	}
}
