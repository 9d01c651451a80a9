// Package analysis quantifies how well a trained surrogate tracks the
// hydrostatics engine over a labeled dataset.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/hullab/internal/sample"
	"github.com/san-kum/hullab/internal/surrogate"
)

// metricNames follow the surrogate output ordering.
var metricNames = []string{"gm", "hull_speed", "max_speed", "draft"}

// Accuracy is the per-metric error of the surrogate against the engine
// labels, in the metric's physical units.
type Accuracy struct {
	Metric string
	MAE    float64
	RMSE   float64
	MaxErr float64
}

// Evaluate runs the surrogate over the whole dataset in one batched
// pass and summarizes the prediction error per output metric.
func Evaluate(c *surrogate.Context, ds *sample.Dataset) ([]Accuracy, error) {
	if !c.Ready() {
		return nil, surrogate.ErrNotReady
	}
	if ds == nil || ds.Len() == 0 {
		return nil, surrogate.ErrEmptyDataset
	}

	n := ds.Len()
	batch := mat.NewDense(n, sample.InputDim, nil)
	for i, in := range ds.Inputs {
		batch.SetRow(i, surrogate.Normalize(in, c.Stats.InMean, c.Stats.InStd))
	}
	pred := c.Net.Forward(batch)

	report := make([]Accuracy, sample.OutputDim)
	for j := range report {
		report[j].Metric = metricNames[j]
	}

	sumAbs := make([]float64, sample.OutputDim)
	sumSq := make([]float64, sample.OutputDim)
	for i := 0; i < n; i++ {
		out := surrogate.Denormalize(pred.RawRowView(i), c.Stats.OutMean, c.Stats.OutStd)
		for j := 0; j < sample.OutputDim; j++ {
			e := math.Abs(out[j] - ds.Outputs[i][j])
			sumAbs[j] += e
			sumSq[j] += e * e
			if e > report[j].MaxErr {
				report[j].MaxErr = e
			}
		}
	}
	for j := range report {
		report[j].MAE = sumAbs[j] / float64(n)
		report[j].RMSE = math.Sqrt(sumSq[j] / float64(n))
	}
	return report, nil
}
