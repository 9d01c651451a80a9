package surrogate

import (
	"gonum.org/v1/gonum/stat"
)

// Stats holds per-dimension mean and population standard deviation for
// the surrogate's input and output vectors. Computed once from the
// training set and immutable afterwards.
type Stats struct {
	InMean  []float64
	InStd   []float64
	OutMean []float64
	OutStd  []float64
}

// ComputeStats derives normalization statistics from a column-major
// view of the dataset. Standard deviations are floored to 1 so constant
// dimensions never divide by zero.
func ComputeStats(inputs, outputs [][]float64) *Stats {
	s := &Stats{}
	s.InMean, s.InStd = columnStats(inputs)
	s.OutMean, s.OutStd = columnStats(outputs)
	return s
}

func columnStats(rows [][]float64) (mean, std []float64) {
	if len(rows) == 0 {
		return nil, nil
	}
	dim := len(rows[0])
	mean = make([]float64, dim)
	std = make([]float64, dim)

	col := make([]float64, len(rows))
	for j := 0; j < dim; j++ {
		for i, row := range rows {
			col[i] = row[j]
		}
		mean[j] = stat.Mean(col, nil)
		sd := stat.PopStdDev(col, nil)
		if sd < 1 {
			sd = 1
		}
		std[j] = sd
	}
	return mean, std
}

// Normalize maps v into standard-score space.
func Normalize(v, mean, std []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = (v[i] - mean[i]) / std[i]
	}
	return out
}

// Denormalize is the exact inverse of Normalize for the same stats.
func Denormalize(v, mean, std []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i]*std[i] + mean[i]
	}
	return out
}
