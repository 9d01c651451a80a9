package surrogate

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/hullab/internal/sample"
)

// Progress is one epoch-boundary report from a training run.
type Progress struct {
	Epoch   int
	Epochs  int
	Loss    float64
	ValLoss float64
}

// TrainConfig fixes the regressor architecture and optimization
// schedule.
type TrainConfig struct {
	Hidden    []int
	Epochs    int
	BatchSize int
	LR        float64
	Momentum  float64
	ValFrac   float64
	Seed      int64
}

// DefaultTrainConfig is the production schedule: 7-64-32-16-4 with
// ReLU hidden layers, MSE loss, low-rate momentum SGD, shuffled
// batches of 64 over 50 epochs with a 10% held-out validation split.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Hidden:    []int{64, 32, 16},
		Epochs:    50,
		BatchSize: 64,
		LR:        0.005,
		Momentum:  0.9,
		ValFrac:   0.1,
		Seed:      1,
	}
}

// Trainer fits a surrogate to a sampled dataset. At most one run may be
// in flight; a second Train call while running is rejected as a no-op.
type Trainer struct {
	cfg TrainConfig

	mu      sync.Mutex
	running bool
}

func NewTrainer(cfg TrainConfig) *Trainer {
	return &Trainer{cfg: cfg}
}

func (t *Trainer) acquire() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ErrTrainingInFlight
	}
	t.running = true
	return nil
}

func (t *Trainer) release() {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

// Train fits a fresh network to the dataset and returns a fully-formed
// context. onProgress, if non-nil, fires once per epoch and may run on
// the caller's goroutine; hosts that need asynchrony run Train on a
// background goroutine and forward progress over a channel. On any
// failure no context is returned and nothing is published.
func (t *Trainer) Train(ctx context.Context, ds *sample.Dataset, onProgress func(Progress)) (*Context, error) {
	if err := t.acquire(); err != nil {
		return nil, err
	}
	defer t.release()

	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	stats := ComputeStats(ds.Inputs, ds.Outputs)
	normIn := normalizeRows(ds.Inputs, stats.InMean, stats.InStd)
	normOut := normalizeRows(ds.Outputs, stats.OutMean, stats.OutStd)

	rng := rand.New(rand.NewSource(t.cfg.Seed))

	// Shuffle once, then hold out the validation tail.
	order := rng.Perm(ds.Len())
	nVal := int(float64(ds.Len()) * t.cfg.ValFrac)
	if nVal >= ds.Len() {
		nVal = 0
	}
	trainIdx := order[:ds.Len()-nVal]
	valIdx := order[ds.Len()-nVal:]

	valX, valY := gather(normIn, normOut, valIdx)

	sizes := append([]int{sample.InputDim}, t.cfg.Hidden...)
	sizes = append(sizes, sample.OutputDim)
	net := NewNetwork(sizes, t.cfg.Seed)

	batch := t.cfg.BatchSize
	if batch <= 0 || batch > len(trainIdx) {
		batch = len(trainIdx)
	}

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("surrogate: training interrupted at epoch %d: %w", epoch, err)
		}

		rng.Shuffle(len(trainIdx), func(i, j int) {
			trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i]
		})

		epochLoss := 0.0
		batches := 0
		for start := 0; start+batch <= len(trainIdx); start += batch {
			bx, by := gather(normIn, normOut, trainIdx[start:start+batch])
			epochLoss += net.TrainBatch(bx, by, t.cfg.LR, t.cfg.Momentum)
			batches++
		}
		if batches > 0 {
			epochLoss /= float64(batches)
		}

		valLoss := epochLoss
		if valX != nil {
			valLoss = net.Loss(valX, valY)
		}
		if onProgress != nil {
			onProgress(Progress{Epoch: epoch + 1, Epochs: t.cfg.Epochs, Loss: epochLoss, ValLoss: valLoss})
		}
	}

	return &Context{Net: net, Stats: stats}, nil
}

func normalizeRows(rows [][]float64, mean, std []float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = Normalize(r, mean, std)
	}
	return out
}

// gather packs the selected rows into dense batch matrices.
func gather(in, out [][]float64, idx []int) (*mat.Dense, *mat.Dense) {
	if len(idx) == 0 {
		return nil, nil
	}
	x := mat.NewDense(len(idx), len(in[0]), nil)
	y := mat.NewDense(len(idx), len(out[0]), nil)
	for i, k := range idx {
		x.SetRow(i, in[k])
		y.SetRow(i, out[k])
	}
	return x, y
}
