package surrogate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// layer is one dense layer plus its momentum buffers.
type layer struct {
	w  *mat.Dense // in x out
	b  []float64
	vw *mat.Dense
	vb []float64
}

// Network is a small feed-forward regressor: ReLU on hidden layers,
// linear output. It is opaque outside this package; callers only reach
// it through Predict and BuildGrid.
type Network struct {
	sizes  []int
	layers []*layer
}

// NewNetwork builds a network with the given layer sizes, weights
// initialized He-style from a seeded source so runs reproduce.
func NewNetwork(sizes []int, seed int64) *Network {
	rng := rand.New(rand.NewSource(seed))
	n := &Network{sizes: sizes}
	for l := 0; l < len(sizes)-1; l++ {
		in, out := sizes[l], sizes[l+1]
		data := make([]float64, in*out)
		scale := math.Sqrt(2.0 / float64(in))
		for i := range data {
			data[i] = rng.NormFloat64() * scale
		}
		n.layers = append(n.layers, &layer{
			w:  mat.NewDense(in, out, data),
			b:  make([]float64, out),
			vw: mat.NewDense(in, out, nil),
			vb: make([]float64, out),
		})
	}
	return n
}

// InputDim returns the expected input vector width.
func (n *Network) InputDim() int { return n.sizes[0] }

// OutputDim returns the produced output vector width.
func (n *Network) OutputDim() int { return n.sizes[len(n.sizes)-1] }

// Forward runs one batched pass; x is batch x inputDim, the result
// batch x outputDim. A single sample is just a batch of one.
func (n *Network) Forward(x *mat.Dense) *mat.Dense {
	acts := n.forward(x)
	return acts[len(acts)-1]
}

// forward returns the post-activation output of every layer, with the
// input as element zero.
func (n *Network) forward(x *mat.Dense) []*mat.Dense {
	acts := make([]*mat.Dense, len(n.layers)+1)
	acts[0] = x
	for l, ly := range n.layers {
		rows, _ := acts[l].Dims()
		_, out := ly.w.Dims()
		z := mat.NewDense(rows, out, nil)
		z.Mul(acts[l], ly.w)
		hidden := l < len(n.layers)-1
		for i := 0; i < rows; i++ {
			for j := 0; j < out; j++ {
				v := z.At(i, j) + ly.b[j]
				if hidden && v < 0 {
					v = 0
				}
				z.Set(i, j, v)
			}
		}
		acts[l+1] = z
	}
	return acts
}

// Loss computes mean squared error of the network over a batch.
func (n *Network) Loss(x, y *mat.Dense) float64 {
	pred := n.Forward(x)
	rows, cols := pred.Dims()
	sum := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := pred.At(i, j) - y.At(i, j)
			sum += d * d
		}
	}
	return sum / float64(rows*cols)
}

// TrainBatch runs one SGD-with-momentum step on a batch and returns the
// batch MSE before the update.
func (n *Network) TrainBatch(x, y *mat.Dense, lr, momentum float64) float64 {
	acts := n.forward(x)
	pred := acts[len(acts)-1]
	batch, outDim := pred.Dims()

	// Output delta is dLoss/dPred for mean squared error.
	delta := mat.NewDense(batch, outDim, nil)
	loss := 0.0
	scale := 2.0 / float64(batch*outDim)
	for i := 0; i < batch; i++ {
		for j := 0; j < outDim; j++ {
			d := pred.At(i, j) - y.At(i, j)
			loss += d * d
			delta.Set(i, j, d*scale)
		}
	}
	loss /= float64(batch * outDim)

	for l := len(n.layers) - 1; l >= 0; l-- {
		ly := n.layers[l]
		in, out := ly.w.Dims()

		gw := mat.NewDense(in, out, nil)
		gw.Mul(acts[l].T(), delta)
		gb := make([]float64, out)
		for j := 0; j < out; j++ {
			for i := 0; i < batch; i++ {
				gb[j] += delta.At(i, j)
			}
		}

		var prev *mat.Dense
		if l > 0 {
			prev = mat.NewDense(batch, in, nil)
			prev.Mul(delta, ly.w.T())
			// ReLU gate: the stored activation is already rectified, so
			// zero gradient wherever it is not positive.
			for i := 0; i < batch; i++ {
				for j := 0; j < in; j++ {
					if acts[l].At(i, j) <= 0 {
						prev.Set(i, j, 0)
					}
				}
			}
		}

		ly.vw.Scale(momentum, ly.vw)
		gw.Scale(lr, gw)
		ly.vw.Sub(ly.vw, gw)
		ly.w.Add(ly.w, ly.vw)
		for j := 0; j < out; j++ {
			ly.vb[j] = momentum*ly.vb[j] - lr*gb[j]
			ly.b[j] += ly.vb[j]
		}

		delta = prev
	}
	return loss
}
