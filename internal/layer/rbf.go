package layer

import (
	"fmt"

	"github.com/FlavioCFOliveira/rbfnet/internal/activations"
	"github.com/FlavioCFOliveira/rbfnet/internal/loss"
	"github.com/FlavioCFOliveira/rbfnet/internal/opt"
	"gonum.org/v1/gonum/diff/fd"
)

// RBF is a single-output radial basis function network over (x, y).
//
// Neuron i responds with phi_i(x, y) = g(x; c_i, s_i) + g(y; c_i, s_i), the
// sum of two one-dimensional Gaussians sharing one center and one spread,
// and the output is sum_i w_i * phi_i(x, y). This is deliberately not a 2D
// radial Gaussian.
type RBF struct {
	// Parallel per-neuron parameters, all of length n
	centers []float64
	spreads []float64
	weights []float64

	basis activations.Basis
	loss  loss.Loss

	// Pre-allocated buffers, overwritten by every Gradients call
	predBuf  [1]float64
	trueBuf  [1]float64
	dOutBuf  [1]float64
	phiXBuf  []float64
	phiYBuf  []float64
	gradWBuf []float64
	gradSBuf []float64
	gradCBuf []float64
}

// NewRBF creates an empty network. Initialize must be called before use.
func NewRBF() *RBF {
	return &RBF{basis: activations.Gaussian{}, loss: loss.HalfMSE{}}
}

// Initialize discards any prior parameters and allocates n fresh neurons
// drawn from src.
func (r *RBF) Initialize(n int, src Source) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNeuronCount, n)
	}

	r.centers = make([]float64, n)
	r.spreads = make([]float64, n)
	r.weights = make([]float64, n)
	for i := 0; i < n; i++ {
		r.centers[i] = src.Float64()*(CenterMax-CenterMin) + CenterMin
		r.spreads[i] = src.Float64()*(SpreadMax-SpreadMin) + SpreadMin
		r.weights[i] = src.Float64()*(WeightMax-WeightMin) + WeightMin
	}

	r.phiXBuf = make([]float64, n)
	r.phiYBuf = make([]float64, n)
	r.gradWBuf = make([]float64, n)
	r.gradSBuf = make([]float64, n)
	r.gradCBuf = make([]float64, n)
	return nil
}

// Initialized reports whether Initialize has run.
func (r *RBF) Initialized() bool {
	return len(r.weights) > 0
}

// Size returns the number of neurons.
func (r *RBF) Size() int {
	return len(r.weights)
}

// Neuron returns the parameters of neuron i.
func (r *RBF) Neuron(i int) Neuron {
	return Neuron{Center: r.centers[i], Spread: r.spreads[i], Weight: r.weights[i]}
}

// Neurons returns a copy of all neuron parameters.
func (r *RBF) Neurons() []Neuron {
	out := make([]Neuron, len(r.weights))
	for i := range out {
		out[i] = r.Neuron(i)
	}
	return out
}

// phiXY returns the two Gaussian terms of neuron i.
func (r *RBF) phiXY(i int, x, y float64) (float64, float64) {
	c, s := r.centers[i], r.spreads[i]
	return r.basis.Activate(x, c, s), r.basis.Activate(y, c, s)
}

// Phi returns the response of neuron i at (x, y).
func (r *RBF) Phi(i int, x, y float64) float64 {
	px, py := r.phiXY(i, x, y)
	return px + py
}

// Forward computes sum_i w_i * phi_i(x, y).
func (r *RBF) Forward(x, y float64) float64 {
	sum := 0.0
	for i, w := range r.weights {
		sum += w * r.Phi(i, x, y)
	}
	return sum
}

// Gradients computes the gradients of 0.5*(target - Forward(x, y))^2 with
// respect to every weight, spread and center.
//
// The returned slices are internal buffers valid until the next call.
func (r *RBF) Gradients(x, y, target float64) (gradWeights, gradSpreads, gradCenters []float64) {
	n := len(r.weights)
	phiX, phiY := r.phiXBuf[:n], r.phiYBuf[:n]

	// One pass for the basis terms, reused by the output and all gradients
	output := 0.0
	for i := 0; i < n; i++ {
		phiX[i], phiY[i] = r.phiXY(i, x, y)
		output += r.weights[i] * (phiX[i] + phiY[i])
	}

	// dL/d(output) for the single sample, output - target for HalfMSE
	r.predBuf[0], r.trueBuf[0] = output, target
	r.loss.BackwardInPlace(r.predBuf[:], r.trueBuf[:], r.dOutBuf[:])
	dOut := r.dOutBuf[0]

	for i := 0; i < n; i++ {
		c, s, w := r.centers[i], r.spreads[i], r.weights[i]
		r.gradWBuf[i] = dOut * (phiX[i] + phiY[i])
		r.gradSBuf[i] = dOut * w * (r.basis.DSpread(x, c, s, phiX[i]) + r.basis.DSpread(y, c, s, phiY[i]))
		r.gradCBuf[i] = dOut * w * (r.basis.DCenter(x, c, s, phiX[i]) + r.basis.DCenter(y, c, s, phiY[i]))
	}

	return r.gradWBuf[:n], r.gradSBuf[:n], r.gradCBuf[:n]
}

// ApplyUpdate performs one plain SGD step and then clamps every spread to
// SpreadFloor.
func (r *RBF) ApplyUpdate(gradWeights, gradSpreads, gradCenters []float64, learningRate float64) {
	r.Update(opt.SGD{LearningRate: learningRate}, gradWeights, gradSpreads, gradCenters)
}

// Update steps every parameter group with o and then clamps every spread
// to SpreadFloor, whatever o did to them.
func (r *RBF) Update(o opt.Optimizer, gradWeights, gradSpreads, gradCenters []float64) {
	o.StepInPlace(r.weights, gradWeights)
	o.StepInPlace(r.spreads, gradSpreads)
	o.StepInPlace(r.centers, gradCenters)

	opt.ClampMin(r.spreads, SpreadFloor)
}

// Params returns all parameters flattened: weights, spreads, centers.
func (r *RBF) Params() []float64 {
	n := len(r.weights)
	p := make([]float64, 3*n)
	copy(p, r.weights)
	copy(p[n:], r.spreads)
	copy(p[2*n:], r.centers)
	return p
}

// SetParams updates parameters from a flattened slice laid out as Params.
func (r *RBF) SetParams(p []float64) {
	n := len(r.weights)
	if len(p) != 3*n {
		panic(fmt.Sprintf("RBF: SetParams got %d values, want %d", len(p), 3*n))
	}
	copy(r.weights, p[:n])
	copy(r.spreads, p[n:2*n])
	copy(r.centers, p[2*n:])
}

// Clone creates a deep copy.
func (r *RBF) Clone() *RBF {
	n := len(r.weights)
	c := &RBF{
		centers:  append([]float64(nil), r.centers...),
		spreads:  append([]float64(nil), r.spreads...),
		weights:  append([]float64(nil), r.weights...),
		basis:    r.basis,
		loss:     r.loss,
		phiXBuf:  make([]float64, n),
		phiYBuf:  make([]float64, n),
		gradWBuf: make([]float64, n),
		gradSBuf: make([]float64, n),
		gradCBuf: make([]float64, n),
	}
	return c
}

// NumericalGradients estimates the same gradients as Gradients with central
// finite differences. It does not modify r.
func (r *RBF) NumericalGradients(x, y, target float64) (gradWeights, gradSpreads, gradCenters []float64) {
	scratch := r.Clone()
	f := func(p []float64) float64 {
		scratch.SetParams(p)
		e := target - scratch.Forward(x, y)
		return 0.5 * e * e
	}

	g := fd.Gradient(nil, f, r.Params(), &fd.Settings{
		Formula: fd.Central,
		Step:    1e-6,
	})

	n := len(r.weights)
	return g[:n], g[n : 2*n], g[2*n:]
}
