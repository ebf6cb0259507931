// Package net provides the online training loop for the RBF network.
package net

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/FlavioCFOliveira/rbfnet/internal/layer"
	"github.com/FlavioCFOliveira/rbfnet/internal/loss"
)

var (
	// ErrNotTrained is returned by inference before any run has started.
	ErrNotTrained = errors.New("net: network not trained")

	// ErrNotRunning is returned by Step when no run is active.
	ErrNotRunning = errors.New("net: training not running")
)

// Network owns an RBF model, the dataset of the current run and its
// training state.
//
// All methods are safe for concurrent use. Each Step runs to completion
// under the network's lock, so inference from another goroutine always
// sees the parameters between two steps. Callbacks are delivered one at a
// time, in the order the state changed.
type Network struct {
	mu sync.Mutex

	model *layer.RBF
	loss  loss.Loss
	cfg   Config
	state TrainingState

	samples []Sample
	targets []float64

	// Pre-allocated prediction buffer for the full-dataset error
	predBuf []float64

	callbacks   []Callback
	pending     []event
	dispatching bool
}

// New creates an idle network. Callbacks are notified of every step and
// of the start and end of each run.
func New(callbacks ...Callback) *Network {
	return &Network{
		model:     layer.NewRBF(),
		loss:      loss.HalfMSE{},
		callbacks: callbacks,
	}
}

// Start begins a run. It is a no-op while a run is already active,
// whatever cfg holds. Otherwise an invalid config is rejected before any
// state is touched.
func (n *Network) Start(cfg Config) error {
	n.mu.Lock()
	if n.state.Running {
		n.mu.Unlock()
		return nil
	}
	if err := cfg.Validate(); err != nil {
		n.mu.Unlock()
		return err
	}

	samples, err := GenerateDataset(GridMin, GridMax, cfg.GridStep)
	if err != nil {
		n.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := n.model.Initialize(cfg.NeuronCount, rand.New(rand.NewSource(seed))); err != nil {
		n.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	n.cfg = cfg
	n.samples = samples
	n.targets = make([]float64, len(samples))
	for i, s := range samples {
		n.targets[i] = s.Target
	}
	n.predBuf = make([]float64, len(samples))
	n.state = TrainingState{Running: true}
	n.enqueueLocked(event{kind: eventBegin})
	n.mu.Unlock()

	n.dispatch()
	return nil
}

// Step performs one training tick on the sample under the cursor.
func (n *Network) Step() (StepResult, error) {
	n.mu.Lock()
	if !n.state.Running {
		n.mu.Unlock()
		return StepResult{Reason: n.state.Reason}, ErrNotRunning
	}
	res, epochDone := n.stepLocked()
	n.enqueueLocked(event{kind: eventStep, res: res})
	if epochDone {
		n.enqueueLocked(event{kind: eventEpoch, res: res})
	}
	if !res.Running {
		n.enqueueLocked(event{kind: eventEnd, reason: res.Reason})
	}
	n.mu.Unlock()

	n.dispatch()
	return res, nil
}

func (n *Network) stepLocked() (StepResult, bool) {
	s := &n.state
	sample := n.samples[s.DataIndex]

	gw, gs, gc := n.model.Gradients(sample.X, sample.Y, sample.Target)
	n.model.ApplyUpdate(gw, gs, gc, n.cfg.LearningRate)

	meanErr := n.datasetErrorLocked()

	stepIndex := s.StepCount
	s.ErrorHistory = append(s.ErrorHistory, meanErr)
	s.StepIndices = append(s.StepIndices, float64(stepIndex))
	s.StepCount++
	s.LastError = meanErr

	switch {
	case meanErr < n.cfg.StopThreshold:
		s.Running = false
		s.Reason = ReasonConverged
	case n.cfg.MaxSteps > 0 && s.StepCount >= n.cfg.MaxSteps:
		s.Running = false
		s.Reason = ReasonMaxSteps
	}

	s.DataIndex = (s.DataIndex + 1) % len(n.samples)
	epochDone := s.DataIndex == 0
	if epochDone {
		s.Epoch++
	}

	return StepResult{
		MeanError: meanErr,
		Epoch:     s.Epoch,
		StepIndex: stepIndex,
		Running:   s.Running,
		Reason:    s.Reason,
	}, epochDone
}

// datasetErrorLocked recomputes the mean error over every sample with the
// current parameters.
func (n *Network) datasetErrorLocked() float64 {
	for i, s := range n.samples {
		n.predBuf[i] = n.model.Forward(s.X, s.Y)
	}
	return n.loss.Forward(n.predBuf, n.targets)
}

// Stop aborts the active run. The parameters stay available for inference.
// If another goroutine is delivering callbacks, OnTrainEnd is delivered by
// that goroutine after its pending notifications.
func (n *Network) Stop() {
	n.mu.Lock()
	if !n.state.Running {
		n.mu.Unlock()
		return
	}
	n.state.Running = false
	n.state.Reason = ReasonStopped
	n.enqueueLocked(event{kind: eventEnd, reason: ReasonStopped})
	n.mu.Unlock()

	n.dispatch()
}

// Running reports whether a run is active.
func (n *Network) Running() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.Running
}

// Config returns the settings of the current or last run.
func (n *Network) Config() Config {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cfg
}

// State returns a copy of the training state.
func (n *Network) State() TrainingState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.clone()
}

// History returns the error curve recorded so far.
func (n *Network) History() History {
	n.mu.Lock()
	defer n.mu.Unlock()
	return newHistory(n.state)
}

// Dataset returns a copy of the training samples of the current run.
func (n *Network) Dataset() []Sample {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Sample(nil), n.samples...)
}

// Neurons returns a copy of the learned parameters.
func (n *Network) Neurons() ([]layer.Neuron, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.model.Initialized() {
		return nil, ErrNotTrained
	}
	return n.model.Neurons(), nil
}

// snapshot returns a private copy of the model for lock-free inference.
func (n *Network) snapshot() (*layer.RBF, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.model.Initialized() {
		return nil, ErrNotTrained
	}
	return n.model.Clone(), nil
}

// Forward evaluates the network at (x, y).
func (n *Network) Forward(x, y float64) (float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.model.Initialized() {
		return 0, ErrNotTrained
	}
	return n.model.Forward(x, y), nil
}

// Estimate is the network output next to the true function value at a point.
type Estimate struct {
	X, Y   float64
	Output float64
	Target float64
}

// FindZ evaluates the network and the target function at (x, y).
func (n *Network) FindZ(x, y float64) (Estimate, error) {
	out, err := n.Forward(x, y)
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{X: x, Y: y, Output: out, Target: Target(x, y)}, nil
}
