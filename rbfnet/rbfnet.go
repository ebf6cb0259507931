// Package rbfnet is the public entry point for training a radial basis
// function network on the 2D sinc product sin(x)/x * sin(y)/y.
package rbfnet

import (
	"io"

	"github.com/FlavioCFOliveira/rbfnet/internal/layer"
	"github.com/FlavioCFOliveira/rbfnet/internal/net"
)

// Re-export common types and functions for easier access
type (
	Network       = net.Network
	Config        = net.Config
	StepResult    = net.StepResult
	TrainingState = net.TrainingState
	History       = net.History
	StopReason    = net.StopReason
	Sample        = net.Sample
	Estimate      = net.Estimate
	GridPoint     = net.GridPoint
	GridReport    = net.GridReport
	Neuron        = layer.Neuron
	Callback      = net.Callback
	BaseCallback  = net.BaseCallback
)

// Stop reasons
const (
	ReasonNone      = net.ReasonNone
	ReasonConverged = net.ReasonConverged
	ReasonStopped   = net.ReasonStopped
	ReasonMaxSteps  = net.ReasonMaxSteps
)

// Errors
var (
	ErrNotTrained    = net.ErrNotTrained
	ErrNotRunning    = net.ErrNotRunning
	ErrInvalidConfig = net.ErrInvalidConfig
	ErrInvalidGrid   = net.ErrInvalidGrid
)

// Grid bounds and the zero-coordinate replacement used by Target
const (
	GridMin       = net.GridMin
	GridMax       = net.GridMax
	TargetEpsilon = net.TargetEpsilon
)

// New creates an idle network.
func New(callbacks ...Callback) *Network {
	return net.New(callbacks...)
}

// DefaultConfig returns 10 neurons, learning rate 0.01, stop threshold
// 0.01 and grid step 0.5, time-seeded and without a step cap.
func DefaultConfig() Config {
	return net.DefaultConfig()
}

// GenerateDataset returns the row-major grid of samples over [lo, hi] on
// both axes, spaced by step.
func GenerateDataset(lo, hi, step float64) ([]Sample, error) {
	return net.GenerateDataset(lo, hi, step)
}

// Target evaluates sin(x)/x * sin(y)/y, with zero coordinates replaced
// by TargetEpsilon.
func Target(x, y float64) float64 {
	return net.Target(x, y)
}

// Logger returns a callback printing the error every interval steps to out,
// or to stdout when out is nil.
func Logger(interval int, out io.Writer) net.Logger {
	return net.Logger{Interval: interval, Out: out}
}

// ParamLogger returns a callback printing the learned parameter table when
// a run ends.
func ParamLogger(out io.Writer) net.ParamLogger {
	return net.ParamLogger{Out: out}
}

// CSVLogger returns a callback streaming step, epoch, error and elapsed
// time as CSV records to w.
func CSVLogger(w io.Writer) *net.CSVLogger {
	return net.NewCSVLogger(w)
}
