package net

import (
	"fmt"
	"io"
	"os"
)

// Callback defines the interface for training callbacks.
// Callbacks run outside the network's lock and may call its methods.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(reason StopReason, n *Network)
	OnStep(res StepResult, n *Network)
	OnEpochEnd(epoch int, meanError float64, n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                             {}
func (c BaseCallback) OnTrainEnd(reason StopReason, n *Network)            {}
func (c BaseCallback) OnStep(res StepResult, n *Network)                   {}
func (c BaseCallback) OnEpochEnd(epoch int, meanError float64, n *Network) {}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
	Interval int       // Log every Interval steps, 0 disables step lines
	Out      io.Writer // Defaults to os.Stdout
}

func (c Logger) OnStep(res StepResult, n *Network) {
	if c.Interval > 0 && res.StepIndex%c.Interval == 0 {
		fmt.Fprintf(writerOrStdout(c.Out), "Step %d, Epoch: %d, Error: %.6f\n", res.StepIndex, res.Epoch, res.MeanError)
	}
}

func (c Logger) OnTrainEnd(reason StopReason, n *Network) {
	st := n.State()
	fmt.Fprintf(writerOrStdout(c.Out), "Training %s after %d steps (epoch %d), error %.6f\n", reason, st.StepCount, st.Epoch, st.LastError)
}

// ParamLogger prints the learned parameters whenever a run ends, whatever
// the reason.
type ParamLogger struct {
	BaseCallback
	Out io.Writer // Defaults to os.Stdout
}

func (c ParamLogger) OnTrainEnd(reason StopReason, n *Network) {
	neurons, err := n.Neurons()
	if err != nil {
		return
	}

	w := writerOrStdout(c.Out)
	fmt.Fprintln(w, "Training is finished. Learned Parameters:")
	fmt.Fprintln(w, "Neuron\tWeight\tCenter\tSpread")
	for i, nr := range neurons {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\n", i+1, nr.Weight, nr.Center, nr.Spread)
	}
}
