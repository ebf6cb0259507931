package net

import "gonum.org/v1/gonum/floats"

// StopReason tells why a run ended.
type StopReason int

const (
	ReasonNone      StopReason = iota // Still running, or never started
	ReasonConverged                   // Mean error fell below the stop threshold
	ReasonStopped                     // Stop was called
	ReasonMaxSteps                    // Config.MaxSteps was reached
)

func (r StopReason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonStopped:
		return "stopped"
	case ReasonMaxSteps:
		return "max steps"
	default:
		return "none"
	}
}

// TrainingState is the bookkeeping of one run.
type TrainingState struct {
	DataIndex int // Next sample, always in [0, len(dataset))
	Epoch     int // Completed passes over the dataset
	StepCount int // Steps taken so far

	// Parallel series of the mean error after each step, for plotting
	ErrorHistory []float64
	StepIndices  []float64

	LastError float64
	Running   bool
	Reason    StopReason
}

func (s TrainingState) clone() TrainingState {
	s.ErrorHistory = append([]float64(nil), s.ErrorHistory...)
	s.StepIndices = append([]float64(nil), s.StepIndices...)
	return s
}

// StepResult is what one training tick reports to the host.
type StepResult struct {
	MeanError float64
	Epoch     int
	StepIndex int
	Running   bool
	Reason    StopReason
}

// History is the error curve of a run together with its range.
type History struct {
	Steps    []float64
	Errors   []float64
	MinError float64
	MaxError float64
}

func newHistory(s TrainingState) History {
	h := History{
		Steps:  append([]float64(nil), s.StepIndices...),
		Errors: append([]float64(nil), s.ErrorHistory...),
	}
	if len(h.Errors) > 0 {
		h.MinError = floats.Min(h.Errors)
		h.MaxError = floats.Max(h.Errors)
	}
	return h
}
