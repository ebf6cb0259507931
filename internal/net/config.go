package net

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Start when a Config fails validation.
var ErrInvalidConfig = errors.New("net: invalid config")

// Config holds the settings of one training run.
type Config struct {
	NeuronCount   int     // Number of RBF neurons, >= 1
	LearningRate  float64 // SGD step size, > 0
	StopThreshold float64 // Training ends once the mean error drops below this, >= 0
	GridStep      float64 // Spacing of the training grid over [-3, 3], > 0

	// MaxSteps ends the run after this many steps even if the threshold
	// was never reached. 0 means no cap.
	MaxSteps int

	// Seed for parameter initialization. 0 seeds from the clock.
	Seed int64
}

// DefaultConfig returns the settings the trainer ships with.
func DefaultConfig() Config {
	return Config{
		NeuronCount:   10,
		LearningRate:  0.01,
		StopThreshold: 0.01,
		GridStep:      0.5,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.NeuronCount < 1:
		return fmt.Errorf("%w: neuron count %d, want >= 1", ErrInvalidConfig, c.NeuronCount)
	case !finite(c.LearningRate) || c.LearningRate <= 0:
		return fmt.Errorf("%w: learning rate %v, want > 0", ErrInvalidConfig, c.LearningRate)
	case !finite(c.StopThreshold) || c.StopThreshold < 0:
		return fmt.Errorf("%w: stop threshold %v, want >= 0", ErrInvalidConfig, c.StopThreshold)
	case !finite(c.GridStep) || c.GridStep <= 0:
		return fmt.Errorf("%w: grid step %v, want > 0", ErrInvalidConfig, c.GridStep)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max steps %d, want >= 0", ErrInvalidConfig, c.MaxSteps)
	}
	return nil
}
