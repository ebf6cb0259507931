// Package opt provides the parameter update rule used during training.
package opt

import "gonum.org/v1/gonum/floats"

// Optimizer updates network parameters based on gradients.
type Optimizer interface {
	// StepInPlace updates params in-place: params = params - lr * gradients
	StepInPlace(params, gradients []float64)
}

// SGD (Stochastic Gradient Descent) optimizer.
// No momentum, no regularization.
type SGD struct {
	LearningRate float64
}

// StepInPlace updates params in-place: params = params - lr * gradients
// Panics if the slices differ in length.
func (s SGD) StepInPlace(params, gradients []float64) {
	floats.AddScaled(params, -s.LearningRate, gradients)
}

// ClampMin raises every element of params below floor to floor.
// NaN is treated as below the floor.
func ClampMin(params []float64, floor float64) {
	for i, p := range params {
		if !(p >= floor) {
			params[i] = floor
		}
	}
}
