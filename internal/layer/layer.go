// Package layer provides the radial basis function network trained by
// package net.
package layer

import "errors"

// ErrInvalidNeuronCount is returned when a network is initialized with
// fewer than one neuron.
var ErrInvalidNeuronCount = errors.New("layer: neuron count must be at least 1")

// Source is a source of uniform random numbers in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Initial parameter ranges. Each neuron draws center, spread and weight in
// that order from independent uniform samples u in [0, 1).
const (
	CenterMin = -3.0
	CenterMax = 3.0
	SpreadMin = 0.1
	SpreadMax = 1.0
	WeightMin = -0.5
	WeightMax = 0.5
)

// SpreadFloor is the smallest spread an update may leave behind.
// Phi is undefined at spread 0.
const SpreadFloor = 0.001

// Neuron is a read-only view of one neuron's parameters.
type Neuron struct {
	Center float64
	Spread float64
	Weight float64
}
