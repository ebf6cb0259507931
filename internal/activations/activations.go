// Package activations provides the basis functions used by RBF neurons.
package activations

import "math"

// Basis is a one-dimensional basis function parameterized by a center and
// a spread, with partial derivatives for training both.
type Basis interface {
	// Activate computes phi(v; c, s)
	Activate(v, center, spread float64) float64

	// DCenter computes d(phi)/dc given phi already evaluated at v
	DCenter(v, center, spread, phi float64) float64

	// DSpread computes d(phi)/ds given phi already evaluated at v
	DSpread(v, center, spread, phi float64) float64
}

// Gaussian is the unnormalized Gaussian bump exp(-(v-c)^2 / (2*s^2)).
// It peaks at 1 when v == c and is undefined for s == 0.
type Gaussian struct{}

// Activate computes exp(-(v-c)^2 / (2*s^2))
func (g Gaussian) Activate(v, center, spread float64) float64 {
	d := v - center
	return math.Exp(-d * d / (2 * spread * spread))
}

// DCenter computes phi * (v-c) / s^2
func (g Gaussian) DCenter(v, center, spread, phi float64) float64 {
	return phi * (v - center) / (spread * spread)
}

// DSpread computes phi * (v-c)^2 / s^3
func (g Gaussian) DSpread(v, center, spread, phi float64) float64 {
	d := v - center
	return phi * d * d / (spread * spread * spread)
}
