package net

import (
	"errors"
	"fmt"
	"math"
)

// Bounds of the training grid on both axes.
const (
	GridMin = -3.0
	GridMax = 3.0
)

// TargetEpsilon replaces an exact-zero coordinate before evaluating
// sin(v)/v, so the target at the origin is finite.
const TargetEpsilon = 1e-5

// maxGridPoints bounds the total number of grid points, both axes
// together, so a tiny step cannot exhaust memory.
const maxGridPoints = 1000000

// ErrInvalidGrid is returned for grids with a non-positive step, inverted
// bounds or too many points.
var ErrInvalidGrid = errors.New("net: invalid grid")

// Sample is one training example.
type Sample struct {
	X, Y   float64
	Target float64
}

func sinc(v float64) float64 {
	if v == 0 {
		v = TargetEpsilon
	}
	return math.Sin(v) / v
}

// Target evaluates sin(x)/x * sin(y)/y.
func Target(x, y float64) float64 {
	return sinc(x) * sinc(y)
}

// axisPoints returns how many grid points fit in [lo, hi] at step on one
// axis. The square of the result is at most maxGridPoints.
// An integer counter is used so the upper bound is not lost to
// accumulated rounding.
func axisPoints(lo, hi, step float64) (int, error) {
	if !finite(lo) || !finite(hi) || hi < lo {
		return 0, fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidGrid, lo, hi)
	}
	if !finite(step) || step <= 0 {
		return 0, fmt.Errorf("%w: step %v, want > 0", ErrInvalidGrid, step)
	}

	span := math.Floor((hi-lo)/step + 1e-9)
	if total := (span + 1) * (span + 1); total > maxGridPoints {
		return 0, fmt.Errorf("%w: %v grid points exceeds %d", ErrInvalidGrid, total, maxGridPoints)
	}
	return int(span) + 1, nil
}

// GenerateDataset scans x and y independently over [lo, hi] and returns
// the Cartesian grid in row-major order (x outer, y inner).
func GenerateDataset(lo, hi, step float64) ([]Sample, error) {
	points, err := axisPoints(lo, hi, step)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, points*points)
	for i := 0; i < points; i++ {
		x := lo + float64(i)*step
		for j := 0; j < points; j++ {
			y := lo + float64(j)*step
			samples = append(samples, Sample{X: x, Y: y, Target: Target(x, y)})
		}
	}
	return samples, nil
}
