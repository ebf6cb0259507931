package net

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GridPoint is one evaluated point of a test grid.
type GridPoint struct {
	Index  int
	X, Y   float64
	Output float64
	Target float64
}

// GridReport is the network compared against the target over a grid.
type GridReport struct {
	Points      []GridPoint
	RMSE        float64
	MaxAbsError float64
}

// EvaluateGrid applies the network and the target function to every point
// of the [lo, hi] grid at step, in the same order as GenerateDataset.
// It works on a snapshot, so a run may keep stepping meanwhile.
func (n *Network) EvaluateGrid(lo, hi, step float64) (GridReport, error) {
	model, err := n.snapshot()
	if err != nil {
		return GridReport{}, err
	}

	samples, err := GenerateDataset(lo, hi, step)
	if err != nil {
		return GridReport{}, err
	}

	points := make([]GridPoint, len(samples))
	outputs := make([]float64, len(samples))
	targets := make([]float64, len(samples))
	for i, s := range samples {
		out := model.Forward(s.X, s.Y)
		points[i] = GridPoint{Index: i, X: s.X, Y: s.Y, Output: out, Target: s.Target}
		outputs[i] = out
		targets[i] = s.Target
	}

	var diff mat.VecDense
	diff.SubVec(mat.NewVecDense(len(outputs), outputs), mat.NewVecDense(len(targets), targets))

	return GridReport{
		Points:      points,
		RMSE:        mat.Norm(&diff, 2) / math.Sqrt(float64(len(points))),
		MaxAbsError: mat.Norm(&diff, math.Inf(1)),
	}, nil
}

// CheckGradients compares the analytic gradients at s with central finite
// differences and returns the largest absolute difference over all
// parameters.
func (n *Network) CheckGradients(s Sample) (float64, error) {
	model, err := n.snapshot()
	if err != nil {
		return 0, err
	}

	gw, gs, gc := model.Gradients(s.X, s.Y, s.Target)
	analytic := [][]float64{gw, gs, gc}
	nw, ns, nc := model.NumericalGradients(s.X, s.Y, s.Target)
	numeric := [][]float64{nw, ns, nc}

	worst := 0.0
	for k := range analytic {
		for i := range analytic[k] {
			worst = math.Max(worst, math.Abs(analytic[k][i]-numeric[k][i]))
		}
	}
	return worst, nil
}
