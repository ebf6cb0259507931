package net

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestGenerateDatasetSize(t *testing.T) {
	tests := []struct {
		step     float64
		expected int
	}{
		{0.5, 13 * 13},
		{0.6, 11 * 11},
		{1.0, 7 * 7},
		{0.1, 61 * 61},
		{6.0, 2 * 2},
		{10.0, 1},
	}

	for _, tt := range tests {
		samples, err := GenerateDataset(GridMin, GridMax, tt.step)
		if err != nil {
			t.Fatalf("step %v: %v", tt.step, err)
		}
		if len(samples) != tt.expected {
			t.Errorf("step %v: %d samples, want %d", tt.step, len(samples), tt.expected)
		}
	}
}

func TestGenerateDatasetOrder(t *testing.T) {
	samples, err := GenerateDataset(GridMin, GridMax, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	// Row-major: x outer, y inner
	checks := []struct {
		index int
		x, y  float64
	}{
		{0, -3, -3},
		{1, -3, -2.5},
		{12, -3, 3},
		{13, -2.5, -3},
		{84, 0, 0},
		{168, 3, 3},
	}
	for _, c := range checks {
		s := samples[c.index]
		if s.X != c.x || s.Y != c.y {
			t.Errorf("samples[%d] = (%v, %v), want (%v, %v)", c.index, s.X, s.Y, c.x, c.y)
		}
	}
}

func TestGenerateDatasetTargetsFinite(t *testing.T) {
	for _, step := range []float64{0.5, 0.1, 0.25} {
		samples, err := GenerateDataset(GridMin, GridMax, step)
		if err != nil {
			t.Fatal(err)
		}

		targets := make([]float64, len(samples))
		for i, s := range samples {
			if math.IsNaN(s.Target) || math.IsInf(s.Target, 0) {
				t.Fatalf("step %v: sample %d (%v, %v) has target %v", step, i, s.X, s.Y, s.Target)
			}
			targets[i] = s.Target
		}

		// Both factors stay positive inside (-pi, pi)
		if max := floats.Max(targets); max > 1 {
			t.Errorf("step %v: max target %v > 1", step, max)
		}
		if min := floats.Min(targets); min <= 0 {
			t.Errorf("step %v: min target %v <= 0", step, min)
		}
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		x, y     float64
		expected float64
	}{
		{0, 0, 1},
		{math.Pi, 0, 0},
		{1, 1, math.Sin(1) * math.Sin(1)},
		{-2, 0.5, (math.Sin(-2) / -2) * (math.Sin(0.5) / 0.5)},
	}

	for _, tt := range tests {
		if got := Target(tt.x, tt.y); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Target(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestGenerateDatasetInvalid(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi, step float64
	}{
		{"zero step", -3, 3, 0},
		{"negative step", -3, 3, -0.5},
		{"nan step", -3, 3, math.NaN()},
		{"inverted bounds", 3, -3, 0.5},
		{"infinite bound", math.Inf(-1), 3, 0.5},
		{"too many points", -3, 3, 1e-6},
		{"too many points in total", -3, 3, 0.005},
		{"one past the cap", 0, 1000, 1},
	}

	for _, tt := range tests {
		_, err := GenerateDataset(tt.lo, tt.hi, tt.step)
		if !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("%s: error = %v, want ErrInvalidGrid", tt.name, err)
		}
	}
}

func TestGenerateDatasetTotalPointCap(t *testing.T) {
	tests := []struct {
		lo, hi, step float64
		expected     int
	}{
		{GridMin, GridMax, 0.01, 601 * 601},
		{0, 999, 1, maxGridPoints},
	}

	for _, tt := range tests {
		samples, err := GenerateDataset(tt.lo, tt.hi, tt.step)
		if err != nil {
			t.Fatalf("[%v, %v] step %v: %v", tt.lo, tt.hi, tt.step, err)
		}
		if len(samples) != tt.expected {
			t.Errorf("[%v, %v] step %v: %d samples, want %d", tt.lo, tt.hi, tt.step, len(samples), tt.expected)
		}
	}

	n := New()
	mustStart(t, n, testConfig())
	if _, err := n.EvaluateGrid(GridMin, GridMax, 0.005); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("EvaluateGrid error = %v, want ErrInvalidGrid", err)
	}
}
