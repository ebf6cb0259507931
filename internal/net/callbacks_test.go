package net

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
)

// recorder counts callback invocations.
type recorder struct {
	begins  int
	steps   int
	epochs  []int
	reasons []StopReason
}

func (r *recorder) OnTrainBegin(n *Network) { r.begins++ }
func (r *recorder) OnTrainEnd(reason StopReason, n *Network) {
	r.reasons = append(r.reasons, reason)
}
func (r *recorder) OnStep(res StepResult, n *Network) { r.steps++ }
func (r *recorder) OnEpochEnd(epoch int, meanError float64, n *Network) {
	r.epochs = append(r.epochs, epoch)
}

func TestCallbacksLifecycle(t *testing.T) {
	rec := &recorder{}
	n := New(rec)
	cfg := testConfig()
	cfg.StopThreshold = 0
	cfg.MaxSteps = 2*169 + 5
	mustStart(t, n, cfg)
	mustStart(t, n, cfg) // no-op, no second begin

	for n.Running() {
		if _, err := n.Step(); err != nil {
			t.Fatal(err)
		}
	}
	n.Stop() // idle, no second end

	if rec.begins != 1 {
		t.Errorf("begins = %d, want 1", rec.begins)
	}
	if rec.steps != cfg.MaxSteps {
		t.Errorf("steps = %d, want %d", rec.steps, cfg.MaxSteps)
	}
	if len(rec.epochs) != 2 || rec.epochs[0] != 1 || rec.epochs[1] != 2 {
		t.Errorf("epochs = %v, want [1 2]", rec.epochs)
	}
	if len(rec.reasons) != 1 || rec.reasons[0] != ReasonMaxSteps {
		t.Errorf("end reasons = %v, want [max steps]", rec.reasons)
	}
}

func TestStopNotifiesCallbacks(t *testing.T) {
	rec := &recorder{}
	n := New(rec)
	mustStart(t, n, testConfig())
	n.Stop()

	if len(rec.reasons) != 1 || rec.reasons[0] != ReasonStopped {
		t.Errorf("end reasons = %v, want [stopped]", rec.reasons)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	n := New(Logger{Interval: 2, Out: &buf})
	cfg := testConfig()
	cfg.StopThreshold = 0
	cfg.MaxSteps = 5
	mustStart(t, n, cfg)
	for n.Running() {
		if _, err := n.Step(); err != nil {
			t.Fatal(err)
		}
	}

	out := buf.String()
	for _, want := range []string{"Step 0,", "Step 2,", "Step 4,", "Training max steps after 5 steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Step 1,") {
		t.Errorf("log contains off-interval step:\n%s", out)
	}
}

func TestParamLogger(t *testing.T) {
	var buf bytes.Buffer
	n := New(ParamLogger{Out: &buf})
	cfg := testConfig()
	cfg.NeuronCount = 3
	mustStart(t, n, cfg)
	n.Stop()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	if lines[1] != "Neuron\tWeight\tCenter\tSpread" {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], "3\t") {
		t.Errorf("last row = %q", lines[4])
	}
}

func TestCSVLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCSVLogger(&buf)
	n := New(logger)
	cfg := testConfig()
	cfg.StopThreshold = 0
	cfg.MaxSteps = 4
	mustStart(t, n, cfg)
	for n.Running() {
		if _, err := n.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if err := logger.Err(); err != nil {
		t.Fatalf("logger error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want header + 4", len(records))
	}
	if strings.Join(records[0], ",") != "step,epoch,error,time_seconds" {
		t.Errorf("header = %v", records[0])
	}

	history := n.History()
	for i, rec := range records[1:] {
		if rec[0] != strconv.Itoa(i) {
			t.Errorf("record %d step = %s", i, rec[0])
		}
		e, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			t.Fatal(err)
		}
		if diff := e - history.Errors[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("record %d error %v, history %v", i, e, history.Errors[i])
		}
	}
}

func TestStopReasonString(t *testing.T) {
	tests := map[StopReason]string{
		ReasonNone:      "none",
		ReasonConverged: "converged",
		ReasonStopped:   "stopped",
		ReasonMaxSteps:  "max steps",
	}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(r), r.String(), want)
		}
	}
}
