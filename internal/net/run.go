package net

import (
	"context"
	"errors"
	"time"
)

// Run drives the active run until it ends, waiting interval between steps.
//
// The next tick is armed only after the current step has returned, so a
// slow step delays the schedule instead of queueing ticks. Cancelling ctx
// stops the run.
func (n *Network) Run(ctx context.Context, interval time.Duration) (StepResult, error) {
	if !n.Running() {
		return StepResult{}, ErrNotRunning
	}

	var last StepResult
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			n.Stop()
			last.Running = false
			last.Reason = ReasonStopped
			return last, ctx.Err()
		case <-timer.C:
		}

		res, err := n.Step()
		if errors.Is(err, ErrNotRunning) {
			// Stopped between two ticks
			last.Running = false
			last.Reason = res.Reason
			return last, nil
		}
		if err != nil {
			return last, err
		}

		last = res
		if !res.Running {
			return last, nil
		}
		timer.Reset(interval)
	}
}
