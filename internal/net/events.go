package net

type eventKind int

const (
	eventBegin eventKind = iota
	eventStep
	eventEpoch
	eventEnd
)

// event is one pending callback notification.
type event struct {
	kind   eventKind
	res    StepResult
	reason StopReason
}

// enqueueLocked records a notification in state-change order.
// n.mu must be held.
func (n *Network) enqueueLocked(ev event) {
	if len(n.callbacks) > 0 {
		n.pending = append(n.pending, ev)
	}
}

// dispatch delivers pending notifications outside the state lock.
//
// Only one goroutine delivers at a time. A caller that finds delivery in
// progress returns at once and its events are drained by the active
// dispatcher, so callbacks never run concurrently and may call back into
// the network.
func (n *Network) dispatch() {
	n.mu.Lock()
	if n.dispatching {
		n.mu.Unlock()
		return
	}
	n.dispatching = true
	for len(n.pending) > 0 {
		ev := n.pending[0]
		n.pending = n.pending[1:]
		cbs := n.callbacks
		n.mu.Unlock()

		for _, cb := range cbs {
			switch ev.kind {
			case eventBegin:
				cb.OnTrainBegin(n)
			case eventStep:
				cb.OnStep(ev.res, n)
			case eventEpoch:
				cb.OnEpochEnd(ev.res.Epoch, ev.res.MeanError, n)
			case eventEnd:
				cb.OnTrainEnd(ev.reason, n)
			}
		}

		n.mu.Lock()
	}
	n.pending = nil
	n.dispatching = false
	n.mu.Unlock()
}
