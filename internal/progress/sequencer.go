package progress

import (
	"context"
	"errors"
	"time"
)

// Step is one timed unit of a simulated operation.
type Step struct {
	Label    string
	Duration time.Duration
	// Percent overrides the cumulative percentage reported once this step's
	// duration elapses. Zero means (completed steps / total steps) * 100.
	Percent float64
}

// EventKind discriminates sequencer events.
type EventKind int

const (
	// EventStep announces a step beginning. Percent carries the cumulative
	// value reached so far.
	EventStep EventKind = iota
	// EventProgress reports a step's duration elapsing.
	EventProgress
	// EventComplete fires exactly once, after the final progress event.
	EventComplete
)

// Event is one observation of a running sequence.
type Event struct {
	Kind    EventKind
	Index   int
	Label   string
	Percent float64
}

// ErrNoSteps is returned when a sequence is started without any steps.
var ErrNoSteps = errors.New("progress: sequence has no steps")

// Run drives steps in order on a new goroutine. The returned channel delivers
// a step event at each step's start, a progress event when its duration
// elapses, and one completion event after the last step; it is closed
// afterwards. Cancelling the returned function (or the parent context) stops
// the sequence immediately and closes the channel without further events.
func Run(ctx context.Context, steps []Step) (<-chan Event, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan Event)

	go func() {
		defer close(events)

		total := len(steps)
		cumulative := 0.0
		for i, step := range steps {
			if !emit(ctx, events, Event{Kind: EventStep, Index: i, Label: step.Label, Percent: cumulative}) {
				return
			}

			timer := time.NewTimer(step.Duration)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			cumulative = stepPercent(step, i+1, total)
			if !emit(ctx, events, Event{Kind: EventProgress, Index: i, Label: step.Label, Percent: cumulative}) {
				return
			}
		}

		emit(ctx, events, Event{Kind: EventComplete, Index: total - 1, Percent: 100})
	}()

	return events, cancel
}

// Drive runs steps to completion, invoking fn for every event. It returns
// ErrNoSteps for an empty sequence and the context error when cancelled
// mid-sequence; fn is never invoked after cancellation.
func Drive(ctx context.Context, steps []Step, fn func(Event)) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}

	events, cancel := Run(ctx, steps)
	defer cancel()

	for event := range events {
		if fn != nil {
			fn(event)
		}
		if event.Kind == EventComplete {
			return nil
		}
	}
	return ctx.Err()
}

func stepPercent(step Step, completed, total int) float64 {
	percent := step.Percent
	if percent == 0 {
		percent = float64(completed) / float64(total) * 100
	}
	if percent > 100 {
		percent = 100
	}
	return percent
}

func emit(ctx context.Context, events chan<- Event, event Event) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- event:
		return true
	}
}
