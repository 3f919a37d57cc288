// Package progress drives ordered sequences of labeled, timed steps and
// reports their advancement as a stream of events.
//
// The upload and analysis simulations both run on this sequencer: each step
// announces its label when it begins and its cumulative percentage when its
// duration elapses, followed by a single completion event. Consumers either
// range over the event channel from Run or use the Drive callback adapter.
// Cancelling the context aborts the sequence; no events are emitted after
// cancellation and no partial result is produced.
package progress
