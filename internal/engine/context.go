package engine

import "math/rand"

// matchContext carries the shared randomness source and the event fan-out
// for one match. All random draws of a match go through rc.rng so a
// seeded source makes the whole simulation replayable.
type matchContext struct {
	rng    *rand.Rand
	sinks  []EventSink
	events []Event
}

func newMatchContext(rng *rand.Rand, sinks []EventSink) *matchContext {
	return &matchContext{rng: rng, sinks: sinks, events: make([]Event, 0, 64)}
}

// emit records the event and forwards it to every registered sink.
func (rc *matchContext) emit(ev Event) {
	rc.events = append(rc.events, ev)
	for _, s := range rc.sinks {
		s.Publish(ev)
	}
}
