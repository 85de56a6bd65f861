package engine

// EventType labels a simulation notification.
type EventType string

const (
	EventRoundStarted  EventType = "round_started"
	EventRoundWon      EventType = "round_won"
	EventRoundDraw     EventType = "round_draw"
	EventActionTaken   EventType = "action_taken"
	EventAbilityUsed   EventType = "ability_used"
	EventDamageDealt   EventType = "damage_dealt"
	EventTimerTick     EventType = "timer_tick"
	EventMatchFinished EventType = "match_finished"
)

// Event is one simulation notification for a presentation layer. The
// simulation never depends on anyone listening.
type Event struct {
	Type     EventType `json:"type"`
	Round    int       `json:"round"`
	Elapsed  float64   `json:"elapsed"`
	Actor    string    `json:"actor,omitempty"`
	Target   string    `json:"target,omitempty"`
	Action   string    `json:"action,omitempty"`
	Ability  string    `json:"ability,omitempty"`
	Damage   int       `json:"damage,omitempty"`
	Blocked  bool      `json:"blocked,omitempty"`
	Evaded   bool      `json:"evaded,omitempty"`
	Critical bool      `json:"critical,omitempty"`
	Winner   string    `json:"winner,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}

// EventSink receives simulation events as they happen.
type EventSink interface {
	Publish(Event)
}

// SinkFunc adapts a plain function to the EventSink interface.
type SinkFunc func(Event)

// Publish implements EventSink.
func (f SinkFunc) Publish(ev Event) { f(ev) }

// EventLog is an EventSink that records everything it receives.
type EventLog struct {
	events []Event
}

// Publish implements EventSink.
func (l *EventLog) Publish(ev Event) { l.events = append(l.events, ev) }

// Events returns the recorded events in arrival order.
func (l *EventLog) Events() []Event { return l.events }
