package engine

import "math"

// RoundPhase is the lifecycle state of a round.
type RoundPhase string

const (
	PhaseIdle     RoundPhase = "idle"
	PhaseStarting RoundPhase = "starting"
	PhaseFighting RoundPhase = "fighting"
	PhaseRoundEnd RoundPhase = "round_end"
	PhaseEnded    RoundPhase = "ended"
)

const (
	defendCooldown = 0.5
	moveCooldown   = 0.25
	// Combatants never close to less than this separation.
	minSeparation = 0.5
)

// RoundOutcome is the single result a round produces: a win for one side,
// a timeout decided by remaining health, or a true draw on exact health
// equality at timeout.
type RoundOutcome struct {
	Number   int     `json:"number"`
	Winner   string  `json:"winner,omitempty"`
	Draw     bool    `json:"draw"`
	TimedOut bool    `json:"timed_out"`
	Elapsed  float64 `json:"elapsed"`
}

// Round drives one round of combat between two prepared states. The
// round does not own a clock; an external driver calls Advance with its
// tick interval until an outcome is produced.
type Round struct {
	number    int
	a, b      *BotState
	timeLimit float64
	remaining float64
	phase     RoundPhase
	rc        *matchContext

	lastTickSecond int
}

func newRound(number int, a, b *BotState, timeLimit float64, rc *matchContext) *Round {
	return &Round{
		number:    number,
		a:         a,
		b:         b,
		timeLimit: timeLimit,
		remaining: timeLimit,
		phase:     PhaseIdle,
		rc:        rc,
	}
}

// Phase returns the current lifecycle state.
func (r *Round) Phase() RoundPhase { return r.phase }

// Start refills both combatants for the round and opens the fight.
func (r *Round) Start() {
	r.phase = PhaseStarting
	r.a.ResetForRound()
	r.b.ResetForRound()
	r.rc.emit(Event{Type: EventRoundStarted, Round: r.number, Actor: r.a.Def.Name, Target: r.b.Def.Name})
	r.phase = PhaseFighting
}

// Advance runs one simulation tick and returns the round outcome once
// the round is over, nil while it is still running. Combatant A is
// always evaluated before B within a tick, so A's mutated state is
// visible to B's decision in the same tick; the resulting first-mover
// asymmetry is deliberate.
func (r *Round) Advance(dt float64) *RoundOutcome {
	if r.phase != PhaseFighting {
		return nil
	}

	r.remaining -= dt
	elapsed := r.timeLimit - r.remaining
	if sec := int(elapsed); sec > r.lastTickSecond {
		r.lastTickSecond = sec
		r.rc.emit(Event{Type: EventTimerTick, Round: r.number, Elapsed: elapsed})
	}

	r.a.tickCooldowns(dt)
	r.b.tickCooldowns(dt)

	if out := r.act(r.a, r.b, dt, elapsed); out != nil {
		return out
	}
	if out := r.act(r.b, r.a, dt, elapsed); out != nil {
		return out
	}

	if r.remaining <= 0 {
		return r.timeoutOutcome(elapsed)
	}
	return nil
}

// act evaluates and executes one combatant's turn for this tick. Stunned
// combatants and combatants on action cooldown are a no-op; the decision
// engine is not even invoked for them.
func (r *Round) act(self, opp *BotState, dt, elapsed float64) *RoundOutcome {
	if self.Stunned || self.ActionCooldown > 0 {
		return nil
	}

	d := r.rc.decide(self, opp)
	switch d.Action {
	case ActionAttack:
		r.rc.resolveAttack(r.number, elapsed, self, opp, d.AbilityIndex)
		if opp.Health <= 0 {
			return r.winOutcome(self, elapsed, false)
		}
	case ActionDefend:
		self.Blocking = true
		self.ActionCooldown = defendCooldown
		r.rc.emit(Event{Type: EventActionTaken, Round: r.number, Elapsed: elapsed, Actor: self.Def.Name, Action: string(ActionDefend)})
	case ActionMove:
		r.move(self, opp, d.TowardOpponent)
		self.ActionCooldown = moveCooldown
		r.rc.emit(Event{Type: EventActionTaken, Round: r.number, Elapsed: elapsed, Actor: self.Def.Name, Action: string(ActionMove)})
	}
	return nil
}

// move translates the combatant along the arena axis at a velocity
// derived from its speed attribute, covering one action interval.
func (r *Round) move(self, opp *BotState, toward bool) {
	velocity := 1.0 + float64(self.Def.Attributes.Speed)/20.0
	step := velocity * moveCooldown
	dir := 1.0
	if opp.Position < self.Position {
		dir = -1.0
	}
	if !toward {
		dir = -dir
	}
	next := self.Position + dir*step
	if toward && math.Abs(next-opp.Position) < minSeparation {
		if opp.Position < self.Position {
			next = opp.Position + minSeparation
		} else {
			next = opp.Position - minSeparation
		}
	}
	self.Position = next
}

func (r *Round) winOutcome(winner *BotState, elapsed float64, timedOut bool) *RoundOutcome {
	r.phase = PhaseRoundEnd
	out := &RoundOutcome{Number: r.number, Winner: winner.Def.Name, TimedOut: timedOut, Elapsed: elapsed}
	r.rc.emit(Event{Type: EventRoundWon, Round: r.number, Elapsed: elapsed, Winner: winner.Def.Name})
	r.phase = PhaseEnded
	return out
}

// timeoutOutcome decides an expired round: strictly higher health wins,
// exact equality is a genuine draw.
func (r *Round) timeoutOutcome(elapsed float64) *RoundOutcome {
	switch {
	case r.a.Health > r.b.Health:
		return r.winOutcome(r.a, elapsed, true)
	case r.b.Health > r.a.Health:
		return r.winOutcome(r.b, elapsed, true)
	default:
		r.phase = PhaseRoundEnd
		out := &RoundOutcome{Number: r.number, Draw: true, TimedOut: true, Elapsed: elapsed}
		r.rc.emit(Event{Type: EventRoundDraw, Round: r.number, Elapsed: elapsed})
		r.phase = PhaseEnded
		return out
	}
}
