package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ogarreto/robo-arena/internal/bot"
)

// ErrIncompleteBot is returned when a definition passed to NewMatch is
// nil or structurally unusable. This is a programmer error on the
// caller's side; no partial match is started.
var ErrIncompleteBot = errors.New("bot definition is nil or incomplete")

const (
	// Starting separation of the two combatants on the arena axis.
	startSeparation = 8.0
	// Hard cap on drawn rounds. Decisive rounds always move a tally
	// toward the threshold, so only repeated exact-tie draws could keep
	// a best-of-N match running forever; past the cap the match is
	// decided by round wins, then by cumulative damage dealt.
	maxDrawnRounds = 25
)

// MatchConfig parameterizes a best-of-N match.
type MatchConfig struct {
	RoundsToWin    int     `json:"rounds_to_win"`
	RoundTimeLimit float64 `json:"round_time_limit"`
	TickInterval   float64 `json:"tick_interval"`
}

func (c MatchConfig) withDefaults() MatchConfig {
	if c.RoundsToWin <= 0 {
		c.RoundsToWin = 2
	}
	if c.RoundTimeLimit <= 0 {
		c.RoundTimeLimit = 60
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 0.1
	}
	return c
}

// MatchResult is the final product of a match: exactly one winner, the
// round tally, aggregate damage, duration and the full event log. The
// two definitions are returned so a persistence layer can store their
// mutated histories after the ranking update.
type MatchResult struct {
	MatchID      string         `json:"match_id"`
	Winner       *bot.Bot       `json:"-"`
	Loser        *bot.Bot       `json:"-"`
	WinnerName   string         `json:"winner"`
	LoserName    string         `json:"loser"`
	WinnerRounds int            `json:"winner_rounds"`
	LoserRounds  int            `json:"loser_rounds"`
	RoundsFought int            `json:"rounds_fought"`
	WinnerDamage int            `json:"winner_damage"`
	LoserDamage  int            `json:"loser_damage"`
	Duration     float64        `json:"duration"`
	Outcomes     []RoundOutcome `json:"outcomes"`
	Events       []Event        `json:"events"`
}

// Match orchestrates a best-of-N round sequence between two definitions.
// It owns fresh combat states for both sides; the definitions themselves
// are never mutated here.
type Match struct {
	cfg  MatchConfig
	rc   *matchContext
	a, b *BotState
}

// NewMatch wraps the two definitions into fresh combat states. The
// randomness source drives every weighted-action sample and combat roll;
// pass a seeded source for replayable simulations, or nil for a
// time-seeded one. Incomplete definitions fail fast with
// ErrIncompleteBot.
func NewMatch(defA, defB *bot.Bot, cfg MatchConfig, rng *rand.Rand, sinks ...EventSink) (*Match, error) {
	if defA != nil {
		defA.RecalcDerived()
	}
	if defB != nil {
		defB.RecalcDerived()
	}
	if !defA.Complete() || !defB.Complete() {
		return nil, ErrIncompleteBot
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Match{
		cfg: cfg.withDefaults(),
		rc:  newMatchContext(rng, sinks),
		a:   NewBotState(defA, 0),
		b:   NewBotState(defB, startSeparation),
	}, nil
}

// Run fights rounds until one side reaches the round-win threshold and
// returns the result. Round draws increment neither tally; the match
// simply continues. Run never returns a match-level draw.
func (m *Match) Run() *MatchResult {
	cfg := m.cfg
	var (
		winsA, winsB int
		fought       int
		draws        int
		duration     float64
		outcomes     []RoundOutcome
	)

	for winsA < cfg.RoundsToWin && winsB < cfg.RoundsToWin && draws < maxDrawnRounds {
		fought++
		round := newRound(fought, m.a, m.b, cfg.RoundTimeLimit, m.rc)
		round.Start()

		var out *RoundOutcome
		for out == nil {
			out = round.Advance(cfg.TickInterval)
		}
		outcomes = append(outcomes, *out)
		duration += out.Elapsed

		switch out.Winner {
		case m.a.Def.Name:
			winsA++
		case m.b.Def.Name:
			winsB++
		default:
			draws++
		}
	}

	winner, loser := m.a, m.b
	winnerRounds, loserRounds := winsA, winsB
	switch {
	case winsA >= cfg.RoundsToWin:
		// already ordered
	case winsB >= cfg.RoundsToWin:
		winner, loser = m.b, m.a
		winnerRounds, loserRounds = winsB, winsA
	case cappedLeaderIsB(m.a, m.b, winsA, winsB):
		winner, loser = m.b, m.a
		winnerRounds, loserRounds = winsB, winsA
	}

	result := &MatchResult{
		MatchID:      uuid.NewString(),
		Winner:       winner.Def,
		Loser:        loser.Def,
		WinnerName:   winner.Def.Name,
		LoserName:    loser.Def.Name,
		WinnerRounds: winnerRounds,
		LoserRounds:  loserRounds,
		RoundsFought: fought,
		WinnerDamage: winner.DamageDealt,
		LoserDamage:  loser.DamageDealt,
		Duration:     duration,
		Outcomes:     outcomes,
	}
	m.rc.emit(Event{Type: EventMatchFinished, Round: fought, Winner: result.WinnerName, Detail: result.MatchID})
	result.Events = m.rc.events
	return result
}

// cappedLeaderIsB decides a match that hit the draw cap with neither side
// at the threshold: the round-win leader takes it, then higher cumulative
// damage, side A on full equality.
func cappedLeaderIsB(a, b *BotState, winsA, winsB int) bool {
	if winsB != winsA {
		return winsB > winsA
	}
	return b.DamageDealt > a.DamageDealt
}
