package engine

import (
	"math/rand"
	"testing"

	"github.com/ogarreto/robo-arena/internal/bot"
)

func strongVsWeak() (*bot.Bot, *bot.Bot) {
	strong := &bot.Bot{
		Name:       "crusher",
		Attributes: bot.Attributes{Power: 100, Speed: 80, Defense: 60, Intelligence: 50, Energy: 50},
		Behavior:   bot.BehaviorProfile{PrimaryStyle: bot.StyleAggressive, Aggression: 100, Caution: 0, PreferredDistance: 10},
		Abilities:  []bot.Ability{},
	}
	weak := &bot.Bot{
		Name:       "scrappy",
		Attributes: bot.Attributes{Power: 5, Speed: 10, Defense: 5, Intelligence: 10, Energy: 10},
		Behavior:   bot.BehaviorProfile{PrimaryStyle: bot.StyleBalanced, Aggression: 20, Caution: 20, PreferredDistance: 10},
		Abilities:  []bot.Ability{},
	}
	strong.RecalcDerived()
	weak.RecalcDerived()
	return strong, weak
}

func TestNewMatch_FailsFastOnIncompleteBot(t *testing.T) {
	strong, _ := strongVsWeak()
	if _, err := NewMatch(strong, nil, MatchConfig{}, nil); err != ErrIncompleteBot {
		t.Fatalf("expected ErrIncompleteBot for nil definition, got %v", err)
	}
	noAbilities := &bot.Bot{Name: "hollow"}
	noAbilities.RecalcDerived()
	if _, err := NewMatch(strong, noAbilities, MatchConfig{}, nil); err != ErrIncompleteBot {
		t.Fatalf("expected ErrIncompleteBot for nil ability list, got %v", err)
	}
}

func TestMatch_EndsAtThresholdWithOneWinner(t *testing.T) {
	strong, weak := strongVsWeak()
	m, err := NewMatch(strong, weak, MatchConfig{RoundsToWin: 2, RoundTimeLimit: 120, TickInterval: 0.1}, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := m.Run()

	if res.WinnerName != "crusher" {
		t.Fatalf("expected crusher to win, got %s", res.WinnerName)
	}
	if res.WinnerRounds < 2 {
		t.Fatalf("winner rounds %d must reach the threshold", res.WinnerRounds)
	}
	if res.LoserRounds >= 2 {
		t.Fatalf("loser rounds %d must stay below the threshold", res.LoserRounds)
	}
	if res.RoundsFought != 2 {
		t.Fatalf("a 2-0 sweep must end after round 2, fought %d", res.RoundsFought)
	}
	if res.WinnerName == res.LoserName {
		t.Fatalf("winner and loser must differ")
	}
	if res.MatchID == "" {
		t.Fatalf("match id must be set")
	}
}

func TestMatch_HonorsLargeRoundThreshold(t *testing.T) {
	strong, weak := strongVsWeak()
	m, err := NewMatch(strong, weak, MatchConfig{RoundsToWin: 30, RoundTimeLimit: 120, TickInterval: 0.1}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := m.Run()

	if res.WinnerName != "crusher" {
		t.Fatalf("expected crusher to win, got %s", res.WinnerName)
	}
	if res.WinnerRounds < 30 {
		t.Fatalf("winner rounds %d must reach the configured threshold of 30", res.WinnerRounds)
	}
	if res.RoundsFought < 30 {
		t.Fatalf("a best-of-30 sweep needs at least 30 rounds, fought %d", res.RoundsFought)
	}
}

func TestMatch_DrawCapBreaksLivelock(t *testing.T) {
	mk := func(name string) *bot.Bot {
		b := &bot.Bot{
			Name:       name,
			Attributes: bot.Attributes{Power: 50, Speed: 50, Defense: 50, Intelligence: 50, Energy: 50},
			Behavior:   bot.BehaviorProfile{PrimaryStyle: bot.StyleBalanced, Aggression: 50, Caution: 50, PreferredDistance: 5},
			Abilities:  []bot.Ability{},
		}
		b.RecalcDerived()
		return b
	}
	m, err := NewMatch(mk("alpha"), mk("beta"), MatchConfig{RoundsToWin: 2, RoundTimeLimit: 1, TickInterval: 0.5}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Stunned combatants never act, so every round times out at equal
	// health and draws.
	m.a.Stunned = true
	m.b.Stunned = true
	res := m.Run()

	if res.RoundsFought != maxDrawnRounds {
		t.Fatalf("expected the draw cap to end the match after %d rounds, fought %d", maxDrawnRounds, res.RoundsFought)
	}
	for _, out := range res.Outcomes {
		if !out.Draw {
			t.Fatalf("round %d should have drawn: %+v", out.Number, out)
		}
	}
	if res.WinnerName != "alpha" {
		t.Fatalf("full equality at the draw cap must fall to side A, got %s", res.WinnerName)
	}
	if res.WinnerRounds != 0 || res.LoserRounds != 0 {
		t.Fatalf("drawn rounds must count for neither side: %d-%d", res.WinnerRounds, res.LoserRounds)
	}
}

func TestMatch_DrawCapPrefersRoundWinLeader(t *testing.T) {
	strong, weak := strongVsWeak()
	a, b := NewBotState(strong, 0), NewBotState(weak, startSeparation)

	// Round wins outrank cumulative damage at the draw cap.
	a.DamageDealt, b.DamageDealt = 900, 10
	if !cappedLeaderIsB(a, b, 1, 2) {
		t.Fatalf("the round-win leader must beat the damage leader at the cap")
	}
	if cappedLeaderIsB(a, b, 2, 1) {
		t.Fatalf("side A leading on round wins must keep the match")
	}

	// Equal round wins fall back to damage.
	if cappedLeaderIsB(a, b, 1, 1) {
		t.Fatalf("at equal round wins the damage leader (A) must take the match")
	}
	b.DamageDealt = 1000
	if !cappedLeaderIsB(a, b, 1, 1) {
		t.Fatalf("at equal round wins the damage leader (B) must take the match")
	}

	// Full equality falls to side A.
	b.DamageDealt = a.DamageDealt
	if cappedLeaderIsB(a, b, 0, 0) {
		t.Fatalf("full equality at the cap must fall to side A")
	}
}

func TestMatch_NeverDrawsAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		strong, weak := strongVsWeak()
		m, err := NewMatch(strong, weak, MatchConfig{RoundsToWin: 2, RoundTimeLimit: 30}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := m.Run()
		if res.WinnerName == "" || res.WinnerName == res.LoserName {
			t.Fatalf("seed %d: match must yield exactly one winner, got %+v", seed, res)
		}
	}
}

func TestMatch_ReplayableWithSameSeed(t *testing.T) {
	run := func() *MatchResult {
		a, b := strongVsWeak()
		m, err := NewMatch(a, b, MatchConfig{RoundsToWin: 2, RoundTimeLimit: 60}, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return m.Run()
	}
	r1, r2 := run(), run()
	if r1.WinnerName != r2.WinnerName || r1.RoundsFought != r2.RoundsFought ||
		r1.WinnerDamage != r2.WinnerDamage || r1.LoserDamage != r2.LoserDamage ||
		len(r1.Events) != len(r2.Events) {
		t.Fatalf("same seed must replay identically:\n%+v\n%+v", r1, r2)
	}
}

func TestMatch_DoesNotTouchHistories(t *testing.T) {
	strong, weak := strongVsWeak()
	strong.History.RankingPoints = 500
	m, err := NewMatch(strong, weak, MatchConfig{RoundsToWin: 1, RoundTimeLimit: 60}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Run()
	if strong.History.RankingPoints != 500 || strong.History.TotalBattles != 0 || weak.History.TotalBattles != 0 {
		t.Fatalf("the match itself must never mutate battle histories")
	}
}

func TestMatch_EventsReachSinks(t *testing.T) {
	strong, weak := strongVsWeak()
	log := &EventLog{}
	m, err := NewMatch(strong, weak, MatchConfig{RoundsToWin: 1, RoundTimeLimit: 60}, rand.New(rand.NewSource(9)), log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := m.Run()

	if len(log.Events()) != len(res.Events) {
		t.Fatalf("sink saw %d events, result recorded %d", len(log.Events()), len(res.Events))
	}
	var started, finished bool
	for _, ev := range res.Events {
		switch ev.Type {
		case EventRoundStarted:
			started = true
		case EventMatchFinished:
			finished = true
		}
	}
	if !started || !finished {
		t.Fatalf("expected round_started and match_finished events")
	}
}
