package engine

import "github.com/ogarreto/robo-arena/internal/bot"

// BotState is the mutable, match-scoped runtime of one combatant. It
// wraps an immutable definition and is discarded when the match ends; the
// definition's history fields are the only thing that survives.
type BotState struct {
	Def *bot.Bot

	Health   int
	Energy   int
	Position float64

	// One timer per entry of the definition's ability list, plus the
	// global action cooldown gating every action.
	AbilityCooldowns []float64
	ActionCooldown   float64

	Stunned  bool
	Blocking bool

	// Running match totals, accumulated across rounds.
	DamageDealt int
	DamageTaken int
}

// NewBotState builds a fresh runtime state at full health and energy,
// standing at the given arena position.
func NewBotState(def *bot.Bot, position float64) *BotState {
	return &BotState{
		Def:              def,
		Health:           def.Derived.MaxHealth,
		Energy:           def.Derived.MaxEnergy,
		Position:         position,
		AbilityCooldowns: make([]float64, len(def.Abilities)),
	}
}

// ResetForRound refills health and energy at the start of a round.
// Cooldowns, position and match totals deliberately persist across
// rounds within a match.
func (s *BotState) ResetForRound() {
	s.Health = s.Def.Derived.MaxHealth
	s.Energy = s.Def.Derived.MaxEnergy
	s.Blocking = false
}

// HealthRatio returns current health as a fraction of maximum.
func (s *BotState) HealthRatio() float64 {
	if s.Def.Derived.MaxHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.Def.Derived.MaxHealth)
}

// tickCooldowns advances every cooldown timer by one tick, clamping at
// zero. Called exactly once per simulation tick.
func (s *BotState) tickCooldowns(dt float64) {
	if s.ActionCooldown > 0 {
		s.ActionCooldown -= dt
		if s.ActionCooldown < 0 {
			s.ActionCooldown = 0
		}
	}
	for i := range s.AbilityCooldowns {
		if s.AbilityCooldowns[i] > 0 {
			s.AbilityCooldowns[i] -= dt
			if s.AbilityCooldowns[i] < 0 {
				s.AbilityCooldowns[i] = 0
			}
		}
	}
}
