package engine

import (
	"math"

	"github.com/ogarreto/robo-arena/internal/bot"
)

// ActionKind is the AI policy's choice for one tick.
type ActionKind string

const (
	ActionAttack ActionKind = "attack"
	ActionDefend ActionKind = "defend"
	ActionMove   ActionKind = "move"
)

// BasicAttack marks a decision that uses the built-in basic attack
// instead of an entry of the ability list.
const BasicAttack = -1

// Decision is the outcome of one policy evaluation.
type Decision struct {
	Action ActionKind
	// AbilityIndex is the index into the ability list, or BasicAttack.
	AbilityIndex int
	// TowardOpponent gives the movement direction for ActionMove.
	TowardOpponent bool
}

// aggressionModifier maps the primary fighting style to the multiplier
// applied to the behavior profile's aggression. Berserker ramps up as its
// own health drops; Assassin commits once the opponent is nearly down.
func aggressionModifier(style bot.FightingStyle, selfHealth, oppHealth float64) float64 {
	switch style {
	case bot.StyleAggressive:
		return 1.5
	case bot.StyleBerserker:
		return 2.0 - selfHealth
	case bot.StyleDefensive:
		return 0.5
	case bot.StyleTank:
		return 0.7
	case bot.StyleAssassin:
		if oppHealth < 0.3 {
			return 2.0
		}
		return 0.8
	case bot.StyleEvasive:
		return 0.6
	default:
		return 1.0
	}
}

// decide scores the candidate actions for one combatant against its
// opponent and samples one. Sampling is weighted-random rather than
// argmax: near-ties intentionally yield varied play.
func (rc *matchContext) decide(self, opp *BotState) Decision {
	profile := self.Def.Behavior
	selfHealth := self.HealthRatio()
	oppHealth := opp.HealthRatio()
	distance := math.Abs(self.Position - opp.Position)

	mod := aggressionModifier(profile.PrimaryStyle, selfHealth, oppHealth)
	effAggression := (float64(profile.Aggression) / 100.0) * mod
	effCaution := (float64(profile.Caution) / 100.0) / mod

	attackScore := effAggression * (1.0 - effCaution*(1.0-selfHealth))
	if attackScore < 0 {
		attackScore = 0
	}
	defendScore := effCaution * (1.0 - selfHealth)

	moveScore := 0.3
	toward := true
	if distance > profile.PreferredDistance {
		moveScore += 0.3
	} else if distance < profile.PreferredDistance/2.0 {
		moveScore += 0.2
		toward = false
	}

	total := attackScore + defendScore + moveScore
	roll := rc.rng.Float64() * total
	switch {
	case roll < attackScore:
		return Decision{Action: ActionAttack, AbilityIndex: pickAbility(self)}
	case roll < attackScore+defendScore:
		return Decision{Action: ActionDefend, AbilityIndex: BasicAttack}
	default:
		return Decision{Action: ActionMove, AbilityIndex: BasicAttack, TowardOpponent: toward}
	}
}

// pickAbility returns the first ability (definition order) that is both
// affordable and off cooldown, or BasicAttack when none qualifies. An
// empty ability list always falls back to the basic attack; that is
// ordinary control flow, not an error.
func pickAbility(s *BotState) int {
	for i := range s.Def.Abilities {
		if s.Def.Abilities[i].EnergyCost <= s.Energy && s.AbilityCooldowns[i] <= 0 {
			return i
		}
	}
	return BasicAttack
}
