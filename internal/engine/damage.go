package engine

import (
	"math"

	"github.com/ogarreto/robo-arena/internal/bot"
)

// exploitThreshold is the defender affinity value above which an
// attacking element deals bonus damage.
const exploitThreshold = 20

// elementalMultiplier returns the damage multiplier for an ability
// element against the defender's affinity vector.
func elementalMultiplier(element bot.Element, defender *bot.Bot) float64 {
	axis, ok := bot.Exploits(element)
	if !ok {
		return 1.0
	}
	if defender.Affinity.Value(axis) > exploitThreshold {
		return 1.5
	}
	return 1.0
}

// resolveAttack computes and applies the damage of one attack. The
// ability index selects an entry of the attacker's ability list, or
// BasicAttack. Deterministic given fixed random draws; the returned
// applied damage is always >= 0.
//
// Post-modifiers run in fixed order: block, then the evasion roll, then
// the critical roll. The critical roll is always drawn so the two rolls
// stay independent; a fully evaded hit is zero regardless of it.
func (rc *matchContext) resolveAttack(round int, elapsed float64, attacker, defender *BotState, abilityIndex int) int {
	var ability *bot.Ability
	if abilityIndex != BasicAttack {
		ability = &attacker.Def.Abilities[abilityIndex]
	}

	var damage int
	if ability == nil {
		raw := float64(attacker.Def.Attributes.Power) * 0.5 * (1.0 - defender.Def.Combat.PhysicalArmor/100.0)
		damage = int(math.Floor(raw))
	} else {
		base := float64(ability.BaseDamage) * (1.0 + float64(attacker.Def.Attributes.Power)/200.0)
		mult := elementalMultiplier(ability.Element, defender.Def)
		defense := defender.Def.Combat.EnergyShield / 100.0
		if ability.Element == bot.Physical {
			defense = defender.Def.Combat.PhysicalArmor / 100.0
		}
		damage = int(math.Floor(base * mult * (1.0 - defense)))
	}
	if damage < 1 {
		damage = 1
	}

	final := float64(damage)
	blocked := false
	if defender.Blocking {
		final *= 0.3
		defender.Blocking = false
		blocked = true
	}
	evaded := rc.rng.Float64()*100.0 < defender.Def.Combat.Evasion
	if evaded {
		final = 0
	}
	critical := rc.rng.Float64()*100.0 < attacker.Def.Combat.CriticalChance
	if critical {
		final *= attacker.Def.Combat.CriticalDamage / 100.0
	}
	applied := int(math.Floor(final))
	if applied < 0 {
		applied = 0
	}

	defender.Health -= applied
	if defender.Health < 0 {
		defender.Health = 0
	}
	attacker.DamageDealt += applied
	defender.DamageTaken += applied

	// Faster robots recover their next action sooner.
	speed := attacker.Def.Attributes.Speed
	if speed < 1 {
		speed = 1
	}
	attacker.ActionCooldown = 1.0 / (float64(speed) / 50.0)

	ev := Event{
		Type:    EventDamageDealt,
		Round:   round,
		Elapsed: elapsed,
		Actor:   attacker.Def.Name,
		Target:  defender.Def.Name,
		Action:  string(ActionAttack),
		Damage:  applied,
		Blocked: blocked, Evaded: evaded, Critical: critical,
	}
	if ability != nil {
		attacker.Energy -= ability.EnergyCost
		if attacker.Energy < 0 {
			attacker.Energy = 0
		}
		attacker.AbilityCooldowns[abilityIndex] = ability.Cooldown
		ev.Ability = ability.Name
		rc.emit(Event{Type: EventAbilityUsed, Round: round, Elapsed: elapsed, Actor: attacker.Def.Name, Target: defender.Def.Name, Ability: ability.Name})
	}
	rc.emit(ev)
	return applied
}
