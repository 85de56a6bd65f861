package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ogarreto/robo-arena/internal/bot"
	"github.com/ogarreto/robo-arena/internal/engine"
)

type abilityEntry struct {
	Name         string  `json:"name"`
	Element      string  `json:"element"`
	BaseDamage   int     `json:"base_damage"`
	EnergyCost   int     `json:"energy_cost"`
	Cooldown     float64 `json:"cooldown"`
	AreaOfEffect float64 `json:"area_of_effect"`
}

type botEntry struct {
	Name       string                `json:"name"`
	Attributes bot.Attributes        `json:"attributes"`
	Combat     bot.CombatSpec        `json:"combat"`
	Affinity   bot.ElementalAffinity `json:"affinity"`
	Behavior   bot.BehaviorProfile   `json:"behavior"`
	Abilities  []abilityEntry        `json:"abilities"`
}

type rawConfig struct {
	BotList []botEntry `json:"bot_list"`
	Server  *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional match defaults applied when a simulation request does
	// not override them.
	Match *engine.MatchConfig `json:"match"`
}

// LoadedConfig contains the robot roster to seed and the server settings.
type LoadedConfig struct {
	Bots          []bot.Bot
	ServerAddress string
	Match         engine.MatchConfig
}

var validElements = map[bot.Element]struct{}{
	bot.Physical: {}, bot.Water: {}, bot.Fire: {}, bot.Earth: {}, bot.Wind: {},
	bot.Lightning: {}, bot.Nature: {}, bot.Celestial: {}, bot.Shadow: {},
}

func attrInRange(v int) bool { return v >= 0 && v <= 100 }

// LoadConfig reads the configuration file at path and returns the robot
// roster and server settings. It requires the key `bot_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.BotList) == 0 {
		return nil, fmt.Errorf("config file %s: bot_list is empty (provide a 'bot_list' array)", path)
	}

	nameSet := make(map[string]struct{}, len(rc.BotList))
	out := make([]bot.Bot, 0, len(rc.BotList))
	for _, e := range rc.BotList {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("config file %s: bot entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate bot name '%s'", path, e.Name)
		}
		nameSet[ln] = struct{}{}

		attrs := []int{e.Attributes.Power, e.Attributes.Speed, e.Attributes.Defense, e.Attributes.Intelligence, e.Attributes.Energy, e.Attributes.Precision}
		for _, v := range attrs {
			if !attrInRange(v) {
				return nil, fmt.Errorf("config file %s: bot '%s' has an attribute outside 0-100", path, e.Name)
			}
		}

		abilities := make([]bot.Ability, 0, len(e.Abilities))
		for _, a := range e.Abilities {
			if strings.TrimSpace(a.Name) == "" {
				return nil, fmt.Errorf("config file %s: bot '%s' has an ability missing 'name'", path, e.Name)
			}
			el := bot.Element(strings.ToLower(strings.TrimSpace(a.Element)))
			if _, ok := validElements[el]; !ok {
				return nil, fmt.Errorf("config file %s: bot '%s' ability '%s' has unknown element '%s'", path, e.Name, a.Name, a.Element)
			}
			if a.BaseDamage <= 0 {
				return nil, fmt.Errorf("config file %s: bot '%s' ability '%s' must have positive base_damage", path, e.Name, a.Name)
			}
			abilities = append(abilities, bot.Ability{
				Name:         a.Name,
				Element:      el,
				BaseDamage:   a.BaseDamage,
				EnergyCost:   a.EnergyCost,
				Cooldown:     a.Cooldown,
				AreaOfEffect: a.AreaOfEffect,
			})
		}

		rb := bot.Bot{
			Name:       strings.TrimSpace(e.Name),
			Attributes: e.Attributes,
			Combat:     e.Combat,
			Affinity:   e.Affinity,
			Behavior:   e.Behavior,
			Abilities:  abilities,
		}
		rb.RecalcDerived()
		out = append(out, rb)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	match := engine.MatchConfig{}
	if rc.Match != nil {
		match = *rc.Match
	}

	return &LoadedConfig{Bots: out, ServerAddress: addr, Match: match}, nil
}
