package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `{
  "server": {"address": ":9090"},
  "match": {"rounds_to_win": 3, "round_time_limit": 90},
  "bot_list": [
    {
      "name": "Vulcan",
      "attributes": {"power": 80, "speed": 40, "defense": 70, "intelligence": 30, "energy": 60, "precision": 50},
      "combat": {"physical_armor": 30, "evasion": 5, "critical_chance": 10, "critical_damage": 150},
      "affinity": {"fire": 60},
      "behavior": {"primary_style": "aggressive", "aggression": 80, "caution": 20, "preferred_distance": 3},
      "abilities": [
        {"name": "Magma Burst", "element": "fire", "base_damage": 40, "energy_cost": 20, "cooldown": 5}
      ]
    },
    {
      "name": "Nimbus",
      "attributes": {"power": 40, "speed": 85, "defense": 30, "intelligence": 70, "energy": 70, "precision": 75},
      "combat": {"evasion": 25, "critical_chance": 20, "critical_damage": 180},
      "affinity": {"wind": 55},
      "behavior": {"primary_style": "evasive", "aggression": 40, "caution": 60, "preferred_distance": 8},
      "abilities": []
    }
  ]
}`

func TestLoadConfigValid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Bots) != 2 {
		t.Fatalf("expected 2 bots, got %d", len(cfg.Bots))
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("server address not honored: %s", cfg.ServerAddress)
	}
	if cfg.Match.RoundsToWin != 3 || cfg.Match.RoundTimeLimit != 90 {
		t.Fatalf("match defaults not honored: %+v", cfg.Match)
	}
	v := cfg.Bots[0]
	if v.Name != "Vulcan" || len(v.Abilities) != 1 {
		t.Fatalf("first roster entry wrong: %+v", v)
	}
	// Derived stats must be computed at load time.
	if v.Derived.MaxHealth != 100+5*70+2*80 {
		t.Fatalf("derived health not computed: %d", v.Derived.MaxHealth)
	}
}

func TestLoadConfigRejectsDuplicateNames(t *testing.T) {
	body := `{"bot_list": [
      {"name": "Echo", "attributes": {}, "behavior": {}, "abilities": []},
      {"name": "echo", "attributes": {}, "behavior": {}, "abilities": []}
    ]}`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatal("duplicate names (case-insensitive) must be rejected")
	}
}

func TestLoadConfigRejectsOutOfRangeAttribute(t *testing.T) {
	body := `{"bot_list": [
      {"name": "Over", "attributes": {"power": 150}, "behavior": {}, "abilities": []}
    ]}`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatal("attribute above 100 must be rejected")
	}
}

func TestLoadConfigRejectsUnknownElement(t *testing.T) {
	body := `{"bot_list": [
      {"name": "Odd", "attributes": {}, "behavior": {}, "abilities": [
        {"name": "Zap", "element": "plasma", "base_damage": 10}
      ]}
    ]}`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatal("unknown ability element must be rejected")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file must produce an error")
	}
}

func TestLoadConfigEmptyRoster(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"bot_list": []}`)); err == nil {
		t.Fatal("empty bot_list must produce an error")
	}
}
