package bot

import (
	"gorm.io/gorm"
)

// FightingStyle selects the aggression model used by the decision engine.
type FightingStyle string

const (
	StyleBalanced   FightingStyle = "balanced"
	StyleAggressive FightingStyle = "aggressive"
	StyleDefensive  FightingStyle = "defensive"
	StyleTank       FightingStyle = "tank"
	StyleBerserker  FightingStyle = "berserker"
	StyleAssassin   FightingStyle = "assassin"
	StyleEvasive    FightingStyle = "evasive"
	StyleTactical   FightingStyle = "tactical"
)

// RankTier is a named band derived from accumulated ranking points.
type RankTier string

const (
	TierBronze   RankTier = "bronze"
	TierSilver   RankTier = "silver"
	TierGold     RankTier = "gold"
	TierPlatinum RankTier = "platinum"
	TierDiamond  RankTier = "diamond"
	TierChampion RankTier = "champion"
	TierLegend   RankTier = "legend"
)

// Attributes are the six core stats of a robot, each scaled 0-100.
type Attributes struct {
	Power        int `json:"power"`
	Speed        int `json:"speed"`
	Defense      int `json:"defense"`
	Intelligence int `json:"intelligence"`
	Energy       int `json:"energy"`
	Precision    int `json:"precision"`
}

// Derived holds stats recomputed deterministically from the core
// attributes. They are never persisted; attributes are the source of
// truth and RecalcDerived rebuilds them after every attribute change.
type Derived struct {
	MaxHealth    int     `json:"max_health"`
	MaxEnergy    int     `json:"max_energy"`
	ReactionTime float64 `json:"reaction_time"`
}

// CombatSpec describes a robot's combat specialization. Armor, shielding,
// evasion and the critical values are percentages (0-100); CriticalDamage
// is the percent multiplier applied on a critical hit (e.g. 150 = x1.5).
type CombatSpec struct {
	MeleeAffinity  int     `json:"melee_affinity"`
	RangedAffinity int     `json:"ranged_affinity"`
	MagicAffinity  int     `json:"magic_affinity"`
	PhysicalArmor  float64 `json:"physical_armor"`
	EnergyShield   float64 `json:"energy_shield"`
	Evasion        float64 `json:"evasion"`
	CriticalChance float64 `json:"critical_chance"`
	CriticalDamage float64 `json:"critical_damage"`
}

// BehaviorProfile drives the per-tick AI policy.
type BehaviorProfile struct {
	PrimaryStyle      FightingStyle `json:"primary_style"`
	SecondaryStyle    FightingStyle `json:"secondary_style"`
	Aggression        int           `json:"aggression"`
	Caution           int           `json:"caution"`
	Adaptability      int           `json:"adaptability"`
	PreferredDistance float64       `json:"preferred_distance"`
	ComboTendency     int           `json:"combo_tendency"`
	SpecialTendency   int           `json:"special_tendency"`
}

// Ability is one entry of a robot's ability list. Cooldown is in seconds
// of simulation time; AreaOfEffect is a radius in arena units (0 = single
// target).
type Ability struct {
	gorm.Model
	BotID        uint    `json:"-"`
	Name         string  `json:"name"`
	Element      Element `json:"element"`
	BaseDamage   int     `json:"base_damage"`
	EnergyCost   int     `json:"energy_cost"`
	Cooldown     float64 `json:"cooldown"`
	AreaOfEffect float64 `json:"area_of_effect"`
}

// BattleHistory is the persistent skill record mutated exactly once per
// completed match by the ranking updater.
type BattleHistory struct {
	TotalBattles     int      `json:"total_battles"`
	Wins             int      `json:"wins"`
	Losses           int      `json:"losses"`
	WinStreak        int      `json:"win_streak"`
	LongestWinStreak int      `json:"longest_win_streak"`
	RankingPoints    int      `json:"ranking_points"`
	RankTier         RankTier `json:"rank_tier"`
}

// Bot is a complete robot definition: identity, stats, behavior, ability
// list and persistent battle history. The definition is immutable during
// a match; only the ranking updater touches the history fields.
type Bot struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`

	Attributes Attributes `json:"attributes" gorm:"embedded"`
	// Derived stats are rebuilt from attributes on load and after bonus
	// application; they are intentionally not persisted.
	Derived Derived `json:"derived" gorm:"-"`

	Combat   CombatSpec        `json:"combat" gorm:"embedded;embeddedPrefix:combat_"`
	Affinity ElementalAffinity `json:"affinity" gorm:"embedded;embeddedPrefix:affinity_"`
	Behavior BehaviorProfile   `json:"behavior" gorm:"embedded;embeddedPrefix:behavior_"`

	Abilities []Ability `json:"abilities"`

	History BattleHistory `json:"history" gorm:"embedded;embeddedPrefix:history_"`
}

// TableName overrides the default GORM table name so the persisted table
// is `robots` instead of the default `bots`.
func (Bot) TableName() string { return "robots" }

// AfterFind rebuilds derived stats whenever a robot is loaded, so callers
// never see a definition with stale or zero MaxHealth/MaxEnergy.
func (b *Bot) AfterFind(tx *gorm.DB) error {
	b.RecalcDerived()
	return nil
}
