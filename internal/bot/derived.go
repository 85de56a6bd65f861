package bot

// clampAttr keeps a core attribute inside the 0-100 scale.
func clampAttr(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// RecalcDerived rebuilds the derived stats from the core attributes. It
// must be called after every attribute change; construction helpers and
// the GORM AfterFind hook do so automatically.
func (b *Bot) RecalcDerived() {
	a := b.Attributes
	b.Derived.MaxHealth = 100 + a.Defense*5 + a.Power*2
	b.Derived.MaxEnergy = 50 + a.Energy*2 + a.Intelligence
	rt := 1.5 - float64(a.Speed)/100.0 - float64(a.Intelligence)/200.0
	if rt < 0.2 {
		rt = 0.2
	}
	b.Derived.ReactionTime = rt
}

// StatBonus is a pre-baked additive attribute bonus produced by an
// external feature (fusion/synergy) and merged into a definition before a
// match. The simulation core treats it as ordinary input.
type StatBonus struct {
	Power        int `json:"power"`
	Speed        int `json:"speed"`
	Defense      int `json:"defense"`
	Intelligence int `json:"intelligence"`
	Energy       int `json:"energy"`
	Precision    int `json:"precision"`
}

// ApplyBonus adds the bonus to the core attributes, clamps every
// attribute back into the 0-100 scale and recomputes derived stats.
func (b *Bot) ApplyBonus(bonus StatBonus) {
	b.Attributes.Power = clampAttr(b.Attributes.Power + bonus.Power)
	b.Attributes.Speed = clampAttr(b.Attributes.Speed + bonus.Speed)
	b.Attributes.Defense = clampAttr(b.Attributes.Defense + bonus.Defense)
	b.Attributes.Intelligence = clampAttr(b.Attributes.Intelligence + bonus.Intelligence)
	b.Attributes.Energy = clampAttr(b.Attributes.Energy + bonus.Energy)
	b.Attributes.Precision = clampAttr(b.Attributes.Precision + bonus.Precision)
	b.RecalcDerived()
}

// Complete reports whether the definition is structurally usable by the
// simulation: present name, a non-nil ability list and positive derived
// stats. Semantic plausibility (stat-point totals) is not validated here.
func (b *Bot) Complete() bool {
	if b == nil || b.Name == "" || b.Abilities == nil {
		return false
	}
	if b.Derived.MaxHealth <= 0 || b.Derived.MaxEnergy <= 0 {
		return false
	}
	return true
}
