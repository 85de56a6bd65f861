package bot

import "testing"

func TestRecalcDerived(t *testing.T) {
	b := &Bot{Attributes: Attributes{Power: 50, Speed: 60, Defense: 40, Intelligence: 80, Energy: 30}}
	b.RecalcDerived()
	if b.Derived.MaxHealth != 100+40*5+50*2 {
		t.Fatalf("unexpected MaxHealth %d", b.Derived.MaxHealth)
	}
	if b.Derived.MaxEnergy != 50+30*2+80 {
		t.Fatalf("unexpected MaxEnergy %d", b.Derived.MaxEnergy)
	}
	want := 1.5 - 0.6 - 0.4
	if diff := b.Derived.ReactionTime - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("unexpected ReactionTime %v, want %v", b.Derived.ReactionTime, want)
	}
}

func TestRecalcDerived_ReactionTimeFloor(t *testing.T) {
	b := &Bot{Attributes: Attributes{Speed: 100, Intelligence: 100}}
	b.RecalcDerived()
	if b.Derived.ReactionTime != 0.2 {
		t.Fatalf("reaction time should floor at 0.2, got %v", b.Derived.ReactionTime)
	}
}

func TestApplyBonus_ClampsAttributes(t *testing.T) {
	b := &Bot{Attributes: Attributes{Power: 95, Speed: 3, Defense: 50}}
	b.ApplyBonus(StatBonus{Power: 20, Speed: -10, Defense: 5})
	if b.Attributes.Power != 100 {
		t.Fatalf("power should clamp at 100, got %d", b.Attributes.Power)
	}
	if b.Attributes.Speed != 0 {
		t.Fatalf("speed should clamp at 0, got %d", b.Attributes.Speed)
	}
	if b.Attributes.Defense != 55 {
		t.Fatalf("defense should be 55, got %d", b.Attributes.Defense)
	}
	if b.Derived.MaxHealth != 100+55*5+100*2 {
		t.Fatalf("derived stats should be recomputed after bonus, got %d", b.Derived.MaxHealth)
	}
}

func TestDominantElement(t *testing.T) {
	a := ElementalAffinity{Water: 10, Fire: 80, Shadow: 45}
	if d := a.Dominant(); d != Fire {
		t.Fatalf("expected fire dominant, got %s", d)
	}
	// ties resolve to canonical order
	tie := ElementalAffinity{Earth: 50, Wind: 50}
	if d := tie.Dominant(); d != Earth {
		t.Fatalf("expected earth on tie, got %s", d)
	}
}

func TestExploits(t *testing.T) {
	cases := map[Element]Element{
		Water:     Fire,
		Fire:      Nature,
		Earth:     Lightning,
		Wind:      Earth,
		Lightning: Water,
		Nature:    Shadow,
		Celestial: Shadow,
		Shadow:    Celestial,
	}
	for atk, want := range cases {
		got, ok := Exploits(atk)
		if !ok || got != want {
			t.Fatalf("Exploits(%s) = %s,%v want %s", atk, got, ok, want)
		}
	}
	if _, ok := Exploits(Physical); ok {
		t.Fatalf("physical must have no elemental interaction")
	}
}

func TestComplete(t *testing.T) {
	b := &Bot{Name: "unit-7", Abilities: []Ability{}}
	b.RecalcDerived()
	if !b.Complete() {
		t.Fatalf("bot with empty (non-nil) ability list should be complete")
	}
	var nilBot *Bot
	if nilBot.Complete() {
		t.Fatalf("nil bot must be incomplete")
	}
	noAbilities := &Bot{Name: "unit-8"}
	noAbilities.RecalcDerived()
	if noAbilities.Complete() {
		t.Fatalf("nil ability list must be incomplete")
	}
}
