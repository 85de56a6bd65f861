package bot

// Element identifies the damage type of an ability and the axes of a
// robot's elemental affinity vector. Physical is a valid ability element
// but has no affinity axis and no elemental interaction.
type Element string

const (
	Physical  Element = "physical"
	Water     Element = "water"
	Fire      Element = "fire"
	Earth     Element = "earth"
	Wind      Element = "wind"
	Lightning Element = "lightning"
	Nature    Element = "nature"
	Celestial Element = "celestial"
	Shadow    Element = "shadow"
)

// AffinityElements lists the eight affinity axes in canonical order.
var AffinityElements = []Element{Water, Fire, Earth, Wind, Lightning, Nature, Celestial, Shadow}

// exploitTable maps an attacking element to the defender affinity it
// exploits. An attack deals bonus damage when the defender's affinity on
// that axis exceeds the exploit threshold.
var exploitTable = map[Element]Element{
	Water:     Fire,
	Fire:      Nature,
	Earth:     Lightning,
	Wind:      Earth,
	Lightning: Water,
	Nature:    Shadow,
	Celestial: Shadow,
	Shadow:    Celestial,
}

// Exploits returns the defender affinity axis checked when attacking with
// the given element, and whether the element has an elemental interaction
// at all (Physical does not).
func Exploits(attacking Element) (Element, bool) {
	e, ok := exploitTable[attacking]
	return e, ok
}

// ElementalAffinity is the 8-axis typing vector of a robot. Each axis is
// scaled 0-100.
type ElementalAffinity struct {
	Water     int `json:"water"`
	Fire      int `json:"fire"`
	Earth     int `json:"earth"`
	Wind      int `json:"wind"`
	Lightning int `json:"lightning"`
	Nature    int `json:"nature"`
	Celestial int `json:"celestial"`
	Shadow    int `json:"shadow"`
}

// Value returns the affinity on the given axis. Physical and unknown
// elements report zero.
func (a ElementalAffinity) Value(e Element) int {
	switch e {
	case Water:
		return a.Water
	case Fire:
		return a.Fire
	case Earth:
		return a.Earth
	case Wind:
		return a.Wind
	case Lightning:
		return a.Lightning
	case Nature:
		return a.Nature
	case Celestial:
		return a.Celestial
	case Shadow:
		return a.Shadow
	}
	return 0
}

// Dominant returns the axis with the highest affinity value. Ties resolve
// to the first axis in canonical order.
func (a ElementalAffinity) Dominant() Element {
	best := AffinityElements[0]
	bestVal := a.Value(best)
	for _, e := range AffinityElements[1:] {
		if v := a.Value(e); v > bestVal {
			best = e
			bestVal = v
		}
	}
	return best
}
