package models

// StatGrowth is the additive increase applied on every level-up
type StatGrowth struct {
	MaxHP        int `json:"maxHp" yaml:"maxHp"`
	Strength     int `json:"strength" yaml:"strength"`
	Speed        int `json:"speed" yaml:"speed"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Charisma     int `json:"charisma" yaml:"charisma"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
}

// clamped drops negative entries so level-up never lowers a stat
func (g StatGrowth) clamped() StatGrowth {
	fix := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return StatGrowth{
		MaxHP:        fix(g.MaxHP),
		Strength:     fix(g.Strength),
		Speed:        fix(g.Speed),
		Constitution: fix(g.Constitution),
		Intelligence: fix(g.Intelligence),
		Charisma:     fix(g.Charisma),
		Wisdom:       fix(g.Wisdom),
	}
}

// GrowthTable maps every element to its level-up growth
type GrowthTable [elementCount]StatGrowth

// For returns the growth for element e. Unknown elements grow like normal.
func (t *GrowthTable) For(e Element) StatGrowth {
	if !e.Valid() {
		e = ElementNormal
	}
	return t[e].clamped()
}

// Set replaces the growth entry of element e
func (t *GrowthTable) Set(e Element, g StatGrowth) {
	if e.Valid() {
		t[e] = g
	}
}

// DefaultGrowth is the built-in growth table: fire leans offense and speed,
// water health and constitution, grass intelligence and wisdom.
var DefaultGrowth = GrowthTable{
	ElementNormal: {MaxHP: 8, Strength: 2, Speed: 2, Constitution: 2, Intelligence: 2, Charisma: 2, Wisdom: 2},
	ElementFire:   {MaxHP: 6, Strength: 3, Speed: 3, Constitution: 1, Intelligence: 3, Charisma: 1, Wisdom: 1},
	ElementWater:  {MaxHP: 12, Strength: 1, Speed: 1, Constitution: 3, Intelligence: 2, Charisma: 2, Wisdom: 2},
	ElementGrass:  {MaxHP: 8, Strength: 1, Speed: 1, Constitution: 2, Intelligence: 3, Charisma: 2, Wisdom: 3},
}
