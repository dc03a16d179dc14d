package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func testMonster(element Element) *Monster {
	def := MonsterDefinition{
		ID:      "m1",
		Name:    "Testmon",
		Element: element,
		Level:   1,
		MaxHP:   100,
		Stats:   Stats{Strength: 10, Speed: 10, Constitution: 10, Intelligence: 10, Charisma: 10, Wisdom: 10},
	}
	moves := []*MoveDefinition{
		{ID: "tackle", Name: "Tackle", Power: 30, Element: ElementNormal, IsPhysical: true},
		{ID: "slam", Name: "Slam", Power: 150, Element: ElementNormal, IsPhysical: true, MaxCoolDown: 3},
	}
	return NewMonster(def, moves)
}

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		attack, defend Element
		want           float64
	}{
		{ElementFire, ElementGrass, 2.0},
		{ElementWater, ElementFire, 2.0},
		{ElementGrass, ElementWater, 2.0},
		{ElementGrass, ElementFire, 0.5},
		{ElementFire, ElementWater, 0.5},
		{ElementWater, ElementGrass, 0.5},
		{ElementFire, ElementFire, 1.0},
		{ElementNormal, ElementWater, 1.0},
		{ElementGrass, ElementNormal, 1.0},
		{Element(42), ElementFire, 1.0},
	}
	for _, tt := range tests {
		if got := Effectiveness(tt.attack, tt.defend); got != tt.want {
			t.Errorf("Effectiveness(%v, %v) = %v, want %v", tt.attack, tt.defend, got, tt.want)
		}
	}
}

func TestParseElement(t *testing.T) {
	e, err := ParseElement(" Water ")
	if err != nil || e != ElementWater {
		t.Fatalf("ParseElement(Water) = %v, %v", e, err)
	}
	if _, err := ParseElement("lightning"); !errors.Is(err, ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
	if ElementGrass.Title() != "Grass" {
		t.Errorf("Title() = %q, want Grass", ElementGrass.Title())
	}
}

func TestElementJSON(t *testing.T) {
	var def MoveDefinition
	if err := json.Unmarshal([]byte(`{"id":"x","element":"fire","power":10}`), &def); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if def.Element != ElementFire {
		t.Fatalf("expected fire, got %v", def.Element)
	}
	if err := json.Unmarshal([]byte(`{"element":"ice"}`), &def); err == nil {
		t.Fatal("expected error for unknown element")
	}
}

func TestNewMonsterClonesMoves(t *testing.T) {
	shared := &MoveDefinition{ID: "boost", Name: "Boost", Boost: &StatBoost{Attack: 1.5}, MaxCoolDown: 2}
	def := MonsterDefinition{ID: "a", Name: "A", MaxHP: 50, Level: 0}
	a := NewMonster(def, []*MoveDefinition{shared})
	b := NewMonster(def, []*MoveDefinition{shared})

	a.Moves[0].CoolDown = 2
	a.Moves[0].Boost.Attack = 3
	if b.Moves[0].CoolDown != 0 {
		t.Errorf("cooldown leaked across monsters: %d", b.Moves[0].CoolDown)
	}
	if b.Moves[0].Boost.Attack != 1.5 || shared.Boost.Attack != 1.5 {
		t.Errorf("boost leaked: b=%v def=%v", b.Moves[0].Boost.Attack, shared.Boost.Attack)
	}
	if a.Level != 1 || a.CurrentHP != 50 || a.NextEXP != 100 {
		t.Errorf("unexpected initial state: level=%d hp=%d next=%d", a.Level, a.CurrentHP, a.NextEXP)
	}
}

func TestHealthBounds(t *testing.T) {
	m := testMonster(ElementFire)
	m.TakeDamage(30)
	if m.CurrentHP != 70 {
		t.Fatalf("expected 70 HP, got %d", m.CurrentHP)
	}
	if healed := m.Heal(50); healed != 30 || m.CurrentHP != 100 {
		t.Fatalf("heal should cap at max: healed=%d hp=%d", healed, m.CurrentHP)
	}
	m.TakeDamage(500)
	if m.CurrentHP != 0 || !m.IsFainted() {
		t.Fatalf("expected fainted at 0 HP, got %d", m.CurrentHP)
	}
}

func TestApplyBoostCompounds(t *testing.T) {
	m := testMonster(ElementNormal)
	m.ApplyBoost(StatBoost{Attack: 1.5})
	m.ApplyBoost(StatBoost{Attack: 1.5, Speed: 2})
	if m.Modifiers.Attack != 2.25 || m.Modifiers.Speed != 2 || m.Modifiers.Defense != 1 {
		t.Fatalf("unexpected modifiers: %+v", m.Modifiers)
	}
	m.Moves[1].CoolDown = 3
	m.ResetForBattle()
	if m.Modifiers != NeutralModifiers || m.Moves[1].CoolDown != 0 {
		t.Fatalf("reset failed: %+v cd=%d", m.Modifiers, m.Moves[1].CoolDown)
	}
}

func TestRequiredExperience(t *testing.T) {
	tests := map[int]int{1: 100, 2: 282, 3: 519, 0: 100}
	for level, want := range tests {
		if got := RequiredExperience(level); got != want {
			t.Errorf("RequiredExperience(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestGainExperienceSingleLevel(t *testing.T) {
	m := testMonster(ElementWater)
	m.TakeDamage(60)
	res := GainExperience(m, 250)
	if !res.LeveledUp || res.LevelsGained != 1 || m.Level != 2 {
		t.Fatalf("expected one level-up, got %+v level=%d", res, m.Level)
	}
	if m.EXP != 150 || m.NextEXP != 282 {
		t.Fatalf("expected residual 150/282, got %d/%d", m.EXP, m.NextEXP)
	}
	g := DefaultGrowth.For(ElementWater)
	if m.MaxHP != 100+g.MaxHP || m.CurrentHP != m.MaxHP {
		t.Fatalf("expected full heal to new max, got %d/%d", m.CurrentHP, m.MaxHP)
	}
	if m.Stats.Constitution != 10+g.Constitution {
		t.Errorf("constitution = %d", m.Stats.Constitution)
	}
}

func TestGainExperienceCascades(t *testing.T) {
	m := testMonster(ElementFire)
	res := GainExperience(m, 500)
	if res.LevelsGained != 2 || m.Level != 3 {
		t.Fatalf("expected two level-ups, got %+v level=%d", res, m.Level)
	}
	if m.EXP != 118 || m.NextEXP != 519 {
		t.Fatalf("expected residual 118/519, got %d/%d", m.EXP, m.NextEXP)
	}
	if len(res.Messages) != 2 || res.Messages[1] != "Testmon grew to level 3!" {
		t.Fatalf("unexpected messages: %v", res.Messages)
	}
	if m.EXP >= m.NextEXP {
		t.Fatal("EXP must stay below the next threshold")
	}
}

func TestGainExperienceNoLevel(t *testing.T) {
	m := testMonster(ElementGrass)
	res := GainExperience(m, 99)
	if res.LeveledUp || len(res.Messages) != 0 || m.EXP != 99 {
		t.Fatalf("unexpected result %+v exp=%d", res, m.EXP)
	}
}

func TestGrowthNeverDecreases(t *testing.T) {
	var table GrowthTable
	table.Set(ElementNormal, StatGrowth{MaxHP: -5, Strength: -1, Speed: 2})
	m := testMonster(ElementNormal)
	before := m.Stats
	Progression{Growth: &table}.GainExperience(m, 100)
	if m.MaxHP != 100 || m.Stats.Strength != before.Strength || m.Stats.Speed != before.Speed+2 {
		t.Fatalf("growth must be monotonic: hp=%d stats=%+v", m.MaxHP, m.Stats)
	}
}
