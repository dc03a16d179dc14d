package game

import (
	"testing"

	"github.com/NP-Dat/monster-battle/internal/models"
)

// scriptedRoller returns queued values, then values that never dodge or crit
type scriptedRoller struct {
	floats []float64
	ints   []int
}

func (r *scriptedRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRoller) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func newMonster(name string, element models.Element, hp int, stats models.Stats, moves ...*models.MoveDefinition) *models.Monster {
	return models.NewMonster(models.MonsterDefinition{
		ID:      name,
		Name:    name,
		Element: element,
		Level:   1,
		MaxHP:   hp,
		Stats:   stats,
	}, moves)
}

var (
	tackle = &models.MoveDefinition{ID: "tackle", Name: "Tackle", Power: 60, Element: models.ElementNormal, IsPhysical: true}
	slam   = &models.MoveDefinition{ID: "slam", Name: "Slam", Power: 150, Element: models.ElementNormal, IsPhysical: true, MaxCoolDown: 3}
	blast  = &models.MoveDefinition{ID: "blast", Name: "Blast", Power: 120, Element: models.ElementFire, MaxCoolDown: 2}
	rest   = &models.MoveDefinition{ID: "rest", Name: "Rest", MaxCoolDown: 3, HealFraction: 0.3}
	focus  = &models.MoveDefinition{ID: "focus", Name: "Focus", Boost: &models.StatBoost{Attack: 1.5}}
)

func attackerStats() models.Stats {
	return models.Stats{Strength: 15, Speed: 10, Constitution: 10, Intelligence: 12, Charisma: 5, Wisdom: 5}
}

func defenderStats() models.Stats {
	return models.Stats{Strength: 10, Speed: 10, Constitution: 10, Intelligence: 10, Charisma: 5, Wisdom: 5}
}

func kinds(entries []LogEntry) []EntryKind {
	out := make([]EntryKind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func indexOf(entries []LogEntry, kind EntryKind) int {
	for i, e := range entries {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}

func snapshot(t *testing.T, m *models.Monster) models.Monster {
	t.Helper()
	c := *m
	c.Moves = make([]*models.MoveInstance, len(m.Moves))
	for i, mv := range m.Moves {
		c.Moves[i] = mv.Clone()
	}
	return c
}
