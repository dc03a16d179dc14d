package models

import (
	"fmt"
	"math"
)

// RequiredExperience returns the EXP needed to advance past level:
// floor(100 * level^1.5)
func RequiredExperience(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// LevelUpResult describes what an EXP award did to a monster
type LevelUpResult struct {
	LeveledUp     bool     `json:"leveledUp"`
	LevelsGained  int      `json:"levelsGained"`
	PreviousLevel int      `json:"previousLevel"`
	Messages      []string `json:"messages"`
}

// Progression applies EXP and level-up growth using a growth table
type Progression struct {
	Growth *GrowthTable
}

// DefaultProgression uses DefaultGrowth
var DefaultProgression = Progression{Growth: &DefaultGrowth}

// GainExperience adds amount to m and cascades through as many level-ups
// as the total covers. On return m.EXP < m.NextEXP.
func (p Progression) GainExperience(m *Monster, amount int) LevelUpResult {
	result := LevelUpResult{PreviousLevel: m.Level}
	if amount > 0 {
		m.EXP += amount
	}
	if m.NextEXP <= 0 {
		m.NextEXP = RequiredExperience(m.Level)
	}

	for m.EXP >= m.NextEXP {
		m.EXP -= m.NextEXP
		m.Level++
		p.levelUp(m)
		m.NextEXP = RequiredExperience(m.Level)

		result.LeveledUp = true
		result.LevelsGained++
		result.Messages = append(result.Messages, fmt.Sprintf("%s grew to level %d!", m.Name, m.Level))
	}

	return result
}

// levelUp applies one level of stat growth and restores full health
func (p Progression) levelUp(m *Monster) {
	table := p.Growth
	if table == nil {
		table = &DefaultGrowth
	}
	g := table.For(m.Element)

	m.MaxHP += g.MaxHP
	m.Stats.Strength += g.Strength
	m.Stats.Speed += g.Speed
	m.Stats.Constitution += g.Constitution
	m.Stats.Intelligence += g.Intelligence
	m.Stats.Charisma += g.Charisma
	m.Stats.Wisdom += g.Wisdom
	m.CurrentHP = m.MaxHP
}

// GainExperience applies amount to m with the default growth table
func GainExperience(m *Monster, amount int) LevelUpResult {
	return DefaultProgression.GainExperience(m, amount)
}
