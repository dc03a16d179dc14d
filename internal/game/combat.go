package game

import (
	"math"

	"github.com/NP-Dat/monster-battle/internal/models"
)

const (
	baseCritChance  = 0.05
	critSpeedFactor = 200.0
	critMultiplier  = 2.0
	damageScale     = 0.5

	baseDodgeChance  = 0.3
	minDodgeBonus    = 0.1
	dodgeSpeedFactor = 200.0
	maxDodgeChance   = 0.40

	baseExperience    = 100.0
	experienceGrowth  = 1.9
	minimumExperience = 50
)

// Roller is the source of randomness for battle rolls. *rand.Rand
// satisfies it.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// DamageResult is the outcome of one damage calculation
type DamageResult struct {
	Damage        int
	Critical      bool
	Effectiveness float64
}

// CritChance is 0.05 + effectiveSpeed/200. It is not clamped, so a fast
// enough attacker always crits.
func CritChance(attacker *models.Monster) float64 {
	return baseCritChance + attacker.EffectiveSpeed()/critSpeedFactor
}

// ComputeDamage calculates the damage of move from attacker to defender
// given the critical-hit roll in [0,1). Moves with power > 0 always deal at
// least 1 damage.
func ComputeDamage(attacker, defender *models.Monster, move *models.MoveDefinition, critRoll float64) DamageResult {
	typeMultiplier := models.Effectiveness(move.Element, defender.Element)

	critical := critRoll < CritChance(attacker)
	crit := 1.0
	if critical {
		crit = critMultiplier
	}

	var offense float64
	if move.IsPhysical {
		offense = float64(attacker.Stats.Strength) * attacker.Modifiers.Attack
	} else {
		offense = float64(attacker.Stats.Intelligence) * attacker.Modifiers.Attack
	}
	defense := math.Max(1, float64(defender.Stats.Constitution)*defender.Modifiers.Defense)

	baseDamage := float64(move.Power) * (offense / defense)
	damage := int(math.Floor(baseDamage * damageScale * crit * typeMultiplier))
	if move.Power > 0 && damage < 1 {
		damage = 1
	}

	return DamageResult{Damage: damage, Critical: critical, Effectiveness: typeMultiplier}
}

// DodgeChance is 0.3 + max(0.1, (defenderSpeed-attackerSpeed)/200), capped
// at 0.40. The speed term never drops below 0.1, so the chance always
// lands on the cap.
func DodgeChance(attacker, defender *models.Monster) float64 {
	speedBonus := math.Max(minDodgeBonus, (defender.EffectiveSpeed()-attacker.EffectiveSpeed())/dodgeSpeedFactor)
	return math.Min(maxDodgeChance, baseDodgeChance+speedBonus)
}

// CalculateExperienceGained returns the EXP attacker earns for defeating
// defender: floor(100 * 1.9^(defenderLevel-attackerLevel)), or 50 when
// that rounds down to nothing
func CalculateExperienceGained(attacker, defender *models.Monster) int {
	levelDelta := float64(defender.Level - attacker.Level)
	raw := int(math.Floor(baseExperience * math.Pow(experienceGrowth, levelDelta)))
	if raw <= 0 {
		return minimumExperience
	}
	return raw
}
