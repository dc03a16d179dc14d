package game

import (
	"fmt"

	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/pkg/logger"
)

// EntryKind classifies a turn log entry
type EntryKind string

const (
	EntryUnknownMove EntryKind = "unknown_move"
	EntryOnCooldown  EntryKind = "on_cooldown"
	EntryUse         EntryKind = "use"
	EntryDodge       EntryKind = "dodge"
	EntryCritical    EntryKind = "critical"
	EntryEffective   EntryKind = "effectiveness"
	EntryDamage      EntryKind = "damage"
	EntryHeal        EntryKind = "heal"
	EntryBoost       EntryKind = "boost"
	EntryRecharge    EntryKind = "recharge"
	EntryFaint       EntryKind = "faint"
	EntryExperience  EntryKind = "experience"
	EntryLevelUp     EntryKind = "level_up"
	EntryLearn       EntryKind = "learn"
	EntryRest        EntryKind = "rest"
	EntryOutcome     EntryKind = "outcome"
)

// Signal is the structured payload attached to some log entries
type Signal struct {
	LeveledUp     bool `json:"leveledUp,omitempty"`
	Level         int  `json:"level,omitempty"`
	PreviousLevel int  `json:"previousLevel,omitempty"`
}

// LogEntry is one line of turn narration, optionally carrying a Signal
type LogEntry struct {
	Kind    EntryKind `json:"kind"`
	Message string    `json:"message"`
	Payload *Signal   `json:"payload,omitempty"`
}

func narrate(kind EntryKind, format string, args ...interface{}) LogEntry {
	return LogEntry{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// LevelUpSignal returns the first level-up signal in entries
func LevelUpSignal(entries []LogEntry) (*Signal, bool) {
	for _, e := range entries {
		if e.Payload != nil && e.Payload.LeveledUp {
			return e.Payload, true
		}
	}
	return nil, false
}

// Messages flattens entries into their narration text
func Messages(entries []LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// Engine resolves single turns between two monsters
type Engine struct {
	rng         Roller
	progression models.Progression
}

// NewEngine creates an engine drawing rolls from rng and applying EXP with
// progression
func NewEngine(rng Roller, progression models.Progression) *Engine {
	return &Engine{rng: rng, progression: progression}
}

// Roller returns the engine's random source
func (e *Engine) Roller() Roller {
	return e.rng
}

// CalculateDamage draws a critical-hit roll and returns the damage of move
func (e *Engine) CalculateDamage(attacker, defender *models.Monster, move *models.MoveDefinition) DamageResult {
	roll := e.rng.Float64()
	result := ComputeDamage(attacker, defender, move, roll)
	logger.Game.Debug("crit roll %.3f vs %.3f for %s: %d damage (crit=%t, type x%.1f)",
		roll, CritChance(attacker), move.ID, result.Damage, result.Critical, result.Effectiveness)
	return result
}

// ExecuteTurn has attacker use the move with id moveID against defender.
// The move is looked up in the attacker's own roster; an unknown move or
// one on cooldown produces a single log entry and changes nothing.
func (e *Engine) ExecuteTurn(attacker, defender *models.Monster, moveID string) []LogEntry {
	move, ok := attacker.FindMove(moveID)
	if !ok {
		return []LogEntry{narrate(EntryUnknownMove, "Error: %s doesn't know that move.", attacker.Name)}
	}
	if !move.Ready() {
		return []LogEntry{narrate(EntryOnCooldown, "%s fails! %s is recharging (%d turns).", attacker.Name, move.Name, move.CoolDown)}
	}

	logs := []LogEntry{narrate(EntryUse, "%s uses %s!", attacker.Name, move.Name)}

	dodged := false
	if move.IsDamaging() {
		chance := DodgeChance(attacker, defender)
		roll := e.rng.Float64()
		dodged = roll < chance
		logger.Game.Debug("dodge roll %.3f vs %.3f for %s", roll, chance, defender.Name)
	}

	logs = append(logs, e.applyEffects(attacker, defender, move, dodged)...)
	logs = append(logs, updateCoolDowns(attacker, move)...)

	if defender.IsFainted() {
		logs = append(logs, e.resolveFaint(attacker, defender)...)
	}

	return logs
}

func (e *Engine) applyEffects(attacker, defender *models.Monster, move *models.MoveInstance, dodged bool) []LogEntry {
	var logs []LogEntry

	if move.IsDamaging() {
		if dodged {
			logs = append(logs, narrate(EntryDodge, "%s dodged the attack!", defender.Name))
		} else {
			result := e.CalculateDamage(attacker, defender, &move.MoveDefinition)
			if result.Critical {
				logs = append(logs, narrate(EntryCritical, "A critical hit!"))
			}
			switch {
			case result.Effectiveness > 1:
				logs = append(logs, narrate(EntryEffective, "It's super effective!"))
			case result.Effectiveness < 1:
				logs = append(logs, narrate(EntryEffective, "It's not very effective..."))
			}
			defender.TakeDamage(result.Damage)
			logs = append(logs, narrate(EntryDamage, "It deals %d damage!", result.Damage))
		}
	}

	if move.HealFraction > 0 {
		amount := int(float64(attacker.MaxHP) * move.HealFraction)
		if healed := attacker.Heal(amount); healed > 0 {
			logs = append(logs, narrate(EntryHeal, "%s restores %d HP!", attacker.Name, healed))
		} else {
			logs = append(logs, narrate(EntryHeal, "%s is already at full health.", attacker.Name))
		}
	}

	if move.Boost != nil && !move.Boost.IsZero() {
		attacker.ApplyBoost(*move.Boost)
		logs = append(logs, boostEntries(attacker.Name, *move.Boost)...)
	}

	return logs
}

func boostEntries(name string, b models.StatBoost) []LogEntry {
	var logs []LogEntry
	add := func(stat string, factor float64) {
		switch {
		case factor > 1:
			logs = append(logs, narrate(EntryBoost, "%s's %s rose!", name, stat))
		case factor > 0 && factor < 1:
			logs = append(logs, narrate(EntryBoost, "%s's %s fell!", name, stat))
		}
	}
	add("attack", b.Attack)
	add("defense", b.Defense)
	add("speed", b.Speed)
	return logs
}

// updateCoolDowns puts used on its full cooldown and ticks every other
// move that is still recharging
func updateCoolDowns(attacker *models.Monster, used *models.MoveInstance) []LogEntry {
	var logs []LogEntry
	for _, mv := range attacker.Moves {
		if mv == used {
			mv.CoolDown = mv.MaxCoolDown
			if mv.MaxCoolDown > 0 {
				logs = append(logs, narrate(EntryRecharge, "(System) %s must recharge.", mv.Name))
			}
			continue
		}
		if mv.CoolDown > 0 {
			mv.CoolDown--
		}
	}
	return logs
}

func (e *Engine) resolveFaint(attacker, defender *models.Monster) []LogEntry {
	logs := []LogEntry{narrate(EntryFaint, "%s fainted!", defender.Name)}
	logger.Game.Info("%s fainted against %s", defender.Name, attacker.Name)

	exp := CalculateExperienceGained(attacker, defender)
	logs = append(logs, narrate(EntryExperience, "%s gains %d EXP!", attacker.Name, exp))

	result := e.progression.GainExperience(attacker, exp)
	for i, msg := range result.Messages {
		entry := narrate(EntryLevelUp, "%s", msg)
		entry.Payload = &Signal{
			LeveledUp:     true,
			Level:         result.PreviousLevel + i + 1,
			PreviousLevel: result.PreviousLevel,
		}
		logs = append(logs, entry)
	}
	if result.LeveledUp {
		logger.Game.Info("%s reached level %d", attacker.Name, attacker.Level)
	}

	return logs
}

// Rest ticks every recharging move of m by one turn. It is used when a
// monster has no move ready, which would otherwise leave it stuck.
func (e *Engine) Rest(m *models.Monster) []LogEntry {
	for _, mv := range m.Moves {
		if mv.CoolDown > 0 {
			mv.CoolDown--
		}
	}
	return []LogEntry{narrate(EntryRest, "%s has no usable moves and rests.", m.Name)}
}
