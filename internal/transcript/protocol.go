// Package transcript records battles as newline-delimited JSON
package transcript

import (
	"time"

	"github.com/NP-Dat/monster-battle/internal/game"
	"github.com/NP-Dat/monster-battle/internal/models"
)

// RecordType identifies the payload carried by a Record
type RecordType string

const (
	RecordBattleStart RecordType = "battle_start"
	RecordTurn        RecordType = "turn"
	RecordBattleOver  RecordType = "battle_over"
)

// Record is the envelope written for every transcript line
type Record struct {
	Type    RecordType  `json:"type"`
	Time    time.Time   `json:"time"`
	Payload interface{} `json:"payload"`
}

// MonsterInfo is a snapshot of one combatant
type MonsterInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Element   models.Element `json:"element"`
	Level     int            `json:"level"`
	CurrentHP int            `json:"current_hp"`
	MaxHP     int            `json:"max_hp"`
	EXP       int            `json:"exp"`
	NextEXP   int            `json:"next_exp"`
}

// BattleStartPayload is written when a battle begins
type BattleStartPayload struct {
	BattleID string      `json:"battle_id"`
	Player   MonsterInfo `json:"player"`
	Enemy    MonsterInfo `json:"enemy"`
}

// TurnPayload is written after every resolved or rejected turn
type TurnPayload struct {
	BattleID string          `json:"battle_id"`
	Turn     int             `json:"turn"`
	Side     game.Side       `json:"side"`
	Entries  []game.LogEntry `json:"entries"`
	Player   MonsterInfo     `json:"player"`
	Enemy    MonsterInfo     `json:"enemy"`
}

// BattleOverPayload is written once a winner is known
type BattleOverPayload struct {
	BattleID string      `json:"battle_id"`
	Winner   game.Winner `json:"winner"`
	Turns    int         `json:"turns"`
}

// NewMonsterInfo snapshots m
func NewMonsterInfo(m *models.Monster) MonsterInfo {
	return MonsterInfo{
		ID:        m.ID,
		Name:      m.Name,
		Element:   m.Element,
		Level:     m.Level,
		CurrentHP: m.CurrentHP,
		MaxHP:     m.MaxHP,
		EXP:       m.EXP,
		NextEXP:   m.NextEXP,
	}
}
