package game

import (
	"errors"
	"sync"

	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/pkg/logger"
	"github.com/google/uuid"
)

var (
	// ErrBattleOver is returned for moves attempted after a winner is known
	ErrBattleOver = errors.New("battle is over")
	// ErrNotPlayerTurn is returned when the player acts during the enemy's turn
	ErrNotPlayerTurn = errors.New("not the player's turn")
	// ErrNotEnemyTurn is returned when the enemy acts during the player's turn
	ErrNotEnemyTurn = errors.New("not the enemy's turn")
	// ErrInvalidMoveIndex is returned for a roster index out of range
	ErrInvalidMoveIndex = errors.New("invalid move index")
)

// Winner marks the terminal outcome of a battle
type Winner string

const (
	WinnerNone   Winner = ""
	WinnerPlayer Winner = "player"
	WinnerEnemy  Winner = "enemy"
)

// Side identifies one of the two combatants
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Matchup produces the two combatants of a fresh battle
type Matchup func() (player, enemy *models.Monster)

// MoveLearner teaches a monster the moves unlocked by a level-up
type MoveLearner interface {
	RefreshMoves(m *models.Monster, fromLevel int) []string
}

// Battle is a player-versus-enemy fight resolved one turn at a time
type Battle struct {
	ID           string
	Player       *models.Monster
	Enemy        *models.Monster
	Logs         []string
	IsPlayerTurn bool
	Winner       Winner
	Turn         int

	engine  *Engine
	learner MoveLearner
	matchup Matchup
	mu      sync.Mutex
}

// NewBattle starts a battle between the monsters produced by matchup.
// learner may be nil, in which case level-ups never unlock moves.
func NewBattle(engine *Engine, learner MoveLearner, matchup Matchup) *Battle {
	b := &Battle{engine: engine, learner: learner, matchup: matchup}
	b.start()
	return b
}

// start must be called with b.mu held or before b is shared
func (b *Battle) start() {
	player, enemy := b.matchup()
	player.ResetForBattle()
	enemy.ResetForBattle()

	b.ID = uuid.New().String()
	b.Player = player
	b.Enemy = enemy
	b.Logs = []string{"A wild " + enemy.Name + " appears!"}
	b.IsPlayerTurn = true
	b.Winner = WinnerNone
	b.Turn = 0

	logger.Game.Info("Battle %s started: %s (lv %d) vs %s (lv %d)", b.ID, player.Name, player.Level, enemy.Name, enemy.Level)
}

// Reset discards the current battle and starts a new one from the matchup
func (b *Battle) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start()
}

// IsOver reports whether the battle has a winner
func (b *Battle) IsOver() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Winner != WinnerNone
}

// SelectMonster replaces the combatant of the side whose turn it is
func (b *Battle) SelectMonster(m *models.Monster) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m.ResetForBattle()
	if b.IsPlayerTurn {
		b.Player = m
	} else {
		b.Enemy = m
	}
}

// PlayerAttack resolves the player's move at moveIndex in their roster. A
// move on cooldown is rejected without passing the turn, unless no move is
// ready at all, in which case the player rests.
func (b *Battle) PlayerAttack(moveIndex int) ([]LogEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Winner != WinnerNone {
		return nil, ErrBattleOver
	}
	if !b.IsPlayerTurn {
		return nil, ErrNotPlayerTurn
	}
	if moveIndex < 0 || moveIndex >= len(b.Player.Moves) {
		return nil, ErrInvalidMoveIndex
	}

	if len(b.Player.ReadyMoves()) == 0 {
		return b.rest(SidePlayer), nil
	}

	move := b.Player.Moves[moveIndex]
	entries := b.applyMove(SidePlayer, move.ID)
	return entries, nil
}

// EnemyTurn lets the enemy pick a random ready move and use it
func (b *Battle) EnemyTurn() ([]LogEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Winner != WinnerNone {
		return nil, ErrBattleOver
	}
	if b.IsPlayerTurn {
		return nil, ErrNotEnemyTurn
	}

	return b.aiTurn(SideEnemy), nil
}

// AutoTurn plays whichever side is due with the random AI
func (b *Battle) AutoTurn() ([]LogEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Winner != WinnerNone {
		return nil, ErrBattleOver
	}
	if b.IsPlayerTurn {
		return b.aiTurn(SidePlayer), nil
	}
	return b.aiTurn(SideEnemy), nil
}

// aiTurn must be called with b.mu held
func (b *Battle) aiTurn(side Side) []LogEntry {
	attacker, _ := b.combatants(side)
	move, ok := ChooseMove(attacker, b.engine.Roller())
	if !ok {
		return b.rest(side)
	}
	return b.applyMove(side, move.ID)
}

func (b *Battle) combatants(side Side) (attacker, defender *models.Monster) {
	if side == SidePlayer {
		return b.Player, b.Enemy
	}
	return b.Enemy, b.Player
}

// applyMove must be called with b.mu held
func (b *Battle) applyMove(side Side, moveID string) []LogEntry {
	attacker, defender := b.combatants(side)
	entries := b.engine.ExecuteTurn(attacker, defender, moveID)

	// A rejected attempt leaves the turn with the same side
	if len(entries) == 1 && (entries[0].Kind == EntryUnknownMove || entries[0].Kind == EntryOnCooldown) {
		b.record(entries)
		return entries
	}

	if signal, ok := LevelUpSignal(entries); ok && b.learner != nil {
		for _, line := range b.learner.RefreshMoves(attacker, signal.PreviousLevel) {
			entries = append(entries, LogEntry{Kind: EntryLearn, Message: line})
		}
	}

	b.Turn++
	if defender.IsFainted() {
		if side == SidePlayer {
			b.Winner = WinnerPlayer
			entries = append(entries, LogEntry{Kind: EntryOutcome, Message: "Victory!"})
		} else {
			b.Winner = WinnerEnemy
			entries = append(entries, LogEntry{Kind: EntryOutcome, Message: "Defeat..."})
		}
		logger.Game.Info("Battle %s over after %d turns, winner: %s", b.ID, b.Turn, b.Winner)
	} else {
		b.IsPlayerTurn = side != SidePlayer
	}

	b.record(entries)
	return entries
}

// rest must be called with b.mu held
func (b *Battle) rest(side Side) []LogEntry {
	attacker, _ := b.combatants(side)
	entries := b.engine.Rest(attacker)
	b.Turn++
	b.IsPlayerTurn = side != SidePlayer
	b.record(entries)
	return entries
}

func (b *Battle) record(entries []LogEntry) {
	b.Logs = append(b.Logs, Messages(entries)...)
}
