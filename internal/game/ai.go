package game

import "github.com/NP-Dat/monster-battle/internal/models"

// ChooseMove picks uniformly among m's ready moves. It reports false when
// every move is recharging.
func ChooseMove(m *models.Monster, rng Roller) (*models.MoveInstance, bool) {
	ready := m.ReadyMoves()
	if len(ready) == 0 {
		return nil, false
	}
	return ready[rng.Intn(len(ready))], true
}
