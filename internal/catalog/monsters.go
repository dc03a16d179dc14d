package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/pkg/logger"
	"github.com/google/uuid"
)

// ErrMonsterNotFound is returned when a monster id is not in the repository
var ErrMonsterNotFound = errors.New("monster not found")

// MaxMoves is the largest roster a monster carries
const MaxMoves = 4

// levelScaling is the stat bonus per level above 1 for random monsters
const levelScaling = 0.15

// MonsterRepository builds combatants from monster definitions
type MonsterRepository struct {
	moves       *MoveCatalog
	definitions []models.MonsterDefinition
	rng         *rand.Rand
}

// NewMonsterRepository creates a repository over defs drawing moves from
// moves. rng drives move sampling and random monsters.
func NewMonsterRepository(moves *MoveCatalog, defs []models.MonsterDefinition, rng *rand.Rand) (*MonsterRepository, error) {
	if len(defs) == 0 {
		return nil, errors.New("monster repository needs at least one definition")
	}
	for _, def := range defs {
		for _, id := range def.Moves {
			if _, err := moves.GetMoveByID(id); err != nil {
				return nil, fmt.Errorf("monster %q: %w", def.ID, err)
			}
		}
	}
	return &MonsterRepository{
		moves:       moves,
		definitions: append([]models.MonsterDefinition(nil), defs...),
		rng:         rng,
	}, nil
}

// Moves returns the move catalog backing the repository
func (r *MonsterRepository) Moves() *MoveCatalog {
	return r.moves
}

// Definitions returns a copy of the known monster definitions
func (r *MonsterRepository) Definitions() []models.MonsterDefinition {
	return append([]models.MonsterDefinition(nil), r.definitions...)
}

// NewMonster turns def into a combatant. A definition with a fixed move
// list gets exactly those moves; otherwise up to MaxMoves are sampled from
// the moves eligible for its element and level.
func (r *MonsterRepository) NewMonster(def models.MonsterDefinition) *models.Monster {
	var roster []*models.MoveDefinition
	if len(def.Moves) > 0 {
		for _, id := range def.Moves {
			if mv, err := r.moves.GetMoveByID(id); err == nil {
				roster = append(roster, mv)
			}
		}
	} else {
		roster = r.sampleMoves(def.Element, def.Level)
	}

	m := models.NewMonster(def, roster)
	logger.Catalog.Debug("Created %s (%s, level %d) with %d moves", m.Name, m.Element, m.Level, len(m.Moves))
	return m
}

func (r *MonsterRepository) sampleMoves(e models.Element, level int) []*models.MoveDefinition {
	eligible := r.moves.MovesEligibleFor(e, level)
	r.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > MaxMoves {
		eligible = eligible[:MaxMoves]
	}
	return eligible
}

// GetMonsterByID builds a combatant from the definition with the given id
func (r *MonsterRepository) GetMonsterByID(id string) (*models.Monster, error) {
	for _, def := range r.definitions {
		if def.ID == id {
			return r.NewMonster(def), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMonsterNotFound, id)
}

// GetStarter builds the first definition of element e, falling back to the
// first definition when no monster of that element exists
func (r *MonsterRepository) GetStarter(e models.Element) *models.Monster {
	for _, def := range r.definitions {
		if def.Element == e {
			return r.NewMonster(def)
		}
	}
	return r.NewMonster(r.definitions[0])
}

// AllMonsters returns one random monster per definition, each at that
// definition's level
func (r *MonsterRepository) AllMonsters() []*models.Monster {
	out := make([]*models.Monster, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, r.GetRandomMonster(def.Level))
	}
	return out
}

// GetRandomMonster generates a monster of a random element at level. Base
// stats are rolled then scaled by 15% per level above 1.
func (r *MonsterRepository) GetRandomMonster(level int) *models.Monster {
	if level < 1 {
		level = 1
	}
	e := models.Elements[r.rng.Intn(len(models.Elements))]
	pool := namePools[e]
	name := pool.prefixes[r.rng.Intn(len(pool.prefixes))] + pool.suffixes[r.rng.Intn(len(pool.suffixes))]

	multiplier := 1 + float64(level-1)*levelScaling
	scale := func(v int) int { return int(math.Floor(float64(v) * multiplier)) }
	roll := func() int { return 8 + r.rng.Intn(7) }

	def := models.MonsterDefinition{
		ID:      uuid.New().String(),
		Name:    name,
		Element: e,
		Level:   level,
		Sprite:  sprites[e],
		MaxHP:   scale(80 + r.rng.Intn(40)),
		Stats: models.Stats{
			Strength:     scale(roll()),
			Speed:        scale(roll()),
			Constitution: scale(roll()),
			Intelligence: scale(roll()),
			Charisma:     scale(roll()),
			Wisdom:       scale(roll()),
		},
	}
	return r.NewMonster(def)
}

// RefreshMoves teaches m the moves that became eligible between level from
// and its current level. Moves it already knows are skipped and the roster
// never grows past MaxMoves. It returns a narration line per move.
func (r *MonsterRepository) RefreshMoves(m *models.Monster, from int) []string {
	var lines []string
	for _, def := range r.moves.NewlyEligible(m.Element, from, m.Level) {
		if _, known := m.FindMove(def.ID); known {
			continue
		}
		if len(m.Moves) >= MaxMoves {
			lines = append(lines, fmt.Sprintf("%s wants to learn %s, but already knows %d moves.", m.Name, def.Name, MaxMoves))
			continue
		}
		m.Moves = append(m.Moves, def.NewInstance())
		lines = append(lines, fmt.Sprintf("%s learned %s!", m.Name, def.Name))
	}
	return lines
}
