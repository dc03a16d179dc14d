// Package catalog holds the static move and monster data and the factory
// that turns monster definitions into combatants.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/NP-Dat/monster-battle/internal/models"
)

// ErrMoveNotFound is returned when a move id is not in the catalog
var ErrMoveNotFound = errors.New("move not found")

// MoveCatalog is a keyed store of move definitions
type MoveCatalog struct {
	moves map[string]*models.MoveDefinition
}

// NewMoveCatalog builds a catalog from defs. Duplicate ids are rejected.
func NewMoveCatalog(defs []models.MoveDefinition) (*MoveCatalog, error) {
	c := &MoveCatalog{moves: make(map[string]*models.MoveDefinition, len(defs))}
	for i := range defs {
		def := defs[i]
		if def.ID == "" {
			return nil, fmt.Errorf("move at index %d has no id", i)
		}
		if _, exists := c.moves[def.ID]; exists {
			return nil, fmt.Errorf("duplicate move id %q", def.ID)
		}
		if def.Power < 0 || def.MaxCoolDown < 0 {
			return nil, fmt.Errorf("move %q: power and maxCoolDown must be non-negative", def.ID)
		}
		if def.HealFraction < 0 || def.HealFraction > 1 {
			return nil, fmt.Errorf("move %q: healFraction must be within [0,1]", def.ID)
		}
		c.moves[def.ID] = &def
	}
	return c, nil
}

// DefaultMoveCatalog returns a catalog of the built-in moves
func DefaultMoveCatalog() *MoveCatalog {
	c, err := NewMoveCatalog(DefaultMoves())
	if err != nil {
		panic(fmt.Sprintf("built-in move catalog is invalid: %v", err))
	}
	return c
}

// GetMoveByID retrieves a move by its unique id
func (c *MoveCatalog) GetMoveByID(id string) (*models.MoveDefinition, error) {
	def, ok := c.moves[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMoveNotFound, id)
	}
	return def, nil
}

// GetMoveByName retrieves a move by its display name, ignoring case
func (c *MoveCatalog) GetMoveByName(name string) (*models.MoveDefinition, error) {
	for _, def := range c.AllMoves() {
		if strings.EqualFold(def.Name, name) {
			return def, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMoveNotFound, name)
}

// AllMoves returns every definition ordered by id
func (c *MoveCatalog) AllMoves() []*models.MoveDefinition {
	all := make([]*models.MoveDefinition, 0, len(c.moves))
	for _, def := range c.moves {
		all = append(all, def)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// GetMovesByElement returns the moves of exactly element e
func (c *MoveCatalog) GetMovesByElement(e models.Element) []*models.MoveDefinition {
	var out []*models.MoveDefinition
	for _, def := range c.AllMoves() {
		if def.Element == e {
			out = append(out, def)
		}
	}
	return out
}

// MovesEligibleFor returns the moves a monster of element e may know at
// level: its own element or normal, with MinLevel <= level
func (c *MoveCatalog) MovesEligibleFor(e models.Element, level int) []*models.MoveDefinition {
	var out []*models.MoveDefinition
	for _, def := range c.AllMoves() {
		if (def.Element == e || def.Element == models.ElementNormal) && def.MinLevel <= level {
			out = append(out, def)
		}
	}
	return out
}

// NewlyEligible returns the moves that become eligible when a monster of
// element e goes from level from to level to
func (c *MoveCatalog) NewlyEligible(e models.Element, from, to int) []*models.MoveDefinition {
	var out []*models.MoveDefinition
	for _, def := range c.MovesEligibleFor(e, to) {
		if def.MinLevel > from {
			out = append(out, def)
		}
	}
	return out
}
