package catalog

import "github.com/NP-Dat/monster-battle/internal/models"

// DefaultMoves returns the built-in move definitions
func DefaultMoves() []models.MoveDefinition {
	return []models.MoveDefinition{
		// Normal
		{ID: "normal-scratch", Name: "Scratch", Power: 40, Element: models.ElementNormal, IsPhysical: true, MinLevel: 1},
		{ID: "normal-tackle", Name: "Tackle", Power: 30, Element: models.ElementNormal, IsPhysical: true, MinLevel: 1},
		{ID: "normal-slam", Name: "Giga Impact", Power: 150, Element: models.ElementNormal, IsPhysical: true, MinLevel: 5, MaxCoolDown: 3},
		{ID: "normal-rest", Name: "Rest", Element: models.ElementNormal, MinLevel: 3, MaxCoolDown: 3, HealFraction: 0.3},
		{ID: "normal-focus", Name: "Focus Energy", Element: models.ElementNormal, MinLevel: 6, MaxCoolDown: 2, Boost: &models.StatBoost{Attack: 1.5}},
		{ID: "normal-harden", Name: "Harden", Element: models.ElementNormal, MinLevel: 7, MaxCoolDown: 2, Boost: &models.StatBoost{Defense: 1.5}},

		// Fire
		{ID: "fire-ball", Name: "Fireball", Power: 60, Element: models.ElementFire, MinLevel: 1},
		{ID: "fire-blaze", Name: "Ember", Power: 80, Element: models.ElementFire, MinLevel: 4},
		{ID: "fire-blast", Name: "Fire Blast", Power: 120, Element: models.ElementFire, MinLevel: 5, MaxCoolDown: 2},
		{ID: "fire-dance", Name: "Flame Dance", Element: models.ElementFire, MinLevel: 7, MaxCoolDown: 3, Boost: &models.StatBoost{Attack: 1.2, Speed: 1.3}},

		// Water
		{ID: "water-jet", Name: "Water Jet", Power: 50, Element: models.ElementWater, MinLevel: 1},
		{ID: "water-wave", Name: "Aqua Wave", Power: 75, Element: models.ElementWater, MinLevel: 4},
		{ID: "water-hydro", Name: "Hydro Cannon", Power: 110, Element: models.ElementWater, MinLevel: 5, MaxCoolDown: 2},
		{ID: "water-ring", Name: "Aqua Ring", Element: models.ElementWater, MinLevel: 6, MaxCoolDown: 3, HealFraction: 0.25},

		// Grass
		{ID: "grass-leaf", Name: "Vine Whip", Power: 45, Element: models.ElementGrass, IsPhysical: true, MinLevel: 1},
		{ID: "grass-drain", Name: "Giga Drain", Power: 75, Element: models.ElementGrass, MinLevel: 4, HealFraction: 0.1},
		{ID: "grass-solar", Name: "Solar Beam", Power: 120, Element: models.ElementGrass, MinLevel: 5, MaxCoolDown: 3},
		{ID: "grass-growth", Name: "Growth", Element: models.ElementGrass, MinLevel: 7, MaxCoolDown: 2, Boost: &models.StatBoost{Attack: 1.3, Defense: 1.2}},
	}
}

// DefaultMonsters returns the built-in starter definitions
func DefaultMonsters() []models.MonsterDefinition {
	return []models.MonsterDefinition{
		{
			ID: "1", Name: "Pyromancer", Element: models.ElementFire, Level: 5, Sprite: "monster_1.png", MaxHP: 100,
			Stats: models.Stats{Strength: 15, Speed: 12, Constitution: 10, Intelligence: 14, Charisma: 8, Wisdom: 11},
		},
		{
			ID: "2", Name: "HydroSlime", Element: models.ElementWater, Level: 5, Sprite: "monster_2.png", MaxHP: 120,
			Stats: models.Stats{Strength: 10, Speed: 9, Constitution: 15, Intelligence: 11, Charisma: 13, Wisdom: 14},
		},
		{
			ID: "3", Name: "LeafGuardian", Element: models.ElementGrass, Level: 5, Sprite: "monster_2.png", MaxHP: 110,
			Stats: models.Stats{Strength: 12, Speed: 8, Constitution: 14, Intelligence: 10, Charisma: 12, Wisdom: 16},
		},
	}
}

type namePool struct {
	prefixes []string
	suffixes []string
}

var namePools = [...]namePool{
	models.ElementFire: {
		prefixes: []string{"Pyre", "Ember", "Blaze", "Solar", "Magma"},
		suffixes: []string{"mander", "core", "fury", "wing", "flame"},
	},
	models.ElementWater: {
		prefixes: []string{"Aqua", "Hydro", "Tidal", "Mist", "River"},
		suffixes: []string{"fin", "scale", "bubble", "wave", "soul"},
	},
	models.ElementGrass: {
		prefixes: []string{"Terra", "Leaf", "Flora", "Root", "Bloom"},
		suffixes: []string{"thorn", "vine", "sprout", "wood", "pion"},
	},
	models.ElementNormal: {
		prefixes: []string{"Swift", "Bold", "Iron", "Zen", "Chrono"},
		suffixes: []string{"beast", "tail", "fang", "claw", "ling"},
	},
}

var sprites = [...]string{
	models.ElementFire:   "monster_1.png",
	models.ElementWater:  "monster_2.png",
	models.ElementGrass:  "monster_1.png",
	models.ElementNormal: "monster_1.png",
}
