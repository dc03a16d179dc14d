package models

// GameConfig holds the catalog and balance data a battle is built from
type GameConfig struct {
	Moves    []MoveDefinition    `json:"moves" yaml:"moves"`
	Monsters []MonsterDefinition `json:"monsters" yaml:"monsters"`
	Growth   GrowthTable         `json:"-" yaml:"-"`
}
