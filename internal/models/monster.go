package models

// Stats holds the six attribute scores of a monster
type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Speed        int `json:"speed" yaml:"speed"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Charisma     int `json:"charisma" yaml:"charisma"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
}

// MonsterDefinition is the catalog template a Monster is built from
type MonsterDefinition struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Element Element  `json:"element" yaml:"element"`
	Level   int      `json:"level" yaml:"level"`
	Sprite  string   `json:"sprite" yaml:"sprite"`
	MaxHP   int      `json:"maxHp" yaml:"maxHp"`
	Stats   Stats    `json:"stats" yaml:"stats"`
	Moves   []string `json:"moves,omitempty" yaml:"moves,omitempty"` // fixed roster; empty = sampled
}

// Modifiers are the transient combat multipliers of one battle
type Modifiers struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Speed   float64 `json:"speed"`
}

// NeutralModifiers is the state at the start of every battle
var NeutralModifiers = Modifiers{Attack: 1.0, Defense: 1.0, Speed: 1.0}

// Monster is one combatant
type Monster struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Element   Element         `json:"element"`
	Sprite    string          `json:"sprite"`
	Level     int             `json:"level"`
	MaxHP     int             `json:"maxHp"`
	CurrentHP int             `json:"currentHp"`
	Stats     Stats           `json:"stats"`
	EXP       int             `json:"exp"`
	NextEXP   int             `json:"nextExp"` // EXP required for the next level
	Modifiers Modifiers       `json:"modifiers"`
	Moves     []*MoveInstance `json:"moves"`
}

// NewMonster builds a combatant at full health from def. Every move is
// copied into a fresh instance with its cooldown at 0.
func NewMonster(def MonsterDefinition, moves []*MoveDefinition) *Monster {
	level := def.Level
	if level < 1 {
		level = 1
	}
	m := &Monster{
		ID:        def.ID,
		Name:      def.Name,
		Element:   def.Element,
		Sprite:    def.Sprite,
		Level:     level,
		MaxHP:     def.MaxHP,
		CurrentHP: def.MaxHP,
		Stats:     def.Stats,
		NextEXP:   RequiredExperience(level),
		Modifiers: NeutralModifiers,
		Moves:     make([]*MoveInstance, 0, len(moves)),
	}
	for _, mv := range moves {
		m.Moves = append(m.Moves, mv.NewInstance())
	}
	return m
}

// IsFainted reports whether the monster has no health left
func (m *Monster) IsFainted() bool {
	return m.CurrentHP <= 0
}

// TakeDamage lowers current health, never below 0
func (m *Monster) TakeDamage(amount int) {
	if amount < 0 {
		return
	}
	m.CurrentHP -= amount
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
}

// Heal raises current health up to MaxHP and returns the amount restored
func (m *Monster) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := m.CurrentHP
	m.CurrentHP += amount
	if m.CurrentHP > m.MaxHP {
		m.CurrentHP = m.MaxHP
	}
	return m.CurrentHP - before
}

// EffectiveSpeed is base speed scaled by the speed multiplier
func (m *Monster) EffectiveSpeed() float64 {
	return float64(m.Stats.Speed) * m.Modifiers.Speed
}

// ApplyBoost compounds b into the monster's multipliers
func (m *Monster) ApplyBoost(b StatBoost) {
	if b.Attack != 0 {
		m.Modifiers.Attack *= b.Attack
	}
	if b.Defense != 0 {
		m.Modifiers.Defense *= b.Defense
	}
	if b.Speed != 0 {
		m.Modifiers.Speed *= b.Speed
	}
}

// ResetForBattle clears the transient state carried over from a previous
// battle: multipliers go back to 1.0 and every cooldown to 0.
func (m *Monster) ResetForBattle() {
	m.Modifiers = NeutralModifiers
	for _, mv := range m.Moves {
		mv.CoolDown = 0
	}
}

// FindMove returns the monster's own instance of the move with the given id
func (m *Monster) FindMove(id string) (*MoveInstance, bool) {
	for _, mv := range m.Moves {
		if mv.ID == id {
			return mv, true
		}
	}
	return nil, false
}

// ReadyMoves returns the moves that are off cooldown
func (m *Monster) ReadyMoves() []*MoveInstance {
	var ready []*MoveInstance
	for _, mv := range m.Moves {
		if mv.Ready() {
			ready = append(ready, mv)
		}
	}
	return ready
}
