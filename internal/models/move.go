package models

// StatBoost holds multiplicative factors applied to a combatant's transient
// multipliers. A zero factor leaves that multiplier untouched.
type StatBoost struct {
	Attack  float64 `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense float64 `json:"defense,omitempty" yaml:"defense,omitempty"`
	Speed   float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
}

// IsZero reports whether the boost changes nothing
func (b StatBoost) IsZero() bool {
	return b.Attack == 0 && b.Defense == 0 && b.Speed == 0
}

// MoveDefinition is the immutable catalog template for a move
type MoveDefinition struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Power        int        `json:"power" yaml:"power"` // 0 marks a utility move
	Element      Element    `json:"element" yaml:"element"`
	IsPhysical   bool       `json:"isPhysical" yaml:"isPhysical"`
	MinLevel     int        `json:"minLevel" yaml:"minLevel"`
	MaxCoolDown  int        `json:"maxCoolDown,omitempty" yaml:"maxCoolDown,omitempty"`
	HealFraction float64    `json:"healFraction,omitempty" yaml:"healFraction,omitempty"` // of max HP, 0..1
	Boost        *StatBoost `json:"boost,omitempty" yaml:"boost,omitempty"`
}

// IsDamaging reports whether the move deals damage
func (d *MoveDefinition) IsDamaging() bool {
	return d.Power > 0
}

// NewInstance returns an independent, ready-to-use copy of the definition
func (d *MoveDefinition) NewInstance() *MoveInstance {
	def := *d
	if d.Boost != nil {
		boost := *d.Boost
		def.Boost = &boost
	}
	return &MoveInstance{MoveDefinition: def}
}

// MoveInstance is a combatant-owned copy of a definition with live cooldown
type MoveInstance struct {
	MoveDefinition
	CoolDown int `json:"coolDown"` // turns until usable; 0 = ready
}

// Ready reports whether the move can be used this turn
func (m *MoveInstance) Ready() bool {
	return m.CoolDown <= 0
}

// Clone returns a copy of the instance that shares no state with m
func (m *MoveInstance) Clone() *MoveInstance {
	c := m.MoveDefinition.NewInstance()
	c.CoolDown = m.CoolDown
	return c
}
