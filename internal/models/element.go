package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownElement is returned when an element name can't be parsed
var ErrUnknownElement = errors.New("unknown element")

// Element is the closed set of monster and move types
type Element uint8

const (
	ElementNormal Element = iota
	ElementFire
	ElementWater
	ElementGrass

	elementCount
)

// Elements lists every element in declaration order
var Elements = [elementCount]Element{ElementNormal, ElementFire, ElementWater, ElementGrass}

var elementNames = [elementCount]string{
	ElementNormal: "normal",
	ElementFire:   "fire",
	ElementWater:  "water",
	ElementGrass:  "grass",
}

var titleCaser = cases.Title(language.English)

// String returns the lower-case name used in data files
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elementNames[e]
}

// Title returns the display form of the element name, e.g. "Fire"
func (e Element) Title() string {
	return titleCaser.String(e.String())
}

// Valid reports whether e is one of the declared elements
func (e Element) Valid() bool {
	return e < elementCount
}

// ParseElement converts a case-insensitive name into an Element
func ParseElement(s string) (Element, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range elementNames {
		if n == name {
			return Element(e), nil
		}
	}
	return ElementNormal, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

// MarshalText implements encoding.TextMarshaler
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// effectiveness[attack][defend] holds the type multiplier. Pairs not set
// explicitly stay at neutral.
var effectiveness = func() [elementCount][elementCount]float64 {
	var t [elementCount][elementCount]float64
	for a := range t {
		for d := range t[a] {
			t[a][d] = 1.0
		}
	}
	t[ElementFire][ElementGrass] = 2.0
	t[ElementWater][ElementFire] = 2.0
	t[ElementGrass][ElementWater] = 2.0

	t[ElementGrass][ElementFire] = 0.5
	t[ElementFire][ElementWater] = 0.5
	t[ElementWater][ElementGrass] = 0.5
	return t
}()

// Effectiveness returns the damage multiplier for a move of element attack
// hitting a defender of element defend
func Effectiveness(attack, defend Element) float64 {
	if !attack.Valid() || !defend.Valid() {
		return 1.0
	}
	return effectiveness[attack][defend]
}
