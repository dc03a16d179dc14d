package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/NP-Dat/monster-battle/internal/game"
	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/internal/transcript"
)

type fixedRoller struct{}

func (fixedRoller) Float64() float64 { return 0.99 }
func (fixedRoller) Intn(int) int     { return 0 }

func newTestConsole(out *bytes.Buffer, enc *transcript.Encoder) *Console {
	tackle := &models.MoveDefinition{ID: "tackle", Name: "Tackle", Power: 60, IsPhysical: true}
	slam := &models.MoveDefinition{ID: "slam", Name: "Slam", Power: 150, IsPhysical: true, MaxCoolDown: 3}
	stats := models.Stats{Strength: 15, Speed: 10, Constitution: 10}
	matchup := func() (*models.Monster, *models.Monster) {
		p := models.NewMonster(models.MonsterDefinition{ID: "p", Name: "Hero", Element: models.ElementFire, Level: 1, MaxHP: 100, Stats: stats}, []*models.MoveDefinition{tackle, slam})
		e := models.NewMonster(models.MonsterDefinition{ID: "e", Name: "Slime", Element: models.ElementWater, Level: 1, MaxHP: 200, Stats: stats}, []*models.MoveDefinition{tackle})
		return p, e
	}
	b := game.NewBattle(game.NewEngine(fixedRoller{}, models.DefaultProgression), nil, matchup)
	c := New(b, out, enc)
	c.SetupDefaultCommands()
	return c
}

func TestRunCommands(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(&out, nil)
	c.Start()

	if err := c.Run(strings.NewReader("moves\n1\nuse 2\n2\nquit\nmoves\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"A wild Slime appears!",
		"1. Tackle",
		"Hero uses Tackle!",
		"Slime uses Tackle!",
		"Hero uses Slam!",
		"Hero fails! Slam is recharging (3 turns).",
		"Fire",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Count(text, "1. Tackle") != 1 {
		t.Error("commands after quit must not run")
	}
}

func TestParseCommandErrors(t *testing.T) {
	var out bytes.Buffer
	c := newTestConsole(&out, nil)

	if err := c.ParseCommand("dance"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if err := c.ParseCommand("use x"); err == nil {
		t.Fatal("expected error for non-numeric move")
	}
	if err := c.ParseCommand("9"); !errors.Is(err, game.ErrInvalidMoveIndex) {
		t.Fatalf("expected ErrInvalidMoveIndex, got %v", err)
	}
	if err := c.ParseCommand("   "); err != nil {
		t.Fatalf("blank input should be ignored, got %v", err)
	}
}

func TestAutoPlayWritesTranscript(t *testing.T) {
	var out, log bytes.Buffer
	c := newTestConsole(&out, transcript.NewEncoder(&log))
	c.Start()

	if err := c.ParseCommand("auto"); err != nil {
		t.Fatalf("auto: %v", err)
	}
	if !c.battle.IsOver() {
		t.Fatal("auto should finish the battle")
	}

	dec := transcript.NewDecoder(&log)
	var types []transcript.RecordType
	for {
		rec, err := dec.Receive()
		if err != nil {
			break
		}
		types = append(types, rec.Type)
	}
	if len(types) < 3 || types[0] != transcript.RecordBattleStart || types[len(types)-1] != transcript.RecordBattleOver {
		t.Fatalf("unexpected transcript record types %v", types)
	}

	if err := c.ParseCommand("reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if c.battle.IsOver() {
		t.Fatal("reset should start a new battle")
	}
}
