// Package console drives a battle from text commands
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/NP-Dat/monster-battle/internal/game"
	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/internal/transcript"
	"github.com/NP-Dat/monster-battle/pkg/logger"
)

// ErrUnknownCommand is returned for input that matches no command
var ErrUnknownCommand = errors.New("unknown command")

// CommandHandler handles one command; args excludes the command name
type CommandHandler func(args []string) error

type command struct {
	usage   string
	handler CommandHandler
}

// Console reads commands, applies them to a battle and prints the result
type Console struct {
	battle     *game.Battle
	out        io.Writer
	transcript *transcript.Encoder
	commands   map[string]command
	quit       bool
}

// New creates a console for b writing to out. enc may be nil.
func New(b *game.Battle, out io.Writer, enc *transcript.Encoder) *Console {
	return &Console{
		battle:     b,
		out:        out,
		transcript: enc,
		commands:   make(map[string]command),
	}
}

// RegisterCommand adds or replaces a command
func (c *Console) RegisterCommand(name, usage string, handler CommandHandler) {
	c.commands[name] = command{usage: usage, handler: handler}
}

// SetupDefaultCommands registers the built-in battle commands
func (c *Console) SetupDefaultCommands() {
	c.RegisterCommand("use", "use <n>     use move n from your roster", func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: use <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid move number %q", args[0])
		}
		return c.playerMove(n - 1)
	})

	c.RegisterCommand("moves", "moves       list your moves", func(args []string) error {
		c.printMoves()
		return nil
	})

	c.RegisterCommand("status", "status      show both monsters", func(args []string) error {
		c.printStatus()
		return nil
	})

	c.RegisterCommand("log", "log         show the full battle log", func(args []string) error {
		for _, line := range c.battle.Logs {
			fmt.Fprintln(c.out, line)
		}
		return nil
	})

	c.RegisterCommand("auto", "auto        let the AI finish the battle", func(args []string) error {
		return c.AutoPlay()
	})

	c.RegisterCommand("reset", "reset       start a new battle", func(args []string) error {
		c.battle.Reset()
		c.Start()
		return nil
	})

	c.RegisterCommand("help", "help        show this help", func(args []string) error {
		c.printHelp()
		return nil
	})

	c.RegisterCommand("quit", "quit        leave the game", func(args []string) error {
		c.quit = true
		return nil
	})
}

// Start prints the opening state and records it
func (c *Console) Start() {
	for _, line := range c.battle.Logs {
		fmt.Fprintln(c.out, line)
	}
	c.printStatus()
	c.record(func(enc *transcript.Encoder) error { return enc.BattleStart(c.battle) })
}

// ParseCommand runs one line of input. A bare number is shorthand for use.
func (c *Console) ParseCommand(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	if _, err := strconv.Atoi(fields[0]); err == nil {
		fields = append([]string{"use"}, fields...)
	}

	cmd, ok := c.commands[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, fields[0])
	}
	return cmd.handler(fields[1:])
}

// Run reads commands from r until quit or end of input
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !c.quit {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		if err := c.ParseCommand(scanner.Text()); err != nil {
			logger.CLI.Warn("Command failed: %v", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// AutoPlay lets the AI play both sides until the battle ends
func (c *Console) AutoPlay() error {
	for !c.battle.IsOver() {
		side := game.SideEnemy
		if c.battle.IsPlayerTurn {
			side = game.SidePlayer
		}
		entries, err := c.battle.AutoTurn()
		if err != nil {
			return err
		}
		c.show(side, entries)
	}
	return nil
}

// playerMove resolves the player's move, then the enemy's reply
func (c *Console) playerMove(index int) error {
	entries, err := c.battle.PlayerAttack(index)
	if err != nil {
		return err
	}
	c.show(game.SidePlayer, entries)

	if c.battle.IsOver() || c.battle.IsPlayerTurn {
		return nil
	}

	entries, err = c.battle.EnemyTurn()
	if err != nil {
		return err
	}
	c.show(game.SideEnemy, entries)
	return nil
}

func (c *Console) show(side game.Side, entries []game.LogEntry) {
	for _, e := range entries {
		fmt.Fprintln(c.out, e.Message)
	}
	c.record(func(enc *transcript.Encoder) error { return enc.Turn(c.battle, side, entries) })

	if c.battle.IsOver() {
		c.record(func(enc *transcript.Encoder) error { return enc.BattleOver(c.battle) })
		fmt.Fprintln(c.out, "Type reset to play again or quit to leave.")
		return
	}
	c.printStatus()
}

func (c *Console) record(write func(*transcript.Encoder) error) {
	if c.transcript == nil {
		return
	}
	if err := write(c.transcript); err != nil {
		logger.CLI.Error("Failed to write transcript: %v", err)
	}
}

func (c *Console) printStatus() {
	c.printMonster("You", c.battle.Player)
	c.printMonster("Foe", c.battle.Enemy)
}

func (c *Console) printMonster(label string, m *models.Monster) {
	fmt.Fprintf(c.out, "%-4s %-14s %-6s Lv.%-3d HP %3d/%-3d %s\n",
		label, m.Name, m.Element.Title(), m.Level, m.CurrentHP, m.MaxHP, hpBar(m.CurrentHP, m.MaxHP))
}

func (c *Console) printMoves() {
	for i, mv := range c.battle.Player.Moves {
		state := "ready"
		if !mv.Ready() {
			state = fmt.Sprintf("recharging %d", mv.CoolDown)
		}
		kind := "special"
		if mv.IsPhysical {
			kind = "physical"
		}
		if !mv.IsDamaging() {
			kind = "utility"
		}
		fmt.Fprintf(c.out, "%d. %-14s %-6s %-8s pow %-3d %s\n", i+1, mv.Name, mv.Element.Title(), kind, mv.Power, state)
	}
}

func (c *Console) printHelp() {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(c.out, c.commands[name].usage)
	}
}

func hpBar(current, maxHP int) string {
	const width = 20
	filled := 0
	if maxHP > 0 {
		filled = current * width / maxHP
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
