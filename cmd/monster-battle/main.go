package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/NP-Dat/monster-battle/internal/catalog"
	"github.com/NP-Dat/monster-battle/internal/console"
	"github.com/NP-Dat/monster-battle/internal/game"
	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/internal/persistence"
	"github.com/NP-Dat/monster-battle/internal/transcript"
	"github.com/NP-Dat/monster-battle/pkg/logger"
)

func main() {
	// Command line flags
	basePath := flag.String("basePath", "", "Directory holding config/moves, config/monsters and config/growth (built-in data when empty)")
	logLevel := flag.String("logLevel", "warn", "Log level (debug, info, warn, error)")
	logDir := flag.String("logDir", "", "Directory for log files (console only when empty)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	playerElement := flag.String("player", "fire", "Element of the player's starter")
	enemyElement := flag.String("enemy", "water", "Element of the enemy's starter")
	enemyLevel := flag.Int("enemyLevel", 0, "Fight a random monster of this level instead of a starter")
	auto := flag.Bool("auto", false, "Let the AI play both sides")
	transcriptPath := flag.String("transcript", "", "Write the battle as newline-delimited JSON to this file")

	flag.Parse()

	initLogging(*logLevel, *logDir)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.CLI.Info("Using random seed %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	config, err := loadConfig(*basePath)
	if err != nil {
		logger.CLI.Fatal("Failed to load game data: %v", err)
	}

	moves, err := catalog.NewMoveCatalog(config.Moves)
	if err != nil {
		logger.CLI.Fatal("Invalid move data: %v", err)
	}
	repo, err := catalog.NewMonsterRepository(moves, config.Monsters, rng)
	if err != nil {
		logger.CLI.Fatal("Invalid monster data: %v", err)
	}

	player, err := models.ParseElement(*playerElement)
	if err != nil {
		logger.CLI.Fatal("Invalid -player: %v", err)
	}
	enemy, err := models.ParseElement(*enemyElement)
	if err != nil {
		logger.CLI.Fatal("Invalid -enemy: %v", err)
	}

	matchup := func() (*models.Monster, *models.Monster) {
		if *enemyLevel > 0 {
			return repo.GetStarter(player), repo.GetRandomMonster(*enemyLevel)
		}
		return repo.GetStarter(player), repo.GetStarter(enemy)
	}

	growth := config.Growth
	engine := game.NewEngine(rng, models.Progression{Growth: &growth})
	battle := game.NewBattle(engine, repo, matchup)

	var enc *transcript.Encoder
	if *transcriptPath != "" {
		f, err := os.Create(*transcriptPath)
		if err != nil {
			logger.CLI.Fatal("Failed to create transcript: %v", err)
		}
		defer f.Close()
		enc = transcript.NewEncoder(f)
	}

	c := console.New(battle, os.Stdout, enc)
	c.SetupDefaultCommands()
	c.Start()

	if *auto {
		if err := c.AutoPlay(); err != nil {
			logger.CLI.Error("Auto play failed: %v", err)
		}
		return
	}

	fmt.Println("Type help for commands.")
	if err := c.Run(os.Stdin); err != nil {
		logger.CLI.Error("%v", err)
	}
}

// loadConfig reads game data from basePath, or returns the built-in data
func loadConfig(basePath string) (*models.GameConfig, error) {
	if basePath == "" {
		return &models.GameConfig{
			Moves:    catalog.DefaultMoves(),
			Monsters: catalog.DefaultMonsters(),
			Growth:   models.DefaultGrowth,
		}, nil
	}
	return persistence.NewConfigLoader(basePath).LoadGameConfig()
}

// initLogging sets the global level and optional file output
func initLogging(levelStr, dir string) {
	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		log.Printf("Warning: %v, using WARN", err)
		level = logger.WARN
	}
	logger.SetGlobalLogLevel(level)

	if dir == "" {
		return
	}
	if err := logger.InitializeFileLogging(dir); err != nil {
		log.Printf("Warning: Failed to initialize file logging: %v", err)
	}
}
