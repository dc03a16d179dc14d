package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NP-Dat/monster-battle/internal/models"
	"github.com/NP-Dat/monster-battle/pkg/logger"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when no file exists for a config section
var ErrConfigNotFound = errors.New("config file not found")

// extensions are tried in order for every config section
var extensions = []string{".json", ".yaml", ".yml"}

// ConfigLoader is responsible for loading catalog and balance data from
// JSON or YAML files under BasePath/config
type ConfigLoader struct {
	BasePath string
}

// NewConfigLoader creates a new ConfigLoader with the given base path
func NewConfigLoader(basePath string) *ConfigLoader {
	return &ConfigLoader{
		BasePath: basePath,
	}
}

// load finds config/<name>.{json,yaml,yml} and decodes it into target
func (c *ConfigLoader) load(name string, target interface{}) error {
	for _, ext := range extensions {
		filePath := filepath.Join(c.BasePath, "config", name+ext)

		data, err := os.ReadFile(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read %s config file: %w", name, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, target)
		} else {
			err = yaml.Unmarshal(data, target)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		logger.Persistence.Debug("Loaded %s", filePath)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

// LoadMoves loads move definitions from the moves file
func (c *ConfigLoader) LoadMoves() ([]models.MoveDefinition, error) {
	var config struct {
		Moves []models.MoveDefinition `json:"moves" yaml:"moves"`
	}
	if err := c.load("moves", &config); err != nil {
		return nil, err
	}
	return config.Moves, nil
}

// LoadMonsters loads monster definitions from the monsters file
func (c *ConfigLoader) LoadMonsters() ([]models.MonsterDefinition, error) {
	var config struct {
		Monsters []models.MonsterDefinition `json:"monsters" yaml:"monsters"`
	}
	if err := c.load("monsters", &config); err != nil {
		return nil, err
	}
	return config.Monsters, nil
}

// LoadGrowth loads the level-up growth table. Elements missing from the
// file keep their default growth.
func (c *ConfigLoader) LoadGrowth() (models.GrowthTable, error) {
	table := models.DefaultGrowth

	var config struct {
		Growth map[string]models.StatGrowth `json:"growth" yaml:"growth"`
	}
	if err := c.load("growth", &config); err != nil {
		return table, err
	}

	for name, growth := range config.Growth {
		element, err := models.ParseElement(name)
		if err != nil {
			return table, fmt.Errorf("failed to parse growth table: %w", err)
		}
		table.Set(element, growth)
	}
	return table, nil
}

// LoadGameConfig loads moves and monsters, plus the growth table when a
// growth file is present
func (c *ConfigLoader) LoadGameConfig() (*models.GameConfig, error) {
	moves, err := c.LoadMoves()
	if err != nil {
		return nil, err
	}

	monsters, err := c.LoadMonsters()
	if err != nil {
		return nil, err
	}

	growth, err := c.LoadGrowth()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}

	logger.Persistence.Info("Loaded %d moves and %d monsters from %s", len(moves), len(monsters), c.BasePath)
	return &models.GameConfig{
		Moves:    moves,
		Monsters: monsters,
		Growth:   growth,
	}, nil
}
