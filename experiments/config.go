package experiments

import (
	"errors"
	"fmt"
	"os"
	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/meta"

	"gopkg.in/yaml.v3"
)

// MatchConfig describes a batch of computer-only games. Each match up lists
// two agent IDs and is played Games times with colors alternating.
type MatchConfig struct {
	Name      string                `yaml:"name"`
	BoardSize int                   `yaml:"board_size"`
	Games     int                   `yaml:"games"` // Per match up
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][]int               `yaml:"matchups"`
}

func DefaultConfig() MatchConfig {
	return MatchConfig{
		Name:      "search_vs_random",
		BoardSize: 6,
		Games:     meta.DefaultGames,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: agent.Search, Goroutines: 4},
			{ID: 2, Kind: agent.Random, Seed: 1},
		},
		MatchUps: [][]int{{1, 2}},
	}
}

// ParseConfig decodes YAML and fills unset scalars with defaults.
func ParseConfig(data []byte) (MatchConfig, error) {
	var cfg MatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, fmt.Errorf("failed to parse match config: %w", err)
	}

	if cfg.Name == "" {
		cfg.Name = "match"
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = meta.DefaultBoardSize
	}
	if cfg.Games == 0 {
		cfg.Games = meta.DefaultGames
	}

	if err := cfg.Validate(); err != nil {
		return MatchConfig{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchConfig{}, fmt.Errorf("failed to read match config: %w", err)
	}
	return ParseConfig(data)
}

func (c MatchConfig) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > meta.MaxBoardSize {
		return fmt.Errorf("board size %d out of range 1..%d", c.BoardSize, meta.MaxBoardSize)
	}
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	if len(c.MatchUps) == 0 {
		return errors.New("no match ups configured")
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
		if a.Kind != agent.Search && a.Kind != agent.Random {
			return fmt.Errorf("agent %d: unsupported kind %q", a.ID, a.Kind)
		}
	}

	for i, matchUp := range c.MatchUps {
		if len(matchUp) != 2 {
			return fmt.Errorf("match up %d: need exactly two agents, got %d", i+1, len(matchUp))
		}
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("match up %d: unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}

func (c MatchConfig) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	return metrics.AgentConfig{}
}
