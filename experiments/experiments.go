package experiments

import (
	"fmt"
	"reversi/agent"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
)

// Run plays every match up of cfg and stores the records through writer.
// A nil writer skips storage.
func Run(cfg MatchConfig, writer *metrics.Writer) ([]metrics.GameRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		config1 := cfg.agent(matchUp[0])
		config2 := cfg.agent(matchUp[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			count++

			// Alternate colors so neither agent always moves first
			dark, light := config1, config2
			if i%2 == 1 {
				dark, light = light, dark
			}

			gameMetric, moveMetrics, err := runGame(cfg.BoardSize, count, dark, light)
			if err != nil {
				return gameRecords, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if writer == nil {
		return gameRecords, nil
	}
	return gameRecords, store(writer, cfg.Agents, gameRecords, moveRecords)
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame executes a single game between two agents
func runGame(n, id int, dark, light metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := map[game.Cell]agent.Agent{
		game.Dark:  createAgent(dark, id),
		game.Light: createAgent(light, id),
	}
	e, err := engine.NewLocal(n, agents)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	winner := result.Winner.String()
	if result.Winner == game.Empty {
		winner = "draw"
	}
	gameMetric := metrics.GameMetric{
		DarkAgent:  dark.ID,
		LightAgent: light.ID,
		Winner:     winner,
		Dark:       result.Dark,
		Light:      result.Light,
		Forfeit:    result.Forfeit,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Duration:   result.Duration,
		TotalMoves: len(result.Moves),
	}

	moveMetrics := make([]metrics.MoveMetric, 0, len(result.Moves))
	for _, mm := range result.Moves {
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:        mm.Step,
			Player:      mm.Player.String(),
			Move:        mm.Move.String(),
			Hash:        uint64(mm.Hash),
			Duration:    mm.Duration,
			Candidates:  mm.Candidates,
			Nodes:       mm.Nodes,
			Evaluations: mm.Evaluations,
			Cutoffs:     mm.Cutoffs,
		})
	}
	return gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	if config.Kind == agent.Random {
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return agent.NewSearchAgent(searcher.NewMinimax(options...))
}
