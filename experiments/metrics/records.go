package metrics

import "time"

type AgentConfig struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`       // search or random
	Goroutines int    `yaml:"goroutines"` // Root fan-out of search agents
	Depth      int    `yaml:"depth"`      // Search plies, 0 means meta.SearchDepth
	Seed       uint64 `yaml:"seed"`       // Base seed of random agents
}

type MoveMetric struct {
	Step        int
	Player      string // B or W
	Move        string // RowCol letters
	Hash        uint64 // game.StateHash after the move
	Duration    time.Duration
	Candidates  int
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
}

type GameMetric struct {
	DarkAgent  int    // AgentConfig.ID
	LightAgent int    // AgentConfig.ID
	Winner     string // B, W or draw
	Dark       int
	Light      int
	Forfeit    bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
