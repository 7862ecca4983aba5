package agent

import (
	"reversi/game"
	"reversi/searcher"
)

// Kinds of agents, as used in match configurations and records.
const (
	Human  = "human"
	Search = "search"
	Random = "random"
)

type Agent interface {
	// FindMove returns a move for the player to move and search metrics (if collected).
	FindMove(state *game.GameState) (game.Move, searcher.SearchMetric, error)
	Kind() string
}
