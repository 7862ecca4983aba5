package agent

import (
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline player that picks uniformly among legal
// moves. Equal seeds replay equal games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetric{}, searcher.ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetric{Candidates: len(moves)}, nil
}

func (a *randomAgent) Kind() string {
	return Random
}
