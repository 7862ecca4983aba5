package agent

import (
	"reversi/game"
	"reversi/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns the computer player backed by minimax search.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetric, error) {
	return a.minimax.ChooseMove(state.Board, state.Turn)
}

func (a searchAgent) Kind() string {
	return Search
}
