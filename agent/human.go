package agent

import (
	"bufio"
	"fmt"
	"io"
	"reversi/game"
	"reversi/searcher"
	"unicode"
)

type humanAgent struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHumanAgent prompts on out and reads RowCol letter pairs from in. Input
// that does not name a square comes back as an off-board move, which the
// game loop treats like any other invalid move.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewReader(in), out: out}
}

// FindMove reads the first non-space character and the one right after it.
// Anything further stays buffered for the next prompt, so "abcd" plays ab
// then cd.
func (a *humanAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetric, error) {
	fmt.Fprintf(a.out, "Enter move for colour %s (RowCol): ", state.Turn)

	row, err := a.readNonSpace()
	if err != nil {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
	}
	col, _, err := a.in.ReadRune()
	if err != nil {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
	}

	move, err := game.ParseMove(string([]rune{row, col}))
	if err != nil {
		return game.Move{Row: -1, Col: -1}, searcher.SearchMetric{}, nil
	}
	return move, searcher.SearchMetric{}, nil
}

func (a *humanAgent) readNonSpace() (rune, error) {
	for {
		r, _, err := a.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (a *humanAgent) Kind() string {
	return Human
}
