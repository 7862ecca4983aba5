package engine

import (
	"bytes"
	"errors"
	"io"
	"reversi/agent"
	"reversi/game"
	"reversi/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of moves.
type scripted struct {
	moves []game.Move
}

func (s *scripted) FindMove(state *game.GameState) (game.Move, searcher.SearchMetric, error) {
	if len(s.moves) == 0 {
		return game.Move{}, searcher.SearchMetric{}, errors.New("script exhausted")
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, searcher.SearchMetric{}, nil
}

func (s *scripted) Kind() string {
	return agent.Search
}

func TestNewLocal(t *testing.T) {
	t.Run("requires both agents", func(t *testing.T) {
		_, err := NewLocal(4, map[game.Cell]agent.Agent{game.Dark: &scripted{}})
		require.Error(t, err)
	})

	t.Run("rejects invalid sizes", func(t *testing.T) {
		_, err := NewLocal(0, map[game.Cell]agent.Agent{game.Dark: &scripted{}, game.Light: &scripted{}})
		require.ErrorIs(t, err, game.ErrInvalidSize)
	})

	t.Run("dark moves first", func(t *testing.T) {
		e, err := NewLocal(4, map[game.Cell]agent.Agent{game.Dark: &scripted{}, game.Light: &scripted{}})
		require.NoError(t, err)
		require.Equal(t, game.Dark, e.State.Turn)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("invalid human move forfeits the game", func(t *testing.T) {
		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{
			game.Dark:  agent.NewHumanAgent(strings.NewReader("aa\n"), &out),
			game.Light: &scripted{},
		}
		e, err := NewLocal(4, agents, WithOutput(&out))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.Light, result.Winner)
		require.True(t, result.Forfeit)
		require.Equal(t, 2, result.Light)
		require.Equal(t, 2, result.Dark)
		require.True(t, strings.HasSuffix(out.String(), "Invalid move.\nW player wins.\n"),
			"Output should announce the forfeit, got %q", out.String())
	})

	t.Run("human move is applied and rendered", func(t *testing.T) {
		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{
			game.Dark:  agent.NewHumanAgent(strings.NewReader("ab\nzz\n"), &out),
			game.Light: &scripted{moves: []game.Move{{Row: 0, Col: 0}}},
		}
		e, err := NewLocal(4, agents, WithOutput(&out))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Contains(t, out.String(), "  abcd\na UBUU\nb UBBU\nc UBWU\nd UUUU\n",
			"Board should show dark's capture at bb")
		require.Contains(t, out.String(), "Computer places W at aa.\n")
		require.Len(t, result.Moves, 3)
		require.True(t, result.Forfeit, "zz is off the board")
		require.NotZero(t, result.Moves[0].Hash)
		require.Zero(t, result.Moves[2].Hash, "A forfeited move leaves no state")
		require.Equal(t, game.Light, result.Winner)
	})

	t.Run("finished position reports the winner by count", func(t *testing.T) {
		b, err := game.ParseBoard(
			"WWWW",
			"WWWW",
			"WWBB",
			"BBBB",
		)
		require.NoError(t, err)

		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{game.Dark: &scripted{}, game.Light: &scripted{}}
		e, err := NewLocal(4, agents, WithOutput(&out), WithPosition(b, game.Dark))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.Light, result.Winner)
		require.Equal(t, 10, result.Light)
		require.Equal(t, 6, result.Dark)
		require.False(t, result.Forfeit)
		require.Empty(t, result.Moves)
		require.True(t, strings.HasSuffix(out.String(), "W player wins.\n"))
	})

	t.Run("equal counts draw", func(t *testing.T) {
		b, err := game.ParseBoard("WB", "BW")
		require.NoError(t, err)

		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{game.Dark: &scripted{}, game.Light: &scripted{}}
		e, err := NewLocal(2, agents, WithOutput(&out), WithPosition(b, game.Dark))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, game.Empty, result.Winner)
		require.True(t, strings.HasSuffix(out.String(), "Draw!\n"))
	})

	t.Run("player without a reply passes", func(t *testing.T) {
		b, err := game.ParseBoard(
			"UWBU",
			"UUUU",
			"UUUU",
			"BWUU",
		)
		require.NoError(t, err)

		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{
			game.Dark:  &scripted{moves: []game.Move{{Row: 0, Col: 0}, {Row: 3, Col: 2}}},
			game.Light: &scripted{},
		}
		e, err := NewLocal(4, agents, WithOutput(&out), WithPosition(b, game.Dark))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Contains(t, out.String(), "Computer places B at aa.\n")
		require.Contains(t, out.String(), "W player has no valid move.\n")
		require.Contains(t, out.String(), "Computer places B at dc.\n")
		require.True(t, strings.HasSuffix(out.String(), "B player wins.\n"))
		require.Equal(t, game.Dark, result.Winner)
		require.Equal(t, 6, result.Dark)
		require.Equal(t, 0, result.Light)
	})

	t.Run("agent failure stops the game", func(t *testing.T) {
		agents := map[game.Cell]agent.Agent{
			game.Dark:  agent.NewHumanAgent(strings.NewReader(""), io.Discard),
			game.Light: &scripted{},
		}
		e, err := NewLocal(4, agents)
		require.NoError(t, err)

		_, err = e.Run()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("computer against computer plays to the end", func(t *testing.T) {
		play := func() (Result, string) {
			var out bytes.Buffer
			agents := map[game.Cell]agent.Agent{
				game.Dark:  agent.NewSearchAgent(searcher.NewMinimax()),
				game.Light: agent.NewSearchAgent(searcher.NewMinimax(searcher.WithGoroutines(4))),
			}
			e, err := NewLocal(4, agents, WithOutput(&out))
			require.NoError(t, err)

			result, err := e.Run()
			require.NoError(t, err)
			return result, out.String()
		}

		result, out := play()

		require.False(t, result.Forfeit)
		require.False(t, game.HasAnyLegalMove(result.Board, game.Dark))
		require.False(t, game.HasAnyLegalMove(result.Board, game.Light))
		light, dark := result.Board.CountPieces()
		require.Equal(t, light, result.Light)
		require.Equal(t, dark, result.Dark)
		require.Equal(t, game.Winner(result.Board), result.Winner)
		require.Equal(t, 4+len(result.Moves), light+dark, "Every move adds one disc")
		require.Contains(t, out, "Computer places B at ab.\n")

		again, _ := play()
		require.True(t, result.Board.Equal(again.Board), "Search is deterministic")
		for i := range result.Moves {
			require.Equal(t, result.Moves[i].Hash, again.Moves[i].Hash, "Replays should hash equally at step %d", i+1)
		}
	})

	t.Run("move hashes follow the game state", func(t *testing.T) {
		agents := map[game.Cell]agent.Agent{
			game.Dark:  agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(2))),
			game.Light: agent.NewRandomAgent(5),
		}
		e, err := NewLocal(4, agents)
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)
		require.NotEmpty(t, result.Moves)

		state, err := game.NewGameState(4)
		require.NoError(t, err)
		for _, mm := range result.Moves {
			require.Equal(t, state.Player(), mm.Player)
			state, err = state.Play(mm.Move)
			require.NoError(t, err)
			require.Equal(t, state.Hash(), mm.Hash, "Step %d should record the state after the move", mm.Step)
		}
	})

	t.Run("stuck first player loses on count", func(t *testing.T) {
		b, err := game.ParseBoard(
			"WBUU",
			"WUUU",
			"UUUU",
			"UUUU",
		)
		require.NoError(t, err)

		var out bytes.Buffer
		agents := map[game.Cell]agent.Agent{game.Dark: &scripted{}, game.Light: &scripted{}}
		e, err := NewLocal(4, agents, WithOutput(&out), WithPosition(b, game.Dark))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Empty(t, result.Moves)
		require.Equal(t, game.Light, result.Winner)
		require.True(t, strings.HasSuffix(out.String(), "W player wins.\n"))
	})
}
