package engine

import (
	"errors"
	"fmt"
	"io"
	"reversi/agent"
	"reversi/game"
	"reversi/searcher"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   game.Move
	Hash   game.StateHash // State after the move, zero for a forfeited move
	searcher.SearchMetric
}

type Result struct {
	Winner    game.Cell // Empty on a draw
	Light     int
	Dark      int
	Forfeit   bool // The loser played an invalid move
	Board     *game.Board
	Moves     []MoveMetric
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Option func(e *LocalEngine)

// WithOutput sets where boards and game messages are written.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		if w != nil {
			e.out = w
		}
	}
}

// WithPosition starts the game from b with turn to move instead of the
// standard opening.
func WithPosition(b *game.Board, turn game.Cell) Option {
	return func(e *LocalEngine) {
		e.State = &game.GameState{Board: b, Turn: turn}
	}
}

type LocalEngine struct {
	State  *game.GameState
	Agents map[game.Cell]agent.Agent
	out    io.Writer
}

var _ Engine = (*LocalEngine)(nil)

func NewLocal(n int, agents map[game.Cell]agent.Agent, options ...Option) (*LocalEngine, error) {
	if agents[game.Dark] == nil || agents[game.Light] == nil {
		return nil, errors.New("need an agent for each color")
	}

	state, err := game.NewGameState(n)
	if err != nil {
		return nil, err
	}

	e := &LocalEngine{
		State:  state,
		Agents: agents,
		out:    io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until neither color can move. An invalid move
// ends the game at once and hands the win to the opponent.
func (e *LocalEngine) Run() (Result, error) {
	result := Result{StartTime: time.Now()}

	log.Info().
		Int("size", e.State.Board.Size()).
		Str("dark", e.Agents[game.Dark].Kind()).
		Str("light", e.Agents[game.Light].Kind()).
		Msg("game started")

	e.render()

	step := 1
	for game.HasAnyLegalMove(e.State.Board, e.State.Player()) {
		turn := e.State.Player()
		current := e.Agents[turn]

		move, metric, err := current.FindMove(e.State)
		if err != nil {
			return e.finish(result), fmt.Errorf("%s player failed to find a move: %w", turn, err)
		}
		result.Moves = append(result.Moves, MoveMetric{
			Step:         step,
			Player:       turn,
			Move:         move,
			SearchMetric: metric,
		})

		log.Debug().
			Int("step", step).
			Str("player", turn.String()).
			Str("move", move.String()).
			Dur("duration", metric.Duration).
			Msg("move chosen")

		if !slices.Contains(e.State.LegalMoves(), move) {
			fmt.Fprintln(e.out, "Invalid move.")
			fmt.Fprintf(e.out, "%s player wins.\n", turn.Opposite())

			result.Winner = turn.Opposite()
			result.Forfeit = true
			log.Info().Str("player", turn.String()).Str("move", move.String()).Msg("invalid move, game forfeited")
			return e.finish(result), nil
		}

		next, err := e.State.Play(move)
		if err != nil {
			return e.finish(result), fmt.Errorf("failed to play %s for %s: %w", move, turn, err)
		}
		e.State = next
		result.Moves[len(result.Moves)-1].Hash = next.Hash()

		if current.Kind() != agent.Human {
			fmt.Fprintf(e.out, "Computer places %s at %s.\n", turn, move)
		}
		e.render()

		if next.Player() == turn && !next.Over() {
			fmt.Fprintf(e.out, "%s player has no valid move.\n", turn.Opposite())
		}
		step++
	}

	result.Winner = e.State.Winner()
	if result.Winner == game.Empty {
		fmt.Fprintln(e.out, "Draw!")
	} else {
		fmt.Fprintf(e.out, "%s player wins.\n", result.Winner)
	}
	return e.finish(result), nil
}

func (e *LocalEngine) render() {
	if err := e.State.Board.Render(e.out); err != nil {
		log.Warn().Err(err).Msg("failed to render board")
	}
}

func (e *LocalEngine) finish(result Result) Result {
	result.Board = e.State.Board.Clone()
	result.Light, result.Dark = e.State.Board.CountPieces()
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	winner := result.Winner.String()
	if result.Winner == game.Empty {
		winner = "draw"
	}
	log.Info().
		Str("winner", winner).
		Int("light", result.Light).
		Int("dark", result.Dark).
		Int("moves", len(result.Moves)).
		Bool("forfeit", result.Forfeit).
		Msg("game over")
	return result
}
