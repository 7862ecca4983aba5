package searcher

import (
	"reversi/game"
	"reversi/meta"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks moves with a fixed-depth alpha-beta search. A Minimax is not
// safe for concurrent ChooseMove calls; use one per player.
type Minimax struct {
	goroutines int
	depth      int
	evaluate   game.Evaluate
	metrics    Collector
}

// WithGoroutines scores root moves on a pool of goroutines. Every root move
// is searched with its own full window, so the chosen move does not depend
// on the pool size.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithDepth overrides meta.SearchDepth. Used by the match runner to keep
// experiments on large boards short.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		depth:      meta.SearchDepth,
		evaluate:   game.EvaluatePosition,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns color's best move on b. b is only read; every candidate
// is explored on its own clone.
func (m *Minimax) ChooseMove(b *game.Board, color game.Cell) (game.Move, SearchMetric, error) {
	moves := game.LegalMoves(b, color)
	if len(moves) == 0 {
		return game.Move{}, SearchMetric{}, ErrNoMove
	}

	m.metrics.Start(m.goroutines, m.depth)
	scores := m.scoreAll(b, color, moves)
	metric := m.metrics.Complete(len(moves))

	// Ties keep the earliest move in enumeration order.
	best := 0
	bestScore := MinScore
	for i, score := range scores {
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	log.Debug().
		Str("color", color.String()).
		Str("move", moves[best].String()).
		Int("score", bestScore).
		Int("candidates", len(moves)).
		Msg("search complete")
	return moves[best], metric, nil
}

func (m *Minimax) scoreAll(b *game.Board, color game.Cell, moves []game.Move) []int {
	scores := make([]int, len(moves))
	if m.goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			scores[i] = m.scoreRoot(b, color, move)
		}
		return scores
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				scores[idx] = m.scoreRoot(b, color, moves[idx])
			}
		}()
	}

	wg.Wait()
	return scores
}

func (m *Minimax) scoreRoot(b *game.Board, color game.Cell, move game.Move) int {
	child := b.Clone()
	game.Flip(child, move.Row, move.Col, color)
	score := m.minimax(child, color, color.Opposite(), m.depth, MinScore, MaxScore)

	log.Debug().
		Str("color", color.String()).
		Str("move", move.String()).
		Int("score", score).
		Msg("scored root move")
	return score
}

// minimax returns the value of b for root with toMove about to play.
//
// Two rules differ from textbook search and shape playing strength: the
// terminal test looks at root's mobility rather than toMove's, and a forced
// pass spends one ply of depth.
func (m *Minimax) minimax(b *game.Board, root, toMove game.Cell, depth, alpha, beta int) int {
	m.metrics.AddNode()

	if depth == 0 || (!game.HasAnyLegalMove(b, root) && game.HasAnyLegalMove(b, root.Opposite())) {
		m.metrics.AddEvaluation()
		return m.evaluate(b, root)
	}

	moves := game.LegalMoves(b, toMove)
	if len(moves) == 0 {
		return m.minimax(b, root, toMove, depth-1, alpha, beta)
	}

	if toMove == root {
		value := MinScore
		for _, move := range moves {
			child := b.Clone()
			game.Flip(child, move.Row, move.Col, toMove)
			score := m.minimax(child, root, toMove.Opposite(), depth-1, alpha, beta)
			value = max(value, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := MaxScore
	for _, move := range moves {
		child := b.Clone()
		game.Flip(child, move.Row, move.Col, toMove)
		score := m.minimax(child, root, toMove.Opposite(), depth-1, alpha, beta)
		value = min(value, score)
		beta = min(beta, score)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return value
}
