package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is a board plus the color to move. Play never mutates the
// receiver; it returns a new state.
type GameState struct {
	Board *Board
	Turn  Cell
}

// NewGameState sets up an n×n game with Dark to move.
func NewGameState(n int) (*GameState, error) {
	b, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	return &GameState{Board: b, Turn: Dark}, nil
}

func (gs GameState) Copy() *GameState {
	return &GameState{Board: gs.Board.Clone(), Turn: gs.Turn}
}

func (gs GameState) Player() Cell {
	return gs.Turn
}

// LegalMoves returns the moves available to the player to move.
func (gs GameState) LegalMoves() []Move {
	return LegalMoves(gs.Board, gs.Turn)
}

// Over reports whether neither color can move.
func (gs GameState) Over() bool {
	return !HasAnyLegalMove(gs.Board, gs.Turn) && !HasAnyLegalMove(gs.Board, gs.Turn.Opposite())
}

// Play applies move for the player to move and hands the turn over. When the
// opponent has no reply the same player moves again.
func (gs GameState) Play(move Move) (*GameState, error) {
	if gs.Over() {
		return nil, ErrGameOver
	}
	next := gs.Copy()
	if _, err := ApplyMove(next.Board, move.Row, move.Col, gs.Turn); err != nil {
		return nil, err
	}
	if HasAnyLegalMove(next.Board, gs.Turn.Opposite()) {
		next.Turn = gs.Turn.Opposite()
	}
	return next, nil
}

// Winner decides the game by disc count on the current board. The engine
// calls it once the player to move is stuck, which may happen before Over
// holds when a fixture position starts without a move for Turn.
func (gs GameState) Winner() Cell {
	return Winner(gs.Board)
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Board.n))
	binary.Write(hasher, binary.LittleEndian, uint8(gs.Turn))
	hasher.Write(cellBytes(gs.Board.cells))

	return StateHash(hasher.Sum64())
}

func (gs GameState) String() string {
	return fmt.Sprintf("%s to move\n%s", gs.Turn, gs.Board)
}

func cellBytes(cells []Cell) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out
}
