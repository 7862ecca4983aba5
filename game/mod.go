package game

import "errors"

// Cell is the content of a board square. Light and Dark double as the two
// player colors.
type Cell uint8

const (
	Empty Cell = iota
	Light
	Dark
)

// Opposite returns the other color. Empty has no opposite and maps to itself.
func (c Cell) Opposite() Cell {
	switch c {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return Empty
	}
}

// IsColor reports whether c holds a disc.
func (c Cell) IsColor() bool {
	return c == Light || c == Dark
}

// String returns the terminal letter for the cell: U, W or B.
func (c Cell) String() string {
	switch c {
	case Light:
		return "W"
	case Dark:
		return "B"
	default:
		return "U"
	}
}

// ParseCell decodes a terminal letter (case-insensitive).
func ParseCell(r rune) (Cell, error) {
	switch r {
	case 'U', 'u':
		return Empty, nil
	case 'W', 'w':
		return Light, nil
	case 'B', 'b':
		return Dark, nil
	}
	return Empty, ErrInvalidCell
}

var (
	ErrInvalidSize = errors.New("invalid board size")
	ErrInvalidCell = errors.New("invalid cell")
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

type StateHash uint64

// Evaluate scores a position from color's perspective; higher is better for color.
type Evaluate func(b *Board, color Cell) int
