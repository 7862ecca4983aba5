package game

import "fmt"

// Move is a zero-based (row, column) placement.
type Move struct {
	Row int
	Col int
}

// String renders the move as row and column letters, e.g. "ab" for (0, 1).
func (m Move) String() string {
	if m.Row < 0 || m.Col < 0 {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return string([]byte{coordinateLetter(m.Row), coordinateLetter(m.Col)})
}

// ParseMove decodes the two-letter RowCol encoding.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("move %q: want two letters", s)
	}
	row, col := int(s[0])-'a', int(s[1])-'a'
	if row < 0 || row >= 26 || col < 0 || col >= 26 {
		return Move{}, fmt.Errorf("move %q: letters must be in a-z", s)
	}
	return Move{Row: row, Col: col}, nil
}

// HasAnyLegalMove reports whether color can play anywhere, scanning row-major
// and stopping at the first legal square.
func HasAnyLegalMove(b *Board, color Cell) bool {
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if IsLegalMove(b, row, col, color) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns color's legal moves in row-major order.
func LegalMoves(b *Board, color Cell) []Move {
	var moves []Move
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if IsLegalMove(b, row, col, color) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func countLegalMoves(b *Board, color Cell) int {
	total := 0
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if IsLegalMove(b, row, col, color) {
				total++
			}
		}
	}
	return total
}
