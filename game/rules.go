package game

import "fmt"

// directions lists the eight compass steps in the order they are scanned.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsLegalInDirection reports whether placing color at (row, col) would
// capture along (dRow, dCol): one or more opposite discs followed by a disc
// of color, with no empty square or board edge in between.
func IsLegalInDirection(b *Board, row, col int, color Cell, dRow, dCol int) bool {
	if !color.IsColor() || (dRow == 0 && dCol == 0) {
		return false
	}
	opponent := color.Opposite()
	captured := false
	r, c := row+dRow, col+dCol
	for b.InBounds(r, c) {
		switch b.cells[r*b.n+c] {
		case opponent:
			captured = true
			r += dRow
			c += dCol
		case color:
			return captured
		default:
			return false
		}
	}
	return false
}

// IsLegalMove reports whether color may place a disc at (row, col).
func IsLegalMove(b *Board, row, col int, color Cell) bool {
	if !b.InBounds(row, col) || b.cells[row*b.n+col] != Empty {
		return false
	}
	for _, d := range directions {
		if IsLegalInDirection(b, row, col, color, d[0], d[1]) {
			return true
		}
	}
	return false
}

// ApplyMove validates and plays color at (row, col), returning the number of
// captured discs. The board is left untouched on error.
func ApplyMove(b *Board, row, col int, color Cell) (int, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, row, col, b.n, b.n)
	}
	if !IsLegalMove(b, row, col, color) {
		return 0, fmt.Errorf("%w: %s at %s", ErrIllegalMove, color, Move{Row: row, Col: col})
	}
	return Flip(b, row, col, color), nil
}

// Flip places color at (row, col) and converts every captured run of
// opposite discs. Callers must have checked legality first.
func Flip(b *Board, row, col int, color Cell) int {
	b.Set(row, col, color)

	flipped := 0
	for _, d := range directions {
		if !IsLegalInDirection(b, row, col, color, d[0], d[1]) {
			continue
		}
		r, c := row+d[0], col+d[1]
		for b.cells[r*b.n+c] != color {
			b.cells[r*b.n+c] = color
			flipped++
			r += d[0]
			c += d[1]
		}
	}
	return flipped
}

// Winner compares final piece counts. Empty means a draw.
func Winner(b *Board) Cell {
	light, dark := b.CountPieces()
	switch {
	case light > dark:
		return Light
	case dark > light:
		return Dark
	default:
		return Empty
	}
}
