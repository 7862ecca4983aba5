package game

import (
	"fmt"
	"io"
	"strings"
)

// Board is an n×n grid of cells stored row-major.
type Board struct {
	n     int
	cells []Cell
}

// NewBoard returns an n×n board with the four center discs in place.
func NewBoard(n int) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	b := &Board{n: n, cells: make([]Cell, n*n)}

	// Odd sizes keep the integer-division layout; off-board squares are skipped.
	half := n / 2
	b.setIfInBounds(half, half, Light)
	b.setIfInBounds(half-1, half-1, Light)
	b.setIfInBounds(half, half-1, Dark)
	b.setIfInBounds(half-1, half, Dark)
	return b, nil
}

// ParseBoard builds a board from rows of U/W/B letters.
func ParseBoard(rows ...string) (*Board, error) {
	n := len(rows)
	if n < 1 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	b := &Board{n: n, cells: make([]Cell, n*n)}
	for row, line := range rows {
		letters := []rune(line)
		if len(letters) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, row, len(letters), n)
		}
		for col, r := range letters {
			cell, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w %q", row, col, err, r)
			}
			b.cells[row*n+col] = cell
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.n
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.n && col >= 0 && col < b.n
}

// At returns the cell at (row, col). It panics when out of bounds.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) out of bounds for size %d", row, col, b.n))
	}
	return b.cells[row*b.n+col]
}

// Set overwrites the cell at (row, col). It panics when out of bounds.
func (b *Board) Set(row, col int, c Cell) {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) out of bounds for size %d", row, col, b.n))
	}
	b.cells[row*b.n+col] = c
}

func (b *Board) setIfInBounds(row, col int, c Cell) {
	if b.InBounds(row, col) {
		b.cells[row*b.n+col] = c
	}
}

// Clone returns a deep copy sharing no memory with b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

// CountPieces tallies the discs of each color.
func (b *Board) CountPieces() (light, dark int) {
	for _, c := range b.cells {
		switch c {
		case Light:
			light++
		case Dark:
			dark++
		}
	}
	return light, dark
}

func (b *Board) count(color Cell) int {
	total := 0
	for _, c := range b.cells {
		if c == color {
			total++
		}
	}
	return total
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.n != other.n {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Render writes the board with letter coordinates:
//
//	  abcd
//	a UUUU
//	b UWBU
func (b *Board) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.n; col++ {
		sb.WriteByte(coordinateLetter(col))
	}
	sb.WriteByte('\n')
	for row := 0; row < b.n; row++ {
		sb.WriteByte(coordinateLetter(row))
		sb.WriteByte(' ')
		for col := 0; col < b.n; col++ {
			sb.WriteString(b.cells[row*b.n+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func coordinateLetter(i int) byte {
	if i < 26 {
		return byte('a' + i)
	}
	return '?'
}
