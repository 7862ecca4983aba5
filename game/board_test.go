package game

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("standard four-disc layout", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)

		require.Equal(t, 8, b.Size())
		require.Equal(t, Light, b.At(4, 4))
		require.Equal(t, Light, b.At(3, 3))
		require.Equal(t, Dark, b.At(4, 3))
		require.Equal(t, Dark, b.At(3, 4))

		light, dark := b.CountPieces()
		require.Equal(t, 2, light, "Board should start with two light discs")
		require.Equal(t, 2, dark, "Board should start with two dark discs")
	})

	t.Run("odd size keeps integer division layout", func(t *testing.T) {
		b, err := NewBoard(3)
		require.NoError(t, err)

		require.Equal(t, Light, b.At(1, 1))
		require.Equal(t, Light, b.At(0, 0))
		require.Equal(t, Dark, b.At(1, 0))
		require.Equal(t, Dark, b.At(0, 1))
	})

	t.Run("single cell board skips off-board squares", func(t *testing.T) {
		b, err := NewBoard(1)
		require.NoError(t, err)

		require.Equal(t, Light, b.At(0, 0))
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := NewBoard(0)
		require.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestBoardInBounds(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	require.True(t, b.InBounds(0, 0))
	require.True(t, b.InBounds(3, 3))
	require.False(t, b.InBounds(-1, 0))
	require.False(t, b.InBounds(0, 4))
	require.False(t, b.InBounds(4, 0))
	require.Panics(t, func() { b.At(4, 4) }, "Reading off the board should panic")
}

func TestBoardClone(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	clone := b.Clone()
	require.True(t, b.Equal(clone), "Clone should copy every cell")

	clone.Set(0, 0, Dark)
	require.Equal(t, Empty, b.At(0, 0), "Mutating the clone should not touch the source board")
	require.False(t, b.Equal(clone))
}

func TestParseBoard(t *testing.T) {
	t.Run("parses letters", func(t *testing.T) {
		b, err := ParseBoard(
			"UWB",
			"wbu",
			"UUU",
		)
		require.NoError(t, err)

		require.Equal(t, Light, b.At(0, 1))
		require.Equal(t, Dark, b.At(0, 2))
		require.Equal(t, Light, b.At(1, 0))
		require.Equal(t, Dark, b.At(1, 1))
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard("UU", "U")
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("rejects unknown letters", func(t *testing.T) {
		_, err := ParseBoard("UX", "UU")
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestBoardRender(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))

	expected := "  abcd\n" +
		"a UUUU\n" +
		"b UWBU\n" +
		"c UBWU\n" +
		"d UUUU\n"
	require.Equal(t, expected, buf.String())
}

func TestOpposite(t *testing.T) {
	require.Equal(t, Dark, Light.Opposite())
	require.Equal(t, Light, Dark.Opposite())
	require.Equal(t, Light, Light.Opposite().Opposite(), "Opposite should be an involution")
	require.Equal(t, Empty, Empty.Opposite())
}
