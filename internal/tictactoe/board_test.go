package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

func markAll(t *testing.T, board *Board, marker entity.Symbol, keys ...int) {
	t.Helper()

	for _, key := range keys {
		require.NoError(t, board.Mark(key, marker))
	}
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Mark", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X marks the top left square
		require.NoError(t, board.Mark(1, MarkerX))

		// Then: only that square is taken
		assert.Equal(t, MarkerX, board.At(1))
		assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, board.UnmarkedKeys())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds the center
		board := NewBoard()
		require.NoError(t, board.Mark(5, MarkerX))

		// When: O tries to mark the same square
		err := board.Mark(5, MarkerO)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkerX, board.At(5))
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		board := NewBoard()

		require.ErrorIs(t, board.Mark(0, MarkerX), apperror.ErrInvalidCell)
		require.ErrorIs(t, board.Mark(10, MarkerX), apperror.ErrInvalidCell)
	})

	t.Run("Error on unknown marker", func(t *testing.T) {
		board := NewBoard()

		require.ErrorIs(t, board.Mark(1, "Z"), apperror.ErrInvalidSymbol)
	})
}

func TestBoard_WinningMarker(t *testing.T) {
	t.Run("Every line wins", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where O fills exactly one line
			board := NewBoard()
			markAll(t, board, MarkerO, combo[0]+1, combo[1]+1, combo[2]+1)

			// Then: O is the winning marker
			assert.Equal(t, MarkerO, board.WinningMarker(), combo)
			assert.True(t, board.Finished())
		}
	})

	t.Run("No winner on a partial board", func(t *testing.T) {
		board := NewBoard()
		markAll(t, board, MarkerX, 1, 2)
		markAll(t, board, MarkerO, 3)

		assert.Equal(t, entity.EmptySymbol, board.WinningMarker())
		assert.False(t, board.Finished())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// X O X
		// X O O
		// O X X
		board := NewBoard()
		markAll(t, board, MarkerX, 1, 3, 4, 8, 9)
		markAll(t, board, MarkerO, 2, 5, 6, 7)

		assert.Equal(t, entity.EmptySymbol, board.WinningMarker())
		assert.True(t, board.Full())
		assert.True(t, board.Finished())
		assert.Empty(t, board.UnmarkedKeys())
	})
}

func TestBoard_Reset(t *testing.T) {
	board := NewBoard()
	markAll(t, board, MarkerX, 1, 5, 9)

	board.Reset()

	assert.Len(t, board.UnmarkedKeys(), 9)
	assert.Equal(t, entity.BoardSnapshot{Legend: "empty"}, board.Snapshot("empty"))
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("7")
	require.NoError(t, err)
	assert.Equal(t, 7, key)

	_, err = ParseKey("0")
	require.ErrorIs(t, err, apperror.ErrInvalidCell)

	_, err = ParseKey("x")
	require.ErrorIs(t, err, apperror.ErrInvalidCell)

	assert.Equal(t, entity.Alphabet{"2", "4"}, KeyAlphabet([]int{2, 4}))
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, MarkerO, Opponent(MarkerX))
	assert.Equal(t, MarkerX, Opponent(MarkerO))
}
