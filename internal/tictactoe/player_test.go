package tictactoe

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tabletop/internal/entity"
	mockedMatch "github.com/rocketscienceinc/tabletop/mocks/match"
)

func TestComputerPlayer_ChooseSquare(t *testing.T) {
	ctx := context.Background()
	computer := NewComputerPlayer(rand.New(rand.NewPCG(1, 2)))

	t.Run("Completes its own line before blocking", func(t *testing.T) {
		// Given: O can win on 3 and X threatens 9
		board := NewBoard()
		markAll(t, board, MarkerO, 1, 2)
		markAll(t, board, MarkerX, 5, 7, 8)

		// When: the computer plays O
		key, err := computer.ChooseSquare(ctx, board, MarkerO)

		// Then: it takes the winning square
		require.NoError(t, err)
		assert.Equal(t, 3, key)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the left column
		board := NewBoard()
		markAll(t, board, MarkerX, 1, 4)
		markAll(t, board, MarkerO, 5)

		key, err := computer.ChooseSquare(ctx, board, MarkerO)

		require.NoError(t, err)
		assert.Equal(t, 7, key)
	})

	t.Run("Takes the center", func(t *testing.T) {
		board := NewBoard()
		markAll(t, board, MarkerX, 1)

		key, err := computer.ChooseSquare(ctx, board, MarkerO)

		require.NoError(t, err)
		assert.Equal(t, CenterKey, key)
	})

	t.Run("Picks an empty square otherwise", func(t *testing.T) {
		board := NewBoard()
		markAll(t, board, MarkerX, 5)

		for range 20 {
			key, err := computer.ChooseSquare(ctx, board, MarkerO)

			require.NoError(t, err)
			assert.Contains(t, board.UnmarkedKeys(), key)
		}
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		board := NewBoard()
		markAll(t, board, MarkerX, 1, 3, 4, 8, 9)
		markAll(t, board, MarkerO, 2, 5, 6, 7)

		_, err := computer.ChooseSquare(ctx, board, MarkerO)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestHumanPlayer_ChooseSquare(t *testing.T) {
	ctx := context.Background()

	// Given: a board with square 1 taken
	board := NewBoard()
	markAll(t, board, MarkerO, 1)

	input := mockedMatch.NewMockInputProvider(t)
	input.EXPECT().RequestSymbol(ctx, squarePrompt, KeyAlphabet([]int{2, 3, 4, 5, 6, 7, 8, 9})).Return("6", nil).Once()

	// When: the human is asked for a square
	key, err := NewHumanPlayer(input).ChooseSquare(ctx, board, MarkerX)

	// Then: only free squares are offered and the answer is parsed
	require.NoError(t, err)
	assert.Equal(t, 6, key)
}

func TestChooseMarker(t *testing.T) {
	ctx := context.Background()

	input := mockedMatch.NewMockInputProvider(t)
	input.EXPECT().RequestSymbol(ctx, "Choose your marker", Markers).Return(MarkerO, nil).Once()

	marker, err := ChooseMarker(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, MarkerO, marker)
}

func TestCriticalSquare(t *testing.T) {
	board := NewBoard()

	_, ok := CriticalSquare(board, MarkerX)
	assert.False(t, ok)

	markAll(t, board, MarkerX, 3, 7)
	key, ok := CriticalSquare(board, MarkerX)
	assert.True(t, ok)
	assert.Equal(t, 5, key)

	// A line blocked by the other marker is not critical.
	require.NoError(t, board.Mark(5, MarkerO))
	_, ok = CriticalSquare(board, MarkerX)
	assert.False(t, ok)
	assert.Equal(t, entity.EmptySymbol, board.WinningMarker())
}
