package tictactoe

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const squarePrompt = "Choose a square"

var ErrNoAvailableMoves = errors.New("no available moves")

var ComputerNames = []string{"R2D2", "C-3PO", "Marvin", "Data", "Kraftwerk", "Cybotron"}

type randSource interface {
	IntN(n int) int
}

type inputProvider interface {
	RequestSymbol(ctx context.Context, prompt string, alphabet entity.Alphabet) (entity.Symbol, error)
}

// Player picks the square to mark with the given marker.
type Player interface {
	ChooseSquare(ctx context.Context, board *Board, marker entity.Symbol) (int, error)
}

type humanPlayer struct {
	input inputProvider
}

func NewHumanPlayer(input inputProvider) Player {
	return &humanPlayer{input: input}
}

func (that *humanPlayer) ChooseSquare(ctx context.Context, board *Board, _ entity.Symbol) (int, error) {
	keys := board.UnmarkedKeys()
	if len(keys) == 0 {
		return 0, ErrNoAvailableMoves
	}

	symbol, err := that.input.RequestSymbol(ctx, squarePrompt, KeyAlphabet(keys))
	if err != nil {
		return 0, fmt.Errorf("failed to request square: %w", err)
	}

	return ParseKey(symbol)
}

type computerPlayer struct {
	rng randSource
}

func NewComputerPlayer(rng randSource) Player {
	return &computerPlayer{rng: rng}
}

// ChooseSquare completes its own line first, then blocks the opponent, then takes the center,
// and otherwise marks a random empty square.
func (that *computerPlayer) ChooseSquare(_ context.Context, board *Board, marker entity.Symbol) (int, error) {
	keys := board.UnmarkedKeys()
	if len(keys) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if key, ok := CriticalSquare(board, marker); ok {
		return key, nil
	}

	if key, ok := CriticalSquare(board, Opponent(marker)); ok {
		return key, nil
	}

	if board.At(CenterKey) == entity.EmptySymbol {
		return CenterKey, nil
	}

	return keys[that.rng.IntN(len(keys))], nil
}

// CriticalSquare finds the empty key of the first line holding two of marker and nothing else.
func CriticalSquare(board *Board, marker entity.Symbol) (int, bool) {
	for _, combo := range WinCombos {
		owned, empty := 0, -1
		for _, index := range combo {
			switch board.cells[index] {
			case marker:
				owned++
			case entity.EmptySymbol:
				empty = index
			}
		}

		if owned == 2 && empty >= 0 {
			return empty + 1, true
		}
	}

	return 0, false
}

// ChooseMarker asks the human for X or O.
func ChooseMarker(ctx context.Context, input inputProvider) (entity.Symbol, error) {
	marker, err := input.RequestSymbol(ctx, "Choose your marker", Markers)
	if err != nil {
		return entity.EmptySymbol, fmt.Errorf("failed to request marker: %w", err)
	}

	return marker, nil
}
