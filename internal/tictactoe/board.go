package tictactoe

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const (
	MarkerX entity.Symbol = "X"
	MarkerO entity.Symbol = "O"

	CenterKey = 5
)

var (
	Markers = entity.Alphabet{MarkerX, MarkerO}

	// WinCombos lists the eight lines of the board as zero-based cell indexes.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Opponent returns the other marker.
func Opponent(marker entity.Symbol) entity.Symbol {
	if marker == MarkerX {
		return MarkerO
	}
	return MarkerX
}

// Board is a 3x3 grid addressed by keys 1..9, row by row.
type Board struct {
	cells [9]entity.Symbol
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Reset() {
	that.cells = [9]entity.Symbol{}
}

func (that *Board) At(key int) entity.Symbol {
	if !validKey(key) {
		return entity.EmptySymbol
	}

	return that.cells[key-1]
}

func (that *Board) Mark(key int, marker entity.Symbol) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, key)
	}

	if !Markers.Contains(marker) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, marker)
	}

	if that.cells[key-1] != entity.EmptySymbol {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, key)
	}

	that.cells[key-1] = marker

	return nil
}

func (that *Board) UnmarkedKeys() []int {
	return lo.Filter(lo.RangeFrom(1, len(that.cells)), func(key int, _ int) bool {
		return that.cells[key-1] == entity.EmptySymbol
	})
}

func (that *Board) Full() bool {
	return len(that.UnmarkedKeys()) == 0
}

// WinningMarker returns the marker that fills a complete line, or EmptySymbol.
func (that *Board) WinningMarker() entity.Symbol {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != entity.EmptySymbol && a == b && b == c {
			return a
		}
	}

	return entity.EmptySymbol
}

// Finished reports whether the last move ended the round.
func (that *Board) Finished() bool {
	return that.WinningMarker() != entity.EmptySymbol || that.Full()
}

func (that *Board) Snapshot(legend string) entity.BoardSnapshot {
	return entity.BoardSnapshot{
		Cells:  that.cells,
		Legend: legend,
	}
}

// KeyAlphabet renders keys as symbols so they can be requested from an input provider.
func KeyAlphabet(keys []int) entity.Alphabet {
	return lo.Map(keys, func(key int, _ int) entity.Symbol {
		return entity.Symbol(strconv.Itoa(key))
	})
}

func ParseKey(symbol entity.Symbol) (int, error) {
	key, err := strconv.Atoi(symbol.String())
	if err != nil || !validKey(key) {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, symbol)
	}

	return key, nil
}

func validKey(key int) bool {
	return key >= 1 && key <= 9
}
