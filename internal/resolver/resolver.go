package resolver

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

var ErrInconsistentTable = errors.New("beats relation is not antisymmetric")

// Table is a directed "beats" relation over an alphabet.
type Table struct {
	alphabet entity.Alphabet
	beats    map[entity.Symbol]map[entity.Symbol]struct{}
}

// NewTable validates the relation: every symbol belongs to the alphabet, no symbol beats itself
// and no two symbols beat each other.
func NewTable(alphabet entity.Alphabet, beats map[entity.Symbol][]entity.Symbol) (*Table, error) {
	table := &Table{
		alphabet: alphabet,
		beats:    make(map[entity.Symbol]map[entity.Symbol]struct{}, len(beats)),
	}

	for winner, losers := range beats {
		if !alphabet.Contains(winner) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidSymbol, winner)
		}

		set := make(map[entity.Symbol]struct{}, len(losers))
		for _, loser := range losers {
			if !alphabet.Contains(loser) {
				return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidSymbol, loser)
			}

			if loser == winner {
				return nil, fmt.Errorf("%w: %s beats itself", ErrInconsistentTable, winner)
			}

			set[loser] = struct{}{}
		}

		table.beats[winner] = set
	}

	for winner, losers := range table.beats {
		for loser := range losers {
			if table.wins(loser, winner) {
				return nil, fmt.Errorf("%w: %s and %s beat each other", ErrInconsistentTable, winner, loser)
			}
		}
	}

	return table, nil
}

// MustTable is NewTable for package-level rule tables.
func MustTable(alphabet entity.Alphabet, beats map[entity.Symbol][]entity.Symbol) *Table {
	table, err := NewTable(alphabet, beats)
	if err != nil {
		panic(fmt.Errorf("invalid rule table: %w", err))
	}

	return table
}

func (that *Table) Alphabet() entity.Alphabet {
	return that.alphabet
}

// Resolve compares two symbols from the first symbol's point of view.
func (that *Table) Resolve(first, second entity.Symbol) (entity.Outcome, error) {
	if !that.alphabet.Contains(first) {
		return entity.OutcomeTie, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, first)
	}

	if !that.alphabet.Contains(second) {
		return entity.OutcomeTie, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, second)
	}

	switch {
	case that.wins(first, second):
		return entity.OutcomeFirstWins, nil
	case that.wins(second, first):
		return entity.OutcomeSecondWins, nil
	default:
		return entity.OutcomeTie, nil
	}
}

// Beats lists the symbols the given symbol defeats, in alphabet order.
func (that *Table) Beats(symbol entity.Symbol) []entity.Symbol {
	var losers []entity.Symbol
	for _, candidate := range that.alphabet {
		if that.wins(symbol, candidate) {
			losers = append(losers, candidate)
		}
	}

	return losers
}

func (that *Table) wins(winner, loser entity.Symbol) bool {
	_, ok := that.beats[winner][loser]
	return ok
}

// CompareTotals compares two hand totals against a ceiling. A total above the ceiling is a bust and
// loses regardless of the other total; the first total is checked first, so when both bust the
// second participant wins.
func CompareTotals(first, second, ceiling int) entity.Outcome {
	switch {
	case first > ceiling:
		return entity.OutcomeSecondWins
	case second > ceiling:
		return entity.OutcomeFirstWins
	case first > second:
		return entity.OutcomeFirstWins
	case second > first:
		return entity.OutcomeSecondWins
	default:
		return entity.OutcomeTie
	}
}
