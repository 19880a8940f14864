package entity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
)

// Symbol is a single choice drawn from a game alphabet: a move, a square key, a marker or a card.
type Symbol string

const EmptySymbol Symbol = ""

func (that Symbol) String() string {
	return string(that)
}

func (that Symbol) IsEmpty() bool {
	return that == EmptySymbol
}

// Alphabet is the finite, ordered set of symbols a game accepts.
type Alphabet []Symbol

func NewAlphabet(values ...string) Alphabet {
	alphabet := make(Alphabet, 0, len(values))
	for _, value := range values {
		alphabet = append(alphabet, Symbol(value))
	}

	return alphabet
}

func (that Alphabet) Contains(symbol Symbol) bool {
	return lo.Contains(that, symbol)
}

func (that Alphabet) Strings() []string {
	values := make([]string, 0, len(that))
	for _, symbol := range that {
		values = append(values, string(symbol))
	}

	return values
}

// Match resolves raw user input to a symbol. Matching is case-insensitive: an exact match always wins,
// otherwise the input has to be a prefix of exactly one symbol. The result does not depend on the
// order of the alphabet.
func (that Alphabet) Match(input string) (Symbol, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return EmptySymbol, fmt.Errorf("%w: empty input", apperror.ErrInvalidSymbol)
	}

	var candidates Alphabet
	for _, symbol := range that {
		value := strings.ToLower(string(symbol))
		if value == input {
			return symbol, nil
		}

		if strings.HasPrefix(value, input) {
			candidates = append(candidates, symbol)
		}
	}

	switch len(candidates) {
	case 0:
		return EmptySymbol, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, input)
	case 1:
		return candidates[0], nil
	default:
		return EmptySymbol, fmt.Errorf("%w: %q matches %s", apperror.ErrAmbiguousSymbol, input, strings.Join(candidates.Strings(), ", "))
	}
}
