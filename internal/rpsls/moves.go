package rpsls

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/resolver"
)

const (
	Rock     entity.Symbol = "rock"
	Paper    entity.Symbol = "paper"
	Scissors entity.Symbol = "scissors"
	Lizard   entity.Symbol = "lizard"
	Spock    entity.Symbol = "spock"
)

var (
	Moves = entity.Alphabet{Rock, Paper, Scissors, Lizard, Spock}

	table = resolver.MustTable(Moves, map[entity.Symbol][]entity.Symbol{
		Rock:     {Scissors, Lizard},
		Paper:    {Rock, Spock},
		Scissors: {Paper, Lizard},
		Spock:    {Rock, Scissors},
		Lizard:   {Spock, Paper},
	})

	verbs = map[[2]entity.Symbol]string{
		{Scissors, Paper}:  "cuts",
		{Paper, Rock}:      "covers",
		{Rock, Lizard}:     "crushes",
		{Lizard, Spock}:    "poisons",
		{Spock, Scissors}:  "smashes",
		{Scissors, Lizard}: "decapitates",
		{Lizard, Paper}:    "eats",
		{Paper, Spock}:     "disproves",
		{Spock, Rock}:      "vaporizes",
		{Rock, Scissors}:   "crushes",
	}
)

// ParseMove accepts a full move name or any prefix that identifies exactly one move.
func ParseMove(input string) (entity.Symbol, error) {
	move, err := Moves.Match(input)
	if err != nil {
		return entity.EmptySymbol, fmt.Errorf("failed to parse move: %w", err)
	}

	return move, nil
}

func Resolve(first, second entity.Symbol) (entity.Outcome, error) {
	outcome, err := table.Resolve(first, second)
	if err != nil {
		return entity.OutcomeTie, fmt.Errorf("failed to resolve moves: %w", err)
	}

	return outcome, nil
}

// Verb is the flavour verb of a winning pair, empty when winner does not beat loser.
func Verb(winner, loser entity.Symbol) string {
	return verbs[[2]entity.Symbol{winner, loser}]
}

// Describe returns a line such as "paper covers rock" for a winning pair, or an empty string.
func Describe(winner, loser entity.Symbol) string {
	verb := Verb(winner, loser)
	if verb == "" {
		return ""
	}

	return fmt.Sprintf("%s %s %s", winner, verb, loser)
}

// Title is the game title built from the move names: "Rock, Paper, Scissors, Lizard, Spock".
func Title() string {
	caser := cases.Title(language.English)

	names := make([]string, 0, len(Moves))
	for _, move := range Moves {
		names = append(names, caser.String(move.String()))
	}

	return strings.Join(names, ", ")
}
