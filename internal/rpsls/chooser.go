package rpsls

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const movePrompt = "Please choose"

type randSource interface {
	IntN(n int) int
}

type inputProvider interface {
	RequestSymbol(ctx context.Context, prompt string, alphabet entity.Alphabet) (entity.Symbol, error)
}

// Chooser picks the move of one participant for the current round.
type Chooser interface {
	Choose(ctx context.Context) (entity.Symbol, error)
}

type humanChooser struct {
	input inputProvider
}

func NewHumanChooser(input inputProvider) Chooser {
	return &humanChooser{input: input}
}

func (that *humanChooser) Choose(ctx context.Context) (entity.Symbol, error) {
	move, err := that.input.RequestSymbol(ctx, movePrompt, Moves)
	if err != nil {
		return entity.EmptySymbol, fmt.Errorf("failed to request move: %w", err)
	}

	return move, nil
}

// Personality is a computer opponent: a name and the fixed set of moves it draws from uniformly.
type Personality struct {
	Name  string
	Moves entity.Alphabet
}

var Personalities = []Personality{
	{Name: "R2D2", Moves: Moves},
	{Name: "Marvin", Moves: entity.Alphabet{Rock, Paper, Scissors}},
	{Name: "Data", Moves: entity.Alphabet{Spock}},
}

func RandomPersonality(rng randSource) Personality {
	return Personalities[rng.IntN(len(Personalities))]
}

type computerChooser struct {
	rng   randSource
	moves entity.Alphabet
}

func NewComputerChooser(personality Personality, rng randSource) Chooser {
	return &computerChooser{
		rng:   rng,
		moves: personality.Moves,
	}
}

func (that *computerChooser) Choose(_ context.Context) (entity.Symbol, error) {
	if len(that.moves) == 1 {
		return that.moves[0], nil
	}

	return that.moves[that.rng.IntN(len(that.moves))], nil
}
