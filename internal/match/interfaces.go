package match

import (
	"context"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

// Rules is the pluggable part of a game: how a round is set up, how selections are collected and how
// they are resolved. Outcomes are always reported from the first participant's point of view.
type Rules interface {
	// Name is a short machine-friendly identifier, e.g. "rpsls".
	Name() string
	Title() string

	StartRound(round *entity.Round)
	Select(ctx context.Context, round *entity.Round) error
	Resolve(round *entity.Round) (entity.Outcome, error)
}

// MatchResetter is implemented by rules that keep state across rounds of one match.
type MatchResetter interface {
	ResetMatch()
}

// InputProvider returns only values that already passed validation.
type InputProvider interface {
	RequestSymbol(ctx context.Context, prompt string, alphabet entity.Alphabet) (entity.Symbol, error)
	RequestYesNo(ctx context.Context, prompt string) (bool, error)
	RequestName(ctx context.Context) (string, error)
}

type DisplaySink interface {
	ShowScoreboard(scoreboard entity.Scoreboard)
	ShowRound(result entity.RoundResult)
	ShowMatch(result entity.MatchResult)
	ShowBoard(board entity.BoardSnapshot)
	ShowHand(hand entity.HandSnapshot)
}

type recorder interface {
	RoundScored(game string, outcome entity.Outcome)
	MatchCompleted(game string)
}
