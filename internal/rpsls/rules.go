package rpsls

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const Name = "rpsls"

// Rules plays simultaneous rounds: both participants commit a move before either is revealed.
type Rules struct {
	logger *slog.Logger

	first  Chooser
	second Chooser
}

func NewRules(logger *slog.Logger, first, second Chooser) *Rules {
	return &Rules{
		logger: logger.With("component", Name),
		first:  first,
		second: second,
	}
}

func (that *Rules) Name() string {
	return Name
}

func (that *Rules) Title() string {
	return Title()
}

// StartRound has nothing to reset: moves are the only round state and the match clears them.
func (that *Rules) StartRound(_ *entity.Round) {}

func (that *Rules) Select(ctx context.Context, round *entity.Round) error {
	firstMove, err := that.first.Choose(ctx)
	if err != nil {
		return fmt.Errorf("%s failed to choose: %w", round.First, err)
	}

	secondMove, err := that.second.Choose(ctx)
	if err != nil {
		return fmt.Errorf("%s failed to choose: %w", round.Second, err)
	}

	round.First.Select(firstMove)
	round.Second.Select(secondMove)

	return nil
}

func (that *Rules) Resolve(round *entity.Round) (entity.Outcome, error) {
	first, second := round.First.Selection(), round.Second.Selection()

	outcome, err := Resolve(first, second)
	if err != nil {
		return entity.OutcomeTie, err
	}

	switch outcome {
	case entity.OutcomeFirstWins:
		round.Summary = Describe(first, second)
	case entity.OutcomeSecondWins:
		round.Summary = Describe(second, first)
	case entity.OutcomeTie:
		round.Summary = ""
	}

	that.logger.Debug("moves resolved", "round", round.Index, "first", first, "second", second, "outcome", outcome.String())

	return outcome, nil
}
