package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

// RoundController runs a single round: awaiting selections -> resolving -> scored.
type RoundController struct {
	logger   *slog.Logger
	rules    Rules
	sink     DisplaySink
	recorder recorder
}

func NewRoundController(logger *slog.Logger, rules Rules, sink DisplaySink, recorder recorder) *RoundController {
	return &RoundController{
		logger:   logger,
		rules:    rules,
		sink:     sink,
		recorder: recorder,
	}
}

// Play runs the next round of the match to completion and returns it scored.
func (that *RoundController) Play(ctx context.Context, match *Match) (*entity.Round, error) {
	round, err := match.BeginRound()
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}

	log := that.logger.With("method", "PlayRound", "match", match.ID(), "round", round.Index)

	that.rules.StartRound(round)

	if err = that.rules.Select(ctx, round); err != nil {
		return nil, fmt.Errorf("failed to collect selections for round %d: %w", round.Index, err)
	}

	round.State = entity.RoundResolving

	outcome, err := that.rules.Resolve(round)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve round %d: %w", round.Index, err)
	}

	if err = match.Score(round, outcome); err != nil {
		return nil, fmt.Errorf("failed to score round %d: %w", round.Index, err)
	}

	log.Debug("round scored",
		"first", round.First.Selection(),
		"second", round.Second.Selection(),
		"outcome", outcome.String(),
	)

	that.recorder.RoundScored(that.rules.Name(), outcome)
	that.sink.ShowRound(round.Result())

	return round, nil
}
