package match

import (
	"context"
	"fmt"
	"log/slog"
)

const replayPrompt = "Would you like to play again? (y/n):"

// Controller loops rounds until the match completes and offers a replay after each match.
type Controller struct {
	logger *slog.Logger

	match  *Match
	rules  Rules
	rounds *RoundController

	input    InputProvider
	sink     DisplaySink
	recorder recorder
}

func NewController(logger *slog.Logger, match *Match, rules Rules, input InputProvider, sink DisplaySink, recorder recorder) *Controller {
	return &Controller{
		logger:   logger.With("component", "match", "game", rules.Name()),
		match:    match,
		rules:    rules,
		rounds:   NewRoundController(logger, rules, sink, recorder),
		input:    input,
		sink:     sink,
		recorder: recorder,
	}
}

// Run plays matches until a replay is declined and returns the number of completed matches.
func (that *Controller) Run(ctx context.Context) (int, error) {
	if err := that.match.Start(); err != nil {
		return 0, fmt.Errorf("failed to start match: %w", err)
	}

	played := 0
	for {
		if err := that.PlayMatch(ctx); err != nil {
			return played, err
		}
		played++

		again, err := that.input.RequestYesNo(ctx, replayPrompt)
		if err != nil {
			return played, fmt.Errorf("failed to read replay answer: %w", err)
		}

		if err = that.match.Rematch(again); err != nil {
			return played, fmt.Errorf("failed to resolve replay: %w", err)
		}

		if !again {
			that.logger.Info("session finished", "matches", played)
			return played, nil
		}

		if resetter, ok := that.rules.(MatchResetter); ok {
			resetter.ResetMatch()
		}
	}
}

// PlayMatch drives rounds until one participant reaches the win threshold.
func (that *Controller) PlayMatch(ctx context.Context) error {
	log := that.logger.With("method", "PlayMatch", "match", that.match.ID())

	if err := that.match.confirmInProgress(); err != nil {
		return err
	}

	for that.match.Phase() == PhaseInProgress {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("match interrupted: %w", err)
		}

		that.sink.ShowScoreboard(that.match.Scoreboard(that.rules.Title()))

		if _, err := that.rounds.Play(ctx, that.match); err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}
	}

	result := that.match.Result()

	that.recorder.MatchCompleted(that.rules.Name())
	that.sink.ShowMatch(result)

	log.Info("match completed", "winner", result.Winner, "rounds", result.Rounds)

	return nil
}
