package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const Name = "tictactoe"

var ErrRoundUnfinished = errors.New("board has no winner and free squares left")

type boardSink interface {
	ShowBoard(board entity.BoardSnapshot)
}

// Rules plays alternating rounds on a fresh board. The human is always the first participant.
type Rules struct {
	logger *slog.Logger

	board *Board
	sink  boardSink
	rng   randSource

	human    Player
	computer Player

	humanMarker    entity.Symbol
	computerMarker entity.Symbol
	humanFirst     bool
}

func NewRules(logger *slog.Logger, human, computer Player, humanMarker entity.Symbol, sink boardSink, rng randSource) *Rules {
	return &Rules{
		logger:         logger.With("component", Name),
		board:          NewBoard(),
		sink:           sink,
		rng:            rng,
		human:          human,
		computer:       computer,
		humanMarker:    humanMarker,
		computerMarker: Opponent(humanMarker),
	}
}

func (that *Rules) Name() string {
	return Name
}

func (that *Rules) Title() string {
	return "Tic Tac Toe"
}

func (that *Rules) Board() *Board {
	return that.board
}

// StartRound clears the board and rolls who moves first.
func (that *Rules) StartRound(round *entity.Round) {
	that.board.Reset()
	that.humanFirst = that.rng.IntN(2) == 0

	that.logger.Debug("round started", "round", round.Index, "human_first", that.humanFirst)
}

func (that *Rules) Select(ctx context.Context, round *entity.Round) error {
	round.First.Select(that.humanMarker)
	round.Second.Select(that.computerMarker)

	humanTurn := that.humanFirst
	for !that.board.Finished() {
		if err := that.move(ctx, round, humanTurn); err != nil {
			return err
		}

		humanTurn = !humanTurn
	}

	that.sink.ShowBoard(that.board.Snapshot(that.legend(round)))

	return nil
}

func (that *Rules) Resolve(round *entity.Round) (entity.Outcome, error) {
	switch winner := that.board.WinningMarker(); {
	case winner == that.humanMarker:
		round.Summary = fmt.Sprintf("%s completes a line", round.First)
		return entity.OutcomeFirstWins, nil
	case winner == that.computerMarker:
		round.Summary = fmt.Sprintf("%s completes a line", round.Second)
		return entity.OutcomeSecondWins, nil
	case that.board.Full():
		round.Summary = "the board is full"
		return entity.OutcomeTie, nil
	default:
		return entity.OutcomeTie, ErrRoundUnfinished
	}
}

func (that *Rules) move(ctx context.Context, round *entity.Round, humanTurn bool) error {
	player, marker, participant := that.computer, that.computerMarker, round.Second
	if humanTurn {
		player, marker, participant = that.human, that.humanMarker, round.First
		that.sink.ShowBoard(that.board.Snapshot(that.legend(round)))
	}

	key, err := player.ChooseSquare(ctx, that.board, marker)
	if err != nil {
		return fmt.Errorf("%s failed to choose a square: %w", participant, err)
	}

	if err = that.board.Mark(key, marker); err != nil {
		return fmt.Errorf("%s failed to mark square %d: %w", participant, key, err)
	}

	return nil
}

func (that *Rules) legend(round *entity.Round) string {
	return fmt.Sprintf("%s is %s. %s is %s.", round.First, that.humanMarker, round.Second, that.computerMarker)
}
