package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseComplete
)

func (that Phase) String() string {
	switch that {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidThreshold   = errors.New("wins required must be positive")
	ErrRoundAlreadyScored = errors.New("round is already scored")
	ErrStaleRound         = errors.New("round does not belong to the current match state")
	ErrRoundNotResolving  = errors.New("round is not resolving")
)

// Match owns both participants for its lifetime. All transitions are plain method calls so a match can
// be driven one input at a time without a console.
type Match struct {
	id           uuid.UUID
	winsRequired int

	first  *entity.Participant
	second *entity.Participant

	phase  Phase
	closed bool
	round  int
	winner *entity.Participant
}

func New(winsRequired int, first, second *entity.Participant) (*Match, error) {
	if winsRequired < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, winsRequired)
	}

	return &Match{
		id:           uuid.New(),
		winsRequired: winsRequired,
		first:        first,
		second:       second,
		phase:        PhaseNotStarted,
	}, nil
}

func (that *Match) ID() uuid.UUID {
	return that.id
}

func (that *Match) WinsRequired() int {
	return that.winsRequired
}

func (that *Match) First() *entity.Participant {
	return that.first
}

func (that *Match) Second() *entity.Participant {
	return that.second
}

func (that *Match) Phase() Phase {
	return that.phase
}

// Round is the index of the most recently started round, 0 before the first one.
func (that *Match) Round() int {
	return that.round
}

func (that *Match) Winner() *entity.Participant {
	return that.winner
}

// IsClosed reports whether the match completed and replay was declined.
func (that *Match) IsClosed() bool {
	return that.closed
}

func (that *Match) Start() error {
	switch {
	case that.closed, that.phase == PhaseComplete:
		return apperror.ErrMatchAlreadyComplete
	case that.phase == PhaseInProgress:
		return apperror.ErrMatchInProgress
	}

	that.reset()
	that.phase = PhaseInProgress

	return nil
}

// BeginRound opens the next round and clears both selections.
func (that *Match) BeginRound() (*entity.Round, error) {
	if err := that.confirmInProgress(); err != nil {
		return nil, err
	}

	that.round++
	that.first.ClearSelection()
	that.second.ClearSelection()

	return entity.NewRound(that.round, that.first, that.second), nil
}

// Score applies a resolved outcome to a round in the resolving state: the winner gains exactly one point,
// a tie changes nothing.
// The match completes as soon as a score reaches the threshold.
func (that *Match) Score(round *entity.Round, outcome entity.Outcome) error {
	if err := that.confirmInProgress(); err != nil {
		return err
	}

	if round.State == entity.RoundScored {
		return fmt.Errorf("%w: round %d", ErrRoundAlreadyScored, round.Index)
	}

	if round.Index != that.round || round.First != that.first || round.Second != that.second {
		return fmt.Errorf("%w: round %d, current %d", ErrStaleRound, round.Index, that.round)
	}

	if round.State != entity.RoundResolving {
		return fmt.Errorf("%w: round %d is %s", ErrRoundNotResolving, round.Index, round.State)
	}

	round.Outcome = outcome
	round.State = entity.RoundScored

	that.first.RecordSelection()
	that.second.RecordSelection()

	switch outcome {
	case entity.OutcomeFirstWins:
		that.first.AddWin()
	case entity.OutcomeSecondWins:
		that.second.AddWin()
	case entity.OutcomeTie:
	}

	switch {
	case that.first.Score() >= that.winsRequired:
		that.complete(that.first)
	case that.second.Score() >= that.winsRequired:
		that.complete(that.second)
	}

	return nil
}

// Rematch resolves the replay offer of a completed match. Accepting resets scores and the round counter
// and starts a new match with the same participants; declining closes the match for good.
func (that *Match) Rematch(accept bool) error {
	switch {
	case that.closed:
		return apperror.ErrMatchAlreadyComplete
	case that.phase == PhaseNotStarted:
		return apperror.ErrMatchNotStarted
	case that.phase == PhaseInProgress:
		return apperror.ErrMatchInProgress
	}

	if !accept {
		that.closed = true
		return nil
	}

	that.id = uuid.New()
	that.reset()
	that.phase = PhaseInProgress

	return nil
}

func (that *Match) Scores() [2]entity.Score {
	return [2]entity.Score{that.first.Snapshot(), that.second.Snapshot()}
}

func (that *Match) Scoreboard(title string) entity.Scoreboard {
	return entity.Scoreboard{
		Title:        title,
		Round:        that.round + 1,
		WinsRequired: that.winsRequired,
		Scores:       that.Scores(),
	}
}

func (that *Match) Result() entity.MatchResult {
	result := entity.MatchResult{
		MatchID:     that.id.String(),
		Rounds:      that.round,
		FinalScores: that.Scores(),
	}

	if that.winner != nil {
		result.Winner = that.winner.Name()
	}

	return result
}

func (that *Match) confirmInProgress() error {
	switch {
	case that.closed, that.phase == PhaseComplete:
		return apperror.ErrMatchAlreadyComplete
	case that.phase == PhaseNotStarted:
		return apperror.ErrMatchNotStarted
	default:
		return nil
	}
}

func (that *Match) complete(winner *entity.Participant) {
	that.winner = winner
	that.phase = PhaseComplete
}

func (that *Match) reset() {
	that.round = 0
	that.winner = nil

	that.first.ResetScore()
	that.second.ResetScore()
	that.first.ClearSelection()
	that.second.ClearSelection()
}
