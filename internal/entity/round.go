package entity

type RoundState int

const (
	RoundAwaitingSelections RoundState = iota
	RoundResolving
	RoundScored
)

func (that RoundState) String() string {
	switch that {
	case RoundAwaitingSelections:
		return "awaiting_selections"
	case RoundResolving:
		return "resolving"
	case RoundScored:
		return "scored"
	default:
		return "unknown"
	}
}

// Round borrows both participants for the duration of a single resolution cycle.
type Round struct {
	Index   int
	First   *Participant
	Second  *Participant
	State   RoundState
	Outcome Outcome
	// Summary is an optional line the rules attach while resolving, e.g. "rock crushes scissors".
	Summary string
}

func NewRound(index int, first, second *Participant) *Round {
	return &Round{
		Index:  index,
		First:  first,
		Second: second,
		State:  RoundAwaitingSelections,
	}
}

// Winner returns the participant who won the round, or nil for a tie or an unscored round.
func (that *Round) Winner() *Participant {
	if that.State != RoundScored {
		return nil
	}

	switch that.Outcome {
	case OutcomeFirstWins:
		return that.First
	case OutcomeSecondWins:
		return that.Second
	default:
		return nil
	}
}

func (that *Round) Result() RoundResult {
	result := RoundResult{
		Round: that.Index,
		Selections: [2]Selection{
			{Name: that.First.Name(), Symbol: that.First.Selection()},
			{Name: that.Second.Name(), Symbol: that.Second.Selection()},
		},
		Outcome:     that.Outcome,
		ScoresAfter: [2]Score{that.First.Snapshot(), that.Second.Snapshot()},
		Summary:     that.Summary,
	}

	if winner := that.Winner(); winner != nil {
		result.Winner = winner.Name()
	}

	return result
}
