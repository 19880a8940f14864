package entity

// Outcome is the result of one round, always seen from the first participant.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

// Invert swaps the perspective of the outcome.
func (that Outcome) Invert() Outcome {
	switch that {
	case OutcomeFirstWins:
		return OutcomeSecondWins
	case OutcomeSecondWins:
		return OutcomeFirstWins
	default:
		return OutcomeTie
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeFirstWins:
		return "first"
	case OutcomeSecondWins:
		return "second"
	default:
		return "tie"
	}
}
