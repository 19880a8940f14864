package entity

type Score struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	History []Symbol `json:"history,omitempty"`
}

type Selection struct {
	Name   string `json:"name"`
	Symbol Symbol `json:"symbol,omitempty"`
}

// Scoreboard is shown before every round.
type Scoreboard struct {
	Title        string   `json:"title"`
	Round        int      `json:"round"`
	WinsRequired int      `json:"wins_required"`
	Scores       [2]Score `json:"scores"`
}

type RoundResult struct {
	Round       int          `json:"round"`
	Selections  [2]Selection `json:"selections"`
	Outcome     Outcome      `json:"outcome"`
	Winner      string       `json:"winner,omitempty"`
	ScoresAfter [2]Score     `json:"scores_after"`
	Summary     string       `json:"summary,omitempty"`
}

type MatchResult struct {
	MatchID     string   `json:"match_id"`
	Winner      string   `json:"winner"`
	Rounds      int      `json:"rounds"`
	FinalScores [2]Score `json:"final_scores"`
}

// BoardSnapshot is a 3x3 grid read row by row; empty cells hold EmptySymbol.
type BoardSnapshot struct {
	Cells  [9]Symbol `json:"cells"`
	Legend string    `json:"legend,omitempty"`
}

// HandSnapshot lists the visible cards of a hand. When HiddenCards is non-zero the total is not revealed.
type HandSnapshot struct {
	Owner       string   `json:"owner"`
	Cards       []Symbol `json:"cards"`
	Total       int      `json:"total,omitempty"`
	HiddenCards int      `json:"hidden_cards,omitempty"`
}

func (that HandSnapshot) IsMasked() bool {
	return that.HiddenCards > 0
}
