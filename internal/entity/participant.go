package entity

// Participant is one side of a match. The name is fixed at construction; selection is round-scoped,
// score is match-scoped and history survives rematches.
type Participant struct {
	name         string
	selection    Symbol
	score        int
	history      []Symbol
	trackHistory bool
}

func NewParticipant(name string, trackHistory bool) *Participant {
	return &Participant{
		name:         name,
		trackHistory: trackHistory,
	}
}

func (that *Participant) Name() string {
	return that.name
}

func (that *Participant) String() string {
	return that.name
}

func (that *Participant) Selection() Symbol {
	return that.selection
}

func (that *Participant) Select(symbol Symbol) {
	that.selection = symbol
}

func (that *Participant) ClearSelection() {
	that.selection = EmptySymbol
}

func (that *Participant) Score() int {
	return that.score
}

func (that *Participant) AddWin() {
	that.score++
}

func (that *Participant) ResetScore() {
	that.score = 0
}

// RecordSelection appends the committed selection to the move history when history is tracked.
func (that *Participant) RecordSelection() {
	if !that.trackHistory || that.selection.IsEmpty() {
		return
	}

	that.history = append(that.history, that.selection)
}

// History returns a copy of the recorded moves, oldest first.
func (that *Participant) History() []Symbol {
	if len(that.history) == 0 {
		return nil
	}

	history := make([]Symbol, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Participant) Snapshot() Score {
	return Score{
		Name:    that.name,
		Score:   that.score,
		History: that.History(),
	}
}
