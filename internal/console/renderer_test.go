package console

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

func TestJoinor(t *testing.T) {
	assert.Equal(t, "", Joinor(nil, ", ", "or"))
	assert.Equal(t, "1", Joinor([]string{"1"}, ", ", "or"))
	assert.Equal(t, "1 or 2", Joinor([]string{"1", "2"}, ", ", "or"))
	assert.Equal(t, "1, 2, or 3", Joinor([]string{"1", "2", "3"}, ", ", "or"))
	assert.Equal(t, "1; 2; and 3", Joinor([]string{"1", "2", "3"}, "; ", "and"))
}

func TestRenderer(t *testing.T) {
	t.Run("Greeting and farewell", func(t *testing.T) {
		output := &bytes.Buffer{}
		renderer := NewRenderer(output)

		renderer.Greet("Tic Tac Toe", "Ann", "Marvin")
		renderer.Farewell("Ann")

		assert.Equal(t, "Welcome to Tic Tac Toe, Ann! Your opponent is Marvin.\n\nThanks for playing, Ann. Goodbye!\n", output.String())
	})

	t.Run("Scoreboard is not cleared off a terminal", func(t *testing.T) {
		output := &bytes.Buffer{}
		renderer := NewRenderer(output)

		renderer.ShowScoreboard(entity.Scoreboard{
			Title:        "Twenty-One",
			Round:        3,
			WinsRequired: 5,
			Scores:       [2]entity.Score{{Name: "Ann", Score: 1}, {Name: "Dixon", Score: 1}},
		})

		assert.Equal(t, "=== Twenty-One ===\nRound 3, first to 5 wins\nAnn: 1 | Dixon: 1\n\n", output.String())
		assert.NotContains(t, output.String(), clearScreen)
	})

	t.Run("Round result", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowRound(entity.RoundResult{
			Round:       2,
			Selections:  [2]entity.Selection{{Name: "Ann", Symbol: "paper"}, {Name: "Data", Symbol: "spock"}},
			Outcome:     entity.OutcomeFirstWins,
			Winner:      "Ann",
			ScoresAfter: [2]entity.Score{{Name: "Ann", Score: 2}, {Name: "Data", Score: 0}},
			Summary:     "paper disproves spock",
		})

		assert.Equal(t, "Ann (paper) vs Data (spock)\nPaper disproves spock\nAnn wins round 2!\nAnn: 2 | Data: 0\n\n", output.String())
	})

	t.Run("Summary starting with a multi-byte name stays valid", func(t *testing.T) {
		// Given: a summary that starts with a non-ASCII player name
		output := &bytes.Buffer{}

		// When: the round is rendered
		NewRenderer(output).ShowRound(entity.RoundResult{
			Round:      1,
			Selections: [2]entity.Selection{{Name: "Émile", Symbol: "X"}, {Name: "Marvin", Symbol: "O"}},
			Winner:     "Émile",
			Summary:    "émile completes a line",
		})

		// Then: the first rune is upper-cased without splitting it
		assert.True(t, utf8.ValidString(output.String()))
		assert.Contains(t, output.String(), "\nÉmile completes a line\n")
	})

	t.Run("Tie", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowRound(entity.RoundResult{Round: 1})

		assert.Contains(t, output.String(), "It's a tie!")
	})

	t.Run("Match result lists move history", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowMatch(entity.MatchResult{
			Winner: "Data",
			Rounds: 4,
			FinalScores: [2]entity.Score{
				{Name: "Ann", Score: 1, History: []entity.Symbol{"rock", "rock"}},
				{Name: "Data", Score: 2, History: []entity.Symbol{"spock", "spock"}},
			},
		})

		assert.Equal(t, "Data wins the match 2 to 1 after 4 rounds!\nAnn's moves: rock, rock\nData's moves: spock, spock\n\n", output.String())
	})

	t.Run("Board", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowBoard(entity.BoardSnapshot{
			Cells:  [9]entity.Symbol{"X", "", "O", "", "X", "", "", "", "O"},
			Legend: "Ann is X.",
		})

		want := "Ann is X.\n" +
			" X |   | O\n" +
			"---+---+---\n" +
			"   | X |  \n" +
			"---+---+---\n" +
			"   |   | O\n\n"
		assert.Equal(t, want, output.String())
	})

	t.Run("Masked hand hides the total", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowHand(entity.HandSnapshot{Owner: "Dixon", Cards: []entity.Symbol{"K♠"}, HiddenCards: 1})

		assert.Equal(t, "Dixon has: K♠ and an unknown card\n", output.String())
	})

	t.Run("Open hand shows the total", func(t *testing.T) {
		output := &bytes.Buffer{}

		NewRenderer(output).ShowHand(entity.HandSnapshot{Owner: "Ann", Cards: []entity.Symbol{"A♠", "9♣", "A♦"}, Total: 21})

		assert.Equal(t, "Ann has: A♠, 9♣, and A♦ (total 21)\n", output.String())
	})
}
