package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const clearScreen = "\033[H\033[2J"

// Joinor joins items with delimiter and puts the conjunction before the last one:
// "1, 2, or 3", "1 or 2".
func Joinor(items []string, delimiter, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s %s %s", items[0], conjunction, items[1])
	}

	head := lo.DropRight(items, 1)

	return fmt.Sprintf("%s%s%s %s", strings.Join(head, delimiter), delimiter, conjunction, items[len(items)-1])
}

// Renderer writes game state as plain text. The screen is cleared before each scoreboard only when
// the output is a terminal.
type Renderer struct {
	writer   io.Writer
	terminal bool
}

func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{
		writer:   writer,
		terminal: isTerminal(writer),
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (that *Renderer) Greet(title, name, opponent string) {
	that.printf("Welcome to %s, %s! Your opponent is %s.\n\n", title, name, opponent)
}

func (that *Renderer) Farewell(name string) {
	that.printf("Thanks for playing, %s. Goodbye!\n", name)
}

func (that *Renderer) ShowScoreboard(board entity.Scoreboard) {
	if that.terminal {
		that.printf("%s", clearScreen)
	}

	that.printf("=== %s ===\n", board.Title)
	that.printf("Round %d, first to %d wins\n", board.Round, board.WinsRequired)
	that.printf("%s: %d | %s: %d\n\n", board.Scores[0].Name, board.Scores[0].Score, board.Scores[1].Name, board.Scores[1].Score)
}

func (that *Renderer) ShowRound(result entity.RoundResult) {
	first, second := result.Selections[0], result.Selections[1]
	that.printf("%s (%s) vs %s (%s)\n", first.Name, first.Symbol, second.Name, second.Symbol)

	if result.Summary != "" {
		that.printf("%s\n", capitalize(result.Summary))
	}

	if result.Winner == "" {
		that.printf("It's a tie!\n")
	} else {
		that.printf("%s wins round %d!\n", result.Winner, result.Round)
	}

	that.printf("%s: %d | %s: %d\n\n",
		result.ScoresAfter[0].Name, result.ScoresAfter[0].Score,
		result.ScoresAfter[1].Name, result.ScoresAfter[1].Score)
}

func (that *Renderer) ShowMatch(result entity.MatchResult) {
	first, second := result.FinalScores[0], result.FinalScores[1]

	that.printf("%s wins the match %d to %d after %d rounds!\n", result.Winner,
		max(first.Score, second.Score), min(first.Score, second.Score), result.Rounds)

	for _, score := range result.FinalScores {
		if len(score.History) == 0 {
			continue
		}

		moves := lo.Map(score.History, func(symbol entity.Symbol, _ int) string {
			return symbol.String()
		})
		that.printf("%s's moves: %s\n", score.Name, strings.Join(moves, ", "))
	}

	that.printf("\n")
}

func (that *Renderer) ShowBoard(board entity.BoardSnapshot) {
	if board.Legend != "" {
		that.printf("%s\n", board.Legend)
	}

	cell := func(index int) string {
		if board.Cells[index].IsEmpty() {
			return " "
		}
		return board.Cells[index].String()
	}

	for row := range 3 {
		if row > 0 {
			that.printf("---+---+---\n")
		}
		that.printf(" %s | %s | %s\n", cell(row*3), cell(row*3+1), cell(row*3+2))
	}

	that.printf("\n")
}

func (that *Renderer) ShowHand(hand entity.HandSnapshot) {
	cards := lo.Map(hand.Cards, func(symbol entity.Symbol, _ int) string {
		return symbol.String()
	})

	if hand.IsMasked() {
		hidden := lo.Times(hand.HiddenCards, func(_ int) string {
			return "an unknown card"
		})
		that.printf("%s has: %s\n", hand.Owner, Joinor(append(cards, hidden...), ", ", "and"))
		return
	}

	that.printf("%s has: %s (total %d)\n", hand.Owner, Joinor(cards, ", ", "and"), hand.Total)
}

func (that *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.writer, format, args...)
}

func capitalize(line string) string {
	first, size := utf8.DecodeRuneInString(line)
	if first == utf8.RuneError {
		return line
	}

	return string(unicode.ToUpper(first)) + line[size:]
}
