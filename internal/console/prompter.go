package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const namePrompt = "What's your name?"

var validName = regexp.MustCompile(`^\S+( \S+)?$`)

// ValidName accepts one word, or two words separated by a single space.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Prompter asks questions on a line-oriented console and keeps asking until the answer is valid.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer

	// pending holds a read abandoned by a canceled context; the next read waits on it.
	pending chan readResult
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

func (that *Prompter) RequestSymbol(ctx context.Context, prompt string, alphabet entity.Alphabet) (entity.Symbol, error) {
	question := fmt.Sprintf("%s (%s):", prompt, Joinor(alphabet.Strings(), ", ", "or"))

	for {
		answer, err := that.ask(ctx, question)
		if err != nil {
			return entity.EmptySymbol, err
		}

		symbol, err := alphabet.Match(answer)
		switch {
		case err == nil:
			return symbol, nil
		case errors.Is(err, apperror.ErrAmbiguousSymbol):
			that.println(fmt.Sprintf("Sorry, %q is ambiguous. Type a few more letters.", strings.TrimSpace(answer)))
		default:
			that.println("Sorry, that's not a valid choice.")
		}
	}
}

func (that *Prompter) RequestYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := that.ask(ctx, prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		that.println("Sorry, must be y or n.")
	}
}

func (that *Prompter) RequestName(ctx context.Context) (string, error) {
	for {
		answer, err := that.ask(ctx, namePrompt)
		if err != nil {
			return "", err
		}

		name := strings.TrimSpace(answer)
		if ValidName(name) {
			return cases.Title(language.English).String(name), nil
		}

		that.println("Sorry, please enter one or two words separated by a single space.")
	}
}

func (that *Prompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.println(question)

	line, err := that.readLine(ctx)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Prompter) println(line string) {
	_, _ = fmt.Fprintln(that.writer, line)
}

type readResult struct {
	line string
	err  error
}

// readLine returns as soon as ctx is done. The read keeps running in the background and its line is
// handed to the next call, so only one goroutine ever reads from the buffer.
func (that *Prompter) readLine(ctx context.Context) (string, error) {
	if that.pending == nil {
		that.pending = make(chan readResult, 1)

		go func(result chan<- readResult) {
			line, err := that.reader.ReadString('\n')
			result <- readResult{line: line, err: err}
		}(that.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case read := <-that.pending:
		that.pending = nil

		if read.err != nil && !(errors.Is(read.err, io.EOF) && read.line != "") {
			return "", fmt.Errorf("failed to read answer: %w", read.err)
		}

		return read.line, nil
	}
}
