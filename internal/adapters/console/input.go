package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-match/pkg/utils"
	"github.com/pkg/errors"
)

const prompt = "> "

type line struct {
	text string
	err  error
}

type input struct {
	lines <-chan line
	out   io.Writer
}

// NewInput reads answers line by line from r and writes prompts to w.
// Lines are scanned in the background so a blocked read can still be
// abandoned through the context.
func NewInput(r io.Reader, w io.Writer) *input {
	lines := make(chan line)
	go scanLines(r, lines)
	return &input{
		lines: lines,
		out:   w,
	}
}

func scanLines(r io.Reader, lines chan<- line) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		lines <- line{err: err}
	}
}

func (in *input) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-in.lines:
		if !ok {
			return "", domain.ErrInputClosed
		}
		if l.err != nil {
			return "", errors.WithMessage(l.err, "scan input")
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (in *input) say(format string, args ...any) {
	_, _ = fmt.Fprintf(in.out, prompt+format+"\n", args...)
}

// RequestMove keeps asking until one of legal is typed.
func (in *input) RequestMove(ctx context.Context, legal []int) (int, error) {
	for {
		in.say("Choose a square (%s):", utils.Joinor(legal, ", ", "or"))
		text, err := in.readLine(ctx)
		if err != nil {
			return 0, err
		}
		pos, err := strconv.Atoi(text)
		if err == nil && slices.Contains(legal, pos) {
			return pos, nil
		}
		in.say("Sorry, that's not a valid choice.")
	}
}

// ContinueMatch accepts y or n in any case.
func (in *input) ContinueMatch(ctx context.Context) (bool, error) {
	for {
		in.say("Would you like to continue? (y/n)")
		text, err := in.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		in.say("Sorry, must be y or n.")
	}
}

func (in *input) AskName(ctx context.Context) (string, error) {
	for {
		in.say("What's your name?")
		text, err := in.readLine(ctx)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		in.say("Sorry, must enter a value.")
	}
}
