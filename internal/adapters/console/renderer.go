package console

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/muesli/termenv"
)

var (
	colorX      = lipgloss.Color("#2CD7C7")
	colorO      = lipgloss.Color("#F4D03F")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWinner = lipgloss.Color("#E74C3C")
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	x      lipgloss.Style
	o      lipgloss.Style
	winner lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorX),
		muted:  r.NewStyle().Foreground(colorMuted),
		x:      r.NewStyle().Bold(true).Foreground(colorX),
		o:      r.NewStyle().Bold(true).Foreground(colorO),
		winner: r.NewStyle().Bold(true).Underline(true).Foreground(colorWinner),
	}
}

type renderer struct {
	out       io.Writer
	term      *termenv.Output
	styles    styles
	clear     bool
	fireworks *fireworks
	scores    domain.Scoreboard
}

type Option func(r *renderer)

// WithClearScreen redraws from the top of the terminal on every update.
func WithClearScreen() Option {
	return func(r *renderer) {
		r.clear = true
	}
}

// WithFireworks celebrates the champion with an animation paced by sleep.
func WithFireworks(rnd *rand.Rand, sleep func(time.Duration)) Option {
	return func(r *renderer) {
		r.fireworks = newFireworks(rnd, sleep)
	}
}

func NewRenderer(w io.Writer, opts ...Option) *renderer {
	r := &renderer{
		out:    w,
		term:   termenv.NewOutput(w),
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *renderer) Welcome() {
	r.clearScreen()
	r.println(r.styles.title.Render("Welcome to Tic Tac Toe!"))
	r.println("")
}

func (r *renderer) Goodbye() {
	r.println(r.styles.title.Render("Thanks for playing Tic Tac Toe! Goodbye!"))
}

func (r *renderer) RoundStarted(ev domain.RoundEvent) {
	r.scores = ev.Scores
	r.clearScreen()
	r.header()
	r.println(r.styles.muted.Render(fmt.Sprintf("Round %d. %s moves first.", ev.Round, ev.First)))
	r.println("")
	r.println(r.drawBoard(ev.Board, nil))
	r.println("")
}

func (r *renderer) MoveMade(ev domain.MoveEvent) {
	r.clearScreen()
	r.header()
	r.println("")
	r.println(r.drawBoard(ev.Board, nil))
	r.println("")
	r.println(fmt.Sprintf("%s marked square %d.", ev.Player, ev.Position))
}

func (r *renderer) RoundFinished(res domain.RoundResult) {
	r.scores = res.Scores
	r.clearScreen()
	r.header()
	r.println("")
	var line *domain.Line
	if res.Outcome.IsWin() {
		line = &res.Outcome.Line
	}
	r.println(r.drawBoard(res.Board, line))
	r.println("")
	if res.Outcome.IsWin() {
		r.println(r.styles.title.Render(res.Winner + " won!"))
	} else {
		r.println(r.styles.title.Render("It's a tie!"))
	}
}

func (r *renderer) MatchFinished(res domain.MatchResult) {
	r.scores = res.Scores
	if res.Champion == nil {
		r.println(r.styles.muted.Render("The match ended before anyone reached the score limit."))
		r.println(r.scoreLine())
		return
	}
	message := r.styles.title.Render(res.Champion.Name + " is the champion!")
	if r.fireworks != nil {
		r.animate(message)
	}
	r.println(message)
	r.println(r.scoreLine())
}

func (r *renderer) animate(message string) {
	r.term.HideCursor()
	defer r.term.ShowCursor()
	for i := 0; i < fireworksFrames; i++ {
		r.clearScreen()
		for _, row := range r.fireworks.next() {
			r.println(row)
		}
		r.println(message)
		r.fireworks.sleep(fireworksRefresh)
	}
	r.clearScreen()
}

func (r *renderer) header() {
	a, b := r.scores[0], r.scores[1]
	r.println(fmt.Sprintf("%s is %s. %s is %s.", a.Name, r.marker(a.Cell), b.Name, r.marker(b.Cell)))
	r.println(r.scoreLine())
}

func (r *renderer) scoreLine() string {
	a, b := r.scores[0], r.scores[1]
	return r.styles.muted.Render(fmt.Sprintf("Score: %s %d - %d %s", a.Name, a.Score, b.Score, b.Name))
}

func (r *renderer) marker(c domain.Cell) string {
	switch c {
	case domain.X:
		return r.styles.x.Render(c.String())
	case domain.O:
		return r.styles.o.Render(c.String())
	default:
		return c.String()
	}
}

// drawBoard highlights the cells of a winning line when one is given.
func (r *renderer) drawBoard(b domain.Board, highlight *domain.Line) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("-----+-----+-----\n")
		}
		sb.WriteString("     |     |\n")
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			pos := row*3 + col + 1
			cells[col] = r.cell(b.At(pos), highlight != nil && onLine(*highlight, pos))
		}
		sb.WriteString("  " + strings.Join(cells, "  |  ") + "\n")
		sb.WriteString("     |     |")
		if row < 2 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (r *renderer) cell(c domain.Cell, winning bool) string {
	if winning {
		return r.styles.winner.Render(c.String())
	}
	return r.marker(c)
}

func onLine(line domain.Line, pos int) bool {
	return line[0] == pos || line[1] == pos || line[2] == pos
}

func (r *renderer) clearScreen() {
	if r.clear {
		r.term.ClearScreen()
	}
}

func (r *renderer) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}
