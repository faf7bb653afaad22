package eventlog

import (
	"io"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-match/pkg/utils"
	"go.uber.org/zap"
)

const (
	roundStartedEvent  = "round_started"
	moveEvent          = "move"
	roundFinishedEvent = "round_finished"
	matchFinishedEvent = "match_finished"
)

type score struct {
	Name   string `json:"name"`
	Marker string `json:"marker"`
	Score  int    `json:"score"`
}

type event struct {
	MatchID   string  `json:"match_id"`
	Type      string  `json:"type"`
	Round     int     `json:"round,omitempty"`
	Board     string  `json:"board,omitempty"`
	Player    string  `json:"player,omitempty"`
	Marker    string  `json:"marker,omitempty"`
	Position  int     `json:"position,omitempty"`
	Status    string  `json:"status,omitempty"`
	Line      []int   `json:"line,omitempty"`
	Winner    string  `json:"winner,omitempty"`
	Scores    []score `json:"scores,omitempty"`
	Champion  string  `json:"champion,omitempty"`
	Forfeited bool    `json:"forfeited,omitempty"`
}

type renderer struct {
	w       io.Writer
	matchID string
	round   int
	logger  *zap.Logger
}

// New writes one JSON object per line to w for every match event. Write
// failures are logged and never stop the match.
func New(w io.Writer, matchID string, logger *zap.Logger) *renderer {
	return &renderer{
		w:       w,
		matchID: matchID,
		logger:  logger,
	}
}

func (r *renderer) RoundStarted(ev domain.RoundEvent) {
	r.round = ev.Round
	r.write(event{
		Type:   roundStartedEvent,
		Round:  ev.Round,
		Player: ev.First,
		Scores: toScores(ev.Scores),
	})
}

func (r *renderer) MoveMade(ev domain.MoveEvent) {
	r.write(event{
		Type:     moveEvent,
		Round:    r.round,
		Board:    boardString(ev.Board),
		Player:   ev.Player,
		Marker:   ev.Cell.String(),
		Position: ev.Position,
	})
}

func (r *renderer) RoundFinished(res domain.RoundResult) {
	e := event{
		Type:   roundFinishedEvent,
		Round:  res.Round,
		Board:  boardString(res.Board),
		Status: res.Outcome.Status.String(),
		Winner: res.Winner,
		Scores: toScores(res.Scores),
	}
	if res.Outcome.IsWin() {
		e.Line = res.Outcome.Line[:]
		e.Marker = res.Outcome.Winner.String()
	}
	r.write(e)
}

func (r *renderer) MatchFinished(res domain.MatchResult) {
	e := event{
		Type:      matchFinishedEvent,
		Round:     res.Rounds,
		Scores:    toScores(res.Scores),
		Forfeited: res.Forfeited,
	}
	if res.Champion != nil {
		e.Champion = res.Champion.Name
	}
	r.write(e)
}

func (r *renderer) write(e event) {
	e.MatchID = r.matchID
	line, err := utils.MarshalJsonLine(e)
	if err != nil {
		r.logger.Warn("failed to encode event", zap.String("type", e.Type), zap.Error(err))
		return
	}
	if _, err := r.w.Write(line); err != nil {
		r.logger.Warn("failed to write event", zap.String("type", e.Type), zap.Error(err))
	}
}

// boardString uses '.' for empty cells so the board survives trimming.
func boardString(b domain.Board) string {
	out := make([]byte, len(b))
	for i, cell := range b {
		if cell == domain.None {
			out[i] = '.'
			continue
		}
		out[i] = byte(cell)
	}
	return string(out)
}

func toScores(board domain.Scoreboard) []score {
	scores := make([]score, 0, len(board))
	for _, s := range board {
		scores = append(scores, score{Name: s.Name, Marker: s.Cell.String(), Score: s.Score})
	}
	return scores
}
