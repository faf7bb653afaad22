package eventlog

import (
	"bufio"
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEvents(t *testing.T, buf *bytes.Buffer) []event {
	t.Helper()
	var events []event
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var e event
		require.NoError(t, jsoniter.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestRenderer_WritesOneLinePerEvent(t *testing.T) {
	// Given: a renderer over a buffer
	var buf bytes.Buffer
	r := New(&buf, "match-1", zap.NewNop())
	scores := domain.Scoreboard{{Name: "Ada", Cell: domain.X}, {Name: "Hal", Cell: domain.O}}
	board := domain.Board{
		domain.X, domain.X, domain.X,
		domain.O, domain.O, domain.None,
		domain.None, domain.None, domain.None,
	}
	champion := domain.PlayerScore{Name: "Ada", Cell: domain.X, Score: 1}

	// When: a one-round match is reported
	r.RoundStarted(domain.RoundEvent{Round: 1, Scores: scores, First: "Ada"})
	r.MoveMade(domain.MoveEvent{Board: board, Player: "Ada", Cell: domain.X, Position: 3})
	r.RoundFinished(domain.RoundResult{
		Round:   1,
		Outcome: domain.WinOutcome(domain.X, domain.Line{1, 2, 3}),
		Board:   board,
		Scores:  domain.Scoreboard{champion, scores[1]},
		Winner:  "Ada",
	})
	r.MatchFinished(domain.MatchResult{Scores: domain.Scoreboard{champion, scores[1]}, Champion: &champion, Rounds: 1})

	// Then: four events carry the match id and their payloads
	events := readEvents(t, &buf)
	require.Len(t, events, 4)
	for _, e := range events {
		assert.Equal(t, "match-1", e.MatchID)
	}
	assert.Equal(t, roundStartedEvent, events[0].Type)
	assert.Equal(t, "Ada", events[0].Player)

	assert.Equal(t, moveEvent, events[1].Type)
	assert.Equal(t, 1, events[1].Round)
	assert.Equal(t, "XXXOO....", events[1].Board)
	assert.Equal(t, 3, events[1].Position)
	assert.Equal(t, "X", events[1].Marker)

	assert.Equal(t, roundFinishedEvent, events[2].Type)
	assert.Equal(t, "won", events[2].Status)
	assert.Equal(t, []int{1, 2, 3}, events[2].Line)
	assert.Equal(t, "Ada", events[2].Winner)
	assert.Equal(t, 1, events[2].Scores[0].Score)

	assert.Equal(t, matchFinishedEvent, events[3].Type)
	assert.Equal(t, "Ada", events[3].Champion)
	assert.False(t, events[3].Forfeited)
}

func TestRenderer_TieAndForfeit(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "match-2", zap.NewNop())

	r.RoundFinished(domain.RoundResult{Round: 1, Outcome: domain.TieOutcome()})
	r.MatchFinished(domain.MatchResult{Rounds: 1, Forfeited: true})

	events := readEvents(t, &buf)
	require.Len(t, events, 2)
	assert.Equal(t, "tied", events[0].Status)
	assert.Empty(t, events[0].Line)
	assert.Empty(t, events[0].Winner)
	assert.True(t, events[1].Forfeited)
	assert.Empty(t, events[1].Champion)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderer_WriteFailureIsNotFatal(t *testing.T) {
	r := New(failingWriter{}, "match-3", zap.NewNop())

	assert.NotPanics(t, func() {
		r.MoveMade(domain.MoveEvent{Player: "Ada", Cell: domain.X, Position: 1})
	})
}
