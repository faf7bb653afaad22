package round

import (
	"context"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/pkg/errors"
)

// Round alternates two players on a borrowed grid until a line is
// completed or the grid is full.
type Round struct {
	grid    *domain.Grid
	players [2]*domain.Player
	turn    int
	moves   int
	outcome domain.RoundOutcome
}

// NewRound expects a reset grid; first moves first.
func NewRound(grid *domain.Grid, first, second *domain.Player) *Round {
	return &Round{
		grid:    grid,
		players: [2]*domain.Player{first, second},
		outcome: domain.RoundOutcome{Status: domain.InProgress, Winner: domain.None},
	}
}

func (r *Round) Status() domain.RoundStatus {
	return r.outcome.Status
}

func (r *Round) Outcome() domain.RoundOutcome {
	return r.outcome
}

func (r *Round) Current() *domain.Player {
	return r.players[r.turn]
}

func (r *Round) Moves() int {
	return r.moves
}

// Step plays a single turn. An ErrInvalidMove coming back from the grid
// means a strategy offered an illegal position and must not be retried.
func (r *Round) Step(ctx context.Context) (domain.MoveEvent, error) {
	if r.outcome.Status != domain.InProgress {
		return domain.MoveEvent{}, errRoundFinished
	}
	player := r.Current()
	pos, err := player.ChooseMove(ctx, r.grid)
	if err != nil {
		return domain.MoveEvent{}, errors.WithMessagef(err, "choose move for '%s'", player.Name())
	}
	if err := r.grid.Mark(pos, player.Cell()); err != nil {
		return domain.MoveEvent{}, errors.WithMessagef(err, "mark position chosen by '%s'", player.Name())
	}
	r.moves++
	switch line, ok := r.grid.WinningLine(); {
	case ok:
		r.outcome = domain.WinOutcome(player.Cell(), line)
	case r.grid.IsFull():
		r.outcome = domain.TieOutcome()
	default:
		r.turn = 1 - r.turn
	}
	return domain.MoveEvent{
		Board:    r.grid.Board(),
		Player:   player.Name(),
		Cell:     player.Cell(),
		Position: pos,
	}, nil
}
