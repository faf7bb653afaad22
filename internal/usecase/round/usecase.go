package round

import (
	"context"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase struct {
	renderer domain.Renderer
	logger   *zap.Logger
}

func New(renderer domain.Renderer, logger *zap.Logger) useCase {
	return useCase{
		renderer: renderer,
		logger:   logger,
	}
}

// Play runs a round to completion and reports every move to the renderer.
func (u useCase) Play(ctx context.Context, grid *domain.Grid, first, second *domain.Player) (domain.RoundOutcome, error) {
	r := NewRound(grid, first, second)
	for r.Status() == domain.InProgress {
		ev, err := r.Step(ctx)
		if err != nil {
			return domain.RoundOutcome{}, errors.WithMessage(err, "play turn")
		}
		u.logger.Debug("move made",
			zap.String("player", ev.Player),
			zap.Stringer("marker", ev.Cell),
			zap.Int("position", ev.Position),
		)
		u.renderer.MoveMade(ev)
	}
	outcome := r.Outcome()
	u.logger.Debug("round finished",
		zap.Stringer("status", outcome.Status),
		zap.Stringer("winner", outcome.Winner),
		zap.Int("moves", r.Moves()),
	)
	return outcome, nil
}
