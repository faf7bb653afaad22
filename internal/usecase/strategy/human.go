package strategy

import (
	"context"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type human struct {
	input  domain.InputProvider
	logger *zap.Logger
}

// NewHuman defers every choice to input. The provider guarantees the
// returned position is one of the offered ones.
func NewHuman(input domain.InputProvider, logger *zap.Logger) human {
	return human{
		input:  input,
		logger: logger,
	}
}

func (h human) ChooseMove(ctx context.Context, grid *domain.Grid, marker domain.Cell) (int, error) {
	legal := grid.UnmarkedPositions()
	if len(legal) == 0 {
		return 0, errNoLegalMoves
	}
	pos, err := h.input.RequestMove(ctx, legal)
	if err != nil {
		return 0, errors.WithMessage(err, "request move from input")
	}
	h.logger.Debug("human chose position", zap.Stringer("marker", marker), zap.Int("position", pos))
	return pos, nil
}
