package strategy

import (
	"context"
	"math/rand/v2"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"go.uber.org/zap"
)

type tier string

const (
	tierFallible    = tier("fallible")
	tierOpportunity = tier("opportunity")
	tierThreat      = tier("threat")
	tierCenter      = tier("center")
	tierRandom      = tier("random")
)

type computer struct {
	fallibility float64
	rnd         *rand.Rand
	logger      *zap.Logger
}

// NewComputer returns the heuristic opponent. With probability fallibility
// it ignores the heuristic and plays a uniformly random legal position.
func NewComputer(fallibility float64, rnd *rand.Rand, logger *zap.Logger) *computer {
	return &computer{
		fallibility: fallibility,
		rnd:         rnd,
		logger:      logger,
	}
}

func (c *computer) ChooseMove(_ context.Context, grid *domain.Grid, marker domain.Cell) (int, error) {
	legal := grid.UnmarkedPositions()
	if len(legal) == 0 {
		return 0, errNoLegalMoves
	}
	pos, t := c.decide(grid, marker, legal)
	c.logger.Debug("computer chose position",
		zap.Stringer("marker", marker),
		zap.Int("position", pos),
		zap.String("tier", string(t)),
	)
	return pos, nil
}

func (c *computer) decide(grid *domain.Grid, marker domain.Cell, legal []int) (int, tier) {
	if c.fallibility > 0 && c.rnd.Float64() < c.fallibility {
		return c.randomPosition(legal), tierFallible
	}
	// winning preempts blocking
	if pos, ok := findOpportunity(grid, marker); ok {
		return pos, tierOpportunity
	}
	if pos, ok := findThreat(grid, marker); ok {
		return pos, tierThreat
	}
	if grid.Cell(domain.CenterPosition) == domain.None {
		return domain.CenterPosition, tierCenter
	}
	return c.randomPosition(legal), tierRandom
}

func (c *computer) randomPosition(legal []int) int {
	return legal[c.rnd.IntN(len(legal))]
}

// findOpportunity looks for a line with two of marker and one empty cell.
func findOpportunity(grid *domain.Grid, marker domain.Cell) (int, bool) {
	for _, line := range domain.WinningLines() {
		own, opponent, empty := countLine(grid, line, marker)
		if own == 2 && opponent == 0 && len(empty) == 1 {
			return empty[0], true
		}
	}
	return 0, false
}

// findThreat looks for a line with two opponent markers, none of marker and
// one empty cell.
func findThreat(grid *domain.Grid, marker domain.Cell) (int, bool) {
	for _, line := range domain.WinningLines() {
		own, opponent, empty := countLine(grid, line, marker)
		if opponent == 2 && own == 0 && len(empty) == 1 {
			return empty[0], true
		}
	}
	return 0, false
}

func countLine(grid *domain.Grid, line domain.Line, marker domain.Cell) (own, opponent int, empty []int) {
	for _, pos := range line {
		switch grid.Cell(pos) {
		case domain.None:
			empty = append(empty, pos)
		case marker:
			own++
		default:
			opponent++
		}
	}
	return own, opponent, empty
}
