package domain

import (
	"context"
)

// MoveStrategy picks a legal position for marker on grid.
type MoveStrategy interface {
	ChooseMove(ctx context.Context, grid *Grid, marker Cell) (int, error)
}

type Player struct {
	name     string
	cell     Cell
	score    int
	strategy MoveStrategy
}

func NewPlayer(name string, cell Cell, strategy MoveStrategy) *Player {
	return &Player{
		name:     name,
		cell:     cell,
		strategy: strategy,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Cell() Cell {
	return p.cell
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) ChooseMove(ctx context.Context, grid *Grid) (int, error) {
	return p.strategy.ChooseMove(ctx, grid, p.cell)
}

// AddPoint is called by the match once a round is won by p.
func (p *Player) AddPoint() {
	p.score++
}

func (p *Player) Standing() PlayerScore {
	return PlayerScore{
		Name:  p.name,
		Cell:  p.cell,
		Score: p.score,
	}
}
