package domain

import (
	"github.com/pkg/errors"
)

const (
	BoardSize      = 9
	CenterPosition = 5
)

var ErrInvalidMove = errors.New("invalid move")

// Line is a triple of 1-based positions.
type Line [3]int

// rows, then columns, then the two diagonals
var winningLines = [8]Line{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// WinningLines returns a copy of the line catalog in scan order.
func WinningLines() [8]Line {
	return winningLines
}

type Grid struct {
	cells Board
}

func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Mark places marker at pos. Out-of-range positions, occupied cells and
// non-marker values are rejected with ErrInvalidMove.
func (g *Grid) Mark(pos int, marker Cell) error {
	if !marker.IsMarker() {
		return errors.WithMessagef(ErrInvalidMove, "marker '%c' is not a player marker", marker)
	}
	if !validPosition(pos) {
		return errors.WithMessagef(ErrInvalidMove, "position '%d' is out of range", pos)
	}
	if g.cells[pos-1] != None {
		return errors.WithMessagef(ErrInvalidMove, "cell in position '%d' is already marked", pos)
	}
	g.cells[pos-1] = marker
	return nil
}

// Cell returns the cell at pos, or None when pos is out of range.
func (g *Grid) Cell(pos int) Cell {
	if !validPosition(pos) {
		return None
	}
	return g.cells[pos-1]
}

func (g *Grid) Board() Board {
	return g.cells
}

// UnmarkedPositions returns the empty positions in ascending order.
func (g *Grid) UnmarkedPositions() []int {
	positions := make([]int, 0, BoardSize)
	for i, cell := range g.cells {
		if cell == None {
			positions = append(positions, i+1)
		}
	}
	return positions
}

func (g *Grid) IsFull() bool {
	return len(g.UnmarkedPositions()) == 0
}

// WinningLine returns the first catalog line whose three cells hold the
// same marker.
func (g *Grid) WinningLine() (Line, bool) {
	for _, line := range winningLines {
		first := g.cells[line[0]-1]
		if first == None {
			continue
		}
		if g.cells[line[1]-1] == first && g.cells[line[2]-1] == first {
			return line, true
		}
	}
	return Line{}, false
}

func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = None
	}
}

func validPosition(pos int) bool {
	return pos >= 1 && pos <= BoardSize
}
