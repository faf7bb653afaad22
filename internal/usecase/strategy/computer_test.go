package strategy

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestComputer(fallibility float64) *computer {
	return NewComputer(fallibility, rand.New(rand.NewPCG(7, 11)), zap.NewNop())
}

func gridFrom(t *testing.T, b domain.Board) *domain.Grid {
	t.Helper()
	g := domain.NewGrid()
	for i, cell := range b {
		if cell != domain.None {
			require.NoError(t, g.Mark(i+1, cell))
		}
	}
	return g
}

func emptyBoard() domain.Board {
	var b domain.Board
	for i := range b {
		b[i] = domain.None
	}
	return b
}

func TestComputer_CompletesEveryOpportunity(t *testing.T) {
	for _, line := range domain.WinningLines() {
		for gap := range line {
			// Given: O holds two cells of the line and the third is empty
			b := emptyBoard()
			for i, pos := range line {
				if i != gap {
					b[pos-1] = domain.O
				}
			}
			g := gridFrom(t, b)

			// When: O chooses a move with the heuristic always applied
			pos, err := newTestComputer(0).ChooseMove(context.Background(), g, domain.O)

			// Then: the gap is filled
			require.NoError(t, err)
			assert.Equal(t, line[gap], pos, fmt.Sprintf("line %v gap %d", line, gap))
		}
	}
}

func TestComputer_BlocksEveryThreat(t *testing.T) {
	for _, line := range domain.WinningLines() {
		for gap := range line {
			// Given: X threatens the line and O has nothing to complete
			b := emptyBoard()
			for i, pos := range line {
				if i != gap {
					b[pos-1] = domain.X
				}
			}
			g := gridFrom(t, b)

			// When: O chooses a move
			pos, err := newTestComputer(0).ChooseMove(context.Background(), g, domain.O)

			// Then: the threat is blocked
			require.NoError(t, err)
			assert.Equal(t, line[gap], pos, fmt.Sprintf("line %v gap %d", line, gap))
		}
	}
}

func TestComputer_OpportunityPreemptsThreat(t *testing.T) {
	// Given: X threatens the top row and O can win on the middle row
	g := gridFrom(t, domain.Board{
		domain.X, domain.X, domain.None,
		domain.O, domain.O, domain.None,
		domain.X, domain.None, domain.None,
	})

	// When: O chooses a move
	pos, err := newTestComputer(0).ChooseMove(context.Background(), g, domain.O)

	// Then: O wins instead of blocking
	require.NoError(t, err)
	assert.Equal(t, 6, pos)
}

func TestComputer_ThreatIgnoresLinesWithOwnMarker(t *testing.T) {
	// Given: the only line with two X also holds an O
	g := gridFrom(t, domain.Board{
		domain.X, domain.X, domain.O,
		domain.None, domain.None, domain.None,
		domain.None, domain.None, domain.None,
	})

	// When: O chooses a move
	pos, err := newTestComputer(0).ChooseMove(context.Background(), g, domain.O)

	// Then: there is nothing to block so the center is taken
	require.NoError(t, err)
	assert.Equal(t, domain.CenterPosition, pos)
}

func TestComputer_PrefersCenterOnEmptyBoard(t *testing.T) {
	pos, err := newTestComputer(0).ChooseMove(context.Background(), domain.NewGrid(), domain.O)

	require.NoError(t, err)
	assert.Equal(t, domain.CenterPosition, pos)
}

func TestComputer_RandomFallbackPicksLegalPosition(t *testing.T) {
	// Given: the center is taken and no line has two of a kind
	g := gridFrom(t, domain.Board{
		domain.None, domain.None, domain.None,
		domain.None, domain.X, domain.None,
		domain.None, domain.None, domain.None,
	})
	c := newTestComputer(0)

	for i := 0; i < 50; i++ {
		// When: O chooses a move
		pos, err := c.ChooseMove(context.Background(), g, domain.O)

		// Then: it is one of the unmarked positions
		require.NoError(t, err)
		assert.Contains(t, g.UnmarkedPositions(), pos)
	}
}

func TestComputer_RandomFallbackIsReproducible(t *testing.T) {
	g := gridFrom(t, domain.Board{
		domain.None, domain.None, domain.None,
		domain.None, domain.X, domain.None,
		domain.None, domain.None, domain.None,
	})
	a := newTestComputer(0)
	b := newTestComputer(0)

	for i := 0; i < 20; i++ {
		pa, err := a.ChooseMove(context.Background(), g, domain.O)
		require.NoError(t, err)
		pb, err := b.ChooseMove(context.Background(), g, domain.O)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}

func TestComputer_FullFallibilitySkipsHeuristic(t *testing.T) {
	// Given: O could win at position 3
	g := gridFrom(t, domain.Board{
		domain.O, domain.O, domain.None,
		domain.X, domain.X, domain.None,
		domain.X, domain.None, domain.None,
	})
	c := newTestComputer(1)
	legal := g.UnmarkedPositions()

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		// When: the heuristic is always skipped
		pos, tr := c.decide(g, domain.O, legal)

		// Then: every choice is a random legal one
		assert.Equal(t, tierFallible, tr)
		assert.Contains(t, legal, pos)
		seen[pos] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestComputer_NoLegalMoves(t *testing.T) {
	g := gridFrom(t, domain.Board{
		domain.X, domain.O, domain.X,
		domain.X, domain.O, domain.O,
		domain.O, domain.X, domain.X,
	})

	_, err := newTestComputer(0).ChooseMove(context.Background(), g, domain.O)

	assert.ErrorIs(t, err, errNoLegalMoves)
}

func TestDecideTiers(t *testing.T) {
	tests := []struct {
		name  string
		board domain.Board
		want  tier
		pos   int
	}{
		{
			name:  "opportunity",
			board: domain.Board{domain.O, domain.None, domain.O, domain.X, domain.X, domain.None, domain.None, domain.None, domain.None},
			want:  tierOpportunity,
			pos:   2,
		},
		{
			name:  "random when nothing applies",
			board: domain.Board{domain.X, domain.None, domain.None, domain.None, domain.O, domain.None, domain.None, domain.None, domain.X},
			want:  tierRandom,
		},
		{
			name:  "block diagonal",
			board: domain.Board{domain.None, domain.None, domain.X, domain.None, domain.X, domain.None, domain.None, domain.None, domain.O},
			want:  tierThreat,
			pos:   7,
		},
		{
			name:  "center",
			board: domain.Board{domain.X, domain.None, domain.None, domain.None, domain.None, domain.None, domain.None, domain.None, domain.None},
			want:  tierCenter,
			pos:   domain.CenterPosition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom(t, tt.board)

			pos, got := newTestComputer(0).decide(g, domain.O, g.UnmarkedPositions())

			assert.Equal(t, tt.want, got)
			if tt.pos != 0 {
				assert.Equal(t, tt.pos, pos)
			}
		})
	}
}
