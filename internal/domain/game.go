package domain

type Cell byte

const (
	None = Cell(' ')
	X    = Cell('X')
	O    = Cell('O')
)

func (c Cell) String() string {
	return string(c)
}

// IsMarker reports whether c is one of the two player markers.
func (c Cell) IsMarker() bool {
	return c == X || c == O
}

// Opponent returns the other player's marker, or None for a non-marker cell.
func Opponent(c Cell) Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return None
	}
}

// Board is a row-major snapshot of the grid handed to renderers.
type Board [BoardSize]Cell

// At returns the cell at a 1-based position.
func (b Board) At(pos int) Cell {
	return b[pos-1]
}

type RoundStatus byte

const (
	InProgress = RoundStatus(iota)
	Won
	Tied
)

func (s RoundStatus) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

// RoundOutcome is the terminal result of a round: a win carrying the
// winning marker and line, or a tie.
type RoundOutcome struct {
	Status RoundStatus
	Winner Cell
	Line   Line
}

func WinOutcome(winner Cell, line Line) RoundOutcome {
	return RoundOutcome{
		Status: Won,
		Winner: winner,
		Line:   line,
	}
}

func TieOutcome() RoundOutcome {
	return RoundOutcome{Status: Tied, Winner: None}
}

func (o RoundOutcome) IsWin() bool {
	return o.Status == Won
}
