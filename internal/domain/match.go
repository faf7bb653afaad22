package domain

type PlayerScore struct {
	Name  string `json:"name"`
	Cell  Cell   `json:"-"`
	Score int    `json:"score"`
}

// Scoreboard lists both players in seating order.
type Scoreboard [2]PlayerScore

type MatchResult struct {
	Scores    Scoreboard
	Champion  *PlayerScore
	Rounds    int
	Forfeited bool
}

type MoveEvent struct {
	Board    Board
	Player   string
	Cell     Cell
	Position int
}

type RoundEvent struct {
	Round  int
	Board  Board
	Scores Scoreboard
	// First is the name of the player who moves first.
	First string
}

type RoundResult struct {
	Round   int
	Outcome RoundOutcome
	Board   Board
	Scores  Scoreboard
	// Winner is empty on a tie.
	Winner string
}

// Renderer is a write-only sink for observable match state.
type Renderer interface {
	RoundStarted(ev RoundEvent)
	MoveMade(ev MoveEvent)
	RoundFinished(res RoundResult)
	MatchFinished(res MatchResult)
}

// Renderers fans every event out to each renderer in order.
type Renderers []Renderer

func (rs Renderers) RoundStarted(ev RoundEvent) {
	for _, r := range rs {
		r.RoundStarted(ev)
	}
}

func (rs Renderers) MoveMade(ev MoveEvent) {
	for _, r := range rs {
		r.MoveMade(ev)
	}
}

func (rs Renderers) RoundFinished(res RoundResult) {
	for _, r := range rs {
		r.RoundFinished(res)
	}
}

func (rs Renderers) MatchFinished(res MatchResult) {
	for _, r := range rs {
		r.MatchFinished(res)
	}
}
