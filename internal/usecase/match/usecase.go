package match

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type RoundPlayer interface {
	Play(ctx context.Context, grid *domain.Grid, first, second *domain.Player) (domain.RoundOutcome, error)
}

type Options struct {
	// ID names the match in logs and events; a random UUID when empty.
	ID         string
	ScoreLimit int
	// FirstSeat is the index of the player opening the first round.
	FirstSeat int
	// Alternate swaps the opening player every round.
	Alternate bool
}

type useCase struct {
	id       string
	players  [2]*domain.Player
	grid     *domain.Grid
	rounds   RoundPlayer
	decider  domain.ContinueDecider
	renderer domain.Renderer
	opts     Options
	played   int
	champion *domain.Player
	finished bool
	logger   *zap.Logger
}

func New(players [2]*domain.Player, rounds RoundPlayer, decider domain.ContinueDecider,
	renderer domain.Renderer, opts Options, logger *zap.Logger) *useCase {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &useCase{
		id:       id,
		players:  players,
		grid:     domain.NewGrid(),
		rounds:   rounds,
		decider:  decider,
		renderer: renderer,
		opts:     opts,
		logger:   logger.With(zap.String("match_id", id)),
	}
}

func (u *useCase) ID() string {
	return u.id
}

func (u *useCase) Rounds() int {
	return u.played
}

func (u *useCase) Scores() domain.Scoreboard {
	return domain.Scoreboard{u.players[0].Standing(), u.players[1].Standing()}
}

// Champion is nil until a player reaches the score limit.
func (u *useCase) Champion() *domain.Player {
	return u.champion
}

// Play runs rounds until a player reaches the score limit or the decider
// declines to continue.
func (u *useCase) Play(ctx context.Context) (domain.MatchResult, error) {
	if u.finished {
		return domain.MatchResult{}, errMatchFinished
	}
	if u.opts.ScoreLimit < 1 {
		return domain.MatchResult{}, ErrInvalidScoreLimit
	}
	u.logger.Info("match started",
		zap.String("player", u.players[0].Name()),
		zap.String("opponent", u.players[1].Name()),
		zap.Int("score_limit", u.opts.ScoreLimit),
	)
	forfeited := false
	for {
		if err := u.playRound(ctx); err != nil {
			return domain.MatchResult{}, errors.WithMessagef(err, "play round %d", u.played+1)
		}
		if u.champion = u.leader(); u.champion != nil {
			break
		}
		next, err := u.decider.ContinueMatch(ctx)
		if err != nil {
			return domain.MatchResult{}, errors.WithMessage(err, "ask to continue match")
		}
		if !next {
			forfeited = true
			break
		}
	}
	u.finished = true
	res := u.result(forfeited)
	u.logger.Info("match finished",
		zap.Int("rounds", res.Rounds),
		zap.Bool("forfeited", res.Forfeited),
		zap.Any("scores", res.Scores),
	)
	u.renderer.MatchFinished(res)
	return res, nil
}

func (u *useCase) playRound(ctx context.Context) error {
	u.grid.Reset()
	first, second := u.seating()
	u.renderer.RoundStarted(domain.RoundEvent{
		Round:  u.played + 1,
		Board:  u.grid.Board(),
		Scores: u.Scores(),
		First:  first.Name(),
	})
	outcome, err := u.rounds.Play(ctx, u.grid, first, second)
	if err != nil {
		return err
	}
	u.played++
	res := domain.RoundResult{
		Round:   u.played,
		Outcome: outcome,
		Board:   u.grid.Board(),
	}
	if outcome.IsWin() {
		winner := u.playerWith(outcome.Winner)
		winner.AddPoint()
		res.Winner = winner.Name()
	}
	res.Scores = u.Scores()
	u.logger.Info("round finished",
		zap.Int("round", res.Round),
		zap.Stringer("status", outcome.Status),
		zap.String("winner", res.Winner),
	)
	u.renderer.RoundFinished(res)
	return nil
}

func (u *useCase) seating() (*domain.Player, *domain.Player) {
	seat := u.opts.FirstSeat % 2
	if u.opts.Alternate && u.played%2 == 1 {
		seat = 1 - seat
	}
	return u.players[seat], u.players[1-seat]
}

func (u *useCase) playerWith(cell domain.Cell) *domain.Player {
	if u.players[0].Cell() == cell {
		return u.players[0]
	}
	return u.players[1]
}

func (u *useCase) leader() *domain.Player {
	for _, p := range u.players {
		if p.Score() >= u.opts.ScoreLimit {
			return p
		}
	}
	return nil
}

func (u *useCase) result(forfeited bool) domain.MatchResult {
	res := domain.MatchResult{
		Scores:    u.Scores(),
		Rounds:    u.played,
		Forfeited: forfeited,
	}
	if u.champion != nil {
		standing := u.champion.Standing()
		res.Champion = &standing
	}
	return res
}
