package domain

import (
	"context"

	"github.com/pkg/errors"
)

var ErrInputClosed = errors.New("input closed")

// InputProvider blocks until the human picks one of the offered positions.
// Re-prompting on malformed input is the provider's job.
type InputProvider interface {
	RequestMove(ctx context.Context, legal []int) (int, error)
}

// ContinueDecider is asked between rounds whether the match goes on.
type ContinueDecider interface {
	ContinueMatch(ctx context.Context) (bool, error)
}

type ContinueFunc func(ctx context.Context) (bool, error)

func (f ContinueFunc) ContinueMatch(ctx context.Context) (bool, error) {
	return f(ctx)
}

// AlwaysContinue never forfeits.
var AlwaysContinue = ContinueFunc(func(context.Context) (bool, error) {
	return true, nil
})
