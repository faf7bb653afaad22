package match

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidScoreLimit = errors.New("score limit must be at least 1")
	errMatchFinished     = errors.New("match is already finished")
)
