package strategy

import (
	"github.com/pkg/errors"
)

var errNoLegalMoves = errors.New("no legal moves left")
