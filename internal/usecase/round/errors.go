package round

import (
	"github.com/pkg/errors"
)

var errRoundFinished = errors.New("round is already finished")
