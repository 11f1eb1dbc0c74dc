package playingcard

import "errors"

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrUnknownRank = errors.New("unknown rank")
	ErrUnknownSuit = errors.New("unknown suit")
)
