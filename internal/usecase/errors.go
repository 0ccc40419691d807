package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("resource not found")
	ErrNoActivePlayer  = errors.New("no player is on the block")
	ErrPlayerNotOpen   = errors.New("active player is not open for sale")
	ErrPlayerNotPassed = errors.New("player has not been passed")
)
