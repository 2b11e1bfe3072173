package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrGameNotFound   = errors.New("game not found")
	ErrUnknownCommand = errors.New("unknown command")
)
