package domain

import "errors"

var (
	ErrInvalidField  = errors.New("field dimensions must be positive")
	ErrEmptySnake    = errors.New("snake needs at least one tile")
	ErrNoPhantomTile = errors.New("no phantom tile: feed called without a preceding step")
	ErrFieldFull     = errors.New("no free tile left on the field")
	ErrInvalidConfig = errors.New("invalid game config")
)
