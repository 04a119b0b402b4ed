package game

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrIllegalGeometry   = errors.New("not a queen move")
	ErrEmptyHistory      = errors.New("no move to undo")
	ErrInvalidNotation   = errors.New("invalid notation")
)
