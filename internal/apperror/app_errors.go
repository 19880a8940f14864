package apperror

import "errors"

var (
	ErrInvalidSymbol        = errors.New("symbol is not in the alphabet")
	ErrAmbiguousSymbol      = errors.New("symbol is ambiguous")
	ErrMatchNotStarted      = errors.New("match is not started")
	ErrMatchInProgress      = errors.New("match is still in progress")
	ErrMatchAlreadyComplete = errors.New("match is already complete")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInvalidCell          = errors.New("invalid cell index")
)
