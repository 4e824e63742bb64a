package board

import "errors"

// Errors returned by coordinate parsing, square lookup and FEN decoding.
// Returned errors wrap one of these; test with errors.Is.
var (
	ErrInvalidPositionString    = errors.New("invalid position string")
	ErrInvalidRawCoordinatePair = errors.New("invalid raw coordinate pair")
	ErrInvalidFENString         = errors.New("invalid FEN string")
)
