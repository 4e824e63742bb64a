package board

// SquareColor is the fixed light/dark shade of a square.
type SquareColor uint8

const (
	Dark SquareColor = iota
	Light
)

// Flip returns the other shade.
func (sc SquareColor) Flip() SquareColor {
	return sc ^ 1
}

// String returns "D" or "L".
func (sc SquareColor) String() string {
	if sc == Light {
		return "L"
	}
	return "D"
}

// Square is one cell of the board. Its coordinate and shade never change;
// only the occupant does.
type Square struct {
	coord Coordinate
	color SquareColor
	piece Piece
}

func newSquare(coord Coordinate, color SquareColor) Square {
	return Square{coord: coord, color: color, piece: NoPiece}
}

// Coordinate returns where the square sits on the board.
func (s *Square) Coordinate() Coordinate {
	return s.coord
}

// Color returns the square's shade.
func (s *Square) Color() SquareColor {
	return s.color
}

// Piece returns the occupant, and false when the square is empty.
func (s *Square) Piece() (Piece, bool) {
	return s.piece, s.piece != NoPiece
}

// IsEmpty returns true if nothing stands on the square.
func (s *Square) IsEmpty() bool {
	return s.piece == NoPiece
}

// SetPiece replaces the occupant. NoPiece empties the square.
func (s *Square) SetPiece(p Piece) {
	s.piece = p
}

// Clear empties the square and returns what stood on it.
func (s *Square) Clear() Piece {
	p := s.piece
	s.piece = NoPiece
	return p
}
