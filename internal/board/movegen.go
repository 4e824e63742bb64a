package board

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var (
	diagonalDirections   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalDirections = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	queenDirections      = append(append([]direction{}, diagonalDirections...), orthogonalDirections...)

	knightOffsets = []direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = queenDirections
)

// Moves returns the pseudo-legal destinations of the piece standing on from.
// Destinations respect occupancy, captures and the board edge, but a move
// that leaves the mover's own king attacked is not filtered out. Castling
// is never generated. An empty result means the piece cannot move.
func (p Piece) Moves(b *Board, from Coordinate) []Coordinate {
	c := p.Color()
	switch p.Type() {
	case Pawn:
		return pawnMoves(b, from, c)
	case Knight:
		return stepMoves(b, from, c, knightOffsets)
	case Bishop:
		return slideMoves(b, from, c, diagonalDirections)
	case Rook:
		return slideMoves(b, from, c, orthogonalDirections)
	case Queen:
		return slideMoves(b, from, c, queenDirections)
	case King:
		return stepMoves(b, from, c, kingOffsets)
	}
	return nil
}

// slideMoves walks each ray until the board edge or the first occupied
// square. An enemy on that square is included, an ally is not.
func slideMoves(b *Board, from Coordinate, c Color, dirs []direction) []Coordinate {
	var moves []Coordinate
	for _, d := range dirs {
		to := from
		for {
			to = to.Add(d.df, d.dr)
			if !to.IsValid() {
				break
			}
			if b.CanMove(to, c) {
				moves = append(moves, to)
				continue
			}
			if b.CanCapture(to, c) {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// stepMoves tests each offset on its own; squares in between do not matter.
func stepMoves(b *Board, from Coordinate, c Color, offsets []direction) []Coordinate {
	var moves []Coordinate
	for _, d := range offsets {
		to, ok := from.Offset(d.df, d.dr)
		if !ok {
			continue
		}
		if b.CanMove(to, c) || b.CanCapture(to, c) {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnHomeRank returns the rank a pawn of color c starts on.
func pawnHomeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// pawnMoves generates pushes and captures. The double push depends only on
// standing on the home rank; there is no record of whether the pawn moved.
// A diagonal square equal to the board's en passant target is a capture
// even though it is empty.
func pawnMoves(b *Board, from Coordinate, c Color) []Coordinate {
	forward := 1
	if c == Black {
		forward = -1
	}

	var moves []Coordinate

	if one, ok := from.Offset(0, forward); ok && b.CanMove(one, c) {
		moves = append(moves, one)

		if from.Rank == pawnHomeRank(c) {
			if two, ok := from.Offset(0, 2*forward); ok && b.CanMove(two, c) {
				moves = append(moves, two)
			}
		}
	}

	ep, hasEP := b.EnPassantTarget()
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, forward)
		if !ok {
			continue
		}
		if b.CanCapture(to, c) || (hasEP && to == ep) {
			moves = append(moves, to)
		}
	}

	return moves
}
