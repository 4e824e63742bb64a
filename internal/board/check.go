package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// KingCoordinate returns where the king of color c stands. It fails unless
// exactly one such king is on the board.
func (b *Board) KingCoordinate(c Color) (Coordinate, error) {
	king := NewPiece(King, c)
	found := NoCoordinate
	count := 0
	for i := range b.squares {
		if b.squares[i].piece == king {
			found = b.squares[i].coord
			count++
		}
	}
	if count != 1 {
		return NoCoordinate, fmt.Errorf("expected exactly one %s king, found %d", c.Name(), count)
	}
	return found, nil
}

// IsInCheck reports whether any piece of the other color can reach the
// square of the king of color c.
//
// The board must hold exactly one king of color c; IsInCheck panics
// otherwise. Use KingCoordinate first when that is not guaranteed.
func (b *Board) IsInCheck(c Color) bool {
	kingSq, err := b.KingCoordinate(c)
	if err != nil {
		panic("board: IsInCheck: " + err.Error())
	}

	attacker := c.Other()
	for i := range b.squares {
		sq := &b.squares[i]
		p, ok := sq.Piece()
		if !ok || p.Color() != attacker {
			continue
		}
		if slices.Contains(p.Moves(b, sq.coord), kingSq) {
			return true
		}
	}
	return false
}
