package board

import (
	"fmt"
	"strings"
)

const (
	boardWidth  = 8
	boardHeight = 8
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string, always in KQkq order.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side still holds the right to castle
// in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

var backRank = [boardWidth]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board owns the 64 squares of a position plus the FEN game-state fields.
// Squares are stored row-major, a1 first, h8 last.
type Board struct {
	squares [boardWidth * boardHeight]Square

	activeColor    Color
	castling       CastlingRights
	enPassant      Coordinate // NoCoordinate if none
	halfMoveClock  int        // Moves since last pawn move or capture
	fullMoveNumber int        // Starts at 1
}

// emptyBoard lays out the squares with no pieces. The shade alternates
// per square and flips once more at each row end, so a1 is dark.
func emptyBoard() *Board {
	b := &Board{
		activeColor:    White,
		enPassant:      NoCoordinate,
		fullMoveNumber: 1,
	}

	color := Dark
	for y := 0; y < boardHeight; y++ {
		for x := 0; x < boardWidth; x++ {
			b.squares[y*boardWidth+x] = newSquare(MakeCoordinate(x, y), color)
			color = color.Flip()
		}
		color = color.Flip()
	}
	return b
}

// New creates the standard starting position.
func New() *Board {
	b := emptyBoard()
	for x := 0; x < boardWidth; x++ {
		b.squares[x].piece = NewPiece(backRank[x], White)
		b.squares[boardWidth+x].piece = WhitePawn
		b.squares[6*boardWidth+x].piece = BlackPawn
		b.squares[7*boardWidth+x].piece = NewPiece(backRank[x], Black)
	}
	b.castling = AllCastling
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// ActiveColor returns the side to move.
func (b *Board) ActiveColor() Color {
	return b.activeColor
}

// CastlingRights returns the castling availability.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassantTarget returns the en passant target, and false if there is none.
func (b *Board) EnPassantTarget() (Coordinate, bool) {
	return b.enPassant, b.enPassant.IsValid()
}

// HalfMoveClock returns the number of half moves since the last capture or pawn move.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the full move counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// Squares returns a copy of all 64 squares, a1 first.
func (b *Board) Squares() []Square {
	out := b.squares
	return out[:]
}

// squareAt looks up a square by zero-based column and row.
func (b *Board) squareAt(x, y int) (*Square, error) {
	if x < 0 || y < 0 || x >= boardWidth || y >= boardHeight {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidRawCoordinatePair, x, y)
	}
	return &b.squares[y*boardWidth+x], nil
}

// Square returns the square at the given coordinate.
func (b *Board) Square(c Coordinate) (*Square, error) {
	return b.squareAt(c.File.Int()-1, c.Rank.Int()-1)
}

// PieceAt returns the piece at the coordinate, or NoPiece if the square is
// empty or off the board.
func (b *Board) PieceAt(c Coordinate) Piece {
	sq, err := b.Square(c)
	if err != nil {
		return NoPiece
	}
	return sq.piece
}

// CanMove returns true if the target square exists and is empty.
// The mover's color does not affect the answer.
func (b *Board) CanMove(target Coordinate, mover Color) bool {
	sq, err := b.Square(target)
	return err == nil && sq.IsEmpty()
}

// CanCapture returns true if the target square exists and holds a piece
// of a color other than mover.
func (b *Board) CanCapture(target Coordinate, mover Color) bool {
	sq, err := b.Square(target)
	if err != nil {
		return false
	}
	p, ok := sq.Piece()
	return ok && p.Color() != mover
}

// PieceMoves returns the pseudo-legal destinations of whatever stands on c.
// An empty square has no moves.
func (b *Board) PieceMoves(c Coordinate) ([]Coordinate, error) {
	sq, err := b.Square(c)
	if err != nil {
		return nil, err
	}
	p, ok := sq.Piece()
	if !ok {
		return nil, nil
	}
	return p.Moves(b, c), nil
}

// String returns a text diagram of the board, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for y := boardHeight - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d  ", y+1)
		for x := 0; x < boardWidth; x++ {
			p := b.squares[y*boardWidth+x].piece
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
