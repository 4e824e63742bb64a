package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN string into a Board.
// Every failure wraps ErrInvalidFENString.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: need 6 fields, got %d", ErrInvalidFENString, len(parts))
	}

	b := emptyBoard()

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w", "W":
		b.activeColor = White
	case "b", "B":
		b.activeColor = Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFENString, parts[1])
	}

	// Parse castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	b.castling = cr

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		c, err := ParseCoordinate(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid en passant square: %w", ErrInvalidFENString, err)
		}
		b.enPassant = c
	}

	// Parse half-move clock (field 4)
	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return nil, fmt.Errorf("%w: invalid half-move clock %q", ErrInvalidFENString, parts[4])
	}
	b.halfMoveClock = hmc

	// Parse full-move number (field 5)
	fmn, err := strconv.Atoi(parts[5])
	if err != nil || fmn < 1 {
		return nil, fmt.Errorf("%w: invalid full-move number %q", ErrInvalidFENString, parts[5])
	}
	b.fullMoveNumber = fmn

	return b, nil
}

// parsePiecePlacement fills the board from the first FEN field. Ranks are
// listed from rank 8 down to rank 1.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != boardHeight {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFENString, len(ranks))
	}

	for i, rankStr := range ranks {
		y := boardHeight - 1 - i
		x := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if x >= boardWidth {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFENString, y+1)
			}

			if c >= '1' && c <= '8' {
				x += int(c - '0')
				if x > boardWidth {
					return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFENString, y+1)
				}
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFENString, c)
			}
			b.squares[y*boardWidth+x].piece = piece
			x++
		}

		if x != boardWidth {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFENString, y+1, x)
		}
	}

	return nil
}

// parseCastlingRights parses the castling field: "-" alone, or each of
// K, Q, k and q at most once.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}
	if castling == "" {
		return NoCastling, fmt.Errorf("%w: empty castling field", ErrInvalidFENString)
	}

	cr := NoCastling
	for i := 0; i < len(castling); i++ {
		var right CastlingRights
		switch castling[i] {
		case 'K':
			right = WhiteKingSideCastle
		case 'Q':
			right = WhiteQueenSideCastle
		case 'k':
			right = BlackKingSideCastle
		case 'q':
			right = BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: invalid castling character %q", ErrInvalidFENString, castling[i])
		}
		if cr&right != 0 {
			return NoCastling, fmt.Errorf("%w: repeated castling character %q", ErrInvalidFENString, castling[i])
		}
		cr |= right
	}
	return cr, nil
}

// ToFEN returns the FEN representation of the board.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// Piece placement
	for y := boardHeight - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < boardWidth; x++ {
			piece := b.squares[y*boardWidth+x].piece
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if b.activeColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.Algebraic())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))

	return sb.String()
}
