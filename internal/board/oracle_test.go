package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Positions cross-checked against dragontoothmg, a legal move generator.
var oraclePositions = []string{
	StartFEN,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"rnbqk1nr/pppp1ppp/8/4P3/1b6/8/PPP1PPPP/RNBQKBNR w KQkq - 1 3",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

// coordFromIndex converts a little-endian rank-file index (a1 = 0).
func coordFromIndex(i uint8) Coordinate {
	return MakeCoordinate(int(i%8), int(i/8))
}

func TestCheckAgreesWithOracle(t *testing.T) {
	for _, fen := range oraclePositions {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		oracle := dragontoothmg.ParseFen(fen)

		if got, want := b.IsInCheck(b.ActiveColor()), oracle.OurKingInCheck(); got != want {
			t.Errorf("%s: IsInCheck(%v) = %v, oracle says %v", fen, b.ActiveColor(), got, want)
		}
	}
}

// Every legal move is pseudo-legal, so the oracle's moves must be a subset
// of ours. Castling is not generated here and is skipped.
func TestLegalMovesArePseudoLegal(t *testing.T) {
	for _, fen := range oraclePositions {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		oracle := dragontoothmg.ParseFen(fen)

		for _, m := range oracle.GenerateLegalMoves() {
			from, to := coordFromIndex(m.From()), coordFromIndex(m.To())

			p := b.PieceAt(from)
			if p == NoPiece {
				t.Fatalf("%s: oracle moved from empty square %s", fen, from.Algebraic())
			}
			if p.Type() == King && abs(from.File.Int()-to.File.Int()) == 2 {
				continue
			}

			if !slices.Contains(p.Moves(b, from), to) {
				t.Errorf("%s: %v %s-%s is legal but was not generated",
					fen, p, from.Algebraic(), to.Algebraic())
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
