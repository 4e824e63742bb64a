package board

import "testing"

func TestNeitherInCheckAtStart(t *testing.T) {
	b := New()
	if b.IsInCheck(White) {
		t.Errorf("white should not be in check")
	}
	if b.IsInCheck(Black) {
		t.Errorf("black should not be in check")
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		white bool
		black bool
	}{
		{"bishop check", "rnbqk1nr/pppp1ppp/8/4P3/1b6/8/PPP1PPPP/RNBQKBNR w KQkq - 1 3", true, false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", true, false},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", true, false},
		{"pawn push is not check", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", false, false},
		{"rook check along rank", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", true, false},
		{"rook blocked", "4k3/8/8/8/8/8/8/r2BK3 w - - 0 1", false, false},
		{"queen checks black", "4k3/8/8/7Q/8/8/8/4K3 b - - 0 1", false, true},
		{"queen blocked by pawn", "4k3/4q3/8/8/8/8/4P3/4K3 w - - 0 1", false, false},
		{"en passant target does not give check", "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN failed: %v", err)
			}
			if got := b.IsInCheck(White); got != tc.white {
				t.Errorf("IsInCheck(White) = %v, want %v", got, tc.white)
			}
			if got := b.IsInCheck(Black); got != tc.black {
				t.Errorf("IsInCheck(Black) = %v, want %v", got, tc.black)
			}
		})
	}
}

func TestKingCoordinate(t *testing.T) {
	b := New()
	got, err := b.KingCoordinate(Black)
	if err != nil {
		t.Fatalf("KingCoordinate failed: %v", err)
	}
	if got != (Coordinate{FileE, Rank8}) {
		t.Errorf("black king on %v, want E8", got)
	}

	noBlackKing, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if _, err := noBlackKing.KingCoordinate(Black); err == nil {
		t.Errorf("expected error with no black king")
	}

	twoKings, err := ParseFEN("4k3/8/8/8/8/8/8/K3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if _, err := twoKings.KingCoordinate(White); err == nil {
		t.Errorf("expected error with two white kings")
	}
}

func TestIsInCheckPanicsWithoutKing(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("IsInCheck(Black) should panic with no black king")
		}
	}()
	b.IsInCheck(Black)
}

func BenchmarkIsInCheck(b *testing.B) {
	board, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.IsInCheck(White)
	}
}
