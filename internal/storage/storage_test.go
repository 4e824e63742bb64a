package storage

import (
	"errors"
	"os"
	"testing"

	"github.com/hailam/chessmodel/internal/board"
)

const lateGameFEN = "8/1k4R1/1r6/6p1/8/3r2p1/3P2P1/2B3K1 b - - 1 37"

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadPosition(t *testing.T) {
	s := openTestStorage(t)

	b, err := board.ParseFEN(lateGameFEN)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if err := s.SavePosition("endgame", b); err != nil {
		t.Fatalf("SavePosition failed: %v", err)
	}

	loaded, err := s.LoadPosition("endgame")
	if err != nil {
		t.Fatalf("LoadPosition failed: %v", err)
	}
	if got := loaded.ToFEN(); got != lateGameFEN {
		t.Errorf("loaded FEN = %q, want %q", got, lateGameFEN)
	}

	rec, err := s.LoadRecord("endgame")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if rec.Name != "endgame" || rec.SavedAt.IsZero() {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStorage(t)

	if err := s.SavePosition("game", board.New()); err != nil {
		t.Fatalf("SavePosition failed: %v", err)
	}
	b, _ := board.ParseFEN(lateGameFEN)
	if err := s.SavePosition("game", b); err != nil {
		t.Fatalf("SavePosition failed: %v", err)
	}

	rec, err := s.LoadRecord("game")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if rec.FEN != lateGameFEN {
		t.Errorf("FEN = %q, want %q", rec.FEN, lateGameFEN)
	}
}

func TestLoadMissingPosition(t *testing.T) {
	s := openTestStorage(t)

	if _, err := s.LoadPosition("nope"); !errors.Is(err, ErrPositionNotFound) {
		t.Errorf("LoadPosition error = %v, want ErrPositionNotFound", err)
	}
	if err := s.DeletePosition("nope"); !errors.Is(err, ErrPositionNotFound) {
		t.Errorf("DeletePosition error = %v, want ErrPositionNotFound", err)
	}
}

func TestEmptyName(t *testing.T) {
	s := openTestStorage(t)

	if err := s.SavePosition(" ", board.New()); !errors.Is(err, ErrEmptyName) {
		t.Errorf("SavePosition error = %v, want ErrEmptyName", err)
	}
	if _, err := s.LoadPosition(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("LoadPosition error = %v, want ErrEmptyName", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStorage(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.SavePosition(name, board.New()); err != nil {
			t.Fatalf("SavePosition(%s) failed: %v", name, err)
		}
	}

	recs, err := s.ListPositions()
	if err != nil {
		t.Fatalf("ListPositions failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i, rec := range recs {
		if rec.Name != want[i] {
			t.Errorf("record %d = %s, want %s", i, rec.Name, want[i])
		}
		if rec.FEN != board.StartFEN {
			t.Errorf("record %s FEN = %q", rec.Name, rec.FEN)
		}
	}

	if err := s.DeletePosition("mid"); err != nil {
		t.Fatalf("DeletePosition failed: %v", err)
	}
	recs, err = s.ListPositions()
	if err != nil {
		t.Fatalf("ListPositions failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d records after delete, want 2", len(recs))
	}
}

func TestInMemory(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	if err := s.SavePosition("start", board.New()); err != nil {
		t.Fatalf("SavePosition failed: %v", err)
	}
	if _, err := s.LoadPosition("start"); err != nil {
		t.Errorf("LoadPosition failed: %v", err)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
