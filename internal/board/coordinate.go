// Package board implements an 8x8 chess position: coordinates, squares,
// pieces, FEN encoding, pseudo-legal move generation and check detection.
package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// File is a board column, 1 (a) through 8 (h).
// NoFile is the result of any arithmetic or parse that leaves the board.
type File int8

const (
	NoFile File = iota
	FileA
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileFrom maps 1..8 to FileA..FileH and anything else to NoFile.
func FileFrom(i int) File {
	if i < 1 || i > 8 {
		return NoFile
	}
	return File(i)
}

// IsValid returns true for FileA through FileH.
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

// Int returns the 1-based file number, or 0 for NoFile.
func (f File) Int() int {
	if !f.IsValid() {
		return 0
	}
	return int(f)
}

// Add shifts the file by delta. Leaving the board yields NoFile.
func (f File) Add(delta int) File {
	if !f.IsValid() {
		return NoFile
	}
	return FileFrom(f.Int() + delta)
}

// String returns the uppercase file letter, or "!" for NoFile.
func (f File) String() string {
	if !f.IsValid() {
		return "!"
	}
	return string(rune('A' + f.Int() - 1))
}

// Rank is a board row, 1 through 8.
// NoRank is the result of any arithmetic or parse that leaves the board.
type Rank int8

const (
	NoRank Rank = iota
	Rank1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankFrom maps 1..8 to Rank1..Rank8 and anything else to NoRank.
func RankFrom(i int) Rank {
	if i < 1 || i > 8 {
		return NoRank
	}
	return Rank(i)
}

// IsValid returns true for Rank1 through Rank8.
func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

// Int returns the 1-based rank number, or 0 for NoRank.
func (r Rank) Int() int {
	if !r.IsValid() {
		return 0
	}
	return int(r)
}

// Add shifts the rank by delta. Leaving the board yields NoRank.
func (r Rank) Add(delta int) Rank {
	if !r.IsValid() {
		return NoRank
	}
	return RankFrom(r.Int() + delta)
}

// String returns the rank digit, or "!" for NoRank.
func (r Rank) String() string {
	if !r.IsValid() {
		return "!"
	}
	return string(rune('0' + r.Int()))
}

// Coordinate addresses a square by file and rank.
// The zero value is NoCoordinate.
type Coordinate struct {
	File File
	Rank Rank
}

// NoCoordinate is the absent coordinate, e.g. no en passant target.
var NoCoordinate = Coordinate{}

// NewCoordinate builds a coordinate from a file and rank.
func NewCoordinate(f File, r Rank) Coordinate {
	return Coordinate{File: f, Rank: r}
}

// MakeCoordinate builds a coordinate from zero-based column and row
// indices: (0, 0) is a1, (7, 7) is h8.
func MakeCoordinate(x, y int) Coordinate {
	return NewCoordinate(FileFrom(x+1), RankFrom(y+1))
}

// ParseCoordinate parses two-character square notation such as "e4" or "E4".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidPositionString, s)
	}

	f := s[0]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	r := s[1]

	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidPositionString, s)
	}

	return NewCoordinate(FileFrom(int(f-'a')+1), RankFrom(int(r-'0'))), nil
}

// IsValid returns true if both file and rank are on the board.
func (c Coordinate) IsValid() bool {
	return c.File.IsValid() && c.Rank.IsValid()
}

// Add translates the coordinate. Each axis is shifted independently, so
// an axis leaving the board invalidates the whole coordinate.
func (c Coordinate) Add(df, dr int) Coordinate {
	return Coordinate{File: c.File.Add(df), Rank: c.Rank.Add(dr)}
}

// Offset is Add with the validity check folded into the result.
func (c Coordinate) Offset(df, dr int) (Coordinate, bool) {
	next := c.Add(df, dr)
	return next, next.IsValid()
}

// Compare orders coordinates by file, then rank.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.File < other.File:
		return -1
	case c.File > other.File:
		return 1
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	}
	return 0
}

// String returns the display form, uppercase file then rank digit ("E4").
func (c Coordinate) String() string {
	return c.File.String() + c.Rank.String()
}

// Algebraic returns the lowercase form used by FEN ("e4"), or "-" when
// the coordinate is not on the board.
func (c Coordinate) Algebraic() string {
	if !c.IsValid() {
		return "-"
	}
	return strings.ToLower(c.String())
}

// SortCoordinates orders cs in place by file, then rank.
func SortCoordinates(cs []Coordinate) {
	slices.SortFunc(cs, Coordinate.Compare)
}
