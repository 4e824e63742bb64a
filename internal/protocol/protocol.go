// Package protocol implements a line-oriented command interface over a
// single board, in the style of UCI.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/chessmodel/internal/board"
	"github.com/hailam/chessmodel/internal/storage"
)

// Protocol reads commands and answers them against the current board.
type Protocol struct {
	board *board.Board
	store storage.PositionStore // nil disables save/load/list/delete

	out    io.Writer
	errOut io.Writer
}

// New creates a protocol handler starting from the initial position.
// store may be nil.
func New(store storage.PositionStore, out, errOut io.Writer) *Protocol {
	return &Protocol{
		board:  board.New(),
		store:  store,
		out:    out,
		errOut: errOut,
	}
}

// Board returns the current board.
func (p *Protocol) Board() *board.Board {
	return p.board
}

// Run processes commands from in until "quit" or end of input.
func (p *Protocol) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "position":
			p.handlePosition(args)
		case "fen":
			fmt.Fprintln(p.out, p.board.ToFEN())
		case "d":
			fmt.Fprint(p.out, p.board.String())
		case "moves":
			p.handleMoves(args)
		case "check":
			p.handleCheck(args)
		case "castling":
			p.handleCastling()
		case "save":
			p.handleSave(args)
		case "load":
			p.handleLoad(args)
		case "list":
			p.handleList()
		case "delete":
			p.handleDelete(args)
		case "quit":
			return nil
		}
	}

	return scanner.Err()
}

func (p *Protocol) info(format string, args ...any) {
	fmt.Fprintf(p.errOut, "info string "+format+"\n", args...)
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position fen <fen>
func (p *Protocol) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "startpos":
		p.board = board.New()
	case "fen":
		fenStr := strings.Join(args[1:], " ")
		b, err := board.ParseFEN(fenStr)
		if err != nil {
			p.info("Invalid FEN: %v", err)
			return
		}
		p.board = b
	}
}

// handleMoves prints the sorted destinations of the piece on a square.
func (p *Protocol) handleMoves(args []string) {
	if len(args) != 1 {
		p.info("usage: moves <square>")
		return
	}

	from, err := board.ParseCoordinate(args[0])
	if err != nil {
		p.info("Invalid square: %v", err)
		return
	}

	moves, err := p.board.PieceMoves(from)
	if err != nil {
		p.info("Invalid square: %v", err)
		return
	}
	board.SortCoordinates(moves)

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.Algebraic()
	}
	fmt.Fprintln(p.out, strings.Join(strs, " "))
}

// handleCheck prints whether the given color's king is attacked.
func (p *Protocol) handleCheck(args []string) {
	c := p.board.ActiveColor()
	if len(args) > 0 {
		var ok bool
		c, ok = board.ParseColor(args[0])
		if !ok {
			p.info("Invalid color: %s", args[0])
			return
		}
	}

	if _, err := p.board.KingCoordinate(c); err != nil {
		p.info("%v", err)
		return
	}
	fmt.Fprintln(p.out, p.board.IsInCheck(c))
}

// handleCastling prints the castling rights of both sides, e.g.
// "white kingside queenside" then "black none".
func (p *Protocol) handleCastling() {
	cr := p.board.CastlingRights()
	for _, c := range []board.Color{board.White, board.Black} {
		line := c.Name()
		if cr.CanCastle(c, true) {
			line += " kingside"
		}
		if cr.CanCastle(c, false) {
			line += " queenside"
		}
		if !cr.CanCastle(c, true) && !cr.CanCastle(c, false) {
			line += " none"
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *Protocol) requireStore(args []string, want int) bool {
	if p.store == nil {
		p.info("no position store attached")
		return false
	}
	if len(args) != want {
		p.info("expected %d argument(s), got %d", want, len(args))
		return false
	}
	return true
}

func (p *Protocol) handleSave(args []string) {
	if !p.requireStore(args, 1) {
		return
	}
	if err := p.store.SavePosition(args[0], p.board); err != nil {
		p.info("save failed: %v", err)
		return
	}
	fmt.Fprintf(p.out, "saved %s\n", args[0])
}

func (p *Protocol) handleLoad(args []string) {
	if !p.requireStore(args, 1) {
		return
	}
	b, err := p.store.LoadPosition(args[0])
	if err != nil {
		p.info("load failed: %v", err)
		return
	}
	p.board = b
	fmt.Fprintln(p.out, b.ToFEN())
}

func (p *Protocol) handleList() {
	if !p.requireStore(nil, 0) {
		return
	}
	recs, err := p.store.ListPositions()
	if err != nil {
		p.info("list failed: %v", err)
		return
	}
	for _, rec := range recs {
		fmt.Fprintf(p.out, "%s %s\n", rec.Name, rec.FEN)
	}
}

func (p *Protocol) handleDelete(args []string) {
	if !p.requireStore(args, 1) {
		return
	}
	if err := p.store.DeletePosition(args[0]); err != nil {
		p.info("delete failed: %v", err)
		return
	}
	fmt.Fprintf(p.out, "deleted %s\n", args[0])
}
