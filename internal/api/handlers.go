package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hailam/chessmodel/internal/board"
	"github.com/hailam/chessmodel/internal/storage"
)

// Handler serves board queries and the saved-position library.
type Handler struct {
	store storage.PositionStore // nil disables /api/positions
}

func NewHandler(store storage.PositionStore) *Handler {
	return &Handler{store: store}
}

type SquareResponse struct {
	Coord string `json:"coord"`
	Color string `json:"color"`
	Piece string `json:"piece,omitempty"`
}

// CastlingSides reports which castling rights one color still holds.
type CastlingSides struct {
	KingSide  bool `json:"kingSide"`
	QueenSide bool `json:"queenSide"`
}

type BoardResponse struct {
	FEN            string                   `json:"fen"`
	ActiveColor    string                   `json:"activeColor"`
	Castling       string                   `json:"castling"`
	CastlingSides  map[string]CastlingSides `json:"castlingSides"`
	EnPassant      string                   `json:"enPassant"`
	HalfMoveClock  int                      `json:"halfMoveClock"`
	FullMoveNumber int                      `json:"fullMoveNumber"`
	Squares        []SquareResponse         `json:"squares"`
}

type MovesResponse struct {
	Square string   `json:"square"`
	Piece  string   `json:"piece,omitempty"`
	Moves  []string `json:"moves"`
}

type CheckResponse struct {
	White bool `json:"white"`
	Black bool `json:"black"`
}

type PositionRequest struct {
	FEN string `json:"fen"`
}

type PositionResponse struct {
	Name    string `json:"name"`
	FEN     string `json:"fen"`
	SavedAt string `json:"savedAt,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, board.ErrInvalidFENString),
		errors.Is(err, board.ErrInvalidPositionString),
		errors.Is(err, board.ErrInvalidRawCoordinatePair),
		errors.Is(err, storage.ErrEmptyName):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrPositionNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// boardFromQuery parses the "fen" query parameter. Absent means the
// starting position.
func boardFromQuery(r *http.Request) (*board.Board, error) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		return board.New(), nil
	}
	return board.ParseFEN(fen)
}

// GetBoard describes every square of a position.
// GET /api/board?fen=<fen>
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := boardFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := BoardResponse{
		FEN:            b.ToFEN(),
		ActiveColor:    b.ActiveColor().Name(),
		Castling:       b.CastlingRights().String(),
		HalfMoveClock:  b.HalfMoveClock(),
		FullMoveNumber: b.FullMoveNumber(),
	}
	resp.CastlingSides = make(map[string]CastlingSides, 2)
	for _, c := range []board.Color{board.White, board.Black} {
		resp.CastlingSides[c.Name()] = CastlingSides{
			KingSide:  b.CastlingRights().CanCastle(c, true),
			QueenSide: b.CastlingRights().CanCastle(c, false),
		}
	}
	ep, _ := b.EnPassantTarget()
	resp.EnPassant = ep.Algebraic()

	for _, sq := range b.Squares() {
		sr := SquareResponse{
			Coord: sq.Coordinate().Algebraic(),
			Color: sq.Color().String(),
		}
		if p, ok := sq.Piece(); ok {
			sr.Piece = p.String()
		}
		resp.Squares = append(resp.Squares, sr)
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetMoves lists the pseudo-legal destinations from one square.
// GET /api/moves?fen=<fen>&square=<square>
func (h *Handler) GetMoves(w http.ResponseWriter, r *http.Request) {
	b, err := boardFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	from, err := board.ParseCoordinate(r.URL.Query().Get("square"))
	if err != nil {
		writeError(w, err)
		return
	}

	moves, err := b.PieceMoves(from)
	if err != nil {
		writeError(w, err)
		return
	}
	board.SortCoordinates(moves)

	resp := MovesResponse{
		Square: from.Algebraic(),
		Moves:  make([]string, 0, len(moves)),
	}
	if p := b.PieceAt(from); p != board.NoPiece {
		resp.Piece = p.String()
	}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, m.Algebraic())
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetCheck reports whether each king is attacked.
// GET /api/check?fen=<fen>
func (h *Handler) GetCheck(w http.ResponseWriter, r *http.Request) {
	b, err := boardFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	for _, c := range []board.Color{board.White, board.Black} {
		if _, err := b.KingCoordinate(c); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		White: b.IsInCheck(board.White),
		Black: b.IsInCheck(board.Black),
	})
}

// PutPosition saves a position under a name.
// PUT /api/positions/{name}
func (h *Handler) PutPosition(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	b, err := board.ParseFEN(req.FEN)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.store.SavePosition(name, b); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PositionResponse{Name: name, FEN: b.ToFEN()})
}

// GetPosition returns a saved position.
// GET /api/positions/{name}
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	b, err := h.store.LoadPosition(name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PositionResponse{Name: name, FEN: b.ToFEN()})
}

// ListPositions returns every saved position.
// GET /api/positions
func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.ListPositions()
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]PositionResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, PositionResponse{
			Name:    rec.Name,
			FEN:     rec.FEN,
			SavedAt: rec.SavedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeletePosition removes a saved position.
// DELETE /api/positions/{name}
func (h *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.store.DeletePosition(name); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
