// Package api exposes the board model over HTTP/JSON.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/hailam/chessmodel/internal/storage"
)

// NewRouter wires the routes. Position routes are only registered when
// store is non-nil.
func NewRouter(store storage.PositionStore, allowedOrigins []string) http.Handler {
	h := NewHandler(store)
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/board", h.GetBoard).Methods("GET")
	api.HandleFunc("/moves", h.GetMoves).Methods("GET")
	api.HandleFunc("/check", h.GetCheck).Methods("GET")

	if store != nil {
		positions := api.PathPrefix("/positions").Subrouter()
		positions.HandleFunc("", h.ListPositions).Methods("GET")
		positions.HandleFunc("/{name}", h.PutPosition).Methods("PUT")
		positions.HandleFunc("/{name}", h.GetPosition).Methods("GET")
		positions.HandleFunc("/{name}", h.DeletePosition).Methods("DELETE")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return corsHandler.Handler(router)
}
