// Package adapthttp is the driving HTTP adapter exposing the ledger API.
package adapthttp

import (
	"net/http"

	"weightledger/internal/app"
)

// Server routes requests to the ledger application service.
type Server struct {
	ledger *app.LedgerService
}

// New creates a Server wired to the given application service.
func New(ls *app.LedgerService) *Server {
	return &Server{ledger: ls}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/weight", s.handleRecord)
	api.HandleFunc("/weight/", s.handleQuery)
	api.HandleFunc("/users", s.handleRegister)
	api.HandleFunc("/users/", s.handleUserExists)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
