package adapthttp

import (
	"net/http"
	"strings"
)

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := parseRecord(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	resp, err := s.ledger.Record(r.Context(), rec, r.Header.Get(passcodeHeader))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := strings.TrimPrefix(r.URL.Path, "/weight/")
	if user == "" || strings.Contains(user, "/") {
		http.NotFound(w, r)
		return
	}
	month := r.URL.Query().Get("month")
	if month == "" {
		month = "-"
	}
	resp, err := s.ledger.Query(r.Context(), user, month, r.Header.Get(passcodeHeader))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := parseRecord(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	resp, err := s.ledger.RegisterUser(r.Context(), rec)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUserExists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/users/")
	user, ok := strings.CutSuffix(rest, "/exists")
	if !ok || user == "" || strings.Contains(user, "/") {
		http.NotFound(w, r)
		return
	}
	exists, err := s.ledger.UserExists(r.Context(), user)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
}
