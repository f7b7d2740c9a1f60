package adapthttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"weightledger/internal/app"
	"weightledger/internal/codec"
	"weightledger/internal/domain"
)

// passcodeHeader carries the caller's passcode on every authenticated route.
const passcodeHeader = "X-Passcode"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), app.Response{Message: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, app.ErrValidation), errors.Is(err, codec.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseRecord(r *http.Request) (domain.Record, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return codec.DecodeRecord(b)
}
