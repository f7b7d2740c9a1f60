// Package app holds the application services and business logic.
package app

import "errors"

var (
	// ErrValidation indicates a malformed or incomplete payload, or a bad
	// month selector.
	ErrValidation = errors.New("validation failed")
	// ErrAuth indicates an unknown user or a wrong passcode.
	ErrAuth = errors.New("authentication failed")
	// ErrUserNotFound indicates an operation on a user that has no ledger
	// column.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indicates a registration of an already-existing user.
	ErrUserExists = errors.New("user already exists")
)

// StatusSuccess is the message carried by every successful response.
const StatusSuccess = "SUCCESS"

// Response is the envelope returned by ledger operations.
type Response struct {
	Weight  map[string]float64 `json:"weight,omitempty"`
	Message string             `json:"message"`
}
