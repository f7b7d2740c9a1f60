// Package codec converts between wire byte payloads, the persisted table
// form, and the structured in-memory types.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"weightledger/internal/domain"
)

// ErrMalformed indicates a wire payload that could not be decoded into a
// record of scalar values.
var ErrMalformed = errors.New("malformed payload")

// DecodeRecord parses a JSON object of scalar values into a Record.
func DecodeRecord(b []byte) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	return rec, nil
}

// EncodeRecord renders a Record as a JSON object. Encoding then decoding
// reproduces the record exactly for all supported scalar kinds.
func EncodeRecord(rec domain.Record) ([]byte, error) {
	return json.Marshal(rec)
}
