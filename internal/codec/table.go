package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"weightledger/internal/domain"
)

// DateColumn is the row-key column and always leads the header.
const DateColumn = "Date"

// EncodeLedger renders the ledger in its persisted tabular form: a CSV
// header of Date plus one column per user, then one row per date with
// cells formatted as decimal numbers.
func EncodeLedger(l *domain.Ledger) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	users := l.Users()
	header := append([]string{DateColumn}, users...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, date := range l.Dates() {
		row := make([]string, 0, len(header))
		row = append(row, date)
		for _, u := range users {
			row = append(row, strconv.FormatFloat(l.Cell(date, u), 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DecodeLedger parses the persisted tabular form back into a Ledger,
// rejecting missing or malformed headers, duplicate columns or dates, and
// non-numeric cells. Ragged rows are rejected by the CSV reader itself.
func DecodeLedger(b []byte) (*domain.Ledger, error) {
	r := csv.NewReader(bytes.NewReader(b))

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ledger table: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("ledger table: reading header: %w", err)
	}
	if header[0] != DateColumn {
		return nil, fmt.Errorf("ledger table: header must start with %q, got %q", DateColumn, header[0])
	}

	l := domain.NewLedger()
	for _, u := range header[1:] {
		if u == DateColumn || l.HasUser(u) {
			return nil, fmt.Errorf("ledger table: duplicate column %q", u)
		}
		l.AddUser(u)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ledger table: reading row: %w", err)
		}
		date := row[0]
		if l.HasDate(date) {
			return nil, fmt.Errorf("ledger table: duplicate date %q", date)
		}
		l.AddDate(date)
		for i, u := range header[1:] {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("ledger table: row %q column %q: %w", date, u, err)
			}
			l.Set(date, u, v)
		}
	}
	return l, nil
}
