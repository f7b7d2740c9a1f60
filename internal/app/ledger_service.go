package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"

	"weightledger/internal/codec"
	"weightledger/internal/domain"
)

// Clock is the civil-time source consumed by the service.
type Clock interface {
	Today() string // YYYY-MM-DD
	Month() string // YYYY-MM
}

// currentMonth is the selector token meaning "the current calendar month".
const currentMonth = "-"

var monthFormat = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// LedgerService implements the measurement ledger operations.
//
// Every operation re-reads the full ledger blob, mutates it in memory, and
// writes it back whole. Nothing guards that sequence: two overlapping
// writers against the same backend can lose the first writer's update.
// Single-process use only.
type LedgerService struct {
	blobs domain.BlobStore
	creds *CredentialStore
	clock Clock
	key   string
}

// NewLedgerService creates a LedgerService persisting the ledger table
// under key in the given blob store.
func NewLedgerService(blobs domain.BlobStore, creds *CredentialStore, clk Clock, key string) *LedgerService {
	return &LedgerService{blobs: blobs, creds: creds, clock: clk, key: key}
}

func (s *LedgerService) loadLedger(ctx context.Context) (*domain.Ledger, error) {
	b, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	l, err := codec.DecodeLedger(b)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return l, nil
}

func (s *LedgerService) saveLedger(ctx context.Context, l *domain.Ledger) error {
	b, err := codec.EncodeLedger(l)
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	if err := s.blobs.Put(ctx, s.key, b); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Record validates and persists one measurement for the current civil day.
// On success it returns the submitter's current-month series, the same
// payload Query with the "-" selector would produce.
func (s *LedgerService) Record(ctx context.Context, rec domain.Record, passcode string) (Response, error) {
	if !rec.ExactKeys("user_id", "weight") {
		return Response{}, fmt.Errorf("%w: payload must contain exactly user_id and weight", ErrValidation)
	}
	user := rec["user_id"].Text()
	weight, err := rec["weight"].Float()
	if err != nil {
		return Response{}, fmt.Errorf("%w: weight %v", ErrValidation, err)
	}
	// ParseFloat admits "NaN" and "Inf" strings, which have no JSON
	// representation in the response.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Response{}, fmt.Errorf("%w: weight must be a finite number", ErrValidation)
	}

	if err := s.creds.Authenticate(ctx, user, passcode); err != nil {
		return Response{}, err
	}

	l, err := s.loadLedger(ctx)
	if err != nil {
		return Response{}, err
	}
	if !l.HasUser(user) {
		return Response{}, fmt.Errorf("%w: %s", ErrUserNotFound, user)
	}

	l.Set(s.clock.Today(), user, weight)
	if err := s.saveLedger(ctx, l); err != nil {
		return Response{}, err
	}

	return Response{Weight: l.Month(user, s.clock.Month()), Message: StatusSuccess}, nil
}

// Query returns the user's series for the selected month. The selector is
// either "-" (current month) or an exact YYYY-MM string; anything else is
// rejected before any storage access. A month with no rows is not an
// error: it yields an empty series.
func (s *LedgerService) Query(ctx context.Context, user, month, passcode string) (Response, error) {
	target, err := s.resolveMonth(month)
	if err != nil {
		return Response{}, err
	}

	if err := s.creds.Authenticate(ctx, user, passcode); err != nil {
		return Response{}, err
	}

	l, err := s.loadLedger(ctx)
	if err != nil {
		return Response{}, err
	}
	if !l.HasUser(user) {
		return Response{}, fmt.Errorf("%w: %s", ErrUserNotFound, user)
	}

	return Response{Weight: l.Month(user, target), Message: StatusSuccess}, nil
}

func (s *LedgerService) resolveMonth(month string) (string, error) {
	if month == currentMonth {
		return s.clock.Month(), nil
	}
	if !monthFormat.MatchString(month) {
		return "", fmt.Errorf("%w: month %q has wrong format, want YYYY-MM or %q", ErrValidation, month, currentMonth)
	}
	return month, nil
}

// RegisterUser adds a new ledger column back-filled with 0.0 for every
// existing row, then stores the user's credential. The two writes are not
// transactional: if the credential write fails the column is rolled back
// so no half-registered user remains.
func (s *LedgerService) RegisterUser(ctx context.Context, rec domain.Record) (Response, error) {
	if !rec.ExactKeys("user_id", "passcode") {
		return Response{}, fmt.Errorf("%w: payload must contain exactly user_id and passcode", ErrValidation)
	}
	user := rec["user_id"].Text()
	passcode := rec["passcode"].Text()
	// An empty id has no addressable column, and "Date" would collide with
	// the table's date column and corrupt every later decode.
	if user == "" || user == codec.DateColumn {
		return Response{}, fmt.Errorf("%w: %q is not a usable user id", ErrValidation, user)
	}

	l, err := s.loadLedger(ctx)
	if err != nil {
		return Response{}, err
	}
	if l.HasUser(user) {
		return Response{}, fmt.Errorf("%w: %s", ErrUserExists, user)
	}

	l.AddUser(user)
	if err := s.saveLedger(ctx, l); err != nil {
		return Response{}, err
	}

	if err := s.creds.Add(ctx, user, passcode); err != nil {
		l.RemoveUser(user)
		if rbErr := s.saveLedger(ctx, l); rbErr != nil {
			return Response{}, fmt.Errorf("register %s: %v (rollback failed: %w)", user, err, rbErr)
		}
		return Response{}, err
	}

	return Response{Message: StatusSuccess}, nil
}

// UserExists reports whether user is a registered ledger column.
func (s *LedgerService) UserExists(ctx context.Context, user string) (bool, error) {
	l, err := s.loadLedger(ctx)
	if err != nil {
		return false, err
	}
	return l.HasUser(user), nil
}

// Bootstrap writes empty ledger and credential blobs for any that are
// missing, so a fresh deployment starts from a clean state instead of
// failing every operation with a missing-blob error.
func (s *LedgerService) Bootstrap(ctx context.Context) error {
	_, err := s.blobs.Get(ctx, s.key)
	if errors.Is(err, domain.ErrBlobNotFound) {
		if err := s.saveLedger(ctx, domain.NewLedger()); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return s.creds.Init(ctx)
}
