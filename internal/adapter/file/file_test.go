package file

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"weightledger/internal/domain"
)

func TestPutGet(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data"))
	ctx := context.Background()

	if err := s.Put(ctx, "data.csv", []byte("Date\n")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "data.csv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("Date\n")) {
		t.Errorf("Get = %q, want Date\\n", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	_ = s.Put(ctx, "k", []byte("first"))
	if err := s.Put(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _ := s.Get(ctx, "k")
	if string(got) != "second" {
		t.Errorf("Get = %q, want second", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrBlobNotFound) {
		t.Fatalf("expected ErrBlobNotFound, got %v", err)
	}
}
