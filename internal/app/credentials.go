package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"weightledger/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore persists the user-to-passcode mapping as a single blob,
// fully read and fully rewritten on every mutation. Passcodes are stored
// as bcrypt hashes; the system this replaces compared plaintext strings.
type CredentialStore struct {
	blobs domain.BlobStore
	key   string
}

// NewCredentialStore creates a CredentialStore persisting under key.
func NewCredentialStore(blobs domain.BlobStore, key string) *CredentialStore {
	return &CredentialStore{blobs: blobs, key: key}
}

func (c *CredentialStore) load(ctx context.Context) (map[string]string, error) {
	b, err := c.blobs.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	creds := make(map[string]string)
	if err := json.Unmarshal(b, &creds); err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return creds, nil
}

func (c *CredentialStore) save(ctx context.Context, creds map[string]string) error {
	b, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	if err := c.blobs.Put(ctx, c.key, b); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Authenticate verifies a (user, passcode) pair. An unknown user and a
// wrong passcode are indistinguishable to the caller.
func (c *CredentialStore) Authenticate(ctx context.Context, user, passcode string) error {
	creds, err := c.load(ctx)
	if err != nil {
		return err
	}
	hash, ok := creds[user]
	if !ok {
		return ErrAuth
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) != nil {
		return ErrAuth
	}
	return nil
}

// Add hashes and stores the passcode for a new user. Existing entries are
// never overwritten.
func (c *CredentialStore) Add(ctx context.Context, user, passcode string) error {
	creds, err := c.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := creds[user]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, user)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	creds[user] = string(hash)
	return c.save(ctx, creds)
}

// Init writes an empty credential blob if none exists yet.
func (c *CredentialStore) Init(ctx context.Context) error {
	_, err := c.blobs.Get(ctx, c.key)
	if errors.Is(err, domain.ErrBlobNotFound) {
		return c.save(ctx, map[string]string{})
	}
	return err
}
