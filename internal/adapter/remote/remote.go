// Package remote implements the blob store against a remote HTTP object
// store.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weightledger/internal/domain"
)

// Store addresses objects inside a single configured bucket of a remote
// object store.
//
// Put is not atomic: it deletes the object and recreates it with the new
// body. A crash between the two requests leaves the object absent. This
// mirrors the system being replaced and is covered by a test rather than
// silently changed.
type Store struct {
	base   string
	bucket string
	token  string
	client *http.Client
}

// New creates a Store for one bucket at the given base URL. token, if
// non-empty, is sent as a bearer token on every request.
func New(base, bucket, token string) *Store {
	return &Store{
		base:   strings.TrimRight(base, "/"),
		bucket: bucket,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ domain.BlobStore = (*Store)(nil)

func (s *Store) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.base, s.bucket, url.PathEscape(key))
}

func (s *Store) do(req *http.Request) (*http.Response, error) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return s.client.Do(req)
}

// Get fetches and returns the object body for key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(key), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrBlobNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s: unexpected status %s", key, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Put replaces the object for key by deleting it and recreating it with
// body.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	del, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(key), nil)
	if err != nil {
		return err
	}
	resp, err := s.do(del)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	_ = resp.Body.Close()
	// 404 just means the object did not exist yet.
	if resp.StatusCode != http.StatusNotFound && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return fmt.Errorf("delete %s: unexpected status %s", key, resp.Status)
	}

	put, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), bytes.NewReader(body))
	if err != nil {
		return err
	}
	put.Header.Set("Content-Type", "application/octet-stream")
	resp, err = s.do(put)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("put %s: unexpected status %s", key, resp.Status)
	}
	return nil
}
