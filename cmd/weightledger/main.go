package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	adapthttp "weightledger/internal/adapter/http"
	"weightledger/internal/adapter/file"
	"weightledger/internal/adapter/memory"
	"weightledger/internal/adapter/postgres"
	"weightledger/internal/adapter/remote"
	"weightledger/internal/app"
	"weightledger/internal/clock"
	"weightledger/internal/domain"
)

func main() {
	var (
		addr         = flag.String("addr", env("ADDR", ":8080"), "listen address")
		backend      = flag.String("backend", env("BACKEND", "file"), "blob backend: file, remote, postgres, memory")
		dataDir      = flag.String("data-dir", env("DATA_DIR", "data"), "directory for the file backend")
		remoteURL    = flag.String("remote-url", env("REMOTE_URL", ""), "base URL of the remote object store")
		remoteBucket = flag.String("remote-bucket", env("REMOTE_BUCKET", "weightledger"), "bucket name on the remote object store")
		remoteToken  = flag.String("remote-token", env("REMOTE_TOKEN", ""), "bearer token for the remote object store")
		ledgerKey    = flag.String("ledger-key", env("LEDGER_KEY", "data.csv"), "blob key of the ledger table")
		credsKey     = flag.String("credentials-key", env("CREDENTIALS_KEY", "credentials.json"), "blob key of the credential map")
	)
	flag.Parse()

	blobs, err := openBackend(*backend, *dataDir, *remoteURL, *remoteBucket, *remoteToken)
	if err != nil {
		log.Fatalf("backend %s: %v", *backend, err)
	}

	clk, err := clock.NewPacific()
	if err != nil {
		log.Fatalf("clock: %v", err)
	}

	creds := app.NewCredentialStore(blobs, *credsKey)
	ledger := app.NewLedgerService(blobs, creds, clk, *ledgerKey)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ledger.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	h := adapthttp.New(ledger).Handler()
	log.Printf("listening on %s (backend %s)", *addr, *backend)
	if err := http.ListenAndServe(*addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openBackend(kind, dataDir, remoteURL, bucket, token string) (domain.BlobStore, error) {
	switch kind {
	case "file":
		return file.New(dataDir), nil
	case "remote":
		if remoteURL == "" {
			return nil, errors.New("remote backend requires --remote-url")
		}
		return remote.New(remoteURL, bucket, token), nil
	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, errors.New("postgres backend requires DATABASE_URL")
		}
		return postgres.Open(connStr)
	case "memory":
		return memory.New(), nil
	default:
		return nil, errors.New("unknown backend kind")
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
