package codec_test

import (
	"errors"
	"reflect"
	"testing"

	"weightledger/internal/codec"
	"weightledger/internal/domain"
)

func TestRecordRoundTrip(t *testing.T) {
	rec := domain.Record{
		"user_id": domain.String("alice"),
		"weight":  domain.Number(150.5),
		"notify":  domain.Bool(true),
	}

	b, err := codec.EncodeRecord(rec)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	got, err := codec.DecodeRecord(b)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("round trip mismatch: got %v, want %v", got, rec)
	}
}

func TestDecodeRecordNumericString(t *testing.T) {
	rec, err := codec.DecodeRecord([]byte(`{"user_id":"alice","weight":"190"}`))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if rec["weight"].Kind() != domain.KindString {
		t.Errorf("expected string kind for quoted weight, got %v", rec["weight"].Kind())
	}
	f, err := rec["weight"].Float()
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if f != 190 {
		t.Errorf("expected 190, got %v", f)
	}
}

func TestDecodeRecordMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated json", `{"user_id": "al`},
		{"not an object", `[1, 2, 3]`},
		{"null", `null`},
		{"nested value", `{"user_id": {"a": 1}}`},
		{"empty body", ``},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.DecodeRecord([]byte(tc.body))
			if !errors.Is(err, codec.ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
