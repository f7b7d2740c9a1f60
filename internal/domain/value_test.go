package domain_test

import (
	"testing"

	"weightledger/internal/domain"
)

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   domain.Value
		want    float64
		wantErr bool
	}{
		{"number", domain.Number(150.5), 150.5, false},
		{"numeric string", domain.String("190"), 190, false},
		{"decimal string", domain.String("72.3"), 72.3, false},
		{"word string", domain.String("heavy"), 0, true},
		{"empty string", domain.String(""), 0, true},
		{"bool", domain.Bool(true), 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.Float()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Float() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValueText(t *testing.T) {
	if got := domain.String("alice").Text(); got != "alice" {
		t.Errorf("Text() = %q, want alice", got)
	}
	if got := domain.Number(42).Text(); got != "42" {
		t.Errorf("Text() = %q, want 42", got)
	}
	if got := domain.Bool(false).Text(); got != "false" {
		t.Errorf("Text() = %q, want false", got)
	}
}

func TestRecordExactKeys(t *testing.T) {
	rec := domain.Record{
		"user_id": domain.String("alice"),
		"weight":  domain.Number(150),
	}
	if !rec.ExactKeys("user_id", "weight") {
		t.Error("expected exact match")
	}
	if rec.ExactKeys("user_id") {
		t.Error("extra key should fail")
	}
	if rec.ExactKeys("user_id", "weight", "passcode") {
		t.Error("missing key should fail")
	}
	if rec.ExactKeys("user_id", "passcode") {
		t.Error("wrong key should fail")
	}
}
