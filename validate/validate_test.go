package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jacentio/arbor/validate"
)

func TestDecodeTodoCreate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		text    string
	}{
		{"valid", `{"text":"buy milk"}`, false, "buy milk"},
		{"empty string is still a string", `{"text":""}`, false, ""},
		{"missing text", `{}`, true, ""},
		{"numeric text", `{"text":5}`, true, ""},
		{"boolean text", `{"text":true}`, true, ""},
		{"null text", `{"text":null}`, true, ""},
		{"not json", `not json`, true, ""},
		{"extra fields ignored", `{"text":"x","other":1}`, false, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := validate.DecodeTodoCreate(tt.body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var verr *validate.Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected *validate.Error, got %T", err)
				}
				if verr.Reason == "" {
					t.Error("expected a reason")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *p.Text != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, *p.Text)
			}
		})
	}
}

func TestDecodeTodoUpdate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"text":"buy milk","checked":true}`, false},
		{"valid unchecked", `{"text":"buy milk","checked":false}`, false},
		{"missing checked", `{"text":"buy milk"}`, true},
		{"missing text", `{"checked":true}`, true},
		{"string checked", `{"text":"x","checked":"yes"}`, true},
		{"numeric text", `{"text":1,"checked":true}`, true},
		{"not json", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validate.DecodeTodoUpdate(tt.body)
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDecodeRegistration(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantReason string
	}{
		{
			name:    "valid",
			body:    `{"email":"ada@example.com","password":"correcthorse","name":"Ada","location":"London"}`,
			wantErr: false,
		},
		{
			name:    "location optional",
			body:    `{"email":"ada@example.com","password":"correcthorse","name":"Ada"}`,
			wantErr: false,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email","password":"correcthorse","name":"Ada"}`,
			wantErr:    true,
			wantReason: "email",
		},
		{
			name:       "short password",
			body:       `{"email":"ada@example.com","password":"short","name":"Ada"}`,
			wantErr:    true,
			wantReason: "password must be at least 8 characters",
		},
		{
			name:       "missing name",
			body:       `{"email":"ada@example.com","password":"correcthorse"}`,
			wantErr:    true,
			wantReason: "name is required",
		},
		{
			name:    "not json",
			body:    `{{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := validate.DecodeRegistration(tt.body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var verr *validate.Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected *validate.Error, got %T", err)
				}
				if tt.wantReason != "" && !strings.Contains(verr.Reason, tt.wantReason) {
					t.Errorf("expected reason containing %q, got %q", tt.wantReason, verr.Reason)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Email == "" {
				t.Error("expected decoded email")
			}
		})
	}
}

func TestDecodeRegistration_MultipleReasons(t *testing.T) {
	_, err := validate.DecodeRegistration(`{"password":"short"}`)
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validate.Error, got %T", err)
	}
	for _, want := range []string{"email", "password", "name"} {
		if !strings.Contains(verr.Reason, want) {
			t.Errorf("expected reason to mention %q, got %q", want, verr.Reason)
		}
	}
}
