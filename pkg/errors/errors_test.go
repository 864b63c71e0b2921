package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "unknown weight column: %s", "degree")

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidArgument)
	}
	if err.Message != "unknown weight column: degree" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_ARGUMENT: unknown weight column: degree"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("ragged rows")
	err := Wrap(ErrCodeInvalidMatrix, cause, "bad correlation matrix")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "INVALID_MATRIX: bad correlation matrix: ragged rows"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedInput, "cannot build from string")

	if !Is(err, ErrCodeUnsupportedInput) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInvalidState) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeUnsupportedInput) {
		t.Error("Is() = true for a plain error")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeUnsupportedInput) {
		t.Error("Is() should unwrap the chain")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidState, "not symmetric")); got != ErrCodeInvalidState {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidState)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidLabel, "duplicate label")); got != "duplicate label" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "env1", false},
		{"unicode", "température", false},
		{"empty", "", true},
		{"control char", "a\x01b", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("error = %v, want INVALID_LABEL", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateNames(t *testing.T) {
	if err := ValidateNames([]string{"a", "b", "c"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNames([]string{"a", "a"}); !Is(err, ErrCodeInvalidLabel) {
		t.Errorf("duplicate error = %v, want INVALID_LABEL", err)
	}
}
