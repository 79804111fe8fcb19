// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--threshold"),
			expected: "invalid value 42 for flag --threshold",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()
	cause := LimitError{What: "limbs", Got: 32768, Limit: 16384}
	err := CalculationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("expected %q, got %q", cause.Error(), err.Error())
	}
	var limErr LimitError
	if !errors.As(err, &limErr) {
		t.Fatal("errors.As should find LimitError through CalculationError")
	}
	if limErr.Limit != 16384 {
		t.Errorf("Limit = %d, want 16384", limErr.Limit)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      FormatError
		expected string
	}{
		{
			name:     "empty input",
			err:      FormatError{Reason: ReasonEmpty},
			expected: "invalid format: empty input",
		},
		{
			name:     "bare sign",
			err:      FormatError{Operand: "second", Input: "-", Reason: ReasonEmpty},
			expected: `invalid format in second operand: no digits in "-"`,
		},
		{
			name:     "illegal character",
			err:      FormatError{Operand: "first", Input: "12a4", Reason: ReasonIllegalChar, Pos: 2, Char: 'a'},
			expected: `invalid format in first operand: illegal character 'a' at position 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatReasonString(t *testing.T) {
	t.Parallel()
	if ReasonEmpty.String() != "empty" {
		t.Errorf("ReasonEmpty.String() = %q", ReasonEmpty.String())
	}
	if ReasonIllegalChar.String() != "illegal character" {
		t.Errorf("ReasonIllegalChar.String() = %q", ReasonIllegalChar.String())
	}
	if FormatReason(42).String() != "unknown" {
		t.Errorf("FormatReason(42).String() = %q", FormatReason(42).String())
	}
}

func TestValidationAndLimitErrors(t *testing.T) {
	t.Parallel()
	v := ValidationError{Field: "k", Message: "window larger than input"}
	if got, want := v.Error(), `validation error for "k": window larger than input`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	l := LimitError{What: "digits", Got: 200000, Limit: 98304}
	if got, want := l.Error(), "resource limit exceeded: 200000 digits (limit: 98304)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	unsized := LimitError{What: "input bytes", Limit: 76}
	if got, want := unsized.Error(), "resource limit exceeded: more than 76 input bytes"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("unexpected EOF"),
			format:      "failed to read operands",
			expectedMsg: "failed to read operands: unexpected EOF",
		},
		{
			name:        "preserves error chain",
			original:    context.Canceled,
			format:      "multiplication aborted",
			expectedMsg: "multiplication aborted: context canceled",
			checkIs:     context.Canceled,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("bad digit"),
			format:      "operand %d of %d",
			args:        []any{1, 2},
			expectedMsg: "operand 1 of 2: bad digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", WrapError(context.Canceled, "read"), ExitErrorCanceled},
		{"format", WrapError(FormatError{Reason: ReasonEmpty}, "parse"), ExitErrorConfig},
		{"limit", CalculationError{Cause: LimitError{What: "limbs"}}, ExitErrorConfig},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "k"}, ExitErrorConfig},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
