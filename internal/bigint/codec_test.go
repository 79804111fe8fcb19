package bigint

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/karatmul/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func TestParseLimbs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		neg   bool
		limbs []int64
	}{
		{"zero", "0", false, []int64{0}},
		{"negative zero", "-0", false, []int64{0}},
		{"padded zero", "0000000", false, []int64{0}},
		{"single digit", "7", false, []int64{7}},
		{"full limb", "999999", false, []int64{999999}},
		{"two limbs", "1234567", false, []int64{234567, 1}},
		{"plus sign", "+1234567", false, []int64{234567, 1}},
		{"negative", "-123456789", true, []int64{456789, 123}},
		{"leading zeros dropped", "000000000042", false, []int64{42}},
		{"three limbs pad to four", "123456789012345678", false, []int64{345678, 789012, 123456, 0}},
		{"five limbs pad to eight", "1000000000000000000000000", false, []int64{0, 0, 0, 0, 1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if x.neg != tt.neg {
				t.Errorf("Parse(%q).neg = %v, want %v", tt.input, x.neg, tt.neg)
			}
			if diff := cmp.Diff(tt.limbs, x.Limbs()); diff != "" {
				t.Errorf("Parse(%q) limbs mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		reason apperrors.FormatReason
		pos    int
		char   byte
	}{
		{"empty", "", apperrors.ReasonEmpty, 0, 0},
		{"bare minus", "-", apperrors.ReasonEmpty, 0, 0},
		{"bare plus", "+", apperrors.ReasonEmpty, 0, 0},
		{"letter", "12a4", apperrors.ReasonIllegalChar, 2, 'a'},
		{"double sign", "--5", apperrors.ReasonIllegalChar, 1, '-'},
		{"inner sign", "5-5", apperrors.ReasonIllegalChar, 1, '-'},
		{"space", "1 2", apperrors.ReasonIllegalChar, 1, ' '},
		{"decimal point", "-1.5", apperrors.ReasonIllegalChar, 2, '.'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			var fe apperrors.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Parse(%q) error = %v, want FormatError", tt.input, err)
			}
			if fe.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", fe.Reason, tt.reason)
			}
			if tt.reason == apperrors.ReasonIllegalChar && (fe.Pos != tt.pos || fe.Char != tt.char) {
				t.Errorf("Pos/Char = %d/%q, want %d/%q", fe.Pos, fe.Char, tt.pos, tt.char)
			}
			if fe.Input != tt.input {
				t.Errorf("Input = %q, want %q", fe.Input, tt.input)
			}
		})
	}
}

func TestParseMaxDigits(t *testing.T) {
	t.Parallel()
	if _, err := Parse("123456", WithMaxDigits(6)); err != nil {
		t.Fatalf("six digits within limit: %v", err)
	}
	// Leading zeros do not count against the limit.
	if _, err := Parse("-0000123456", WithMaxDigits(6)); err != nil {
		t.Fatalf("leading zeros should be ignored: %v", err)
	}
	_, err := Parse("1234567", WithMaxDigits(6))
	var le apperrors.LimitError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want LimitError", err)
	}
	if le.Got != 7 || le.Limit != 6 || le.What != "digits" {
		t.Errorf("LimitError = %+v", le)
	}
}

func TestLimbCount(t *testing.T) {
	t.Parallel()
	tests := []struct{ digits, want int }{
		{1, 1}, {6, 1}, {7, 2}, {12, 2}, {13, 4}, {24, 4}, {25, 8}, {193, 64},
	}
	for _, tt := range tests {
		if got := limbCount(tt.digits); got != tt.want {
			t.Errorf("limbCount(%d) = %d, want %d", tt.digits, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct{ input, want string }{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"00", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"1000000", "1000000"},
		{"000123", "123"},
		{"-000000000001", "-1"},
		{"100000000000000000000000000001", "100000000000000000000000000001"},
		{"-987654321987654321", "-987654321987654321"},
	}
	for _, tt := range tests {
		x, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got := x.String(); got != tt.want {
			t.Errorf("String(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFromInt64(t *testing.T) {
	t.Parallel()
	for _, v := range []int64{0, 1, -1, 999999, 1000000, -9223372036854775808, 9223372036854775807} {
		x := FromInt64(v)
		if got, want := x.String(), MustParse(x.String()).String(); got != want {
			t.Errorf("FromInt64(%d) = %s, reparsed %s", v, got, want)
		}
	}
	if !FromInt64(1).IsOne() || !FromInt64(-1).IsMinusOne() || !FromInt64(0).IsZero() {
		t.Error("FromInt64 should produce structural special values")
	}
	if got := FromInt64(-9223372036854775808).String(); got != "-9223372036854775808" {
		t.Errorf("FromInt64(MinInt64) = %s", got)
	}
}
