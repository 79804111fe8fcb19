package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("operand", "first"), "operand", "first"},
		{"Int", Int("limbs", 42), "limbs", 42},
		{"Int64", Int64("limb", -7), "limb", int64(-7)},
		{"Uint64", Uint64("digits", 12345678901234567890), "digits", uint64(12345678901234567890)},
		{"Float64", Float64("ratio", 1.585), "ratio", 1.585},
		{"Bool", Bool("negative", true), "negative", true},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "bigint")
	logger.Info("hello")

	output := buf.String()
	for _, want := range []string{`"component":"bigint"`, "hello", `"level":"info"`} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Levels tests Info, Error and Debug output.
func TestZerologAdapter_Levels(t *testing.T) {
	t.Run("Info with fields", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "test").Info("product computed", String("path", "karatsuba"), Int("limbs", 64))
		for _, want := range []string{"product computed", "karatsuba", "64"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got: %s", want, buf.String())
			}
		}
	})

	t.Run("Error with cause", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "test").Error("parse failed", errors.New("illegal character"), String("operand", "second"))
		for _, want := range []string{"parse failed", "illegal character", "second", `"level":"error"`} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got: %s", want, buf.String())
			}
		}
	})

	t.Run("Error with nil cause", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "test").Error("warning", nil)
		if !strings.Contains(buf.String(), "warning") {
			t.Errorf("output should contain message, got: %s", buf.String())
		}
	})

	t.Run("Debug honours level", func(t *testing.T) {
		var buf bytes.Buffer
		NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).Debug("split", Int("depth", 3))
		if !strings.Contains(buf.String(), "split") || !strings.Contains(buf.String(), "debug") {
			t.Errorf("Debug output missing, got: %s", buf.String())
		}

		buf.Reset()
		NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
		if buf.Len() != 0 {
			t.Errorf("Debug should be filtered at info level, got: %s", buf.String())
		}
	})
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"duration field", Field{Key: "d", Value: 1500 * time.Millisecond}, `"d":1500`},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, `"X":1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestZerologAdapter_PrintfPrintln tests the printf-style helpers.
func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Printf("threshold %s %d", "is", 32)
	logger.Println("limbs", 64)

	output := buf.String()
	if !strings.Contains(output, "threshold is 32") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "limbs 64") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

// TestConsoleLogger tests the human-readable writer.
func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf, "app", true).Info("ready", Int("threshold", 32))
	output := buf.String()
	if !strings.Contains(output, "ready") || !strings.Contains(output, "threshold=32") {
		t.Errorf("console output unexpected: %s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("noColor console output contains escape codes: %q", output)
	}
}

// TestStdLoggerAdapter tests the StdLoggerAdapter methods.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{"Info", func(l Logger) { l.Info("user action", String("user", "bob")) }, []string{"[INFO]", "user action", "user=bob"}},
		{"Error", func(l Logger) { l.Error("db failed", errors.New("timeout"), Int("retry", 3)) }, []string{"[ERROR]", "db failed: timeout", "retry=3"}},
		{"Debug", func(l Logger) { l.Debug("trace") }, []string{"[DEBUG]", "trace"}},
		{"Printf", func(l Logger) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"Println", func(l Logger) { l.Println("a", "b", "c") }, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

// TestLoggerInterface verifies every adapter implements the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewDefaultLogger()
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	Nop().Info("discarded")
}
