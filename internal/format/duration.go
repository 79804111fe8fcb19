// Package format holds presentation helpers shared by the cli and
// calibration packages. Functions here return strings and perform no I/O.
package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatExecutionDuration shows microseconds below a millisecond,
// milliseconds below a second, and time.Duration's own format otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumberString inserts thousands separators into a decimal string
// with an optional leading minus sign.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// TruncateDigits keeps the first and last edge digits of a long decimal
// string, joining them with an ellipsis. Strings of at most 2*edge+3 bytes
// are returned unchanged.
func TruncateDigits(s string, edge int) string {
	if edge < 1 || len(s) <= 2*edge+3 {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
