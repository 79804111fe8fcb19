// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatDetails].
//
//   - Write* functions write data to files on the filesystem.
//     Example: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/karatmul/internal/bigint"
	"github.com/agbru/karatmul/internal/ui"
)

// Result is one completed multiplication.
type Result struct {
	A, B    bigint.BigInt
	Product bigint.BigInt
	Report  bigint.ProductReport
	// Elapsed covers read, parse, multiply and render.
	Elapsed time.Duration
}

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet suppresses status lines on the error stream.
	Quiet bool
}

// WriteResultToFile writes r to config.OutputFile, creating parent
// directories as needed. It is a no-op when no file is configured.
func WriteResultToFile(r Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Karatsuba Product\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Threshold: %d\n", r.Report.Threshold)
	fmt.Fprintf(file, "# Path: %s\n", r.Report.Path)
	fmt.Fprintf(file, "# Duration: %s\n", r.Report.Duration)
	fmt.Fprintf(file, "# Operand digits: %d, %d\n", r.A.Digits(), r.B.Digits())
	fmt.Fprintf(file, "# Product digits: %d\n", r.Product.Digits())
	fmt.Fprintf(file, "\n%s\n", r.Product)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietResult returns the canonical decimal product.
func FormatQuietResult(r Result) string {
	return r.Product.String()
}

// DisplayResult writes the product followed by a newline.
func DisplayResult(out io.Writer, r Result) {
	fmt.Fprintln(out, FormatQuietResult(r))
}

// DisplayResultWithConfig writes the product to out, saves it to the
// configured file and, unless quiet, confirms the save on status.
func DisplayResultWithConfig(out, status io.Writer, r Result, config OutputConfig) error {
	DisplayResult(out, r)

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(r, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(status, "%s %s\n", ui.Success("✓ Result saved to:"), ui.Primary(config.OutputFile))
	}
	return nil
}
