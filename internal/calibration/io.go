package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/karatmul/internal/format"
	"github.com/agbru/karatmul/internal/ui"
)

// printCalibrationResults formats the per-candidate timing table.
func printCalibrationResults(out io.Writer, results []Result, bestThreshold int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %-12s │ %s\n", "Threshold", "Best time")
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 13), strings.Repeat("─", 25))
	for _, res := range results {
		label := fmt.Sprintf("%d limbs", res.Threshold)
		duration := ui.Error("N/A")
		if res.Err == nil {
			duration = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				duration = "< 1µs"
			}
		}
		highlight := ""
		if res.Threshold == bestThreshold && res.Err == nil {
			highlight = " " + ui.Success("(Optimal)")
		}
		fmt.Fprintf(tw, "  %s │ %s%s\n", ui.Primary(fmt.Sprintf("%-12s", label)), duration, highlight)
	}
	tw.Flush()
}
