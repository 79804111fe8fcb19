package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/karatmul/internal/bigint"
	"github.com/agbru/karatmul/internal/format"
	"github.com/agbru/karatmul/internal/metrics"
	"github.com/agbru/karatmul/internal/sysmon"
	"github.com/agbru/karatmul/internal/ui"
)

// Details is everything the --details panel shows about one run.
type Details struct {
	Result Result
	Memory metrics.MemoryDelta
	Host   sysmon.Stats
}

// FormatDetails renders d as a themed panel.
func FormatDetails(d Details) string {
	r := d.Result
	itoa := func(n int) string { return format.FormatNumberString(strconv.Itoa(n)) }

	p := ui.Panel{Title: "Multiplication details"}
	p.Add("Operand digits", itoa(r.A.Digits())+" × "+itoa(r.B.Digits())).
		Add("Product digits", itoa(r.Product.Digits())).
		Add("Path", r.Report.Path.String()).
		Add("Threshold", itoa(r.Report.Threshold)+" limbs")
	if r.Report.Path == bigint.PathKaratsuba {
		p.Add("Padded limbs", itoa(r.Report.Limbs)).
			Add("Karatsuba splits", itoa(r.Report.KaratsubaCalls)).
			Add("Schoolbook calls", itoa(r.Report.SchoolbookCalls)).
			Add("Recursion depth", itoa(r.Report.Depth))
	}
	p.Add("Product time", format.FormatExecutionDuration(r.Report.Duration)).
		Add("Total time", format.FormatExecutionDuration(r.Elapsed)).
		Add("Allocated", format.FormatBytes(d.Memory.Allocated)).
		Add("GC cycles", strconv.FormatUint(uint64(d.Memory.GCCycles), 10))
	if d.Host.MemTotal > 0 {
		p.Add("Host CPU", fmt.Sprintf("%.1f%%", d.Host.CPUPercent)).
			Add("Host memory", fmt.Sprintf("%.1f%% of %s", d.Host.MemPercent, format.FormatBytes(d.Host.MemTotal)))
	}
	return ui.RenderPanel(p)
}

// DisplayDetails writes the details panel to out.
func DisplayDetails(out io.Writer, d Details) {
	fmt.Fprintln(out, FormatDetails(d))
}
