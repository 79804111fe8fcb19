//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/karatmul/internal/format"
)

// ProgressRefreshRate is the spinner frame interval.
const ProgressRefreshRate = 200 * time.Millisecond

// FormatExecutionDuration formats a duration for display.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// Spinner abstracts a terminal spinner so progress reporting can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressSpinner reports step-wise progress (e.g. calibration candidates)
// on a spinner.
type ProgressSpinner struct {
	spinner Spinner
	started bool
}

// NewProgressSpinner creates a spinner writing to w. Nothing is drawn until
// the first Update.
func NewProgressSpinner(w io.Writer) *ProgressSpinner {
	return newProgressSpinner(newSpinner(spinner.WithWriter(w)))
}

func newProgressSpinner(s Spinner) *ProgressSpinner {
	return &ProgressSpinner{spinner: s}
}

// Update shows "label (done/total)" after the spinner.
func (p *ProgressSpinner) Update(done, total int, label string) {
	p.spinner.UpdateSuffix(fmt.Sprintf(" %s (%d/%d)", label, done, total))
	if !p.started {
		p.spinner.Start()
		p.started = true
	}
}

// Stop halts the spinner if it was started.
func (p *ProgressSpinner) Stop() {
	if p.started {
		p.spinner.Stop()
		p.started = false
	}
}
