package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// scanProgressReporter prints the fixed "Processing" line and, on a terminal, a
// spinner on stderr while pages are scanned.
type scanProgressReporter struct {
	out     io.Writer
	enabled bool
	total   int
	start   time.Time
	spinner int
	lastLen int
}

func newScanProgressReporter(out io.Writer, asJSON, quiet bool) *scanProgressReporter {
	if asJSON {
		out = io.Discard
	}
	stat, err := os.Stderr.Stat()
	enabled := err == nil && (stat.Mode()&os.ModeCharDevice) != 0 && !asJSON && !quiet
	return &scanProgressReporter{out: out, enabled: enabled}
}

func (r *scanProgressReporter) Start(files int) {
	r.total = files
	r.start = time.Now()
	fmt.Fprintf(r.out, "Processing %d files, please wait...\n", files)
}

func (r *scanProgressReporter) File(file string, count int) {
	if !r.enabled {
		return
	}
	frames := [4]string{"-", "\\", "|", "/"}
	frame := frames[r.spinner%len(frames)]
	r.spinner++
	file = strings.TrimSpace(file)
	if len(file) > 88 {
		file = "..." + file[len(file)-85:]
	}
	r.printStatus(fmt.Sprintf("%s scan %d/%d %s", frame, count, r.total, file))
}

func (r *scanProgressReporter) Done(count int) {
	if !r.enabled {
		return
	}
	elapsed := time.Since(r.start).Round(time.Millisecond)
	r.printStatus(fmt.Sprintf("scan complete (%d files in %s)", count, elapsed))
	fmt.Fprintln(os.Stderr)
}

func (r *scanProgressReporter) printStatus(status string) {
	if r.lastLen > len(status) {
		status = status + strings.Repeat(" ", r.lastLen-len(status))
	}
	r.lastLen = len(status)
	fmt.Fprintf(os.Stderr, "\r%s", status)
}
