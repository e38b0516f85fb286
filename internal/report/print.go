package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const separator = "-----------------------"

const (
	okLine       = "All links are ok."
	problemsLine = "There are link problems"
)

// WriteFindings prints one line per finding.
func WriteFindings(w io.Writer, findings []Finding) error {
	var b strings.Builder
	for _, f := range findings {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSummary prints the counters block and the final verdict line.
func WriteSummary(w io.Writer, s Stats) error {
	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Number of links checked: %d\n", s.LinksChecked())
	fmt.Fprintf(&b, "Number of external links checked: %d\n", s.ExternalLinks)
	fmt.Fprintf(&b, "Number of internal links checked: %d\n", s.InternalLinks)
	fmt.Fprintf(&b, "Number of external failed links: %d\n", s.ExternalFailures)
	fmt.Fprintf(&b, "Number of internal link with trailing slash: %d\n", s.TrailingSlash)
	fmt.Fprintf(&b, "Number of internal failed links: %d\n", s.InternalFailures)
	b.WriteString(separator + "\n")
	if s.OK() {
		b.WriteString(okLine + "\n")
	} else {
		b.WriteString(problemsLine + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RunSummary is the machine-readable form of a run.
type RunSummary struct {
	Mode       string    `json:"mode"`
	RootPath   string    `json:"root_path"`
	Files      int       `json:"files"`
	Documents  int       `json:"documents"`
	Checked    int       `json:"links_checked"`
	Stats      Stats     `json:"stats"`
	OK         bool      `json:"ok"`
	DurationMS int64     `json:"duration_ms"`
	Findings   []Finding `json:"findings,omitempty"`
}

func NewRunSummary(root string, documents int, totals Totals, durationMS int64) RunSummary {
	return RunSummary{
		Mode:       "check",
		RootPath:   root,
		Files:      totals.Files,
		Documents:  documents,
		Checked:    totals.Stats.LinksChecked(),
		Stats:      totals.Stats,
		OK:         totals.Stats.OK(),
		DurationMS: durationMS,
		Findings:   totals.Findings,
	}
}

func WriteJSON(w io.Writer, summary RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(summary)
}
