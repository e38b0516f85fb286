// Package report accumulates link-check results and renders the run summary.
package report

import (
	"errors"
	"fmt"
)

// ErrLinkProblems is returned by strict runs that found at least one problem.
var ErrLinkProblems = errors.New("there are link problems")

// Stats are the run counters. Values are combined with Add and never decrease.
type Stats struct {
	ExternalLinks    int `json:"external_links"`
	ExternalFailures int `json:"external_failures"`
	InternalLinks    int `json:"internal_links"`
	TrailingSlash    int `json:"internal_trailing_slash"`
	InternalFailures int `json:"internal_failures"`
}

func (s Stats) Add(other Stats) Stats {
	return Stats{
		ExternalLinks:    s.ExternalLinks + other.ExternalLinks,
		ExternalFailures: s.ExternalFailures + other.ExternalFailures,
		InternalLinks:    s.InternalLinks + other.InternalLinks,
		TrailingSlash:    s.TrailingSlash + other.TrailingSlash,
		InternalFailures: s.InternalFailures + other.InternalFailures,
	}
}

func (s Stats) LinksChecked() int {
	return s.ExternalLinks + s.InternalLinks
}

func (s Stats) Failures() int {
	return s.ExternalFailures + s.TrailingSlash + s.InternalFailures
}

func (s Stats) OK() bool {
	return s.Failures() == 0
}

// Kind names a finding category.
type Kind string

const (
	KindExternalFail  Kind = "external_link_fail"
	KindTrailingSlash Kind = "trailing_slash"
	KindInternalFail  Kind = "internal_link_fail"
)

// Finding is one reported problem with a link.
type Finding struct {
	Kind   Kind   `json:"kind"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Link   string `json:"link"`
	Detail string `json:"detail,omitempty"`
}

func (f Finding) String() string {
	switch f.Kind {
	case KindExternalFail:
		return fmt.Sprintf("EXTERNAL LINK FAIL:  file = %s, link = %s", f.File, f.Link)
	case KindTrailingSlash:
		return fmt.Sprintf("TRAILING SLASH FAIL: file = %s, link = %s", f.File, f.Link)
	default:
		return fmt.Sprintf("INTERNAL LINK FAIL: file = %s, link = %s", f.File, f.Link)
	}
}

// LinkResult is the outcome of checking a single link occurrence.
type LinkResult struct {
	Stats    Stats
	Findings []Finding
}

// FileResult is the outcome for one page.
type FileResult struct {
	File     string
	Stats    Stats
	Findings []Finding
}

// WithLink returns a copy of r that includes link.
func (r FileResult) WithLink(link LinkResult) FileResult {
	findings := make([]Finding, 0, len(r.Findings)+len(link.Findings))
	findings = append(findings, r.Findings...)
	findings = append(findings, link.Findings...)
	return FileResult{File: r.File, Stats: r.Stats.Add(link.Stats), Findings: findings}
}

// Totals is the folded outcome of a run.
type Totals struct {
	Files    int       `json:"files"`
	Stats    Stats     `json:"stats"`
	Findings []Finding `json:"findings,omitempty"`
}

// Merge folds per-file results, keeping findings in the order given.
func Merge(results []FileResult) Totals {
	totals := Totals{Files: len(results)}
	for _, result := range results {
		totals.Stats = totals.Stats.Add(result.Stats)
		totals.Findings = append(totals.Findings, result.Findings...)
	}
	return totals
}
