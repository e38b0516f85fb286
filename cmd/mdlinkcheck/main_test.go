package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/morozRed/mdlinkcheck/internal/report"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "link problems", err: report.ErrLinkProblems, want: 2},
		{name: "wrapped link problems", err: fmt.Errorf("check: %w", report.ErrLinkProblems), want: 2},
		{name: "unlistable root", err: &docindex.FilesystemError{Path: "/docs", Err: errors.New("permission denied")}, want: 1},
		{name: "canceled", err: context.Canceled, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
