package cli

import (
	"context"
	"encoding/json"

	"github.com/morozRed/mdlinkcheck/internal/checker"
	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/spf13/cobra"
)

type indexEntry struct {
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Slug     string   `json:"slug"`
	Headings []string `json:"headings,omitempty"`
}

type IndexSummary struct {
	Mode      string           `json:"mode"`
	RootPath  string           `json:"root_path"`
	Files     int              `json:"files"`
	Documents []indexEntry     `json:"documents"`
	Issues    []docindex.Issue `json:"issues,omitempty"`
}

func RunIndex(cmd *cobra.Command, args []string) error {
	rootPath, err := resolveRootPath(args[0])
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	logger, err := NewLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(cmd, rootPath)
	if err != nil {
		return err
	}
	ignoreRules, err := LoadIgnoreRules(rootPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	idx, err := checker.BuildIndex(ctx, rootPath, checker.Options{Config: cfg, IgnoreRules: ignoreRules, Logger: logger})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		summary := IndexSummary{Mode: "index", RootPath: rootPath, Files: len(idx.Files()), Issues: idx.Issues()}
		for _, doc := range idx.Documents() {
			summary.Documents = append(summary.Documents, indexEntry{
				Path:     doc.Path,
				Category: doc.Category,
				Slug:     doc.Slug,
				Headings: doc.Headings,
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	for _, doc := range idx.Documents() {
		if err := doc.Display(out); err != nil {
			return err
		}
	}
	ReportIssues(cmd.ErrOrStderr(), idx.Issues())
	return nil
}
