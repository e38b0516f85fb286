package cli

import (
	"context"

	"github.com/morozRed/mdlinkcheck/internal/checker"
	"github.com/morozRed/mdlinkcheck/internal/report"
	"github.com/morozRed/mdlinkcheck/internal/verify"
	"github.com/spf13/cobra"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	rootPath, err := resolveRootPath(args[0])
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	offline, err := OptionalBoolFlag(cmd, "offline")
	if err != nil {
		return err
	}
	quiet, err := OptionalBoolFlag(cmd, "quiet")
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

	opts := checker.Options{
		Config:      cfg,
		IgnoreRules: ignoreRules,
		Logger:      logger,
		Progress:    newScanProgressReporter(cmd.OutOrStdout(), asJSON, quiet),
	}
	if offline {
		opts.Verifier = verify.Offline{}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := checker.Run(ctx, rootPath, opts)
	if err != nil {
		return err
	}

	if !quiet {
		ReportIssues(cmd.ErrOrStderr(), result.Issues)
	}
	if err := PrintRunSummary(cmd.OutOrStdout(), result, asJSON); err != nil {
		return err
	}
	if cfg.Strict && !result.Totals.Stats.OK() {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return report.ErrLinkProblems
	}
	return nil
}
