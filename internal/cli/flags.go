package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/morozRed/mdlinkcheck/internal/config"
	"github.com/morozRed/mdlinkcheck/internal/links"
	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// LoadConfig layers the config file, the environment and any flags the user set.
func LoadConfig(cmd *cobra.Command, rootPath string) (config.Config, error) {
	explicit, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadForRoot(rootPath, explicit)
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.ApplyEnv()
	if err := applyFlagOverrides(cmd, &cfg); err != nil {
		return config.Config{}, err
	}
	syntax, err := links.ParseSyntax(string(cfg.Syntax))
	if err != nil {
		return config.Config{}, err
	}
	cfg.Syntax = syntax
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return fmt.Errorf("failed to read --workers flag: %w", err)
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return fmt.Errorf("failed to read --timeout flag: %w", err)
		}
	}
	if flags.Changed("strict") {
		if cfg.Strict, err = flags.GetBool("strict"); err != nil {
			return fmt.Errorf("failed to read --strict flag: %w", err)
		}
	}
	if flags.Changed("check-status") {
		if cfg.CheckStatus, err = flags.GetBool("check-status"); err != nil {
			return fmt.Errorf("failed to read --check-status flag: %w", err)
		}
	}
	if flags.Changed("syntax") {
		value, err := OptionalStringFlag(cmd, "syntax")
		if err != nil {
			return err
		}
		cfg.Syntax = links.Syntax(value)
	}
	return nil
}

// NewLogger writes text records to stderr. --quiet wins over --verbose.
func NewLogger(cmd *cobra.Command) (*slog.Logger, error) {
	quiet, err := OptionalBoolFlag(cmd, "quiet")
	if err != nil {
		return nil, err
	}
	verbose, err := OptionalBoolFlag(cmd, "verbose")
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
