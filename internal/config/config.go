// Package config loads checker settings from defaults, an optional YAML file and
// MDLINKCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/morozRed/mdlinkcheck/internal/anchor"
	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/morozRed/mdlinkcheck/internal/links"
	"github.com/morozRed/mdlinkcheck/internal/verify"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the documentation root when no --config is given.
const FileName = ".mdlinkcheck.yaml"

const envPrefix = "MDLINKCHECK_"

type Config struct {
	Extension        string               `yaml:"extension"`
	FrontMatter      docindex.FrontMatter `yaml:"front_matter"`
	Exclusions       []links.Rule         `yaml:"exclusions"`
	Remaps           []links.RemapRule    `yaml:"remaps"`
	Placeholders     []anchor.Placeholder `yaml:"placeholders"`
	LocalHosts       []string             `yaml:"local_hosts"`
	InternalPrefixes []string             `yaml:"internal_prefixes"`
	Ignore           []string             `yaml:"ignore"`
	Workers          int                  `yaml:"workers"`
	Timeout          time.Duration        `yaml:"timeout"`
	Strict           bool                 `yaml:"strict"`
	CheckStatus      bool                 `yaml:"check_status"`
	Syntax           links.Syntax         `yaml:"syntax"`
	UserAgent        string               `yaml:"user_agent"`
}

func Default() Config {
	return Config{
		Extension:        ".md",
		FrontMatter:      docindex.DefaultFrontMatter(),
		Exclusions:       links.DefaultExclusions(),
		Remaps:           links.DefaultRemaps(),
		Placeholders:     anchor.DefaultPlaceholders(),
		LocalHosts:       links.DefaultLocalHosts(),
		InternalPrefixes: links.DefaultInternalPrefixes(),
		Workers:          verify.DefaultWorkers,
		Timeout:          verify.DefaultTimeout,
		Syntax:           links.SyntaxRegex,
	}
}

// Load reads path over the defaults. Keys absent from the file keep their default
// value; a list given in the file replaces the default list. When optional is set a
// missing file yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadForRoot loads explicit when set, otherwise the optional FileName under root.
func LoadForRoot(root, explicit string) (Config, error) {
	if strings.TrimSpace(explicit) != "" {
		return Load(explicit, false)
	}
	return Load(filepath.Join(root, FileName), true)
}

// ApplyEnv overrides settings from MDLINKCHECK_WORKERS, MDLINKCHECK_TIMEOUT,
// MDLINKCHECK_STRICT, MDLINKCHECK_CHECK_STATUS and MDLINKCHECK_SYNTAX. Values that
// do not parse are ignored.
func (c Config) ApplyEnv() Config {
	c.Workers = envInt(envPrefix+"WORKERS", c.Workers)
	c.Timeout = envDuration(envPrefix+"TIMEOUT", c.Timeout)
	c.Strict = envBool(envPrefix+"STRICT", c.Strict)
	c.CheckStatus = envBool(envPrefix+"CHECK_STATUS", c.CheckStatus)
	c.Syntax = links.Syntax(envOr(envPrefix+"SYNTAX", string(c.Syntax)))
	c.UserAgent = envOr(envPrefix+"USER_AGENT", c.UserAgent)
	return c
}

func (c Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if strings.TrimSpace(c.FrontMatter.CategoryKey) == "" || strings.TrimSpace(c.FrontMatter.SlugKey) == "" {
		return fmt.Errorf("front_matter.category_key and front_matter.slug_key are required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := links.ParseSyntax(string(c.Syntax)); err != nil {
		return err
	}
	for i, rule := range c.Exclusions {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("exclusions[%d]: %w", i, err)
		}
	}
	for i, remap := range c.Remaps {
		if remap.Category == "" {
			return fmt.Errorf("remaps[%d]: category is required", i)
		}
	}
	for i, p := range c.Placeholders {
		if p.Token == "" {
			return fmt.Errorf("placeholders[%d]: token is required", i)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
