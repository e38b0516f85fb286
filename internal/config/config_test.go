package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/morozRed/mdlinkcheck/internal/links"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ".md", cfg.Extension)
	require.Equal(t, "categories: ", cfg.FrontMatter.CategoryKey)
	require.Equal(t, "slug: ", cfg.FrontMatter.SlugKey)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, links.SyntaxRegex, cfg.Syntax)
	require.NotEmpty(t, cfg.Exclusions)
	require.Len(t, cfg.Remaps, 2)
}

func TestLoadOptionalMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadForRoot(t.TempDir(), "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := LoadForRoot(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	content := `extension: .markdown
workers: 3
timeout: 2s
strict: true
syntax: markdown
front_matter:
  category_key: "section: "
  slug_key: "slug: "
  normalize: true
exclusions:
  - kind: glob
    pattern: "**/*.gif"
remaps:
  - category: old
    to: new
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644))

	cfg, err := LoadForRoot(root, "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, ".markdown", cfg.Extension)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 2*time.Second, cfg.Timeout)
	require.True(t, cfg.Strict)
	require.Equal(t, links.SyntaxMarkdown, cfg.Syntax)
	require.True(t, cfg.FrontMatter.Normalize)
	require.Equal(t, "section: ", cfg.FrontMatter.CategoryKey)
	require.Equal(t, []links.Rule{{Kind: links.RuleGlob, Pattern: "**/*.gif"}}, cfg.Exclusions)
	require.Equal(t, []links.RemapRule{{Category: "old", To: "new"}}, cfg.Remaps)
	require.Equal(t, links.DefaultLocalHosts(), cfg.LocalHosts)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [oops"), 0o644))
	_, err := Load(path, false)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MDLINKCHECK_WORKERS", "16")
	t.Setenv("MDLINKCHECK_TIMEOUT", "3s")
	t.Setenv("MDLINKCHECK_STRICT", "true")
	t.Setenv("MDLINKCHECK_SYNTAX", "markdown")

	cfg := Default().ApplyEnv()
	require.Equal(t, 16, cfg.Workers)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.True(t, cfg.Strict)
	require.Equal(t, links.SyntaxMarkdown, cfg.Syntax)
}

func TestApplyEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("MDLINKCHECK_WORKERS", "many")
	t.Setenv("MDLINKCHECK_TIMEOUT", "soon")
	t.Setenv("MDLINKCHECK_STRICT", "maybe")

	cfg := Default().ApplyEnv()
	require.Equal(t, Default().Workers, cfg.Workers)
	require.Equal(t, Default().Timeout, cfg.Timeout)
	require.False(t, cfg.Strict)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"extension":   func(c *Config) { c.Extension = "md" },
		"slug key":    func(c *Config) { c.FrontMatter.SlugKey = " " },
		"workers":     func(c *Config) { c.Workers = 0 },
		"timeout":     func(c *Config) { c.Timeout = 0 },
		"syntax":      func(c *Config) { c.Syntax = "asciidoc" },
		"exclusion":   func(c *Config) { c.Exclusions = []links.Rule{{Kind: "regex", Pattern: "x"}} },
		"remap":       func(c *Config) { c.Remaps = []links.RemapRule{{To: "x"}} },
		"placeholder": func(c *Config) { c.Placeholders[0].Token = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
