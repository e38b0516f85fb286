package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/morozRed/mdlinkcheck/internal/ignore"
)

func resolveRootPath(path string) (string, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return rootPath, nil
}

// LoadIgnoreRules reads .mdlinkcheckignore from the documentation root. A missing
// file means no extra rules.
func LoadIgnoreRules(rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, ignore.File)
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ignore.File, err)
	}
	defer f.Close()

	rules := make([]string, 0)
	err = docindex.ScanLines(f, func(line string) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return
		}
		rules = append(rules, line)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ignore.File, err)
	}

	return rules, nil
}
