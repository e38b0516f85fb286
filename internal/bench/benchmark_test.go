package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/morozRed/mdlinkcheck/internal/checker"
	"github.com/morozRed/mdlinkcheck/internal/config"
	"github.com/morozRed/mdlinkcheck/internal/verify"
)

func BenchmarkCheck_MediumTree(b *testing.B) {
	root := b.TempDir()
	createSyntheticDocsTree(b, root, 250)

	opts := checker.Options{Config: config.Default(), Verifier: verify.Offline{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := checker.Run(context.Background(), root, opts)
		if err != nil {
			b.Fatalf("check failed: %v", err)
		}
		if result.Totals.Stats.InternalFailures != 0 {
			b.Fatalf("expected every synthetic link to resolve, got %+v", result.Totals.Stats)
		}
	}
}

func BenchmarkBuildIndex_MediumTree(b *testing.B) {
	root := b.TempDir()
	createSyntheticDocsTree(b, root, 250)

	opts := checker.Options{Config: config.Default()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx, err := checker.BuildIndex(context.Background(), root, opts)
		if err != nil {
			b.Fatalf("index failed: %v", err)
		}
		if idx.Len() == 0 {
			b.Fatalf("expected indexed documents")
		}
	}
}

// createSyntheticDocsTree writes pages spread over ten categories. Each page links
// to a heading on the previous page and to one external URL.
func createSyntheticDocsTree(tb testing.TB, root string, pages int) {
	tb.Helper()

	for i := 0; i < pages; i++ {
		category := fmt.Sprintf("section%d", i%10)
		dir := filepath.Join(root, category)
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("mkdir failed: %v", err)
		}

		prev := (i + pages - 1) % pages
		src := fmt.Sprintf(`---
categories: %s
slug: page-%03d
---

## Overview %d

See [the previous page](../section%d/page-%03d#overview-%d) and [the site](https://example.com/%d).

### Details
`, category, i, i, prev%10, prev, prev, i)

		filePath := filepath.Join(dir, fmt.Sprintf("page_%03d.md", i))
		if err := os.WriteFile(filePath, []byte(src), 0644); err != nil {
			tb.Fatalf("write failed: %v", err)
		}
	}
}
