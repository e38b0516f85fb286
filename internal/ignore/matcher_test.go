package ignore

import "testing"

func TestMatcher_DefaultAndUserOverrides(t *testing.T) {
	m := NewMatcher([]string{
		"drafts/**",
		"!drafts/keep/page.md",
		"*.tmp.md",
	})

	cases := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{path: ".git/config", isDir: false, ignored: true},
		{path: ".git", isDir: true, ignored: true},
		{path: "node_modules/pkg/README.md", isDir: false, ignored: false},
		{path: "vendor/guide.md", isDir: false, ignored: false},
		{path: "docs/_site/index.md", isDir: false, ignored: false},
		{path: "_site", isDir: true, ignored: false},
		{path: "drafts/old/page.md", isDir: false, ignored: true},
		{path: "drafts/keep/page.md", isDir: false, ignored: false},
		{path: "nested/scratch.tmp.md", isDir: false, ignored: true},
		{path: "connecting/intro.md", isDir: false, ignored: false},
		{path: ".", isDir: true, ignored: false},
	}

	for _, tc := range cases {
		got := m.ShouldIgnore(tc.path, tc.isDir)
		if got != tc.ignored {
			t.Fatalf("path %s: expected ignored=%v, got %v", tc.path, tc.ignored, got)
		}
	}
}

func TestMatcher_NegatedDirectoryRule(t *testing.T) {
	m := NewMatcher([]string{
		"archive/",
		"!archive/current/",
	})

	if !m.ShouldIgnore("archive/2019/page.md", false) {
		t.Fatalf("expected archive/2019/page.md to be ignored")
	}
	if m.ShouldIgnore("archive/current/page.md", false) {
		t.Fatalf("expected archive/current/page.md to be included")
	}
}

func TestMatcher_AnchoredRule(t *testing.T) {
	m := NewMatcher([]string{"/README.md"})

	if !m.ShouldIgnore("README.md", false) {
		t.Fatalf("expected root README.md to be ignored")
	}
	if m.ShouldIgnore("guide/README.md", false) {
		t.Fatalf("expected nested README.md to be included")
	}
}

func TestMatcher_SkipsCommentsAndInvalidPatterns(t *testing.T) {
	m := NewMatcher([]string{"# comment", "", "[unclosed"})
	if m.ShouldIgnore("guide/page.md", false) {
		t.Fatalf("expected no user rules to apply")
	}
}

func TestNilMatcherIgnoresNothing(t *testing.T) {
	var m *Matcher
	if m.ShouldIgnore(".git/config", false) {
		t.Fatalf("expected nil matcher to ignore nothing")
	}
}
