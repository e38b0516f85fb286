package anchor

import "testing"

func TestFlattenHeadings(t *testing.T) {
	f := NewFlattener(DefaultPlaceholders())

	cases := []struct {
		in   string
		want string
	}{
		{in: "## Getting Started", want: "getting-started"},
		{in: "# Step 1: Install", want: "step-1-install"},
		{in: "### **Important** note", want: "important-note"},
		{in: "## Installing {{site.data.reuse.short_name}}", want: "installing-event-streams"},
		{in: "## About {{site.data.reuse.long_name}}", want: "about-ibm-event-streams"},
		{in: "  ##   Padded  ", want: "padded"},
		{in: "## Trailing hashes ##", want: "trailing-hashes"},
	}

	for _, tc := range cases {
		if got := f.Flatten(tc.in); got != tc.want {
			t.Fatalf("Flatten(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFlattenIsIdempotent(t *testing.T) {
	f := NewFlattener(DefaultPlaceholders())
	inputs := []string{
		"## Getting Started",
		"# A: B * C",
		"#Mixed CASE #tags#",
		"## {{site.data.reuse.short_name}} overview",
		"getting-started",
	}
	for _, in := range inputs {
		once := f.Flatten(in)
		twice := f.Flatten(once)
		if once != twice {
			t.Fatalf("Flatten not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestZeroFlattenerSkipsPlaceholders(t *testing.T) {
	var f *Flattener
	got := f.Flatten("## {{site.data.reuse.short_name}}")
	if got != "{{site.data.reuse.short_name}}" {
		t.Fatalf("expected placeholder untouched, got %q", got)
	}
}

func TestIsHeading(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{line: "# Title", want: true},
		{line: "   ## Indented", want: true},
		{line: "#", want: false},
		{line: "## ...", want: false},
		{line: "#.#.#", want: false},
		{line: "Text # not heading", want: false},
		{line: "", want: false},
	}
	for _, tc := range cases {
		if got := IsHeading(tc.line); got != tc.want {
			t.Fatalf("IsHeading(%q): expected %v, got %v", tc.line, tc.want, got)
		}
	}
}
