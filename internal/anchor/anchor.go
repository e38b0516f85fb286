// Package anchor turns heading titles into the anchor ids that links refer to.
package anchor

import "strings"

// Placeholder is a site-template token that is expanded while flattening.
type Placeholder struct {
	Token string `yaml:"token" json:"token"`
	Value string `yaml:"value" json:"value"`
}

// DefaultPlaceholders are the reuse tokens found in the documentation site templates.
func DefaultPlaceholders() []Placeholder {
	return []Placeholder{
		{Token: "{{site.data.reuse.short_name}}", Value: "event-streams"},
		{Token: "{{site.data.reuse.long_name}}", Value: "ibm-event-streams"},
	}
}

// Flattener canonicalizes titles. The zero value flattens without expanding placeholders.
type Flattener struct {
	placeholders []Placeholder
}

func NewFlattener(placeholders []Placeholder) *Flattener {
	return &Flattener{placeholders: append([]Placeholder(nil), placeholders...)}
}

// Flatten replaces '#' with spaces, trims, lowercases, hyphenates spaces,
// expands placeholders and finally strips ':' and '*'.
func (f *Flattener) Flatten(title string) string {
	out := strings.ReplaceAll(title, "#", " ")
	out = strings.TrimSpace(out)
	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	if f != nil {
		for _, p := range f.placeholders {
			if p.Token == "" {
				continue
			}
			out = strings.ReplaceAll(out, p.Token, p.Value)
		}
	}
	out = strings.ReplaceAll(out, ":", "")
	out = strings.ReplaceAll(out, "*", "")
	return out
}

// IsHeading reports whether a raw line declares a heading that contributes an anchor:
// it starts with '#' once trimmed and has text left after removing '.' and '#'.
func IsHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	rest := strings.NewReplacer(".", " ", "#", " ").Replace(trimmed)
	return strings.TrimSpace(rest) != ""
}
