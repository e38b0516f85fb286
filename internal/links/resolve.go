package links

import "strings"

const parentSegment = ".."

// Target is the document a relative link points at. Anchor is left raw; the index
// flattens it before comparing with headings.
type Target struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Anchor   string `json:"anchor,omitempty"`
}

// RemapRule rewrites the category of a resolved target after a section moved.
// An empty Slugs list matches any slug.
type RemapRule struct {
	Category string   `yaml:"category" json:"category"`
	Slugs    []string `yaml:"slugs,omitempty" json:"slugs,omitempty"`
	To       string   `yaml:"to" json:"to"`
}

func (r RemapRule) Match(t Target) bool {
	if t.Category != r.Category {
		return false
	}
	if len(r.Slugs) == 0 {
		return true
	}
	for _, slug := range r.Slugs {
		if slug == t.Slug {
			return true
		}
	}
	return false
}

// DefaultRemaps reflect the move of the mq pages under connecting/.
func DefaultRemaps() []RemapRule {
	return []RemapRule{
		{Category: "connecting/mq", Slugs: []string{"connectors", "setting-up-connectors"}, To: "connecting"},
		{Category: "mq", To: "connecting/mq"},
	}
}

// Resolver interprets relative links in the context of the page they appear on.
type Resolver struct {
	remaps []RemapRule
}

func NewResolver(remaps []RemapRule) *Resolver {
	return &Resolver{remaps: append([]RemapRule(nil), remaps...)}
}

// Resolve computes the target of link from page. A ".." segment keeps the page's
// value for that position. At most one remap rule applies, the first that matches
// the pre-remap target.
func (r *Resolver) Resolve(link string, page PageContext) Target {
	segments := splitSegments(link)
	n := len(segments)
	target := Target{Category: page.Category, Slug: page.Slug}

	if n > 0 {
		last := segments[n-1]
		switch {
		case strings.HasPrefix(last, "#"):
			target.Anchor = last[1:]
			n--
		case strings.Contains(last, "#"):
			pieces := splitDropTrailing(last, "#")
			if len(pieces) >= 2 {
				target.Anchor = pieces[len(pieces)-1]
				segments[n-1] = pieces[len(pieces)-2]
			} else {
				// "slug#" or "slug##": nothing follows the marker.
				segments[n-1] = pieces[0]
			}
		}
	}

	switch {
	case n > 1:
		if segments[n-1] != parentSegment {
			target.Slug = segments[n-1]
		}
		if segments[n-2] != parentSegment {
			target.Category = segments[n-2]
		}
	case n == 1:
		if segments[0] != parentSegment {
			target.Category = segments[0]
		}
	}

	if r != nil {
		for _, rule := range r.remaps {
			if rule.Match(target) {
				target.Category = rule.To
				break
			}
		}
	}
	return target
}

// splitSegments splits on '/' and drops trailing empty segments, so "a/b/" has two
// segments and "a//b" keeps its empty middle one.
func splitSegments(link string) []string {
	if !strings.Contains(link, "/") {
		return []string{link}
	}
	return splitDropTrailing(link, "/")
}

func splitDropTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}
