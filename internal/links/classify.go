package links

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Class is the routing decision for a raw link.
type Class int

const (
	Excluded Class = iota
	External
	Internal
)

func (c Class) String() string {
	switch c {
	case External:
		return "external"
	case Internal:
		return "internal"
	default:
		return "excluded"
	}
}

// RuleKind selects how a Rule pattern is compared with a link.
type RuleKind string

const (
	RuleContains RuleKind = "contains"
	RuleEquals   RuleKind = "equals"
	RulePrefix   RuleKind = "prefix"
	RuleGlob     RuleKind = "glob"
)

// Rule excludes every link it matches from checking.
type Rule struct {
	Kind    RuleKind `yaml:"kind" json:"kind"`
	Pattern string   `yaml:"pattern" json:"pattern"`
	Note    string   `yaml:"note,omitempty" json:"note,omitempty"`
}

func (r Rule) Match(link string) bool {
	switch r.Kind {
	case RuleContains:
		return strings.Contains(link, r.Pattern)
	case RuleEquals:
		return link == r.Pattern
	case RulePrefix:
		return strings.HasPrefix(link, r.Pattern)
	case RuleGlob:
		ok, err := doublestar.Match(r.Pattern, link)
		return err == nil && ok
	default:
		return false
	}
}

func (r Rule) Validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("exclusion rule of kind %q has an empty pattern", r.Kind)
	}
	switch r.Kind {
	case RuleContains, RuleEquals, RulePrefix:
		return nil
	case RuleGlob:
		if !doublestar.ValidatePattern(r.Pattern) {
			return fmt.Errorf("invalid glob pattern %q", r.Pattern)
		}
		return nil
	default:
		return fmt.Errorf("unsupported exclusion rule kind %q (supported: contains, equals, prefix, glob)", r.Kind)
	}
}

// DefaultExclusions covers assets and sections published outside the tree.
func DefaultExclusions() []Rule {
	return []Rule{
		{Kind: RuleContains, Pattern: ".png", Note: "image asset"},
		{Kind: RuleContains, Pattern: ".svg", Note: "image asset"},
		{Kind: RuleContains, Pattern: ".pdf", Note: "document asset"},
		{Kind: RuleContains, Pattern: "/mq/", Note: "relocated mq section"},
		{Kind: RuleEquals, Pattern: "../../api/", Note: "generated API docs"},
		{Kind: RuleEquals, Pattern: "../../connectors/", Note: "connector catalog"},
		{Kind: RuleEquals, Pattern: "../../../connectors/", Note: "connector catalog"},
		{Kind: RulePrefix, Pattern: "../../support", Note: "support site"},
		{Kind: RulePrefix, Pattern: "../../tutorials", Note: "tutorials site"},
		{Kind: RulePrefix, Pattern: "...", Note: "elided path"},
	}
}

func DefaultLocalHosts() []string {
	return []string{"localhost", "127.0.0.1"}
}

func DefaultInternalPrefixes() []string {
	return []string{"..", "#"}
}

// Classifier routes raw links. Exclusion rules are consulted first, in order, and apply
// whatever the link looks like.
type Classifier struct {
	exclusions       []Rule
	localHosts       []string
	internalPrefixes []string
}

func NewClassifier(exclusions []Rule, localHosts []string, internalPrefixes []string) *Classifier {
	return &Classifier{
		exclusions:       append([]Rule(nil), exclusions...),
		localHosts:       append([]string(nil), localHosts...),
		internalPrefixes: append([]string(nil), internalPrefixes...),
	}
}

func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultExclusions(), DefaultLocalHosts(), DefaultInternalPrefixes())
}

func (c *Classifier) Classify(link string) Class {
	if _, ok := c.ExcludedBy(link); ok {
		return Excluded
	}
	if c.isExternal(link) {
		return External
	}
	for _, prefix := range c.internalPrefixes {
		if prefix != "" && strings.HasPrefix(link, prefix) {
			return Internal
		}
	}
	return Excluded
}

// ExcludedBy returns the first exclusion rule matching link.
func (c *Classifier) ExcludedBy(link string) (Rule, bool) {
	for _, rule := range c.exclusions {
		if rule.Match(link) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (c *Classifier) isExternal(link string) bool {
	if !strings.HasPrefix(link, "http") {
		return false
	}
	for _, host := range c.localHosts {
		if host != "" && strings.Contains(link, host) {
			return false
		}
	}
	return true
}
