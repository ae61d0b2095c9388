package marquee

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelector is returned when a selector string cannot be parsed.
var ErrInvalidSelector = errors.New("marquee: invalid selector")

// compound matches a single node: an optional tag (or "*"), an optional
// "#name", and any number of ".class" parts.
type compound struct {
	tag     string
	name    string
	classes []string
}

func (c compound) match(n *Node) bool {
	if c.tag != "" && c.tag != "*" && c.tag != n.Tag {
		return false
	}
	if c.name != "" && c.name != n.Name {
		return false
	}
	for _, class := range c.classes {
		if !n.HasClass(class) {
			return false
		}
	}
	return true
}

// Selector is a parsed element selector. It supports a small subset of CSS:
// type selectors ("input"), the universal selector ("*"), names ("#ok"),
// classes (".item"), compound forms ("div.item.big"), the descendant
// combinator ("ul li") and comma-separated groups ("input, option").
//
// The zero Selector matches nothing.
type Selector struct {
	source string
	groups [][]compound // each group is a descendant chain, outermost first
}

// ParseSelector parses s. An empty (or all-blank) string yields the zero
// Selector.
func ParseSelector(s string) (Selector, error) {
	sel := Selector{source: s}
	if strings.TrimSpace(s) == "" {
		return sel, nil
	}
	for _, group := range strings.Split(s, ",") {
		parts := strings.Fields(group)
		if len(parts) == 0 {
			return Selector{}, fmt.Errorf("%w: empty group in %q", ErrInvalidSelector, s)
		}
		chain := make([]compound, 0, len(parts))
		for _, part := range parts {
			c, err := parseCompound(part)
			if err != nil {
				return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, s, err)
			}
			chain = append(chain, c)
		}
		sel.groups = append(sel.groups, chain)
	}
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on error.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseCompound(part string) (compound, error) {
	var c compound
	i := strings.IndexAny(part, "#.")
	if i < 0 {
		c.tag = part
		return c, nil
	}
	c.tag = part[:i]
	rest := part[i:]
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		j := strings.IndexAny(rest, "#.")
		if j < 0 {
			j = len(rest)
		}
		token := rest[:j]
		rest = rest[j:]
		if token == "" {
			return compound{}, fmt.Errorf("empty segment in %q", part)
		}
		if marker == '#' {
			if c.name != "" {
				return compound{}, fmt.Errorf("more than one name in %q", part)
			}
			c.name = token
		} else {
			c.classes = append(c.classes, token)
		}
	}
	return c, nil
}

// String returns the source text.
func (s Selector) String() string {
	return s.source
}

// IsZero reports whether the selector matches nothing.
func (s Selector) IsZero() bool {
	return len(s.groups) == 0
}

// Match reports whether n matches any group of the selector.
func (s Selector) Match(n *Node) bool {
	if n == nil {
		return false
	}
	for _, chain := range s.groups {
		if matchChain(chain, n) {
			return true
		}
	}
	return false
}

// MatchSelfOrAncestor reports whether n, or any of its ancestors, matches.
func (s Selector) MatchSelfOrAncestor(n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if s.Match(p) {
			return true
		}
	}
	return false
}

// matchChain matches the last compound against n, then walks up the
// ancestors for the remaining compounds, innermost first.
func matchChain(chain []compound, n *Node) bool {
	last := len(chain) - 1
	if !chain[last].match(n) {
		return false
	}
	i := last - 1
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if chain[i].match(p) {
			i--
		}
	}
	return i < 0
}
