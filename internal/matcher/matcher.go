// Package matcher selects locale codes with shell-style glob patterns
// ("es-*", "??") or regular expressions prefixed with "re:" ("re:^(es|pt)-").
package matcher

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
)

// RegexPrefix marks a pattern as a regular expression.
const RegexPrefix = "re:"

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Literal matches the input exactly.
	Literal PatternType = iota
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob
	// Regex uses regular expressions.
	Regex
)

// Matcher matches locale codes against one pattern.
type Matcher interface {
	// Match checks if the input matches the pattern.
	Match(input string) bool
	// MatchAll returns the matching inputs in their original order.
	MatchAll(inputs ...string) []string
	// Pattern returns the original pattern string.
	Pattern() string
	// Type returns the pattern type being used.
	Type() PatternType
}

type matcher struct {
	pattern     string
	patternType PatternType
	compiled    *regexp.Regexp
}

// DetectType returns the type New would use for pattern.
func DetectType(pattern string) PatternType {
	switch {
	case strings.HasPrefix(pattern, RegexPrefix):
		return Regex
	case strings.ContainsAny(pattern, "*?["):
		return Glob
	default:
		return Literal
	}
}

// New creates a Matcher, detecting the pattern type.
func New(pattern string) (Matcher, error) {
	m := &matcher{pattern: pattern, patternType: DetectType(pattern)}

	switch m.patternType {
	case Glob:
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid glob pattern: "+err.Error())
		}
	case Regex:
		compiled, err := regexp.Compile(strings.TrimPrefix(pattern, RegexPrefix))
		if err != nil {
			return nil, errors.NewValidationError("pattern", pattern, "invalid regex pattern: "+err.Error())
		}
		m.compiled = compiled
	}
	return m, nil
}

// Match checks if the input matches the pattern.
func (m *matcher) Match(input string) bool {
	switch m.patternType {
	case Glob:
		matched, _ := filepath.Match(m.pattern, input)
		return matched
	case Regex:
		return m.compiled.MatchString(input)
	default:
		return input == m.pattern
	}
}

// MatchAll returns the matching inputs in their original order.
func (m *matcher) MatchAll(inputs ...string) []string {
	results := make([]string, 0)
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *matcher) Type() PatternType {
	return m.patternType
}

// Set matches an input when any of its matchers does.
type Set []Matcher

// NewSet compiles every pattern.
func NewSet(patterns ...string) (Set, error) {
	set := make(Set, 0, len(patterns))
	for _, p := range patterns {
		m, err := New(p)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}
	return set, nil
}

// HasPatterns reports whether any matcher is a glob or a regex.
func (s Set) HasPatterns() bool {
	for _, m := range s {
		if m.Type() != Literal {
			return true
		}
	}
	return false
}

// Match checks if any matcher matches input.
func (s Set) Match(input string) bool {
	for _, m := range s {
		if m.Match(input) {
			return true
		}
	}
	return false
}

// MatchAll returns the inputs matched by any matcher, in input order.
func (s Set) MatchAll(inputs ...string) []string {
	results := make([]string, 0)
	for _, input := range inputs {
		if s.Match(input) {
			results = append(results, input)
		}
	}
	return results
}
