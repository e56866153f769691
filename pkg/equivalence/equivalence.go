// Package equivalence decides when two differently spelled display names
// should not be reported as a difference.
//
// Each category has an optional fold, applied to both strings before the
// literal comparison, and an ordered list of tolerated-variant rules that
// are consulted only for literally unequal pairs.
package equivalence

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Rule reports whether a source string is a tolerated variant of a
// reference string.
type Rule interface {
	// Name identifies the rule in reports.
	Name() string
	// Equivalent is called with literally unequal strings.
	Equivalent(source, reference string) bool
}

// Substitution tolerates a source string that equals the reference string
// with every From replaced by To ("Antigua & Barbuda" -> "Antigua and Barbuda").
type Substitution struct {
	RuleName string `json:"name" yaml:"name" mapstructure:"name"`
	From     string `json:"from" yaml:"from" mapstructure:"from"`
	To       string `json:"to" yaml:"to" mapstructure:"to"`
}

// Name implements Rule.
func (s Substitution) Name() string {
	if s.RuleName != "" {
		return s.RuleName
	}
	return s.From + "=" + s.To
}

// Equivalent implements Rule.
func (s Substitution) Equivalent(source, reference string) bool {
	if s.From == "" {
		return false
	}
	return source == strings.ReplaceAll(reference, s.From, s.To)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	RuleName string
	Fn       func(source, reference string) bool
}

// Name implements Rule.
func (f RuleFunc) Name() string { return f.RuleName }

// Equivalent implements Rule.
func (f RuleFunc) Equivalent(source, reference string) bool { return f.Fn(source, reference) }

// Ampersand tolerates "and" in the source where the reference has "&".
var Ampersand = Substitution{RuleName: "ampersand", From: "&", To: "and"}

// Saint tolerates "Saint" in the source where the reference has "St.".
var Saint = Substitution{RuleName: "saint", From: "St.", To: "Saint"}

// DefaultRegionRules returns the tolerated-variant rules for region names.
func DefaultRegionRules() []Rule {
	return []Rule{Ampersand, Saint}
}

// Fold case-folds s and removes every whitespace character. Input is put
// in NFC first so composed and decomposed forms fold alike.
func Fold(s string) string {
	// A Caser carries transform state, so each call gets its own.
	folded := cases.Fold().String(norm.NFC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// RuleSet holds the folding switch and rules per category. It is
// read-only after construction and safe for concurrent use.
type RuleSet struct {
	fold  map[terms.Category]bool
	rules map[terms.Category][]Rule
}

// New returns the default rule set (language names folded, region names
// tolerating the ampersand and saint substitutions) with opts applied.
func New(opts ...Option) *RuleSet {
	rs := &RuleSet{
		fold: map[terms.Category]bool{
			terms.Languages: true,
		},
		rules: map[terms.Category][]Rule{
			terms.Regions: DefaultRegionRules(),
		},
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Folds reports whether category c is folded before comparison.
func (rs *RuleSet) Folds(c terms.Category) bool {
	return rs.fold[c]
}

// Prepare returns s as it should be compared for category c.
func (rs *RuleSet) Prepare(c terms.Category, s string) string {
	if rs.Folds(c) {
		return Fold(s)
	}
	return s
}

// Rules returns a copy of the rules for category c.
func (rs *RuleSet) Rules(c terms.Category) []Rule {
	return append([]Rule(nil), rs.rules[c]...)
}

// Equivalent evaluates every rule of category c against the pair and
// returns the names of those that hold. The pair is equivalent when at
// least one name is returned.
func (rs *RuleSet) Equivalent(c terms.Category, source, reference string) (bool, []string) {
	var matched []string
	for _, rule := range rs.rules[c] {
		if rule.Equivalent(source, reference) {
			matched = append(matched, rule.Name())
		}
	}
	return len(matched) > 0, matched
}

// AreEquivalent is Equivalent without the rule names.
func (rs *RuleSet) AreEquivalent(c terms.Category, source, reference string) bool {
	ok, _ := rs.Equivalent(c, source, reference)
	return ok
}
