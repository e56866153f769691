package equivalence

import "github.com/flodolo/moz-cldr-data/pkg/terms"

// Option is a functional option for configuring a RuleSet
type Option func(*RuleSet)

// WithRules appends rules for category c.
func WithRules(c terms.Category, rules ...Rule) Option {
	return func(rs *RuleSet) {
		rs.rules[c] = append(rs.rules[c], rules...)
	}
}

// WithSubstitutions appends substitution rules for category c.
func WithSubstitutions(c terms.Category, subs ...Substitution) Option {
	return func(rs *RuleSet) {
		for _, sub := range subs {
			rs.rules[c] = append(rs.rules[c], sub)
		}
	}
}

// WithoutRules removes every rule of category c, including defaults.
func WithoutRules(c terms.Category) Option {
	return func(rs *RuleSet) {
		delete(rs.rules, c)
	}
}

// WithFolding turns case and whitespace folding on or off for category c.
func WithFolding(c terms.Category, enabled bool) Option {
	return func(rs *RuleSet) {
		rs.fold[c] = enabled
	}
}
