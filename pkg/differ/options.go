package differ

import "github.com/flodolo/moz-cldr-data/pkg/equivalence"

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithRules sets the equivalence rules used for unequal pairs.
func WithRules(rules *equivalence.RuleSet) Option {
	return func(d *differ) {
		if rules != nil {
			d.rules = rules
		}
	}
}

// WithReferenceOnly also reports reference keys the product lacks as
// MissingFromSource entries.
func WithReferenceOnly(enabled bool) Option {
	return func(d *differ) {
		d.referenceOnly = enabled
	}
}
