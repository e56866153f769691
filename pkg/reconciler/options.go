package reconciler

import (
	"fmt"

	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/equivalence"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
)

// Options configures a reconciler.
type options struct {
	mapper          *locales.Mapper
	seeds           *locales.SeedList
	differ          differ.Differ
	baseline        Source
	baselineLocale  locales.ID
	referenceLocale locales.ReferenceID
	concurrency     int
}

func defaultOptions() *options {
	return &options{
		mapper:          locales.NewMapper(nil),
		seeds:           locales.NewSeedList(),
		differ:          differ.New(),
		baselineLocale:  constants.BaselineLocale,
		referenceLocale: constants.DefaultReferenceLocale,
		concurrency:     constants.DefaultConcurrency,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithOverrides sets the override table used to resolve locales.
func WithOverrides(table *locales.OverrideTable) Option {
	return func(o *options) error {
		o.mapper = locales.NewMapper(table)
		return nil
	}
}

// WithSeeds sets the seed list used to annotate unsupported locales.
func WithSeeds(seeds *locales.SeedList) Option {
	return func(o *options) error {
		if seeds != nil {
			o.seeds = seeds
		}
		return nil
	}
}

// WithDiffer sets the comparator.
func WithDiffer(d differ.Differ) Option {
	return func(o *options) error {
		if d == nil {
			return &errors.ValidationError{
				Field:   "differ",
				Message: "cannot be nil",
			}
		}
		o.differ = d
		return nil
	}
}

// WithRules builds the comparator around the given equivalence rules.
func WithRules(rules *equivalence.RuleSet) Option {
	return func(o *options) error {
		o.differ = differ.New(differ.WithRules(rules))
		return nil
	}
}

// WithBaseline enables the baseline check: the product's own files for
// the baseline locale are compared with the reference locale, and a
// failure to read them aborts the run.
func WithBaseline(src Source) Option {
	return func(o *options) error {
		o.baseline = src
		return nil
	}
}

// WithBaselineLocale sets the product locale of the baseline files.
func WithBaselineLocale(id locales.ID) Option {
	return func(o *options) error {
		if id == "" {
			return &errors.ValidationError{
				Field:   "baseline_locale",
				Message: "cannot be empty",
			}
		}
		o.baselineLocale = id
		return nil
	}
}

// WithReferenceLocale sets the reference locale the baseline is compared to.
func WithReferenceLocale(id locales.ReferenceID) Option {
	return func(o *options) error {
		if id == "" {
			return &errors.ValidationError{
				Field:   "reference_locale",
				Message: "cannot be empty",
			}
		}
		o.referenceLocale = id
		return nil
	}
}

// WithConcurrency sets how many locales are compared at once.
func WithConcurrency(n int) Option {
	return func(o *options) error {
		if n < 1 || n > constants.MaxConcurrency {
			return &errors.ValidationError{
				Field:   "concurrency",
				Value:   n,
				Message: fmt.Sprintf("must be between 1 and %d", constants.MaxConcurrency),
			}
		}
		o.concurrency = n
		return nil
	}
}
