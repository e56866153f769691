package reconciler

import (
	"fmt"
	"sort"

	"github.com/agentstation/utc"

	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// LocaleReport is the comparison outcome for one locale.
type LocaleReport struct {
	Locale    locales.ID          `json:"locale" yaml:"locale"`
	Reference locales.ReferenceID `json:"reference" yaml:"reference"`
	Languages []differ.Entry      `json:"languages,omitempty" yaml:"languages,omitempty"`
	Regions   []differ.Entry      `json:"regions,omitempty" yaml:"regions,omitempty"`

	// Omitted lists categories that could not be compared; their totals
	// are zero.
	Omitted []terms.Category `json:"omitted,omitempty" yaml:"omitted,omitempty"`
}

// Label returns "locale (reference)".
func (r *LocaleReport) Label() string {
	return locales.Label(r.Locale, r.Reference)
}

// Entries returns the diff sequence for category c.
func (r *LocaleReport) Entries(c terms.Category) []differ.Entry {
	switch c {
	case terms.Languages:
		return r.Languages
	case terms.Regions:
		return r.Regions
	default:
		return nil
	}
}

// Totals derives the totals for category c from its entries.
func (r *LocaleReport) Totals(c terms.Category) differ.Totals {
	return differ.Summarize(r.Entries(c))
}

// Differences returns the Different entries of category c, sorted by key.
func (r *LocaleReport) Differences(c terms.Category) []differ.Entry {
	return differ.Filter(r.Entries(c), differ.Different)
}

// IsOmitted reports whether category c was skipped for this locale.
func (r *LocaleReport) IsOmitted(c terms.Category) bool {
	for _, o := range r.Omitted {
		if o == c {
			return true
		}
	}
	return false
}

// Summary returns a one-line description of the report.
func (r *LocaleReport) Summary() string {
	lang, reg := r.Totals(terms.Languages), r.Totals(terms.Regions)
	return fmt.Sprintf("%s: languages %d/%d (%.2f%%), regions %d/%d (%.2f%%)",
		r.Label(),
		lang.Differences, lang.Total, lang.Percent,
		reg.Differences, reg.Total, reg.Percent)
}

func (r *LocaleReport) set(c terms.Category, entries []differ.Entry) {
	switch c {
	case terms.Languages:
		r.Languages = entries
	case terms.Regions:
		r.Regions = entries
	}
}

// SortReports orders reports by label.
func SortReports(reports []*LocaleReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Label() < reports[j].Label()
	})
}

// Unsupported is a product locale the reference source does not cover.
type Unsupported struct {
	Locale    locales.ID          `json:"locale" yaml:"locale"`
	Reference locales.ReferenceID `json:"reference" yaml:"reference"`

	// Annotation is the seed-pool note, empty when the locale is not seeded.
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// String renders the locale with its seed annotation.
func (u Unsupported) String() string {
	if u.Annotation == "" {
		return string(u.Locale)
	}
	return fmt.Sprintf("%s (%s)", u.Locale, u.Annotation)
}

// IssueKind groups recoverable issues.
type IssueKind string

const (
	// UnresolvedLocale: the locale is absent from the reference source.
	UnresolvedLocale IssueKind = "unresolved-locale"
	// MissingCategory: a category file could not be read on either side.
	MissingCategory IssueKind = "missing-category"
	// MalformedEntry: the product parser skipped an entry.
	MalformedEntry IssueKind = "malformed-entry"
	// KeyCollision: two raw keys normalized to one key with different values.
	KeyCollision IssueKind = "key-collision"
)

// IssueKinds returns every kind in report order.
func IssueKinds() []IssueKind {
	return []IssueKind{UnresolvedLocale, MissingCategory, MalformedEntry, KeyCollision}
}

// Issue is a recovered failure. It degrades the result without aborting.
type Issue struct {
	Kind     IssueKind      `json:"kind" yaml:"kind"`
	Locale   locales.ID     `json:"locale" yaml:"locale"`
	Category terms.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Message  string         `json:"message" yaml:"message"`
	Err      error          `json:"-" yaml:"-"`
}

func newIssue(kind IssueKind, id locales.ID, c terms.Category, err error) Issue {
	return Issue{Kind: kind, Locale: id, Category: c, Message: err.Error(), Err: err}
}

// Result is the outcome of reconciling a locale set.
type Result struct {
	GeneratedAt utc.Time `json:"generated_at" yaml:"generated_at"`

	// Baseline compares the product's own reference-locale files with the
	// reference source. Nil when no baseline source is configured.
	Baseline *LocaleReport `json:"baseline,omitempty" yaml:"baseline,omitempty"`

	// Reports holds one report per supported locale, sorted by label.
	Reports []*LocaleReport `json:"reports" yaml:"reports"`

	// Unsupported lists locales the reference source does not cover.
	Unsupported []Unsupported `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`

	// MissingLanguageNames lists locales whose primary subtag has no entry
	// in the baseline language names. It is only computed when a baseline
	// source is configured and stays empty otherwise.
	MissingLanguageNames []locales.ID `json:"missing_language_names,omitempty" yaml:"missing_language_names,omitempty"`

	// Issues holds recovered failures in the order they were found.
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// NewResult creates an empty result stamped with the current time.
func NewResult() *Result {
	return &Result{
		GeneratedAt: utc.Now(),
		Reports:     []*LocaleReport{},
	}
}

// IssuesByKind groups issues by kind, keeping their order within a kind.
func (r *Result) IssuesByKind() map[IssueKind][]Issue {
	grouped := make(map[IssueKind][]Issue)
	for _, issue := range r.Issues {
		grouped[issue.Kind] = append(grouped[issue.Kind], issue)
	}
	return grouped
}

// Rows returns the baseline (when present) followed by every report.
func (r *Result) Rows() []*LocaleReport {
	rows := make([]*LocaleReport, 0, len(r.Reports)+1)
	if r.Baseline != nil {
		rows = append(rows, r.Baseline)
	}
	return append(rows, r.Reports...)
}

// Report returns the report for locale id.
func (r *Result) Report(id locales.ID) (*LocaleReport, bool) {
	for _, report := range r.Reports {
		if report.Locale == id {
			return report, true
		}
	}
	return nil, false
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("Compared %d locales, %d not supported by the reference, %d issues",
		len(r.Reports), len(r.Unsupported), len(r.Issues))
}
