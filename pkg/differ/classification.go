// Package differ compares a product term map with a reference term map and
// classifies every product key.
package differ

import (
	"fmt"
	"math"

	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Classification is the outcome of comparing one term.
type Classification string

const (
	// Match indicates equal values (after folding, where the category folds).
	Match Classification = "match"
	// ToleratedVariant indicates unequal values accepted by an equivalence rule.
	ToleratedVariant Classification = "tolerated"
	// Different indicates unequal values no rule accepts.
	Different Classification = "different"
	// MissingFromReference indicates a product key absent from the reference.
	MissingFromReference Classification = "missing-from-reference"
	// MissingFromSource indicates a reference key absent from the product.
	// It is only produced when WithReferenceOnly is enabled.
	MissingFromSource Classification = "missing-from-source"
)

// Entry is one classified term.
type Entry struct {
	Key            terms.Key      `json:"key" yaml:"key"`
	Source         string         `json:"source,omitempty" yaml:"source,omitempty"`
	Reference      string         `json:"reference,omitempty" yaml:"reference,omitempty"`
	Classification Classification `json:"classification" yaml:"classification"`

	// Rules names every equivalence rule that held for a ToleratedVariant.
	Rules []string `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// String renders the entry the way difference listings show it.
func (e Entry) String() string {
	switch e.Classification {
	case MissingFromReference:
		return fmt.Sprintf("%s: %s", e.Key, e.Source)
	case MissingFromSource:
		return fmt.Sprintf("%s: %s", e.Key, e.Reference)
	default:
		return fmt.Sprintf("%s\n  CLDR: %s\n  Mozilla: %s", e.Key, e.Reference, e.Source)
	}
}

// Totals summarizes the entries of one category.
type Totals struct {
	// Total is the number of product keys compared.
	Total int `json:"total" yaml:"total"`
	// Differences counts Different entries only; tolerated variants are
	// not differences.
	Differences int `json:"differences" yaml:"differences"`
	// Percent is Differences/Total*100 rounded to two decimals, 0 for an
	// empty category.
	Percent float64 `json:"percent" yaml:"percent"`
}

// Summarize derives Totals from entries.
func Summarize(entries []Entry) Totals {
	var totals Totals
	for _, e := range entries {
		switch e.Classification {
		case MissingFromSource:
			continue
		case Different:
			totals.Differences++
		}
		totals.Total++
	}
	if totals.Total > 0 {
		totals.Percent = math.Round(float64(totals.Differences)/float64(totals.Total)*100*100) / 100
	}
	return totals
}

// Filter returns the entries with classification c, preserving order.
func Filter(entries []Entry, c Classification) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Classification == c {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have classification c.
func Count(entries []Entry, c Classification) int {
	n := 0
	for _, e := range entries {
		if e.Classification == c {
			n++
		}
	}
	return n
}
