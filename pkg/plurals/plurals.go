// Package plurals cross-checks the plural categories a product declares
// for each locale against the reference cardinal plural rules.
package plurals

import (
	"sort"
	"strings"

	"github.com/flodolo/moz-cldr-data/pkg/locales"
)

// Canonical category names, in reference order.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

var rank = map[string]int{Zero: 0, One: 1, Two: 2, Few: 3, Many: 4, Other: 5}

// Canonical returns a sorted copy of categories: known names in reference
// order, unknown names after them alphabetically.
func Canonical(categories []string) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i]]
		rj, jok := rank[out[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return out[i] < out[j]
		}
	})
	return out
}

// Equal reports whether a and b hold the same categories, ignoring order.
// Duplicates count, so {one, other} differs from {one, one, other}.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := Canonical(a), Canonical(b)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}

// Lookup returns the plural categories declared for a locale code.
type Lookup interface {
	Categories(code string) ([]string, bool)
}

// Table is an in-memory Lookup.
type Table map[string][]string

// Categories implements Lookup.
func (t Table) Categories(code string) ([]string, bool) {
	categories, ok := t[code]
	return categories, ok
}

// Locales returns the table's locale codes sorted.
func (t Table) Locales() []locales.ID {
	ids := make([]locales.ID, 0, len(t))
	for code := range t {
		ids = append(ids, locales.ID(code))
	}
	locales.Sort(ids)
	return ids
}

// Mismatch is a locale whose product categories differ from the reference.
type Mismatch struct {
	Locale    locales.ID `json:"locale" yaml:"locale"`
	Source    []string   `json:"source" yaml:"source"`
	Reference []string   `json:"reference" yaml:"reference"`

	// Matched is the reference code that resolved: the locale itself or
	// its primary subtag.
	Matched string `json:"matched" yaml:"matched"`
}

// Checker compares product plural categories with reference ones.
type Checker struct {
	source    Lookup
	reference Lookup
}

// NewChecker returns a Checker over the product and reference lookups.
func NewChecker(source, reference Lookup) *Checker {
	return &Checker{source: source, reference: reference}
}

// Check returns the mismatches for ids, in input order. Locales without a
// product entry, or without a reference entry for either the locale or its
// primary subtag, are not applicable and skipped.
func (c *Checker) Check(ids []locales.ID) []Mismatch {
	var mismatches []Mismatch
	for _, id := range ids {
		source, ok := c.source.Categories(id.String())
		if !ok {
			continue
		}
		reference, matched, ok := c.resolve(id)
		if !ok {
			continue
		}
		if Equal(source, reference) {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Locale:    id,
			Matched:   matched,
			Source:    Canonical(source),
			Reference: Canonical(reference),
		})
	}
	return mismatches
}

func (c *Checker) resolve(id locales.ID) ([]string, string, bool) {
	if categories, ok := c.reference.Categories(id.String()); ok {
		return categories, id.String(), true
	}
	if primary := id.Primary(); primary != id.String() {
		if categories, ok := c.reference.Categories(primary); ok {
			return categories, primary, true
		}
	}
	return nil, "", false
}
