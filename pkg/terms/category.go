// Package terms extracts normalized term maps from raw localization entries.
//
// A term is a nameable entity (a language or a region). Product files
// decorate their keys ("language-name-mk-2022"); the reference source uses
// flat codes ("mk"). Normalize bridges the two.
package terms

import (
	"fmt"
	"strings"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
)

// Category identifies which kind of term a map holds.
type Category string

const (
	// Languages holds language display names.
	Languages Category = "language"
	// Regions holds region (territory) display names.
	Regions Category = "region"
)

// Categories returns all categories in report order.
func Categories() []Category {
	return []Category{Languages, Regions}
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }

// Prefix returns the key decoration used by product files for c.
func (c Category) Prefix() string {
	return string(c) + "-name-"
}

// Title returns the heading used in reports ("Language Names").
func (c Category) Title() string {
	switch c {
	case Languages:
		return "Language Names"
	case Regions:
		return "Region Names"
	default:
		return string(c)
	}
}

// ParseCategory converts a string (case-insensitive, singular or plural) to
// a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "s")) {
	case "language":
		return Languages, nil
	case "region":
		return Regions, nil
	default:
		return "", errors.NewValidationError("category", s, fmt.Sprintf("unknown category %q", s))
	}
}
