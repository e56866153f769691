// Package locales maps product locale codes onto the CLDR code space.
//
// All string surgery on locale identifiers (splitting on the subtag
// delimiter, extracting the primary subtag) lives here so that no other
// package needs to know how identifiers are shaped.
package locales

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/flodolo/moz-cldr-data/pkg/constants"
)

// ID is a locale code in the product's own convention (e.g. "ja-JP-mac").
type ID string

// ReferenceID is a locale code in the reference (CLDR) convention.
type ReferenceID string

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// String implements fmt.Stringer.
func (id ReferenceID) String() string { return string(id) }

// Primary returns the primary subtag of the locale.
func (id ID) Primary() string {
	return PrimarySubtag(string(id))
}

// PrimarySubtag returns the portion of code before the first delimiter.
func PrimarySubtag(code string) string {
	primary, _, _ := strings.Cut(code, constants.LocaleDelimiter)
	return primary
}

// Label renders "<locale> (<reference>)", the row label used in reports.
func Label(id ID, ref ReferenceID) string {
	return string(id) + " (" + string(ref) + ")"
}

// DisplayName returns the English display name of the locale, falling back
// to the primary subtag when the full code is not valid BCP 47 (for
// instance "ja-JP-mac"). An empty string means no name is known.
func DisplayName(id ID) string {
	namer := display.English.Tags()
	if tag, err := language.Parse(string(id)); err == nil {
		if name := namer.Name(tag); name != "" {
			return name
		}
	}
	if base, err := language.ParseBase(id.Primary()); err == nil {
		return display.English.Languages().Name(base)
	}
	return ""
}

// Set is the set of locales a reference source supports.
type Set map[ReferenceID]struct{}

// NewSet builds a Set from codes.
func NewSet(codes ...string) Set {
	s := make(Set, len(codes))
	for _, code := range codes {
		s[ReferenceID(code)] = struct{}{}
	}
	return s
}

// Has reports whether the reference id is in the set.
func (s Set) Has(id ReferenceID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []ReferenceID {
	out := make([]ReferenceID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sort orders product locale ids ascending in place.
func Sort(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
