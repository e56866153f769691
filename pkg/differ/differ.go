package differ

import (
	"sort"

	"github.com/flodolo/moz-cldr-data/pkg/equivalence"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Differ classifies product terms against reference terms.
type Differ interface {
	// Compare classifies every key of source against reference for the
	// given category. Output is sorted ascending by key.
	//
	// Keys present only in reference are not reported: the comparison
	// measures how well the product's declared set matches, not a full
	// symmetric diff. WithReferenceOnly opts into reporting them.
	Compare(source, reference terms.Map, category terms.Category) []Entry
}

// differ is the default implementation of Differ.
type differ struct {
	rules         *equivalence.RuleSet
	referenceOnly bool
}

// New creates a Differ with the default equivalence rules.
func New(opts ...Option) Differ {
	d := &differ{
		rules: equivalence.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Compare implements Differ.
func (diff *differ) Compare(source, reference terms.Map, category terms.Category) []Entry {
	entries := make([]Entry, 0, len(source))

	for _, key := range source.Keys() {
		value := source[key]
		refValue, ok := reference[key]
		if !ok {
			entries = append(entries, Entry{
				Key:            key,
				Source:         value,
				Classification: MissingFromReference,
			})
			continue
		}
		entries = append(entries, diff.classify(key, value, refValue, category))
	}

	if diff.referenceOnly {
		for _, key := range reference.Keys() {
			if source.Has(key) {
				continue
			}
			entries = append(entries, Entry{
				Key:            key,
				Reference:      reference[key],
				Classification: MissingFromSource,
			})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	}

	return entries
}

// classify compares a pair present on both sides.
func (diff *differ) classify(key terms.Key, value, refValue string, category terms.Category) Entry {
	entry := Entry{Key: key, Source: value, Reference: refValue}

	if diff.rules.Prepare(category, value) == diff.rules.Prepare(category, refValue) {
		entry.Classification = Match
		return entry
	}

	if ok, names := diff.rules.Equivalent(category, value, refValue); ok {
		entry.Classification = ToleratedVariant
		entry.Rules = names
		return entry
	}

	entry.Classification = Different
	return entry
}
