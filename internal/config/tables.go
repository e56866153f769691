package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/flodolo/moz-cldr-data/internal/embedded"
	"github.com/flodolo/moz-cldr-data/pkg/equivalence"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/plurals"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Tables holds the read-only data every component shares. Tables are
// loaded once at startup and never mutated.
type Tables struct {
	Overrides *locales.OverrideTable
	Seeds     *locales.SeedList
	Plurals   plurals.Table
	Rules     *equivalence.RuleSet
}

// TableFiles points at user-supplied replacements for the embedded tables.
// Empty fields keep the embedded data.
type TableFiles struct {
	Overrides string
	Seeds     string
	Plurals   string
	Rules     string
}

// TableOverlay carries values layered on top of the loaded tables.
type TableOverlay struct {
	// Overrides are added to the override table, replacing entries with
	// the same locale.
	Overrides map[string]string
	// RegionRules are appended to the region tolerated-variant rules.
	RegionRules []equivalence.Substitution
}

// LoadTables loads every table from files (or the embedded defaults) and
// applies overlay.
func LoadTables(files TableFiles, overlay TableOverlay) (*Tables, error) {
	overrides, err := readOrEmbedded(files.Overrides, embedded.OverridesFile)
	if err != nil {
		return nil, err
	}
	table, err := ParseOverrides(overrides, overlay.Overrides)
	if err != nil {
		return nil, err
	}

	seedData, err := readOrEmbedded(files.Seeds, embedded.SeedsFile)
	if err != nil {
		return nil, err
	}
	seeds, err := locales.ParseSeedList(bytes.NewReader(seedData))
	if err != nil {
		return nil, errors.WrapParse("text", embeddedName(files.Seeds, embedded.SeedsFile), err)
	}

	pluralData, err := readOrEmbedded(files.Plurals, embedded.PluralsFile)
	if err != nil {
		return nil, err
	}
	pluralTable, err := ParsePlurals(pluralData)
	if err != nil {
		return nil, err
	}

	ruleData, err := readOrEmbedded(files.Rules, embedded.RulesFile)
	if err != nil {
		return nil, err
	}
	rules, err := ParseRules(ruleData, overlay.RegionRules...)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Overrides: table,
		Seeds:     seeds,
		Plurals:   pluralTable,
		Rules:     rules,
	}, nil
}

// ParseOverrides decodes a YAML mapping of product locale to CLDR locale
// and layers extra on top.
func ParseOverrides(data []byte, extra map[string]string) (*locales.OverrideTable, error) {
	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("yaml", "overrides", err)
	}
	for from, to := range extra {
		entries[from] = to
	}
	for from, to := range entries {
		if from == "" || to == "" {
			return nil, errors.NewValidationError("overrides", from, fmt.Sprintf("invalid override %q: %q", from, to))
		}
	}
	return locales.NewOverrideTable(entries), nil
}

// ParsePlurals decodes a YAML mapping of product locale to plural
// categories.
func ParsePlurals(data []byte) (plurals.Table, error) {
	raw := make(map[string][]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", "plurals", err)
	}
	table := make(plurals.Table, len(raw))
	for code, categories := range raw {
		if len(categories) == 0 {
			return nil, errors.NewValidationError("plurals", code, "no plural categories")
		}
		table[code] = plurals.Canonical(categories)
	}
	return table, nil
}

// ParseRules decodes tolerated-variant rules keyed by category name and
// appends extra to the region rules. The decoded rules replace the
// built-in defaults.
func ParseRules(data []byte, extra ...equivalence.Substitution) (*equivalence.RuleSet, error) {
	raw := make(map[string][]equivalence.Substitution)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", "rules", err)
	}

	byCategory := make(map[terms.Category][]equivalence.Substitution, len(raw))
	for name, subs := range raw {
		category, err := terms.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		byCategory[category] = append(byCategory[category], subs...)
	}
	byCategory[terms.Regions] = append(byCategory[terms.Regions], extra...)

	var opts []equivalence.Option
	for _, category := range terms.Categories() {
		for _, sub := range byCategory[category] {
			if sub.From == "" {
				return nil, errors.NewValidationError("tolerated_rules", sub.Name(), "rule has an empty \"from\"")
			}
		}
		opts = append(opts,
			equivalence.WithoutRules(category),
			equivalence.WithSubstitutions(category, byCategory[category]...),
		)
	}
	return equivalence.New(opts...), nil
}

func readOrEmbedded(path, name string) ([]byte, error) {
	if path == "" {
		data, err := embedded.ReadFile(name)
		if err != nil {
			return nil, errors.WrapResource("load", "embedded data", name, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}

func embeddedName(path, name string) string {
	if path != "" {
		return path
	}
	return name
}
