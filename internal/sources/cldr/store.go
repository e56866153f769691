// Package cldr reads display names and plural rules from the CLDR JSON
// distribution (cldr-localenames-full and cldr-core).
package cldr

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/plurals"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// pluralRulePrefix prefixes category names in plurals.json keys.
const pluralRulePrefix = "pluralRule-count-"

// Store reads CLDR data from disk.
type Store struct {
	mainDir     string
	pluralsPath string
}

// New returns a Store reading locale data from mainDir (the "main"
// directory of cldr-localenames-full) and plural rules from pluralsPath
// (supplemental/plurals.json of cldr-core).
func New(mainDir, pluralsPath string) *Store {
	return &Store{mainDir: mainDir, pluralsPath: pluralsPath}
}

// Supported lists the locale directories under the main directory.
func (s *Store) Supported(ctx context.Context) (locales.Set, error) {
	entries, err := os.ReadDir(s.mainDir)
	if err != nil {
		return nil, errors.WrapIO("read", s.mainDir, err)
	}
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			codes = append(codes, entry.Name())
		}
	}
	logging.FromContext(ctx).Debug().
		Str("path", s.mainDir).
		Int("locales", len(codes)).
		Msg("Listed CLDR locales")
	return locales.NewSet(codes...), nil
}

// fileFor returns the JSON file and the localeDisplayNames field holding
// category c.
func fileFor(c terms.Category) (string, string, error) {
	switch c {
	case terms.Languages:
		return "languages.json", "languages", nil
	case terms.Regions:
		return "territories.json", "territories", nil
	default:
		return "", "", errors.NewValidationError("category", c, "no CLDR file for category")
	}
}

// localeNames mirrors main/<locale>/{languages,territories}.json.
type localeNames struct {
	Main map[string]struct {
		LocaleDisplayNames map[string]map[string]string `json:"localeDisplayNames"`
	} `json:"main"`
}

// Terms returns the display names of category c for locale id.
func (s *Store) Terms(ctx context.Context, id locales.ReferenceID, c terms.Category) (map[string]string, error) {
	file, field, err := fileFor(c)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(s.mainDir, id.String(), file)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("CLDR "+file, id.String())
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var doc localeNames
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	names, ok := doc.Main[id.String()].LocaleDisplayNames[field]
	if !ok {
		return nil, errors.NewParseError("json", path, "missing main."+id.String()+".localeDisplayNames."+field, nil)
	}

	logging.FromContext(ctx).Debug().
		Str("locale", id.String()).
		Str("category", c.String()).
		Int("terms", len(names)).
		Msg("Loaded CLDR names")
	return names, nil
}

// supplementalPlurals mirrors supplemental/plurals.json.
type supplementalPlurals struct {
	Supplemental struct {
		Cardinal map[string]map[string]string `json:"plurals-type-cardinal"`
	} `json:"supplemental"`
}

// Plurals returns the cardinal plural categories of every CLDR locale, in
// canonical order.
func (s *Store) Plurals(ctx context.Context) (plurals.Table, error) {
	data, err := os.ReadFile(s.pluralsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("CLDR plurals", s.pluralsPath)
		}
		return nil, errors.WrapIO("read", s.pluralsPath, err)
	}

	var doc supplementalPlurals
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", s.pluralsPath, err)
	}
	if doc.Supplemental.Cardinal == nil {
		return nil, errors.NewParseError("json", s.pluralsPath, "missing supplemental.plurals-type-cardinal", nil)
	}

	table := make(plurals.Table, len(doc.Supplemental.Cardinal))
	for code, rules := range doc.Supplemental.Cardinal {
		categories := make([]string, 0, len(rules))
		for key := range rules {
			if category, ok := strings.CutPrefix(key, pluralRulePrefix); ok {
				categories = append(categories, category)
			}
		}
		table[code] = plurals.Canonical(categories)
	}

	logging.FromContext(ctx).Debug().Int("locales", len(table)).Msg("Loaded CLDR plural rules")
	return table, nil
}
