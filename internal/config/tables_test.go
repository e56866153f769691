package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flodolo/moz-cldr-data/internal/config"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/equivalence"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

func TestLoadTablesEmbedded(t *testing.T) {
	tables, err := config.LoadTables(config.TableFiles{}, config.TableOverlay{})
	require.NoError(t, err)

	mapper := locales.NewMapper(tables.Overrides)
	assert.Equal(t, locales.ReferenceID("zh-Hans"), mapper.Resolve("zh-CN"))
	assert.Equal(t, locales.ReferenceID("pt"), mapper.Resolve("pt-BR"))
	assert.Equal(t, locales.ReferenceID("en"), mapper.Resolve("en-US"))
	assert.Equal(t, locales.ReferenceID("ja"), mapper.Resolve("ja-JP-mac"))
	assert.Equal(t, 17, tables.Overrides.Len())

	assert.True(t, tables.Seeds.Contains("kab"))
	assert.Equal(t, "available in seed as kab", tables.Seeds.Annotate("kab-DZ"))

	categories, ok := tables.Plurals.Categories("ga-IE")
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two", "few", "many", "other"}, categories)

	ok, names := tables.Rules.Equivalent(terms.Regions, "Antigua and Barbuda", "Antigua & Barbuda")
	assert.True(t, ok)
	assert.Equal(t, []string{"ampersand"}, names)
	assert.True(t, tables.Rules.AreEquivalent(terms.Regions, "Saint Lucia", "St. Lucia"))
	assert.True(t, tables.Rules.Folds(terms.Languages))
}

func TestLoadTablesOverlay(t *testing.T) {
	tables, err := config.LoadTables(config.TableFiles{}, config.TableOverlay{
		Overrides:   map[string]string{"es-ES": "es-419", "sr-Latn": "sr-Latn-RS"},
		RegionRules: []equivalence.Substitution{{RuleName: "and-sign", From: "and", To: "+"}},
	})
	require.NoError(t, err)

	ref, ok := tables.Overrides.Lookup("es-ES")
	require.True(t, ok)
	assert.Equal(t, locales.ReferenceID("es-419"), ref)
	assert.Equal(t, 18, tables.Overrides.Len())

	rules := tables.Rules.Rules(terms.Regions)
	require.Len(t, rules, 3)
	assert.Equal(t, "and-sign", rules[2].Name())
}

func TestLoadTablesFromFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tables, err := config.LoadTables(config.TableFiles{
		Overrides: write("overrides.yaml", "de-CH: de\n"),
		Seeds:     write("seeds.txt", "# seeds\nxx\n\n"),
		Plurals:   write("plurals.yaml", "de-CH: [other, one]\n"),
		Rules:     write("rules.yaml", "language: []\nregions:\n  - from: '-'\n    to: ' '\n"),
	}, config.TableOverlay{})
	require.NoError(t, err)

	assert.Equal(t, 1, tables.Overrides.Len())
	assert.Equal(t, []string{"xx"}, tables.Seeds.Tokens())
	assert.Equal(t, []string{"one", "other"}, tables.Plurals["de-CH"])

	rules := tables.Rules.Rules(terms.Regions)
	require.Len(t, rules, 1)
	assert.Equal(t, "-= ", rules[0].Name())
	assert.False(t, tables.Rules.AreEquivalent(terms.Regions, "Antigua and Barbuda", "Antigua & Barbuda"))
}

func TestLoadTablesErrors(t *testing.T) {
	_, err := config.LoadTables(config.TableFiles{Overrides: filepath.Join(t.TempDir(), "missing.yaml")}, config.TableOverlay{})
	require.Error(t, err)

	_, err = config.ParseOverrides([]byte("de-CH: ''\n"), nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = config.ParsePlurals([]byte("de: []\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = config.ParsePlurals([]byte("de: [one\n"))
	require.Error(t, err)

	_, err = config.ParseRules([]byte("scripts: []\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = config.ParseRules([]byte("region:\n  - to: x\n"))
	assert.True(t, errors.IsValidationError(err))
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	assert.Equal(t, constants.DefaultCLDRPath, v.GetString(config.KeyCLDRPath))
	assert.Equal(t, constants.DefaultLanguageNamesURL, v.GetString(config.KeyLanguageURL))
	assert.Equal(t, "en", v.GetString(config.KeyReferenceLocale))
	assert.Equal(t, 1, v.GetInt(config.KeyConcurrency))
}

func TestGetString(t *testing.T) {
	v := viper.New()
	t.Setenv("MOZCLDR_TEST_VALUE", "from-env")
	assert.Equal(t, "from-env", config.GetString(v, "MOZCLDR_TEST_VALUE"))

	v.Set("MOZCLDR_TEST_VALUE", "from-viper")
	assert.Equal(t, "from-viper", config.GetString(v, "MOZCLDR_TEST_VALUE"))
}
