package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flodolo/moz-cldr-data/internal/cmd/table"
	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

func entry(key, src, ref string, c differ.Classification) differ.Entry {
	return differ.Entry{Key: terms.Key(key), Source: src, Reference: ref, Classification: c}
}

func testResult() *reconciler.Result {
	result := reconciler.NewResult()
	result.Baseline = &reconciler.LocaleReport{
		Locale:    "en-US",
		Reference: "en",
		Languages: []differ.Entry{
			entry("de", "German", "German", differ.Match),
			entry("fr", "French", "French", differ.Match),
			entry("it", "Italian", "Italian", differ.Match),
		},
		Regions: []differ.Entry{
			entry("AG", "Antigua & Barbuda", "Antigua and Barbuda", differ.ToleratedVariant),
		},
	}
	result.Reports = []*reconciler.LocaleReport{
		{
			Locale:    "it",
			Reference: "it",
			Languages: []differ.Entry{
				entry("de", "Tedesco", "tedesco", differ.Match),
				entry("fr", "francese antico", "francese", differ.Different),
				entry("xx", "Xx", "", differ.MissingFromReference),
			},
			Regions: []differ.Entry{
				entry("DE", "Germania", "Germania", differ.Match),
			},
		},
		{
			Locale:    "ast",
			Reference: "ast",
			Omitted:   []terms.Category{terms.Regions},
			Languages: []differ.Entry{
				entry("de", "alemán", "alemán", differ.Match),
			},
		},
	}
	result.Unsupported = []reconciler.Unsupported{
		{Locale: "ach", Reference: "ach", Annotation: "available in seed"},
	}
	result.MissingLanguageNames = []locales.ID{"ach"}
	result.Issues = []reconciler.Issue{
		{Kind: reconciler.UnresolvedLocale, Locale: "ach", Message: "locale ach is not supported by the reference source"},
		{Kind: reconciler.MissingCategory, Locale: "ast", Category: terms.Regions, Message: "source region file for ast unavailable"},
	}
	return result
}

func TestWriteCSV(t *testing.T) {
	result := testResult()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result.Rows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, ",Language Names,,,Region Names", lines[0])
	assert.Equal(t, "Locale (CLDR),Total,Differences,%,Total,Differences,%", lines[1])
	// sorted by label, baseline included
	assert.Equal(t, "ast (ast),1,0,0.0,0,0,0", lines[2])
	assert.Equal(t, "en-US (en),3,0,0.0,1,0,0.0", lines[3])
	assert.Equal(t, "it (it),3,1,33.33,1,0,0.0", lines[4])
}

func TestWriteCSVFile(t *testing.T) {
	path := t.TempDir() + "/output.csv"
	require.NoError(t, WriteCSVFile(path, testResult().Rows()))

	err := WriteCSVFile(t.TempDir()+"/missing/dir/output.csv", nil)
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, testResult(), true))
	out := buf.String()

	assert.Contains(t, out, "Locales not available in CLDR (1)")
	assert.Contains(t, out, "  ach (available in seed)")
	assert.Contains(t, out, "Category files not available (1)")
	assert.Contains(t, out, MissingLanguageNamesTitle)
	assert.Contains(t, out, "== it (it) ==")
	assert.Contains(t, out, "Different values (Language Names):")
	assert.Contains(t, out, "fr\n  CLDR: francese\n  Mozilla: francese antico")
	assert.NotContains(t, out, "== en-US (en) ==", "baseline has no differences")
	assert.Contains(t, out, "33.33")
	assert.Contains(t, out, "Compared 2 locales")
	assert.NotContains(t, out, "\033[", "no color requested")
}

func TestWriteMarkdownReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdownReport(&buf, testResult()))
	out := buf.String()

	assert.Contains(t, out, "# Language and region names compared with CLDR")
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## it (it)")
	assert.Contains(t, out, "### Language Names")
	assert.Contains(t, out, "francese antico")
	assert.Contains(t, out, "- ach (available in seed)")
}

func TestFormatters(t *testing.T) {
	data := table.Data{
		Headers: []string{"Locale", "Name"},
		Rows:    [][]string{{"it", "Italian"}},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
		assert.Contains(t, buf.String(), "Italian")
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatMarkdown).Format(&buf, data))
		assert.Contains(t, buf.String(), "| it")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]string{"locale": "it"}))
		assert.JSONEq(t, `{"locale":"it"}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]string{"locale": "it"}))
		assert.Equal(t, "locale: it\n", buf.String())
	})

	t.Run("table falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, []string{"it"}))
		assert.JSONEq(t, `["it"]`, buf.String())
	})
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "markdown", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("wide")
	assert.True(t, errors.IsValidationError(err))
}
