package terms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw      string
		category terms.Category
		want     terms.Key
	}{
		{"language-name-it", terms.Languages, "it"},
		{"language-name-mk-2022", terms.Languages, "mk"},
		{"language-name-zh-hant", terms.Languages, "zh"},
		{"it", terms.Languages, "it"},
		{"region-name-fr", terms.Regions, "FR"},
		{"region-name-us-2", terms.Regions, "US"},
		{"fr", terms.Regions, "FR"},
		{"FR", terms.Regions, "FR"},
		// The prefix of the other category is not stripped.
		{"region-name-fr", terms.Languages, "region"},
	}

	for _, tt := range tests {
		t.Run(tt.raw+"/"+string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, terms.Normalize(tt.raw, tt.category))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raws := []string{"language-name-it", "language-name-mk-2022", "region-name-fr", "region-name-gb-2"}
	for _, c := range terms.Categories() {
		for _, raw := range raws {
			once := terms.Normalize(raw, c)
			assert.Equal(t, once, terms.Normalize(string(once), c), "raw %q category %s", raw, c)
		}
	}
}

func TestExtract(t *testing.T) {
	entries := []terms.Entry{
		{Key: "language-name-mk", Value: "Macedonian"},
		{Key: "language-name-it", Value: "Italian"},
		{Key: "language-name-mk-2022", Value: "North Macedonian"},
		{Key: "language-name-de", Value: "German"},
		{Key: "language-name-de-1996", Value: "German"},
		{Key: "language-name-", Value: "Nothing"},
	}

	out := terms.Extract(entries, terms.Languages)

	assert.Equal(t, terms.Map{
		"mk": "North Macedonian",
		"it": "Italian",
		"de": "German",
	}, out.Terms)

	require.Len(t, out.Collisions, 1)
	assert.Equal(t, terms.Collision{
		Key:      "mk",
		RawKey:   "language-name-mk-2022",
		Previous: "Macedonian",
		Value:    "North Macedonian",
	}, out.Collisions[0])

	assert.Equal(t, []string{"language-name-"}, out.Dropped)
}

func TestExtractRegions(t *testing.T) {
	out := terms.Extract([]terms.Entry{{Key: "region-name-fr", Value: "France"}}, terms.Regions)
	assert.Equal(t, terms.Map{"FR": "France"}, out.Terms)
	assert.Empty(t, out.Collisions)
}

func TestEntriesFromMapIsSorted(t *testing.T) {
	entries := terms.EntriesFromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "c", entries[2].Key)
}

func TestFromReference(t *testing.T) {
	m := terms.FromReference(map[string]string{"zh-Hans": "Simplified Chinese", "": "skip"})
	assert.Equal(t, terms.Map{"zh-Hans": "Simplified Chinese"}, m)
	assert.True(t, m.Has("zh-Hans"))
}

func TestMapKeys(t *testing.T) {
	m := terms.Map{"it": "", "de": "", "fr": ""}
	assert.Equal(t, []terms.Key{"de", "fr", "it"}, m.Keys())
}

func TestParseCategory(t *testing.T) {
	c, err := terms.ParseCategory("Languages")
	require.NoError(t, err)
	assert.Equal(t, terms.Languages, c)

	c, err = terms.ParseCategory("region")
	require.NoError(t, err)
	assert.Equal(t, terms.Regions, c)
	assert.Equal(t, "Region Names", c.Title())
	assert.Equal(t, "region-name-", c.Prefix())

	_, err = terms.ParseCategory("scripts")
	assert.True(t, errors.IsValidationError(err))
}
