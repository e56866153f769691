package locales_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flodolo/moz-cldr-data/pkg/locales"
)

func testOverrides() *locales.OverrideTable {
	return locales.NewOverrideTable(map[string]string{
		"en-US":     "en",
		"es-ES":     "es",
		"ja-JP-mac": "ja",
		"pt-BR":     "pt",
		"zh-CN":     "zh-Hans",
		"zh-TW":     "zh-Hant",
	})
}

func TestResolve(t *testing.T) {
	mapper := locales.NewMapper(testOverrides())

	tests := []struct {
		locale locales.ID
		want   locales.ReferenceID
	}{
		{"zh-CN", "zh-Hans"},
		{"pt-BR", "pt"},
		{"en-US", "en"},
		{"ja-JP-mac", "ja"},
		{"it", "it"},
		{"pt-PT", "pt-PT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.Resolve(tt.locale))
		})
	}
}

func TestResolveWithNilOverrides(t *testing.T) {
	mapper := locales.NewMapper(nil)
	assert.Equal(t, locales.ReferenceID("zh-CN"), mapper.Resolve("zh-CN"))
}

func TestResolveWithFallback(t *testing.T) {
	mapper := locales.NewMapper(testOverrides())
	supported := locales.NewSet("en", "it", "pt", "pt-PT", "zh-Hans", "sr")

	tests := []struct {
		name   string
		locale locales.ID
		want   locales.ReferenceID
		ok     bool
	}{
		{"override", "zh-CN", "zh-Hans", true},
		{"identity", "it", "it", true},
		{"exact regional", "pt-PT", "pt-PT", true},
		{"primary subtag fallback", "sr-Latn", "sr", true},
		{"override missing from set", "zh-TW", locales.NotFound, false},
		{"unknown", "xx-YY", locales.NotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapper.ResolveWithFallback(tt.locale, supported)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrimarySubtag(t *testing.T) {
	assert.Equal(t, "ja", locales.PrimarySubtag("ja-JP-mac"))
	assert.Equal(t, "it", locales.PrimarySubtag("it"))
	assert.Equal(t, "", locales.PrimarySubtag(""))
	assert.Equal(t, "sr", locales.ID("sr-Latn").Primary())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "en-US (en)", locales.Label("en-US", "en"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Italian", locales.DisplayName("it"))
	assert.Contains(t, locales.DisplayName("ja-JP-mac"), "Japanese")
	assert.Equal(t, "", locales.DisplayName("!!"))
}

func TestSet(t *testing.T) {
	set := locales.NewSet("it", "de", "en")
	assert.True(t, set.Has("de"))
	assert.False(t, set.Has("fr"))
	assert.Equal(t, []locales.ReferenceID{"de", "en", "it"}, set.Sorted())

	ids := []locales.ID{"it", "de", "ach"}
	locales.Sort(ids)
	assert.Equal(t, []locales.ID{"ach", "de", "it"}, ids)
}

func TestOverrideTableIsACopy(t *testing.T) {
	source := map[string]string{"en-US": "en"}
	table := locales.NewOverrideTable(source)
	source["en-US"] = "fr"

	ref, ok := table.Lookup("en-US")
	require.True(t, ok)
	assert.Equal(t, locales.ReferenceID("en"), ref)

	entries := table.Entries()
	entries["en-US"] = "de"
	ref, _ = table.Lookup("en-US")
	assert.Equal(t, locales.ReferenceID("en"), ref)
	assert.Equal(t, 1, table.Len())
}

func TestSeedList(t *testing.T) {
	seeds, err := locales.ParseSeedList(strings.NewReader("# seed pool\nmai\n\nwo\n  sat  \n"))
	require.NoError(t, err)

	assert.Equal(t, 3, seeds.Len())
	assert.Equal(t, []string{"mai", "sat", "wo"}, seeds.Tokens())

	assert.Equal(t, "available in seed", seeds.Annotate("mai"))
	assert.Equal(t, "available in seed as wo", seeds.Annotate("wo-SN"))
	assert.Equal(t, "", seeds.Annotate("xx"))

	var empty *locales.SeedList
	assert.False(t, empty.Contains("mai"))
	assert.Equal(t, "", empty.Annotate("mai"))
}
