package compare

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mozcldr "github.com/flodolo/moz-cldr-data"
	"github.com/flodolo/moz-cldr-data/internal/cmd/application"
	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/plurals"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
)

type fakeClient struct {
	result *reconciler.Result
	err    error
	ids    []locales.ID
}

func (f *fakeClient) Compare(_ context.Context, ids ...locales.ID) (*reconciler.Result, error) {
	f.ids = ids
	return f.result, f.err
}

func (f *fakeClient) Plurals(context.Context, ...locales.ID) ([]plurals.Mismatch, error) {
	return nil, nil
}

func (f *fakeClient) Locales(context.Context) ([]mozcldr.LocaleStatus, error) {
	return nil, nil
}

func (f *fakeClient) Tables() *mozcldr.Tables { return nil }

func testResult() *reconciler.Result {
	result := reconciler.NewResult()
	result.Reports = []*reconciler.LocaleReport{{
		Locale:    "it",
		Reference: "it",
		Languages: []differ.Entry{
			{Key: "fr", Source: "francese antico", Reference: "francese", Classification: differ.Different},
			{Key: "de", Source: "tedesco", Reference: "tedesco", Classification: differ.Match},
		},
	}}
	return result
}

func execute(t *testing.T, app *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareWritesReportAndCSV(t *testing.T) {
	client := &fakeClient{result: testResult()}
	csvPath := filepath.Join(t.TempDir(), "summary.csv")
	app := &application.Mock{
		ClientFunc: func(opts ...mozcldr.Option) (mozcldr.Client, error) {
			assert.Empty(t, opts)
			return client, nil
		},
		CSVOutputFunc: func() string { return csvPath },
		NoColorValue:  true,
	}

	out, err := execute(t, app, "--locale", "it,fr")
	require.NoError(t, err)

	assert.Equal(t, []locales.ID{"it", "fr"}, client.ids)
	assert.Contains(t, out, "== it (it) ==")
	assert.Contains(t, out, "Mozilla: francese antico")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "it (it),2,1,50.0,0,0,0", lines[2])
}

func TestCompareFlagsBecomeClientOptions(t *testing.T) {
	var got int
	app := &application.Mock{
		ClientFunc: func(opts ...mozcldr.Option) (mozcldr.Client, error) {
			got = len(opts)
			return &fakeClient{result: testResult()}, nil
		},
	}

	_, err := execute(t, app, "--concurrency", "4", "--no-baseline", "--csv", "")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCompareJSON(t *testing.T) {
	app := &application.Mock{
		ClientFunc: func(...mozcldr.Option) (mozcldr.Client, error) {
			return &fakeClient{result: testResult()}, nil
		},
		OutputFormatFunc: func() string { return "json" },
	}

	out, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, `"classification": "different"`)
}

func TestCompareBaselineFailure(t *testing.T) {
	app := &application.Mock{
		ClientFunc: func(...mozcldr.Option) (mozcldr.Client, error) {
			return &fakeClient{err: errors.WrapBaseline("Language Names", errors.ErrNotFound)}, nil
		},
	}

	_, err := execute(t, app)
	require.Error(t, err)
	assert.True(t, errors.IsBaseline(err))
}
