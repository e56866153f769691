package output

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/flodolo/moz-cldr-data/internal/cmd/table"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// csvHeader is written before the rows. The first row groups the columns
// by category.
var csvHeader = [][]string{
	{"", terms.Languages.Title(), "", "", terms.Regions.Title()},
	{"Locale (CLDR)", "Total", "Differences", "%", "Total", "Differences", "%"},
}

// WriteCSV writes one summary row per report, sorted by label.
func WriteCSV(w io.Writer, reports []*reconciler.LocaleReport) error {
	sorted := make([]*reconciler.LocaleReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Label() < sorted[j].Label()
	})

	records := make([][]string, 0, len(csvHeader)+len(sorted))
	records = append(records, csvHeader...)
	for _, r := range sorted {
		row := []string{r.Label()}
		for _, c := range terms.Categories() {
			row = append(row, table.TotalsCells(r, c)...)
		}
		records = append(records, row)
	}

	cw := csv.NewWriter(w)
	return cw.WriteAll(records)
}

// WriteCSVFile writes the summary CSV to path, replacing any existing file.
func WriteCSVFile(path string, reports []*reconciler.LocaleReport) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := WriteCSV(f, reports); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
