// Package table converts reports into rows for tabular output.
package table

import (
	"strconv"
	"strings"

	mozcldr "github.com/flodolo/moz-cldr-data"
	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/plurals"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// ReportsToTableData builds the per-locale summary table.
func ReportsToTableData(reports []*reconciler.LocaleReport) Data {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		row := []string{r.Label()}
		for _, c := range terms.Categories() {
			row = append(row, TotalsCells(r, c)...)
		}
		rows = append(rows, row)
	}
	return Data{
		Headers: []string{
			"Locale (CLDR)",
			"Languages", "Differences", "%",
			"Regions", "Differences", "%",
		},
		Rows: rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignRight, AlignRight, AlignRight,
			AlignRight, AlignRight, AlignRight,
		},
	}
}

// TotalsCells returns total, differences and percentage for category c.
func TotalsCells(r *reconciler.LocaleReport, c terms.Category) []string {
	t := r.Totals(c)
	return []string{
		strconv.Itoa(t.Total),
		strconv.Itoa(t.Differences),
		FormatPercent(t),
	}
}

// FormatPercent prints the percentage of t with at most two decimals.
// An empty category prints "0"; any other value keeps one decimal
// ("0.0", "50.0", "33.33") so exported rows match the legacy CSV.
func FormatPercent(t differ.Totals) string {
	if t.Total == 0 {
		return "0"
	}
	s := strconv.FormatFloat(t.Percent, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// DifferencesToTableData lists Different entries of one category.
func DifferencesToTableData(entries []differ.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{string(e.Key), e.Reference, e.Source})
	}
	return Data{
		Headers: []string{"Key", "CLDR", "Mozilla"},
		Rows:    rows,
	}
}

// MismatchesToTableData lists plural category mismatches.
func MismatchesToTableData(mismatches []plurals.Mismatch) Data {
	rows := make([][]string, 0, len(mismatches))
	for _, m := range mismatches {
		rows = append(rows, []string{
			string(m.Locale),
			m.Matched,
			strings.Join(m.Source, ", "),
			strings.Join(m.Reference, ", "),
		})
	}
	return Data{
		Headers: []string{"Locale", "Matched", "Mozilla", "CLDR"},
		Rows:    rows,
	}
}

// LocalesToTableData lists product locales and how they map onto CLDR.
func LocalesToTableData(statuses []mozcldr.LocaleStatus) Data {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		resolved := string(s.Resolved)
		if resolved == "" {
			resolved = "-"
		}
		name := s.Name
		if name == "" {
			name = "-"
		}
		rows = append(rows, []string{
			string(s.Locale),
			name,
			string(s.Reference),
			resolved,
			yesNo(s.Supported),
			yesNo(s.Overridden),
			s.Annotation,
		})
	}
	return Data{
		Headers: []string{"Locale", "Name", "Reference", "Resolved", "Supported", "Override", "Note"},
		Rows:    rows,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
