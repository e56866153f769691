package output

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/flodolo/moz-cldr-data/internal/cmd/alerts"
	"github.com/flodolo/moz-cldr-data/internal/cmd/table"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// MissingLanguageNamesTitle heads the list of locales without a product
// language name.
const MissingLanguageNamesTitle = "Missing locales in languageNames.ftl"

var issueTitles = map[reconciler.IssueKind]string{
	reconciler.UnresolvedLocale: "Locales not available in CLDR",
	reconciler.MissingCategory:  "Category files not available",
	reconciler.MalformedEntry:   "Malformed entries skipped",
	reconciler.KeyCollision:     "Keys normalized onto the same term",
}

// IssueTitle returns the heading used for kind.
func IssueTitle(kind reconciler.IssueKind) string {
	if title, ok := issueTitles[kind]; ok {
		return title
	}
	return string(kind)
}

// issueAlerts groups the recovered issues of result by kind. Unresolved
// locales are listed with their seed annotation.
func issueAlerts(result *reconciler.Result) []*alerts.Alert {
	var out []*alerts.Alert
	grouped := result.IssuesByKind()
	for _, kind := range reconciler.IssueKinds() {
		var details []string
		if kind == reconciler.UnresolvedLocale {
			for _, u := range result.Unsupported {
				details = append(details, u.String())
			}
		} else {
			for _, issue := range grouped[kind] {
				details = append(details, issue.Message)
			}
		}
		if len(details) == 0 {
			continue
		}
		level := alerts.LevelWarning
		if kind == reconciler.UnresolvedLocale {
			level = alerts.LevelInfo
		}
		title := fmt.Sprintf("%s (%d)", IssueTitle(kind), len(details))
		out = append(out, alerts.New(level, title).WithDetails(details...))
	}
	if len(result.MissingLanguageNames) > 0 {
		out = append(out, alerts.NewInfo(MissingLanguageNamesTitle).
			WithDetails(idStrings(result.MissingLanguageNames)...))
	}
	return out
}

// WriteReport writes the console report of a comparison: issue lists,
// the differences of every locale, then the summary table.
func WriteReport(w io.Writer, result *reconciler.Result, noColor bool) error {
	aw := alerts.NewWriter(w, noColor)
	if err := aw.WriteAll(issueAlerts(result)...); err != nil {
		return err
	}

	for _, report := range result.Rows() {
		if err := writeDifferences(w, report); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := NewFormatter(FormatTable).Format(w, table.ReportsToTableData(result.Rows())); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, result.Summary())
	return err
}

func writeDifferences(w io.Writer, report *reconciler.LocaleReport) error {
	printed := false
	for _, c := range terms.Categories() {
		diffs := report.Differences(c)
		if len(diffs) == 0 {
			continue
		}
		if !printed {
			if _, err := fmt.Fprintf(w, "\n== %s ==\n", report.Label()); err != nil {
				return err
			}
			printed = true
		}
		if _, err := fmt.Fprintf(w, "\nDifferent values (%s):\n", c.Title()); err != nil {
			return err
		}
		for _, e := range diffs {
			if _, err := fmt.Fprintln(w, e.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteMarkdownReport writes the comparison as a markdown document.
func WriteMarkdownReport(w io.Writer, result *reconciler.Result) error {
	doc := md.NewMarkdown(w).
		H1("Language and region names compared with CLDR").
		PlainText(result.Summary()).
		LF()

	for _, alert := range issueAlerts(result) {
		doc.H2(alert.Message).BulletList(alert.Details...)
	}

	summary := table.ReportsToTableData(result.Rows())
	doc.H2("Summary").Table(md.TableSet{Header: summary.Headers, Rows: summary.Rows})

	for _, report := range result.Rows() {
		written := false
		for _, c := range terms.Categories() {
			diffs := report.Differences(c)
			if len(diffs) == 0 {
				continue
			}
			if !written {
				doc.H2(report.Label())
				written = true
			}
			data := table.DifferencesToTableData(diffs)
			doc.H3(c.Title()).Table(md.TableSet{Header: data.Headers, Rows: data.Rows})
		}
	}
	return doc.Build()
}

func idStrings(ids []locales.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
