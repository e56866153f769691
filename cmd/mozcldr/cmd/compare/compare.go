// Package compare implements the compare command.
package compare

import (
	"io"

	"github.com/spf13/cobra"

	mozcldr "github.com/flodolo/moz-cldr-data"
	"github.com/flodolo/moz-cldr-data/cmd/application"
	"github.com/flodolo/moz-cldr-data/internal/cmd/globals"
	"github.com/flodolo/moz-cldr-data/internal/cmd/output"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
)

// Flags holds the compare command flags.
type Flags struct {
	CSV         string
	Concurrency int
	NoBaseline  bool
	Locales     *globals.LocaleFlags
}

// NewCommand creates the compare command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare language and region names with CLDR",
		Long: `Compare the en-US baseline and every product locale with the matching
CLDR locale. Differences are listed per locale, followed by a summary
table. The summary is also written as CSV.`,
		Args: cobra.NoArgs,
		Example: `  mozcldr compare                        # compare every locale
  mozcldr compare -l it,fr --csv it-fr.csv
  mozcldr compare --no-baseline -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.CSV, "csv", "", "write the summary CSV to this path (default from config, empty to skip)")
	cmd.Flags().IntVar(&flags.Concurrency, "concurrency", 0, "locales compared at once")
	cmd.Flags().BoolVar(&flags.NoBaseline, "no-baseline", false, "skip the en-US baseline check")
	flags.Locales = globals.AddLocaleFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	logger := logging.FromContext(ctx)

	var opts []mozcldr.Option
	if cmd.Flags().Changed("concurrency") {
		opts = append(opts, mozcldr.WithConcurrency(flags.Concurrency))
	}
	if flags.NoBaseline {
		opts = append(opts, mozcldr.WithBaseline(false))
	}

	client, err := app.Client(opts...)
	if err != nil {
		return err
	}

	result, err := client.Compare(ctx, flags.Locales.IDs()...)
	if err != nil {
		return err
	}

	csvPath := app.CSVOutput()
	if cmd.Flags().Changed("csv") {
		csvPath = flags.CSV
	}
	if csvPath != "" {
		if err := output.WriteCSVFile(csvPath, result.Rows()); err != nil {
			return err
		}
		logger.Debug().Str("path", csvPath).Int("rows", len(result.Rows())).Msg("Wrote summary CSV")
	}

	if !globals.Parse(cmd).Quiet {
		logger.Info().
			Int("locales", len(result.Reports)).
			Int("unsupported", len(result.Unsupported)).
			Int("issues", len(result.Issues)).
			Msg("Comparison finished")
	}

	return render(cmd.OutOrStdout(), app, result)
}

func render(w io.Writer, app application.Application, result *reconciler.Result) error {
	switch format := output.DetectFormat(app.OutputFormat()); format {
	case output.FormatTable:
		return output.WriteReport(w, result, app.NoColor())
	case output.FormatMarkdown:
		return output.WriteMarkdownReport(w, result)
	default:
		return output.NewFormatter(format).Format(w, result)
	}
}
