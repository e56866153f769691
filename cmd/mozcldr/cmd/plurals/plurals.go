// Package plurals implements the plurals command.
package plurals

import (
	"github.com/spf13/cobra"

	"github.com/flodolo/moz-cldr-data/cmd/application"
	"github.com/flodolo/moz-cldr-data/internal/cmd/globals"
	"github.com/flodolo/moz-cldr-data/internal/cmd/output"
	"github.com/flodolo/moz-cldr-data/internal/cmd/table"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
)

// NewCommand creates the plurals command.
func NewCommand(app application.Application) *cobra.Command {
	var localeFlags *globals.LocaleFlags

	cmd := &cobra.Command{
		Use:   "plurals",
		Short: "Compare plural categories with CLDR",
		Long: `Compare the plural categories the product declares for each locale
with the CLDR plural rules. Locales missing from either side are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			client, err := app.Client()
			if err != nil {
				return err
			}
			mismatches, err := client.Plurals(ctx, localeFlags.IDs()...)
			if err != nil {
				return err
			}

			if !globals.Parse(cmd).Quiet {
				logging.FromContext(ctx).Info().Msgf("Found %d plural mismatches", len(mismatches))
			}

			format := output.DetectFormat(app.OutputFormat())
			var data any = mismatches
			if format == output.FormatTable || format == output.FormatMarkdown {
				data = table.MismatchesToTableData(mismatches)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
	localeFlags = globals.AddLocaleFlags(cmd)

	return cmd
}
