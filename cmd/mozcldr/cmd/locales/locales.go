// Package locales implements the locales command.
package locales

import (
	"github.com/spf13/cobra"

	"github.com/flodolo/moz-cldr-data/cmd/application"
	"github.com/flodolo/moz-cldr-data/internal/cmd/output"
	"github.com/flodolo/moz-cldr-data/internal/cmd/table"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
)

// NewCommand creates the locales command.
func NewCommand(app application.Application) *cobra.Command {
	var unsupportedOnly bool

	cmd := &cobra.Command{
		Use:     "locales",
		Aliases: []string{"locale", "ls"},
		Short:   "List product locales and their CLDR equivalent",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			client, err := app.Client()
			if err != nil {
				return err
			}
			statuses, err := client.Locales(ctx)
			if err != nil {
				return err
			}
			if unsupportedOnly {
				filtered := statuses[:0]
				for _, s := range statuses {
					if !s.Supported {
						filtered = append(filtered, s)
					}
				}
				statuses = filtered
			}

			format := output.DetectFormat(app.OutputFormat())
			var data any = statuses
			if format == output.FormatTable || format == output.FormatMarkdown {
				data = table.LocalesToTableData(statuses)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().BoolVar(&unsupportedOnly, "unsupported", false, "only list locales CLDR does not cover")

	return cmd
}
