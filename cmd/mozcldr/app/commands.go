package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flodolo/moz-cldr-data/cmd/mozcldr/cmd/compare"
	"github.com/flodolo/moz-cldr-data/cmd/mozcldr/cmd/locales"
	"github.com/flodolo/moz-cldr-data/cmd/mozcldr/cmd/plurals"
)

// NewCompareCommand creates the compare command.
func (a *App) NewCompareCommand() *cobra.Command {
	return compare.NewCommand(a)
}

// NewPluralsCommand creates the plurals command.
func (a *App) NewPluralsCommand() *cobra.Command {
	return plurals.NewCommand(a)
}

// NewLocalesCommand creates the locales command.
func (a *App) NewLocalesCommand() *cobra.Command {
	return locales.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("mozcldr %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
