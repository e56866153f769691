// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/flodolo/moz-cldr-data/pkg/locales"
)

// Flags holds the global flags defined on the root command.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()

	format, _ := root.PersistentFlags().GetString("format")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}
}

// LocaleFlags restricts a command to some product locales.
type LocaleFlags struct {
	Locales []string
}

// AddLocaleFlags adds --locale/-l to a command.
func AddLocaleFlags(cmd *cobra.Command) *LocaleFlags {
	flags := &LocaleFlags{}
	cmd.Flags().StringSliceVarP(&flags.Locales, "locale", "l", nil,
		"Restrict to these product locales; accepts globs (es-*) and re: patterns")
	return flags
}

// IDs returns the selected locales, nil meaning every locale.
func (f *LocaleFlags) IDs() []locales.ID {
	if f == nil || len(f.Locales) == 0 {
		return nil
	}
	ids := make([]locales.ID, 0, len(f.Locales))
	for _, l := range f.Locales {
		if l != "" {
			ids = append(ids, locales.ID(l))
		}
	}
	return ids
}
