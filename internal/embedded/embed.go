// Package embedded holds the default data tables compiled into the binary.
package embedded

import (
	"embed"
)

// Names of the embedded data files.
const (
	OverridesFile = "data/overrides.yaml"
	SeedsFile     = "data/seed_locales.txt"
	PluralsFile   = "data/plurals.yaml"
	RulesFile     = "data/rules.yaml"
)

// FS embeds the locale override table, the CLDR seed locale list, the
// product plural categories and the tolerated-variant rules.
//
//go:embed data/*
var FS embed.FS

// ReadFile reads one embedded data file.
func ReadFile(name string) ([]byte, error) {
	return FS.ReadFile(name)
}
