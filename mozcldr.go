// Package mozcldr compares the language names, region names and plural
// categories of a product's localization with CLDR.
//
// Example usage:
//
//	client, err := mozcldr.New(
//	    mozcldr.WithL10nPath("/src/l10n-central"),
//	    mozcldr.WithCLDRPath("node_modules/cldr-localenames-full/main"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Compare(ctx)
//	if err != nil {
//	    log.Fatal(err) // baseline unavailable
//	}
//	for _, report := range result.Reports {
//	    fmt.Println(report.Summary())
//	}
package mozcldr

import (
	"context"

	"github.com/flodolo/moz-cldr-data/internal/config"
	"github.com/flodolo/moz-cldr-data/internal/matcher"
	"github.com/flodolo/moz-cldr-data/internal/sources/cldr"
	"github.com/flodolo/moz-cldr-data/internal/sources/mozilla"
	"github.com/flodolo/moz-cldr-data/internal/transport"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/plurals"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Tables holds the override table, seed list, product plural categories
// and tolerated-variant rules.
type Tables = config.Tables

// DefaultTables loads the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return config.LoadTables(config.TableFiles{}, config.TableOverlay{})
}

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Comparer reconciles language and region names.
type Comparer interface {
	// Compare reconciles ids, or every product locale when ids is empty.
	Compare(ctx context.Context, ids ...locales.ID) (*reconciler.Result, error)
}

// PluralChecker cross-checks plural categories.
type PluralChecker interface {
	// Plurals checks ids, or every product locale when ids is empty.
	Plurals(ctx context.Context, ids ...locales.ID) ([]plurals.Mismatch, error)
}

// LocaleLister describes product locales.
type LocaleLister interface {
	// Locales returns the status of every product locale.
	Locales(ctx context.Context) ([]LocaleStatus, error)
}

// Client compares a product's localization with CLDR.
type Client interface {
	Comparer
	PluralChecker
	LocaleLister

	// Tables returns the data tables in use.
	Tables() *Tables
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	tables  *Tables

	source    reconciler.Source
	reference reconciler.Reference
	baseline  reconciler.Source

	// set when the default on-disk sources are used
	repository *mozilla.Repository
	store      *cldr.Store
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	c := &client{options: o, tables: o.tables}
	if c.tables == nil {
		if c.tables, err = DefaultTables(); err != nil {
			return nil, err
		}
	}

	c.repository = mozilla.NewRepository(o.l10nPath, mozilla.Files{
		terms.Languages: o.languageFile,
		terms.Regions:   o.regionFile,
	})
	c.store = cldr.New(o.cldrPath, o.cldrPluralsPath)

	c.source = o.source
	if c.source == nil {
		c.source = c.repository
	}
	c.reference = o.reference
	if c.reference == nil {
		c.reference = c.store
	}
	c.baseline = o.baselineSource
	if c.baseline == nil {
		c.baseline = mozilla.NewRemote(
			transport.New(transport.WithHTTPClient(o.httpClient)),
			mozilla.URLs(o.baselineURLs),
		)
	}

	logging.Debug().
		Str("l10n_path", o.l10nPath).
		Str("cldr_path", o.cldrPath).
		Int("overrides", c.tables.Overrides.Len()).
		Int("seeds", c.tables.Seeds.Len()).
		Msg("Client configured")

	return c, nil
}

// Tables implements Client.
func (c *client) Tables() *Tables {
	return c.tables
}

// productLocales returns ids, or the product locale list when ids is empty.
// Glob ("es-*") and "re:" patterns among ids are expanded against the
// product locale list.
func (c *client) productLocales(ctx context.Context, ids []locales.ID) ([]locales.ID, error) {
	if len(ids) == 0 {
		return c.repository.Locales(ctx)
	}

	patterns := make([]string, len(ids))
	for i, id := range ids {
		patterns[i] = string(id)
	}
	set, err := matcher.NewSet(patterns...)
	if err != nil {
		return nil, err
	}
	if !set.HasPatterns() {
		return ids, nil
	}

	all, err := c.repository.Locales(ctx)
	if err != nil {
		return nil, err
	}
	selected := make([]locales.ID, 0, len(all))
	for _, id := range all {
		if set.Match(string(id)) {
			selected = append(selected, id)
		}
	}
	return selected, nil
}

// Compare implements Comparer.
func (c *client) Compare(ctx context.Context, ids ...locales.ID) (*reconciler.Result, error) {
	ctx = logging.WithOperation(ctx, "compare")

	ids, err := c.productLocales(ctx, ids)
	if err != nil {
		return nil, err
	}

	opts := []reconciler.Option{
		reconciler.WithOverrides(c.tables.Overrides),
		reconciler.WithSeeds(c.tables.Seeds),
		reconciler.WithRules(c.tables.Rules),
		reconciler.WithReferenceLocale(c.options.referenceLocale),
		reconciler.WithBaselineLocale(c.options.baselineLocale),
		reconciler.WithConcurrency(c.options.concurrency),
	}
	if c.options.baseline {
		opts = append(opts, reconciler.WithBaseline(c.baseline))
	}

	r, err := reconciler.New(c.source, c.reference, opts...)
	if err != nil {
		return nil, err
	}
	return r.All(ctx, ids)
}

// Plurals implements PluralChecker.
func (c *client) Plurals(ctx context.Context, ids ...locales.ID) ([]plurals.Mismatch, error) {
	ctx = logging.WithOperation(ctx, "plurals")

	ids, err := c.productLocales(ctx, ids)
	if err != nil {
		return nil, err
	}
	reference, err := c.store.Plurals(ctx)
	if err != nil {
		return nil, err
	}
	return plurals.NewChecker(c.tables.Plurals, reference).Check(ids), nil
}
