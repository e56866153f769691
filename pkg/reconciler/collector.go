package reconciler

import (
	"context"
	"fmt"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Source supplies the product's raw entries for one locale and category.
// A missing file is reported as an error satisfying errors.IsNotFound.
type Source interface {
	Document(ctx context.Context, id locales.ID, c terms.Category) (terms.Document, error)
}

// Reference supplies reference data, already keyed by term code.
type Reference interface {
	// Supported returns every locale the reference source covers.
	Supported(ctx context.Context) (locales.Set, error)
	// Terms returns the display names of category c for locale id.
	Terms(ctx context.Context, id locales.ReferenceID, c terms.Category) (map[string]string, error)
}

// pair holds both sides of one category, ready for comparison.
type pair struct {
	source    terms.Map
	reference terms.Map
}

// collector gathers both sides of a category comparison and records
// recoverable issues.
type collector struct {
	source    Source
	reference Reference
	issues    []Issue
}

func newCollector(source Source, reference Reference) *collector {
	return &collector{source: source, reference: reference}
}

// collect fetches category c for id/ref. It returns false when either side
// is unavailable, in which case the category is omitted from the report.
func (c *collector) collect(ctx context.Context, id locales.ID, ref locales.ReferenceID, category terms.Category) (pair, bool) {
	logger := logging.FromContext(ctx)

	doc, err := c.source.Document(ctx, id, category)
	if err != nil {
		logger.Debug().Err(err).Str("category", category.String()).Msg("Product file unavailable")
		c.add(newIssue(MissingCategory, id, category, &errors.MissingCategoryError{
			Locale:   string(id),
			Category: category.String(),
			Side:     "source",
			Err:      err,
		}))
		return pair{}, false
	}
	for _, malformed := range doc.Malformed {
		c.add(newIssue(MalformedEntry, id, category, malformed))
	}

	extraction := terms.Extract(doc.Entries, category)
	for _, collision := range extraction.Collisions {
		c.add(newIssue(KeyCollision, id, category, &errors.ValidationError{
			Field:   collision.RawKey,
			Value:   collision.Value,
			Message: fmt.Sprintf("normalizes to %s, replacing %q with %q", collision.Key, collision.Previous, collision.Value),
		}))
	}

	raw, err := c.reference.Terms(ctx, ref, category)
	if err != nil {
		logger.Debug().Err(err).Str("category", category.String()).Msg("Reference data unavailable")
		c.add(newIssue(MissingCategory, id, category, &errors.MissingCategoryError{
			Locale:   string(id),
			Category: category.String(),
			Side:     "reference",
			Err:      err,
		}))
		return pair{}, false
	}

	return pair{source: extraction.Terms, reference: terms.FromReference(raw)}, true
}

func (c *collector) add(issue Issue) {
	c.issues = append(c.issues, issue)
}
