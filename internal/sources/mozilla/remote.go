package mozilla

import (
	"context"

	"github.com/flodolo/moz-cldr-data/internal/sources/fluent"
	"github.com/flodolo/moz-cldr-data/internal/transport"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// URLs maps each category to the URL of its baseline file.
type URLs map[terms.Category]string

// DefaultURLs returns the mozilla-central en-US name files.
func DefaultURLs() URLs {
	return URLs{
		terms.Languages: constants.DefaultLanguageNamesURL,
		terms.Regions:   constants.DefaultRegionNamesURL,
	}
}

// Remote serves the baseline locale's files over HTTP. The locale passed
// to Document is only used for logging: there is one file per category.
type Remote struct {
	client *transport.Client
	urls   URLs
}

// NewRemote returns a Remote fetching urls with client. Nil arguments use
// defaults.
func NewRemote(client *transport.Client, urls URLs) *Remote {
	if client == nil {
		client = transport.New()
	}
	if urls == nil {
		urls = DefaultURLs()
	}
	return &Remote{client: client, urls: urls}
}

// Document fetches and parses the baseline file of category c.
func (r *Remote) Document(ctx context.Context, id locales.ID, c terms.Category) (terms.Document, error) {
	url, ok := r.urls[c]
	if !ok || url == "" {
		return terms.Document{}, errors.NewValidationError("category", c, "no baseline URL configured")
	}

	ctx = logging.WithSource(ctx, "remote")
	body, err := r.client.Get(ctx, url)
	if err != nil {
		return terms.Document{}, err
	}

	doc, err := fluent.ParseBytes(body, url)
	if err != nil {
		return terms.Document{}, err
	}
	logging.FromContext(ctx).Debug().
		Str("locale", id.String()).
		Str("category", c.String()).
		Int("entries", len(doc.Entries)).
		Msg("Fetched baseline")
	warnMalformed(ctx, doc)
	return doc, nil
}
