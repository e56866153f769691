package mozcldr

import (
	"net/http"

	"github.com/flodolo/moz-cldr-data/internal/config"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/reconciler"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Option is a function that configures a Client
type Option func(*options) error

// options holds the Client configuration.
type options struct {
	l10nPath        string
	cldrPath        string
	cldrPluralsPath string
	languageFile    string
	regionFile      string
	baselineURLs    map[terms.Category]string
	baselineLocale  locales.ID
	referenceLocale locales.ReferenceID
	concurrency     int
	httpClient      *http.Client
	tables          *config.Tables
	baseline        bool

	// Collaborators replacing the on-disk and remote sources.
	source         reconciler.Source
	reference      reconciler.Reference
	baselineSource reconciler.Source
}

func defaults() *options {
	return &options{
		l10nPath:        constants.DefaultL10nPath,
		cldrPath:        constants.DefaultCLDRPath,
		cldrPluralsPath: constants.DefaultCLDRPluralsPath,
		languageFile:    constants.DefaultLanguageFile,
		regionFile:      constants.DefaultRegionFile,
		baselineURLs: map[terms.Category]string{
			terms.Languages: constants.DefaultLanguageNamesURL,
			terms.Regions:   constants.DefaultRegionNamesURL,
		},
		baselineLocale:  constants.BaselineLocale,
		referenceLocale: constants.DefaultReferenceLocale,
		concurrency:     constants.DefaultConcurrency,
		baseline:        true,
	}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithL10nPath sets the directory holding one l10n clone per locale.
func WithL10nPath(path string) Option {
	return func(o *options) error {
		o.l10nPath = path
		return nil
	}
}

// WithCLDRPath sets the "main" directory of cldr-localenames-full.
func WithCLDRPath(path string) Option {
	return func(o *options) error {
		o.cldrPath = path
		return nil
	}
}

// WithCLDRPluralsPath sets the path of the CLDR supplemental plurals.json.
func WithCLDRPluralsPath(path string) Option {
	return func(o *options) error {
		o.cldrPluralsPath = path
		return nil
	}
}

// WithL10nFiles sets the language and region name files, relative to a
// locale clone.
func WithL10nFiles(languageFile, regionFile string) Option {
	return func(o *options) error {
		if languageFile == "" || regionFile == "" {
			return &errors.ValidationError{
				Field:   "l10n files",
				Message: "cannot be empty",
			}
		}
		o.languageFile = languageFile
		o.regionFile = regionFile
		return nil
	}
}

// WithBaselineURLs sets the URLs of the baseline language and region name
// files.
func WithBaselineURLs(languageURL, regionURL string) Option {
	return func(o *options) error {
		if languageURL == "" || regionURL == "" {
			return &errors.ValidationError{
				Field:   "baseline urls",
				Message: "cannot be empty",
			}
		}
		o.baselineURLs = map[terms.Category]string{
			terms.Languages: languageURL,
			terms.Regions:   regionURL,
		}
		return nil
	}
}

// WithBaseline turns the baseline check on or off. It is on by default.
func WithBaseline(enabled bool) Option {
	return func(o *options) error {
		o.baseline = enabled
		return nil
	}
}

// WithBaselineLocale sets the product locale of the baseline files.
func WithBaselineLocale(id locales.ID) Option {
	return func(o *options) error {
		o.baselineLocale = id
		return nil
	}
}

// WithReferenceLocale sets the CLDR locale the baseline is compared to.
func WithReferenceLocale(id locales.ReferenceID) Option {
	return func(o *options) error {
		o.referenceLocale = id
		return nil
	}
}

// WithConcurrency sets how many locales are compared at once.
func WithConcurrency(n int) Option {
	return func(o *options) error {
		o.concurrency = n
		return nil
	}
}

// WithHTTPClient sets the HTTP client used to fetch the baseline.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		o.httpClient = hc
		return nil
	}
}

// WithTables sets the data tables. Without it the embedded tables are used.
func WithTables(tables *config.Tables) Option {
	return func(o *options) error {
		if tables == nil {
			return &errors.ValidationError{
				Field:   "tables",
				Message: "cannot be nil",
			}
		}
		o.tables = tables
		return nil
	}
}

// WithSource replaces the product l10n source.
func WithSource(src reconciler.Source) Option {
	return func(o *options) error {
		o.source = src
		return nil
	}
}

// WithReference replaces the CLDR reference source.
func WithReference(ref reconciler.Reference) Option {
	return func(o *options) error {
		o.reference = ref
		return nil
	}
}

// WithBaselineSource replaces the remote baseline source.
func WithBaselineSource(src reconciler.Source) Option {
	return func(o *options) error {
		o.baselineSource = src
		return nil
	}
}
