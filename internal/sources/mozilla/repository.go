// Package mozilla reads the product's localization files: the per-locale
// l10n clones on disk and the en-US baseline served over HTTP.
package mozilla

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/flodolo/moz-cldr-data/internal/sources/fluent"
	"github.com/flodolo/moz-cldr-data/pkg/constants"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Files names the Fluent file of each category, relative to a locale root.
type Files map[terms.Category]string

// DefaultFiles returns the toolkit language and region name files.
func DefaultFiles() Files {
	return Files{
		terms.Languages: constants.DefaultLanguageFile,
		terms.Regions:   constants.DefaultRegionFile,
	}
}

// Repository reads locale files from a directory holding one l10n clone
// per locale.
type Repository struct {
	root  string
	files Files
}

// NewRepository returns a Repository rooted at root. Nil files means
// DefaultFiles.
func NewRepository(root string, files Files) *Repository {
	if files == nil {
		files = DefaultFiles()
	}
	return &Repository{root: root, files: files}
}

// Locales lists the locale directories under the root, sorted.
func (r *Repository) Locales(ctx context.Context) ([]locales.ID, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, errors.WrapIO("read", r.root, err)
	}
	ids := make([]locales.ID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			ids = append(ids, locales.ID(entry.Name()))
		}
	}
	locales.Sort(ids)
	logging.FromContext(ctx).Debug().Str("path", r.root).Int("locales", len(ids)).Msg("Listed l10n locales")
	return ids, nil
}

// Path returns the file of category c for locale id.
func (r *Repository) Path(id locales.ID, c terms.Category) (string, error) {
	rel, ok := r.files[c]
	if !ok {
		return "", errors.NewValidationError("category", c, "no file configured")
	}
	return filepath.Join(r.root, id.String(), filepath.FromSlash(rel)), nil
}

// Document parses the file of category c for locale id. A missing file is
// reported as a not-found error.
func (r *Repository) Document(ctx context.Context, id locales.ID, c terms.Category) (terms.Document, error) {
	path, err := r.Path(id, c)
	if err != nil {
		return terms.Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return terms.Document{}, errors.NewNotFoundError(c.String()+" file", path)
		}
		return terms.Document{}, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := fluent.Parse(f, path)
	if err != nil {
		return terms.Document{}, err
	}
	warnMalformed(ctx, doc)
	return doc, nil
}

// warnMalformed logs the entries the parser skipped.
func warnMalformed(ctx context.Context, doc terms.Document) {
	logger := logging.FromContext(ctx)
	for _, err := range doc.Malformed {
		logger.Warn().Err(err).Msg("Skipping malformed entry")
	}
}
