package mozcldr

import (
	"context"

	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
)

// LocaleStatus describes how a product locale maps onto CLDR.
type LocaleStatus struct {
	Locale locales.ID `json:"locale" yaml:"locale"`
	// Name is the English display name, empty when unknown.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Reference is the CLDR locale names are compared with.
	Reference locales.ReferenceID `json:"reference" yaml:"reference"`
	// Resolved is the CLDR locale found after primary-subtag fallback.
	Resolved   locales.ReferenceID `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Supported  bool                `json:"supported" yaml:"supported"`
	Overridden bool                `json:"overridden" yaml:"overridden"`
	Annotation string              `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Locales implements LocaleLister.
func (c *client) Locales(ctx context.Context) ([]LocaleStatus, error) {
	ctx = logging.WithOperation(ctx, "locales")

	ids, err := c.repository.Locales(ctx)
	if err != nil {
		return nil, err
	}
	supported, err := c.reference.Supported(ctx)
	if err != nil {
		return nil, err
	}

	mapper := locales.NewMapper(c.tables.Overrides)
	statuses := make([]LocaleStatus, 0, len(ids))
	for _, id := range ids {
		_, overridden := c.tables.Overrides.Lookup(id)
		status := LocaleStatus{
			Locale:     id,
			Name:       locales.DisplayName(id),
			Reference:  mapper.Resolve(id),
			Overridden: overridden,
		}
		if resolved, ok := mapper.ResolveWithFallback(id, supported); ok {
			status.Resolved = resolved
			status.Supported = true
		} else {
			status.Annotation = c.tables.Seeds.Annotate(id)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
