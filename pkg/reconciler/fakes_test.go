package reconciler_test

import (
	"context"
	"sync"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// fakeSource serves product documents from memory.
type fakeSource struct {
	mu    sync.Mutex
	docs  map[locales.ID]map[terms.Category]terms.Document
	calls int
}

func newFakeSource() *fakeSource {
	return &fakeSource{docs: make(map[locales.ID]map[terms.Category]terms.Document)}
}

func (f *fakeSource) put(id locales.ID, c terms.Category, raw map[string]string, malformed ...error) *fakeSource {
	if f.docs[id] == nil {
		f.docs[id] = make(map[terms.Category]terms.Document)
	}
	f.docs[id][c] = terms.Document{Entries: terms.EntriesFromMap(raw), Malformed: malformed}
	return f
}

func (f *fakeSource) Document(_ context.Context, id locales.ID, c terms.Category) (terms.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	doc, ok := f.docs[id][c]
	if !ok {
		return terms.Document{}, errors.NewNotFoundError(c.String()+" file", id.String())
	}
	return doc, nil
}

// fakeReference serves reference data from memory.
type fakeReference struct {
	data         map[locales.ReferenceID]map[terms.Category]map[string]string
	supportedErr error
}

func newFakeReference() *fakeReference {
	return &fakeReference{data: make(map[locales.ReferenceID]map[terms.Category]map[string]string)}
}

func (f *fakeReference) put(id locales.ReferenceID, c terms.Category, raw map[string]string) *fakeReference {
	if f.data[id] == nil {
		f.data[id] = make(map[terms.Category]map[string]string)
	}
	f.data[id][c] = raw
	return f
}

func (f *fakeReference) Supported(context.Context) (locales.Set, error) {
	if f.supportedErr != nil {
		return nil, f.supportedErr
	}
	codes := make([]string, 0, len(f.data))
	for id := range f.data {
		codes = append(codes, id.String())
	}
	return locales.NewSet(codes...), nil
}

func (f *fakeReference) Terms(_ context.Context, id locales.ReferenceID, c terms.Category) (map[string]string, error) {
	raw, ok := f.data[id][c]
	if !ok {
		return nil, errors.NewNotFoundError("reference "+c.String(), id.String())
	}
	return raw, nil
}
