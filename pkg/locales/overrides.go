package locales

// OverrideTable maps product locales whose codes differ from CLDR onto their
// CLDR equivalent. It is immutable once built and safe for concurrent reads.
type OverrideTable struct {
	entries map[ID]ReferenceID
}

// NewOverrideTable copies entries into a new table.
func NewOverrideTable(entries map[string]string) *OverrideTable {
	t := &OverrideTable{entries: make(map[ID]ReferenceID, len(entries))}
	for from, to := range entries {
		t.entries[ID(from)] = ReferenceID(to)
	}
	return t
}

// Lookup returns the override for id, if any.
func (t *OverrideTable) Lookup(id ID) (ReferenceID, bool) {
	if t == nil {
		return "", false
	}
	ref, ok := t.entries[id]
	return ref, ok
}

// Len returns the number of overrides.
func (t *OverrideTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the table contents.
func (t *OverrideTable) Entries() map[ID]ReferenceID {
	out := make(map[ID]ReferenceID, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}
