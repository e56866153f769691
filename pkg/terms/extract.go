package terms

import "sort"

// Entry is a raw key/value pair as produced by a file parser, in document
// order.
type Entry struct {
	Key   string
	Value string
}

// Document is the parsed content of one localization file. Malformed holds
// the entries the parser had to skip.
type Document struct {
	Entries   []Entry
	Malformed []error
}

// Collision records a raw key whose normalized form was already present
// with a different value. The later entry wins.
type Collision struct {
	Key      Key
	RawKey   string
	Previous string
	Value    string
}

// Extraction is the result of normalizing a set of raw entries.
type Extraction struct {
	Terms      Map
	Collisions []Collision
	// Dropped lists raw keys that normalized to an empty key.
	Dropped []string
}

// Extract normalizes entries into a Map for category c. Entries are
// applied in order, so the last of several colliding keys wins.
func Extract(entries []Entry, c Category) Extraction {
	out := Extraction{Terms: make(Map, len(entries))}
	for _, entry := range entries {
		key := Normalize(entry.Key, c)
		if key == "" {
			out.Dropped = append(out.Dropped, entry.Key)
			continue
		}
		if previous, ok := out.Terms[key]; ok && previous != entry.Value {
			out.Collisions = append(out.Collisions, Collision{
				Key:      key,
				RawKey:   entry.Key,
				Previous: previous,
				Value:    entry.Value,
			})
		}
		out.Terms[key] = entry.Value
	}
	return out
}

// EntriesFromMap converts an unordered map to entries sorted by key, so
// that extraction stays deterministic.
func EntriesFromMap(m map[string]string) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// FromReference wraps reference data, whose keys are already in the
// normalized code space, as a Map.
func FromReference(m map[string]string) Map {
	out := make(Map, len(m))
	for k, v := range m {
		if k == "" {
			continue
		}
		out[Key(k)] = v
	}
	return out
}
