package terms

import (
	"sort"
	"strings"
)

// keyDelimiter separates segments of raw term keys.
const keyDelimiter = "-"

// Key is a normalized term identifier comparable across sources.
type Key string

// Map maps normalized keys to display strings for one locale and category.
type Map map[Key]string

// Keys returns the keys of m in ascending order.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Has reports whether key is present.
func (m Map) Has(key Key) bool {
	_, ok := m[key]
	return ok
}

// Normalize strips the category prefix and keeps the first segment.
// Region keys are upper-cased, language keys keep their case.
//
//	language-name-mk-2022 -> mk
//	region-name-fr        -> FR
func Normalize(rawKey string, c Category) Key {
	key := strings.TrimPrefix(strings.TrimSpace(rawKey), c.Prefix())
	key, _, _ = strings.Cut(key, keyDelimiter)
	if c == Regions {
		key = strings.ToUpper(key)
	}
	return Key(key)
}
