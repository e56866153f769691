package locales

// NotFound is the ReferenceID returned when a locale cannot be resolved.
const NotFound ReferenceID = ""

// Mapper resolves product locales into the reference code space.
type Mapper struct {
	overrides *OverrideTable
}

// NewMapper returns a Mapper backed by the given override table. A nil
// table behaves as an empty one.
func NewMapper(overrides *OverrideTable) *Mapper {
	return &Mapper{overrides: overrides}
}

// Resolve returns the override for id, or id itself: the reference source
// uses matching identifiers unless told otherwise.
func (m *Mapper) Resolve(id ID) ReferenceID {
	if ref, ok := m.overrides.Lookup(id); ok {
		return ref
	}
	return ReferenceID(id)
}

// ResolveWithFallback resolves id and checks it against the supported set,
// retrying with the primary subtag. It returns NotFound and false when
// neither is supported.
func (m *Mapper) ResolveWithFallback(id ID, supported Set) (ReferenceID, bool) {
	if ref := m.Resolve(id); supported.Has(ref) {
		return ref, true
	}
	if primary := ReferenceID(id.Primary()); primary != "" && supported.Has(primary) {
		return primary, true
	}
	return NotFound, false
}
