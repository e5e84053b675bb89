package dataset

// Accessor answers field-presence and field-value queries over a dataset.
// The validation core only consults Has for requirement resolution; Get is
// used by the orchestrating validator to fetch values for per-rule checks.
type Accessor interface {
	// Has reports whether the dataset contains the field, regardless of its
	// value. A field holding nil is still present.
	Has(key Key) bool

	// Get returns the field's value and whether the field exists.
	Get(key Key) (any, bool)
}

// MapAccessor adapts a name-keyed map to the Accessor interface.
type MapAccessor map[string]any

// Has implements the Accessor interface.
func (m MapAccessor) Has(key Key) bool {
	if key.IsIndex() {
		return false
	}
	_, ok := m[key.Name()]
	return ok
}

// Get implements the Accessor interface.
func (m MapAccessor) Get(key Key) (any, bool) {
	if key.IsIndex() {
		return nil, false
	}
	v, ok := m[key.Name()]
	return v, ok
}

// SliceAccessor adapts a positional payload to the Accessor interface.
// Only index keys resolve; name keys report absence.
type SliceAccessor []any

// Has implements the Accessor interface.
func (s SliceAccessor) Has(key Key) bool {
	if !key.IsIndex() {
		return false
	}
	i := key.Index()
	return i >= 0 && i < len(s)
}

// Get implements the Accessor interface.
func (s SliceAccessor) Get(key Key) (any, bool) {
	if !s.Has(key) {
		return nil, false
	}
	return s[key.Index()], true
}
