package dataset

import "strconv"

// Key identifies a field in a dataset. Datasets may be keyed by string name
// (maps, form data) or by integer index (positional payloads), so a Key holds
// exactly one of the two. Keys are immutable value objects: construct them
// with Name or Index and compare them with ==.
type Key struct {
	name    string
	index   int
	byIndex bool
}

// Name creates a Key addressing a field by its string name.
func Name(name string) Key {
	return Key{name: name}
}

// Index creates a Key addressing a field by its integer position.
func Index(i int) Key {
	return Key{index: i, byIndex: true}
}

// KeyOf converts a raw field identifier into a Key. It accepts strings,
// the common integer types, and Key itself. The second return value reports
// whether the conversion succeeded.
func KeyOf(v any) (Key, bool) {
	switch id := v.(type) {
	case Key:
		return id, true
	case string:
		return Name(id), true
	case int:
		return Index(id), true
	case int8:
		return Index(int(id)), true
	case int16:
		return Index(int(id)), true
	case int32:
		return Index(int(id)), true
	case int64:
		return Index(int(id)), true
	case uint:
		return Index(int(id)), true
	case uint8:
		return Index(int(id)), true
	case uint16:
		return Index(int(id)), true
	case uint32:
		return Index(int(id)), true
	case uint64:
		return Index(int(id)), true
	}
	return Key{}, false
}

// IsIndex reports whether the key addresses a field by position.
func (k Key) IsIndex() bool {
	return k.byIndex
}

// Name returns the field name for name keys and the empty string otherwise.
func (k Key) Name() string {
	if k.byIndex {
		return ""
	}
	return k.name
}

// Index returns the field position for index keys and zero otherwise.
func (k Key) Index() int {
	if !k.byIndex {
		return 0
	}
	return k.index
}

// String renders the key for use in user-facing messages.
func (k Key) String() string {
	if k.byIndex {
		return strconv.Itoa(k.index)
	}
	return k.name
}
