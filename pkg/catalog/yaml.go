package catalog

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a Catalog from YAML content holding a flat map of message
// keys to templates. Entries overlay the builtin English defaults, so a
// partial catalog only overriding a few messages stays complete.
func FromYAML(content []byte, opts ...Option) (*Catalog, error) {
	var loaded map[string]string
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(loaded) == 0 {
		return nil, ErrEmptyCatalog
	}

	merged := make(map[string]string, len(defaultMessages)+len(loaded))
	for k, v := range defaultMessages {
		merged[k] = v
	}
	for k, v := range loaded {
		merged[k] = v
	}
	return New(merged, opts...), nil
}

// FromFile builds a Catalog from a YAML file, overlaying the builtin
// defaults the same way FromYAML does.
func FromFile(path string, opts ...Option) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return FromYAML(content, opts...)
}
