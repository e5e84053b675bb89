package catalog

import "errors"

var (
	// ErrFailedToParseYAML is returned when a YAML message source is not a
	// flat map of string keys to string templates.
	ErrFailedToParseYAML = errors.New("failed to parse YAML message catalog")

	// ErrFailedToReadFile is returned when a message catalog file cannot be
	// read.
	ErrFailedToReadFile = errors.New("failed to read message catalog file")

	// ErrEmptyCatalog is returned when a message source yields no templates.
	ErrEmptyCatalog = errors.New("message catalog source is empty")
)
