package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
)

// Catalog maps message keys to templates and formats them with positional
// arguments. Templates reference arguments as %{0}, %{1}, and so on; an
// index with no matching argument is left intact.
//
// A Catalog is read-only after construction and therefore safe to share
// across concurrent validation passes.
type Catalog struct {
	messages      map[string]string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// Option configures a Catalog instance.
type Option func(*Catalog)

// WithLogger provides the logger used for missing-key warnings. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingKeyLogging controls whether lookups of unknown keys are logged.
// Default is false to avoid excessive logging.
func WithMissingKeyLogging(log bool) Option {
	return func(c *Catalog) {
		c.logMissing = log
	}
}

// WithFallbackToKey determines whether Get returns the key itself when no
// template exists for it. Default is true; with false, Get returns an empty
// string for unknown keys.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// New creates a Catalog from a key-to-template map. The map is copied, so
// later mutation of the argument does not affect the catalog.
func New(messages map[string]string, opts ...Option) *Catalog {
	c := &Catalog{
		messages:      make(map[string]string, len(messages)),
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for k, v := range messages {
		c.messages[k] = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a Catalog holding the builtin English templates for every
// key the rule engine emits.
func Default(opts ...Option) *Catalog {
	return New(defaultMessages, opts...)
}

// Regex matching positional placeholders in the form %{0}.
var placeholderRegex = regexp.MustCompile(`%\{(\d+)\}`)

// Get resolves a key to its template and substitutes the positional
// arguments. Arguments are rendered with fmt.Sprint. Unknown keys fall back
// to the key itself unless configured otherwise.
func (c *Catalog) Get(key string, args ...any) string {
	tmpl, ok := c.messages[key]
	if !ok {
		if c.logMissing {
			c.logger.Warn("Message key not found", "key", key)
		}
		if c.fallbackToKey {
			return key
		}
		return ""
	}
	return substitute(tmpl, args)
}

// Has reports whether the catalog holds a template for the key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// substitute replaces %{n} placeholders with the n-th argument, leaving
// placeholders without a matching argument untouched.
func substitute(tmpl string, args []any) string {
	if len(args) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		idx, err := strconv.Atoi(match[2 : len(match)-1])
		if err != nil || idx < 0 || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}
