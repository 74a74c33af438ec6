package i18n

import (
	"fmt"
	"strings"
)

// Locale represents a supported language
type Locale string

const (
	LocaleEn Locale = "en"
	LocaleEs Locale = "es"
)

// DefaultLocale is used when the client sends no usable Accept-Language
const DefaultLocale = LocaleEn

// Key is a message identifier. Only keys declared in keys.go are valid.
type Key string

// Catalog is an immutable set of translations keyed by locale
type Catalog struct {
	translations map[Locale]map[Key]string
	fallback     Locale
}

// NewCatalog builds a catalog from the built-in messages
func NewCatalog() *Catalog {
	return &Catalog{
		translations: map[Locale]map[Key]string{
			LocaleEn: enMessages,
			LocaleEs: esMessages,
		},
		fallback: DefaultLocale,
	}
}

// T translates a key for the given locale.
// Falls back to the fallback locale, then returns the key itself.
func (c *Catalog) T(locale Locale, key Key, args ...interface{}) string {
	if msg, ok := c.lookup(locale, key); ok {
		return format(msg, args)
	}
	if locale != c.fallback {
		if msg, ok := c.lookup(c.fallback, key); ok {
			return format(msg, args)
		}
	}
	return string(key)
}

func (c *Catalog) lookup(locale Locale, key Key) (string, bool) {
	msgs, ok := c.translations[locale]
	if !ok {
		return "", false
	}
	msg, ok := msgs[key]
	return msg, ok
}

func format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Supports reports whether locale has a message table
func (c *Catalog) Supports(locale Locale) bool {
	_, ok := c.translations[locale]
	return ok
}

// ParseAcceptLanguage parses the Accept-Language header and returns the best matching locale
func ParseAcceptLanguage(header string) Locale {
	if header == "" {
		return DefaultLocale
	}

	for _, part := range strings.Split(header, ",") {
		lang := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch {
		case strings.HasPrefix(lang, "en"):
			return LocaleEn
		case strings.HasPrefix(lang, "es"):
			return LocaleEs
		}
	}

	return DefaultLocale
}

// Default is the process-wide catalog. It is read-only after init.
var Default = NewCatalog()

// T translates with the default catalog
func T(locale Locale, key Key, args ...interface{}) string {
	return Default.T(locale, key, args...)
}
