// Package localization renders the stable error-message keys emitted by the
// core into display text for the language negotiated from the request's
// Accept-Language header. English and Georgian are supported; English is the
// fallback.
package localization

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,  // en: first entry is the fallback
	language.Georgian, // ka
}

// Localizer maps message keys to locale-appropriate display strings.
type Localizer struct {
	matcher language.Matcher
	catalog catalog.Catalog
}

// New builds a localizer with the full message catalog. The catalog is
// static, so a malformed entry is a programming error and panics.
func New() *Localizer {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range englishMessages {
		if err := builder.SetString(language.English, key, text); err != nil {
			panic(fmt.Sprintf("localization: bad catalog entry %q: %v", key, err))
		}
	}
	for key, text := range georgianMessages {
		if err := builder.SetString(language.Georgian, key, text); err != nil {
			panic(fmt.Sprintf("localization: bad catalog entry %q: %v", key, err))
		}
	}

	return &Localizer{
		matcher: language.NewMatcher(supported),
		catalog: builder,
	}
}

// Match negotiates the best supported language for an Accept-Language
// header. An empty or malformed header yields the fallback.
func (l *Localizer) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	// Match synthesizes tags with extensions (en-u-rg-...); the index
	// into supported gives the canonical tag.
	_, i, _ := l.matcher.Match(tags...)
	return supported[i]
}

// Localize renders one key in the given language. Unknown keys come back
// verbatim, so a missing catalog entry never hides the error kind.
func (l *Localizer) Localize(tag language.Tag, key string) string {
	printer := message.NewPrinter(tag, message.Catalog(l.catalog))
	return printer.Sprintf(key)
}

// LocalizeAll renders a list of keys in the given language.
func (l *Localizer) LocalizeAll(tag language.Tag, keys []string) []string {
	messages := make([]string, len(keys))
	for i, key := range keys {
		messages[i] = l.Localize(tag, key)
	}
	return messages
}
