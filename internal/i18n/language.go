// Package i18n resolves the user's language. Domain packages keep their own
// localized content tables keyed by Language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported app languages.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
	Dutch      Language = "nl"
	French     Language = "fr"
	German     Language = "de"
)

// Default is used when nothing else matches.
const Default = Portuguese

// Supported lists all languages the app ships content for.
var Supported = []Language{Portuguese, English, Dutch, French, German}

var matcher = language.NewMatcher([]language.Tag{
	language.Portuguese, // first is the fallback
	language.English,
	language.Dutch,
	language.French,
	language.German,
})

var tagToLanguage = map[string]Language{
	"pt": Portuguese,
	"en": English,
	"nl": Dutch,
	"fr": French,
	"de": German,
}

// Parse returns the Language for a stored code like "pt". ok=false for
// unknown codes.
func Parse(code string) (Language, bool) {
	lang, ok := tagToLanguage[strings.ToLower(strings.TrimSpace(code))]
	return lang, ok
}

// IsValid reports whether code names a supported language.
func IsValid(code string) bool {
	_, ok := Parse(code)
	return ok
}

// Resolve picks the language for a request: a valid stored preference wins,
// otherwise the Accept-Language header is matched against the supported set,
// otherwise Default.
func Resolve(stored, acceptLanguage string) Language {
	if lang, ok := Parse(stored); ok {
		return lang
	}
	return FromAcceptLanguage(acceptLanguage)
}

// FromAcceptLanguage matches an Accept-Language header value. Unparseable or
// empty headers fall back to Default.
func FromAcceptLanguage(header string) Language {
	if strings.TrimSpace(header) == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, _ := matcher.Match(tags...)
	base := []Language{Portuguese, English, Dutch, French, German}
	if index < 0 || index >= len(base) {
		return Default
	}
	return base[index]
}
