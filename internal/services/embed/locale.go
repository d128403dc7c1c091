package embed

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// defaultOGLocale is emitted when the request carries no usable
// Accept-Language header.
const defaultOGLocale = "en_US"

// supportedLocales are the locales advertised through og:locale. This is
// metadata resolution only; page text is not translated.
var supportedLocales = []language.Tag{
	language.AmericanEnglish, // default
	language.BritishEnglish,
	language.BrazilianPortuguese,
	language.French,
	language.German,
	language.Spanish,
	language.Japanese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// resolveLocale picks the best og:locale value for the request.
func resolveLocale(r *http.Request) string {
	if r == nil {
		return defaultOGLocale
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return defaultOGLocale
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return defaultOGLocale
	}
	// Index into the supported list rather than using the matched tag,
	// which carries extensions from the input.
	_, index, _ := localeMatcher.Match(tags...)
	return ogLocale(supportedLocales[index])
}

// ogLocale formats a language tag in the underscore form Open Graph uses.
func ogLocale(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}
