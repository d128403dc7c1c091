package card

import (
	"net/url"
	"strings"
)

// Query parameter names for the embed endpoint.
const (
	ParamTitle       = "title"
	ParamDescription = "desc"
	ParamFooter      = "footer"
	ParamImage       = "image"
)

// EmbedPath is the canonical rendering endpoint.
const EmbedPath = "/embed"

// BuildShareableURL builds the relative embed URL for the given params.
// Empty fields are omitted and keys keep a fixed order so generated links
// are stable.
func BuildShareableURL(p Params) string {
	pairs := []struct {
		key   string
		value string
	}{
		{ParamTitle, p.Title},
		{ParamDescription, p.Description},
		{ParamFooter, p.Footer},
		{ParamImage, p.Image},
	}

	var b strings.Builder
	b.WriteString(EmbedPath)
	sep := "?"
	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		b.WriteString(sep)
		sep = "&"
		b.WriteString(pair.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.value))
	}
	return b.String()
}

// ParamsFromQuery extracts the card fields from a query string. Absent
// keys become empty strings.
func ParamsFromQuery(values url.Values) Params {
	return Params{
		Title:       values.Get(ParamTitle),
		Description: values.Get(ParamDescription),
		Footer:      values.Get(ParamFooter),
		Image:       values.Get(ParamImage),
	}
}
