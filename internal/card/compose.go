package card

import (
	"html"
	"strings"
)

const (
	fallbackTitle       = "Untitled Card"
	fallbackDescription = "No description provided."

	footerPrefix = "\n\n**"
	footerSuffix = "**"
	ellipsis     = "..."

	// footerShrinkOverhead approximates the markdown wrapper cost when the
	// footer alone must be shrunk to fit the description budget. The
	// leading newlines are stripped from the shrunk result, which is what
	// keeps the estimate at four rather than the six wrapper characters.
	footerShrinkOverhead = 4
)

// Compose builds the final escaped card values, merging the footer into
// the description under the DescriptionMax budget. Invalid fields fall
// back to defaults instead of failing the request: the title and
// description substitute fallback literals, the footer and image are
// dropped.
func Compose(p Params) Output {
	footer := normalizeFooter(p.Footer)
	description := mergeDescription(normalizeDescription(p.Description), footer)
	return escapeOutput(normalizeTitle(p.Title), description, footer, normalizeImage(p.Image))
}

// ComposePlain builds the escaped card values without merging the footer
// into the description. The footer is surfaced only as FooterText for a
// separate visual block; this is the legacy simplified variant.
func ComposePlain(p Params) Output {
	footer := normalizeFooter(p.Footer)
	return escapeOutput(normalizeTitle(p.Title), normalizeDescription(p.Description), footer, normalizeImage(p.Image))
}

// ImageType derives a MIME-type hint from the lowercase URL suffix.
// Unrecognized suffixes map to the wildcard image type.
func ImageType(rawURL string) string {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	default:
		return "image/*"
	}
}

func normalizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if !ValidateTitle(title).Valid {
		return fallbackTitle
	}
	return truncateRunes(title, TitleMax)
}

func normalizeDescription(raw string) string {
	description := strings.TrimSpace(raw)
	if !ValidateDescription(description).Valid {
		return fallbackDescription
	}
	return truncateRunes(description, DescriptionMax)
}

func normalizeFooter(raw string) string {
	footer := strings.TrimSpace(raw)
	if !ValidateFooter(footer).Valid {
		return ""
	}
	return truncateRunes(footer, FooterMax)
}

func normalizeImage(raw string) string {
	image := strings.TrimSpace(raw)
	if image == "" || !ValidateImageURL(image).Valid {
		return ""
	}
	return image
}

// footerMarkdown wraps non-empty footer content in its bold markdown
// block. The asterisks stay literal through escaping so clients can
// render them.
func footerMarkdown(content string) string {
	if content == "" {
		return ""
	}
	return footerPrefix + content + footerSuffix
}

// mergeDescription appends the footer markdown to the base description
// without exceeding DescriptionMax code points. When both cannot fit it
// ellipsis-truncates the base; when the footer alone consumes the budget
// it shrinks the footer content and uses it by itself, or discards the
// footer entirely if nothing of it survives.
func mergeDescription(base, footerContent string) string {
	markdown := footerMarkdown(footerContent)
	if markdown == "" {
		return base
	}
	if runeLen(base)+runeLen(markdown) <= DescriptionMax {
		return base + markdown
	}
	allowedBase := DescriptionMax - runeLen(markdown)
	if allowedBase > len(ellipsis) {
		head := strings.TrimRight(truncateRunes(base, allowedBase-len(ellipsis)), " \t\n")
		return head + ellipsis + markdown
	}
	shrunk := footerMarkdown(truncateRunes(footerContent, DescriptionMax-footerShrinkOverhead))
	shrunk = strings.TrimLeft(shrunk, " \n")
	if shrunk != "" {
		return shrunk
	}
	return truncateRunes(base, DescriptionMax)
}

func escapeOutput(title, description, footer, image string) Output {
	imageType := ""
	if image != "" {
		imageType = ImageType(image)
	}
	return Output{
		Title:       html.EscapeString(title),
		Description: html.EscapeString(description),
		FooterText:  html.EscapeString(footer),
		ImageURL:    html.EscapeString(image),
		ImageType:   html.EscapeString(imageType),
	}
}
