package card

import "unicode/utf8"

// Field length budgets, counted in Unicode code points so multibyte input
// cannot exceed a budget by byte-length accident.
const (
	// TitleMax caps the card title.
	TitleMax = 200
	// DescriptionMax caps the composed description, footer included.
	DescriptionMax = 1000
	// FooterMax caps the footer content before markdown wrapping.
	FooterMax = 100
)

// runeLen returns the length of s in code points.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes bounds s to at most limit code points.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runeLen(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
