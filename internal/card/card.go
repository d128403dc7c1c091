// Package card validates and composes the fields of a shareable embed
// card. Validators and the composer are pure functions over their string
// inputs; nothing in this package touches request or process state.
package card

// Params holds the raw caller-supplied card fields as they arrive on the
// query string. Absent parameters are empty strings.
type Params struct {
	// Title is the card headline.
	Title string
	// Description is the card body text.
	Description string
	// Footer is an optional attribution line appended to the description.
	Footer string
	// Image is an optional HTTPS image URL.
	Image string
}

// Output holds the final HTML-escaped values consumed by the document
// templates. It exists only for the duration of one request.
type Output struct {
	// Title is the escaped card headline.
	Title string
	// Description is the escaped composed description, never longer than
	// DescriptionMax code points before escaping.
	Description string
	// FooterText is the escaped footer content without markdown wrapping.
	FooterText string
	// ImageURL is the escaped image URL, empty when the image was absent
	// or failed validation.
	ImageURL string
	// ImageType is the escaped MIME-type hint derived from the image URL
	// suffix, empty when ImageURL is empty.
	ImageType string
}
