package card

import (
	"fmt"
	"net/url"
	"strings"
)

// Reason is a machine-readable validation failure code.
type Reason string

const (
	// ReasonEmptyField marks a required field that was empty after trimming.
	ReasonEmptyField Reason = "empty_field"
	// ReasonTooLong marks a field over its length budget.
	ReasonTooLong Reason = "too_long"
	// ReasonInvalidFormat marks a value that failed to parse.
	ReasonInvalidFormat Reason = "invalid_format"
	// ReasonSchemeNotAllowed marks a URL with a scheme other than https.
	ReasonSchemeNotAllowed Reason = "scheme_not_allowed"
)

// Result is the verdict for a single field.
type Result struct {
	// Valid reports whether the field passed validation.
	Valid bool
	// Reason identifies the failure when Valid is false.
	Reason Reason
	// Message is a human-readable explanation for form surfaces.
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}

// ValidateTitle checks the card title. The title is required and bounded
// by TitleMax.
func ValidateTitle(raw string) Result {
	title := strings.TrimSpace(raw)
	if title == "" {
		return invalid(ReasonEmptyField, "title is required")
	}
	if runeLen(title) > TitleMax {
		return invalid(ReasonTooLong, fmt.Sprintf("title exceeds %d characters", TitleMax))
	}
	return valid()
}

// ValidateDescription checks the card description. The description is
// required and bounded by DescriptionMax.
func ValidateDescription(raw string) Result {
	description := strings.TrimSpace(raw)
	if description == "" {
		return invalid(ReasonEmptyField, "description is required")
	}
	if runeLen(description) > DescriptionMax {
		return invalid(ReasonTooLong, fmt.Sprintf("description exceeds %d characters", DescriptionMax))
	}
	return valid()
}

// ValidateFooter checks the optional footer. An empty footer is valid.
func ValidateFooter(raw string) Result {
	footer := strings.TrimSpace(raw)
	if footer == "" {
		return valid()
	}
	if runeLen(footer) > FooterMax {
		return invalid(ReasonTooLong, fmt.Sprintf("footer exceeds %d characters", FooterMax))
	}
	return valid()
}

// ValidateImageURL checks the optional image URL. An empty value is
// valid. Non-empty values must parse as an absolute https URL; any
// hostname is accepted once the scheme check passes.
func ValidateImageURL(raw string) Result {
	image := strings.TrimSpace(raw)
	if image == "" {
		return valid()
	}
	parsed, err := url.Parse(image)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return invalid(ReasonInvalidFormat, "image must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return invalid(ReasonSchemeNotAllowed, "image URL must use https")
	}
	return valid()
}
