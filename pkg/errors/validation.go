package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength is the longest tag label accepted, in runes.
const MaxLabelLength = 256

// ValidateLabel validates a tag label for display.
//
// The rules are conservative:
//   - No empty or whitespace-only labels
//   - No control characters (labels are single-line)
//   - Valid UTF-8
//   - Maximum length of MaxLabelLength runes
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidTag, "tag label cannot be empty")
	}

	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidTag, "tag label is not valid UTF-8")
	}

	if n := utf8.RuneCountInString(label); n > MaxLabelLength {
		return New(ErrCodeInvalidTag, "tag label too long (%d runes, max %d)", n, MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTag, "tag label contains invalid control characters")
		}
	}

	return nil
}

// idRegex matches tag IDs usable as SVG element IDs and URL path segments.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateID validates a tag identifier.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTag, "tag id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidTag, "tag id too long (max 128 characters)")
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidTag, "invalid tag id: %q", id)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "URL contains whitespace or control characters")
		}
	}

	return nil
}

// colorRegex matches #rgb and #rrggbb hex colors.
var colorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a CSS hex color.
func ValidateColor(color string) error {
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color: %q (want #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidateLength validates a user-supplied length such as a fixed tag width.
// Lengths must be finite and non-negative.
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}
