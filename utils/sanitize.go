package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips markup outside the user-generated-content allow list and trims whitespace.
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
