package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans user-provided text to prevent XSS. Goal fields and team
// names are rendered back into shared pages, so everything free-text passes
// through here.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
