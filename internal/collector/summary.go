package collector

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^<]+?>`)

// CleanSummary strips HTML tags and collapses the text to its first sentence.
func CleanSummary(htmlText string) string {
	text := strings.TrimSpace(htmlTagPattern.ReplaceAllString(htmlText, ""))

	parts := strings.SplitN(text, ". ", 2)
	if parts[0] != "" {
		return parts[0] + "."
	}
	return text
}
