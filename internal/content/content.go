// Package content contains transformers to render and sanitize user-authored
// post content.
package content

import (
	"strings"
	"unicode/utf8"
)

var (
	// Individual transformers.
	normalizeText  = NormalizeText()
	markdownToHTML = MarkdownToHTML()
	sanitizeHTML   = SanitizeHTML()
	scrubHTML      = ScrubHTML()

	// Pre-composed pipelines.
	markdownPipeline = Chain(normalizeText, markdownToHTML, sanitizeHTML, scrubHTML)
)

// Render converts a Markdown post body into sanitized HTML that is safe to
// embed in a page.
func Render(body string) (string, error) {
	out, err := markdownPipeline([]byte(body))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Excerpt returns the plain text of a Markdown post body, truncated to at
// most limit characters on a word boundary. An ellipsis marks truncation.
func Excerpt(body string, limit int) (string, error) {
	rendered, err := markdownPipeline([]byte(body))
	if err != nil {
		return "", err
	}
	text, err := PlainText(rendered)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(text) <= limit {
		return text, nil
	}
	runes := []rune(text)
	cut := string(runes[:limit])
	if runes[limit] != ' ' {
		if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ,.;:") + "…", nil
}
