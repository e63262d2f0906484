package slugconv

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSlugLen bounds the title portion of a slug, in bytes.
const maxSlugLen = 60

// Slugify converts a title into a lowercase, hyphen-separated slug. Accents
// are stripped and runs of any other non-alphanumeric characters collapse into
// a single hyphen. The result is truncated at a word boundary where possible.
func Slugify(title string) string {
	var builder strings.Builder
	pendingHyphen := false
	for _, r := range norm.NFKD.String(title) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			pendingHyphen = false
			builder.WriteRune(unicode.ToLower(r))
		default:
			pendingHyphen = true
		}
	}
	return truncate(builder.String(), maxSlugLen)
}

func truncate(slug string, limit int) string {
	if len(slug) <= limit {
		return slug
	}
	slug = slug[:limit]
	if idx := strings.LastIndexByte(slug, '-'); idx > 0 {
		return slug[:idx]
	}
	return slug
}
