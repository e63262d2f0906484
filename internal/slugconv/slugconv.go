// Package slugconv handles conversions between post identifiers and URL slugs
package slugconv

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// ErrInvalidSlug is returned for malformed slug strings.
	ErrInvalidSlug = Error("invalid slug")
)

const (
	postSlugPattern = `([1-9][0-9]{0,19})(-[a-z0-9]+(-[a-z0-9]+)*)?`
	postIDIndex     = 1
)

// Regex pattern exact-matching a post slug.
var postSlug = patternMustCompile(postSlugPattern, true)

// Error is an error type for slug conversion failures.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// PostSlug returns the canonical slug of a post: its ID followed by its
// slugified title. Titles without any slug-safe characters produce the bare ID.
func PostSlug(id uint64, title string) string {
	slug := strconv.FormatUint(id, 10)
	if suffix := Slugify(title); suffix != "" {
		slug += "-" + suffix
	}
	return slug
}

// PostIDFromSlug extracts the post ID from a slug. The title portion is not
// checked against the post; callers compare against [PostSlug] to detect
// stale or hand-edited slugs.
func PostIDFromSlug(slug string) (uint64, error) {
	matches := postSlug.FindStringSubmatch(slug)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: slug %q does not match pattern `%s`", ErrInvalidSlug, slug, postSlug.String())
	}
	id, err := strconv.ParseUint(matches[postIDIndex], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: slug %q: %w", ErrInvalidSlug, slug, err)
	}
	return id, nil
}

func patternMustCompile(pattern string, optionalTrailingSlash bool) *regexp.Regexp {
	if optionalTrailingSlash {
		pattern += "/?"
	}
	return regexp.MustCompile("^" + pattern + "$")
}
