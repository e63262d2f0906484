package component

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/stolasapp/bulletin/internal/slugconv"
)

// Route paths.
const (
	PathIndex    = "/"
	PathAbout    = "/about"
	PathRegister = "/auth/register"
	PathLogin    = "/auth/login"
	PathLogout   = "/auth/logout"
	PathNewPost  = "/posts/new"
	PathProfile  = "/profile"
	PathStatic   = "/static/"
	postsPrefix  = "/posts/"
)

// PageParam is the query parameter carrying the listing's page token.
const PageParam = "page"

// PostURL returns the canonical URL of a post.
func PostURL(id uint64, title string) string {
	return postsPrefix + slugconv.PostSlug(id, title)
}

// IndexURL returns the URL of the listing page for the given page token. An
// empty token is the first page.
func IndexURL(pageToken string) string {
	if pageToken == "" {
		return PathIndex
	}
	params := url.Values{}
	params.Set(PageParam, pageToken)
	return PathIndex + "?" + params.Encode()
}

// GroupField returns the name of the registration checkbox for a group.
func GroupField(groupID uint64) string {
	return GroupFieldPrefix + strconv.FormatUint(groupID, 10)
}

// GroupIDFromField parses a registration checkbox name, reporting false if
// name is not a group field.
func GroupIDFromField(name string) (uint64, bool) {
	rest, ok := strings.CutPrefix(name, GroupFieldPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	return id, err == nil
}
