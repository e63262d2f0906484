// Package uitest drives the web app in a headless browser using Rod.
package uitest

import (
	"fmt"

	"github.com/stolasapp/bulletin/internal/app/component"
)

// CSS selectors built from component constants.
// These ensure test selectors stay in sync with the component DOM structure.

// Element selectors.
var (
	// SelectorSiteHeader selects the site header by class.
	SelectorSiteHeader = "header." + component.ClassSiteHeader

	// SelectorSiteHeaderNav selects the nav inside the site header.
	SelectorSiteHeaderNav = SelectorSiteHeader + " nav"

	// SelectorAlert selects the form error message.
	SelectorAlert = "div." + component.ClassAlert + "[role='alert']"

	// SelectorPostList selects the post listing by ID.
	SelectorPostList = "#" + component.IDPostList

	// SelectorPostLink selects the title links of listed posts.
	SelectorPostLink = SelectorPostList + " article." + component.ClassPost + " h2 > a"

	// SelectorPostBody selects the rendered body of a single post.
	SelectorPostBody = "article." + component.ClassPost + " ." + component.ClassPostBody

	// SelectorNextPage selects the link to the following listing page.
	SelectorNextPage = "nav." + component.ClassPagination + " a[rel='next']"

	// SelectorProfileGroups selects the group memberships on the profile page.
	SelectorProfileGroups = "ul." + component.ClassGroups + " > li"

	// SelectorSubmit selects the submit button of the page's form.
	SelectorSubmit = "main form button[type='submit']"
)

// Field returns a selector for a form control by name.
func Field(name string) string {
	return fmt.Sprintf("main form [name='%s']", name)
}

// NavLink returns a selector for a header navigation link by path.
func NavLink(path string) string {
	return fmt.Sprintf("%s a[href='%s']", SelectorSiteHeaderNav, path)
}
