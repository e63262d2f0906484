package component

// Element IDs.
const (
	IDContent  = "content"
	IDPostList = "post-list"
)

// Form field names, shared with the handlers that parse them.
const (
	FieldCSRF        = "_csrf"
	FieldUsername    = "username"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldBody        = "body"
	GroupFieldPrefix = "group_"
	// CheckboxOn is the value browsers submit for a checked checkbox.
	CheckboxOn = "on"
)

// CSS class names.
const (
	ClassSiteHeader  = "site-header"
	ClassSiteTitle   = "site-title"
	ClassNav         = "nav"
	ClassAlert       = "alert"
	ClassAlertDanger = "alert-danger"
	ClassPost        = "post"
	ClassPostMeta    = "post-meta"
	ClassPostBody    = "post-body"
	ClassPagination  = "pagination"
	ClassGroups      = "groups"
	ClassEmpty       = "empty"
)
