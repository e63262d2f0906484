package db

import "time"

// User is a registered account.
type User struct {
	ID           uint64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// FullName joins the user's first and last names.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Group is a named collection of users.
type Group struct {
	ID   uint64
	Name string
}

// UserGroupAssociation records a user's membership in a group.
type UserGroupAssociation struct {
	UserID  uint64
	GroupID uint64
}

// Post is a blog entry written by a user.
type Post struct {
	ID        uint64
	AuthorID  uint64
	Title     string
	Body      string
	CreatedAt time.Time
}

// PostView is a [Post] joined with its author's username.
type PostView struct {
	Post
	AuthorName string
}
