package sec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLen is the minimum number of characters in a password.
const MinPasswordLen = 8

// Validation failures reported by [ValidateCredentials], in the order they are
// checked.
const (
	ErrUsernameRequired  ValidationError = "Username is required."
	ErrUsernameSpaces    ValidationError = "Username can't contain spaces."
	ErrFirstNameRequired ValidationError = "First name is required."
	ErrLastNameRequired  ValidationError = "Last name is required."
	ErrEmailRequired     ValidationError = "Email is required."
	ErrPasswordRequired  ValidationError = "Password is required."
	ErrPasswordSpaces    ValidationError = "Password can't contain spaces."
	ErrPasswordLength    ValidationError = "Password must contain at least 8 characters."
	ErrPasswordWeak      ValidationError = "Password must contain upper and lower case letters, numbers, and special characters."
)

// specialChars are the punctuation characters that satisfy the password
// complexity rule.
const specialChars = "~!@#$%^&*()_-+={[}]|:;\"'<,>.?/"

// ValidationError is a user-facing message describing why submitted form
// fields were rejected.
type ValidationError string

// Error satisfies [error].
func (e ValidationError) Error() string { return string(e) }

// Credentials are the fields of a registration form. Callers normalize the
// values before validation.
type Credentials struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ValidateCredentials returns the first [ValidationError] that applies to
// creds, or nil if the credentials are acceptable.
func ValidateCredentials(creds Credentials) error {
	switch {
	case creds.Username == "":
		return ErrUsernameRequired
	case strings.ContainsRune(creds.Username, ' '):
		return ErrUsernameSpaces
	case creds.FirstName == "":
		return ErrFirstNameRequired
	case creds.LastName == "":
		return ErrLastNameRequired
	case creds.Email == "":
		return ErrEmailRequired
	}
	return ValidatePassword(creds.Password)
}

// ValidatePassword applies the password rules of [ValidateCredentials] on
// their own.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case strings.ContainsRune(password, ' '):
		return ErrPasswordSpaces
	case utf8.RuneCountInString(password) < MinPasswordLen:
		return ErrPasswordLength
	case !strongPassword(password):
		return ErrPasswordWeak
	}
	return nil
}

func strongPassword(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r == '\n':
			return false
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}
