package sec

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by [HashPassword] when the password exceeds
// bcrypt's 72 byte input limit.
const ErrPasswordTooLong ValidationError = "Password must not be longer than 72 bytes."

// ComparePassword returns an error if the provided password does not resolve to
// the given hash.
func ComparePassword[T ~string | ~[]byte](password T, hash []byte) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

// HashPassword generates the hash for a given password. It returns
// [ErrPasswordTooLong] if the password is longer than 72 bytes.
func HashPassword[T ~string | ~[]byte](password T) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	return hash, err
}
