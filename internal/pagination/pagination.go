// Package pagination provides utilities around page tokens.
package pagination

import (
	"encoding/base64"
	"errors"

	"github.com/fxamacker/cbor/v2"
)

var tokenEncoding = base64.RawURLEncoding

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("pagination: CBOR encoder initialization failed: " + err.Error())
	}
	if decMode, err = (cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}).DecMode(); err != nil {
		panic("pagination: CBOR decoder initialization failed: " + err.Error())
	}
}

// Cursor is the position of a page within a newest-first listing.
type Cursor struct {
	// Before is the ID of the last item on the previous page; the page holds
	// items with smaller IDs.
	Before uint64 `cbor:"1,keyasint"`
}

// TokenError is an opaque error related to pagination tokens. The error message
// does not reveal internal details; use [errors.Unwrap] to access the cause.
type TokenError struct {
	cause error
}

// Error satisfies [error].
func (terr TokenError) Error() string {
	return "invalid pagination token"
}

// Unwrap returns the underlying cause of the token error.
func (terr TokenError) Unwrap() error {
	return terr.cause
}

var errZeroCursor = errors.New("cursor must reference an item")

// FromToken decodes an opaque pagination token. An empty token is the first
// page and decodes to the zero Cursor. Returns a [TokenError] if decoding or
// validation fails.
func FromToken(tkn string) (Cursor, error) {
	var cur Cursor
	if tkn == "" {
		return cur, nil
	}
	data, err := tokenEncoding.DecodeString(tkn)
	if err != nil {
		return cur, TokenError{cause: err}
	}
	if err = decMode.Unmarshal(data, &cur); err != nil {
		return Cursor{}, TokenError{cause: err}
	}
	if cur.Before == 0 {
		return cur, TokenError{cause: errZeroCursor}
	}
	return cur, nil
}

// ToToken encodes a cursor into an opaque pagination token. Returns a
// [TokenError] if validation or encoding fails.
func ToToken(cur Cursor) (string, error) {
	if cur.Before == 0 {
		return "", TokenError{cause: errZeroCursor}
	}
	data, err := encMode.Marshal(cur)
	if err != nil {
		return "", TokenError{cause: err}
	}
	return tokenEncoding.EncodeToString(data), nil
}
