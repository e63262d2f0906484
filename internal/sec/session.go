package sec

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stolasapp/bulletin/internal/config"
)

const sessionIssuer = "bulletin"

// ErrInvalidSession is returned when a session token fails verification.
var ErrInvalidSession = errors.New("invalid session token")

// Sessions issues and verifies the session cookie. The cookie holds a signed
// token whose only application state is the user ID.
type Sessions struct {
	key      []byte
	name     string
	lifetime time.Duration
	secure   bool
	now      func() time.Time
}

// NewSessions returns a Sessions configured from cfg.
func NewSessions(cfg config.Session) *Sessions {
	return &Sessions{
		key:      []byte(cfg.Secret),
		name:     cfg.CookieName,
		lifetime: cfg.Lifetime,
		secure:   cfg.Secure,
		now:      time.Now,
	}
}

// CookieName returns the name of the session cookie.
func (s *Sessions) CookieName() string { return s.name }

// Issue creates a fresh session cookie for userID. Each call produces a new
// token ID, so a previous session is never reused.
func (s *Sessions) Issue(userID uint64) (*http.Cookie, error) {
	now := s.now()
	expires := now.Add(s.lifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   strconv.FormatUint(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	cookie := s.cookie(signed)
	cookie.Expires = expires
	cookie.MaxAge = int(s.lifetime.Seconds())
	return cookie, nil
}

// Clear returns a cookie that removes the session from the client.
func (s *Sessions) Clear() *http.Cookie {
	cookie := s.cookie("")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

// UserID returns the user ID carried by the request's session cookie. ok is
// false if the cookie is absent or does not verify.
func (s *Sessions) UserID(req *http.Request) (userID uint64, ok bool) {
	cookie, err := req.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	userID, err = s.Verify(cookie.Value)
	return userID, err == nil
}

// Verify checks the signature and expiry of a session token and returns the
// user ID it names. All failures wrap [ErrInvalidSession].
func (s *Sessions) Verify(token string) (uint64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: malformed subject %q", ErrInvalidSession, claims.Subject)
	}
	return userID, nil
}

func (s *Sessions) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
