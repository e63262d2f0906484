// Package sec provides authentication and security primitives for the web
// application.
//
// # Authentication
//
// Users log in through a form; on success the application issues a signed
// session cookie whose only claim is the user ID. Every request passes
// through [Authenticate], which verifies the cookie and resolves the user from
// the store. The resolved user is stored on the request context via the
// connectrpc.com/authn info helpers.
//
// IMPORTANT: the session cookie is signed, not encrypted. TLS must be used in
// production to keep it from being replayed.
//
// # Components
//
//   - [ValidateCredentials]: syntactic checks for registration forms
//   - [Sessions]: issues, clears and verifies session cookies
//   - [Authenticate]: resolves the user named by a request's session cookie
//   - [GetAuthenticatedUser], [SetAuthenticatedUser]: Context accessors for user info
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
