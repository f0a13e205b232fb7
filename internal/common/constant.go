// Package common contains shared constants and sentinel errors used across
// lightgallery components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every dispatched request with a unique id so
// client and server logs can be correlated.
const RequestIDHeaderName = "X-Request-ID"

// Storage keys of the persisted credential.
const (
	TokenStorageKey       = "light_gallery_token"
	TokenExpireStorageKey = "light_gallery_token_expire"
)
