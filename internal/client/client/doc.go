// Package client is the light gallery API client.
//
// # Overview
//
// HTTPClient runs every call through the authenticated request pipeline:
//  1. the current access token is read from the credential store and sent as
//     a Bearer header;
//  2. a successful response envelope is unwrapped into the caller's value;
//  3. a 401 starts one coordinated refresh shared by all concurrent callers,
//     after which each rejected call is retried once with the fresh token;
//  4. when the refresh fails the store is cleared and subscribers of Events
//     are told the session is over.
//
// # Error Handling
//
// Failures are reported as *StatusError or *BusinessError and match the
// sentinels (ErrUnavailable, ErrUnauthorized, ErrSessionExpired, ErrBadRequest,
// ErrForbidden, ErrNotFound, ErrServer, ErrRequestFailed) with errors.Is.
// UserMessage turns any of them into a notification text.
//
// The typed wrappers (Login, ListAlbums, FullTextSearch, ...) are thin
// shortcuts over Do.
package client
