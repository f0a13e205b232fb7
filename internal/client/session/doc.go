// Package session holds the credential store: the single owner of the bearer
// token and the authenticated-user record.
//
// The token lives in memory and is mirrored to exactly one repository,
// chosen at login by the "remember me" flag:
//
//   - persist=true:  durable repository (SQLite), with a remember deadline;
//   - persist=false: volatile repository (process memory).
//
// Expiry is checked lazily on every Token call against the remember deadline.
// A JWT's exp claim is checked only by Load, when a stored credential is
// picked up at startup. There are no background timers.
//
// Store is safe for concurrent use. The request pipeline mutates it only
// through Replace (after a refresh) and ClearIf (terminal auth failure); both
// are compare-and-swap so concurrent callers cannot clobber a newer token.
package session
