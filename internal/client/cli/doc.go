// Package cli provides the interactive light gallery command-line client.
//
// It wires configuration, the credential database, the API client and an
// interactive REPL. Typical flow: restore a remembered session, then execute
// user commands until exit. When the API client gives up on an expired
// session the REPL says so and falls back to the guest prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
