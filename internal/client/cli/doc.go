// Package cli provides the interactive TravelFeed command-line client.
//
// It wires configuration, the persisted session, the REST API adapter, and
// the in-memory app state behind an interactive REPL. On startup a previously
// stored session is restored, so an authenticated user stays logged in across
// restarts until the token expires.
//
// Key features:
//   - Register / Login / Logout with a sqlite-backed session
//   - Browse the feed, create posts with images, comment
//   - Like / unlike with optimistic updates, double-tap gesture included
//   - Marketplace listings and categories
//   - Debounced search with filters and pagination
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
