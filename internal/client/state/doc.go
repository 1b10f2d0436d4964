// Package state holds the client-side application state: one slice per
// backend resource, each exposing async operations against the API client
// and a fixed pending/fulfilled/rejected transition for every operation.
//
// The server is the source of truth. Mutations apply a local merge (append,
// replace-by-id, optimistic like/unlike) and then converge by refetching the
// canonical list in the background. The like/unlike flow is an explicit
// state machine so the rollback path stays testable.
package state
