// Package session persists the device-local session: a small key/value
// table holding the bearer token and a cached profile summary. It is the
// only client-side persistence in the application; every other entity is
// refetched from the server.
package session
