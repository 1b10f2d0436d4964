// Package api is the single point of outbound network access: a typed REST
// adapter over the travelfeed backend. It attaches the stored bearer token
// to every authenticated request, normalizes all failures into a small set
// of sentinel errors plus server-reported messages, and validates response
// shapes at the boundary.
package api
