// Package api exposes the operations the views are built from as
// request/response workflows. Each workflow opens the store for the duration
// of one call, so CLI invocations and embedding frontends share the same
// entry points and the same locking behavior.
package api
